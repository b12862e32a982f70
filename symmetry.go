package hcube

import "github.com/SeamusWaldron/hcube/internal/ring"

// Symmetry is one of the eight symmetries of the square: a rotation by a
// multiple of 90 degrees, optionally preceded by a flip.
type Symmetry = ring.Element

// The symmetry group, in the order returned by Symmetries.
const (
	Identity   = ring.Identity
	Rot90      = ring.Rot90
	Rot180     = ring.Rot180
	Rot270     = ring.Rot270
	Flip       = ring.Flip
	FlipRot90  = ring.FlipRot90
	FlipRot180 = ring.FlipRot180
	FlipRot270 = ring.FlipRot270
)

// SymmetryCount is the order of the symmetry group.
const SymmetryCount = ring.Order

var symmetries = ring.Elements()

// Symmetries returns the eight symmetries: the four rotations, then the
// four flipped rotations.
func Symmetries() []Symmetry {
	all := symmetries
	return all[:]
}

// NewSymmetry returns the symmetry that optionally flips a piece and then
// turns it clockwise by the given number of quarter turns. Negative turns
// rotate counter-clockwise.
func NewSymmetry(flip bool, quarterTurns int) Symmetry {
	return ring.NewElement(flip, quarterTurns)
}
