package hcube

import (
	"cmp"
	"fmt"
	"math/bits"
	"slices"
	"strconv"
	"strings"

	"github.com/SeamusWaldron/hcube/internal/ring"
)

// Positions is the number of ring cells a piece may occupy.
const Positions = ring.Positions

// Piece is a Happy Cube piece. Bit i of its index is set when ring
// position i carries a sub-cube. Pieces are plain values: two pieces are
// equal exactly when their indices are equal, and every operation returns
// a new piece.
type Piece struct {
	index uint16
}

// FromIndex creates the piece with a sub-cube for every set bit of index.
func FromIndex(index uint16) Piece {
	return Piece{index: index}
}

// ParseIndex parses a piece index written in decimal, hex (0x), octal (0o)
// or binary (0b).
func ParseIndex(s string) (Piece, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 0, 16)
	if err != nil {
		return Piece{}, fmt.Errorf("%w: %q", ErrInvalidIndex, s)
	}
	return FromIndex(uint16(n)), nil
}

// Index returns the raw 16-bit encoding of the piece.
func (p Piece) Index() uint16 {
	return p.index
}

// RotateClockwise returns the piece turned 90 degrees clockwise.
func (p Piece) RotateClockwise() Piece {
	return FromIndex(ring.Rotate(p.index, ring.QuarterTurn))
}

// RotateCounterClockwise returns the piece turned 90 degrees
// counter-clockwise. It undoes RotateClockwise.
func (p Piece) RotateCounterClockwise() Piece {
	return FromIndex(ring.Rotate(p.index, 3*ring.QuarterTurn))
}

// Flip returns the piece turned over, mirrored about the diagonal through
// position 0. Flipping twice gives back the original piece.
func (p Piece) Flip() Piece {
	return FromIndex(ring.Reflect(p.index))
}

// Transform applies a symmetry of the square to the piece.
func (p Piece) Transform(s Symmetry) Piece {
	return FromIndex(s.Apply(p.index))
}

// Has reports whether ring position pos carries a sub-cube.
func (p Piece) Has(pos int) bool {
	if pos < 0 || pos >= Positions {
		return false
	}
	return p.index&(1<<pos) != 0
}

// Size returns the number of occupied ring positions.
func (p Piece) Size() int {
	return bits.OnesCount16(p.index)
}

// Orbit returns every distinct piece reachable from p by a symmetry,
// ordered by index. The result always contains p and has 1, 2, 4 or 8
// members.
func (p Piece) Orbit() []Piece {
	members := make([]Piece, 0, len(symmetries))
	for _, s := range symmetries {
		q := p.Transform(s)
		if !slices.Contains(members, q) {
			members = append(members, q)
		}
	}
	slices.SortFunc(members, comparePieces)
	return members
}

// Canonical returns the member of p's orbit with the smallest index.
// Pieces related by a symmetry share the same canonical piece.
func (p Piece) Canonical() Piece {
	best := p
	for _, s := range symmetries[1:] {
		if q := p.Transform(s); q.index < best.index {
			best = q
		}
	}
	return best
}

// IsCanonical reports whether p represents its own orbit.
func (p Piece) IsCanonical() bool {
	return p.Canonical() == p
}

// Stabilizer returns the symmetries that leave p unchanged. The identity
// is always included, and len(Stabilizer) * len(Orbit) == 8.
func (p Piece) Stabilizer() []Symmetry {
	var fixed []Symmetry
	for _, s := range symmetries {
		if p.Transform(s) == p {
			fixed = append(fixed, s)
		}
	}
	return fixed
}

// String draws the piece on its 5x5 chart: '#' for a sub-cube, '.' for an
// empty ring cell, and blanks for the solid centre.
func (p Piece) String() string {
	var b strings.Builder
	for row := 0; row < ring.ChartSize; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		for col := 0; col < ring.ChartSize; col++ {
			if col > 0 {
				b.WriteByte(' ')
			}
			pos, ok := ring.PositionAt(row, col)
			switch {
			case !ok:
				b.WriteByte(' ')
			case p.Has(pos):
				b.WriteByte('#')
			default:
				b.WriteByte('.')
			}
		}
	}
	return b.String()
}

func comparePieces(a, b Piece) int {
	return cmp.Compare(a.index, b.index)
}
