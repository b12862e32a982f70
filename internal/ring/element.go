package ring

// Order is the number of elements in the symmetry group of the square.
const Order = 8

// Element is one of the eight symmetries of the square acting on the ring.
// The low two bits count clockwise quarter turns; bit 2 marks a reflection
// that is applied before the rotation.
type Element uint8

const (
	Identity   Element = 0
	Rot90      Element = 1
	Rot180     Element = 2
	Rot270     Element = 3
	Flip       Element = 4 // Reflection only
	FlipRot90  Element = 5 // Reflect, then rotate 90
	FlipRot180 Element = 6 // Reflect, then rotate 180
	FlipRot270 Element = 7 // Reflect, then rotate 270
)

// elementPerms holds the permutation of every element, indexed by Element.
var elementPerms = buildElementPerms()

func buildElementPerms() [Order]Perm {
	var perms [Order]Perm
	for _, e := range Elements() {
		p := IdentityPerm()
		if e.Flipped() {
			p = p.Then(ReflectionPerm())
		}
		perms[e] = p.Then(RotationPerm(e.QuarterTurns() * QuarterTurn))
	}
	return perms
}

// Elements returns the group elements in canonical order: the four
// rotations followed by the four reflected rotations.
func Elements() [Order]Element {
	return [Order]Element{Identity, Rot90, Rot180, Rot270, Flip, FlipRot90, FlipRot180, FlipRot270}
}

// NewElement builds the element that optionally reflects and then rotates
// by the given number of clockwise quarter turns (any integer).
func NewElement(flip bool, quarterTurns int) Element {
	e := Element(((quarterTurns % 4) + 4) % 4)
	if flip {
		e |= Flip
	}
	return e
}

// Flipped reports whether the element includes the reflection.
func (e Element) Flipped() bool {
	return e&Flip != 0
}

// QuarterTurns returns the clockwise rotation applied after any reflection.
func (e Element) QuarterTurns() int {
	return int(e & 3)
}

// Perm returns the position permutation for e.
func (e Element) Perm() Perm {
	return elementPerms[e&7]
}

// Apply maps a ring word through e.
func (e Element) Apply(n uint16) uint16 {
	if e.Flipped() {
		n = Reflect(n)
	}
	return Rotate(n, e.QuarterTurns()*QuarterTurn)
}

// Then returns the element equivalent to applying e first and f second.
func (e Element) Then(f Element) Element {
	// Reflecting reverses the direction of any rotation it is applied after.
	turns := e.QuarterTurns()
	if f.Flipped() {
		turns = -turns
	}
	return NewElement(e.Flipped() != f.Flipped(), turns+f.QuarterTurns())
}

// Inverse returns the element undoing e. Reflections are their own inverse.
func (e Element) Inverse() Element {
	if e.Flipped() {
		return e
	}
	return NewElement(false, -e.QuarterTurns())
}

func (e Element) String() string {
	switch e {
	case Identity:
		return "identity"
	case Rot90:
		return "rot90"
	case Rot180:
		return "rot180"
	case Rot270:
		return "rot270"
	case Flip:
		return "flip"
	case FlipRot90:
		return "flip+rot90"
	case FlipRot180:
		return "flip+rot180"
	case FlipRot270:
		return "flip+rot270"
	default:
		return "?"
	}
}
