// Package ring implements the bit-permutation algebra on the 16-cell ring
// that encodes a Happy Cube piece.
//
// Ring positions run clockwise around the border of a 5x5 square:
//
//	00 01 02 03 04
//	15          05
//	14          06
//	13          07
//	12 11 10 09 08
//
// Bit i of a 16-bit word is ring position i. Rotating the square by 90
// degrees moves every position four steps around the ring, and the mirror
// about the diagonal through position 0 sends position i to 16-i.
package ring

import "math/bits"

// Positions is the number of cells on the ring.
const Positions = 16

// QuarterTurn is the number of ring steps covered by a 90 degree rotation.
const QuarterTurn = Positions / 4

// Perm maps every source position to its destination position.
// Perm[i] = j means bit i of the input becomes bit j of the output.
type Perm [Positions]uint8

// IdentityPerm leaves every position in place.
func IdentityPerm() Perm {
	var p Perm
	for i := range p {
		p[i] = uint8(i)
	}
	return p
}

// RotationPerm returns the permutation moving each position k steps
// clockwise. k may be any integer; it is reduced modulo 16.
func RotationPerm(k int) Perm {
	k = normalize(k)
	var p Perm
	for i := range p {
		p[i] = uint8((i + k) % Positions)
	}
	return p
}

// ReflectionPerm returns the mirror about the axis through position 0.
func ReflectionPerm() Perm {
	var p Perm
	for i := range p {
		p[i] = uint8((Positions - i) % Positions)
	}
	return p
}

// Apply relocates every bit of n according to p.
func (p Perm) Apply(n uint16) uint16 {
	var out uint16
	for i := 0; i < Positions; i++ {
		if n&(1<<i) != 0 {
			out |= 1 << p[i]
		}
	}
	return out
}

// Then returns the permutation that applies p first and q second.
func (p Perm) Then(q Perm) Perm {
	var r Perm
	for i := range r {
		r[i] = q[p[i]]
	}
	return r
}

// Inverse returns the permutation undoing p.
func (p Perm) Inverse() Perm {
	var r Perm
	for i, j := range p {
		r[j] = uint8(i)
	}
	return r
}

// IsBijection reports whether every destination position is hit exactly once.
func (p Perm) IsBijection() bool {
	var seen uint16
	for _, j := range p {
		if int(j) >= Positions || seen&(1<<j) != 0 {
			return false
		}
		seen |= 1 << j
	}
	return true
}

// Rotate moves every set bit of n k positions clockwise around the ring.
// This is a cyclic permutation of bit positions, not an arithmetic shift:
// bits leaving position 15 re-enter at position 0.
func Rotate(n uint16, k int) uint16 {
	return bits.RotateLeft16(n, normalize(k))
}

// Reflect sends bit i of n to bit (16-i) mod 16.
func Reflect(n uint16) uint16 {
	// Reversing sends i to 15-i; one more step lands on 16-i.
	return bits.RotateLeft16(bits.Reverse16(n), 1)
}

func normalize(k int) int {
	k %= Positions
	if k < 0 {
		k += Positions
	}
	return k
}
