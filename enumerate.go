package hcube

import (
	"iter"
	"math"
)

// RawPieceCount is the number of 16-bit piece encodings.
const RawPieceCount = 1 << Positions

// AllPieces is a cursor over every raw piece in ascending index order.
// A cursor must not be shared between goroutines; separate cursors are
// independent.
type AllPieces struct {
	next uint16
	done bool
}

// All returns a fresh cursor positioned before index 0.
func All() *AllPieces {
	return &AllPieces{}
}

// Next returns the next piece, or false once index 65535 has been returned.
func (it *AllPieces) Next() (Piece, bool) {
	if it.done {
		return Piece{}, false
	}
	p := FromIndex(it.next)
	// Stop after yielding the maximum rather than wrapping to 0.
	if it.next == math.MaxUint16 {
		it.done = true
	} else {
		it.next++
	}
	return p, true
}

// Pieces returns the raw enumeration as a range-over-func sequence. Each
// range statement starts again from index 0.
func Pieces() iter.Seq[Piece] {
	return func(yield func(Piece) bool) {
		it := All()
		for p, ok := it.Next(); ok; p, ok = it.Next() {
			if !yield(p) {
				return
			}
		}
	}
}
