// Package hcube models Happy Cube puzzle pieces and the symmetries that
// relate them.
//
// A Happy Cube piece is a 5x5 foam square whose solid centre is surrounded
// by a ring of sixteen optional sub-cubes. Ring positions are numbered
// clockwise from the top-left corner:
//
//	+----+----+----+----+----+
//	| 00 | 01 | 02 | 03 | 04 |
//	+----+----+----+----+----+
//	| 15 |              | 05 |
//	+----+              +----+
//	| 14 |              | 06 |
//	+----+              +----+
//	| 13 |              | 07 |
//	+----+----+----+----+----+
//	| 12 | 11 | 10 | 09 | 08 |
//	+----+----+----+----+----+
//
// A Piece stores one bit per ring position, so there are 2^16 = 65536 raw
// pieces. Rotating or flipping a physical piece does not change it, and
// grouping the raw pieces by the eight symmetries of the square leaves
// DistinctPieceCount different pieces. Physical realizability (for example
// a piece falling apart into several components) is not checked.
//
// # Quick Start
//
//	p := hcube.FromIndex(0b10)
//	fmt.Println(p.RotateClockwise().Index()) // 32
//	fmt.Println(p.Flip().Index())            // 32768
//	fmt.Println(p.Canonical().Index())       // 1
//
// # Enumeration
//
// All and Pieces walk the raw space in ascending index order. Orbits and
// Distinct reduce it to one canonical piece per symmetry class, choosing
// the numerically smallest index of each class:
//
//	for _, p := range hcube.Distinct() {
//	    fmt.Println(p)
//	}
package hcube
