package hcube

import (
	"time"

	"go.uber.org/zap"
)

// DistinctPieceCount is the number of symmetry classes among the raw
// pieces, as computed by Orbits.
const DistinctPieceCount = 8484

// ProgressInterval is the number of raw indices between progress callbacks.
const ProgressInterval = 4096

// Orbit is one symmetry class of pieces.
type Orbit struct {
	// Representative is the member with the smallest index.
	Representative Piece
	// Members lists every piece of the class in ascending index order.
	Members []Piece
}

// Size returns the number of pieces in the orbit.
func (o Orbit) Size() int {
	return len(o.Members)
}

// Symmetric reports whether some symmetry other than the identity fixes
// the representative, which is the case for every orbit smaller than 8.
func (o Orbit) Symmetric() bool {
	return o.Size() < SymmetryCount
}

// Orbits partitions all raw pieces into symmetry classes, ordered by
// representative. Every raw index appears in exactly one orbit.
func Orbits(opts ...Option) []Orbit {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	start := time.Now()
	visited := make([]bool, RawPieceCount)
	orbits := make([]Orbit, 0, DistinctPieceCount)

	done := 0
	it := All()
	for p, ok := it.Next(); ok; p, ok = it.Next() {
		done++
		if cfg.progress != nil && done%ProgressInterval == 0 {
			cfg.progress(done, RawPieceCount)
		}
		if visited[p.index] {
			continue
		}

		members := p.Orbit()
		for _, m := range members {
			visited[m.index] = true
		}
		orbits = append(orbits, Orbit{
			Representative: members[0],
			Members:        members,
		})
	}

	if cfg.progress != nil && done%ProgressInterval != 0 {
		cfg.progress(done, RawPieceCount)
	}

	cfg.logger.Debug("orbit reduction complete",
		zap.Int("raw", done),
		zap.Int("orbits", len(orbits)),
		zap.Duration("elapsed", time.Since(start)),
	)

	return orbits
}

// Distinct returns one canonical piece per symmetry class, ascending.
func Distinct(opts ...Option) []Piece {
	orbits := Orbits(opts...)
	pieces := make([]Piece, len(orbits))
	for i, o := range orbits {
		pieces[i] = o.Representative
	}
	return pieces
}

// OrbitSizes counts orbits by size.
func OrbitSizes(orbits []Orbit) map[int]int {
	sizes := make(map[int]int)
	for _, o := range orbits {
		sizes[o.Size()]++
	}
	return sizes
}
