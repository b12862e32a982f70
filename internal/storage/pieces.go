package storage

import (
	"database/sql"
	"fmt"

	"github.com/SeamusWaldron/hcube"
)

// PieceRecord is a canonical piece stored for a run.
type PieceRecord struct {
	RunID       string
	PieceIndex  uint16
	OrbitSize   int
	CellCount   int
	IsSymmetric bool
}

// Piece returns the stored piece.
func (p PieceRecord) Piece() hcube.Piece {
	return hcube.FromIndex(p.PieceIndex)
}

// PieceRepository provides CRUD operations for catalog pieces.
type PieceRepository struct {
	db *DB
}

// NewPieceRepository creates a new piece repository.
func NewPieceRepository(db *DB) *PieceRepository {
	return &PieceRepository{db: db}
}

// InsertOrbits stores the representative of every orbit in a single
// transaction.
func (r *PieceRepository) InsertOrbits(runID string, orbits []hcube.Orbit) error {
	return r.db.Transaction(func(tx *sql.Tx) error {
		return r.InsertOrbitsTx(tx, runID, orbits)
	})
}

// InsertOrbitsTx stores the representative of every orbit inside tx.
func (r *PieceRepository) InsertOrbitsTx(tx *sql.Tx, runID string, orbits []hcube.Orbit) error {
	stmt, err := tx.Prepare(`
		INSERT INTO pieces (run_id, piece_index, orbit_size, cell_count, is_symmetric)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare piece insert: %w", err)
	}
	defer stmt.Close()

	for _, o := range orbits {
		p := o.Representative
		_, err := stmt.Exec(runID, int(p.Index()), o.Size(), p.Size(), o.Symmetric())
		if err != nil {
			return fmt.Errorf("failed to insert piece %d: %w", p.Index(), err)
		}
	}
	return nil
}

// GetByRun retrieves all pieces of a run in index order.
func (r *PieceRepository) GetByRun(runID string) ([]PieceRecord, error) {
	return r.query(`
		SELECT run_id, piece_index, orbit_size, cell_count, is_symmetric
		FROM pieces
		WHERE run_id = ?
		ORDER BY piece_index
	`, runID)
}

// GetByOrbitSize retrieves the pieces of a run whose orbit has the given size.
func (r *PieceRepository) GetByOrbitSize(runID string, size int) ([]PieceRecord, error) {
	return r.query(`
		SELECT run_id, piece_index, orbit_size, cell_count, is_symmetric
		FROM pieces
		WHERE run_id = ? AND orbit_size = ?
		ORDER BY piece_index
	`, runID, size)
}

func (r *PieceRepository) query(q string, args ...any) ([]PieceRecord, error) {
	rows, err := r.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get pieces: %w", err)
	}
	defer rows.Close()

	var pieces []PieceRecord
	for rows.Next() {
		var p PieceRecord
		var index int
		err := rows.Scan(&p.RunID, &index, &p.OrbitSize, &p.CellCount, &p.IsSymmetric)
		if err != nil {
			return nil, fmt.Errorf("failed to scan piece: %w", err)
		}
		p.PieceIndex = uint16(index)
		pieces = append(pieces, p)
	}

	return pieces, rows.Err()
}

// Count returns the number of pieces stored for a run.
func (r *PieceRepository) Count(runID string) (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM pieces WHERE run_id = ?", runID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count pieces: %w", err)
	}
	return count, nil
}

// CountBySize returns the number of stored orbits of each size.
func (r *PieceRepository) CountBySize(runID string) (map[int]int, error) {
	rows, err := r.db.Query(`
		SELECT orbit_size, COUNT(*)
		FROM pieces
		WHERE run_id = ?
		GROUP BY orbit_size
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to count pieces by size: %w", err)
	}
	defer rows.Close()

	sizes := make(map[int]int)
	for rows.Next() {
		var size, count int
		if err := rows.Scan(&size, &count); err != nil {
			return nil, fmt.Errorf("failed to scan size count: %w", err)
		}
		sizes[size] = count
	}

	return sizes, rows.Err()
}
