package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/SeamusWaldron/hcube"
)

// Run is one catalog build.
type Run struct {
	RunID         string
	CreatedAt     time.Time
	RawCount      int
	DistinctCount int
	AppVersion    *string
}

// RunRepository provides CRUD operations for runs.
type RunRepository struct {
	db *DB
}

// NewRunRepository creates a new run repository.
func NewRunRepository(db *DB) *RunRepository {
	return &RunRepository{db: db}
}

// Create records a new run and returns its ID.
func (r *RunRepository) Create(rawCount, distinctCount int, appVersion string) (string, error) {
	var id string
	err := r.db.Transaction(func(tx *sql.Tx) error {
		var err error
		id, err = r.CreateTx(tx, rawCount, distinctCount, appVersion)
		return err
	})
	return id, err
}

// CreateTx records a new run inside tx and returns its ID.
func (r *RunRepository) CreateTx(tx *sql.Tx, rawCount, distinctCount int, appVersion string) (string, error) {
	id := uuid.New().String()
	createdAt := time.Now().UTC()

	var appVersionPtr *string
	if appVersion != "" {
		appVersionPtr = &appVersion
	}

	_, err := tx.Exec(`
		INSERT INTO runs (run_id, created_at, raw_count, distinct_count, app_version)
		VALUES (?, ?, ?, ?, ?)
	`, id, createdAt.Format(time.RFC3339), rawCount, distinctCount, appVersionPtr)

	if err != nil {
		return "", fmt.Errorf("failed to create run: %w", err)
	}

	return id, nil
}

// StoreRun records a run together with the representative of every orbit.
// Either both the run and all of its pieces are stored, or nothing is.
func (r *RunRepository) StoreRun(orbits []hcube.Orbit, appVersion string) (string, error) {
	raw := 0
	for _, o := range orbits {
		raw += o.Size()
	}

	pieces := NewPieceRepository(r.db)

	var id string
	err := r.db.Transaction(func(tx *sql.Tx) error {
		var err error
		id, err = r.CreateTx(tx, raw, len(orbits), appVersion)
		if err != nil {
			return err
		}
		return pieces.InsertOrbitsTx(tx, id, orbits)
	})
	if err != nil {
		return "", err
	}
	return id, nil
}

// Get retrieves a run by ID. It returns nil when the run does not exist.
func (r *RunRepository) Get(runID string) (*Run, error) {
	row := r.db.QueryRow(`
		SELECT run_id, created_at, raw_count, distinct_count, app_version
		FROM runs
		WHERE run_id = ?
	`, runID)

	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	return run, nil
}

// GetLast retrieves the most recent run, or nil when there is none.
func (r *RunRepository) GetLast() (*Run, error) {
	row := r.db.QueryRow(`
		SELECT run_id, created_at, raw_count, distinct_count, app_version
		FROM runs
		ORDER BY created_at DESC, rowid DESC
		LIMIT 1
	`)

	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get last run: %w", err)
	}
	return run, nil
}

// List retrieves recent runs, newest first.
func (r *RunRepository) List(limit int) ([]Run, error) {
	rows, err := r.db.Query(`
		SELECT run_id, created_at, raw_count, distinct_count, app_version
		FROM runs
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?
	`, limit)

	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, *run)
	}

	return runs, rows.Err()
}

// Delete deletes a run and its pieces.
func (r *RunRepository) Delete(runID string) error {
	_, err := r.db.Exec("DELETE FROM runs WHERE run_id = ?", runID)
	if err != nil {
		return fmt.Errorf("failed to delete run: %w", err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(s scanner) (*Run, error) {
	var run Run
	var createdAtStr string

	err := s.Scan(&run.RunID, &createdAtStr, &run.RawCount, &run.DistinctCount, &run.AppVersion)
	if err != nil {
		return nil, err
	}

	run.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", err)
	}

	return &run, nil
}
