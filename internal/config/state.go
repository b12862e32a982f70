// Package config manages the hcube state directory and state file.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// DirName is the state directory created under the user's home directory.
const DirName = ".hcube"

// State is the persisted CLI state.
type State struct {
	DBPath    string `json:"db_path,omitempty"`
	LastRunID string `json:"last_run_id,omitempty"`
}

// StateFile manages the state file on disk.
type StateFile struct {
	path  string
	state State
}

// DefaultDir returns ~/.hcube, creating it if needed.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	dir := filepath.Join(home, DirName)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return dir, nil
}

// DefaultStatePath returns the default state file path.
func DefaultStatePath() (string, error) {
	dir, err := DefaultDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "state.json"), nil
}

// NewStateFile loads the state file at path. A missing file yields an
// empty state.
func NewStateFile(path string) (*StateFile, error) {
	sf := &StateFile{path: path}

	if err := sf.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	return sf, nil
}

// NewDefaultStateFile loads the state file from the default path.
func NewDefaultStateFile() (*StateFile, error) {
	path, err := DefaultStatePath()
	if err != nil {
		return nil, err
	}
	return NewStateFile(path)
}

// Load reads the state from disk.
func (sf *StateFile) Load() error {
	data, err := os.ReadFile(sf.path)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(data, &sf.state); err != nil {
		return fmt.Errorf("failed to parse state file %s: %w", sf.path, err)
	}
	return nil
}

// Save writes the state to disk.
func (sf *StateFile) Save() error {
	data, err := json.MarshalIndent(sf.state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(sf.path), 0755); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}

	if err := os.WriteFile(sf.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write state file: %w", err)
	}

	return nil
}

// Path returns the state file location.
func (sf *StateFile) Path() string {
	return sf.path
}

// State returns a copy of the current state.
func (sf *StateFile) State() State {
	return sf.state
}

// SetDBPath records the catalog database path.
func (sf *StateFile) SetDBPath(path string) error {
	sf.state.DBPath = path
	return sf.Save()
}

// SetLastRun records the most recent catalog run.
func (sf *StateFile) SetLastRun(runID string) error {
	sf.state.LastRunID = runID
	return sf.Save()
}

// ClearLastRun forgets the most recent catalog run.
func (sf *StateFile) ClearLastRun() error {
	sf.state.LastRunID = ""
	return sf.Save()
}

// DBPath returns the recorded catalog database path.
func (sf *StateFile) DBPath() string {
	return sf.state.DBPath
}

// LastRunID returns the recorded catalog run.
func (sf *StateFile) LastRunID() string {
	return sf.state.LastRunID
}
