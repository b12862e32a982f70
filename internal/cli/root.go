// Package cli implements the command-line interface for hcube.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/SeamusWaldron/hcube/internal/config"
	"github.com/SeamusWaldron/hcube/internal/storage"
)

const version = "0.1.0"

var (
	// Global flags
	dbPath  string
	verbose bool

	logger = zap.NewNop()
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "hcube",
	Short: "Happy Cube piece explorer",
	Long: `hcube - explore the space of Happy Cube puzzle pieces.

A piece is a 5x5 foam square with a ring of sixteen optional sub-cubes.
hcube enumerates all 65536 ring encodings, reduces them to one canonical
piece per rotation/flip class, and keeps a SQLite catalog of the result.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := newLogger(verbose)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		logger = l
		return nil
	},
}

// Execute runs the root command.
func Execute() {
	defer func() { _ = logger.Sync() }()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Catalog database path (default: ~/.hcube/catalog.db)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

// newLogger logs at debug level to stderr when verbose, warnings otherwise.
func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	cfg.Encoding = "console"
	return cfg.Build()
}

// resolveDBPath picks the --db flag, then the state file, then the default.
func resolveDBPath(state *config.StateFile) (string, error) {
	if dbPath != "" {
		return dbPath, nil
	}
	if state != nil && state.DBPath() != "" {
		return state.DBPath(), nil
	}
	return storage.DefaultDBPath()
}

// openDB opens and migrates the catalog database.
func openDB(state *config.StateFile) (*storage.DB, error) {
	path, err := resolveDBPath(state)
	if err != nil {
		return nil, err
	}

	db, err := storage.Open(path)
	if err != nil {
		return nil, err
	}

	if err := db.MigrateUp(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	logger.Debug("opened catalog", zap.String("path", path))
	return db, nil
}
