package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/SeamusWaldron/hcube"
	"github.com/SeamusWaldron/hcube/internal/config"
	"github.com/SeamusWaldron/hcube/internal/storage"
)

var (
	catalogRunID string
	catalogLast  bool
	catalogSize  int
	catalogLimit int
)

var errNoRun = errors.New("no catalog run found (run 'hcube catalog build' first)")

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage the SQLite catalog of canonical pieces",
	Long:  `Build, list and inspect catalog runs stored in the SQLite database.`,
}

var catalogBuildCmd = &cobra.Command{
	Use:   "build",
	Short: "Enumerate canonical pieces and store them as a new run",
	Args:  cobra.NoArgs,
	RunE:  runCatalogBuild,
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog runs, newest first",
	Args:  cobra.NoArgs,
	RunE:  runCatalogList,
}

var catalogShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show a catalog run",
	Long: `Show the orbit-size breakdown of a catalog run, and optionally the
pieces whose orbit has a given size.

Examples:
  hcube catalog show --last
  hcube catalog show --id <run_id> --size 1`,
	Args: cobra.NoArgs,
	RunE: runCatalogShow,
}

var catalogDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a catalog run and its pieces",
	Args:  cobra.NoArgs,
	RunE:  runCatalogDelete,
}

func init() {
	rootCmd.AddCommand(catalogCmd)
	catalogCmd.AddCommand(catalogBuildCmd, catalogListCmd, catalogShowCmd, catalogDeleteCmd)

	catalogListCmd.Flags().IntVar(&catalogLimit, "limit", 20, "Maximum number of runs to list")

	for _, c := range []*cobra.Command{catalogShowCmd, catalogDeleteCmd} {
		c.Flags().StringVar(&catalogRunID, "id", "", "Run ID")
		c.Flags().BoolVar(&catalogLast, "last", false, "Use the most recent run")
	}
	catalogShowCmd.Flags().IntVar(&catalogSize, "size", 0, "List pieces whose orbit has this size")
}

func runCatalogBuild(cmd *cobra.Command, args []string) error {
	state, err := config.NewDefaultStateFile()
	if err != nil {
		return fmt.Errorf("failed to load state: %w", err)
	}

	db, err := openDB(state)
	if err != nil {
		return err
	}
	defer db.Close()

	start := time.Now()
	orbits := hcube.Orbits(hcube.WithLogger(logger.Named("hcube.enumerate")))

	raw := 0
	for _, o := range orbits {
		raw += o.Size()
	}

	runID, err := storage.NewRunRepository(db).StoreRun(orbits, version)
	if err != nil {
		return err
	}

	logger.Named("hcube.storage").Info("catalog run stored",
		zap.String("run_id", runID),
		zap.Int("pieces", len(orbits)),
		zap.Duration("elapsed", time.Since(start)),
	)

	if err := state.SetDBPath(db.Path()); err != nil {
		return err
	}
	if err := state.SetLastRun(runID); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Run:      %s\n", runID)
	fmt.Fprintf(out, "Database: %s\n", db.Path())
	fmt.Fprintf(out, "Stored %d canonical pieces covering %d raw pieces\n", len(orbits), raw)
	return nil
}

func runCatalogList(cmd *cobra.Command, args []string) error {
	state, err := config.NewDefaultStateFile()
	if err != nil {
		return fmt.Errorf("failed to load state: %w", err)
	}

	db, err := openDB(state)
	if err != nil {
		return err
	}
	defer db.Close()

	runs, err := storage.NewRunRepository(db).List(catalogLimit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(runs) == 0 {
		fmt.Fprintln(out, "No catalog runs. Build one with: hcube catalog build")
		return nil
	}

	for _, r := range runs {
		marker := " "
		if r.RunID == state.LastRunID() {
			marker = "*"
		}
		fmt.Fprintf(out, "%s %s  %s  %d distinct / %d raw\n",
			marker, r.RunID, r.CreatedAt.Format(time.RFC3339), r.DistinctCount, r.RawCount)
	}
	return nil
}

// selectRun resolves --id or --last to a stored run.
func selectRun(db *storage.DB, state *config.StateFile) (*storage.Run, error) {
	runs := storage.NewRunRepository(db)

	var run *storage.Run
	var err error
	switch {
	case catalogRunID != "":
		run, err = runs.Get(catalogRunID)
	case catalogLast:
		run, err = runs.GetLast()
	case state.LastRunID() != "":
		run, err = runs.Get(state.LastRunID())
	default:
		return nil, fmt.Errorf("specify --id or --last")
	}

	if err != nil {
		return nil, err
	}
	if run == nil {
		return nil, errNoRun
	}
	return run, nil
}

func runCatalogShow(cmd *cobra.Command, args []string) error {
	state, err := config.NewDefaultStateFile()
	if err != nil {
		return fmt.Errorf("failed to load state: %w", err)
	}

	db, err := openDB(state)
	if err != nil {
		return err
	}
	defer db.Close()

	run, err := selectRun(db, state)
	if err != nil {
		return err
	}

	pieces := storage.NewPieceRepository(db)
	sizes, err := pieces.CountBySize(run.RunID)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s %s\n", labelStyle.Render("Run:"), run.RunID)
	fmt.Fprintf(out, "%s %s\n", labelStyle.Render("Created:"), run.CreatedAt.Format(time.RFC3339))
	if run.AppVersion != nil {
		fmt.Fprintf(out, "%s %s\n", labelStyle.Render("Version:"), *run.AppVersion)
	}
	fmt.Fprintf(out, "%s %d distinct / %d raw\n", labelStyle.Render("Pieces:"), run.DistinctCount, run.RawCount)
	for _, size := range sortedKeys(sizes) {
		fmt.Fprintf(out, "  orbit size %d: %d\n", size, sizes[size])
	}

	if catalogSize <= 0 {
		return nil
	}

	records, err := pieces.GetByOrbitSize(run.RunID, catalogSize)
	if err != nil {
		return err
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "%s %d piece(s) with orbit size %d\n", labelStyle.Render("Pieces:"), len(records), catalogSize)
	for _, r := range records {
		fmt.Fprintf(out, "  %5d  %2d cells\n", r.PieceIndex, r.CellCount)
	}
	return nil
}

func runCatalogDelete(cmd *cobra.Command, args []string) error {
	state, err := config.NewDefaultStateFile()
	if err != nil {
		return fmt.Errorf("failed to load state: %w", err)
	}

	db, err := openDB(state)
	if err != nil {
		return err
	}
	defer db.Close()

	run, err := selectRun(db, state)
	if err != nil {
		return err
	}

	if err := storage.NewRunRepository(db).Delete(run.RunID); err != nil {
		return err
	}
	if run.RunID == state.LastRunID() {
		if err := state.ClearLastRun(); err != nil {
			return err
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Deleted run %s\n", run.RunID)
	return nil
}
