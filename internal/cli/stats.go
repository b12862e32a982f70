package cli

import (
	"fmt"
	"io"
	"slices"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/stat"

	"github.com/SeamusWaldron/hcube"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarise the symmetry classes of the piece space",
	Long: `Reduce all 65536 raw pieces to symmetry classes and report the number
of classes, how large they are, and how many sub-cubes the canonical
pieces carry.`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

// Summary describes a set of orbits.
type Summary struct {
	Raw            int
	Distinct       int
	OrbitSizes     map[int]int
	MeanOrbitSize  float64
	StdDevOrbit    float64
	CellCounts     map[int]int
	MeanCellCount  float64
	StdDevCells    float64
	SymmetricCount int
}

// summarize computes orbit and cell-count statistics.
func summarize(orbits []hcube.Orbit) Summary {
	sizes := make([]float64, len(orbits))
	cells := make([]float64, len(orbits))
	s := Summary{
		Distinct:   len(orbits),
		OrbitSizes: hcube.OrbitSizes(orbits),
		CellCounts: make(map[int]int),
	}

	for i, o := range orbits {
		s.Raw += o.Size()
		sizes[i] = float64(o.Size())
		n := o.Representative.Size()
		cells[i] = float64(n)
		s.CellCounts[n]++
		if o.Symmetric() {
			s.SymmetricCount++
		}
	}

	if len(orbits) > 0 {
		s.MeanOrbitSize, s.StdDevOrbit = stat.MeanStdDev(sizes, nil)
		s.MeanCellCount, s.StdDevCells = stat.MeanStdDev(cells, nil)
	}
	return s
}

func runStats(cmd *cobra.Command, args []string) error {
	orbits := hcube.Orbits(hcube.WithLogger(logger.Named("hcube.enumerate")))
	printSummary(cmd.OutOrStdout(), summarize(orbits))
	return nil
}

func printSummary(out io.Writer, s Summary) {
	fmt.Fprintln(out, titleStyle.Render("Happy Cube piece space"))
	fmt.Fprintf(out, "Raw pieces:       %d\n", s.Raw)
	fmt.Fprintf(out, "Distinct pieces:  %d\n", s.Distinct)
	fmt.Fprintf(out, "Symmetric pieces: %d\n", s.SymmetricCount)
	fmt.Fprintf(out, "Orbit size:       mean %.3f, stddev %.3f\n", s.MeanOrbitSize, s.StdDevOrbit)
	fmt.Fprintf(out, "Cells per piece:  mean %.3f, stddev %.3f\n", s.MeanCellCount, s.StdDevCells)

	fmt.Fprintln(out)
	fmt.Fprintln(out, labelStyle.Render("Orbits by size"))
	for _, size := range sortedKeys(s.OrbitSizes) {
		fmt.Fprintf(out, "  %d: %d\n", size, s.OrbitSizes[size])
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, labelStyle.Render("Distinct pieces by cell count"))
	for _, n := range sortedKeys(s.CellCounts) {
		fmt.Fprintf(out, "  %2d: %d\n", n, s.CellCounts[n])
	}
}

func sortedKeys(m map[int]int) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
