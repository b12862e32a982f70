package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/hcube"
)

var orbitCmd = &cobra.Command{
	Use:   "orbit <index>",
	Short: "Show every rotation and flip of a piece",
	Long: `Draw the piece under each of the eight symmetries of the square and
list the distinct pieces they produce.

Examples:
  hcube orbit 3
  hcube orbit 0x0101`,
	Args: cobra.ExactArgs(1),
	RunE: runOrbit,
}

func init() {
	rootCmd.AddCommand(orbitCmd)
}

func runOrbit(cmd *cobra.Command, args []string) error {
	p, err := hcube.ParseIndex(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	symmetries := hcube.Symmetries()

	// Two rows of four: plain rotations, then flipped rotations.
	for start := 0; start < len(symmetries); start += 4 {
		var charts []string
		for _, s := range symmetries[start : start+4] {
			q := p.Transform(s)
			charts = append(charts, renderCaptioned(q, fmt.Sprintf("%s = %d", s, q.Index())))
		}
		fmt.Fprintln(out, renderRow(charts))
	}

	orbit := p.Orbit()
	fmt.Fprintf(out, "%s %d distinct piece(s):", labelStyle.Render("Orbit:"), len(orbit))
	for _, q := range orbit {
		fmt.Fprintf(out, " %d", q.Index())
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "%s %d\n", labelStyle.Render("Canonical:"), orbit[0].Index())
	return nil
}
