package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/hcube"
)

var (
	showRotate int
	showFlip   bool
)

var showCmd = &cobra.Command{
	Use:   "show <index>",
	Short: "Draw a piece and describe its symmetry",
	Long: `Draw the piece with the given index on its 5x5 chart.

The index may be decimal, hex (0x...) or binary (0b...). The piece can be
flipped and rotated before it is drawn; the flip is applied first.

Examples:
  hcube show 0b10
  hcube show 0x1111
  hcube show 3 --rotate 1 --flip`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().IntVarP(&showRotate, "rotate", "r", 0, "Clockwise quarter turns to apply (negative for counter-clockwise)")
	showCmd.Flags().BoolVarP(&showFlip, "flip", "f", false, "Flip the piece before rotating")
}

func runShow(cmd *cobra.Command, args []string) error {
	p, err := hcube.ParseIndex(args[0])
	if err != nil {
		return err
	}

	p = p.Transform(hcube.NewSymmetry(showFlip, showRotate))

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, renderChart(p))
	fmt.Fprintln(out, describePiece(p))
	return nil
}

// describePiece summarises a piece's encoding and symmetry class.
func describePiece(p hcube.Piece) string {
	var b strings.Builder
	canonical := p.Canonical()

	fmt.Fprintf(&b, "%s %d (%#06x, %#018b)\n", labelStyle.Render("Index:"), p.Index(), p.Index(), p.Index())
	fmt.Fprintf(&b, "%s %d\n", labelStyle.Render("Cells:"), p.Size())
	fmt.Fprintf(&b, "%s %d", labelStyle.Render("Canonical:"), canonical.Index())
	if p == canonical {
		b.WriteString(statusStyle.Render(" (this piece)"))
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s %d\n", labelStyle.Render("Orbit size:"), len(p.Orbit()))

	var names []string
	for _, s := range p.Stabilizer() {
		names = append(names, s.String())
	}
	fmt.Fprintf(&b, "%s %s", labelStyle.Render("Fixed by:"), strings.Join(names, ", "))
	return b.String()
}
