package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/SeamusWaldron/hcube"
	"github.com/SeamusWaldron/hcube/internal/ring"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	labelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	filledStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("238"))

	chartStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1)
)

// renderChart draws a piece as a bordered 5x5 grid of cells.
func renderChart(p hcube.Piece) string {
	var rows []string
	for row := 0; row < ring.ChartSize; row++ {
		var cells []string
		for col := 0; col < ring.ChartSize; col++ {
			pos, ok := ring.PositionAt(row, col)
			switch {
			case !ok:
				cells = append(cells, "  ")
			case p.Has(pos):
				cells = append(cells, filledStyle.Render("██"))
			default:
				cells = append(cells, emptyStyle.Render("··"))
			}
		}
		rows = append(rows, strings.Join(cells, ""))
	}
	return chartStyle.Render(strings.Join(rows, "\n"))
}

// renderCaptioned draws a chart with a caption underneath.
func renderCaptioned(p hcube.Piece, caption string) string {
	return lipgloss.JoinVertical(lipgloss.Center, renderChart(p), statusStyle.Render(caption))
}

// renderRow lays out several charts side by side.
func renderRow(charts []string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, charts...)
}
