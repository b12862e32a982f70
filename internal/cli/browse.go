package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/hcube"
)

var browseStart string

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Interactively step through the canonical pieces",
	Long: `Open a terminal browser over the canonical pieces.

Keyboard shortcuts:
  right/l, left/h  - Next / previous canonical piece
  pgdown, pgup     - Jump 100 pieces
  r, R             - Rotate clockwise / counter-clockwise
  f                - Flip
  c                - Reset to the canonical orientation
  q/Esc            - Quit`,
	Args: cobra.NoArgs,
	RunE: runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
	browseCmd.Flags().StringVar(&browseStart, "start", "0", "Start at the canonical piece of this index")
}

func runBrowse(cmd *cobra.Command, args []string) error {
	start, err := hcube.ParseIndex(browseStart)
	if err != nil {
		return err
	}

	model := newBrowseModel(hcube.Distinct(hcube.WithLogger(logger.Named("hcube.enumerate"))), start)
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("browse error: %w", err)
	}
	return nil
}

// browseModel is the bubbletea model for the piece browser.
type browseModel struct {
	pieces   []hcube.Piece
	cursor   int
	view     hcube.Symmetry // Orientation applied to the current piece
	quitting bool
}

func newBrowseModel(pieces []hcube.Piece, start hcube.Piece) *browseModel {
	m := &browseModel{pieces: pieces, view: hcube.Identity}
	canonical := start.Canonical()
	for i, p := range pieces {
		if p == canonical {
			m.cursor = i
			break
		}
	}
	return m
}

func (m *browseModel) Init() tea.Cmd {
	return nil
}

// current returns the selected piece in its current orientation.
func (m *browseModel) current() hcube.Piece {
	if len(m.pieces) == 0 {
		return hcube.FromIndex(0)
	}
	return m.pieces[m.cursor].Transform(m.view)
}

func (m *browseModel) move(delta int) {
	if len(m.pieces) == 0 {
		return
	}
	m.cursor = (m.cursor + delta) % len(m.pieces)
	if m.cursor < 0 {
		m.cursor += len(m.pieces)
	}
	m.view = hcube.Identity
}

func (m *browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "esc", "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "right", "l", "n":
		m.move(1)
	case "left", "h", "p":
		m.move(-1)
	case "pgdown":
		m.move(100)
	case "pgup":
		m.move(-100)
	case "r":
		m.view = m.view.Then(hcube.Rot90)
	case "R":
		m.view = m.view.Then(hcube.Rot270)
	case "f":
		m.view = m.view.Then(hcube.Flip)
	case "c":
		m.view = hcube.Identity
	}

	return m, nil
}

func (m *browseModel) View() string {
	if m.quitting {
		return "Bye.\n"
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Happy Cube pieces"))
	b.WriteString("\n\n")
	b.WriteString(statusStyle.Render(fmt.Sprintf("Piece %d/%d", m.cursor+1, len(m.pieces))))
	b.WriteString(fmt.Sprintf("  orientation: %s\n", m.view))
	b.WriteString(renderChart(m.current()))
	b.WriteString("\n")
	b.WriteString(describePiece(m.current()))
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("←/→ piece  pgup/pgdn jump  r/R rotate  f flip  c reset  q quit"))
	b.WriteString("\n")

	return b.String()
}
