package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/hcube"
	"github.com/SeamusWaldron/hcube/internal/export"
)

// resetFlags restores every flag in the command tree to its default. Flag
// values live in package variables and would otherwise carry over from one
// Execute call to the next.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// run executes the root command with fresh flags and returns its stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

// execute is run with a fresh home directory.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	return run(t, args...)
}

func TestShow(t *testing.T) {
	out, err := execute(t, "show", "0b1")
	require.NoError(t, err)
	assert.Contains(t, out, "1 (0x0001, 0b0000000000000001)")
	assert.Contains(t, out, "Orbit size: 4")
	assert.Contains(t, out, "(this piece)")
}

func TestShowRotated(t *testing.T) {
	out, err := execute(t, "show", "0b10", "--rotate", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "32 (0x0020")
	assert.NotContains(t, out, "(this piece)")
}

func TestShowFlipped(t *testing.T) {
	out, err := execute(t, "show", "0b10", "--flip")
	require.NoError(t, err)
	assert.Contains(t, out, "32768 (0x8000")
}

func TestShowInvalidIndex(t *testing.T) {
	_, err := execute(t, "show", "70000")
	assert.ErrorIs(t, err, hcube.ErrInvalidIndex)
}

func TestOrbit(t *testing.T) {
	out, err := execute(t, "orbit", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "8 distinct piece(s): 3 24 48 384 768 6144 12288 32769")
	assert.Contains(t, out, "flip+rot270")
}

func TestEnumerateDistinctText(t *testing.T) {
	out, err := execute(t, "enumerate", "--distinct")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, hcube.DistinctPieceCount)
	assert.Equal(t, "0", lines[0])
	assert.Equal(t, "65535", lines[len(lines)-1])
}

func TestEnumerateRawToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "raw.zst")
	_, err := execute(t, "enumerate", "--format", "zst", "-o", path)
	require.NoError(t, err)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	pieces, err := export.ReadBinary(f)
	require.NoError(t, err)
	require.Len(t, pieces, hcube.RawPieceCount)
	assert.Equal(t, uint16(0xFFFF), pieces[len(pieces)-1].Index())
}

func TestEnumerateBadFormat(t *testing.T) {
	_, err := execute(t, "enumerate", "--format", "xml")
	assert.ErrorIs(t, err, export.ErrUnknownFormat)
}

func TestStats(t *testing.T) {
	out, err := execute(t, "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "Distinct pieces:  8484")
	assert.Contains(t, out, "Raw pieces:       65536")
	assert.Contains(t, out, "  8: 7920")
}

func TestFlagsDoNotLeakBetweenRuns(t *testing.T) {
	out, err := execute(t, "show", "0b10", "--flip", "--rotate", "2")
	require.NoError(t, err)
	assert.NotContains(t, out, "2 (0x0002")

	out, err = execute(t, "show", "0b10")
	require.NoError(t, err)
	assert.Contains(t, out, "2 (0x0002", "flags from the previous run must not apply")
}

func TestSummarize(t *testing.T) {
	s := summarize(hcube.Orbits())
	assert.Equal(t, hcube.RawPieceCount, s.Raw)
	assert.Equal(t, hcube.DistinctPieceCount, s.Distinct)
	assert.Equal(t, 8+28+528, s.SymmetricCount)
	assert.InDelta(t, float64(hcube.RawPieceCount)/float64(hcube.DistinctPieceCount), s.MeanOrbitSize, 1e-9)
	assert.Equal(t, 1, s.CellCounts[0])
	assert.Equal(t, 1, s.CellCounts[16])

	empty := summarize(nil)
	assert.Zero(t, empty.MeanOrbitSize)
}

func TestCatalogLifecycle(t *testing.T) {
	dbFile := filepath.Join(t.TempDir(), "catalog.db")
	t.Setenv("HOME", t.TempDir())

	catalog := func(args ...string) string {
		out, err := run(t, append(args, "--db", dbFile)...)
		require.NoError(t, err, "hcube %v", args)
		return out
	}

	out := catalog("catalog", "build")
	assert.Contains(t, out, "Stored 8484 canonical pieces covering 65536 raw pieces")

	out = catalog("catalog", "list", "--limit", "5")
	assert.Contains(t, out, "* ")
	assert.Contains(t, out, "8484 distinct / 65536 raw")

	out = catalog("catalog", "show", "--last", "--size", "1")
	assert.Contains(t, out, "orbit size 8: 7920")
	assert.Contains(t, out, "8 piece(s) with orbit size 1")

	out = catalog("catalog", "delete", "--last")
	assert.Contains(t, out, "Deleted run")

	out = catalog("catalog", "list", "--limit", "5")
	assert.Contains(t, out, "No catalog runs")
}

func TestCatalogShowWithoutRun(t *testing.T) {
	dbFile := filepath.Join(t.TempDir(), "empty.db")
	_, err := execute(t, "catalog", "show", "--last", "--db", dbFile)
	assert.ErrorIs(t, err, errNoRun)
}

func key(s string) tea.KeyMsg {
	switch s {
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestBrowseModelNavigation(t *testing.T) {
	pieces := hcube.Distinct()
	m := newBrowseModel(pieces, hcube.FromIndex(0b10))

	// 0b10 is canonicalised to 0b1 (index 1), the second canonical piece.
	assert.Equal(t, 1, m.cursor)
	assert.Equal(t, hcube.FromIndex(1), m.current())

	m.Update(key("right"))
	assert.Equal(t, 2, m.cursor)

	m.Update(key("left"))
	m.Update(key("left"))
	m.Update(key("left"))
	assert.Equal(t, len(pieces)-1, m.cursor, "cursor should wrap backwards")

	m.Update(key("right"))
	assert.Equal(t, 0, m.cursor, "cursor should wrap forwards")
}

func TestBrowseModelTransforms(t *testing.T) {
	m := newBrowseModel(hcube.Distinct(), hcube.FromIndex(3))
	start := m.current()
	require.Equal(t, hcube.FromIndex(3), start)

	m.Update(key("r"))
	assert.Equal(t, start.RotateClockwise(), m.current())

	m.Update(key("R"))
	assert.Equal(t, start, m.current())

	m.Update(key("f"))
	assert.Equal(t, start.Flip(), m.current())

	m.Update(key("r"))
	assert.Equal(t, start.Flip().RotateClockwise(), m.current())

	m.Update(key("c"))
	assert.Equal(t, start, m.current())

	m.Update(key("f"))
	m.Update(key("right"))
	assert.Equal(t, hcube.Identity, m.view, "moving resets the orientation")
}

func TestBrowseModelViewAndQuit(t *testing.T) {
	m := newBrowseModel(hcube.Distinct(), hcube.FromIndex(0))
	view := m.View()
	assert.Contains(t, view, "Piece 1/8484")
	assert.Contains(t, view, "orientation: identity")

	_, cmd := m.Update(key("q"))
	require.NotNil(t, cmd)
	assert.True(t, m.quitting)
	assert.Equal(t, "Bye.\n", m.View())
}
