// Package export writes piece lists in text, JSON and zstd-compressed
// binary form.
package export

import (
	"bufio"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/zstd"

	"github.com/SeamusWaldron/hcube"
)

// Format names an export encoding.
type Format string

const (
	FormatText   Format = "txt"  // One decimal index per line
	FormatJSON   Format = "json" // Array of piece objects
	FormatBinary Format = "zst"  // zstd-compressed little-endian uint16 indices
)

// ErrUnknownFormat is returned for a format name that is not supported.
var ErrUnknownFormat = errors.New("export: unknown format")

// Formats lists the supported formats.
func Formats() []Format {
	return []Format{FormatText, FormatJSON, FormatBinary}
}

// ParseFormat resolves a case-insensitive format name.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats() {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// PieceJSON is the JSON form of a piece.
type PieceJSON struct {
	Index     uint16 `json:"index"`
	OrbitSize int    `json:"orbit_size"`
	Cells     []int  `json:"cells"`
}

// NewPieceJSON describes p for JSON output.
func NewPieceJSON(p hcube.Piece) PieceJSON {
	cells := make([]int, 0, p.Size())
	for pos := 0; pos < hcube.Positions; pos++ {
		if p.Has(pos) {
			cells = append(cells, pos)
		}
	}
	return PieceJSON{
		Index:     p.Index(),
		OrbitSize: len(p.Orbit()),
		Cells:     cells,
	}
}

// Write encodes pieces to w in the given format.
func Write(w io.Writer, pieces []hcube.Piece, format Format) error {
	switch format {
	case FormatText:
		return writeText(w, pieces)
	case FormatJSON:
		return writeJSON(w, pieces)
	case FormatBinary:
		return writeBinary(w, pieces)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func writeText(w io.Writer, pieces []hcube.Piece) error {
	bw := bufio.NewWriter(w)
	for _, p := range pieces {
		if _, err := fmt.Fprintln(bw, p.Index()); err != nil {
			return fmt.Errorf("failed to write piece %d: %w", p.Index(), err)
		}
	}
	return bw.Flush()
}

func writeJSON(w io.Writer, pieces []hcube.Piece) error {
	out := make([]PieceJSON, len(pieces))
	for i, p := range pieces {
		out[i] = NewPieceJSON(p)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

func writeBinary(w io.Writer, pieces []hcube.Piece) error {
	zw, err := zstd.NewWriter(w)
	if err != nil {
		return fmt.Errorf("failed to create zstd writer: %w", err)
	}

	buf := make([]byte, 2*len(pieces))
	for i, p := range pieces {
		binary.LittleEndian.PutUint16(buf[2*i:], p.Index())
	}

	if _, err := zw.Write(buf); err != nil {
		zw.Close()
		return fmt.Errorf("failed to write compressed pieces: %w", err)
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("failed to finish zstd stream: %w", err)
	}
	return nil
}

// ReadBinary decodes a stream produced by Write with FormatBinary.
func ReadBinary(r io.Reader) ([]hcube.Piece, error) {
	zr, err := zstd.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd reader: %w", err)
	}
	defer zr.Close()

	data, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress pieces: %w", err)
	}
	if len(data)%2 != 0 {
		return nil, fmt.Errorf("export: truncated piece stream (%d bytes)", len(data))
	}

	pieces := make([]hcube.Piece, len(data)/2)
	for i := range pieces {
		pieces[i] = hcube.FromIndex(binary.LittleEndian.Uint16(data[2*i:]))
	}
	return pieces, nil
}
