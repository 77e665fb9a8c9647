package draw

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"golang.org/x/term"
)

// maxChunkSize keeps each write within a typical network packet so frames
// stream smoothly over SSH.
const maxChunkSize = 1400

// ChunkWriter collects one frame of terminal output and sends it on Flush
// in packet-sized writes. WriteAt positions are relative to the canvas.
type ChunkWriter struct {
	w       io.Writer
	pending []byte
	offCol  int
	offRow  int
}

// NewChunkWriter creates a ChunkWriter on w for a canvas offset by
// (offsetCol, offsetRow) cells.
func NewChunkWriter(w io.Writer, offsetCol, offsetRow int) *ChunkWriter {
	return &ChunkWriter{w: w, pending: make([]byte, 0, 8192), offCol: offsetCol, offRow: offsetRow}
}

// SetOffset updates the canvas offset after a resize.
func (cw *ChunkWriter) SetOffset(offsetCol, offsetRow int) {
	cw.offCol, cw.offRow = offsetCol, offsetRow
}

// Write appends raw output. Escape sequences in p are not offset.
func (cw *ChunkWriter) Write(p []byte) (int, error) {
	cw.pending = append(cw.pending, p...)
	return len(p), nil
}

// WriteString appends raw output.
func (cw *ChunkWriter) WriteString(s string) {
	cw.pending = append(cw.pending, s...)
}

// WriteAt appends s starting at the 1-based canvas cell (col, row).
func (cw *ChunkWriter) WriteAt(col, row int, s string) {
	cw.pending = append(cw.pending, "\033["...)
	cw.pending = strconv.AppendInt(cw.pending, int64(row+cw.offRow), 10)
	cw.pending = append(cw.pending, ';')
	cw.pending = strconv.AppendInt(cw.pending, int64(col+cw.offCol), 10)
	cw.pending = append(cw.pending, 'H')
	cw.pending = append(cw.pending, s...)
}

var _ io.Writer = (*ChunkWriter)(nil)

// Flush sends the pending output and starts a new frame. The frame is
// dropped even when a write fails.
func (cw *ChunkWriter) Flush() error {
	data := cw.pending
	cw.pending = cw.pending[:0]
	for len(data) > 0 {
		n := min(len(data), maxChunkSize)
		if _, err := cw.w.Write(data[:n]); err != nil {
			return err
		}
		data = data[n:]
	}
	return nil
}

// TermSizeFunc is a function that returns the terminal dimensions.
type TermSizeFunc func() (width, height int, err error)

// DefaultTermSizeFunc returns terminal size from os.Stdout.
var DefaultTermSizeFunc TermSizeFunc = func() (int, int, error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// ClearScreen clears the terminal and moves cursor to top-left.
func ClearScreen(w io.Writer) {
	fmt.Fprint(w, "\033[H\033[2J")
}

// HideCursor hides the terminal cursor.
func HideCursor(w io.Writer) {
	fmt.Fprint(w, "\033[?25l")
}

// ShowCursor shows the terminal cursor.
func ShowCursor(w io.Writer) {
	fmt.Fprint(w, "\033[?25h")
}

// TermSize returns the terminal dimensions reported by sizeFunc, falling
// back to 80x24 when the size is unknown.
func TermSize(sizeFunc TermSizeFunc) (width, height int) {
	if sizeFunc == nil {
		sizeFunc = DefaultTermSizeFunc
	}
	width, height, err := sizeFunc()
	if err != nil || width <= 0 || height <= 0 {
		return 80, 24
	}
	return width, height
}

// Render area limits. Larger terminals get a centered, bordered play area.
const (
	MaxRenderCols = 160
	MaxRenderRows = 60
)

// FitTermSize clamps the terminal to the max render resolution, keeping the
// field's aspect ratio (logical height is in sub-pixels), and returns the
// 0-based offsets that center the render area.
func FitTermSize(termWidth, termHeight int, logicalWidth, logicalHeight float64) (renderWidth, renderHeight, offsetCol, offsetRow int) {
	renderWidth = min(termWidth, MaxRenderCols)
	renderHeight = min(termHeight, MaxRenderRows)

	// Terminal cells are about twice as tall as wide, so one row holds two
	// sub-pixels and one column holds one.
	if logicalWidth > 0 && logicalHeight > 0 {
		wantRows := int(float64(renderWidth) * logicalHeight / logicalWidth / 2)
		if wantRows >= 1 && wantRows < renderHeight {
			renderHeight = wantRows
		} else {
			wantCols := int(float64(renderHeight) * 2 * logicalWidth / logicalHeight)
			if wantCols >= 1 && wantCols < renderWidth {
				renderWidth = wantCols
			}
		}
	}

	offsetCol = (termWidth - renderWidth) / 2
	offsetRow = (termHeight - renderHeight) / 2
	return renderWidth, renderHeight, offsetCol, offsetRow
}
