package draw

import (
	"fmt"
	"io"
	"math"
	"strings"
)

// Cell glyphs. Each terminal cell shows two stacked dots.
const (
	BlockFull      = '█'
	BlockEmpty     = ' '
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// Canvas maps a logical field onto terminal cells at twice the vertical
// resolution. Render writes only the cells that changed since the last call.
type Canvas struct {
	cols, rows int
	dots       []bool // cols * rows*2, row-major
	shown      []rune // Glyph last written per cell; 0 means unknown

	fieldW, fieldH float64
	sx, sy         float64 // Dots per field unit

	offCol, offRow int // 0-based terminal cells skipped before the canvas

	out strings.Builder
}

// NewScaledCanvas creates a cols x rows canvas showing a fieldW x fieldH field.
func NewScaledCanvas(cols, rows int, fieldW, fieldH float64) *Canvas {
	c := &Canvas{fieldW: fieldW, fieldH: fieldH}
	c.Resize(cols, rows)
	return c
}

// Resize changes the terminal area, keeping the field size.
func (c *Canvas) Resize(cols, rows int) {
	if cols != c.cols || rows != c.rows || c.dots == nil {
		c.cols, c.rows = cols, rows
		c.dots = make([]bool, cols*rows*2)
		c.shown = make([]rune, cols*rows)
	}
	c.sx = float64(cols) / c.fieldW
	c.sy = float64(rows*2) / c.fieldH
}

// SetOffset places the canvas; (col, row) cells are skipped before it.
func (c *Canvas) SetOffset(col, row int) {
	c.offCol, c.offRow = col, row
}

func (c *Canvas) OffsetCol() int { return c.offCol }
func (c *Canvas) OffsetRow() int { return c.offRow }

// TerminalWidth returns the canvas width in cells.
func (c *Canvas) TerminalWidth() int { return c.cols }

// TerminalHeight returns the canvas height in cells.
func (c *Canvas) TerminalHeight() int { return c.rows }

// Clear empties the frame. Cells already on the terminal are blanked by
// the next Render.
func (c *Canvas) Clear() {
	clear(c.dots)
}

// ForceRedraw makes the next Render write every cell.
func (c *Canvas) ForceRedraw() {
	clear(c.shown)
}

// plot sets one dot; out-of-range dots are dropped.
func (c *Canvas) plot(x, y int) {
	if x < 0 || x >= c.cols || y < 0 || y >= c.rows*2 {
		return
	}
	c.dots[y*c.cols+x] = true
}

// span plots dots x0..x1 on dot row y.
func (c *Canvas) span(y, x0, x1 int) {
	x0, x1 = max(x0, 0), min(x1, c.cols-1)
	for x := x0; x <= x1; x++ {
		c.plot(x, y)
	}
}

// dotRange converts a field interval [from, to) to the inclusive dot range
// it covers. Anything non-empty covers at least one dot.
func dotRange(from, to, scale float64) (int, int) {
	lo := int(math.Floor(from * scale))
	hi := int(math.Ceil(to*scale)) - 1
	return lo, max(hi, lo)
}

// HLine draws a horizontal line at field height y from x0 to x1.
func (c *Canvas) HLine(y, x0, x1 float64) {
	row := min(int(y*c.sy), c.rows*2-1)
	lo, hi := dotRange(x0, x1, c.sx)
	c.span(row, lo, hi)
}

// FillRect fills the field rectangle with top-left (x, y).
func (c *Canvas) FillRect(x, y, w, h float64) {
	x0, x1 := dotRange(x, x+w, c.sx)
	y0, y1 := dotRange(y, y+h, c.sy)
	for row := y0; row <= y1; row++ {
		c.span(row, x0, x1)
	}
}

// FillDrop draws a drop hanging from (cx, top) whose lowest point is at
// top+length. It widens toward the bottom and rounds off.
func (c *Canvas) FillDrop(cx, top, length float64) {
	y0, y1 := dotRange(top, top+length, c.sy)
	n := float64(y1 - y0 + 1)
	center := int(math.Floor(cx * c.sx))
	maxHalf := length / 2 * c.sx

	for row := y0; row <= y1; row++ {
		t := (float64(row-y0) + 0.5) / n // 0 at the tip, 1 at the bottom
		half := int(math.Round(maxHalf * math.Sin(math.Pi*t*0.85)))
		c.span(row, center-half, center+half)
	}
}

func glyph(top, bottom bool) rune {
	switch {
	case top && bottom:
		return BlockFull
	case top:
		return BlockUpperHalf
	case bottom:
		return BlockLowerHalf
	}
	return BlockEmpty
}

// Render writes the cells that changed since the previous Render,
// including cells that became empty.
func (c *Canvas) Render(w io.Writer) {
	c.out.Reset()
	for row := range c.rows {
		upper := c.dots[row*2*c.cols:]
		lower := c.dots[(row*2+1)*c.cols:]
		for col := range c.cols {
			ch := glyph(upper[col], lower[col])
			cell := row*c.cols + col
			if c.shown[cell] == ch {
				continue
			}
			c.shown[cell] = ch
			fmt.Fprintf(&c.out, "\033[%d;%dH%c", c.offRow+row+1, c.offCol+col+1, ch)
		}
	}
	io.WriteString(w, c.out.String())
}

// RenderBorder frames the canvas on the sides that have room: top and
// bottom rules when it is offset vertically, side bars when offset
// horizontally, corners when both.
func (c *Canvas) RenderBorder(w io.Writer) {
	left, right := c.offCol, c.offCol+c.cols+1
	top, bottom := c.offRow, c.offRow+c.rows+1
	sides := c.offCol >= 1
	caps := c.offRow >= 1

	var b strings.Builder
	if caps {
		rule := strings.Repeat("─", c.cols)
		if sides {
			fmt.Fprintf(&b, "\033[%d;%dH┌%s┐\033[%d;%dH└%s┘", top, left, rule, bottom, left, rule)
		} else {
			fmt.Fprintf(&b, "\033[%d;%dH%s\033[%d;%dH%s", top, left+1, rule, bottom, left+1, rule)
		}
	}
	if sides {
		for row := top + 1; row < bottom; row++ {
			fmt.Fprintf(&b, "\033[%d;%dH│\033[%d;%dH│", row, left, row, right)
		}
	}
	io.WriteString(w, b.String())
}
