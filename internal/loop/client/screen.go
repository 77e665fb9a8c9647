package client

import (
	"fmt"
	"io"
	"sync"

	"github.com/tomz197/laundry/internal/draw"
	"github.com/tomz197/laundry/internal/loop"
	"github.com/tomz197/laundry/internal/object"
)

// Screen is a terminal loop.Surface. Objects are drawn on a half-block
// canvas scaled from the logical field; HUD text is overlaid after the canvas.
type Screen struct {
	mu           sync.Mutex
	writer       io.Writer
	canvas       *draw.Canvas
	chunkWriter  *draw.ChunkWriter // Accumulates frame output for chunked writes
	termSizeFunc draw.TermSizeFunc
	field        object.Field

	score, lives int
	hud          bool // DrawHUD was called this frame
	redraw       bool // Wipe the terminal before the next frame
}

var _ loop.Surface = (*Screen)(nil)

// NewScreen creates a surface for the given field on w.
func NewScreen(w io.Writer, field object.Field, termSizeFunc draw.TermSizeFunc) *Screen {
	if termSizeFunc == nil {
		termSizeFunc = draw.DefaultTermSizeFunc
	}
	termWidth, termHeight := draw.TermSize(termSizeFunc)
	renderWidth, renderHeight, offsetCol, offsetRow := draw.FitTermSize(termWidth, termHeight, field.Width, field.Height)

	canvas := draw.NewScaledCanvas(renderWidth, renderHeight, field.Width, field.Height)
	canvas.SetOffset(offsetCol, offsetRow)

	return &Screen{
		writer:       w,
		canvas:       canvas,
		chunkWriter:  draw.NewChunkWriter(w, offsetCol, offsetRow),
		termSizeFunc: termSizeFunc,
		field:        field,
		redraw:       true,
	}
}

// Clear starts a new frame.
func (s *Screen) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.updateSize()
	if s.redraw {
		s.chunkWriter.WriteString("\033[H\033[2J")
		s.canvas.ForceRedraw()
		s.redraw = false
	}
	s.canvas.Clear()
	s.hud = false
}

// DrawBackground draws the ground line.
func (s *Screen) DrawBackground(field object.Field) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.canvas.HLine(field.Height-1, 0, field.Width)
}

// DrawLaundry draws the player.
func (s *Screen) DrawLaundry(l *object.Laundry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_ = l.Draw(object.DrawContext{Canvas: s.canvas})
}

// DrawRaindrop draws one raindrop.
func (s *Screen) DrawRaindrop(r *object.Raindrop) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_ = r.Draw(object.DrawContext{Canvas: s.canvas})
}

// DrawHUD records the score and lives shown on top of the frame.
func (s *Screen) DrawHUD(score, lives int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.score, s.lives, s.hud = score, lives, true
}

// Flush writes the frame to the terminal.
func (s *Screen) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.canvas.Render(s.chunkWriter)
	s.canvas.RenderBorder(s.chunkWriter)

	if s.hud {
		cw := s.chunkWriter
		// Fixed-width fields so shrinking values leave no residue.
		cw.WriteAt(2, 1, fmt.Sprintf("Score: %-6d", s.score))
		livesText := fmt.Sprintf("Lives: %-2d", s.lives)
		cw.WriteAt(s.canvas.TerminalWidth()-len(livesText), 1, livesText)
	}
	return s.chunkWriter.Flush()
}

// ShowBanner writes centered lines over the current frame. The next frame
// wipes the terminal so no banner text is left behind.
func (s *Screen) ShowBanner(lines ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	centerX := s.canvas.TerminalWidth() / 2
	centerY := s.canvas.TerminalHeight() / 2
	top := centerY - len(lines)/2
	for i, line := range lines {
		s.chunkWriter.WriteAt(centerX-len(line)/2, top+i, line)
	}
	s.redraw = true
	return s.chunkWriter.Flush()
}

// updateSize handles terminal resize. On actual size changes the terminal
// is cleared to remove residual pixels outside the new canvas area.
func (s *Screen) updateSize() {
	termWidth, termHeight := draw.TermSize(s.termSizeFunc)
	renderWidth, renderHeight, offsetCol, offsetRow := draw.FitTermSize(termWidth, termHeight, s.field.Width, s.field.Height)

	if renderWidth != s.canvas.TerminalWidth() || renderHeight != s.canvas.TerminalHeight() ||
		offsetCol != s.canvas.OffsetCol() || offsetRow != s.canvas.OffsetRow() {
		s.redraw = true
	}

	s.canvas.Resize(renderWidth, renderHeight)
	s.canvas.SetOffset(offsetCol, offsetRow)
	s.chunkWriter.SetOffset(offsetCol, offsetRow)
}
