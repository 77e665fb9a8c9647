package object

import "github.com/tomz197/laundry/internal/physics"

// Laundry is the player-controlled catcher hanging near the bottom of the field.
type Laundry struct {
	X, Y          float64 // Top-left corner
	Width, Height float64
	Speed         float64 // Units per move event
}

// NewLaundry creates laundry centered horizontally, bottomOffset above the ground.
func NewLaundry(field Field, width, height, bottomOffset, speed float64) *Laundry {
	return &Laundry{
		X:      field.Width/2 - width/2,
		Y:      field.Height - bottomOffset,
		Width:  width,
		Height: height,
		Speed:  speed,
	}
}

// MoveLeft shifts the laundry left, stopping at the left edge.
func (l *Laundry) MoveLeft(field Field) {
	l.X = physics.Clamp(l.X-l.Speed, 0, field.Width-l.Width)
}

// MoveRight shifts the laundry right, stopping at the right edge.
func (l *Laundry) MoveRight(field Field) {
	l.X = physics.Clamp(l.X+l.Speed, 0, field.Width-l.Width)
}

// Bounds returns the laundry's collision rectangle.
func (l *Laundry) Bounds() physics.Rect {
	return physics.Rect{X: l.X, Y: l.Y, Width: l.Width, Height: l.Height}
}

// Draw renders the laundry as a filled rectangle.
func (l *Laundry) Draw(ctx DrawContext) error {
	if ctx.Canvas == nil {
		return nil
	}
	ctx.Canvas.FillRect(l.X, l.Y, l.Width, l.Height)
	return nil
}

var _ Drawable = (*Laundry)(nil)
