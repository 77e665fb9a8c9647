package object

// Raindrop is a falling hazard. X is its horizontal center, Y its top.
type Raindrop struct {
	X, Y      float64
	FallSpeed float64 // Units per tick
	Radius    float64 // Offset from Y to the leading (bottom) edge
}

// NewRaindrop creates a raindrop at the top of the field.
func NewRaindrop(x, fallSpeed, radius float64) *Raindrop {
	return &Raindrop{
		X:         x,
		Y:         0,
		FallSpeed: fallSpeed,
		Radius:    radius,
	}
}

// SpawnRaindrop creates a raindrop with X drawn uniformly from [0, fieldWidth).
func SpawnRaindrop(rng RandSource, fieldWidth, fallSpeed, radius float64) *Raindrop {
	return NewRaindrop(rng.Float64()*fieldWidth, fallSpeed, radius)
}

// Advance moves the raindrop one tick down.
func (r *Raindrop) Advance() {
	r.Y += r.FallSpeed
}

// HasReachedGround reports whether the raindrop has crossed the bottom edge.
func (r *Raindrop) HasReachedGround(fieldHeight float64) bool {
	return r.Y >= fieldHeight
}

// OverlapsLaundry tests only the leading edge point (X, Y+Radius) against the
// laundry rectangle. A drop falling faster than the laundry is tall can step
// over it between ticks without ever overlapping.
func (r *Raindrop) OverlapsLaundry(l *Laundry) bool {
	return l.Bounds().Contains(r.X, r.Y+r.Radius)
}

// Draw renders the raindrop as a drop whose lowest point is the leading edge.
func (r *Raindrop) Draw(ctx DrawContext) error {
	if ctx.Canvas == nil {
		return nil
	}
	ctx.Canvas.FillDrop(r.X, r.Y, r.Radius)
	return nil
}

var _ Drawable = (*Raindrop)(nil)
