package object

import "testing"

type fixedRand struct{ v float64 }

func (f fixedRand) Float64() float64 { return f.v }

var field = Field{Width: 320, Height: 240}

func TestSpawnRaindropUsesSource(t *testing.T) {
	r := SpawnRaindrop(fixedRand{v: 0.5}, field.Width, 1, 5)
	if r.X != 160 || r.Y != 0 || r.FallSpeed != 1 || r.Radius != 5 {
		t.Fatalf("spawned %+v, want x=160 y=0 speed=1 radius=5", *r)
	}
	r = SpawnRaindrop(fixedRand{v: 0}, field.Width, 1, 5)
	if r.X != 0 {
		t.Fatalf("x = %g, want 0", r.X)
	}
}

func TestAdvanceAndGround(t *testing.T) {
	r := NewRaindrop(10, 1, 5)
	for i := 0; i < 239; i++ {
		r.Advance()
	}
	if r.Y != 239 || r.HasReachedGround(field.Height) {
		t.Fatalf("y=%g should be just above ground", r.Y)
	}
	r.Advance()
	if !r.HasReachedGround(field.Height) {
		t.Fatalf("y=%g should have reached ground", r.Y)
	}
}

func TestOverlapsLaundryLeadingEdge(t *testing.T) {
	l := &Laundry{X: 145, Y: 230, Width: 30, Height: 10}
	r := NewRaindrop(150, 1, 5)

	r.Y = 224 // leading edge 229
	if r.OverlapsLaundry(l) {
		t.Fatalf("leading edge above laundry must not overlap")
	}
	r.Y = 225 // leading edge 230
	if !r.OverlapsLaundry(l) {
		t.Fatalf("leading edge on laundry top must overlap")
	}
	r.Y = 235 // leading edge 240
	if !r.OverlapsLaundry(l) {
		t.Fatalf("leading edge on laundry bottom must overlap")
	}
	r.Y = 236
	if r.OverlapsLaundry(l) {
		t.Fatalf("leading edge below laundry must not overlap")
	}

	r.X, r.Y = 144, 230
	if r.OverlapsLaundry(l) {
		t.Fatalf("drop left of laundry must not overlap")
	}
	r.X = 175
	if !r.OverlapsLaundry(l) {
		t.Fatalf("drop on the right edge must overlap")
	}
}

// A drop that falls further than the laundry's height in one tick can skip
// the overlap window entirely. This is the accepted point-vs-rect behavior.
func TestFastRaindropTunnelsThroughLaundry(t *testing.T) {
	l := &Laundry{X: 145, Y: 230, Width: 30, Height: 10}
	r := NewRaindrop(160, 20, 5)
	overlapped := false
	for !r.HasReachedGround(field.Height) {
		r.Advance()
		if r.OverlapsLaundry(l) {
			overlapped = true
		}
	}
	if overlapped {
		t.Fatalf("expected fast drop to tunnel through laundry")
	}
}

func TestNewLaundryCentered(t *testing.T) {
	l := NewLaundry(field, 30, 10, 30, 10)
	if l.X != 145 || l.Y != 210 {
		t.Fatalf("laundry at (%g,%g), want (145,210)", l.X, l.Y)
	}
}

func TestLaundryMovesStayInBounds(t *testing.T) {
	l := NewLaundry(field, 30, 10, 30, 10)
	for i := 0; i < 100; i++ {
		l.MoveLeft(field)
		if l.X < 0 {
			t.Fatalf("x = %g below 0", l.X)
		}
	}
	if l.X != 0 {
		t.Fatalf("x = %g after many lefts, want 0", l.X)
	}
	for i := 0; i < 100; i++ {
		l.MoveRight(field)
		if l.X > field.Width-l.Width {
			t.Fatalf("x = %g beyond right bound", l.X)
		}
	}
	if l.X != 290 {
		t.Fatalf("x = %g after many rights, want 290", l.X)
	}
	l.MoveLeft(field)
	if l.X != 280 {
		t.Fatalf("x = %g after one left, want 280", l.X)
	}
}

func TestDrawWithoutCanvasIsNoop(t *testing.T) {
	if err := NewRaindrop(1, 1, 5).Draw(DrawContext{}); err != nil {
		t.Fatalf("raindrop draw: %v", err)
	}
	if err := NewLaundry(field, 30, 10, 30, 10).Draw(DrawContext{}); err != nil {
		t.Fatalf("laundry draw: %v", err)
	}
}
