// Package object defines the entities that live on the playfield.
package object

import (
	"github.com/tomz197/laundry/internal/draw"
)

// RandSource yields uniform samples in [0, 1). *rand.Rand satisfies it.
type RandSource interface {
	Float64() float64
}

// Field is the logical playfield. The origin is the top-left corner and
// Y grows downward toward the ground.
type Field struct {
	Width  float64
	Height float64
}

// DrawContext provides drawing resources for objects.
type DrawContext struct {
	Canvas *draw.Canvas // High-resolution canvas (2x vertical), logical field coordinates
}

// Drawable is implemented by everything the terminal surface can draw.
type Drawable interface {
	Draw(ctx DrawContext) error
}
