package loop

import (
	"github.com/tomz197/laundry/internal/object"
)

// Surface receives one frame per active tick, in this order:
// Clear, DrawBackground, DrawLaundry, DrawRaindrop (per drop), DrawHUD, Flush.
// Later draws overlay earlier ones.
type Surface interface {
	Clear()
	DrawBackground(field object.Field)
	DrawLaundry(l *object.Laundry)
	DrawRaindrop(r *object.Raindrop)
	DrawHUD(score, lives int)
	Flush() error
}

type nopSurface struct{}

func (nopSurface) Clear()                        {}
func (nopSurface) DrawBackground(object.Field)   {}
func (nopSurface) DrawLaundry(*object.Laundry)   {}
func (nopSurface) DrawRaindrop(*object.Raindrop) {}
func (nopSurface) DrawHUD(int, int)              {}
func (nopSurface) Flush() error                  { return nil }

var _ Surface = nopSurface{}
