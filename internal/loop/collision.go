package loop

import (
	"slices"

	"github.com/tomz197/laundry/internal/object"
)

// Outcome summarizes one resolution pass.
type Outcome struct {
	Soaked   int  // Raindrops that hit the laundry (one life each)
	Grounded int  // Raindrops that reached the ground (one point each)
	Terminal bool // Lives reached zero; the pass stopped early
}

// Resolve applies raindrop-vs-laundry and raindrop-vs-ground outcomes.
// Raindrops are visited newest first so removal does not disturb the
// indices still to be visited. When the last life is lost the pass returns
// immediately and the remaining raindrops stay unresolved for this tick.
func Resolve(state *GameState, laundry *object.Laundry, field object.Field) Outcome {
	var out Outcome
	if state.GameOver() {
		out.Terminal = true
		return out
	}

	for i := len(state.Raindrops) - 1; i >= 0; i-- {
		r := state.Raindrops[i]

		switch {
		case r.OverlapsLaundry(laundry):
			state.Raindrops = slices.Delete(state.Raindrops, i, i+1)
			state.Lives--
			out.Soaked++
			if state.Lives == 0 {
				out.Terminal = true
				return out
			}
		case r.HasReachedGround(field.Height):
			state.Raindrops = slices.Delete(state.Raindrops, i, i+1)
			state.Score++
			out.Grounded++
		}
	}
	return out
}
