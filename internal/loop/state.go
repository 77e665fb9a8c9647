package loop

import (
	"github.com/tomz197/laundry/internal/object"
)

// GameState holds everything one session mutates per tick.
// It is owned by a single Controller and never shared.
type GameState struct {
	Score     int
	Lives     int
	Paused    bool
	Raindrops []*object.Raindrop // Oldest first
	Tick      uint64             // Active ticks executed so far
}

// NewGameState creates state for a fresh session.
func NewGameState(lives int) *GameState {
	return &GameState{
		Lives:     lives,
		Raindrops: []*object.Raindrop{},
	}
}

// AddRaindrop appends a raindrop to the collection.
func (s *GameState) AddRaindrop(r *object.Raindrop) {
	s.Raindrops = append(s.Raindrops, r)
}

// AdvanceAll moves every raindrop one tick down.
func (s *GameState) AdvanceAll() {
	for _, r := range s.Raindrops {
		r.Advance()
	}
}

// GameOver reports whether the terminal condition has been reached.
func (s *GameState) GameOver() bool {
	return s.Lives <= 0
}
