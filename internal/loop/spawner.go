package loop

import (
	"github.com/tomz197/laundry/internal/object"
)

// Spawner decides once per tick whether a new raindrop appears.
type Spawner struct {
	rng         object.RandSource
	probability float64
	fallSpeed   float64
	radius      float64
}

// NewSpawner creates a spawner drawing from rng.
func NewSpawner(rng object.RandSource, probability, fallSpeed, radius float64) *Spawner {
	return &Spawner{
		rng:         rng,
		probability: probability,
		fallSpeed:   fallSpeed,
		radius:      radius,
	}
}

// MaybeSpawn returns a new raindrop with the configured probability.
// The first draw decides, the second places the drop horizontally.
func (s *Spawner) MaybeSpawn(fieldWidth float64) (*object.Raindrop, bool) {
	if s.rng.Float64() >= s.probability {
		return nil, false
	}
	return object.SpawnRaindrop(s.rng, fieldWidth, s.fallSpeed, s.radius), true
}
