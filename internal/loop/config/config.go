// Package config centralizes all tunable game parameters.
package config

import (
	"errors"
	"fmt"
	"time"

	envconfig "github.com/tomz197/laundry/internal/config"
)

// Field dimensions - the logical playfield.
// Actual rendering scales to fit terminal size.
const (
	FieldWidth  = 320
	FieldHeight = 240
)

// Player
const (
	InitialLives        = 3
	LaundryWidth        = 30
	LaundryHeight       = 10
	LaundryBottomOffset = 30 // Distance from the bottom edge to the laundry's top
	LaundrySpeed        = 10 // Units per move event
)

// Raindrops
const (
	FallSpeed        = 1.0 // Units per tick
	DropRadius       = 5.0 // Leading edge offset used for collision
	SpawnProbability = 0.05
)

// Timing
const (
	TickPeriod    = 16 * time.Millisecond // ~60 ticks per second
	PauseCooldown = 5 * time.Second
)

// Settings holds the boundary values of one game session.
type Settings struct {
	FieldWidth          float64
	FieldHeight         float64
	InitialLives        int
	LaundryWidth        float64
	LaundryHeight       float64
	LaundryBottomOffset float64
	LaundrySpeed        float64
	FallSpeed           float64
	DropRadius          float64
	SpawnProbability    float64
	TickPeriod          time.Duration
	PauseCooldown       time.Duration
	Seed                int64 // 0 means seed from the current time
}

// Default returns the settings the game ships with.
func Default() Settings {
	return Settings{
		FieldWidth:          FieldWidth,
		FieldHeight:         FieldHeight,
		InitialLives:        InitialLives,
		LaundryWidth:        LaundryWidth,
		LaundryHeight:       LaundryHeight,
		LaundryBottomOffset: LaundryBottomOffset,
		LaundrySpeed:        LaundrySpeed,
		FallSpeed:           FallSpeed,
		DropRadius:          DropRadius,
		SpawnProbability:    SpawnProbability,
		TickPeriod:          TickPeriod,
		PauseCooldown:       PauseCooldown,
	}
}

// FromEnv starts from Default and applies LAUNDRY_* overrides.
func FromEnv() (Settings, error) {
	s := Default()
	var errs []error

	float := func(key string, dst *float64) {
		v, err := envconfig.GetEnvFloat(key, *dst)
		errs = append(errs, err)
		*dst = v
	}
	duration := func(key string, dst *time.Duration) {
		v, err := envconfig.GetEnvDuration(key, *dst)
		errs = append(errs, err)
		*dst = v
	}

	float("LAUNDRY_FIELD_WIDTH", &s.FieldWidth)
	float("LAUNDRY_FIELD_HEIGHT", &s.FieldHeight)
	float("LAUNDRY_WIDTH", &s.LaundryWidth)
	float("LAUNDRY_HEIGHT", &s.LaundryHeight)
	float("LAUNDRY_BOTTOM_OFFSET", &s.LaundryBottomOffset)
	float("LAUNDRY_SPEED", &s.LaundrySpeed)
	float("LAUNDRY_FALL_SPEED", &s.FallSpeed)
	float("LAUNDRY_DROP_RADIUS", &s.DropRadius)
	float("LAUNDRY_SPAWN_PROBABILITY", &s.SpawnProbability)
	duration("LAUNDRY_TICK", &s.TickPeriod)
	duration("LAUNDRY_PAUSE", &s.PauseCooldown)

	lives, err := envconfig.GetEnvInt("LAUNDRY_LIVES", s.InitialLives)
	errs = append(errs, err)
	s.InitialLives = lives

	seed, err := envconfig.GetEnvInt64("LAUNDRY_SEED", s.Seed)
	errs = append(errs, err)
	s.Seed = seed

	if err := errors.Join(errs...); err != nil {
		return s, err
	}
	return s, s.Validate()
}

// Validate reports settings that cannot produce a playable session.
func (s Settings) Validate() error {
	switch {
	case s.FieldWidth <= 0 || s.FieldHeight <= 0:
		return fmt.Errorf("field must be positive, got %gx%g", s.FieldWidth, s.FieldHeight)
	case s.LaundryWidth <= 0 || s.LaundryHeight <= 0:
		return fmt.Errorf("laundry must be positive, got %gx%g", s.LaundryWidth, s.LaundryHeight)
	case s.LaundryWidth > s.FieldWidth:
		return fmt.Errorf("laundry width %g exceeds field width %g", s.LaundryWidth, s.FieldWidth)
	case s.LaundryBottomOffset < 0 || s.LaundryBottomOffset > s.FieldHeight:
		return fmt.Errorf("laundry bottom offset %g outside field height %g", s.LaundryBottomOffset, s.FieldHeight)
	case s.InitialLives < 1:
		return fmt.Errorf("initial lives must be at least 1, got %d", s.InitialLives)
	case s.LaundrySpeed < 0:
		return fmt.Errorf("laundry speed must not be negative, got %g", s.LaundrySpeed)
	case s.FallSpeed <= 0:
		return fmt.Errorf("fall speed must be positive, got %g", s.FallSpeed)
	case s.DropRadius < 0:
		return fmt.Errorf("drop radius must not be negative, got %g", s.DropRadius)
	case s.SpawnProbability < 0 || s.SpawnProbability > 1:
		return fmt.Errorf("spawn probability must be within [0, 1], got %g", s.SpawnProbability)
	case s.TickPeriod <= 0:
		return fmt.Errorf("tick period must be positive, got %v", s.TickPeriod)
	case s.PauseCooldown < 0:
		return fmt.Errorf("pause cooldown must not be negative, got %v", s.PauseCooldown)
	}
	return nil
}
