package config

import (
	"testing"
	"time"
)

func TestDefaultMatchesShippedValues(t *testing.T) {
	s := Default()
	if s.FieldWidth != 320 || s.FieldHeight != 240 {
		t.Fatalf("field = %gx%g, want 320x240", s.FieldWidth, s.FieldHeight)
	}
	if s.InitialLives != 3 {
		t.Fatalf("lives = %d, want 3", s.InitialLives)
	}
	if s.TickPeriod != 16*time.Millisecond || s.PauseCooldown != 5*time.Second {
		t.Fatalf("timing = %v/%v", s.TickPeriod, s.PauseCooldown)
	}
	if s.SpawnProbability != 0.05 || s.LaundrySpeed != 10 || s.FallSpeed != 1 || s.DropRadius != 5 {
		t.Fatalf("unexpected tuning: %+v", s)
	}
	if err := s.Validate(); err != nil {
		t.Fatalf("default settings invalid: %v", err)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("LAUNDRY_LIVES", "5")
	t.Setenv("LAUNDRY_TICK", "10ms")
	t.Setenv("LAUNDRY_SPAWN_PROBABILITY", "0.5")
	t.Setenv("LAUNDRY_SEED", "99")

	s, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if s.InitialLives != 5 || s.TickPeriod != 10*time.Millisecond || s.SpawnProbability != 0.5 || s.Seed != 99 {
		t.Fatalf("overrides not applied: %+v", s)
	}
}

func TestFromEnvRejectsMalformed(t *testing.T) {
	t.Setenv("LAUNDRY_PAUSE", "soon")
	if _, err := FromEnv(); err == nil {
		t.Fatalf("expected error for malformed LAUNDRY_PAUSE")
	}
}

func TestValidateRejects(t *testing.T) {
	cases := map[string]func(*Settings){
		"zero lives":       func(s *Settings) { s.InitialLives = 0 },
		"wide laundry":     func(s *Settings) { s.LaundryWidth = s.FieldWidth + 1 },
		"probability":      func(s *Settings) { s.SpawnProbability = 1.5 },
		"tick period":      func(s *Settings) { s.TickPeriod = 0 },
		"fall speed":       func(s *Settings) { s.FallSpeed = 0 },
		"offset too large": func(s *Settings) { s.LaundryBottomOffset = s.FieldHeight + 1 },
	}
	for name, mutate := range cases {
		s := Default()
		mutate(&s)
		if err := s.Validate(); err == nil {
			t.Fatalf("%s: expected validation error", name)
		}
	}
}
