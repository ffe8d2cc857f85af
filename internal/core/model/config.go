package model

import (
	"fmt"
	"time"
)

// CycleConfig contains the fixed timing and geometry of the breathing cycle.
// The radius bounds are normalized scale factors the session window maps
// onto pixels.
type CycleConfig struct {
	Inhale    time.Duration
	HoldFull  time.Duration
	Exhale    time.Duration
	HoldEmpty time.Duration

	MinRadius float64
	MaxRadius float64
}

// Validate reports configuration errors that must abort startup.
func (config CycleConfig) Validate() error {
	phases := []struct {
		name     string
		duration time.Duration
	}{
		{"inhale", config.Inhale},
		{"hold_full", config.HoldFull},
		{"exhale", config.Exhale},
		{"hold_empty", config.HoldEmpty},
	}
	for _, phase := range phases {
		if phase.duration <= 0 {
			return fmt.Errorf("phase %s: duration must be positive, got %v", phase.name, phase.duration)
		}
	}

	if config.MinRadius >= config.MaxRadius {
		return fmt.Errorf("radius bounds: min %.3f must be below max %.3f", config.MinRadius, config.MaxRadius)
	}

	return nil
}

// CycleDuration returns the length of one full breathing cycle.
func (config CycleConfig) CycleDuration() time.Duration {
	return config.Inhale + config.HoldFull + config.Exhale + config.HoldEmpty
}
