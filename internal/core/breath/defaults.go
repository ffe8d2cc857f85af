package breath

import (
	"time"

	"breathbox/internal/core/model"
)

// DefaultConfig returns the classic box-breathing timings: four equal
// phases of four seconds, with the circle shrinking to a quarter of its
// full size.
func DefaultConfig() model.CycleConfig {
	return model.CycleConfig{
		Inhale:    4 * time.Second,
		HoldFull:  4 * time.Second,
		Exhale:    4 * time.Second,
		HoldEmpty: 4 * time.Second,
		MinRadius: 0.25,
		MaxRadius: 1.0,
	}
}
