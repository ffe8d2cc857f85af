package breath

import (
	"fmt"
	"time"

	"breathbox/internal/core/model"
)

// Cycle is the box-breathing state machine. It converts accumulated wall
// time into a phase plus a normalized position within that phase, from which
// the circle radius and colour are derived. A Cycle is not safe for
// concurrent use; the Driver owns the single instance.
type Cycle struct {
	config    model.CycleConfig
	phase     Phase
	elapsed   time.Duration
	completed int
}

// New creates a Cycle in the inhale phase with zero elapsed time.
func New(config model.CycleConfig) (*Cycle, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("cycle config: %w", err)
	}
	return &Cycle{config: config, phase: PhaseInhale}, nil
}

// Advance moves the cycle forward by delta. When the current phase fills up,
// the overshoot carries into the next phase rather than being dropped, so
// frame-time jitter never drifts the cycle. A loop handles deltas larger
// than a whole phase, for example after the process was suspended.
// Negative deltas are ignored.
func (cycle *Cycle) Advance(delta time.Duration) {
	if delta <= 0 {
		return
	}
	cycle.elapsed += delta
	for cycle.elapsed >= cycle.phaseDuration(cycle.phase) {
		cycle.elapsed -= cycle.phaseDuration(cycle.phase)
		if cycle.phase == PhaseHoldEmpty {
			cycle.completed++
		}
		cycle.phase = cycle.phase.Next()
	}
}

// Phase returns the current phase.
func (cycle *Cycle) Phase() Phase {
	return cycle.phase
}

// Elapsed returns the time spent in the current phase so far.
func (cycle *Cycle) Elapsed() time.Duration {
	return cycle.elapsed
}

// Completed returns the number of full cycles finished so far.
func (cycle *Cycle) Completed() int {
	return cycle.completed
}

// Progress returns the position within the current phase in [0, 1).
func (cycle *Cycle) Progress() float64 {
	return float64(cycle.elapsed) / float64(cycle.phaseDuration(cycle.phase))
}

// Radius maps the cycle onto a circle radius: a linear ramp from minRadius
// to maxRadius during inhale, the respective bound during the holds, and a
// linear ramp back down during exhale. Pure with respect to Advance.
func (cycle *Cycle) Radius(minRadius, maxRadius float64) float64 {
	switch cycle.phase {
	case PhaseInhale:
		return lerp(cycle.Progress(), minRadius, maxRadius)
	case PhaseHoldFull:
		return maxRadius
	case PhaseExhale:
		return lerp(cycle.Progress(), maxRadius, minRadius)
	default:
		return minRadius
	}
}

// Scale returns the radius within the configured normalized bounds.
func (cycle *Cycle) Scale() float64 {
	return cycle.Radius(cycle.config.MinRadius, cycle.config.MaxRadius)
}

func (cycle *Cycle) phaseDuration(phase Phase) time.Duration {
	switch phase {
	case PhaseInhale:
		return cycle.config.Inhale
	case PhaseHoldFull:
		return cycle.config.HoldFull
	case PhaseExhale:
		return cycle.config.Exhale
	default:
		return cycle.config.HoldEmpty
	}
}

func lerp(t, from, to float64) float64 {
	return (1-t)*from + t*to
}
