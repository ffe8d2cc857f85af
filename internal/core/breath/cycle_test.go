package breath

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"breathbox/internal/core/model"
)

func fourSecondConfig() model.CycleConfig {
	return model.CycleConfig{
		Inhale:    4 * time.Second,
		HoldFull:  4 * time.Second,
		Exhale:    4 * time.Second,
		HoldEmpty: 4 * time.Second,
		MinRadius: 0.25,
		MaxRadius: 1.0,
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*model.CycleConfig)
	}{
		{"zero inhale", func(c *model.CycleConfig) { c.Inhale = 0 }},
		{"negative hold", func(c *model.CycleConfig) { c.HoldFull = -time.Second }},
		{"zero exhale", func(c *model.CycleConfig) { c.Exhale = 0 }},
		{"zero hold empty", func(c *model.CycleConfig) { c.HoldEmpty = 0 }},
		{"min equals max", func(c *model.CycleConfig) { c.MinRadius = 1.0 }},
		{"min above max", func(c *model.CycleConfig) { c.MinRadius = 2.0 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			config := fourSecondConfig()
			tc.mutate(&config)
			cycle, err := New(config)
			require.Error(t, err)
			require.Nil(t, cycle)
		})
	}
}

func TestCycleStartsInInhale(t *testing.T) {
	cycle, err := New(fourSecondConfig())
	require.NoError(t, err)
	require.Equal(t, PhaseInhale, cycle.Phase())
	require.Equal(t, time.Duration(0), cycle.Elapsed())
	require.Equal(t, 0, cycle.Completed())
}

// TestCycleWorkedExample walks the reference timeline: 4 s phases with
// radius bounds 10..100.
func TestCycleWorkedExample(t *testing.T) {
	cycle, err := New(fourSecondConfig())
	require.NoError(t, err)

	steps := []struct {
		advance time.Duration
		phase   Phase
		radius  float64
	}{
		{0, PhaseInhale, 10},                  // t=0
		{2 * time.Second, PhaseInhale, 55},    // t=2, midpoint of the ramp
		{2 * time.Second, PhaseHoldFull, 100}, // t=4
		{4 * time.Second, PhaseExhale, 100},   // t=8
		{2 * time.Second, PhaseExhale, 55},    // t=10
		{2 * time.Second, PhaseHoldEmpty, 10}, // t=12
		{4 * time.Second, PhaseInhale, 10},    // t=16, wrapped around
	}

	for _, step := range steps {
		cycle.Advance(step.advance)
		require.Equal(t, step.phase, cycle.Phase())
		require.InDelta(t, step.radius, cycle.Radius(10, 100), 1e-9)
	}
	require.Equal(t, 1, cycle.Completed())
}

func TestPhaseOrderIsStrictlyCyclic(t *testing.T) {
	cycle, err := New(fourSecondConfig())
	require.NoError(t, err)

	previous := cycle.Phase()
	for i := 0; i < 2000; i++ {
		cycle.Advance(137 * time.Millisecond)
		current := cycle.Phase()
		if current != previous {
			require.Equal(t, previous.Next(), current)
			previous = current
		}

		radius := cycle.Radius(10, 100)
		require.GreaterOrEqual(t, radius, 10.0)
		require.LessOrEqual(t, radius, 100.0)
	}
}

// A single huge delta must land on the same phase and remainder as many
// small steps summing to the same total.
func TestLargeDeltaMatchesSmallSteps(t *testing.T) {
	config := fourSecondConfig()

	oneShot, err := New(config)
	require.NoError(t, err)
	stepped, err := New(config)
	require.NoError(t, err)

	const step = 73 * time.Millisecond
	const count = 913
	oneShot.Advance(step * count)
	for i := 0; i < count; i++ {
		stepped.Advance(step)
	}

	require.Equal(t, stepped.Phase(), oneShot.Phase())
	require.Equal(t, stepped.Elapsed(), oneShot.Elapsed())
	require.Equal(t, stepped.Completed(), oneShot.Completed())
}

func TestElapsedStaysBelowPhaseDuration(t *testing.T) {
	cycle, err := New(fourSecondConfig())
	require.NoError(t, err)

	for i := 0; i < 500; i++ {
		cycle.Advance(311 * time.Millisecond)
		require.Less(t, cycle.Elapsed(), cycle.phaseDuration(cycle.Phase()))
	}
}

// Radius is continuous across the inhale -> hold boundary: the last sample
// before the boundary approaches the max, the first sample after equals it
// exactly.
func TestRadiusContinuousAtBoundary(t *testing.T) {
	cycle, err := New(fourSecondConfig())
	require.NoError(t, err)

	cycle.Advance(4*time.Second - time.Nanosecond)
	require.Equal(t, PhaseInhale, cycle.Phase())
	require.InDelta(t, 100, cycle.Radius(10, 100), 1e-3)

	cycle.Advance(time.Nanosecond)
	require.Equal(t, PhaseHoldFull, cycle.Phase())
	require.Equal(t, 100.0, cycle.Radius(10, 100))
}

func TestRadiusIdempotentBetweenAdvances(t *testing.T) {
	cycle, err := New(fourSecondConfig())
	require.NoError(t, err)
	cycle.Advance(1700 * time.Millisecond)

	first := cycle.Radius(10, 100)
	for i := 0; i < 5; i++ {
		require.Equal(t, first, cycle.Radius(10, 100))
	}
}

func TestNegativeDeltaIsIgnored(t *testing.T) {
	cycle, err := New(fourSecondConfig())
	require.NoError(t, err)
	cycle.Advance(time.Second)

	elapsed := cycle.Elapsed()
	cycle.Advance(-3 * time.Second)
	require.Equal(t, elapsed, cycle.Elapsed())
	require.Equal(t, PhaseInhale, cycle.Phase())
}

func TestColourTracksThePhases(t *testing.T) {
	cycle, err := New(fourSecondConfig())
	require.NoError(t, err)

	inhale := cycle.Colour()
	require.Greater(t, inhale.B, inhale.R, "inhale should lean blue")

	cycle.Advance(8 * time.Second) // start of exhale
	require.Equal(t, PhaseExhale, cycle.Phase())
	exhale := cycle.Colour()
	require.Greater(t, exhale.R, exhale.B, "exhale should lean red")

	// Mid-hold sits strictly between the two endpoints.
	mid, err := New(fourSecondConfig())
	require.NoError(t, err)
	mid.Advance(6 * time.Second) // middle of hold_full
	require.Equal(t, PhaseHoldFull, mid.Phase())
	blend := mid.Colour()
	require.NotEqual(t, inhale, blend)
	require.NotEqual(t, exhale, blend)
}

func TestScaleUsesConfiguredBounds(t *testing.T) {
	cycle, err := New(fourSecondConfig())
	require.NoError(t, err)

	require.InDelta(t, 0.25, cycle.Scale(), 1e-9)
	cycle.Advance(4 * time.Second)
	require.InDelta(t, 1.0, cycle.Scale(), 1e-9)
}

func TestPhaseCaptions(t *testing.T) {
	require.Equal(t, "Breathe in", PhaseInhale.Caption())
	require.Equal(t, "Hold", PhaseHoldFull.Caption())
	require.Equal(t, "Breathe out", PhaseExhale.Caption())
	require.Equal(t, "Hold", PhaseHoldEmpty.Caption())
}
