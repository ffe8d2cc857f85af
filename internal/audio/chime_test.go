package audio

import (
	"testing"

	"github.com/stretchr/testify/require"

	"breathbox/internal/core/breath"
)

func TestToneFrequencies(t *testing.T) {
	require.Equal(t, 523, toneFrequency(breath.PhaseInhale))
	require.Equal(t, 392, toneFrequency(breath.PhaseExhale))
	require.Zero(t, toneFrequency(breath.PhaseHoldFull))
	require.Zero(t, toneFrequency(breath.PhaseHoldEmpty))
}

func TestChimeWithoutDeviceStaysSilent(t *testing.T) {
	// Speaker init may fail on machines without audio; either way these
	// calls must not panic.
	chime := NewChime(true)
	chime.PhaseChanged(breath.PhaseInhale)
	chime.SetEnabled(false)
	chime.PhaseChanged(breath.PhaseExhale)
	chime.PhaseChanged(breath.PhaseHoldFull)
}
