package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func validConfig() CycleConfig {
	return CycleConfig{
		Inhale:    4 * time.Second,
		HoldFull:  4 * time.Second,
		Exhale:    4 * time.Second,
		HoldEmpty: 4 * time.Second,
		MinRadius: 0.25,
		MaxRadius: 1.0,
	}
}

func TestValidateAcceptsDefaults(t *testing.T) {
	require.NoError(t, validConfig().Validate())
}

func TestValidateRejectsNonPositiveDurations(t *testing.T) {
	config := validConfig()
	config.Exhale = 0
	err := config.Validate()
	require.Error(t, err)
	require.Contains(t, err.Error(), "exhale")
}

func TestValidateRejectsBadRadiusBounds(t *testing.T) {
	config := validConfig()
	config.MinRadius = 1.0
	err := config.Validate()
	require.Error(t, err)
	require.Contains(t, err.Error(), "radius bounds")
}

func TestCycleDuration(t *testing.T) {
	require.Equal(t, 16*time.Second, validConfig().CycleDuration())
}
