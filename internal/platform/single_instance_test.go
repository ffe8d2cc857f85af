package platform

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSingleInstanceGuard(t *testing.T) {
	first, err := AcquireSingleInstance("BreathBoxGuardTest")
	require.NoError(t, err)
	require.NotEmpty(t, first.Address())

	_, err = AcquireSingleInstance("BreathBoxGuardTest")
	require.ErrorIs(t, err, ErrAlreadyRunning)

	require.NoError(t, first.Release())

	second, err := AcquireSingleInstance("BreathBoxGuardTest")
	require.NoError(t, err)
	require.NoError(t, second.Release())
}

func TestPortFromNameIsDeterministic(t *testing.T) {
	require.Equal(t, portFromName("BreathBox"), portFromName("BreathBox"))
	require.GreaterOrEqual(t, portFromName("BreathBox"), 20000)
	require.LessOrEqual(t, portFromName("BreathBox"), 39999)
}

func TestNilGuardIsSafe(t *testing.T) {
	var guard *InstanceGuard
	require.NoError(t, guard.Release())
	require.Empty(t, guard.Address())
}
