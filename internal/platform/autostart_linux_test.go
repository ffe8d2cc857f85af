//go:build linux

package platform

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDesktopFileName(t *testing.T) {
	require.Equal(t, "breathbox.desktop", desktopFileName("BreathBox"))
	require.Equal(t, "breath-box.desktop", desktopFileName("  Breath Box "))
	require.Equal(t, "breathbox.desktop", desktopFileName(""))
}

func TestBuildDesktopEntryQuotesSpacedPaths(t *testing.T) {
	entry := buildDesktopEntry("BreathBox", "/opt/my tools/breathbox")
	require.Contains(t, entry, `Exec="/opt/my tools/breathbox"`)
	require.Contains(t, entry, "Name=BreathBox")
}

func TestEnableAndDisableAutostart(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	service := NewService()

	require.NoError(t, service.EnableAutostart("BreathBox", "/usr/local/bin/breathbox"))

	configDir, err := service.GetConfigDir()
	require.NoError(t, err)
	entryPath := filepath.Join(configDir, "autostart", "breathbox.desktop")
	_, err = os.Stat(entryPath)
	require.NoError(t, err)

	require.NoError(t, service.DisableAutostart("BreathBox"))
	_, err = os.Stat(entryPath)
	require.True(t, os.IsNotExist(err))
}

func TestEnableAutostartRejectsEmptyArguments(t *testing.T) {
	service := NewService()
	require.Error(t, service.EnableAutostart("", "/usr/bin/breathbox"))
	require.Error(t, service.EnableAutostart("BreathBox", ""))
}
