package storage

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"floattimer/internal/ui/preferences"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setTestConfigDir(t *testing.T) string {
	t.Helper()
	if runtime.GOOS != "linux" {
		t.Skip("config dir override relies on XDG_CONFIG_HOME")
	}
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	return dir
}

func TestLoadSettingsMissingFileReturnsDefaults(t *testing.T) {
	setTestConfigDir(t)

	settings, err := LoadSettings("floattimer-test")
	require.NoError(t, err)
	assert.Equal(t, preferences.DefaultSettings(), settings)
}

func TestSaveThenLoadSettings(t *testing.T) {
	setTestConfigDir(t)

	saved := preferences.Settings{
		CountdownHours:   1,
		CountdownMinutes: 2,
		CountdownSeconds: 3,
		TickInterval:     250 * time.Millisecond,
		ChimeEnabled:     true,
		IdleEnabled:      true,
		Autostart:        true,
		WidgetOpacity:    0.9,
		ZenOnStart:       true,
	}
	require.NoError(t, SaveSettings("floattimer-test", saved))

	loaded, err := LoadSettings("floattimer-test")
	require.NoError(t, err)
	assert.Equal(t, saved, loaded)
}

func TestLoadSettingsIgnoresOutOfRangeValues(t *testing.T) {
	dir := setTestConfigDir(t)

	configDir := filepath.Join(dir, "floattimer-test")
	require.NoError(t, os.MkdirAll(configDir, 0o755))
	raw := []byte("widget_opacity: 0.1\ntick_interval_millis: -5\ncountdown_hours: 0\ncountdown_minutes: 0\ncountdown_seconds: 0\nchime_enabled: true\n")
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "settings.yaml"), raw, 0o644))

	loaded, err := LoadSettings("floattimer-test")
	require.NoError(t, err)

	defaults := preferences.DefaultSettings()
	assert.Equal(t, defaults.WidgetOpacity, loaded.WidgetOpacity)
	assert.Equal(t, defaults.TickInterval, loaded.TickInterval)
	assert.Equal(t, defaults.CountdownMinutes, loaded.CountdownMinutes)
	assert.True(t, loaded.ChimeEnabled)
}

func TestLoadSettingsBadYAML(t *testing.T) {
	dir := setTestConfigDir(t)

	configDir := filepath.Join(dir, "floattimer-test")
	require.NoError(t, os.MkdirAll(configDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "settings.yaml"), []byte("{not yaml"), 0o644))

	settings, err := LoadSettings("floattimer-test")
	require.Error(t, err)
	assert.Equal(t, preferences.DefaultSettings(), settings)
}
