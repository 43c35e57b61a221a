package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"floattimer/internal/ui/preferences"
	"gopkg.in/yaml.v3"
)

const settingsFileName = "settings.yaml"

type yamlSettings struct {
	CountdownHours   int `yaml:"countdown_hours"`
	CountdownMinutes int `yaml:"countdown_minutes"`
	CountdownSeconds int `yaml:"countdown_seconds"`

	TickIntervalMillis int `yaml:"tick_interval_millis"`

	ChimeEnabled bool `yaml:"chime_enabled"`
	IdleEnabled  bool `yaml:"idle_enabled"`
	Autostart    bool `yaml:"autostart"`

	WidgetOpacity float64 `yaml:"widget_opacity"`
	ZenOnStart    bool    `yaml:"zen_on_start"`
}

// LoadSettings reads user preferences from YAML.
// If the config file does not exist, default settings are returned.
func LoadSettings(appName string) (preferences.Settings, error) {
	settings := preferences.DefaultSettings()
	configPath, err := resolveConfigPath(appName)
	if err != nil {
		return settings, err
	}

	rawData, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&settings, fileData)
	return settings, nil
}

// SaveSettings writes user preferences to YAML.
func SaveSettings(appName string, settings preferences.Settings) error {
	configPath, err := resolveConfigPath(appName)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	fileData := yamlSettings{
		CountdownHours:     settings.CountdownHours,
		CountdownMinutes:   settings.CountdownMinutes,
		CountdownSeconds:   settings.CountdownSeconds,
		TickIntervalMillis: int(settings.TickInterval / time.Millisecond),
		ChimeEnabled:       settings.ChimeEnabled,
		IdleEnabled:        settings.IdleEnabled,
		Autostart:          settings.Autostart,
		WidgetOpacity:      settings.WidgetOpacity,
		ZenOnStart:         settings.ZenOnStart,
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(configPath, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

func resolveConfigPath(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, settingsFileName), nil
}

func applyYamlSettings(settings *preferences.Settings, fileData yamlSettings) {
	if fileData.CountdownHours >= 0 &&
		fileData.CountdownMinutes >= 0 &&
		fileData.CountdownSeconds >= 0 &&
		fileData.CountdownHours+fileData.CountdownMinutes+fileData.CountdownSeconds > 0 {
		settings.CountdownHours = fileData.CountdownHours
		settings.CountdownMinutes = fileData.CountdownMinutes
		settings.CountdownSeconds = fileData.CountdownSeconds
	}

	if fileData.TickIntervalMillis > 0 {
		settings.TickInterval = time.Duration(fileData.TickIntervalMillis) * time.Millisecond
	}

	if fileData.WidgetOpacity >= 0.7 && fileData.WidgetOpacity <= 0.95 {
		settings.WidgetOpacity = fileData.WidgetOpacity
	}

	settings.ChimeEnabled = fileData.ChimeEnabled
	settings.IdleEnabled = fileData.IdleEnabled
	settings.Autostart = fileData.Autostart
	settings.ZenOnStart = fileData.ZenOnStart
}
