package preferences

import (
	"time"

	"floattimer/internal/core/model"
)

// Settings defines editable user preferences.
type Settings struct {
	CountdownHours   int
	CountdownMinutes int
	CountdownSeconds int

	TickInterval time.Duration

	ChimeEnabled bool
	IdleEnabled  bool
	Autostart    bool

	WidgetOpacity float64
	ZenOnStart    bool
}

// DefaultSettings returns default settings for FloatTimer.
func DefaultSettings() Settings {
	return Settings{
		CountdownMinutes: 5,
		TickInterval:     100 * time.Millisecond,
		ChimeEnabled:     true,
		IdleEnabled:      false,
		Autostart:        false,
		WidgetOpacity:    0.85,
		ZenOnStart:       false,
	}
}

// CountdownDuration returns the configured countdown base.
func (settings Settings) CountdownDuration() time.Duration {
	return time.Duration(settings.CountdownHours)*time.Hour +
		time.Duration(settings.CountdownMinutes)*time.Minute +
		time.Duration(settings.CountdownSeconds)*time.Second
}

// TimerConfig converts settings to TimerConfig.
func (settings Settings) TimerConfig() model.TimerConfig {
	tickInterval := settings.TickInterval
	if tickInterval <= 0 {
		tickInterval = 100 * time.Millisecond
	}
	return model.TimerConfig{
		DefaultCountdown:  settings.CountdownDuration(),
		TickInterval:      tickInterval,
		IdleStopEnabled:   settings.IdleEnabled,
		IdleStopAfter:     5 * time.Minute,
		IdleCheckInterval: 5 * time.Second,
	}
}
