package model

import "time"

// TimerConfig contains runtime settings for the timer engine and its driver.
type TimerConfig struct {
	DefaultCountdown time.Duration
	TickInterval     time.Duration

	IdleStopEnabled   bool
	IdleStopAfter     time.Duration
	IdleCheckInterval time.Duration
}
