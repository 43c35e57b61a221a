package timer

import "time"

// Mode selects which duration the engine advances.
type Mode string

const (
	ModeStopwatch Mode = "stopwatch"
	ModeCountdown Mode = "countdown"
)

// EventType defines the type of engine event.
type EventType string

const (
	EventStateChange EventType = "state_change"
	EventProgress    EventType = "progress"
	EventExpired     EventType = "expired"
)

// Event represents an engine update for observers.
type Event struct {
	Type      EventType
	Mode      Mode
	Running   bool
	Elapsed   time.Duration
	Remaining time.Duration
	At        time.Time
}

// Snapshot is a point-in-time copy of the engine state.
type Snapshot struct {
	Mode       Mode
	Running    bool
	Expired    bool
	Elapsed    time.Duration
	Remaining  time.Duration
	Configured time.Duration
}
