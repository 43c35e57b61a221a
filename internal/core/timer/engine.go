package timer

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

// ErrInvalidDuration indicates a zero or negative countdown configuration.
var ErrInvalidDuration = errors.New("countdown duration must be positive")

const defaultCountdown = 5 * time.Minute

// Engine is the timer state machine. It counts up in stopwatch mode and
// down in countdown mode, but performs no scheduling of its own: time only
// advances when a caller feeds it measured deltas through Tick.
type Engine struct {
	mu         sync.Mutex
	mode       Mode
	running    bool
	expired    bool
	elapsed    time.Duration
	remaining  time.Duration
	configured time.Duration
	events     []chan Event
}

// New creates an Engine in stopwatch mode with the given countdown base.
func New(configured time.Duration) *Engine {
	if configured <= 0 {
		configured = defaultCountdown
	}
	return &Engine{
		mode:       ModeStopwatch,
		configured: configured,
		remaining:  configured,
	}
}

// Subscribe registers a new observer channel.
func (engine *Engine) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	engine.mu.Lock()
	engine.events = append(engine.events, ch)
	engine.mu.Unlock()
	return ch
}

// Close shuts all observer channels. The engine itself stays usable.
func (engine *Engine) Close() {
	engine.mu.Lock()
	events := engine.events
	engine.events = nil
	engine.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

// ConfigureCountdown sets the base countdown duration from user-supplied
// hours, minutes and seconds. Invalid input is rejected with
// ErrInvalidDuration; a valid configuration is ignored while running.
func (engine *Engine) ConfigureCountdown(hours, minutes, seconds int) error {
	if hours < 0 || minutes < 0 || seconds < 0 {
		return ErrInvalidDuration
	}
	total := time.Duration(hours)*time.Hour +
		time.Duration(minutes)*time.Minute +
		time.Duration(seconds)*time.Second
	if total <= 0 {
		return ErrInvalidDuration
	}

	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.running {
		return nil
	}
	engine.configured = total
	if engine.mode == ModeCountdown {
		engine.remaining = total
	}
	engine.emitLocked(EventStateChange)
	return nil
}

// SetMode switches between stopwatch and countdown. An actual switch
// implies a reset: any in-progress run is stopped and discarded.
// Re-selecting the current mode is a no-op.
func (engine *Engine) SetMode(mode Mode) {
	if mode != ModeStopwatch && mode != ModeCountdown {
		return
	}

	engine.mu.Lock()
	defer engine.mu.Unlock()
	if mode == engine.mode {
		return
	}
	engine.mode = mode
	engine.resetLocked()
	engine.emitLocked(EventStateChange)
}

// Start begins advancing time. No-op while running, and after a countdown
// has expired until Reset re-arms it.
func (engine *Engine) Start() {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.running || engine.expired {
		return
	}
	engine.running = true
	engine.emitLocked(EventStateChange)
}

// Stop freezes the timer. No-op if not running.
func (engine *Engine) Stop() {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if !engine.running {
		return
	}
	engine.running = false
	engine.emitLocked(EventStateChange)
}

// Reset stops the timer, clears the expired latch and restores the active
// duration: elapsed to zero, remaining to the configured countdown base.
func (engine *Engine) Reset() {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	engine.resetLocked()
	engine.emitLocked(EventStateChange)
}

// Tick advances the active duration by delta. Ignored while stopped and
// for non-positive deltas. In countdown mode the remaining duration is
// clamped at zero; the tick that reaches zero stops the engine and latches
// the expired flag.
func (engine *Engine) Tick(delta time.Duration) {
	if delta <= 0 {
		return
	}

	engine.mu.Lock()
	defer engine.mu.Unlock()
	if !engine.running {
		return
	}

	if engine.mode == ModeStopwatch {
		engine.elapsed += delta
		engine.emitLocked(EventProgress)
		return
	}

	engine.remaining -= delta
	if engine.remaining > 0 {
		engine.emitLocked(EventProgress)
		return
	}
	engine.remaining = 0
	engine.running = false
	engine.expired = true
	engine.emitLocked(EventExpired)
}

// Expired reports whether a countdown has run to zero since the last reset.
func (engine *Engine) Expired() bool {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return engine.expired
}

// Mode returns the current mode.
func (engine *Engine) Mode() Mode {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return engine.mode
}

// Running reports whether time is currently advancing.
func (engine *Engine) Running() bool {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return engine.running
}

// Snapshot returns a copy of the full engine state.
func (engine *Engine) Snapshot() Snapshot {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return Snapshot{
		Mode:       engine.mode,
		Running:    engine.running,
		Expired:    engine.expired,
		Elapsed:    engine.elapsed,
		Remaining:  engine.remaining,
		Configured: engine.configured,
	}
}

// DisplayText returns the active duration formatted as HH:MM:SS.
func (engine *Engine) DisplayText() string {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.mode == ModeCountdown {
		return FormatHMS(engine.remaining)
	}
	return FormatHMS(engine.elapsed)
}

// FormatHMS renders a duration as zero-padded HH:MM:SS. Hours widen past
// two digits rather than wrapping.
func FormatHMS(value time.Duration) string {
	if value < 0 {
		value = 0
	}
	seconds := int64(value / time.Second)
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	seconds = seconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}

func (engine *Engine) resetLocked() {
	engine.running = false
	engine.expired = false
	engine.elapsed = 0
	engine.remaining = engine.configured
}

func (engine *Engine) emitLocked(eventType EventType) {
	if len(engine.events) == 0 {
		return
	}
	event := Event{
		Type:      eventType,
		Mode:      engine.mode,
		Running:   engine.running,
		Elapsed:   engine.elapsed,
		Remaining: engine.remaining,
		At:        time.Now(),
	}
	for _, ch := range engine.events {
		select {
		case ch <- event:
		default:
		}
	}
}
