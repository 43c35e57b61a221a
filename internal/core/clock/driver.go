package clock

import (
	"errors"
	"log"
	"sync"
	"time"

	"floattimer/internal/core/model"
	"floattimer/internal/core/timer"
)

// ErrIdleUnsupported indicates idle detection is not available on this system.
var ErrIdleUnsupported = errors.New("idle detection unsupported")

// IdleChecker reports the duration of user inactivity.
type IdleChecker interface {
	IdleDuration() (time.Duration, error)
}

// Config contains runtime options for the Driver.
type Config struct {
	TickInterval time.Duration
}

// Driver feeds wall-clock time into a timer engine. Each wakeup applies the
// actually elapsed duration since the previous one, not the nominal
// interval, so a stalled host loop produces one large catch-up tick instead
// of accumulated drift.
type Driver struct {
	mu          sync.Mutex
	engine      *timer.Engine
	config      model.TimerConfig
	options     Config
	idleChecker IdleChecker
	idleStop    bool
	lastIdle    time.Time
	lastTick    time.Time
	now         func() time.Time
	stopCh      chan struct{}
	running     bool
}

// New creates a Driver for the given engine. The tick interval comes from
// options, falling back to the timer configuration.
func New(engine *timer.Engine, config model.TimerConfig, options Config) *Driver {
	if options.TickInterval <= 0 {
		options.TickInterval = config.TickInterval
	}
	if options.TickInterval <= 0 {
		options.TickInterval = 100 * time.Millisecond
	}
	if config.IdleCheckInterval <= 0 {
		config.IdleCheckInterval = 5 * time.Second
	}
	return &Driver{
		engine:   engine,
		config:   config,
		options:  options,
		idleStop: config.IdleStopEnabled,
		now:      time.Now,
	}
}

// SetIdleChecker injects an idle checker.
func (driver *Driver) SetIdleChecker(checker IdleChecker) {
	driver.mu.Lock()
	defer driver.mu.Unlock()
	driver.idleChecker = checker
}

// UpdateConfig replaces runtime configuration. A changed tick interval
// restarts the ticking loop so it takes effect immediately.
func (driver *Driver) UpdateConfig(config model.TimerConfig) {
	driver.mu.Lock()
	if config.IdleCheckInterval <= 0 {
		config.IdleCheckInterval = 5 * time.Second
	}
	driver.config = config
	driver.idleStop = config.IdleStopEnabled
	restart := false
	if config.TickInterval > 0 && config.TickInterval != driver.options.TickInterval {
		driver.options.TickInterval = config.TickInterval
		restart = driver.running
	}
	driver.mu.Unlock()

	if restart {
		driver.Stop()
		driver.Start()
	}
}

// Start launches the ticking loop.
func (driver *Driver) Start() {
	driver.mu.Lock()
	if driver.running {
		driver.mu.Unlock()
		return
	}
	driver.running = true
	driver.lastTick = driver.now()
	driver.lastIdle = time.Time{}
	driver.stopCh = make(chan struct{})
	stopCh := driver.stopCh
	interval := driver.options.TickInterval
	driver.mu.Unlock()

	go driver.run(stopCh, interval)
}

// Stop terminates the ticking loop.
func (driver *Driver) Stop() {
	driver.mu.Lock()
	if !driver.running {
		driver.mu.Unlock()
		return
	}
	close(driver.stopCh)
	driver.running = false
	driver.mu.Unlock()
}

func (driver *Driver) run(stopCh chan struct{}, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			driver.tick()
		}
	}
}

func (driver *Driver) tick() {
	driver.mu.Lock()
	tickTime := driver.now()
	delta := tickTime.Sub(driver.lastTick)
	driver.lastTick = tickTime
	driver.mu.Unlock()

	driver.engine.Tick(delta)
	driver.checkIdle(tickTime)
}

// checkIdle stops a running stopwatch once the user has been idle past the
// configured threshold. Countdowns keep running unattended.
func (driver *Driver) checkIdle(now time.Time) {
	driver.mu.Lock()
	checker := driver.idleChecker
	enabled := driver.idleStop
	threshold := driver.config.IdleStopAfter
	interval := driver.config.IdleCheckInterval
	due := driver.lastIdle.IsZero() || now.Sub(driver.lastIdle) >= interval
	if enabled && checker != nil && due {
		driver.lastIdle = now
	}
	driver.mu.Unlock()

	if !enabled || checker == nil || !due || threshold <= 0 {
		return
	}
	if driver.engine.Mode() != timer.ModeStopwatch || !driver.engine.Running() {
		return
	}

	idleDuration, err := checker.IdleDuration()
	if err != nil {
		if errors.Is(err, ErrIdleUnsupported) {
			driver.mu.Lock()
			driver.idleStop = false
			driver.mu.Unlock()
			return
		}
		log.Printf("idle check: %v", err)
		return
	}
	if idleDuration >= threshold {
		driver.engine.Stop()
	}
}
