package flash

import (
	"context"
	"image/color"
	"math/rand"
	"sync"
	"time"
)

// Range defines a duration range with random sampling.
type Range struct {
	Min time.Duration
	Max time.Duration
}

// Random returns a random duration within the range.
func (value Range) Random(rng *rand.Rand) time.Duration {
	if value.Max <= value.Min {
		return value.Min
	}
	delta := value.Max - value.Min
	return value.Min + time.Duration(rng.Int63n(int64(delta)))
}

// Config contains flash timing values.
type Config struct {
	Cycles      int
	OnDuration  Range
	OffDuration Range
}

// DefaultConfig returns the expiry alert timing: four danger/base
// alternations of 160ms each.
func DefaultConfig() Config {
	return Config{
		Cycles: 4,
		OnDuration: Range{
			Min: 160 * time.Millisecond,
			Max: 160 * time.Millisecond,
		},
		OffDuration: Range{
			Min: 160 * time.Millisecond,
			Max: 160 * time.Millisecond,
		},
	}
}

// Engine flashes the widget background between its base color and a danger
// color when a countdown expires.
type Engine struct {
	mu            sync.Mutex
	config        Config
	baseColor     color.Color
	dangerColor   color.Color
	setBackground func(color.Color)
	cancel        context.CancelFunc
	rng           *rand.Rand
}

// New creates a flash engine. setBackground is invoked from a background
// goroutine; the caller marshals onto the UI thread.
func New(config Config, base, danger color.Color, setBackground func(color.Color)) *Engine {
	if config.Cycles <= 0 {
		config.Cycles = DefaultConfig().Cycles
	}
	return &Engine{
		config:        config,
		baseColor:     base,
		dangerColor:   danger,
		setBackground: setBackground,
		rng:           rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Start begins a flash sequence, cancelling any sequence in progress. The
// background always ends on the base color.
func (engine *Engine) Start(parent context.Context) {
	engine.mu.Lock()
	if engine.cancel != nil {
		engine.cancel()
	}
	runCtx, cancel := context.WithCancel(parent)
	engine.cancel = cancel
	engine.mu.Unlock()

	go engine.run(runCtx)
}

// Stop cancels any active flash and restores the base color.
func (engine *Engine) Stop() {
	engine.mu.Lock()
	if engine.cancel != nil {
		engine.cancel()
		engine.cancel = nil
	}
	engine.mu.Unlock()
	engine.setBackground(engine.baseColor)
}

func (engine *Engine) run(ctx context.Context) {
	defer engine.setBackground(engine.baseColor)

	for i := 0; i < engine.config.Cycles; i++ {
		engine.setBackground(engine.dangerColor)
		if !sleepWithContext(ctx, engine.config.OnDuration.Random(engine.rng)) {
			return
		}
		engine.setBackground(engine.baseColor)
		if !sleepWithContext(ctx, engine.config.OffDuration.Random(engine.rng)) {
			return
		}
	}
}

func sleepWithContext(ctx context.Context, duration time.Duration) bool {
	timer := time.NewTimer(duration)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
