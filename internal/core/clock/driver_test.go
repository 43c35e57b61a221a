package clock_test

import (
	"testing"
	"time"

	"floattimer/internal/core/clock"
	"floattimer/internal/core/model"
	"floattimer/internal/core/timer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubIdleChecker struct {
	idle time.Duration
	err  error
}

func (checker stubIdleChecker) IdleDuration() (time.Duration, error) {
	return checker.idle, checker.err
}

func TestDriverFeedsMeasuredDeltas(t *testing.T) {
	engine := timer.New(0)
	engine.Start()

	driver := clock.New(engine, model.TimerConfig{}, clock.Config{TickInterval: 10 * time.Millisecond})
	start := time.Now()
	driver.Start()
	defer driver.Stop()

	require.Eventually(t, func() bool {
		return engine.Snapshot().Elapsed >= 50*time.Millisecond
	}, 2*time.Second, 5*time.Millisecond)

	// Measured deltas never outrun the wall clock.
	assert.LessOrEqual(t, engine.Snapshot().Elapsed, time.Since(start)+time.Second)
}

func TestDriverFallsBackToConfigTickInterval(t *testing.T) {
	engine := timer.New(0)
	engine.Start()

	driver := clock.New(engine, model.TimerConfig{TickInterval: 10 * time.Millisecond}, clock.Config{})
	driver.Start()
	defer driver.Stop()

	require.Eventually(t, func() bool {
		return engine.Snapshot().Elapsed > 0
	}, 2*time.Second, 5*time.Millisecond)
}

func TestDriverUpdateConfigAppliesTickInterval(t *testing.T) {
	engine := timer.New(0)
	engine.Start()

	// Start with a tick interval far longer than the test runs for.
	driver := clock.New(engine, model.TimerConfig{}, clock.Config{TickInterval: time.Hour})
	driver.Start()
	defer driver.Stop()

	driver.UpdateConfig(model.TimerConfig{TickInterval: 10 * time.Millisecond})
	require.Eventually(t, func() bool {
		return engine.Snapshot().Elapsed > 0
	}, 2*time.Second, 5*time.Millisecond)
}

func TestDriverStartStopIdempotent(t *testing.T) {
	engine := timer.New(0)
	driver := clock.New(engine, model.TimerConfig{}, clock.Config{TickInterval: 10 * time.Millisecond})

	driver.Start()
	driver.Start()
	driver.Stop()
	driver.Stop()

	// Restart after stop works.
	engine.Start()
	driver.Start()
	defer driver.Stop()
	require.Eventually(t, func() bool {
		return engine.Snapshot().Elapsed > 0
	}, 2*time.Second, 5*time.Millisecond)
}

func TestDriverTicksIgnoredWhileEngineStopped(t *testing.T) {
	engine := timer.New(0)
	driver := clock.New(engine, model.TimerConfig{}, clock.Config{TickInterval: 5 * time.Millisecond})
	driver.Start()
	defer driver.Stop()

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, time.Duration(0), engine.Snapshot().Elapsed)
}

func TestDriverIdleStopsRunningStopwatch(t *testing.T) {
	engine := timer.New(0)
	engine.Start()

	config := model.TimerConfig{
		IdleStopEnabled:   true,
		IdleStopAfter:     time.Minute,
		IdleCheckInterval: time.Millisecond,
	}
	driver := clock.New(engine, config, clock.Config{TickInterval: 5 * time.Millisecond})
	driver.SetIdleChecker(stubIdleChecker{idle: 10 * time.Minute})
	driver.Start()
	defer driver.Stop()

	require.Eventually(t, func() bool {
		return !engine.Running()
	}, 2*time.Second, 5*time.Millisecond)
}

func TestDriverIdleUnsupportedDisablesFeature(t *testing.T) {
	engine := timer.New(0)
	engine.Start()

	config := model.TimerConfig{
		IdleStopEnabled:   true,
		IdleStopAfter:     time.Minute,
		IdleCheckInterval: time.Millisecond,
	}
	driver := clock.New(engine, config, clock.Config{TickInterval: 5 * time.Millisecond})
	driver.SetIdleChecker(stubIdleChecker{err: clock.ErrIdleUnsupported})
	driver.Start()
	defer driver.Stop()

	time.Sleep(100 * time.Millisecond)
	assert.True(t, engine.Running())
}

func TestDriverIdleLeavesCountdownAlone(t *testing.T) {
	engine := timer.New(time.Hour)
	engine.SetMode(timer.ModeCountdown)
	engine.Start()

	config := model.TimerConfig{
		IdleStopEnabled:   true,
		IdleStopAfter:     time.Minute,
		IdleCheckInterval: time.Millisecond,
	}
	driver := clock.New(engine, config, clock.Config{TickInterval: 5 * time.Millisecond})
	driver.SetIdleChecker(stubIdleChecker{idle: 10 * time.Minute})
	driver.Start()
	defer driver.Stop()

	time.Sleep(100 * time.Millisecond)
	assert.True(t, engine.Running())
}
