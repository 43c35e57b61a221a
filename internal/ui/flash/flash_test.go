package flash

import (
	"context"
	"image/color"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type colorRecorder struct {
	mu     sync.Mutex
	colors []color.Color
}

func (recorder *colorRecorder) set(value color.Color) {
	recorder.mu.Lock()
	defer recorder.mu.Unlock()
	recorder.colors = append(recorder.colors, value)
}

func (recorder *colorRecorder) snapshot() []color.Color {
	recorder.mu.Lock()
	defer recorder.mu.Unlock()
	return append([]color.Color(nil), recorder.colors...)
}

func TestFlashEndsOnBaseColor(t *testing.T) {
	base := color.NRGBA{R: 1}
	danger := color.NRGBA{R: 2}
	recorder := &colorRecorder{}

	config := Config{
		Cycles:      2,
		OnDuration:  Range{Min: 5 * time.Millisecond, Max: 5 * time.Millisecond},
		OffDuration: Range{Min: 5 * time.Millisecond, Max: 5 * time.Millisecond},
	}
	engine := New(config, base, danger, recorder.set)
	engine.Start(context.Background())

	// Two cycles of 10ms plus the final restore.
	require.Eventually(t, func() bool {
		return len(recorder.snapshot()) >= 5
	}, 2*time.Second, 5*time.Millisecond)

	colors := recorder.snapshot()
	assert.Contains(t, colors, color.Color(danger))
	assert.Equal(t, color.Color(base), colors[len(colors)-1])
}

func TestFlashStopRestoresBase(t *testing.T) {
	base := color.NRGBA{R: 1}
	danger := color.NRGBA{R: 2}
	recorder := &colorRecorder{}

	config := Config{
		Cycles:      1000,
		OnDuration:  Range{Min: time.Millisecond, Max: 2 * time.Millisecond},
		OffDuration: Range{Min: time.Millisecond, Max: 2 * time.Millisecond},
	}
	engine := New(config, base, danger, recorder.set)
	engine.Start(context.Background())

	require.Eventually(t, func() bool {
		return len(recorder.snapshot()) > 0
	}, 2*time.Second, time.Millisecond)

	engine.Stop()
	time.Sleep(20 * time.Millisecond)

	colors := recorder.snapshot()
	assert.Equal(t, color.Color(base), colors[len(colors)-1])
}

func TestRangeRandomWithinBounds(t *testing.T) {
	engine := New(Config{}, color.Black, color.White, func(color.Color) {})
	value := Range{Min: 10 * time.Millisecond, Max: 20 * time.Millisecond}
	for i := 0; i < 100; i++ {
		sample := value.Random(engine.rng)
		assert.GreaterOrEqual(t, sample, value.Min)
		assert.Less(t, sample, value.Max)
	}
}

func TestRangeRandomDegenerate(t *testing.T) {
	engine := New(Config{}, color.Black, color.White, func(color.Color) {})
	value := Range{Min: 7 * time.Millisecond, Max: 7 * time.Millisecond}
	assert.Equal(t, 7*time.Millisecond, value.Random(engine.rng))
}
