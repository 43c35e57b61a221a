package storage

import (
	"path/filepath"
	"testing"
	"time"

	"floattimer/internal/core/timer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestHistory(t *testing.T) *History {
	t.Helper()
	history, err := OpenHistoryAt(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, history.Close())
	})
	return history
}

func TestHistoryRecordAndRecent(t *testing.T) {
	history := openTestHistory(t)

	first := Session{
		Mode:       timer.ModeCountdown,
		Configured: 5 * time.Minute,
		Duration:   5 * time.Minute,
		Expired:    true,
		EndedAt:    time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
	}
	second := Session{
		Mode:     timer.ModeStopwatch,
		Duration: 42 * time.Second,
		EndedAt:  time.Date(2025, 3, 1, 11, 0, 0, 0, time.UTC),
	}
	require.NoError(t, history.Record(first))
	require.NoError(t, history.Record(second))

	sessions, err := history.Recent(10)
	require.NoError(t, err)
	require.Len(t, sessions, 2)

	// Newest first.
	assert.Equal(t, timer.ModeStopwatch, sessions[0].Mode)
	assert.Equal(t, 42*time.Second, sessions[0].Duration)
	assert.False(t, sessions[0].Expired)

	assert.Equal(t, timer.ModeCountdown, sessions[1].Mode)
	assert.Equal(t, 5*time.Minute, sessions[1].Configured)
	assert.Equal(t, 5*time.Minute, sessions[1].Duration)
	assert.True(t, sessions[1].Expired)
	assert.True(t, sessions[1].EndedAt.Equal(first.EndedAt))
}

func TestHistoryRecentLimit(t *testing.T) {
	history := openTestHistory(t)

	for i := 0; i < 5; i++ {
		require.NoError(t, history.Record(Session{
			Mode:     timer.ModeStopwatch,
			Duration: time.Duration(i+1) * time.Second,
			EndedAt:  time.Date(2025, 3, 1, 10, i, 0, 0, time.UTC),
		}))
	}

	sessions, err := history.Recent(3)
	require.NoError(t, err)
	require.Len(t, sessions, 3)
	assert.Equal(t, 5*time.Second, sessions[0].Duration)
}

func TestHistoryEmpty(t *testing.T) {
	history := openTestHistory(t)

	sessions, err := history.Recent(10)
	require.NoError(t, err)
	assert.Empty(t, sessions)
}
