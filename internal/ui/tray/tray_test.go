package tray_test

import (
	"testing"
	"time"

	"floattimer/internal/core/timer"
	"floattimer/internal/storage"
	"floattimer/internal/ui/tray"

	"github.com/stretchr/testify/assert"
)

func TestStatusText(t *testing.T) {
	cases := []struct {
		name     string
		snapshot timer.Snapshot
		want     string
	}{
		{
			name:     "running stopwatch",
			snapshot: timer.Snapshot{Mode: timer.ModeStopwatch, Running: true, Elapsed: 65 * time.Second},
			want:     "00:01:05",
		},
		{
			name:     "stopped stopwatch",
			snapshot: timer.Snapshot{Mode: timer.ModeStopwatch, Elapsed: 65 * time.Second},
			want:     "00:01:05 (stopped)",
		},
		{
			name:     "running countdown",
			snapshot: timer.Snapshot{Mode: timer.ModeCountdown, Running: true, Remaining: 90 * time.Second},
			want:     "00:01:30",
		},
		{
			name:     "expired countdown",
			snapshot: timer.Snapshot{Mode: timer.ModeCountdown, Expired: true},
			want:     "00:00:00 (expired)",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tray.StatusText(tc.snapshot))
		})
	}
}

func TestSessionText(t *testing.T) {
	endedAt := time.Date(2026, time.March, 7, 14, 30, 0, 0, time.UTC)

	stopwatch := storage.Session{
		Mode:     timer.ModeStopwatch,
		Duration: 12*time.Minute + 34*time.Second,
		EndedAt:  endedAt,
	}
	assert.Equal(t, "Stopwatch 00:12:34, Mar 7 14:30", tray.SessionText(stopwatch))

	countdown := storage.Session{
		Mode:       timer.ModeCountdown,
		Configured: 5 * time.Minute,
		Duration:   5 * time.Minute,
		Expired:    true,
		EndedAt:    endedAt,
	}
	assert.Equal(t, "Countdown 00:05:00 (expired), Mar 7 14:30", tray.SessionText(countdown))
}
