package sound

import (
	"fmt"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/generators"
	"github.com/faiface/beep/speaker"
)

const (
	sampleRate  = beep.SampleRate(44100)
	chimeFreq   = 880.0
	chimeLength = 350 * time.Millisecond
	chimeGap    = 150 * time.Millisecond
	chimeCount  = 3
)

// Chime plays the countdown-expired alert tone.
type Chime struct {
	mu      sync.Mutex
	enabled bool
	ready   bool
}

// NewChime initializes the speaker. On failure the returned chime is
// permanently silent and the error reports why.
func NewChime(enabled bool) (*Chime, error) {
	chime := &Chime{enabled: enabled}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return chime, fmt.Errorf("init speaker: %w", err)
	}
	chime.ready = true
	return chime, nil
}

// SetEnabled toggles playback without touching the speaker.
func (chime *Chime) SetEnabled(enabled bool) {
	chime.mu.Lock()
	defer chime.mu.Unlock()
	chime.enabled = enabled
}

// Play sounds the alert: three short sine beeps. Non-blocking.
func (chime *Chime) Play() {
	chime.mu.Lock()
	active := chime.enabled && chime.ready
	chime.mu.Unlock()
	if !active {
		return
	}

	var segments []beep.Streamer
	for i := 0; i < chimeCount; i++ {
		tone, err := generators.SinTone(sampleRate, chimeFreq)
		if err != nil {
			return
		}
		segments = append(segments,
			beep.Take(sampleRate.N(chimeLength), tone),
			beep.Silence(sampleRate.N(chimeGap)),
		)
	}

	speaker.Play(&effects.Volume{
		Streamer: beep.Seq(segments...),
		Base:     2,
		Volume:   0,
	})
}
