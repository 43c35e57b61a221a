//go:build darwin

package platform

import (
	"time"

	"floattimer/internal/core/clock"
)

type idleProvider struct{}

func newIdleProvider() IdleProvider {
	return &idleProvider{}
}

func (provider *idleProvider) IdleDuration() (time.Duration, error) {
	return 0, clock.ErrIdleUnsupported
}
