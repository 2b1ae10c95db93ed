// SPDX-License-Identifier: MIT

// Package numutil: the clock-injected Sleeper.
package numutil

import (
	"context"
	"time"

	"github.com/coder/quartz"
)

// panicNilClock flags a nil clock passed to NewSleeper (programmer error).
const panicNilClock = "numutil: NewSleeper: clock must not be nil"

// Sleeper pauses callers on an injectable clock. Production code uses
// NewRealSleeper; tests inject quartz.NewMock(t) and advance time
// explicitly, so nothing pacing itself on a Sleeper ever has to wall-wait
// in a test run.
type Sleeper struct {
	clock quartz.Clock
}

// NewSleeper wraps the given clock. Panics on nil.
func NewSleeper(clock quartz.Clock) *Sleeper {
	if clock == nil {
		panic(panicNilClock)
	}

	return &Sleeper{clock: clock}
}

// NewRealSleeper returns a Sleeper over the real wall clock.
func NewRealSleeper() *Sleeper {
	return NewSleeper(quartz.NewReal())
}

// Sleep blocks until d has elapsed on the underlying clock or ctx is
// done, whichever comes first. Returns nil when the duration elapsed and
// ctx.Err() on cancellation. A non-positive d returns immediately.
func (s *Sleeper) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	elapsed := make(chan struct{})
	timer := s.clock.AfterFunc(d, func() { close(elapsed) })
	defer timer.Stop()

	select {
	case <-elapsed:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// After returns a channel that delivers the clock's time once ms
// milliseconds have elapsed. Fractional milliseconds are honored.
func (s *Sleeper) After(ms float64) <-chan time.Time {
	return s.clock.NewTimer(time.Duration(ms * float64(time.Millisecond))).C
}
