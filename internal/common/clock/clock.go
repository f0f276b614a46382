package clock

import (
	"context"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_clock.go github.com/KirkDiggler/standup/internal/common/clock Clock
type Clock interface {
	Now() time.Time
}

// DefaultClock implements the Clock interface using the system clock
type DefaultClock struct{}

// Now returns the current time
func (c *DefaultClock) Now() time.Time {
	return time.Now()
}

// Every calls fn once per interval until ctx is cancelled. It is the tick
// source that drives running speaker turns; fn must not block for longer
// than one interval or ticks are dropped by the underlying time.Ticker.
func Every(ctx context.Context, interval time.Duration, fn func(t time.Time)) {
	if interval <= 0 {
		interval = time.Second
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case t := <-ticker.C:
			fn(t)
		}
	}
}
