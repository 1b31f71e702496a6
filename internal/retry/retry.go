// Package retry implements bounded retry with exponential backoff,
// independent of the call it wraps.
package retry

import (
	"context"
	"math"
	"time"
)

type Policy struct {
	MaxAttempts int
	BaseDelay   time.Duration
	Multiplier  float64
}

func DefaultPolicy() Policy {
	return Policy{
		MaxAttempts: 5,
		BaseDelay:   5 * time.Second,
		Multiplier:  2.0,
	}
}

// Delay returns the backoff before the given retry (attempt is 1-based: the
// delay slept before attempt 2 is BaseDelay, before attempt 3 is doubled,
// and so on).
func (p Policy) Delay(attempt int) time.Duration {
	if attempt <= 1 {
		return 0
	}
	return time.Duration(float64(p.BaseDelay) * math.Pow(p.Multiplier, float64(attempt-2)))
}

// Do invokes fn up to MaxAttempts times, sleeping between attempts, but only
// while retryable classifies the failure as transient. A non-retryable error
// returns immediately. Context cancellation interrupts the backoff wait.
func (p Policy) Do(ctx context.Context, fn func(ctx context.Context) error, retryable func(error) bool) error {
	attempts := p.MaxAttempts
	if attempts <= 0 {
		attempts = 1
	}
	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if attempt > 1 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(p.Delay(attempt)):
			}
		}
		err := fn(ctx)
		if err == nil {
			return nil
		}
		lastErr = err
		if retryable != nil && !retryable(err) {
			return err
		}
	}
	return lastErr
}
