package ai

import (
	"context"
	"time"

	apperrors "github.com/fridgewise/v1/pkg/errors"
)

// RetryPolicy retries an outbound call on rate-limit signals only.
// Backoff is linear: attempt index times BackoffStep. Non-rate-limit
// errors propagate immediately without retry.
type RetryPolicy struct {
	MaxAttempts int
	BackoffStep time.Duration

	// sleep is injectable for tests; defaults to a context-aware wait
	sleep func(ctx context.Context, d time.Duration) error
}

// Do runs op up to MaxAttempts times. When isRateLimited(err) holds and
// attempts remain, it waits attempt×BackoffStep and retries; when the
// final attempt is still rate limited it returns the distinct
// "try again later" error. Context cancellation aborts pending waits.
func (p RetryPolicy) Do(ctx context.Context, op func(ctx context.Context) (string, error), isRateLimited func(error) bool) (string, error) {
	attempts := p.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}
	wait := p.sleep
	if wait == nil {
		wait = sleepContext
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		result, err := op(ctx)
		if err == nil {
			return result, nil
		}
		if !isRateLimited(err) {
			return "", err
		}

		lastErr = err
		if attempt < attempts {
			aiRetriesTotal.Inc()
			if err := wait(ctx, time.Duration(attempt)*p.BackoffStep); err != nil {
				return "", err
			}
		}
	}

	return "", apperrors.NewAIRateLimitedError(lastErr)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
