package ai

import (
	"context"
	"errors"
	"testing"
	"time"

	apperrors "github.com/fridgewise/v1/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRetryPolicyRecoversAfterRateLimits(t *testing.T) {
	var delays []time.Duration
	policy := RetryPolicy{
		MaxAttempts: 3,
		BackoffStep: 5 * time.Second,
		sleep: func(ctx context.Context, d time.Duration) error {
			delays = append(delays, d)
			return nil
		},
	}

	calls := 0
	result, err := policy.Do(context.Background(), func(ctx context.Context) (string, error) {
		calls++
		if calls < 3 {
			return "", &RateLimitError{StatusCode: 429}
		}
		return "ok", nil
	}, IsRateLimited)

	require.NoError(t, err)
	assert.Equal(t, "ok", result)
	assert.Equal(t, 3, calls)
	// Linear backoff: 1x then 2x the step
	assert.Equal(t, []time.Duration{5 * time.Second, 10 * time.Second}, delays)
}

func TestRetryPolicyExhaustsIntoRetryLater(t *testing.T) {
	policy := RetryPolicy{
		MaxAttempts: 3,
		BackoffStep: 5 * time.Second,
		sleep:       func(ctx context.Context, d time.Duration) error { return nil },
	}

	calls := 0
	_, err := policy.Do(context.Background(), func(ctx context.Context) (string, error) {
		calls++
		return "", &RateLimitError{StatusCode: 429}
	}, IsRateLimited)

	require.Error(t, err)
	assert.Equal(t, 3, calls)
	assert.True(t, apperrors.Is(err, apperrors.CodeAIRateLimited))
}

func TestRetryPolicyDoesNotRetryOtherErrors(t *testing.T) {
	var delays []time.Duration
	policy := RetryPolicy{
		MaxAttempts: 3,
		BackoffStep: 5 * time.Second,
		sleep: func(ctx context.Context, d time.Duration) error {
			delays = append(delays, d)
			return nil
		},
	}

	boom := errors.New("connection refused")
	calls := 0
	_, err := policy.Do(context.Background(), func(ctx context.Context) (string, error) {
		calls++
		return "", boom
	}, IsRateLimited)

	require.ErrorIs(t, err, boom)
	assert.Equal(t, 1, calls)
	assert.Empty(t, delays)
}

func TestRetryPolicyHonorsContextDuringBackoff(t *testing.T) {
	policy := RetryPolicy{
		MaxAttempts: 3,
		BackoffStep: time.Millisecond,
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := policy.Do(ctx, func(ctx context.Context) (string, error) {
		return "", &RateLimitError{StatusCode: 429}
	}, IsRateLimited)

	require.ErrorIs(t, err, context.Canceled)
}

func TestIsRateLimited(t *testing.T) {
	assert.True(t, IsRateLimited(&RateLimitError{StatusCode: 429}))
	assert.False(t, IsRateLimited(errors.New("timeout")))
	assert.False(t, IsRateLimited(nil))
}
