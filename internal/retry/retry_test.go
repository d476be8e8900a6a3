package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	ai "github.com/spetersoncode/switchboard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastConfig(attempts int) ai.RetryConfig {
	return ai.RetryConfig{
		MaxAttempts:  attempts,
		InitialDelay: time.Millisecond,
		MaxDelay:     10 * time.Millisecond,
		Multiplier:   2.0,
	}
}

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "rate limit status", err: ai.NewProviderError(ai.ProviderOpenAI, 429, 0, "", nil), want: true},
		{name: "rate limit text", err: errors.New("Rate limit reached for requests"), want: true},
		{name: "server error", err: ai.NewProviderError(ai.ProviderGoogle, 503, 0, "", nil), want: true},
		{name: "bad gateway", err: errors.New("upstream returned 502"), want: true},
		{name: "invalid key", err: ai.NewProviderError(ai.ProviderAnthropic, 401, 0, "", nil), want: false},
		{name: "invalid wins over 503", err: errors.New("invalid request, 503"), want: false},
		{name: "unknown", err: errors.New("connection reset by peer"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsRetryable(tt.err))
		})
	}
}

func TestDoSuccess(t *testing.T) {
	callCount := 0

	result, err := Do(context.Background(), ai.DefaultRetryConfig(), func() (string, error) {
		callCount++
		return "success", nil
	})

	assert.NoError(t, err)
	assert.Equal(t, "success", result)
	assert.Equal(t, 1, callCount)
}

func TestDoRetriesRetryableErrors(t *testing.T) {
	callCount := 0
	rateLimited := ai.NewProviderError(ai.ProviderOpenRouter, 429, 0, "", nil)

	result, err := Do(context.Background(), fastConfig(3), func() (string, error) {
		callCount++
		if callCount < 3 {
			return "", rateLimited
		}
		return "success", nil
	})

	assert.NoError(t, err)
	assert.Equal(t, "success", result)
	assert.Equal(t, 3, callCount)
}

func TestDoDoesNotRetryOtherErrors(t *testing.T) {
	for _, failure := range []error{
		ai.NewProviderError(ai.ProviderOpenAI, 401, 0, "", nil),
		errors.New("something odd happened"),
	} {
		callCount := 0
		_, err := Do(context.Background(), fastConfig(5), func() (string, error) {
			callCount++
			return "", failure
		})

		assert.Equal(t, failure, err)
		assert.Equal(t, 1, callCount)
	}
}

func TestDoExhaustsAttempts(t *testing.T) {
	callCount := 0
	unavailable := ai.NewProviderError(ai.ProviderGoogle, 503, 0, "", nil)

	_, err := Do(context.Background(), fastConfig(3), func() (string, error) {
		callCount++
		return "", unavailable
	})

	assert.Equal(t, unavailable, err)
	assert.Equal(t, 3, callCount)
}

func TestDoWithDisabledRetry(t *testing.T) {
	callCount := 0

	_, err := Do(context.Background(), ai.DisabledRetryConfig(), func() (string, error) {
		callCount++
		return "", ai.NewProviderError(ai.ProviderOpenAI, 429, 0, "", nil)
	})

	assert.Error(t, err)
	assert.Equal(t, 1, callCount)
}

func TestDoTreatsZeroAttemptsAsOne(t *testing.T) {
	callCount := 0
	_, err := Do(context.Background(), ai.RetryConfig{}, func() (int, error) {
		callCount++
		return 0, errors.New("boom")
	})
	assert.Error(t, err)
	assert.Equal(t, 1, callCount)
}

func TestDoRespectsContextCancellation(t *testing.T) {
	cfg := ai.RetryConfig{
		MaxAttempts:  10,
		InitialDelay: time.Second,
		MaxDelay:     time.Second,
		Multiplier:   1.0,
	}

	ctx, cancel := context.WithCancel(context.Background())
	callCount := 0

	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	_, err := Do(ctx, cfg, func() (string, error) {
		callCount++
		return "", ai.NewProviderError(ai.ProviderOpenAI, 500, 0, "", nil)
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, callCount)
}

func TestDoHonorsRetryAfter(t *testing.T) {
	cfg := ai.RetryConfig{
		MaxAttempts:  2,
		InitialDelay: time.Millisecond,
		MaxDelay:     time.Second,
		Multiplier:   2.0,
	}

	var callTimes []time.Time
	retryErr := ai.NewProviderError(ai.ProviderOpenAI, 429, 50*time.Millisecond, "", nil)

	_, err := Do(context.Background(), cfg, func() (string, error) {
		callTimes = append(callTimes, time.Now())
		if len(callTimes) < 2 {
			return "", retryErr
		}
		return "ok", nil
	})

	require.NoError(t, err)
	require.Len(t, callTimes, 2)
	assert.GreaterOrEqual(t, callTimes[1].Sub(callTimes[0]), 45*time.Millisecond)
}

func TestEffectiveDelay(t *testing.T) {
	tests := []struct {
		name       string
		configured time.Duration
		retryAfter time.Duration
		maxDelay   time.Duration
		want       time.Duration
	}{
		{name: "retry-after larger", configured: 100 * time.Millisecond, retryAfter: 500 * time.Millisecond, maxDelay: time.Second, want: 500 * time.Millisecond},
		{name: "configured larger", configured: 500 * time.Millisecond, retryAfter: 100 * time.Millisecond, maxDelay: time.Second, want: 500 * time.Millisecond},
		{name: "no retry-after", configured: 100 * time.Millisecond, maxDelay: time.Second, want: 100 * time.Millisecond},
		{name: "capped by max delay", configured: 100 * time.Millisecond, retryAfter: time.Minute, maxDelay: time.Second, want: time.Second},
		{name: "no cap", configured: 100 * time.Millisecond, retryAfter: time.Minute, want: time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ai.NewProviderError(ai.ProviderOpenAI, 429, tt.retryAfter, "", nil)
			assert.Equal(t, tt.want, effectiveDelay(tt.configured, tt.maxDelay, err))
		})
	}
}

func TestDoWithEvents(t *testing.T) {
	var events []Event
	callCount := 0

	_, err := DoWithEvents(context.Background(), fastConfig(2), func(e Event) {
		events = append(events, e)
	}, func() (string, error) {
		callCount++
		return "", ai.NewProviderError(ai.ProviderOpenAI, 503, 0, "", nil)
	})
	require.Error(t, err)

	var types []EventType
	for _, e := range events {
		types = append(types, e.Type)
		assert.False(t, e.Timestamp.IsZero())
	}
	assert.Equal(t, []EventType{
		EventAttemptStart, EventAttemptFailed, EventRetrying,
		EventAttemptStart, EventAttemptFailed, EventExhausted,
	}, types)
	assert.True(t, events[1].Retryable)
	assert.Equal(t, 2, events[5].Attempt)
}
