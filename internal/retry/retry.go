// Package retry runs provider calls under the gateway's bounded retry policy.
package retry

import (
	"context"
	"time"

	ai "github.com/spetersoncode/switchboard"
)

// effectiveDelay returns the delay to use, honoring server's Retry-After if larger.
// The result never exceeds maxDelay when one is set.
func effectiveDelay(configuredDelay, maxDelay time.Duration, err error) time.Duration {
	delay := configuredDelay
	if serverDelay := ai.RetryAfterOf(err); serverDelay > delay {
		delay = serverDelay
	}
	if maxDelay > 0 && delay > maxDelay {
		delay = maxDelay
	}
	return delay
}

// Do executes fn with retry logic. Only errors accepted by IsRetryable are retried.
// It respects context cancellation during backoff waits.
// Returns the result on success, or the last error if all attempts fail.
func Do[T any](ctx context.Context, cfg ai.RetryConfig, fn func() (T, error)) (T, error) {
	return DoWithEvents(ctx, cfg, nil, fn)
}

// DoWithEvents is like Do but reports each step to observe.
// Pass nil for observe to disable event emission (equivalent to Do).
func DoWithEvents[T any](ctx context.Context, cfg ai.RetryConfig, observe func(Event), fn func() (T, error)) (T, error) {
	var zero T
	var lastErr error

	attempts := max(cfg.MaxAttempts, 1)

	for attempt := 0; attempt < attempts; attempt++ {
		emit(observe, Event{
			Type:        EventAttemptStart,
			Attempt:     attempt + 1,
			MaxAttempts: attempts,
		})

		result, err := fn()
		if err == nil {
			emit(observe, Event{
				Type:        EventSuccess,
				Attempt:     attempt + 1,
				MaxAttempts: attempts,
			})
			return result, nil
		}

		lastErr = err
		retryable := IsRetryable(err)

		emit(observe, Event{
			Type:        EventAttemptFailed,
			Attempt:     attempt + 1,
			MaxAttempts: attempts,
			Error:       err,
			Retryable:   retryable,
		})

		if !retryable {
			return zero, err
		}

		// Don't sleep after the last attempt
		if attempt < attempts-1 {
			delay := effectiveDelay(cfg.Delay(attempt), cfg.MaxDelay, err)

			emit(observe, Event{
				Type:        EventRetrying,
				Attempt:     attempt + 1,
				MaxAttempts: attempts,
				Delay:       delay,
			})

			timer := time.NewTimer(delay)
			select {
			case <-ctx.Done():
				timer.Stop()
				return zero, ctx.Err()
			case <-timer.C:
				// Continue to next attempt
			}
		}
	}

	emit(observe, Event{
		Type:        EventExhausted,
		Attempt:     attempts,
		MaxAttempts: attempts,
		Error:       lastErr,
	})

	return zero, lastErr
}
