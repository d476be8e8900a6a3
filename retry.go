package switchboard

import (
	"math"
	"math/rand"
	"time"
)

// RetryConfig holds the bounded retry policy the gateway applies to
// RATE_LIMIT and SERVICE_UNAVAILABLE failures.
type RetryConfig struct {
	// MaxAttempts is the maximum number of attempts.
	// The initial request counts as attempt 1.
	MaxAttempts int

	// InitialDelay is the base delay before the first retry.
	InitialDelay time.Duration

	// MaxDelay is the maximum delay between retries.
	MaxDelay time.Duration

	// Multiplier is the exponential backoff multiplier.
	Multiplier float64

	// Jitter adds randomness to prevent thundering herd.
	// Delay is multiplied by (1 + random(-jitter, +jitter)).
	Jitter float64
}

// DefaultRetryConfig returns the recommended bounded retry policy.
//   - 3 max attempts
//   - 500ms initial delay
//   - 10 second max delay
//   - 2x exponential multiplier
//   - 10% jitter
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts:  3,
		InitialDelay: 500 * time.Millisecond,
		MaxDelay:     10 * time.Second,
		Multiplier:   2.0,
		Jitter:       0.1,
	}
}

// DisabledRetryConfig returns a configuration that disables retries (single attempt).
// This is the gateway default.
func DisabledRetryConfig() RetryConfig {
	return RetryConfig{MaxAttempts: 1}
}

// Delay calculates the delay for a given attempt number (0-indexed).
// Formula: min(maxDelay, initialDelay * multiplier^attempt) * (1 + jitter)
func (c RetryConfig) Delay(attempt int) time.Duration {
	if attempt < 0 {
		attempt = 0
	}

	delay := float64(c.InitialDelay) * math.Pow(c.Multiplier, float64(attempt))
	if c.MaxDelay > 0 && delay > float64(c.MaxDelay) {
		delay = float64(c.MaxDelay)
	}

	// Apply jitter: random value in range [-jitter, +jitter]
	if c.Jitter > 0 {
		jitterFactor := 1.0 + (rand.Float64()*2-1)*c.Jitter
		delay *= jitterFactor
	}

	return time.Duration(delay)
}
