package retry

import ai "github.com/spetersoncode/switchboard"

// IsRetryable reports whether err is worth another attempt: only failures that
// classify as RATE_LIMIT or SERVICE_UNAVAILABLE are retried.
// Credential and unknown failures are returned immediately.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	return ai.Classify(err).Retryable()
}
