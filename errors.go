package switchboard

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrorCode is the classification attached to failure envelopes.
type ErrorCode string

const (
	CodeProviderUnavailable ErrorCode = "PROVIDER_UNAVAILABLE"
	CodeInvalidAPIKey       ErrorCode = "INVALID_API_KEY"
	CodeRateLimit           ErrorCode = "RATE_LIMIT"
	CodeServiceUnavailable  ErrorCode = "SERVICE_UNAVAILABLE"
	CodeUnknown             ErrorCode = "UNKNOWN_ERROR"
	CodeRequestFailed       ErrorCode = "REQUEST_FAILED"
	CodeValidationFailed    ErrorCode = "VALIDATION_FAILED"
)

// Retryable reports whether a failure with this code may succeed on a later attempt.
func (c ErrorCode) Retryable() bool {
	return c == CodeRateLimit || c == CodeServiceUnavailable
}

// classification markers, checked in order; the first rule with a matching marker wins.
// caseless markers are compared against the lower-cased message.
var classificationRules = []struct {
	code     ErrorCode
	markers  []string
	caseless []string
}{
	{code: CodeInvalidAPIKey, markers: []string{"401"}, caseless: []string{"invalid"}},
	{code: CodeRateLimit, markers: []string{"429"}, caseless: []string{"rate limit"}},
	{code: CodeServiceUnavailable, markers: []string{"500", "502", "503"}},
}

// ClassifyMessage maps raw provider error text to an ErrorCode.
// It is a substring heuristic: text that carries none of the markers is CodeUnknown.
func ClassifyMessage(msg string) ErrorCode {
	lower := strings.ToLower(msg)
	for _, rule := range classificationRules {
		for _, m := range rule.markers {
			if strings.Contains(msg, m) {
				return rule.code
			}
		}
		for _, m := range rule.caseless {
			if strings.Contains(lower, m) {
				return rule.code
			}
		}
	}
	return CodeUnknown
}

// Classify maps a provider call error to an ErrorCode. A nil error is CodeUnknown.
func Classify(err error) ErrorCode {
	if err == nil {
		return CodeUnknown
	}
	return ClassifyMessage(err.Error())
}

// ErrorCategory classifies errors by how they should be handled.
type ErrorCategory string

const (
	// ErrorTransient indicates the error is temporary and the operation can be retried.
	// Examples: rate limits, temporary network issues, server overload.
	ErrorTransient ErrorCategory = "transient"

	// ErrorPermanent indicates the error is not recoverable through retry.
	// Examples: invalid API key, insufficient permissions.
	ErrorPermanent ErrorCategory = "permanent"

	// ErrorUserInput indicates the request was rejected and must be corrected.
	// Examples: malformed request, unknown model.
	ErrorUserInput ErrorCategory = "user_input"
)

// CategorizedError is an error that provides information about how it should be handled.
type CategorizedError interface {
	error
	Category() ErrorCategory
	StatusCode() int           // HTTP status code if applicable, 0 otherwise
	RetryAfter() time.Duration // suggested retry delay from server, 0 if not available
}

// Error is a categorized provider error.
type Error struct {
	Msg string
	// Detail is the provider's own description of the failure. When set it
	// replaces Cause in the message, so request URLs and dial addresses carried
	// by SDK errors never reach ClassifyMessage.
	Detail     string
	Cat        ErrorCategory
	Code       int           // HTTP status code, 0 if not applicable
	RetryDelay time.Duration // from Retry-After header, 0 if not available
	Cause      error
}

// Error returns the error message.
func (e *Error) Error() string {
	switch {
	case e.Detail != "":
		return fmt.Sprintf("%s: %s", e.Msg, e.Detail)
	case e.Cause != nil:
		return fmt.Sprintf("%s: %v", e.Msg, e.Cause)
	}
	return e.Msg
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Category returns the error category.
func (e *Error) Category() ErrorCategory {
	return e.Cat
}

// StatusCode returns the HTTP status code, or 0 if not applicable.
func (e *Error) StatusCode() int {
	return e.Code
}

// RetryAfter returns the suggested retry delay, or 0 if not available.
func (e *Error) RetryAfter() time.Duration {
	return e.RetryDelay
}

// NewProviderError builds a categorized error for a failed provider call.
// The message always carries the status code so ClassifyMessage can see it,
// followed by detail, or by the cause when detail is empty.
func NewProviderError(provider Provider, statusCode int, retryAfter time.Duration, detail string, cause error) *Error {
	msg := fmt.Sprintf("%s API error", provider)
	if statusCode > 0 {
		msg = fmt.Sprintf("%s API error (status %d)", provider, statusCode)
	}
	return &Error{
		Msg:        msg,
		Detail:     detail,
		Cat:        CategorizeStatusCode(statusCode),
		Code:       statusCode,
		RetryDelay: retryAfter,
		Cause:      cause,
	}
}

// CategorizeStatusCode determines the error category from an HTTP status code.
func CategorizeStatusCode(code int) ErrorCategory {
	switch {
	case code == 429:
		return ErrorTransient
	case code >= 500 && code < 600:
		return ErrorTransient
	case code == 401 || code == 403:
		return ErrorPermanent
	case code == 400 || code == 404 || code == 422:
		return ErrorUserInput
	default:
		return ErrorPermanent
	}
}

// RetryAfterOf returns the retry delay from a categorized error, or 0.
func RetryAfterOf(err error) time.Duration {
	var ce CategorizedError
	if errors.As(err, &ce) {
		return ce.RetryAfter()
	}
	return 0
}

// StatusCodeOf returns the HTTP status code from a categorized error, or 0.
func StatusCodeOf(err error) int {
	var ce CategorizedError
	if errors.As(err, &ce) {
		return ce.StatusCode()
	}
	return 0
}
