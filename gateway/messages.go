package gateway

import (
	"errors"
	"fmt"
	"strings"

	ai "github.com/spetersoncode/switchboard"
)

// User-facing failure messages.
const (
	msgNoProvider        = "No AI provider available. Please configure API keys in .env file."
	msgNoContent         = "No content returned from AI service"
	msgInvalidAPIKey     = "Invalid API key. Please check your credentials."
	msgRateLimit         = "Rate limit exceeded. Please try again later."
	msgServiceDown       = "AI service temporarily unavailable. Please try again."
	msgValidationFailed  = "Provider validation failed"
	fmtProviderNotConfig = "Provider %s not available or not configured"
)

// FriendlyMessage returns the message reported to callers for a failed provider call.
// Unclassified failures keep the raw error text.
func FriendlyMessage(code ai.ErrorCode, err error) string {
	switch code {
	case ai.CodeInvalidAPIKey:
		return msgInvalidAPIKey
	case ai.CodeRateLimit:
		return msgRateLimit
	case ai.CodeServiceUnavailable:
		return msgServiceDown
	}
	if err == nil {
		return string(code)
	}
	return err.Error()
}

func unavailableMessage(requested string, err error) string {
	if errors.Is(err, ErrNoProvider) {
		return msgNoProvider
	}
	return fmt.Sprintf(fmtProviderNotConfig, requested)
}

// validateRequest checks a request locally before any provider is contacted.
func validateRequest(messages []ai.Message, o ai.Options) error {
	if len(messages) == 0 {
		return errors.New("Invalid request: messages are required")
	}
	for i, m := range messages {
		if !m.Role.Valid() {
			return fmt.Errorf("Invalid request: message %d has unknown role %q", i, m.Role)
		}
		if strings.TrimSpace(m.Content) == "" {
			return fmt.Errorf("Invalid request: message %d has no content", i)
		}
	}
	if o.Temperature != nil && (*o.Temperature < 0 || *o.Temperature > 1) {
		return fmt.Errorf("Invalid request: temperature %g is outside [0, 1]", *o.Temperature)
	}
	if o.MaxTokens < 0 {
		return fmt.Errorf("Invalid request: max tokens %d must not be negative", o.MaxTokens)
	}
	return nil
}
