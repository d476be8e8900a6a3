package openai

import (
	"errors"

	"github.com/openai/openai-go"

	ai "github.com/spetersoncode/switchboard"
	"github.com/spetersoncode/switchboard/internal/provider"
)

// wrapError wraps an OpenAI SDK error with switchboard error categorization.
// It extracts status codes and Retry-After headers for retry handling. The
// message is built from the status and the API's own error message, never
// from the SDK text, which embeds the request URL.
func wrapError(p ai.Provider, err error) error {
	if err == nil {
		return nil
	}

	var apiErr *openai.Error
	if !errors.As(err, &apiErr) {
		return provider.TransportError(p, err)
	}

	detail := apiErr.Message
	if detail == "" {
		detail = provider.APIMessage(apiErr.RawJSON(), apiErr.StatusCode)
	}
	return ai.NewProviderError(p, apiErr.StatusCode, provider.ParseRetryAfter(apiErr.Response), detail, err)
}
