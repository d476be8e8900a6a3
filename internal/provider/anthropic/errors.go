package anthropic

import (
	"errors"

	"github.com/anthropics/anthropic-sdk-go"

	ai "github.com/spetersoncode/switchboard"
	"github.com/spetersoncode/switchboard/internal/provider"
)

// wrapError wraps an Anthropic SDK error with switchboard error categorization.
// The message comes from the response body, not from the SDK text.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *anthropic.Error
	if !errors.As(err, &apiErr) {
		return provider.TransportError(ai.ProviderAnthropic, err)
	}

	detail := provider.APIMessage(apiErr.RawJSON(), apiErr.StatusCode)
	return ai.NewProviderError(ai.ProviderAnthropic, apiErr.StatusCode, provider.ParseRetryAfter(apiErr.Response), detail, err)
}
