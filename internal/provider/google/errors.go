package google

import (
	"errors"
	"net/http"

	"google.golang.org/genai"

	ai "github.com/spetersoncode/switchboard"
	"github.com/spetersoncode/switchboard/internal/provider"
)

// wrapError wraps a Google GenAI error with switchboard error categorization.
// Note: genai.APIError doesn't expose headers, so Retry-After is not available.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr genai.APIError
	if !errors.As(err, &apiErr) {
		return provider.TransportError(ai.ProviderGoogle, err)
	}

	detail := apiErr.Message
	if detail == "" {
		detail = http.StatusText(apiErr.Code)
	}
	return ai.NewProviderError(ai.ProviderGoogle, apiErr.Code, 0, detail, err)
}
