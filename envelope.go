package switchboard

import (
	"time"

	"github.com/google/uuid"
)

// Completion is the payload of a successful completion envelope.
type Completion struct {
	Content      string       `json:"content"`
	Usage        *Usage       `json:"usage"`
	FinishReason FinishReason `json:"finish_reason,omitempty"`
}

// Envelope is the uniform result of every gateway operation.
// Exactly one of Data (success) or Error (failure) is populated.
type Envelope[T any] struct {
	ID      string `json:"id"`
	Success bool   `json:"success"`
	Data    *T     `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	// Provider is nil when the failure happened before a provider was resolved.
	Provider  *Provider `json:"provider"`
	Model     string    `json:"model,omitempty"`
	Code      ErrorCode `json:"code,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Succeed builds a success envelope.
func Succeed[T any](data T, provider Provider, model string) Envelope[T] {
	return Envelope[T]{
		ID:        newEnvelopeID(),
		Success:   true,
		Data:      &data,
		Provider:  &provider,
		Model:     model,
		Timestamp: time.Now().UTC(),
	}
}

// Fail builds a failure envelope. An empty provider is reported as unknown.
func Fail[T any](msg string, provider Provider, code ErrorCode) Envelope[T] {
	env := Envelope[T]{
		ID:        newEnvelopeID(),
		Error:     msg,
		Code:      code,
		Timestamp: time.Now().UTC(),
	}
	if provider != "" {
		env.Provider = &provider
	}
	return env
}

// WithModel returns a copy of the envelope carrying the resolved model name.
func (e Envelope[T]) WithModel(model string) Envelope[T] {
	e.Model = model
	return e
}

// ProviderName returns the provider identifier, or "" when unknown.
func (e Envelope[T]) ProviderName() string {
	if e.Provider == nil {
		return ""
	}
	return e.Provider.String()
}

func newEnvelopeID() string {
	return "env-" + uuid.New().String()
}
