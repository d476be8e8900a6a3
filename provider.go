package switchboard

import (
	"errors"
	"fmt"
	"strings"
)

// Provider identifies an AI provider.
type Provider string

// String returns the provider identifier.
func (p Provider) String() string { return string(p) }

// Supported providers. The set is closed: ParseProvider rejects anything else.
const (
	ProviderOpenAI     Provider = "openai"
	ProviderOpenRouter Provider = "openrouter"
	ProviderAnthropic  Provider = "anthropic"
	ProviderGoogle     Provider = "google"
)

// ProviderAuto is the request-level selector meaning "use the active provider".
// It is not itself a provider.
const ProviderAuto = "auto"

// ErrUnknownProvider is returned when an identifier is not one of the supported providers.
var ErrUnknownProvider = errors.New("unknown provider")

// Providers returns every supported provider in declaration order.
func Providers() []Provider {
	return []Provider{ProviderOpenAI, ProviderOpenRouter, ProviderAnthropic, ProviderGoogle}
}

// ParseProvider converts an identifier into a Provider.
// Matching is case-insensitive and ignores surrounding whitespace.
func ParseProvider(s string) (Provider, error) {
	p := Provider(strings.ToLower(strings.TrimSpace(s)))
	if p.Valid() {
		return p, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownProvider, s)
}

// Valid reports whether p is one of the supported providers.
func (p Provider) Valid() bool {
	switch p {
	case ProviderOpenAI, ProviderOpenRouter, ProviderAnthropic, ProviderGoogle:
		return true
	}
	return false
}

// Capability is a named category of use that maps to a provider-specific default model.
type Capability string

const (
	CapabilityChat         Capability = "chat"
	CapabilityChatAdvanced Capability = "chat_advanced"
	CapabilityChatFast     Capability = "chat_fast"
)

// Valid reports whether c is a known capability class.
func (c Capability) Valid() bool {
	switch c {
	case CapabilityChat, CapabilityChatAdvanced, CapabilityChatFast:
		return true
	}
	return false
}
