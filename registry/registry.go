// Package registry holds the static provider table: base endpoint, credential
// variable and default model per capability class for every supported provider.
package registry

import (
	"fmt"
	"maps"

	ai "github.com/spetersoncode/switchboard"
)

// Backend is the wire protocol family a provider speaks.
type Backend string

const (
	// BackendOpenAI is the OpenAI chat completions API, also spoken by OpenRouter.
	BackendOpenAI    Backend = "openai"
	BackendAnthropic Backend = "anthropic"
	BackendGoogle    Backend = "google"
)

// ProviderConfig is the connection configuration of one provider.
type ProviderConfig struct {
	ID      ai.Provider
	Backend Backend
	BaseURL string
	// CredentialEnv names the environment variable holding the credential.
	CredentialEnv string
	// Models maps a capability class to the provider's default model for it.
	Models map[ai.Capability]string
	// Headers are sent with every request to the provider.
	Headers map[string]string
}

// DefaultModel returns the default model for a capability class,
// falling back to the chat model when the class is not configured.
func (c ProviderConfig) DefaultModel(class ai.Capability) string {
	if m, ok := c.Models[class]; ok && m != "" {
		return m
	}
	return c.Models[ai.CapabilityChat]
}

func (c ProviderConfig) clone() ProviderConfig {
	c.Models = maps.Clone(c.Models)
	c.Headers = maps.Clone(c.Headers)
	return c
}

// ConfigError describes an invalid provider configuration.
type ConfigError struct {
	Provider ai.Provider
	Field    string
	Reason   string
}

func (e *ConfigError) Error() string {
	if e.Provider == "" {
		return fmt.Sprintf("registry: %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("registry: provider %s: %s: %s", e.Provider, e.Field, e.Reason)
}

// Registry is an immutable, ordered table of provider configurations.
type Registry struct {
	configs    []ProviderConfig
	index      map[ai.Provider]int
	preference []ai.Provider
}

// New builds a registry from the given configurations, in order.
func New(configs ...ProviderConfig) (*Registry, error) {
	r := &Registry{index: make(map[ai.Provider]int, len(configs))}
	for _, c := range configs {
		if err := validate(c); err != nil {
			return nil, err
		}
		if _, dup := r.index[c.ID]; dup {
			return nil, &ConfigError{Provider: c.ID, Field: "id", Reason: "duplicate provider"}
		}
		r.index[c.ID] = len(r.configs)
		r.configs = append(r.configs, c.clone())
	}
	return r, nil
}

func validate(c ProviderConfig) error {
	switch {
	case !c.ID.Valid():
		return &ConfigError{Provider: c.ID, Field: "id", Reason: "unknown provider"}
	case c.Backend != BackendOpenAI && c.Backend != BackendAnthropic && c.Backend != BackendGoogle:
		return &ConfigError{Provider: c.ID, Field: "backend", Reason: fmt.Sprintf("unknown backend %q", c.Backend)}
	case c.BaseURL == "":
		return &ConfigError{Provider: c.ID, Field: "base_url", Reason: "required"}
	case c.CredentialEnv == "":
		return &ConfigError{Provider: c.ID, Field: "credential_env", Reason: "required"}
	case c.Models[ai.CapabilityChat] == "":
		return &ConfigError{Provider: c.ID, Field: "models.chat", Reason: "required"}
	}
	for class := range c.Models {
		if !class.Valid() {
			return &ConfigError{Provider: c.ID, Field: "models", Reason: fmt.Sprintf("unknown capability %q", class)}
		}
	}
	return nil
}

// Lookup returns the configuration for a provider.
func (r *Registry) Lookup(p ai.Provider) (ProviderConfig, bool) {
	i, ok := r.index[p]
	if !ok {
		return ProviderConfig{}, false
	}
	return r.configs[i].clone(), true
}

// Providers returns the registered providers in registry order.
func (r *Registry) Providers() []ai.Provider {
	out := make([]ai.Provider, len(r.configs))
	for i, c := range r.configs {
		out[i] = c.ID
	}
	return out
}

// Configs returns a copy of every registered configuration in registry order.
func (r *Registry) Configs() []ProviderConfig {
	out := make([]ProviderConfig, len(r.configs))
	for i, c := range r.configs {
		out[i] = c.clone()
	}
	return out
}

// Preference returns the provider preference order loaded from a config file,
// or nil when none was configured.
func (r *Registry) Preference() []ai.Provider {
	if len(r.preference) == 0 {
		return nil
	}
	return append([]ai.Provider(nil), r.preference...)
}
