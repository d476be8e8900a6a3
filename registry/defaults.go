package registry

import ai "github.com/spetersoncode/switchboard"

// DefaultConfigs returns the built-in provider table.
func DefaultConfigs() []ProviderConfig {
	return []ProviderConfig{
		{
			ID:            ai.ProviderOpenAI,
			Backend:       BackendOpenAI,
			BaseURL:       "https://api.openai.com/v1",
			CredentialEnv: "OPENAI_API_KEY",
			Models: map[ai.Capability]string{
				ai.CapabilityChat:         "gpt-3.5-turbo",
				ai.CapabilityChatAdvanced: "gpt-4",
			},
		},
		{
			ID:            ai.ProviderOpenRouter,
			Backend:       BackendOpenAI,
			BaseURL:       "https://openrouter.ai/api/v1",
			CredentialEnv: "OPENROUTER_API_KEY",
			Models: map[ai.Capability]string{
				ai.CapabilityChat:         "microsoft/wizardlm-2-8x22b",
				ai.CapabilityChatAdvanced: "anthropic/claude-3.5-sonnet",
				ai.CapabilityChatFast:     "meta-llama/llama-3.1-8b-instruct:free",
			},
			// OpenRouter attributes traffic to the calling app through these headers.
			Headers: map[string]string{
				"HTTP-Referer": "https://github.com/spetersoncode/switchboard",
				"X-Title":      "switchboard",
			},
		},
		{
			ID:            ai.ProviderAnthropic,
			Backend:       BackendAnthropic,
			BaseURL:       "https://api.anthropic.com/",
			CredentialEnv: "ANTHROPIC_API_KEY",
			Models: map[ai.Capability]string{
				ai.CapabilityChat:         "claude-sonnet-4-5",
				ai.CapabilityChatAdvanced: "claude-opus-4-5",
				ai.CapabilityChatFast:     "claude-haiku-4-5",
			},
		},
		{
			ID:            ai.ProviderGoogle,
			Backend:       BackendGoogle,
			BaseURL:       "https://generativelanguage.googleapis.com/",
			CredentialEnv: "GOOGLE_API_KEY",
			Models: map[ai.Capability]string{
				ai.CapabilityChat:         "gemini-2.5-flash",
				ai.CapabilityChatAdvanced: "gemini-2.5-pro",
				ai.CapabilityChatFast:     "gemini-2.5-flash-lite",
			},
		},
	}
}

// Default returns a registry of the built-in provider table.
func Default() *Registry {
	r, err := New(DefaultConfigs()...)
	if err != nil {
		panic("registry: invalid built-in table: " + err.Error())
	}
	return r
}
