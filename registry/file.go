package registry

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	ai "github.com/spetersoncode/switchboard"
)

// rawFile is used for YAML unmarshaling.
type rawFile struct {
	Preference []string               `yaml:"preference"`
	Providers  map[string]rawProvider `yaml:"providers"`
}

type rawProvider struct {
	BaseURL       string            `yaml:"base_url"`
	CredentialEnv string            `yaml:"credential_env"`
	Models        map[string]string `yaml:"models"`
	Headers       map[string]string `yaml:"headers"`
}

// LoadFile reads a YAML override file and applies it on top of the built-in table.
// Environment variables in the file are expanded. Example:
//
//	preference: [openai, openrouter]
//	providers:
//	  openai:
//	    base_url: ${OPENAI_BASE_URL}
//	    models:
//	      chat: gpt-4o-mini
//	  openrouter:
//	    headers:
//	      X-Title: my-app
func LoadFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read registry config: %w", err)
	}
	return Parse(data)
}

// Parse applies YAML overrides on top of the built-in table.
func Parse(data []byte) (*Registry, error) {
	var raw rawFile
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), &raw); err != nil {
		return nil, fmt.Errorf("parse registry config: %w", err)
	}

	configs := DefaultConfigs()
	byID := make(map[ai.Provider]*ProviderConfig, len(configs))
	for i := range configs {
		byID[configs[i].ID] = &configs[i]
	}

	for name, override := range raw.Providers {
		p, err := ai.ParseProvider(name)
		if err != nil {
			return nil, &ConfigError{Field: "providers", Reason: err.Error()}
		}
		cfg := byID[p]
		if override.BaseURL != "" {
			cfg.BaseURL = override.BaseURL
		}
		if override.CredentialEnv != "" {
			cfg.CredentialEnv = override.CredentialEnv
		}
		for class, model := range override.Models {
			if cfg.Models == nil {
				cfg.Models = make(map[ai.Capability]string)
			}
			cfg.Models[ai.Capability(class)] = model
		}
		for k, v := range override.Headers {
			if cfg.Headers == nil {
				cfg.Headers = make(map[string]string)
			}
			cfg.Headers[k] = v
		}
	}

	r, err := New(configs...)
	if err != nil {
		return nil, err
	}

	seen := make(map[ai.Provider]bool, len(raw.Preference))
	for _, name := range raw.Preference {
		p, err := ai.ParseProvider(name)
		if err != nil {
			return nil, &ConfigError{Field: "preference", Reason: err.Error()}
		}
		if seen[p] {
			return nil, &ConfigError{Field: "preference", Reason: fmt.Sprintf("%s listed twice", p)}
		}
		seen[p] = true
		r.preference = append(r.preference, p)
	}
	return r, nil
}
