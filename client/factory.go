package client

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	ai "github.com/spetersoncode/switchboard"
	"github.com/spetersoncode/switchboard/credential"
	"github.com/spetersoncode/switchboard/internal/provider/anthropic"
	"github.com/spetersoncode/switchboard/internal/provider/google"
	"github.com/spetersoncode/switchboard/internal/provider/openai"
	"github.com/spetersoncode/switchboard/registry"
)

// Factory builds provider handles from the registry and the loaded credentials.
type Factory struct {
	logger *slog.Logger
}

// FactoryOption configures a Factory.
type FactoryOption func(*Factory)

// WithLogger sets the logger used to report providers that fail to build.
func WithLogger(logger *slog.Logger) FactoryOption {
	return func(f *Factory) {
		f.logger = logger
	}
}

// NewFactory creates a factory.
func NewFactory(opts ...FactoryOption) *Factory {
	f := &Factory{logger: slog.Default()}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Build constructs one handle per registered provider with a present credential,
// in registry order. A provider whose handle cannot be built is logged and left out;
// Build itself never fails.
func (f *Factory) Build(ctx context.Context, reg *registry.Registry, creds *credential.Store) *Set {
	var handles []*Handle
	for _, cfg := range reg.Configs() {
		cred, ok := creds.Get(cfg.ID)
		if !ok {
			f.logger.Debug("provider not configured", "provider", cfg.ID, "env", cfg.CredentialEnv)
			continue
		}

		h, err := f.Connect(ctx, cfg, cred)
		if err != nil {
			f.logger.Error("provider client unavailable", "provider", cfg.ID, "error", err)
			continue
		}
		f.logger.Debug("provider client ready", "provider", cfg.ID, "backend", cfg.Backend)
		handles = append(handles, h)
	}
	return NewSet(handles...)
}

// Connect builds the handle for a single provider. It performs no network I/O.
func (f *Factory) Connect(ctx context.Context, cfg registry.ProviderConfig, cred credential.Credential) (*Handle, error) {
	if !cred.Present() {
		return nil, &ErrMissingAPIKey{Provider: cfg.ID}
	}
	if err := checkBaseURL(cfg.BaseURL); err != nil {
		return nil, &BuildError{Provider: cfg.ID, Err: err}
	}

	model := cfg.DefaultModel(ai.CapabilityChat)

	var backend ai.ChatProvider
	switch cfg.Backend {
	case registry.BackendOpenAI:
		backend = openai.New(cfg.ID, cred.Secret(),
			openai.WithBaseURL(cfg.BaseURL),
			openai.WithHeaders(cfg.Headers),
			openai.WithModel(model),
		)
	case registry.BackendAnthropic:
		backend = anthropic.New(cred.Secret(),
			anthropic.WithBaseURL(cfg.BaseURL),
			anthropic.WithHeaders(cfg.Headers),
			anthropic.WithModel(model),
		)
	case registry.BackendGoogle:
		c, err := google.New(ctx, cred.Secret(),
			google.WithBaseURL(cfg.BaseURL),
			google.WithHeaders(cfg.Headers),
			google.WithModel(model),
		)
		if err != nil {
			return nil, &BuildError{Provider: cfg.ID, Err: err}
		}
		backend = c
	default:
		return nil, &BuildError{Provider: cfg.ID, Err: fmt.Errorf("unknown backend %q", cfg.Backend)}
	}

	return NewHandle(cfg, backend), nil
}

func checkBaseURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("malformed base url: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("malformed base url %q", raw)
	}
	return nil
}
