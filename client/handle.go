package client

import (
	"context"

	ai "github.com/spetersoncode/switchboard"
	"github.com/spetersoncode/switchboard/registry"
)

// Handle is a ready-to-use client for one provider. Handles are immutable and
// safe for concurrent use.
type Handle struct {
	cfg     registry.ProviderConfig
	backend ai.ChatProvider
}

// NewHandle pairs a provider configuration with a backend.
func NewHandle(cfg registry.ProviderConfig, backend ai.ChatProvider) *Handle {
	return &Handle{cfg: cfg, backend: backend}
}

// Provider returns the provider this handle talks to.
func (h *Handle) Provider() ai.Provider { return h.cfg.ID }

// Config returns the provider configuration the handle was built from.
func (h *Handle) Config() registry.ProviderConfig { return h.cfg }

// DefaultModel returns the provider's default model for a capability class.
func (h *Handle) DefaultModel(class ai.Capability) string {
	return h.cfg.DefaultModel(class)
}

// Chat forwards the conversation to the backend.
func (h *Handle) Chat(ctx context.Context, messages []ai.Message, opts ...ai.Option) (*ai.Response, error) {
	return h.backend.Chat(ctx, messages, opts...)
}

var _ ai.ChatProvider = (*Handle)(nil)

// Set is the immutable collection of handles built at startup.
type Set struct {
	order   []ai.Provider
	handles map[ai.Provider]*Handle
}

// NewSet collects handles. Later handles for the same provider are ignored,
// so each provider has at most one handle.
func NewSet(handles ...*Handle) *Set {
	s := &Set{handles: make(map[ai.Provider]*Handle, len(handles))}
	for _, h := range handles {
		if h == nil {
			continue
		}
		if _, dup := s.handles[h.Provider()]; dup {
			continue
		}
		s.order = append(s.order, h.Provider())
		s.handles[h.Provider()] = h
	}
	return s
}

// Get returns the handle for a provider.
func (s *Set) Get(p ai.Provider) (*Handle, bool) {
	h, ok := s.handles[p]
	return h, ok
}

// Has reports whether a handle exists for the provider.
func (s *Set) Has(p ai.Provider) bool {
	_, ok := s.handles[p]
	return ok
}

// Providers returns the providers with a handle, in construction order.
func (s *Set) Providers() []ai.Provider {
	return append([]ai.Provider(nil), s.order...)
}

// Len returns the number of handles.
func (s *Set) Len() int { return len(s.order) }
