package gateway

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	ai "github.com/spetersoncode/switchboard"
	"github.com/spetersoncode/switchboard/client"
)

// DefaultPreference is the order in which the active provider is chosen.
// OpenRouter is preferred over OpenAI when both are configured.
var DefaultPreference = []ai.Provider{
	ai.ProviderOpenRouter,
	ai.ProviderOpenAI,
	ai.ProviderAnthropic,
	ai.ProviderGoogle,
}

var (
	// ErrNoProvider is returned when "auto" is requested and no provider is configured.
	ErrNoProvider = errors.New("no provider available")
	// ErrProviderUnavailable is returned when an explicitly requested provider has no handle.
	ErrProviderUnavailable = errors.New("provider not available")
)

// Selector resolves request-level provider identifiers to handles.
// The active provider is fixed when the selector is created.
type Selector struct {
	set    *client.Set
	order  []ai.Provider
	active *client.Handle
}

// NewSelector picks the active provider: the first entry of preference that has a
// handle. Providers with a handle that preference does not list rank after it, in
// the set's order.
func NewSelector(set *client.Set, preference []ai.Provider) *Selector {
	if set == nil {
		set = client.NewSet()
	}

	order := make([]ai.Provider, 0, len(preference)+set.Len())
	for _, p := range preference {
		if !slices.Contains(order, p) {
			order = append(order, p)
		}
	}
	for _, p := range set.Providers() {
		if !slices.Contains(order, p) {
			order = append(order, p)
		}
	}

	s := &Selector{set: set, order: order}
	for _, p := range order {
		if h, ok := set.Get(p); ok {
			s.active = h
			break
		}
	}
	return s
}

// Active returns the handle used for "auto" requests.
func (s *Selector) Active() (*client.Handle, bool) {
	return s.active, s.active != nil
}

// Resolve maps a requested identifier to a handle. An empty identifier or "auto"
// resolves to the active provider. An explicit identifier resolves to that provider
// only; there is no fallback to another provider.
func (s *Selector) Resolve(requested string) (*client.Handle, error) {
	requested = strings.TrimSpace(requested)
	if requested == "" || strings.EqualFold(requested, ai.ProviderAuto) {
		if s.active == nil {
			return nil, ErrNoProvider
		}
		return s.active, nil
	}
	return s.Lookup(requested)
}

// Lookup resolves an explicit provider identifier. "auto" is not accepted.
func (s *Selector) Lookup(identifier string) (*client.Handle, error) {
	p, err := ai.ParseProvider(identifier)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrProviderUnavailable, identifier)
	}
	h, ok := s.set.Get(p)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrProviderUnavailable, p)
	}
	return h, nil
}

// Order returns the effective preference order.
func (s *Selector) Order() []ai.Provider {
	return append([]ai.Provider(nil), s.order...)
}

// Available returns the providers with a handle, in the set's order.
func (s *Selector) Available() []ai.Provider {
	return s.set.Providers()
}

// Has reports whether the provider has a handle.
func (s *Selector) Has(p ai.Provider) bool {
	return s.set.Has(p)
}
