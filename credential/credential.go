// Package credential reads provider credentials once at startup.
//
// A credential is present only when it is set and non-empty after trimming
// whitespace. Credentials are fixed for the process lifetime; rotation needs a restart.
package credential

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"

	ai "github.com/spetersoncode/switchboard"
	"github.com/spetersoncode/switchboard/registry"
)

const redacted = "[redacted]"

// Credential is an opaque provider secret. Its formatting and JSON forms are redacted.
type Credential struct {
	secret string
}

// New wraps a secret. Surrounding whitespace is removed.
func New(secret string) Credential {
	return Credential{secret: strings.TrimSpace(secret)}
}

// Present reports whether the credential holds a non-blank secret.
func (c Credential) Present() bool { return c.secret != "" }

// Secret returns the raw secret for handing to a provider SDK.
func (c Credential) Secret() string { return c.secret }

// String implements fmt.Stringer without revealing the secret.
func (c Credential) String() string { return redacted }

// GoString implements fmt.GoStringer without revealing the secret.
func (c Credential) GoString() string { return redacted }

// MarshalJSON never serializes the secret.
func (c Credential) MarshalJSON() ([]byte, error) { return []byte(`"` + redacted + `"`), nil }

// Store holds the credentials found at startup, keyed by provider.
type Store struct {
	order []ai.Provider
	creds map[ai.Provider]Credential
}

// NewStore builds a store from explicit secrets. Blank secrets are dropped.
// Order follows the provider declaration order.
func NewStore(secrets map[ai.Provider]string) *Store {
	s := &Store{creds: make(map[ai.Provider]Credential, len(secrets))}
	for _, p := range ai.Providers() {
		if c := New(secrets[p]); c.Present() {
			s.order = append(s.order, p)
			s.creds[p] = c
		}
	}
	return s
}

// Load reads one credential per registered provider using lookup, which has the
// signature of os.LookupEnv.
func Load(lookup func(string) (string, bool), reg *registry.Registry) *Store {
	s := &Store{creds: make(map[ai.Provider]Credential)}
	for _, cfg := range reg.Configs() {
		v, ok := lookup(cfg.CredentialEnv)
		if !ok {
			continue
		}
		if c := New(v); c.Present() {
			s.order = append(s.order, cfg.ID)
			s.creds[cfg.ID] = c
		}
	}
	return s
}

// LoadEnv loads .env files into the process environment and then reads credentials
// from it. Variables already set in the environment are not overridden.
// With no files, ./.env is loaded when it exists; named files must exist.
func LoadEnv(reg *registry.Registry, files ...string) (*Store, error) {
	if len(files) == 0 {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load .env: %w", err)
		}
	} else if err := godotenv.Load(files...); err != nil {
		return nil, fmt.Errorf("load env files: %w", err)
	}
	return Load(os.LookupEnv, reg), nil
}

// Present reports whether a usable credential exists for the provider.
func (s *Store) Present(p ai.Provider) bool {
	_, ok := s.creds[p]
	return ok
}

// Get returns the credential for the provider.
func (s *Store) Get(p ai.Provider) (Credential, bool) {
	c, ok := s.creds[p]
	return c, ok
}

// Providers returns the providers with a present credential, in load order.
func (s *Store) Providers() []ai.Provider {
	return append([]ai.Provider(nil), s.order...)
}
