package client

import (
	"fmt"

	ai "github.com/spetersoncode/switchboard"
)

// ErrMissingAPIKey is returned when a handle is requested for a provider
// without a usable credential.
type ErrMissingAPIKey struct {
	Provider ai.Provider
}

func (e *ErrMissingAPIKey) Error() string {
	return fmt.Sprintf("no API key configured for %s", e.Provider)
}

// BuildError reports why a provider's handle could not be constructed.
type BuildError struct {
	Provider ai.Provider
	Err      error
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("build %s client: %v", e.Provider, e.Err)
}

func (e *BuildError) Unwrap() error { return e.Err }
