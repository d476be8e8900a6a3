package switchboard

import "context"

// ChatProvider is the outbound capability every backend exposes.
type ChatProvider interface {
	// Chat sends a conversation and returns the complete reply of a single call.
	Chat(ctx context.Context, messages []Message, opts ...Option) (*Response, error)
}
