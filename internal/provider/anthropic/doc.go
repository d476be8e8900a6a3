// Package anthropic provides the Anthropic Messages API backend implementing
// [switchboard.ChatProvider].
//
// System messages are sent as the system prompt. When the request leaves
// MaxTokens unset the client sends 4096, since the API requires a limit.
//
//	client := anthropic.New(os.Getenv("ANTHROPIC_API_KEY"),
//	    anthropic.WithModel("claude-sonnet-4-5"),
//	)
//	resp, err := client.Chat(ctx, messages)
package anthropic
