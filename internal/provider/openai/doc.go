// Package openai provides the chat backend for providers that speak the OpenAI
// chat completions API: OpenAI itself and OpenRouter.
//
// The client wraps the official OpenAI Go SDK. SDK retries are turned off so the
// gateway owns the retry policy.
//
//	client := openai.New(switchboard.ProviderOpenRouter, apiKey,
//	    openai.WithBaseURL("https://openrouter.ai/api/v1"),
//	    openai.WithHeaders(map[string]string{"X-Title": "my-app"}),
//	    openai.WithModel("microsoft/wizardlm-2-8x22b"),
//	)
//
//	resp, err := client.Chat(ctx, messages, switchboard.WithMaxTokens(100))
package openai
