// Package switchboard is a multi-provider AI completion gateway.
//
// A gateway accepts a chat-style request, picks one of several interchangeable
// providers (OpenAI, OpenRouter, Anthropic, Google), issues the request and returns
// a normalized [Envelope] whichever provider served it. Failures are never returned
// as Go errors across the gateway boundary: they are failure envelopes carrying an
// [ErrorCode].
//
// # Startup
//
// Credentials are read once, one handle is built per usable provider, and the
// active provider is chosen from a fixed preference list:
//
//	reg := registry.Default()
//	creds, err := credential.LoadEnv(reg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	handles := client.NewFactory().Build(ctx, reg, creds)
//	gw := gateway.New(gateway.NewSelector(handles, gateway.DefaultPreference))
//
// # Completions
//
//	env := gw.Complete(ctx, []switchboard.Message{
//	    {Role: switchboard.RoleSystem, Content: "You are a helpful assistant."},
//	    {Role: switchboard.RoleUser, Content: "What is the capital of France?"},
//	}, switchboard.WithTemperature(0.3))
//	if !env.Success {
//	    fmt.Println(env.Code, env.Error)
//	    return
//	}
//	fmt.Println(env.Data.Content)
//
// # Error Taxonomy
//
// Provider failures are classified by [Classify]:
//
//   - INVALID_API_KEY: the credential was rejected
//   - RATE_LIMIT: the provider throttled the request
//   - SERVICE_UNAVAILABLE: provider outage
//   - UNKNOWN_ERROR: anything else
//
// Gateway-level failures use PROVIDER_UNAVAILABLE, REQUEST_FAILED and
// VALIDATION_FAILED. A reply with no content is a failure with no code.
package switchboard
