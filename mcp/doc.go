// Package mcp exposes the completion gateway as an MCP (Model Context Protocol) server.
//
// MCP clients such as desktop assistants or editors can discover three tools:
//
//   - complete: send a prompt or a conversation through the gateway
//   - provider_status: report configured providers and the active one
//   - validate_provider: check a single provider's credentials
//
// Each tool returns the gateway's JSON envelope as text. Failure envelopes are
// marked as tool errors so clients can tell them apart without parsing.
//
//	gw := gateway.New(gateway.NewSelector(handles, gateway.DefaultPreference))
//	if err := mcp.ServeStdio(gw); err != nil {
//	    log.Fatal(err)
//	}
package mcp
