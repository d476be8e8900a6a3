package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	ai "github.com/spetersoncode/switchboard"
	"github.com/spetersoncode/switchboard/gateway"
)

// Tool names exposed by the server.
const (
	ToolComplete         = "complete"
	ToolProviderStatus   = "provider_status"
	ToolValidateProvider = "validate_provider"
)

// Service is the gateway surface the server exposes.
type Service interface {
	Complete(ctx context.Context, messages []ai.Message, opts ...ai.Option) ai.Envelope[ai.Completion]
	Validate(ctx context.Context, identifier string) ai.Envelope[bool]
	Status() gateway.Status
}

// ServerOption configures a Server.
type ServerOption func(*serverConfig)

type serverConfig struct {
	name    string
	version string
	logger  *slog.Logger
}

// WithName sets the server name reported to MCP clients.
func WithName(name string) ServerOption {
	return func(c *serverConfig) {
		c.name = name
	}
}

// WithVersion sets the server version reported to MCP clients.
func WithVersion(version string) ServerOption {
	return func(c *serverConfig) {
		c.version = version
	}
}

// WithLogger sets the logger used for tool calls.
func WithLogger(logger *slog.Logger) ServerOption {
	return func(c *serverConfig) {
		c.logger = logger
	}
}

// NewServer creates an MCP server exposing the gateway as three tools:
// complete, provider_status and validate_provider. Every tool answers with the
// JSON envelope; failure envelopes are flagged as tool errors.
//
// Example:
//
//	s := mcp.NewServer(gw, mcp.WithVersion("1.0.0"))
//	if err := server.ServeStdio(s); err != nil {
//	    log.Fatal(err)
//	}
func NewServer(svc Service, opts ...ServerOption) *server.MCPServer {
	cfg := &serverConfig{
		name:    "switchboard",
		version: "1.0.0",
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	s := server.NewMCPServer(
		cfg.name,
		cfg.version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)

	h := &handlers{svc: svc, logger: cfg.logger}
	s.AddTool(completeTool(), h.complete)
	s.AddTool(statusTool(), h.status)
	s.AddTool(validateTool(), h.validate)

	return s
}

// ServeStdio serves the gateway over stdin/stdout.
// This is the standard transport for MCP servers invoked as subprocesses.
func ServeStdio(svc Service, opts ...ServerOption) error {
	return server.ServeStdio(NewServer(svc, opts...))
}

func completeTool() mcp.Tool {
	return mcp.NewTool(ToolComplete,
		mcp.WithDescription("Send a chat completion request through the gateway. Pass either a prompt or a messages array."),
		mcp.WithString("prompt", mcp.Description("Single user message. Ignored when messages is set.")),
		mcp.WithString("system", mcp.Description("Optional system message placed before the prompt.")),
		mcp.WithArray("messages",
			mcp.Description("Conversation as role/content objects; role is system, user or assistant."),
			mcp.Items(map[string]any{
				"type": "object",
				"properties": map[string]any{
					"role":    map[string]any{"type": "string", "enum": []string{"system", "user", "assistant"}},
					"content": map[string]any{"type": "string"},
				},
				"required": []string{"role", "content"},
			}),
		),
		mcp.WithString("provider", mcp.Description(`Provider identifier or "auto" (default).`)),
		mcp.WithString("model", mcp.Description("Model name passed verbatim; defaults to the provider's chat model.")),
		mcp.WithNumber("temperature", mcp.Description("Sampling temperature between 0 and 1 (default 0.7)."), mcp.Min(0), mcp.Max(1)),
		mcp.WithNumber("max_tokens", mcp.Description("Maximum tokens to generate (default 2000)."), mcp.Min(0)),
	)
}

func statusTool() mcp.Tool {
	return mcp.NewTool(ToolProviderStatus,
		mcp.WithDescription("Report which providers are configured and which one answers auto requests."),
	)
}

func validateTool() mcp.Tool {
	return mcp.NewTool(ToolValidateProvider,
		mcp.WithDescription("Send a minimal request to one provider to check its credentials."),
		mcp.WithString("provider", mcp.Required(), mcp.Description("Provider identifier, e.g. openai.")),
	)
}

type handlers struct {
	svc    Service
	logger *slog.Logger
}

type completeArgs struct {
	Prompt      string       `json:"prompt"`
	System      string       `json:"system"`
	Messages    []ai.Message `json:"messages"`
	Provider    string       `json:"provider"`
	Model       string       `json:"model"`
	Temperature *float64     `json:"temperature"`
	MaxTokens   int          `json:"max_tokens"`
}

func (a completeArgs) conversation() []ai.Message {
	if len(a.Messages) > 0 {
		return a.Messages
	}
	var msgs []ai.Message
	if a.System != "" {
		msgs = append(msgs, ai.Message{Role: ai.RoleSystem, Content: a.System})
	}
	if a.Prompt != "" {
		msgs = append(msgs, ai.Message{Role: ai.RoleUser, Content: a.Prompt})
	}
	return msgs
}

func (a completeArgs) options() []ai.Option {
	opts := []ai.Option{ai.WithProvider(a.Provider), ai.WithModel(a.Model), ai.WithMaxTokens(a.MaxTokens)}
	if a.Temperature != nil {
		opts = append(opts, ai.WithTemperature(*a.Temperature))
	}
	return opts
}

func (h *handlers) complete(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args completeArgs
	if err := req.BindArguments(&args); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
	}

	env := h.svc.Complete(ctx, args.conversation(), args.options()...)
	h.logger.Debug("mcp tool call", "tool", ToolComplete, "success", env.Success, "provider", env.ProviderName())
	return envelopeResult(env, env.Success)
}

func (h *handlers) status(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return envelopeResult(h.svc.Status(), true)
}

func (h *handlers) validate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	provider, err := req.RequireString("provider")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	env := h.svc.Validate(ctx, provider)
	h.logger.Debug("mcp tool call", "tool", ToolValidateProvider, "success", env.Success, "provider", provider)
	return envelopeResult(env, env.Success)
}

// envelopeResult renders v as indented JSON text.
func envelopeResult(v any, ok bool) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode result: %w", err)
	}
	if !ok {
		return mcp.NewToolResultError(string(data)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
