package openai

import (
	"context"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	ai "github.com/spetersoncode/switchboard"
	"github.com/spetersoncode/switchboard/internal/provider"
)

// Client wraps the OpenAI SDK to implement ai.ChatProvider.
// It serves any provider speaking the chat completions API, OpenRouter included.
type Client struct {
	client   *openai.Client
	provider ai.Provider
	model    string
}

type config struct {
	baseURL string
	headers map[string]string
	model   string
	options []option.RequestOption
}

// ClientOption configures the OpenAI client.
type ClientOption func(*config)

// WithBaseURL points the client at a different endpoint.
func WithBaseURL(url string) ClientOption {
	return func(c *config) {
		c.baseURL = url
	}
}

// WithHeaders adds headers sent with every request.
func WithHeaders(headers map[string]string) ClientOption {
	return func(c *config) {
		c.headers = headers
	}
}

// WithModel sets the default model for requests.
func WithModel(model string) ClientOption {
	return func(c *config) {
		c.model = model
	}
}

// WithRequestOptions passes extra SDK options, such as a custom HTTP client.
func WithRequestOptions(opts ...option.RequestOption) ClientOption {
	return func(c *config) {
		c.options = append(c.options, opts...)
	}
}

// New creates a client for provider with the given API key.
// SDK-level retries are disabled: one Chat call is one HTTP request.
func New(p ai.Provider, apiKey string, opts ...ClientOption) *Client {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	reqOpts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	if cfg.baseURL != "" {
		reqOpts = append(reqOpts, option.WithBaseURL(cfg.baseURL))
	}
	for k, v := range cfg.headers {
		reqOpts = append(reqOpts, option.WithHeader(k, v))
	}
	reqOpts = append(reqOpts, cfg.options...)

	client := openai.NewClient(reqOpts...)
	return &Client{
		client:   &client,
		provider: p,
		model:    cfg.model,
	}
}

// Chat sends a conversation and returns a complete response.
func (c *Client) Chat(ctx context.Context, messages []ai.Message, opts ...ai.Option) (*ai.Response, error) {
	options := ai.ApplyOptions(opts...)
	model := c.model
	if options.Model != "" {
		model = options.Model
	}

	params := openai.ChatCompletionNewParams{
		Model:    model,
		Messages: convertMessages(messages),
	}
	if options.MaxTokens > 0 {
		params.MaxTokens = openai.Int(int64(options.MaxTokens))
	}
	if options.Temperature != nil {
		params.Temperature = openai.Float(*options.Temperature)
	}

	resp, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, wrapError(c.provider, err)
	}

	out := &ai.Response{
		Usage: provider.Usage(resp.Usage.PromptTokens, resp.Usage.CompletionTokens, resp.Usage.TotalTokens),
	}
	if len(resp.Choices) > 0 {
		out.Content = resp.Choices[0].Message.Content
		out.FinishReason = provider.FinishReason(string(resp.Choices[0].FinishReason))
	}
	return out, nil
}

var _ ai.ChatProvider = (*Client)(nil)
