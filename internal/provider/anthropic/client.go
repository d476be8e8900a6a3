package anthropic

import (
	"context"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	ai "github.com/spetersoncode/switchboard"
	"github.com/spetersoncode/switchboard/internal/provider"
)

// defaultMaxTokens is sent when the request leaves MaxTokens unset;
// the Messages API requires a value.
const defaultMaxTokens = 4096

// Client wraps the Anthropic SDK to implement ai.ChatProvider.
type Client struct {
	client *anthropic.Client
	model  string
}

type config struct {
	baseURL string
	headers map[string]string
	model   string
	options []option.RequestOption
}

// ClientOption configures the Anthropic client.
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

// WithRequestOptions passes extra SDK options.
func WithRequestOptions(opts ...option.RequestOption) ClientOption {
	return func(c *config) {
		c.options = append(c.options, opts...)
	}
}

// New creates a new Anthropic client with the given API key.
func New(apiKey string, opts ...ClientOption) *Client {
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

	client := anthropic.NewClient(reqOpts...)
	return &Client{
		client: &client,
		model:  cfg.model,
	}
}

// Chat sends a conversation and returns a complete response.
func (c *Client) Chat(ctx context.Context, messages []ai.Message, opts ...ai.Option) (*ai.Response, error) {
	options := ai.ApplyOptions(opts...)
	model := c.model
	if options.Model != "" {
		model = options.Model
	}

	maxTokens := int64(defaultMaxTokens)
	if options.MaxTokens > 0 {
		maxTokens = int64(options.MaxTokens)
	}

	msgs, system := convertMessages(messages)
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(model),
		MaxTokens: maxTokens,
		Messages:  msgs,
	}
	if len(system) > 0 {
		params.System = system
	}
	if options.Temperature != nil {
		params.Temperature = anthropic.Float(*options.Temperature)
	}

	resp, err := c.client.Messages.New(ctx, params)
	if err != nil {
		return nil, wrapError(err)
	}

	var content strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			content.WriteString(block.Text)
		}
	}

	return &ai.Response{
		Content:      content.String(),
		FinishReason: provider.FinishReason(string(resp.StopReason)),
		Usage:        provider.Usage(resp.Usage.InputTokens, resp.Usage.OutputTokens, 0),
	}, nil
}

var _ ai.ChatProvider = (*Client)(nil)
