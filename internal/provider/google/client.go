package google

import (
	"context"
	"net/http"
	"strings"

	"google.golang.org/genai"

	ai "github.com/spetersoncode/switchboard"
	"github.com/spetersoncode/switchboard/internal/provider"
)

// Client wraps the Google GenAI SDK to implement ai.ChatProvider.
type Client struct {
	client *genai.Client
	model  string
}

type config struct {
	baseURL    string
	headers    map[string]string
	model      string
	httpClient *http.Client
}

// ClientOption configures the Google client.
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

// WithHTTPClient sets the HTTP client used by the SDK.
func WithHTTPClient(client *http.Client) ClientOption {
	return func(c *config) {
		c.httpClient = client
	}
}

// New creates a new Google GenAI client with the given API key.
// Construction does not contact the API.
func New(ctx context.Context, apiKey string, opts ...ClientOption) (*Client, error) {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	httpOpts := genai.HTTPOptions{BaseURL: cfg.baseURL}
	if len(cfg.headers) > 0 {
		httpOpts.Headers = make(http.Header, len(cfg.headers))
		for k, v := range cfg.headers {
			httpOpts.Headers.Set(k, v)
		}
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      apiKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPClient:  cfg.httpClient,
		HTTPOptions: httpOpts,
	})
	if err != nil {
		return nil, err
	}

	return &Client{
		client: client,
		model:  cfg.model,
	}, nil
}

// Chat sends a conversation and returns a complete response.
func (c *Client) Chat(ctx context.Context, messages []ai.Message, opts ...ai.Option) (*ai.Response, error) {
	options := ai.ApplyOptions(opts...)
	model := c.model
	if options.Model != "" {
		model = options.Model
	}

	contents, system := convertMessages(messages)

	config := &genai.GenerateContentConfig{SystemInstruction: system}
	if options.MaxTokens > 0 {
		config.MaxOutputTokens = int32(options.MaxTokens)
	}
	if options.Temperature != nil {
		temp := float32(*options.Temperature)
		config.Temperature = &temp
	}

	resp, err := c.client.Models.GenerateContent(ctx, model, contents, config)
	if err != nil {
		return nil, wrapError(err)
	}

	var content strings.Builder
	var finishReason ai.FinishReason
	if len(resp.Candidates) > 0 {
		cand := resp.Candidates[0]
		if cand.Content != nil {
			for _, part := range cand.Content.Parts {
				if part != nil && part.Text != "" {
					content.WriteString(part.Text)
				}
			}
		}
		finishReason = provider.FinishReason(string(cand.FinishReason))
	}

	out := &ai.Response{
		Content:      content.String(),
		FinishReason: finishReason,
	}
	if md := resp.UsageMetadata; md != nil {
		out.Usage = provider.Usage(int64(md.PromptTokenCount), int64(md.CandidatesTokenCount), int64(md.TotalTokenCount))
	}
	return out, nil
}

var _ ai.ChatProvider = (*Client)(nil)
