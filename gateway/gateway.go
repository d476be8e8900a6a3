// Package gateway is the single entry point for completion requests.
//
// A Gateway resolves the requested provider, issues the call through that
// provider's handle and reports every outcome as an envelope. It never returns an
// error value and never panics outward.
package gateway

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	ai "github.com/spetersoncode/switchboard"
	"github.com/spetersoncode/switchboard/client"
	"github.com/spetersoncode/switchboard/internal/retry"
	"github.com/spetersoncode/switchboard/model"
)

// Gateway dispatches completion requests to providers. It holds no per-call
// mutable state and is safe for concurrent use.
type Gateway struct {
	sel     *Selector
	logger  *slog.Logger
	retry   ai.RetryConfig
	timeout time.Duration
}

// Option configures a Gateway.
type Option func(*Gateway)

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Gateway) {
		g.logger = logger
	}
}

// WithRetry enables bounded retries of RATE_LIMIT and SERVICE_UNAVAILABLE failures.
// The default is a single attempt.
func WithRetry(cfg ai.RetryConfig) Option {
	return func(g *Gateway) {
		g.retry = cfg
	}
}

// WithTimeout bounds every provider call. Zero means no timeout beyond the caller's context.
func WithTimeout(d time.Duration) Option {
	return func(g *Gateway) {
		g.timeout = d
	}
}

// New creates a gateway over the selector's providers.
func New(sel *Selector, opts ...Option) *Gateway {
	if sel == nil {
		sel = NewSelector(nil, nil)
	}
	g := &Gateway{
		sel:    sel,
		logger: slog.Default(),
		retry:  ai.DisabledRetryConfig(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Complete sends a chat conversation to the requested provider ("auto" by default)
// and returns the normalized result.
func (g *Gateway) Complete(ctx context.Context, messages []ai.Message, opts ...ai.Option) ai.Envelope[ai.Completion] {
	o := ai.ApplyOptions(opts...).WithDefaults()

	h, err := g.sel.Resolve(o.Provider)
	if err != nil {
		g.logger.Warn("provider unavailable", "requested", o.Provider, "error", err)
		return ai.Fail[ai.Completion](unavailableMessage(o.Provider, err), "", ai.CodeProviderUnavailable)
	}
	p := h.Provider()

	if err := validateRequest(messages, o); err != nil {
		return ai.Fail[ai.Completion](err.Error(), p, ai.CodeRequestFailed)
	}

	modelName := o.Model
	if modelName == "" {
		modelName = h.DefaultModel(ai.CapabilityChat)
	}

	g.logger.Info("completion request", "provider", p, "model", modelName)

	start := time.Now()
	resp, err := g.call(ctx, h, messages,
		ai.WithModel(modelName),
		ai.WithMaxTokens(o.MaxTokens),
		ai.WithTemperature(*o.Temperature),
	)
	if err != nil {
		code := ai.Classify(err)
		g.logger.Error("completion failed", "provider", p, "model", modelName, "code", code, "error", err)
		return ai.Fail[ai.Completion](FriendlyMessage(code, err), p, code)
	}

	if resp.Content == "" {
		g.logger.Warn("completion returned no content", "provider", p, "model", modelName)
		return ai.Fail[ai.Completion](msgNoContent, p, "").WithModel(modelName)
	}

	out := ai.Completion{
		Content:      strings.TrimSpace(resp.Content),
		Usage:        estimateUsage(modelName, resp.Usage),
		FinishReason: resp.FinishReason,
	}
	attrs := []any{"provider", p, "model", modelName, "duration", time.Since(start)}
	if out.Usage != nil {
		attrs = append(attrs, "total_tokens", out.Usage.TotalTokens)
	}
	g.logger.Info("completion succeeded", attrs...)

	return ai.Succeed(out, p, modelName)
}

// CompleteAsync runs Complete on its own goroutine. The returned channel
// delivers exactly one envelope and is then closed.
func (g *Gateway) CompleteAsync(ctx context.Context, messages []ai.Message, opts ...ai.Option) <-chan ai.Envelope[ai.Completion] {
	ch := make(chan ai.Envelope[ai.Completion], 1)
	go func() {
		defer close(ch)
		ch <- g.Complete(ctx, messages, opts...)
	}()
	return ch
}

// Validate checks an explicitly named provider with a minimal request.
func (g *Gateway) Validate(ctx context.Context, identifier string) ai.Envelope[bool] {
	h, err := g.sel.Lookup(identifier)
	if err != nil {
		g.logger.Warn("provider unavailable", "requested", identifier, "error", err)
		return ai.Fail[bool](fmt.Sprintf(fmtProviderNotConfig, identifier), "", ai.CodeProviderUnavailable)
	}
	p := h.Provider()
	modelName := h.DefaultModel(ai.CapabilityChat)

	resp, err := g.attempt(ctx, h, validationPrompt, ai.WithModel(modelName), ai.WithMaxTokens(validationMaxTokens))
	if err != nil {
		g.logger.Error("provider validation failed", "provider", p, "model", modelName, "error", err)
		return ai.Fail[bool](msgValidationFailed+": "+err.Error(), p, ai.CodeValidationFailed)
	}
	if resp.Content == "" {
		g.logger.Warn("provider validation returned no content", "provider", p, "model", modelName)
		return ai.Fail[bool](msgValidationFailed, p, ai.CodeValidationFailed)
	}

	g.logger.Info("provider validated", "provider", p, "model", modelName)
	return ai.Succeed(true, p, modelName)
}

// Status reports which providers are usable. Repeated calls return equal values.
func (g *Gateway) Status() Status {
	available := g.sel.Available()
	st := Status{
		ProviderAvailable:  make(map[ai.Provider]bool, len(ai.Providers())),
		AvailableProviders: available,
	}
	for _, p := range ai.Providers() {
		st.ProviderAvailable[p] = g.sel.Has(p)
	}
	if h, ok := g.sel.Active(); ok {
		p := h.Provider()
		st.ActiveProvider = &p
	}
	return st
}

// Status is a snapshot of provider availability.
type Status struct {
	ProviderAvailable  map[ai.Provider]bool `json:"provider_available"`
	ActiveProvider     *ai.Provider         `json:"active_provider"`
	AvailableProviders []ai.Provider        `json:"available_providers"`
}

var validationPrompt = []ai.Message{{Role: ai.RoleUser, Content: "Hello"}}

const validationMaxTokens = 5

// call issues the provider request under the retry policy.
func (g *Gateway) call(ctx context.Context, h *client.Handle, messages []ai.Message, opts ...ai.Option) (*ai.Response, error) {
	return retry.DoWithEvents(ctx, g.retry, g.observer(h.Provider()), func() (*ai.Response, error) {
		return g.attempt(ctx, h, messages, opts...)
	})
}

// attempt performs a single provider request, applying the gateway timeout and
// turning a backend panic into an error.
func (g *Gateway) attempt(ctx context.Context, h *client.Handle, messages []ai.Message, opts ...ai.Option) (resp *ai.Response, err error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}
	defer func() {
		if r := recover(); r != nil {
			resp, err = nil, fmt.Errorf("%s backend panicked: %v", h.Provider(), r)
		}
	}()

	resp, err = h.Chat(ctx, messages, opts...)
	if err == nil && resp == nil {
		resp = &ai.Response{}
	}
	return resp, err
}

func (g *Gateway) observer(p ai.Provider) func(retry.Event) {
	return func(e retry.Event) {
		switch e.Type {
		case retry.EventRetrying:
			g.logger.Info("retrying provider call", "provider", p, "attempt", e.Attempt, "max_attempts", e.MaxAttempts, "delay", e.Delay)
		case retry.EventExhausted:
			if e.MaxAttempts > 1 {
				g.logger.Warn("provider retries exhausted", "provider", p, "attempts", e.Attempt)
			}
		}
	}
}

// estimateUsage copies the provider's usage and attaches a cost estimate when
// the model is in the pricing catalog.
func estimateUsage(modelName string, usage *ai.Usage) *ai.Usage {
	if usage == nil {
		return nil
	}
	u := *usage
	if cost, ok := model.EstimateCost(modelName, u); ok {
		u.CostUSD = &cost
	}
	return &u
}
