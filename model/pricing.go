package model

import ai "github.com/spetersoncode/switchboard"

// Model pricing last verified: December 14, 2025

// longContextThreshold is the prompt size above which long-context rates apply.
const longContextThreshold = 200_000

// ChatPricing contains pricing per million tokens (USD) for chat models.
// Fields are zero if not applicable to a specific provider's model.
type ChatPricing struct {
	// InputPerMillion is the standard input token pricing (all providers).
	InputPerMillion float64
	// OutputPerMillion is the standard output token pricing (all providers).
	OutputPerMillion float64
	// CachedInputPerMillion is for cached/prompt-cached input tokens (OpenAI only).
	// Check HasCachedPricing() before using.
	CachedInputPerMillion float64
	// InputPerMillionLong is for long context >200K tokens (Google only).
	// Check HasLongContextPricing() before using.
	InputPerMillionLong float64
	// OutputPerMillionLong is for long context >200K tokens (Google only).
	// Check HasLongContextPricing() before using.
	OutputPerMillionLong float64
}

// HasCachedPricing returns true if the model supports cached input pricing.
func (p ChatPricing) HasCachedPricing() bool {
	return p.CachedInputPerMillion > 0
}

// HasLongContextPricing returns true if the model has tiered pricing for long context.
func (p ChatPricing) HasLongContextPricing() bool {
	return p.InputPerMillionLong > 0 || p.OutputPerMillionLong > 0
}

// IsFree reports whether the model has no per-token charge.
func (p ChatPricing) IsFree() bool {
	return p.InputPerMillion == 0 && p.OutputPerMillion == 0
}

// CalculateCost estimates the USD cost of usage under pricing.
// Long-context rates apply when the prompt exceeds 200K tokens and the model has them.
func CalculateCost(usage ai.Usage, pricing ChatPricing) float64 {
	in, out := pricing.InputPerMillion, pricing.OutputPerMillion
	if usage.InputTokens > longContextThreshold && pricing.HasLongContextPricing() {
		in, out = pricing.InputPerMillionLong, pricing.OutputPerMillionLong
	}
	return float64(usage.InputTokens)/1_000_000*in + float64(usage.OutputTokens)/1_000_000*out
}
