package model

import ai "github.com/spetersoncode/switchboard"

// ChatModel represents a chat/completion model served by a provider.
type ChatModel struct {
	id       string
	provider ai.Provider
	pricing  ChatPricing
}

// String returns the API identifier for this model.
func (m ChatModel) String() string { return m.id }

// Provider returns which provider serves this model.
func (m ChatModel) Provider() ai.Provider { return m.provider }

// Pricing returns the pricing for this model.
func (m ChatModel) Pricing() ChatPricing { return m.pricing }

// Cost returns the estimated USD cost of a request with the given usage.
func (m ChatModel) Cost(usage ai.Usage) float64 {
	return CalculateCost(usage, m.pricing)
}

// OpenAI Models
var (
	GPT35Turbo = ChatModel{id: "gpt-3.5-turbo", provider: ai.ProviderOpenAI, pricing: ChatPricing{InputPerMillion: 0.50, OutputPerMillion: 1.50}}
	GPT4       = ChatModel{id: "gpt-4", provider: ai.ProviderOpenAI, pricing: ChatPricing{InputPerMillion: 30.00, OutputPerMillion: 60.00}}
	GPT4o      = ChatModel{id: "gpt-4o", provider: ai.ProviderOpenAI, pricing: ChatPricing{InputPerMillion: 2.50, OutputPerMillion: 10.00, CachedInputPerMillion: 1.25}}
	GPT4oMini  = ChatModel{id: "gpt-4o-mini", provider: ai.ProviderOpenAI, pricing: ChatPricing{InputPerMillion: 0.15, OutputPerMillion: 0.60, CachedInputPerMillion: 0.075}}
	GPT5       = ChatModel{id: "gpt-5", provider: ai.ProviderOpenAI, pricing: ChatPricing{InputPerMillion: 1.25, OutputPerMillion: 10.00, CachedInputPerMillion: 0.125}}
	GPT5Mini   = ChatModel{id: "gpt-5-mini", provider: ai.ProviderOpenAI, pricing: ChatPricing{InputPerMillion: 0.25, OutputPerMillion: 1.00, CachedInputPerMillion: 0.025}}
)

// OpenRouter Models
// OpenRouter identifiers carry the upstream vendor as a prefix.
var (
	WizardLM28x22B      = ChatModel{id: "microsoft/wizardlm-2-8x22b", provider: ai.ProviderOpenRouter, pricing: ChatPricing{InputPerMillion: 0.48, OutputPerMillion: 0.48}}
	RouterClaude35      = ChatModel{id: "anthropic/claude-3.5-sonnet", provider: ai.ProviderOpenRouter, pricing: ChatPricing{InputPerMillion: 3.00, OutputPerMillion: 15.00}}
	Llama318BFree       = ChatModel{id: "meta-llama/llama-3.1-8b-instruct:free", provider: ai.ProviderOpenRouter}
	RouterGPT4oMini     = ChatModel{id: "openai/gpt-4o-mini", provider: ai.ProviderOpenRouter, pricing: ChatPricing{InputPerMillion: 0.15, OutputPerMillion: 0.60}}
	RouterGemini25Flash = ChatModel{id: "google/gemini-2.5-flash", provider: ai.ProviderOpenRouter, pricing: ChatPricing{InputPerMillion: 0.30, OutputPerMillion: 2.50}}
)

// Anthropic Claude Models
var (
	ClaudeOpus45   = ChatModel{id: "claude-opus-4-5", provider: ai.ProviderAnthropic, pricing: ChatPricing{InputPerMillion: 5.00, OutputPerMillion: 25.00}}
	ClaudeSonnet45 = ChatModel{id: "claude-sonnet-4-5", provider: ai.ProviderAnthropic, pricing: ChatPricing{InputPerMillion: 3.00, OutputPerMillion: 15.00}}
	ClaudeHaiku45  = ChatModel{id: "claude-haiku-4-5", provider: ai.ProviderAnthropic, pricing: ChatPricing{InputPerMillion: 1.00, OutputPerMillion: 5.00}}
)

// Google Gemini Models
var (
	Gemini25Pro       = ChatModel{id: "gemini-2.5-pro", provider: ai.ProviderGoogle, pricing: ChatPricing{InputPerMillion: 1.25, OutputPerMillion: 10.00, InputPerMillionLong: 2.50, OutputPerMillionLong: 15.00}}
	Gemini25Flash     = ChatModel{id: "gemini-2.5-flash", provider: ai.ProviderGoogle, pricing: ChatPricing{InputPerMillion: 0.30, OutputPerMillion: 2.50, InputPerMillionLong: 0.30, OutputPerMillionLong: 2.50}}
	Gemini25FlashLite = ChatModel{id: "gemini-2.5-flash-lite", provider: ai.ProviderGoogle, pricing: ChatPricing{InputPerMillion: 0.075, OutputPerMillion: 0.30, InputPerMillionLong: 0.075, OutputPerMillionLong: 0.30}}
)

var catalog = index(
	GPT35Turbo, GPT4, GPT4o, GPT4oMini, GPT5, GPT5Mini,
	WizardLM28x22B, RouterClaude35, Llama318BFree, RouterGPT4oMini, RouterGemini25Flash,
	ClaudeOpus45, ClaudeSonnet45, ClaudeHaiku45,
	Gemini25Pro, Gemini25Flash, Gemini25FlashLite,
)

func index(models ...ChatModel) map[string]ChatModel {
	m := make(map[string]ChatModel, len(models))
	for _, model := range models {
		m[model.id] = model
	}
	return m
}

// Lookup finds a catalog model by its API identifier.
func Lookup(id string) (ChatModel, bool) {
	m, ok := catalog[id]
	return m, ok
}

// EstimateCost returns the estimated cost of usage on model id,
// or false when the model is not in the catalog.
func EstimateCost(id string, usage ai.Usage) (float64, bool) {
	m, ok := Lookup(id)
	if !ok {
		return 0, false
	}
	return m.Cost(usage), true
}
