package model

import (
	"testing"

	ai "github.com/spetersoncode/switchboard"
	"github.com/spetersoncode/switchboard/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateCost(t *testing.T) {
	pricing := ChatPricing{
		InputPerMillion:  1.00,
		OutputPerMillion: 2.00,
	}

	t.Run("calculates cost for standard usage", func(t *testing.T) {
		usage := ai.Usage{InputTokens: 1000, OutputTokens: 500}
		// 1000/1M * $1 + 500/1M * $2 = $0.001 + $0.001 = $0.002
		assert.InDelta(t, 0.002, CalculateCost(usage, pricing), 0.0001)
	})

	t.Run("calculates cost for million tokens", func(t *testing.T) {
		usage := ai.Usage{InputTokens: 1_000_000, OutputTokens: 1_000_000}
		assert.InDelta(t, 3.0, CalculateCost(usage, pricing), 0.0001)
	})

	t.Run("returns zero for zero usage", func(t *testing.T) {
		assert.Equal(t, 0.0, CalculateCost(ai.Usage{}, pricing))
	})

	t.Run("applies long context rates", func(t *testing.T) {
		usage := ai.Usage{InputTokens: 1_000_000, OutputTokens: 0}
		assert.InDelta(t, 2.50, CalculateCost(usage, Gemini25Pro.Pricing()), 0.0001)

		short := ai.Usage{InputTokens: 100_000}
		assert.InDelta(t, 0.125, CalculateCost(short, Gemini25Pro.Pricing()), 0.0001)
	})
}

func TestChatModel_Cost(t *testing.T) {
	t.Run("calculates cost using model pricing", func(t *testing.T) {
		// Claude Sonnet 4.5: $3/M input, $15/M output
		usage := ai.Usage{InputTokens: 10000, OutputTokens: 5000}
		// 10000/1M * $3 + 5000/1M * $15 = $0.03 + $0.075 = $0.105
		assert.InDelta(t, 0.105, ClaudeSonnet45.Cost(usage), 0.0001)
	})

	t.Run("haiku is cheaper than sonnet", func(t *testing.T) {
		usage := ai.Usage{InputTokens: 100000, OutputTokens: 50000}
		assert.Greater(t, ClaudeSonnet45.Cost(usage), ClaudeHaiku45.Cost(usage))
	})

	t.Run("free models cost nothing", func(t *testing.T) {
		assert.True(t, Llama318BFree.Pricing().IsFree())
		assert.Equal(t, 0.0, Llama318BFree.Cost(ai.Usage{InputTokens: 5000, OutputTokens: 5000}))
	})
}

func TestLookup(t *testing.T) {
	m, ok := Lookup("gpt-3.5-turbo")
	require.True(t, ok)
	assert.Equal(t, ai.ProviderOpenAI, m.Provider())
	assert.Equal(t, "gpt-3.5-turbo", m.String())

	_, ok = Lookup("not-a-model")
	assert.False(t, ok)
}

func TestEstimateCost(t *testing.T) {
	cost, ok := EstimateCost("gpt-4", ai.Usage{InputTokens: 1000, OutputTokens: 1000})
	require.True(t, ok)
	// 1000/1M * $30 + 1000/1M * $60
	assert.InDelta(t, 0.09, cost, 0.0001)

	_, ok = EstimateCost("unlisted", ai.Usage{InputTokens: 1})
	assert.False(t, ok)
}

func TestCatalogCoversRegistryDefaults(t *testing.T) {
	for _, cfg := range registry.Default().Configs() {
		for class, id := range cfg.Models {
			m, ok := Lookup(id)
			if assert.True(t, ok, "%s %s model %q missing from catalog", cfg.ID, class, id) {
				assert.Equal(t, cfg.ID, m.Provider())
			}
		}
	}
}

func TestChatPricing_HasCachedPricing(t *testing.T) {
	assert.True(t, GPT4o.Pricing().HasCachedPricing())
	assert.False(t, ClaudeSonnet45.Pricing().HasCachedPricing())
}

func TestChatPricing_HasLongContextPricing(t *testing.T) {
	assert.True(t, Gemini25Pro.Pricing().HasLongContextPricing())
	assert.False(t, ClaudeSonnet45.Pricing().HasLongContextPricing())
}

func TestRoutedModelsMatchDirectPricing(t *testing.T) {
	pairs := []struct{ direct, routed ChatModel }{
		{GPT4oMini, RouterGPT4oMini},
		{Gemini25Flash, RouterGemini25Flash},
	}
	usage := ai.Usage{InputTokens: 10_000, OutputTokens: 2_000}

	for _, p := range pairs {
		t.Run(p.direct.String(), func(t *testing.T) {
			assert.InDelta(t, p.direct.Cost(usage), p.routed.Cost(usage), 1e-9)
		})
	}
}
