// Package model is the pricing catalog for the default models of every provider.
//
// The gateway uses it to attach an estimated cost to usage records. Models that are
// not listed simply get no estimate.
//
//	if cost, ok := model.EstimateCost("gpt-4", usage); ok {
//	    fmt.Printf("~$%.4f\n", cost)
//	}
//
// Pricing is per million tokens in USD:
//
//	pricing := model.ClaudeSonnet45.Pricing()
//	inputCost := float64(inputTokens) / 1_000_000 * pricing.InputPerMillion
package model
