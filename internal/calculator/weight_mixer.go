package calculator

import (
	"capindex/internal/domain"
)

// MixWeights produces the final normalized allocation for one resolved
// rebalancing event. Tickers carrying a fixed weight keep it; the rest
// split the remaining allocation proportionally to market capitalization.
//
// Fallbacks: when the fixed weights already consume the full allocation
// (sum ≥ 1), or no capitalization data exists for the unweighted remainder,
// the normalized fixed weights alone are returned and the unweighted
// tickers receive nothing. Callers detect dropped tickers by comparing the
// result's keys against the input set.
func MixWeights(tickers []string, fixedWeights map[string]float64, lookup domain.CapitalizationLookup) (map[string]float64, error) {
	if len(tickers) == 0 {
		return map[string]float64{}, nil
	}

	allFixed := true
	withoutWeight := []string{}
	for _, ticker := range tickers {
		if _, ok := fixedWeights[ticker]; !ok {
			allFixed = false
			withoutWeight = append(withoutWeight, ticker)
		}
	}

	if allFixed {
		return normalize(fixedWeights)
	}

	if len(fixedWeights) == 0 {
		capWeights := capitalizationWeights(tickers, lookup)
		if len(capWeights) == 0 {
			return nil, NoCapitalizationDataError{Tickers: tickers}
		}
		return capWeights, nil
	}

	predefinedSum := 0.0
	for _, weight := range fixedWeights {
		predefinedSum += weight
	}
	remaining := 1.0 - predefinedSum
	if remaining <= 0 {
		return normalize(fixedWeights)
	}

	capWeights := capitalizationWeights(withoutWeight, lookup)
	if len(capWeights) == 0 {
		return normalize(fixedWeights)
	}

	capSum := 0.0
	for _, weight := range capWeights {
		capSum += weight
	}

	merged := make(map[string]float64, len(fixedWeights)+len(capWeights))
	for ticker, weight := range fixedWeights {
		merged[ticker] = weight
	}
	scale := remaining / capSum
	for ticker, weight := range capWeights {
		merged[ticker] = weight * scale
	}

	// merged already sums to ~1; this pass only corrects float drift
	return normalize(merged)
}

func normalize(weights map[string]float64) (map[string]float64, error) {
	sum := 0.0
	for _, weight := range weights {
		sum += weight
	}
	if sum == 0 {
		tickers := []string{}
		for ticker := range weights {
			tickers = append(tickers, ticker)
		}
		return nil, ZeroWeightSumError{Tickers: tickers}
	}

	normalized := make(map[string]float64, len(weights))
	for ticker, weight := range weights {
		normalized[ticker] = weight / sum
	}
	return normalized, nil
}
