package calculator

import (
	"capindex/internal/domain"
)

// capitalizationWeights allocates proportionally to market capitalization
// over the tickers with valid data. Tickers the lookup doesn't know are
// dropped; an empty result means the weights could not be computed.
func capitalizationWeights(tickers []string, lookup domain.CapitalizationLookup) map[string]float64 {
	if lookup == nil {
		return map[string]float64{}
	}

	valid := map[string]float64{}
	total := 0.0
	for _, ticker := range tickers {
		cap := lookup(ticker)
		if cap == nil {
			continue
		}
		valid[ticker] = *cap
		total += *cap
	}

	if len(valid) == 0 || total == 0 {
		return map[string]float64{}
	}

	weights := make(map[string]float64, len(valid))
	for ticker, cap := range valid {
		weights[ticker] = cap / total
	}
	return weights
}
