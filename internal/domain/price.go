package domain

import "time"

// Candle is one trading day of OHLCV data, date truncated to UTC midnight.
type Candle struct {
	Date   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

type CapitalizationLookup func(ticker string) *float64

// CapitalizationTable holds the bulk-fetched market capitalization per
// ticker, in rubles. Missing tickers simply aren't present.
type CapitalizationTable map[string]float64

func (t CapitalizationTable) Lookup(ticker string) *float64 {
	if cap, ok := t[ticker]; ok {
		c := cap
		return &c
	}
	return nil
}
