package domain

import (
	"sort"
	"time"
)

type Venue string

const (
	VenueMOEX Venue = "MOEX"
	VenueNYSE Venue = "NYSE"
)

// Portfolio is a named ticker universe with its dated rebalancing history.
// Loaded once from config and never mutated after that.
type Portfolio struct {
	Name   string
	Venue  Venue
	Events []RebalanceEvent
}

// RebalanceEvent is a dated snapshot of portfolio membership. A nil weight
// means the ticker's allocation comes from market capitalization.
type RebalanceEvent struct {
	Date        time.Time
	Allocations map[string]*float64
}

func (e RebalanceEvent) Tickers() []string {
	tickers := []string{}
	for ticker := range e.Allocations {
		tickers = append(tickers, ticker)
	}
	sort.Strings(tickers)
	return tickers
}

func (e RebalanceEvent) FixedWeights() map[string]float64 {
	weights := map[string]float64{}
	for ticker, weight := range e.Allocations {
		if weight != nil {
			weights[ticker] = *weight
		}
	}
	return weights
}

func (e RebalanceEvent) DeepCopy() RebalanceEvent {
	newEvent := RebalanceEvent{
		Date:        e.Date,
		Allocations: map[string]*float64{},
	}
	for ticker, weight := range e.Allocations {
		if weight == nil {
			newEvent.Allocations[ticker] = nil
			continue
		}
		w := *weight
		newEvent.Allocations[ticker] = &w
	}
	return newEvent
}

func (p Portfolio) DeepCopy() Portfolio {
	newPortfolio := Portfolio{
		Name:   p.Name,
		Venue:  p.Venue,
		Events: make([]RebalanceEvent, 0, len(p.Events)),
	}
	for _, event := range p.Events {
		newPortfolio.Events = append(newPortfolio.Events, event.DeepCopy())
	}
	return newPortfolio
}

// EarliestRebalanceDate is the default target date for queries that don't
// name one. Returns false when the portfolio has no events.
func (p Portfolio) EarliestRebalanceDate() (time.Time, bool) {
	if len(p.Events) == 0 {
		return time.Time{}, false
	}
	earliest := p.Events[0].Date
	for _, event := range p.Events[1:] {
		if event.Date.Before(earliest) {
			earliest = event.Date
		}
	}
	return earliest, true
}

func (p Portfolio) LatestRebalanceDate() (time.Time, bool) {
	if len(p.Events) == 0 {
		return time.Time{}, false
	}
	latest := p.Events[0].Date
	for _, event := range p.Events[1:] {
		if event.Date.After(latest) {
			latest = event.Date
		}
	}
	return latest, true
}

// TickerUniverse is the union of tickers across all rebalancing events,
// i.e. every symbol the portfolio has ever held.
func (p Portfolio) TickerUniverse() []string {
	seen := map[string]bool{}
	tickers := []string{}
	for _, event := range p.Events {
		for ticker := range event.Allocations {
			if !seen[ticker] {
				seen[ticker] = true
				tickers = append(tickers, ticker)
			}
		}
	}
	sort.Strings(tickers)
	return tickers
}

// ResolvedAllocation is the outcome of picking the active rebalancing event
// for a (portfolio, date) pair.
type ResolvedAllocation struct {
	Tickers      []string
	FixedWeights map[string]float64
}
