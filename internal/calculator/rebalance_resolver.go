package calculator

import (
	"capindex/internal/domain"
	"capindex/internal/util"
	"time"
)

// ResolveActiveRebalance selects the most recent rebalancing event at or
// before targetDate and splits it into the active ticker set and the
// explicitly weighted subset. Comparison is date-only; the time component
// of targetDate is ignored.
func ResolveActiveRebalance(portfolio domain.Portfolio, targetDate time.Time) (*domain.ResolvedAllocation, error) {
	var active *domain.RebalanceEvent
	duplicate := false
	for i := range portfolio.Events {
		event := portfolio.Events[i]
		if !util.DateLte(event.Date, targetDate) {
			continue
		}
		if active == nil || active.Date.Before(event.Date) {
			e := event
			active = &e
			duplicate = false
		} else if util.SameDate(event.Date, active.Date) {
			duplicate = true
		}
	}

	if active == nil {
		return nil, NoActiveRebalanceError{PortfolioName: portfolio.Name, TargetDate: targetDate}
	}
	if duplicate {
		return nil, DuplicateRebalanceDateError{PortfolioName: portfolio.Name, Date: active.Date}
	}

	return &domain.ResolvedAllocation{
		Tickers:      active.Tickers(),
		FixedWeights: active.FixedWeights(),
	}, nil
}
