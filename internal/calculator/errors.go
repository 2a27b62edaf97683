package calculator

import (
	"fmt"
	"time"
)

// NoActiveRebalanceError means the target date precedes every rebalancing
// event of the portfolio, or the portfolio has no events at all.
type NoActiveRebalanceError struct {
	PortfolioName string
	TargetDate    time.Time
}

func (e NoActiveRebalanceError) Error() string {
	return fmt.Sprintf("no rebalancing event active for portfolio %q on %s", e.PortfolioName, e.TargetDate.Format(time.DateOnly))
}

// DuplicateRebalanceDateError means two events tie on the resolved date.
// Resolution refuses to pick a winner between them.
type DuplicateRebalanceDateError struct {
	PortfolioName string
	Date          time.Time
}

func (e DuplicateRebalanceDateError) Error() string {
	return fmt.Sprintf("portfolio %q has multiple rebalancing events on %s", e.PortfolioName, e.Date.Format(time.DateOnly))
}

// ZeroWeightSumError means the fixed weights to normalize sum to zero.
type ZeroWeightSumError struct {
	Tickers []string
}

func (e ZeroWeightSumError) Error() string {
	return fmt.Sprintf("fixed weights sum to zero across %d ticker(s)", len(e.Tickers))
}

// NoCapitalizationDataError means none of the tickers needing a
// capitalization-derived weight had valid capitalization data.
type NoCapitalizationDataError struct {
	Tickers []string
}

func (e NoCapitalizationDataError) Error() string {
	return fmt.Sprintf("no valid capitalization data for any of %d ticker(s)", len(e.Tickers))
}
