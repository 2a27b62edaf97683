package api

import (
	"time"

	"capindex/internal/util"

	"github.com/gin-gonic/gin"
)

type portfolioSummary struct {
	Name           string  `json:"name"`
	Venue          string  `json:"venue"`
	EventCount     int     `json:"eventCount"`
	FirstEventDate *string `json:"firstEventDate"`
	LastEventDate  *string `json:"lastEventDate"`
	TickerCount    int     `json:"tickerCount"`
}

func (m ApiHandler) getPortfolios(c *gin.Context) {
	out := []portfolioSummary{}
	for _, portfolio := range m.PortfolioRepository.List() {
		summary := portfolioSummary{
			Name:        portfolio.Name,
			Venue:       string(portfolio.Venue),
			EventCount:  len(portfolio.Events),
			TickerCount: len(portfolio.TickerUniverse()),
		}
		if first, ok := portfolio.EarliestRebalanceDate(); ok {
			summary.FirstEventDate = util.StrPointer(first.Format(time.DateOnly))
		}
		if last, ok := portfolio.LatestRebalanceDate(); ok {
			summary.LastEventDate = util.StrPointer(last.Format(time.DateOnly))
		}
		out = append(out, summary)
	}

	c.JSON(200, out)
}
