package api

import (
	"context"
	"fmt"
	"time"

	"capindex/internal/logger"
	"capindex/internal/util"

	"github.com/gin-gonic/gin"
)

type portfolioWeightsRequest struct {
	PortfolioName string `json:"portfolioName"`
	Date          string `json:"date"`
}

type portfolioWeightsResponse struct {
	PortfolioName string             `json:"portfolioName"`
	Date          string             `json:"date"`
	Weights       map[string]float64 `json:"weights"`
}

func (m ApiHandler) portfolioWeights(c *gin.Context) {
	var requestBody portfolioWeightsRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(fmt.Errorf("failed to read request body: %w", err), c, 400)
		return
	}
	if requestBody.PortfolioName == "" {
		returnErrorJsonCode(fmt.Errorf("portfolioName is required"), c, 400)
		return
	}

	lg := logger.FromContext(c)
	ctx := context.WithValue(c.Request.Context(), logger.ContextKey, lg)

	var targetDate time.Time
	if requestBody.Date != "" {
		parsed, err := util.ParseDate(requestBody.Date)
		if err != nil {
			returnErrorJsonCode(err, c, 400)
			return
		}
		targetDate = parsed
	} else {
		portfolio, err := m.PortfolioRepository.Get(requestBody.PortfolioName)
		if err != nil {
			returnErrorJsonCode(err, c, 400)
			return
		}
		earliest, ok := portfolio.EarliestRebalanceDate()
		if !ok {
			returnErrorJsonCode(fmt.Errorf("portfolio %s has no rebalancing events", requestBody.PortfolioName), c, 400)
			return
		}
		targetDate = earliest
	}

	weights, err := m.WeightService.CalculatePortfolioWeightsForDate(ctx, requestBody.PortfolioName, targetDate)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	c.JSON(200, portfolioWeightsResponse{
		PortfolioName: requestBody.PortfolioName,
		Date:          targetDate.Format(time.DateOnly),
		Weights:       weights,
	})
}
