package api

import (
	"context"
	"fmt"
	"time"

	"capindex/internal/logger"
	"capindex/internal/util"

	"github.com/gin-gonic/gin"
)

type allPortfolioWeightsRequest struct {
	Date string `json:"date"`
}

type allPortfolioWeightsResponse struct {
	// Date is empty when each portfolio defaulted to its own earliest
	// rebalance date.
	Date       string                        `json:"date,omitempty"`
	Portfolios map[string]map[string]float64 `json:"portfolios"`
}

func (m ApiHandler) allPortfolioWeights(c *gin.Context) {
	var requestBody allPortfolioWeightsRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(fmt.Errorf("failed to read request body: %w", err), c, 400)
		return
	}

	lg := logger.FromContext(c)
	ctx := context.WithValue(c.Request.Context(), logger.ContextKey, lg)

	response := allPortfolioWeightsResponse{}
	if requestBody.Date != "" {
		targetDate, err := util.ParseDate(requestBody.Date)
		if err != nil {
			returnErrorJsonCode(err, c, 400)
			return
		}
		allWeights, err := m.WeightService.CalculateAllPortfolioWeightsForDate(ctx, targetDate)
		if err != nil {
			returnErrorJson(err, c)
			return
		}
		response.Date = targetDate.Format(time.DateOnly)
		response.Portfolios = allWeights
	} else {
		allWeights, err := m.WeightService.CalculateAllPortfolioWeights(ctx)
		if err != nil {
			returnErrorJson(err, c)
			return
		}
		response.Portfolios = allWeights
	}

	c.JSON(200, response)
}
