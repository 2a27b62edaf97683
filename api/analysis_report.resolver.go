package api

import (
	"context"

	"capindex/internal/logger"

	"github.com/gin-gonic/gin"
)

func (m ApiHandler) analysisReport(c *gin.Context) {
	lg := logger.FromContext(c)
	ctx := context.WithValue(c.Request.Context(), logger.ContextKey, lg)

	if value, ok := c.Get(accessClaimsKey); ok {
		if claims, ok := value.(*AccessClaims); ok {
			lg.Infof("analysis report requested by %s", claims.Subject)
		}
	}

	result, err := m.AnalysisHandler.Run(ctx)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, result)
}
