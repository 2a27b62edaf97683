package api

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"capindex/internal/app"
	"capindex/internal/logger"
	"capindex/internal/repository"
	l3_service "capindex/internal/service/l3"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ApiHandler struct {
	PortfolioRepository repository.PortfolioRepository
	WeightService       l3_service.WeightService
	AnalysisHandler     app.AnalysisHandler

	// JwtSecret guards the report endpoint. Empty means auth is off.
	JwtSecret string
}

func (m ApiHandler) StartApi(port int) error {
	router := m.InitializeRouterEngine()
	return router.Run(fmt.Sprintf(":%d", port))
}

func (m ApiHandler) InitializeRouterEngine() *gin.Engine {
	router := gin.Default()
	router.Use(cors.Default())
	router.Use(m.logRequestMiddlware)

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to capindex"})
	})
	router.GET("/portfolios", m.getPortfolios)
	router.POST("/portfolioWeights", m.portfolioWeights)
	router.POST("/allPortfolioWeights", m.allPortfolioWeights)
	router.POST("/analysisReport", m.requireAuth, m.analysisReport)

	return router
}

func returnErrorJson(err error, c *gin.Context) {
	returnErrorJsonCode(err, c, 500)
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	logger.FromContext(c).Errorf("request failed: %s", err)
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

type responseBodyWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (r responseBodyWriter) Write(b []byte) (int, error) {
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}

// logRequestMiddlware tags every request with a uuid, stores a logger
// carrying it in the gin context for the resolvers, and logs the
// request and response lines.
func (m ApiHandler) logRequestMiddlware(ctx *gin.Context) {
	w := &responseBodyWriter{body: &bytes.Buffer{}, ResponseWriter: ctx.Writer}
	ctx.Writer = w

	body, err := ctx.GetRawData()
	if err != nil {
		logger.Warn("failed to read request body: %s", err)
	}
	ctx.Request.Body = io.NopCloser(bytes.NewReader(body))

	requestID := uuid.New()
	lg := logger.New().With("requestId", requestID.String())
	ctx.Set(logger.ContextKey, lg)

	start := time.Now().UTC()
	lg.Infof("%s %s from %s", ctx.Request.Method, ctx.Request.URL.Path, ctx.ClientIP())

	ctx.Next()

	lg.Infof(
		"%s %s completed with status %d in %dms (%d bytes)",
		ctx.Request.Method,
		ctx.Request.URL.Path,
		ctx.Writer.Status(),
		time.Since(start).Milliseconds(),
		w.body.Len(),
	)
}
