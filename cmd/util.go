package cmd

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"capindex/api"
	"capindex/internal/app"
	"capindex/internal/config"
	"capindex/internal/repository"
	l1_service "capindex/internal/service/l1"
	l3_service "capindex/internal/service/l3"
	"capindex/pkg/eodhd"
	"capindex/pkg/moexiss"

	"golang.org/x/time/rate"
)

const (
	moexRequestsPerSecond  = 5
	eodhdRequestsPerSecond = 1
)

// InitializeDependencies wires every repository and service off the
// portfolio configuration file and environment secrets. The portfolio
// file path comes from CAPINDEX_PORTFOLIO_CONFIG when set.
func InitializeDependencies() (*api.ApiHandler, error) {
	portfolioPath := os.Getenv("CAPINDEX_PORTFOLIO_CONFIG")
	if portfolioPath == "" {
		portfolioPath = config.DefaultPortfolioPath
	}

	cfg, err := config.Load(portfolioPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load portfolio configuration: %w", err)
	}

	secrets, err := config.LoadSecrets()
	if err != nil {
		return nil, fmt.Errorf("failed to load secrets: %w", err)
	}

	httpClient := &http.Client{Timeout: 30 * time.Second}
	moexClient := moexiss.Client{
		HttpClient: httpClient,
		Limiter:    rate.NewLimiter(rate.Limit(moexRequestsPerSecond), moexRequestsPerSecond),
	}
	eodhdClient := eodhd.Client{
		HttpClient: httpClient,
		ApiKey:     secrets.EodhdApiToken,
		Limiter:    rate.NewLimiter(rate.Limit(eodhdRequestsPerSecond), eodhdRequestsPerSecond),
	}

	portfolioRepository := repository.NewPortfolioRepository(cfg)
	capitalizationRepository := repository.NewCapitalizationRepository(moexClient)
	moexPriceRepository := repository.NewMoexPriceRepository(moexClient)
	usPriceRepository := repository.NewUsPriceRepository(eodhdClient)

	quotationService := l1_service.NewQuotationService(portfolioRepository, moexPriceRepository, usPriceRepository)
	weightService := l3_service.NewWeightService(portfolioRepository, capitalizationRepository)
	reportService := l3_service.NewReportService()

	analysisHandler := app.AnalysisHandler{
		PortfolioRepository: portfolioRepository,
		WeightService:       weightService,
		QuotationService:    quotationService,
		ReportService:       reportService,
		ReportDirectory:     os.Getenv("CAPINDEX_REPORT_DIR"),
	}

	apiHandler := &api.ApiHandler{
		PortfolioRepository: portfolioRepository,
		WeightService:       weightService,
		AnalysisHandler:     analysisHandler,
		JwtSecret:           secrets.JwtSecret,
	}

	return apiHandler, nil
}
