package app

import (
	"context"
	"sort"
	"strings"
	"time"

	"capindex/internal/domain"
	"capindex/internal/logger"
	"capindex/internal/repository"
	l1_service "capindex/internal/service/l1"
	l3_service "capindex/internal/service/l3"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AnalysisHandler runs the full portfolio analysis: weights for every
// configured portfolio, quotations for every ticker those portfolios
// ever held, and the combined report on disk.
type AnalysisHandler struct {
	PortfolioRepository repository.PortfolioRepository
	WeightService       l3_service.WeightService
	QuotationService    l1_service.QuotationService
	ReportService       l3_service.ReportService

	// ReportDirectory is where the report csv lands. Empty means the
	// working directory.
	ReportDirectory string
}

type AnalysisResult struct {
	RunID      uuid.UUID                       `json:"runId"`
	ReportPath string                          `json:"reportPath"`
	Rows       []domain.AnalysisReportRow      `json:"rows"`
	Summaries  []domain.PortfolioReportSummary `json:"summaries"`
}

func (h AnalysisHandler) Run(ctx context.Context) (*AnalysisResult, error) {
	log := logger.FromContext(ctx)
	banner := strings.Repeat("=", 60)

	runID := uuid.New()
	log.Infof("starting portfolio analysis run %s", runID)

	log.Info(banner)
	log.Info("STEP 1: CALCULATING PORTFOLIO WEIGHTS")
	log.Info(banner)

	allWeights, err := h.WeightService.CalculateAllPortfolioWeights(ctx)
	if err != nil {
		return nil, err
	}
	logWeightsSummary(log, allWeights)

	log.Info(banner)
	log.Info("STEP 2: DOWNLOADING QUOTATIONS")
	log.Info(banner)

	from := h.PortfolioRepository.StartDate()
	till := time.Now().UTC()
	allQuotations, err := h.QuotationService.LoadAllQuotations(ctx, from, till)
	if err != nil {
		return nil, err
	}
	logQuotationsSummary(log, allQuotations)

	log.Info(banner)
	log.Info("STEP 3: CREATING ANALYSIS REPORT")
	log.Info(banner)

	rows := h.ReportService.BuildRows(allWeights, allQuotations)
	reportPath, err := h.ReportService.WriteReport(ctx, rows, h.ReportDirectory)
	if err != nil {
		return nil, err
	}

	summaries := h.ReportService.Summarize(rows)
	logReportSummary(log, summaries)

	log.Info("portfolio analysis completed successfully")

	return &AnalysisResult{
		RunID:      runID,
		ReportPath: reportPath,
		Rows:       rows,
		Summaries:  summaries,
	}, nil
}

func logWeightsSummary(log *zap.SugaredLogger, allWeights map[string]map[string]float64) {
	names := make([]string, 0, len(allWeights))
	for name := range allWeights {
		names = append(names, name)
	}
	sort.Strings(names)

	log.Infof("calculated weights for %d portfolio(s)", len(names))
	for _, name := range names {
		total := 0.0
		for _, weight := range allWeights[name] {
			total += weight
		}
		log.Infof("portfolio %s: %d ticker(s), total weight %.4f", name, len(allWeights[name]), total)
	}
}

func logQuotationsSummary(log *zap.SugaredLogger, allQuotations map[string]map[string][]domain.Candle) {
	names := make([]string, 0, len(allQuotations))
	for name := range allQuotations {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		records := 0
		for _, candles := range allQuotations[name] {
			records += len(candles)
		}
		log.Infof("portfolio %s: quotations for %d ticker(s), %d records", name, len(allQuotations[name]), records)
	}
}

func logReportSummary(log *zap.SugaredLogger, summaries []domain.PortfolioReportSummary) {
	for _, summary := range summaries {
		log.Infof(
			"portfolio %s: %d ticker(s), %d with weights, %d with quotations, %d with both",
			summary.Portfolio,
			summary.TotalTickers,
			summary.TickersWithWeights,
			summary.TickersWithQuotes,
			summary.TickersWithBoth,
		)
		for _, top := range summary.TopTickersByWeight {
			log.Infof("  %s | %6.2f%% | %d records", top.Ticker, top.WeightPercent, top.RecordCount)
		}
	}
}
