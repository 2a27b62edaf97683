package l3_service

import (
	"capindex/internal/domain"
	"capindex/internal/logger"
	"capindex/internal/util"
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/montanaflynn/stats"
)

const reportFilenameTimeLayout = "20060102_150405"

// ReportService combines computed weights with downloaded quotations
// into the analysis report: one row per (portfolio, ticker) covering
// allocation, quotation coverage and realized volatility.
type ReportService interface {
	BuildRows(allWeights map[string]map[string]float64, allQuotations map[string]map[string][]domain.Candle) []domain.AnalysisReportRow
	WriteReport(ctx context.Context, rows []domain.AnalysisReportRow, directory string) (string, error)
	Summarize(rows []domain.AnalysisReportRow) []domain.PortfolioReportSummary
}

type reportServiceHandler struct{}

func NewReportService() ReportService {
	return reportServiceHandler{}
}

// BuildRows emits one row per ticker known to either the weights or the
// quotations of a portfolio. Tickers without a computed weight carry 0,
// tickers without quotations carry "N/A" dates and a zero record count.
// Rows are ordered by portfolio name, then ticker.
func (h reportServiceHandler) BuildRows(allWeights map[string]map[string]float64, allQuotations map[string]map[string][]domain.Candle) []domain.AnalysisReportRow {
	portfolioNames := map[string]bool{}
	for name := range allWeights {
		portfolioNames[name] = true
	}
	for name := range allQuotations {
		portfolioNames[name] = true
	}

	rows := []domain.AnalysisReportRow{}
	for _, portfolioName := range sortedNames(portfolioNames) {
		weights := allWeights[portfolioName]
		quotations := allQuotations[portfolioName]

		tickers := map[string]bool{}
		for ticker := range weights {
			tickers[ticker] = true
		}
		for ticker := range quotations {
			tickers[ticker] = true
		}

		for _, ticker := range sortedNames(tickers) {
			weight := weights[ticker]
			candles := quotations[ticker]

			row := domain.AnalysisReportRow{
				Portfolio:            portfolioName,
				Ticker:               ticker,
				Weight:               weight,
				WeightPercent:        weight * 100,
				HasQuotations:        len(candles) > 0,
				RecordCount:          len(candles),
				StartDate:            "N/A",
				EndDate:              "N/A",
				AnnualizedVolatility: annualizedVolatility(candles),
			}
			if len(candles) > 0 {
				row.StartDate = candles[0].Date.Format(time.DateOnly)
				row.EndDate = candles[len(candles)-1].Date.Format(time.DateOnly)
			}

			rows = append(rows, row)
		}
	}

	return rows
}

func (h reportServiceHandler) WriteReport(ctx context.Context, rows []domain.AnalysisReportRow, directory string) (string, error) {
	if directory != "" {
		if err := util.EnsureDirectory(directory); err != nil {
			return "", err
		}
	}

	filename := fmt.Sprintf("portfolio_analysis_report_%s.csv", time.Now().Format(reportFilenameTimeLayout))
	path := filepath.Join(directory, filename)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create report file: %w", err)
	}
	defer f.Close()

	if err := gocsv.MarshalFile(&rows, f); err != nil {
		return "", fmt.Errorf("failed to write report file: %w", err)
	}

	logger.FromContext(ctx).Infof("analysis report saved to %s", path)

	return path, nil
}

func (h reportServiceHandler) Summarize(rows []domain.AnalysisReportRow) []domain.PortfolioReportSummary {
	rowsByPortfolio := map[string][]domain.AnalysisReportRow{}
	portfolioNames := map[string]bool{}
	for _, row := range rows {
		rowsByPortfolio[row.Portfolio] = append(rowsByPortfolio[row.Portfolio], row)
		portfolioNames[row.Portfolio] = true
	}

	summaries := []domain.PortfolioReportSummary{}
	for _, portfolioName := range sortedNames(portfolioNames) {
		portfolioRows := rowsByPortfolio[portfolioName]

		summary := domain.PortfolioReportSummary{
			Portfolio:          portfolioName,
			TotalTickers:       len(portfolioRows),
			TopTickersByWeight: []domain.TopTicker{},
		}

		weighted := []domain.AnalysisReportRow{}
		positiveWeights := []float64{}
		for _, row := range portfolioRows {
			if row.Weight > 0 {
				summary.TickersWithWeights++
				weighted = append(weighted, row)
				positiveWeights = append(positiveWeights, row.Weight)
			}
			if row.HasQuotations {
				summary.TickersWithQuotes++
			}
			if row.Weight > 0 && row.HasQuotations {
				summary.TickersWithBoth++
			}
		}

		if mean, err := stats.Mean(positiveWeights); err == nil {
			summary.MeanWeight = util.FloatPointer(mean)
		}
		if median, err := stats.Median(positiveWeights); err == nil {
			summary.MedianWeight = util.FloatPointer(median)
		}

		sort.Slice(weighted, func(i, j int) bool {
			if weighted[i].Weight != weighted[j].Weight {
				return weighted[i].Weight > weighted[j].Weight
			}
			return weighted[i].Ticker < weighted[j].Ticker
		})
		for i := 0; i < len(weighted) && i < 5; i++ {
			summary.TopTickersByWeight = append(summary.TopTickersByWeight, domain.TopTicker{
				Ticker:        weighted[i].Ticker,
				WeightPercent: weighted[i].WeightPercent,
				RecordCount:   weighted[i].RecordCount,
			})
		}

		summaries = append(summaries, summary)
	}

	return summaries
}

// annualizedVolatility is the sample stdev of daily close-to-close
// returns scaled to a 252 trading day year. Needs at least two returns,
// otherwise the sample stdev is undefined.
func annualizedVolatility(candles []domain.Candle) *float64 {
	returns := []float64{}
	for i := 1; i < len(candles); i++ {
		previous := candles[i-1].Close
		if previous == 0 {
			continue
		}
		returns = append(returns, (candles[i].Close-previous)/previous)
	}
	if len(returns) < 2 {
		return nil
	}

	stdev, err := stats.StandardDeviationSample(returns)
	if err != nil {
		return nil
	}

	return util.FloatPointer(stdev * math.Sqrt(252))
}

func sortedNames(set map[string]bool) []string {
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
