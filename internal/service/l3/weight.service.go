package l3_service

import (
	"capindex/internal/calculator"
	"capindex/internal/domain"
	"capindex/internal/logger"
	"capindex/internal/repository"
	"context"
	"errors"
	"time"
)

// WeightService computes the target allocation of each portfolio. A
// portfolio whose weights cannot be computed on a given date is logged
// and skipped rather than failing the whole run; only unknown portfolio
// names and transport-level failures surface as errors.
type WeightService interface {
	CalculatePortfolioWeightsForDate(ctx context.Context, portfolioName string, targetDate time.Time) (map[string]float64, error)
	CalculatePortfolioWeights(ctx context.Context, portfolioName string) (map[string]float64, error)
	CalculateAllPortfolioWeightsForDate(ctx context.Context, targetDate time.Time) (map[string]map[string]float64, error)
	CalculateAllPortfolioWeights(ctx context.Context) (map[string]map[string]float64, error)
}

type weightServiceHandler struct {
	PortfolioRepository      repository.PortfolioRepository
	CapitalizationRepository repository.CapitalizationRepository
}

func NewWeightService(
	portfolioRepository repository.PortfolioRepository,
	capitalizationRepository repository.CapitalizationRepository,
) WeightService {
	return weightServiceHandler{
		PortfolioRepository:      portfolioRepository,
		CapitalizationRepository: capitalizationRepository,
	}
}

func (h weightServiceHandler) CalculatePortfolioWeightsForDate(ctx context.Context, portfolioName string, targetDate time.Time) (map[string]float64, error) {
	portfolio, err := h.PortfolioRepository.Get(portfolioName)
	if err != nil {
		return nil, err
	}

	return h.computeWeights(ctx, *portfolio, targetDate)
}

func (h weightServiceHandler) CalculatePortfolioWeights(ctx context.Context, portfolioName string) (map[string]float64, error) {
	portfolio, err := h.PortfolioRepository.Get(portfolioName)
	if err != nil {
		return nil, err
	}

	targetDate, ok := portfolio.EarliestRebalanceDate()
	if !ok {
		logger.FromContext(ctx).Warnf("portfolio %s has no rebalancing events", portfolioName)
		return map[string]float64{}, nil
	}

	return h.computeWeights(ctx, *portfolio, targetDate)
}

func (h weightServiceHandler) CalculateAllPortfolioWeightsForDate(ctx context.Context, targetDate time.Time) (map[string]map[string]float64, error) {
	allWeights := map[string]map[string]float64{}
	for _, portfolio := range h.PortfolioRepository.List() {
		weights, err := h.computeWeights(ctx, portfolio, targetDate)
		if err != nil {
			return nil, err
		}
		if len(weights) == 0 {
			continue
		}
		allWeights[portfolio.Name] = weights
	}

	return allWeights, nil
}

func (h weightServiceHandler) CalculateAllPortfolioWeights(ctx context.Context) (map[string]map[string]float64, error) {
	log := logger.FromContext(ctx)

	allWeights := map[string]map[string]float64{}
	for _, portfolio := range h.PortfolioRepository.List() {
		targetDate, ok := portfolio.EarliestRebalanceDate()
		if !ok {
			log.Warnf("portfolio %s has no rebalancing events", portfolio.Name)
			continue
		}
		weights, err := h.computeWeights(ctx, portfolio, targetDate)
		if err != nil {
			return nil, err
		}
		if len(weights) == 0 {
			continue
		}
		allWeights[portfolio.Name] = weights
	}

	return allWeights, nil
}

// computeWeights resolves the active rebalancing event and mixes fixed
// weights with capitalization-derived ones. Resolution and mixing
// failures are downgraded to an empty result so one broken portfolio
// cannot sink the rest of the run.
func (h weightServiceHandler) computeWeights(ctx context.Context, portfolio domain.Portfolio, targetDate time.Time) (map[string]float64, error) {
	log := logger.FromContext(ctx)

	resolution, err := calculator.ResolveActiveRebalance(portfolio, targetDate)
	if err != nil {
		var duplicateDate calculator.DuplicateRebalanceDateError
		if errors.As(err, &duplicateDate) {
			log.Errorf("portfolio configuration defect, skipping: %s", err)
			return map[string]float64{}, nil
		}
		var noActive calculator.NoActiveRebalanceError
		if errors.As(err, &noActive) {
			log.Warnf("skipping weights: %s", err)
			return map[string]float64{}, nil
		}
		return nil, err
	}

	table, err := h.CapitalizationRepository.GetTable(ctx)
	if err != nil {
		log.Warnf("proceeding without capitalization data: %s", err)
		table = domain.CapitalizationTable{}
	}

	weights, err := calculator.MixWeights(resolution.Tickers, resolution.FixedWeights, table.Lookup)
	if err != nil {
		var zeroSum calculator.ZeroWeightSumError
		var noCapitalizations calculator.NoCapitalizationDataError
		if errors.As(err, &zeroSum) || errors.As(err, &noCapitalizations) {
			log.Warnf("skipping portfolio %s on %s: %s", portfolio.Name, targetDate.Format(time.DateOnly), err)
			return map[string]float64{}, nil
		}
		return nil, err
	}

	dropped := []string{}
	for _, ticker := range resolution.Tickers {
		if _, ok := weights[ticker]; !ok {
			dropped = append(dropped, ticker)
		}
	}
	if len(dropped) > 0 {
		log.Warnf("portfolio %s: no capitalization data for %v, allocating fixed weights only", portfolio.Name, dropped)
	}

	log.Infof("calculated weights for %d ticker(s) in portfolio %s as of %s", len(weights), portfolio.Name, targetDate.Format(time.DateOnly))

	return weights, nil
}
