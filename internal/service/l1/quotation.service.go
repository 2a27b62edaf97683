package l1_service

import (
	"context"
	"sync"
	"time"

	"capindex/internal/domain"
	"capindex/internal/logger"
	"capindex/internal/repository"
	"capindex/internal/util"
)

const (
	moexWorkers = 30
	usWorkers   = 1
)

type QuotationService interface {
	// LoadPortfolioQuotations loads daily candles for every ticker the
	// portfolio has ever held, keyed by ticker. Tickers whose load fails
	// are skipped; an empty map means nothing loaded.
	LoadPortfolioQuotations(ctx context.Context, portfolio domain.Portfolio, from, till time.Time) (map[string][]domain.Candle, error)
	GetPortfolioQuotations(ctx context.Context, portfolioName string, from, till time.Time) (map[string][]domain.Candle, error)
	LoadAllQuotations(ctx context.Context, from, till time.Time) (map[string]map[string][]domain.Candle, error)
}

type quotationServiceHandler struct {
	PortfolioRepository repository.PortfolioRepository
	MoexPriceRepository repository.MoexPriceRepository
	UsPriceRepository   repository.UsPriceRepository
}

func NewQuotationService(
	portfolioRepository repository.PortfolioRepository,
	moexPriceRepository repository.MoexPriceRepository,
	usPriceRepository repository.UsPriceRepository,
) QuotationService {
	return quotationServiceHandler{
		PortfolioRepository: portfolioRepository,
		MoexPriceRepository: moexPriceRepository,
		UsPriceRepository:   usPriceRepository,
	}
}

type priceSource interface {
	GetDailyCandles(ctx context.Context, ticker string, from, till time.Time) ([]domain.Candle, error)
}

// venueSource picks the price repository and worker count for a venue.
// EODHD throttles aggressively on the free tier, so US loads stay serial.
func (h quotationServiceHandler) venueSource(venue domain.Venue) (priceSource, int) {
	if venue == domain.VenueNYSE {
		return h.UsPriceRepository, usWorkers
	}
	return h.MoexPriceRepository, moexWorkers
}

func (h quotationServiceHandler) LoadPortfolioQuotations(ctx context.Context, portfolio domain.Portfolio, from, till time.Time) (map[string][]domain.Candle, error) {
	log := logger.FromContext(ctx)

	tickers := portfolio.TickerUniverse()
	if len(tickers) == 0 {
		return map[string][]domain.Candle{}, nil
	}

	priceRepository, numGoroutines := h.venueSource(portfolio.Venue)

	type tickerCandles struct {
		ticker  string
		candles []domain.Candle
	}

	inputCh := make(chan string, len(tickers))
	resultCh := make(chan tickerCandles, len(tickers))

	var wg sync.WaitGroup
	for _, ticker := range tickers {
		wg.Add(1)
		inputCh <- ticker
	}
	close(inputCh)

	for i := 0; i < numGoroutines; i++ {
		go func() {
			for {
				select {
				case <-ctx.Done():
					return
				case ticker, ok := <-inputCh:
					if !ok {
						return
					}
					candles, err := priceRepository.GetDailyCandles(ctx, ticker, from, till)
					if err != nil {
						log.Warnf("failed to load quotations for %s: %s\n", ticker, err.Error())
					} else {
						resultCh <- tickerCandles{ticker: ticker, candles: filterFromDate(candles, from)}
					}
					wg.Done()
				}
			}
		}()
	}

	waitDone := make(chan struct{})
	go func() {
		wg.Wait()
		close(waitDone)
	}()
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-waitDone:
	}
	close(resultCh)

	quotations := map[string][]domain.Candle{}
	for result := range resultCh {
		quotations[result.ticker] = result.candles
	}

	if len(quotations) == 0 {
		log.Warnf("no quotation data was loaded for any ticker in portfolio %s", portfolio.Name)
	} else {
		log.Infof("loaded quotations for %d out of %d tickers in portfolio %s", len(quotations), len(tickers), portfolio.Name)
	}

	return quotations, nil
}

func (h quotationServiceHandler) GetPortfolioQuotations(ctx context.Context, portfolioName string, from, till time.Time) (map[string][]domain.Candle, error) {
	portfolio, err := h.PortfolioRepository.Get(portfolioName)
	if err != nil {
		return nil, err
	}
	return h.LoadPortfolioQuotations(ctx, *portfolio, from, till)
}

func (h quotationServiceHandler) LoadAllQuotations(ctx context.Context, from, till time.Time) (map[string]map[string][]domain.Candle, error) {
	log := logger.FromContext(ctx)

	all := map[string]map[string][]domain.Candle{}
	for _, portfolio := range h.PortfolioRepository.List() {
		quotations, err := h.LoadPortfolioQuotations(ctx, portfolio, from, till)
		if err != nil {
			return nil, err
		}
		all[portfolio.Name] = quotations
	}

	log.Infof("loaded quotations for %d portfolios", len(all))
	return all, nil
}

// filterFromDate drops candles dated before the window start. Both sources
// are queried with the window, so this only trims strays like a partial
// first day.
func filterFromDate(candles []domain.Candle, from time.Time) []domain.Candle {
	out := make([]domain.Candle, 0, len(candles))
	for _, candle := range candles {
		if !util.DateLte(from, candle.Date) {
			continue
		}
		out = append(out, candle)
	}
	return out
}
