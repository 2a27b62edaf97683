package repository

import (
	"context"
	"fmt"
	"time"

	"capindex/internal/domain"
	"capindex/internal/logger"
	"capindex/internal/util"
	"capindex/pkg/eodhd"

	"github.com/cenkalti/backoff/v4"
	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
)

type UsPriceRepository interface {
	GetDailyCandles(ctx context.Context, ticker string, from, till time.Time) ([]domain.Candle, error)
}

// usPriceRepositoryHandler loads daily candles for US listings. Yahoo's
// chart endpoint is the primary source and needs no credentials; EODHD is
// the fallback and only participates when an api token is configured.
type usPriceRepositoryHandler struct {
	EodhdClient eodhd.Client
	RetryWait   time.Duration
}

func NewUsPriceRepository(eodhdClient eodhd.Client) UsPriceRepository {
	return usPriceRepositoryHandler{EodhdClient: eodhdClient, RetryWait: priceRetryWait}
}

func (h usPriceRepositoryHandler) GetDailyCandles(ctx context.Context, ticker string, from, till time.Time) ([]domain.Candle, error) {
	var candles []domain.Candle
	operation := func() error {
		var err error
		candles, err = h.loadOnce(ctx, ticker, from, till)
		return err
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewConstantBackOff(h.RetryWait), priceRetryAttempts), ctx)
	if err := backoff.Retry(operation, policy); err != nil {
		return nil, err
	}

	return candles, nil
}

func (h usPriceRepositoryHandler) loadOnce(ctx context.Context, ticker string, from, till time.Time) ([]domain.Candle, error) {
	primary, err := h.loadFromChart(ticker, from, till)
	if err == nil && len(primary) > 0 {
		return primary, nil
	}
	if err != nil {
		logger.FromContext(ctx).Warnf("failed to load %s from the chart endpoint: %v, trying eodhd", ticker, err)
	} else {
		logger.FromContext(ctx).Warnf("chart endpoint returned no data for %s, trying eodhd", ticker)
	}

	if h.EodhdClient.ApiKey == "" {
		return nil, fmt.Errorf("failed to load candles for %s and no eodhd api token is configured", ticker)
	}

	fallback, err := h.EodhdClient.GetEOD(ctx, ticker, from, till)
	if err != nil {
		return nil, fmt.Errorf("failed to load candles for %s from both sources: %w", ticker, err)
	}
	if len(fallback) == 0 {
		return nil, fmt.Errorf("no quotation data for %s between %s and %s", ticker, from.Format(time.DateOnly), till.Format(time.DateOnly))
	}

	return candlesFromEodhd(fallback), nil
}

func (h usPriceRepositoryHandler) loadFromChart(ticker string, from, till time.Time) ([]domain.Candle, error) {
	params := &chart.Params{
		Start:    datetime.New(&from),
		End:      datetime.New(&till),
		Symbol:   ticker,
		Interval: datetime.OneDay,
	}
	iter := chart.Get(params)

	candles := []domain.Candle{}
	for iter.Next() {
		bar := iter.Bar()
		candles = append(candles, domain.Candle{
			Date:   util.TruncateToDate(time.Unix(int64(bar.Timestamp), 0).UTC()),
			Open:   bar.Open.InexactFloat64(),
			High:   bar.High.InexactFloat64(),
			Low:    bar.Low.InexactFloat64(),
			Close:  bar.Close.InexactFloat64(),
			Volume: float64(bar.Volume),
		})
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to get prices for %s: %w", ticker, err)
	}

	return candles, nil
}

func candlesFromEodhd(in []eodhd.Candle) []domain.Candle {
	out := make([]domain.Candle, 0, len(in))
	for _, candle := range in {
		out = append(out, domain.Candle{
			Date:   candle.Date,
			Open:   candle.Open,
			High:   candle.High,
			Low:    candle.Low,
			Close:  candle.Close,
			Volume: candle.Volume,
		})
	}
	return out
}
