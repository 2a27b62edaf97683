package repository

import (
	"context"
	"fmt"
	"time"

	"capindex/internal/domain"
	"capindex/internal/logger"
	"capindex/internal/util"
	"capindex/pkg/moexiss"

	"github.com/cenkalti/backoff/v4"
)

const (
	priceRetryWait     = 2 * time.Second
	priceRetryAttempts = 15
)

type MoexPriceRepository interface {
	GetDailyCandles(ctx context.Context, ticker string, from, till time.Time) ([]domain.Candle, error)
}

// moexPriceRepositoryHandler loads daily candles from ISS. The candles
// endpoint is the primary source; the history endpoint covers tickers the
// candles endpoint has gaps for. A run with no data from either source is
// an error, retried on a fixed interval.
type moexPriceRepositoryHandler struct {
	Client    moexiss.Client
	RetryWait time.Duration
}

func NewMoexPriceRepository(client moexiss.Client) MoexPriceRepository {
	return moexPriceRepositoryHandler{Client: client, RetryWait: priceRetryWait}
}

func (h moexPriceRepositoryHandler) GetDailyCandles(ctx context.Context, ticker string, from, till time.Time) ([]domain.Candle, error) {
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

func (h moexPriceRepositoryHandler) loadOnce(ctx context.Context, ticker string, from, till time.Time) ([]domain.Candle, error) {
	primary, err := h.Client.GetCandles(ctx, ticker, from, till)
	if err == nil && len(primary) > 0 {
		return candlesFromIss(primary), nil
	}
	if err != nil {
		logger.FromContext(ctx).Warnf("failed to load %s from the candles endpoint: %v, trying history", ticker, err)
	} else {
		logger.FromContext(ctx).Warnf("candles endpoint returned no data for %s, trying history", ticker)
	}

	history, err := h.Client.GetSecurityHistory(ctx, ticker, from, till)
	if err != nil {
		return nil, fmt.Errorf("failed to load candles for %s from both sources: %w", ticker, err)
	}
	if len(history) == 0 {
		return nil, fmt.Errorf("no quotation data for %s between %s and %s", ticker, from.Format(time.DateOnly), till.Format(time.DateOnly))
	}

	return candlesFromHistory(history), nil
}

func candlesFromIss(in []moexiss.Candle) []domain.Candle {
	out := make([]domain.Candle, 0, len(in))
	for _, candle := range in {
		out = append(out, domain.Candle{
			Date:   util.TruncateToDate(candle.Begin),
			Open:   candle.Open,
			High:   candle.High,
			Low:    candle.Low,
			Close:  candle.Close,
			Volume: candle.Volume,
		})
	}
	return out
}

func candlesFromHistory(in []moexiss.HistoryRecord) []domain.Candle {
	out := make([]domain.Candle, 0, len(in))
	for _, record := range in {
		out = append(out, domain.Candle{
			Date:   util.TruncateToDate(record.TradeDate),
			Open:   record.Open,
			High:   record.High,
			Low:    record.Low,
			Close:  record.Close,
			Volume: record.Volume,
		})
	}
	return out
}
