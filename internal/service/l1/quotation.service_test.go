package l1_service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"capindex/internal/domain"
	mock_repository "capindex/internal/repository/mocks"
	"capindex/internal/util"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_LoadPortfolioQuotations(t *testing.T) {
	from := util.NewDate(2021, 1, 1)
	till := util.NewDate(2021, 1, 31)

	t.Run("happy path", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		moexPriceRepository := mock_repository.NewMockMoexPriceRepository(ctrl)
		usPriceRepository := mock_repository.NewMockUsPriceRepository(ctrl)

		handler := quotationServiceHandler{
			MoexPriceRepository: moexPriceRepository,
			UsPriceRepository:   usPriceRepository,
		}

		portfolio := domain.Portfolio{
			Name:  "portfolio_ru",
			Venue: domain.VenueMOEX,
			Events: []domain.RebalanceEvent{{
				Date: from,
				Allocations: map[string]*float64{
					"SBER": nil,
					"GAZP": nil,
				},
			}},
		}

		sberCandles := []domain.Candle{
			{Date: util.NewDate(2021, 1, 4), Close: 275.6},
			{Date: util.NewDate(2021, 1, 5), Close: 280.2},
		}
		gazpCandles := []domain.Candle{
			{Date: util.NewDate(2021, 1, 4), Close: 214.8},
		}

		moexPriceRepository.EXPECT().
			GetDailyCandles(gomock.Any(), "SBER", from, till).
			Return(sberCandles, nil)
		moexPriceRepository.EXPECT().
			GetDailyCandles(gomock.Any(), "GAZP", from, till).
			Return(gazpCandles, nil)

		quotations, err := handler.LoadPortfolioQuotations(context.Background(), portfolio, from, till)
		require.NoError(t, err)

		expected := map[string][]domain.Candle{
			"SBER": sberCandles,
			"GAZP": gazpCandles,
		}
		require.Equal(t, "", cmp.Diff(expected, quotations))
	})

	t.Run("routes nyse portfolios to the us repository", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		moexPriceRepository := mock_repository.NewMockMoexPriceRepository(ctrl)
		usPriceRepository := mock_repository.NewMockUsPriceRepository(ctrl)

		handler := quotationServiceHandler{
			MoexPriceRepository: moexPriceRepository,
			UsPriceRepository:   usPriceRepository,
		}

		portfolio := domain.Portfolio{
			Name:  "portfolio_us",
			Venue: domain.VenueNYSE,
			Events: []domain.RebalanceEvent{{
				Date:        from,
				Allocations: map[string]*float64{"AAPL": nil},
			}},
		}

		usPriceRepository.EXPECT().
			GetDailyCandles(gomock.Any(), "AAPL", from, till).
			Return([]domain.Candle{{Date: util.NewDate(2021, 1, 4), Close: 129.41}}, nil)

		quotations, err := handler.LoadPortfolioQuotations(context.Background(), portfolio, from, till)
		require.NoError(t, err)
		require.Len(t, quotations, 1)
		require.Len(t, quotations["AAPL"], 1)
	})

	t.Run("skips tickers that fail to load", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		moexPriceRepository := mock_repository.NewMockMoexPriceRepository(ctrl)

		handler := quotationServiceHandler{
			MoexPriceRepository: moexPriceRepository,
		}

		portfolio := domain.Portfolio{
			Name:  "portfolio_ru",
			Venue: domain.VenueMOEX,
			Events: []domain.RebalanceEvent{{
				Date: from,
				Allocations: map[string]*float64{
					"SBER": nil,
					"ZZZZ": nil,
				},
			}},
		}

		moexPriceRepository.EXPECT().
			GetDailyCandles(gomock.Any(), "SBER", from, till).
			Return([]domain.Candle{{Date: util.NewDate(2021, 1, 4), Close: 275.6}}, nil)
		moexPriceRepository.EXPECT().
			GetDailyCandles(gomock.Any(), "ZZZZ", from, till).
			Return(nil, fmt.Errorf("no quotation data for ZZZZ"))

		quotations, err := handler.LoadPortfolioQuotations(context.Background(), portfolio, from, till)
		require.NoError(t, err)

		require.Len(t, quotations, 1)
		require.Contains(t, quotations, "SBER")
		require.NotContains(t, quotations, "ZZZZ")
	})

	t.Run("drops candles before the window start", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		moexPriceRepository := mock_repository.NewMockMoexPriceRepository(ctrl)

		handler := quotationServiceHandler{
			MoexPriceRepository: moexPriceRepository,
		}

		portfolio := domain.Portfolio{
			Name:  "portfolio_ru",
			Venue: domain.VenueMOEX,
			Events: []domain.RebalanceEvent{{
				Date:        from,
				Allocations: map[string]*float64{"SBER": nil},
			}},
		}

		moexPriceRepository.EXPECT().
			GetDailyCandles(gomock.Any(), "SBER", from, till).
			Return([]domain.Candle{
				{Date: util.NewDate(2020, 12, 30), Close: 268.0},
				{Date: util.NewDate(2021, 1, 4), Close: 275.6},
			}, nil)

		quotations, err := handler.LoadPortfolioQuotations(context.Background(), portfolio, from, till)
		require.NoError(t, err)

		expected := map[string][]domain.Candle{
			"SBER": {{Date: util.NewDate(2021, 1, 4), Close: 275.6}},
		}
		require.Equal(t, "", cmp.Diff(expected, quotations))
	})

	t.Run("empty portfolio loads nothing", func(t *testing.T) {
		handler := quotationServiceHandler{}

		quotations, err := handler.LoadPortfolioQuotations(context.Background(), domain.Portfolio{Name: "portfolio_empty"}, from, till)
		require.NoError(t, err)
		require.Empty(t, quotations)
	})
}

func Test_GetPortfolioQuotations(t *testing.T) {
	from := util.NewDate(2021, 1, 1)
	till := util.NewDate(2021, 1, 31)

	t.Run("unknown portfolio fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		portfolioRepository := mock_repository.NewMockPortfolioRepository(ctrl)

		handler := quotationServiceHandler{
			PortfolioRepository: portfolioRepository,
		}

		portfolioRepository.EXPECT().
			Get("portfolio_missing").
			Return(nil, fmt.Errorf("portfolio portfolio_missing is not defined in configuration"))

		_, err := handler.GetPortfolioQuotations(context.Background(), "portfolio_missing", from, till)
		require.ErrorContains(t, err, "not defined in configuration")
	})
}

func Test_LoadAllQuotations(t *testing.T) {
	from := util.NewDate(2021, 1, 1)
	till := util.NewDate(2021, 1, 31)

	t.Run("loads every configured portfolio", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		portfolioRepository := mock_repository.NewMockPortfolioRepository(ctrl)
		moexPriceRepository := mock_repository.NewMockMoexPriceRepository(ctrl)
		usPriceRepository := mock_repository.NewMockUsPriceRepository(ctrl)

		handler := quotationServiceHandler{
			PortfolioRepository: portfolioRepository,
			MoexPriceRepository: moexPriceRepository,
			UsPriceRepository:   usPriceRepository,
		}

		portfolioRepository.EXPECT().List().Return([]domain.Portfolio{
			{
				Name:  "portfolio_ru",
				Venue: domain.VenueMOEX,
				Events: []domain.RebalanceEvent{{
					Date:        from,
					Allocations: map[string]*float64{"SBER": nil},
				}},
			},
			{
				Name:  "portfolio_us",
				Venue: domain.VenueNYSE,
				Events: []domain.RebalanceEvent{{
					Date:        from,
					Allocations: map[string]*float64{"AAPL": nil},
				}},
			},
		})

		moexPriceRepository.EXPECT().
			GetDailyCandles(gomock.Any(), "SBER", from, till).
			Return([]domain.Candle{{Date: util.NewDate(2021, 1, 4), Close: 275.6}}, nil)
		usPriceRepository.EXPECT().
			GetDailyCandles(gomock.Any(), "AAPL", from, till).
			Return([]domain.Candle{{Date: util.NewDate(2021, 1, 4), Close: 129.41}}, nil)

		all, err := handler.LoadAllQuotations(context.Background(), from, till)
		require.NoError(t, err)

		require.Len(t, all, 2)
		require.Len(t, all["portfolio_ru"]["SBER"], 1)
		require.Len(t, all["portfolio_us"]["AAPL"], 1)
	})
}
