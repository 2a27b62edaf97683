package eodhd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

const DefaultBaseUrl = "https://eodhistoricaldata.com"

type Client struct {
	HttpClient *http.Client
	ApiKey     string
	BaseUrl    string
	Limiter    *rate.Limiter
}

type Candle struct {
	Date          time.Time
	Open          float64
	High          float64
	Low           float64
	Close         float64
	AdjustedClose float64
	Volume        float64
}

type APIError struct {
	StatusCode int
	Body       string
}

func (e APIError) Error() string {
	return fmt.Sprintf("eodhd request failed with status code %d: %s", e.StatusCode, e.Body)
}

type eodRecord struct {
	Date          string  `json:"date"`
	Open          float64 `json:"open"`
	High          float64 `json:"high"`
	Low           float64 `json:"low"`
	Close         float64 `json:"close"`
	AdjustedClose float64 `json:"adjusted_close"`
	Volume        float64 `json:"volume"`
}

func (c Client) baseUrl() string {
	if c.BaseUrl != "" {
		return c.BaseUrl
	}
	return DefaultBaseUrl
}

func (c Client) httpClient() *http.Client {
	if c.HttpClient != nil {
		return c.HttpClient
	}
	return http.DefaultClient
}

// GetEOD returns daily end-of-day candles for the ticker. An empty slice
// means the provider has no data in the requested window.
func (c Client) GetEOD(ctx context.Context, ticker string, from, to time.Time) ([]Candle, error) {
	if c.Limiter != nil {
		if err := c.Limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	url := fmt.Sprintf(
		"%s/api/eod/%s?api_token=%s&from=%s&to=%s&period=d&fmt=json",
		c.baseUrl(), ticker, c.ApiKey, from.Format(time.DateOnly), to.Format(time.DateOnly),
	)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	response, err := c.httpClient().Do(req)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	responseBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("received status code %d and failed to read body: %w", response.StatusCode, err)
	}
	if response.StatusCode != 200 {
		return nil, APIError{StatusCode: response.StatusCode, Body: string(responseBytes)}
	}

	records := []eodRecord{}
	if err := json.Unmarshal(responseBytes, &records); err != nil {
		return nil, fmt.Errorf("failed to parse eodhd response: %w", err)
	}

	candles := make([]Candle, 0, len(records))
	for _, record := range records {
		date, err := time.Parse(time.DateOnly, record.Date)
		if err != nil {
			return nil, fmt.Errorf("failed to parse candle date %q: %w", record.Date, err)
		}
		candles = append(candles, Candle{
			Date:          date,
			Open:          record.Open,
			High:          record.High,
			Low:           record.Low,
			Close:         record.Close,
			AdjustedClose: record.AdjustedClose,
			Volume:        record.Volume,
		})
	}

	return candles, nil
}
