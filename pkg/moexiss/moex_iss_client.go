package moexiss

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/time/rate"
)

const DefaultBaseUrl = "https://iss.moex.com"

// Client talks to the MOEX ISS API. All methods hit the TQBR board of the
// stock shares market, which is where the liquid Russian equities trade.
type Client struct {
	HttpClient *http.Client
	BaseUrl    string
	Limiter    *rate.Limiter
}

type BoardSecurity struct {
	Ticker         string
	Capitalization *float64
}

type Candle struct {
	Begin  time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

type HistoryRecord struct {
	TradeDate time.Time
	Open      float64
	High      float64
	Low       float64
	Close     float64
	Volume    float64
}

// issBlock is one table of an ISS response. Cells are decoded with
// json.Number so capitalization values survive the trip untruncated.
type issBlock struct {
	Columns []string        `json:"columns"`
	Data    [][]interface{} `json:"data"`
}

func (b issBlock) columnIndex(name string) (int, error) {
	for i, column := range b.Columns {
		if column == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("response is missing column %s", name)
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

func (c Client) fetchTables(ctx context.Context, url string) (map[string]issBlock, error) {
	if c.Limiter != nil {
		if err := c.Limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

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
		return nil, fmt.Errorf("failed with status code %d: %s", response.StatusCode, string(responseBytes))
	}

	tables := map[string]issBlock{}
	decoder := json.NewDecoder(bytes.NewReader(responseBytes))
	decoder.UseNumber()
	if err := decoder.Decode(&tables); err != nil {
		return nil, fmt.Errorf("failed to parse ISS response: %w", err)
	}

	return tables, nil
}

// GetBoardSecurities returns every security on the TQBR board with its
// current market capitalization. A nil capitalization means the exchange
// did not publish one for that security.
func (c Client) GetBoardSecurities(ctx context.Context) ([]BoardSecurity, error) {
	url := fmt.Sprintf("%s/iss/engines/stock/markets/shares/boards/TQBR/securities.json?iss.meta=off&iss.only=marketdata", c.baseUrl())
	tables, err := c.fetchTables(ctx, url)
	if err != nil {
		return nil, err
	}

	marketdata, ok := tables["marketdata"]
	if !ok {
		return nil, fmt.Errorf("securities response has no marketdata block")
	}
	secidIndex, err := marketdata.columnIndex("SECID")
	if err != nil {
		return nil, err
	}
	capitalizationIndex, err := marketdata.columnIndex("ISSUECAPITALIZATION")
	if err != nil {
		return nil, err
	}

	securities := make([]BoardSecurity, 0, len(marketdata.Data))
	for _, row := range marketdata.Data {
		if secidIndex >= len(row) || capitalizationIndex >= len(row) {
			continue
		}
		ticker, ok := row[secidIndex].(string)
		if !ok || ticker == "" {
			continue
		}
		securities = append(securities, BoardSecurity{
			Ticker:         ticker,
			Capitalization: parseCapitalization(row[capitalizationIndex]),
		})
	}

	return securities, nil
}

// GetCandles returns daily candles for the ticker, paging through the
// candles endpoint until it runs dry.
func (c Client) GetCandles(ctx context.Context, ticker string, from, till time.Time) ([]Candle, error) {
	candles := []Candle{}
	start := 0
	for {
		url := fmt.Sprintf(
			"%s/iss/engines/stock/markets/shares/boards/TQBR/securities/%s/candles.json?iss.meta=off&interval=24&from=%s&till=%s&start=%d",
			c.baseUrl(), ticker, from.Format(time.DateOnly), till.Format(time.DateOnly), start,
		)
		tables, err := c.fetchTables(ctx, url)
		if err != nil {
			return nil, err
		}

		block, ok := tables["candles"]
		if !ok {
			return nil, fmt.Errorf("candles response has no candles block")
		}
		if len(block.Data) == 0 {
			break
		}

		page, err := parseCandles(block)
		if err != nil {
			return nil, err
		}
		candles = append(candles, page...)
		start += len(block.Data)
	}

	return candles, nil
}

// GetSecurityHistory returns daily trade records from the history endpoint,
// following the history.cursor block across pages. It serves as the second
// source for candles when the primary endpoint has gaps.
func (c Client) GetSecurityHistory(ctx context.Context, ticker string, from, till time.Time) ([]HistoryRecord, error) {
	records := []HistoryRecord{}
	start := 0
	for {
		url := fmt.Sprintf(
			"%s/iss/history/engines/stock/markets/shares/boards/TQBR/securities/%s.json?iss.meta=off&from=%s&till=%s&start=%d",
			c.baseUrl(), ticker, from.Format(time.DateOnly), till.Format(time.DateOnly), start,
		)
		tables, err := c.fetchTables(ctx, url)
		if err != nil {
			return nil, err
		}

		block, ok := tables["history"]
		if !ok {
			return nil, fmt.Errorf("history response has no history block")
		}
		page, err := parseHistory(block)
		if err != nil {
			return nil, err
		}
		records = append(records, page...)

		cursor, ok := tables["history.cursor"]
		if !ok || len(cursor.Data) == 0 {
			if len(block.Data) == 0 {
				break
			}
			start += len(block.Data)
			continue
		}
		index, total, pageSize, err := parseCursor(cursor)
		if err != nil {
			return nil, err
		}
		if index+pageSize >= total {
			break
		}
		start = index + pageSize
	}

	return records, nil
}

// GetIndices returns the ticker of every index listed on the MOEX index
// market.
func (c Client) GetIndices(ctx context.Context) ([]string, error) {
	url := fmt.Sprintf("%s/iss/engines/stock/markets/index/securities.json?iss.meta=off&iss.only=securities", c.baseUrl())
	tables, err := c.fetchTables(ctx, url)
	if err != nil {
		return nil, err
	}

	securities, ok := tables["securities"]
	if !ok {
		return nil, fmt.Errorf("indices response has no securities block")
	}
	secidIndex, err := securities.columnIndex("SECID")
	if err != nil {
		secidIndex = 0
	}

	indices := []string{}
	for _, row := range securities.Data {
		if secidIndex >= len(row) {
			continue
		}
		if ticker, ok := row[secidIndex].(string); ok && ticker != "" {
			indices = append(indices, ticker)
		}
	}

	return indices, nil
}

func parseCandles(block issBlock) ([]Candle, error) {
	beginIndex, err := block.columnIndex("begin")
	if err != nil {
		return nil, err
	}
	openIndex, err := block.columnIndex("open")
	if err != nil {
		return nil, err
	}
	highIndex, err := block.columnIndex("high")
	if err != nil {
		return nil, err
	}
	lowIndex, err := block.columnIndex("low")
	if err != nil {
		return nil, err
	}
	closeIndex, err := block.columnIndex("close")
	if err != nil {
		return nil, err
	}
	volumeIndex, err := block.columnIndex("volume")
	if err != nil {
		return nil, err
	}

	candles := make([]Candle, 0, len(block.Data))
	for _, row := range block.Data {
		begin, ok := row[beginIndex].(string)
		if !ok {
			continue
		}
		date, err := parseIssTime(begin)
		if err != nil {
			return nil, fmt.Errorf("failed to parse candle date %q: %w", begin, err)
		}
		closePrice, ok := cellFloat(row[closeIndex])
		if !ok {
			continue
		}

		candle := Candle{Begin: date, Close: closePrice}
		candle.Open, _ = cellFloat(row[openIndex])
		candle.High, _ = cellFloat(row[highIndex])
		candle.Low, _ = cellFloat(row[lowIndex])
		candle.Volume, _ = cellFloat(row[volumeIndex])
		candles = append(candles, candle)
	}

	return candles, nil
}

func parseHistory(block issBlock) ([]HistoryRecord, error) {
	dateIndex, err := block.columnIndex("TRADEDATE")
	if err != nil {
		return nil, err
	}
	openIndex, err := block.columnIndex("OPEN")
	if err != nil {
		return nil, err
	}
	highIndex, err := block.columnIndex("HIGH")
	if err != nil {
		return nil, err
	}
	lowIndex, err := block.columnIndex("LOW")
	if err != nil {
		return nil, err
	}
	closeIndex, err := block.columnIndex("CLOSE")
	if err != nil {
		return nil, err
	}
	volumeIndex, err := block.columnIndex("VOLUME")
	if err != nil {
		return nil, err
	}

	records := make([]HistoryRecord, 0, len(block.Data))
	for _, row := range block.Data {
		tradeDate, ok := row[dateIndex].(string)
		if !ok {
			continue
		}
		date, err := parseIssTime(tradeDate)
		if err != nil {
			return nil, fmt.Errorf("failed to parse trade date %q: %w", tradeDate, err)
		}
		closePrice, ok := cellFloat(row[closeIndex])
		if !ok {
			continue
		}

		record := HistoryRecord{TradeDate: date, Close: closePrice}
		record.Open, _ = cellFloat(row[openIndex])
		record.High, _ = cellFloat(row[highIndex])
		record.Low, _ = cellFloat(row[lowIndex])
		record.Volume, _ = cellFloat(row[volumeIndex])
		records = append(records, record)
	}

	return records, nil
}

func parseCursor(cursor issBlock) (index, total, pageSize int, err error) {
	indexColumn, err := cursor.columnIndex("INDEX")
	if err != nil {
		return 0, 0, 0, err
	}
	totalColumn, err := cursor.columnIndex("TOTAL")
	if err != nil {
		return 0, 0, 0, err
	}
	pageSizeColumn, err := cursor.columnIndex("PAGESIZE")
	if err != nil {
		return 0, 0, 0, err
	}

	row := cursor.Data[0]
	indexValue, ok := cellFloat(row[indexColumn])
	if !ok {
		return 0, 0, 0, fmt.Errorf("history cursor has no index value")
	}
	totalValue, ok := cellFloat(row[totalColumn])
	if !ok {
		return 0, 0, 0, fmt.Errorf("history cursor has no total value")
	}
	pageSizeValue, ok := cellFloat(row[pageSizeColumn])
	if !ok {
		return 0, 0, 0, fmt.Errorf("history cursor has no page size value")
	}

	return int(indexValue), int(totalValue), int(pageSizeValue), nil
}

func parseIssTime(value string) (time.Time, error) {
	if parsed, err := time.Parse(time.DateTime, value); err == nil {
		return parsed, nil
	}
	return time.Parse(time.DateOnly, value)
}

func cellFloat(cell interface{}) (float64, bool) {
	number, ok := cell.(json.Number)
	if !ok {
		return 0, false
	}
	value, err := number.Float64()
	if err != nil {
		return 0, false
	}
	return value, true
}

func parseCapitalization(cell interface{}) *float64 {
	var raw string
	switch v := cell.(type) {
	case json.Number:
		raw = v.String()
	case string:
		raw = v
	default:
		return nil
	}
	if raw == "" {
		return nil
	}

	parsed, err := decimal.NewFromString(raw)
	if err != nil {
		return nil
	}
	value := parsed.InexactFloat64()
	return &value
}
