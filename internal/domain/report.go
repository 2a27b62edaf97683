package domain

// AnalysisReportRow is one line of the portfolio analysis report CSV,
// combining computed weights with downloaded quotation coverage.
type AnalysisReportRow struct {
	Portfolio            string   `csv:"portfolio" json:"portfolio"`
	Ticker               string   `csv:"ticker" json:"ticker"`
	Weight               float64  `csv:"weight" json:"weight"`
	WeightPercent        float64  `csv:"weight_percent" json:"weightPercent"`
	HasQuotations        bool     `csv:"has_quotations" json:"hasQuotations"`
	RecordCount          int      `csv:"record_count" json:"recordCount"`
	StartDate            string   `csv:"start_date" json:"startDate"`
	EndDate              string   `csv:"end_date" json:"endDate"`
	AnnualizedVolatility *float64 `csv:"annualized_volatility" json:"annualizedVolatility"`
}

// PortfolioReportSummary aggregates a single portfolio's report rows.
type PortfolioReportSummary struct {
	Portfolio          string      `json:"portfolio"`
	TotalTickers       int         `json:"totalTickers"`
	TickersWithWeights int         `json:"tickersWithWeights"`
	TickersWithQuotes  int         `json:"tickersWithQuotes"`
	TickersWithBoth    int         `json:"tickersWithBoth"`
	MeanWeight         *float64    `json:"meanWeight"`
	MedianWeight       *float64    `json:"medianWeight"`
	TopTickersByWeight []TopTicker `json:"topTickersByWeight"`
}

type TopTicker struct {
	Ticker        string  `json:"ticker"`
	WeightPercent float64 `json:"weightPercent"`
	RecordCount   int     `json:"recordCount"`
}
