package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"capindex/internal/domain"
	"capindex/internal/logger"
	"capindex/internal/util"

	"gopkg.in/yaml.v3"
)

const (
	DefaultPortfolioPath = "./settings/tickers_in_portfolio.yaml"

	portfolioKeyPrefix = "portfolio_"
	defaultStartDate   = "2015-01-01"
)

// Config is the parsed portfolio configuration file. Portfolios keep the
// order they appear in the file.
type Config struct {
	StartDate  time.Time
	Portfolios []domain.Portfolio
}

type ConfigurationError struct {
	Path   string
	Detail string
}

func (e ConfigurationError) Error() string {
	return fmt.Sprintf("invalid portfolio configuration in %s: %s", e.Path, e.Detail)
}

// Load reads the portfolio configuration. Top-level keys with the
// "portfolio_" prefix define portfolios; "start_date" sets the date assigned
// to undated portfolio forms and the default quotation window start. A
// portfolio value may be a plain ticker list, a ticker to weight mapping
// (null weight means capitalization-based), a {tickers, weights} pair, or a
// {venue, rebalances} object with dated allocations.
func Load(path string) (*Config, error) {
	if err := util.ValidateFilePath(path); err != nil {
		return nil, err
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var document yaml.Node
	if err := yaml.Unmarshal(contents, &document); err != nil {
		return nil, ConfigurationError{Path: path, Detail: err.Error()}
	}
	if document.Kind != yaml.DocumentNode || len(document.Content) == 0 || document.Content[0].Kind != yaml.MappingNode {
		return nil, ConfigurationError{Path: path, Detail: "expected a top-level mapping"}
	}
	root := document.Content[0]

	startDate, err := parseStartDate(root, path)
	if err != nil {
		return nil, err
	}

	portfolios, err := parsePortfolios(root, startDate, path)
	if err != nil {
		return nil, err
	}

	return &Config{
		StartDate:  startDate,
		Portfolios: portfolios,
	}, nil
}

func parseStartDate(root *yaml.Node, path string) (time.Time, error) {
	raw := defaultStartDate
	for i := 0; i+1 < len(root.Content); i += 2 {
		if root.Content[i].Value == "start_date" {
			raw = root.Content[i+1].Value
			break
		}
	}

	startDate, err := util.ParseDate(raw)
	if err != nil {
		return time.Time{}, ConfigurationError{Path: path, Detail: fmt.Sprintf("start_date %q is not a valid YYYY-MM-DD date", raw)}
	}

	return startDate, nil
}

func parsePortfolios(root *yaml.Node, startDate time.Time, path string) ([]domain.Portfolio, error) {
	portfolios := []domain.Portfolio{}
	seen := map[string]bool{}

	for i := 0; i+1 < len(root.Content); i += 2 {
		key := root.Content[i].Value
		value := root.Content[i+1]

		if key == "start_date" {
			continue
		}
		if !strings.HasPrefix(key, portfolioKeyPrefix) {
			logger.Warn("ignoring unrecognized key %q in %s", key, path)
			continue
		}
		if seen[key] {
			return nil, ConfigurationError{Path: path, Detail: fmt.Sprintf("portfolio %q is defined more than once", key)}
		}
		seen[key] = true

		portfolio, err := parsePortfolio(key, value, startDate, path)
		if err != nil {
			return nil, err
		}
		portfolios = append(portfolios, *portfolio)
	}

	return portfolios, nil
}

type structuredPortfolio struct {
	Venue      string                `yaml:"venue"`
	Rebalances []structuredRebalance `yaml:"rebalances"`
}

type structuredRebalance struct {
	Date        string              `yaml:"date"`
	Allocations map[string]*float64 `yaml:"allocations"`
}

type tickersAndWeights struct {
	Tickers []string           `yaml:"tickers"`
	Weights map[string]float64 `yaml:"weights"`
}

func parsePortfolio(name string, node *yaml.Node, startDate time.Time, path string) (*domain.Portfolio, error) {
	switch node.Kind {
	case yaml.SequenceNode:
		return parseTickerList(name, node, startDate, path)
	case yaml.MappingNode:
		if hasMappingKey(node, "rebalances") || hasMappingKey(node, "venue") {
			return parseStructured(name, node, path)
		}
		if hasMappingKey(node, "tickers") || hasMappingKey(node, "weights") {
			return parseTickersAndWeights(name, node, startDate, path)
		}
		return parseAllocations(name, node, startDate, path)
	default:
		return nil, ConfigurationError{Path: path, Detail: fmt.Sprintf("portfolio %q must be a ticker list or a mapping", name)}
	}
}

func parseTickerList(name string, node *yaml.Node, startDate time.Time, path string) (*domain.Portfolio, error) {
	tickers := []string{}
	if err := node.Decode(&tickers); err != nil {
		return nil, ConfigurationError{Path: path, Detail: fmt.Sprintf("portfolio %q: %s", name, err)}
	}

	allocations := make(map[string]*float64, len(tickers))
	for _, ticker := range tickers {
		allocations[ticker] = nil
	}

	return &domain.Portfolio{
		Name:   name,
		Venue:  domain.VenueMOEX,
		Events: []domain.RebalanceEvent{{Date: startDate, Allocations: allocations}},
	}, nil
}

func parseAllocations(name string, node *yaml.Node, startDate time.Time, path string) (*domain.Portfolio, error) {
	allocations := map[string]*float64{}
	if err := node.Decode(&allocations); err != nil {
		return nil, ConfigurationError{Path: path, Detail: fmt.Sprintf("portfolio %q: %s", name, err)}
	}

	return &domain.Portfolio{
		Name:   name,
		Venue:  domain.VenueMOEX,
		Events: []domain.RebalanceEvent{{Date: startDate, Allocations: allocations}},
	}, nil
}

func parseTickersAndWeights(name string, node *yaml.Node, startDate time.Time, path string) (*domain.Portfolio, error) {
	legacy := tickersAndWeights{}
	if err := node.Decode(&legacy); err != nil {
		return nil, ConfigurationError{Path: path, Detail: fmt.Sprintf("portfolio %q: %s", name, err)}
	}

	allocations := make(map[string]*float64, len(legacy.Tickers))
	for _, ticker := range legacy.Tickers {
		if weight, ok := legacy.Weights[ticker]; ok {
			w := weight
			allocations[ticker] = &w
		} else {
			allocations[ticker] = nil
		}
	}
	for ticker := range legacy.Weights {
		if _, ok := allocations[ticker]; !ok {
			logger.Warn("portfolio %q assigns a weight to %s which is not in its ticker list", name, ticker)
		}
	}

	return &domain.Portfolio{
		Name:   name,
		Venue:  domain.VenueMOEX,
		Events: []domain.RebalanceEvent{{Date: startDate, Allocations: allocations}},
	}, nil
}

func parseStructured(name string, node *yaml.Node, path string) (*domain.Portfolio, error) {
	structured := structuredPortfolio{}
	if err := node.Decode(&structured); err != nil {
		return nil, ConfigurationError{Path: path, Detail: fmt.Sprintf("portfolio %q: %s", name, err)}
	}

	venue := domain.VenueMOEX
	switch strings.ToUpper(structured.Venue) {
	case "", string(domain.VenueMOEX):
	case string(domain.VenueNYSE):
		venue = domain.VenueNYSE
	default:
		return nil, ConfigurationError{Path: path, Detail: fmt.Sprintf("portfolio %q has unknown venue %q", name, structured.Venue)}
	}

	events := make([]domain.RebalanceEvent, 0, len(structured.Rebalances))
	for _, rebalance := range structured.Rebalances {
		if rebalance.Date == "" {
			return nil, ConfigurationError{Path: path, Detail: fmt.Sprintf("portfolio %q has a rebalance without a date", name)}
		}
		date, err := util.ParseDate(rebalance.Date)
		if err != nil {
			return nil, ConfigurationError{Path: path, Detail: fmt.Sprintf("portfolio %q rebalance date %q is not a valid YYYY-MM-DD date", name, rebalance.Date)}
		}
		allocations := rebalance.Allocations
		if allocations == nil {
			allocations = map[string]*float64{}
		}
		events = append(events, domain.RebalanceEvent{Date: date, Allocations: allocations})
	}

	return &domain.Portfolio{
		Name:   name,
		Venue:  venue,
		Events: events,
	}, nil
}

func hasMappingKey(node *yaml.Node, key string) bool {
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return true
		}
	}
	return false
}
