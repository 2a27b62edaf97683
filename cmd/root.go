package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"sort"
	"time"

	"capindex/internal/domain"
	"capindex/internal/logger"
	"capindex/internal/repository"
	"capindex/internal/util"
	"capindex/pkg/moexiss"

	"github.com/spf13/cobra"
	"golang.org/x/time/rate"
)

var (
	weightsDate    string
	quotationsFrom string
	quotationsTill string
	servePort      int
)

var rootCmd = &cobra.Command{
	Use:          "capindex",
	Short:        "Capitalization weighted portfolio analysis for MOEX and NYSE listings",
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	weightsCmd.Flags().StringVar(&weightsDate, "date", "", "target date as YYYY-MM-DD, defaults to each portfolio's first rebalance")
	quotationsCmd.Flags().StringVar(&quotationsFrom, "from", "", "window start as YYYY-MM-DD, defaults to the configured start date")
	quotationsCmd.Flags().StringVar(&quotationsTill, "till", "", "window end as YYYY-MM-DD, defaults to today")
	serveCmd.Flags().IntVar(&servePort, "port", 3009, "port to listen on")

	rootCmd.AddCommand(analyzeCmd, weightsCmd, quotationsCmd, indicesCmd, serveCmd)
}

// commandContext seeds the context with a logger so the services do not
// each build their own.
func commandContext() context.Context {
	return context.WithValue(context.Background(), logger.ContextKey, logger.New())
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run the full analysis and write the csv report",
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := InitializeDependencies()
		if err != nil {
			return err
		}

		result, err := handler.AnalysisHandler.Run(commandContext())
		if err != nil {
			return err
		}

		fmt.Printf("report written to %s\n", result.ReportPath)
		return nil
	},
}

var weightsCmd = &cobra.Command{
	Use:   "weights [portfolio]",
	Short: "Print portfolio weights, for one portfolio or all of them",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := InitializeDependencies()
		if err != nil {
			return err
		}
		ctx := commandContext()

		var targetDate time.Time
		if weightsDate != "" {
			targetDate, err = util.ParseDate(weightsDate)
			if err != nil {
				return err
			}
		}

		if len(args) == 1 {
			var weights map[string]float64
			if weightsDate != "" {
				weights, err = handler.WeightService.CalculatePortfolioWeightsForDate(ctx, args[0], targetDate)
			} else {
				weights, err = handler.WeightService.CalculatePortfolioWeights(ctx, args[0])
			}
			if err != nil {
				return err
			}
			util.Pprint(weights)
			return nil
		}

		var allWeights map[string]map[string]float64
		if weightsDate != "" {
			allWeights, err = handler.WeightService.CalculateAllPortfolioWeightsForDate(ctx, targetDate)
		} else {
			allWeights, err = handler.WeightService.CalculateAllPortfolioWeights(ctx)
		}
		if err != nil {
			return err
		}
		util.Pprint(allWeights)
		return nil
	},
}

var quotationsCmd = &cobra.Command{
	Use:   "quotations [portfolio]",
	Short: "Download quotations and print per ticker record counts",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := InitializeDependencies()
		if err != nil {
			return err
		}
		ctx := commandContext()

		from := handler.PortfolioRepository.StartDate()
		if quotationsFrom != "" {
			from, err = util.ParseDate(quotationsFrom)
			if err != nil {
				return err
			}
		}
		till := time.Now().UTC()
		if quotationsTill != "" {
			till, err = util.ParseDate(quotationsTill)
			if err != nil {
				return err
			}
		}

		quotationService := handler.AnalysisHandler.QuotationService
		if len(args) == 1 {
			quotations, err := quotationService.GetPortfolioQuotations(ctx, args[0], from, till)
			if err != nil {
				return err
			}
			printQuotationCounts(args[0], quotations)
			return nil
		}

		allQuotations, err := quotationService.LoadAllQuotations(ctx, from, till)
		if err != nil {
			return err
		}
		names := make([]string, 0, len(allQuotations))
		for name := range allQuotations {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			printQuotationCounts(name, allQuotations[name])
		}
		return nil
	},
}

func printQuotationCounts(portfolioName string, quotations map[string][]domain.Candle) {
	tickers := make([]string, 0, len(quotations))
	for ticker := range quotations {
		tickers = append(tickers, ticker)
	}
	sort.Strings(tickers)

	fmt.Printf("%s:\n", portfolioName)
	for _, ticker := range tickers {
		fmt.Printf("  %s: %d records\n", ticker, len(quotations[ticker]))
	}
}

var indicesCmd = &cobra.Command{
	Use:   "indices",
	Short: "List the indices published on the MOEX index board",
	RunE: func(cmd *cobra.Command, args []string) error {
		client := moexiss.Client{
			HttpClient: &http.Client{Timeout: 30 * time.Second},
			Limiter:    rate.NewLimiter(rate.Limit(moexRequestsPerSecond), moexRequestsPerSecond),
		}

		indices, err := repository.NewIndexRepository(client).GetIndices(commandContext())
		if err != nil {
			return err
		}
		for _, index := range indices {
			fmt.Println(index)
		}
		return nil
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the http api",
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := InitializeDependencies()
		if err != nil {
			return err
		}
		return handler.StartApi(servePort)
	},
}
