package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"stockhealth/cmd"
	"stockhealth/internal"
	"stockhealth/internal/app"
	"stockhealth/internal/domain"

	"github.com/gocarina/gocsv"
	"github.com/spf13/cobra"
)

var (
	flagPeriod string
	flagCsvOut string
)

type scoreRow struct {
	Parameter string  `csv:"parameter"`
	Value     string  `csv:"value"`
	Score     float64 `csv:"score"`
	Weight    float64 `csv:"weight"`
	Included  bool    `csv:"included"`
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "stockhealth-script",
		Short: "terminal front-end for the analysis pipeline",
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze [symbol]",
		Short: "score one ticker and print the scorecard",
		Args:  cobra.ExactArgs(1),
		RunE:  runAnalyze,
	}
	analyzeCmd.Flags().StringVar(&flagPeriod, "period", "5y", "lookback period (unused without charts, kept for parity)")
	analyzeCmd.Flags().StringVar(&flagCsvOut, "csv", "", "write the scorecard rows to this csv file")
	rootCmd.AddCommand(analyzeCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func runAnalyze(c *cobra.Command, args []string) error {
	handler, err := cmd.InitializeDependencies()
	if err != nil {
		return err
	}

	period, err := domain.ParsePeriod(flagPeriod)
	if err != nil {
		return err
	}

	result, err := handler.AnalysisHandler.Analyze(context.Background(), app.AnalyzeInput{
		Symbol:     strings.ToUpper(strings.TrimSpace(args[0])),
		Period:     period,
		SkipCharts: true,
	})
	if err != nil {
		return err
	}

	type summary struct {
		Symbol         string  `json:"symbol"`
		Company        string  `json:"company"`
		OverallScore   float64 `json:"overallScore"`
		Recommendation string  `json:"recommendation"`
		Reason         string  `json:"reason"`
	}
	internal.Pprint(summary{
		Symbol:         result.Symbol,
		Company:        result.Profile.Name,
		OverallScore:   result.Recommendation.Score,
		Recommendation: string(result.Recommendation.Label),
		Reason:         result.Recommendation.Reason,
	})

	rows := make([]scoreRow, 0, len(result.ScoreCard.Parameters))
	for _, p := range result.ScoreCard.Parameters {
		rows = append(rows, scoreRow{
			Parameter: p.DisplayName,
			Value:     p.Display,
			Score:     p.Score,
			Weight:    p.Weight,
			Included:  p.Included,
		})
	}
	internal.Pprint(rows)

	if flagCsvOut != "" {
		f, err := os.Create(flagCsvOut)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := gocsv.MarshalFile(&rows, f); err != nil {
			return fmt.Errorf("failed to write csv: %w", err)
		}
	}

	return nil
}
