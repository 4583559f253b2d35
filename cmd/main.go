package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"golang-market-predictor/pkg/prediction"

	"github.com/spf13/cobra"
)

func newRootCmd(out io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "predictor",
		Short:         "Offline prediction metrics and forecasts",
		Long:          `predictor evaluates a single prediction record or generates a synthetic forecast without touching the database.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.AddCommand(newMetricsCmd(out), newForecastCmd(out))
	return rootCmd
}

func newMetricsCmd(out io.Writer) *cobra.Command {
	var rec prediction.Record
	cmd := &cobra.Command{
		Use:   "metrics",
		Short: "Derive trend, confidence level, action and ROI for one record",
		RunE: func(cmd *cobra.Command, args []string) error {
			metrics, err := prediction.Evaluate(rec)
			if err != nil {
				return err
			}
			return writeJSON(out, metrics)
		},
	}
	cmd.Flags().Float64Var(&rec.CurrentValue, "current", 0, "Current value")
	cmd.Flags().Float64Var(&rec.PredictedValue, "predicted", 0, "Predicted value")
	cmd.Flags().Float64Var(&rec.Confidence, "confidence", 0, "Confidence score (0-100)")
	_ = cmd.MarkFlagRequired("current")
	_ = cmd.MarkFlagRequired("predicted")
	return cmd
}

func newForecastCmd(out io.Writer) *cobra.Command {
	var (
		series     []float64
		trend      string
		volatility float64
		seed       uint64
	)
	cmd := &cobra.Command{
		Use:   "forecast",
		Short: "Generate the forward forecast for a historical series",
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := prediction.ParseTrend(trend)
			if err != nil {
				return err
			}
			opts := []prediction.ForecastOption{prediction.WithVolatility(volatility)}
			if cmd.Flags().Changed("seed") {
				opts = append(opts, prediction.WithRandom(prediction.NewSeededRandom(seed)))
			}
			values, err := prediction.GenerateForecastData(series, t, opts...)
			if err != nil {
				return err
			}
			return writeJSON(out, values)
		},
	}
	cmd.Flags().Float64SliceVar(&series, "series", nil, "Historical values, oldest first (e.g. 1,2,3)")
	cmd.Flags().StringVar(&trend, "trend", string(prediction.TrendStable), "Trend: up, down or stable")
	cmd.Flags().Float64Var(&volatility, "volatility", prediction.DefaultVolatility, "Per-step volatility")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Seed for a reproducible forecast")
	_ = cmd.MarkFlagRequired("series")
	return cmd
}

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
