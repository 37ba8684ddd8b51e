package main

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"mq-estimator/internal/sweep"
)

func newSweepCmd(ro *rootOptions) *cobra.Command {
	var (
		configPath string
		quiet      bool
	)
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Evaluate the estimator over a grid of problems",
		Long: `Evaluate the estimator over a grid of (n, m, q) read from a YAML file.

Example configuration:

  n: "10..40:5"
  m: "20,40"
  q: [2, 16]
  workers: 4
  jsonl: out/sweep.jsonl
  csv: out/sweep.csv
  chart: out/sweep.html`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := sweep.LoadConfig(configPath)
			if err != nil {
				return err
			}
			opts := []sweep.RunnerOption{sweep.WithLogger(ro.logger)}
			if !quiet {
				opts = append(opts, sweep.WithProgress(cmd.ErrOrStderr()))
			}
			runner := sweep.NewRunner(cfg, opts...)
			results, err := runner.Run(cmd.Context())
			if err != nil {
				return err
			}
			if err := runner.WriteOutputs(results); err != nil {
				return err
			}

			rows := [][]string{}
			for _, s := range sweep.Summarize(results) {
				rows = append(rows, []string{
					s.Algorithm, fmt.Sprint(s.Points), fmt.Sprint(s.Fastest),
					formatStat(s.Min), formatStat(s.Median), formatStat(s.Max),
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"algorithm", "points", "fastest", "min", "median", "max"}, rows, -1))
			return nil
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML sweep configuration (defaults if empty)")
	cmd.Flags().BoolVar(&quiet, "quiet", false, "hide the progress bar")
	return cmd
}

func formatStat(v float64) string {
	if math.IsNaN(v) {
		return "-"
	}
	return formatBits(v)
}
