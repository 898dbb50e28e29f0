// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"sync"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lasfield/diag"
	"github.com/katalvlaran/lasfield/las"
)

func newStatsCmd(a *app) *cobra.Command {
	var (
		n     int
		level float64
	)
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Run an ensemble and compare its statistics with the covariance model",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("realizations") {
				n = a.cfg.Run.Realizations
			}
			e, model, err := a.cfg.NewEngine(a.log)
			if err != nil {
				return err
			}
			acc := diag.NewAccumulator(a.cfg.Run.MaxLag)
			excursions := cmd.Flags().Changed("level")
			var (
				mu                sync.Mutex
				fraction, largest float64
			)
			err = e.Ensemble(cmd.Context(), n, a.cfg.Run.Seed, func(_ int, f *las.Field) error {
				acc.Add(f)
				if !excursions {
					return nil
				}
				set, err := diag.Excursions(f, level, diag.Conn4)
				if err != nil {
					return err
				}
				mu.Lock()
				fraction += set.Fraction
				largest += float64(set.Largest())
				mu.Unlock()
				return nil
			})
			if err != nil {
				return err
			}
			sum, err := acc.Summary()
			if err != nil {
				return err
			}
			dx, dy := e.CellSize()
			want, err := diag.ExpectedFor(model, dx, dy, a.cfg.Run.MaxLag)
			if err != nil {
				return err
			}
			a.log.Info("ensemble done", zap.Int("realizations", sum.Realizations), zap.String("grid", e.Grid().String()))

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(tw, "statistic\tsample\tmodel\n")
			fmt.Fprintf(tw, "mean\t%.4f ± %.4f\t0\n", sum.Mean, sum.MeanStdErr)
			fmt.Fprintf(tw, "variance\t%.4f\t%.4f\n", sum.Variance, want.Variance)
			for lag := range sum.CorrX {
				fmt.Fprintf(tw, "corr x lag %d\t%.4f\t%.4f\n", lag+1, sum.CorrX[lag], want.CorrX[lag])
			}
			for lag := range sum.CorrY {
				fmt.Fprintf(tw, "corr y lag %d\t%.4f\t%.4f\n", lag+1, sum.CorrY[lag], want.CorrY[lag])
			}

			if excursions {
				r := float64(sum.Realizations)
				fmt.Fprintf(tw, "fraction above %g\t%.4f\t\n", level, fraction/r)
				fmt.Fprintf(tw, "largest cluster\t%.1f\t\n", largest/r)
			}

			return tw.Flush()
		},
	}
	cmd.Flags().IntVarP(&n, "realizations", "n", 0, "number of realizations (default from config)")
	cmd.Flags().Float64Var(&level, "level", 0, "also report excursions above this level")

	return cmd
}
