// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lasfield/covfn"
	"github.com/katalvlaran/lasfield/las"
	"github.com/katalvlaran/lasfield/marginal"
)

func newGenerateCmd(a *app) *cobra.Command {
	var outPath string
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate one realization and write it as text",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, model, err := a.cfg.NewEngine(a.log)
			if err != nil {
				return err
			}
			f, err := e.SampleContext(cmd.Context(), las.NewRand(a.cfg.Run.Seed))
			if err != nil {
				return err
			}
			if f, err = applyMarginal(a, f, model); err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if outPath != "" {
				file, err := os.Create(outPath)
				if err != nil {
					return err
				}
				defer file.Close()
				w = file
			}
			if err = writeField(w, f); err != nil {
				return err
			}
			a.log.Info("field written",
				zap.String("grid", e.Grid().String()),
				zap.Uint64("seed", a.cfg.Run.Seed),
				zap.Bool("degraded", e.Degraded()))

			return nil
		},
	}
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")

	return cmd
}

// applyMarginal standardizes and transforms f as the marginal block asks.
func applyMarginal(a *app, f *las.Field, model *covfn.Model) (*las.Field, error) {
	d, err := a.cfg.Distribution()
	if err != nil || d == nil {
		return f, err
	}
	if a.cfg.Marginal.Standardize {
		cell := covfn.Cell(0, 0, f.DX, f.DY)
		if err = marginal.Standardize(f, math.Sqrt(model.Cov(cell, cell))); err != nil {
			return nil, err
		}
	}

	return marginal.TransformField(f, d), nil
}

// writeField writes a "# nx ny dx dy" header then one line per x index.
func writeField(w io.Writer, f *las.Field) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# %d %d %g %g\n", f.NX, f.NY, f.DX, f.DY)
	buf := make([]byte, 0, 32)
	for i := 0; i < f.NX; i++ {
		for j := 0; j < f.NY; j++ {
			if j > 0 {
				bw.WriteByte(' ')
			}
			buf = strconv.AppendFloat(buf[:0], f.At(i, j), 'g', 10, 64)
			bw.Write(buf)
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}
