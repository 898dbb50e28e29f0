// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lasfield/grid"
)

func newGridCmd(a *app) *cobra.Command {
	var nx, ny, mxk, mMax int
	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Show how a lattice decomposes into a base lattice and subdivisions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("nx") {
				nx = a.cfg.Grid.NX
			}
			if !cmd.Flags().Changed("ny") {
				ny = a.cfg.Grid.NY
			}
			if !cmd.Flags().Changed("mxk") {
				mxk = a.cfg.Grid.MaxBaseCells
			}
			if !cmd.Flags().Changed("mmax") {
				mMax = a.cfg.Grid.MaxDepth
			}
			out := cmd.OutOrStdout()

			s, err := grid.Factorize(nx, ny, mMax, mxk)
			if err == nil {
				fmt.Fprintln(out, s)
				return nil
			}
			if !errors.Is(err, grid.ErrIncompatibleGrid) {
				return err
			}
			rx, ry, nerr := grid.Normalize(nx, ny, mMax, mxk)
			if nerr != nil {
				return errors.Join(err, nerr)
			}
			s, ferr := grid.Factorize(rx, ry, mMax, mxk)
			if ferr != nil {
				return errors.Join(err, ferr)
			}
			fmt.Fprintf(out, "%dx%d is incompatible; nearest: %s\n", nx, ny, s)

			return nil
		},
	}
	cmd.Flags().IntVar(&nx, "nx", 0, "cells along x (default from config)")
	cmd.Flags().IntVar(&ny, "ny", 0, "cells along y (default from config)")
	cmd.Flags().IntVar(&mxk, "mxk", 0, "maximum base-lattice cells (default from config)")
	cmd.Flags().IntVar(&mMax, "mmax", 0, "maximum subdivisions (default from config)")

	return cmd
}
