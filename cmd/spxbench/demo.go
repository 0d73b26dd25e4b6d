// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/spx/matrix"
)

func newDemoCmd(cfg *config) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Walk A=[[1,2],[3,4],[5,6]] through scans, Gram, Frame and row-min subtraction",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ks, err := resolveBackends(cfg.kernel, false)
			if err != nil {
				return err
			}
			return runDemo(cmd, matrix.WithKernels(ks[0]))
		},
	}
}

func runDemo(cmd *cobra.Command, opt matrix.Option) error {
	out := cmd.OutOrStdout()
	a, err := matrix.NewMatrixFrom([]float64{1, 3, 5, 2, 4, 6}, 3, 2, false, opt)
	if err != nil {
		return err
	}
	log.Debug().Str("backend", a.Kernels().Name()).Msg("demo: matrix ready")
	if err = a.Fprint(out, "A"); err != nil {
		return err
	}

	v, i, err := a.ColMin(0)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "col_min(0) = %g at row %d\n", v, i)
	if v, i, err = a.ColMax(1); err != nil {
		return err
	}
	fmt.Fprintf(out, "col_max(1) = %g at row %d\n", v, i)

	g, err := matrix.NewGram(a)
	if err != nil {
		return err
	}
	defer g.Release()
	if err = g.Fprint(out, "A'A"); err != nil {
		return err
	}

	f, err := matrix.NewFrame(a)
	if err != nil {
		return err
	}
	defer f.Release()
	if err = f.Fprint(out, "AA'"); err != nil {
		return err
	}

	if err = a.SubtractRowMins(); err != nil {
		return err
	}

	return a.Fprint(out, "A - rowmin")
}
