// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"math/rand"
	"text/tabwriter"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/spx/matrix"
	"github.com/katalvlaran/spx/matrix/kernel"
)

func newBenchCmd(cfg *config) *cobra.Command {
	return &cobra.Command{
		Use:   "bench",
		Short: "Time Gram, Frame, MultVec and MultTVec on a random rows×cols matrix",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cfg.rows < 1 || cfg.cols < 1 || cfg.reps < 1 {
				return fmt.Errorf("--rows, --cols and --reps must be positive")
			}
			ks, err := resolveBackends(cfg.kernel, true)
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "backend\top\tshape\tavg")
			for _, k := range ks {
				if err = benchBackend(tw, k, cfg); err != nil {
					return err
				}
			}
			return tw.Flush()
		},
	}
}

// benchBackend times every operation on k and writes one row per op.
func benchBackend(tw *tabwriter.Writer, k kernel.Kernels, cfg *config) error {
	alloc := matrix.WithAllocator(matrix.HeapAllocator{Limit: cfg.maxElems})
	xc, err := matrix.NewVector(cfg.cols, alloc)
	if err != nil {
		return err
	}
	xr, err := matrix.NewVector(cfg.rows, alloc)
	if err != nil {
		return err
	}

	opt := matrix.WithKernels(k)
	a, err := matrix.NewMatrix(cfg.rows, cfg.cols, opt, alloc)
	if err != nil {
		return err
	}
	defer a.Release()
	rng := rand.New(rand.NewSource(cfg.seed))
	data := a.Data()
	for i := range data {
		data[i] = rng.Float64()*2 - 1
	}

	gram, err := matrix.NewMatrix(cfg.cols, cfg.cols, opt, alloc)
	if err != nil {
		return err
	}
	defer gram.Release()
	frame, err := matrix.NewMatrix(cfg.rows, cfg.rows, opt, alloc)
	if err != nil {
		return err
	}
	defer frame.Release()
	ops := []struct {
		name  string
		shape string
		run   func() error
	}{
		{"gram", fmt.Sprintf("%dx%d", cfg.cols, cfg.cols), func() error { return a.Gram(gram) }},
		{"frame", fmt.Sprintf("%dx%d", cfg.rows, cfg.rows), func() error { return a.Frame(frame) }},
		{"mult_vec", fmt.Sprintf("%dx%d", cfg.rows, cfg.cols), func() error { return a.MultVec(xc, xr) }},
		{"mult_t_vec", fmt.Sprintf("%dx%d", cfg.cols, cfg.rows), func() error { return a.MultTVec(xr, xc) }},
	}
	for _, op := range ops {
		start := time.Now()
		for r := 0; r < cfg.reps; r++ {
			if err = op.run(); err != nil {
				return err
			}
		}
		avg := time.Since(start) / time.Duration(cfg.reps)
		log.Debug().Str("backend", k.Name()).Str("op", op.name).Dur("avg", avg).Msg("bench: done")
		fmt.Fprintf(tw, "%s\t%s\t%s\t%v\n", k.Name(), op.name, op.shape, avg)
	}

	return nil
}
