// SPDX-License-Identifier: MIT

// Command spxbench exercises the spx matrix layer from the command line.
//
// Usage:
//
//	spxbench demo                          # run the 3×2 walkthrough
//	spxbench bench --rows 512 --cols 256   # time Gram/Frame/MultVec per backend
//	spxbench bench --kernel reference --reps 20 --log-level debug
//
// The --kernel flag overrides SPX_KERNEL; "all" (bench only) runs every
// registered backend.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/spx/matrix/kernel"
)

// config collects the persistent flags shared by every subcommand.
type config struct {
	kernel   string
	rows     int
	cols     int
	reps     int
	seed     int64
	maxElems int
	logLevel string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := &config{}
	root := &cobra.Command{
		Use:           "spxbench",
		Short:         "Run and time the spx column-major matrix kernels",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return setupLogging(cfg.logLevel)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&cfg.kernel, "kernel", "", "kernel backend ("+fmt.Sprint(kernel.Names())+", or all); empty uses $"+kernel.EnvBackend)
	pf.IntVar(&cfg.rows, "rows", 256, "rows of the benchmark matrix")
	pf.IntVar(&cfg.cols, "cols", 128, "columns of the benchmark matrix")
	pf.IntVar(&cfg.reps, "reps", 10, "repetitions per timed operation")
	pf.Int64Var(&cfg.seed, "seed", 1, "random seed for matrix contents")
	pf.IntVar(&cfg.maxElems, "max-elems", 0, "cap on elements per allocation (0 = unlimited)")
	pf.StringVar(&cfg.logLevel, "log-level", "info", "log level (trace, debug, info, warn, error)")

	root.AddCommand(newDemoCmd(cfg), newBenchCmd(cfg))

	return root
}

// setupLogging installs a console writer on the global zerolog logger.
func setupLogging(level string) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("--log-level %q: %w", level, err)
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	return nil
}

// resolveBackends maps the --kernel flag to concrete backends.
func resolveBackends(name string, allowAll bool) ([]kernel.Kernels, error) {
	switch {
	case name == "":
		return []kernel.Kernels{kernel.Default()}, nil
	case name == "all" && allowAll:
		var out []kernel.Kernels
		for _, n := range kernel.Names() {
			k, err := kernel.Lookup(n)
			if err != nil {
				return nil, err
			}
			out = append(out, k)
		}
		return out, nil
	}
	k, err := kernel.Lookup(name)
	if err != nil {
		return nil, err
	}

	return []kernel.Kernels{k}, nil
}
