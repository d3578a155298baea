// Command hankel runs the quasi-discrete Hankel transform from the command line.
//
// Usage:
//
//	hankel gaussian                        # Gaussian self-transform check
//	hankel gaussian -n 2001 -a 0.005 --out gauss.csv
//	hankel kernel -n 8 --order 0.5         # Print the kernel as CSV
//	hankel info -n 4096 --parallel         # Transformer size and SIMD info
//	hankel config params.yaml              # Write the effective parameters
//
// Transform parameters come from --config (YAML) and are overridden by
// --interval, --order, --scale and --parallel.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tphakala/go-hankel/internal/cliconfig"
	"go.uber.org/zap"
)

// app carries state shared by the subcommands of one invocation.
type app struct {
	flags  *cliconfig.Flags
	logger *zap.Logger
	params cliconfig.Params
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "hankel",
		Short: "Quasi-discrete Hankel transform tools",
		Long: `hankel evaluates the quasi-discrete Hankel transform

	Y[m] = d² · Σ_n b·J_ν(b·m·n/N) · n · X[n]

for integer and non-integer Bessel orders ν.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := cliconfig.NewLogger(a.flags.Verbose)
			if err != nil {
				return err
			}
			a.logger = logger

			params, err := a.flags.Resolve(cmd)
			if err != nil {
				return err
			}
			a.params = params
			a.logger.Debug("Transform parameters",
				zap.Float64("interval", params.Interval),
				zap.Float64("order", params.Order),
				zap.Float64("scale", params.Scale),
				zap.Bool("parallel", params.Parallel))
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	a.flags = cliconfig.Bind(root, cliconfig.Default())

	root.AddCommand(newGaussianCmd(a))
	root.AddCommand(newKernelCmd(a))
	root.AddCommand(newInfoCmd(a))
	root.AddCommand(newConfigCmd(a))
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
