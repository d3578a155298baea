package cliconfig

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Flag names shared by the CLIs.
const (
	flagConfig   = "config"
	flagVerbose  = "verbose"
	flagInterval = "interval"
	flagOrder    = "order"
	flagScale    = "scale"
	flagParallel = "parallel"
)

// Flags binds the shared persistent flags of a root command.
type Flags struct {
	ConfigPath string
	Verbose    bool

	defaults Params
	values   Params
}

// Bind registers --config, --verbose and the transform parameter flags on
// cmd. defaults are the values used when neither a config file nor a flag
// sets a parameter.
func Bind(cmd *cobra.Command, defaults Params) *Flags {
	f := &Flags{defaults: defaults}

	pf := cmd.PersistentFlags()
	pf.StringVar(&f.ConfigPath, flagConfig, "", "YAML file with transform parameters")
	pf.BoolVarP(&f.Verbose, flagVerbose, "v", false, "Verbose output")
	pf.Float64Var(&f.values.Interval, flagInterval, defaults.Interval, "Sampling interval d")
	pf.Float64Var(&f.values.Order, flagOrder, defaults.Order, "Bessel order ν (non-integer allowed)")
	pf.Float64Var(&f.values.Scale, flagScale, defaults.Scale, "Kernel scale b")
	pf.BoolVar(&f.values.Parallel, flagParallel, defaults.Parallel, "Split the contraction across goroutines")
	return f
}

// Resolve returns the effective params for a parsed command: defaults, then
// the config file if one was given, then any flag set explicitly.
func (f *Flags) Resolve(cmd *cobra.Command) (Params, error) {
	p := f.defaults
	if f.ConfigPath != "" {
		loaded, err := Load(f.ConfigPath, p)
		if err != nil {
			return Params{}, err
		}
		p = loaded
	}

	if f.changed(cmd, flagInterval) {
		p.Interval = f.values.Interval
	}
	if f.changed(cmd, flagOrder) {
		p.Order = f.values.Order
	}
	if f.changed(cmd, flagScale) {
		p.Scale = f.values.Scale
	}
	if f.changed(cmd, flagParallel) {
		p.Parallel = f.values.Parallel
	}
	return p, nil
}

func (f *Flags) changed(cmd *cobra.Command, name string) bool {
	fl := cmd.Flags().Lookup(name)
	return fl != nil && fl.Changed
}

// NewLogger builds a console zap logger on stderr. Verbose enables debug
// output.
func NewLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Encoding = "console"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.DisableStacktrace = true
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}
