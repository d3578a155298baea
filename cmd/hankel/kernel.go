package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/tphakala/go-hankel"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"
)

func newKernelCmd(a *app) *cobra.Command {
	var (
		n   int
		out string
	)

	cmd := &cobra.Command{
		Use:   "kernel",
		Short: "Print the N×N kernel b·J_ν(b·m·n/N) as CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if out == "" && n > maxKernelPrint {
				return fmt.Errorf("kernel of size %d is too large to print, use --out", n)
			}

			k, err := hankel.BuildKernel(n, a.params.Order, a.params.Scale)
			if err != nil {
				return err
			}
			a.logger.Debug("Kernel built", zap.Int("size", n))

			if out == "" {
				return writeKernelCSV(cmd.OutOrStdout(), k)
			}

			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("failed to create output file: %w", err)
			}
			if err := writeKernelCSV(f, k); err != nil {
				_ = f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			a.logger.Info("Wrote kernel", zap.String("path", out), zap.Int("size", n))
			return nil
		},
	}

	cmd.Flags().IntVarP(&n, "samples", "n", defaultKernelN, "Kernel size N")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Write the kernel to a CSV file")
	return cmd
}

// writeKernelCSV writes one CSV row per kernel row.
func writeKernelCSV(w io.Writer, k *mat.Dense) error {
	rows, cols := k.Dims()
	cw := csv.NewWriter(w)
	record := make([]string, cols)
	for m := range rows {
		for j, v := range k.RawRowView(m) {
			record[j] = formatFloat(v)
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write kernel row %d: %w", m, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func newInfoCmd(a *app) *cobra.Command {
	var n int

	cmd := &cobra.Command{
		Use:   "info",
		Short: "Build a transformer and print its size and SIMD support",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := a.params.Config(hankel.LastAxis)
			if err != nil {
				return err
			}
			t, err := hankel.NewTransformer(n, &cfg)
			if err != nil {
				return err
			}

			info := t.GetInfo()
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Transformer:\n")
			fmt.Fprintf(w, "  Size: %d\n", info.Size)
			fmt.Fprintf(w, "  Order: %g\n", info.Order)
			fmt.Fprintf(w, "  Scale: %g\n", info.Scale)
			fmt.Fprintf(w, "  Interval: %g\n", info.Interval)
			fmt.Fprintf(w, "  Memory usage: %.2f KB\n", float64(info.MemoryUsage)/bytesPerKilobyte)
			fmt.Fprintf(w, "  Parallel: %v\n", cfg.EnableParallel)
			fmt.Fprintf(w, "  SIMD: %v (%s)\n", info.SIMDEnabled, info.SIMDType)
			return nil
		},
	}

	cmd.Flags().IntVarP(&n, "samples", "n", defaultInfoN, "Transform length N")
	return cmd
}

func newConfigCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "config <file.yaml>",
		Short: "Write the effective transform parameters to a YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if _, err := a.params.Config(hankel.LastAxis); err != nil {
				return err
			}
			if err := a.params.Save(args[0]); err != nil {
				return err
			}
			a.logger.Info("Wrote config", zap.String("path", args[0]))
			return nil
		},
	}
}
