package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/tphakala/go-hankel"
	"github.com/tphakala/go-hankel/internal/cliconfig"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"
)

func newGaussianCmd(a *app) *cobra.Command {
	var (
		n     int
		width float64
		out   string
	)

	cmd := &cobra.Command{
		Use:   "gaussian",
		Short: "Transform exp(-(a·r)²/2) and compare with its analytic self-transform",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !isGaussianIdentity(a.params) {
				a.logger.Warn("Analytic comparison assumes interval 1, order 0 and scale 1",
					zap.Float64("interval", a.params.Interval),
					zap.Float64("order", a.params.Order),
					zap.Float64("scale", a.params.Scale))
			}

			res, err := gaussianSelfTransform(n, width, a.params)
			if err != nil {
				return err
			}
			a.logger.Debug("Gaussian transformed", zap.Int("samples", n), zap.Float64("a", width))

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Gaussian self-transform: N=%d, a=%g\n", n, width)
			fmt.Fprintf(w, "  peak g[0] = %.6f\n", res.g[0])
			fmt.Fprintf(w, "  max deviation from analytic = %.3e\n", res.maxDeviation)

			if out == "" {
				return writeGaussianCSV(w, res, min(previewSamples, n))
			}
			if err := writeGaussianFile(out, res); err != nil {
				return err
			}
			a.logger.Info("Wrote CSV", zap.String("path", out), zap.Int("rows", n))
			return nil
		},
	}

	cmd.Flags().IntVarP(&n, "samples", "n", defaultGaussianN, "Number of samples N")
	cmd.Flags().Float64VarP(&width, "width", "a", defaultGaussianWidth, "Gaussian width a")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Write all rows to a CSV file")
	return cmd
}

// gaussianResult holds one column per CSV field.
type gaussianResult struct {
	r, f, k, g, analytic []float64
	maxDeviation         float64
}

func isGaussianIdentity(p cliconfig.Params) bool {
	return p.Interval == 1 && p.Order == 0 && p.Scale == 1
}

// gaussianSelfTransform samples f(r) = exp(-(a·r)²/2) on r = 0..n-1,
// transforms it and rescales by √a/N. For the default parameters the result
// g[m] matches (√a/(a²N))·exp(-k²/(2a²)) with k = m/N.
func gaussianSelfTransform(n int, a float64, p cliconfig.Params) (*gaussianResult, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: sample count must be positive, got %d", hankel.ErrInvalidDimension, n)
	}
	if math.IsNaN(a) || math.IsInf(a, 0) || a <= 0 {
		return nil, fmt.Errorf("%w: width must be positive and finite, got %v", hankel.ErrInvalidParameter, a)
	}

	cfg, err := p.Config(hankel.LastAxis)
	if err != nil {
		return nil, err
	}

	res := &gaussianResult{
		r:        make([]float64, n),
		f:        make([]float64, n),
		analytic: make([]float64, n),
	}
	for i := range n {
		res.r[i] = float64(i)
		ar := a * res.r[i]
		res.f[i] = math.Exp(-ar * ar / 2)
	}

	y, freq, err := hankel.TransformWithFrequencies(hankel.Vector(res.f), &cfg)
	if err != nil {
		return nil, fmt.Errorf("transform failed: %w", err)
	}

	scale := hankel.GaussianSelfTransformScale(a, n)
	res.k = freq
	res.g = y.Data()
	floats.Scale(scale, res.g)

	for i, k := range freq {
		res.analytic[i] = scale / (a * a) * math.Exp(-k*k/(2*a*a))
	}

	diff := make([]float64, n)
	floats.SubTo(diff, res.g, res.analytic)
	res.maxDeviation = floats.Norm(diff, math.Inf(1))
	return res, nil
}

func writeGaussianFile(path string, res *gaussianResult) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
	}()
	return writeGaussianCSV(f, res, len(res.r))
}

// writeGaussianCSV writes the header and the first rows rows.
func writeGaussianCSV(w io.Writer, res *gaussianResult, rows int) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"r", "f", "k", "g", "analytic"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	cols := [][]float64{res.r, res.f, res.k, res.g, res.analytic}
	record := make([]string, len(cols))
	for i := range rows {
		for c, col := range cols {
			record[c] = formatFloat(col[i])
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV row %d: %w", i, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, floatFormat, floatPrecision, float64Bits)
}
