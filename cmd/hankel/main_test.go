package main

import (
	"bytes"
	"encoding/csv"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tphakala/go-hankel"
	"github.com/tphakala/go-hankel/internal/cliconfig"
)

// execute runs the root command with args and returns its stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestGaussianSelfTransform(t *testing.T) {
	res, err := gaussianSelfTransform(1001, 0.01, cliconfig.Default())
	require.NoError(t, err)

	assert.Len(t, res.g, 1001)
	assert.Less(t, res.maxDeviation, 1e-3)
	assert.InDelta(t, 0.999, res.g[0], 1e-3)
	assert.InDelta(t, 0.0, res.r[0], 0)
	assert.InDelta(t, 1000.0, res.r[1000], 0)
	assert.InDelta(t, 1.0/1001, res.k[1], 1e-15)
}

func TestGaussianSelfTransform_Invalid(t *testing.T) {
	_, err := gaussianSelfTransform(0, 0.01, cliconfig.Default())
	require.ErrorIs(t, err, hankel.ErrInvalidDimension)

	_, err = gaussianSelfTransform(10, -1, cliconfig.Default())
	require.ErrorIs(t, err, hankel.ErrInvalidParameter)

	p := cliconfig.Default()
	p.Interval = 0
	_, err = gaussianSelfTransform(10, 0.1, p)
	require.ErrorIs(t, err, hankel.ErrInvalidParameter)
}

func TestWriteGaussianCSV(t *testing.T) {
	res, err := gaussianSelfTransform(16, 0.1, cliconfig.Default())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, writeGaussianCSV(&buf, res, 3))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4)
	assert.Equal(t, []string{"r", "f", "k", "g", "analytic"}, records[0])
	assert.Equal(t, []string{"0", "1", "0"}, records[1][:3])
}

func TestGaussianCommand(t *testing.T) {
	out, err := execute(t, "gaussian", "-n", "101", "-a", "0.1")
	require.NoError(t, err)
	assert.Contains(t, out, "Gaussian self-transform: N=101, a=0.1")
	assert.Contains(t, out, "r,f,k,g,analytic")

	path := filepath.Join(t.TempDir(), "gauss.csv")
	_, err = execute(t, "gaussian", "-n", "64", "--out", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(string(data)), "\n"), 65)
}

// TestGaussianCommand_IntervalKeepsSampleGrid verifies every CSV row holds
// f(r) for the r it prints, also when the interval prefactor is not 1.
func TestGaussianCommand_IntervalKeepsSampleGrid(t *testing.T) {
	const a = 0.1
	path := filepath.Join(t.TempDir(), "gauss.csv")
	_, err := execute(t, "gaussian", "-n", "11", "-a", "0.1", "--interval", "0.5", "--out", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 12)

	for i, rec := range records[1:] {
		r, err := strconv.ParseFloat(rec[0], 64)
		require.NoError(t, err)
		f, err := strconv.ParseFloat(rec[1], 64)
		require.NoError(t, err)

		assert.InDelta(t, float64(i), r, 0, "row %d", i)
		assert.InDelta(t, math.Exp(-(a*r)*(a*r)/2), f, 1e-15, "row %d", i)
	}
}

func TestKernelCommand(t *testing.T) {
	out, err := execute(t, "kernel", "-n", "2", "--scale", "2.5")
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, []string{"2.5", "2.5"}, records[0])
	assert.Equal(t, "2.5", records[1][0])

	_, err = execute(t, "kernel", "-n", "100")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "too large")

	_, err = execute(t, "kernel", "-n", "4", "--scale", "0")
	require.ErrorIs(t, err, hankel.ErrInvalidParameter)
}

func TestInfoCommand(t *testing.T) {
	out, err := execute(t, "info", "-n", "16", "--order", "0.5")
	require.NoError(t, err)
	assert.Contains(t, out, "Size: 16")
	assert.Contains(t, out, "Order: 0.5")
	assert.Contains(t, out, "Memory usage: 2.00 KB")
}

func TestConfigCommand(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "params.yaml")

	_, err := execute(t, "config", path, "--order", "1.5", "--interval", "0.25")
	require.NoError(t, err)

	p, err := cliconfig.Load(path, cliconfig.Default())
	require.NoError(t, err)
	assert.InDelta(t, 1.5, p.Order, 0)
	assert.InDelta(t, 0.25, p.Interval, 0)

	// The written file drives a later run.
	out, err := execute(t, "info", "-n", "8", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Order: 1.5")
	assert.Contains(t, out, "Interval: 0.25")
}
