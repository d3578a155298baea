package cliconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tphakala/go-hankel"
	"go.uber.org/zap/zapcore"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "params.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	p := Default()
	assert.InDelta(t, 1.0, p.Interval, 0)
	assert.InDelta(t, 0.0, p.Order, 0)
	assert.InDelta(t, 1.0, p.Scale, 0)
	assert.False(t, p.Parallel)
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, "interval: 0.5\norder: 1.5\nscale: 2\nparallel: true\n")

	p, err := Load(path, Default())
	require.NoError(t, err)
	assert.Equal(t, Params{Interval: 0.5, Order: 1.5, Scale: 2, Parallel: true}, p)
}

func TestLoad_PartialKeepsBase(t *testing.T) {
	path := writeConfig(t, "order: 0.3\n")

	base := Default()
	base.Parallel = true
	p, err := Load(path, base)
	require.NoError(t, err)

	assert.InDelta(t, 0.3, p.Order, 0)
	assert.InDelta(t, 1.0, p.Interval, 0)
	assert.InDelta(t, 1.0, p.Scale, 0)
	assert.True(t, p.Parallel)
}

func TestLoad_EmptyFile(t *testing.T) {
	p, err := Load(writeConfig(t, ""), Default())
	require.NoError(t, err)
	assert.Equal(t, Default(), p)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), Default())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config")

	_, err = Load(writeConfig(t, "ordr: 2\n"), Default())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")

	_, err = Load(writeConfig(t, "order: [1, 2]\n"), Default())
	require.Error(t, err)
}

func TestParams_SaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	want := Params{Interval: 0.25, Order: 2.5, Scale: 0.75, Parallel: true}
	require.NoError(t, want.Save(path))

	got, err := Load(path, Default())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestParams_Config(t *testing.T) {
	p := Params{Interval: 0.1, Order: 1, Scale: 3, Parallel: true}

	cfg, err := p.Config(1)
	require.NoError(t, err)
	assert.Equal(t, hankel.Config{Interval: 0.1, Order: 1, Axis: 1, Scale: 3, EnableParallel: true}, cfg)

	p.Scale = 0
	_, err = p.Config(1)
	require.ErrorIs(t, err, hankel.ErrInvalidParameter)
}

// runWithFlags executes a root command carrying the shared flags and
// returns the params resolved inside it.
func runWithFlags(t *testing.T, defaults Params, args ...string) (Params, error) {
	t.Helper()

	var resolved Params
	var resolveErr error
	root := &cobra.Command{Use: "test", SilenceUsage: true, SilenceErrors: true}
	flags := Bind(root, defaults)

	sub := &cobra.Command{
		Use: "sub",
		RunE: func(cmd *cobra.Command, _ []string) error {
			resolved, resolveErr = flags.Resolve(cmd)
			return nil
		},
	}
	root.AddCommand(sub)
	root.SetArgs(append([]string{"sub"}, args...))
	require.NoError(t, root.Execute())
	return resolved, resolveErr
}

func TestFlags_Resolve(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		defaults := Default()
		defaults.Parallel = true
		p, err := runWithFlags(t, defaults)
		require.NoError(t, err)
		assert.Equal(t, defaults, p)
	})

	t.Run("flags", func(t *testing.T) {
		p, err := runWithFlags(t, Default(), "--order", "0.5", "--scale", "2", "--parallel")
		require.NoError(t, err)
		assert.Equal(t, Params{Interval: 1, Order: 0.5, Scale: 2, Parallel: true}, p)
	})

	t.Run("flag overrides file", func(t *testing.T) {
		path := writeConfig(t, "order: 3\ninterval: 0.2\n")
		p, err := runWithFlags(t, Default(), "--config", path, "--order", "1")
		require.NoError(t, err)
		assert.InDelta(t, 1.0, p.Order, 0)
		assert.InDelta(t, 0.2, p.Interval, 0)
	})

	t.Run("bad file", func(t *testing.T) {
		_, err := runWithFlags(t, Default(), "--config", writeConfig(t, "bogus: 1\n"))
		require.Error(t, err)
	})
}

func TestNewLogger(t *testing.T) {
	quiet, err := NewLogger(false)
	require.NoError(t, err)
	assert.False(t, quiet.Core().Enabled(zapcore.DebugLevel))
	assert.True(t, quiet.Core().Enabled(zapcore.InfoLevel))

	verbose, err := NewLogger(true)
	require.NoError(t, err)
	assert.True(t, verbose.Core().Enabled(zapcore.DebugLevel))
}
