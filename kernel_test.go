package hankel

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tphakala/go-hankel/internal/mathutil"
	"github.com/tphakala/go-hankel/internal/testutil"
	"gonum.org/v1/gonum/mat"
)

// TestBuildKernel_Dimensions verifies the kernel is N×N.
func TestBuildKernel_Dimensions(t *testing.T) {
	for _, n := range []int{1, 2, 7, 64} {
		k, err := BuildKernel(n, 0, 1)
		require.NoError(t, err)
		rows, cols := k.Dims()
		assert.Equal(t, n, rows)
		assert.Equal(t, n, cols)
	}
}

// TestBuildKernel_Determinism verifies repeated builds are bit-identical.
func TestBuildKernel_Determinism(t *testing.T) {
	a, err := BuildKernel(33, 1.25, 0.8)
	require.NoError(t, err)
	b, err := BuildKernel(33, 1.25, 0.8)
	require.NoError(t, err)

	assert.True(t, mat.Equal(a, b), "kernels differ between identical builds")
}

// TestBuildKernel_ZeroOrderBoundary verifies K[0,0] = b·J0(0) = b.
func TestBuildKernel_ZeroOrderBoundary(t *testing.T) {
	for _, b := range []float64{0.5, 1, 2, 17.25} {
		k, err := BuildKernel(1, 0, b)
		require.NoError(t, err)
		assert.Equal(t, b, k.At(0, 0), "b=%v", b)
	}
}

// TestBuildKernel_ScaleParameter verifies K[m,n] = b·J_ν(b·m·n/N) elementwise.
func TestBuildKernel_ScaleParameter(t *testing.T) {
	const n = 4

	for _, nu := range []float64{0, 1, 1.5, 0.3} {
		for _, b := range []float64{0.5, 2.5} {
			k, err := BuildKernel(n, nu, b)
			require.NoError(t, err)

			for m := range n {
				for j := range n {
					arg := b * float64(m) * float64(j) / n
					expected := b * mathutil.BesselJ(nu, arg)
					assert.InDelta(t, expected, k.At(m, j), testutil.KernelTolerance,
						"nu=%v b=%v K[%d,%d]", nu, b, m, j)
				}
			}
		}
	}
}

// TestBuildKernel_SpotChecks verifies selected entries against closed forms.
func TestBuildKernel_SpotChecks(t *testing.T) {
	const (
		n = 4
		b = 2.5
	)

	k1, err := BuildKernel(n, 1, b)
	require.NoError(t, err)
	// K[3,2] = b·J1(b·3·2/4) = 2.5·J1(3.75)
	assert.InDelta(t, b*math.J1(3.75), k1.At(3, 2), 1e-15)

	kHalf, err := BuildKernel(n, 0.5, b)
	require.NoError(t, err)
	// J_1/2(x) = √(2/(πx))·sin x at x = 2.5·1·3/4
	x := 1.875
	assert.InDelta(t, b*math.Sqrt(2/(math.Pi*x))*math.Sin(x), kHalf.At(1, 3), testutil.KernelTolerance)
}

// TestBuildKernel_ZeroRowAndColumn verifies the m=0 row and n=0 column
// evaluate J_ν at zero.
func TestBuildKernel_ZeroRowAndColumn(t *testing.T) {
	const n = 5

	k0, err := BuildKernel(n, 0, 3)
	require.NoError(t, err)
	k2, err := BuildKernel(n, 2, 3)
	require.NoError(t, err)

	for i := range n {
		assert.Equal(t, 3.0, k0.At(0, i), "J0 row")
		assert.Equal(t, 3.0, k0.At(i, 0), "J0 column")
		assert.Equal(t, 0.0, k2.At(0, i), "J2 row")
		assert.Equal(t, 0.0, k2.At(i, 0), "J2 column")
	}
}

// TestBuildKernel_InvalidInput verifies fail-fast validation.
func TestBuildKernel_InvalidInput(t *testing.T) {
	tests := []struct {
		name    string
		n       int
		nu, b   float64
		wantErr error
	}{
		{"zero length", 0, 0, 1, ErrInvalidDimension},
		{"negative length", -3, 0, 1, ErrInvalidDimension},
		{"NaN order", 4, math.NaN(), 1, ErrInvalidParameter},
		{"infinite order", 4, math.Inf(-1), 1, ErrInvalidParameter},
		{"NaN scale", 4, 0, math.NaN(), ErrInvalidParameter},
		{"infinite scale", 4, 0, math.Inf(1), ErrInvalidParameter},
		{"zero scale", 4, 0, 0, ErrInvalidParameter},
		{"negative scale", 4, 0, -1, ErrInvalidParameter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k, err := BuildKernel(tt.n, tt.nu, tt.b)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, k)
		})
	}
}

// BenchmarkBuildKernel_256 benchmarks kernel construction for integer order.
func BenchmarkBuildKernel_256(b *testing.B) {
	for b.Loop() {
		_, _ = BuildKernel(256, 0, 1)
	}
}

// BenchmarkBuildKernel_256Fractional benchmarks kernel construction for non-integer order.
func BenchmarkBuildKernel_256Fractional(b *testing.B) {
	for b.Loop() {
		_, _ = BuildKernel(256, 0.5, 1)
	}
}
