package hankel

import (
	"github.com/tphakala/go-hankel/internal/mathutil"
	"gonum.org/v1/gonum/mat"
)

// BuildKernel returns the n×n quasi-discrete Hankel kernel
//
//	K[m,n] = b · J_ν(b · m · n / N),  m, n = 0..N-1
//
// built as the outer product of b·m and n/N with J_ν applied elementwise.
// The kernel is a pure function of (n, nu, b) and is not symmetric in
// general. It carries no index weighting; Transform and Transformer apply
// that when the kernel is used.
func BuildKernel(n int, nu, b float64) (*mat.Dense, error) {
	if err := validateSize(n); err != nil {
		return nil, err
	}
	if err := validateKernelParams(nu, b); err != nil {
		return nil, err
	}

	rows := make([]float64, n)
	cols := make([]float64, n)
	size := float64(n)
	for i := range n {
		rows[i] = b * float64(i)
		cols[i] = float64(i) / size
	}

	var args mat.Dense
	args.Outer(1, mat.NewVecDense(n, rows), mat.NewVecDense(n, cols))

	var k mat.Dense
	k.Apply(func(_, _ int, v float64) float64 {
		return b * mathutil.BesselJ(nu, v)
	}, &args)

	return &k, nil
}
