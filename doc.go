// Package hankel provides a direct quasi-discrete Hankel transform in pure Go.
//
// The transform maps samples f(r) of a radially symmetric function onto
// samples of its Hankel transform F(k) by contracting them with a matrix of
// Bessel functions of the first kind:
//
//	K[m,n] = b · J_ν(b · m · n / N)
//	Y[m]   = d² · Σ_n K[m,n] · n · X[n]
//
// where N is the number of samples, d the sampling interval, ν the Bessel
// order and b the kernel scale. The output index m corresponds to the
// frequency k/(d·N).
//
// # Features
//
//   - Integer and non-integer Bessel orders
//   - Transform along any axis of an N-dimensional array
//   - Reusable [Transformer] that builds the kernel once
//   - Optional SIMD dot products via github.com/tphakala/simd
//   - Matrix products via gonum
//   - float32, complex and multi-vector helpers
//   - Pure Go implementation with no CGO dependencies
//
// # Quick Start
//
// For one-shot transformation of a sample vector:
//
//	y, err := hankel.Transform1D(samples, 1.0, 0, 1.0)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// For arrays, choose the axis in the config:
//
//	cfg := hankel.DefaultConfig()
//	cfg.Axis = 0
//	y, err := hankel.Transform(x, &cfg)
//
// For repeated transforms of the same length, build a [Transformer]:
//
//	t, err := hankel.NewTransformer(1024, &cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for block := range blocks {
//	    out, err := t.Apply(block)
//	    ...
//	}
//
// # Conventions
//
// The kernel returned by [BuildKernel] is not index-weighted; the weighting
// by n is applied when the kernel is used. Because of it, X[0] never
// contributes to the output.
//
// No normalization is applied beyond d². For the Gaussian self-transform
// exp(-(a·r)²/2), multiplying the output by [GaussianSelfTransformScale]
// recovers a unit-height Gaussian.
//
// # Thread Safety
//
// [Transformer] instances are immutable after construction and safe for
// concurrent use by multiple goroutines.
package hankel
