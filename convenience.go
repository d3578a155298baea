package hankel

import (
	"fmt"
	"math"
)

// Transform1D is a convenience function for one-shot transformation of a
// single sample vector with interval d, order nu and scale b.
func Transform1D(x []float64, d, nu, b float64) ([]float64, error) {
	t, err := NewTransformer(len(x), vectorConfig(d, nu, b))
	if err != nil {
		return nil, err
	}
	return t.ApplyVector(x)
}

// TransformFloat32 is the float32 equivalent of Transform1D.
// Processing is done in float64.
func TransformFloat32(x []float32, d, nu, b float64) ([]float32, error) {
	t, err := NewTransformer(len(x), vectorConfig(d, nu, b))
	if err != nil {
		return nil, err
	}
	return t.ApplyFloat32(x)
}

// TransformComplex is the complex equivalent of Transform1D.
func TransformComplex(x []complex128, d, nu, b float64) ([]complex128, error) {
	t, err := NewTransformer(len(x), vectorConfig(d, nu, b))
	if err != nil {
		return nil, err
	}
	return t.ApplyComplex(x)
}

func vectorConfig(d, nu, b float64) *Config {
	return &Config{
		Interval: d,
		Order:    nu,
		Axis:     LastAxis,
		Scale:    b,
	}
}

// GaussianSelfTransformScale returns √a/N, the normalization that maps the
// transform of exp(-(a·r)²/2) sampled at r = 0..N-1 onto the unit-height
// Gaussian shape. This is a caller-side convention for the Gaussian
// self-transform identity, not part of the transform itself.
func GaussianSelfTransformScale(a float64, n int) float64 {
	return math.Sqrt(a) / float64(n)
}

// Deinterleave converts interleaved samples [c0s0, c1s0, ..., c0s1, ...]
// into a channels × samples array, ready to transform along LastAxis.
func Deinterleave(interleaved []float64, channels int) (*Array, error) {
	if channels < 1 {
		return nil, fmt.Errorf("%w: channels must be at least 1, got %d", ErrInvalidDimension, channels)
	}
	if len(interleaved)%channels != 0 {
		return nil, fmt.Errorf("%w: %d samples do not divide into %d channels",
			ErrInvalidDimension, len(interleaved), channels)
	}

	numSamples := len(interleaved) / channels
	out := Zeros(channels, numSamples)
	for i := range numSamples {
		for ch := range channels {
			out.data[ch*numSamples+i] = interleaved[i*channels+ch]
		}
	}
	return out, nil
}

// Interleave is the inverse of Deinterleave for a channels × samples array.
func Interleave(a *Array) ([]float64, error) {
	if a == nil || a.Rank() != channelsRank {
		return nil, fmt.Errorf("%w: interleave needs a channels × samples array", ErrInvalidDimension)
	}

	channels, numSamples := a.shape[0], a.shape[channelsAxis]
	result := make([]float64, len(a.data))
	for i := range numSamples {
		for ch := range channels {
			result[i*channels+ch] = a.data[ch*numSamples+i]
		}
	}
	return result, nil
}
