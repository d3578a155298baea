package hankel

import "fmt"

// Transform applies the quasi-discrete Hankel transform to x along
// config.Axis and returns a new array of the same shape.
//
// With N the length of the transform axis, the result is
//
//	Y[..., m, ...] = d² · Σ_n K[m,n] · n · X[..., n, ...]
//
// where K = BuildKernel(N, ν, b). The kernel is rebuilt on every call; use
// a Transformer to reuse it. A nil config uses DefaultConfig.
//
// The output axis indexes the frequency samples k/(d·N); see Frequencies
// and TransformWithFrequencies.
func Transform(x *Array, config *Config) (*Array, error) {
	y, _, err := transform(x, config)
	return y, err
}

// TransformWithFrequencies is like Transform but also returns the
// frequency grid of the transformed axis.
func TransformWithFrequencies(x *Array, config *Config) (*Array, []float64, error) {
	y, t, err := transform(x, config)
	if err != nil {
		return nil, nil, err
	}
	return y, t.Frequencies(), nil
}

func transform(x *Array, config *Config) (*Array, *Transformer, error) {
	cfg := DefaultConfig()
	if config != nil {
		cfg = *config
	}
	if x == nil {
		return nil, nil, fmt.Errorf("%w: array is nil", ErrInvalidDimension)
	}

	n, err := x.Dim(cfg.Axis)
	if err != nil {
		return nil, nil, err
	}

	t, err := NewTransformer(n, &cfg)
	if err != nil {
		return nil, nil, err
	}

	y, err := t.Apply(x)
	if err != nil {
		return nil, nil, err
	}
	return y, t, nil
}

// Frequencies returns the output grid freq[k] = k / (d·n) for k = 0..n-1.
func Frequencies(n int, d float64) ([]float64, error) {
	if err := validateSize(n); err != nil {
		return nil, err
	}
	if err := validateInterval(d); err != nil {
		return nil, err
	}
	return frequencyGrid(n, d), nil
}

func frequencyGrid(n int, d float64) []float64 {
	freq := make([]float64, n)
	step := d * float64(n)
	for k := range freq {
		freq[k] = float64(k) / step
	}
	return freq
}
