package hankel

import (
	"fmt"
	"sync"

	"github.com/tphakala/go-hankel/internal/engine"
	"gonum.org/v1/gonum/mat"
)

// Transformer applies the Hankel transform for a fixed length N, order ν,
// scale b and interval d. The index-weighted kernel is built once and reused
// across calls, which is the main saving over calling Transform repeatedly.
//
// A Transformer is immutable after construction and safe for concurrent use.
type Transformer struct {
	config Config
	n      int

	// kernel is K[m,n]·n, ready for contraction.
	kernel *mat.Dense
	freq   []float64
}

// NewTransformer builds the kernel for length n with the given config.
// A nil config uses DefaultConfig.
func NewTransformer(n int, config *Config) (*Transformer, error) {
	cfg := DefaultConfig()
	if config != nil {
		cfg = *config
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	k, err := BuildKernel(n, cfg.Order, cfg.Scale)
	if err != nil {
		return nil, fmt.Errorf("failed to build kernel: %w", err)
	}
	return newTransformer(k, &cfg), nil
}

// NewTransformerWithKernel uses a kernel previously returned by BuildKernel.
// The kernel is copied, so the caller may keep using it. config.Order and
// config.Scale are informational here; the kernel is trusted to match them.
func NewTransformerWithKernel(kernel *mat.Dense, config *Config) (*Transformer, error) {
	cfg := DefaultConfig()
	if config != nil {
		cfg = *config
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if kernel == nil || kernel.IsEmpty() {
		return nil, fmt.Errorf("%w: kernel is empty", ErrShapeMismatch)
	}

	rows, cols := kernel.Dims()
	if rows != cols {
		return nil, fmt.Errorf("%w: kernel is %dx%d, must be square", ErrShapeMismatch, rows, cols)
	}
	return newTransformer(mat.DenseCopyOf(kernel), &cfg), nil
}

func newTransformer(k *mat.Dense, cfg *Config) *Transformer {
	n, _ := k.Dims()
	engine.WeightColumns(k)
	return &Transformer{
		config: *cfg,
		n:      n,
		kernel: k,
		freq:   frequencyGrid(n, cfg.Interval),
	}
}

// Apply transforms x along the configured axis. The axis length must equal
// the transformer size.
func (t *Transformer) Apply(x *Array) (*Array, error) {
	if x == nil {
		return nil, fmt.Errorf("%w: array is nil", ErrInvalidDimension)
	}

	axis, err := normalizeAxis(t.config.Axis, x.Rank())
	if err != nil {
		return nil, err
	}

	outer, n, inner := x.split(axis)
	if n != t.n {
		return nil, fmt.Errorf("%w: axis %d has length %d, kernel is %dx%d",
			ErrShapeMismatch, axis, n, t.n, t.n)
	}

	y := &Array{shape: x.Shape(), data: make([]float64, x.Len())}
	t.contract(y.data, x.data, outer, inner)
	return y, nil
}

// ApplyVector transforms a single sample vector of length Size.
// The configured axis is ignored.
func (t *Transformer) ApplyVector(input []float64) ([]float64, error) {
	if len(input) != t.n {
		return nil, fmt.Errorf("%w: vector has length %d, kernel is %dx%d",
			ErrShapeMismatch, len(input), t.n, t.n)
	}
	output := make([]float64, t.n)
	t.contract(output, input, 1, 1)
	return output, nil
}

// ApplyFloat32 transforms float32 samples.
// Internally converts to float64 for processing, then converts back.
func (t *Transformer) ApplyFloat32(input []float32) ([]float32, error) {
	input64 := make([]float64, len(input))
	for i, v := range input {
		input64[i] = float64(v)
	}

	output64, err := t.ApplyVector(input64)
	if err != nil {
		return nil, err
	}

	output32 := make([]float32, len(output64))
	for i, v := range output64 {
		output32[i] = float32(v)
	}
	return output32, nil
}

// ApplyComplex transforms complex samples. The kernel is real, so the real
// and imaginary parts are transformed independently in one batched pass.
func (t *Transformer) ApplyComplex(input []complex128) ([]complex128, error) {
	if len(input) != t.n {
		return nil, fmt.Errorf("%w: vector has length %d, kernel is %dx%d",
			ErrShapeMismatch, len(input), t.n, t.n)
	}

	parts := make([]float64, complexParts*t.n)
	for i, v := range input {
		parts[i] = real(v)
		parts[t.n+i] = imag(v)
	}

	out := make([]float64, len(parts))
	t.contract(out, parts, complexParts, 1)

	output := make([]complex128, t.n)
	for i := range output {
		output[i] = complex(out[i], out[t.n+i])
	}
	return output, nil
}

// ApplyMulti transforms several independent vectors, each of length Size.
// When EnableParallel is set, vectors are processed concurrently.
func (t *Transformer) ApplyMulti(input [][]float64) ([][]float64, error) {
	for ch := range input {
		if len(input[ch]) != t.n {
			return nil, fmt.Errorf("vector %d: %w: length %d, kernel is %dx%d",
				ch, ErrShapeMismatch, len(input[ch]), t.n, t.n)
		}
	}

	output := make([][]float64, len(input))
	transformOne := func(ch int) {
		result := make([]float64, t.n)
		engine.Contract(result, t.kernel, input[ch], 1, 1, false)
		engine.ScaleInPlace(result, t.prefactor())
		output[ch] = result
	}

	// Sequential processing (default or when parallel disabled)
	if !t.config.EnableParallel || len(input) <= 1 {
		for ch := range input {
			transformOne(ch)
		}
		return output, nil
	}

	var wg sync.WaitGroup
	for ch := range input {
		wg.Add(1)
		go func(channel int) {
			defer wg.Done()
			transformOne(channel)
		}(ch)
	}
	wg.Wait()

	return output, nil
}

// contract runs the weighted contraction and applies the d² prefactor.
func (t *Transformer) contract(dst, src []float64, outer, inner int) {
	engine.Contract(dst, t.kernel, src, outer, inner, t.config.EnableParallel)
	engine.ScaleInPlace(dst, t.prefactor())
}

func (t *Transformer) prefactor() float64 {
	return t.config.Interval * t.config.Interval
}

// Size returns the transform length N.
func (t *Transformer) Size() int {
	return t.n
}

// Config returns the transformer configuration.
func (t *Transformer) Config() Config {
	return t.config
}

// Frequencies returns a copy of the output grid k/(d·N).
func (t *Transformer) Frequencies() []float64 {
	return append([]float64(nil), t.freq...)
}

// Kernel returns a copy of the index-weighted kernel K[m,n]·n.
func (t *Transformer) Kernel() *mat.Dense {
	return mat.DenseCopyOf(t.kernel)
}

// GetInfo returns information about the transformer.
func (t *Transformer) GetInfo() Info {
	return Info{
		Size:        t.n,
		Order:       t.config.Order,
		Scale:       t.config.Scale,
		Interval:    t.config.Interval,
		MemoryUsage: engine.KernelMemory(t.n),
		SIMDEnabled: engine.SIMDEnabled(),
		SIMDType:    engine.SIMDInfo(),
	}
}
