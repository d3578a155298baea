package hankel

import (
	"errors"
	"fmt"
	"math"
)

// Config holds transform parameters.
//
// The zero value is not usable because Interval and Scale must be positive;
// start from DefaultConfig and override the fields you need.
type Config struct {
	// Interval is the sampling interval d of the input. The output is
	// scaled by d² and the frequency grid is k/(d·N).
	Interval float64

	// Order is the Bessel order ν. Non-integer orders are supported.
	Order float64

	// Axis is the dimension of the input array to transform.
	// Negative values count from the end; LastAxis (-1) is the last dimension.
	Axis int

	// Scale is the kernel scale b in K[m,n] = b·J_ν(b·m·n/N).
	Scale float64

	// EnableParallel splits the contraction across goroutines.
	// Results are identical to sequential processing.
	EnableParallel bool
}

// DefaultConfig returns d = 1, ν = 0, the last axis and b = 1.
func DefaultConfig() Config {
	return Config{
		Interval: defaultInterval,
		Order:    defaultOrder,
		Axis:     LastAxis,
		Scale:    defaultScale,
	}
}

// Common errors returned by the transform.
var (
	// ErrInvalidDimension indicates an empty transform axis, an axis out of
	// range for the array rank, or a malformed array.
	ErrInvalidDimension = errors.New("invalid dimension")

	// ErrInvalidParameter indicates a non-positive or non-finite interval or
	// scale, or a non-finite order.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrShapeMismatch indicates a kernel whose size does not match the
	// transform axis, or a non-square kernel.
	ErrShapeMismatch = errors.New("shape mismatch")
)

// Validate checks the numeric parameters. The axis is checked against the
// array rank when the transform is applied.
func (c *Config) Validate() error {
	if err := validateInterval(c.Interval); err != nil {
		return err
	}
	return validateKernelParams(c.Order, c.Scale)
}

// normalizeAxis resolves a possibly negative axis against rank.
func normalizeAxis(axis, rank int) (int, error) {
	resolved := axis
	if resolved < 0 {
		resolved += rank
	}
	if resolved < 0 || resolved >= rank {
		return 0, fmt.Errorf("%w: axis %d out of range for rank %d", ErrInvalidDimension, axis, rank)
	}
	return resolved, nil
}

func validateInterval(d float64) error {
	if math.IsNaN(d) || math.IsInf(d, 0) || d <= 0 {
		return fmt.Errorf("%w: interval must be positive and finite, got %v", ErrInvalidParameter, d)
	}
	return nil
}

func validateKernelParams(nu, b float64) error {
	if math.IsNaN(nu) || math.IsInf(nu, 0) {
		return fmt.Errorf("%w: order must be finite, got %v", ErrInvalidParameter, nu)
	}
	if math.IsNaN(b) || math.IsInf(b, 0) || b <= 0 {
		return fmt.Errorf("%w: scale must be positive and finite, got %v", ErrInvalidParameter, b)
	}
	return nil
}

func validateSize(n int) error {
	if n < minTransformN {
		return fmt.Errorf("%w: transform length must be positive, got %d", ErrInvalidDimension, n)
	}
	return nil
}

// Info describes a Transformer.
type Info struct {
	// Size is the transform length N.
	Size int

	// Order is the Bessel order ν.
	Order float64

	// Scale is the kernel scale b.
	Scale float64

	// Interval is the sampling interval d.
	Interval float64

	// MemoryUsage is the approximate kernel size in bytes.
	MemoryUsage int64

	// SIMDEnabled indicates if SIMD dot products are active.
	SIMDEnabled bool

	// SIMDType describes the SIMD instruction set in use.
	SIMDType string
}
