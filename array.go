package hankel

import (
	"fmt"
	"slices"
)

// Array is a dense row-major array of float64 values with an arbitrary
// number of dimensions.
type Array struct {
	shape []int
	data  []float64
}

// NewArray wraps data as an array with the given shape. The data slice is
// used directly, not copied. A nil data slice allocates zeros.
func NewArray(shape []int, data []float64) (*Array, error) {
	size, err := shapeSize(shape)
	if err != nil {
		return nil, err
	}
	if data == nil {
		data = make([]float64, size)
	}
	if len(data) != size {
		return nil, fmt.Errorf("%w: shape %v needs %d values, got %d", ErrInvalidDimension, shape, size, len(data))
	}
	return &Array{shape: slices.Clone(shape), data: data}, nil
}

// Zeros returns a zero-filled array. It panics on a malformed shape.
func Zeros(shape ...int) *Array {
	a, err := NewArray(shape, nil)
	if err != nil {
		panic(err)
	}
	return a
}

// Vector wraps samples as a one-dimensional array without copying.
func Vector(samples []float64) *Array {
	return &Array{shape: []int{len(samples)}, data: samples}
}

func shapeSize(shape []int) (int, error) {
	if len(shape) < minRank {
		return 0, fmt.Errorf("%w: array needs at least one dimension", ErrInvalidDimension)
	}
	size := 1
	for i, d := range shape {
		if d < 0 {
			return 0, fmt.Errorf("%w: dimension %d is negative (%d)", ErrInvalidDimension, i, d)
		}
		size *= d
	}
	return size, nil
}

// Shape returns a copy of the dimensions.
func (a *Array) Shape() []int {
	return slices.Clone(a.shape)
}

// Rank returns the number of dimensions.
func (a *Array) Rank() int {
	return len(a.shape)
}

// Dim returns the length of the given axis. Negative axes count from the end.
func (a *Array) Dim(axis int) (int, error) {
	resolved, err := normalizeAxis(axis, len(a.shape))
	if err != nil {
		return 0, err
	}
	return a.shape[resolved], nil
}

// Len returns the total number of elements.
func (a *Array) Len() int {
	return len(a.data)
}

// Data returns the underlying row-major storage.
func (a *Array) Data() []float64 {
	return a.data
}

// At returns the element at the given index.
func (a *Array) At(idx ...int) float64 {
	return a.data[a.offset(idx)]
}

// Set stores v at the given index.
func (a *Array) Set(v float64, idx ...int) {
	a.data[a.offset(idx)] = v
}

// Clone returns a deep copy.
func (a *Array) Clone() *Array {
	return &Array{shape: slices.Clone(a.shape), data: slices.Clone(a.data)}
}

func (a *Array) offset(idx []int) int {
	if len(idx) != len(a.shape) {
		panic(fmt.Sprintf("hankel: index rank %d does not match array rank %d", len(idx), len(a.shape)))
	}
	off := 0
	for i, v := range idx {
		if v < 0 || v >= a.shape[i] {
			panic(fmt.Sprintf("hankel: index %d out of range for axis %d of length %d", v, i, a.shape[i]))
		}
		off = off*a.shape[i] + v
	}
	return off
}

// split returns the outer × n × inner view of the array around axis.
func (a *Array) split(axis int) (outer, n, inner int) {
	outer, inner = 1, 1
	for i, d := range a.shape {
		switch {
		case i < axis:
			outer *= d
		case i > axis:
			inner *= d
		}
	}
	return outer, a.shape[axis], inner
}
