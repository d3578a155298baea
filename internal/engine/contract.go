// Package engine implements the weighted kernel contraction behind the
// quasi-discrete Hankel transform.
//
// Arrays are handled as flat row-major buffers viewed as outer × n × inner
// blocks, where n is the length of the transform axis. The kernel is an
// n×n gonum matrix.
package engine

import (
	"runtime"
	"sync"

	"github.com/tphakala/simd/cpu"
	"github.com/tphakala/simd/f64"
	"gonum.org/v1/gonum/mat"
)

// WeightColumns multiplies column n of k by n in place. This is the sample
// index weighting that stands in for r·dr in the continuous integral.
func WeightColumns(k *mat.Dense) {
	rows, cols := k.Dims()
	for m := range rows {
		row := k.RawRowView(m)
		for n := range cols {
			row[n] *= float64(n)
		}
	}
}

// Contract computes
//
//	dst[p, m, q] = Σ_n kernel[m, n] · src[p, n, q]
//
// for src viewed as an outer × n × inner row-major block. dst must have the
// same length as src and must not alias it. When parallel is set, the work
// is split across up to GOMAXPROCS goroutines; the result is identical to
// the sequential path.
func Contract(dst []float64, kernel *mat.Dense, src []float64, outer, inner int, parallel bool) {
	if outer == 0 || inner == 0 {
		return
	}

	if inner == 1 {
		contractVectors(dst, kernel, src, outer, parallel)
		return
	}
	contractMatrices(dst, kernel, src, outer, inner, parallel)
}

// contractVectors handles a contraction over the last axis: every output
// sample is one dot product of a kernel row with a contiguous input vector.
func contractVectors(dst []float64, kernel *mat.Dense, src []float64, outer int, parallel bool) {
	n, _ := kernel.Dims()
	total := outer * n

	rowRange := func(start, end int) {
		for i := start; i < end; i++ {
			p, m := i/n, i%n
			dst[i] = f64.DotProductUnsafe(kernel.RawRowView(m), src[p*n:(p+1)*n])
		}
	}

	workers := workerCount(total, parallel)
	if workers == 1 {
		rowRange(0, total)
		return
	}

	chunk := (total + workers - 1) / workers
	var wg sync.WaitGroup
	for start := 0; start < total; start += chunk {
		end := min(start+chunk, total)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			rowRange(s, e)
		}(start, end)
	}
	wg.Wait()
}

// contractMatrices handles an inner axis: each outer slab is an n × inner
// matrix and the slab result is a single BLAS matrix product.
func contractMatrices(dst []float64, kernel *mat.Dense, src []float64, outer, inner int, parallel bool) {
	n, _ := kernel.Dims()
	slab := n * inner

	mulSlab := func(p int) {
		x := mat.NewDense(n, inner, src[p*slab:(p+1)*slab])
		y := mat.NewDense(n, inner, dst[p*slab:(p+1)*slab])
		y.Mul(kernel, x)
	}

	if !parallel || outer == 1 {
		for p := range outer {
			mulSlab(p)
		}
		return
	}

	workers := min(outer, runtime.GOMAXPROCS(0))
	var wg sync.WaitGroup
	for w := range workers {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for p := worker; p < outer; p += workers {
				mulSlab(p)
			}
		}(w)
	}
	wg.Wait()
}

// workerCount returns how many goroutines share rows independent dot products.
func workerCount(rows int, parallel bool) int {
	if !parallel {
		return 1
	}
	workers := min(runtime.GOMAXPROCS(0), rows/minRowsPerWorker)
	return max(workers, 1)
}

// ScaleInPlace multiplies every element of data by s.
func ScaleInPlace(data []float64, s float64) {
	if len(data) == 0 {
		return
	}
	f64.Scale(data, data, s)
}

// KernelMemory returns the approximate size of an n×n kernel in bytes.
func KernelMemory(n int) int64 {
	return int64(n) * int64(n) * bytesPerFloat64
}

// SIMDInfo describes the SIMD instruction set used by the dot products.
func SIMDInfo() string {
	return cpu.Info()
}

// SIMDEnabled reports whether the dot products run on vector instructions
// rather than the scalar fallback.
func SIMDEnabled() bool {
	return cpu.X86.SSE2 || cpu.HasAVX() || cpu.HasNEON()
}
