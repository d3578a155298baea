package engine

// Memory and scheduling constants
const (
	// Size of float64 in bytes, for kernel memory estimates.
	bytesPerFloat64 = 8

	// Rows handed to one worker before the parallel path is worth it.
	minRowsPerWorker = 64
)
