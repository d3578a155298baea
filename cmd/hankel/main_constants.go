package main

// Gaussian demo defaults
const (
	defaultGaussianN     = 1001 // Samples r = 0..1000
	defaultGaussianWidth = 0.01 // a in exp(-(a·r)²/2)
	previewSamples       = 5    // Rows printed without --out
)

// Kernel and info defaults
const (
	defaultKernelN = 8
	defaultInfoN   = 1024
	maxKernelPrint = 64 // Larger kernels need --out
)

// Output formatting
const (
	floatFormat      = 'g'
	floatPrecision   = -1 // Shortest exact representation
	float64Bits      = 64
	bytesPerKilobyte = 1024
)
