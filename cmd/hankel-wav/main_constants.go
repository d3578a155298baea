package main

const (
	// Samples per transform block. The kernel is block² float64 values.
	defaultBlockSize = 1024

	// Largest accepted block (a 16384² kernel is 2 GiB)
	maxBlockSize = 16384

	minRequiredArgs = 2

	// Sample format constants
	bitsPerSample16 = 16
	bitsPerSample24 = 24
	bitsPerSample32 = 32

	// Conversion constants
	maxInt16 = 32767.0
	maxInt24 = 8388607.0
	maxInt32 = 2147483647.0

	// Output level after peak normalization
	targetPeak = 1.0

	wavFormatPCM = 1 // WAVE_FORMAT_PCM
)
