package main

import (
	"fmt"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/tphakala/go-hankel"
	"github.com/tphakala/go-hankel/internal/cliconfig"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"
)

// wavInput holds a fully decoded PCM file.
type wavInput struct {
	rate     int
	channels int
	bitDepth int
	data     []int // interleaved samples
}

type wavStats struct {
	rate     int
	channels int
	bitDepth int
	samples  int
	blocks   int
	peak     float64
}

// transformWAV reads inputPath, transforms every channel block by block and
// writes the peak-normalized result to outputPath.
func transformWAV(inputPath, outputPath string, block int, params cliconfig.Params, logger *zap.Logger) (*wavStats, error) {
	if block < 1 || block > maxBlockSize {
		return nil, fmt.Errorf("%w: block must be in [1, %d], got %d", hankel.ErrInvalidDimension, maxBlockSize, block)
	}

	input, err := readWAV(inputPath)
	if err != nil {
		return nil, err
	}
	logger.Debug("Input format",
		zap.Int("rate", input.rate),
		zap.Int("channels", input.channels),
		zap.Int("bitDepth", input.bitDepth),
		zap.Int("samples", len(input.data)/input.channels))

	maxVal, err := getMaxValue(input.bitDepth)
	if err != nil {
		return nil, err
	}

	transformed, blocks, err := transformBlocks(toFloat(input.data, maxVal), input.channels, block, params)
	if err != nil {
		return nil, err
	}
	peak := normalizePeak(transformed)
	logger.Debug("Transformed", zap.Int("blocks", blocks), zap.Float64("peak", peak))

	if err := writeWAV(outputPath, input.rate, input.bitDepth, input.channels, toInt(transformed, maxVal)); err != nil {
		return nil, err
	}

	return &wavStats{
		rate:     input.rate,
		channels: input.channels,
		bitDepth: input.bitDepth,
		samples:  len(input.data) / input.channels,
		blocks:   blocks,
		peak:     peak,
	}, nil
}

// readWAV opens, validates and fully decodes a PCM WAV file.
func readWAV(path string) (*wavInput, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer func() { _ = f.Close() }()

	decoder := wav.NewDecoder(f)
	if !decoder.IsValidFile() {
		return nil, fmt.Errorf("invalid WAV file: %s", path)
	}

	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to read audio data: %w", err)
	}

	channels := buf.Format.NumChannels
	if channels < 1 {
		return nil, fmt.Errorf("invalid WAV file: %s has no channels", path)
	}
	if len(buf.Data) == 0 {
		return nil, fmt.Errorf("no audio data in %s", path)
	}

	return &wavInput{
		rate:     buf.Format.SampleRate,
		channels: channels,
		bitDepth: int(decoder.BitDepth),
		data:     buf.Data,
	}, nil
}

// writeWAV encodes interleaved samples as a PCM WAV file.
func writeWAV(path string, rate, bitDepth, channels int, data []int) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
	}()

	encoder := wav.NewEncoder(f, rate, bitDepth, channels, wavFormatPCM)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: channels, SampleRate: rate},
		Data:           data,
		SourceBitDepth: bitDepth,
	}
	if err := encoder.Write(buf); err != nil {
		return fmt.Errorf("failed to write audio data: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("failed to finalize WAV file: %w", err)
	}
	return nil
}

// transformBlocks splits each channel of the interleaved samples into
// zero-padded blocks, transforms all blocks with one shared kernel and
// returns the interleaved result with the padding removed.
func transformBlocks(samples []float64, channels, block int, params cliconfig.Params) ([]float64, int, error) {
	planar, err := hankel.Deinterleave(samples, channels)
	if err != nil {
		return nil, 0, err
	}

	frames := len(samples) / channels
	blocks := (frames + block - 1) / block
	stride := blocks * block

	// channels × blocks × block, transformed along the last axis.
	padded := hankel.Zeros(channels, blocks, block)
	for ch := range channels {
		copy(padded.Data()[ch*stride:], planar.Data()[ch*frames:(ch+1)*frames])
	}

	cfg, err := params.Config(hankel.LastAxis)
	if err != nil {
		return nil, 0, err
	}
	t, err := hankel.NewTransformer(block, &cfg)
	if err != nil {
		return nil, 0, err
	}
	y, err := t.Apply(padded)
	if err != nil {
		return nil, 0, err
	}

	trimmed := hankel.Zeros(channels, frames)
	for ch := range channels {
		copy(trimmed.Data()[ch*frames:(ch+1)*frames], y.Data()[ch*stride:])
	}

	out, err := hankel.Interleave(trimmed)
	if err != nil {
		return nil, 0, err
	}
	return out, blocks, nil
}

// normalizePeak scales data so its largest magnitude is targetPeak and
// returns the peak before scaling. Silent input is left unchanged.
func normalizePeak(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	peak := floats.Norm(data, math.Inf(1))
	if peak > 0 {
		floats.Scale(targetPeak/peak, data)
	}
	return peak
}

// getMaxValue returns the maximum sample value for the given bit depth.
func getMaxValue(bitDepth int) (float64, error) {
	switch bitDepth {
	case bitsPerSample16:
		return maxInt16, nil
	case bitsPerSample24:
		return maxInt24, nil
	case bitsPerSample32:
		return maxInt32, nil
	default:
		return 0, fmt.Errorf("unsupported bit depth: %d", bitDepth)
	}
}

// toFloat converts PCM samples to [-1.0, 1.0].
func toFloat(data []int, maxVal float64) []float64 {
	invMaxVal := 1.0 / maxVal
	out := make([]float64, len(data))
	for i, v := range data {
		out[i] = float64(v) * invMaxVal
	}
	return out
}

// toInt converts samples in [-1.0, 1.0] to PCM, clamping out-of-range values.
func toInt(data []float64, maxVal float64) []int {
	out := make([]int, len(data))
	for i, v := range data {
		out[i] = int(math.Round(max(-1.0, min(1.0, v)) * maxVal))
	}
	return out
}
