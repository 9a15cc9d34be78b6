// Package fixfft implements a forward real-to-complex FFT on Q1.31
// fixed-point samples.
//
// The transform is a radix-4 decimation-in-time FFT on bit-reversed input.
// Every butterfly pass scales its outputs so that intermediate values never
// exceed the Q31 range: the result is the spectrum divided by N. Odd nlog
// sizes finish with a radix-2 pass, so any N = 2^nlog with nlog >= 4 is
// supported.
//
// Two twiddle strategies trade table memory for accuracy:
//
//   - TwiddleAccuracy stores W^k, W^2k and W^3k for every k in [0, N/4).
//   - TwiddleSize stores one octant of W^k and folds the indices k, 2k
//     and 3k into it with quarter-wave symmetry.
//
// Basic usage:
//
//	plan, err := fixfft.NewPlan(10, fixfft.TwiddleAccuracy)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	spectrum := make([]fixfft.Complex, plan.Len())
//	if err := plan.Forward(spectrum, samples); err != nil {
//	    log.Fatal(err)
//	}
package fixfft

import "github.com/cwbudde/algo-fixfft/internal/fft"

// RealComplexFFT computes the spectrum of the N = 2^nlog real samples in src
// divided by N and stores all N bins in dst. It uses the shared
// accuracy-optimized table.
func RealComplexFFT(dst []Complex, src []Q31, nlog int) error {
	if err := checkLog(nlog); err != nil {
		return err
	}

	if err := checkBuffers(dst, src, 1<<nlog); err != nil {
		return err
	}

	tbl, err := fft.SharedTable(max(nlog, DefaultMaxLog), TwiddleAccuracy)
	if err != nil {
		return mapTableError(err)
	}

	fft.RealComplexFFT(dst, src, nlog, tbl)

	return nil
}

// NewTable builds a private twiddle table of size 2^maxLog.
func NewTable(maxLog int, strategy TwiddleStrategy) (Table, error) {
	tbl, err := fft.NewTable(maxLog, strategy)
	if err != nil {
		return nil, mapTableError(err)
	}

	return tbl, nil
}

// LoadTable rebuilds a table from the values produced by Table.Values, as
// stored by WriteTableGo.
func LoadTable(maxLog int, strategy TwiddleStrategy, values []int32) (Table, error) {
	q := make([]Q31, len(values))
	for i, v := range values {
		q[i] = Q31(v)
	}

	tbl, err := fft.TableFromValues(maxLog, strategy, q)
	if err != nil {
		return nil, mapTableError(err)
	}

	return tbl, nil
}
