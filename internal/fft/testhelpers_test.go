package fft

import (
	"math/rand/v2"
	"testing"

	"github.com/cwbudde/algo-fixfft/internal/fftypes"
	"github.com/cwbudde/algo-fixfft/internal/fixed"
	"github.com/cwbudde/algo-fixfft/internal/reference"
)

// randomQ31 returns n samples uniformly distributed in [-amp, amp).
func randomQ31(n int, seed uint64, amp float64) []fixed.Q31 {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	out := make([]fixed.Q31, n)

	for i := range out {
		out[i] = fixed.FromFloat(amp * (2*rng.Float64() - 1))
	}

	return out
}

func randomComplex(n int, seed uint64, amp float64) []fixed.Complex {
	re := randomQ31(n, seed, amp)
	im := randomQ31(n, seed+1, amp)
	out := make([]fixed.Complex, n)

	for i := range out {
		out[i] = fixed.Complex{Re: re[i], Im: im[i]}
	}

	return out
}

func toFloats(src []fixed.Q31) []float64 {
	out := make([]float64, len(src))
	for i, v := range src {
		out[i] = v.Float()
	}

	return out
}

func toComplex128(src []fixed.Complex) []complex128 {
	out := make([]complex128, len(src))
	for i, v := range src {
		out[i] = v.Complex128()
	}

	return out
}

// realReference returns the reference spectrum of src divided by N, the
// scaling the kernels apply.
func realReference(src []fixed.Q31) []complex128 {
	want := reference.RealSpectrum(toFloats(src))
	return reference.Scale(want, 1/float64(len(src)))
}

func mustTable(t *testing.T, maxLog int, strategy fftypes.TwiddleStrategy) Table {
	t.Helper()

	tbl, err := NewTable(maxLog, strategy)
	if err != nil {
		t.Fatalf("NewTable(%d, %v): %v", maxLog, strategy, err)
	}

	return tbl
}

func runReal(t *testing.T, src []fixed.Q31, nlog int, tbl Table) []fixed.Complex {
	t.Helper()

	dst := make([]fixed.Complex, len(src))
	RealComplexFFT(dst, src, nlog, tbl)

	return dst
}
