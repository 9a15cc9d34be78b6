package fixfft

import (
	"math/cmplx"
	"math/rand/v2"
	"testing"

	"github.com/cwbudde/algo-fixfft/internal/reference"
)

// Shared test helper functions used across multiple test files

func randomSamples(n int, seed uint64, amp float64) []Q31 {
	rng := rand.New(rand.NewPCG(seed, 0xda3e39cb94b95bdb))
	out := make([]Q31, n)

	for i := range out {
		out[i] = FromFloat(amp * (2*rng.Float64() - 1))
	}

	return out
}

func floatsOf(src []Q31) []float64 {
	out := make([]float64, len(src))
	for i, v := range src {
		out[i] = v.Float()
	}

	return out
}

func mustPlan(t *testing.T, nlog int, strategy TwiddleStrategy) *Plan {
	t.Helper()

	plan, err := NewPlan(nlog, strategy)
	if err != nil {
		t.Fatalf("NewPlan(%d, %v): %v", nlog, strategy, err)
	}

	return plan
}

// assertMatchesReference checks a 1/N-scaled spectrum against the float
// reference of src.
func assertMatchesReference(t *testing.T, got []Complex, src []Q31, maxLSB float64) {
	t.Helper()

	want := reference.Scale(reference.RealSpectrum(floatsOf(src)), 1/float64(len(src)))
	gotC := make([]complex128, len(got))

	if err := ToComplex128(gotC, got, false); err != nil {
		t.Fatal(err)
	}

	if r := reference.Compare(gotC, want); r.MaxAbsLSB > maxLSB {
		t.Fatalf("spectrum off by %v", r)
	}
}

func assertApproxComplex128Tolf(t *testing.T, got, want complex128, tol float64, format string, args ...any) {
	t.Helper()

	if cmplx.Abs(got-want) > tol {
		t.Fatalf(format+": got %v want %v (diff=%v)", append(args, got, want, cmplx.Abs(got-want))...)
	}
}
