package reference

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/floats"
)

// LSB is the value of one least significant bit of a Q31 number.
const LSB = 1.0 / (1 << 31)

// Report summarizes the error of a computed spectrum against a reference.
type Report struct {
	N         int
	MaxAbsLSB float64 // largest per-component error, in Q31 LSBs
	RMSLSB    float64 // RMS per-component error, in Q31 LSBs
	SNRdB     float64 // reference energy over error energy
	WorstBin  int
}

// String formats the report on one line.
func (r Report) String() string {
	return fmt.Sprintf("n=%d max=%.2f LSB rms=%.3f LSB snr=%.1f dB worst=%d",
		r.N, r.MaxAbsLSB, r.RMSLSB, r.SNRdB, r.WorstBin)
}

// Compare measures got against want. Both slices must have equal length.
func Compare(got, want []complex128) Report {
	n := min(len(got), len(want))
	if n == 0 {
		return Report{}
	}

	errs := make([]float64, 2*n)
	ref := make([]float64, 2*n)

	for i := range n {
		d := got[i] - want[i]
		errs[2*i] = math.Abs(real(d))
		errs[2*i+1] = math.Abs(imag(d))
		ref[2*i] = real(want[i])
		ref[2*i+1] = imag(want[i])
	}

	worst := floats.MaxIdx(errs)
	errNorm := floats.Norm(errs, 2)
	refNorm := floats.Norm(ref, 2)

	snr := math.Inf(1)
	if errNorm > 0 {
		snr = 20 * math.Log10(refNorm/errNorm)
	}

	return Report{
		N:         n,
		MaxAbsLSB: errs[worst] / LSB,
		RMSLSB:    errNorm / math.Sqrt(float64(len(errs))) / LSB,
		SNRdB:     snr,
		WorstBin:  worst / 2,
	}
}

// Energy returns the sum of squared magnitudes of x.
func Energy(x []complex128) float64 {
	mags := make([]float64, len(x))
	for i, v := range x {
		a := cmplx.Abs(v)
		mags[i] = a * a
	}

	return floats.Sum(mags)
}

// RealEnergy returns the sum of squares of x.
func RealEnergy(x []float64) float64 {
	return floats.Dot(x, x)
}
