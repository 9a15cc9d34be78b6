// Package reference computes float64 reference spectra and compares
// fixed-point transform output against them.
package reference

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"
)

// RealSpectrum returns the full n-point DFT of the real sequence x, using
// gonum's real FFT for the half spectrum and conjugate symmetry for the rest.
func RealSpectrum(x []float64) []complex128 {
	n := len(x)
	if n == 0 {
		return nil
	}

	half := fourier.NewFFT(n).Coefficients(nil, x)

	out := make([]complex128, n)
	copy(out, half)

	for k := len(half); k < n; k++ {
		out[k] = cmplx.Conj(half[n-k])
	}

	return out
}

// ComplexSpectrum returns the n-point DFT of the complex sequence x.
func ComplexSpectrum(x []complex128) []complex128 {
	if len(x) == 0 {
		return nil
	}

	return fourier.NewCmplxFFT(len(x)).Coefficients(nil, x)
}

// InverseSpectrum returns the unnormalized n-point inverse DFT of x,
// sum_k x[k]*exp(+2*pi*i*j*k/n).
func InverseSpectrum(x []complex128) []complex128 {
	if len(x) == 0 {
		return nil
	}

	return fourier.NewCmplxFFT(len(x)).Sequence(nil, x)
}

// NaiveDFT evaluates the DFT sum directly. It is O(n^2) and meant for small
// sizes in tests.
func NaiveDFT(x []complex128) []complex128 {
	n := len(x)
	out := make([]complex128, n)

	for k := range n {
		var sum complex128

		for j := range n {
			angle := -2 * math.Pi * float64(j*k%n) / float64(n)
			sum += x[j] * cmplx.Rect(1, angle)
		}

		out[k] = sum
	}

	return out
}

// Scale multiplies every element of x by s in place and returns x.
func Scale(x []complex128, s float64) []complex128 {
	f := complex(s, 0)
	for i := range x {
		x[i] *= f
	}

	return x
}
