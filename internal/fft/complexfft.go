package fft

import (
	"github.com/cwbudde/algo-fixfft/internal/fixed"
	m "github.com/cwbudde/algo-fixfft/internal/math"
)

// ComplexFFT computes the 2^nlog-point DFT of the complex sequence src into
// dst with the same stage layout and 1/N scaling as RealComplexFFT.
func ComplexFFT(dst, src []fixed.Complex, nlog int, tbl Table) {
	n := 1 << nlog
	dst = dst[:n]
	src = src[:n]
	quarter := n >> 2

	for r := 0; r < n; r += 4 {
		b := m.ReverseBits(r, nlog)

		dst[r], dst[r+1], dst[r+2], dst[r+3] = butterfly4(
			src[b], src[b+quarter], src[b+2*quarter], src[b+3*quarter],
		)
	}

	combineStages(dst, nlog, tbl)
}

// ComplexIFFT computes the 2^nlog-point inverse DFT of src into dst, divided
// by N like the forward kernels. It runs the forward stages on the conjugated
// input and conjugates the result.
func ComplexIFFT(dst, src []fixed.Complex, nlog int, tbl Table) {
	n := 1 << nlog
	dst = dst[:n]
	src = src[:n]
	quarter := n >> 2

	for r := 0; r < n; r += 4 {
		b := m.ReverseBits(r, nlog)

		dst[r], dst[r+1], dst[r+2], dst[r+3] = butterfly4(
			src[b].Conj(), src[b+quarter].Conj(), src[b+2*quarter].Conj(), src[b+3*quarter].Conj(),
		)
	}

	combineStages(dst, nlog, tbl)

	for i := range dst {
		dst[i] = dst[i].Conj()
	}
}
