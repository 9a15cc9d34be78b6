// Package fft holds the fixed-point transform kernels and twiddle tables.
//
// Kernels perform no validation. Callers guarantee that 4 <= nlog <=
// tbl.MaxLog(), that dst and src hold at least 2^nlog elements and that
// they do not overlap.
package fft

import (
	"github.com/cwbudde/algo-fixfft/internal/fixed"
	m "github.com/cwbudde/algo-fixfft/internal/math"
)

// RealComplexFFT computes the 2^nlog-point DFT of the real sequence src into
// dst. Every bin is divided by N: each radix-4 pass shifts right by 2 and,
// for odd nlog, a final radix-2 pass shifts right by 1.
func RealComplexFFT(dst []fixed.Complex, src []fixed.Q31, nlog int, tbl Table) {
	n := 1 << nlog
	dst = dst[:n]
	src = src[:n]
	quarter := n >> 2

	// Stage 0: bit-reversed reads, 4-point real DFT. The rotations are
	// multiples of 90 degrees so no twiddle is needed.
	for r := 0; r < n; r += 4 {
		b := m.ReverseBits(r, nlog)

		a0 := int64(src[b])
		a1 := int64(src[b+quarter])
		a2 := int64(src[b+2*quarter])
		a3 := int64(src[b+3*quarter])

		s02 := a0 + a2
		s13 := a1 + a3
		d02 := fixed.Q31((a0 - a2) >> 2)

		dst[r] = fixed.Complex{Re: fixed.Q31((s02 + s13) >> 2)}
		dst[r+1] = fixed.Complex{Re: d02, Im: fixed.Q31((a3 - a1) >> 2)}
		dst[r+2] = fixed.Complex{Re: fixed.Q31((s02 - s13) >> 2)}
		dst[r+3] = fixed.Complex{Re: d02, Im: fixed.Q31((a1 - a3) >> 2)}
	}

	combineStages(dst, nlog, tbl)
}

// combineStages runs the radix-4 passes for block sizes 16, 64, ... up to
// 2^nlog and, when nlog is odd, one closing radix-2 pass.
//
// In bit-reversed layout the four children of a block of size mm sit at
// offsets 0, mm/4, mm/2, 3mm/4 and hold the sub-transforms of the
// residues 0, 2, 1, 3; the twiddles are applied accordingly.
func combineStages(dst []fixed.Complex, nlog int, tbl Table) {
	n := 1 << nlog
	maxLog := tbl.MaxLog()

	for stage := 4; stage <= nlog; stage += 2 {
		mm := 1 << stage
		q := mm >> 2
		stride := 1 << (maxLog - stage)

		for r := 0; r < n; r += mm {
			dst[r], dst[r+q], dst[r+2*q], dst[r+3*q] = butterfly4(dst[r], dst[r+2*q], dst[r+q], dst[r+3*q])
		}

		for j := 1; j < q; j++ {
			e1, e2, e3 := tbl.Twiddles(j * stride)

			for i0 := j; i0 < n; i0 += mm {
				i1, i2, i3 := i0+q, i0+2*q, i0+3*q

				b1 := dst[i2].Mul(e1)
				b2 := dst[i1].Mul(e2)
				b3 := dst[i3].Mul(e3)

				dst[i0], dst[i1], dst[i2], dst[i3] = butterfly4(dst[i0], b1, b2, b3)
			}
		}
	}

	if nlog&1 == 1 {
		radix2Stage(dst, nlog, tbl)
	}
}

// radix2Stage merges the even and odd half transforms of an odd-log size.
func radix2Stage(dst []fixed.Complex, nlog int, tbl Table) {
	half := 1 << (nlog - 1)
	stride := 1 << (tbl.MaxLog() - nlog)

	dst[0], dst[half] = butterfly2(dst[0], dst[half])

	for k := 1; k < half; k++ {
		odd := dst[half+k].Mul(tbl.Twiddle(k * stride))
		dst[k], dst[half+k] = butterfly2(dst[k], odd)
	}
}
