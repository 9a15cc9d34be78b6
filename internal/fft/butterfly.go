package fft

import "github.com/cwbudde/algo-fixfft/internal/fixed"

// butterfly4 combines four already-twiddled sub-transform values into the
// four outputs of a radix-4 decimation-in-time step, scaled by 1/4:
//
//	y0 = a0 + b1 + b2 + b3
//	y1 = a0 - i*b1 - b2 + i*b3
//	y2 = a0 - b1 + b2 - b3
//	y3 = a0 + i*b1 - b2 - i*b3
//
// Sums are formed in 64 bits, then shifted; the narrowing wraps.
func butterfly4(a0, b1, b2, b3 fixed.Complex) (y0, y1, y2, y3 fixed.Complex) {
	s02r := int64(a0.Re) + int64(b2.Re)
	s02i := int64(a0.Im) + int64(b2.Im)
	d02r := int64(a0.Re) - int64(b2.Re)
	d02i := int64(a0.Im) - int64(b2.Im)
	s13r := int64(b1.Re) + int64(b3.Re)
	s13i := int64(b1.Im) + int64(b3.Im)
	d13r := int64(b1.Re) - int64(b3.Re)
	d13i := int64(b1.Im) - int64(b3.Im)

	y0 = fixed.Complex{Re: fixed.Q31((s02r + s13r) >> 2), Im: fixed.Q31((s02i + s13i) >> 2)}
	y1 = fixed.Complex{Re: fixed.Q31((d02r + d13i) >> 2), Im: fixed.Q31((d02i - d13r) >> 2)}
	y2 = fixed.Complex{Re: fixed.Q31((s02r - s13r) >> 2), Im: fixed.Q31((s02i - s13i) >> 2)}
	y3 = fixed.Complex{Re: fixed.Q31((d02r - d13i) >> 2), Im: fixed.Q31((d02i + d13r) >> 2)}

	return y0, y1, y2, y3
}

// butterfly2 returns (a+b)/2 and (a-b)/2.
func butterfly2(a, b fixed.Complex) (y0, y1 fixed.Complex) {
	y0 = fixed.Complex{
		Re: fixed.Q31((int64(a.Re) + int64(b.Re)) >> 1),
		Im: fixed.Q31((int64(a.Im) + int64(b.Im)) >> 1),
	}
	y1 = fixed.Complex{
		Re: fixed.Q31((int64(a.Re) - int64(b.Re)) >> 1),
		Im: fixed.Q31((int64(a.Im) - int64(b.Im)) >> 1),
	}

	return y0, y1
}
