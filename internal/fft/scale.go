package fft

import "github.com/cwbudde/algo-fixfft/internal/fixed"

// ScaleUp multiplies each element of dst by 2^shift, saturating each part.
// It undoes part of the 1/N scaling of the kernels when the caller knows
// the spectrum has headroom.
func ScaleUp(dst []fixed.Complex, shift uint) {
	if shift == 0 {
		return
	}

	for i := range dst {
		dst[i] = fixed.Complex{Re: dst[i].Re.Shl(shift), Im: dst[i].Im.Shl(shift)}
	}
}

// BlockExponent returns the largest left shift that can be applied to every
// element of src without saturating.
func BlockExponent(src []fixed.Complex) uint {
	var acc uint32

	for _, c := range src {
		acc |= headroomBits(c.Re) | headroomBits(c.Im)
	}

	shift := uint(0)
	for acc != 0 && acc&(1<<30) == 0 && shift < 31 {
		acc <<= 1
		shift++
	}

	if acc == 0 {
		return 0
	}

	return shift
}

// headroomBits maps v to a non-negative value with the same number of
// redundant sign bits.
func headroomBits(v fixed.Q31) uint32 {
	if v < 0 {
		return uint32(^v)
	}

	return uint32(v)
}
