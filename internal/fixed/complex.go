package fixed

import "math/bits"

// Complex is a complex number with Q31 real and imaginary parts.
type Complex struct {
	Re Q31
	Im Q31
}

// FromComplex128 converts c to a Q31 complex, saturating each part.
func FromComplex128(c complex128) Complex {
	return Complex{Re: FromFloat(real(c)), Im: FromFloat(imag(c))}
}

// Complex128 returns c as a complex128.
func (c Complex) Complex128() complex128 {
	return complex(c.Re.Float(), c.Im.Float())
}

// Mul returns c*w using four 64-bit products, each part truncated by an
// arithmetic shift of Frac bits. A part may reach magnitude 2 before
// narrowing; it saturates to [MinQ31, MaxQ31] instead of wrapping. The
// 64-bit sum overflows only when every operand part is MinQ31.
func (c Complex) Mul(w Complex) Complex {
	re := (int64(c.Re)*int64(w.Re) - int64(c.Im)*int64(w.Im)) >> Frac
	im := (int64(c.Re)*int64(w.Im) + int64(c.Im)*int64(w.Re)) >> Frac

	return Complex{Re: saturate(re), Im: saturate(im)}
}

// Add returns c+w with wrapping arithmetic.
func (c Complex) Add(w Complex) Complex {
	return Complex{Re: c.Re + w.Re, Im: c.Im + w.Im}
}

// Sub returns c-w with wrapping arithmetic.
func (c Complex) Sub(w Complex) Complex {
	return Complex{Re: c.Re - w.Re, Im: c.Im - w.Im}
}

// Conj returns the complex conjugate of c.
func (c Complex) Conj() Complex {
	return Complex{Re: c.Re, Im: c.Im.Neg()}
}

// Abs returns |c| as a Q31, saturating at MaxQ31.
func (c Complex) Abs() Q31 {
	re := uint64(absInt64(int64(c.Re)))
	im := uint64(absInt64(int64(c.Im)))

	// Both squares are at most 2^62, so the sum fits in 63 bits.
	root := isqrt(re*re + im*im)
	if root > uint64(MaxQ31) {
		return MaxQ31
	}

	return Q31(root)
}

// Power returns re^2 + im^2 as a Q31, saturating at MaxQ31.
func (c Complex) Power() Q31 {
	re := int64(c.Re)
	im := int64(c.Im)

	sum := uint64(re*re) + uint64(im*im)

	return saturate(int64(sum >> Frac))
}

func absInt64(v int64) int64 {
	if v < 0 {
		return -v
	}

	return v
}

// isqrt returns floor(sqrt(x)).
func isqrt(x uint64) uint64 {
	if x == 0 {
		return 0
	}

	// Start above the root and walk down with Newton steps.
	r := uint64(1) << ((bits.Len64(x) + 1) / 2)
	for {
		next := (r + x/r) / 2
		if next >= r {
			return r
		}

		r = next
	}
}
