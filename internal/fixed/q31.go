// Package fixed implements Q1.31 fixed-point scalars and complex values.
//
// A Q31 holds a signed fraction in [-1, 1) with Frac fraction bits. Products
// are formed in 64 bits and truncated by an arithmetic shift, which is the
// rounding the transform kernels rely on.
package fixed

import (
	"math"
	"strconv"
)

// Frac is the number of fraction bits of a Q31 value.
const Frac = 31

// Q31 is a signed fixed-point fraction with Frac fraction bits.
type Q31 int32

const (
	// MaxQ31 is the largest representable value, 1 - 2^-31.
	MaxQ31 Q31 = math.MaxInt32
	// MinQ31 is -1.
	MinQ31 Q31 = math.MinInt32
)

// One is the scale factor of the format, 2^Frac.
const One = 1 << Frac

// FromFloat converts f to Q31, rounding to nearest and saturating at the
// range limits. NaN converts to zero.
func FromFloat(f float64) Q31 {
	if math.IsNaN(f) {
		return 0
	}

	v := math.Round(f * One)
	if v >= math.MaxInt32 {
		return MaxQ31
	}

	if v <= math.MinInt32 {
		return MinQ31
	}

	return Q31(v)
}

// Float returns q as a float64.
func (q Q31) Float() float64 {
	return float64(q) / One
}

// String renders q as a decimal fraction.
func (q Q31) String() string {
	return strconv.FormatFloat(q.Float(), 'g', 10, 64)
}

// Mul returns a*b truncated toward negative infinity.
// Mul(MinQ31, MinQ31) wraps to MinQ31.
func Mul(a, b Q31) Q31 {
	return Q31((int64(a) * int64(b)) >> Frac)
}

// MulRound returns a*b rounded to nearest.
func MulRound(a, b Q31) Q31 {
	return Q31((int64(a)*int64(b) + 1<<(Frac-1)) >> Frac)
}

// Div returns num/den saturated to the Q31 range.
// Division by zero saturates toward the sign of num.
func Div(num, den Q31) Q31 {
	if den == 0 {
		if num < 0 {
			return MinQ31
		}

		return MaxQ31
	}

	return saturate((int64(num) << Frac) / int64(den))
}

// SatAdd returns a+b clamped to the Q31 range.
func SatAdd(a, b Q31) Q31 {
	return saturate(int64(a) + int64(b))
}

// SatSub returns a-b clamped to the Q31 range.
func SatSub(a, b Q31) Q31 {
	return saturate(int64(a) - int64(b))
}

// Abs returns |q|. Abs(MinQ31) saturates to MaxQ31.
func (q Q31) Abs() Q31 {
	if q >= 0 {
		return q
	}

	if q == MinQ31 {
		return MaxQ31
	}

	return -q
}

// Neg returns -q. Neg(MinQ31) saturates to MaxQ31.
func (q Q31) Neg() Q31 {
	if q == MinQ31 {
		return MaxQ31
	}

	return -q
}

// Shl returns q << shift clamped to the Q31 range.
func (q Q31) Shl(shift uint) Q31 {
	if shift >= 32 {
		switch {
		case q > 0:
			return MaxQ31
		case q < 0:
			return MinQ31
		default:
			return 0
		}
	}

	return saturate(int64(q) << shift)
}

func saturate(v int64) Q31 {
	if v > math.MaxInt32 {
		return MaxQ31
	}

	if v < math.MinInt32 {
		return MinQ31
	}

	return Q31(v)
}
