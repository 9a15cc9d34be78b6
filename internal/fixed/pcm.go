package fixed

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// FromPCM converts signed integer PCM samples to Q31, mapping the full range
// of T onto [-1, 1). It returns the number of samples written.
func FromPCM[T constraints.Signed](dst []Q31, src []T) int {
	var zero T

	width := uint(unsafe.Sizeof(zero)) * 8
	n := min(len(dst), len(src))

	for i := range n {
		v := int64(src[i])
		if width <= 32 {
			dst[i] = Q31(v << (32 - width))
		} else {
			dst[i] = Q31(v >> (width - 32))
		}
	}

	return n
}

// ToPCM converts Q31 samples to signed integer PCM of width T, truncating
// the extra fraction bits. It returns the number of samples written.
func ToPCM[T constraints.Signed](dst []T, src []Q31) int {
	var zero T

	width := uint(unsafe.Sizeof(zero)) * 8
	n := min(len(dst), len(src))

	for i := range n {
		v := int64(src[i])
		if width <= 32 {
			dst[i] = T(v >> (32 - width))
		} else {
			dst[i] = T(v << (width - 32))
		}
	}

	return n
}

// FromFloats converts float samples in [-1, 1) to Q31 with saturation.
func FromFloats[F constraints.Float](dst []Q31, src []F) int {
	n := min(len(dst), len(src))
	for i := range n {
		dst[i] = FromFloat(float64(src[i]))
	}

	return n
}
