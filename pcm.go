package fixfft

import (
	"golang.org/x/exp/constraints"

	"github.com/cwbudde/algo-fixfft/internal/fixed"
)

// FromPCM converts signed integer PCM samples of any width to Q31, mapping
// the full range of T onto [-1, 1). It returns the number of samples written.
func FromPCM[T constraints.Signed](dst []Q31, src []T) int {
	return fixed.FromPCM(dst, src)
}

// ToPCM converts Q31 samples to signed integer PCM, truncating the fraction
// bits T cannot hold. It returns the number of samples written.
func ToPCM[T constraints.Signed](dst []T, src []Q31) int {
	return fixed.ToPCM(dst, src)
}

// FromFloats converts float samples in [-1, 1) to Q31 with saturation.
func FromFloats[F constraints.Float](dst []Q31, src []F) int {
	return fixed.FromFloats(dst, src)
}
