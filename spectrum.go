package fixfft

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/cwbudde/algo-fixfft/internal/fft"
)

// Peak is one spectrum bin selected by TopBins.
type Peak struct {
	Bin int
	Mag Q31
}

// Magnitudes stores |src[k]| in dst.
func Magnitudes(dst []Q31, src []Complex) error {
	if err := checkPair(dst, src); err != nil {
		return err
	}

	for k, c := range src {
		dst[k] = c.Abs()
	}

	return nil
}

// PowerSpectrum stores |src[k]|^2 in dst.
func PowerSpectrum(dst []Q31, src []Complex) error {
	if err := checkPair(dst, src); err != nil {
		return err
	}

	for k, c := range src {
		dst[k] = c.Power()
	}

	return nil
}

// PeakBin returns the bin in [0, N/2] with the largest magnitude. For real
// input the upper half mirrors the lower half and is not searched.
// It returns -1 for an empty spectrum.
func PeakBin(spectrum []Complex) (int, Q31) {
	best, mag := -1, Q31(-1)

	for k := 0; k <= len(spectrum)/2 && k < len(spectrum); k++ {
		if a := spectrum[k].Abs(); a > mag {
			best, mag = k, a
		}
	}

	if best < 0 {
		return -1, 0
	}

	return best, mag
}

// TopBins returns the count strongest bins in [0, N/2], strongest first.
// Ties keep ascending bin order.
func TopBins(spectrum []Complex, count int) []Peak {
	half := min(len(spectrum)/2+1, len(spectrum))
	peaks := make([]Peak, 0, half)

	for k := range half {
		peaks = append(peaks, Peak{Bin: k, Mag: spectrum[k].Abs()})
	}

	slices.SortStableFunc(peaks, func(a, b Peak) int {
		return cmp.Compare(b.Mag, a.Mag)
	})

	return peaks[:min(max(count, 0), len(peaks))]
}

// ToComplex128 converts src to complex128. With rescale set the values are
// multiplied by len(src), undoing the 1/N scaling of the transform.
func ToComplex128(dst []complex128, src []Complex, rescale bool) error {
	if err := checkPair(dst, src); err != nil {
		return err
	}

	scale := complex(1, 0)
	if rescale {
		scale = complex(float64(len(src)), 0)
	}

	for k, c := range src {
		dst[k] = c.Complex128() * scale
	}

	return nil
}

// BlockExponent returns the number of left shifts every value of src can
// take without overflowing.
func BlockExponent(src []Complex) uint {
	return fft.BlockExponent(src)
}

// ScaleUp shifts every value of dst left by shift bits, saturating.
func ScaleUp(dst []Complex, shift uint) {
	fft.ScaleUp(dst, shift)
}

// BinFrequency returns the centre frequency in Hz of bin k for an N-point
// transform sampled at fs.
func BinFrequency(k, n int, fs float64) float64 {
	return float64(k) * fs / float64(n)
}

func checkPair[D, S any](dst []D, src []S) error {
	if dst == nil || src == nil {
		return ErrNilSlice
	}

	if len(dst) != len(src) {
		return fmt.Errorf("%w: dst %d, src %d", ErrLengthMismatch, len(dst), len(src))
	}

	return nil
}
