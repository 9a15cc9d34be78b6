package fixfft

import (
	"fmt"

	"github.com/cwbudde/algo-fixfft/internal/fft"
	"github.com/cwbudde/algo-fixfft/internal/fftypes"
	"github.com/cwbudde/algo-fixfft/internal/fixed"
)

// Q31 is a Q1.31 fixed-point value in [-1, 1).
// The canonical definition is in internal/fixed.
type Q31 = fixed.Q31

// Complex is a pair of Q31 values.
type Complex = fixed.Complex

// TwiddleStrategy selects how a plan's twiddle factors are produced.
type TwiddleStrategy = fftypes.TwiddleStrategy

// Table supplies twiddle factors to a plan. Tables are read-only and may be
// shared between plans and goroutines.
type Table = fft.Table

const (
	// TwiddleAccuracy looks up W^k, W^2k and W^3k directly from a dense table.
	TwiddleAccuracy = fftypes.TwiddleAccuracy
	// TwiddleSize keeps one octant of W^k and folds every power into it.
	TwiddleSize = fftypes.TwiddleSize
)

const (
	// MaxQ31 is the largest Q31 value, 1 - 2^-31.
	MaxQ31 = fixed.MaxQ31
	// MinQ31 is -1.
	MinQ31 = fixed.MinQ31

	// QBits is the number of fraction bits of Q31.
	QBits = fixed.Frac

	// MinLog is the smallest supported nlog (16 points).
	MinLog = 4

	// MaxLog is the largest supported nlog.
	MaxLog = fft.MaxTableLog

	// DefaultMaxLog is the size of the shared tables (1024 points).
	DefaultMaxLog = 10
)

// FromFloat converts f to Q31, rounding to nearest and saturating.
func FromFloat(f float64) Q31 {
	return fixed.FromFloat(f)
}

// ParseTwiddleStrategy parses "accuracy" or "size".
func ParseTwiddleStrategy(name string) (TwiddleStrategy, error) {
	s, err := fftypes.ParseTwiddleStrategy(name)
	if err != nil {
		return 0, fmt.Errorf("%w %q", ErrInvalidStrategy, name)
	}

	return s, nil
}

// Strategies lists every twiddle strategy.
func Strategies() []TwiddleStrategy {
	return fftypes.Strategies()
}
