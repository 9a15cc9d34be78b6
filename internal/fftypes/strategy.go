package fftypes

import (
	"fmt"
	"strings"
)

// TwiddleStrategy selects how a plan obtains its twiddle factors.
// It is fixed when the plan is built and never changes per call.
type TwiddleStrategy uint8

const (
	// TwiddleAccuracy looks up e, e^2 and e^3 from a dense table of
	// N/4 precomputed triples.
	TwiddleAccuracy TwiddleStrategy = iota
	// TwiddleSize keeps an octant table of N/8+1 entries, folds the index
	// into it for e, e^2 and e^3 alike.
	TwiddleSize
)

// String returns the name used by the CLI and configuration files.
func (s TwiddleStrategy) String() string {
	switch s {
	case TwiddleAccuracy:
		return "accuracy"
	case TwiddleSize:
		return "size"
	default:
		return "unknown"
	}
}

// Valid reports whether s names a known strategy.
func (s TwiddleStrategy) Valid() bool {
	return s == TwiddleAccuracy || s == TwiddleSize
}

// ParseTwiddleStrategy parses a strategy name. Matching is case-insensitive.
func ParseTwiddleStrategy(name string) (TwiddleStrategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "accuracy", "accurate", "":
		return TwiddleAccuracy, nil
	case "size", "small":
		return TwiddleSize, nil
	default:
		return 0, fmt.Errorf("unknown twiddle strategy %q", name)
	}
}

// Strategies lists every strategy in declaration order.
func Strategies() []TwiddleStrategy {
	return []TwiddleStrategy{TwiddleAccuracy, TwiddleSize}
}
