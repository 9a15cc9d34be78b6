package math

import "math"

// TwoPi is 2π with full float64 precision.
const TwoPi = 2.0 * math.Pi
