package fixfft

import (
	"fmt"
	"math"
	"strings"

	"github.com/cwbudde/algo-fixfft/internal/fixed"
)

// Window selects a tapering function applied before the transform.
type Window uint8

// Window kinds. Every window except Rect tapers towards the edges.
const (
	// Rect leaves the signal unchanged.
	Rect Window = iota
	// Bartlett is the triangular window.
	Bartlett
	// Hann is the raised cosine 0.5 - 0.5*cos.
	Hann
	// Hamming is 0.54 - 0.46*cos.
	Hamming
	// Blackman is the three-term Blackman window.
	Blackman
	// Welch is the parabolic window used for power spectral estimation.
	Welch
	// Gauss is a Gaussian of width GaussTheta.
	Gauss
	// Kaiser is the Kaiser-Bessel window with DefaultKaiserAlpha. Use
	// GenKaiser or ApplyKaiser for other alphas.
	Kaiser
)

// GaussTheta is the standard deviation of the Gauss window relative to
// half the window length.
const GaussTheta = 0.5

// DefaultKaiserAlpha is the alpha of the Kaiser window kind.
const DefaultKaiserAlpha = 3.0

var windowNames = [...]string{
	Rect:     "rect",
	Bartlett: "bartlett",
	Hann:     "hann",
	Hamming:  "hamming",
	Blackman: "blackman",
	Welch:    "welch",
	Gauss:    "gauss",
	Kaiser:   "kaiser",
}

func (w Window) String() string {
	if int(w) < len(windowNames) {
		return windowNames[w]
	}

	return fmt.Sprintf("Window(%d)", uint8(w))
}

// Windows lists every window kind.
func Windows() []Window {
	return []Window{Rect, Bartlett, Hann, Hamming, Blackman, Welch, Gauss, Kaiser}
}

// ParseWindow parses a window name. "", "none" and "rectangular" map to Rect.
func ParseWindow(name string) (Window, error) {
	name = strings.ToLower(strings.TrimSpace(name))

	switch name {
	case "", "none", "rectangular":
		return Rect, nil
	case "triangular":
		return Bartlett, nil
	case "hanning":
		return Hann, nil
	}

	for w, n := range windowNames {
		if n == name {
			return Window(w), nil
		}
	}

	return 0, fmt.Errorf("%w %q", ErrInvalidWindow, name)
}

// Coefficient returns the window value at sample i of n, in [0, 1].
func (w Window) Coefficient(i, n int) float64 {
	if n <= 1 {
		return 1
	}

	x := float64(i) / float64(n-1)
	c := 2 * math.Pi * x

	switch w {
	case Bartlett:
		return 1 - math.Abs(2*x-1)
	case Hann:
		return 0.5 - 0.5*math.Cos(c)
	case Hamming:
		return 0.54 - 0.46*math.Cos(c)
	case Blackman:
		return 0.42 - 0.5*math.Cos(c) + 0.08*math.Cos(2*c)
	case Welch:
		d := 2*x - 1
		return 1 - d*d
	case Gauss:
		d := (2*x - 1) / GaussTheta
		return math.Exp(-0.5 * d * d)
	case Kaiser:
		return KaiserCoefficient(i, n, DefaultKaiserAlpha)
	default:
		return 1
	}
}

// GenWindow fills dst with the window coefficients.
func GenWindow(dst []Q31, w Window) error {
	if int(w) >= len(windowNames) {
		return fmt.Errorf("%w: %v", ErrInvalidWindow, w)
	}

	for i := range dst {
		dst[i] = FromFloat(w.Coefficient(i, len(dst)))
	}

	return nil
}

// ApplyWindow stores src multiplied by the window in dst. dst and src may be
// the same slice.
func ApplyWindow(dst, src []Q31, w Window) error {
	if err := checkPair(dst, src); err != nil {
		return err
	}

	if int(w) >= len(windowNames) {
		return fmt.Errorf("%w: %v", ErrInvalidWindow, w)
	}

	if w == Rect {
		copy(dst, src)
		return nil
	}

	n := len(src)
	for i, v := range src {
		dst[i] = fixed.Mul(v, FromFloat(w.Coefficient(i, n)))
	}

	return nil
}

// KaiserCoefficient returns I0(pi*alpha*sqrt(1-d^2)) / I0(pi*alpha) with
// d running from -1 to 1 across the n samples.
func KaiserCoefficient(i, n int, alpha float64) float64 {
	if n <= 1 {
		return 1
	}

	d := 2*float64(i)/float64(n-1) - 1
	arg := 1 - d*d

	if arg < 0 {
		arg = 0
	}

	return besselI0(math.Pi*alpha*math.Sqrt(arg)) / besselI0(math.Pi*alpha)
}

// GenKaiser fills dst with a Kaiser window. alpha must be positive.
func GenKaiser(dst []Q31, alpha float64) error {
	if !(alpha > 0) {
		return fmt.Errorf("%w: kaiser alpha %v", ErrInvalidWindow, alpha)
	}

	for i := range dst {
		dst[i] = FromFloat(KaiserCoefficient(i, len(dst), alpha))
	}

	return nil
}

// ApplyKaiser is ApplyWindow with a Kaiser window of the given alpha.
func ApplyKaiser(dst, src []Q31, alpha float64) error {
	if err := checkPair(dst, src); err != nil {
		return err
	}

	if !(alpha > 0) {
		return fmt.Errorf("%w: kaiser alpha %v", ErrInvalidWindow, alpha)
	}

	n := len(src)
	for i, v := range src {
		dst[i] = fixed.Mul(v, FromFloat(KaiserCoefficient(i, n, alpha)))
	}

	return nil
}

// besselI0 evaluates the modified Bessel function of the first kind, order
// zero, by its power series.
func besselI0(x float64) float64 {
	q := x * x / 4
	term := 1.0
	sum := 1.0

	for k := 1; k < 500; k++ {
		term *= q / float64(k*k)
		sum += term

		if term < sum*1e-17 {
			break
		}
	}

	return sum
}
