package fixfft

import (
	"math"
	"math/rand/v2"

	"github.com/cwbudde/algo-fixfft/internal/fixed"
)

// Generators fill dst with test signals at full Q31 scale. Phases are given
// in [-1, 1), where 1 stands for pi.

// GenSin fills dst with sin(2*pi*f/fs*i + phase*pi) and returns the phase of
// the sample that would follow, so consecutive buffers join seamlessly.
func GenSin(dst []Q31, f, fs float64, phase Q31) Q31 {
	return genTone(dst, f, fs, phase, math.Sin)
}

// GenCos is GenSin with a cosine.
func GenCos(dst []Q31, f, fs float64, phase Q31) Q31 {
	return genTone(dst, f, fs, phase, math.Cos)
}

func genTone(dst []Q31, f, fs float64, phase Q31, fn func(float64) float64) Q31 {
	step := 2 * f / fs
	p := phase.Float()

	for i := range dst {
		dst[i] = FromFloat(fn(math.Pi * (p + step*float64(i))))
	}

	return FromFloat(wrapPhase(p + step*float64(len(dst))))
}

// wrapPhase folds p into [-1, 1).
func wrapPhase(p float64) float64 {
	p = math.Mod(p+1, 2)
	if p < 0 {
		p += 2
	}

	return p - 1
}

// GenDirac sets dst[index] to full scale and every other sample to zero.
func GenDirac(dst []Q31, index int) {
	clear(dst)

	if index >= 0 && index < len(dst) {
		dst[index] = fixed.MaxQ31
	}
}

// GenStep fills dst with initial before index and final from index on.
func GenStep(dst []Q31, initial, final Q31, index int) {
	for i := range dst {
		if i < index {
			dst[i] = initial
		} else {
			dst[i] = final
		}
	}
}

// GenRamp fills dst with i*increment, saturating at full scale.
func GenRamp(dst []Q31, increment Q31) {
	var acc Q31

	for i := range dst {
		dst[i] = acc
		acc = fixed.SatAdd(acc, increment)
	}
}

// GenRect fills dst with a rectangular wave of frequency f. duty is the high
// fraction of each period in (0, 1] and delay shifts the wave by a fraction
// of a period.
func GenRect(dst []Q31, f, fs, duty, delay float64) {
	period := fs / f

	for i := range dst {
		if periodPos(i, period, delay) < duty {
			dst[i] = fixed.MaxQ31
		} else {
			dst[i] = fixed.MinQ31
		}
	}
}

// GenSquare is GenRect with a duty cycle of one half.
func GenSquare(dst []Q31, f, fs, delay float64) {
	GenRect(dst, f, fs, 0.5, delay)
}

// GenSaw fills dst with a saw tooth of frequency f. Within each period the
// signal rises from -1 to 1 over the first duty fraction and falls back to
// -1 over the rest; duty is in (0, 1] and 1 gives a pure ramp. delay shifts
// the wave by a fraction of a period.
func GenSaw(dst []Q31, f, fs, duty, delay float64) {
	period := fs / f

	for i := range dst {
		pos := periodPos(i, period, delay)

		var v float64
		if pos < duty {
			v = -1 + 2*pos/duty
		} else {
			v = 1 - 2*(pos-duty)/(1-duty)
		}

		dst[i] = FromFloat(v)
	}
}

// GenDcomb fills dst with a Dirac comb of frequency f: full scale on the
// first sample of every period, zero elsewhere. delay shifts the comb by a
// fraction of a period.
func GenDcomb(dst []Q31, f, fs, delay float64) {
	period := fs / f

	for i := range dst {
		if periodPos(i, period, delay)*period < 1 {
			dst[i] = fixed.MaxQ31
		} else {
			dst[i] = 0
		}
	}
}

// periodPos returns the position of sample i within its period, in [0, 1).
func periodPos(i int, period, delay float64) float64 {
	pos := math.Mod(float64(i)/period-delay, 1)
	if pos < 0 {
		pos++
	}

	return pos
}

// GenNoise fills dst with uniform noise in [-amp, amp). The same seed always
// yields the same samples.
func GenNoise(dst []Q31, amp Q31, seed uint64) {
	rng := rand.New(rand.NewPCG(seed, seed^0x2545f4914f6cdd1d))

	for i := range dst {
		dst[i] = fixed.Mul(Q31(rng.Uint32()), amp)
	}
}
