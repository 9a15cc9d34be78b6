package fft

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-fixfft/internal/fftypes"
	"github.com/cwbudde/algo-fixfft/internal/fixed"
	m "github.com/cwbudde/algo-fixfft/internal/math"
)

// Table limits. A table of size M = 2^maxLog serves every transform with
// N <= M.
const (
	MinTableLog = 4
	MaxTableLog = 20
)

var (
	// ErrTableLog is returned for a table size outside [MinTableLog, MaxTableLog].
	ErrTableLog = errors.New("fft: table size out of range")
	// ErrTableStrategy is returned for an unknown twiddle strategy.
	ErrTableStrategy = errors.New("fft: unknown twiddle strategy")
	// ErrTableValues is returned when imported values do not fit the table layout.
	ErrTableValues = errors.New("fft: malformed table values")
)

// Table supplies the twiddle factors W^k = exp(-2*pi*i*k/M) of a table of
// size M = 2^MaxLog. Tables are read-only once built and safe for
// concurrent use.
type Table interface {
	// MaxLog returns log2 of the table size M.
	MaxLog() int
	// Strategy reports how the table produces its factors.
	Strategy() fftypes.TwiddleStrategy
	// Twiddle returns W^k for any k >= 0.
	Twiddle(k int) fixed.Complex
	// Twiddles returns W^k, W^2k and W^3k for k in [0, M/4).
	Twiddles(k int) (e1, e2, e3 fixed.Complex)
	// Values returns the stored table as a flat slice of Q31 values.
	Values() []fixed.Q31
}

// NewTable builds a twiddle table of size 2^maxLog for strategy.
func NewTable(maxLog int, strategy fftypes.TwiddleStrategy) (Table, error) {
	if maxLog < MinTableLog || maxLog > MaxTableLog {
		return nil, fmt.Errorf("%w: log %d", ErrTableLog, maxLog)
	}

	switch strategy {
	case fftypes.TwiddleSize:
		return newOctantTable(maxLog), nil
	case fftypes.TwiddleAccuracy:
		return newDenseTable(maxLog), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrTableStrategy, strategy)
	}
}

// TableLen returns the number of Q31 values Values() yields for a table.
func TableLen(maxLog int, strategy fftypes.TwiddleStrategy) int {
	size := 1 << maxLog
	octant := 2 * (size/8 + 1)

	if strategy == fftypes.TwiddleAccuracy {
		return 6*(size/4) + octant
	}

	return octant
}

// TableFromValues rebuilds a table from the flat layout produced by Values.
func TableFromValues(maxLog int, strategy fftypes.TwiddleStrategy, values []fixed.Q31) (Table, error) {
	if maxLog < MinTableLog || maxLog > MaxTableLog {
		return nil, fmt.Errorf("%w: log %d", ErrTableLog, maxLog)
	}

	if !strategy.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrTableStrategy, strategy)
	}

	if want := TableLen(maxLog, strategy); len(values) != want {
		return nil, fmt.Errorf("%w: got %d values, want %d", ErrTableValues, len(values), want)
	}

	size := 1 << maxLog

	if strategy == fftypes.TwiddleSize {
		oct := &OctantTable{log: maxLog, entries: unflatten(values)}
		oct.init()

		return oct, nil
	}

	dense := 6 * (size / 4)
	oct := &OctantTable{log: maxLog, entries: unflatten(values[dense:])}
	oct.init()

	return &DenseTable{octant: oct, triples: unflatten(values[:dense])}, nil
}

// OctantTable stores (cos, sin) of 2*pi*k/M for k = 0..M/8 and folds every
// other angle into that octant. e^2 and e^3 are read at the folded indices
// 2k and 3k, trading branches in the inner loop for a table of N/8+1
// entries.
type OctantTable struct {
	log     int
	quarter int
	eighth  int
	mask    int
	// entries[k] holds cos in Re and sin in Im.
	entries []fixed.Complex
}

func newOctantTable(maxLog int) *OctantTable {
	size := 1 << maxLog
	entries := make([]fixed.Complex, size/8+1)

	for k := range entries {
		angle := m.TwoPi * float64(k) / float64(size)
		entries[k] = fixed.Complex{
			Re: fixed.FromFloat(math.Cos(angle)),
			Im: fixed.FromFloat(math.Sin(angle)),
		}
	}

	t := &OctantTable{log: maxLog, entries: entries}
	t.init()

	return t
}

func (t *OctantTable) init() {
	size := 1 << t.log
	t.quarter = size / 4
	t.eighth = size / 8
	t.mask = size - 1
}

// MaxLog returns log2 of the table size.
func (t *OctantTable) MaxLog() int { return t.log }

// Strategy returns TwiddleSize.
func (t *OctantTable) Strategy() fftypes.TwiddleStrategy { return fftypes.TwiddleSize }

// Len returns the number of stored entries, M/8+1.
func (t *OctantTable) Len() int { return len(t.entries) }

// cosSin returns cos and sin of 2*pi*k/M.
func (t *OctantTable) cosSin(k int) (c, s fixed.Q31) {
	k &= t.mask
	quadrant := k / t.quarter
	r := k % t.quarter

	if r <= t.eighth {
		c, s = t.entries[r].Re, t.entries[r].Im
	} else {
		// sin and cos swap across the octant boundary.
		mirror := t.entries[t.quarter-r]
		c, s = mirror.Im, mirror.Re
	}

	switch quadrant {
	case 1:
		c, s = -s, c
	case 2:
		c, s = -c, -s
	case 3:
		c, s = s, -c
	}

	return c, s
}

// Twiddle returns W^k.
func (t *OctantTable) Twiddle(k int) fixed.Complex {
	c, s := t.cosSin(k)
	return fixed.Complex{Re: c, Im: -s}
}

// Twiddles returns W^k, W^2k and W^3k, each folded into the stored octant.
func (t *OctantTable) Twiddles(k int) (e1, e2, e3 fixed.Complex) {
	return t.Twiddle(k), t.Twiddle(2 * k), t.Twiddle(3 * k)
}

// Values returns cos, sin pairs for k = 0..M/8.
func (t *OctantTable) Values() []fixed.Q31 {
	return flatten(t.entries)
}

// DenseTable stores W^k, W^2k and W^3k contiguously for k in [0, M/4) so
// the radix-4 stages need no runtime derivation. Angles outside the dense
// range fall back to the embedded octant table.
type DenseTable struct {
	octant  *OctantTable
	triples []fixed.Complex
}

func newDenseTable(maxLog int) *DenseTable {
	size := 1 << maxLog
	quarter := size / 4
	triples := make([]fixed.Complex, 3*quarter)

	for k := range quarter {
		for p := 1; p <= 3; p++ {
			angle := -m.TwoPi * float64(p*k) / float64(size)
			triples[3*k+p-1] = fixed.Complex{
				Re: fixed.FromFloat(math.Cos(angle)),
				Im: fixed.FromFloat(math.Sin(angle)),
			}
		}
	}

	return &DenseTable{octant: newOctantTable(maxLog), triples: triples}
}

// MaxLog returns log2 of the table size.
func (t *DenseTable) MaxLog() int { return t.octant.log }

// Strategy returns TwiddleAccuracy.
func (t *DenseTable) Strategy() fftypes.TwiddleStrategy { return fftypes.TwiddleAccuracy }

// Len returns the number of stored triples, M/4.
func (t *DenseTable) Len() int { return len(t.triples) / 3 }

// Twiddle returns W^k.
func (t *DenseTable) Twiddle(k int) fixed.Complex {
	if k >= 0 && k < t.Len() {
		return t.triples[3*k]
	}

	return t.octant.Twiddle(k)
}

// Twiddles returns the stored triple for k.
func (t *DenseTable) Twiddles(k int) (e1, e2, e3 fixed.Complex) {
	if k < 0 || k >= t.Len() {
		return t.octant.Twiddles(k)
	}

	tri := t.triples[3*k : 3*k+3]

	return tri[0], tri[1], tri[2]
}

// Values returns the triples followed by the octant table.
func (t *DenseTable) Values() []fixed.Q31 {
	return append(flatten(t.triples), t.octant.Values()...)
}

func flatten(src []fixed.Complex) []fixed.Q31 {
	out := make([]fixed.Q31, 0, 2*len(src))
	for _, c := range src {
		out = append(out, c.Re, c.Im)
	}

	return out
}

func unflatten(src []fixed.Q31) []fixed.Complex {
	out := make([]fixed.Complex, len(src)/2)
	for i := range out {
		out[i] = fixed.Complex{Re: src[2*i], Im: src[2*i+1]}
	}

	return out
}
