package fixfft

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/cwbudde/algo-fixfft/internal/fft"
	m "github.com/cwbudde/algo-fixfft/internal/math"
)

// Plan runs the fixed-point forward transform for one size.
// All validation of the size and table is resolved at creation time.
//
// A Plan holds no per-call state apart from the ForwardFloat scratch
// buffers: Forward, ForwardUnchecked, ForwardComplex and InverseComplex are
// safe for concurrent use on independent buffers.
type Plan struct {
	nlog   int
	n      int
	table  Table
	shared bool

	// Lazily allocated by ForwardFloat.
	floatIn  []Q31
	floatOut []Complex
}

// PlanMeta describes how a Plan was built.
type PlanMeta struct {
	Len      int
	Log2     int
	Strategy TwiddleStrategy
	TableLog int
	// TableValues is the number of Q31 values the table stores.
	TableValues int
	// Shared reports whether the table is the process-wide one.
	Shared bool
	// Radix4Passes counts the twiddled radix-4 passes that follow stage 0.
	Radix4Passes int
	// Radix2Tail reports whether a final radix-2 pass runs (odd nlog).
	Radix2Tail bool
}

// NewPlan creates a plan for N = 2^nlog points using the shared twiddle table
// of the given strategy. The shared table covers max(nlog, DefaultMaxLog).
//
// Example:
//
//	plan, err := fixfft.NewPlan(10, fixfft.TwiddleAccuracy)
//	if err != nil {
//	    return err
//	}
//	err = plan.Forward(spectrum, samples)
func NewPlan(nlog int, strategy TwiddleStrategy) (*Plan, error) {
	if err := checkLog(nlog); err != nil {
		return nil, err
	}

	if !strategy.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidStrategy, strategy)
	}

	tbl, err := fft.SharedTable(max(nlog, DefaultMaxLog), strategy)
	if err != nil {
		return nil, mapTableError(err)
	}

	return &Plan{nlog: nlog, n: 1 << nlog, table: tbl, shared: true}, nil
}

// NewPlanWithTable creates a plan that uses tbl, for example one loaded with
// ImportTable. The table must cover at least 2^nlog points.
func NewPlanWithTable(nlog int, tbl Table) (*Plan, error) {
	if err := checkLog(nlog); err != nil {
		return nil, err
	}

	if tbl == nil {
		return nil, fmt.Errorf("%w: nil table", ErrInvalidTable)
	}

	if tbl.MaxLog() < nlog {
		return nil, fmt.Errorf("%w: table log %d < nlog %d", ErrTableTooSmall, tbl.MaxLog(), nlog)
	}

	return &Plan{nlog: nlog, n: 1 << nlog, table: tbl}, nil
}

// Len returns the FFT size.
func (p *Plan) Len() int {
	return p.n
}

// Log2 returns nlog.
func (p *Plan) Log2() int {
	return p.nlog
}

// Strategy returns the twiddle strategy of the plan's table.
func (p *Plan) Strategy() TwiddleStrategy {
	return p.table.Strategy()
}

// Table returns the twiddle table used by the plan.
func (p *Plan) Table() Table {
	return p.table
}

// Meta returns the plan's construction details.
func (p *Plan) Meta() PlanMeta {
	return PlanMeta{
		Len:         p.n,
		Log2:        p.nlog,
		Strategy:    p.table.Strategy(),
		TableLog:    p.table.MaxLog(),
		TableValues: fft.TableLen(p.table.MaxLog(), p.table.Strategy()),
		Shared:      p.shared,

		Radix4Passes: p.nlog/2 - 1,
		Radix2Tail:   !m.IsPowerOf4(p.n),
	}
}

// Forward computes the spectrum of src divided by N into dst.
// Both slices must have exactly Len() elements and must not overlap.
func (p *Plan) Forward(dst []Complex, src []Q31) error {
	if err := checkBuffers(dst, src, p.n); err != nil {
		return err
	}

	fft.RealComplexFFT(dst, src, p.nlog, p.table)

	return nil
}

// ForwardUnchecked performs the forward transform without validation.
// Caller guarantees: len(dst) == len(src) == Len() and no overlap.
func (p *Plan) ForwardUnchecked(dst []Complex, src []Q31) {
	fft.RealComplexFFT(dst, src, p.nlog, p.table)
}

// ForwardComplex computes the spectrum of a complex input divided by N.
func (p *Plan) ForwardComplex(dst, src []Complex) error {
	if err := checkBuffers(dst, src, p.n); err != nil {
		return err
	}

	fft.ComplexFFT(dst, src, p.nlog, p.table)

	return nil
}

// InverseComplex computes the inverse DFT of src divided by N. Applied to
// the output of ForwardComplex it returns the input divided by N; ScaleUp
// the spectrum first when it has headroom.
func (p *Plan) InverseComplex(dst, src []Complex) error {
	if err := checkBuffers(dst, src, p.n); err != nil {
		return err
	}

	fft.ComplexIFFT(dst, src, p.nlog, p.table)

	return nil
}

// ForwardFloat quantizes src to Q31, transforms it and writes the spectrum
// to dst with the 1/N scaling undone. Samples outside [-1, 1) saturate.
//
// ForwardFloat reuses scratch buffers owned by the plan and must not be
// called concurrently on the same Plan.
func (p *Plan) ForwardFloat(dst []complex128, src []float64) error {
	if err := checkBuffers(dst, src, p.n); err != nil {
		return err
	}

	if p.floatIn == nil {
		p.floatIn = make([]Q31, p.n)
		p.floatOut = make([]Complex, p.n)
	}

	for i, v := range src {
		p.floatIn[i] = FromFloat(v)
	}

	fft.RealComplexFFT(p.floatOut, p.floatIn, p.nlog, p.table)
	ToComplex128(dst, p.floatOut, true)

	return nil
}

func checkLog(nlog int) error {
	if nlog < MinLog || nlog > MaxLog {
		return fmt.Errorf("%w: nlog %d outside [%d, %d]", ErrInvalidLength, nlog, MinLog, MaxLog)
	}

	return nil
}

func checkBuffers[D, S any](dst []D, src []S, n int) error {
	if dst == nil || src == nil {
		return ErrNilSlice
	}

	if len(dst) != n || len(src) != n {
		return fmt.Errorf("%w: dst %d, src %d, want %d", ErrLengthMismatch, len(dst), len(src), n)
	}

	if overlaps(dst, src) {
		return ErrAliasedBuffers
	}

	return nil
}

// overlaps reports whether the backing memory of a and b intersects.
func overlaps[A, B any](a []A, b []B) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}

	var (
		za A
		zb B
	)

	a0 := uintptr(unsafe.Pointer(unsafe.SliceData(a)))
	a1 := a0 + uintptr(len(a))*unsafe.Sizeof(za)
	b0 := uintptr(unsafe.Pointer(unsafe.SliceData(b)))
	b1 := b0 + uintptr(len(b))*unsafe.Sizeof(zb)

	return a0 < b1 && b0 < a1
}

func mapTableError(err error) error {
	switch {
	case errors.Is(err, fft.ErrTableLog):
		return fmt.Errorf("%w: %w", ErrInvalidLength, err)
	case errors.Is(err, fft.ErrTableStrategy):
		return fmt.Errorf("%w: %w", ErrInvalidStrategy, err)
	case errors.Is(err, fft.ErrTableValues):
		return fmt.Errorf("%w: %w", ErrInvalidTable, err)
	default:
		return err
	}
}
