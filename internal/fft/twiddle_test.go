package fft

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-fixfft/internal/fftypes"
	"github.com/cwbudde/algo-fixfft/internal/fixed"
	"github.com/cwbudde/algo-fixfft/internal/reference"
)

func exactTwiddle(k, size int) complex128 {
	return cmplx.Rect(1, -2*math.Pi*float64(k)/float64(size))
}

func TestOctantTableFolding(t *testing.T) {
	t.Parallel()

	for _, maxLog := range []int{4, 5, 10} {
		tbl := newOctantTable(maxLog)
		size := 1 << maxLog

		if got, want := tbl.Len(), size/8+1; got != want {
			t.Errorf("log %d: Len() = %d, want %d", maxLog, got, want)
		}

		for k := range 2 * size {
			got := tbl.Twiddle(k).Complex128()
			want := exactTwiddle(k, size)

			if cmplx.Abs(got-want) > 2*reference.LSB {
				t.Fatalf("log %d: W^%d = %v, want %v", maxLog, k, got, want)
			}
		}
	}
}

func TestDenseTableTriples(t *testing.T) {
	t.Parallel()

	tbl := newDenseTable(8)
	size := 1 << 8

	if got, want := tbl.Len(), size/4; got != want {
		t.Fatalf("Len() = %d, want %d", got, want)
	}

	for k := range size / 4 {
		e1, e2, e3 := tbl.Twiddles(k)

		for p, e := range []fixed.Complex{e1, e2, e3} {
			want := exactTwiddle((p+1)*k, size)
			if cmplx.Abs(e.Complex128()-want) > reference.LSB {
				t.Fatalf("W^(%d*%d) = %v, want %v", p+1, k, e.Complex128(), want)
			}
		}
	}

	// Outside the dense range the octant table answers.
	if got, want := tbl.Twiddle(3*size/8).Complex128(), exactTwiddle(3*size/8, size); cmplx.Abs(got-want) > 2*reference.LSB {
		t.Errorf("W^(3M/8) = %v, want %v", got, want)
	}
}

func TestOctantTableFoldedPowers(t *testing.T) {
	t.Parallel()

	for _, maxLog := range []int{4, 10, 20} {
		oct := newOctantTable(maxLog)
		size := 1 << maxLog
		step := max(1, size/4096)

		for k := 0; k < size/4; k += step {
			_, e2, e3 := oct.Twiddles(k)

			if d := cmplx.Abs(e2.Complex128() - exactTwiddle(2*k, size)); d > 2*reference.LSB {
				t.Fatalf("log %d: e^2 at %d off by %v LSB", maxLog, k, d/reference.LSB)
			}

			if d := cmplx.Abs(e3.Complex128() - exactTwiddle(3*k, size)); d > 2*reference.LSB {
				t.Fatalf("log %d: e^3 at %d off by %v LSB", maxLog, k, d/reference.LSB)
			}
		}
	}
}

func TestOctantTableEighthTurn(t *testing.T) {
	t.Parallel()

	// At k = M/8, e^2 = -i and e^3 = (-1-i)/sqrt2. The stored cos(pi/4)
	// rounds up, so a rotated e^2 would overflow past -1.
	for _, maxLog := range []int{4, 10} {
		size := 1 << maxLog
		oct := newOctantTable(maxLog)
		den := newDenseTable(maxLog)

		_, o2, o3 := oct.Twiddles(size / 8)
		_, d2, d3 := den.Twiddles(size / 8)

		if o2.Im >= 0 || d2.Im >= 0 {
			t.Errorf("log %d: e^2 = %v (octant), %v (dense), want negative imaginary", maxLog, o2, d2)
		}

		if o3.Re >= 0 || o3.Im >= 0 {
			t.Errorf("log %d: e^3 = %v, want third quadrant", maxLog, o3)
		}

		for _, pair := range [][2]fixed.Complex{{o2, d2}, {o3, d3}} {
			if d := cmplx.Abs(pair[0].Complex128() - pair[1].Complex128()); d > 2*reference.LSB {
				t.Errorf("log %d: octant %v vs dense %v", maxLog, pair[0], pair[1])
			}
		}
	}
}

func TestNewTableErrors(t *testing.T) {
	t.Parallel()

	if _, err := NewTable(3, fftypes.TwiddleSize); !errors.Is(err, ErrTableLog) {
		t.Errorf("NewTable(3) error = %v, want ErrTableLog", err)
	}

	if _, err := NewTable(MaxTableLog+1, fftypes.TwiddleAccuracy); !errors.Is(err, ErrTableLog) {
		t.Errorf("NewTable(max+1) error = %v, want ErrTableLog", err)
	}

	if _, err := NewTable(8, fftypes.TwiddleStrategy(7)); !errors.Is(err, ErrTableStrategy) {
		t.Errorf("NewTable(bad strategy) error = %v, want ErrTableStrategy", err)
	}
}

func TestTableFromValuesRoundTrip(t *testing.T) {
	t.Parallel()

	for _, strategy := range fftypes.Strategies() {
		t.Run(strategy.String(), func(t *testing.T) {
			t.Parallel()

			orig := mustTable(t, 6, strategy)
			values := orig.Values()

			if len(values) != TableLen(6, strategy) {
				t.Fatalf("len(Values()) = %d, want %d", len(values), TableLen(6, strategy))
			}

			back, err := TableFromValues(6, strategy, values)
			if err != nil {
				t.Fatalf("TableFromValues: %v", err)
			}

			if back.Strategy() != strategy || back.MaxLog() != 6 {
				t.Fatalf("rebuilt table = %v/%d", back.Strategy(), back.MaxLog())
			}

			for k := range 1 << 6 {
				if back.Twiddle(k) != orig.Twiddle(k) {
					t.Fatalf("Twiddle(%d) differs after round trip", k)
				}
			}

			if _, err := TableFromValues(6, strategy, values[1:]); !errors.Is(err, ErrTableValues) {
				t.Errorf("short values error = %v, want ErrTableValues", err)
			}
		})
	}
}

func TestSharedTable(t *testing.T) {
	t.Parallel()

	a, err := SharedTable(7, fftypes.TwiddleSize)
	if err != nil {
		t.Fatal(err)
	}

	b, err := SharedTable(7, fftypes.TwiddleSize)
	if err != nil {
		t.Fatal(err)
	}

	if a != b {
		t.Error("SharedTable built the same table twice")
	}

	c, err := SharedTable(7, fftypes.TwiddleAccuracy)
	if err != nil {
		t.Fatal(err)
	}

	if c.Strategy() != fftypes.TwiddleAccuracy {
		t.Errorf("strategy = %v, want accuracy", c.Strategy())
	}

	if _, err := SharedTable(2, fftypes.TwiddleSize); err == nil {
		t.Error("SharedTable(2) succeeded")
	}
}
