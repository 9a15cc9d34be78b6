package fixfft

import (
	"errors"
	"math"
	"testing"
)

func TestParseWindow(t *testing.T) {
	t.Parallel()

	for _, w := range Windows() {
		got, err := ParseWindow(w.String())
		if err != nil || got != w {
			t.Errorf("ParseWindow(%q) = %v, %v", w.String(), got, err)
		}
	}

	aliases := map[string]Window{"": Rect, "none": Rect, "Hanning": Hann, "triangular": Bartlett}
	for name, want := range aliases {
		if got, err := ParseWindow(name); err != nil || got != want {
			t.Errorf("ParseWindow(%q) = %v, %v, want %v", name, got, err, want)
		}
	}

	if _, err := ParseWindow("tukey"); !errors.Is(err, ErrInvalidWindow) {
		t.Errorf("ParseWindow(tukey) error = %v", err)
	}

	if s := Window(42).String(); s != "Window(42)" {
		t.Errorf("String() = %q", s)
	}
}

func TestWindowShapes(t *testing.T) {
	t.Parallel()

	const n = 65

	tests := []struct {
		w           Window
		edge, mid   float64
		symmetrical bool
	}{
		{w: Rect, edge: 1, mid: 1, symmetrical: true},
		{w: Bartlett, edge: 0, mid: 1, symmetrical: true},
		{w: Hann, edge: 0, mid: 1, symmetrical: true},
		{w: Hamming, edge: 0.08, mid: 1, symmetrical: true},
		{w: Blackman, edge: 0, mid: 1, symmetrical: true},
		{w: Welch, edge: 0, mid: 1, symmetrical: true},
		{w: Gauss, edge: math.Exp(-2), mid: 1, symmetrical: true},
		{w: Kaiser, edge: 6.123359277961564e-4, mid: 1, symmetrical: true},
	}

	for _, tt := range tests {
		t.Run(tt.w.String(), func(t *testing.T) {
			t.Parallel()

			coef := make([]Q31, n)
			if err := GenWindow(coef, tt.w); err != nil {
				t.Fatal(err)
			}

			if got := coef[0].Float(); math.Abs(got-tt.edge) > 1e-6 {
				t.Errorf("edge = %v, want %v", got, tt.edge)
			}

			if got := coef[n/2].Float(); math.Abs(got-tt.mid) > 1e-6 {
				t.Errorf("centre = %v, want %v", got, tt.mid)
			}

			for i := range n / 2 {
				if d := coef[i] - coef[n-1-i]; d > 1 || d < -1 {
					t.Fatalf("asymmetric at %d: %v vs %v", i, coef[i], coef[n-1-i])
				}
			}
		})
	}
}

func TestApplyWindow(t *testing.T) {
	t.Parallel()

	src := make([]Q31, 16)
	for i := range src {
		src[i] = FromFloat(0.5)
	}

	dst := make([]Q31, 16)
	if err := ApplyWindow(dst, src, Hann); err != nil {
		t.Fatal(err)
	}

	if dst[0] != 0 {
		t.Errorf("Hann edge = %v, want 0", dst[0])
	}

	for i, v := range dst {
		want := 0.5 * Hann.Coefficient(i, 16)
		if math.Abs(v.Float()-want) > 1e-8 {
			t.Errorf("dst[%d] = %v, want %v", i, v.Float(), want)
		}
	}

	// In place.
	if err := ApplyWindow(src, src, Rect); err != nil || src[3] != FromFloat(0.5) {
		t.Errorf("in-place Rect changed data: %v, %v", src[3], err)
	}

	if err := ApplyWindow(dst, src, Window(99)); !errors.Is(err, ErrInvalidWindow) {
		t.Errorf("bad window error = %v", err)
	}

	if err := ApplyWindow(dst[:3], src, Hann); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("length error = %v", err)
	}
}

func TestBesselI0(t *testing.T) {
	t.Parallel()

	tests := []struct{ x, want float64 }{
		{0, 1},
		{1, 1.2660658777520082},
		{math.Pi, 1 / 0.18255354160658324},
	}

	for _, tt := range tests {
		if got := besselI0(tt.x); math.Abs(got-tt.want) > 1e-12*tt.want {
			t.Errorf("besselI0(%v) = %v, want %v", tt.x, got, tt.want)
		}
	}
}

func TestKaiser(t *testing.T) {
	t.Parallel()

	const n = 33

	// A larger alpha tapers faster.
	narrow := make([]Q31, n)
	wide := make([]Q31, n)

	if err := GenKaiser(narrow, 1); err != nil {
		t.Fatal(err)
	}

	if err := GenKaiser(wide, 6); err != nil {
		t.Fatal(err)
	}

	if got := narrow[0].Float(); math.Abs(got-0.18255354160658324) > 1e-6 {
		t.Errorf("alpha 1 edge = %v", got)
	}

	if wide[4] >= narrow[4] {
		t.Errorf("alpha 6 sample 4 = %v, not below alpha 1 = %v", wide[4], narrow[4])
	}

	if narrow[n/2] != MaxQ31 || wide[n/2] != MaxQ31 {
		t.Errorf("centre = %v, %v, want full scale", narrow[n/2], wide[n/2])
	}

	for _, alpha := range []float64{0, -1, math.NaN()} {
		if err := GenKaiser(narrow, alpha); !errors.Is(err, ErrInvalidWindow) {
			t.Errorf("GenKaiser(alpha=%v) error = %v", alpha, err)
		}

		if err := ApplyKaiser(narrow, wide, alpha); !errors.Is(err, ErrInvalidWindow) {
			t.Errorf("ApplyKaiser(alpha=%v) error = %v", alpha, err)
		}
	}

	src := randomSamples(n, 9, 0.8)
	viaKind := make([]Q31, n)
	viaAlpha := make([]Q31, n)

	if err := ApplyWindow(viaKind, src, Kaiser); err != nil {
		t.Fatal(err)
	}

	if err := ApplyKaiser(viaAlpha, src, DefaultKaiserAlpha); err != nil {
		t.Fatal(err)
	}

	for i := range src {
		if viaKind[i] != viaAlpha[i] {
			t.Fatalf("sample %d: %v vs %v", i, viaKind[i], viaAlpha[i])
		}
	}

	if err := ApplyKaiser(viaAlpha[:4], src, 2); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("short ApplyKaiser error = %v", err)
	}
}
