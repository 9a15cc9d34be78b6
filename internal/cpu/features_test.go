package cpu

import (
	"runtime"
	"strings"
	"testing"
)

func TestDetectFeatures(t *testing.T) {
	t.Parallel()

	f := DetectFeatures()

	if f.Architecture != runtime.GOARCH {
		t.Errorf("Architecture = %q, want %q", f.Architecture, runtime.GOARCH)
	}

	if runtime.GOARCH == "amd64" && !f.HasSSE2 {
		t.Error("amd64 always has SSE2")
	}

	if f != DetectFeatures() {
		t.Error("DetectFeatures is not stable")
	}
}

func TestFeaturesString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		f    Features
		want string
	}{
		{name: "generic", f: Features{Architecture: "wasm"}, want: "wasm (generic)"},
		{name: "x86", f: Features{Architecture: "amd64", HasSSE2: true, HasAVX2: true}, want: "amd64 (sse2, avx2)"},
		{name: "arm", f: Features{Architecture: "arm64", HasNEON: true}, want: "arm64 (neon)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.f.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}

			if n := len(tt.f.Names()); n != strings.Count(tt.want, ",")+1 && tt.name != "generic" {
				t.Errorf("Names() has %d entries", n)
			}
		})
	}
}
