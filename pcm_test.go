package fixfft

import "testing"

func TestPCMRoundTrip(t *testing.T) {
	t.Parallel()

	pcm := []int16{0, 1, -1, 16384, -32768, 32767}
	q := make([]Q31, len(pcm))

	if n := FromPCM(q, pcm); n != len(pcm) {
		t.Fatalf("FromPCM wrote %d samples", n)
	}

	if q[3] != FromFloat(0.5) || q[4] != MinQ31 {
		t.Errorf("FromPCM = %v", q)
	}

	back := make([]int16, len(q))
	ToPCM(back, q)

	for i := range pcm {
		if back[i] != pcm[i] {
			t.Errorf("sample %d: %d -> %d", i, pcm[i], back[i])
		}
	}

	// A spectrum of 16-bit PCM matches the one of the equivalent floats.
	src16 := make([]int16, 64)
	for i := range src16 {
		src16[i] = int16((i*7919)%2001 - 1000)
	}

	fromPCM := make([]Q31, 64)
	FromPCM(fromPCM, src16)

	floats := make([]float32, 64)
	for i, v := range src16 {
		floats[i] = float32(v) / 32768
	}

	fromFloats := make([]Q31, 64)
	FromFloats(fromFloats, floats)

	for i := range fromPCM {
		if fromPCM[i] != fromFloats[i] {
			t.Fatalf("sample %d: PCM %v, float %v", i, fromPCM[i], fromFloats[i])
		}
	}
}
