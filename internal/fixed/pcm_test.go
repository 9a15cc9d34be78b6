package fixed

import "testing"

func TestFromPCM(t *testing.T) {
	t.Parallel()

	t.Run("int16", func(t *testing.T) {
		t.Parallel()

		src := []int16{0, 16384, -32768, 32767}
		dst := make([]Q31, len(src))

		if n := FromPCM(dst, src); n != len(src) {
			t.Fatalf("FromPCM wrote %d samples, want %d", n, len(src))
		}

		want := []Q31{0, 1 << 30, MinQ31, 32767 << 16}
		for i := range want {
			if dst[i] != want[i] {
				t.Errorf("dst[%d] = %d, want %d", i, dst[i], want[i])
			}
		}
	})

	t.Run("int8 short dst", func(t *testing.T) {
		t.Parallel()

		src := []int8{-128, 64, 1}
		dst := make([]Q31, 2)

		if n := FromPCM(dst, src); n != 2 {
			t.Fatalf("FromPCM wrote %d samples, want 2", n)
		}

		if dst[0] != MinQ31 || dst[1] != 1<<30 {
			t.Errorf("dst = %v", dst)
		}
	})

	t.Run("int64", func(t *testing.T) {
		t.Parallel()

		src := []int64{1 << 62}
		dst := make([]Q31, 1)
		FromPCM(dst, src)

		if dst[0] != 1<<30 {
			t.Errorf("dst[0] = %d, want %d", dst[0], 1<<30)
		}
	})
}

func TestToPCM(t *testing.T) {
	t.Parallel()

	src := []Q31{MinQ31, 1 << 30, 0}
	dst := make([]int16, len(src))
	ToPCM(dst, src)

	want := []int16{-32768, 16384, 0}
	for i := range want {
		if dst[i] != want[i] {
			t.Errorf("dst[%d] = %d, want %d", i, dst[i], want[i])
		}
	}
}

func TestFromFloats(t *testing.T) {
	t.Parallel()

	dst := make([]Q31, 3)
	FromFloats(dst, []float32{0.5, -1, 2})

	if dst[0] != 1<<30 || dst[1] != MinQ31 || dst[2] != MaxQ31 {
		t.Errorf("dst = %v", dst)
	}
}
