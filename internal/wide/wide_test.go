package wide

import "testing"

func TestSplatU16(t *testing.T) {
	v := SplatU16(42)
	for i, lane := range v {
		if lane != 42 {
			t.Fatalf("lane %d = %d", i, lane)
		}
	}
}

func TestMulDiv255Identity(t *testing.T) {
	full := SplatU16(255)
	for _, n := range []uint16{0, 1, 51, 128, 254, 255} {
		got := SplatU16(n).MulDiv255(full)
		if got[0] != n {
			t.Errorf("n*255/255 = %d, want %d", got[0], n)
		}
	}
}

func TestClampAdd(t *testing.T) {
	got := SplatU16(200).ClampAdd(SplatU16(100))
	for i, lane := range got {
		if lane != 255 {
			t.Fatalf("lane %d = %d, want saturation at 255", i, lane)
		}
	}
}

func TestInv(t *testing.T) {
	got := SplatU16(200).Inv()
	if got[0] != 55 {
		t.Fatalf("Inv(200) = %d, want 55", got[0])
	}
}

func TestBatchStateRoundTrip(t *testing.T) {
	src := make([]byte, 64)
	for i := range src {
		src[i] = byte(i)
	}
	var b BatchState
	b.LoadDst(src)
	out := make([]byte, 64)
	b.StoreDst(out)
	for i := range src {
		if out[i] != src[i] {
			t.Fatalf("byte %d: %d != %d", i, out[i], src[i])
		}
	}
}

func TestScaleSrcByCoverage(t *testing.T) {
	var b BatchState
	b.SplatSrc(200, 100, 50, 255)
	cov := make([]byte, 16)
	for i := range cov {
		cov[i] = 255
	}
	cov[3] = 0
	b.ScaleSrc(cov)

	if b.SR[0] != 200 || b.SA[0] != 255 {
		t.Fatalf("full coverage must keep the color: %d %d", b.SR[0], b.SA[0])
	}
	if b.SR[3] != 0 || b.SA[3] != 0 {
		t.Fatalf("zero coverage must zero the lane: %d %d", b.SR[3], b.SA[3])
	}
}

func TestAddByte(t *testing.T) {
	for _, n := range []int{0, 1, 15, 16, 17, 40, 64} {
		dst := make([]uint8, n)
		for i := range dst {
			dst[i] = uint8(i)
		}
		AddByte(dst, 51)
		for i := range dst {
			if dst[i] != uint8(i)+51 {
				t.Fatalf("n=%d index %d: %d", n, i, dst[i])
			}
		}
	}
}

func TestAllZeroAllOpaque(t *testing.T) {
	var zero [16]uint8
	if !AllZero(&zero) {
		t.Fatal("zero block must report AllZero")
	}
	if AllOpaque(&zero) {
		t.Fatal("zero block is not opaque")
	}

	var full [16]uint8
	for i := range full {
		full[i] = 255
	}
	if !AllOpaque(&full) {
		t.Fatal("full block must report AllOpaque")
	}

	mixed := full
	mixed[7] = 254
	if AllOpaque(&mixed) || AllZero(&mixed) {
		t.Fatal("mixed block is neither")
	}
}
