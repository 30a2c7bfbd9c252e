package words

import (
	"math/bits"
	"math/rand"
	"testing"
)

func TestAndWords(t *testing.T) {
	tests := []struct {
		name string
		dst  []uint64
		src  []uint64
		want []uint64
	}{
		{
			name: "Empty",
			dst:  []uint64{},
			src:  []uint64{},
			want: []uint64{},
		},
		{
			name: "Single word",
			dst:  []uint64{0xFF00FF00FF00FF00},
			src:  []uint64{0x0F0F0F0F0F0F0F0F},
			want: []uint64{0x0F000F000F000F00},
		},
		{
			name: "5 words (unrolled + tail)",
			dst:  []uint64{0xFF, 0xFF, 0xFF, 0xFF, 0xFF},
			src:  []uint64{0x0F, 0xF0, 0x55, 0xAA, 0x33},
			want: []uint64{0x0F, 0xF0, 0x55, 0xAA, 0x33},
		},
		{
			name: "Shorter src leaves tail untouched",
			dst:  []uint64{0xFF, 0xFF, 0xFF},
			src:  []uint64{0x0F},
			want: []uint64{0x0F, 0xFF, 0xFF},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := make([]uint64, len(tt.dst))
			copy(dst, tt.dst)
			AndWords(dst, tt.src)
			for i := range dst {
				if dst[i] != tt.want[i] {
					t.Errorf("word %d = %#x, want %#x", i, dst[i], tt.want[i])
				}
			}
		})
	}
}

func TestBinaryKernelsRandom(t *testing.T) {
	r := rand.New(rand.NewSource(42))

	for _, n := range []int{1, 3, 4, 7, 16, 33} {
		a := make([]uint64, n)
		b := make([]uint64, n)
		for i := range a {
			a[i] = r.Uint64()
			b[i] = r.Uint64()
		}

		check := func(name string, kernel func(dst, src []uint64), op func(x, y uint64) uint64) {
			dst := append([]uint64(nil), a...)
			kernel(dst, b)
			for i := range dst {
				if want := op(a[i], b[i]); dst[i] != want {
					t.Errorf("%s n=%d word %d = %#x, want %#x", name, n, i, dst[i], want)
				}
			}
		}

		check("and", AndWords, func(x, y uint64) uint64 { return x & y })
		check("andnot", AndNotWords, func(x, y uint64) uint64 { return x &^ y })
		check("or", OrWords, func(x, y uint64) uint64 { return x | y })
		check("xor", XorWords, func(x, y uint64) uint64 { return x ^ y })
	}
}

func TestFillKernels(t *testing.T) {
	base := []uint64{0x0F, 0xF0, 0}

	dst := append([]uint64(nil), base...)
	OrFill(dst, Full)
	for i, w := range dst {
		if w != Full {
			t.Errorf("OrFill word %d = %#x", i, w)
		}
	}

	dst = append([]uint64(nil), base...)
	AndFill(dst, 0)
	for i, w := range dst {
		if w != 0 {
			t.Errorf("AndFill word %d = %#x", i, w)
		}
	}

	dst = append([]uint64(nil), base...)
	XorFill(dst, Full)
	for i, w := range dst {
		if w != ^base[i] {
			t.Errorf("XorFill word %d = %#x", i, w)
		}
	}

	dst = append([]uint64(nil), base...)
	AndNotFill(dst, Full)
	for i, w := range dst {
		if w != 0 {
			t.Errorf("AndNotFill word %d = %#x", i, w)
		}
	}

	Fill(dst, 7)
	for i, w := range dst {
		if w != 7 {
			t.Errorf("Fill word %d = %#x", i, w)
		}
	}
}

func TestPopcountWords(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	w := make([]uint64, 13)
	want := 0
	for i := range w {
		w[i] = r.Uint64()
		want += bits.OnesCount64(w[i])
	}
	if got := PopcountWords(w); got != want {
		t.Errorf("PopcountWords = %d, want %d", got, want)
	}
	if got := PopcountWords(nil); got != 0 {
		t.Errorf("PopcountWords(nil) = %d, want 0", got)
	}
}

func TestTrimLen(t *testing.T) {
	tests := []struct {
		name  string
		words []uint64
		fill  uint64
		want  int
	}{
		{"all zero", []uint64{0, 0, 0}, 0, 0},
		{"trailing zeros", []uint64{1, 0, 0}, 0, 1},
		{"trailing ones", []uint64{Full, 5, Full, Full}, Full, 2},
		{"no trailing fill", []uint64{0, 1}, 0, 2},
		{"empty", nil, Full, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TrimLen(tt.words, tt.fill); got != tt.want {
				t.Errorf("TrimLen = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestFillWord(t *testing.T) {
	if FillWord(false) != 0 || FillWord(true) != Full {
		t.Error("FillWord mismatch")
	}
}
