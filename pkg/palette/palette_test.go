package palette

import (
	"slices"
	"testing"
)

func TestGradientCorners(t *testing.T) {
	const w, h = 4, 4
	colors := Gradient(w, h)
	if len(colors) != w*h {
		t.Fatalf("expected %d colours, got %d", w*h, len(colors))
	}
	if got, want := colors[0], uint32(0xFF00B000); got != want {
		t.Fatalf("top-left colour %#08x, want %#08x", got, want)
	}
	// x=3, y=3: red 3*255/4=191, green (1*0xB0/4)=44, blue 3*255/4=191
	if got, want := colors[15], uint32(0xFF000000|191<<16|44<<8|191); got != want {
		t.Fatalf("bottom-right colour %#08x, want %#08x", got, want)
	}
	for i, c := range colors {
		if c>>24 != 0xFF {
			t.Fatalf("colour %d not opaque: %#08x", i, c)
		}
	}
}

func TestMonoForcesAlpha(t *testing.T) {
	colors := Mono(0x00123456)(3, 2)
	for i, c := range colors {
		if c != 0xFF123456 {
			t.Fatalf("cell %d colour %#08x, want 0xff123456", i, c)
		}
	}
}

func TestNoiseDeterministic(t *testing.T) {
	a := Noise(7, 4)(16, 12)
	b := Noise(7, 4)(16, 12)
	if !slices.Equal(a, b) {
		t.Fatal("noise palette not deterministic for equal seeds")
	}
	for i, c := range a {
		if c>>24 != 0xFF {
			t.Fatalf("colour %d not opaque: %#08x", i, c)
		}
	}
}

func TestByName(t *testing.T) {
	for _, name := range Names() {
		m, err := ByName(name, 1)
		if err != nil {
			t.Fatalf("ByName(%q): %v", name, err)
		}
		if got := len(m(3, 3)); got != 9 {
			t.Fatalf("palette %q produced %d colours, want 9", name, got)
		}
	}
	if _, err := ByName("sepia", 1); err == nil {
		t.Fatal("expected error for unknown palette")
	}
}
