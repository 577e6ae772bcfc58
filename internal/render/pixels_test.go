package render

import (
	"bytes"
	"testing"
)

func TestFillRGBA(t *testing.T) {
	buf := make([]byte, 8)
	FillRGBA(buf, []uint32{0xFF112233, 0x80A0B0C0})
	want := []byte{0x11, 0x22, 0x33, 0xFF, 0xA0, 0xB0, 0xC0, 0x80}
	if !bytes.Equal(buf, want) {
		t.Fatalf("FillRGBA = % x, want % x", buf, want)
	}
}

func TestEnsureLen(t *testing.T) {
	buf := make([]byte, 4, 16)
	got := ensureLen(buf, 12)
	if len(got) != 12 || &got[0] != &buf[0] {
		t.Fatal("ensureLen should reuse spare capacity")
	}
	if bigger := ensureLen(buf, 32); len(bigger) != 32 {
		t.Fatalf("ensureLen grew to %d, want 32", len(bigger))
	}
}
