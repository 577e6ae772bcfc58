package core

import "math"

// SeedLen returns the number of random bytes needed to seed n cells, one bit
// per cell.
func SeedLen(n int) int { return (n + 7) / 8 }

// UnpackBits writes bit i of src (least significant bit first within each
// byte) into dst[i] as 0 or 1 and returns how many cells were set. src must
// hold at least SeedLen(len(dst)) bytes.
func UnpackBits(src []byte, dst []uint8) int {
	alive := 0
	for i := range dst {
		bit := (src[i>>3] >> (i & 7)) & 1
		dst[i] = bit
		alive += int(bit)
	}
	return alive
}

// CheckDims validates grid and framebuffer dimensions. Both w*h and
// w*h*scale*scale must be representable as int.
func CheckDims(w, h, scale int) error {
	if w <= 0 || h <= 0 || scale <= 0 {
		return &DimsError{W: w, H: h, Scale: scale, Reason: "dimensions must be positive"}
	}
	if w > math.MaxInt/h {
		return &DimsError{W: w, H: h, Scale: scale, Reason: "cell count overflows"}
	}
	cells := w * h
	if scale > math.MaxInt/scale || cells > math.MaxInt/(scale*scale) {
		return &DimsError{W: w, H: h, Scale: scale, Reason: "pixel count overflows"}
	}
	return nil
}
