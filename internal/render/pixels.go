package render

// FillRGBA unpacks 0xAARRGGBB pixels into R, G, B, A byte order, the layout
// ebiten and image.RGBA expect. buf must hold 4*len(pix) bytes.
func FillRGBA(buf []byte, pix []uint32) {
	for i, p := range pix {
		base := i * 4
		buf[base+0] = uint8(p >> 16)
		buf[base+1] = uint8(p >> 8)
		buf[base+2] = uint8(p)
		buf[base+3] = uint8(p >> 24)
	}
}

// ensureLen returns buf resized to n bytes, reusing its storage when large
// enough.
func ensureLen(buf []byte, n int) []byte {
	if cap(buf) < n {
		return make([]byte, n)
	}
	return buf[:n]
}
