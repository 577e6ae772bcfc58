//go:build ebiten

package render

import (
	"counterlife/pkg/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
)

// FramePainter uploads a rendered life.Frame into an ebiten image.
type FramePainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewFramePainter returns an empty painter; the image is sized on first use.
func NewFramePainter() *FramePainter { return &FramePainter{} }

// Blit copies frame into the painter image and draws it at the origin of
// dst. The frame is consumed immediately and not retained.
func (fp *FramePainter) Blit(dst *ebiten.Image, frame life.Frame) {
	if frame.Width != fp.w || frame.Height != fp.h || fp.img == nil {
		if fp.img != nil {
			fp.img.Dispose()
		}
		fp.w, fp.h = frame.Width, frame.Height
		fp.img = ebiten.NewImage(fp.w, fp.h)
	}
	fp.buf = ensureLen(fp.buf, 4*len(frame.Pix))
	FillRGBA(fp.buf, frame.Pix)
	fp.img.WritePixels(fp.buf)
	dst.DrawImage(fp.img, nil)
}

// Size returns the dimensions of the underlying image.
func (fp *FramePainter) Size() (int, int) { return fp.w, fp.h }
