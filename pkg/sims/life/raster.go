package life

import (
	"counterlife/pkg/core"
	"counterlife/pkg/palette"
)

// Frame borrows the rasterizer's framebuffer: Width*Height packed
// 0xAARRGGBB pixels, row-major from the top-left corner. It stays valid
// only until the next Render or SetCellSize.
type Frame struct {
	Pix    []uint32
	Width  int
	Height int
	Stride int
}

// At returns the pixel at (x, y).
func (f Frame) At(x, y int) uint32 { return f.Pix[y*f.Stride+x] }

// Rasterizer paints cells into an upscaled framebuffer, one cellSize block
// per cell, rewriting only blocks whose colour changed.
type Rasterizer struct {
	torus  core.Torus
	scale  int
	stride int
	pix    []uint32
	colors []uint32

	writes int
}

func newRasterizer(t core.Torus, scale int, colors []uint32) *Rasterizer {
	r := &Rasterizer{torus: t, colors: colors}
	r.resize(scale)
	return r
}

func (r *Rasterizer) resize(scale int) {
	r.scale = scale
	r.stride = r.torus.W * scale
	r.pix = make([]uint32, r.stride*r.torus.H*scale)
}

// CellSize returns the block edge length in pixels.
func (r *Rasterizer) CellSize() int { return r.scale }

// PixelWrites returns how many pixels the most recent paint stored.
func (r *Rasterizer) PixelWrites() int { return r.writes }

// Frame returns the framebuffer as last painted.
func (r *Rasterizer) Frame() Frame {
	return Frame{Pix: r.pix, Width: r.stride, Height: r.torus.H * r.scale, Stride: r.stride}
}

func (r *Rasterizer) colorOf(idx int, cell uint8) uint32 {
	if cell != 0 {
		return r.colors[idx]
	}
	return palette.Background
}

// paint brings the framebuffer up to date with cells. With full set every
// block is written; otherwise a block is skipped when its top-left pixel
// already holds the wanted colour.
func (r *Rasterizer) paint(cells []uint8, full bool) {
	r.writes = 0
	w, h, s := r.torus.W, r.torus.H, r.scale
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			c := r.colorOf(idx, cells[idx])
			base := y*s*r.stride + x*s
			if !full && r.pix[base] == c {
				continue
			}
			r.fillBlock(base, c)
		}
	}
}

func (r *Rasterizer) fillBlock(base int, c uint32) {
	for j := 0; j < r.scale; j++ {
		row := r.pix[base+j*r.stride : base+j*r.stride+r.scale]
		for i := range row {
			row[i] = c
		}
	}
	r.writes += r.scale * r.scale
}

// Render repaints changed blocks and returns the framebuffer.
func (u *Universe) Render() Frame {
	u.raster.paint(u.cells, false)
	return u.raster.Frame()
}

// Rasterizer exposes the universe's framebuffer owner.
func (u *Universe) Rasterizer() *Rasterizer { return u.raster }

// CellSize returns the current pixel size of one cell.
func (u *Universe) CellSize() int { return u.raster.scale }

// SetCellSize reallocates the framebuffer for a new cell size and repaints
// it in full. The universe is unchanged when the size is rejected.
func (u *Universe) SetCellSize(size int) error {
	if err := core.CheckDims(u.torus.W, u.torus.H, size); err != nil {
		return err
	}
	if size == u.raster.scale {
		return nil
	}
	u.raster.resize(size)
	u.raster.paint(u.cells, true)
	u.log.Debug("cell size changed", "cell_size", size, "pixels", len(u.raster.pix))
	return nil
}
