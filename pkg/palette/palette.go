// Package palette builds per-cell colour maps for live cells. A Map is
// evaluated once per grid and the result reused on every render.
package palette

import (
	"fmt"
	"math"

	"github.com/aquilax/go-perlin"
)

const (
	// Background is the colour of dead cells.
	Background uint32 = 0xFF000000
	// Fallback paints live cells when no map is configured.
	Fallback uint32 = 0xFFFFFFFF

	opaque uint32 = 0xFF000000
)

// Map returns one packed 0xAARRGGBB colour per cell of a w*h grid in
// row-major order.
type Map func(w, h int) []uint32

// Gradient shades cells red along y, green fading along x and blue rising
// along x.
func Gradient(w, h int) []uint32 {
	out := make([]uint32, w*h)
	for y := 0; y < h; y++ {
		red := uint32(y*0xFF/h) << 16
		for x := 0; x < w; x++ {
			green := uint32((w-x)*0xB0/w) << 8
			blue := uint32(x * 0xFF / w)
			out[y*w+x] = opaque | red | green | blue
		}
	}
	return out
}

// Mono paints every live cell with c. The alpha channel is forced opaque.
func Mono(c uint32) Map {
	c |= opaque
	return func(w, h int) []uint32 {
		out := make([]uint32, w*h)
		for i := range out {
			out[i] = c
		}
		return out
	}
}

// Noise tints cells with smooth Perlin noise sampled at the given frequency
// (noise periods per grid width).
func Noise(seed int64, freq float64) Map {
	if freq <= 0 {
		freq = 4
	}
	return func(w, h int) []uint32 {
		p := perlin.NewPerlin(2, 2, 3, seed)
		out := make([]uint32, w*h)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				fx := float64(x) / float64(w) * freq
				fy := float64(y) / float64(w) * freq
				out[y*w+x] = noiseColor(p.Noise2D(fx, fy), p.Noise2D(fx+17.3, fy-5.1))
			}
		}
		return out
	}
}

// noiseColor maps two noise samples in roughly [-1, 1] onto a bright colour.
func noiseColor(a, b float64) uint32 {
	u := unit(a)
	v := unit(b)
	r := channel(0.35 + 0.65*u)
	g := channel(0.35 + 0.65*v)
	bl := channel(1 - 0.5*(u+v)/2)
	return opaque | r<<16 | g<<8 | bl
}

func unit(n float64) float64 {
	return math.Max(0, math.Min(1, (n+1)/2))
}

func channel(f float64) uint32 {
	return uint32(math.Round(math.Max(0, math.Min(1, f)) * 255))
}

// Names lists the palettes ByName understands.
func Names() []string { return []string{"gradient", "noise", "mono"} }

// ByName resolves a palette flag value. seed only affects "noise".
func ByName(name string, seed int64) (Map, error) {
	switch name {
	case "", "gradient":
		return Gradient, nil
	case "noise":
		return Noise(seed, 4), nil
	case "mono":
		return Mono(Fallback), nil
	default:
		return nil, fmt.Errorf("unknown palette %q (want one of %v)", name, Names())
	}
}
