// SPDX-License-Identifier: GPL-2.0-or-later

package image

import (
	"image"
	"image/color"

	"spingen/math"
	"spingen/palette"
	"spingen/patch"
)

// raster is a grid of palette indices or patch.Transparent.
type raster struct {
	w, h int
	pix  []int16
}

func newRaster(w, h int) *raster {
	r := &raster{w: w, h: h, pix: make([]int16, w*h)}
	for i := range r.pix {
		r.pix[i] = patch.Transparent
	}
	return r
}

// fromPatch copies the patch, flipping each row when mirror is set.
func fromPatch(p *patch.Patch, mirror bool) *raster {
	r := &raster{w: p.Width, h: p.Height, pix: make([]int16, len(p.Data))}
	for y := 0; y < p.Height; y++ {
		row := p.Data[y*p.Width : (y+1)*p.Width]
		out := r.pix[y*p.Width : (y+1)*p.Width]
		for x := range row {
			if mirror {
				out[x] = row[p.Width-1-x]
			} else {
				out[x] = row[x]
			}
		}
	}
	return r
}

// draw copies the opaque cells of src with its top left corner at x, y.
func (r *raster) draw(src *raster, x0, y0 int) {
	for y := 0; y < src.h; y++ {
		for x := 0; x < src.w; x++ {
			v := src.pix[y*src.w+x]
			if v == patch.Transparent {
				continue
			}
			r.pix[(y0+y)*r.w+x0+x] = v
		}
	}
}

// scale resamples by nearest neighbour: destination pixel dx samples source
// floor(dx/s).
func (r *raster) scale(s float32) *raster {
	if s == 1 {
		return r
	}
	w, h := math.ScaledSize(r.w, s), math.ScaledSize(r.h, s)
	out := &raster{w: w, h: h, pix: make([]int16, w*h)}
	for dy := 0; dy < h; dy++ {
		sy := math.SourceIndex(dy, s, r.h)
		for dx := 0; dx < w; dx++ {
			sx := math.SourceIndex(dx, s, r.w)
			out.pix[dy*w+dx] = r.pix[sy*r.w+sx]
		}
	}
	return out
}

// nrgba renders true colour. Empty cells take the RGB of the background
// slot with zero alpha, which keeps edges clean when the result is
// filtered.
func (r *raster) nrgba(pal *palette.Palette) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, r.w, r.h))
	bg := pal[palette.Background]
	for i, v := range r.pix {
		c := color.NRGBA{bg.R, bg.G, bg.B, 0}
		if v != patch.Transparent {
			pc := pal[uint8(v)]
			c = color.NRGBA{pc.R, pc.G, pc.B, 0xff}
		}
		img.Pix[i*4+0] = c.R
		img.Pix[i*4+1] = c.G
		img.Pix[i*4+2] = c.B
		img.Pix[i*4+3] = c.A
	}
	return img
}

// paletted renders indices directly, empty cells become the background
// slot.
func (r *raster) paletted(cp color.Palette) *image.Paletted {
	img := image.NewPaletted(image.Rect(0, 0, r.w, r.h), cp)
	for i, v := range r.pix {
		if v == patch.Transparent {
			img.Pix[i] = palette.Background
		} else {
			img.Pix[i] = uint8(v)
		}
	}
	return img
}
