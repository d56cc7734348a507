// SPDX-License-Identifier: GPL-2.0-or-later

// Package image turns patches into PNG, GIF and BMP files and imported
// pictures back into patches.
package image

import (
	"fmt"
	"image"
	"image/gif"
	"io"

	"golang.org/x/image/bmp"

	"spingen/name"
	"spingen/palette"
	"spingen/patch"
	"spingen/spr2"
	"spingen/spray"
)

type Format int

const (
	PNG Format = iota
	GIF
	BMP
)

func (f Format) String() string {
	switch f {
	case PNG:
		return "png"
	case GIF:
		return "gif"
	case BMP:
		return "bmp"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

func (f Format) ContentType() string {
	return "image/" + f.String()
}

// ParseFormat accepts a format name as returned by String.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "png":
		return PNG, nil
	case "gif":
		return GIF, nil
	case "bmp":
		return BMP, nil
	}
	return 0, fmt.Errorf("unknown image format %q", s)
}

type Options struct {
	// Scale is the nearest neighbour upscale factor.
	Scale float32
	// Delay between animation frames in 1/100 s.
	Delay  uint16
	Mirror bool
}

func DefaultOptions() Options {
	return Options{Scale: 1, Delay: 20}
}

func (o Options) scale() float32 {
	if o.Scale <= 0 {
		return 1
	}
	return o.Scale
}

func IsNotFound(err error) bool {
	return spr2.IsNotFound(err)
}

// Encoder draws with one fixed, already remapped palette.
type Encoder struct {
	pal palette.Palette
}

func NewEncoder(pal palette.Palette) *Encoder {
	return &Encoder{pal: pal}
}

// NewSprayEncoder remaps base with sp starting at startcolor. A nil spray
// keeps the base colours.
func NewSprayEncoder(base palette.Palette, sp *spray.Spray, startcolor int) (*Encoder, error) {
	if sp == nil {
		return NewEncoder(base), nil
	}
	pal, err := sp.Remap(base, startcolor)
	if err != nil {
		return nil, err
	}
	return NewEncoder(pal), nil
}

func (e *Encoder) Palette() palette.Palette {
	return e.pal
}

func (e *Encoder) raster(p *patch.Patch, mirror bool, opts Options) *raster {
	return fromPatch(p, mirror).scale(opts.scale())
}

// Still writes p as a PNG.
func (e *Encoder) Still(w io.Writer, p *patch.Patch, opts Options) error {
	return e.Encode(w, p, PNG, opts)
}

// Encode writes p as a single image in format f.
func (e *Encoder) Encode(w io.Writer, p *patch.Patch, f Format, opts Options) error {
	r := e.raster(p, opts.Mirror, opts)
	switch f {
	case PNG:
		return writePNG(w, r.nrgba(&e.pal))
	case BMP:
		return bmp.Encode(w, r.nrgba(&e.pal))
	case GIF:
		return e.writeGIF(w, []*raster{r}, opts)
	}
	return fmt.Errorf("unknown image format %v", f)
}

// Sprite decodes the physical sprite n and writes it as a PNG.
func (e *Encoder) Sprite(w io.Writer, x *spr2.Index, n name.Name, opts Options) error {
	p, err := x.Read(n)
	if err != nil {
		return err
	}
	return e.Still(w, p, opts)
}

// Animation writes every rotation of one frame as a looping GIF. If all
// rotations come from the same lump the result is a PNG still instead.
func (e *Encoder) Animation(w io.Writer, x *spr2.Index, sprite name.Name, frame byte, opts Options) (Format, error) {
	var entries []spr2.Spr2
	for _, a := range spr2.Rotations {
		if s, ok := x.Resolve(sprite, frame, a); ok {
			entries = append(entries, s)
		}
	}
	if len(entries) == 0 {
		return 0, fmt.Errorf("sprite %s%c: %w", sprite, frame, spr2.ErrNotFound)
	}

	patches := make(map[name.Name]*patch.Patch)
	read := func(n name.Name) (*patch.Patch, error) {
		if p, ok := patches[n]; ok {
			return p, nil
		}
		p, err := x.Read(n)
		if err != nil {
			return nil, err
		}
		patches[n] = p
		return p, nil
	}

	if still(entries) {
		p, err := read(entries[0].Name)
		if err != nil {
			return 0, err
		}
		r := e.raster(p, entries[0].Mirror != opts.Mirror, opts)
		return PNG, writePNG(w, r.nrgba(&e.pal))
	}

	frames := make([]placed, 0, len(entries))
	for _, s := range entries {
		p, err := read(s.Name)
		if err != nil {
			return 0, err
		}
		frames = append(frames, place(p, s.Mirror != opts.Mirror))
	}
	rs := compose(frames)
	for i := range rs {
		rs[i] = rs[i].scale(opts.scale())
	}
	return GIF, e.writeGIF(w, rs, opts)
}

func still(entries []spr2.Spr2) bool {
	for _, s := range entries[1:] {
		if s.Name != entries[0].Name || s.Mirror != entries[0].Mirror {
			return false
		}
	}
	return true
}

// placed is a frame positioned relative to the sprite origin.
type placed struct {
	r         *raster
	left, top int
}

func place(p *patch.Patch, mirror bool) placed {
	left := p.Left
	if mirror {
		left = p.Width - p.Left
	}
	return placed{r: fromPatch(p, mirror), left: left, top: p.Top}
}

// compose puts all frames on one canvas large enough for each of them,
// keeping their origins aligned.
func compose(fs []placed) []*raster {
	b := image.Rectangle{}
	for i, f := range fs {
		fb := image.Rect(-f.left, -f.top, f.r.w-f.left, f.r.h-f.top)
		if i == 0 {
			b = fb
		} else {
			b = b.Union(fb)
		}
	}
	out := make([]*raster, len(fs))
	for i, f := range fs {
		c := newRaster(b.Dx(), b.Dy())
		c.draw(f.r, -f.left-b.Min.X, -f.top-b.Min.Y)
		out[i] = c
	}
	return out
}

func (e *Encoder) writeGIF(w io.Writer, rs []*raster, opts Options) error {
	cp := e.pal.ColorPalette()
	g := &gif.GIF{
		LoopCount:       0,
		BackgroundIndex: palette.Background,
		Config: image.Config{
			ColorModel: cp,
			Width:      rs[0].w,
			Height:     rs[0].h,
		},
	}
	for _, r := range rs {
		g.Image = append(g.Image, r.paletted(cp))
		g.Delay = append(g.Delay, int(opts.Delay))
		g.Disposal = append(g.Disposal, gif.DisposalBackground)
	}
	return gif.EncodeAll(w, g)
}
