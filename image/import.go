// SPDX-License-Identifier: GPL-2.0-or-later

package image

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/png"
	"io"
	"strings"

	_ "golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"

	"spingen/palette"
	"spingen/patch"
)

// Decode reads a picture to import. TGA is picked by file extension,
// everything else by the registered image decoders.
func Decode(r io.Reader, filename string) (image.Image, error) {
	if strings.HasSuffix(strings.ToLower(filename), ".tga") {
		return decodeTGA(r)
	}
	img, _, err := image.Decode(r)
	return img, err
}

// ToPatch maps img onto pal. Pixels with alpha below 128 stay empty. The
// offsets put the origin at the bottom centre, where sprites stand.
func ToPatch(img image.Image, pal *palette.Palette) *patch.Patch {
	b := img.Bounds()
	n := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	xdraw.Draw(n, n.Bounds(), img, b.Min, xdraw.Src)

	p := patch.New(b.Dx(), b.Dy(), b.Dx()/2, b.Dy())
	for y := 0; y < p.Height; y++ {
		for x := 0; x < p.Width; x++ {
			c := n.NRGBAAt(x, y)
			if c.A < 0x80 {
				continue
			}
			c.A = 0xff
			p.Set(x, y, pal.NearestColor(c))
		}
	}
	return p
}

type tgaHeader struct {
	IDLength       uint8
	ColormapType   uint8
	ImageType      uint8
	ColormapIndex  uint16
	ColormapLength uint16
	ColormapSize   uint8
	XOrigin        uint16
	YOrigin        uint16
	Width          uint16
	Height         uint16
	PixelSize      uint8
	Attributes     uint8
}

const (
	tgaTrueColor = 2
	tgaRLE       = 10
	tgaTopDown   = 0x20
)

// decodeTGA reads uncompressed and run length encoded true colour TGA.
func decodeTGA(r io.Reader) (*image.NRGBA, error) {
	br := bufio.NewReader(r)
	var h tgaHeader
	if err := binary.Read(br, binary.LittleEndian, &h); err != nil {
		return nil, fmt.Errorf("invalid tga header: %w", err)
	}
	if h.ImageType != tgaTrueColor && h.ImageType != tgaRLE {
		return nil, fmt.Errorf("tga type %d is not supported", h.ImageType)
	}
	if h.ColormapType != 0 || (h.PixelSize != 32 && h.PixelSize != 24) {
		return nil, fmt.Errorf("tga is not 24bit or 32bit")
	}
	if _, err := br.Discard(int(h.IDLength)); err != nil {
		return nil, err
	}

	width, height := int(h.Width), int(h.Height)
	bpp := int(h.PixelSize) / 8
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	px := make([]byte, bpp)
	set := func(i int) {
		// Stored as BGR(A), rows bottom up unless the origin bit is set.
		x, y := i%width, i/width
		if h.Attributes&tgaTopDown == 0 {
			y = height - 1 - y
		}
		o := img.PixOffset(x, y)
		img.Pix[o+0] = px[2]
		img.Pix[o+1] = px[1]
		img.Pix[o+2] = px[0]
		img.Pix[o+3] = 0xff
		if bpp == 4 {
			img.Pix[o+3] = px[3]
		}
	}

	total := width * height
	for i := 0; i < total; {
		if h.ImageType == tgaTrueColor {
			if _, err := io.ReadFull(br, px); err != nil {
				return nil, fmt.Errorf("tga pixel data: %w", err)
			}
			set(i)
			i++
			continue
		}
		c, err := br.ReadByte()
		if err != nil {
			return nil, fmt.Errorf("tga packet: %w", err)
		}
		n := int(c&0x7f) + 1
		if i+n > total {
			return nil, fmt.Errorf("tga packet overruns image")
		}
		if c&0x80 != 0 {
			if _, err := io.ReadFull(br, px); err != nil {
				return nil, fmt.Errorf("tga pixel data: %w", err)
			}
			for ; n > 0; n-- {
				set(i)
				i++
			}
			continue
		}
		for ; n > 0; n-- {
			if _, err := io.ReadFull(br, px); err != nil {
				return nil, fmt.Errorf("tga pixel data: %w", err)
			}
			set(i)
			i++
		}
	}
	return img, nil
}
