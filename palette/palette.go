// SPDX-License-Identifier: GPL-2.0-or-later

// Package palette holds the fixed 256 colour PLAYPAL palette.
package palette

import (
	"fmt"
	"image/color"
)

const (
	Colors = 256
	// Size is the byte length of one palette in a PLAYPAL lump.
	Size = Colors * 3
	// Background is the slot used for transparent pixels.
	Background = 255
)

// Palette is a value; copies never share storage.
type Palette [Colors]color.RGBA

// InvalidLengthError is returned by FromBytes for anything but 768 bytes.
type InvalidLengthError struct {
	Len int
}

func (e *InvalidLengthError) Error() string {
	return fmt.Sprintf("invalid palette len: %d", e.Len)
}

// FromBytes reads exactly 768 bytes of packed RGB.
func FromBytes(b []byte) (Palette, error) {
	var p Palette
	if len(b) != Size {
		return p, &InvalidLengthError{len(b)}
	}
	for i := range p {
		p[i] = color.RGBA{b[i*3], b[i*3+1], b[i*3+2], 0xff}
	}
	return p, nil
}

// FromPLAYPAL reads the first palette of a PLAYPAL lump, which usually
// carries 14 of them.
func FromPLAYPAL(b []byte) (Palette, error) {
	if len(b) < Size {
		return Palette{}, &InvalidLengthError{len(b)}
	}
	return FromBytes(b[:Size])
}

func (p *Palette) Bytes() []byte {
	b := make([]byte, 0, Size)
	for _, c := range p {
		b = append(b, c.R, c.G, c.B)
	}
	return b
}

// Color returns the colour of slot i as an opaque color.RGBA.
func (p *Palette) Color(i uint8) color.RGBA {
	return p[i]
}

// ColorPalette converts to an image/color palette, with the background
// slot fully transparent.
func (p *Palette) ColorPalette() color.Palette {
	cp := make(color.Palette, Colors)
	for i, c := range p {
		cp[i] = c
	}
	cp[Background] = color.RGBA{}
	return cp
}

// NearestColor returns the slot closest to c by squared distance over
// red, green and blue. Ties go to the lowest index.
func (p *Palette) NearestColor(c color.Color) uint8 {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	best, bestDist := 0, -1
	for i, pc := range p {
		dr := int(pc.R) - int(n.R)
		dg := int(pc.G) - int(n.G)
		db := int(pc.B) - int(n.B)
		d := dr*dr + dg*dg + db*db
		if bestDist < 0 || d < bestDist {
			best, bestDist = i, d
			if d == 0 {
				break
			}
		}
	}
	return uint8(best)
}
