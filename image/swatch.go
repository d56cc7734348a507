// SPDX-License-Identifier: GPL-2.0-or-later

package image

import (
	"image"
	"image/color"
	"io"

	"spingen/palette"
	"spingen/spray"
)

// Swatch writes the ramp of sp as a row of size×size squares.
func Swatch(w io.Writer, base *palette.Palette, sp *spray.Spray, size int) error {
	if size < 1 {
		size = 1
	}
	img := image.NewNRGBA(image.Rect(0, 0, size*spray.RampSize, size))
	for i, idx := range sp.Ramp {
		c := base[idx]
		nc := color.NRGBA{c.R, c.G, c.B, 0xff}
		for y := 0; y < size; y++ {
			for x := i * size; x < (i+1)*size; x++ {
				img.SetNRGBA(x, y, nc)
			}
		}
	}
	return writePNG(w, img)
}
