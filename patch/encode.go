// SPDX-License-Identifier: GPL-2.0-or-later

package patch

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

const (
	maxPost  = 128
	maxDelta = 254
)

// Encode writes p in the patch format. Columns taller than 254 pixels use
// relative top deltas the way Decode expects them.
func Encode(p *Patch) ([]byte, error) {
	if p.Width > 0xFFFF || p.Height > 0xFFFF || p.Width < 0 || p.Height < 0 {
		return nil, fmt.Errorf("patch: size %dx%d out of range", p.Width, p.Height)
	}
	if len(p.Data) != p.Width*p.Height {
		return nil, fmt.Errorf("patch: %d cells for %dx%d", len(p.Data), p.Width, p.Height)
	}

	var cols bytes.Buffer
	offsets := make([]uint32, p.Width)
	base := headerSize + 4*p.Width
	for x := 0; x < p.Width; x++ {
		offsets[x] = uint32(base + cols.Len())
		p.writeColumn(&cols, x)
	}

	var out bytes.Buffer
	h := header{
		Width:      uint16(p.Width),
		Height:     uint16(p.Height),
		LeftOffset: int16(p.Left),
		TopOffset:  int16(p.Top),
	}
	// writes to a bytes.Buffer do not fail
	binary.Write(&out, binary.LittleEndian, h)
	binary.Write(&out, binary.LittleEndian, offsets)
	out.Write(cols.Bytes())
	return out.Bytes(), nil
}

func (p *Patch) writeColumn(w *bytes.Buffer, x int) {
	top := 0
	post := func(y int, pixels []byte) {
		// step the running top with empty posts until y is reachable
		for y > maxDelta && y-top > min(top, maxDelta) {
			if top < maxDelta {
				w.Write([]byte{maxDelta, 0, 0, 0})
				top = maxDelta
			} else {
				d := min(top, maxDelta)
				w.Write([]byte{byte(d), 0, 0, 0})
				top += d
			}
		}
		switch {
		case y == top:
			w.WriteByte(0)
		case y <= maxDelta:
			w.WriteByte(byte(y))
		default:
			w.WriteByte(byte(y - top))
		}
		top = y
		w.WriteByte(byte(len(pixels)))
		w.WriteByte(0)
		w.Write(pixels)
		w.WriteByte(0)
	}

	var run []byte
	start := 0
	for y := 0; y <= p.Height; y++ {
		idx, ok := uint8(0), false
		if y < p.Height {
			idx, ok = p.At(x, y)
		}
		if ok && len(run) < maxPost {
			if len(run) == 0 {
				start = y
			}
			run = append(run, idx)
			continue
		}
		if len(run) > 0 {
			post(start, run)
			run = run[:0]
		}
		if ok {
			start = y
			run = append(run, idx)
		}
	}
	w.WriteByte(endOfColumn)
}
