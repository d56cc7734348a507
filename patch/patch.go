// SPDX-License-Identifier: GPL-2.0-or-later

// Package patch decodes and encodes Doom patches, the column based run
// length encoded format sprites are stored in.
package patch

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// Transparent marks a cell no post wrote to.
const Transparent int16 = -1

const endOfColumn = 0xFF

var ErrMalformed = errors.New("malformed patch")

// MaxArea bounds Width*Height of a decoded patch. The header alone could
// otherwise ask for 65535×65535 cells.
const MaxArea = 4096 * 4096

type header struct {
	Width      uint16
	Height     uint16
	LeftOffset int16
	TopOffset  int16
}

const headerSize = 8

// Patch is a decoded patch. Data is row major and always holds
// Width*Height cells, each a palette index or Transparent.
type Patch struct {
	Width  int
	Height int
	Left   int
	Top    int
	Data   []int16
}

// New returns a fully transparent patch.
func New(width, height, left, top int) *Patch {
	p := &Patch{
		Width:  width,
		Height: height,
		Left:   left,
		Top:    top,
		Data:   make([]int16, width*height),
	}
	for i := range p.Data {
		p.Data[i] = Transparent
	}
	return p
}

// At returns the palette index at x,y and false for transparent cells.
func (p *Patch) At(x, y int) (uint8, bool) {
	v := p.Data[y*p.Width+x]
	if v == Transparent {
		return 0, false
	}
	return uint8(v), true
}

func (p *Patch) Set(x, y int, idx uint8) {
	p.Data[y*p.Width+x] = int16(idx)
}

func (p *Patch) Clear(x, y int) {
	p.Data[y*p.Width+x] = Transparent
}

// Decode reads a patch. It fails as a whole on any truncated or out of
// range data.
func Decode(data []byte) (*Patch, error) {
	r := bytes.NewReader(data)
	var h header
	if err := binary.Read(r, binary.LittleEndian, &h); err != nil {
		return nil, fmt.Errorf("%w: header: %w", ErrMalformed, err)
	}
	if int(h.Width)*int(h.Height) > MaxArea {
		return nil, fmt.Errorf("%w: %dx%d is too large", ErrMalformed, h.Width, h.Height)
	}
	offsets := make([]uint32, h.Width)
	if err := binary.Read(r, binary.LittleEndian, offsets); err != nil {
		return nil, fmt.Errorf("%w: column offsets: %w", ErrMalformed, err)
	}

	p := New(int(h.Width), int(h.Height), int(h.LeftOffset), int(h.TopOffset))
	for x, off := range offsets {
		if err := p.readColumn(data, x, int64(off)); err != nil {
			return nil, fmt.Errorf("%w: column %d: %w", ErrMalformed, x, err)
		}
	}
	return p, nil
}

func (p *Patch) readColumn(data []byte, x int, off int64) error {
	if off < 0 || off >= int64(len(data)) {
		return fmt.Errorf("offset %d out of range", off)
	}
	r := bytes.NewReader(data[off:])
	top := 0
	for {
		delta, err := r.ReadByte()
		if err != nil {
			return noEOF(err)
		}
		if delta == endOfColumn {
			return nil
		}
		// tall patches: a delta not past the running top is relative
		if int(delta) <= top {
			top += int(delta)
		} else {
			top = int(delta)
		}

		length, err := r.ReadByte()
		if err != nil {
			return noEOF(err)
		}
		if _, err := r.ReadByte(); err != nil {
			return noEOF(err)
		}
		for i := 0; i < int(length); i++ {
			idx, err := r.ReadByte()
			if err != nil {
				return noEOF(err)
			}
			if y := top + i; y < p.Height {
				p.Set(x, y, idx)
			}
		}
		if _, err := r.ReadByte(); err != nil {
			return noEOF(err)
		}
	}
}

func noEOF(err error) error {
	if err == io.EOF {
		return io.ErrUnexpectedEOF
	}
	return err
}
