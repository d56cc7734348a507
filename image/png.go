// SPDX-License-Identifier: GPL-2.0-or-later

package image

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"
	"image"
	"image/png"
	"io"
)

const pngIHDREnd = 8 + 4 + 4 + 13 + 4

// Gamma 1/2.2 and the sRGB white point and primaries, in units of 1/100000.
var (
	gAMA = []uint32{45455}
	cHRM = []uint32{
		31270, 32900,
		64000, 33000,
		30000, 60000,
		15000, 6000,
	}
)

func appendChunk(b []byte, typ string, data []uint32) []byte {
	body := make([]byte, 4, 4+4*len(data))
	copy(body, typ)
	for _, d := range data {
		body = binary.BigEndian.AppendUint32(body, d)
	}
	b = binary.BigEndian.AppendUint32(b, uint32(len(body)-4))
	b = append(b, body...)
	return binary.BigEndian.AppendUint32(b, crc32.ChecksumIEEE(body))
}

// writePNG encodes img and adds gAMA and cHRM directly after IHDR so the
// colours look the same in every viewer.
func writePNG(w io.Writer, img image.Image) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return err
	}
	b := buf.Bytes()
	out := make([]byte, 0, len(b)+64)
	out = append(out, b[:pngIHDREnd]...)
	out = appendChunk(out, "gAMA", gAMA)
	out = appendChunk(out, "cHRM", cHRM)
	out = append(out, b[pngIHDREnd:]...)
	_, err := w.Write(out)
	return err
}
