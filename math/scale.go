// SPDX-License-Identifier: GPL-2.0-or-later

package math

import (
	"github.com/chewxy/math32"
)

// ScaledSize returns the size of n source pixels after scaling, at least 1
// for a non empty source.
func ScaledSize(n int, scale float32) int {
	if n == 0 {
		return 0
	}
	return max(1, int(math32.Floor(float32(n)*scale)))
}

// SourceIndex maps a destination pixel back onto the source for nearest
// neighbour scaling, floor(dst/scale) clamped to the source size.
func SourceIndex(dst int, scale float32, n int) int {
	return Clamp(0, int(math32.Floor(float32(dst)/scale)), n-1)
}
