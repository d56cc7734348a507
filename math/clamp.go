// SPDX-License-Identifier: GPL-2.0-or-later

// Package math has the small numeric helpers shared by the skin and image
// code.
package math

type Number interface {
	~int | ~int64 | ~uint8 | ~uint16 | ~float32 | ~float64
}

// Clamp limits val to [min, max].
func Clamp[K Number](min, val, max K) K {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
