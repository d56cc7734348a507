// SPDX-License-Identifier: GPL-2.0-or-later

package math

import (
	"testing"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		min, val, max, want int
	}{
		{0, -1, 2, 0},
		{0, 1, 2, 1},
		{0, 7, 2, 2},
		{0, 2, 2, 2},
	}
	for _, tc := range tests {
		if got := Clamp(tc.min, tc.val, tc.max); got != tc.want {
			t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tc.min, tc.val, tc.max, got, tc.want)
		}
	}
	if got := Clamp[uint8](0, 250, 240); got != 240 {
		t.Errorf("Clamp[uint8](0, 250, 240) = %v, want 240", got)
	}
}

func TestScaledSize(t *testing.T) {
	tests := []struct {
		n     int
		scale float32
		want  int
	}{
		{4, 1, 4},
		{4, 2, 8},
		{5, 1.5, 7},
		{3, 0.1, 1},
		{0, 3, 0},
	}
	for _, tc := range tests {
		if got := ScaledSize(tc.n, tc.scale); got != tc.want {
			t.Errorf("ScaledSize(%v, %v) = %v, want %v", tc.n, tc.scale, got, tc.want)
		}
	}
}

func TestSourceIndex(t *testing.T) {
	var got []int
	for d := 0; d < 8; d++ {
		got = append(got, SourceIndex(d, 2, 4))
	}
	want := []int{0, 0, 1, 1, 2, 2, 3, 3}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("SourceIndex(%d, 2, 4) = %v, want %v", i, got[i], want[i])
		}
	}
	if v := SourceIndex(6, 1.5, 5); v != 4 {
		t.Errorf("SourceIndex(6, 1.5, 5) = %v, want 4", v)
	}
}
