// SPDX-License-Identifier: GPL-2.0-or-later

// Package spray implements skincolors, 16 entry palette ramps that recolour
// a skin.
package spray

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"spingen/palette"
)

// RampSize is the number of palette slots a spray replaces.
const RampSize = 16

// MaxStartColor is the highest offset a full ramp fits at.
const MaxStartColor = palette.Colors - RampSize

var ErrStartColor = errors.New("startcolor out of range")

const idPrefix = "SKINCOLOR_"

// Spray is a named ramp. Ramp entries are palette indices, not colours.
type Spray struct {
	ID   string
	Name string
	Ramp [RampSize]uint8
}

// Remap returns a copy of base with the slots starting at startcolor
// replaced by the ramp colours of base. base itself is not modified.
func (s *Spray) Remap(base palette.Palette, startcolor int) (palette.Palette, error) {
	if startcolor < 0 || startcolor > MaxStartColor {
		return base, fmt.Errorf("%w: %d not in 0..%d", ErrStartColor, startcolor, MaxStartColor)
	}
	p := base
	for i, idx := range s.Ramp {
		p[startcolor+i] = base[idx]
	}
	return p, nil
}

func (s *Spray) String() string {
	return fmt.Sprintf("%s (%s)", s.Name, s.ID)
}

// IsID reports whether s looks like a skincolor constant.
func IsID(s string) bool {
	return len(s) >= len(idPrefix) && strings.EqualFold(s[:len(idPrefix)], idPrefix)
}

// DisplayName derives a name for sprays declared without one:
// SKINCOLOR_SUPER_GOLD becomes "Super Gold".
func DisplayName(id string) string {
	n := id
	if IsID(n) {
		n = n[len(idPrefix):]
	}
	n = strings.ReplaceAll(n, "_", " ")
	return cases.Title(language.English).String(strings.ToLower(n))
}

// BaseGame returns fresh copies of the sprays built into the game, in slot
// order.
func BaseGame() []*Spray {
	s := make([]*Spray, len(baseGame))
	for i := range baseGame {
		c := baseGame[i]
		s[i] = &c
	}
	return s
}
