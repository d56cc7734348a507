// SPDX-License-Identifier: GPL-2.0-or-later

// Package spr2 indexes the sprites of a skin by identifier, frame and
// angle. The index only names the lumps to decode; it holds no pixels.
package spr2

import (
	"errors"
	"fmt"
	"sort"

	perrors "github.com/pkg/errors"

	"spingen/lump"
	"spingen/name"
	"spingen/patch"
)

var ErrNotFound = errors.New("not found")

// IsNotFound reports whether err means a sprite is missing rather than
// broken.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// Key addresses one rotation of one frame of a sprite.
type Key struct {
	Sprite name.Name
	Frame  byte
	Angle  Angle
}

// Spr2 says which lump provides a Key and whether it has to be flipped.
type Spr2 struct {
	Key
	Name   name.Name
	Mirror bool
}

type Index struct {
	sprites map[Key]Spr2
	patches map[name.Name]lump.Lump
}

func NewIndex() *Index {
	return &Index{
		sprites: make(map[Key]Spr2),
		patches: make(map[name.Name]lump.Lump),
	}
}

// Add indexes the lump l under its sprite name n. A PLAYA2A8 style name
// also provides the mirrored rotation from the same lump. On error the
// index is unchanged.
func (x *Index) Add(n name.Name, l lump.Lump) error {
	sn, err := ParseSpriteName(n)
	if err != nil {
		return err
	}
	id := sn.Identifier()
	if sn.HasMirrored {
		m := Key{id, sn.Mirrored.Frame, sn.Mirrored.Angle}
		x.sprites[m] = Spr2{Key: m, Name: n, Mirror: true}
	}
	k := Key{id, sn.Frame.Frame, sn.Frame.Angle}
	x.sprites[k] = Spr2{Key: k, Name: n}
	x.patches[n] = l
	return nil
}

func (x *Index) Len() int {
	return len(x.patches)
}

// Lookup returns the lump of a physical sprite name.
func (x *Index) Lookup(n name.Name) (lump.Lump, bool) {
	l, ok := x.patches[n]
	return l, ok
}

// Names returns every physical sprite name, sorted.
func (x *Index) Names() []name.Name {
	ns := make([]name.Name, 0, len(x.patches))
	for n := range x.patches {
		ns = append(ns, n)
	}
	sort.Slice(ns, func(i, j int) bool { return ns[i] < ns[j] })
	return ns
}

// Read decodes the patch of a physical sprite name.
func (x *Index) Read(n name.Name) (*patch.Patch, error) {
	l, ok := x.patches[n]
	if !ok {
		return nil, fmt.Errorf("sprite %s: %w", n, ErrNotFound)
	}
	data, err := l.Read()
	if err != nil {
		return nil, perrors.Wrapf(err, "reading sprite %s", n)
	}
	p, err := patch.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("sprite %s: %w", n, err)
	}
	return p, nil
}

// Sprites returns the distinct sprite identifiers, sorted.
func (x *Index) Sprites() []name.Name {
	seen := map[name.Name]bool{}
	var out []name.Name
	for k := range x.sprites {
		if !seen[k.Sprite] {
			seen[k.Sprite] = true
			out = append(out, k.Sprite)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Frames returns the distinct frame letters of a sprite, sorted.
func (x *Index) Frames(sprite name.Name) []byte {
	seen := map[byte]bool{}
	var out []byte
	for k := range x.sprites {
		if k.Sprite == sprite && !seen[k.Frame] {
			seen[k.Frame] = true
			out = append(out, k.Frame)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Angles returns every entry of a sprite frame, the all angles one
// included, sorted by angle.
func (x *Index) Angles(sprite name.Name, frame byte) []Spr2 {
	var out []Spr2
	for k, s := range x.sprites {
		if k.Sprite == sprite && k.Frame == frame {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Angle < out[j].Angle })
	return out
}

// Resolve finds the entry to draw for one rotation. An all angles entry
// wins over a specific one.
func (x *Index) Resolve(sprite name.Name, frame byte, angle Angle) (Spr2, bool) {
	if s, ok := x.sprites[Key{sprite, frame, AllAngles}]; ok {
		return s, true
	}
	s, ok := x.sprites[Key{sprite, frame, angle}]
	return s, ok
}
