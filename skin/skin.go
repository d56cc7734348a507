// SPDX-License-Identifier: GPL-2.0-or-later

// Package skin finds the playable characters of an archive: their S_SKIN
// definition and the sprites that belong to them.
package skin

import (
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"spingen/filesystem"
	"spingen/lump"
	"spingen/name"
	"spingen/spr2"
)

// Skin is immutable once loaded and safe to share.
type Skin struct {
	ID uuid.UUID
	*Define
	// Archive is the name of the file the skin came from.
	Archive string
	// Dir is the PK3 directory holding S_SKIN, "" for WADs.
	Dir     string
	Sprites *spr2.Index
}

// Load reads every skin of an archive. Problems with single skins or
// sprites are returned next to the skins that did load.
func Load(a filesystem.Archive) ([]*Skin, []error) {
	if a.Kind() == filesystem.WAD {
		return LoadWAD(a)
	}
	return LoadPK3(a)
}

// LoadPK3 treats each S_SKIN as the definition of a skin whose sprites are
// the other files of the same directory.
func LoadPK3(a filesystem.Archive) ([]*Skin, []error) {
	var skins []*Skin
	var problems []error
	entries := a.Entries()
	for i := range entries {
		l := a.Lump(i)
		if !strings.EqualFold(l.Base(), "S_SKIN") {
			continue
		}
		d, err := readDefine(l)
		if err != nil {
			problems = append(problems, errors.Wrapf(err, "%s: %s", a.Name(), l.Path))
			continue
		}
		s := newSkin(a, d, l.Dir())

		var files []lump.Lump
		for j := range entries {
			sl := a.Lump(j)
			if j != i && strings.EqualFold(sl.Dir(), s.Dir) {
				files = append(files, sl)
			}
		}
		problems = append(problems, s.index(files)...)
		skins = append(skins, s)
	}
	return skins, problems
}

// LoadWAD reads the single skin of a WAD. A WAD without S_SKIN has no
// skins; with several the last one counts.
func LoadWAD(a filesystem.Archive) ([]*Skin, []error) {
	i, ok := a.Lookup("S_SKIN")
	if !ok {
		return nil, nil
	}
	d, err := readDefine(a.Lump(i))
	if err != nil {
		return nil, []error{errors.Wrapf(err, "%s: S_SKIN", a.Name())}
	}
	s := newSkin(a, d, "")
	files := make([]lump.Lump, 0, len(a.Entries()))
	for j := range a.Entries() {
		files = append(files, a.Lump(j))
	}
	return []*Skin{s}, s.index(files)
}

func newSkin(a filesystem.Archive, d *Define, dir string) *Skin {
	return &Skin{
		ID:      uuid.Must(uuid.NewV7()),
		Define:  d,
		Archive: a.Name(),
		Dir:     dir,
		Sprites: spr2.NewIndex(),
	}
}

func readDefine(l lump.Lump) (*Define, error) {
	data, err := l.Read()
	if err != nil {
		return nil, err
	}
	return ReadDefine(string(data))
}

// index adds the sprite lumps, skipping S_SKIN and the sounds between
// DS_START and DS_END.
func (s *Skin) index(files []lump.Lump) []error {
	var problems []error
	inSounds := false
	for _, l := range files {
		base := l.Base()
		switch {
		case strings.EqualFold(base, "DS_START"):
			inSounds = true
			continue
		case strings.EqualFold(base, "DS_END"):
			inSounds = false
			continue
		case strings.EqualFold(base, "S_SKIN"), inSounds:
			continue
		}
		n, err := name.Parse(base)
		if err == nil {
			err = s.Sprites.Add(n, l)
		}
		if err != nil {
			problems = append(problems, errors.Wrapf(err, "%s: skin %s: %s", s.Archive, s.Name, l.Path))
		}
	}
	return problems
}
