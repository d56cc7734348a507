// SPDX-License-Identifier: GPL-2.0-or-later

package spray

import (
	"path"
	"strings"

	"github.com/pkg/errors"

	"spingen/blua"
	"spingen/filesystem"
	"spingen/soc"
)

// block holds the skincolor fields we care about. Fields left nil keep the
// current value of the spray.
type block struct {
	Name *string          `soc:"name" blua:"name"`
	Ramp *[RampSize]uint8 `soc:"ramp" blua:"ramp"`
}

func (b *block) apply(sp *Spray) {
	if b.Name != nil {
		sp.Name = *b.Name
	}
	if b.Ramp != nil {
		sp.Ramp = *b.Ramp
	}
}

// ReadSOC adds the skincolors declared in a SOC lump. Freeslots create
// sprays, SKINCOLOR blocks fill them in. Other blocks are skipped.
func (s *Set) ReadSOC(text string) error {
	p := soc.NewParser(text)
	for {
		ev, ok := p.Next()
		if !ok {
			return nil
		}
		switch {
		case ev.Kind == soc.Freeslot && IsID(ev.Name):
			s.getOrCreate(ev.Name)
		case ev.Kind == soc.Header && ev.HasValue &&
			strings.EqualFold(ev.Name, "SKINCOLOR") && IsID(ev.Value):
			var b block
			if err := p.Decode(&b); err != nil {
				return errors.Wrapf(err, "skincolor %s", ev.Value)
			}
			b.apply(s.getOrCreate(ev.Value))
		}
	}
}

// ReadLua adds the skincolors assigned as skincolors[ID] = {...} in a
// script.
func (s *Set) ReadLua(text string) error {
	for _, a := range blua.FindAssignments(text, "skincolors") {
		if a.Key == "" {
			continue
		}
		var b block
		if err := a.Decode(&b); err != nil {
			return errors.Wrapf(err, "skincolor %s", a.Key)
		}
		b.apply(s.getOrCreate(a.Key))
	}
	return nil
}

type textKind int

const (
	notText textKind = iota
	socText
	luaText
)

func classify(p string) textKind {
	top := filesystem.TopDir(p)
	ext := strings.ToLower(filesystem.Ext(p))
	base := strings.ToUpper(filesystem.StripExt(path.Base(strings.ReplaceAll(p, "\\", "/"))))
	switch {
	case strings.EqualFold(top, "SOC"), ext == ".soc",
		strings.HasPrefix(base, "SOC_"), base == "MAINCFG", base == "OBJCTCFG":
		return socText
	case strings.EqualFold(top, "Lua"), ext == ".lua", strings.HasPrefix(base, "LUA_"):
		return luaText
	}
	return notText
}

// Load collects the sprays declared by the SOC and Lua files of an archive,
// in the order they are first mentioned. A file that fails to read or parse
// is reported in the returned list and the rest still load; its sprays may
// be partially filled in.
func Load(a filesystem.Archive) (*Set, []error) {
	s := NewSet()
	var problems []error
	for i, e := range a.Entries() {
		kind := classify(e.Path)
		if kind == notText {
			continue
		}
		data, err := a.ReadIndex(i)
		if err != nil {
			problems = append(problems, errors.Wrapf(err, "%s: %s", a.Name(), e.Path))
			continue
		}
		if kind == socText {
			err = s.ReadSOC(string(data))
		} else {
			err = s.ReadLua(string(data))
		}
		if err != nil {
			problems = append(problems, errors.Wrapf(err, "%s: %s", a.Name(), e.Path))
		}
	}
	return s, problems
}
