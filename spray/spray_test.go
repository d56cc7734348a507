// SPDX-License-Identifier: GPL-2.0-or-later

package spray

import (
	"archive/zip"
	"bytes"
	"errors"
	"image/color"
	"testing"

	"github.com/go-test/deep"

	"spingen/filesystem"
	"spingen/palette"
)

func testPalette() palette.Palette {
	var p palette.Palette
	for i := range p {
		p[i] = color.RGBA{uint8(i), uint8(255 - i), uint8(i / 2), 0xff}
	}
	return p
}

func TestRemap(t *testing.T) {
	base := testPalette()
	orig := base
	sp := &Spray{ID: "SKINCOLOR_TEST", Ramp: [RampSize]uint8{
		200, 201, 202, 203, 204, 205, 206, 207, 5, 4, 3, 2, 1, 0, 255, 100}}

	for _, start := range []int{0, 96, MaxStartColor} {
		got, err := sp.Remap(base, start)
		if err != nil {
			t.Fatalf("Remap(%d): %v", start, err)
		}
		for i := range got {
			want := base[i]
			if i >= start && i < start+RampSize {
				want = base[sp.Ramp[i-start]]
			}
			if got[i] != want {
				t.Errorf("Remap(%d)[%d] = %v, want %v", start, i, got[i], want)
			}
		}
	}
	if base != orig {
		t.Error("Remap modified its input")
	}
}

func TestRemapOutOfRange(t *testing.T) {
	sp := BaseGame()[1]
	for _, start := range []int{-1, MaxStartColor + 1, 255} {
		if _, err := sp.Remap(testPalette(), start); !errors.Is(err, ErrStartColor) {
			t.Errorf("Remap(%d) err = %v, want ErrStartColor", start, err)
		}
	}
}

func TestBaseGame(t *testing.T) {
	a := BaseGame()
	if len(a) < 90 {
		t.Fatalf("only %d base sprays", len(a))
	}
	if a[0].ID != "SKINCOLOR_NONE" || a[1].Name != "White" {
		t.Errorf("first sprays = %v, %v", a[0], a[1])
	}
	a[1].Name = "changed"
	if BaseGame()[1].Name != "White" {
		t.Error("BaseGame shares storage between calls")
	}
}

func TestDisplayName(t *testing.T) {
	tests := map[string]string{
		"SKINCOLOR_ASIMOV":     "Asimov",
		"skincolor_super_gold": "Super Gold",
		"PLAIN":                "Plain",
	}
	for in, want := range tests {
		if got := DisplayName(in); got != want {
			t.Errorf("DisplayName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSet(t *testing.T) {
	s := NewBaseSet()
	n := s.Len()
	s.Add(&Spray{ID: "skincolor_white", Name: "Snow"})
	if s.Len() != n {
		t.Errorf("replacing grew the set to %d", s.Len())
	}
	if sp, ok := s.Get("SKINCOLOR_WHITE"); !ok || sp.Name != "Snow" || s.List()[1] != sp {
		t.Errorf("Get(SKINCOLOR_WHITE) = %v, %v", sp, ok)
	}
	s.Add(&Spray{ID: "SKINCOLOR_NEW", Name: "New"})
	if l := s.List(); l[len(l)-1].ID != "SKINCOLOR_NEW" {
		t.Errorf("last = %v", l[len(l)-1])
	}
	for _, q := range []string{"snow", "skincolor_new", "new", "WHITE"} {
		if _, ok := s.Find(q); !ok {
			t.Errorf("Find(%q) failed", q)
		}
	}
	if _, ok := s.Find("nothing"); ok {
		t.Error("Find(nothing) succeeded")
	}
}

const venusSOC = `
FREESLOT
SKINCOLOR_VENUS # comment
SKINCOLOR_UNNAMED

SKINCOLOR SKINCOLOR_VENUS
NAME = Venus
RAMP = 171,171,172,172,173,173,174,174,174,175,175,175,139,139,29,29
INVCOLOR = SKINCOLOR_SLATE

LEVEL 1
LEVELNAME = Not A Color
`

func TestReadSOC(t *testing.T) {
	s := NewSet()
	if err := s.ReadSOC(venusSOC); err != nil {
		t.Fatalf("ReadSOC: %v", err)
	}
	want := []*Spray{
		{ID: "SKINCOLOR_VENUS", Name: "Venus", Ramp: [RampSize]uint8{
			171, 171, 172, 172, 173, 173, 174, 174, 174, 175, 175, 175, 139, 139, 29, 29}},
		{ID: "SKINCOLOR_UNNAMED", Name: "Unnamed"},
	}
	if diff := deep.Equal(s.List(), want); diff != nil {
		t.Error(diff)
	}
}

func TestReadSOCBadRamp(t *testing.T) {
	s := NewSet()
	err := s.ReadSOC("SKINCOLOR SKINCOLOR_X\nRAMP = 1,2,3\n")
	if err == nil {
		t.Fatal("short ramp accepted")
	}
}

const asimovLua = `
freeslot("SKINCOLOR_ASIMOV")
skincolors[SKINCOLOR_ASIMOV] = {
	name = "Asimov",
	ramp = {0,1,3,5,6,8,9,134,135,148,149,137,26,27,28,29},
	invcolor = SKINCOLOR_PERIWINKLE,
	invshade = 7,
	chatcolor = V_BLUEMAP,
	accessible = true
}
skincolors[SKINCOLOR_ASIMOV].accessible = false
`

func TestReadLua(t *testing.T) {
	s := NewSet()
	if err := s.ReadLua(asimovLua); err != nil {
		t.Fatalf("ReadLua: %v", err)
	}
	sp, ok := s.Get("SKINCOLOR_ASIMOV")
	if !ok || s.Len() != 1 {
		t.Fatalf("sprays = %v", s.List())
	}
	want := Spray{ID: "SKINCOLOR_ASIMOV", Name: "Asimov",
		Ramp: [RampSize]uint8{0, 1, 3, 5, 6, 8, 9, 134, 135, 148, 149, 137, 26, 27, 28, 29}}
	if diff := deep.Equal(*sp, want); diff != nil {
		t.Error(diff)
	}
}

func TestLoad(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, f := range []struct{ name, body string }{
		{"SOC/colors.txt", venusSOC},
		{"Lua/colors.lua", asimovLua},
		{"Lua/broken.lua", "skincolors[SKINCOLOR_BAD] = { ramp = {1, 2} }"},
		{"Sprites/PLAYA1.lmp", "not text"},
	} {
		w, _ := zw.Create(f.name)
		w.Write([]byte(f.body))
	}
	zw.Close()

	a, err := filesystem.Open("colors.pk3", buf.Bytes())
	if err != nil {
		t.Fatal(err)
	}
	s, problems := Load(a)
	if len(problems) != 1 {
		t.Errorf("problems = %v, want one for broken.lua", problems)
	}
	var ids []string
	for _, sp := range s.List() {
		ids = append(ids, sp.ID)
	}
	want := []string{"SKINCOLOR_VENUS", "SKINCOLOR_UNNAMED", "SKINCOLOR_ASIMOV"}
	if diff := deep.Equal(ids, want); diff != nil {
		t.Error(diff)
	}
}

func TestClassify(t *testing.T) {
	tests := map[string]textKind{
		"SOC/skin.txt":   socText,
		"soc/sub/x":      socText,
		"colors.soc":     socText,
		"SOC_COLR":       socText,
		"MAINCFG":        socText,
		"Lua/init.lua":   luaText,
		"scripts/a.lua":  luaText,
		"LUA_COLR":       luaText,
		"Sonic/S_SKIN":   notText,
		"Sprites/PLAYA1": notText,
	}
	for p, want := range tests {
		if got := classify(p); got != want {
			t.Errorf("classify(%q) = %v, want %v", p, got, want)
		}
	}
}
