// SPDX-License-Identifier: GPL-2.0-or-later

package blua

import (
	"errors"
	"strconv"
	"testing"

	"github.com/go-test/deep"
	"github.com/google/go-cmp/cmp"
)

type spray struct {
	Name       string
	Ramp       [16]uint8
	InvColor   string
	InvShade   uint8
	ChatColor  string
	Accessible bool
}

func TestUnmarshalSkincolor(t *testing.T) {
	const input = `
{
name = "Asimov",
ramp = {0,1,3,5,6,8,9,134,135,148,149,137,26,27,28,29},
invcolor = SKINCOLOR_PERIWINKLE,
invshade = 7,
chatcolor = V_BLUEMAP,
accessible = true
}
`
	var got spray
	if err := Unmarshal(input, &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	want := spray{
		Name:       "Asimov",
		Ramp:       [16]uint8{0, 1, 3, 5, 6, 8, 9, 134, 135, 148, 149, 137, 26, 27, 28, 29},
		InvColor:   "SKINCOLOR_PERIWINKLE",
		InvShade:   7,
		ChatColor:  "V_BLUEMAP",
		Accessible: true,
	}
	if diff := deep.Equal(got, want); diff != nil {
		t.Error(diff)
	}
}

func TestScalars(t *testing.T) {
	var u uint8
	if err := Unmarshal("101", &u); err != nil || u != 101 {
		t.Errorf("Unmarshal(101) = %v, %v, want 101", u, err)
	}

	var s string
	if err := Unmarshal(`
		"\"Super\" \nLuigi!"
	`, &s); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if want := "\"Super\" \nLuigi!"; s != want {
		t.Errorf("s = %q, want %q", s, want)
	}

	if err := Unmarshal(`'it\'s'`, &s); err != nil || s != "it's" {
		t.Errorf("single quoted = %q, %v", s, err)
	}

	var b bool
	if err := Unmarshal("FALSE", &b); err != nil || b {
		t.Errorf("Unmarshal(FALSE) = %v, %v", b, err)
	}
}

func TestComments(t *testing.T) {
	const input = `-- a skincolor
{
	--[[ the name
	     spans lines ]]
	name = "Test", -- trailing
	ramp = {1, 2, --[[ inline ]] 3},
}`
	var got struct {
		Name string
		Ramp []int
	}
	if err := Unmarshal(input, &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got.Name != "Test" {
		t.Errorf("Name = %q, want Test", got.Name)
	}
	if diff := cmp.Diff([]int{1, 2, 3}, got.Ramp); diff != "" {
		t.Errorf("Ramp mismatch (-want +got):\n%s", diff)
	}
}

func TestNestedAny(t *testing.T) {
	var got any
	if err := Unmarshal(`{a = {1, {2}}, b = "x,}", [ "c" ] = true}`, &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	want := map[string]any{
		"a": []any{uint64(1), []any{uint64(2)}},
		"b": "x,}",
		"c": true,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestErrors(t *testing.T) {
	var r [16]uint8
	var lerr *LengthError
	if err := Unmarshal("{1,2,3}", &r); !errors.As(err, &lerr) || lerr.Got != 3 {
		t.Errorf("short ramp err = %v, want LengthError", err)
	}

	var u uint8
	var terr *TypeError
	if err := Unmarshal("300", &u); !errors.As(err, &terr) {
		t.Errorf("overflow err = %v, want TypeError", err)
	}

	var perr *Error
	if err := Unmarshal("{1, 2", &r); !errors.As(err, &perr) || perr.Kind != EOF {
		t.Errorf("unterminated err = %v, want EOF", err)
	}
	if err := Unmarshal("{1 2}", &r); !errors.As(err, &perr) || perr.Kind != Unexpected {
		t.Errorf("missing comma err = %v, want Unexpected", err)
	}
	if err := Unmarshal("99999999999999999999999", &u); !errors.As(err, &perr) || !errors.Is(err, strconv.ErrRange) {
		t.Errorf("huge integer err = %v, want ParseInt", err)
	}
}

func TestFindAssignments(t *testing.T) {
	const script = `
freeslot("SKINCOLOR_ASIMOV", "SKINCOLOR_BROKEN")

-- skincolors[SKINCOLOR_COMMENTED] = {name = "no"}
skincolors[SKINCOLOR_ASIMOV] = {
	name = "Asimov",
	ramp = {0,1,3,5,6,8,9,134,135,148,149,137,26,27,28,29},
	accessible = true
}
local x = skincolors[SKINCOLOR_ASIMOV].ramp
myskincolors[SKINCOLOR_OTHER] = {name = "no"}
skincolors["SKINCOLOR_QUOTED"] = { name = "Quoted" }
skincolors[SKINCOLOR_BROKEN] = {name = "never closed"
`
	got := FindAssignments(script, "skincolors")
	if len(got) != 2 {
		t.Fatalf("found %d assignments, want 2: %v", len(got), got)
	}
	if got[0].Key != "SKINCOLOR_ASIMOV" || got[1].Key != "SKINCOLOR_QUOTED" {
		t.Errorf("keys = %q, %q", got[0].Key, got[1].Key)
	}

	var s spray
	if err := got[0].Decode(&s); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if s.Name != "Asimov" || s.Ramp[15] != 29 || !s.Accessible {
		t.Errorf("decoded = %+v", s)
	}
}
