// SPDX-License-Identifier: GPL-2.0-or-later

package soc

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"spingen/value"
)

var ignorePos = cmpopts.IgnoreFields(Event{}, "Pos", "ValuePos")

// events drains p.
func events(p *Parser) []Event {
	var evs []Event
	for {
		ev, ok := p.Next()
		if !ok {
			return evs
		}
		evs = append(evs, ev)
	}
}

func TestEvents(t *testing.T) {
	const input = `
FREESLOT
SKINCOLOR_VENUS # this is a comment
# this is a comment on a newline

SKINCOLOR SKINCOLOR_VENUS
NAME = Venus
RAMP = 171,171,172,172,173,173,174,174,174,175,175,175,139,139,29,29
INVCOLOR = SKINCOLOR_SLATE
INVSHADE = 14
ACCESSIBLE = TRUE`

	got := events(NewParser(input))
	want := []Event{
		{Kind: Freeslot, Name: "SKINCOLOR_VENUS"},
		{Kind: Header, Name: "SKINCOLOR", Value: "SKINCOLOR_VENUS", HasValue: true},
		{Kind: KeyValue, Name: "NAME", Value: "Venus", HasValue: true},
		{Kind: KeyValue, Name: "RAMP", Value: "171,171,172,172,173,173,174,174,174,175,175,175,139,139,29,29", HasValue: true},
		{Kind: KeyValue, Name: "INVCOLOR", Value: "SKINCOLOR_SLATE", HasValue: true},
		{Kind: KeyValue, Name: "INVSHADE", Value: "14", HasValue: true},
		{Kind: KeyValue, Name: "ACCESSIBLE", Value: "TRUE", HasValue: true},
	}
	if diff := cmp.Diff(want, got, ignorePos); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
}

func TestShortScenario(t *testing.T) {
	const input = "FREESLOT\nSKINCOLOR_VENUS # comment\nSKINCOLOR SKINCOLOR_VENUS\nNAME = Venus\nRAMP = 1,2,3\n"
	got := events(NewParser(input))
	want := []Event{
		{Kind: Freeslot, Name: "SKINCOLOR_VENUS"},
		{Kind: Header, Name: "SKINCOLOR", Value: "SKINCOLOR_VENUS", HasValue: true},
		{Kind: KeyValue, Name: "NAME", Value: "Venus", HasValue: true},
		{Kind: KeyValue, Name: "RAMP", Value: "1,2,3", HasValue: true},
	}
	if diff := cmp.Diff(want, got, ignorePos); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
}

func TestBlankValue(t *testing.T) {
	got := events(NewParser("KEY =\nOTHER = 1"))
	want := []Event{
		{Kind: KeyValue, Name: "KEY", Value: "", HasValue: true},
		{Kind: KeyValue, Name: "OTHER", Value: "1", HasValue: true},
	}
	if diff := cmp.Diff(want, got, ignorePos); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
}

func TestTrailingComment(t *testing.T) {
	got := events(NewParser("NAME = Venus # the goddess\r\nINVSHADE = 14\r\n"))
	want := []Event{
		{Kind: KeyValue, Name: "NAME", Value: "Venus", HasValue: true},
		{Kind: KeyValue, Name: "INVSHADE", Value: "14", HasValue: true},
	}
	if diff := cmp.Diff(want, got, ignorePos); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
}

func TestFreeslotMode(t *testing.T) {
	const input = "freeslot\nSKINCOLOR_A\n\n# still a list\nSKINCOLOR_B\nSKINCOLOR SKINCOLOR_A\nLEVEL\n"
	got := events(NewParser(input))
	want := []Event{
		{Kind: Freeslot, Name: "SKINCOLOR_A"},
		{Kind: Freeslot, Name: "SKINCOLOR_B"},
		{Kind: Header, Name: "SKINCOLOR", Value: "SKINCOLOR_A", HasValue: true},
		{Kind: Header, Name: "LEVEL"},
	}
	if diff := cmp.Diff(want, got, ignorePos); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
}

func TestPositions(t *testing.T) {
	p := NewParser("\n  NAME = Venus\n")
	ev, ok := p.Next()
	if !ok {
		t.Fatal("no event")
	}
	if ev.Pos != (Position{2, 3}) {
		t.Errorf("Pos = %v, want 2:3", ev.Pos)
	}
	if ev.ValuePos != (Position{2, 10}) {
		t.Errorf("ValuePos = %v, want 2:10", ev.ValuePos)
	}
}

func TestCloneRestores(t *testing.T) {
	p := NewParser("FREESLOT\nSKINCOLOR_A\nSKINCOLOR_B\n")
	if _, ok := p.Next(); !ok {
		t.Fatal("no event")
	}
	c := p.Clone()
	a, _ := p.Next()
	b, _ := c.Next()
	if a.Kind != Freeslot || b.Kind != Freeslot || a.Name != b.Name {
		t.Errorf("clone diverged: %v vs %v", a, b)
	}
}

type skincolor struct {
	Name       string    `soc:"name"`
	Ramp       [16]uint8 `soc:"ramp"`
	InvShade   uint8     `soc:"invshade"`
	Accessible bool
}

func TestDecodeBlock(t *testing.T) {
	const input = `SKINCOLOR SKINCOLOR_A
NAME = Alpha
RAMP = 0,1,2,3,4,5,6,7,8,9,10,11,12,13,14,15
UNKNOWN = whatever
ACCESSIBLE = yes
SKINCOLOR SKINCOLOR_B
NAME = Beta
`
	p := NewParser(input)
	if ev, _ := p.Next(); ev.Kind != Header || ev.Value != "SKINCOLOR_A" {
		t.Fatalf("first event = %v", ev)
	}
	var a skincolor
	if err := p.Decode(&a); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	want := skincolor{
		Name:       "Alpha",
		Ramp:       [16]uint8{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15},
		Accessible: true,
	}
	if diff := cmp.Diff(want, a); diff != "" {
		t.Errorf("decoded mismatch (-want +got):\n%s", diff)
	}

	ev, ok := p.Next()
	if !ok || ev.Kind != Header || ev.Value != "SKINCOLOR_B" {
		t.Fatalf("block end was consumed, next event = %v", ev)
	}
	var b skincolor
	if err := p.Decode(&b); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if b.Name != "Beta" {
		t.Errorf("b.Name = %q", b.Name)
	}
}

type define struct {
	Name       string `soc:"name,required"`
	StartColor uint8  `soc:"startcolor"`
}

func TestDecodeAllMissingValue(t *testing.T) {
	var d define
	err := NewParser("NAME = sonic\nKEY\n").DecodeAll(&d)
	if !errors.Is(err, ErrMissingValue) {
		t.Fatalf("err = %v, want ErrMissingValue", err)
	}
	var serr *Error
	if !errors.As(err, &serr) {
		t.Fatalf("err = %T", err)
	}
	if serr.Pos != (Position{2, 4}) {
		t.Errorf("Pos = %v, want 2:4", serr.Pos)
	}
}

func TestDecodeAllBlankIsNotMissing(t *testing.T) {
	var d define
	if err := NewParser("NAME =\n").DecodeAll(&d); err != nil {
		t.Fatalf("DecodeAll: %v", err)
	}
	if d.Name != "" {
		t.Errorf("Name = %q", d.Name)
	}
}

func TestDecodeValueError(t *testing.T) {
	var d define
	err := NewParser("NAME = sonic\nSTARTCOLOR = abc\n").DecodeAll(&d)
	var serr *Error
	if !errors.As(err, &serr) {
		t.Fatalf("err = %v, want *Error", err)
	}
	if serr.Pos != (Position{2, 14}) {
		t.Errorf("Pos = %v, want 2:14", serr.Pos)
	}
	var verr *value.Error
	if !errors.As(err, &verr) || verr.Kind != value.ParseInt {
		t.Errorf("err = %v, want a value.ParseInt error", err)
	}
}

func TestDecodeRequired(t *testing.T) {
	var d define
	err := NewParser("STARTCOLOR = 1\n").DecodeAll(&d)
	if !errors.Is(err, ErrMissingField) {
		t.Errorf("err = %v, want ErrMissingField", err)
	}
}
