// SPDX-License-Identifier: GPL-2.0-or-later

// Package soc reads SOC lumps, the line oriented key/value text format used
// for skin definitions, freeslots and skincolors.
//
// There is no rigid definition of SOC, so this is a best effort reader:
//
//	FREESLOT
//	SKINCOLOR_VENUS # comment
//
//	SKINCOLOR SKINCOLOR_VENUS
//	NAME = Venus
//	RAMP = 171,171,172,172,173,173,174,174,174,175,175,175,139,139,29,29
//
// produces a Freeslot, a Header with a value and two KeyValue events.
package soc

import (
	"fmt"
	"strings"
)

type EventKind int

const (
	Freeslot EventKind = iota + 1
	Header
	KeyValue
)

func (k EventKind) String() string {
	switch k {
	case Freeslot:
		return "Freeslot"
	case Header:
		return "Header"
	case KeyValue:
		return "KeyValue"
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

// Position is a 1-based line and column. Columns count characters.
type Position struct {
	Line int
	Col  int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

// Event is one meaningful line of a SOC lump.
//
// Headers may carry an inline value (HasValue), key values always have one
// even if it is empty.
type Event struct {
	Kind     EventKind
	Name     string
	Value    string
	HasValue bool
	// Pos is the position of Name.
	Pos Position
	// ValuePos is the position of Value, or where it was expected.
	ValuePos Position
}

func (e Event) String() string {
	switch e.Kind {
	case Freeslot:
		return fmt.Sprintf("Freeslot(%q)", e.Name)
	case Header:
		if e.HasValue {
			return fmt.Sprintf("Header{%q, %q}", e.Name, e.Value)
		}
		return fmt.Sprintf("Header{%q}", e.Name)
	}
	return fmt.Sprintf("KeyValue{%q, %q}", e.Name, e.Value)
}

// Parser produces events from SOC text. A Parser is a plain value; copying
// it (or calling Clone) snapshots the whole parse state, including freeslot
// mode, for lookahead.
type Parser struct {
	input      string
	pos        Position
	inFreeslot bool
}

func NewParser(input string) *Parser {
	return &Parser{
		input: input,
		pos:   Position{1, 1},
	}
}

func (p *Parser) Clone() *Parser {
	c := *p
	return &c
}

// Pos returns the position of the next unread character.
func (p *Parser) Pos() Position {
	return p.pos
}

// Next returns the next event, or false at the end of input.
func (p *Parser) Next() (Event, bool) {
	for len(p.input) > 0 {
		if p.lineEnded() {
			continue
		}

		pos := p.pos
		n := 0
		if isIdentStart(p.input[0]) {
			n = scanWhile(p.input, isIdent)
		}
		ident := p.input[:n]
		p.advance(n)

		if p.lineEnded() {
			if strings.EqualFold(ident, "FREESLOT") {
				p.inFreeslot = true
				continue
			}
			kind := Header
			if p.inFreeslot {
				kind = Freeslot
			}
			return Event{
				Kind:     kind,
				Name:     ident,
				Pos:      pos,
				ValuePos: Position{pos.Line, pos.Col + n},
			}, true
		}

		if p.input[0] == '=' {
			p.advance(1)
			if p.lineEnded() {
				// a blank value is valid
				return Event{
					Kind:     KeyValue,
					Name:     ident,
					HasValue: true,
					Pos:      pos,
					ValuePos: Position{pos.Line, pos.Col + n + 1},
				}, true
			}
			vpos := p.pos
			return Event{
				Kind:     KeyValue,
				Name:     ident,
				Value:    p.restOfLine(),
				HasValue: true,
				Pos:      pos,
				ValuePos: vpos,
			}, true
		}

		// header with an inline value, this also ends a freeslot list
		p.inFreeslot = false
		vpos := p.pos
		return Event{
			Kind:     Header,
			Name:     ident,
			Value:    p.restOfLine(),
			HasValue: true,
			Pos:      pos,
			ValuePos: vpos,
		}, true
	}
	return Event{}, false
}

// lineEnded skips blanks on the current line. If the line ends, or a
// comment starts, the rest of the line is consumed and true is returned.
func (p *Parser) lineEnded() bool {
	n := scanWhile(p.input, func(b byte) bool {
		return b != '\n' && isSpace(b)
	})
	p.advance(n)
	if len(p.input) == 0 {
		return true
	}
	switch p.input[0] {
	case '#':
		p.skipLine()
		return true
	case '\n':
		p.advance(1)
		return true
	}
	return false
}

func (p *Parser) skipLine() {
	n := scanWhile(p.input, func(b byte) bool { return b != '\n' })
	if n < len(p.input) {
		n++
	}
	p.advance(n)
}

// restOfLine returns the trimmed text up to a comment or the end of the
// line and moves to the start of the next line.
func (p *Parser) restOfLine() string {
	n := scanWhile(p.input, func(b byte) bool { return b != '#' && b != '\n' })
	v := strings.TrimSpace(p.input[:n])
	p.advance(n)
	p.skipLine()
	return v
}

func (p *Parser) advance(n int) {
	for _, r := range p.input[:n] {
		if r == '\n' {
			p.pos.Line++
			p.pos.Col = 1
		} else {
			p.pos.Col++
		}
	}
	p.input = p.input[n:]
}

func scanWhile(s string, cond func(byte) bool) int {
	i := 0
	for i < len(s) && cond(s[i]) {
		i++
	}
	return i
}

func isIdentStart(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// isIdent also allows digits after the first character, as in
// SKINCOLOR_RED2.
func isIdent(b byte) bool {
	return isIdentStart(b) || (b >= '0' && b <= '9')
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}
