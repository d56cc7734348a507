// SPDX-License-Identifier: GPL-2.0-or-later

// Package blua reads the literal subset of BLua, the scripting language
// mods use to declare skincolors at runtime:
//
//	skincolors[SKINCOLOR_ASIMOV] = {
//		name = "Asimov",
//		ramp = {0,1,3,5,6,8,9,134,135,148,149,137,26,27,28,29},
//		accessible = true
//	}
//
// Only strings, unsigned integers, booleans, bare constants and tables are
// understood. Nothing is evaluated.
package blua

import (
	"fmt"
	"strconv"
	"strings"
)

type Kind int

const (
	String Kind = iota + 1
	Int
	Bool
	Table
)

func (k Kind) String() string {
	switch k {
	case String:
		return "string"
	case Int:
		return "integer"
	case Bool:
		return "boolean"
	case Table:
		return "table"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Value is one parsed literal. Bare constants like SKINCOLOR_PERIWINKLE are
// read as strings.
type Value struct {
	Kind Kind
	Str  string
	Int  uint64
	Bool bool
	Tab  *Tab
}

// Tab is a table literal. Keyed entries go to Fields, positional entries to
// Seq, in source order.
type Tab struct {
	Fields map[string]Value
	Keys   []string
	Seq    []Value
}

func (t *Tab) set(k string, v Value) {
	if _, ok := t.Fields[k]; !ok {
		t.Keys = append(t.Keys, k)
	}
	t.Fields[k] = v
}

type ErrorKind int

const (
	EOF ErrorKind = iota + 1
	InvalidLiteral
	ParseInt
	Unexpected
)

// Error is a parse failure at a byte offset of the input.
type Error struct {
	Kind   ErrorKind
	Offset int
	Err    error
}

func (e *Error) Error() string {
	switch e.Kind {
	case EOF:
		return fmt.Sprintf("blua: end-of-file reached at %d", e.Offset)
	case ParseInt:
		return fmt.Sprintf("blua: bad integer at %d: %v", e.Offset, e.Err)
	case Unexpected:
		return fmt.Sprintf("blua: unexpected character at %d: %v", e.Offset, e.Err)
	}
	return fmt.Sprintf("blua: invalid literal at %d", e.Offset)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Parse reads one literal from the start of src. Anything after it is
// ignored.
func Parse(src string) (Value, error) {
	p := &parser{src: src}
	return p.value()
}

type parser struct {
	src string
	off int
}

func (p *parser) rest() string {
	return p.src[p.off:]
}

func (p *parser) skip() {
	p.off += scanSpace(p.rest())
}

func (p *parser) value() (Value, error) {
	p.skip()
	s := p.rest()
	if len(s) == 0 {
		return Value{}, &Error{Kind: EOF, Offset: p.off}
	}
	switch c := s[0]; {
	case c == '"' || c == '\'':
		str, n, err := scanString(s)
		if err != nil {
			return Value{}, &Error{Kind: EOF, Offset: p.off}
		}
		p.off += n
		return Value{Kind: String, Str: str}, nil
	case isDigit(c):
		n := scanWhile(s, isDigit)
		i, err := strconv.ParseUint(s[:n], 10, 64)
		if err != nil {
			return Value{}, &Error{Kind: ParseInt, Offset: p.off, Err: err}
		}
		p.off += n
		return Value{Kind: Int, Int: i}, nil
	case c == '{':
		p.off++
		t, err := p.table()
		if err != nil {
			return Value{}, err
		}
		return Value{Kind: Table, Tab: t}, nil
	case isIdent(c):
		n := scanWhile(s, isIdent)
		p.off += n
		switch w := s[:n]; {
		case strings.EqualFold(w, "true"):
			return Value{Kind: Bool, Bool: true}, nil
		case strings.EqualFold(w, "false"):
			return Value{Kind: Bool}, nil
		default:
			return Value{Kind: String, Str: w}, nil
		}
	}
	return Value{}, &Error{Kind: InvalidLiteral, Offset: p.off}
}

// table reads entries up to and including the closing brace.
func (p *parser) table() (*Tab, error) {
	t := &Tab{Fields: map[string]Value{}}
	for {
		p.skip()
		s := p.rest()
		if len(s) == 0 {
			return nil, &Error{Kind: EOF, Offset: p.off}
		}
		if s[0] == '}' {
			p.off++
			return t, nil
		}

		key, ok, err := p.key()
		if err != nil {
			return nil, err
		}
		v, err := p.value()
		if err != nil {
			return nil, err
		}
		if ok {
			t.set(key, v)
		} else {
			t.Seq = append(t.Seq, v)
		}

		p.skip()
		s = p.rest()
		switch {
		case len(s) == 0:
			return nil, &Error{Kind: EOF, Offset: p.off}
		case s[0] == ',' || s[0] == ';':
			p.off++
		case s[0] == '}':
		default:
			return nil, &Error{Kind: Unexpected, Offset: p.off,
				Err: fmt.Errorf("got %q, want ',' or '}'", s[0])}
		}
	}
}

// key consumes `name =` or `[key] =` if present. Positional entries leave
// the input untouched.
func (p *parser) key() (string, bool, error) {
	s := p.rest()
	var key string
	var n int
	switch {
	case isIdent(s[0]) && !isDigit(s[0]):
		n = scanWhile(s, isIdent)
		key = s[:n]
	case s[0] == '[':
		end := strings.IndexByte(s, ']')
		if end < 0 {
			return "", false, &Error{Kind: EOF, Offset: p.off}
		}
		key = unquote(strings.TrimSpace(s[1:end]))
		n = end + 1
	default:
		return "", false, nil
	}
	m := n + scanSpace(s[n:])
	if m < len(s) && s[m] == '=' && (m+1 == len(s) || s[m+1] != '=') {
		p.off += m + 1
		return key, true, nil
	}
	return "", false, nil
}

func unquote(s string) string {
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return s
}

// scanString reads a quoted string at the start of s and returns it
// unescaped together with the number of bytes consumed. \n is a newline,
// any other escaped character stands for itself.
func scanString(s string) (string, int, error) {
	q := s[0]
	var b strings.Builder
	for i := 1; i < len(s); i++ {
		switch c := s[i]; c {
		case q:
			return b.String(), i + 1, nil
		case '\\':
			if i+1 >= len(s) {
				return "", 0, fmt.Errorf("unterminated string")
			}
			i++
			if s[i] == 'n' {
				b.WriteByte('\n')
			} else {
				b.WriteByte(s[i])
			}
		default:
			b.WriteByte(c)
		}
	}
	return "", 0, fmt.Errorf("unterminated string")
}

// scanSpace skips whitespace, -- line comments and --[[ ]] block comments.
func scanSpace(s string) int {
	i := 0
	for i < len(s) {
		i += scanWhile(s[i:], isSpace)
		r := s[i:]
		switch {
		case strings.HasPrefix(r, "--[["):
			end := strings.Index(r[4:], "]]")
			if end < 0 {
				return len(s)
			}
			i += 4 + end + 2
		case strings.HasPrefix(r, "--"):
			i += scanWhile(r, func(b byte) bool { return b != '\n' })
		default:
			return i
		}
	}
	return i
}

func scanWhile(s string, cond func(byte) bool) int {
	i := 0
	for i < len(s) && cond(s[i]) {
		i++
	}
	return i
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isIdent(b byte) bool {
	return b == '_' || isDigit(b) || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}
