// SPDX-License-Identifier: GPL-2.0-or-later

// Package value parses the scalar and comma separated field values shared by
// SOC lumps and S_SKIN definitions.
package value

import (
	"encoding"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"unicode/utf8"
)

type ErrorKind int

const (
	InvalidLength ErrorKind = iota
	InvalidBoolean
	ParseInt
	ParseFloat
	Unsupported
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidLength:
		return "invalid length"
	case InvalidBoolean:
		return "invalid boolean"
	case ParseInt:
		return "invalid integer"
	case ParseFloat:
		return "invalid float"
	default:
		return "unsupported target"
	}
}

// Error is returned for any value that does not fit its target type. Err
// holds the strconv failure for numeric kinds.
type Error struct {
	Kind  ErrorKind
	Input string
	Err   error
}

func (e *Error) Error() string {
	switch e.Kind {
	case InvalidBoolean:
		return fmt.Sprintf("expected a bool, got %q", e.Input)
	case InvalidLength:
		if e.Err != nil {
			return fmt.Sprintf("invalid length of %q: %v", e.Input, e.Err)
		}
		return fmt.Sprintf("invalid length: %d", len(e.Input))
	}
	if e.Err != nil {
		return fmt.Sprintf("%v %q: %v", e.Kind, e.Input, e.Err)
	}
	return fmt.Sprintf("%v %q", e.Kind, e.Input)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Char is a single unicode scalar value. Unmarshal parses targets of this
// type with ParseChar instead of as a number.
type Char rune

// ParseBool accepts TRUE, YES and 1 or FALSE, NO and 0, ignoring case.
func ParseBool(s string) (bool, error) {
	s = strings.TrimSpace(s)
	switch {
	case strings.EqualFold(s, "TRUE"), strings.EqualFold(s, "YES"), s == "1":
		return true, nil
	case strings.EqualFold(s, "FALSE"), strings.EqualFold(s, "NO"), s == "0":
		return false, nil
	}
	return false, &Error{Kind: InvalidBoolean, Input: s}
}

// ParseChar requires exactly one unicode scalar value.
func ParseChar(s string) (rune, error) {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) != 1 {
		return 0, &Error{Kind: InvalidLength, Input: s}
	}
	r, _ := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return 0, &Error{Kind: InvalidLength, Input: s}
	}
	return r, nil
}

// Seq walks the elements of a comma separated list. An empty list has no
// elements.
type Seq struct {
	rest string
}

func NewSeq(s string) *Seq {
	return &Seq{strings.TrimSpace(s)}
}

// Next returns the next element, untrimmed, and false once the list is
// exhausted.
func (q *Seq) Next() (string, bool) {
	if len(q.rest) == 0 {
		return "", false
	}
	if i := strings.IndexByte(q.rest, ','); i >= 0 {
		v := q.rest[:i]
		q.rest = q.rest[i+1:]
		return v, true
	}
	v := q.rest
	q.rest = ""
	return v, true
}

var (
	textUnmarshalerType = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()
	charType            = reflect.TypeOf(Char(0))
)

// Unmarshal parses s into the value pointed to by v. Strings take the
// trimmed input as is, numbers use strconv, arrays and slices split on ','
// and parse every element the same way. Pointers are allocated and filled.
// An array target needs at least as many elements as its length; extra
// elements are left unread.
func Unmarshal(s string, v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return &Error{Kind: Unsupported, Input: s, Err: fmt.Errorf("non-pointer target %T", v)}
	}
	return Set(s, rv.Elem())
}

// Set parses s into the settable value rv.
func Set(s string, rv reflect.Value) error {
	s = strings.TrimSpace(s)

	if rv.CanAddr() && rv.Addr().Type().Implements(textUnmarshalerType) {
		return rv.Addr().Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(s))
	}
	if rv.Type() == charType {
		r, err := ParseChar(s)
		if err != nil {
			return err
		}
		rv.SetInt(int64(r))
		return nil
	}

	switch rv.Kind() {
	case reflect.String:
		rv.SetString(s)
	case reflect.Bool:
		b, err := ParseBool(s)
		if err != nil {
			return err
		}
		rv.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := strconv.ParseInt(s, 10, rv.Type().Bits())
		if err != nil {
			return &Error{Kind: ParseInt, Input: s, Err: err}
		}
		rv.SetInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u, err := strconv.ParseUint(s, 10, rv.Type().Bits())
		if err != nil {
			return &Error{Kind: ParseInt, Input: s, Err: err}
		}
		rv.SetUint(u)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(s, rv.Type().Bits())
		if err != nil {
			return &Error{Kind: ParseFloat, Input: s, Err: err}
		}
		rv.SetFloat(f)
	case reflect.Pointer:
		p := reflect.New(rv.Type().Elem())
		if err := Set(s, p.Elem()); err != nil {
			return err
		}
		rv.Set(p)
	case reflect.Array:
		q := NewSeq(s)
		for i := 0; i < rv.Len(); i++ {
			e, ok := q.Next()
			if !ok {
				return &Error{Kind: InvalidLength, Input: s,
					Err: fmt.Errorf("got %d elements, want %d", i, rv.Len())}
			}
			if err := Set(e, rv.Index(i)); err != nil {
				return err
			}
		}
	case reflect.Slice:
		q := NewSeq(s)
		out := reflect.MakeSlice(rv.Type(), 0, 0)
		for {
			e, ok := q.Next()
			if !ok {
				break
			}
			ev := reflect.New(rv.Type().Elem()).Elem()
			if err := Set(e, ev); err != nil {
				return err
			}
			out = reflect.Append(out, ev)
		}
		rv.Set(out)
	default:
		return &Error{Kind: Unsupported, Input: s, Err: fmt.Errorf("target kind %v", rv.Kind())}
	}
	return nil
}
