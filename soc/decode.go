// SPDX-License-Identifier: GPL-2.0-or-later

package soc

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"spingen/value"
)

var (
	// ErrMissingValue is returned for a bare key where a key/value line
	// was required.
	ErrMissingValue = errors.New("expected '='")
	ErrMissingField = errors.New("missing field")
)

// Error is a decoding failure. Pos is zero for errors that do not belong
// to a line, like a missing required field.
type Error struct {
	Pos Position
	Key string
	Err error
}

func (e *Error) Error() string {
	if e.Pos.Line == 0 {
		return fmt.Sprintf("%v %q", e.Err, e.Key)
	}
	return fmt.Sprintf("@ %v %s: %v", e.Pos, e.Key, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Decode fills the struct pointed to by v from the key/value lines up to the
// next header, freeslot or the end of input. The event that ends the block
// is not consumed.
//
// Keys are lowercased and matched against the `soc` tag of each field, or
// the lowercased field name. Unknown keys are skipped. A tag option
// "required" makes a field mandatory:
//
//	type Skincolor struct {
//		Name string   `soc:"name,required"`
//		Ramp [16]uint8 `soc:"ramp"`
//	}
func (p *Parser) Decode(v any) error {
	return p.decode(v, false)
}

// DecodeAll is like Decode but treats the rest of the input as one block:
// every remaining line has to be a key/value pair, anything else is an
// ErrMissingValue at the position the '=' was expected.
func (p *Parser) DecodeAll(v any) error {
	return p.decode(v, true)
}

type field struct {
	index    int
	name     string
	required bool
}

func (p *Parser) decode(v any, all bool) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("soc: decode target must be a non-nil struct pointer, got %T", v)
	}
	rv = rv.Elem()
	fields, order := structFields(rv.Type())
	seen := make(map[string]bool, len(fields))

	for {
		saved := *p
		ev, ok := p.Next()
		if !ok {
			break
		}
		if ev.Kind != KeyValue {
			if all {
				return &Error{
					Pos: Position{ev.Pos.Line, ev.Pos.Col + len(ev.Name)},
					Key: ev.Name,
					Err: ErrMissingValue,
				}
			}
			*p = saved
			break
		}
		key := strings.ToLower(ev.Name)
		f, ok := fields[key]
		if !ok {
			continue
		}
		if err := value.Set(ev.Value, rv.Field(f.index)); err != nil {
			return &Error{Pos: ev.ValuePos, Key: ev.Name, Err: err}
		}
		seen[key] = true
	}

	for _, key := range order {
		if f := fields[key]; f.required && !seen[key] {
			return &Error{Key: f.name, Err: ErrMissingField}
		}
	}
	return nil
}

func structFields(t reflect.Type) (map[string]field, []string) {
	fields := make(map[string]field, t.NumField())
	var order []string
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		f := field{index: i, name: strings.ToLower(sf.Name)}
		if tag, ok := sf.Tag.Lookup("soc"); ok {
			if tag == "-" {
				continue
			}
			opts := strings.Split(tag, ",")
			if opts[0] != "" {
				f.name = strings.ToLower(opts[0])
			}
			for _, o := range opts[1:] {
				if o == "required" {
					f.required = true
				}
			}
		}
		fields[f.name] = f
		order = append(order, f.name)
	}
	return fields, order
}
