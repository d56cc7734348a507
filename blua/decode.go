// SPDX-License-Identifier: GPL-2.0-or-later

package blua

import (
	"fmt"
	"reflect"
	"strings"
)

// TypeError reports a literal that does not fit its Go target.
type TypeError struct {
	Path string
	Kind Kind
	Type reflect.Type
}

func (e *TypeError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("blua: cannot decode %v into %v", e.Kind, e.Type)
	}
	return fmt.Sprintf("blua: cannot decode %v into %v at %s", e.Kind, e.Type, e.Path)
}

// LengthError is returned when a table does not have exactly as many
// positional entries as the target array.
type LengthError struct {
	Path      string
	Got, Want int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("blua: %s has %d entries, want %d", e.Path, e.Got, e.Want)
}

// Unmarshal parses the literal at the start of src and stores it in the
// value pointed to by v.
//
// Tables fill structs by key, matched case-insensitively against the `blua`
// tag or the field name; unknown keys are ignored. Arrays and slices take the
// positional entries, maps take the keyed ones. An `any` target receives
// string, uint64, bool, map[string]any or []any.
func Unmarshal(src string, v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("blua: non-pointer target %T", v)
	}
	val, err := Parse(src)
	if err != nil {
		return err
	}
	return val.Decode(rv.Interface())
}

// Decode stores an already parsed value in the value pointed to by v.
func (val Value) Decode(v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("blua: non-pointer target %T", v)
	}
	return decode(val, rv.Elem(), "")
}

func decode(val Value, rv reflect.Value, path string) error {
	mismatch := func() error {
		return &TypeError{Path: path, Kind: val.Kind, Type: rv.Type()}
	}

	switch rv.Kind() {
	case reflect.Pointer:
		p := reflect.New(rv.Type().Elem())
		if err := decode(val, p.Elem(), path); err != nil {
			return err
		}
		rv.Set(p)
		return nil
	case reflect.Interface:
		if rv.NumMethod() != 0 {
			return mismatch()
		}
		rv.Set(reflect.ValueOf(val.native()))
		return nil
	}

	switch val.Kind {
	case String:
		if rv.Kind() != reflect.String {
			return mismatch()
		}
		rv.SetString(val.Str)
	case Bool:
		if rv.Kind() != reflect.Bool {
			return mismatch()
		}
		rv.SetBool(val.Bool)
	case Int:
		switch rv.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			if val.Int > 1<<63-1 || rv.OverflowInt(int64(val.Int)) {
				return &TypeError{Path: path, Kind: val.Kind, Type: rv.Type()}
			}
			rv.SetInt(int64(val.Int))
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			if rv.OverflowUint(val.Int) {
				return mismatch()
			}
			rv.SetUint(val.Int)
		case reflect.Float32, reflect.Float64:
			rv.SetFloat(float64(val.Int))
		default:
			return mismatch()
		}
	case Table:
		return decodeTable(val.Tab, rv, path, mismatch)
	default:
		return mismatch()
	}
	return nil
}

func decodeTable(t *Tab, rv reflect.Value, path string, mismatch func() error) error {
	switch rv.Kind() {
	case reflect.Struct:
		fields := structFields(rv.Type())
		for _, k := range t.Keys {
			i, ok := fields[strings.ToLower(k)]
			if !ok {
				continue
			}
			if err := decode(t.Fields[k], rv.Field(i), join(path, k)); err != nil {
				return err
			}
		}
	case reflect.Array:
		if len(t.Seq) != rv.Len() {
			return &LengthError{Path: path, Got: len(t.Seq), Want: rv.Len()}
		}
		for i, e := range t.Seq {
			if err := decode(e, rv.Index(i), fmt.Sprintf("%s[%d]", path, i)); err != nil {
				return err
			}
		}
	case reflect.Slice:
		s := reflect.MakeSlice(rv.Type(), len(t.Seq), len(t.Seq))
		for i, e := range t.Seq {
			if err := decode(e, s.Index(i), fmt.Sprintf("%s[%d]", path, i)); err != nil {
				return err
			}
		}
		rv.Set(s)
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return mismatch()
		}
		m := reflect.MakeMapWithSize(rv.Type(), len(t.Keys))
		for _, k := range t.Keys {
			e := reflect.New(rv.Type().Elem()).Elem()
			if err := decode(t.Fields[k], e, join(path, k)); err != nil {
				return err
			}
			m.SetMapIndex(reflect.ValueOf(k).Convert(rv.Type().Key()), e)
		}
		rv.Set(m)
	default:
		return mismatch()
	}
	return nil
}

func (val Value) native() any {
	switch val.Kind {
	case String:
		return val.Str
	case Int:
		return val.Int
	case Bool:
		return val.Bool
	case Table:
		if len(val.Tab.Keys) == 0 {
			s := make([]any, len(val.Tab.Seq))
			for i, e := range val.Tab.Seq {
				s[i] = e.native()
			}
			return s
		}
		m := make(map[string]any, len(val.Tab.Keys))
		for _, k := range val.Tab.Keys {
			m[k] = val.Tab.Fields[k].native()
		}
		return m
	}
	return nil
}

func structFields(t reflect.Type) map[string]int {
	fields := make(map[string]int, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		name := sf.Name
		if tag, ok := sf.Tag.Lookup("blua"); ok {
			if tag == "-" {
				continue
			}
			if tag != "" {
				name = tag
			}
		}
		fields[strings.ToLower(name)] = i
	}
	return fields
}

func join(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}
