// SPDX-License-Identifier: GPL-2.0-or-later

// Package name implements the fixed capacity lump names shared by WAD
// directories, PK3 entries, sprites and skincolors.
package name

import (
	"bytes"
	"errors"
	"fmt"
)

// Size is the maximum length of a name in bytes.
const Size = 8

var (
	ErrTooLong     = errors.New("name too long")
	ErrInvalidChar = errors.New("name contains a non printable character")
)

// Name is a case-sensitive identifier of at most Size printable ASCII
// characters. The zero value is the empty name.
type Name string

// ParseError reports a string that cannot become a Name.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid name %q: %v", e.Input, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parse validates s and returns it as a Name.
func Parse(s string) (Name, error) {
	if len(s) > Size {
		return "", &ParseError{s, ErrTooLong}
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] > 0x7e {
			return "", &ParseError{s, ErrInvalidChar}
		}
	}
	return Name(s), nil
}

// FromBytes parses a NUL padded directory field like the 8 byte name of a
// WAD lump.
func FromBytes(b []byte) (Name, error) {
	if n := bytes.IndexByte(b, 0); n >= 0 {
		b = b[:n]
	}
	return Parse(string(b))
}

// Must is like Parse but panics on invalid input. Only use it with
// constants.
func Must(s string) Name {
	n, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return n
}

func (n Name) String() string {
	return string(n)
}

func (n Name) Len() int {
	return len(n)
}

// Prefix returns the first l characters of n, or n itself if it is
// shorter.
func (n Name) Prefix(l int) Name {
	if l >= len(n) {
		return n
	}
	return n[:l]
}
