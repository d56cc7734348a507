// SPDX-License-Identifier: GPL-2.0-or-later

// Package lump is a handle to the bytes of one archive entry.
package lump

import (
	"path"
	"strings"
)

// Source reads entries by index. Implementations must allow concurrent
// reads.
type Source interface {
	ReadIndex(i int) ([]byte, error)
}

// Lump is either an index into a Source or an owned byte slice. Copying a
// Lump is cheap and never copies entry data.
type Lump struct {
	// Path is the full entry path inside the archive, or the lump name
	// for WADs.
	Path  string
	src   Source
	index int
	data  []byte
}

func New(p string, src Source, index int) Lump {
	return Lump{Path: p, src: src, index: index}
}

// FromBytes wraps data that is already in memory.
func FromBytes(p string, data []byte) Lump {
	return Lump{Path: p, index: -1, data: data}
}

// Read returns the entry bytes. Every call goes to the source again.
func (l Lump) Read() ([]byte, error) {
	if l.src == nil {
		return l.data, nil
	}
	return l.src.ReadIndex(l.index)
}

// Base returns the file name without directory and extension.
func (l Lump) Base() string {
	b := path.Base(strings.ReplaceAll(l.Path, "\\", "/"))
	if i := strings.LastIndexByte(b, '.'); i > 0 {
		b = b[:i]
	}
	return b
}

// Dir returns the directory part of Path with a trailing slash, or "" for
// entries at the root.
func (l Lump) Dir() string {
	p := strings.ReplaceAll(l.Path, "\\", "/")
	if i := strings.LastIndexByte(p, '/'); i >= 0 {
		return p[:i+1]
	}
	return ""
}

func (l Lump) String() string {
	return l.Path
}
