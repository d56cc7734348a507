// SPDX-License-Identifier: GPL-2.0-or-later

// Package filesystem opens skin archives of any supported kind behind one
// interface.
package filesystem

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"spingen/lump"
	"spingen/pack"
	"spingen/wad"
)

type Kind int

const (
	PK3 Kind = iota + 1
	WAD
)

func (k Kind) String() string {
	switch k {
	case PK3:
		return "pk3"
	case WAD:
		return "wad"
	}
	return "unknown"
}

var ErrUnknownFormat = errors.New("unknown archive format")

// Entry is one file of an archive. Path is the full path for PK3 and the
// lump name for WAD.
type Entry struct {
	Path string
	Size int64
}

// Archive is random access to the entries of a loaded file. All methods are
// safe for concurrent use, the backing bytes are never modified.
type Archive interface {
	lump.Source
	Name() string
	Kind() Kind
	Entries() []Entry
	Lookup(path string) (int, bool)
	Lump(i int) lump.Lump
}

type pk3 struct {
	*pack.Pack
}

func (p pk3) Name() string { return p.String() }
func (p pk3) Kind() Kind   { return PK3 }

func (p pk3) Entries() []Entry {
	fs := p.Files()
	es := make([]Entry, len(fs))
	for i, f := range fs {
		es[i] = Entry{f.Path, f.Size}
	}
	return es
}

type doomWad struct {
	*wad.Wad
}

func (w doomWad) Name() string { return w.String() }
func (w doomWad) Kind() Kind   { return WAD }

func (w doomWad) Entries() []Entry {
	fs := w.Files()
	es := make([]Entry, len(fs))
	for i, f := range fs {
		es[i] = Entry{f.Name, f.Size}
	}
	return es
}

// Open picks the backend by the extension of name, falling back to the
// magic at the start of data.
func Open(name string, data []byte) (Archive, error) {
	switch strings.ToLower(Ext(name)) {
	case ".pk3", ".zip":
		return openPK3(name, data)
	case ".wad":
		return openWad(name, data)
	}
	switch {
	case len(data) >= 4 && (string(data[:4]) == "PWAD" || string(data[:4]) == "IWAD"):
		return openWad(name, data)
	case len(data) >= 4 && string(data[:4]) == "PK\x03\x04":
		return openPK3(name, data)
	}
	return nil, errors.Wrap(ErrUnknownFormat, name)
}

func openPK3(name string, data []byte) (Archive, error) {
	p, err := pack.New(name, data)
	if err != nil {
		return nil, err
	}
	return pk3{p}, nil
}

func openWad(name string, data []byte) (Archive, error) {
	w, err := wad.New(name, data)
	if err != nil {
		return nil, err
	}
	return doomWad{w}, nil
}

// ReadFile loads the whole file at path and opens it.
func ReadFile(path string) (Archive, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading archive")
	}
	return Open(filepath.Base(path), data)
}

// TopDir returns the first path element of a directory path, or "".
func TopDir(path string) string {
	path = strings.TrimPrefix(strings.ReplaceAll(path, "\\", "/"), "/")
	if i := strings.IndexByte(path, '/'); i >= 0 {
		return path[:i]
	}
	return ""
}

func isSep(c uint8) bool {
	return c == '/' || c == '\\'
}

func Ext(path string) string {
	for i := len(path) - 1; i >= 0 && !isSep(path[i]); i-- {
		if path[i] == '.' {
			return path[i:]
		}
	}
	return ""
}

func StripExt(path string) string {
	for i := len(path) - 1; i >= 0 && !isSep(path[i]); i-- {
		if path[i] == '.' {
			return path[:i]
		}
	}
	return path
}
