// SPDX-License-Identifier: GPL-2.0-or-later

// Package pack reads PK3 archives, which are plain zip files.
package pack

import (
	"archive/zip"
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"

	"spingen/lump"
)

type Pack struct {
	name  string
	files []*zip.File
	exact map[string]int
	// lower case path to the first file spelled that way
	folded map[string]int
}

// File is one regular file of the archive.
type File struct {
	Path string
	Size int64
}

// New reads the central directory of the zip in data. The slice is kept
// and must not be modified afterwards.
func New(name string, data []byte) (*Pack, error) {
	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", name)
	}
	p := &Pack{
		name:   name,
		exact:  make(map[string]int, len(r.File)),
		folded: make(map[string]int, len(r.File)),
	}
	for _, f := range r.File {
		if strings.HasSuffix(f.Name, "/") {
			continue
		}
		if _, ok := p.exact[f.Name]; ok {
			return nil, errors.Errorf("%s: files in pack are not unique: %s", name, f.Name)
		}
		p.exact[f.Name] = len(p.files)
		key := strings.ToLower(f.Name)
		if _, ok := p.folded[key]; !ok {
			p.folded[key] = len(p.files)
		}
		p.files = append(p.files, f)
	}
	return p, nil
}

func (p *Pack) String() string {
	return p.name
}

func (p *Pack) Len() int {
	return len(p.files)
}

func (p *Pack) Files() []File {
	fs := make([]File, len(p.files))
	for i, f := range p.files {
		fs[i] = File{Path: f.Name, Size: int64(f.UncompressedSize64)}
	}
	return fs
}

// Lookup finds a file by path. An exact match wins, otherwise case is
// ignored and the first file in the archive is taken.
func (p *Pack) Lookup(path string) (int, bool) {
	path = strings.TrimPrefix(path, "/")
	if i, ok := p.exact[path]; ok {
		return i, true
	}
	i, ok := p.folded[strings.ToLower(path)]
	return i, ok
}

// ReadIndex decompresses file i. It is safe for concurrent use.
func (p *Pack) ReadIndex(i int) ([]byte, error) {
	if i < 0 || i >= len(p.files) {
		return nil, os.ErrNotExist
	}
	f := p.files[i]
	rc, err := f.Open()
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", f.Name)
	}
	defer rc.Close()
	b, err := io.ReadAll(rc)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", f.Name)
	}
	return b, nil
}

func (p *Pack) Lump(i int) lump.Lump {
	return lump.New(p.files[i].Name, p, i)
}
