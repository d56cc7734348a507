// SPDX-License-Identifier: GPL-2.0-or-later

// Package wad reads and writes Doom IWAD and PWAD files.
package wad

import (
	"bytes"
	"encoding/binary"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"

	"spingen/lump"
	"spingen/name"
)

var (
	magicIWAD = [4]byte{'I', 'W', 'A', 'D'}
	magicPWAD = [4]byte{'P', 'W', 'A', 'D'}
)

type header struct {
	M          [4]byte
	EntryCount int32
	DirOffset  int32
}

type entry struct {
	Offset int32
	Size   int32
	Name   [name.Size]byte
}

const (
	headerSize = 12
	entrySize  = 16
)

type Wad struct {
	name    string
	data    []byte
	entries []entry
	names   []string
}

// File is one lump of the directory, in directory order.
type File struct {
	Name string
	Size int64
}

// New reads the directory of the WAD in data. The slice is kept and must
// not be modified afterwards.
func New(fname string, data []byte) (*Wad, error) {
	buf := bytes.NewReader(data)
	h := header{}
	if err := binary.Read(buf, binary.LittleEndian, &h); err != nil {
		return nil, errors.Wrapf(err, "%s: reading header", fname)
	}
	if h.M != magicIWAD && h.M != magicPWAD {
		return nil, errors.Errorf("%s: wad file doesn't have IWAD or PWAD id", fname)
	}
	if h.EntryCount < 0 || h.DirOffset < 0 ||
		int64(h.DirOffset)+int64(h.EntryCount)*entrySize > int64(len(data)) {
		return nil, errors.Errorf("%s: directory out of range", fname)
	}
	entries := make([]entry, h.EntryCount)
	if _, err := buf.Seek(int64(h.DirOffset), io.SeekStart); err != nil {
		return nil, errors.Wrapf(err, "%s: seeking directory", fname)
	}
	if err := binary.Read(buf, binary.LittleEndian, &entries); err != nil {
		return nil, errors.Wrapf(err, "%s: reading directory", fname)
	}
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = lumpName(e.Name)
		if e.Offset < 0 || e.Size < 0 || int64(e.Offset)+int64(e.Size) > int64(len(data)) {
			return nil, errors.Errorf("%s: lump %s out of range", fname, names[i])
		}
	}
	return &Wad{name: fname, data: data, entries: entries, names: names}, nil
}

// lumpName keeps names that are not valid Names as they are, so the
// caller can report them.
func lumpName(b [name.Size]byte) string {
	n, err := name.FromBytes(b[:])
	if err != nil {
		if i := bytes.IndexByte(b[:], 0); i >= 0 {
			return string(b[:i])
		}
		return string(b[:])
	}
	return n.String()
}

func (w *Wad) String() string {
	return w.name
}

func (w *Wad) Len() int {
	return len(w.entries)
}

func (w *Wad) Files() []File {
	fs := make([]File, len(w.entries))
	for i, e := range w.entries {
		fs[i] = File{Name: w.names[i], Size: int64(e.Size)}
	}
	return fs
}

// Lookup returns the last lump with the given name, ignoring case, the way
// later lumps override earlier ones.
func (w *Wad) Lookup(n string) (int, bool) {
	for i := len(w.entries) - 1; i >= 0; i-- {
		if strings.EqualFold(w.names[i], n) {
			return i, true
		}
	}
	return 0, false
}

// ReadIndex returns lump i. The returned slice aliases the WAD data.
func (w *Wad) ReadIndex(i int) ([]byte, error) {
	if i < 0 || i >= len(w.entries) {
		return nil, os.ErrNotExist
	}
	e := w.entries[i]
	return w.data[e.Offset : e.Offset+e.Size : e.Offset+e.Size], nil
}

func (w *Wad) Lump(i int) lump.Lump {
	return lump.New(w.names[i], w, i)
}

// Lump to be written by Write.
type Lump struct {
	Name name.Name
	Data []byte
}

// Write stores lumps as a PWAD, data first and the directory last.
func Write(out io.Writer, lumps []Lump) error {
	var data bytes.Buffer
	entries := make([]entry, len(lumps))
	for i, l := range lumps {
		entries[i].Offset = int32(headerSize + data.Len())
		entries[i].Size = int32(len(l.Data))
		copy(entries[i].Name[:], l.Name)
		data.Write(l.Data)
	}
	h := header{
		M:          magicPWAD,
		EntryCount: int32(len(lumps)),
		DirOffset:  int32(headerSize + data.Len()),
	}
	if err := binary.Write(out, binary.LittleEndian, h); err != nil {
		return err
	}
	if _, err := out.Write(data.Bytes()); err != nil {
		return err
	}
	return binary.Write(out, binary.LittleEndian, entries)
}
