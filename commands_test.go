// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"bytes"
	stdimage "image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"

	"spingen/name"
	"spingen/palette"
	"spingen/patch"
	"spingen/registry"
)

func TestWriteIndex(t *testing.T) {
	log, _ := test.NewNullLogger()
	reg := registry.New(log)
	skins, err := reg.LoadBytes("amy.pk3", testArchive(t))
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	writeIndex(&buf, skins)
	out := buf.String()
	for _, want := range []string{
		"lumps: [SPINA0 STINA1 STINA2A8 STINB0]",
		"STINA: 1=STINA1 2=STINA2A8 8=STINA2A8 mirrored",
		"STINB: 0=STINB0",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("index output lacks %q:\n%s", want, out)
		}
	}
}

func TestImportPictures(t *testing.T) {
	var pal palette.Palette
	for i := range pal {
		pal[i] = color.RGBA{uint8(i), uint8(i), uint8(i), 0xff}
	}
	img := stdimage.NewNRGBA(stdimage.Rect(0, 0, 2, 1))
	img.SetNRGBA(0, 0, color.NRGBA{30, 30, 30, 0xff})
	path := filepath.Join(t.TempDir(), "STINa1.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	f.Close()

	lumps, err := importPictures([]string{path}, &pal, true)
	if err != nil {
		t.Fatal(err)
	}
	if len(lumps) != 2 {
		t.Fatalf("got %d lumps, want 2", len(lumps))
	}
	if lumps[0].Name != "PLAYPAL" || !bytes.Equal(lumps[0].Data, pal.Bytes()) {
		t.Errorf("first lump = %s with %d bytes, want PLAYPAL", lumps[0].Name, len(lumps[0].Data))
	}
	if lumps[1].Name != name.Name("STINa1") {
		t.Errorf("picture lump = %q, want STINa1", lumps[1].Name)
	}
	p, err := patch.Decode(lumps[1].Data)
	if err != nil {
		t.Fatal(err)
	}
	if idx, ok := p.At(0, 0); !ok || idx != 30 {
		t.Errorf("At(0, 0) = %d, %v, want 30", idx, ok)
	}
	if _, ok := p.At(1, 0); ok {
		t.Error("transparent pixel imported as opaque")
	}

	lumps, err = importPictures([]string{path}, &pal, false)
	if err != nil || len(lumps) != 1 {
		t.Errorf("without palette: %d lumps, %v", len(lumps), err)
	}
}
