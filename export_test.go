// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sirupsen/logrus/hooks/test"

	"spingen/image"
	"spingen/patch"
	"spingen/registry"
)

func testArchive(t *testing.T, extra ...string) []byte {
	t.Helper()
	enc := func(vs ...int16) string {
		p := patch.New(len(vs), 1, 0, 0)
		copy(p.Data, vs)
		data, err := patch.Encode(p)
		if err != nil {
			t.Fatal(err)
		}
		return string(data)
	}
	files := []struct{ name, body string }{
		{"PLAYPAL", string(make([]byte, 768))},
		{"Amy/S_SKIN", "name = amy\nrealname = Amy\nprefcolor = Rosy\n"},
		{"Amy/STINA1", enc(1)},
		{"Amy/STINA2A8", enc(2, 3)},
		{"Amy/STINB0", enc(4)},
		{"Amy/SPINA0", enc(5)},
	}
	for i := 0; i+1 < len(extra); i += 2 {
		files = append(files, struct{ name, body string }{extra[i], extra[i+1]})
	}
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, f := range files {
		w, err := zw.Create(f.name)
		if err != nil {
			t.Fatal(err)
		}
		w.Write([]byte(f.body))
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestExport(t *testing.T) {
	log, _ := test.NewNullLogger()
	reg := registry.New(log)
	skins, err := reg.LoadBytes("amy.pk3", testArchive(t))
	if err != nil {
		t.Fatal(err)
	}
	dir := t.TempDir()
	n, err := export(reg, skins, "", dir, 2, image.DefaultOptions(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if n != 3 {
		t.Errorf("exported %d files, want 3", n)
	}
	entries, err := os.ReadDir(filepath.Join(dir, "amy"))
	if err != nil {
		t.Fatal(err)
	}
	var got []string
	for _, e := range entries {
		got = append(got, e.Name())
	}
	sort.Strings(got)
	want := []string{"SPINA.png", "STINA.gif", "STINB.png"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("files mismatch (-want +got):\n%s", diff)
	}
}

func TestExportUnknownSpray(t *testing.T) {
	log, _ := test.NewNullLogger()
	reg := registry.New(log)
	skins, err := reg.LoadBytes("amy.pk3", testArchive(t))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := export(reg, skins, "nope", t.TempDir(), 1, image.DefaultOptions(), nil); !registry.IsNotFound(err) {
		t.Errorf("err = %v, want not found", err)
	}
}

func TestExportSkinDirectories(t *testing.T) {
	log, _ := test.NewNullLogger()
	reg := registry.New(log)
	skins, err := reg.LoadBytes("amy.pk3", testArchive(t,
		"Evil/S_SKIN", "name = ../escaped\nrealname = Evil\nprefcolor = Red\n",
		"Evil/STINA0", string(mustEncode(t)),
		"Amy2/S_SKIN", "name = AMY\nrealname = Amy\nprefcolor = Red\n",
		"Amy2/STINA0", string(mustEncode(t)),
	))
	if err != nil {
		t.Fatal(err)
	}
	if len(skins) != 3 {
		t.Fatalf("loaded %d skins, want 3", len(skins))
	}
	root := t.TempDir()
	out := filepath.Join(root, "out")
	if _, err := export(reg, skins, "", out, 1, image.DefaultOptions(), nil); err != nil {
		t.Fatal(err)
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "out" {
		t.Errorf("files outside the output directory: %v", entries)
	}

	dirs := skinDirs(skins)
	want := map[string]string{
		"amy":        "amy",
		"../escaped": skins[1].ID.String(),
		"AMY":        "AMY-" + skins[2].ID.String(),
	}
	for _, s := range skins {
		if got := dirs[s]; got != want[s.Name] {
			t.Errorf("directory of %q = %q, want %q", s.Name, got, want[s.Name])
		}
		if _, err := os.Stat(filepath.Join(out, dirs[s])); err != nil {
			t.Errorf("skin %q: %v", s.Name, err)
		}
	}
}

func mustEncode(t *testing.T) []byte {
	t.Helper()
	data, err := patch.Encode(patch.New(1, 1, 0, 0))
	if err != nil {
		t.Fatal(err)
	}
	return data
}
