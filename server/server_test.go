// SPDX-License-Identifier: GPL-2.0-or-later

package server

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"spingen/image"
	"spingen/patch"
	"spingen/registry"
)

func encodePatch(t *testing.T, vs ...int16) string {
	t.Helper()
	p := patch.New(len(vs), 1, 0, 0)
	copy(p.Data, vs)
	data, err := patch.Encode(p)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func testServer(t *testing.T) *Server {
	t.Helper()
	pal := make([]byte, 768)
	for i := range pal {
		pal[i] = byte(i / 3)
	}
	files := []struct{ name, body string }{
		{"PLAYPAL", string(pal)},
		{"Sonic/S_SKIN", "name = sonic\nrealname = Sonic\nprefcolor = Blue\nkartspeed = 8\nkartweight = 2\n"},
		{"Sonic/STINA2", encodePatch(t, 1, 2)},
		{"Sonic/STINA1", encodePatch(t, 3)},
		{"Sonic/STINA3A7", encodePatch(t, 4, 5)},
		{"Sonic/STINB0", encodePatch(t, 6)},
		{"Sonic/STINa1", encodePatch(t, 7, 8, 9)},
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

	log, _ := test.NewNullLogger()
	reg := registry.New(log)
	if _, err := reg.LoadBytes("sonic.pk3", buf.Bytes()); err != nil {
		t.Fatal(err)
	}
	return New(reg, log, image.DefaultOptions(), time.Minute, time.Minute)
}

func get(t *testing.T, s *Server, url string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, url, nil))
	return rec
}

func TestSkins(t *testing.T) {
	s := testServer(t)
	rec := get(t, s, "/skins")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body)
	}
	var got []skinJSON
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 {
		t.Fatalf("skins = %v", got)
	}
	if got[0].Name != "sonic" || got[0].Class != "Class C" {
		t.Errorf("skin = %+v", got[0])
	}
	if diff := cmp.Diff([]string{"STIN"}, got[0].Sprites); diff != "" {
		t.Errorf("sprites mismatch (-want +got):\n%s", diff)
	}
}

func TestSprays(t *testing.T) {
	rec := get(t, testServer(t), "/sprays")
	var got []sprayJSON
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatal(err)
	}
	if len(got) == 0 || got[0].ID != "SKINCOLOR_NONE" || len(got[0].Ramp) != 16 {
		t.Errorf("first spray = %+v", got)
	}
}

func TestRender(t *testing.T) {
	s := testServer(t)
	tests := []struct {
		url  string
		code int
		ct   string
	}{
		{"/skins/sonic/thumbnail.png", http.StatusOK, "image/png"},
		{"/skins/sonic/thumbnail.png?spray=red", http.StatusOK, "image/png"},
		{"/skins/sonic/sprites/STIN/A.gif", http.StatusOK, "image/gif"},
		{"/skins/sonic/sprites/STIN/A.gif?scale=2&mirror=true&delay=5", http.StatusOK, "image/gif"},
		// names are case sensitive
		{"/skins/sonic/sprites/stin/A.gif", http.StatusNotFound, ""},
		// frame B only has an all angles sprite
		{"/skins/sonic/sprites/STIN/B.gif", http.StatusOK, "image/png"},
		{"/skins/sonic/sprites/STIN/C.gif", http.StatusNotFound, ""},
		{"/skins/tails/thumbnail.png", http.StatusNotFound, ""},
		{"/skins/sonic/thumbnail.png?spray=nope", http.StatusNotFound, ""},
		{"/skins/sonic/sprites/STIN/AB.gif", http.StatusBadRequest, ""},
		{"/skins/sonic/sprites/STIN/A.gif?scale=x", http.StatusBadRequest, ""},
		{"/skins/sonic/sprites/TOOLONGNAME/A.gif", http.StatusBadRequest, ""},
		{"/sprays/red.png", http.StatusOK, "image/png"},
		{"/sprays/red.jpg", http.StatusNotFound, ""},
	}
	for _, tc := range tests {
		rec := get(t, s, tc.url)
		if rec.Code != tc.code {
			t.Errorf("GET %s = %d, want %d: %s", tc.url, rec.Code, tc.code, rec.Body)
			continue
		}
		if tc.ct != "" {
			if got := rec.Header().Get("Content-Type"); got != tc.ct {
				t.Errorf("GET %s content type = %q, want %q", tc.url, got, tc.ct)
			}
		}
	}
}

func TestCache(t *testing.T) {
	s := testServer(t)
	first := get(t, s, "/skins/sonic/thumbnail.png").Body.Bytes()
	if s.cache.ItemCount() != 1 {
		t.Errorf("cache holds %d items, want 1", s.cache.ItemCount())
	}
	second := get(t, s, "/skins/sonic/thumbnail.png").Body.Bytes()
	if !bytes.Equal(first, second) {
		t.Error("cached response differs")
	}
	get(t, s, "/skins/nobody/thumbnail.png")
	if s.cache.ItemCount() != 1 {
		t.Error("error response was cached")
	}
}

func TestFramesDifferingInCase(t *testing.T) {
	s := testServer(t)
	upper := get(t, s, "/skins/sonic/sprites/STIN/A.gif")
	lower := get(t, s, "/skins/sonic/sprites/STIN/a.gif")
	if upper.Code != http.StatusOK || lower.Code != http.StatusOK {
		t.Fatalf("status = %d, %d, want 200", upper.Code, lower.Code)
	}
	if got := upper.Header().Get("Content-Type"); got != "image/gif" {
		t.Errorf("frame A content type = %q, want image/gif", got)
	}
	// frame a has a single rotation
	if got := lower.Header().Get("Content-Type"); got != "image/png" {
		t.Errorf("frame a content type = %q, want image/png", got)
	}
	if bytes.Equal(upper.Body.Bytes(), lower.Body.Bytes()) {
		t.Error("frames A and a rendered the same image")
	}
}

// brokenWriter fails every body write.
type brokenWriter struct {
	*httptest.ResponseRecorder
}

func (brokenWriter) Write([]byte) (int, error) {
	return 0, errors.New("connection reset")
}

func TestWriteFailureLogged(t *testing.T) {
	s := testServer(t)
	log, hook := test.NewNullLogger()
	s.log = log
	req := httptest.NewRequest(http.MethodGet, "/skins/sonic/thumbnail.png", nil)
	s.ServeHTTP(brokenWriter{httptest.NewRecorder()}, req)
	e := hook.LastEntry()
	if e == nil || e.Level != logrus.WarnLevel || !strings.Contains(e.Message, "writing response") {
		t.Errorf("last log entry = %v, want a write warning", e)
	}
}
