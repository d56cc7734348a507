// SPDX-License-Identifier: GPL-2.0-or-later

// Package server renders skins over HTTP.
package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"

	"spingen/image"
	"spingen/name"
	"spingen/registry"
)

type Server struct {
	reg   *registry.Registry
	log   logrus.FieldLogger
	opts  image.Options
	cache *gocache.Cache
	mux   *http.ServeMux
}

// rendered is a cached response body.
type rendered struct {
	contentType string
	body        []byte
}

// New serves reg. Rendered images are kept for ttl; opts are the defaults
// query parameters override.
func New(reg *registry.Registry, log logrus.FieldLogger, opts image.Options, ttl, cleanup time.Duration) *Server {
	s := &Server{
		reg:   reg,
		log:   log,
		opts:  opts,
		cache: gocache.New(ttl, cleanup),
		mux:   http.NewServeMux(),
	}
	s.mux.HandleFunc("GET /skins", s.skins)
	s.mux.HandleFunc("GET /sprays", s.sprays)
	s.mux.HandleFunc("GET /skins/{id}/thumbnail.png", s.thumbnail)
	s.mux.HandleFunc("GET /skins/{id}/sprites/{sprite}/{frame}", s.animation)
	s.mux.HandleFunc("GET /sprays/{file}", s.spray)
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// ListenAndServe runs until ctx is done, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	hs := &http.Server{Addr: addr, Handler: s}
	errc := make(chan error, 1)
	go func() {
		errc <- hs.ListenAndServe()
	}()
	s.log.WithField("address", addr).Info("serving")
	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := hs.Shutdown(sctx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

type skinJSON struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	RealName   string   `json:"realname"`
	Class      string   `json:"class"`
	PrefColor  string   `json:"prefcolor"`
	StartColor uint8    `json:"startcolor"`
	KartSpeed  int      `json:"kartspeed"`
	KartWeight int      `json:"kartweight"`
	Archive    string   `json:"archive"`
	Sprites    []string `json:"sprites"`
}

type sprayJSON struct {
	ID   string  `json:"id"`
	Name string  `json:"name"`
	Ramp []uint8 `json:"ramp"`
}

func (s *Server) skins(w http.ResponseWriter, r *http.Request) {
	list := []skinJSON{}
	for _, sk := range s.reg.Skins() {
		sprites := []string{}
		for _, n := range sk.Sprites.Sprites() {
			sprites = append(sprites, n.String())
		}
		list = append(list, skinJSON{
			ID:         sk.ID.String(),
			Name:       sk.Name,
			RealName:   sk.DisplayName(),
			Class:      sk.Class(),
			PrefColor:  sk.PrefColor,
			StartColor: sk.StartColor,
			KartSpeed:  sk.KartSpeed,
			KartWeight: sk.KartWeight,
			Archive:    sk.Archive,
			Sprites:    sprites,
		})
	}
	s.writeJSON(w, list)
}

func (s *Server) sprays(w http.ResponseWriter, r *http.Request) {
	list := []sprayJSON{}
	for _, sp := range s.reg.Sprays() {
		list = append(list, sprayJSON{ID: sp.ID, Name: sp.Name, Ramp: sp.Ramp[:]})
	}
	s.writeJSON(w, list)
}

func (s *Server) writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.WithError(err).Warn("writing response")
	}
}

func (s *Server) thumbnail(w http.ResponseWriter, r *http.Request) {
	s.cached(w, r, func(buf *bytes.Buffer) (string, error) {
		err := s.reg.Thumbnail(buf, r.PathValue("id"), r.URL.Query().Get("spray"))
		return image.PNG.ContentType(), err
	})
}

func (s *Server) animation(w http.ResponseWriter, r *http.Request) {
	sprite, err := name.Parse(r.PathValue("sprite"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	frame := strings.TrimSuffix(r.PathValue("frame"), ".gif")
	if len(frame) != 1 {
		http.Error(w, "frame must be one letter", http.StatusBadRequest)
		return
	}
	opts, err := s.options(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.cached(w, r, func(buf *bytes.Buffer) (string, error) {
		f, err := s.reg.Animation(buf, r.PathValue("id"), r.URL.Query().Get("spray"),
			sprite, frame[0], opts)
		return f.ContentType(), err
	})
}

func (s *Server) spray(w http.ResponseWriter, r *http.Request) {
	id, ok := strings.CutSuffix(r.PathValue("file"), ".png")
	if !ok {
		http.NotFound(w, r)
		return
	}
	s.cached(w, r, func(buf *bytes.Buffer) (string, error) {
		return image.PNG.ContentType(), s.reg.SprayImage(buf, id)
	})
}

// options applies the scale, mirror and delay query parameters.
func (s *Server) options(r *http.Request) (image.Options, error) {
	opts := s.opts
	q := r.URL.Query()
	if v := q.Get("scale"); v != "" {
		f, err := strconv.ParseFloat(v, 32)
		if err != nil || f <= 0 || f > 16 {
			return opts, errors.New("scale must be a number in (0, 16]")
		}
		opts.Scale = float32(f)
	}
	if v := q.Get("mirror"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return opts, errors.New("mirror must be a boolean")
		}
		opts.Mirror = b
	}
	if v := q.Get("delay"); v != "" {
		d, err := strconv.ParseUint(v, 10, 16)
		if err != nil {
			return opts, errors.New("delay must be in 1/100 s")
		}
		opts.Delay = uint16(d)
	}
	return opts, nil
}

// cached answers from the cache or renders and stores the result.
// Registry state only grows, so a key never goes stale before its ttl.
func (s *Server) cached(w http.ResponseWriter, r *http.Request, render func(*bytes.Buffer) (string, error)) {
	key := r.URL.Path + "?" + r.URL.Query().Encode()
	if v, ok := s.cache.Get(key); ok {
		s.writeRendered(w, v.(rendered))
		return
	}
	var buf bytes.Buffer
	ct, err := render(&buf)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	out := rendered{contentType: ct, body: buf.Bytes()}
	s.cache.SetDefault(key, out)
	s.writeRendered(w, out)
}

func (s *Server) writeRendered(w http.ResponseWriter, out rendered) {
	w.Header().Set("Content-Type", out.contentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(out.body)))
	if _, err := w.Write(out.body); err != nil {
		s.log.WithError(err).Warn("writing response")
	}
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case registry.IsNotFound(err):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, registry.ErrNoPalette):
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
	default:
		s.log.WithError(err).WithField("path", r.URL.Path).Error("render failed")
		http.Error(w, "render failed", http.StatusInternalServerError)
	}
}
