// SPDX-License-Identifier: GPL-2.0-or-later

// Package registry keeps the skins, sprays and palette of every loaded
// archive and renders from them.
package registry

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	perrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"spingen/filesystem"
	"spingen/image"
	"spingen/name"
	"spingen/palette"
	"spingen/skin"
	"spingen/spr2"
	"spingen/spray"
)

var ErrNoPalette = errors.New("no palette loaded")

// IsNotFound reports whether err names a missing skin, spray or sprite.
func IsNotFound(err error) bool {
	return spr2.IsNotFound(err)
}

func notFound(what, id string) error {
	return fmt.Errorf("%s %q: %w", what, id, spr2.ErrNotFound)
}

type Registry struct {
	log logrus.FieldLogger

	mu         sync.RWMutex
	pal        palette.Palette
	hasPalette bool
	sprays     *spray.Set
	skins      []*skin.Skin

	thumbnail, thumbnailFallback name.Name
	swatchSize                   int
}

// New starts with the base game sprays and no skins.
func New(log logrus.FieldLogger) *Registry {
	return &Registry{
		log:               log,
		sprays:            spray.NewBaseSet(),
		thumbnail:         name.Must("STINA2"),
		thumbnailFallback: name.Must("STINA2A8"),
		swatchSize:        8,
	}
}

// SetThumbnail changes the sprite drawn by Thumbnail and the one tried when
// it does not exist.
func (r *Registry) SetThumbnail(sprite, fallback name.Name) {
	r.thumbnail, r.thumbnailFallback = sprite, fallback
}

func (r *Registry) SetSwatchSize(n int) {
	r.swatchSize = n
}

func (r *Registry) SetPalette(p palette.Palette) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pal, r.hasPalette = p, true
}

// LoadPaletteFile reads a PLAYPAL lump stored as a file.
func (r *Registry) LoadPaletteFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	p, err := palette.FromPLAYPAL(data)
	if err != nil {
		return perrors.Wrapf(err, "palette %s", path)
	}
	r.SetPalette(p)
	return nil
}

func (r *Registry) Palette() (palette.Palette, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if !r.hasPalette {
		return palette.Palette{}, ErrNoPalette
	}
	return r.pal, nil
}

func (r *Registry) LoadFile(path string) ([]*skin.Skin, error) {
	a, err := filesystem.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return r.load(a), nil
}

func (r *Registry) LoadBytes(name string, data []byte) ([]*skin.Skin, error) {
	a, err := filesystem.Open(name, data)
	if err != nil {
		return nil, err
	}
	return r.load(a), nil
}

// load never fails as a whole. Broken sprays, skins and sprites are logged
// and skipped.
func (r *Registry) load(a filesystem.Archive) []*skin.Skin {
	log := r.log.WithField("archive", a.Name())

	pal, hasPal := findPalette(a, log)

	sprays, problems := spray.Load(a)
	for _, err := range problems {
		log.WithError(err).Warn("skipping spray definitions")
	}

	skins, problems := skin.Load(a)
	for _, err := range problems {
		log.WithError(err).Warn("skipping")
	}

	r.mu.Lock()
	if hasPal {
		r.pal, r.hasPalette = pal, true
	}
	r.sprays.Merge(sprays)
	r.skins = append(r.skins, skins...)
	r.mu.Unlock()

	for _, s := range skins {
		log.WithFields(logrus.Fields{
			"skin":    s.Name,
			"id":      s.ID,
			"sprites": s.Sprites.Len(),
		}).Info("loaded skin")
	}
	if sprays.Len() > 0 {
		log.WithField("sprays", sprays.Len()).Info("loaded sprays")
	}
	return skins
}

func findPalette(a filesystem.Archive, log logrus.FieldLogger) (palette.Palette, bool) {
	for i := range a.Entries() {
		l := a.Lump(i)
		if !strings.EqualFold(l.Base(), "PLAYPAL") {
			continue
		}
		data, err := l.Read()
		if err == nil {
			var p palette.Palette
			if p, err = palette.FromPLAYPAL(data); err == nil {
				return p, true
			}
		}
		log.WithError(err).Warn("ignoring PLAYPAL")
	}
	return palette.Palette{}, false
}

func (r *Registry) Skins() []*skin.Skin {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]*skin.Skin(nil), r.skins...)
}

// Skin finds a skin by ID or, failing that, by name. The first loaded skin
// of a name wins.
func (r *Registry) Skin(id string) (*skin.Skin, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, s := range r.skins {
		if s.ID.String() == id {
			return s, nil
		}
	}
	for _, s := range r.skins {
		if strings.EqualFold(s.Name, id) {
			return s, nil
		}
	}
	return nil, notFound("skin", id)
}

func (r *Registry) Sprays() []*spray.Spray {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sprays.List()
}

func (r *Registry) Spray(id string) (*spray.Spray, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if sp, ok := r.sprays.Find(id); ok {
		return sp, nil
	}
	return nil, notFound("spray", id)
}

// SprayFor picks the spray to draw s with. An explicit id has to exist.
// Without one the skin's prefcolor is used, then the first spray.
func (r *Registry) SprayFor(s *skin.Skin, id string) (*spray.Spray, error) {
	if id != "" {
		return r.Spray(id)
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	if sp, ok := r.sprays.Find(s.PrefColor); ok {
		return sp, nil
	}
	list := r.sprays.List()
	if len(list) == 0 {
		return nil, notFound("spray", s.PrefColor)
	}
	r.log.WithFields(logrus.Fields{
		"skin":      s.Name,
		"prefcolor": s.PrefColor,
		"spray":     list[0].ID,
	}).Warn("prefcolor not found, using first spray")
	return list[0], nil
}

func (r *Registry) encoder(skinID, sprayID string) (*skin.Skin, *image.Encoder, error) {
	s, err := r.Skin(skinID)
	if err != nil {
		return nil, nil, err
	}
	sp, err := r.SprayFor(s, sprayID)
	if err != nil {
		return nil, nil, err
	}
	pal, err := r.Palette()
	if err != nil {
		return nil, nil, err
	}
	e, err := image.NewSprayEncoder(pal, sp, int(s.StartColor))
	if err != nil {
		return nil, nil, err
	}
	return s, e, nil
}

// Animation writes all rotations of one frame of a skin's sprite.
func (r *Registry) Animation(w io.Writer, skinID, sprayID string, sprite name.Name, frame byte, opts image.Options) (image.Format, error) {
	s, e, err := r.encoder(skinID, sprayID)
	if err != nil {
		return 0, err
	}
	return e.Animation(w, s.Sprites, sprite, frame, opts)
}

// Still writes one physical sprite as a PNG.
func (r *Registry) Still(w io.Writer, skinID, sprayID string, n name.Name, opts image.Options) error {
	s, e, err := r.encoder(skinID, sprayID)
	if err != nil {
		return err
	}
	return e.Sprite(w, s.Sprites, n, opts)
}

// Thumbnail draws the thumbnail sprite, or its fallback if the skin lacks
// it. Any other failure is returned as is.
func (r *Registry) Thumbnail(w io.Writer, skinID, sprayID string) error {
	s, e, err := r.encoder(skinID, sprayID)
	if err != nil {
		return err
	}
	opts := image.DefaultOptions()
	err = e.Sprite(w, s.Sprites, r.thumbnail, opts)
	if IsNotFound(err) {
		err = e.Sprite(w, s.Sprites, r.thumbnailFallback, opts)
	}
	return err
}

// SprayImage writes a preview of a spray's ramp.
func (r *Registry) SprayImage(w io.Writer, sprayID string) error {
	sp, err := r.Spray(sprayID)
	if err != nil {
		return err
	}
	pal, err := r.Palette()
	if err != nil {
		return err
	}
	return image.Swatch(w, &pal, sp, r.swatchSize)
}
