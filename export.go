// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	"spingen/image"
	"spingen/name"
	"spingen/registry"
	"spingen/skin"
)

// exportJob renders one frame of one sprite.
type exportJob struct {
	skin   *skin.Skin
	sprite name.Name
	frame  byte
}

func exportCommand() *cli.Command {
	return &cli.Command{
		Name:      "export",
		Usage:     "render every sprite frame of every skin into a directory",
		ArgsUsage: "<archive>...",
		Flags: append([]cli.Flag{
			&cli.StringFlag{Name: "skin", Usage: "only export this skin"},
			&cli.StringFlag{Name: "spray", Usage: "spray name or id, default is each skin's prefcolor"},
			&cli.StringFlag{Name: "dir", Aliases: []string{"d"}, Usage: "output directory", Value: "export"},
			&cli.IntFlag{Name: "workers", Usage: "frames rendered at once, default from config"},
			&cli.BoolFlag{Name: "quiet", Aliases: []string{"q"}, Usage: "no progress bar"},
		}, renderFlags()...),
		Action: func(c *cli.Context) error {
			e, err := setup(c)
			if err != nil {
				return err
			}
			if err := e.load(c); err != nil {
				return err
			}
			skins := e.reg.Skins()
			if id := c.String("skin"); id != "" {
				s, err := e.reg.Skin(id)
				if err != nil {
					return err
				}
				skins = []*skin.Skin{s}
			}
			workers := e.cfg.Export.Workers
			if c.IsSet("workers") {
				workers = c.Int("workers")
			}
			var bar *progressbar.ProgressBar
			if !c.Bool("quiet") {
				bar = progressbar.Default(-1, "exporting")
			}
			n, err := export(e.reg, skins, c.String("spray"), c.String("dir"), workers, e.options(c), bar)
			if bar != nil {
				bar.Finish()
			}
			e.log.WithField("files", n).Info("export done")
			return err
		},
	}
}

func exportJobs(skins []*skin.Skin) []exportJob {
	var jobs []exportJob
	for _, s := range skins {
		for _, sprite := range s.Sprites.Sprites() {
			for _, f := range s.Sprites.Frames(sprite) {
				jobs = append(jobs, exportJob{s, sprite, f})
			}
		}
	}
	return jobs
}

// skinDirs picks one output directory per skin. A name that is not a
// single plain path element is replaced by the skin ID, and a name already
// taken gets the ID appended.
func skinDirs(skins []*skin.Skin) map[*skin.Skin]string {
	taken := make(map[string]bool)
	dirs := make(map[*skin.Skin]string, len(skins))
	for _, s := range skins {
		d := s.Name
		if !filepath.IsLocal(d) || strings.ContainsAny(d, `/\`) || d == "." {
			d = s.ID.String()
		}
		if taken[strings.ToLower(d)] {
			d += "-" + s.ID.String()
		}
		taken[strings.ToLower(d)] = true
		dirs[s] = d
	}
	return dirs
}

// export writes dir/<skin>/<sprite><frame>.{gif,png} for every job and
// returns the number of files written. The first failure stops it.
func export(reg *registry.Registry, skins []*skin.Skin, sprayID, dir string, workers int, opts image.Options, bar *progressbar.ProgressBar) (int, error) {
	jobs := exportJobs(skins)
	if bar != nil {
		bar.ChangeMax(len(jobs))
	}
	dirs := skinDirs(skins)
	for _, s := range skins {
		if err := os.MkdirAll(filepath.Join(dir, dirs[s]), 0755); err != nil {
			return 0, errors.Wrap(err, "creating export directory")
		}
	}
	if workers < 1 {
		workers = 1
	}

	var g errgroup.Group
	g.SetLimit(workers)
	done := make([]bool, len(jobs))
	for i, j := range jobs {
		g.Go(func() error {
			var buf bytes.Buffer
			f, err := reg.Animation(&buf, j.skin.ID.String(), sprayID, j.sprite, j.frame, opts)
			if err != nil {
				return errors.Wrapf(err, "%s %s%c", j.skin.Name, j.sprite, j.frame)
			}
			path := filepath.Join(dir, dirs[j.skin], fmt.Sprintf("%s%c.%s", j.sprite, j.frame, f))
			if err := writeFile(path, buf.Bytes()); err != nil {
				return err
			}
			done[i] = true
			if bar != nil {
				bar.Add(1)
			}
			return nil
		})
	}
	err := g.Wait()
	n := 0
	for _, d := range done {
		if d {
			n++
		}
	}
	return n, err
}
