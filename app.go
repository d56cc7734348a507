// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"spingen/config"
	"spingen/conlog"
	"spingen/image"
	"spingen/name"
	"spingen/registry"
)

func app() *cli.App {
	app := cli.NewApp()
	app.Name = "spingen"
	app.Usage = "render kart skins from PK3 and WAD files"
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "directory containing spingen.yaml",
			EnvVars: []string{"SPINGEN_CONFIG"},
			Value:   "./",
		},
		&cli.StringFlag{
			Name:  "palette",
			Usage: "PLAYPAL file used when no archive carries one",
		},
	}
	app.Commands = []*cli.Command{
		listCommand(),
		renderCommand(),
		thumbnailCommand(),
		exportCommand(),
		inspectCommand(),
		importCommand(),
		serveCommand(),
	}
	return app
}

// env is what every command starts from.
type env struct {
	cfg *config.Config
	log *logrus.Logger
	reg *registry.Registry
}

func setup(c *cli.Context) (*env, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, err
	}
	log, err := conlog.Init(cfg.LogLevel, cfg.LogFilePath)
	if err != nil {
		return nil, err
	}
	reg := registry.New(log)
	if cfg.Render.ThumbnailSprite != "" {
		sprite, err := name.Parse(cfg.Render.ThumbnailSprite)
		if err != nil {
			return nil, err
		}
		fallback, err := name.Parse(cfg.Render.ThumbnailFallback)
		if err != nil {
			return nil, err
		}
		reg.SetThumbnail(sprite, fallback)
	}
	reg.SetSwatchSize(cfg.Render.SwatchSize)

	pf := cfg.PaletteFile
	if c.IsSet("palette") {
		pf = c.String("palette")
	}
	if pf != "" {
		if err := reg.LoadPaletteFile(pf); err != nil {
			return nil, err
		}
	}
	return &env{cfg: cfg, log: log, reg: reg}, nil
}

// load reads every archive named on the command line.
func (e *env) load(c *cli.Context) error {
	if c.NArg() == 0 {
		return cli.Exit("no archives given", 2)
	}
	for _, path := range c.Args().Slice() {
		if _, err := e.reg.LoadFile(path); err != nil {
			return err
		}
	}
	return nil
}

// renderFlags override the configured image options.
func renderFlags() []cli.Flag {
	return []cli.Flag{
		&cli.Float64Flag{Name: "scale", Usage: "nearest neighbour upscale factor"},
		&cli.UintFlag{Name: "delay", Usage: "animation frame delay in 1/100 s"},
		&cli.BoolFlag{Name: "mirror", Usage: "flip horizontally"},
	}
}

func (e *env) options(c *cli.Context) image.Options {
	opts := image.Options{
		Scale:  e.cfg.Render.Scale,
		Delay:  e.cfg.Render.Delay,
		Mirror: e.cfg.Render.Mirror,
	}
	if c.IsSet("scale") {
		opts.Scale = float32(c.Float64("scale"))
	}
	if c.IsSet("delay") {
		opts.Delay = uint16(c.Uint("delay"))
	}
	if c.IsSet("mirror") {
		opts.Mirror = c.Bool("mirror")
	}
	return opts
}
