// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"text/tabwriter"

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"spingen/filesystem"
	"spingen/image"
	"spingen/name"
	"spingen/palette"
	"spingen/patch"
	"spingen/server"
	"spingen/skin"
	"spingen/wad"
)

func listCommand() *cli.Command {
	return &cli.Command{
		Name:      "list",
		Usage:     "list the skins and sprays of archives",
		ArgsUsage: "<archive>...",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "sprays", Usage: "list sprays instead of skins"},
		},
		Action: func(c *cli.Context) error {
			e, err := setup(c)
			if err != nil {
				return err
			}
			if err := e.load(c); err != nil {
				return err
			}
			tw := tabwriter.NewWriter(c.App.Writer, 0, 4, 2, ' ', 0)
			if c.Bool("sprays") {
				fmt.Fprintln(tw, "ID\tNAME\tRAMP")
				for _, sp := range e.reg.Sprays() {
					fmt.Fprintf(tw, "%s\t%s\t%v\n", sp.ID, sp.Name, sp.Ramp)
				}
				return tw.Flush()
			}
			fmt.Fprintln(tw, "ID\tNAME\tREALNAME\tCLASS\tPREFCOLOR\tSPRITES\tARCHIVE")
			for _, s := range e.reg.Skins() {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%d\t%s\n",
					s.ID, s.Name, s.DisplayName(), s.Class(), s.PrefColor, s.Sprites.Len(), s.Archive)
			}
			return tw.Flush()
		},
	}
}

func skinFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "skin", Usage: "skin name or id", Required: true},
		&cli.StringFlag{Name: "spray", Usage: "spray name or id, default is the skin's prefcolor"},
	}
}

func renderCommand() *cli.Command {
	flags := append(skinFlags(),
		&cli.StringFlag{Name: "sprite", Usage: "4 letter sprite identifier", Value: "STIN"},
		&cli.StringFlag{Name: "frame", Usage: "frame letter", Value: "A"},
		&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "output file without extension"},
	)
	return &cli.Command{
		Name:      "render",
		Usage:     "render all rotations of a sprite frame",
		ArgsUsage: "<archive>...",
		Flags:     append(flags, renderFlags()...),
		Action: func(c *cli.Context) error {
			e, err := setup(c)
			if err != nil {
				return err
			}
			if err := e.load(c); err != nil {
				return err
			}
			sprite, err := name.Parse(c.String("sprite"))
			if err != nil {
				return err
			}
			frame := c.String("frame")
			if len(frame) != 1 {
				return cli.Exit("frame must be one letter", 2)
			}
			var buf bytes.Buffer
			f, err := e.reg.Animation(&buf, c.String("skin"), c.String("spray"), sprite, frame[0], e.options(c))
			if err != nil {
				return err
			}
			out := c.String("out")
			if out == "" {
				out = fmt.Sprintf("%s-%s%s", c.String("skin"), sprite, frame)
			}
			return writeFile(out+"."+f.String(), buf.Bytes())
		},
	}
}

func thumbnailCommand() *cli.Command {
	return &cli.Command{
		Name:      "thumbnail",
		Usage:     "write the thumbnail of a skin",
		ArgsUsage: "<archive>...",
		Flags: append(skinFlags(),
			&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "output file"}),
		Action: func(c *cli.Context) error {
			e, err := setup(c)
			if err != nil {
				return err
			}
			if err := e.load(c); err != nil {
				return err
			}
			var buf bytes.Buffer
			if err := e.reg.Thumbnail(&buf, c.String("skin"), c.String("spray")); err != nil {
				return err
			}
			out := c.String("out")
			if out == "" {
				out = c.String("skin") + ".png"
			}
			return writeFile(out, buf.Bytes())
		},
	}
}

func inspectCommand() *cli.Command {
	return &cli.Command{
		Name:      "inspect",
		Usage:     "show the entries and sprite index of an archive",
		ArgsUsage: "<archive>",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "dump", Usage: "dump the loaded skins in full"},
		},
		Action: func(c *cli.Context) error {
			e, err := setup(c)
			if err != nil {
				return err
			}
			if c.NArg() != 1 {
				return cli.Exit("inspect takes one archive", 2)
			}
			path := c.Args().First()
			a, err := filesystem.ReadFile(path)
			if err != nil {
				return err
			}
			w := c.App.Writer
			fmt.Fprintf(w, "%s: %v, %d entries\n", a.Name(), a.Kind(), len(a.Entries()))
			skins, err := e.reg.LoadFile(path)
			if err != nil {
				return err
			}
			writeIndex(w, skins)
			if c.Bool("dump") {
				spew.Fdump(w, skins)
			}
			return nil
		},
	}
}

// writeIndex lists the lumps of every skin and how each frame resolves.
func writeIndex(w io.Writer, skins []*skin.Skin) {
	for _, s := range skins {
		fmt.Fprintf(w, "skin %s (%s) dir %q\n", s.Name, s.ID, s.Dir)
		fmt.Fprintf(w, "  lumps: %v\n", s.Sprites.Names())
		for _, sprite := range s.Sprites.Sprites() {
			for _, f := range s.Sprites.Frames(sprite) {
				fmt.Fprintf(w, "  %s%c:", sprite, f)
				for _, a := range s.Sprites.Angles(sprite, f) {
					m := ""
					if a.Mirror {
						m = " mirrored"
					}
					fmt.Fprintf(w, " %d=%s%s", a.Angle, a.Name, m)
				}
				fmt.Fprintln(w)
			}
		}
	}
}

func importCommand() *cli.Command {
	return &cli.Command{
		Name:      "import",
		Usage:     "convert PNG, GIF, BMP or TGA pictures into patch lumps of a PWAD",
		ArgsUsage: "<picture>...",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "PWAD to write", Required: true},
			&cli.StringSliceFlag{Name: "archive", Usage: "archive to take PLAYPAL from"},
			&cli.BoolFlag{Name: "with-palette", Usage: "store the palette as PLAYPAL in the PWAD"},
		},
		Action: func(c *cli.Context) error {
			e, err := setup(c)
			if err != nil {
				return err
			}
			for _, path := range c.StringSlice("archive") {
				if _, err := e.reg.LoadFile(path); err != nil {
					return err
				}
			}
			pal, err := e.reg.Palette()
			if err != nil {
				return err
			}
			lumps, err := importPictures(c.Args().Slice(), &pal, c.Bool("with-palette"))
			if err != nil {
				return err
			}
			var buf bytes.Buffer
			if err := wad.Write(&buf, lumps); err != nil {
				return err
			}
			e.log.WithField("lumps", len(lumps)).Infof("writing %s", c.String("out"))
			return writeFile(c.String("out"), buf.Bytes())
		},
	}
}

// importPictures converts each picture into a patch lump named after the
// file. With withPalette the palette leads as a PLAYPAL lump.
func importPictures(paths []string, pal *palette.Palette, withPalette bool) ([]wad.Lump, error) {
	var lumps []wad.Lump
	if withPalette {
		lumps = append(lumps, wad.Lump{Name: name.Must("PLAYPAL"), Data: pal.Bytes()})
	}
	for _, path := range paths {
		l, err := importPicture(path, pal)
		if err != nil {
			return nil, err
		}
		lumps = append(lumps, l)
	}
	return lumps, nil
}

func importPicture(path string, pal *palette.Palette) (wad.Lump, error) {
	n, err := name.Parse(filesystem.StripExt(filepath.Base(path)))
	if err != nil {
		return wad.Lump{}, err
	}
	f, err := os.Open(path)
	if err != nil {
		return wad.Lump{}, err
	}
	defer f.Close()
	img, err := image.Decode(f, path)
	if err != nil {
		return wad.Lump{}, errors.Wrapf(err, "decoding %s", path)
	}
	data, err := patch.Encode(image.ToPatch(img, pal))
	if err != nil {
		return wad.Lump{}, errors.Wrapf(err, "encoding %s", path)
	}
	return wad.Lump{Name: n, Data: data}, nil
}

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:      "serve",
		Usage:     "serve skin renders over HTTP",
		ArgsUsage: "<archive>...",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "address", Usage: "listen address, default from config"},
		},
		Action: func(c *cli.Context) error {
			e, err := setup(c)
			if err != nil {
				return err
			}
			if err := e.load(c); err != nil {
				return err
			}
			addr := e.cfg.Server.Address
			if c.IsSet("address") {
				addr = c.String("address")
			}
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()
			s := server.New(e.reg, e.log, e.options(c), e.cfg.Server.CacheTTL, e.cfg.Server.CacheCleanup)
			return s.ListenAndServe(ctx, addr)
		},
	}
}

func writeFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, "writing %s", path)
	}
	return nil
}
