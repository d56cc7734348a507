// SPDX-License-Identifier: GPL-2.0-or-later

package skin

import (
	"fmt"
	"strings"

	"spingen/math"
	"spingen/soc"
	"spingen/spray"
)

const (
	DefaultStartColor = 96
	DefaultStat       = 5
)

// Define is the content of an S_SKIN lump.
type Define struct {
	Name       string `soc:"name,required"`
	RealName   string `soc:"realname,required"`
	StartColor uint8  `soc:"startcolor"`
	PrefColor  string `soc:"prefcolor,required"`
	KartSpeed  int    `soc:"kartspeed"`
	KartWeight int    `soc:"kartweight"`
}

// ReadDefine parses an S_SKIN lump. Every line has to be a key/value pair;
// keys other than the ones in Define are ignored.
func ReadDefine(text string) (*Define, error) {
	d := &Define{
		StartColor: DefaultStartColor,
		KartSpeed:  DefaultStat,
		KartWeight: DefaultStat,
	}
	if err := soc.NewParser(text).DecodeAll(d); err != nil {
		return nil, err
	}
	if int(d.StartColor) > spray.MaxStartColor {
		return nil, fmt.Errorf("%w: %d", spray.ErrStartColor, d.StartColor)
	}
	return d, nil
}

// DisplayName is the real name with underscores shown as spaces.
func (d *Define) DisplayName() string {
	return strings.ReplaceAll(d.RealName, "_", " ")
}

const classes = "ABCDEFGHI"

// Class returns the speed/weight class label, "Class A" to "Class I".
func (d *Define) Class() string {
	x := math.Clamp(0, (d.KartSpeed-1)/3, 2)
	y := math.Clamp(0, (d.KartWeight-1)/3, 2)
	return "Class " + string(classes[y*3+x])
}
