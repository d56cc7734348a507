// SPDX-License-Identifier: GPL-2.0-or-later

package spr2

import (
	"fmt"

	"spingen/name"
)

// Angle is a rotation digit. AllAngles is used for sprites that look the
// same from every side.
type Angle uint8

const (
	AllAngles Angle = 0
	MaxAngle  Angle = 9
)

// Rotations lists the angles of an animation in display order: forward,
// right-forward, right, right-backward, backward, left-backward, left and
// left-forward.
var Rotations = [...]Angle{1, 2, 3, 4, 5, 6, 7, 8}

// Frame is a frame letter together with its angle.
type Frame struct {
	Frame byte
	Angle Angle
}

func (f Frame) String() string {
	return fmt.Sprintf("%c%d", f.Frame, f.Angle)
}

// SpriteName is a parsed physical sprite name like PLAYA1 or PLAYA2A8.
type SpriteName struct {
	Name  name.Name
	Frame Frame
	// Mirrored is the frame drawn flipped, only set for 8 character
	// names.
	Mirrored    Frame
	HasMirrored bool
}

// Identifier returns the 4 character sprite identifier.
func (s SpriteName) Identifier() name.Name {
	return s.Name.Prefix(4)
}

type NameErrorKind int

const (
	InvalidLength NameErrorKind = iota + 1
	InvalidFrame
	InvalidAngle
)

type NameError struct {
	Name name.Name
	Kind NameErrorKind
	Char byte
}

func (e *NameError) Error() string {
	switch e.Kind {
	case InvalidFrame:
		return fmt.Sprintf("invalid sprite name %q: invalid frame %q", e.Name, e.Char)
	case InvalidAngle:
		return fmt.Sprintf("invalid sprite name %q: invalid angle %q", e.Name, e.Char)
	}
	return fmt.Sprintf("invalid sprite name %q: invalid len %d", e.Name, len(e.Name))
}

// ParseSpriteName splits n into identifier, frame and angle. Names have 6
// or 8 characters; frames are 'A' or above and angles '0' to '9'.
func ParseSpriteName(n name.Name) (SpriteName, error) {
	if len(n) != 6 && len(n) != 8 {
		return SpriteName{}, &NameError{Name: n, Kind: InvalidLength}
	}
	frame := func(b string) (Frame, error) {
		if b[0] < 'A' {
			return Frame{}, &NameError{Name: n, Kind: InvalidFrame, Char: b[0]}
		}
		if b[1] < '0' || b[1] > '0'+byte(MaxAngle) {
			return Frame{}, &NameError{Name: n, Kind: InvalidAngle, Char: b[1]}
		}
		return Frame{Frame: b[0], Angle: Angle(b[1] - '0')}, nil
	}

	s := string(n)
	f, err := frame(s[4:6])
	if err != nil {
		return SpriteName{}, err
	}
	sn := SpriteName{Name: n, Frame: f}
	if len(s) == 8 {
		m, err := frame(s[6:8])
		if err != nil {
			return SpriteName{}, err
		}
		sn.Mirrored, sn.HasMirrored = m, true
	}
	return sn, nil
}
