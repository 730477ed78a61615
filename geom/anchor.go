// SPDX-License-Identifier: Unlicense OR MIT

package geom

import (
	"fmt"
	"image"
	"strings"
)

// Anchor is one of the nine positions an element can be aligned to
// inside a container.
type Anchor uint8

// Padding is the inner spacing of a container, in pixels.
type Padding struct {
	Left, Top, Right, Bottom int
}

const (
	TopLeft Anchor = iota
	Top
	TopRight
	Left
	Middle
	Right
	BottomLeft
	Bottom
	BottomRight
)

// Offset returns the upper left position that places an element of
// size elem at the anchor inside a container of size container.
//
// An element larger than its container on an axis is aligned by its
// upper left corner for start anchors and overflows towards the start
// for end and middle anchors.
func (a Anchor) Offset(container, elem image.Point) image.Point {
	var p image.Point
	switch a.column() {
	case 1:
		p.X = (container.X - elem.X) / 2
	case 2:
		p.X = container.X - elem.X
	}
	switch a.row() {
	case 1:
		p.Y = (container.Y - elem.Y) / 2
	case 2:
		p.Y = container.Y - elem.Y
	}
	return p
}

// OffsetPadded is like Offset but keeps the element inside the
// container's padding. Middle positions are shifted by half the
// difference between the opposing paddings.
func (a Anchor) OffsetPadded(container, elem image.Point, pad Padding) image.Point {
	p := a.Offset(container, elem)
	switch a.column() {
	case 0:
		p.X += pad.Left
	case 1:
		p.X += (pad.Left - pad.Right) / 2
	case 2:
		p.X -= pad.Right
	}
	switch a.row() {
	case 0:
		p.Y += pad.Top
	case 1:
		p.Y += (pad.Top - pad.Bottom) / 2
	case 2:
		p.Y -= pad.Bottom
	}
	return p
}

// column is 0 for left, 1 for middle and 2 for right anchors.
func (a Anchor) column() int {
	if a > BottomRight {
		panic("invalid Anchor")
	}
	return int(a) % 3
}

// row is 0 for top, 1 for middle and 2 for bottom anchors.
func (a Anchor) row() int {
	if a > BottomRight {
		panic("invalid Anchor")
	}
	return int(a) / 3
}

var anchorNames = [...]string{
	TopLeft:     "top-left",
	Top:         "top",
	TopRight:    "top-right",
	Left:        "left",
	Middle:      "middle",
	Right:       "right",
	BottomLeft:  "bottom-left",
	Bottom:      "bottom",
	BottomRight: "bottom-right",
}

func (a Anchor) String() string {
	if int(a) >= len(anchorNames) {
		panic("invalid Anchor")
	}
	return anchorNames[a]
}

// ParseAnchor returns the anchor named s. Names are case insensitive
// and accept either hyphens or underscores as separators.
func ParseAnchor(s string) (Anchor, error) {
	n := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), "_", "-"))
	switch n {
	case "center", "centre":
		return Middle, nil
	}
	for i, name := range anchorNames {
		if name == n {
			return Anchor(i), nil
		}
	}
	return 0, fmt.Errorf("geom: unknown anchor %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (a Anchor) MarshalText() ([]byte, error) {
	if int(a) >= len(anchorNames) {
		return nil, fmt.Errorf("geom: invalid anchor %d", a)
	}
	return []byte(anchorNames[a]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Anchor) UnmarshalText(b []byte) error {
	v, err := ParseAnchor(string(b))
	if err != nil {
		return err
	}
	*a = v
	return nil
}
