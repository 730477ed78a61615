// SPDX-License-Identifier: Unlicense OR MIT

/*
Package geom implements the geometry behind draggable elements:
anchoring an element inside a container, progress between two
bounds and the translation that moves an element onto an anchored
position of another view.
*/
package geom

import (
	"image"

	"gioui.org/f32"
)

// View is the geometry of a laid out element.
type View interface {
	// Location is the upper left corner of the view in window
	// coordinates, including any translation applied to it.
	Location() image.Point
	// Size is the laid out size of the view.
	Size() image.Point
	// Padding is the inner spacing of the view.
	Padding() Padding
}

// Offset is a horizontal and vertical distance in pixels that
// shortens the translation towards a target.
type Offset struct {
	Horizontal, Vertical int
}

// Target returns the translation that moves self onto the anchored
// position inside target. translation is the translation currently
// applied to self; Location of self must include it rounded to whole
// pixels. The result depends only on the untranslated position of self,
// so it is the same for every translation. It is shortened by off on
// each axis, towards zero.
//
// The geometry of both views is read on every call; callers must not
// cache the result across layout changes.
func Target(self, target View, a Anchor, off Offset, translation f32.Point) f32.Point {
	from := self.Location().Sub(translation.Round())
	to := target.Location()
	rel := a.OffsetPadded(target.Size(), self.Size(), target.Padding())
	x := float32(to.X - from.X + rel.X)
	y := float32(to.Y - from.Y + rel.Y)
	return f32.Point{
		X: x - sign(x)*float32(off.Horizontal),
		Y: y - sign(y)*float32(off.Vertical),
	}
}

func sign(v float32) float32 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
