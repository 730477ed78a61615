// SPDX-License-Identifier: Unlicense OR MIT

/*
Package touch extends the touch areas of widgets beyond their bounds.

A Composite covers a parent area and forwards pointer gestures that
start inside any of its registered delegates. A Region is a delegate
that grows the hit area of a Target by a set of insets.

Event positions are forwarded unchanged, so a Composite must be laid
out in the coordinate space its targets expect.
*/
package touch

import (
	"image"
	"sort"

	"gioui.org/io/event"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op/clip"
)

// Target receives the gestures of a Region.
type Target interface {
	// HitBounds is the current area of the target.
	HitBounds() image.Rectangle
	// Elevation orders overlapping targets. The highest wins.
	Elevation() float32
	// Touch handles e and reports whether it was consumed.
	Touch(e pointer.Event) bool
}

// Delegate is a hit region registered on a Composite.
type Delegate interface {
	Elevation() float32
	// Dispatch handles e and reports whether it was consumed.
	Dispatch(e pointer.Event) bool
}

// Insets extend an area on each side, in pixels.
type Insets struct {
	Left, Top, Right, Bottom int
}

// Uniform returns Insets of v on all sides.
func Uniform(v int) Insets {
	return Insets{Left: v, Top: v, Right: v, Bottom: v}
}

// Region is a Delegate that extends the hit area of its target.
type Region struct {
	target   Target
	insets   Insets
	targeted bool
}

// Composite dispatches pointer events to the delegate that accepted
// the press of the current gesture.
type Composite struct {
	delegates []Delegate
	active    Delegate
}

// NewRegion returns a Region covering t extended by in.
func NewRegion(t Target, in Insets) *Region {
	return &Region{target: t, insets: in}
}

// Target returns the target of r.
func (r *Region) Target() Target {
	return r.target
}

// SetInsets updates the extension of the hit area.
func (r *Region) SetInsets(in Insets) {
	r.insets = in
}

// Bounds returns the current hit area of r.
func (r *Region) Bounds() image.Rectangle {
	b := r.target.HitBounds()
	b.Min.X -= r.insets.Left
	b.Min.Y -= r.insets.Top
	b.Max.X += r.insets.Right
	b.Max.Y += r.insets.Bottom
	return b
}

// Elevation implements Delegate.
func (r *Region) Elevation() float32 {
	return r.target.Elevation()
}

// Dispatch implements Delegate. A press inside the hit area that the
// target accepts targets the region until the gesture is released or
// cancelled, regardless of where the pointer moves in between.
func (r *Region) Dispatch(e pointer.Event) bool {
	send := false
	switch e.Kind {
	case pointer.Press:
		if e.Position.Round().In(r.Bounds()) {
			r.targeted = true
			send = true
		}
	case pointer.Drag, pointer.Move:
		send = r.targeted
	case pointer.Release:
		send = r.targeted
		r.targeted = false
	case pointer.Cancel:
		send = r.targeted
		r.targeted = false
	}
	if !send {
		return false
	}
	handled := r.target.Touch(e)
	if e.Kind == pointer.Press && !handled {
		r.targeted = false
	}
	return handled
}

// Register adds d to the composite. Registering a delegate twice has
// no effect.
func (c *Composite) Register(d Delegate) {
	for _, d2 := range c.delegates {
		if d2 == d {
			return
		}
	}
	c.delegates = append(c.delegates, d)
}

// Unregister removes d from the composite.
func (c *Composite) Unregister(d Delegate) {
	for i, d2 := range c.delegates {
		if d2 == d {
			c.delegates = append(c.delegates[:i], c.delegates[i+1:]...)
			break
		}
	}
	if c.active == d {
		c.active = nil
	}
}

// Len returns the number of registered delegates.
func (c *Composite) Len() int {
	return len(c.delegates)
}

// Dispatch offers a press to the delegates from the highest to the
// lowest elevation and stops at the first that consumes it. The rest
// of the gesture goes to that delegate only.
func (c *Composite) Dispatch(e pointer.Event) bool {
	if e.Kind == pointer.Press {
		c.active = nil
		sort.SliceStable(c.delegates, func(i, j int) bool {
			return c.delegates[i].Elevation() > c.delegates[j].Elevation()
		})
		for _, d := range c.delegates {
			if d.Dispatch(e) {
				c.active = d
				return true
			}
		}
		return false
	}
	d := c.active
	if d == nil {
		return false
	}
	if e.Kind == pointer.Release || e.Kind == pointer.Cancel {
		c.active = nil
	}
	return d.Dispatch(e)
}

// Layout covers the maximum constraints with an input area and
// dispatches its pointer events.
func (c *Composite) Layout(gtx layout.Context) layout.Dimensions {
	for {
		ev, ok := gtx.Event(pointer.Filter{
			Target: c,
			Kinds:  pointer.Press | pointer.Drag | pointer.Release | pointer.Cancel,
		})
		if !ok {
			break
		}
		e, ok := ev.(pointer.Event)
		if !ok {
			continue
		}
		if c.Dispatch(e) && e.Kind == pointer.Press {
			gtx.Execute(pointer.GrabCmd{Tag: c, ID: e.PointerID})
		}
	}
	size := gtx.Constraints.Max
	defer clip.Rect{Max: size}.Push(gtx.Ops).Pop()
	event.Op(gtx.Ops, c)
	return layout.Dimensions{Size: size}
}
