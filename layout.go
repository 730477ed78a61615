// SPDX-License-Identifier: Unlicense OR MIT

package draggable

import (
	"image"

	"gioui.org/draggable/anim"
	"gioui.org/draggable/touch"
	"gioui.org/io/event"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
)

// Update processes the pointer events of b, advances its settle
// animation and completes a pending restore once the target view has
// been laid out. Update panics if an event is misused, such as a tap
// on a button locked to both axes.
func (b *Button) Update(gtx layout.Context) {
	b.metric = gtx.Metric
	for {
		ev, ok := gtx.Event(pointer.Filter{
			Target: b,
			Kinds:  pointer.Press | pointer.Drag | pointer.Release | pointer.Cancel,
		})
		if !ok {
			break
		}
		e, ok := ev.(pointer.Event)
		if !ok {
			continue
		}
		wasDragging := b.Dragging()
		if err := b.Event(e); err != nil {
			panic(err)
		}
		if !wasDragging && b.Dragging() {
			// Keep the gesture from enclosing scrollables.
			gtx.Execute(pointer.GrabCmd{Tag: b, ID: e.PointerID})
		}
	}
	if b.restorePending && b.geometryReady() {
		b.restorePending = false
		b.target = b.computeTarget()
		if err := b.moveToState(b.state, false, true); err != nil {
			panic(err)
		}
	}
	running := false
	if t, ok := b.driver().(anim.Ticker); ok {
		running = t.Tick(gtx.Now)
	}
	if running || b.restorePending {
		gtx.Execute(op.InvalidateCmd{})
	}
}

// Layout updates b and draws w at its translated position. The input
// area of b follows the translation.
func (b *Button) Layout(gtx layout.Context, w layout.Widget) layout.Dimensions {
	b.Update(gtx)
	dims := b.Node.Layout(gtx, w)
	defer clip.Rect(b.Bounds()).Push(gtx.Ops).Pop()
	event.Op(gtx.Ops, b)
	return dims
}

// ExtendTouchArea grows the area that starts gestures on b by in,
// through the composite c covering the parent of b. Calling it again
// updates the insets.
func (b *Button) ExtendTouchArea(c *touch.Composite, in touch.Insets) {
	if b.region != nil && b.composite == c {
		b.region.SetInsets(in)
		return
	}
	b.RestoreTouchArea()
	b.region = touch.NewRegion(touchTarget{b}, in)
	b.composite = c
	c.Register(b.region)
}

// RestoreTouchArea removes the extension added by ExtendTouchArea.
func (b *Button) RestoreTouchArea() {
	if b.region == nil {
		return
	}
	b.composite.Unregister(b.region)
	b.region = nil
	b.composite = nil
}

func (b *Button) geometryReady() bool {
	if !b.Laid() {
		return false
	}
	if l, ok := b.TargetView.(interface{ Laid() bool }); ok {
		return l.Laid()
	}
	return true
}

// touchTarget adapts a Button to a touch.Target.
type touchTarget struct {
	b *Button
}

func (t touchTarget) HitBounds() image.Rectangle {
	return t.b.Bounds()
}

func (t touchTarget) Elevation() float32 {
	return t.b.Z
}

func (t touchTarget) Touch(e pointer.Event) bool {
	if err := t.b.Event(e); err != nil {
		panic(err)
	}
	return t.b.Axis != None && t.b.TargetView != nil
}
