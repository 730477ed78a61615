// SPDX-License-Identifier: Unlicense OR MIT

/*
Package draggable implements a button that can be dragged between its
initial position and a position anchored to a target view.

A gesture locks to the first axis it moves along past the touch slop.
On release the button settles in the opposite state if it was flung
towards it or dragged closer to it than to the state it left, and
snaps back otherwise. A tap toggles the state.

Payloads are secondary widgets that follow the drag progress of their
button. Their content is created when the button is first touched
and destroyed some time after the button returns to its initial
state.
*/
package draggable

import (
	"math"
	"sync/atomic"
	"time"

	"gioui.org/draggable/anim"
	"gioui.org/draggable/geom"
	"gioui.org/draggable/gesture"
	"gioui.org/draggable/touch"
	"gioui.org/draggable/view"
	"gioui.org/f32"
	"gioui.org/io/pointer"
	"gioui.org/unit"
)

// DefaultDuration is the length of settle animations when Button.Duration
// is zero.
const DefaultDuration = 250 * time.Millisecond

const (
	defaultSlop     = unit.Dp(8)
	defaultMinFling = unit.Dp(50)
	defaultMaxFling = unit.Dp(8000)
)

// Button is a draggable button. The zero value is a button that cannot
// be dragged; set Axis and TargetView to enable dragging.
type Button struct {
	// Node is the view moved by the button. Its Translation is the
	// drag position and its Z the interpolated elevation.
	view.Node

	// Axis restricts the directions the button can be dragged in.
	Axis Axis
	// TargetView is the view the button moves to in the Target state.
	TargetView geom.View
	// Anchor aligns the button inside TargetView.
	Anchor geom.Anchor
	// Offset shortens the translation towards TargetView.
	Offset geom.Offset

	// InitialZ and TargetZ are the elevations in the Initial and
	// Target states. The elevation is interpolated only if they
	// differ.
	InitialZ, TargetZ float32

	// Duration of settle animations. Zero means DefaultDuration.
	Duration time.Duration
	// Curve of settle animations. Nil means anim.Linear.
	Curve anim.Curve
	// Driver runs settle animations. If nil, an internal animator is
	// used. Update advances drivers that implement anim.Ticker.
	Driver anim.Driver

	// Slop is the distance a pointer must move before a press becomes
	// a drag. MinFling and MaxFling bound the release velocities, in
	// dp per second, that count as flings. Zero values select
	// defaults.
	Slop               unit.Dp
	MinFling, MaxFling unit.Dp

	// DisableClick turns taps into no-ops that only report the
	// current state again.
	DisableClick bool

	listener Listener
	payloads []*Payload

	state        State
	inTransition atomic.Bool
	direction    Axis

	initial f32.Point
	target  f32.Point

	touchStart f32.Point
	touchLast  f32.Point
	velocity   *gesture.Velocity
	dragged    bool

	animator anim.Animator
	active   anim.Handle

	metric         unit.Metric
	restorePending bool

	region    *touch.Region
	composite *touch.Composite
}

type axis uint8

const (
	axisX axis = iota
	axisY
)

// SetTarget sets the target view and anchor of b. The current
// translation becomes the initial position.
func (b *Button) SetTarget(v geom.View, a geom.Anchor) {
	b.TargetView = v
	b.Anchor = a
	b.initial = b.Translation
}

// SetListener replaces the listener of b. A non-nil listener is told
// about the current state immediately unless b is in transition.
func (b *Button) SetListener(l Listener) {
	if l != nil && !b.inTransition.Load() {
		l.EnterState(b, b.state, b.Axis, false)
	}
	b.listener = l
}

// State returns the current state. While a settle animation runs, the
// state is the one being moved to.
func (b *Button) State() State {
	return b.state
}

// Direction returns the axis the current or last gesture is locked to.
func (b *Button) Direction() Axis {
	return b.direction
}

// InTransition reports whether b has left a state without settling
// in one.
func (b *Button) InTransition() bool {
	return b.inTransition.Load()
}

// Dragging reports whether the current gesture has moved past the
// touch slop.
func (b *Button) Dragging() bool {
	return b.velocity != nil && b.dragged
}

// InitialTranslation returns the translation of the Initial state.
func (b *Button) InitialTranslation() f32.Point {
	return b.initial
}

// TargetTranslation returns the translation of the Target state as
// of the last gesture or move.
func (b *Button) TargetTranslation() f32.Point {
	return b.target
}

// AddPayload attaches p to b. Payloads follow the drag progress of b.
func (b *Button) AddPayload(p *Payload) {
	p.owner = b
	b.payloads = append(b.payloads, p)
}

// RemovePayload detaches p from b without destroying its content.
func (b *Button) RemovePayload(p *Payload) {
	for i, p2 := range b.payloads {
		if p2 == p {
			b.payloads = append(b.payloads[:i], b.payloads[i+1:]...)
			p.owner = nil
			return
		}
	}
}

// Payloads returns the payloads of b in the order they were added.
func (b *Button) Payloads() []*Payload {
	return append([]*Payload(nil), b.payloads...)
}

// ForEachPayload calls f for every payload of b.
func (b *Button) ForEachPayload(f func(p *Payload)) {
	for _, p := range b.payloads {
		f(p)
	}
}

// PermissionResponse forwards the result of a permission request to
// the content of every payload.
func (b *Button) PermissionResponse(code int, granted bool) {
	for _, p := range b.payloads {
		p.permissionResponse(code, granted)
	}
}

// MoveToState moves b to s. It does nothing if b is already settled
// in s.
func (b *Button) MoveToState(s State, animate bool) error {
	if b.TargetView == nil {
		return ErrNoTarget
	}
	if b.state == s && !b.inTransition.Load() {
		return nil
	}
	b.target = b.computeTarget()
	b.dragged = false
	if b.state == Initial {
		b.direction = b.Axis
	}
	return b.moveToState(s, animate, false)
}

// Click toggles the state of b as if it was tapped.
func (b *Button) Click() error {
	if b.DisableClick {
		b.enterState(b.state, false, false)
		return nil
	}
	if b.direction == Both {
		return ErrAmbiguousTap
	}
	if b.TargetView == nil || b.Axis == None {
		return nil
	}
	b.target = b.computeTarget()
	b.direction = b.Axis
	return b.moveToState(b.state.Not(), true, false)
}

// Event processes a pointer event. Positions must not depend on the
// translation of b.
func (b *Button) Event(e pointer.Event) error {
	if b.Axis == None || b.TargetView == nil {
		return nil
	}
	var err error
	switch e.Kind {
	case pointer.Press:
		b.press(e)
	case pointer.Drag:
		err = b.drag(e)
	case pointer.Release:
		err = b.release(e)
	case pointer.Cancel:
		err = b.cancel()
	default:
		return nil
	}
	b.touchLast = e.Position
	return err
}

// Close cancels animations and gestures, removes the extended touch
// area and destroys the content of all payloads.
func (b *Button) Close() {
	if b.active != nil {
		b.active.Cancel()
		b.active = nil
	}
	if b.velocity != nil {
		b.velocity.Release()
		b.velocity = nil
	}
	b.RestoreTouchArea()
	for _, p := range b.payloads {
		p.Close()
	}
}

func (b *Button) press(e pointer.Event) {
	b.touchStart = e.Position
	b.target = b.computeTarget()
	b.dragged = false
	if b.active != nil {
		b.active.Cancel()
		b.active = nil
	}
	b.leaveState(b.state, true)
	if b.state == Initial {
		b.direction = None
	}
	for _, p := range b.payloads {
		p.initializeView()
	}
	if b.velocity != nil {
		b.velocity.Release()
	}
	b.velocity = gesture.ObtainVelocity()
	b.velocity.Add(e)
}

func (b *Button) drag(e pointer.Event) error {
	if b.velocity == nil {
		return ErrNoGesture
	}
	b.velocity.Add(e)
	if !b.dragged {
		b.lockDirection(e.Position)
	}
	if !b.dragged {
		return nil
	}
	d := e.Position.Sub(b.touchLast)
	switch {
	case b.Axis.Horizontal() && b.direction.Horizontal():
		b.dragTo(axisX, b.Translation.X+d.X)
	case b.Axis.Vertical() && b.direction.Vertical():
		b.dragTo(axisY, b.Translation.Y+d.Y)
	}
	return nil
}

// lockDirection engages the drag once the pointer has moved past the
// slop along an axis b can move on. A gesture that starts in the
// Target state keeps the direction the button arrived by.
func (b *Button) lockDirection(pos f32.Point) {
	slop := float32(b.metric.Dp(nonZero(b.Slop, defaultSlop)))
	dx := abs(pos.X - b.touchStart.X)
	dy := abs(pos.Y - b.touchStart.Y)
	if dx > dy {
		if dx > slop && b.Axis.Horizontal() && !b.direction.Vertical() {
			if !b.direction.Horizontal() {
				b.direction = Horizontal
			}
			b.dragged = true
		}
	} else {
		if dy > slop && b.Axis.Vertical() && !b.direction.Horizontal() {
			if !b.direction.Vertical() {
				b.direction = Vertical
			}
			b.dragged = true
		}
	}
}

func (b *Button) release(e pointer.Event) error {
	v := b.velocity
	if v == nil {
		return ErrNoGesture
	}
	b.velocity = nil
	defer v.Release()
	v.Add(e)
	if !b.dragged {
		return b.Click()
	}
	b.target = b.computeTarget()
	vel := v.Estimate()
	var move bool
	switch {
	case b.Axis.Horizontal() && b.direction.Horizontal():
		move = b.shouldMove(vel.X, b.Translation.X, b.initial.X, b.target.X)
	case b.Axis.Vertical() && b.direction.Vertical():
		move = b.shouldMove(vel.Y, b.Translation.Y, b.initial.Y, b.target.Y)
	default:
		return nil
	}
	s := b.state
	if move {
		s = s.Not()
	}
	return b.moveToState(s, true, false)
}

func (b *Button) cancel() error {
	v := b.velocity
	if v == nil {
		return nil
	}
	b.velocity = nil
	v.Release()
	if !b.dragged {
		// Nothing moved; settle without animating.
		b.enterState(b.state, false, false)
		return nil
	}
	return b.moveToState(b.state, true, false)
}

// shouldMove decides whether a release at translation t with velocity
// v moves to the opposite state. A fling towards the opposite state
// always does; otherwise the button moves if it is closer to the
// opposite state than to the current one.
func (b *Button) shouldMove(v, t, initial, target float32) bool {
	dir := sign(target - initial)
	if b.state != Initial {
		dir = -dir
	}
	min := float32(b.metric.Dp(nonZero(b.MinFling, defaultMinFling)))
	max := float32(b.metric.Dp(nonZero(b.MaxFling, defaultMaxFling)))
	fling := geom.Between(min, max, abs(v)) && geom.Between(min, max, v*dir)
	closerToInitial := abs(t-initial) < abs(t-target)
	return fling || closerToInitial != (b.state == Initial)
}

// moveToState settles b in s along the locked axis. forceEnter reports
// the state to listeners even if it did not change.
func (b *Button) moveToState(s State, animate, forceEnter bool) error {
	var ax axis
	switch {
	case b.Axis.Horizontal() && b.direction.Horizontal():
		ax = axisX
	case b.Axis.Vertical() && b.direction.Vertical():
		ax = axisY
	default:
		return ErrNoDirection
	}
	from, initial, target := b.bounds(ax)
	to := initial
	if s == Target {
		to = target
	}
	if b.active != nil {
		b.active.Cancel()
		b.active = nil
	}
	cur := b.state
	changed := s != cur
	if !animate {
		b.positionUpdate(ax, initial, target, to)
		b.leaveState(cur, changed)
		b.state = s
		b.enterState(s, changed, forceEnter)
		return nil
	}
	b.leaveState(cur, changed)
	b.state = s
	finished := false
	h := b.driver().Animate(from, to, b.duration(), b.Curve,
		func(v float32) {
			b.positionUpdate(ax, initial, target, v)
		},
		func() {
			finished = true
			b.active = nil
			b.enterState(s, changed, false)
		},
	)
	// Drivers may finish before Animate returns.
	if !finished {
		b.active = h
	}
	return nil
}

// leaveState notifies listeners that b leaves s, once per transition.
func (b *Button) leaveState(s State, changed bool) {
	if !changed || !b.inTransition.CompareAndSwap(false, true) {
		return
	}
	for _, p := range b.payloads {
		p.onLeaveState(s)
	}
	if b.listener != nil {
		b.listener.LeaveState(b, s)
	}
}

// enterState notifies listeners that b settled in s if s changed, b
// was in transition or force is set. Listeners are told whether the
// state changed, regardless of force.
func (b *Button) enterState(s State, changed, force bool) {
	if wasInTransition := b.inTransition.Swap(false); !changed && !force && !wasInTransition {
		return
	}
	for _, p := range b.payloads {
		p.onEnterState(s)
	}
	if b.listener != nil {
		b.listener.EnterState(b, s, b.direction, changed)
	}
}

// dragTo applies a drag translation if it lies between the two states.
func (b *Button) dragTo(ax axis, desired float32) {
	_, initial, target := b.bounds(ax)
	if !geom.Between(initial, target, desired) {
		return
	}
	b.positionUpdate(ax, initial, target, desired)
}

func (b *Button) positionUpdate(ax axis, initial, target, v float32) {
	if ax == axisX {
		b.Translation.X = v
	} else {
		b.Translation.Y = v
	}
	f := geom.Fraction(initial, target, v)
	for _, p := range b.payloads {
		p.onDrag(f)
	}
	if b.InitialZ != b.TargetZ {
		b.Z = geom.Lerp(b.InitialZ, b.TargetZ, f)
	}
	if b.listener != nil {
		b.listener.DragProgress(b, f)
	}
}

// bounds returns the current, initial and target translations on ax.
func (b *Button) bounds(ax axis) (cur, initial, target float32) {
	if ax == axisX {
		return b.Translation.X, b.initial.X, b.target.X
	}
	return b.Translation.Y, b.initial.Y, b.target.Y
}

func (b *Button) computeTarget() f32.Point {
	if b.TargetView == nil {
		panic(ErrNoTarget)
	}
	return geom.Target(&b.Node, b.TargetView, b.Anchor, b.Offset, b.Translation)
}

func (b *Button) driver() anim.Driver {
	if b.Driver != nil {
		return b.Driver
	}
	return &b.animator
}

func (b *Button) duration() time.Duration {
	if b.Duration == 0 {
		return DefaultDuration
	}
	return b.Duration
}

func nonZero(v, def unit.Dp) unit.Dp {
	if v == 0 {
		return def
	}
	return v
}

func abs(v float32) float32 {
	return float32(math.Abs(float64(v)))
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
