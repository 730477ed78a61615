// SPDX-License-Identifier: Unlicense OR MIT

package draggable

import (
	"image"
	"image/color"
	"sync"
	"sync/atomic"
	"time"

	"github.com/benbjohnson/clock"

	"gioui.org/draggable/geom"
	"gioui.org/draggable/view"
	"gioui.org/f32"
	"gioui.org/layout"
)

// Teardown delays for Payload.DestroyAfter.
const (
	// Never keeps the content of a payload alive.
	Never time.Duration = -1
	// Immediately destroys the content as soon as its button settles
	// in the Initial state.
	Immediately time.Duration = 0
)

// Phase is the lifecycle phase of a payload's content.
type Phase uint8

const (
	// Uninitialized payloads have no wrapper or content yet.
	Uninitialized Phase = iota
	// Active payloads have live content.
	Active
	// PendingDestroy payloads have live content scheduled for
	// teardown.
	PendingDestroy
	// Destroyed payloads had their content torn down. Touching the
	// button creates it again.
	Destroyed
)

// Payload is a widget that follows the drag progress of its button
// from its initial translation to a position anchored to the button's
// target view.
type Payload struct {
	// Key identifies the content in its Host.
	Key string
	// Anchor and Offset place the payload inside the target view of
	// its button.
	Anchor geom.Anchor
	Offset geom.Offset
	// StickToTarget keeps the payload at its target position
	// regardless of drag progress.
	StickToTarget bool
	// InitialTranslation is the translation at zero progress.
	InitialTranslation f32.Point
	// Width and Height size the wrapper. view.MatchParent takes the
	// size of the parent.
	Width, Height int
	// Background fills the wrapper.
	Background color.NRGBA
	// InitialZ and TargetZ are interpolated like the button's.
	InitialZ, TargetZ float32
	// DestroyAfter delays the teardown of the content after the button
	// settles in the Initial state. See Never and Immediately.
	DestroyAfter time.Duration
	// Clock schedules teardowns. Nil means the system clock.
	Clock clock.Clock
	// Invalidate, if set, is called after a scheduled teardown so the
	// window can redraw. It runs on the timer's goroutine.
	Invalidate func()

	parent  *view.Node
	host    Host
	factory Factory
	owner   *Button

	// mu guards the lifecycle against the teardown timer.
	mu      sync.Mutex
	phase   Phase
	wrapper *view.Node
	content Content
	timer   *clock.Timer
	// gen invalidates timers that fired while being cancelled.
	gen    uint64
	hostID int
}

var lastNodeID atomic.Int64

// NewPayload returns a payload laid out inside parent whose content is
// created by f and kept by h under key. The content is never destroyed
// until DestroyAfter is changed.
func NewPayload(key string, parent *view.Node, h Host, f Factory) *Payload {
	return &Payload{
		Key:          key,
		Width:        view.MatchParent,
		Height:       view.MatchParent,
		DestroyAfter: Never,
		parent:       parent,
		host:         h,
		factory:      f,
	}
}

// Phase returns the lifecycle phase of the content.
func (p *Payload) Phase() Phase {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.phase
}

// Content returns the live content, if any.
func (p *Payload) Content() Content {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.content
}

// Wrapper returns the node hosting the content, or nil if the content
// is not live.
func (p *Payload) Wrapper() *view.Node {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.wrapper
}

// HostID returns the ID of the wrapper node, or zero if the payload
// was never shown.
func (p *Payload) HostID() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.hostID
}

// Layout draws the content inside its wrapper, if the content is live.
func (p *Payload) Layout(gtx layout.Context) layout.Dimensions {
	p.mu.Lock()
	w, c := p.wrapper, p.content
	p.mu.Unlock()
	if w == nil {
		return layout.Dimensions{}
	}
	return w.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		if c == nil {
			return layout.Dimensions{Size: gtx.Constraints.Min}
		}
		return c.Layout(gtx)
	})
}

// Close destroys the content and cancels any scheduled teardown.
func (p *Payload) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cancelTeardown()
	if p.content != nil {
		p.host.Detach(p.Key)
	}
	p.content = nil
	p.wrapper = nil
	p.phase = Destroyed
}

// initializeView creates the wrapper and content if needed and cancels
// a scheduled teardown.
func (p *Payload) initializeView() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.initialize()
}

func (p *Payload) initialize() {
	p.cancelTeardown()
	if p.wrapper == nil {
		p.wrapper = p.newWrapper()
	}
	if p.content == nil {
		p.content = p.host.Attach(p.Key, p.factory)
	}
	p.phase = Active
}

func (p *Payload) newWrapper() *view.Node {
	if p.hostID == 0 {
		p.hostID = int(lastNodeID.Add(1))
	}
	size := image.Pt(p.Width, p.Height)
	psize := p.parent.Size()
	if size.X == view.MatchParent {
		size.X = psize.X
	}
	if size.Y == view.MatchParent {
		size.Y = psize.Y
	}
	return &view.Node{
		ID:          p.hostID,
		Origin:      p.parent.Location(),
		Translation: p.InitialTranslation,
		Z:           p.InitialZ,
		Fixed:       size,
		Background:  p.Background,
	}
}

// onDrag moves the wrapper to fraction of the way to its target.
func (p *Payload) onDrag(fraction float32) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.wrapper == nil || p.content == nil {
		p.initialize()
	}
	w := p.wrapper
	target := p.targetTranslation()
	if p.StickToTarget {
		w.Translation = target
	} else {
		w.Translation = f32.Point{
			X: geom.Lerp(p.InitialTranslation.X, target.X, fraction),
			Y: geom.Lerp(p.InitialTranslation.Y, target.Y, fraction),
		}
	}
	if p.InitialZ != p.TargetZ {
		w.Z = geom.Lerp(p.InitialZ, p.TargetZ, fraction)
	}
}

func (p *Payload) targetTranslation() f32.Point {
	if p.owner == nil || p.owner.TargetView == nil {
		return p.InitialTranslation
	}
	return geom.Target(p.wrapper, p.owner.TargetView, p.Anchor, p.Offset, p.wrapper.Translation)
}

func (p *Payload) onEnterState(s State) {
	switch s {
	case Target:
		if c := p.Content(); c != nil {
			c.OnEnter(p.host)
		}
	case Initial:
		p.scheduleTeardown()
	}
}

func (p *Payload) onLeaveState(s State) {
	if s != Target {
		return
	}
	if c := p.Content(); c != nil {
		c.OnLeave(p.host)
	}
}

func (p *Payload) permissionResponse(code int, granted bool) {
	if c := p.Content(); c != nil {
		c.OnPermissionResponse(code, granted)
	}
}

func (p *Payload) scheduleTeardown() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.phase != Active {
		return
	}
	switch {
	case p.DestroyAfter < 0:
	case p.DestroyAfter == 0:
		p.destroy()
	default:
		p.cancelTeardown()
		p.gen++
		gen := p.gen
		p.phase = PendingDestroy
		p.timer = p.clock().AfterFunc(p.DestroyAfter, func() {
			p.fire(gen)
		})
	}
}

func (p *Payload) fire(gen uint64) {
	p.mu.Lock()
	destroyed := false
	if p.phase == PendingDestroy && p.gen == gen {
		p.timer = nil
		destroyed = p.destroy()
	}
	p.mu.Unlock()
	if destroyed && p.Invalidate != nil {
		p.Invalidate()
	}
}

// cancelTeardown stops a scheduled teardown. A timer that already
// fired and waits for the lock is ignored by its stale generation.
func (p *Payload) cancelTeardown() {
	if p.timer != nil {
		p.timer.Stop()
		p.timer = nil
	}
	p.gen++
	if p.phase == PendingDestroy {
		p.phase = Active
	}
}

// destroy tears down the content unless the host has persisted it.
func (p *Payload) destroy() bool {
	if p.host.StateSaved() {
		p.phase = Active
		return false
	}
	if p.content != nil {
		p.host.Detach(p.Key)
	}
	p.content = nil
	p.wrapper = nil
	p.phase = Destroyed
	return true
}

// restore re-attaches the content the host kept under key.
func (p *Payload) restore(hostID int, key string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Key = key
	p.hostID = hostID
	c, ok := p.host.Lookup(key)
	if !ok {
		return
	}
	p.cancelTeardown()
	p.content = c
	if p.wrapper == nil {
		p.wrapper = p.newWrapper()
	}
	p.phase = Active
}

func (p *Payload) clock() clock.Clock {
	if p.Clock == nil {
		return clock.New()
	}
	return p.Clock
}
