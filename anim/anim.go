// SPDX-License-Identifier: Unlicense OR MIT

/*
Package anim drives value animations from a frame clock.

An Animator does not schedule frames itself. Layout code calls Tick
with the frame time and asks for another frame while Tick reports
running animations:

	if a.Tick(gtx.Now) {
		gtx.Execute(op.InvalidateCmd{})
	}
*/
package anim

import "time"

// Driver starts animations.
type Driver interface {
	// Animate interpolates from one value to another over d, calling
	// tick with every intermediate value and done once the end value
	// has been reached. Animate returns immediately.
	Animate(from, to float32, d time.Duration, c Curve, tick func(v float32), done func()) Handle
}

// Handle controls a started animation.
type Handle interface {
	// Cancel stops the animation without calling its done function.
	Cancel()
}

// Ticker is implemented by drivers that advance on frame events.
type Ticker interface {
	// Tick advances animations to now and reports whether any
	// animation is still running.
	Tick(now time.Time) bool
}

// Animator is a Driver advanced by Tick. The zero value is ready to
// use. Animator is not safe for concurrent use.
type Animator struct {
	running []*animation
}

type animation struct {
	owner     *Animator
	from, to  float32
	duration  time.Duration
	curve     Curve
	tick      func(v float32)
	done      func()
	start     time.Time
	cancelled bool
}

// Animate implements Driver. The animation starts at the next Tick.
func (a *Animator) Animate(from, to float32, d time.Duration, c Curve, tick func(v float32), done func()) Handle {
	if c == nil {
		c = Linear
	}
	an := &animation{
		owner:    a,
		from:     from,
		to:       to,
		duration: d,
		curve:    c,
		tick:     tick,
		done:     done,
	}
	a.running = append(a.running, an)
	return an
}

// Active reports whether any animation is running.
func (a *Animator) Active() bool {
	return len(a.running) > 0
}

// Tick implements Ticker.
func (a *Animator) Tick(now time.Time) bool {
	running := a.running
	a.running = nil
	var keep []*animation
	for _, an := range running {
		if an.cancelled {
			continue
		}
		if an.start.IsZero() {
			an.start = now
		}
		t := float32(1)
		if an.duration > 0 {
			t = float32(now.Sub(an.start).Seconds() / an.duration.Seconds())
			if t > 1 {
				t = 1
			}
		}
		v := an.to
		if t < 1 {
			v = an.from + (an.to-an.from)*an.curve(t)
		}
		if an.tick != nil {
			an.tick(v)
		}
		if an.cancelled {
			continue
		}
		if t < 1 {
			keep = append(keep, an)
			continue
		}
		an.cancelled = true
		if an.done != nil {
			an.done()
		}
	}
	// Animations started by callbacks run after the surviving ones.
	a.running = append(keep, a.running...)
	return len(a.running) > 0
}

func (an *animation) Cancel() {
	an.cancelled = true
	a := an.owner
	for i, r := range a.running {
		if r == an {
			a.running = append(a.running[:i], a.running[i+1:]...)
			break
		}
	}
}
