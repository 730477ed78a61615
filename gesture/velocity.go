// SPDX-License-Identifier: Unlicense OR MIT

/*
Package gesture implements helpers for pointer gestures.

A Velocity is obtained when a gesture starts, fed with the pointer
events of that gesture and released when the gesture ends.
*/
package gesture

import (
	"sync"

	"gioui.org/draggable/internal/fling"
	"gioui.org/f32"
	"gioui.org/io/pointer"
)

// Velocity estimates the velocity of a single pointer gesture.
type Velocity struct {
	x, y fling.Extrapolation
}

var velocities = sync.Pool{
	New: func() any { return new(Velocity) },
}

// ObtainVelocity returns an empty Velocity. The Velocity must be
// released when the gesture ends.
func ObtainVelocity() *Velocity {
	return velocities.Get().(*Velocity)
}

// Release resets v and returns it to the pool. v must not be used
// afterwards.
func (v *Velocity) Release() {
	*v = Velocity{}
	velocities.Put(v)
}

// Add samples the position of e.
func (v *Velocity) Add(e pointer.Event) {
	v.x.Sample(e.Time, e.Position.X)
	v.y.Sample(e.Time, e.Position.Y)
}

// Estimate returns the velocity at the most recent sample, in pixels
// per second.
func (v *Velocity) Estimate() f32.Point {
	return f32.Point{
		X: v.x.Estimate().Velocity,
		Y: v.y.Estimate().Velocity,
	}
}

// Distance returns the distance covered by the recent samples.
func (v *Velocity) Distance() f32.Point {
	return f32.Point{
		X: v.x.Estimate().Distance,
		Y: v.y.Estimate().Distance,
	}
}
