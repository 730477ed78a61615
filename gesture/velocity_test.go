// SPDX-License-Identifier: Unlicense OR MIT

package gesture

import (
	"math"
	"testing"
	"time"

	"gioui.org/f32"
	"gioui.org/io/pointer"
)

func TestVelocity(t *testing.T) {
	v := ObtainVelocity()
	defer v.Release()
	for i := 0; i <= 6; i++ {
		ts := time.Duration(i) * 10 * time.Millisecond
		v.Add(pointer.Event{
			Kind:     pointer.Drag,
			Time:     ts,
			Position: f32.Pt(float32(ts.Seconds())*600, 100-float32(ts.Seconds())*300),
		})
	}
	got := v.Estimate()
	if math.Abs(float64(got.X-600)) > 1 || math.Abs(float64(got.Y+300)) > 1 {
		t.Errorf("velocity: got %v, want (600, -300)", got)
	}
	d := v.Distance()
	if math.Abs(float64(d.X-36)) > 0.01 || math.Abs(float64(d.Y+18)) > 0.01 {
		t.Errorf("distance: got %v, want (36, -18)", d)
	}
}

func TestVelocityStopped(t *testing.T) {
	v := ObtainVelocity()
	defer v.Release()
	for i := 0; i < 5; i++ {
		v.Add(pointer.Event{Time: time.Duration(i) * 10 * time.Millisecond, Position: f32.Pt(float32(i*10), 0)})
	}
	v.Add(pointer.Event{Time: 300 * time.Millisecond, Position: f32.Pt(40, 0)})
	if got := v.Estimate(); got != (f32.Point{}) {
		t.Errorf("got %v, want zero velocity after pause", got)
	}
}

func TestVelocityRelease(t *testing.T) {
	v := ObtainVelocity()
	for i := 0; i < 5; i++ {
		v.Add(pointer.Event{Time: time.Duration(i) * time.Millisecond, Position: f32.Pt(float32(i), 0)})
	}
	v.Release()
	v = ObtainVelocity()
	defer v.Release()
	if got := v.Estimate(); got != (f32.Point{}) {
		t.Errorf("obtained velocity not empty: %v", got)
	}
}
