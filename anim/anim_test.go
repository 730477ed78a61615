// SPDX-License-Identifier: Unlicense OR MIT

package anim

import (
	"math"
	"testing"
	"time"
)

func TestAnimator(t *testing.T) {
	var a Animator
	var values []float32
	done := 0
	a.Animate(0, 100, 100*time.Millisecond, Linear, func(v float32) {
		values = append(values, v)
	}, func() { done++ })

	t0 := time.Now()
	if !a.Tick(t0) {
		t.Fatal("animation not running after first tick")
	}
	if !a.Tick(t0.Add(50 * time.Millisecond)) {
		t.Fatal("animation not running halfway")
	}
	if a.Tick(t0.Add(120 * time.Millisecond)) {
		t.Fatal("animation still running after its duration")
	}
	want := []float32{0, 50, 100}
	if len(values) != len(want) {
		t.Fatalf("got values %v, want %v", values, want)
	}
	for i := range want {
		if math.Abs(float64(values[i]-want[i])) > 0.01 {
			t.Errorf("value %d: got %v, want %v", i, values[i], want[i])
		}
	}
	if done != 1 {
		t.Errorf("done called %d times, want 1", done)
	}
	if a.Active() {
		t.Error("animator active after completion")
	}
}

func TestAnimatorCancel(t *testing.T) {
	var a Animator
	ticks, done := 0, 0
	h := a.Animate(0, 1, time.Second, nil, func(float32) { ticks++ }, func() { done++ })
	t0 := time.Now()
	a.Tick(t0)
	h.Cancel()
	if a.Tick(t0.Add(2 * time.Second)) {
		t.Error("cancelled animation still running")
	}
	if ticks != 1 || done != 0 {
		t.Errorf("got %d ticks and %d completions, want 1 and 0", ticks, done)
	}
}

func TestAnimatorZeroDuration(t *testing.T) {
	var a Animator
	var got float32
	done := false
	a.Animate(3, 7, 0, Linear, func(v float32) { got = v }, func() { done = true })
	a.Tick(time.Now())
	if got != 7 || !done {
		t.Errorf("got %v (done %v), want 7 (done true)", got, done)
	}
}

func TestAnimatorChained(t *testing.T) {
	var a Animator
	second := false
	a.Animate(0, 1, 0, Linear, func(float32) {}, func() {
		a.Animate(1, 2, 0, Linear, func(float32) {}, func() { second = true })
	})
	t0 := time.Now()
	if !a.Tick(t0) {
		t.Fatal("chained animation not scheduled")
	}
	a.Tick(t0)
	if !second {
		t.Error("chained animation did not complete")
	}
}

func TestCurves(t *testing.T) {
	curves := []string{"linear", "overshoot", "bounce", "accelerate", "decelerate", "accelerate_decelerate"}
	for _, name := range curves {
		c, err := ParseCurve(name)
		if err != nil {
			t.Fatal(err)
		}
		if v := c(0); math.Abs(float64(v)) > 0.01 {
			t.Errorf("%s(0) = %v, want 0", name, v)
		}
		if v := c(1); math.Abs(float64(v-1)) > 0.01 {
			t.Errorf("%s(1) = %v, want 1", name, v)
		}
	}
	if _, err := ParseCurve("wobble"); err == nil {
		t.Error("expected error for unknown curve")
	}
}
