// SPDX-License-Identifier: Unlicense OR MIT

package anim

import (
	"fmt"
	"math"
	"strings"
)

// Curve maps animation progress in [0, 1] to interpolation progress.
// Curves start at 0 and end at 1 but may leave that range in between.
type Curve func(t float32) float32

// Linear progresses at a constant rate.
func Linear(t float32) float32 { return t }

// Accelerate starts slowly and speeds up.
func Accelerate(t float32) float32 { return t * t }

// Decelerate starts quickly and slows down.
func Decelerate(t float32) float32 {
	t = 1 - t
	return 1 - t*t
}

// AccelerateDecelerate starts and ends slowly.
func AccelerateDecelerate(t float32) float32 {
	return float32(math.Cos(float64(t+1)*math.Pi))/2 + 0.5
}

// Overshoot returns a curve that passes its end value and settles
// back. Larger tension overshoots further.
func Overshoot(tension float32) Curve {
	return func(t float32) float32 {
		t -= 1
		return t*t*((tension+1)*t+tension) + 1
	}
}

// Bounce ends by bouncing off its end value.
func Bounce(t float32) float32 {
	bounce := func(t float32) float32 { return t * t * 8 }
	t *= 1.1226
	switch {
	case t < 0.3535:
		return bounce(t)
	case t < 0.7408:
		return bounce(t-0.54719) + 0.7
	case t < 0.9644:
		return bounce(t-0.8526) + 0.9
	default:
		return bounce(t-1.0435) + 0.95
	}
}

// ParseCurve returns the curve with the given name: linear,
// overshoot, bounce, accelerate, decelerate or accelerate-decelerate.
func ParseCurve(name string) (Curve, error) {
	switch strings.ToLower(strings.ReplaceAll(name, "_", "-")) {
	case "", "linear":
		return Linear, nil
	case "overshoot":
		return Overshoot(2), nil
	case "bounce":
		return Bounce, nil
	case "accelerate":
		return Accelerate, nil
	case "decelerate":
		return Decelerate, nil
	case "accelerate-decelerate":
		return AccelerateDecelerate, nil
	default:
		return nil, fmt.Errorf("anim: unknown curve %q", name)
	}
}
