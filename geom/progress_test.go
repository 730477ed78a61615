// SPDX-License-Identifier: Unlicense OR MIT

package geom

import (
	"math"
	"testing"
)

func TestBetween(t *testing.T) {
	tests := []struct {
		a, b, v float32
		want    bool
	}{
		{0, 10, 5, true},
		{10, 0, 5, true},
		{0, 10, 0, true},
		{0, 10, 10, true},
		{10, 0, 10, true},
		{0, 10, -0.5, false},
		{10, 0, 10.5, false},
		{3, 3, 3, true},
		{3, 3, 4, false},
	}
	for _, tc := range tests {
		if got := Between(tc.a, tc.b, tc.v); got != tc.want {
			t.Errorf("Between(%v, %v, %v) = %v, want %v", tc.a, tc.b, tc.v, got, tc.want)
		}
	}
}

func TestFraction(t *testing.T) {
	bounds := [][2]float32{{0, 300}, {300, 0}, {-40, 80}, {12, -7}}
	for _, b := range bounds {
		if got := Fraction(b[0], b[1], b[0]); got != 0 {
			t.Errorf("Fraction(%v, %v, a) = %v, want 0", b[0], b[1], got)
		}
		if got := Fraction(b[0], b[1], b[1]); got != 1 {
			t.Errorf("Fraction(%v, %v, b) = %v, want 1", b[0], b[1], got)
		}
	}
	for _, v := range []float32{-100, 0, 5, 1e6} {
		if got := Fraction(5, 5, v); got != 0 {
			t.Errorf("Fraction(5, 5, %v) = %v, want 0", v, got)
		}
	}
}

func TestFractionRoundTrip(t *testing.T) {
	bounds := [][2]float32{{0, 300}, {300, 0}, {-40, 80}}
	for _, b := range bounds {
		for i := 0; i <= 10; i++ {
			x := Lerp(b[0], b[1], float32(i)/10)
			got := Lerp(b[0], b[1], Fraction(b[0], b[1], x))
			if math.Abs(float64(got-x)) > 1e-3 {
				t.Errorf("round trip of %v in %v: got %v", x, b, got)
			}
		}
	}
}
