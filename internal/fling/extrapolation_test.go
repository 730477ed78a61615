// SPDX-License-Identifier: Unlicense OR MIT

package fling

import (
	"math"
	"testing"
	"time"
)

func TestDecomposeQR(t *testing.T) {
	A := &matrix{
		rows: 3, cols: 3,
		data: []float32{
			12, 6, -4,
			-51, 167, 24,
			4, -68, -41,
		},
	}
	Q, Rt, ok := decomposeQR(A)
	if !ok {
		t.Fatal("decomposeQR failed")
	}
	R := Rt.transpose()
	QR := Q.mul(R)
	if !A.approxEqual(QR) {
		t.Log("A\n", A)
		t.Log("Q\n", Q)
		t.Log("R\n", R)
		t.Log("QR\n", QR)
		t.Fatal("Q*R not approximately equal to A")
	}
	for r := 1; r < R.rows; r++ {
		for c := 0; c < r; c++ {
			if R.get(r, c) != 0 {
				t.Fatalf("R is not upper triangular:\n%v", R)
			}
		}
	}
}

func TestFit(t *testing.T) {
	X := []float32{-1, 0, 1}
	Y := []float32{2, 0, 2}

	got, ok := polyFit(X, Y)
	if !ok {
		t.Fatal("polyFit failed")
	}
	want := coefficients{0, 0, 2}
	if !got.approxEqual(want) {
		t.Fatalf("polyFit: got %v want %v", got, want)
	}
}

func TestFitDegenerate(t *testing.T) {
	if _, ok := polyFit([]float32{0, 1}, []float32{0, 1}); ok {
		t.Error("fit of two points succeeded")
	}
	if _, ok := polyFit([]float32{1, 1, 1}, []float32{0, 1, 2}); ok {
		t.Error("fit of coincident times succeeded")
	}
}

func TestEstimate(t *testing.T) {
	tests := []struct {
		name     string
		step     time.Duration
		n        int
		speed    float32 // units per second
		velocity float32
	}{
		{"linear", 10 * time.Millisecond, 7, 1000, 1000},
		{"reverse", 8 * time.Millisecond, 10, -500, -500},
		{"wrapped buffer", 4 * time.Millisecond, 3 * historySize, 2000, 2000},
		{"too few samples", 10 * time.Millisecond, 2, 1000, 0},
		{"stale samples", 50 * time.Millisecond, 5, 1000, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var e Extrapolation
			for i := 0; i < tc.n; i++ {
				ts := time.Duration(i) * tc.step
				e.Sample(ts, float32(ts.Seconds())*tc.speed)
			}
			got := e.Estimate()
			if math.Abs(float64(got.Velocity-tc.velocity)) > 1 {
				t.Errorf("velocity: got %v, want %v", got.Velocity, tc.velocity)
			}
		})
	}
}

func TestEstimateDistance(t *testing.T) {
	var e Extrapolation
	for i := 0; i < 5; i++ {
		e.Sample(time.Duration(i)*10*time.Millisecond, float32(i*10))
	}
	if got := e.Estimate().Distance; got != 40 {
		t.Errorf("distance: got %v, want 40", got)
	}
}

func TestEstimateEmpty(t *testing.T) {
	var e Extrapolation
	if got := e.Estimate(); got != (Estimate{}) {
		t.Errorf("got %v, want zero estimate", got)
	}
}
