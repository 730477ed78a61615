// SPDX-License-Identifier: Unlicense OR MIT

// Package fling estimates pointer velocities from timestamped samples.
package fling

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Extrapolation computes a 1-dimensional velocity estimate for a set
// of timestamped samples using the least squares fit of a 2nd order
// polynomial.
type Extrapolation struct {
	// idx is the index of the next sample slot.
	idx     int
	samples []sample
	cache   [historySize]sample

	values [historySize]float32
	times  [historySize]float32
}

// Estimate is the result of an extrapolation.
type Estimate struct {
	// Velocity in units per second.
	Velocity float32
	// Distance covered by the samples used for the estimate.
	Distance float32
}

type sample struct {
	t time.Duration
	v float32
}

type matrix struct {
	rows, cols int
	data       []float32
}

type coefficients [degree + 1]float32

const (
	degree       = 2
	historySize  = 20
	maxAge       = 100 * time.Millisecond
	maxSampleGap = 40 * time.Millisecond
)

// Sample adds an absolute sample to the estimation.
func (e *Extrapolation) Sample(t time.Duration, v float32) {
	if e.samples == nil {
		e.samples = e.cache[:0]
	}
	s := sample{t: t, v: v}
	if e.idx == len(e.samples) && e.idx < cap(e.samples) {
		e.samples = append(e.samples, s)
	} else {
		e.samples[e.idx] = s
	}
	e.idx++
	if e.idx == cap(e.samples) {
		e.idx = 0
	}
}

// Estimate the velocity at the time of the most recent sample. Samples
// older than 100ms, or separated from their successor by more than
// 40ms, are ignored. The zero Estimate is returned when too few
// samples remain.
func (e *Extrapolation) Estimate() Estimate {
	if len(e.samples) == 0 {
		return Estimate{}
	}
	values := e.values[:0]
	times := e.times[:0]
	newest := e.get(0)
	last := newest
	for i := 0; i < len(e.samples); i++ {
		p := e.get(-i)
		age := newest.t - p.t
		if age >= maxAge || last.t-p.t >= maxSampleGap {
			break
		}
		last = p
		values = append(values, p.v-newest.v)
		times = append(times, float32(-age.Seconds()))
	}
	coef, ok := polyFit(times, values)
	if !ok {
		return Estimate{}
	}
	return Estimate{
		Velocity: coef[1],
		Distance: newest.v - last.v,
	}
}

// get returns the sample i steps from the most recent one; i <= 0.
func (e *Extrapolation) get(i int) sample {
	n := len(e.samples)
	idx := ((e.idx-1+i)%n + n) % n
	return e.samples[idx]
}

// polyFit computes the least squares polynomial fit for the points in
// X, Y. It returns false if the data is insufficient or degenerate.
func polyFit(X, Y []float32) (coefficients, bool) {
	if len(X) != len(Y) {
		panic("X and Y lengths differ")
	}
	if len(X) <= degree {
		return coefficients{}, false
	}
	// Vandermonde matrix.
	A := newMatrix(len(X), degree+1)
	for i, x := range X {
		A.set(i, 0, 1)
		for j := 1; j < A.cols; j++ {
			A.set(i, j, A.get(i, j-1)*x)
		}
	}
	Q, Rt, ok := decomposeQR(A)
	if !ok {
		return coefficients{}, false
	}
	// Solve R*B = Qt*Y by back substitution. R[i][j] = Rt[j][i].
	var B coefficients
	for i := len(B) - 1; i >= 0; i-- {
		B[i] = dot(Q.col(i), Y)
		for j := i + 1; j < len(B); j++ {
			B[i] -= Rt.get(j, i) * B[j]
		}
		B[i] /= Rt.get(i, i)
	}
	return B, true
}

// decomposeQR computes Q and Rt such that Q*transpose(Rt) = A, using
// modified Gram-Schmidt. Q has orthonormal columns and transpose(Rt) is
// upper triangular.
func decomposeQR(A *matrix) (*matrix, *matrix, bool) {
	Q := newMatrix(A.rows, A.cols)
	Rt := newMatrix(A.cols, A.cols)
	for j := 0; j < A.cols; j++ {
		v := A.col(j)
		for i := 0; i < j; i++ {
			q := Q.col(i)
			r := dot(q, v)
			Rt.set(j, i, r)
			for k := range v {
				v[k] -= r * q[k]
			}
		}
		n := norm(v)
		if n < 0.000001 {
			// Degenerate data, no solution.
			return nil, nil, false
		}
		Rt.set(j, j, n)
		for k, x := range v {
			Q.set(k, j, x/n)
		}
	}
	return Q, Rt, true
}

func newMatrix(rows, cols int) *matrix {
	return &matrix{
		rows: rows,
		cols: cols,
		data: make([]float32, rows*cols),
	}
}

func (m *matrix) set(row, col int, v float32) {
	if row < 0 || row >= m.rows {
		panic("row out of range")
	}
	if col < 0 || col >= m.cols {
		panic("col out of range")
	}
	m.data[row*m.cols+col] = v
}

func (m *matrix) get(row, col int) float32 {
	if row < 0 || row >= m.rows {
		panic("row out of range")
	}
	if col < 0 || col >= m.cols {
		panic("col out of range")
	}
	return m.data[row*m.cols+col]
}

// col returns a copy of column c.
func (m *matrix) col(c int) []float32 {
	v := make([]float32, m.rows)
	for r := range v {
		v[r] = m.get(r, c)
	}
	return v
}

func (m *matrix) transpose() *matrix {
	t := newMatrix(m.cols, m.rows)
	for r := 0; r < m.rows; r++ {
		for c := 0; c < m.cols; c++ {
			t.set(c, r, m.get(r, c))
		}
	}
	return t
}

func (m *matrix) mul(m2 *matrix) *matrix {
	if m.cols != m2.rows {
		panic("mismatched matrices")
	}
	res := newMatrix(m.rows, m2.cols)
	for r := 0; r < res.rows; r++ {
		for c := 0; c < res.cols; c++ {
			var v float32
			for k := 0; k < m.cols; k++ {
				v += m.get(r, k) * m2.get(k, c)
			}
			res.set(r, c, v)
		}
	}
	return res
}

func (m *matrix) approxEqual(m2 *matrix) bool {
	if m.rows != m2.rows || m.cols != m2.cols {
		return false
	}
	for i, v := range m.data {
		if !approxEqual(v, m2.data[i]) {
			return false
		}
	}
	return true
}

func (m *matrix) String() string {
	var b strings.Builder
	for r := 0; r < m.rows; r++ {
		for c := 0; c < m.cols; c++ {
			fmt.Fprintf(&b, "%8.3f ", m.get(r, c))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (c coefficients) approxEqual(c2 coefficients) bool {
	for i, v := range c {
		if !approxEqual(v, c2[i]) {
			return false
		}
	}
	return true
}

func approxEqual(a, b float32) bool {
	const epsilon = 0.0001
	return math.Abs(float64(a-b)) < epsilon*math.Max(1, math.Abs(float64(a)))
}

func dot(v1, v2 []float32) float32 {
	if len(v1) != len(v2) {
		panic("different lengths")
	}
	var sum float32
	for i := range v1 {
		sum += v1[i] * v2[i]
	}
	return sum
}

func norm(v []float32) float32 {
	return float32(math.Sqrt(float64(dot(v, v))))
}
