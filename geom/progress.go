// SPDX-License-Identifier: Unlicense OR MIT

package geom

// Between reports whether v lies in the closed range spanned by a
// and b. The order of a and b does not matter.
func Between(a, b, v float32) bool {
	if a > b {
		a, b = b, a
	}
	return a <= v && v <= b
}

// Fraction returns the position of v relative to the range from a to
// b, where a maps to 0 and b maps to 1. An empty range maps every
// value to 0.
func Fraction(a, b, v float32) float32 {
	if a == b {
		return 0
	}
	return (v - a) / (b - a)
}

// Lerp interpolates linearly from a to b by t.
func Lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}
