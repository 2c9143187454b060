// Package lin provides the linear math used by the ray tracer: 3-element
// and 2-element vectors, a 4x4 matrix for baking mesh-loader node
// transforms, and a quaternion for composing rotations. Everything is
// float32 per the renderer's "all floats are 32-bit" numerical policy.
//
// Design notes, same ones the engine this package is styled after follows:
//   - avoid instantiating new structures in hot loops; prefer value
//     receivers that return a new Vec3 only where that reads better than
//     an in-place Set.
//   - prefer multiply over divide.
package lin

import "math"

// Epsilon distinguishes when a float32 is close enough to another to be
// considered equal for intersection/shading purposes.
const Epsilon float32 = 1e-6

// AeqZ (~=) almost-equals-zero returns true if x is close enough to zero
// that the difference doesn't matter.
func AeqZ(x float32) bool { return Abs(x) < Epsilon }

// Aeq (~=) almost-equals returns true if a and b are close enough that the
// difference doesn't matter.
func Aeq(a, b float32) bool { return Abs(a-b) < Epsilon }

// Abs returns the absolute value of x.
func Abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of a and b.
func Min(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of a and b.
func Max(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

// Clamp returns s restricted to the range [lb, ub].
func Clamp(s, lb, ub float32) float32 {
	switch {
	case s < lb:
		return lb
	case s > ub:
		return ub
	}
	return s
}

// Lerp returns the linear interpolation of a to b by the given ratio.
func Lerp(a, b, ratio float32) float32 { return (b-a)*ratio + a }

// Sqrt is math.Sqrt narrowed to float32.
func Sqrt(x float32) float32 { return float32(math.Sqrt(float64(x))) }

// Pow is math.Pow narrowed to float32.
func Pow(x, y float32) float32 { return float32(math.Pow(float64(x), float64(y))) }
