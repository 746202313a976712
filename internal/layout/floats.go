package layout

import "math"

// epsilon is the tolerance used for all float comparisons in the engine.
const epsilon = 0.001

// Infinity is the unbounded constraint value.
var Infinity = math.Inf(1)

func nearZero(v float64) bool {
	return math.Abs(v) <= epsilon
}

func nearEqual(a, b float64) bool {
	if math.IsInf(a, 1) && math.IsInf(b, 1) {
		return true
	}
	return math.Abs(a-b) <= epsilon
}

func greatNotEqual(a, b float64) bool {
	return a-b > epsilon
}

func lessNotEqual(a, b float64) bool {
	return b-a > epsilon
}

func greatOrEqual(a, b float64) bool {
	return a > b || nearEqual(a, b)
}

func lessOrEqual(a, b float64) bool {
	return a < b || nearEqual(a, b)
}

// isInfinite treats anything past float32 range as unbounded, matching what
// callers that build constraints from float32 sources hand in.
func isInfinite(v float64) bool {
	return math.IsInf(v, 1) || v >= math.MaxFloat32
}

// nonNegative clamps v to zero, mapping NaN to zero as well.
func nonNegative(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	return v
}

// clamp restricts v to the range [minVal, maxVal].
// If minVal > maxVal, minVal wins.
func clamp(v, minVal, maxVal float64) float64 {
	if v < minVal {
		return minVal
	}
	if maxVal >= minVal && v > maxVal {
		return maxVal
	}
	return v
}
