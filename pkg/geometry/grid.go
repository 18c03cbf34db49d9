package geometry

import "math"

// Step is the grid resolution in metres. All coordinates and extents
// produced by the solver are multiples of this value.
const Step = 0.5

// epsilon absorbs float error in coordinate comparisons. Coordinates come
// from grid snapping, so values either match exactly or differ by at least
// one grid step.
const epsilon = 1e-9

// approxEq reports whether a and b are equal within epsilon.
func approxEq(a, b float64) bool {
	return math.Abs(a-b) <= epsilon
}

// SnapUp rounds v up to the next multiple of [Step]. Values already on the
// grid (within epsilon) are returned unchanged.
func SnapUp(v float64) float64 {
	return math.Ceil(v/Step-epsilon) * Step
}

// OnGrid reports whether v is a multiple of [Step] within epsilon.
func OnGrid(v float64) bool {
	scaled := v / Step
	return math.Abs(scaled-math.Round(scaled)) <= epsilon
}

// GridSteps returns the number of grid positions available for an extent of
// the given size inside a span: one position at zero plus one per step the
// extent can shift while remaining inside. Returns 0 when the extent does
// not fit.
func GridSteps(extent, span float64) int {
	if extent > span+epsilon {
		return 0
	}
	return int(math.Floor((span-extent)/Step+epsilon)) + 1
}
