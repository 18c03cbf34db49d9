package geometry

// Rect is an axis-aligned rectangle occupying [X, X+Width) × [Y, Y+Height).
type Rect struct {
	X      float64 `json:"x" bson:"x"`
	Y      float64 `json:"y" bson:"y"`
	Width  float64 `json:"width" bson:"width"`
	Height float64 `json:"height" bson:"height"`
}

// Boundary is the site's outer rectangle with its lower-left corner at the
// origin. No room may extend beyond it.
type Boundary struct {
	Width  float64 `json:"width" bson:"width"`
	Height float64 `json:"height" bson:"height"`
}

// Area returns Width × Height.
func (r Rect) Area() float64 {
	return r.Width * r.Height
}

// Contains reports whether inner lies fully within the boundary.
func Contains(b Boundary, inner Rect) bool {
	return inner.X >= -epsilon &&
		inner.Y >= -epsilon &&
		inner.X+inner.Width <= b.Width+epsilon &&
		inner.Y+inner.Height <= b.Height+epsilon
}

// Overlaps reports whether the open interiors of a and b intersect.
// Rectangles that only touch along an edge or at a corner do not overlap.
//
// Uses "not separated" logic: two rectangles overlap unless one is entirely
// to the left, right, above, or below the other.
func Overlaps(a, b Rect) bool {
	xSeparated := a.X+a.Width <= b.X+epsilon || b.X+b.Width <= a.X+epsilon
	ySeparated := a.Y+a.Height <= b.Y+epsilon || b.Y+b.Height <= a.Y+epsilon
	return !(xSeparated || ySeparated)
}

// Adjacent reports whether a and b share an edge segment of strictly
// positive length. Corner-only contact does not count: the rectangles must
// touch along one axis and their ranges on the other axis must properly
// overlap.
func Adjacent(a, b Rect) bool {
	verticalTouch := approxEq(a.X, b.X+b.Width) || approxEq(a.X+a.Width, b.X)
	verticalRange := a.Y < b.Y+b.Height-epsilon && a.Y+a.Height > b.Y+epsilon

	horizontalTouch := approxEq(a.Y, b.Y+b.Height) || approxEq(a.Y+a.Height, b.Y)
	horizontalRange := a.X < b.X+b.Width-epsilon && a.X+a.Width > b.X+epsilon

	return (verticalTouch && verticalRange) || (horizontalTouch && horizontalRange)
}

// TouchesExterior reports whether at least one side of r is coincident with
// a side of the boundary.
func TouchesExterior(r Rect, b Boundary) bool {
	return approxEq(r.X, 0) ||
		approxEq(r.Y, 0) ||
		approxEq(r.X+r.Width, b.Width) ||
		approxEq(r.Y+r.Height, b.Height)
}
