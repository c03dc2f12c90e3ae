package hitbox

import "fmt"

// LineEquation is the slope-intercept form y = K*x + A of the infinite line
// through a segment's translated endpoints. It is a plain value derived on
// demand (see LineSegment.Equation); it never caches stale geometry.
//
// For a vertical segment K is left at zero as a placeholder. Vertical lines
// have no slope-intercept form and the segment intersection code never
// solves an equation for one (see LineSegment.Intersects).
type LineEquation struct {
	K float32
	A float32
}

// CalcY evaluates the equation at x.
func (e LineEquation) CalcY(x float32) float32 {
	return e.K*x + e.A
}

// SolveIntersection solves e and other simultaneously and returns the point
// where the two lines meet.
//
// When the lines are parallel (equal slopes, which includes two vertical
// placeholder equations) there is no unique solution and x falls back to 0.
// Callers must not read meaning into the result in that case; the segment
// intersection code only interval-tests the returned point, so a parallel
// pair away from x=0 simply fails the containment check.
func (e LineEquation) SolveIntersection(other LineEquation) Point {
	var x float32
	if dk := e.K - other.K; dk != 0 {
		x = (other.A - e.A) / dk
	}
	return Point{X: x, Y: e.CalcY(x)}
}

func (e LineEquation) String() string {
	return fmt.Sprintf("y = %vx + %v", e.K, e.A)
}
