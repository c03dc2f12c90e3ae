// Package hitbox implements discrete 2D polygon collision detection.
//
// A Hitbox is a closed polygon formed by connecting an ordered sequence of
// points, last back to first. Collision queries run a cheap axis-aligned
// bounds check first and only fall back to pairwise segment intersection
// when the bounds overlap. Hitboxes are meant to be built once and moved
// around with SetX/SetY/SetPosition every frame.
//
// Nothing in this package is safe for concurrent use; move and query a
// hitbox from a single goroutine per tick.
package hitbox

import "fmt"

// Point is a mutable 2D coordinate. Coordinates are assumed finite;
// NaN or Inf inputs are caller error and are not validated.
type Point struct {
	X float32
	Y float32
}

func (p Point) String() string {
	return fmt.Sprintf("(%v, %v)", p.X, p.Y)
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
