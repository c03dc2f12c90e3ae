package hitbox

import "math"

// Bounds is the broad-phase rectangle around a polygon. Width and Height are
// measured from the local vertex extents exactly once, at construction, and
// never change afterwards; only the shared position moves the rectangle. The
// world-space rectangle spans [pos.X, pos.X+Width] x [pos.Y, pos.Y+Height].
type Bounds struct {
	Width  float32
	Height float32

	pos *Point
}

func newBounds(segments []*LineSegment, pos *Point) *Bounds {
	b := &Bounds{pos: pos}
	if len(segments) == 0 {
		return b
	}

	xMin := float32(math.MaxFloat32)
	xMax := float32(-math.MaxFloat32)
	yMin := float32(math.MaxFloat32)
	yMax := float32(-math.MaxFloat32)

	for _, seg := range segments {
		start, stop := seg.Start(), seg.Stop()

		xMin = min(xMin, start.X, stop.X)
		xMax = max(xMax, start.X, stop.X)
		yMin = min(yMin, start.Y, stop.Y)
		yMax = max(yMax, start.Y, stop.Y)
	}

	b.Width = xMax - xMin
	b.Height = yMax - yMin
	return b
}

// Position returns the current translation of the rectangle.
func (b *Bounds) Position() Point { return *b.pos }

// Overlaps reports whether the two translated rectangles overlap.
//
// The test checks, per axis, whether one rectangle's far edge sits at or past
// the other's near edge but strictly before its far edge, in either
// direction. The far-edge comparison is half-open, so two rectangles whose
// far edges coincide exactly do not overlap. Collision acceptance depends on
// this exact formulation; do not swap in the usual closed-interval test.
func (b *Bounds) Overlaps(other *Bounds) bool {
	xOverlap := (b.pos.X+b.Width >= other.pos.X &&
		b.pos.X+b.Width < other.pos.X+other.Width) ||
		(other.pos.X+other.Width >= b.pos.X &&
			other.pos.X+other.Width < b.pos.X+b.Width)

	yOverlap := (b.pos.Y+b.Height >= other.pos.Y &&
		b.pos.Y+b.Height < other.pos.Y+other.Height) ||
		(other.pos.Y+other.Height >= b.pos.Y &&
			other.pos.Y+other.Height < b.pos.Y+b.Height)

	return xOverlap && yOverlap
}
