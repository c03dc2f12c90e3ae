package hitbox

// Hitbox is a closed 2D polygon used for intersection testing. Consecutive
// points become line segments, with the last point connected back to the
// first. The hitbox owns a single position Point; its bounds and every
// segment alias that same instance, so SetX/SetY/SetPosition move the whole
// shape in O(1) and no owner can ever observe a stale offset.
type Hitbox struct {
	pos      *Point
	segments []*LineSegment
	bounds   *Bounds
}

// New builds a hitbox from an ordered sequence of local points, positioned
// at the origin. Degenerate input (fewer than 3 points, repeated points) is
// accepted and yields degenerate but well-defined geometry, e.g. a zero-size
// bounds for a single point.
func New(points []Point) *Hitbox {
	pos := &Point{}
	h := &Hitbox{pos: pos}

	n := len(points)
	for i := 0; i < n; i++ {
		h.segments = append(h.segments, NewLineSegment(pos, points[i], points[(i+1)%n]))
	}

	h.bounds = newBounds(h.segments, pos)
	return h
}

// FromCoords builds a hitbox from flat x,y pairs. A trailing unpaired value
// is ignored.
func FromCoords(coords ...float32) *Hitbox {
	points := make([]Point, 0, len(coords)/2)
	for i := 0; i+1 < len(coords); i += 2 {
		points = append(points, Point{X: coords[i], Y: coords[i+1]})
	}
	return New(points)
}

// Intersects reports whether the two polygons collide. The bounds are
// consulted first; only when they overlap does the quadratic segment-pair
// scan run, short-circuiting on the first crossing pair.
func (h *Hitbox) Intersects(other *Hitbox) bool {
	if !h.bounds.Overlaps(other.bounds) {
		return false
	}

	for _, seg := range h.segments {
		for _, otherSeg := range other.segments {
			if seg.Intersects(otherSeg) {
				return true
			}
		}
	}

	return false
}

// SetPosition moves the hitbox to p. The value is copied through the owned
// position instance, so every segment and the bounds see the move at once.
func (h *Hitbox) SetPosition(p Point) {
	*h.pos = p
}

// SetX moves the hitbox horizontally.
func (h *Hitbox) SetX(x float32) {
	h.pos.X = x
}

// SetY moves the hitbox vertically.
func (h *Hitbox) SetY(y float32) {
	h.pos.Y = y
}

// Position returns the current translation of the hitbox.
func (h *Hitbox) Position() Point {
	return *h.pos
}

// Segments returns the polygon's edges in order. The slice is shared with
// the hitbox; treat it as read-only.
func (h *Hitbox) Segments() []*LineSegment {
	return h.segments
}

// Points returns a copy of the local, untranslated vertices in construction
// order.
func (h *Hitbox) Points() []Point {
	points := make([]Point, 0, len(h.segments))
	for _, seg := range h.segments {
		points = append(points, seg.Start())
	}
	return points
}

// Bounds returns the broad-phase rectangle enveloping the polygon.
func (h *Hitbox) Bounds() *Bounds {
	return h.bounds
}

// Draw hands every edge's translated endpoints to the painter, in edge
// order. Useful for debug visualization.
func (h *Hitbox) Draw(painter LinePainter) {
	for _, seg := range h.segments {
		seg.Draw(painter)
	}
}
