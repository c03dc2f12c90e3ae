package hitbox

import "fmt"

// verticalTolerance is the local-space x-delta below which a segment is
// treated as vertical. Segments this close to vertical produce unstable
// slopes, so they take the vertical code path instead of an equation solve.
const verticalTolerance = 3.0

// LineSegment is a directed edge between two local points, translated into
// world space by the owning hitbox's position. Segments never hold their own
// copy of the position; they alias the single Point owned by the Hitbox, so
// moving the hitbox is immediately visible here with no propagation step.
type LineSegment struct {
	start Point
	stop  Point
	pos   *Point
}

// NewLineSegment builds a segment from start to stop sharing the given
// position. pos must not be nil.
func NewLineSegment(pos *Point, start, stop Point) *LineSegment {
	return &LineSegment{start: start, stop: stop, pos: pos}
}

// Start returns the local, untranslated start point.
func (s *LineSegment) Start() Point { return s.start }

// Stop returns the local, untranslated stop point.
func (s *LineSegment) Stop() Point { return s.stop }

// Position returns the current translation applied to the segment.
func (s *LineSegment) Position() Point { return *s.pos }

// WorldStart returns the translated start point.
func (s *LineSegment) WorldStart() Point {
	return Point{X: s.start.X + s.pos.X, Y: s.start.Y + s.pos.Y}
}

// WorldStop returns the translated stop point.
func (s *LineSegment) WorldStop() Point {
	return Point{X: s.stop.X + s.pos.X, Y: s.stop.Y + s.pos.Y}
}

// Equation derives the slope-intercept equation of the line through the
// segment's translated endpoints. The result reflects the position at call
// time; callers should not hold on to it across moves.
func (s *LineSegment) Equation() LineEquation {
	var k float32
	if s.stop.X != s.start.X {
		k = (s.stop.Y - s.start.Y) / (s.stop.X - s.start.X)
	}
	a := s.start.Y + s.pos.Y - k*(s.start.X+s.pos.X)
	return LineEquation{K: k, A: a}
}

// IsVertical reports whether the segment is treated as vertical. The check
// uses local coordinates and a fixed tolerance, so slightly slanted segments
// count as vertical on purpose.
func (s *LineSegment) IsVertical() bool {
	return abs32(s.start.X-s.stop.X) <= verticalTolerance
}

// ContainsPoint reports whether (x, y) lies within the segment's translated
// bounding intervals on both axes, endpoints included. It is a pure interval
// check; it does not test collinearity.
func (s *LineSegment) ContainsPoint(x, y float32) bool {
	x1, y1 := s.start.X+s.pos.X, s.start.Y+s.pos.Y
	x2, y2 := s.stop.X+s.pos.X, s.stop.Y+s.pos.Y

	betweenX := (x >= x1 && x <= x2) || (x <= x1 && x >= x2)
	betweenY := (y >= y1 && y <= y2) || (y <= y1 && y >= y2)

	return betweenX && betweenY
}

// Intersects reports whether the two segments cross in world space.
func (s *LineSegment) Intersects(other *LineSegment) bool {
	// Two vertical segments only meet if they sit on the same x and
	// overlap on the y-axis. No equation solving happens here.
	if s.IsVertical() && other.IsVertical() {
		a, b := s.WorldStart(), s.WorldStop()
		c, d := other.WorldStart(), other.WorldStop()
		return min(a.X, b.X) == min(c.X, d.X) &&
			(s.ContainsPoint(c.X, c.Y) || s.ContainsPoint(d.X, d.Y))
	}

	// One vertical segment: evaluate the non-vertical line at the
	// vertical segment's x and interval-test the result on both.
	if s.IsVertical() || other.IsVertical() {
		vertical, nonVertical := s, other
		if other.IsVertical() {
			vertical, nonVertical = other, s
		}

		x := vertical.start.X + vertical.pos.X
		y := nonVertical.Equation().CalcY(x)
		return vertical.ContainsPoint(x, y) && nonVertical.ContainsPoint(x, y)
	}

	// General case: solve the two line equations and check the candidate
	// point against both segments' bounds.
	p := s.Equation().SolveIntersection(other.Equation())
	return s.ContainsPoint(p.X, p.Y) && other.ContainsPoint(p.X, p.Y)
}

// Draw hands the segment's translated endpoints to the painter.
func (s *LineSegment) Draw(painter LinePainter) {
	a, b := s.WorldStart(), s.WorldStop()
	painter.PaintLine(a.X, a.Y, b.X, b.Y)
}

func (s *LineSegment) String() string {
	return fmt.Sprintf("start: %v stop: %v position: %v", s.start, s.stop, *s.pos)
}
