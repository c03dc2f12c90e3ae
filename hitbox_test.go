package hitbox

import "testing"

func square() *Hitbox {
	return New([]Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}})
}

func TestNewClosesPolygon(t *testing.T) {
	h := square()

	segs := h.Segments()
	if len(segs) != 4 {
		t.Fatalf("expected 4 segments, got %d", len(segs))
	}

	last := segs[3]
	if (last.Start() != Point{X: 0, Y: 10}) || (last.Stop() != Point{}) {
		t.Fatalf("closing segment runs %v -> %v, want (0, 10) -> (0, 0)", last.Start(), last.Stop())
	}
}

func TestFromCoords(t *testing.T) {
	h := FromCoords(0, 0, 10, 0, 10, 10, 0, 10)

	if len(h.Segments()) != 4 {
		t.Fatalf("expected 4 segments, got %d", len(h.Segments()))
	}

	want := []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	got := h.Points()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Points()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestIntersectsScenario(t *testing.T) {
	cases := []struct {
		name string
		posB Point
		want bool
	}{
		{"overlapping_squares", Point{X: 5, Y: 5}, true},
		{"far_apart_squares", Point{X: 100, Y: 100}, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a, b := square(), square()
			b.SetPosition(c.posB)

			if got := a.Intersects(b); got != c.want {
				t.Fatalf("A.Intersects(B) = %v, want %v", got, c.want)
			}
			if got := b.Intersects(a); got != c.want {
				t.Fatalf("B.Intersects(A) = %v, want %v", got, c.want)
			}
		})
	}
}

func TestFarApartRejectedByBounds(t *testing.T) {
	a, b := square(), square()
	b.SetPosition(Point{X: 100, Y: 100})

	if a.Bounds().Overlaps(b.Bounds()) {
		t.Fatal("bounds should reject far-apart squares before any segment test")
	}
}

func TestSetXPropagatesToSegments(t *testing.T) {
	h := square()
	h.SetX(5)

	var first [4]float32
	count := 0
	h.Draw(PainterFunc(func(x1, y1, x2, y2 float32) {
		if count == 0 {
			first = [4]float32{x1, y1, x2, y2}
		}
		count++
	}))

	if count != 4 {
		t.Fatalf("painted %d edges, want 4", count)
	}
	if want := [4]float32{5, 0, 15, 0}; first != want {
		t.Fatalf("first edge painted at %v, want %v", first, want)
	}

	for _, seg := range h.Segments() {
		if seg.Position() != (Point{X: 5}) {
			t.Fatalf("segment position = %v, want (5, 0)", seg.Position())
		}
	}
}

func TestSetPositionPropagatesEverywhere(t *testing.T) {
	h := square()
	h.SetPosition(Point{X: 7, Y: -3})

	if h.Position() != (Point{X: 7, Y: -3}) {
		t.Fatalf("Position() = %v", h.Position())
	}
	if h.Bounds().Position() != (Point{X: 7, Y: -3}) {
		t.Fatalf("bounds position = %v", h.Bounds().Position())
	}
	for _, seg := range h.Segments() {
		if seg.Position() != (Point{X: 7, Y: -3}) {
			t.Fatalf("segment position = %v", seg.Position())
		}
		if seg.WorldStart() != (Point{X: seg.Start().X + 7, Y: seg.Start().Y - 3}) {
			t.Fatalf("world start %v does not reflect move", seg.WorldStart())
		}
	}
}

func TestIntersectsAfterMovingApart(t *testing.T) {
	a, b := square(), square()
	b.SetPosition(Point{X: 5, Y: 5})
	if !a.Intersects(b) {
		t.Fatal("expected collision at (5, 5)")
	}

	b.SetX(100)
	b.SetY(100)
	if a.Intersects(b) {
		t.Fatal("expected no collision after moving apart")
	}
}

func TestDegenerateInputsAccepted(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		h := New(nil)
		if len(h.Segments()) != 0 {
			t.Fatalf("expected no segments, got %d", len(h.Segments()))
		}
		if h.Intersects(square()) {
			t.Fatal("empty hitbox should intersect nothing")
		}
	})

	t.Run("single_point", func(t *testing.T) {
		h := New([]Point{{4, 4}})
		if len(h.Segments()) != 1 {
			t.Fatalf("expected 1 self segment, got %d", len(h.Segments()))
		}
		b := h.Bounds()
		if b.Width != 0 || b.Height != 0 {
			t.Fatalf("bounds = %vx%v, want 0x0", b.Width, b.Height)
		}
	})
}

func TestDrawPaintsEdgesInOrder(t *testing.T) {
	h := New([]Point{{0, 0}, {10, 0}, {5, 8}})
	h.SetPosition(Point{X: 1, Y: 2})

	var got [][4]float32
	h.Draw(PainterFunc(func(x1, y1, x2, y2 float32) {
		got = append(got, [4]float32{x1, y1, x2, y2})
	}))

	want := [][4]float32{
		{1, 2, 11, 2},
		{11, 2, 6, 10},
		{6, 10, 1, 2},
	}
	if len(got) != len(want) {
		t.Fatalf("painted %d edges, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("edge %d painted %v, want %v", i, got[i], want[i])
		}
	}
}
