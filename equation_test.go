package hitbox

import "testing"

func TestEquationDerivation(t *testing.T) {
	cases := []struct {
		name  string
		start Point
		stop  Point
		pos   Point
		wantK float32
		wantA float32
	}{
		{"half_slope", Point{0, 0}, Point{10, 5}, Point{0, 0}, 0.5, 0},
		{"negative_slope", Point{0, 10}, Point{10, 0}, Point{0, 0}, -1, 10},
		{"translated", Point{0, 0}, Point{10, 5}, Point{4, 7}, 0.5, 5},
		{"vertical_placeholder", Point{3, 0}, Point{3, 9}, Point{0, 0}, 0, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			pos := c.pos
			seg := NewLineSegment(&pos, c.start, c.stop)
			eq := seg.Equation()
			if eq.K != c.wantK || eq.A != c.wantA {
				t.Fatalf("Equation() = {K: %v, A: %v}, want {K: %v, A: %v}", eq.K, eq.A, c.wantK, c.wantA)
			}
		})
	}
}

func TestEquationReflectsPositionWithoutRefresh(t *testing.T) {
	pos := &Point{}
	seg := NewLineSegment(pos, Point{0, 0}, Point{10, 5})

	if a := seg.Equation().A; a != 0 {
		t.Fatalf("A = %v before move, want 0", a)
	}

	pos.Y = 7
	if a := seg.Equation().A; a != 7 {
		t.Fatalf("A = %v after moving position, want 7", a)
	}
}

func TestSolveIntersection(t *testing.T) {
	e1 := LineEquation{K: 1, A: 0}
	e2 := LineEquation{K: -1, A: 10}

	p := e1.SolveIntersection(e2)
	if p.X != 5 || p.Y != 5 {
		t.Fatalf("SolveIntersection = %v, want (5, 5)", p)
	}
}

func TestSolveIntersectionParallelFallsBackToZero(t *testing.T) {
	// Parallel lines have no unique solution; the solver pins x to 0 and
	// evaluates there. Callers interval-test the result, never trust it.
	e1 := LineEquation{K: 2, A: 3}
	e2 := LineEquation{K: 2, A: 8}

	p := e1.SolveIntersection(e2)
	if p.X != 0 || p.Y != 3 {
		t.Fatalf("SolveIntersection = %v, want (0, 3)", p)
	}
}

func TestCalcY(t *testing.T) {
	e := LineEquation{K: 2, A: -1}
	if y := e.CalcY(3); y != 5 {
		t.Fatalf("CalcY(3) = %v, want 5", y)
	}
}
