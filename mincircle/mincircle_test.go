package mincircle

import (
	"math"
	"math/rand"
	"testing"

	"github.com/npillmayer/planar"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func seeded() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

// brute-force reference: smallest of all 2-point and 3-point candidate
// circles that contains every point; O(n³), for small sets only
func bruteForce(pts []planar.Pair, tol planar.Tolerances) Circle {
	covers := func(c Circle) bool {
		for _, p := range pts {
			if !c.Contains(p, 1e-9) {
				return false
			}
		}
		return true
	}
	best := Circle{Radius: math.Inf(1)}
	for i := 0; i < len(pts); i++ {
		for j := i + 1; j < len(pts); j++ {
			if c := circleFrom2(pts[i], pts[j]); covers(c) && c.Radius < best.Radius {
				best = c
			}
			for k := j + 1; k < len(pts); k++ {
				if c := circleFrom3(pts[i], pts[j], pts[k], tol); covers(c) && c.Radius < best.Radius {
					best = c
				}
			}
		}
	}
	if len(pts) == 1 {
		best = Circle{Center: pts[0]}
	}
	return best
}

func TestFindTrivial(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	if c := Find(nil, planar.DefaultTolerances(), seeded()); c.Radius != 0 {
		t.Errorf("expected empty circle, got %+v", c)
	}
	one := Find([]planar.Pair{planar.P(3, 4)}, planar.DefaultTolerances(), seeded())
	if one.Radius != 0 || !one.Center.Equal(planar.P(3, 4)) {
		t.Errorf("expected point circle, got %+v", one)
	}
	two := Find([]planar.Pair{planar.P(0, 0), planar.P(2, 0)}, planar.DefaultTolerances(), seeded())
	if math.Abs(two.Radius-1) > 1e-9 || !two.Center.Near(planar.P(1, 0), 1e-9) {
		t.Errorf("expected unit circle at (1,0), got %+v", two)
	}
}

func TestFindSquare(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pts := []planar.Pair{planar.P(0, 0), planar.P(2, 0), planar.P(2, 2), planar.P(0, 2)}
	c := Find(pts, planar.DefaultTolerances(), seeded())
	if !c.Center.Near(planar.P(1, 1), 1e-9) {
		t.Errorf("expected center (1,1), got %v", c.Center)
	}
	if math.Abs(c.Radius-math.Sqrt2) > 1e-9 {
		t.Errorf("expected radius √2, got %g", c.Radius)
	}
	if math.Abs(c.Diameter()-2*math.Sqrt2) > 1e-9 {
		t.Errorf("expected diameter 2√2, got %g", c.Diameter())
	}
}

func TestFindCollinear(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	var pts []planar.Pair
	for i := 0; i <= 5; i++ {
		pts = append(pts, planar.P(float64(i), 0))
	}
	c := Find(pts, planar.DefaultTolerances(), seeded())
	if !c.Center.Near(planar.P(2.5, 0), 1e-9) || math.Abs(c.Radius-2.5) > 1e-9 {
		t.Errorf("expected circle over the bar, got %+v", c)
	}
}

func TestFindContainment(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	rnd := seeded()
	tol := planar.DefaultTolerances()
	for trial := 0; trial < 25; trial++ {
		n := 3 + rnd.Intn(40)
		pts := make([]planar.Pair, n)
		for i := range pts {
			pts[i] = planar.P(rnd.Float64()*100-50, rnd.Float64()*100-50)
		}
		c := Find(pts, tol, rand.New(rand.NewSource(int64(trial))))
		for _, p := range pts {
			if !c.Contains(p, 1e-6) {
				t.Fatalf("trial %d: point %v outside circle %+v", trial, p, c)
			}
		}
	}
}

func TestFindMatchesBruteForce(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	rnd := seeded()
	tol := planar.DefaultTolerances()
	for trial := 0; trial < 20; trial++ {
		n := 2 + rnd.Intn(18) // ≤ 20 points keeps O(n³) cheap
		pts := make([]planar.Pair, n)
		for i := range pts {
			pts[i] = planar.P(math.Floor(rnd.Float64()*20), math.Floor(rnd.Float64()*20))
		}
		got := Find(pts, tol, rand.New(rand.NewSource(int64(trial))))
		want := bruteForce(pts, tol)
		if math.Abs(got.Radius-want.Radius) > 1e-6 {
			t.Fatalf("trial %d: radius %g, brute force found %g for %v",
				trial, got.Radius, want.Radius, pts)
		}
	}
}

func TestFindDeterministicWithSeed(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pts := []planar.Pair{
		planar.P(0, 0), planar.P(5, 1), planar.P(3, 7), planar.P(-2, 4), planar.P(1, 1),
	}
	tol := planar.DefaultTolerances()
	a := Find(pts, tol, rand.New(rand.NewSource(7)))
	b := Find(pts, tol, rand.New(rand.NewSource(7)))
	if a != b {
		t.Errorf("same seed produced different circles: %+v vs %+v", a, b)
	}
}
