/*
Package mincircle computes the minimum enclosing circle of a point set
with Welzl's randomized incremental algorithm, in expected linear time.
The kernel reports its diameter as the "circumscribing diameter" of a
selected boundary.

The random source is injectable so callers (and tests) can fix the
shuffle; production code may pass nil for a seeded source.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package mincircle

import (
	"math"
	"math/rand"

	"github.com/npillmayer/planar"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'geometry'
func tracer() tracing.Trace {
	return tracing.Select("geometry")
}

// Circle is a center plus radius.
type Circle struct {
	Center planar.Pair
	Radius float64
}

// Contains is a predicate: does the circle contain p, with eps slack on
// the radius?
func (c Circle) Contains(p planar.Pair, eps float64) bool {
	return p.Dist(c.Center) <= c.Radius+eps
}

// Diameter returns 2r.
func (c Circle) Diameter() float64 {
	return 2 * c.Radius
}

// Find computes the minimum enclosing circle of a point set. The points
// are shuffled (Fisher–Yates) and the circle grown incrementally,
// recomputing the 2-point or 3-point circumscription whenever a point
// falls outside the current candidate. Passing the same rnd reproduces
// the same computation; a nil rnd gets a fresh seed.
func Find(points []planar.Pair, tol planar.Tolerances, rnd *rand.Rand) Circle {
	if len(points) == 0 {
		return Circle{}
	}
	if rnd == nil {
		rnd = rand.New(rand.NewSource(rand.Int63()))
	}
	ps := make([]planar.Pair, len(points))
	copy(ps, points)
	rnd.Shuffle(len(ps), func(i, j int) {
		ps[i], ps[j] = ps[j], ps[i]
	})
	c := Circle{Center: ps[0]}
	for i := 1; i < len(ps); i++ {
		if !c.Contains(ps[i], tol.Guard) {
			c = withPoint(ps[:i], ps[i], tol)
		}
	}
	return c
}

// minimal circle of ps that has q on its boundary
func withPoint(ps []planar.Pair, q planar.Pair, tol planar.Tolerances) Circle {
	c := Circle{Center: q}
	for j, p := range ps {
		if !c.Contains(p, tol.Guard) {
			c = withTwoPoints(ps[:j], q, p, tol)
		}
	}
	return c
}

// minimal circle of ps that has q1 and q2 on its boundary
func withTwoPoints(ps []planar.Pair, q1, q2 planar.Pair, tol planar.Tolerances) Circle {
	c := circleFrom2(q1, q2)
	for _, p := range ps {
		if !c.Contains(p, tol.Guard) {
			c = circleFrom3(q1, q2, p, tol)
		}
	}
	return c
}

func circleFrom2(a, b planar.Pair) Circle {
	center := (a + b).Scaled(0.5)
	return Circle{Center: center, Radius: center.Dist(a)}
}

// circleFrom3 returns the circle through three points. Near-collinear
// triples have a vanishing circumcenter denominator; they fall back to
// the 2-point circle of the two farthest-apart points, which contains
// the third.
func circleFrom3(a, b, c planar.Pair, tol planar.Tolerances) Circle {
	ax, ay := a.F()
	bx, by := b.F()
	cx, cy := c.F()
	d := 2 * (ax*(by-cy) + bx*(cy-ay) + cx*(ay-by))
	if math.Abs(d) < tol.Guard {
		tracer().Debugf("collinear triple in circle fit, falling back to diameter circle")
		return widestPairCircle(a, b, c)
	}
	aa := ax*ax + ay*ay
	bb := bx*bx + by*by
	cc := cx*cx + cy*cy
	ux := (aa*(by-cy) + bb*(cy-ay) + cc*(ay-by)) / d
	uy := (aa*(cx-bx) + bb*(ax-cx) + cc*(bx-ax)) / d
	center := planar.P(ux, uy)
	return Circle{Center: center, Radius: center.Dist(a)}
}

func widestPairCircle(a, b, c planar.Pair) Circle {
	best := circleFrom2(a, b)
	if alt := circleFrom2(a, c); alt.Radius > best.Radius {
		best = alt
	}
	if alt := circleFrom2(b, c); alt.Radius > best.Radius {
		best = alt
	}
	return best
}
