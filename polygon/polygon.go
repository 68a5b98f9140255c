/*
Package polygon builds and classifies closed loops of points.

Loops are created either programmatically with a builder pattern
(NullPolygon().Knot(…).Knot(…).Cycle()), or from CAD boundary data:
bulge-annotated vertex rings and explicit line/arc edge lists, which are
sampled, deduplicated and de-collineared into well-formed rings. A set of
loops is then classified into a containment forest — which loops are outer
boundaries and which are holes — yielding polygons-with-holes ready for
hatching or triangulation.

Geometric degeneracy is expected input here, not an error: a boundary that
collapses to fewer than 3 points yields no loop, and callers skip it.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package polygon

import (
	"fmt"
	"strings"

	"github.com/npillmayer/planar"
	"github.com/npillmayer/schuko/tracing"
)

// L writes to trace with key 'polygon'
func L() tracing.Trace {
	return tracing.Select("polygon")
}

// === Loops =================================================================

// Loop is an ordered ring of at least 3 points. The closing edge from the
// last point back to the first is implicit: first and last stored points
// are never duplicates of each other.
type Loop struct {
	points []planar.Pair
}

// NullPolygon creates an empty loop, to be extended by subsequent builder
// calls:
//
//	pg := NullPolygon().Knot(P(0,0)).Knot(P(1,3)).Knot(P(3,0)).Cycle()
func NullPolygon() *Loop {
	return &Loop{}
}

// Knot appends a corner point to a loop. Part of builder functionality.
func (l *Loop) Knot(p planar.Pair) *Loop {
	l.points = append(l.points, p)
	return l
}

// Cycle closes a loop under construction. A trailing knot coinciding with
// the first one is dropped, the closing edge is implicit.
// Part of builder functionality.
func (l *Loop) Cycle() *Loop {
	if n := len(l.points); n > 1 && l.points[n-1].Near(l.points[0], planar.Epsilon) {
		l.points = l.points[:n-1]
	}
	return l
}

// Box creates a rectangular loop from two opposite corner points.
func Box(corner1, corner2 planar.Pair) *Loop {
	x1, y1 := corner1.F()
	x2, y2 := corner2.F()
	return NullPolygon().
		Knot(planar.P(x1, y1)).
		Knot(planar.P(x2, y1)).
		Knot(planar.P(x2, y2)).
		Knot(planar.P(x1, y2)).
		Cycle()
}

// FromPoints wraps an already well-formed ring of points in a Loop. The
// slice is used as is; it must not repeat the first point at the end.
func FromPoints(points []planar.Pair) *Loop {
	return &Loop{points: points}
}

// AsString pretty-prints a loop.
func AsString(l *Loop) string {
	if l == nil {
		return "<null polygon>"
	}
	var b strings.Builder
	for i, p := range l.points {
		if i > 0 {
			b.WriteString(" -- ")
		}
		fmt.Fprintf(&b, "%s", p.String())
	}
	b.WriteString(" -- cycle")
	return b.String()
}

// N returns the number of corner points of the loop.
func (l *Loop) N() int {
	return len(l.points)
}

// Z returns the corner point at position (i mod N).
func (l *Loop) Z(i int) planar.Pair {
	n := len(l.points)
	i = ((i % n) + n) % n
	return l.points[i]
}

// Points returns the loop's ring of points. Callers must not mutate it.
func (l *Loop) Points() []planar.Pair {
	return l.points
}

// Reversed returns a new loop with opposite winding.
func (l *Loop) Reversed() *Loop {
	n := len(l.points)
	pts := make([]planar.Pair, n)
	for i, p := range l.points {
		pts[n-1-i] = p
	}
	return &Loop{points: pts}
}

// Transformed returns a new loop with every point transformed by T.
func (l *Loop) Transformed(T planar.AT) *Loop {
	pts := make([]planar.Pair, len(l.points))
	for i, p := range l.points {
		pts[i] = T.Transform(p)
	}
	return &Loop{points: pts}
}

// SignedArea returns the shoelace area of the loop: positive for
// counterclockwise winding, negative for clockwise.
func (l *Loop) SignedArea() float64 {
	var sum float64
	n := len(l.points)
	for i := 0; i < n; i++ {
		sum += l.points[i].Cross(l.points[(i+1)%n])
	}
	return sum / 2
}

// Area returns the absolute enclosed area of the loop.
func (l *Loop) Area() float64 {
	a := l.SignedArea()
	if a < 0 {
		a = -a
	}
	return a
}

// Centroid returns the area-weighted centroid of the loop. For loops with
// (near) zero area the plain vertex average is returned instead.
func (l *Loop) Centroid() planar.Pair {
	n := len(l.points)
	if n == 0 {
		return planar.Origin
	}
	a := l.SignedArea()
	if planar.Is0(a) {
		var avg planar.Pair
		for _, p := range l.points {
			avg += p
		}
		return avg.Scaled(1 / float64(n))
	}
	var cx, cy float64
	for i := 0; i < n; i++ {
		p, q := l.points[i], l.points[(i+1)%n]
		w := p.Cross(q)
		cx += (p.X() + q.X()) * w
		cy += (p.Y() + q.Y()) * w
	}
	return planar.P(cx/(6*a), cy/(6*a))
}

// Contains is a predicate: does the loop enclose point p? Implemented as
// standard even-odd ray casting along +x. Points exactly on the boundary
// may fall on either side.
func (l *Loop) Contains(p planar.Pair) bool {
	inside := false
	n := len(l.points)
	j := n - 1
	for i := 0; i < n; i++ {
		pi, pj := l.points[i], l.points[j]
		if (pi.Y() > p.Y()) != (pj.Y() > p.Y()) {
			xcross := pi.X() + (p.Y()-pi.Y())/(pj.Y()-pi.Y())*(pj.X()-pi.X())
			if p.X() < xcross {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}

// BBox returns the lower-left and upper-right corner of the loop's
// bounding box.
func (l *Loop) BBox() (min planar.Pair, max planar.Pair) {
	if len(l.points) == 0 {
		return planar.Origin, planar.Origin
	}
	minx, miny := l.points[0].F()
	maxx, maxy := minx, miny
	for _, p := range l.points[1:] {
		x, y := p.F()
		if x < minx {
			minx = x
		}
		if x > maxx {
			maxx = x
		}
		if y < miny {
			miny = y
		}
		if y > maxy {
			maxy = y
		}
	}
	return planar.P(minx, miny), planar.P(maxx, maxy)
}

// === Polygons ==============================================================

// Polygon is one outer loop plus zero or more hole loops, each hole fully
// contained in the outer ring.
type Polygon struct {
	Outer *Loop
	Holes []*Loop
}
