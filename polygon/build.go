package polygon

import (
	"math"

	"github.com/npillmayer/planar"
	"github.com/npillmayer/planar/bulge"
)

// CircleSamples is the point count used when a boundary turns out to be a
// full circle.
var CircleSamples = 192

// FromVertices builds a loop from a ring of bulge-annotated vertices, as
// found in CAD polylines. Bulged edges are sampled into polylines; straight
// edges contribute their endpoint. The result is passed through Cleanup;
// if fewer than 3 points survive, nil is returned and the caller should
// skip the boundary silently.
//
// A ring of exactly two vertices carrying bulge ±1 on both denotes a full
// circle (two half arcs). It is detected and sampled as a closed
// CircleSamples-point ring instead of a degenerate two-point "arc".
func FromVertices(ring []bulge.Vertex, tol planar.Tolerances) *Loop {
	if len(ring) < 2 {
		return nil
	}
	if len(ring) == 2 &&
		planar.Is1(math.Abs(ring[0].Bulge)) && planar.Is1(math.Abs(ring[1].Bulge)) {
		return circleThrough(ring[0].Point, ring[1].Point, tol)
	}
	var pts []planar.Pair
	pts = appendDedup(pts, ring[0].Point, tol.Point)
	for i := range ring {
		v, w := ring[i], ring[(i+1)%len(ring)]
		if planar.Is0(v.Bulge) {
			pts = appendDedup(pts, w.Point, tol.Point)
			continue
		}
		for _, s := range bulge.Samples(v.Point, w.Point, v.Bulge, tol) {
			pts = appendDedup(pts, s, tol.Point)
		}
	}
	return finishLoop(pts, tol)
}

// FromSegments builds a loop from an explicit edge list of lines and arcs,
// resolved to sampled points the same way as FromVertices. Edges are
// expected in traversal order; nil is returned for degenerate boundaries.
//
// A single arc edge sweeping the full circle (start angle = end angle) is
// detected and sampled as a closed CircleSamples-point ring.
func FromSegments(edges []planar.Segment, tol planar.Tolerances) *Loop {
	if len(edges) == 0 {
		return nil
	}
	if len(edges) == 1 {
		if a, isArc := edges[0].(planar.Arc); isArc && planar.Is0(a.Sweep()) && a.Radius > tol.Guard {
			return sampleCircle(a.Center, a.Radius, a.Start, a.CCW)
		}
	}
	var pts []planar.Pair
	pts = appendDedup(pts, edges[0].P1(), tol.Point)
	for _, e := range edges {
		b := e.Bulge()
		if planar.Is0(b) {
			pts = appendDedup(pts, e.P2(), tol.Point)
			continue
		}
		for _, s := range bulge.Samples(e.P1(), e.P2(), b, tol) {
			pts = appendDedup(pts, s, tol.Point)
		}
	}
	return finishLoop(pts, tol)
}

// circleThrough samples the full circle having the chord p1–p2 as its
// diameter.
func circleThrough(p1, p2 planar.Pair, tol planar.Tolerances) *Loop {
	r := p1.Dist(p2) / 2
	if r < tol.Guard {
		L().Debugf("degenerate full-circle boundary at %s dropped", p1)
		return nil
	}
	center := (p1 + p2).Scaled(0.5)
	return sampleCircle(center, r, (p1 - center).Angle(), true)
}

func sampleCircle(center planar.Pair, r, startAngle float64, ccw bool) *Loop {
	pts := make([]planar.Pair, CircleSamples)
	step := 2 * math.Pi / float64(CircleSamples)
	if !ccw {
		step = -step
	}
	for i := range pts {
		phi := startAngle + step*float64(i)
		pts[i] = center + planar.P(r*math.Cos(phi), r*math.Sin(phi))
	}
	return &Loop{points: pts}
}

func appendDedup(pts []planar.Pair, p planar.Pair, eps float64) []planar.Pair {
	if n := len(pts); n > 0 && pts[n-1].Near(p, eps) {
		return pts
	}
	return append(pts, p)
}

func finishLoop(pts []planar.Pair, tol planar.Tolerances) *Loop {
	pts = Cleanup(pts, tol)
	if len(pts) < 3 {
		L().Debugf("boundary collapsed to %d points, dropped", len(pts))
		return nil
	}
	return &Loop{points: pts}
}

// Cleanup normalizes a ring of points: points closer than tol.Point to
// their kept predecessor are dropped (including a trailing point that
// coincides with the first), then points colinear with both ring
// neighbors within tol.Colinear are removed, iterating until no removal
// exposes a new colinear triple. Running Cleanup on an already clean ring
// returns an identical point list.
func Cleanup(points []planar.Pair, tol planar.Tolerances) []planar.Pair {
	pts := make([]planar.Pair, 0, len(points))
	for _, p := range points {
		pts = appendDedup(pts, p, tol.Point)
	}
	if n := len(pts); n > 1 && pts[n-1].Near(pts[0], tol.Point) {
		pts = pts[:n-1]
	}
	for {
		if len(pts) < 3 {
			return pts
		}
		removed := false
		for i := 0; i < len(pts); i++ {
			n := len(pts)
			prev := pts[(i-1+n)%n]
			next := pts[(i+1)%n]
			d1 := pts[i] - prev
			d2 := next - pts[i]
			if math.Abs(d1.Cross(d2)) <= tol.Colinear {
				pts = append(pts[:i], pts[i+1:]...)
				removed = true
				i--
			}
		}
		if !removed {
			return pts
		}
	}
}
