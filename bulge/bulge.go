/*
Package bulge evaluates circular arcs given in chord-plus-bulge form, as
used by CAD polylines: a signed scalar b = tan(θ/4) attached to a vertex
encodes the arc to the next vertex, where θ is the included angle of the
arc. Positive bulge means counterclockwise traversal.

The package derives circle geometry (center, radius, angles) from a chord
and a bulge, samples arcs into polylines with bounded chordal error, and
measures area and perimeter of closed bulge-annotated vertex rings.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package bulge

import (
	"math"

	"github.com/npillmayer/planar"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'geometry'
func tracer() tracing.Trace {
	return tracing.Select("geometry")
}

// SampleLength is the target arc length covered by one subdivision when
// sampling an arc into a polyline. Lowering it produces denser samples.
var SampleLength float64 = 6.0

// MinSamples is the minimum subdivision count when sampling an arc,
// regardless of arc length.
var MinSamples int = 16

// Vertex is a polyline vertex with an attached bulge. The bulge encodes
// the arc from this vertex to the next one in the ring; 0 means a
// straight segment.
type Vertex struct {
	Point planar.Pair
	Bulge float64
}

// V is a quick notation for constructing a vertex from floats.
func V(x, y, b float64) Vertex {
	return Vertex{Point: planar.P(x, y), Bulge: b}
}

// Geom describes the circle underlying a chord-plus-bulge arc.
type Geom struct {
	Center planar.Pair
	Radius float64 // geometric radius, always positive
	Start  float64 // angle of the chord's start point around Center
	Theta  float64 // signed included angle, positive = counterclockwise
}

// Eval derives the circle geometry for the arc from p1 to p2 with bulge b.
// ok is false for degenerate input: a (near) zero-length chord or a (near)
// zero bulge, neither of which describes an arc.
//
// The center sits on the chord's perpendicular bisector, offset from the
// chord midpoint by c·(1-b²)/(4b) along the chord's left normal, and the
// radius is c/(2·sin(θ/2)) with θ = 4·atan(b).
func Eval(p1, p2 planar.Pair, b float64, tol planar.Tolerances) (g Geom, ok bool) {
	chord := p2 - p1
	c := chord.Abs()
	if c < tol.Guard || math.Abs(b) < tol.Guard {
		return g, false
	}
	theta := 4 * math.Atan(b)
	r := c / (2 * math.Sin(theta/2)) // sign follows sign of theta
	apothem := c * (1 - b*b) / (4 * b)
	center := (p1+p2).Scaled(0.5) + chord.Unit().Normal().Scaled(apothem)
	g.Center = center
	g.Radius = math.Abs(r)
	g.Start = (p1 - center).Angle()
	g.Theta = theta
	return g, true
}

// Samples returns the arc from p1 to p2 with bulge b sampled as a
// polyline, endpoints included. The subdivision count scales with the arc
// length so chordal error stays bounded independent of radius. Degenerate
// chords collapse to the single point p1; a zero bulge yields the chord
// itself. The result depends only on the inputs, identical inputs
// resample identically.
func Samples(p1, p2 planar.Pair, b float64, tol planar.Tolerances) []planar.Pair {
	g, ok := Eval(p1, p2, b, tol)
	if !ok {
		if p2.Dist(p1) < tol.Guard {
			tracer().Debugf("arc chord at %s collapsed to a point", p1)
			return []planar.Pair{p1}
		}
		return []planar.Pair{p1, p2}
	}
	n := int(math.Ceil(g.Radius * math.Abs(g.Theta) / SampleLength))
	if n < MinSamples {
		n = MinSamples
	}
	pts := make([]planar.Pair, n+1)
	pts[0] = p1
	for i := 1; i < n; i++ {
		phi := g.Start + g.Theta*float64(i)/float64(n)
		pts[i] = g.Center + planar.P(g.Radius*math.Cos(phi), g.Radius*math.Sin(phi))
	}
	pts[n] = p2
	return pts
}

// Segment constructs a planar.Arc equivalent to the arc from p1 to p2
// with bulge b. ok is false for degenerate input.
func Segment(p1, p2 planar.Pair, b float64, src planar.Ident, tol planar.Tolerances) (planar.Arc, bool) {
	g, ok := Eval(p1, p2, b, tol)
	if !ok {
		return planar.Arc{}, false
	}
	a := planar.Arc{
		Center: g.Center,
		Radius: g.Radius,
		Start:  g.Start,
		End:    g.Start + g.Theta,
		CCW:    g.Theta > 0,
		Src:    src,
	}
	return a, true
}

// Length returns the true length of the edge from p1 to p2 with bulge b:
// the chord length for b = 0, the arc length r·|θ| otherwise.
func Length(p1, p2 planar.Pair, b float64) float64 {
	c := p2.Dist(p1)
	if planar.Is0(b) || planar.Is0(c) {
		return c
	}
	theta := 4 * math.Atan(b)
	r := c / (2 * math.Sin(theta/2))
	return math.Abs(r * theta)
}

// SegmentArea returns the signed area of the circular segment between the
// chord p1→p2 and the arc with bulge b: (r²/2)·(θ - sin θ), carrying the
// sign of the bulge. A zero bulge contributes nothing.
//
// The sign is the bulge's own, independent of the winding of any polygon
// the edge belongs to: winding only orients the chord polygon, whereas
// each arc independently bows outward or inward of its chord.
func SegmentArea(p1, p2 planar.Pair, b float64) float64 {
	c := p2.Dist(p1)
	if planar.Is0(b) || planar.Is0(c) {
		return 0
	}
	theta := math.Abs(4 * math.Atan(b))
	r := c / (2 * math.Sin(theta/2))
	seg := (r * r / 2) * (theta - math.Sin(theta))
	if b < 0 {
		seg = -seg
	}
	return seg
}

// Area returns the enclosed area of a closed ring of bulge vertices. The
// last vertex implicitly connects back to the first. The result is the
// absolute value of the shoelace sum over the chord polygon plus the
// circular-segment correction of every bulged edge.
func Area(ring []Vertex) float64 {
	n := len(ring)
	if n < 2 {
		return 0
	}
	var shoelace, correction float64
	for i := 0; i < n; i++ {
		v, w := ring[i], ring[(i+1)%n]
		shoelace += v.Point.Cross(w.Point)
		correction += SegmentArea(v.Point, w.Point, v.Bulge)
	}
	return math.Abs(shoelace/2 + correction)
}

// Perimeter returns the true boundary length of a closed ring of bulge
// vertices, accounting for arc lengths of bulged edges. The last vertex
// implicitly connects back to the first.
func Perimeter(ring []Vertex) float64 {
	n := len(ring)
	if n < 2 {
		return 0
	}
	var sum float64
	for i := 0; i < n; i++ {
		v, w := ring[i], ring[(i+1)%n]
		sum += Length(v.Point, w.Point, v.Bulge)
	}
	return sum
}
