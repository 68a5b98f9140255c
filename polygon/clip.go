package polygon

import (
	polyclip "github.com/akavel/polyclip-go"

	"github.com/npillmayer/planar"
)

// Bridging to polyclip-go: polygons-with-holes leave the kernel as plain
// contour sets, e.g. towards a triangulating renderer, and solid fills
// consume the outer-minus-holes region directly.

// Contour converts a loop to a polyclip contour.
func (l *Loop) Contour() polyclip.Contour {
	c := make(polyclip.Contour, 0, len(l.points))
	for _, p := range l.points {
		c = append(c, polyclip.Point{X: p.X(), Y: p.Y()})
	}
	return c
}

// PolyClip converts a polygon-with-holes to a multi-contour polyclip
// polygon (even-odd interpretation).
func (pg *Polygon) PolyClip() polyclip.Polygon {
	pc := polyclip.Polygon{pg.Outer.Contour()}
	for _, h := range pg.Holes {
		pc = append(pc, h.Contour())
	}
	return pc
}

// Region computes the outer ring minus all holes as an explicit contour
// set, the shape a solid fill renders. The boolean operation is delegated
// to polyclip-go.
func (pg *Polygon) Region() polyclip.Polygon {
	outer := polyclip.Polygon{pg.Outer.Contour()}
	if len(pg.Holes) == 0 {
		return outer
	}
	var holes polyclip.Polygon
	for _, h := range pg.Holes {
		holes = append(holes, h.Contour())
	}
	return outer.Construct(polyclip.DIFFERENCE, holes)
}

// FromContour wraps a polyclip contour as a loop, dropping a trailing
// duplicate point.
func FromContour(c polyclip.Contour) *Loop {
	l := NullPolygon()
	for _, p := range c {
		l.Knot(planar.P(p.X, p.Y))
	}
	return l.Cycle()
}
