package planar

import (
	"math"
)

// === Segments ==============================================================

// Ident ties a segment back to the source entity it was derived from.
// Chain reconstruction uses it for bookkeeping and as an affinity hint
// (fragments from the same layer are preferred when scores tie).
type Ident struct {
	Entity int    // caller-chosen entity handle, -1 if unknown
	Layer  string // source layer name
}

// NoIdent is the identity of segments with no known source entity.
var NoIdent = Ident{Entity: -1}

// Segment is a tagged variant: either a Line or an Arc. Segments are
// oriented; P1 is the first endpoint in traversal order. For arcs, Bulge
// returns the equivalent bulge value when the arc is expressed between
// its two endpoints.
type Segment interface {
	P1() Pair
	P2() Pair
	Bulge() float64
	Source() Ident
	Reversed() Segment    // same geometry, opposite traversal
	StartTangent() Pair   // unit tangent at P1, in traversal direction
	EndTangent() Pair     // unit tangent at P2, in traversal direction
	Length() float64      // true length (arc length for arcs)
	IsDegenerate() bool   // endpoints coincide within Epsilon
}

// --- Line ------------------------------------------------------------------

// Line is a straight segment between two points.
type Line struct {
	From, To Pair
	Src      Ident
}

// P1 returns the first endpoint.
func (l Line) P1() Pair { return l.From }

// P2 returns the second endpoint.
func (l Line) P2() Pair { return l.To }

// Bulge of a straight segment is always 0.
func (l Line) Bulge() float64 { return 0 }

// Source returns the identity of the owning source entity.
func (l Line) Source() Ident { return l.Src }

// Reversed returns the line traversed in the opposite direction.
func (l Line) Reversed() Segment {
	return Line{From: l.To, To: l.From, Src: l.Src}
}

// StartTangent returns the unit direction from From to To.
func (l Line) StartTangent() Pair { return (l.To - l.From).Unit() }

// EndTangent equals StartTangent for straight segments.
func (l Line) EndTangent() Pair { return l.StartTangent() }

// Length returns the distance between the endpoints.
func (l Line) Length() float64 { return l.From.Dist(l.To) }

// IsDegenerate is a predicate: do the endpoints coincide?
func (l Line) IsDegenerate() bool { return l.From.Near(l.To, Epsilon) }

// --- Arc -------------------------------------------------------------------

// Arc is a circular arc around Center, traversed from angle Start to angle
// End (radians). CCW selects the traversal direction; angles are always
// measured counterclockwise from the positive x-axis.
type Arc struct {
	Center     Pair
	Radius     float64
	Start, End float64
	CCW        bool
	Src        Ident
}

// normalized angle in [0, 2π)
func norm2pi(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

// Sweep returns the signed included angle of the arc: positive for
// counterclockwise traversal, negative for clockwise.
func (a Arc) Sweep() float64 {
	if a.CCW {
		return norm2pi(a.End - a.Start)
	}
	return -norm2pi(a.Start - a.End)
}

// P1 returns the point at the start angle.
func (a Arc) P1() Pair {
	return a.Center + P(a.Radius*math.Cos(a.Start), a.Radius*math.Sin(a.Start))
}

// P2 returns the point at the end angle.
func (a Arc) P2() Pair {
	return a.Center + P(a.Radius*math.Cos(a.End), a.Radius*math.Sin(a.End))
}

// Bulge returns tan(θ/4) for the arc's signed included angle θ, i.e. the
// bulge of the equivalent chord-plus-bulge representation from P1 to P2.
func (a Arc) Bulge() float64 {
	return math.Tan(a.Sweep() / 4)
}

// Source returns the identity of the owning source entity.
func (a Arc) Source() Ident { return a.Src }

// Reversed returns the arc traversed in the opposite direction.
func (a Arc) Reversed() Segment {
	return Arc{
		Center: a.Center,
		Radius: a.Radius,
		Start:  a.End,
		End:    a.Start,
		CCW:    !a.CCW,
		Src:    a.Src,
	}
}

// tangent at angle phi, in traversal direction
func (a Arc) tangentAt(phi float64) Pair {
	t := P(-math.Sin(phi), math.Cos(phi))
	if !a.CCW {
		t = t.Scaled(-1)
	}
	return t
}

// StartTangent returns the unit tangent at P1 in traversal direction.
func (a Arc) StartTangent() Pair { return a.tangentAt(a.Start) }

// EndTangent returns the unit tangent at P2 in traversal direction.
func (a Arc) EndTangent() Pair { return a.tangentAt(a.End) }

// Length returns r·|θ|.
func (a Arc) Length() float64 {
	return a.Radius * math.Abs(a.Sweep())
}

// IsDegenerate is a predicate: is the arc's radius or sweep zero?
func (a Arc) IsDegenerate() bool {
	return Is0(a.Radius) || Is0(a.Sweep())
}
