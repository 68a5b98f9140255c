/*
Package chain reconstructs closed loops from a bag of disconnected line
and arc fragments, as produced when a user selects scattered entities
that together bound a region.

Assembly is greedy: any unused fragment seeds a chain, which is then
extended by the best-scoring fragment whose endpoint lies within a
connection tolerance of the chain's open end. Fragments may connect
reversed, flipping their bulge sign. A chain is closed iff its first and
final points end up within the tolerance. Fragments left over after a
chain fails to close are reported and not retried, so assembly always
terminates.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package chain

import (
	"errors"
	"math"

	"github.com/npillmayer/planar"
	"github.com/npillmayer/planar/bulge"
	"github.com/npillmayer/planar/polygon"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'chain'
func tracer() tracing.Trace {
	return tracing.Select("chain")
}

var (
	// ErrNoSegments indicates an empty input bag.
	ErrNoSegments = errors.New("chain assembly needs at least one segment")
	// ErrMalformedSegment indicates a segment with invalid endpoints, a
	// programming error at the call site.
	ErrMalformedSegment = errors.New("segment has invalid endpoints")
)

// Weights tunes the connection score. The defaults preserve the intended
// ranking — endpoint distance dominates, then directional continuity,
// then layer affinity — but the exact magnitudes are tunable, not a
// contract.
type Weights struct {
	Distance  float64 // penalty on endpoint distance, normalized by the tolerance
	Direction float64 // bonus on tangent continuity (dot of unit tangents)
	Layer     float64 // bonus for a matching source layer
}

// DefaultWeights returns the default scoring weights.
func DefaultWeights() Weights {
	return Weights{Distance: 100, Direction: 2, Layer: 1}
}

// Options configures chain assembly.
type Options struct {
	Tolerance float64 // max endpoint distance for a connection
	Weights   Weights
}

// Chain is an ordered list of segments, each oriented in traversal
// direction. Closed means the chain's first and final points coincide
// within the assembly tolerance.
type Chain struct {
	Segments []planar.Segment
	Closed   bool
}

// FirstPoint returns the start point of the chain.
func (c *Chain) FirstPoint() planar.Pair {
	return c.Segments[0].P1()
}

// LastPoint returns the open end of the chain.
func (c *Chain) LastPoint() planar.Pair {
	return c.Segments[len(c.Segments)-1].P2()
}

// Vertices returns the chain as a bulge-annotated vertex list: one vertex
// per segment start, carrying the segment's bulge, plus the final end
// point for open chains. For closed chains the list is a ring suitable
// for bulge.Area and bulge.Perimeter, with arcs contributing their exact
// circular-segment geometry rather than a chord approximation.
func (c *Chain) Vertices() []bulge.Vertex {
	vs := make([]bulge.Vertex, 0, len(c.Segments)+1)
	for _, s := range c.Segments {
		vs = append(vs, bulge.Vertex{Point: s.P1(), Bulge: s.Bulge()})
	}
	if !c.Closed {
		vs = append(vs, bulge.Vertex{Point: c.LastPoint()})
	}
	return vs
}

// Area returns the enclosed area of a closed chain, with exact arc
// corrections. Open chains are measured as if closed by a chord from the
// open end back to the start.
func (c *Chain) Area() float64 {
	return bulge.Area(c.Vertices())
}

// Perimeter returns the true boundary length of the chain, arc lengths
// included. For open chains the implicit closing chord is not counted.
func (c *Chain) Perimeter() float64 {
	var sum float64
	for _, s := range c.Segments {
		sum += s.Length()
	}
	return sum
}

// Loop samples the chain into a polygon loop, retaining the full point
// sequence of arc fragments. Returns nil for degenerate chains.
func (c *Chain) Loop(tol planar.Tolerances) *polygon.Loop {
	return polygon.FromSegments(c.Segments, tol)
}

// Assemble reconstructs maximal chains from a bag of fragments.
//
// Fragments with non-finite endpoints are a call-site error and reported
// as ErrMalformedSegment. Zero-length fragments are expected degenerate
// input: they are filtered out before scoring, with a diagnostic.
//
// Assembly restarts the seed selection after every closed chain, so
// several independent closed loops can come out of one selection. When a
// chain ends open, the unconnected remainder is marked consumed and
// reported at warning level rather than retried.
func Assemble(segs []planar.Segment, opt Options) ([]*Chain, error) {
	if len(segs) == 0 {
		return nil, ErrNoSegments
	}
	if opt.Tolerance <= 0 {
		opt.Tolerance = planar.Epsilon
	}
	if opt.Weights == (Weights{}) {
		opt.Weights = DefaultWeights()
	}
	pool := make([]planar.Segment, 0, len(segs))
	for _, s := range segs {
		if !finite(s.P1()) || !finite(s.P2()) {
			return nil, ErrMalformedSegment
		}
		if s.IsDegenerate() {
			tracer().Debugf("zero-length fragment from entity %d dropped", s.Source().Entity)
			continue
		}
		pool = append(pool, s)
	}
	used := make([]bool, len(pool))
	remaining := len(pool)
	var chains []*Chain
	for remaining > 0 {
		c := &Chain{}
		for i, s := range pool {
			if !used[i] {
				c.Segments = append(c.Segments, s)
				used[i] = true
				remaining--
				break
			}
		}
		for remaining > 0 {
			best, rev := bestConnection(c, pool, used, opt)
			if best < 0 {
				break
			}
			next := pool[best]
			if rev {
				next = next.Reversed()
			}
			c.Segments = append(c.Segments, next)
			used[best] = true
			remaining--
		}
		c.Closed = c.FirstPoint().Near(c.LastPoint(), opt.Tolerance)
		chains = append(chains, c)
		if !c.Closed && remaining > 0 {
			tracer().Errorf("chain stayed open, %d unconnected fragments dropped", remaining)
			for i := range used {
				used[i] = true
			}
			remaining = 0
		}
	}
	return chains, nil
}

// bestConnection scores every unused fragment against the chain's open
// end, in both orientations, and returns the index and orientation of the
// best candidate within tolerance, or -1.
func bestConnection(c *Chain, pool []planar.Segment, used []bool, opt Options) (int, bool) {
	end := c.LastPoint()
	last := c.Segments[len(c.Segments)-1]
	tangent := last.EndTangent()
	best, bestRev := -1, false
	bestScore := math.Inf(-1)
	for i, s := range pool {
		if used[i] {
			continue
		}
		if d := end.Dist(s.P1()); d < opt.Tolerance {
			if sc := score(d, tangent, s.StartTangent(), last.Source(), s.Source(), opt); sc > bestScore {
				best, bestRev, bestScore = i, false, sc
			}
		}
		if d := end.Dist(s.P2()); d < opt.Tolerance {
			r := s.Reversed()
			if sc := score(d, tangent, r.StartTangent(), last.Source(), s.Source(), opt); sc > bestScore {
				best, bestRev, bestScore = i, true, sc
			}
		}
	}
	return best, bestRev
}

func score(dist float64, tangent, candTangent planar.Pair, from, to planar.Ident, opt Options) float64 {
	s := -opt.Weights.Distance * dist / opt.Tolerance
	s += opt.Weights.Direction * tangent.Dot(candTangent)
	if from.Layer == to.Layer {
		s += opt.Weights.Layer
	}
	return s
}

func finite(p planar.Pair) bool {
	x, y := p.F()
	return !math.IsNaN(x) && !math.IsInf(x, 0) && !math.IsNaN(y) && !math.IsInf(y, 0)
}
