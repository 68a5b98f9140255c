/*
Package planar implements primitives for a 2D computational-geometry
kernel: points, tolerance configuration, affine transformations, and
line/arc segments.

The kernel turns loosely-structured CAD boundary data into well-formed
polygons-with-holes, hatch-fill stroke sets and closed-loop
reconstructions. Subpackages build on the primitives herein:

  - bulge:     circular-arc evaluation from chord + bulge, loop area/perimeter
  - polygon:   loop building, cleanup, and nesting resolution
  - hatch:     scanline clipping of parallel line families, dash patterns
  - chain:     reconstruction of closed loops from scattered fragments
  - mincircle: minimum enclosing circle (Welzl)

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package planar

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'planar'
func tracer() tracing.Trace {
	return tracing.Select("planar")
}

// === Numeric Data Type =====================================================

// Deg2Rad is a constant for converting from DEG to RAD or vice versa
var Deg2Rad float64 = 0.01745329251

// Epsilon : numbers below ε are considered 0
var Epsilon float64 = 0.0000001

// Is0 is a predicate: is n = 0 ?
func Is0(n float64) bool {
	return math.Abs(n) <= Epsilon
}

// Is1 is a predicate: is n = 1.0 ?
func Is1(n float64) bool {
	return math.Abs(1-n) <= Epsilon
}

// Zap makes n = 0 if n "means" to be zero
func Zap(n float64) float64 {
	if Is0(n) {
		n = 0
	}
	return n
}

// Round to ε.
func Round(n float64) float64 {
	return math.Round(n/Epsilon) * Epsilon
}

// === Tolerances ============================================================

// Tolerances bundles the numeric thresholds threaded through the kernel.
// Hosts work in different units (millimeters, rasterized pixels), therefore
// thresholds are explicit call parameters, never hidden constants.
type Tolerances struct {
	Point    float64 // point coincidence: points closer than this collapse
	Colinear float64 // cross-product threshold below which 3 points count as colinear
	Guard    float64 // guard for near-zero denominators and other robustness checks
}

// DefaultTolerances returns thresholds suited for model units in the
// millimeter range.
func DefaultTolerances() Tolerances {
	return Tolerances{
		Point:    1e-6,
		Colinear: 1e-9,
		Guard:    1e-12,
	}
}

// === Pair Data Type ========================================================

// Pair is an interface for pairs / 2D-points
type Pair complex128

// Origin represents the frequently used constant (0,0).
var Origin = P(float64(0), float64(0))

// Pretty Stringer for simple pairs.
func (p Pair) String() string {
	return fmt.Sprintf("(%g,%g)", real(p), imag(p))
}

// C returns a Pair as a complex number.
func (p Pair) C() complex128 {
	return complex128(p)
}

// C2P returns a Pair from a complex number.
func C2P(c complex128) Pair {
	if cmplx.IsNaN(c) || cmplx.IsInf(c) {
		tracer().Errorf("created pair for complex.NaN")
		return P(0, 0)
	}
	return P(real(c), imag(c))
}

// P is a quick notation for contructing a pair from floats.
func P(x, y float64) Pair {
	return Pair(complex(x, y))
}

// F is a quick notation for getting float values from a pair.
func (p Pair) F() (float64, float64) {
	px := real(p.C())
	py := imag(p.C())
	return px, py
}

// X is the x-part of a pair.
func (p Pair) X() float64 {
	return real(p.C())
}

// Y is the y-part of a pair.
func (p Pair) Y() float64 {
	return imag(p.C())
}

// Zap rounds x-part and y-part to Epsilon.
func (p Pair) Zap() Pair {
	p = P(Zap(p.X()), Zap(p.Y()))
	return p
}

// IsOrigin is a predicate: is this pair origin?
func (p Pair) IsOrigin() bool {
	return p.Equal(Origin)
}

// Equal compares two pairs.
func (p Pair) Equal(p2 Pair) bool {
	p2 = p2.Zap()
	return Is0(p.X()-p2.X()) && Is0(p.Y()-p2.Y())
}

// Near is a tolerance-parametrized variant of Equal: are p and p2 closer
// than eps? Point comparisons in the kernel are always tolerance-based,
// never exact.
func (p Pair) Near(p2 Pair, eps float64) bool {
	return cmplx.Abs((p2 - p).C()) < eps
}

// Abs returns the length of p interpreted as a vector.
func (p Pair) Abs() float64 {
	return cmplx.Abs(p.C())
}

// Dist returns the distance between two points.
func (p Pair) Dist(p2 Pair) float64 {
	return (p2 - p).Abs()
}

// Dot returns the dot product of p and p2 interpreted as vectors.
func (p Pair) Dot(p2 Pair) float64 {
	return p.X()*p2.X() + p.Y()*p2.Y()
}

// Cross returns the scalar cross product of p and p2 interpreted as vectors.
func (p Pair) Cross(p2 Pair) float64 {
	return p.X()*p2.Y() - p.Y()*p2.X()
}

// Unit returns p scaled to length 1. The zero vector is returned unchanged.
func (p Pair) Unit() Pair {
	d := p.Abs()
	if Is0(d) {
		return p
	}
	return p.Scaled(1 / d)
}

// Normal returns the left normal of p interpreted as a vector, i.e. p
// rotated counterclockwise by 90 degrees.
func (p Pair) Normal() Pair {
	return P(-p.Y(), p.X())
}

// Angle returns the angle of p interpreted as a vector, in radians
// within (-π, π].
func (p Pair) Angle() float64 {
	return math.Atan2(p.Y(), p.X())
}

// Scaled returns a new pair scaled by factor a.
func (p Pair) Scaled(a float64) Pair {
	return P(p.X()*a, p.Y()*a).Zap()
}

// XScaled returns a new pair x-scaled by factor a.
func (p Pair) XScaled(a float64) Pair {
	return P(p.X()*a, p.Y()).Zap()
}

// YScaled returns a new pair y-scaled by factor a.
func (p Pair) YScaled(a float64) Pair {
	return P(p.X(), p.Y()*a).Zap()
}

// Shifted returns a new pair translated by v.
func (p Pair) Shifted(v Pair) Pair {
	T := Translation(v)
	return T.Transform(p).Zap()
}

// Rotated returns a new pair rotated around origin by theta (counterclockwise).
func (p Pair) Rotated(theta float64) Pair {
	T := Rotation(theta)
	return T.Transform(p).Zap()
}

// Rotatedaround returns a new pair rotated around v by theta (counterclockwise).
func (p Pair) Rotatedaround(v Pair, theta float64) Pair {
	return p.Shifted(-v).Rotated(theta).Shifted(v).Zap()
}
