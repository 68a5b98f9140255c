package hatch

import (
	"math"
	"sort"

	"github.com/npillmayer/planar"
	"github.com/npillmayer/planar/polygon"
)

// Pattern is one family of parallel lines of a hatch definition: line k
// passes through Base + k·Offset (Offset given in pattern space, i.e.
// rotated by Angle into world space), running in direction Angle. Dashes
// holds alternating draw/gap lengths; an empty slice draws solid lines.
type Pattern struct {
	Angle  float64 // radians, counterclockwise from the x-axis
	Base   planar.Pair
	Offset planar.Pair
	Dashes []float64
}

// Axes returns the unit direction of the pattern's lines and its left
// normal.
func (pat Pattern) Axes() (dir, normal planar.Pair) {
	dir = planar.Rotation(pat.Angle).TransformDir(planar.P(1, 0))
	return dir, dir.Normal()
}

// Step returns the world-space offset from line k to line k+1.
func (pat Pattern) Step() planar.Pair {
	return planar.Rotation(pat.Angle).TransformDir(pat.Offset)
}

// crossings collects the scanline parameters s at which the line
// origin + s·dir crosses an edge of the ring. The crossing test is
// half-open in the normal coordinate d: an edge counts iff
// (d1<d && d2>=d) || (d2<d && d1>=d), so a vertex lying exactly on the
// scanline is counted once, not twice. Edges parallel to the scanline
// never satisfy the condition and are skipped. The result is sorted.
func crossings(ring []planar.Pair, origin, dir, normal planar.Pair) []float64 {
	d := origin.Dot(normal)
	var ss []float64
	n := len(ring)
	for i := 0; i < n; i++ {
		p1, p2 := ring[i], ring[(i+1)%n]
		d1, d2 := p1.Dot(normal), p2.Dot(normal)
		if (d1 < d && d2 >= d) || (d2 < d && d1 >= d) {
			u := (d - d1) / (d2 - d1)
			q := p1 + (p2 - p1).Scaled(u)
			ss = append(ss, (q - origin).Dot(dir))
		}
	}
	sort.Float64s(ss)
	return ss
}

// ScanlineIntervals computes the parameter intervals along the scanline
// origin + s·dir (dir a unit vector, normal its left normal) that lie
// inside the ring, by even-odd pairing of the sorted crossing parameters.
// Crossings closer than eps are treated as one.
func ScanlineIntervals(ring []planar.Pair, origin, dir, normal planar.Pair, eps float64) []Interval {
	ss := crossings(ring, origin, dir, normal)
	if len(ss) > 1 {
		dedup := ss[:1]
		for _, s := range ss[1:] {
			if s-dedup[len(dedup)-1] >= eps {
				dedup = append(dedup, s)
			}
		}
		ss = dedup
	}
	var ivs []Interval
	for i := 0; i+1 < len(ss); i += 2 {
		ivs = append(ivs, Interval{Start: ss[i], End: ss[i+1]})
	}
	return ivs
}

// Strokes computes the visible stroke segments of one pattern family
// inside the polygon-minus-holes region: every pattern line crossing the
// polygon's bounding box is clipped against the outer ring, the hole
// coverage is subtracted, and the surviving sub-segments are broken up by
// the pattern's dash lengths.
func Strokes(pg *polygon.Polygon, pat Pattern, tol planar.Tolerances) []planar.Line {
	if pg == nil || pg.Outer == nil {
		return nil
	}
	dir, normal := pat.Axes()
	step := pat.Step()
	dstep := step.Dot(normal)
	if math.Abs(dstep) < tol.Guard {
		tracer().Errorf("hatch pattern offset parallel to its lines, no strokes")
		return nil
	}
	min, max := pg.Outer.BBox()
	dmin, dmax := projectBox(min, max, normal)
	dbase := pat.Base.Dot(normal)
	k0 := (dmin - dbase) / dstep
	k1 := (dmax - dbase) / dstep
	if k0 > k1 {
		k0, k1 = k1, k0
	}
	var strokes []planar.Line
	for k := int(math.Ceil(k0)); k <= int(math.Floor(k1)); k++ {
		origin := pat.Base + step.Scaled(float64(k))
		outer := Merge(ScanlineIntervals(pg.Outer.Points(), origin, dir, normal, tol.Point), tol.Point)
		if len(outer) == 0 {
			continue
		}
		var holes []Interval
		for _, h := range pg.Holes {
			holes = append(holes, ScanlineIntervals(h.Points(), origin, dir, normal, tol.Point)...)
		}
		if len(holes) > 0 {
			sort.Slice(holes, func(i, j int) bool { return holes[i].Start < holes[j].Start })
			holes = Merge(holes, tol.Point)
		}
		for _, iv := range Subtract(outer, holes, tol.Point) {
			a := origin + dir.Scaled(iv.Start)
			b := origin + dir.Scaled(iv.End)
			strokes = append(strokes, ApplyDash(a, b, pat.Dashes)...)
		}
	}
	return strokes
}

// projects the corners of an axis-aligned box onto the normal direction
func projectBox(min, max planar.Pair, normal planar.Pair) (float64, float64) {
	corners := [4]planar.Pair{
		min, max,
		planar.P(min.X(), max.Y()),
		planar.P(max.X(), min.Y()),
	}
	lo, hi := corners[0].Dot(normal), corners[0].Dot(normal)
	for _, c := range corners[1:] {
		d := c.Dot(normal)
		if d < lo {
			lo = d
		}
		if d > hi {
			hi = d
		}
	}
	return lo, hi
}
