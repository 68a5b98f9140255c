/*
Package hatch computes the stroke geometry of hatch fills: families of
parallel scanlines are clipped against a polygon-with-holes using a
vertex-safe even-odd rule, and the surviving sub-segments are broken up
by a repeating dash pattern.

Solid fills do not pass through here; they consume the polygon-with-holes
directly (see polygon.Polygon.Region).

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package hatch

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'hatch'
func tracer() tracing.Trace {
	return tracing.Select("hatch")
}

// Interval is a scalar range [Start,End] along the 1-D parametrization of
// a scanline. Interval slices handed between the functions below are kept
// sorted and non-overlapping; neighbors closer than eps are merged.
type Interval struct {
	Start, End float64
}

// Length returns End - Start.
func (iv Interval) Length() float64 {
	return iv.End - iv.Start
}

// Merge coalesces a sorted interval slice in a single walk: an interval
// starting within eps of its predecessor's end joins it. The relative
// order of entries is never changed, and the result has no overlapping or
// touching-within-eps neighbors.
func Merge(ivs []Interval, eps float64) []Interval {
	if len(ivs) == 0 {
		return nil
	}
	out := make([]Interval, 0, len(ivs))
	cur := ivs[0]
	for _, iv := range ivs[1:] {
		if iv.Start <= cur.End+eps {
			if iv.End > cur.End {
				cur.End = iv.End
			}
			continue
		}
		out = append(out, cur)
		cur = iv
	}
	return append(out, cur)
}

// Subtract removes the hole intervals from every outer interval, emitting
// the outer sub-ranges not covered by any hole. Both inputs must be sorted;
// holes should additionally be merged. Boundary comparisons are
// eps-tolerant throughout, so holes that merely touch an outer interval
// (or each other) do not split off zero-width slivers.
func Subtract(outer, holes []Interval, eps float64) []Interval {
	if len(holes) == 0 {
		out := make([]Interval, len(outer))
		copy(out, outer)
		return out
	}
	var out []Interval
	for _, o := range outer {
		cur := o.Start
		for _, h := range holes {
			if h.End < cur+eps {
				continue
			}
			if h.Start > o.End-eps {
				break
			}
			if h.Start > cur+eps {
				out = append(out, Interval{Start: cur, End: h.Start})
			}
			if h.End > cur {
				cur = h.End
			}
			if cur > o.End-eps {
				break
			}
		}
		if cur < o.End-eps {
			out = append(out, Interval{Start: cur, End: o.End})
		}
	}
	return out
}

// Covered returns the total length of an interval set.
func Covered(ivs []Interval) float64 {
	var sum float64
	for _, iv := range ivs {
		sum += iv.Length()
	}
	return sum
}
