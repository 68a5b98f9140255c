package hatch

import (
	"math"

	"github.com/npillmayer/planar"
)

// ApplyDash breaks the segment from a to b into strokes according to a
// repeating dash pattern: the lengths are consumed alternately as "draw"
// and "gap", starting with a draw, and the final dash is clipped to the
// segment end. An empty or zero-total pattern yields the whole segment.
func ApplyDash(a, b planar.Pair, dashes []float64) []planar.Line {
	total := 0.0
	for _, d := range dashes {
		total += math.Abs(d)
	}
	length := a.Dist(b)
	if len(dashes) == 0 || total < planar.Epsilon || length < planar.Epsilon {
		if length < planar.Epsilon {
			return nil
		}
		return []planar.Line{{From: a, To: b, Src: planar.NoIdent}}
	}
	dir := (b - a).Scaled(1 / length)
	var out []planar.Line
	pos := 0.0
	draw := true
	for i := 0; pos < length; i++ {
		d := math.Abs(dashes[i%len(dashes)])
		if draw && d > 0 {
			end := pos + d
			if end > length {
				end = length
			}
			out = append(out, planar.Line{
				From: a + dir.Scaled(pos),
				To:   a + dir.Scaled(end),
				Src:  planar.NoIdent,
			})
		}
		pos += d
		draw = !draw
	}
	return out
}
