package rast

import "github.com/gogpu/rast/internal/raster"

// FillOverlaps reports whether the point lies inside the transformed path
// under the winding rule. The test casts a horizontal ray from the left and
// sums the winding of crossings left of the point.
func FillOverlaps(path *Path, pt Point, m Matrix, rule FillRule) bool {
	return segmentsOverlap(fillSegments(path, m), pt, rule)
}

// StrokeOverlaps reports whether the point lies on the stroked outline of
// the transformed path.
func StrokeOverlaps(path *Path, pt Point, m Matrix, s Stroke) bool {
	return segmentsOverlap(strokeSegments(path, m, s), pt, FillRuleNonZero)
}

func segmentsOverlap(segs []raster.Segment, pt Point, rule FillRule) bool {
	winding := 0
	for _, s := range segs {
		if s.At.Y > pt.Y || pt.Y >= s.To.Y {
			continue
		}
		var x float64
		if s.At.X == s.To.X {
			x = s.At.X
		} else {
			t := (pt.Y - s.At.Y) / (s.To.Y - s.At.Y)
			x = s.At.X + t*(s.To.X-s.At.X)
		}
		if x < pt.X {
			winding += s.Winding
		}
	}
	return raster.ShouldFill(raster.FillRule(rule), winding)
}
