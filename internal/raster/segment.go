// Package raster turns polygonal shapes into per-pixel coverage: it builds
// oriented segments, bins them into horizontal strips, and walks scanlines
// computing antialiased or exact coverage spans.
package raster

import (
	"math"

	"github.com/gogpu/rast/internal/flatten"
)

// Point aliases the flattener's point type; shapes flow from the flattener
// (optionally through the stroker) straight into segment construction.
type Point = flatten.Point

// Segment is an oriented edge with its endpoints ordered by ascending y.
// Winding is +1 if the original edge pointed downward, -1 if upward.
type Segment struct {
	At, To  Point
	Winding int
}

// FromShapes converts shape edges into segments. Horizontal edges carry no
// winding information for a horizontal scanline ray and are discarded.
func FromShapes(shapes [][]Point) []Segment {
	total := 0
	for _, s := range shapes {
		total += len(s)
	}
	segs := make([]Segment, 0, total)

	for _, shape := range shapes {
		for i := 1; i < len(shape); i++ {
			p, q := shape[i-1], shape[i]
			if p.Y == q.Y {
				continue
			}
			w := 1
			if p.Y > q.Y {
				w = -1
				p, q = q, p
			}
			segs = append(segs, Segment{At: p, To: q, Winding: w})
		}
	}
	return segs
}

// Bounds returns the bounding box of the segments. ok is false when there
// are no segments or any coordinate is NaN; callers treat that as empty
// geometry.
func Bounds(segs []Segment) (minX, minY, maxX, maxY float64, ok bool) {
	if len(segs) == 0 {
		return 0, 0, 0, 0, false
	}
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, s := range segs {
		minX = math.Min(minX, math.Min(s.At.X, s.To.X))
		maxX = math.Max(maxX, math.Max(s.At.X, s.To.X))
		minY = math.Min(minY, s.At.Y)
		maxY = math.Max(maxY, s.To.Y)
	}
	if math.IsNaN(minX) || math.IsNaN(minY) || math.IsNaN(maxX) || math.IsNaN(maxY) {
		return 0, 0, 0, 0, false
	}
	return minX, minY, maxX, maxY, true
}
