package rast

import "math"

// Rect is an axis-aligned rectangle with float64 coordinates.
// Min is the top-left corner, Max the bottom-right.
type Rect struct {
	Min, Max Point
}

// RectFromXYWH creates a Rect from a position and size.
func RectFromXYWH(x, y, w, h float64) Rect {
	return Rect{Min: Pt(x, y), Max: Pt(x+w, y+h)}
}

// Width returns the rectangle width.
func (r Rect) Width() float64 { return r.Max.X - r.Min.X }

// Height returns the rectangle height.
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

// IsEmpty reports whether the rectangle encloses no area.
func (r Rect) IsEmpty() bool {
	return r.Max.X <= r.Min.X || r.Max.Y <= r.Min.Y
}

// Contains reports whether the point lies inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X < r.Max.X && p.Y >= r.Min.Y && p.Y < r.Max.Y
}

// Union returns the smallest rectangle containing both r and s.
func (r Rect) Union(s Rect) Rect {
	if r.IsEmpty() {
		return s
	}
	if s.IsEmpty() {
		return r
	}
	return Rect{
		Min: Pt(math.Min(r.Min.X, s.Min.X), math.Min(r.Min.Y, s.Min.Y)),
		Max: Pt(math.Max(r.Max.X, s.Max.X), math.Max(r.Max.Y, s.Max.Y)),
	}
}

// SnapToPixels expands the rectangle outward to whole pixel boundaries.
func (r Rect) SnapToPixels() Rect {
	return Rect{
		Min: Pt(math.Floor(r.Min.X), math.Floor(r.Min.Y)),
		Max: Pt(math.Ceil(r.Max.X), math.Ceil(r.Max.Y)),
	}
}
