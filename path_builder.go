package rast

// PathBuilder provides a fluent interface for path construction.
// All methods return the builder for chaining. Arc errors are sticky and
// returned by Build.
type PathBuilder struct {
	path *Path
	err  error
}

// BuildPath starts a new path builder.
func BuildPath() *PathBuilder {
	return &PathBuilder{path: NewPath()}
}

// MoveTo moves to a new position.
func (b *PathBuilder) MoveTo(x, y float64) *PathBuilder {
	b.path.MoveTo(x, y)
	return b
}

// LineTo draws a line to a position.
func (b *PathBuilder) LineTo(x, y float64) *PathBuilder {
	b.path.LineTo(x, y)
	return b
}

// QuadTo draws a quadratic Bezier curve.
func (b *PathBuilder) QuadTo(cx, cy, x, y float64) *PathBuilder {
	b.path.QuadTo(cx, cy, x, y)
	return b
}

// CubicTo draws a cubic Bezier curve.
func (b *PathBuilder) CubicTo(c1x, c1y, c2x, c2y, x, y float64) *PathBuilder {
	b.path.CubicTo(c1x, c1y, c2x, c2y, x, y)
	return b
}

// ArcTo draws a tangent arc through two control points.
func (b *PathBuilder) ArcTo(c1, c2 Point, r float64) *PathBuilder {
	if err := b.path.ArcTo(c1, c2, r); err != nil && b.err == nil {
		b.err = err
	}
	return b
}

// Arc draws a circular arc around a center.
func (b *PathBuilder) Arc(center Point, r, a0, a1 float64, ccw bool) *PathBuilder {
	if err := b.path.Arc(center, r, a0, a1, ccw); err != nil && b.err == nil {
		b.err = err
	}
	return b
}

// Rect adds a rectangle subpath.
func (b *PathBuilder) Rect(x, y, w, h float64) *PathBuilder {
	b.path.Rect(x, y, w, h)
	return b
}

// Circle adds a circle subpath.
func (b *PathBuilder) Circle(cx, cy, r float64) *PathBuilder {
	b.path.Circle(cx, cy, r)
	return b
}

// Close closes the current subpath.
func (b *PathBuilder) Close() *PathBuilder {
	b.path.ClosePath()
	return b
}

// Build returns the constructed path and the first error encountered.
func (b *PathBuilder) Build() (*Path, error) {
	return b.path, b.err
}
