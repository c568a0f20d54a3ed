package rast

// Stroke defines the style for stroking paths: width, caps, joins, miter
// limit, and an optional dash pattern.
type Stroke struct {
	// Width is the line width in path units. A non-positive width strokes
	// nothing.
	Width float64

	// Cap is the shape of line endpoints.
	Cap LineCap

	// Join is the shape of line joins.
	Join LineJoin

	// MiterLimit is the maximum ratio of miter length to half-width
	// before a miter join falls back to a bevel.
	MiterLimit float64

	// Dash is the dash pattern; nil strokes a solid line.
	Dash *Dash
}

// DefaultStroke returns a solid one-unit stroke with butt caps, miter
// joins, and the SVG default miter limit of 4.
func DefaultStroke() Stroke {
	return Stroke{
		Width:      1,
		Cap:        LineCapButt,
		Join:       LineJoinMiter,
		MiterLimit: 4,
	}
}

// WithWidth returns a copy of the Stroke with the given width.
func (s Stroke) WithWidth(w float64) Stroke {
	s.Width = w
	return s
}

// WithCap returns a copy of the Stroke with the given line cap style.
func (s Stroke) WithCap(lineCap LineCap) Stroke {
	s.Cap = lineCap
	return s
}

// WithJoin returns a copy of the Stroke with the given line join style.
func (s Stroke) WithJoin(join LineJoin) Stroke {
	s.Join = join
	return s
}

// WithMiterLimit returns a copy of the Stroke with the given miter limit.
func (s Stroke) WithMiterLimit(limit float64) Stroke {
	s.MiterLimit = limit
	return s
}

// WithDash returns a copy of the Stroke with a dash pattern created from
// the given lengths.
func (s Stroke) WithDash(lengths ...float64) Stroke {
	s.Dash = NewDash(lengths...)
	return s
}

// IsDashed reports whether this stroke has an effective dash pattern.
func (s Stroke) IsDashed() bool {
	return s.Dash.IsDashed()
}

// RoundStroke returns a default-width stroke with round caps and joins.
func RoundStroke() Stroke {
	return DefaultStroke().WithCap(LineCapRound).WithJoin(LineJoinRound)
}

// DashedStroke returns a default stroke with the given dash pattern.
func DashedStroke(lengths ...float64) Stroke {
	return DefaultStroke().WithDash(lengths...)
}
