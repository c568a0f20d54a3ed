package rast

// LineCap specifies the shape of line endpoints.
type LineCap int

const (
	// LineCapButt specifies a flat line cap.
	LineCapButt LineCap = iota
	// LineCapRound specifies a rounded line cap.
	LineCapRound
	// LineCapSquare specifies a square line cap.
	LineCapSquare
)

// LineJoin specifies the shape of line joins.
type LineJoin int

const (
	// LineJoinMiter specifies a sharp (mitered) join.
	LineJoinMiter LineJoin = iota
	// LineJoinRound specifies a rounded join.
	LineJoinRound
	// LineJoinBevel specifies a beveled join.
	LineJoinBevel
)

// FillRule specifies how the winding count decides which areas are inside
// a path.
type FillRule int

const (
	// FillRuleNonZero uses the non-zero winding rule.
	FillRuleNonZero FillRule = iota
	// FillRuleEvenOdd uses the even-odd rule.
	FillRuleEvenOdd
)

// PaintKind identifies a paint source variant.
type PaintKind uint8

const (
	// PaintSolid is a uniform color.
	PaintSolid PaintKind = iota
	// PaintLinearGradient interpolates stops along a line.
	PaintLinearGradient
	// PaintRadialGradient interpolates stops outward from a center.
	PaintRadialGradient
	// PaintAngularGradient interpolates stops around a center.
	PaintAngularGradient
	// PaintImage samples an image through an affine transform.
	PaintImage
	// PaintTiledImage samples an image repeated over the plane.
	PaintTiledImage
)

// Paint describes the color source and compositing for a fill or stroke.
//
// A solid paint composites directly. Every other kind is rendered by
// filling an intermediate pixmap with the paint's colors, masking it by the
// path's coverage, and compositing the result under the paint's blend mode
// and opacity.
type Paint struct {
	Kind PaintKind

	// Color is the solid paint color.
	Color RGBA

	// Opacity multiplies the paint's alpha. 1 is fully opaque; 0 draws
	// nothing.
	Opacity float64

	// Blend selects the compositing operator.
	Blend BlendMode

	// Gradient geometry. Start and End define a linear gradient's axis;
	// Center and Radius a radial gradient; Center and Angle an angular
	// gradient.
	Start, End Point
	Center     Point
	Radius     float64
	Angle      float64
	Stops      []ColorStop
	Extend     ExtendMode

	// Image is the source for image and tiled-image paints, positioned by
	// Matrix (image space to destination space).
	Image  *Pixmap
	Matrix Matrix
}

// NewPaint creates a solid black source-over paint.
func NewPaint() *Paint {
	return SolidPaint(Black)
}

// SolidPaint creates a solid color paint.
func SolidPaint(c RGBA) *Paint {
	return &Paint{Kind: PaintSolid, Color: c, Opacity: 1, Matrix: Identity()}
}

// LinearGradientPaint creates a linear gradient paint from start to end.
func LinearGradientPaint(start, end Point, stops ...ColorStop) *Paint {
	return &Paint{
		Kind:    PaintLinearGradient,
		Opacity: 1,
		Start:   start,
		End:     end,
		Stops:   sortStops(stops),
		Matrix:  Identity(),
	}
}

// RadialGradientPaint creates a radial gradient paint around center.
func RadialGradientPaint(center Point, radius float64, stops ...ColorStop) *Paint {
	return &Paint{
		Kind:    PaintRadialGradient,
		Opacity: 1,
		Center:  center,
		Radius:  radius,
		Stops:   sortStops(stops),
		Matrix:  Identity(),
	}
}

// AngularGradientPaint creates an angular (sweep) gradient paint around
// center, starting at the given angle.
func AngularGradientPaint(center Point, angle float64, stops ...ColorStop) *Paint {
	return &Paint{
		Kind:    PaintAngularGradient,
		Opacity: 1,
		Center:  center,
		Angle:   angle,
		Stops:   sortStops(stops),
		Matrix:  Identity(),
	}
}

// ImagePaint creates an image paint positioned by the matrix.
func ImagePaint(img *Pixmap, m Matrix) *Paint {
	return &Paint{Kind: PaintImage, Opacity: 1, Image: img, Matrix: m}
}

// TiledImagePaint creates a paint that tiles the image over the plane.
func TiledImagePaint(img *Pixmap, m Matrix) *Paint {
	return &Paint{Kind: PaintTiledImage, Opacity: 1, Image: img, Matrix: m}
}

// WithOpacity returns a copy of the paint with the given opacity.
func (p *Paint) WithOpacity(opacity float64) *Paint {
	q := *p
	q.Opacity = opacity
	return &q
}

// WithBlend returns a copy of the paint with the given blend mode.
func (p *Paint) WithBlend(mode BlendMode) *Paint {
	q := *p
	q.Blend = mode
	return &q
}

// ColorAt returns the paint's color at a destination-space position.
// Solid paints ignore the position.
func (p *Paint) ColorAt(x, y float64) RGBA {
	switch p.Kind {
	case PaintLinearGradient:
		return p.linearAt(x, y)
	case PaintRadialGradient:
		return p.radialAt(x, y)
	case PaintAngularGradient:
		return p.angularAt(x, y)
	case PaintImage, PaintTiledImage:
		return p.imageAt(x, y)
	default:
		return p.Color
	}
}

func (p *Paint) imageAt(x, y float64) RGBA {
	if p.Image == nil || p.Image.width == 0 || p.Image.height == 0 {
		return Transparent
	}
	src := p.Matrix.Invert().TransformPoint(Pt(x, y))
	ix, iy := int(src.X), int(src.Y)
	if p.Kind == PaintTiledImage {
		ix = mod(ix, p.Image.width)
		iy = mod(iy, p.Image.height)
	}
	return p.Image.GetPixel(ix, iy)
}

func mod(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}
