package rast

import (
	"math"
	"sort"
)

// ExtendMode defines how gradients extend beyond their defined range.
type ExtendMode int

const (
	// ExtendPad extends the edge colors (default).
	ExtendPad ExtendMode = iota
	// ExtendRepeat repeats the gradient pattern.
	ExtendRepeat
	// ExtendReflect mirrors the gradient pattern.
	ExtendReflect
)

// ColorStop is a color at a position in a gradient, with Offset in [0, 1].
type ColorStop struct {
	Offset float64
	Color  RGBA
}

// Stop is a convenience constructor for a ColorStop.
func Stop(offset float64, c RGBA) ColorStop {
	return ColorStop{Offset: offset, Color: c}
}

// sortStops returns the stops ordered by offset.
func sortStops(stops []ColorStop) []ColorStop {
	sorted := make([]ColorStop, len(stops))
	copy(sorted, stops)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Offset < sorted[j].Offset
	})
	return sorted
}

// applyExtendMode normalizes a gradient parameter to [0, 1].
func applyExtendMode(t float64, mode ExtendMode) float64 {
	switch mode {
	case ExtendRepeat:
		t -= math.Floor(t)
		if t < 0 {
			t++
		}
	case ExtendReflect:
		t = math.Abs(t)
		period := math.Floor(t)
		t -= period
		if int(period)%2 == 1 {
			t = 1 - t
		}
	default:
		t = clamp(t, 0, 1)
	}
	return t
}

// colorAtOffset returns the interpolated gradient color at parameter t.
func colorAtOffset(stops []ColorStop, t float64, mode ExtendMode) RGBA {
	if len(stops) == 0 {
		return Transparent
	}
	if len(stops) == 1 {
		return stops[0].Color
	}

	t = applyExtendMode(t, mode)
	if t <= stops[0].Offset {
		return stops[0].Color
	}
	if t >= stops[len(stops)-1].Offset {
		return stops[len(stops)-1].Color
	}

	for i := 1; i < len(stops); i++ {
		if t <= stops[i].Offset {
			lo, hi := stops[i-1], stops[i]
			span := hi.Offset - lo.Offset
			if span <= 0 {
				return hi.Color
			}
			return lerpColorLinear(lo.Color, hi.Color, (t-lo.Offset)/span)
		}
	}
	return stops[len(stops)-1].Color
}

// lerpColorLinear interpolates two colors in linear sRGB space, which
// avoids the darkened midtones of naive sRGB interpolation.
func lerpColorLinear(c1, c2 RGBA, t float64) RGBA {
	return RGBA{
		R: linearToSRGB(srgbToLinear(c1.R) + t*(srgbToLinear(c2.R)-srgbToLinear(c1.R))),
		G: linearToSRGB(srgbToLinear(c1.G) + t*(srgbToLinear(c2.G)-srgbToLinear(c1.G))),
		B: linearToSRGB(srgbToLinear(c1.B) + t*(srgbToLinear(c2.B)-srgbToLinear(c1.B))),
		A: c1.A + t*(c2.A-c1.A),
	}
}

func srgbToLinear(v float64) float64 {
	if v <= 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

func linearToSRGB(v float64) float64 {
	if v <= 0.0031308 {
		return v * 12.92
	}
	return 1.055*math.Pow(v, 1/2.4) - 0.055
}

// linearAt evaluates a linear gradient at a position by projecting it onto
// the gradient axis.
func (p *Paint) linearAt(x, y float64) RGBA {
	d := p.End.Sub(p.Start)
	lenSq := d.LengthSquared()
	if lenSq == 0 {
		return colorAtOffset(p.Stops, 0, p.Extend)
	}
	t := Pt(x, y).Sub(p.Start).Dot(d) / lenSq
	return colorAtOffset(p.Stops, t, p.Extend)
}

// radialAt evaluates a radial gradient at a position by its distance from
// the center.
func (p *Paint) radialAt(x, y float64) RGBA {
	if p.Radius <= 0 {
		return colorAtOffset(p.Stops, 0, p.Extend)
	}
	t := Pt(x, y).Sub(p.Center).Length() / p.Radius
	return colorAtOffset(p.Stops, t, p.Extend)
}

// angularAt evaluates an angular gradient at a position by its angle around
// the center.
func (p *Paint) angularAt(x, y float64) RGBA {
	d := Pt(x, y).Sub(p.Center)
	a := math.Atan2(d.Y, d.X) - p.Angle
	t := a / (2 * math.Pi)
	t -= math.Floor(t)
	return colorAtOffset(p.Stops, t, p.Extend)
}
