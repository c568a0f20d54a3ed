package rast

import "math"

// kappa is the Bezier handle length that approximates a quarter circle:
// 4/3 * (sqrt(2) - 1).
const kappa = 0.5522847498307936

// Rect adds an axis-aligned rectangle subpath.
func (p *Path) Rect(x, y, w, h float64) {
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.ClosePath()
}

// RoundedRect adds a rectangle with individually rounded corners. The radii
// are given clockwise from the top-left corner (nw, ne, se, sw) and are
// clamped to [0, min(w, h)/2]. If all radii are zero the shape degenerates
// to a plain rectangle. The clockwise flag selects the traversal direction,
// which matters under the non-zero winding rule.
func (p *Path) RoundedRect(x, y, w, h, nw, ne, se, sw float64, clockwise bool) {
	maxR := math.Min(w, h) / 2
	nw = clampRadius(nw, maxR)
	ne = clampRadius(ne, maxR)
	se = clampRadius(se, maxR)
	sw = clampRadius(sw, maxR)

	if nw == 0 && ne == 0 && se == 0 && sw == 0 {
		if clockwise {
			p.Rect(x, y, w, h)
		} else {
			p.MoveTo(x, y)
			p.LineTo(x, y+h)
			p.LineTo(x+w, y+h)
			p.LineTo(x+w, y)
			p.ClosePath()
		}
		return
	}

	if clockwise {
		p.MoveTo(x+nw, y)
		p.LineTo(x+w-ne, y)
		p.cornerTo(Pt(x+w, y), Pt(x+w, y+ne))
		p.LineTo(x+w, y+h-se)
		p.cornerTo(Pt(x+w, y+h), Pt(x+w-se, y+h))
		p.LineTo(x+sw, y+h)
		p.cornerTo(Pt(x, y+h), Pt(x, y+h-sw))
		p.LineTo(x, y+nw)
		p.cornerTo(Pt(x, y), Pt(x+nw, y))
	} else {
		p.MoveTo(x+nw, y)
		p.cornerTo(Pt(x, y), Pt(x, y+nw))
		p.LineTo(x, y+h-sw)
		p.cornerTo(Pt(x, y+h), Pt(x+sw, y+h))
		p.LineTo(x+w-se, y+h)
		p.cornerTo(Pt(x+w, y+h), Pt(x+w, y+h-se))
		p.LineTo(x+w, y+ne)
		p.cornerTo(Pt(x+w, y), Pt(x+w-ne, y))
	}
	p.ClosePath()
}

func clampRadius(r, maxR float64) float64 {
	if r < 0 {
		return 0
	}
	if r > maxR {
		return maxR
	}
	return r
}

// cornerTo draws a quarter-circle corner from the pen to b, bending around
// the corner vertex v.
func (p *Path) cornerTo(v, b Point) {
	a := p.at
	c1 := a.Add(v.Sub(a).Mul(kappa))
	c2 := b.Add(v.Sub(b).Mul(kappa))
	p.CubicTo(c1.X, c1.Y, c2.X, c2.Y, b.X, b.Y)
}

// Ellipse adds an ellipse subpath centered at (cx, cy) with radii rx and ry.
func (p *Path) Ellipse(cx, cy, rx, ry float64) {
	ox := rx * kappa
	oy := ry * kappa

	p.MoveTo(cx+rx, cy)
	p.CubicTo(cx+rx, cy+oy, cx+ox, cy+ry, cx, cy+ry)
	p.CubicTo(cx-ox, cy+ry, cx-rx, cy+oy, cx-rx, cy)
	p.CubicTo(cx-rx, cy-oy, cx-ox, cy-ry, cx, cy-ry)
	p.CubicTo(cx+ox, cy-ry, cx+rx, cy-oy, cx+rx, cy)
	p.ClosePath()
}

// Circle adds a circle subpath centered at (cx, cy) with radius r.
func (p *Path) Circle(cx, cy, r float64) {
	p.Ellipse(cx, cy, r, r)
}

// Polygon adds a regular polygon subpath with the given number of sides,
// inscribed in a circle of radius size around the center. Fewer than three
// sides is a no-op.
func (p *Path) Polygon(center Point, size float64, sides int) {
	if sides < 3 {
		return
	}
	for i := 0; i < sides; i++ {
		a := 2*math.Pi*float64(i)/float64(sides) - math.Pi/2
		v := Pt(center.X+size*math.Cos(a), center.Y+size*math.Sin(a))
		if i == 0 {
			p.MoveTo(v.X, v.Y)
		} else {
			p.LineTo(v.X, v.Y)
		}
	}
	p.ClosePath()
}

// Arc adds a circular arc around center with radius r from angle a0 to a1
// (radians, measured clockwise from the positive x axis in the y-down
// coordinate system). When ccw is true the arc runs counter-clockwise.
//
// A zero radius is a no-op. A negative radius returns ErrNegativeRadius.
// If the path is empty the arc begins with an implicit MoveTo; otherwise a
// connecting LineTo is emitted unless the pen is already at the arc's start.
func (p *Path) Arc(center Point, r, a0, a1 float64, ccw bool) error {
	if r < 0 {
		return ErrNegativeRadius
	}
	if r == 0 {
		return nil
	}

	const tau = 2 * math.Pi
	delta := a1 - a0
	if !ccw {
		if delta >= tau-coincidentEps {
			delta = tau
		} else {
			delta = math.Mod(delta, tau)
			if delta < 0 {
				delta += tau
			}
		}
	} else {
		if -delta >= tau-coincidentEps {
			delta = -tau
		} else {
			delta = math.Mod(delta, tau)
			if delta > 0 {
				delta -= tau
			}
		}
	}

	start := Pt(center.X+r*math.Cos(a0), center.Y+r*math.Sin(a0))
	if p.IsEmpty() {
		p.MoveTo(start.X, start.Y)
	} else if !p.at.Near(start, coincidentEps) {
		p.LineTo(start.X, start.Y)
	}

	sweep := delta > 0
	if math.Abs(delta) >= tau-coincidentEps {
		// A full circle cannot be a single arc command: its endpoints
		// coincide. Split it into two half circles.
		mid := a0 + delta/2
		midPt := Pt(center.X+r*math.Cos(mid), center.Y+r*math.Sin(mid))
		end := Pt(center.X+r*math.Cos(a0+delta), center.Y+r*math.Sin(a0+delta))
		p.EllipticalArcTo(r, r, 0, false, sweep, midPt.X, midPt.Y)
		p.EllipticalArcTo(r, r, 0, false, sweep, end.X, end.Y)
		return nil
	}

	end := Pt(center.X+r*math.Cos(a0+delta), center.Y+r*math.Sin(a0+delta))
	p.EllipticalArcTo(r, r, 0, math.Abs(delta) > math.Pi, sweep, end.X, end.Y)
	return nil
}

// ArcTo adds an arc of radius r tangent to the two lines from the pen to c1
// and from c1 to c2, in the manner of the HTML canvas arcTo operation.
//
// A negative radius returns ErrNegativeRadius. A zero radius or collinear
// control points degenerate to a line to c1.
func (p *Path) ArcTo(c1, c2 Point, r float64) error {
	if r < 0 {
		return ErrNegativeRadius
	}

	p0 := p.at
	u := c1.Sub(p0)
	w := c2.Sub(c1)
	cross := u.Cross(w)
	if r == 0 || u.Length() < coincidentEps || w.Length() < coincidentEps ||
		math.Abs(cross) < coincidentEps {
		p.LineTo(c1.X, c1.Y)
		return nil
	}

	// Tangent points on both legs of the corner.
	d0 := p0.Sub(c1).Normalize()
	d2 := c2.Sub(c1).Normalize()
	theta := math.Acos(clamp(d0.Dot(d2), -1, 1))
	dist := r / math.Tan(theta/2)
	t0 := c1.Add(d0.Mul(dist))
	t1 := c1.Add(d2.Mul(dist))

	p.LineTo(t0.X, t0.Y)
	// The sweep direction keeps the arc on the inside of the corner.
	p.EllipticalArcTo(r, r, 0, false, cross > 0, t1.X, t1.Y)
	return nil
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
