package flatten

import "math"

// arc flattens an elliptical arc given in SVG endpoint parameterization.
// Degenerate radii collapse to a line segment.
func (f *flattener) arc(rx, ry, rotation float64, largeArc, sweep bool, end Point) {
	p0 := f.pen
	if p0 == end {
		return
	}
	rx = math.Abs(rx)
	ry = math.Abs(ry)
	if rx == 0 || ry == 0 {
		f.lineTo(end)
		return
	}

	center, theta1, delta, rx, ry := arcCenter(p0, end, rx, ry, rotation, largeArc, sweep)

	cosPhi := math.Cos(rotation)
	sinPhi := math.Sin(rotation)
	eval := func(t float64) Point {
		a := theta1 + t*delta
		ca := rx * math.Cos(a)
		sa := ry * math.Sin(a)
		return Point{
			X: center.X + ca*cosPhi - sa*sinPhi,
			Y: center.Y + ca*sinPhi + sa*cosPhi,
		}
	}

	f.adaptive(eval, false)
	f.pen = end
}

// arcCenter converts SVG endpoint arc parameters to center parameterization,
// following the W3C conversion (SVG 1.1 appendix F.6.5). Radii too small to
// span the endpoints are scaled up uniformly. The returned delta lies in
// [-2pi, 2pi] with its sign chosen by the sweep flag.
func arcCenter(p0, p1 Point, rx, ry, phi float64, largeArc, sweep bool) (center Point, theta1, delta, orx, ory float64) {
	cosPhi := math.Cos(phi)
	sinPhi := math.Sin(phi)

	// Midpoint-relative coordinates in the rotated frame.
	dx := (p0.X - p1.X) / 2
	dy := (p0.Y - p1.Y) / 2
	x1 := cosPhi*dx + sinPhi*dy
	y1 := -sinPhi*dx + cosPhi*dy

	// Scale radii up if the endpoints cannot be spanned.
	lambda := x1*x1/(rx*rx) + y1*y1/(ry*ry)
	if lambda > 1 {
		s := math.Sqrt(lambda)
		rx *= s
		ry *= s
	}

	rxSq := rx * rx
	rySq := ry * ry
	num := rxSq*rySq - rxSq*y1*y1 - rySq*x1*x1
	den := rxSq*y1*y1 + rySq*x1*x1
	q := math.Sqrt(math.Max(0, num/den))
	if largeArc == sweep {
		q = -q
	}

	cx1 := q * rx * y1 / ry
	cy1 := -q * ry * x1 / rx

	center = Point{
		X: cosPhi*cx1 - sinPhi*cy1 + (p0.X+p1.X)/2,
		Y: sinPhi*cx1 + cosPhi*cy1 + (p0.Y+p1.Y)/2,
	}

	ux := (x1 - cx1) / rx
	uy := (y1 - cy1) / ry
	vx := (-x1 - cx1) / rx
	vy := (-y1 - cy1) / ry

	theta1 = vectorAngle(1, 0, ux, uy)
	delta = vectorAngle(ux, uy, vx, vy)
	if !sweep && delta > 0 {
		delta -= 2 * math.Pi
	} else if sweep && delta < 0 {
		delta += 2 * math.Pi
	}
	return center, theta1, delta, rx, ry
}

// vectorAngle returns the signed angle from vector u to vector v.
func vectorAngle(ux, uy, vx, vy float64) float64 {
	dot := ux*vx + uy*vy
	lu := math.Sqrt(ux*ux + uy*uy)
	lv := math.Sqrt(vx*vx + vy*vy)
	if lu == 0 || lv == 0 {
		return 0
	}
	a := math.Acos(math.Min(1, math.Max(-1, dot/(lu*lv))))
	if ux*vy-uy*vx < 0 {
		return -a
	}
	return a
}
