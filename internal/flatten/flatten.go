// Package flatten converts path commands into polygonal subpaths, adaptively
// subdividing curves and arcs to a pixel error tolerance.
package flatten

// Point represents a 2D point (internal copy to avoid import cycle).
type Point struct {
	X, Y float64
}

// Add returns the sum of two points.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by s.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Lerp performs linear interpolation between two points.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// LengthSquared returns the squared length of the vector.
func (p Point) LengthSquared() float64 {
	return p.X*p.X + p.Y*p.Y
}

// Perp returns the perpendicular vector (rotated 90 degrees
// counter-clockwise).
func (p Point) Perp() Point {
	return Point{X: -p.Y, Y: p.X}
}

// Kind identifies a path command variant. The values mirror the public
// command kinds of the root package in declaration order.
type Kind uint8

// Command kinds, absolute and relative.
const (
	Move Kind = iota
	RMove
	Line
	RLine
	HLine
	RHLine
	VLine
	RVLine
	Cubic
	RCubic
	SmoothCubic
	RSmoothCubic
	Quad
	RQuad
	SmoothQuad
	RSmoothQuad
	Arc
	RArc
	Close
)

// Command is a path command with its inline argument buffer.
type Command struct {
	Kind Kind
	Args [7]float64
}

// Options configures flattening.
type Options struct {
	// CloseSubpaths forces open subpaths to be closed at end of path.
	// Filling wants this; stroking does not.
	CloseSubpaths bool

	// PixelScale is the largest singular value of the transform that will
	// be applied to the output. The flattening tolerance is divided by it
	// so that curve error stays below the pixel budget after scaling.
	PixelScale float64
}

// pixelError is the deviation budget, in device pixels, allowed between a
// flattened chord and the true curve.
const pixelError = 0.2

// minStep bounds adaptive subdivision so numeric noise cannot stall it.
const minStep = 1e-6

// flattener carries the traversal state through one path.
type flattener struct {
	opts        Options
	errMarginSq float64

	shapes [][]Point
	cur    []Point

	pen     Point
	start   Point
	hasOpen bool

	// Smooth curve carry state: the previous command's kind and its
	// trailing control point, reflected by S/T commands.
	prevKind Kind
	prevCtrl Point
}

// Flatten converts commands into polygonal subpaths. Zero-length segments
// and duplicate consecutive vertices are dropped; each returned shape has at
// least two points.
func Flatten(cmds []Command, opts Options) [][]Point {
	if opts.PixelScale <= 0 {
		opts.PixelScale = 1
	}
	margin := pixelError / opts.PixelScale
	f := &flattener{
		opts:        opts,
		errMarginSq: margin * margin,
		prevKind:    Close,
	}

	for _, c := range cmds {
		f.command(c)
	}
	f.flush(opts.CloseSubpaths)
	return f.shapes
}

func (f *flattener) command(c Command) {
	kind := c.Kind
	switch kind {
	case Move, RMove:
		pt := Point{X: c.Args[0], Y: c.Args[1]}
		if kind == RMove {
			pt = f.pen.Add(pt)
		}
		f.flush(f.opts.CloseSubpaths)
		f.pen = pt
		f.start = pt
		f.hasOpen = true
		f.emit(pt)

	case Line, RLine:
		pt := Point{X: c.Args[0], Y: c.Args[1]}
		if kind == RLine {
			pt = f.pen.Add(pt)
		}
		f.lineTo(pt)

	case HLine, RHLine:
		x := c.Args[0]
		if kind == RHLine {
			x += f.pen.X
		}
		f.lineTo(Point{X: x, Y: f.pen.Y})

	case VLine, RVLine:
		y := c.Args[0]
		if kind == RVLine {
			y += f.pen.Y
		}
		f.lineTo(Point{X: f.pen.X, Y: y})

	case Cubic, RCubic:
		c1 := Point{X: c.Args[0], Y: c.Args[1]}
		c2 := Point{X: c.Args[2], Y: c.Args[3]}
		end := Point{X: c.Args[4], Y: c.Args[5]}
		if kind == RCubic {
			c1 = f.pen.Add(c1)
			c2 = f.pen.Add(c2)
			end = f.pen.Add(end)
		}
		f.cubic(c1, c2, end)

	case SmoothCubic, RSmoothCubic:
		c2 := Point{X: c.Args[0], Y: c.Args[1]}
		end := Point{X: c.Args[2], Y: c.Args[3]}
		if kind == RSmoothCubic {
			c2 = f.pen.Add(c2)
			end = f.pen.Add(end)
		}
		f.cubic(f.reflectedControl(cubicFamily), c2, end)

	case Quad, RQuad:
		ctrl := Point{X: c.Args[0], Y: c.Args[1]}
		end := Point{X: c.Args[2], Y: c.Args[3]}
		if kind == RQuad {
			ctrl = f.pen.Add(ctrl)
			end = f.pen.Add(end)
		}
		f.quad(ctrl, end)

	case SmoothQuad, RSmoothQuad:
		end := Point{X: c.Args[0], Y: c.Args[1]}
		if kind == RSmoothQuad {
			end = f.pen.Add(end)
		}
		f.quad(f.reflectedControl(quadFamily), end)

	case Arc, RArc:
		end := Point{X: c.Args[5], Y: c.Args[6]}
		if kind == RArc {
			end = f.pen.Add(end)
		}
		f.arc(c.Args[0], c.Args[1], c.Args[2], c.Args[3] != 0, c.Args[4] != 0, end)

	case Close:
		if f.hasOpen {
			if f.pen != f.start {
				f.emit(f.start)
			}
			f.flushClosed()
			f.pen = f.start
		}
	}
	f.prevKind = kind
}

type curveFamily uint8

const (
	cubicFamily curveFamily = iota
	quadFamily
)

// reflectedControl returns the implicit control point of a smooth curve
// command: the previous curve's trailing control reflected about the pen,
// or the pen itself when the previous command is not of the same family.
func (f *flattener) reflectedControl(family curveFamily) Point {
	match := false
	switch family {
	case cubicFamily:
		match = f.prevKind == Cubic || f.prevKind == RCubic ||
			f.prevKind == SmoothCubic || f.prevKind == RSmoothCubic
	case quadFamily:
		match = f.prevKind == Quad || f.prevKind == RQuad ||
			f.prevKind == SmoothQuad || f.prevKind == RSmoothQuad
	}
	if !match {
		return f.pen
	}
	return Point{
		X: 2*f.pen.X - f.prevCtrl.X,
		Y: 2*f.pen.Y - f.prevCtrl.Y,
	}
}

func (f *flattener) lineTo(pt Point) {
	f.emit(pt)
	f.pen = pt
}

// emit appends a vertex, dropping consecutive duplicates.
func (f *flattener) emit(pt Point) {
	if n := len(f.cur); n > 0 && f.cur[n-1] == pt {
		return
	}
	f.cur = append(f.cur, pt)
}

// flush ends the current subpath, closing it first when requested.
func (f *flattener) flush(close bool) {
	if close && len(f.cur) >= 2 && f.cur[0] != f.cur[len(f.cur)-1] {
		f.cur = append(f.cur, f.cur[0])
	}
	f.flushOpen()
}

// flushClosed ends the current subpath after an explicit Close command.
func (f *flattener) flushClosed() {
	f.flushOpen()
	f.hasOpen = true
	f.emit(f.start)
}

func (f *flattener) flushOpen() {
	if len(f.cur) >= 2 {
		f.shapes = append(f.shapes, f.cur)
	}
	f.cur = nil
	f.hasOpen = false
}

// cubic flattens a cubic Bezier with adaptive stepping: the trial step is
// halved while the chord midpoint deviates from the true half-point by more
// than the error margin, and doubled after every accepted segment.
func (f *flattener) cubic(c1, c2, end Point) {
	p0 := f.pen
	f.adaptive(func(t float64) Point {
		return evalCubic(p0, c1, c2, end, t)
	}, false)
	f.prevCtrl = c2
	f.pen = end
}

// quad flattens a quadratic Bezier. Quadratics use a half-stepping latch:
// once a subdivision has been forced the step is never doubled again, which
// prevents the step size from oscillating.
func (f *flattener) quad(ctrl, end Point) {
	p0 := f.pen
	f.adaptive(func(t float64) Point {
		return evalQuad(p0, ctrl, end, t)
	}, true)
	f.prevCtrl = ctrl
	f.pen = end
}

// adaptive walks eval over [0, 1] emitting chord endpoints within the error
// margin.
func (f *flattener) adaptive(eval func(float64) Point, latch bool) {
	t := 0.0
	step := 1.0
	halved := false
	prev := eval(0)

	for t < 1 {
		if step > 1-t {
			step = 1 - t
		}
		half := eval(t + step/2)
		next := eval(t + step)

		mid := prev.Lerp(next, 0.5)
		if mid.Sub(half).LengthSquared() > f.errMarginSq && step > minStep {
			step /= 2
			halved = true
			continue
		}

		f.emit(next)
		prev = next
		t += step
		if !latch || !halved {
			step *= 2
		}
	}
}

func evalCubic(p0, p1, p2, p3 Point, t float64) Point {
	u := 1 - t
	a := u * u * u
	b := 3 * u * u * t
	c := 3 * u * t * t
	d := t * t * t
	return Point{
		X: a*p0.X + b*p1.X + c*p2.X + d*p3.X,
		Y: a*p0.Y + b*p1.Y + c*p2.Y + d*p3.Y,
	}
}

func evalQuad(p0, p1, p2 Point, t float64) Point {
	u := 1 - t
	a := u * u
	b := 2 * u * t
	c := t * t
	return Point{
		X: a*p0.X + b*p1.X + c*p2.X,
		Y: a*p0.Y + b*p1.Y + c*p2.Y,
	}
}
