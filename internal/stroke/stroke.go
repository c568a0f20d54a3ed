// Package stroke expands polyline subpaths into filled shapes implementing
// caps, joins, the miter limit, and dash patterns. The output shapes overlap
// freely and are meant to be rasterized together under the non-zero winding
// rule.
package stroke

import (
	"math"

	"github.com/gogpu/rast/internal/flatten"
)

// Point aliases the flattener's point type; the stroker sits between the
// flattener and the rasterizer in the pipeline and shares its geometry.
type Point = flatten.Point

// Cap specifies the shape of line endpoints.
type Cap int

const (
	// ButtCap ends the stroke flat at the endpoint.
	ButtCap Cap = iota
	// RoundCap ends the stroke with a half disc.
	RoundCap
	// SquareCap extends the stroke half a width past the endpoint.
	SquareCap
)

// Join specifies the shape of the wedge between consecutive edges.
type Join int

const (
	// MiterJoin extends the outer edges to a sharp point, limited by the
	// miter limit.
	MiterJoin Join = iota
	// RoundJoin fills the wedge with a disc.
	RoundJoin
	// BevelJoin fills the wedge with a single triangle.
	BevelJoin
)

// Options configures stroke expansion.
type Options struct {
	Width      float64
	Cap        Cap
	Join       Join
	MiterLimit float64 // ratio of miter length to half-width

	// Dashes holds alternating on/off lengths. An odd-length pattern is
	// treated as the pattern concatenated with itself.
	Dashes []float64

	// DashOffset shifts the start of the dash pattern along each subpath.
	DashOffset float64

	// PixelScale converts the fixed pixel error budget into path units;
	// it bounds cap/join disc polygonization and the degenerate-join cutoff.
	PixelScale float64
}

// pixelError mirrors the flattener's device-space deviation budget.
const pixelError = 0.2

// Expand converts each polyline subpath into a set of filled shapes: one
// rectangle per edge (or per dash slice), plus caps and joins. A shape whose
// first and last points coincide is treated as closed. Returns nil for a
// non-positive width.
func Expand(shapes [][]Point, o Options) [][]Point {
	if o.Width <= 0 {
		return nil
	}
	if o.PixelScale <= 0 {
		o.PixelScale = 1
	}

	e := &expander{
		halfWidth: o.Width / 2,
		opts:      o,
		tol:       pixelError / o.PixelScale,
		dashes:    normalizeDashes(o.Dashes),
	}
	if o.MiterLimit >= 1 {
		e.miterAngleLimit = 2 * math.Asin(1/o.MiterLimit)
	} else {
		e.miterAngleLimit = math.Pi // never miter
	}

	for _, shape := range shapes {
		e.subpath(shape)
	}
	return e.out
}

// normalizeDashes doubles an odd-length pattern so on/off slots alternate
// consistently across cycles.
func normalizeDashes(dashes []float64) []float64 {
	if len(dashes) == 0 {
		return nil
	}
	total := 0.0
	for _, d := range dashes {
		total += d
	}
	if total <= 0 {
		return nil
	}
	if len(dashes)%2 == 0 {
		return dashes
	}
	doubled := make([]float64, 0, len(dashes)*2)
	doubled = append(doubled, dashes...)
	doubled = append(doubled, dashes...)
	return doubled
}

type expander struct {
	halfWidth       float64
	opts            Options
	tol             float64
	miterAngleLimit float64
	dashes          []float64

	out [][]Point

	// dash walk state, reset per subpath
	dashIndex int
	dashLeft  float64
}

func (e *expander) subpath(pts []Point) {
	if len(pts) < 2 {
		return
	}
	closed := pts[0] == pts[len(pts)-1] && len(pts) > 2
	if closed {
		pts = pts[:len(pts)-1]
	}

	e.resetDash()

	n := len(pts)
	edgeCount := n - 1
	if closed {
		edgeCount = n
	}

	if !closed && e.dashOn() {
		e.cap(pts[0], dir(pts[1], pts[0]))
	}

	var prevDir Point
	for i := 0; i < edgeCount; i++ {
		p := pts[i]
		q := pts[(i+1)%n]
		d := dir(p, q)

		if i > 0 && e.dashOn() {
			e.join(p, prevDir, d)
		}
		e.edge(p, q)
		prevDir = d
	}

	if closed {
		if e.dashOn() {
			e.join(pts[0], prevDir, dir(pts[0], pts[1]))
		}
	} else if e.dashOn() {
		e.cap(pts[n-1], prevDir)
	}
}

func dir(p, q Point) Point {
	d := q.Sub(p)
	l := math.Sqrt(d.LengthSquared())
	if l == 0 {
		return Point{X: 1}
	}
	return d.Mul(1 / l)
}

// dashOn reports whether the dash walk currently sits in an "on" slot.
// Solid strokes are always on.
func (e *expander) dashOn() bool {
	return e.dashes == nil || e.dashIndex%2 == 0
}

func (e *expander) resetDash() {
	e.dashIndex = 0
	if e.dashes == nil {
		return
	}
	e.dashLeft = e.dashes[0]

	// Consume the offset, normalized into one pattern cycle.
	total := 0.0
	for _, d := range e.dashes {
		total += d
	}
	off := math.Mod(e.opts.DashOffset, total)
	if off < 0 {
		off += total
	}
	for off > 0 {
		if off < e.dashLeft {
			e.dashLeft -= off
			break
		}
		off -= e.dashLeft
		e.dashIndex = (e.dashIndex + 1) % len(e.dashes)
		e.dashLeft = e.dashes[e.dashIndex]
	}
}

// edge emits the rectangle (or dash slices) covering one polyline edge.
func (e *expander) edge(p, q Point) {
	if e.dashes == nil {
		e.rect(p, q)
		return
	}

	length := math.Sqrt(q.Sub(p).LengthSquared())
	d := dir(p, q)
	pos := 0.0
	for pos < length {
		run := math.Min(e.dashLeft, length-pos)
		if e.dashOn() && run > 0 {
			a := p.Add(d.Mul(pos))
			b := p.Add(d.Mul(pos + run))
			e.rect(a, b)
		}
		pos += run
		e.dashLeft -= run
		if e.dashLeft <= 0 {
			e.dashIndex = (e.dashIndex + 1) % len(e.dashes)
			e.dashLeft = e.dashes[e.dashIndex]
		}
	}
}

// emitShape appends a closed ring, normalizing its orientation so every
// stroke piece winds the same way. Overlapping pieces then union instead of
// canceling under the non-zero rule.
func (e *expander) emitShape(ring []Point) {
	area := 0.0
	for i := 1; i < len(ring); i++ {
		area += ring[i-1].X*ring[i].Y - ring[i].X*ring[i-1].Y
	}
	if area > 0 {
		for i, j := 0, len(ring)-1; i < j; i, j = i+1, j-1 {
			ring[i], ring[j] = ring[j], ring[i]
		}
	}
	e.out = append(e.out, ring)
}

// rect emits a filled rectangle of the stroke width aligned to the edge.
func (e *expander) rect(p, q Point) {
	if p == q {
		return
	}
	n := dir(p, q).Perp().Mul(e.halfWidth)
	e.emitShape([]Point{
		p.Add(n), q.Add(n), q.Sub(n), p.Sub(n), p.Add(n),
	})
}

// cap emits a start or end cap. d is the travel direction pointing out of
// the subpath at this endpoint's edge; the start cap passes the reversed
// first-edge direction.
func (e *expander) cap(p, d Point) {
	switch e.opts.Cap {
	case ButtCap:
	case RoundCap:
		e.disc(p, e.halfWidth)
	case SquareCap:
		e.rect(p, p.Add(d.Mul(e.halfWidth)))
	}
}

// join emits the wedge filler between two consecutive edges meeting at v.
func (e *expander) join(v, d0, d1 Point) {
	cross := d0.X*d1.Y - d0.Y*d1.X
	dot := d0.X*d1.X + d0.Y*d1.Y
	if math.Abs(cross) < 1e-12 && dot > 0 {
		return // collinear, no wedge
	}

	if e.opts.Join == RoundJoin {
		e.disc(v, e.halfWidth)
		return
	}

	// Outer offsets: the gap opens on the side away from the turn.
	s := 1.0
	if cross > 0 {
		s = -1
	}
	o0 := v.Add(d0.Perp().Mul(s * e.halfWidth))
	o1 := v.Add(d1.Perp().Mul(s * e.halfWidth))

	// Skip joins too small to affect coverage.
	area := math.Abs((o0.X-v.X)*(o1.Y-v.Y)-(o0.Y-v.Y)*(o1.X-v.X)) / 2
	if area < e.tol {
		return
	}

	if e.opts.Join == MiterJoin {
		// The bend angle between the incoming and outgoing half-edges.
		bend := math.Acos(math.Min(1, math.Max(-1, -dot)))
		if bend > e.miterAngleLimit {
			if m, ok := lineIntersect(o0, d0, o1, d1); ok {
				e.emitShape([]Point{v, o0, m, o1, v})
				return
			}
		}
	}

	e.emitShape([]Point{v, o0, o1, v})
}

// disc emits a filled circle polygonized to the pixel error tolerance.
func (e *expander) disc(center Point, r float64) {
	if r <= 0 {
		return
	}
	step := math.Pi / 2
	if e.tol < r {
		step = 2 * math.Acos(1-e.tol/r)
	}
	n := int(math.Ceil(2 * math.Pi / step))
	if n < 8 {
		n = 8
	}
	ring := make([]Point, 0, n+1)
	for i := 0; i < n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		ring = append(ring, Point{
			X: center.X + r*math.Cos(a),
			Y: center.Y + r*math.Sin(a),
		})
	}
	ring = append(ring, ring[0])
	e.emitShape(ring)
}

// lineIntersect intersects the lines a + t*da and b + u*db.
func lineIntersect(a, da, b, db Point) (Point, bool) {
	den := da.X*db.Y - da.Y*db.X
	if math.Abs(den) < 1e-12 {
		return Point{}, false
	}
	t := ((b.X-a.X)*db.Y - (b.Y-a.Y)*db.X) / den
	return Point{X: a.X + t*da.X, Y: a.Y + t*da.Y}, true
}
