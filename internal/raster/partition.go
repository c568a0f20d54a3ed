package raster

import "math"

// entry is a segment prepared for scanline queries: its line equation is
// cached as slope m and intercept b, so the x crossing of a sample line is
// one division away. Vertical edges set m = 0 and store their x coordinate
// in b.
type entry struct {
	m, b     float64
	vertical bool
	yMin     float64
	yMax     float64
	winding  int
}

// crossing returns the x coordinate where the entry's line meets the
// horizontal sample line y.
func (e *entry) crossing(y float64) float64 {
	if e.vertical {
		return e.b
	}
	return (y - e.b) / e.m
}

// strip is one horizontal band of the partition.
type strip struct {
	entries []entry

	// requiresAA is false only when every entry is a vertical edge with
	// integer-aligned endpoints, in which case a single centered sample
	// produces exact coverage.
	requiresAA bool
}

// Partition bins segments into horizontal strips covering the path's
// y-range, so each scanline only consults the edges that can cross it.
type Partition struct {
	strips      []strip
	startY      int
	stripHeight float64

	// MaxEntries is the largest per-strip entry count; callers size their
	// hit scratch buffer from it.
	MaxEntries int
}

// NewPartition builds a partition over height scanlines starting at startY.
// The strip count balances strip height (4 rows) against segment count so
// sparse paths do not pay for empty strips.
func NewPartition(segs []Segment, startY, height int) *Partition {
	byHeight := height / 4
	if byHeight < 1 {
		byHeight = 1
	}
	bySegs := len(segs) / 2
	if bySegs < 1 {
		bySegs = 1
	}
	count := byHeight
	if bySegs < count {
		count = bySegs
	}

	p := &Partition{
		strips:      make([]strip, count),
		startY:      startY,
		stripHeight: float64(height) / float64(count),
	}

	for _, s := range segs {
		e := entry{
			yMin:    s.At.Y,
			yMax:    s.To.Y,
			winding: s.Winding,
		}
		if s.At.X == s.To.X {
			e.vertical = true
			e.b = s.At.X
		} else {
			e.m = (s.To.Y - s.At.Y) / (s.To.X - s.At.X)
			e.b = s.At.Y - e.m*s.At.X
		}

		// Row-aligned assignment: a scanline's supersample lines stay
		// within its pixel row, so entries must be visible from every
		// strip whose rows their y-range touches.
		i0 := p.stripIndex(math.Floor(s.At.Y))
		i1 := p.stripIndex(math.Ceil(s.To.Y))
		for i := i0; i <= i1; i++ {
			p.strips[i].entries = append(p.strips[i].entries, e)
			if !p.strips[i].requiresAA && !exactEntry(&e) {
				p.strips[i].requiresAA = true
			}
		}
	}

	for i := range p.strips {
		if n := len(p.strips[i].entries); n > p.MaxEntries {
			p.MaxEntries = n
		}
	}
	return p
}

// exactEntry reports whether the entry needs no antialiasing: a vertical
// edge on integer coordinates.
func exactEntry(e *entry) bool {
	return e.vertical &&
		e.b == math.Trunc(e.b) &&
		e.yMin == math.Trunc(e.yMin) &&
		e.yMax == math.Trunc(e.yMax)
}

// stripIndex maps a y coordinate to its strip, clamped to the valid range.
func (p *Partition) stripIndex(y float64) int {
	i := int((y - float64(p.startY)) / p.stripHeight)
	if i < 0 {
		return 0
	}
	if i >= len(p.strips) {
		return len(p.strips) - 1
	}
	return i
}

// Strip returns the strip covering scanline y.
func (p *Partition) Strip(y int) *strip {
	return &p.strips[p.stripIndex(float64(y))]
}
