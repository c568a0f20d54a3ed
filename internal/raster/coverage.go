package raster

import (
	"math"

	"github.com/gogpu/rast/internal/wide"
)

// FillRule selects how the winding count decides interiority.
type FillRule int

const (
	// NonZero fills where the running winding sum is not zero.
	NonZero FillRule = iota
	// EvenOdd fills where the running winding sum is odd.
	EvenOdd
)

// ShouldFill reports whether a winding count is interior under the rule.
func ShouldFill(rule FillRule, winding int) bool {
	if rule == EvenOdd {
		return winding&1 != 0
	}
	return winding != 0
}

// SpanFunc receives one scanline's coverage. cov is the full-width coverage
// row; only [x0, x1) holds non-zero values.
type SpanFunc func(y, x0, x1 int, cov []uint8)

const (
	// aaQuality is the number of vertical supersamples per pixel.
	aaQuality = 5
	// sampleWeight is the coverage contribution of one full sample.
	sampleWeight = 255 / aaQuality
	// sampleEps nudges sample lines off exact vertex coordinates.
	sampleEps = 1e-9
)

// Filler computes scanline coverage for segment lists. Its scratch buffers
// are reused across calls; a Filler is not safe for concurrent use.
type Filler struct {
	hits []hit
	cov  []uint8
}

// Fill rasterizes the segments clipped to a width-by-height destination and
// hands each touched scanline's coverage to span. Scanlines are visited
// top to bottom.
func (f *Filler) Fill(segs []Segment, width, height int, rule FillRule, span SpanFunc) {
	if width <= 0 || height <= 0 {
		return
	}
	_, minY, _, maxY, ok := Bounds(segs)
	if !ok {
		return
	}
	startY := int(math.Floor(minY))
	if startY < 0 {
		startY = 0
	}
	endY := int(math.Ceil(maxY))
	if endY > height {
		endY = height
	}
	if endY <= startY {
		return
	}

	part := NewPartition(segs, startY, endY-startY)
	if len(f.cov) < width {
		f.cov = make([]uint8, width)
	}
	if cap(f.hits) < part.MaxEntries {
		f.hits = make([]hit, 0, part.MaxEntries)
	}

	for y := startY; y < endY; y++ {
		st := part.Strip(y)
		if len(st.entries) == 0 {
			continue
		}
		if st.requiresAA {
			f.scanlineAA(st, y, width, rule, span)
		} else {
			f.scanlineExact(st, y, width, rule, span)
		}
	}
}

// scanlineAA accumulates 5 supersampled lines into the coverage row.
func (f *Filler) scanlineAA(st *strip, y, width int, rule FillRule, span SpanFunc) {
	touched0, touched1 := width, 0

	for s := 0; s < aaQuality; s++ {
		yLine := float64(y) + (2*float64(s)+1)/(2*aaQuality) + sampleEps
		hits := f.collect(st, yLine, width)
		if len(hits) == 0 {
			continue
		}
		sortHits(hits)

		// Accumulate once per filled run: splitting a run at interior
		// crossings of overlapping shapes would truncate the fractional
		// coverage of the pixels there more than once.
		winding := 0
		runStart := 0.0
		for _, h := range hits {
			wasIn := ShouldFill(rule, winding)
			winding += h.winding
			isIn := ShouldFill(rule, winding)
			if !wasIn && isIn {
				runStart = h.x
			} else if wasIn && !isIn {
				f.accumulate(runStart, h.x, width, &touched0, &touched1)
			}
		}
	}

	if touched1 > touched0 {
		span(y, touched0, touched1, f.cov)
		clearBytes(f.cov[touched0:touched1])
	}
}

// scanlineExact takes a single centered sample and writes full coverage.
// The strip's entries are integer-aligned verticals, so the crossings land
// exactly on pixel boundaries.
func (f *Filler) scanlineExact(st *strip, y, width int, rule FillRule, span SpanFunc) {
	yLine := float64(y) + 0.5 + sampleEps
	hits := f.collect(st, yLine, width)
	if len(hits) == 0 {
		return
	}
	sortHits(hits)

	touched0, touched1 := width, 0
	winding := 0
	prev := 0.0
	for _, h := range hits {
		if ShouldFill(rule, winding) && h.x > prev {
			i0 := int(math.Max(prev, 0))
			i1 := int(math.Min(h.x, float64(width)))
			for i := i0; i < i1; i++ {
				f.cov[i] = 255
			}
			if i0 < touched0 {
				touched0 = i0
			}
			if i1 > touched1 {
				touched1 = i1
			}
		}
		winding += h.winding
		prev = h.x
	}

	if touched1 > touched0 {
		span(y, touched0, touched1, f.cov)
		clearBytes(f.cov[touched0:touched1])
	}
}

// collect gathers the strip entries crossing the sample line.
func (f *Filler) collect(st *strip, yLine float64, width int) []hit {
	hits := f.hits[:0]
	for i := range st.entries {
		e := &st.entries[i]
		if e.yMin <= yLine && yLine < e.yMax {
			x := e.crossing(yLine)
			if x > float64(width) {
				x = float64(width)
			}
			hits = append(hits, hit{x: x, winding: e.winding})
		}
	}
	f.hits = hits
	return hits
}

// accumulate adds one sample's worth of coverage over the span [xa, xb):
// fractional weights at the boundary pixels, the full sample weight across
// the interior.
func (f *Filler) accumulate(xa, xb float64, width int, touched0, touched1 *int) {
	if xa < 0 {
		xa = 0
	}
	if xb <= xa {
		return
	}
	i0 := int(xa)
	i1 := int(xb)
	if i0 >= width {
		return
	}

	if i0 == i1 {
		f.cov[i0] += uint8((xb - xa) * sampleWeight)
	} else {
		f.cov[i0] += uint8((float64(i0+1) - xa) * sampleWeight)
		if i1 > i0+1 {
			wide.AddByte(f.cov[i0+1:i1], sampleWeight)
		}
		if i1 < width {
			f.cov[i1] += uint8((xb - float64(i1)) * sampleWeight)
		}
	}

	if i0 < *touched0 {
		*touched0 = i0
	}
	end := i1 + 1
	if end > width {
		end = width
	}
	if end > *touched1 {
		*touched1 = end
	}
}

func clearBytes(b []uint8) {
	for i := range b {
		b[i] = 0
	}
}
