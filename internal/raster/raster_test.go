package raster

import (
	"math"
	"math/rand"
	"sort"
	"testing"
)

func ring(pts ...float64) []Point {
	out := make([]Point, 0, len(pts)/2)
	for i := 0; i+1 < len(pts); i += 2 {
		out = append(out, Point{X: pts[i], Y: pts[i+1]})
	}
	return out
}

func TestFromShapesDiscardsHorizontal(t *testing.T) {
	segs := FromShapes([][]Point{ring(0, 0, 10, 0, 10, 10, 0, 10, 0, 0)})
	if len(segs) != 2 {
		t.Fatalf("square has 2 non-horizontal edges, got %d", len(segs))
	}
}

func TestFromShapesWinding(t *testing.T) {
	segs := FromShapes([][]Point{ring(0, 0, 0, 10, 5, 5, 0, 0)})
	for _, s := range segs {
		if s.At.Y > s.To.Y {
			t.Fatalf("segment endpoints must be ordered by y: %+v", s)
		}
	}

	// Edge (0,0)->(0,10) goes down: winding +1. Edge (5,5)->(0,0) goes up:
	// winding -1.
	if segs[0].Winding != 1 {
		t.Errorf("downward edge winding = %d, want 1", segs[0].Winding)
	}

	// A horizontal ray through a closed shape crosses equally many up and
	// down edges, so the winding of its crossings cancels.
	for _, y := range []float64{1.5, 5.5, 9.5} {
		sum := 0
		for _, s := range segs {
			if s.At.Y <= y && y < s.To.Y {
				sum += s.Winding
			}
		}
		if sum != 0 {
			t.Errorf("crossing winding at y=%v sums to %d, want 0", y, sum)
		}
	}
}

func TestBoundsNaN(t *testing.T) {
	segs := []Segment{{At: Point{X: math.NaN(), Y: 0}, To: Point{X: 1, Y: 1}, Winding: 1}}
	if _, _, _, _, ok := Bounds(segs); ok {
		t.Fatal("NaN coordinates must report no geometry")
	}
	if _, _, _, _, ok := Bounds(nil); ok {
		t.Fatal("empty segment list must report no geometry")
	}
}

func TestPartitionStripCount(t *testing.T) {
	tests := []struct {
		name     string
		segments int
		height   int
		want     int
	}{
		{"tall path many segments", 100, 80, 20},
		{"segment bound", 4, 80, 2},
		{"short path", 100, 3, 1},
		{"single segment", 1, 100, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			segs := make([]Segment, tt.segments)
			for i := range segs {
				segs[i] = Segment{
					At:      Point{X: 0, Y: 0},
					To:      Point{X: 1, Y: float64(tt.height)},
					Winding: 1,
				}
			}
			p := NewPartition(segs, 0, tt.height)
			if got := len(p.strips); got != tt.want {
				t.Errorf("strip count = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestPartitionEntrySpansStrips(t *testing.T) {
	// One segment spans the whole height, seven only touch the top rows.
	segs := []Segment{
		{At: Point{X: 0, Y: 0}, To: Point{X: 0, Y: 40}, Winding: 1},
	}
	for i := 0; i < 7; i++ {
		segs = append(segs, Segment{
			At:      Point{X: float64(i), Y: 0},
			To:      Point{X: float64(i), Y: 4},
			Winding: -1,
		})
	}

	p := NewPartition(segs, 0, 40)
	if len(p.strips) != 4 {
		t.Fatalf("strip count = %d, want 4", len(p.strips))
	}
	last := p.strips[len(p.strips)-1]
	if len(last.entries) != 1 {
		t.Fatalf("only the tall segment reaches the last strip, got %d entries", len(last.entries))
	}
	if len(p.strips[0].entries) != 8 {
		t.Fatalf("first strip must hold every segment, got %d", len(p.strips[0].entries))
	}
}

func TestPartitionRequiresAA(t *testing.T) {
	integerVertical := Segment{At: Point{X: 3, Y: 0}, To: Point{X: 3, Y: 8}, Winding: 1}
	fracVertical := Segment{At: Point{X: 3.5, Y: 0}, To: Point{X: 3.5, Y: 8}, Winding: 1}
	slanted := Segment{At: Point{X: 0, Y: 0}, To: Point{X: 8, Y: 8}, Winding: 1}

	tests := []struct {
		name string
		segs []Segment
		want bool
	}{
		{"integer verticals", []Segment{integerVertical}, false},
		{"fractional vertical", []Segment{fracVertical}, true},
		{"slanted edge", []Segment{slanted}, true},
		{"mixed", []Segment{integerVertical, slanted}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPartition(tt.segs, 0, 8)
			if got := p.strips[0].requiresAA; got != tt.want {
				t.Errorf("requiresAA = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSortHits(t *testing.T) {
	sizes := []int{0, 1, 2, 5, 31, 32, 33, 100, 1000}
	rng := rand.New(rand.NewSource(42))
	for _, n := range sizes {
		hits := make([]hit, n)
		for i := range hits {
			hits[i] = hit{x: rng.Float64() * 100, winding: 1 - 2*(i%2)}
		}
		sortHits(hits)
		if !sort.SliceIsSorted(hits, func(i, j int) bool { return hits[i].x < hits[j].x }) {
			t.Fatalf("size %d: not sorted", n)
		}
	}
}

func TestSortHitsAdversarial(t *testing.T) {
	// Already sorted, reversed, and constant inputs exercise the median
	// pivot selection.
	for name, gen := range map[string]func(i int) float64{
		"sorted":   func(i int) float64 { return float64(i) },
		"reversed": func(i int) float64 { return float64(-i) },
		"constant": func(i int) float64 { return 7 },
	} {
		hits := make([]hit, 200)
		for i := range hits {
			hits[i] = hit{x: gen(i)}
		}
		sortHits(hits)
		if !sort.SliceIsSorted(hits, func(i, j int) bool { return hits[i].x < hits[j].x }) {
			t.Fatalf("%s: not sorted", name)
		}
	}
}

// collectRows rasterizes segments into a full coverage grid for assertions.
func collectRows(segs []Segment, w, h int, rule FillRule) [][]uint8 {
	grid := make([][]uint8, h)
	for i := range grid {
		grid[i] = make([]uint8, w)
	}
	var f Filler
	f.Fill(segs, w, h, rule, func(y, x0, x1 int, cov []uint8) {
		copy(grid[y][x0:x1], cov[x0:x1])
	})
	return grid
}

func TestFillExactRect(t *testing.T) {
	segs := FromShapes([][]Point{ring(2, 1, 6, 1, 6, 5, 2, 5, 2, 1)})
	grid := collectRows(segs, 8, 8, NonZero)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			want := uint8(0)
			if x >= 2 && x < 6 && y >= 1 && y < 5 {
				want = 255
			}
			if grid[y][x] != want {
				t.Fatalf("(%d,%d) = %d, want %d", x, y, grid[y][x], want)
			}
		}
	}
}

func TestFillAAHalfCoveredColumn(t *testing.T) {
	// A rect covering half of column 4 horizontally: [1, 4.5] x [1, 5].
	segs := FromShapes([][]Point{ring(1, 1, 4.5, 1, 4.5, 5, 1, 5, 1, 1)})
	grid := collectRows(segs, 8, 8, NonZero)

	if grid[2][2] != 255 {
		t.Errorf("interior pixel = %d, want 255", grid[2][2])
	}
	// Column 4 is half covered: 5 samples x 51 x 0.5 each.
	half := grid[2][4]
	if half < 120 || half > 135 {
		t.Errorf("half-covered pixel = %d, want about 127", half)
	}
	if grid[2][5] != 0 {
		t.Errorf("outside pixel = %d, want 0", grid[2][5])
	}
}

func TestFillAAVerticalSubpixel(t *testing.T) {
	// A rect covering the top of row 2 vertically: [1, 6] x [2, 2.4].
	segs := FromShapes([][]Point{ring(1, 2, 6, 2, 6, 2.4, 1, 2.4, 1, 2)})
	grid := collectRows(segs, 8, 8, NonZero)

	// Samples at 2.1 and 2.3 land inside: 2 of 5 samples, 102 of 255.
	got := grid[2][3]
	if got != 102 {
		t.Errorf("subpixel row coverage = %d, want 102", got)
	}
}

func TestFillEvenOddVsNonZeroOverlap(t *testing.T) {
	// Two overlapping same-winding squares.
	shapes := [][]Point{
		ring(1, 1, 5, 1, 5, 5, 1, 5, 1, 1),
		ring(3, 3, 7, 3, 7, 7, 3, 7, 3, 3),
	}
	segs := FromShapes(shapes)

	nz := collectRows(segs, 8, 8, NonZero)
	if nz[4][4] != 255 {
		t.Errorf("NonZero overlap = %d, want 255", nz[4][4])
	}

	eo := collectRows(segs, 8, 8, EvenOdd)
	if eo[4][4] != 0 {
		t.Errorf("EvenOdd overlap = %d, want 0", eo[4][4])
	}
	if eo[2][2] != 255 {
		t.Errorf("EvenOdd single cover = %d, want 255", eo[2][2])
	}
}

func TestFillClipsNegativeX(t *testing.T) {
	segs := FromShapes([][]Point{ring(-5, 1, 3, 1, 3, 4, -5, 4, -5, 1)})
	grid := collectRows(segs, 8, 8, NonZero)
	if grid[2][0] != 255 || grid[2][2] != 255 {
		t.Fatalf("clipped fill must still cover visible pixels: %v", grid[2])
	}
}

func TestShouldFill(t *testing.T) {
	tests := []struct {
		rule    FillRule
		winding int
		want    bool
	}{
		{NonZero, 0, false},
		{NonZero, 1, true},
		{NonZero, -2, true},
		{EvenOdd, 0, false},
		{EvenOdd, 1, true},
		{EvenOdd, 2, false},
		{EvenOdd, -3, true},
	}
	for _, tt := range tests {
		if got := ShouldFill(tt.rule, tt.winding); got != tt.want {
			t.Errorf("ShouldFill(%v, %d) = %v, want %v", tt.rule, tt.winding, got, tt.want)
		}
	}
}
