// Package rast is a CPU scanline rasterizer for 2D vector graphics.
//
// # Overview
//
// rast turns vector paths, built imperatively or parsed from SVG path text,
// into per-pixel coverage and composites the result into an RGBA pixmap or
// an 8-bit alpha mask. The pipeline is:
//
//	Path -> flattener -> shapes -> (stroker) -> segments -> strip
//	partition -> coverage engine -> fill/composite -> Pixmap | Mask
//
// Curves and arcs are adaptively flattened to a fixed device-space error
// budget. Coverage uses 5x vertical supersampling with analytic fractional
// coverage at span boundaries; axis-aligned integer geometry takes an exact
// single-sample path. The composite loop fast-paths fully transparent and
// fully covered 16-pixel blocks.
//
// # Quick Start
//
//	p := rast.NewPath()
//	p.Circle(128, 128, 96)
//
//	img := rast.NewPixmap(256, 256)
//	rast.FillPath(img, p, rast.SolidPaint(rast.Red), rast.Identity(),
//		rast.FillRuleNonZero)
//	_ = img.SavePNG("circle.png")
//
// # Concurrency
//
// A Path is a single-owner builder. Rasterizing borrows its inputs
// immutably, so independent draws into disjoint destinations may run in
// parallel, and one path may be read from many goroutines as long as none
// mutates it.
//
// # Build Tags
//
// Building with the nosimd tag replaces the 16-lane batch code with scalar
// loops. Output is bit-identical.
package rast
