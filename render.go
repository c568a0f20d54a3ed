package rast

import (
	"github.com/gogpu/rast/internal/blend"
	"github.com/gogpu/rast/internal/flatten"
	"github.com/gogpu/rast/internal/raster"
	"github.com/gogpu/rast/internal/stroke"
	"github.com/gogpu/rast/internal/wide"
)

// flattenCommands converts the path's commands into the flattener's
// representation. The kind enums are declared in the same order.
func (p *Path) flattenCommands() []flatten.Command {
	cmds := make([]flatten.Command, len(p.commands))
	for i, c := range p.commands {
		cmds[i] = flatten.Command{Kind: flatten.Kind(c.Kind), Args: c.Args}
	}
	return cmds
}

// transformShapes applies the transform to flattened shape points in place.
func transformShapes(shapes [][]flatten.Point, m Matrix) {
	if m.IsIdentity() {
		return
	}
	for _, shape := range shapes {
		for i, pt := range shape {
			shape[i] = flatten.Point{
				X: m.A*pt.X + m.B*pt.Y + m.C,
				Y: m.D*pt.X + m.E*pt.Y + m.F,
			}
		}
	}
}

// fillSegments flattens a path for filling and returns its device-space
// segments.
func fillSegments(path *Path, m Matrix) []raster.Segment {
	shapes := flatten.Flatten(path.flattenCommands(), flatten.Options{
		CloseSubpaths: true,
		PixelScale:    m.LargestScale(),
	})
	transformShapes(shapes, m)
	return raster.FromShapes(shapes)
}

// strokeSegments flattens and stroke-expands a path and returns the
// device-space segments of the expanded outline shapes.
func strokeSegments(path *Path, m Matrix, s Stroke) []raster.Segment {
	if s.Width <= 0 {
		return nil
	}
	scale := m.LargestScale()
	shapes := flatten.Flatten(path.flattenCommands(), flatten.Options{
		PixelScale: scale,
	})

	opts := stroke.Options{
		Width:      s.Width,
		Cap:        stroke.Cap(s.Cap),
		Join:       stroke.Join(s.Join),
		MiterLimit: s.MiterLimit,
		PixelScale: scale,
	}
	if s.IsDashed() {
		opts.Dashes = s.Dash.Array
		opts.DashOffset = s.Dash.Offset
	}
	expanded := stroke.Expand(shapes, opts)
	transformShapes(expanded, m)
	return raster.FromShapes(expanded)
}

// segmentBounds converts raster bounds into a Rect, empty when the segment
// list is empty or contains NaN coordinates.
func segmentBounds(segs []raster.Segment) Rect {
	minX, minY, maxX, maxY, ok := raster.Bounds(segs)
	if !ok {
		return Rect{}
	}
	return Rect{Min: Pt(minX, minY), Max: Pt(maxX, maxY)}
}

// ComputeBounds returns the bounding box of the transformed path, before
// pixel snapping. An empty rect means no geometry (including paths whose
// coordinates contain NaN).
func ComputeBounds(path *Path, m Matrix) Rect {
	return segmentBounds(fillSegments(path, m))
}

// FillPath fills the path into dst under the transform and winding rule,
// using the paint's color source, opacity, and blend mode.
func FillPath(dst *Pixmap, path *Path, paint *Paint, m Matrix, rule FillRule) {
	if paint.Opacity <= 0 {
		return
	}
	drawSegments(dst, fillSegments(path, m), rule, paint)
}

// StrokePath strokes the path into dst under the transform, using the
// stroke style and the paint's color source, opacity, and blend mode.
// Stroke outlines are unioned shapes, so they always fill non-zero.
func StrokePath(dst *Pixmap, path *Path, paint *Paint, m Matrix, s Stroke) {
	if paint.Opacity <= 0 {
		return
	}
	drawSegments(dst, strokeSegments(path, m, s), FillRuleNonZero, paint)
}

// FillPathMask fills the path's coverage into an alpha mask under the
// transform, winding rule, and blend mode.
func FillPathMask(dst *Mask, path *Path, m Matrix, rule FillRule, mode BlendMode) {
	maskSegments(dst, fillSegments(path, m), rule, mode)
}

// StrokePathMask strokes the path's coverage into an alpha mask under the
// transform and blend mode.
func StrokePathMask(dst *Mask, path *Path, m Matrix, s Stroke, mode BlendMode) {
	maskSegments(dst, strokeSegments(path, m, s), FillRuleNonZero, mode)
}

// FillMask rasterizes the path into a fresh width-by-height mask.
func FillMask(path *Path, width, height int, rule FillRule) *Mask {
	m := NewMask(width, height)
	maskSegments(m, fillSegments(path, Identity()), rule, BlendSource)
	return m
}

// FillImage rasterizes the path into a fresh width-by-height pixmap filled
// with the given color.
func FillImage(path *Path, width, height int, c RGBA, rule FillRule) *Pixmap {
	img := NewPixmap(width, height)
	FillPath(img, path, SolidPaint(c), Identity(), rule)
	return img
}

// drawSegments rasterizes segments into a pixmap, dispatching on the paint
// kind: solid colors composite directly, every other source renders through
// an intermediate pixmap masked by the path's coverage.
func drawSegments(dst *Pixmap, segs []raster.Segment, rule FillRule, paint *Paint) {
	if len(segs) == 0 {
		return
	}
	logger().Debug("rast: draw", "segments", len(segs), "paint", paint.Kind)

	if paint.Kind == PaintSolid {
		c := paint.Color.WithOpacity(paint.Opacity)
		if c.A <= 0 && paint.Blend == BlendSourceOver {
			return
		}
		compositeSolid(dst, segs, rule, c, paint.Blend)
		return
	}

	// Paint sources: fill an intermediate pixmap with the paint's colors
	// over the snapped fill window, mask it by the path's coverage, then
	// composite under the paint's blend mode and opacity.
	window := segmentBounds(segs).SnapToPixels()
	x0 := int(clamp(window.Min.X, 0, float64(dst.width)))
	y0 := int(clamp(window.Min.Y, 0, float64(dst.height)))
	x1 := int(clamp(window.Max.X, 0, float64(dst.width)))
	y1 := int(clamp(window.Max.Y, 0, float64(dst.height)))
	if x1 <= x0 || y1 <= y0 {
		return
	}

	tmp := NewPixmap(dst.width, dst.height)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			c := paint.ColorAt(float64(x)+0.5, float64(y)+0.5)
			c.A = 1 // opaque; coverage and opacity arrive via the mask
			tmp.SetPixel(x, y, c)
		}
	}

	cover := NewMask(dst.width, dst.height)
	maskSegments(cover, segs, rule, BlendSource)
	if paint.Opacity < 1 {
		cover.ApplyOpacity(paint.Opacity)
	}
	tmp.DrawMask(cover)
	compositePixmap(dst, tmp, paint.Blend, x0, y0, x1, y1)
}

// compositeSolid writes the coverage of segs into dst as a solid color.
func compositeSolid(dst *Pixmap, segs []raster.Segment, rule FillRule, c RGBA, mode BlendMode) {
	sr, sg, sb, sa := c.Premul8()
	bm := mode.mode()
	scalarFn := blend.GetFunc(bm)
	batchFn := blend.GetBatchFunc(bm)
	maskMode := mode == BlendMask

	// Direct writes are possible when full coverage makes the blend result
	// the source color itself.
	direct := mode == BlendSource || (mode == BlendSourceOver && sa == 255)

	var visited []bool
	if maskMode {
		visited = make([]bool, dst.height)
	}

	var filler raster.Filler
	filler.Fill(segs, dst.width, dst.height, raster.FillRule(rule),
		func(y, x0, x1 int, cov []uint8) {
			compositeImageRow(dst, y, x0, x1, cov, sr, sg, sb, sa,
				direct, maskMode, scalarFn, batchFn)
			if visited != nil {
				visited[y] = true
				zeroPixmapOutside(dst, y, x0, x1)
			}
		})

	if visited != nil {
		for y, seen := range visited {
			if !seen {
				dst.FillRun(0, y, dst.width, 0, 0, 0, 0)
			}
		}
	}
}

// compositeImageRow applies one scanline of coverage to the pixmap,
// fast-pathing fully transparent and fully covered 16-pixel blocks. Under
// the mask mode zero-coverage pixels are processed rather than skipped, so
// the blend can clear them.
func compositeImageRow(dst *Pixmap, y, x0, x1 int, cov []uint8,
	sr, sg, sb, sa byte, direct, maskMode bool,
	scalarFn blend.Func, batchFn blend.BatchFunc) {

	data := dst.data
	i := x0
	for i < x1 {
		if i+16 <= x1 {
			blk := (*[16]uint8)(cov[i : i+16])
			if !maskMode && wide.AllZero(blk) {
				i += 16
				continue
			}
			if direct && wide.AllOpaque(blk) {
				dst.FillRun(i, y, 16, sr, sg, sb, sa)
				i += 16
				continue
			}
			if batchFn != nil {
				var bs wide.BatchState
				bs.SplatSrc(sr, sg, sb, sa)
				bs.ScaleSrc(cov[i : i+16])
				di := dst.DataIndex(i, y)
				bs.LoadDst(data[di:])
				batchFn(&bs)
				bs.StoreDst(data[di:])
				i += 16
				continue
			}
		}

		if c := cov[i]; c != 0 || maskMode {
			di := dst.DataIndex(i, y)
			r, g, b, a := scalarFn(
				mul8(sr, c), mul8(sg, c), mul8(sb, c), mul8(sa, c),
				data[di+0], data[di+1], data[di+2], data[di+3])
			data[di+0] = r
			data[di+1] = g
			data[di+2] = b
			data[di+3] = a
		}
		i++
	}
}

// maskSegments writes the coverage of segs into an alpha mask under the
// blend mode. Under BlendMask, pixels outside the filled region are cleared
// so the mask semantics hold globally.
func maskSegments(dst *Mask, segs []raster.Segment, rule FillRule, mode BlendMode) {
	if len(segs) == 0 {
		if mode == BlendMask {
			dst.Clear()
		}
		return
	}

	bm := mode.mode()
	maskFn := blend.GetMaskFunc(bm)
	maskMode := mode == BlendMask
	directFull := mode == BlendSource || mode == BlendSourceOver

	var visited []bool
	if maskMode {
		visited = make([]bool, dst.height)
	}

	var filler raster.Filler
	filler.Fill(segs, dst.width, dst.height, raster.FillRule(rule),
		func(y, x0, x1 int, cov []uint8) {
			row := dst.data[y*dst.width : (y+1)*dst.width]
			i := x0
			for i < x1 {
				if i+16 <= x1 {
					blk := (*[16]uint8)(cov[i : i+16])
					if !maskMode && wide.AllZero(blk) {
						i += 16
						continue
					}
					if directFull && wide.AllOpaque(blk) {
						dst.FillRun(i, y, 16, 255)
						i += 16
						continue
					}
				}
				if c := cov[i]; c != 0 || maskMode {
					row[i] = maskFn(c, row[i])
				}
				i++
			}
			if visited != nil {
				visited[y] = true
				zeroMaskOutside(dst, y, x0, x1)
			}
		})

	if visited != nil {
		for y, seen := range visited {
			if !seen {
				dst.FillRun(0, y, dst.width, 0)
			}
		}
	}
}

// compositePixmap blends the window region of src onto dst under the mode,
// processing 16-pixel runs with a batch blender where one exists.
func compositePixmap(dst, src *Pixmap, mode BlendMode, x0, y0, x1, y1 int) {
	if dst.width != src.width || dst.height != src.height {
		return
	}
	bm := mode.mode()
	scalarFn := blend.GetFunc(bm)
	batchFn := blend.GetBatchFunc(bm)

	for y := y0; y < y1; y++ {
		i := dst.DataIndex(x0, y)
		end := dst.DataIndex(x1, y)
		if batchFn != nil {
			for ; i+64 <= end; i += 64 {
				var bs wide.BatchState
				bs.LoadSrc(src.data[i:])
				bs.LoadDst(dst.data[i:])
				batchFn(&bs)
				bs.StoreDst(dst.data[i:])
			}
		}
		for ; i < end; i += 4 {
			r, g, b, a := scalarFn(
				src.data[i+0], src.data[i+1], src.data[i+2], src.data[i+3],
				dst.data[i+0], dst.data[i+1], dst.data[i+2], dst.data[i+3])
			dst.data[i+0] = r
			dst.data[i+1] = g
			dst.data[i+2] = b
			dst.data[i+3] = a
		}
	}
}

func zeroPixmapOutside(dst *Pixmap, y, x0, x1 int) {
	if x0 > 0 {
		dst.FillRun(0, y, x0, 0, 0, 0, 0)
	}
	if x1 < dst.width {
		dst.FillRun(x1, y, dst.width-x1, 0, 0, 0, 0)
	}
}

func zeroMaskOutside(dst *Mask, y, x0, x1 int) {
	if x0 > 0 {
		dst.FillRun(0, y, x0, 0)
	}
	if x1 < dst.width {
		dst.FillRun(x1, y, dst.width-x1, 0)
	}
}
