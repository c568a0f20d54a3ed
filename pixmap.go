package rast

import (
	"image"
	"image/color"
	"image/png"
	"os"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// Pixmap is a rectangular buffer of premultiplied RGBA pixels, 4 bytes per
// pixel in row-major order. It is the destination surface the rasterizer
// composites into.
type Pixmap struct {
	width  int
	height int
	data   []uint8
}

// NewPixmap creates a pixmap with the given dimensions, initialized to
// transparent black.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the pixmap width.
func (p *Pixmap) Width() int { return p.width }

// Height returns the pixmap height.
func (p *Pixmap) Height() int { return p.height }

// Data returns the raw premultiplied RGBA pixel data.
func (p *Pixmap) Data() []uint8 { return p.data }

// DataIndex returns the byte offset of pixel (x, y) in Data.
func (p *Pixmap) DataIndex(x, y int) int {
	return (y*p.width + x) * 4
}

// SetPixel sets one pixel. Coordinates outside the pixmap are ignored.
func (p *Pixmap) SetPixel(x, y int, c RGBA) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	r, g, b, a := c.Premul8()
	i := p.DataIndex(x, y)
	p.data[i+0] = r
	p.data[i+1] = g
	p.data[i+2] = b
	p.data[i+3] = a
}

// GetPixel returns one pixel. Coordinates outside the pixmap return
// transparent.
func (p *Pixmap) GetPixel(x, y int) RGBA {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return Transparent
	}
	i := p.DataIndex(x, y)
	return FromColor(color.RGBA{
		R: p.data[i+0],
		G: p.data[i+1],
		B: p.data[i+2],
		A: p.data[i+3],
	})
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c RGBA) {
	r, g, b, a := c.Premul8()
	for i := 0; i < len(p.data); i += 4 {
		p.data[i+0] = r
		p.data[i+1] = g
		p.data[i+2] = b
		p.data[i+3] = a
	}
}

// FillRun writes the premultiplied color over n pixels starting at (x, y)
// without bounds checking. The caller guarantees the run stays inside the
// row.
func (p *Pixmap) FillRun(x, y, n int, r, g, b, a byte) {
	i := p.DataIndex(x, y)
	for end := i + n*4; i < end; i += 4 {
		p.data[i+0] = r
		p.data[i+1] = g
		p.data[i+2] = b
		p.data[i+3] = a
	}
}

// Clone creates a deep copy of the pixmap.
func (p *Pixmap) Clone() *Pixmap {
	q := NewPixmap(p.width, p.height)
	copy(q.data, p.data)
	return q
}

// DrawMask multiplies the pixmap's pixels by a mask's alpha in place. The
// mask must have the same dimensions.
func (p *Pixmap) DrawMask(m *Mask) {
	if m.width != p.width || m.height != p.height {
		return
	}
	for i, a := range m.data {
		o := i * 4
		p.data[o+0] = mul8(p.data[o+0], a)
		p.data[o+1] = mul8(p.data[o+1], a)
		p.data[o+2] = mul8(p.data[o+2], a)
		p.data[o+3] = mul8(p.data[o+3], a)
	}
}

func mul8(v, a byte) byte {
	x := uint32(v) * uint32(a)
	return byte((x + 1 + (x >> 8)) >> 8)
}

// DrawImage composites src onto the pixmap through an affine transform,
// using bilinear resampling and source-over compositing.
func (p *Pixmap) DrawImage(src *Pixmap, m Matrix) {
	aff := f64.Aff3{m.A, m.B, m.C, m.D, m.E, m.F}
	xdraw.ApproxBiLinear.Transform(p, aff, src, src.Bounds(), xdraw.Over, nil)
}

// ToImage converts the pixmap to an image.RGBA sharing no storage.
func (p *Pixmap) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// FromImage creates a pixmap from an image.
func FromImage(img image.Image) *Pixmap {
	bounds := img.Bounds()
	pm := NewPixmap(bounds.Dx(), bounds.Dy())
	for y := 0; y < pm.height; y++ {
		for x := 0; x < pm.width; x++ {
			pm.SetPixel(x, y, FromColor(img.At(bounds.Min.X+x, bounds.Min.Y+y)))
		}
	}
	return pm
}

// SavePNG writes the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()
	return png.Encode(f, p.ToImage())
}

// At implements image.Image.
func (p *Pixmap) At(x, y int) color.Color {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return color.RGBA{}
	}
	i := p.DataIndex(x, y)
	return color.RGBA{R: p.data[i+0], G: p.data[i+1], B: p.data[i+2], A: p.data[i+3]}
}

// Set implements draw.Image.
func (p *Pixmap) Set(x, y int, c color.Color) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	r, g, b, a := c.RGBA()
	i := p.DataIndex(x, y)
	p.data[i+0] = byte(r >> 8)
	p.data[i+1] = byte(g >> 8)
	p.data[i+2] = byte(b >> 8)
	p.data[i+3] = byte(a >> 8)
}

// Bounds implements image.Image.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements image.Image.
func (p *Pixmap) ColorModel() color.Model {
	return color.RGBAModel
}
