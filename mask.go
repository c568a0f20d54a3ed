package rast

import "image"

// Mask is an 8-bit alpha buffer. Values range from 0 (fully transparent)
// to 255 (fully opaque).
type Mask struct {
	width  int
	height int
	data   []uint8
}

// NewMask creates an empty mask with the given dimensions.
func NewMask(width, height int) *Mask {
	return &Mask{
		width:  width,
		height: height,
		data:   make([]uint8, width*height),
	}
}

// Width returns the mask width.
func (m *Mask) Width() int { return m.width }

// Height returns the mask height.
func (m *Mask) Height() int { return m.height }

// Data returns the raw alpha data.
func (m *Mask) Data() []uint8 { return m.data }

// DataIndex returns the byte offset of (x, y) in Data.
func (m *Mask) DataIndex(x, y int) int {
	return y*m.width + x
}

// At returns the alpha value at (x, y), or 0 outside the mask.
func (m *Mask) At(x, y int) uint8 {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return 0
	}
	return m.data[m.DataIndex(x, y)]
}

// Set sets the alpha value at (x, y). Out-of-bounds coordinates are ignored.
func (m *Mask) Set(x, y int, value uint8) {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return
	}
	m.data[m.DataIndex(x, y)] = value
}

// FillRun writes value over n pixels starting at (x, y) without bounds
// checking. The caller guarantees the run stays inside the row.
func (m *Mask) FillRun(x, y, n int, value uint8) {
	i := m.DataIndex(x, y)
	for j := i; j < i+n; j++ {
		m.data[j] = value
	}
}

// Fill sets every value in the mask.
func (m *Mask) Fill(value uint8) {
	for i := range m.data {
		m.data[i] = value
	}
}

// Clear zeroes the mask.
func (m *Mask) Clear() {
	m.Fill(0)
}

// Invert replaces every value with 255 - value.
func (m *Mask) Invert() {
	for i := range m.data {
		m.data[i] = 255 - m.data[i]
	}
}

// ApplyOpacity scales every value by opacity in [0, 1].
func (m *Mask) ApplyOpacity(opacity float64) {
	o := uint32(clamp(opacity, 0, 1)*255 + 0.5)
	for i, v := range m.data {
		x := uint32(v) * o
		m.data[i] = uint8((x + 1 + (x >> 8)) >> 8)
	}
}

// Clone creates a deep copy of the mask.
func (m *Mask) Clone() *Mask {
	clone := NewMask(m.width, m.height)
	copy(clone.data, m.data)
	return clone
}

// Bounds returns the mask dimensions as an image.Rectangle.
func (m *Mask) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.width, m.height)
}
