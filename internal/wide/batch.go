package wide

// BatchState holds 16 RGBA pixels in structure-of-arrays layout: one lane
// vector per channel, for source and destination. Channel-per-vector layout
// lets blend math run on whole channels at once.
type BatchState struct {
	SR, SG, SB, SA U16x16 // source
	DR, DG, DB, DA U16x16 // destination
}

// LoadSrc loads 16 interleaved RGBA pixels (64 bytes) into the source
// lanes.
func (b *BatchState) LoadSrc(src []byte) {
	for i := 0; i < 16; i++ {
		o := i * 4
		b.SR[i] = uint16(src[o+0])
		b.SG[i] = uint16(src[o+1])
		b.SB[i] = uint16(src[o+2])
		b.SA[i] = uint16(src[o+3])
	}
}

// SplatSrc fills all 16 source lanes with one premultiplied RGBA color.
func (b *BatchState) SplatSrc(r, g, bl, a byte) {
	b.SR = SplatU16(uint16(r))
	b.SG = SplatU16(uint16(g))
	b.SB = SplatU16(uint16(bl))
	b.SA = SplatU16(uint16(a))
}

// ScaleSrc multiplies the source lanes by 16 per-pixel coverage values.
func (b *BatchState) ScaleSrc(cov []byte) {
	var c U16x16
	for i := 0; i < 16; i++ {
		c[i] = uint16(cov[i])
	}
	b.SR = b.SR.MulDiv255(c)
	b.SG = b.SG.MulDiv255(c)
	b.SB = b.SB.MulDiv255(c)
	b.SA = b.SA.MulDiv255(c)
}

// LoadDst loads 16 interleaved RGBA pixels (64 bytes) into the destination
// lanes.
func (b *BatchState) LoadDst(dst []byte) {
	for i := 0; i < 16; i++ {
		o := i * 4
		b.DR[i] = uint16(dst[o+0])
		b.DG[i] = uint16(dst[o+1])
		b.DB[i] = uint16(dst[o+2])
		b.DA[i] = uint16(dst[o+3])
	}
}

// StoreDst writes the destination lanes back as 16 interleaved RGBA pixels.
func (b *BatchState) StoreDst(dst []byte) {
	for i := 0; i < 16; i++ {
		o := i * 4
		dst[o+0] = uint8(b.DR[i])
		dst[o+1] = uint8(b.DG[i])
		dst[o+2] = uint8(b.DB[i])
		dst[o+3] = uint8(b.DA[i])
	}
}
