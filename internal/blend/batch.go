package blend

import "github.com/gogpu/rast/internal/wide"

// BatchFunc blends 16 pixels held in a BatchState. The result replaces the
// destination lanes.
type BatchFunc func(b *wide.BatchState)

// GetBatchFunc returns the 16-pixel batch variant of the mode, or nil when
// only the scalar function applies. Batch variants exist only for modes
// where a zero source lane leaves the destination unchanged, so a mixed
// block can be processed whole while zero-coverage pixels stay untouched,
// exactly as the scalar path leaves them.
func GetBatchFunc(mode Mode) BatchFunc {
	if !batchEnabled {
		return nil
	}
	switch mode {
	case SourceOver:
		return SourceOverBatch
	case Plus:
		return plusBatch
	default:
		return nil
	}
}

// SourceOverBatch computes S + D * (1 - Sa) across 16 pixels.
func SourceOverBatch(b *wide.BatchState) {
	invSa := b.SA.Inv()
	b.DR = b.SR.ClampAdd(b.DR.MulDiv255(invSa))
	b.DG = b.SG.ClampAdd(b.DG.MulDiv255(invSa))
	b.DB = b.SB.ClampAdd(b.DB.MulDiv255(invSa))
	b.DA = b.SA.ClampAdd(b.DA.MulDiv255(invSa))
}

// plusBatch computes min(S + D, 255) across 16 pixels.
func plusBatch(b *wide.BatchState) {
	b.DR = b.SR.ClampAdd(b.DR)
	b.DG = b.SG.ClampAdd(b.DG)
	b.DB = b.SB.ClampAdd(b.DB)
	b.DA = b.SA.ClampAdd(b.DA)
}
