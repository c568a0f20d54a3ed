package blend

// MaskFunc is the per-pixel masker signature: it combines one coverage
// value with one destination alpha value.
type MaskFunc func(cov, dst byte) byte

// GetMaskFunc returns the masker for the mode. Unknown modes fall back to
// source-over.
func GetMaskFunc(mode Mode) MaskFunc {
	switch mode {
	case Source:
		return maskSource
	case Clear:
		return maskClear
	case Destination:
		return maskDestination
	case DestinationIn, Mask:
		return maskIn
	case DestinationOut:
		return maskOut
	case Plus:
		return clampAdd
	default:
		return maskSourceOver
	}
}

func maskSource(cov, dst byte) byte      { return cov }
func maskClear(cov, dst byte) byte       { return 0 }
func maskDestination(cov, dst byte) byte { return dst }

// maskSourceOver computes cov + dst * (1 - cov).
func maskSourceOver(cov, dst byte) byte {
	return clampAdd(cov, mulDiv255(dst, 255-cov))
}

// maskIn computes dst * cov.
func maskIn(cov, dst byte) byte {
	return mulDiv255(dst, cov)
}

// maskOut computes dst * (1 - cov).
func maskOut(cov, dst byte) byte {
	return mulDiv255(dst, 255-cov)
}
