package rast

import "github.com/gogpu/rast/internal/blend"

// BlendMode selects a Porter-Duff compositing operator. The zero value is
// source-over.
type BlendMode uint8

const (
	// BlendSourceOver composites source over destination (the default).
	BlendSourceOver BlendMode = iota
	// BlendSource replaces the destination with the source.
	BlendSource
	// BlendDestination keeps the destination unchanged.
	BlendDestination
	// BlendClear clears the destination.
	BlendClear
	// BlendDestinationOver composites destination over source.
	BlendDestinationOver
	// BlendSourceIn keeps source where the destination is opaque.
	BlendSourceIn
	// BlendDestinationIn keeps destination where the source is opaque.
	BlendDestinationIn
	// BlendSourceOut keeps source where the destination is transparent.
	BlendSourceOut
	// BlendDestinationOut keeps destination where the source is
	// transparent.
	BlendDestinationOut
	// BlendSourceAtop composites source over destination, keeping
	// destination alpha.
	BlendSourceAtop
	// BlendDestinationAtop composites destination over source, keeping
	// source alpha.
	BlendDestinationAtop
	// BlendXor keeps source and destination where they do not overlap.
	BlendXor
	// BlendPlus adds source and destination, clamped to 255.
	BlendPlus
	// BlendModulate multiplies source and destination.
	BlendModulate
	// BlendMask intersects the destination with the source coverage and
	// clears everything outside the filled region.
	BlendMask
)

// mode converts the public blend mode to the internal dispatch type.
func (m BlendMode) mode() blend.Mode {
	switch m {
	case BlendSource:
		return blend.Source
	case BlendDestination:
		return blend.Destination
	case BlendClear:
		return blend.Clear
	case BlendDestinationOver:
		return blend.DestinationOver
	case BlendSourceIn:
		return blend.SourceIn
	case BlendDestinationIn:
		return blend.DestinationIn
	case BlendSourceOut:
		return blend.SourceOut
	case BlendDestinationOut:
		return blend.DestinationOut
	case BlendSourceAtop:
		return blend.SourceAtop
	case BlendDestinationAtop:
		return blend.DestinationAtop
	case BlendXor:
		return blend.Xor
	case BlendPlus:
		return blend.Plus
	case BlendModulate:
		return blend.Modulate
	case BlendMask:
		return blend.Mask
	default:
		return blend.SourceOver
	}
}
