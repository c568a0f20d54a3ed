//go:build !nosimd

package blend

// batchEnabled gates the 16-pixel batch blenders. The nosimd build tag
// turns them off, forcing every pixel through the scalar functions.
const batchEnabled = true
