// Package dither reduces RGBA images to 1-bit black and white.
//
// Every entry point takes a caller-owned source buffer and a caller-owned
// destination buffer of identical geometry: width*height pixels, 4 bytes
// each (R, G, B, A), row-major, origin top-left. On return every
// destination pixel is either (0,0,0,255) or (255,255,255,255).
//
// Seven strategies are provided:
//
//   - Ordered: recursive Bayer threshold matrices.
//   - BlueNoise: a void-and-cluster threshold map, cached per size.
//   - Diffuse: raster-order error diffusion with a pluggable Kernel
//     (FloydSteinberg, Simple2D, JarvisJudiceNinke, Atkinson).
//   - Riemersma: Hilbert-curve traversal with a decaying error history.
//
// All strategies are deterministic. Out-of-range parameters are clamped
// rather than rejected; the only error reported is a buffer whose length
// does not match the stated dimensions, in which case dst is left untouched.
package dither
