// Package frame holds the CPU-side pixel buffer the ray tracer
// renders into and the window loop uploads from.
package frame

import (
	"image"
	"image/color"

	"github.com/fogleman/fauxgl"
)

// Buffer is a W x H grid of 8-bit RGBA pixels, row-major with a
// top-left origin. Alpha is always written fully opaque. A Buffer is
// owned by exactly one writer during a render pass.
type Buffer struct {
	W, H int
	pix  []byte
}

// New allocates a buffer cleared to transparent black.
func New(w, h int) *Buffer {
	return &Buffer{W: w, H: h, pix: make([]byte, 4*w*h)}
}

// SetPixel writes one color at screen coordinates. Out-of-range
// coordinates are ignored. Channels are clamped to [0,255] by the
// float-to-byte conversion; alpha is forced opaque.
func (b *Buffer) SetPixel(x, y int, c fauxgl.Color) {
	if x < 0 || y < 0 || x >= b.W || y >= b.H {
		return
	}
	n := c.NRGBA()
	i := 4 * (y*b.W + x)
	b.pix[i] = n.R
	b.pix[i+1] = n.G
	b.pix[i+2] = n.B
	b.pix[i+3] = 0xff
}

// At returns the stored color at screen coordinates, or zero for
// out-of-range reads.
func (b *Buffer) At(x, y int) color.NRGBA {
	if x < 0 || y < 0 || x >= b.W || y >= b.H {
		return color.NRGBA{}
	}
	i := 4 * (y*b.W + x)
	return color.NRGBA{R: b.pix[i], G: b.pix[i+1], B: b.pix[i+2], A: b.pix[i+3]}
}

// Fill sets every pixel to c.
func (b *Buffer) Fill(c fauxgl.Color) {
	n := c.NRGBA()
	for i := 0; i < len(b.pix); i += 4 {
		b.pix[i] = n.R
		b.pix[i+1] = n.G
		b.pix[i+2] = n.B
		b.pix[i+3] = 0xff
	}
}

// Pix exposes the raw RGBA bytes for ebiten.Image.WritePixels. With
// opaque alpha the premultiplied and straight forms coincide.
func (b *Buffer) Pix() []byte {
	return b.pix
}

// Image wraps the buffer as an image.NRGBA sharing the same backing
// bytes, for PNG encoding and thumbnailing.
func (b *Buffer) Image() *image.NRGBA {
	return &image.NRGBA{Pix: b.pix, Stride: 4 * b.W, Rect: image.Rect(0, 0, b.W, b.H)}
}
