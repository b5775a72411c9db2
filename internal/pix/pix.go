// Package pix provides the premultiplied RGBA pixel buffer and the
// Porter-Duff compositing loops used by the software device.
//
// All color values are premultiplied alpha in the range 0-255.
package pix

import "image"

// Buffer is a premultiplied RGBA pixel buffer.
type Buffer struct {
	Pix    []uint8
	W, H   int
	Stride int
}

// New returns a zeroed (transparent black) buffer.
func New(w, h int) *Buffer {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Buffer{
		Pix:    make([]uint8, w*h*4),
		W:      w,
		H:      h,
		Stride: w * 4,
	}
}

// FromRGBA wraps an image.RGBA without copying. The image's pixel
// data is assumed premultiplied.
func FromRGBA(img *image.RGBA) *Buffer {
	return &Buffer{
		Pix:    img.Pix,
		W:      img.Rect.Dx(),
		H:      img.Rect.Dy(),
		Stride: img.Stride,
	}
}

// RGBA returns a zero-copy image.RGBA view of the buffer, suitable
// for the golang.org/x/image/draw scalers.
func (b *Buffer) RGBA() *image.RGBA {
	return &image.RGBA{
		Pix:    b.Pix,
		Stride: b.Stride,
		Rect:   image.Rect(0, 0, b.W, b.H),
	}
}

// At returns the premultiplied pixel at (x, y). Out-of-bounds reads
// return transparent black.
func (b *Buffer) At(x, y int) [4]uint8 {
	if x < 0 || y < 0 || x >= b.W || y >= b.H {
		return [4]uint8{}
	}
	i := y*b.Stride + x*4
	return [4]uint8{b.Pix[i], b.Pix[i+1], b.Pix[i+2], b.Pix[i+3]}
}

// Set writes the premultiplied pixel at (x, y). Out-of-bounds writes
// are dropped.
func (b *Buffer) Set(x, y int, c [4]uint8) {
	if x < 0 || y < 0 || x >= b.W || y >= b.H {
		return
	}
	i := y*b.Stride + x*4
	b.Pix[i], b.Pix[i+1], b.Pix[i+2], b.Pix[i+3] = c[0], c[1], c[2], c[3]
}

// Clear zeroes the window [x0, x1) x [y0, y1).
func (b *Buffer) Clear(x0, y0, x1, y1 int) {
	x0, y0, x1, y1 = b.clamp(x0, y0, x1, y1)
	for y := y0; y < y1; y++ {
		row := b.Pix[y*b.Stride+x0*4 : y*b.Stride+x1*4]
		for i := range row {
			row[i] = 0
		}
	}
}

// FillRect blends a constant source color over the window
// [x0, x1) x [y0, y1) using the given operator.
func (b *Buffer) FillRect(x0, y0, x1, y1 int, src [4]uint8, fn Func) {
	x0, y0, x1, y1 = b.clamp(x0, y0, x1, y1)
	for y := y0; y < y1; y++ {
		i := y*b.Stride + x0*4
		for x := x0; x < x1; x++ {
			dr, dg, db, da := b.Pix[i], b.Pix[i+1], b.Pix[i+2], b.Pix[i+3]
			r, g, bl, a := fn(src[0], src[1], src[2], src[3], dr, dg, db, da)
			b.Pix[i], b.Pix[i+1], b.Pix[i+2], b.Pix[i+3] = r, g, bl, a
			i += 4
		}
	}
}

// Composite blends src into b at offset (dx, dy), restricted to the
// window [x0, x1) x [y0, y1) in destination coordinates. The source
// is modulated by alpha before blending, which implements layer
// compositing.
func (b *Buffer) Composite(src *Buffer, dx, dy int, alpha uint8, fn Func, x0, y0, x1, y1 int) {
	x0 = maxInt(x0, dx)
	y0 = maxInt(y0, dy)
	x1 = minInt(x1, dx+src.W)
	y1 = minInt(y1, dy+src.H)
	x0, y0, x1, y1 = b.clamp(x0, y0, x1, y1)
	for y := y0; y < y1; y++ {
		di := y*b.Stride + x0*4
		si := (y-dy)*src.Stride + (x0-dx)*4
		for x := x0; x < x1; x++ {
			sr, sg, sb, sa := src.Pix[si], src.Pix[si+1], src.Pix[si+2], src.Pix[si+3]
			if alpha != 255 {
				sr = MulDiv255(sr, alpha)
				sg = MulDiv255(sg, alpha)
				sb = MulDiv255(sb, alpha)
				sa = MulDiv255(sa, alpha)
			}
			dr, dg, db, da := b.Pix[di], b.Pix[di+1], b.Pix[di+2], b.Pix[di+3]
			r, g, bl, a := fn(sr, sg, sb, sa, dr, dg, db, da)
			b.Pix[di], b.Pix[di+1], b.Pix[di+2], b.Pix[di+3] = r, g, bl, a
			di += 4
			si += 4
		}
	}
}

// clamp restricts a window to the buffer bounds.
func (b *Buffer) clamp(x0, y0, x1, y1 int) (int, int, int, int) {
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	if x1 > b.W {
		x1 = b.W
	}
	if y1 > b.H {
		y1 = b.H
	}
	if x1 < x0 {
		x1 = x0
	}
	if y1 < y0 {
		y1 = y0
	}
	return x0, y0, x1, y1
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
