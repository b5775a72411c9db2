package canvas

import (
	"image"
	"image/draw"

	"github.com/gogpu/canvas/internal/pix"
)

// Bitmap is a rectangular pixel buffer in premultiplied RGBA order,
// 4 bytes per pixel, the format draw dispatch hands to devices.
type Bitmap struct {
	width  int
	height int
	data   []uint8
}

// NewBitmap creates a transparent bitmap with the given dimensions.
func NewBitmap(width, height int) *Bitmap {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Bitmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// BitmapFromImage converts any image into a premultiplied bitmap.
func BitmapFromImage(img image.Image) *Bitmap {
	bounds := img.Bounds()
	b := NewBitmap(bounds.Dx(), bounds.Dy())
	dst := &image.RGBA{
		Pix:    b.data,
		Stride: b.width * 4,
		Rect:   image.Rect(0, 0, b.width, b.height),
	}
	draw.Draw(dst, dst.Rect, img, bounds.Min, draw.Src)
	return b
}

// BitmapFromData wraps raw premultiplied RGBA pixels without copying.
// len(data) must be at least width*height*4.
func BitmapFromData(data []uint8, width, height int) *Bitmap {
	if width <= 0 || height <= 0 || len(data) < width*height*4 {
		return NewBitmap(0, 0)
	}
	return &Bitmap{width: width, height: height, data: data}
}

// Width returns the width of the bitmap.
func (b *Bitmap) Width() int { return b.width }

// Height returns the height of the bitmap.
func (b *Bitmap) Height() int { return b.height }

// Pix returns the raw premultiplied RGBA pixel data.
func (b *Bitmap) Pix() []uint8 { return b.data }

// Bounds returns the bitmap extent as a logical rectangle at the origin.
func (b *Bitmap) Bounds() Rect {
	return Rect{MaxX: float32(b.width), MaxY: float32(b.height)}
}

// IsEmpty returns true if the bitmap has no pixels.
func (b *Bitmap) IsEmpty() bool {
	return b == nil || b.width <= 0 || b.height <= 0
}

// buffer exposes the bitmap to the compositing loops without copying.
func (b *Bitmap) buffer() *pix.Buffer {
	return &pix.Buffer{Pix: b.data, W: b.width, H: b.height, Stride: b.width * 4}
}

// Patch describes a nine-patch (more generally an n-patch) division of a
// bitmap. XDivs and YDivs are pixel positions inside the bitmap; cells
// between an even and odd div index stretch, the rest keep their size.
type Patch struct {
	XDivs []int
	YDivs []int
}

// NinePatch builds the common 3x3 division with one stretchable center
// cell spanning [x0,x1) x [y0,y1).
func NinePatch(x0, x1, y0, y1 int) Patch {
	return Patch{
		XDivs: []int{x0, x1},
		YDivs: []int{y0, y1},
	}
}
