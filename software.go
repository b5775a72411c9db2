package canvas

import (
	"fmt"
	"image"
	"math"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/canvas/internal/pix"
	"github.com/gogpu/canvas/region"
	"github.com/gogpu/canvas/render"
)

// softwareDevice is the CPU rasterization backend: spans composite
// directly into the target's pixel memory, layers into full-frame
// scratch buffers.
type softwareDevice struct {
	target render.Target

	base   *pix.Buffer
	layers []softLayer

	width  int
	height int
}

type softLayer struct {
	buf    *pix.Buffer
	bounds region.Rect
}

// NewSoftwareDevice creates the CPU device drawing into target. The
// target must provide CPU pixel access.
func NewSoftwareDevice(target render.Target) Device {
	return &softwareDevice{target: target}
}

var _ Device = (*softwareDevice)(nil)

// current returns the buffer draws land in: the innermost layer, or
// the frame itself.
func (d *softwareDevice) current() *pix.Buffer {
	if n := len(d.layers); n > 0 {
		return d.layers[n-1].buf
	}
	return d.base
}

func (d *softwareDevice) wrapTarget() error {
	px := d.target.Pixels()
	if px == nil {
		return fmt.Errorf("canvas: software device: target has no CPU pixel access")
	}
	d.base = &pix.Buffer{
		Pix:    px,
		W:      d.target.Width(),
		H:      d.target.Height(),
		Stride: d.target.Stride(),
	}
	return nil
}

func (d *softwareDevice) BeginFrame(width, height int, dirty region.Rect, opaque bool) error {
	if d.target.Width() < width || d.target.Height() < height {
		r, ok := d.target.(interface{ Resize(int, int) })
		if !ok {
			return fmt.Errorf("canvas: software device: target %dx%d smaller than frame %dx%d",
				d.target.Width(), d.target.Height(), width, height)
		}
		r.Resize(width, height)
	}
	if err := d.wrapTarget(); err != nil {
		return err
	}
	d.width = width
	d.height = height
	d.layers = d.layers[:0]
	if !opaque {
		d.base.Clear(dirty.L, dirty.T, dirty.R, dirty.B)
	}
	return nil
}

func (d *softwareDevice) FillRegion(rgn region.Region, paint *Paint) error {
	buf := d.current()
	fn := pix.Get(pix.Mode(paint.Blend))
	if paint.Shader == nil {
		col := paint.Color
		if paint.ColorFilter != nil {
			col = paint.ColorFilter.Filter(col)
		}
		src := col.Premul()
		for _, r := range rgn.Rects() {
			buf.FillRect(r.L, r.T, r.R, r.B, src, fn)
		}
		return nil
	}
	// Shader path: one source color per pixel.
	for _, r := range rgn.Rects() {
		for y := r.T; y < r.B; y++ {
			for x := r.L; x < r.R; x++ {
				col := paint.Shader.ColorAt(float32(x)+0.5, float32(y)+0.5)
				col = col.ModulateAlpha(paint.Color.Alpha())
				if paint.ColorFilter != nil {
					col = paint.ColorFilter.Filter(col)
				}
				blendPixel(buf, x, y, col.Premul(), fn)
			}
		}
	}
	return nil
}

func (d *softwareDevice) DrawImage(src *Bitmap, srcToDev Matrix, clip region.Region, paint *Paint) error {
	buf := d.current()
	srcBuf := src.buffer()
	alpha := paint.Alpha()
	fn := pix.Get(pix.Mode(paint.Blend))

	if d.canScale(buf, srcToDev, clip, paint) {
		return d.drawImageScaled(buf, srcBuf, srcToDev, clip.Bounds())
	}

	inv, ok := srcToDev.Invert()
	if !ok {
		return nil
	}
	bilinear := paint.Flags&PaintFilterBitmap != 0
	for _, r := range clip.Rects() {
		for y := r.T; y < r.B; y++ {
			for x := r.L; x < r.R; x++ {
				sp := inv.TransformPoint(Point{X: float32(x) + 0.5, Y: float32(y) + 0.5})
				var px [4]uint8
				if bilinear {
					px = sampleBilinear(srcBuf, sp.X, sp.Y)
				} else {
					px = sampleNearest(srcBuf, sp.X, sp.Y)
				}
				if px == ([4]uint8{}) && paint.Blend == BlendSrcOver {
					continue
				}
				if alpha != 255 {
					px = modulatePremul(px, alpha)
				}
				if paint.ColorFilter != nil {
					px = filterPremul(px, paint.ColorFilter)
				}
				blendPixel(buf, x, y, px, fn)
			}
		}
	}
	return nil
}

// canScale reports whether the x/image/draw scaler can run the whole
// image draw: an axis-aligned non-flipping transform, plain source-over
// at full alpha, no color filtering, and a rectangular clip.
func (d *softwareDevice) canScale(buf *pix.Buffer, m Matrix, clip region.Region, paint *Paint) bool {
	if buf != d.base {
		// Layer buffers alias nothing; the scaler path works there
		// too, but only the common case matters.
		return false
	}
	if m.B != 0 || m.D != 0 || m.A <= 0 || m.E <= 0 {
		return false
	}
	if paint.Blend != BlendSrcOver || paint.Alpha() != 255 {
		return false
	}
	if paint.ColorFilter != nil || paint.Shader != nil {
		return false
	}
	return clip.IsRect()
}

// drawImageScaled maps the bitmap through a scale-and-translate matrix
// with the x/image/draw bilinear scaler.
func (d *softwareDevice) drawImageScaled(buf, srcBuf *pix.Buffer, m Matrix, clip region.Rect) error {
	dstRect := image.Rect(clip.L, clip.T, clip.R, clip.B)
	inv, ok := m.Invert()
	if !ok {
		return nil
	}
	s0 := inv.TransformPoint(Point{X: float32(clip.L), Y: float32(clip.T)})
	s1 := inv.TransformPoint(Point{X: float32(clip.R), Y: float32(clip.B)})
	srcRect := image.Rect(
		int(math.Floor(float64(s0.X))), int(math.Floor(float64(s0.Y))),
		int(math.Ceil(float64(s1.X))), int(math.Ceil(float64(s1.Y))),
	).Intersect(image.Rect(0, 0, srcBuf.W, srcBuf.H))
	if srcRect.Empty() || dstRect.Empty() {
		return nil
	}
	xdraw.ApproxBiLinear.Scale(buf.RGBA(), dstRect, srcBuf.RGBA(), srcRect, xdraw.Over, nil)
	return nil
}

func (d *softwareDevice) PushLayer(bounds region.Rect, opaque bool) error {
	_ = opaque
	d.layers = append(d.layers, softLayer{
		buf:    pix.New(d.width, d.height),
		bounds: bounds,
	})
	return nil
}

func (d *softwareDevice) PopLayer(alpha uint8, mode BlendMode) error {
	n := len(d.layers)
	if n == 0 {
		return fmt.Errorf("canvas: software device: no layer to pop")
	}
	top := d.layers[n-1]
	d.layers = d.layers[:n-1]
	d.current().Composite(top.buf, 0, 0, alpha, pix.Get(pix.Mode(mode)),
		top.bounds.L, top.bounds.T, top.bounds.R, top.bounds.B)
	return nil
}

func (d *softwareDevice) Flush() error { return nil }

// Sync rewraps the target pixels: external code holding the frame may
// have swapped or resized the backing store.
func (d *softwareDevice) Sync() error {
	return d.wrapTarget()
}

func (d *softwareDevice) EndFrame() error {
	if len(d.layers) > 0 {
		Logger().Warn("canvas: software device: frame ended with open layers",
			"count", len(d.layers))
		d.layers = d.layers[:0]
	}
	return nil
}

// blendPixel composites one premultiplied source pixel.
func blendPixel(buf *pix.Buffer, x, y int, src [4]uint8, fn pix.Func) {
	dst := buf.At(x, y)
	r, g, b, a := fn(src[0], src[1], src[2], src[3], dst[0], dst[1], dst[2], dst[3])
	buf.Set(x, y, [4]uint8{r, g, b, a})
}

func sampleNearest(src *pix.Buffer, x, y float32) [4]uint8 {
	return src.At(int(math.Floor(float64(x))), int(math.Floor(float64(y))))
}

// sampleBilinear interpolates four neighboring texels. Premultiplied
// channels interpolate linearly, so no unpremultiply round trip.
func sampleBilinear(src *pix.Buffer, x, y float32) [4]uint8 {
	fx := float64(x) - 0.5
	fy := float64(y) - 0.5
	x0 := int(math.Floor(fx))
	y0 := int(math.Floor(fy))
	tx := fx - float64(x0)
	ty := fy - float64(y0)

	p00 := src.At(x0, y0)
	p10 := src.At(x0+1, y0)
	p01 := src.At(x0, y0+1)
	p11 := src.At(x0+1, y0+1)

	var out [4]uint8
	for i := 0; i < 4; i++ {
		top := float64(p00[i])*(1-tx) + float64(p10[i])*tx
		bot := float64(p01[i])*(1-tx) + float64(p11[i])*tx
		out[i] = uint8(top*(1-ty) + bot*ty + 0.5)
	}
	return out
}

func modulatePremul(p [4]uint8, alpha uint8) [4]uint8 {
	return [4]uint8{
		pix.MulDiv255(p[0], alpha),
		pix.MulDiv255(p[1], alpha),
		pix.MulDiv255(p[2], alpha),
		pix.MulDiv255(p[3], alpha),
	}
}

// filterPremul runs a color filter over a premultiplied pixel, which
// requires the unpremultiply round trip the filter API implies.
func filterPremul(p [4]uint8, f ColorFilter) [4]uint8 {
	a := p[3]
	if a == 0 {
		return f.Filter(0).Premul()
	}
	un := ARGB(a,
		uint8(int(p[0])*255/int(a)),
		uint8(int(p[1])*255/int(a)),
		uint8(int(p[2])*255/int(a)),
	)
	return f.Filter(un).Premul()
}
