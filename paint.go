package canvas

// BlendMode selects the Porter-Duff compositing operator applied when a
// primitive is drawn or a layer is composited. The zero value is SrcOver.
type BlendMode uint8

const (
	BlendSrcOver BlendMode = iota
	BlendClear
	BlendSrc
	BlendDst
	BlendDstOver
	BlendSrcIn
	BlendDstIn
	BlendSrcOut
	BlendDstOut
	BlendSrcAtop
	BlendDstAtop
	BlendXor
	BlendPlus
	BlendModulate
	BlendScreen
)

// String returns a human-readable name for the blend mode.
func (mode BlendMode) String() string {
	switch mode {
	case BlendSrcOver:
		return "SrcOver"
	case BlendClear:
		return "Clear"
	case BlendSrc:
		return "Src"
	case BlendDst:
		return "Dst"
	case BlendDstOver:
		return "DstOver"
	case BlendSrcIn:
		return "SrcIn"
	case BlendDstIn:
		return "DstIn"
	case BlendSrcOut:
		return "SrcOut"
	case BlendDstOut:
		return "DstOut"
	case BlendSrcAtop:
		return "SrcAtop"
	case BlendDstAtop:
		return "DstAtop"
	case BlendXor:
		return "Xor"
	case BlendPlus:
		return "Plus"
	case BlendModulate:
		return "Modulate"
	case BlendScreen:
		return "Screen"
	default:
		return "Unknown"
	}
}

// Style selects whether geometry is filled, stroked, or both.
type Style uint8

const (
	StyleFill Style = iota
	StyleStroke
	StyleFillAndStroke
)

// PaintFlags are per-paint rendering toggles. The paint filter installed
// via SetupPaintFilter clears and sets these bits on every paint observed
// by a draw call.
type PaintFlags uint32

const (
	PaintAntiAlias PaintFlags = 1 << iota
	PaintDither
	PaintFilterBitmap
	PaintSubpixelText
)

// Shader produces a color per logical position, replacing the paint's
// solid color (its alpha still modulates the result).
type Shader interface {
	ColorAt(x, y float32) Color
}

// ColorFilter rewrites the final source color before blending.
type ColorFilter interface {
	Filter(c Color) Color
}

// Shadow describes a drop shadow applied to subsequently drawn text.
type Shadow struct {
	Radius float32
	DX, DY float32
	Color  Color
}

// Paint describes how a primitive is filled or stroked.
type Paint struct {
	// Color is the solid source color, ignored when Shader is set
	// except for its alpha component.
	Color Color

	// Blend is the compositing operator. Zero value is SrcOver.
	Blend BlendMode

	// Style selects fill or stroke geometry.
	Style Style

	// StrokeWidth is the stroke width in logical units.
	StrokeWidth float32

	// Flags are rendering toggles, subject to the renderer's paint filter.
	Flags PaintFlags

	// Shader overrides Color when non-nil.
	Shader Shader

	// ColorFilter rewrites source colors when non-nil.
	ColorFilter ColorFilter
}

// NewPaint creates a Paint with default values: opaque black, source-over,
// fill style, hairline stroke width, anti-aliasing on.
func NewPaint() *Paint {
	return &Paint{
		Color:       Black,
		Blend:       BlendSrcOver,
		Style:       StyleFill,
		StrokeWidth: 1.0,
		Flags:       PaintAntiAlias,
	}
}

// Clone creates a copy of the Paint.
func (p *Paint) Clone() *Paint {
	q := *p
	return &q
}

// clonePaint is Clone extended to nil, which stays nil.
func clonePaint(p *Paint) *Paint {
	if p == nil {
		return nil
	}
	return p.Clone()
}

// Alpha returns the paint's alpha component, 255 for a nil paint.
func (p *Paint) Alpha() uint8 {
	if p == nil {
		return 255
	}
	return p.Color.Alpha()
}

// Mode returns the paint's blend mode, SrcOver for a nil paint.
func (p *Paint) Mode() BlendMode {
	if p == nil {
		return BlendSrcOver
	}
	return p.Blend
}
