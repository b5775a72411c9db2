package canvas

// Layer is pre-rendered content composited by DrawLayer: a bitmap plus
// the alpha and blend mode it carries into composition. Renderers that
// cache subtree output hold it in a Layer and stamp it instead of
// redrawing.
type Layer struct {
	bitmap *Bitmap
	alpha  uint8
	mode   BlendMode
}

// NewLayer wraps pre-rendered content in an opaque source-over layer.
func NewLayer(b *Bitmap) *Layer {
	return &Layer{bitmap: b, alpha: 255, mode: BlendSrcOver}
}

// Bitmap returns the layer's pixel content.
func (l *Layer) Bitmap() *Bitmap { return l.bitmap }

// IsEmpty reports whether the layer has no pixels.
func (l *Layer) IsEmpty() bool {
	return l == nil || l.bitmap == nil || l.bitmap.IsEmpty()
}

// Width returns the layer width in pixels.
func (l *Layer) Width() int {
	if l.bitmap == nil {
		return 0
	}
	return l.bitmap.Width()
}

// Height returns the layer height in pixels.
func (l *Layer) Height() int {
	if l.bitmap == nil {
		return 0
	}
	return l.bitmap.Height()
}

// Alpha returns the composition alpha.
func (l *Layer) Alpha() uint8 { return l.alpha }

// SetAlpha sets the composition alpha.
func (l *Layer) SetAlpha(a uint8) { l.alpha = a }

// Mode returns the composition blend mode.
func (l *Layer) Mode() BlendMode { return l.mode }

// SetMode sets the composition blend mode.
func (l *Layer) SetMode(mode BlendMode) { l.mode = mode }
