package text

import (
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/canvas"
)

// Metrics are vertical font metrics at a face's size, in pixels.
// Descent is positive, measured down from the baseline.
type Metrics struct {
	Ascent    float32
	Descent   float32
	LineGap   float32
	XHeight   float32
	CapHeight float32
}

// Height returns the default line height.
func (m Metrics) Height() float32 {
	return m.Ascent + m.Descent + m.LineGap
}

// Face binds a Source to a size. It resolves glyph outlines as canvas
// paths, which makes it a canvas.GlyphSource: every TextRun produced by a
// Shaper carries its Face so the renderer can rasterize the glyphs.
//
// A Face is safe for concurrent use; the sfnt working buffer is guarded.
type Face struct {
	source *Source
	size   float32

	mu  sync.Mutex
	buf sfnt.Buffer
}

var _ canvas.GlyphSource = (*Face)(nil)

// NewFace creates a face at the given size in pixels per em.
func NewFace(src *Source, size float32) *Face {
	return &Face{source: src, size: size}
}

// Source returns the font this face draws from.
func (f *Face) Source() *Source { return f.source }

// Size returns the face size in pixels per em.
func (f *Face) Size() float32 { return f.size }

// Metrics returns the vertical metrics at the face size.
func (f *Face) Metrics() Metrics {
	f.mu.Lock()
	defer f.mu.Unlock()
	m, err := f.source.outline.Metrics(&f.buf, fixedPPEM(f.size), font.HintingNone)
	if err != nil {
		return Metrics{}
	}
	return Metrics{
		Ascent:    fixedToFloat(m.Ascent),
		Descent:   fixedToFloat(m.Descent),
		LineGap:   fixedToFloat(m.Height - m.Ascent - m.Descent),
		XHeight:   fixedToFloat(m.XHeight),
		CapHeight: fixedToFloat(m.CapHeight),
	}
}

// HasGlyph reports whether the font maps r to a glyph.
func (f *Face) HasGlyph(r rune) bool {
	return f.source.GlyphIndex(r) != 0
}

// GlyphPath returns the outline of a glyph scaled to size pixels per em,
// origin on the baseline, y down. The bool is false when the glyph has
// no outline (whitespace, missing glyph).
func (f *Face) GlyphPath(id uint32, size float32) (*canvas.Path, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	segs, err := f.source.outline.LoadGlyph(&f.buf, sfnt.GlyphIndex(id), fixedPPEM(size), nil)
	if err != nil || len(segs) == 0 {
		return nil, false
	}

	p := canvas.NewPath()
	for _, seg := range segs {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			p.MoveTo(fixedToFloat(seg.Args[0].X), fixedToFloat(seg.Args[0].Y))
		case sfnt.SegmentOpLineTo:
			p.LineTo(fixedToFloat(seg.Args[0].X), fixedToFloat(seg.Args[0].Y))
		case sfnt.SegmentOpQuadTo:
			p.QuadraticTo(
				fixedToFloat(seg.Args[0].X), fixedToFloat(seg.Args[0].Y),
				fixedToFloat(seg.Args[1].X), fixedToFloat(seg.Args[1].Y),
			)
		case sfnt.SegmentOpCubeTo:
			p.CubicTo(
				fixedToFloat(seg.Args[0].X), fixedToFloat(seg.Args[0].Y),
				fixedToFloat(seg.Args[1].X), fixedToFloat(seg.Args[1].Y),
				fixedToFloat(seg.Args[2].X), fixedToFloat(seg.Args[2].Y),
			)
		}
	}
	p.Close()
	return p, true
}

// GlyphAdvance returns the horizontal advance of a glyph at the face
// size, without shaping adjustments.
func (f *Face) GlyphAdvance(id uint32) float32 {
	f.mu.Lock()
	defer f.mu.Unlock()
	adv, err := f.source.outline.GlyphAdvance(&f.buf, sfnt.GlyphIndex(id), fixedPPEM(f.size), font.HintingNone)
	if err != nil {
		return 0
	}
	return fixedToFloat(adv)
}

// fixedPPEM converts a pixel size to 26.6 fixed point.
func fixedPPEM(size float32) fixed.Int26_6 {
	return fixed.Int26_6(size * 64)
}

// fixedToFloat converts a 26.6 fixed point value to float32.
func fixedToFloat(v fixed.Int26_6) float32 {
	return float32(v) / 64
}
