package text

import (
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/canvas"
)

// Shaper turns strings into positioned glyph runs using HarfBuzz shaping
// via go-text/typesetting: kerning, ligatures, contextual alternates and
// complex scripts all apply. Bidirectional text is segmented first and
// each directional run shaped separately.
//
// A Shaper is safe for concurrent use. HarfbuzzShaper instances carry
// mutable buffers and are pooled per call.
type Shaper struct {
	pool sync.Pool
}

// NewShaper creates a HarfBuzz-backed shaper.
func NewShaper() *Shaper {
	return &Shaper{
		pool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
	}
}

// Shape shapes text against face into a single run with a left-to-right
// paragraph base direction.
func (s *Shaper) Shape(text string, face *Face) *canvas.TextRun {
	return s.ShapeDirected(text, face, DirectionLTR)
}

// ShapeDirected is Shape with an explicit paragraph base direction,
// needed for right-to-left documents where neutral text must not default
// to left-to-right.
func (s *Shaper) ShapeDirected(text string, face *Face, base Direction) *canvas.TextRun {
	if text == "" || face == nil {
		return &canvas.TextRun{}
	}

	m := face.Metrics()
	run := &canvas.TextRun{
		Ascent:  m.Ascent,
		Descent: m.Descent,
		Size:    face.Size(),
		Source:  face,
	}

	var pen float32
	for _, seg := range SegmentString(text, base) {
		pen = s.shapeSegment(run, seg, face, pen)
	}
	run.Advance = pen
	return run
}

// shapeSegment shapes one uniform segment and appends its glyphs to run,
// starting at pen x. Returns the advanced pen position.
func (s *Shaper) shapeSegment(run *canvas.TextRun, seg Segment, face *Face, pen float32) float32 {
	runes := []rune(seg.Text)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: mapDirection(seg.Direction),
		Face:      face.source.shapingFace(),
		Size:      floatToFixed(face.Size()),
		Script:    seg.Script,
		Language:  language.DefaultLanguage(),
	}

	hb := s.pool.Get().(*shaping.HarfbuzzShaper)
	out := hb.Shape(input)
	s.pool.Put(hb)

	for _, g := range out.Glyphs {
		adv := fixedToFloat(g.Advance)
		run.Glyphs = append(run.Glyphs, canvas.Glyph{
			ID:       uint32(g.GlyphID),
			Cluster:  seg.Start + g.TextIndex(),
			X:        pen + fixedToFloat(g.XOffset),
			Y:        -fixedToFloat(g.YOffset),
			XAdvance: adv,
		})
		pen += adv
	}
	return pen
}

// mapDirection converts a segment direction to go-text's representation.
func mapDirection(d Direction) di.Direction {
	if d == DirectionRTL {
		return di.DirectionRTL
	}
	return di.DirectionLTR
}

// floatToFixed converts a pixel size to 26.6 fixed point.
func floatToFixed(v float32) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}
