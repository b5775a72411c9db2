package canvas

// Glyph is one positioned glyph within a TextRun. Positions are relative
// to the run origin on the baseline.
type Glyph struct {
	// ID is the glyph index in the source face.
	ID uint32

	// Cluster is the source character index in the original text.
	Cluster int

	// X, Y position the glyph relative to the run origin.
	X, Y float32

	// XAdvance is the horizontal advance to the next glyph.
	XAdvance float32
}

// GlyphSource provides glyph outlines in logical units for a given size.
// It is satisfied by text.Face.
type GlyphSource interface {
	// GlyphPath returns the outline of the glyph scaled to size pixels
	// per em, with the origin on the baseline. The bool is false when
	// the glyph has no outline.
	GlyphPath(id uint32, size float32) (*Path, bool)
}

// TextRun is a sequence of shaped, positioned glyphs with uniform style,
// ready for draw dispatch. Produced by the text package; the renderer
// treats it as opaque geometry plus a glyph source.
type TextRun struct {
	// Glyphs is the sequence of positioned glyphs.
	Glyphs []Glyph

	// Advance is the total advance of the run.
	Advance float32

	// Ascent is the maximum ascent above the baseline.
	Ascent float32

	// Descent is the maximum descent below the baseline (positive).
	Descent float32

	// Size is the font size in pixels per em.
	Size float32

	// Source resolves glyph IDs to outlines.
	Source GlyphSource
}

// IsEmpty returns true if the run has no glyphs.
func (r *TextRun) IsEmpty() bool {
	return r == nil || len(r.Glyphs) == 0
}

// Bounds returns a conservative bounding rectangle for the run drawn with
// its origin at (x, y). Per-glyph overshoot (italic slant, swashes) is
// covered by padding with the font size.
func (r *TextRun) Bounds(x, y float32) Rect {
	if r.IsEmpty() {
		return EmptyRect()
	}
	out := Rect{
		MinX: x,
		MinY: y - r.Ascent,
		MaxX: x + r.Advance,
		MaxY: y + r.Descent,
	}
	for _, g := range r.Glyphs {
		out = out.UnionPoint(x+g.X, y+g.Y-r.Ascent)
		out = out.UnionPoint(x+g.X+g.XAdvance, y+g.Y+r.Descent)
	}
	return out.Outset(r.Size / 2)
}
