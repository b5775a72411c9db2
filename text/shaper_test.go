package text

import (
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func TestShapeEmpty(t *testing.T) {
	s := NewShaper()
	f := testFace(t, 16)

	if run := s.Shape("", f); !run.IsEmpty() {
		t.Errorf("Shape(\"\") produced %d glyphs", len(run.Glyphs))
	}
	if run := s.Shape("x", nil); !run.IsEmpty() {
		t.Error("Shape with nil face produced glyphs")
	}
}

func TestShapeBasic(t *testing.T) {
	s := NewShaper()
	f := testFace(t, 16)

	run := s.Shape("Hello", f)
	if len(run.Glyphs) != 5 {
		t.Fatalf("Shape(\"Hello\") = %d glyphs, want 5", len(run.Glyphs))
	}
	if run.Advance <= 0 {
		t.Errorf("Advance = %v, want > 0", run.Advance)
	}
	if run.Ascent <= 0 || run.Descent <= 0 {
		t.Errorf("Ascent/Descent = %v/%v, want both > 0", run.Ascent, run.Descent)
	}
	if run.Source != f {
		t.Error("run does not carry its face as glyph source")
	}

	// Pen positions advance monotonically for LTR text.
	for i := 1; i < len(run.Glyphs); i++ {
		if run.Glyphs[i].X <= run.Glyphs[i-1].X {
			t.Errorf("glyph %d at x=%v not right of glyph %d at x=%v",
				i, run.Glyphs[i].X, i-1, run.Glyphs[i-1].X)
		}
	}

	// Every glyph must have an outline available through the run source.
	for i, g := range run.Glyphs {
		if _, ok := run.Source.GlyphPath(g.ID, run.Size); !ok {
			t.Errorf("glyph %d (id %d) has no outline", i, g.ID)
		}
	}
}

func TestShapeAdvanceMatchesPen(t *testing.T) {
	s := NewShaper()
	f := testFace(t, 16)

	run := s.Shape("mixed width text", f)
	var pen float32
	for _, g := range run.Glyphs {
		pen += g.XAdvance
	}
	if run.Advance != pen {
		t.Errorf("Advance = %v, sum of XAdvance = %v", run.Advance, pen)
	}
}

func TestShapeKerningApplies(t *testing.T) {
	s := NewShaper()
	f := testFace(t, 48)

	// "AV" kerns in Go Regular: the shaped advance is narrower than the
	// two isolated glyph advances.
	run := s.Shape("AV", f)
	if len(run.Glyphs) != 2 {
		t.Fatalf("Shape(\"AV\") = %d glyphs, want 2", len(run.Glyphs))
	}
	isolated := f.GlyphAdvance(f.Source().GlyphIndex('A')) + f.GlyphAdvance(f.Source().GlyphIndex('V'))
	if run.Advance >= isolated {
		t.Errorf("shaped advance %v not narrower than isolated %v; kerning not applied",
			run.Advance, isolated)
	}
}

func TestShapeDirectedRTL(t *testing.T) {
	s := NewShaper()
	src, err := NewSource(goregular.TTF)
	if err != nil {
		t.Fatalf("NewSource = %v", err)
	}
	f := NewFace(src, 16)

	// Go Regular has no Hebrew glyphs; shaping still runs and produces
	// one positioned glyph per rune (the missing-glyph notdef).
	run := s.ShapeDirected("שלום", f, DirectionRTL)
	if len(run.Glyphs) != 4 {
		t.Fatalf("got %d glyphs, want 4", len(run.Glyphs))
	}
	if run.Advance <= 0 {
		t.Errorf("Advance = %v, want > 0", run.Advance)
	}
}

func TestShaperConcurrent(t *testing.T) {
	s := NewShaper()
	f := testFace(t, 16)

	done := make(chan struct{})
	for i := 0; i < 4; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 50; j++ {
				if run := s.Shape("concurrent shaping", f); run.IsEmpty() {
					t.Error("empty run from concurrent Shape")
					return
				}
			}
		}()
	}
	for i := 0; i < 4; i++ {
		<-done
	}
}
