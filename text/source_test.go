package text

import (
	"errors"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func TestNewSourceRejectsEmptyData(t *testing.T) {
	if _, err := NewSource(nil); !errors.Is(err, ErrEmptyFontData) {
		t.Errorf("NewSource(nil) = %v, want ErrEmptyFontData", err)
	}
}

func TestNewSourceRejectsGarbage(t *testing.T) {
	if _, err := NewSource([]byte("not a font")); !errors.Is(err, ErrParseFont) {
		t.Errorf("NewSource(garbage) = %v, want ErrParseFont", err)
	}
}

func TestSourceGoRegular(t *testing.T) {
	src, err := NewSource(goregular.TTF)
	if err != nil {
		t.Fatalf("NewSource(goregular) = %v", err)
	}
	if src.NumGlyphs() == 0 {
		t.Error("NumGlyphs() = 0")
	}
	if src.UnitsPerEm() <= 0 {
		t.Errorf("UnitsPerEm() = %d, want > 0", src.UnitsPerEm())
	}
	if src.GlyphIndex('A') == 0 {
		t.Error("GlyphIndex('A') = 0, want a real glyph")
	}
	if src.GlyphIndex('￿') != 0 {
		t.Error("GlyphIndex(U+FFFF) != 0 for an unmapped rune")
	}
}
