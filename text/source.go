package text

import (
	"bytes"
	"fmt"

	gtfont "github.com/go-text/typesetting/font"
	"golang.org/x/image/font/sfnt"
)

// Source is a parsed font. It holds the two parsed representations the
// pipeline needs: an sfnt.Font for outline extraction and metrics, and a
// go-text font for HarfBuzz shaping. Parsing happens once in NewSource;
// a Source is immutable afterwards and safe to share between faces and
// goroutines.
type Source struct {
	data    []byte
	outline *sfnt.Font
	shaping *gtfont.Font
	upem    uint16
}

// NewSource parses TTF/OTF font data. The data is retained; callers must
// not mutate it afterwards.
func NewSource(data []byte) (*Source, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	outline, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParseFont, err)
	}
	gtFace, err := gtfont.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParseFont, err)
	}
	return &Source{
		data:    data,
		outline: outline,
		shaping: gtFace.Font,
		upem:    uint16(outline.UnitsPerEm()),
	}, nil
}

// Name returns the font family name, or "" when the font carries none.
func (s *Source) Name() string {
	name, err := s.outline.Name(nil, sfnt.NameIDFamily)
	if err != nil {
		return ""
	}
	return name
}

// NumGlyphs returns the number of glyphs in the font.
func (s *Source) NumGlyphs() int {
	return s.outline.NumGlyphs()
}

// UnitsPerEm returns the font design grid size.
func (s *Source) UnitsPerEm() int {
	return int(s.upem)
}

// GlyphIndex returns the glyph ID for a rune, 0 when the font has no
// glyph for it.
func (s *Source) GlyphIndex(r rune) uint32 {
	idx, err := s.outline.GlyphIndex(nil, r)
	if err != nil {
		return 0
	}
	return uint32(idx)
}

// shapingFace creates a per-call go-text face. The underlying *Font is
// read-only and shared; the face wrapper is cheap but not safe for
// concurrent use, so every shaping call gets its own.
func (s *Source) shapingFace() *gtfont.Face {
	return gtfont.NewFace(s.shaping)
}
