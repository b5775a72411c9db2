package text

import "errors"

// Sentinel errors for the text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrParseFont is returned when font data cannot be parsed.
	ErrParseFont = errors.New("text: cannot parse font")
)
