// Package text shapes strings into positioned glyph runs for the canvas
// draw dispatch.
//
// The pipeline is Source -> Face -> Shaper -> canvas.TextRun. A Source
// parses font data once and is safe to share; a Face binds a Source to a
// size and resolves glyph outlines; a Shaper turns a string into a run of
// positioned glyphs using HarfBuzz shaping via go-text/typesetting, with
// bidirectional text split into directional segments first.
//
//	src, err := text.NewSource(goregular.TTF)
//	face := text.NewFace(src, 16)
//	run := text.NewShaper().Shape("Hello", face)
//	cv.DrawText(run, x, y, paint, canvas.ModeImmediate)
package text
