package text

import (
	"github.com/go-text/typesetting/language"
	"golang.org/x/text/unicode/bidi"
)

// Direction is the progression of text within a segment.
type Direction uint8

const (
	// DirectionLTR is left-to-right text.
	DirectionLTR Direction = iota

	// DirectionRTL is right-to-left text.
	DirectionRTL
)

// Segment is a maximal run of text with uniform direction and script,
// the unit HarfBuzz shaping operates on. Start and End are byte offsets
// into the original string.
type Segment struct {
	Text      string
	Start     int
	End       int
	Direction Direction
	Script    language.Script
}

// SegmentString splits text into shaping segments using the Unicode
// bidirectional algorithm for direction and per-rune script detection,
// with Common and Inherited runes resolved from their neighbors. base is
// the paragraph direction used when the text itself is neutral.
func SegmentString(text string, base Direction) []Segment {
	if text == "" {
		return nil
	}
	runes := []rune(text)
	levels := bidiLevels(text, base, len(runes))
	scripts := resolveScripts(runes)

	segs := make([]Segment, 0, 1)
	start := 0
	byteOff := 0
	segByte := 0
	for i := 1; i <= len(runes); i++ {
		byteOff += len(string(runes[i-1]))
		if i < len(runes) && levels[i] == levels[start] && scripts[i] == scripts[start] {
			continue
		}
		dir := DirectionLTR
		if levels[start]%2 == 1 {
			dir = DirectionRTL
		}
		segs = append(segs, Segment{
			Text:      text[segByte:byteOff],
			Start:     segByte,
			End:       byteOff,
			Direction: dir,
			Script:    scripts[start],
		})
		start = i
		segByte = byteOff
	}
	return segs
}

// bidiLevels computes one embedding level per rune.
func bidiLevels(text string, base Direction, n int) []int {
	levels := make([]int, n)

	def := bidi.Neutral
	if base == DirectionRTL {
		def = bidi.RightToLeft
	}
	var p bidi.Paragraph
	if _, err := p.SetString(text, bidi.DefaultDirection(def)); err != nil {
		return levels
	}
	ordering, err := p.Order()
	if err != nil {
		return levels
	}
	// Run positions are rune indices, end inclusive.
	for i := 0; i < ordering.NumRuns(); i++ {
		run := ordering.Run(i)
		s, e := run.Pos()
		lvl := 0
		if run.Direction() == bidi.RightToLeft {
			lvl = 1
		}
		for j := s; j <= e && j < n; j++ {
			levels[j] = lvl
		}
	}
	return levels
}

// resolveScripts detects one script per rune and folds Common and
// Inherited runes into the surrounding concrete script so punctuation
// and combining marks do not split segments.
func resolveScripts(runes []rune) []language.Script {
	scripts := make([]language.Script, len(runes))
	for i, r := range runes {
		scripts[i] = language.LookupScript(r)
	}

	last := language.Latin
	sawConcrete := false
	for i, s := range scripts {
		if concreteScript(s) {
			last = s
			if !sawConcrete {
				// Backfill the leading neutral prefix.
				for j := 0; j < i; j++ {
					scripts[j] = s
				}
				sawConcrete = true
			}
			continue
		}
		scripts[i] = last
	}
	return scripts
}

func concreteScript(s language.Script) bool {
	return s != language.Common && s != language.Inherited && s != language.Unknown
}
