// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package region

// maxCoord is the sweep sentinel for span and band walks.
const maxCoord = int(^uint(0) >> 1)

// Rect is an integer rectangle spanning [L, R) horizontally and
// [T, B) vertically.
type Rect struct {
	L, T, R, B int
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.L >= r.R || r.T >= r.B
}

// Intersect returns the intersection of r and other.
// The result is empty if the rectangles do not overlap.
func (r Rect) Intersect(other Rect) Rect {
	out := Rect{
		L: maxInt(r.L, other.L),
		T: maxInt(r.T, other.T),
		R: minInt(r.R, other.R),
		B: minInt(r.B, other.B),
	}
	if out.Empty() {
		return Rect{}
	}
	return out
}

// Union returns the smallest rectangle containing both r and other.
func (r Rect) Union(other Rect) Rect {
	if r.Empty() {
		return other
	}
	if other.Empty() {
		return r
	}
	return Rect{
		L: minInt(r.L, other.L),
		T: minInt(r.T, other.T),
		R: maxInt(r.R, other.R),
		B: maxInt(r.B, other.B),
	}
}

// Contains reports whether other lies entirely inside r.
// The empty rectangle is contained by everything.
func (r Rect) Contains(other Rect) bool {
	if other.Empty() {
		return true
	}
	return other.L >= r.L && other.T >= r.T && other.R <= r.R && other.B <= r.B
}

// Overlaps reports whether r and other share any area.
func (r Rect) Overlaps(other Rect) bool {
	return !r.Intersect(other).Empty()
}

// Op is a boolean combination operator for regions.
type Op uint8

const (
	// OpIntersect keeps the area present in both regions.
	OpIntersect Op = iota

	// OpUnion keeps the area present in either region.
	OpUnion

	// OpDifference keeps the area of the first region not covered
	// by the second.
	OpDifference

	// OpReverseDifference keeps the area of the second region not
	// covered by the first.
	OpReverseDifference
)

// String returns the operator name.
func (op Op) String() string {
	switch op {
	case OpIntersect:
		return "Intersect"
	case OpUnion:
		return "Union"
	case OpDifference:
		return "Difference"
	case OpReverseDifference:
		return "ReverseDifference"
	default:
		return "Unknown"
	}
}

// span is a half-open horizontal run [x0, x1).
type span struct {
	x0, x1 int
}

// band is a horizontal strip [t, b) holding sorted, coalesced spans.
type band struct {
	t, b  int
	spans []span
}

// Region is a set of device pixels stored as sorted y-bands of
// x-spans. The zero value is the empty region.
type Region struct {
	bands []band
}

// FromRect returns the region covering r.
func FromRect(r Rect) Region {
	if r.Empty() {
		return Region{}
	}
	return Region{bands: []band{{t: r.T, b: r.B, spans: []span{{r.L, r.R}}}}}
}

// FromRects returns the union of the given rectangles.
func FromRects(rects []Rect) Region {
	var out Region
	for _, r := range rects {
		out = Combine(out, FromRect(r), OpUnion)
	}
	return out
}

// IsEmpty reports whether the region covers no pixels.
func (rg Region) IsEmpty() bool {
	return len(rg.bands) == 0
}

// IsRect reports whether the region is exactly one rectangle.
func (rg Region) IsRect() bool {
	return len(rg.bands) == 1 && len(rg.bands[0].spans) == 1
}

// Bounds returns the tight bounding rectangle of the region.
func (rg Region) Bounds() Rect {
	if rg.IsEmpty() {
		return Rect{}
	}
	out := Rect{
		L: maxCoord,
		T: rg.bands[0].t,
		R: -maxCoord,
		B: rg.bands[len(rg.bands)-1].b,
	}
	for _, bd := range rg.bands {
		if bd.spans[0].x0 < out.L {
			out.L = bd.spans[0].x0
		}
		if x1 := bd.spans[len(bd.spans)-1].x1; x1 > out.R {
			out.R = x1
		}
	}
	return out
}

// Rects returns the region decomposed into non-overlapping
// rectangles, ordered top to bottom, left to right.
func (rg Region) Rects() []Rect {
	if rg.IsEmpty() {
		return nil
	}
	n := 0
	for _, bd := range rg.bands {
		n += len(bd.spans)
	}
	out := make([]Rect, 0, n)
	for _, bd := range rg.bands {
		for _, s := range bd.spans {
			out = append(out, Rect{L: s.x0, T: bd.t, R: s.x1, B: bd.b})
		}
	}
	return out
}

// Contains reports whether the pixel at (x, y) is inside the region.
func (rg Region) Contains(x, y int) bool {
	for _, bd := range rg.bands {
		if y < bd.t {
			return false
		}
		if y >= bd.b {
			continue
		}
		for _, s := range bd.spans {
			if x < s.x0 {
				return false
			}
			if x < s.x1 {
				return true
			}
		}
		return false
	}
	return false
}

// ContainsRect reports whether r lies entirely inside the region.
// Used as the fast full-acceptance test during clip checks.
func (rg Region) ContainsRect(r Rect) bool {
	if r.Empty() {
		return true
	}
	y := r.T
	for _, bd := range rg.bands {
		if y >= bd.b {
			continue
		}
		if y < bd.t {
			return false
		}
		covered := false
		for _, s := range bd.spans {
			if r.L >= s.x0 && r.R <= s.x1 {
				covered = true
				break
			}
		}
		if !covered {
			return false
		}
		y = bd.b
		if y >= r.B {
			return true
		}
	}
	return false
}

// Overlaps reports whether any pixel of r is inside the region.
func (rg Region) Overlaps(r Rect) bool {
	if r.Empty() {
		return false
	}
	for _, bd := range rg.bands {
		if bd.t >= r.B {
			return false
		}
		if bd.b <= r.T {
			continue
		}
		for _, s := range bd.spans {
			if s.x0 >= r.R {
				break
			}
			if s.x1 > r.L {
				return true
			}
		}
	}
	return false
}

// Equal reports whether two regions cover exactly the same pixels.
// Canonical form makes this a structural comparison.
func (rg Region) Equal(other Region) bool {
	if len(rg.bands) != len(other.bands) {
		return false
	}
	for i, bd := range rg.bands {
		ob := other.bands[i]
		if bd.t != ob.t || bd.b != ob.b || len(bd.spans) != len(ob.spans) {
			return false
		}
		for j, s := range bd.spans {
			if s != ob.spans[j] {
				return false
			}
		}
	}
	return true
}

// Translate returns the region shifted by (dx, dy).
func (rg Region) Translate(dx, dy int) Region {
	if rg.IsEmpty() || (dx == 0 && dy == 0) {
		return rg
	}
	out := Region{bands: make([]band, len(rg.bands))}
	for i, bd := range rg.bands {
		spans := make([]span, len(bd.spans))
		for j, s := range bd.spans {
			spans[j] = span{s.x0 + dx, s.x1 + dx}
		}
		out.bands[i] = band{t: bd.t + dy, b: bd.b + dy, spans: spans}
	}
	return out
}

// Combine returns the boolean combination of a and b under op.
func Combine(a, b Region, op Op) Region {
	// Empty operands resolve without a sweep.
	if a.IsEmpty() {
		if op == OpUnion || op == OpReverseDifference {
			return b
		}
		return Region{}
	}
	if b.IsEmpty() {
		if op == OpIntersect || op == OpReverseDifference {
			return Region{}
		}
		return a
	}
	if op == OpIntersect && !a.Bounds().Overlaps(b.Bounds()) {
		return Region{}
	}

	var out Region
	la, lb := len(a.bands), len(b.bands)
	ai, bi := 0, 0
	cur := a.bands[0].t
	if b.bands[0].t < cur {
		cur = b.bands[0].t
	}
	for ai < la || bi < lb {
		var aSpans, bSpans []span
		next := maxCoord
		if ai < la {
			ab := a.bands[ai]
			if cur < ab.t {
				next = ab.t
			} else {
				aSpans = ab.spans
				next = ab.b
			}
		}
		if bi < lb {
			bb := b.bands[bi]
			if cur < bb.t {
				if bb.t < next {
					next = bb.t
				}
			} else {
				bSpans = bb.spans
				if bb.b < next {
					next = bb.b
				}
			}
		}
		if spans := combineSpans(aSpans, bSpans, op); len(spans) > 0 {
			out.appendBand(cur, next, spans)
		}
		cur = next
		if ai < la && cur >= a.bands[ai].b {
			ai++
		}
		if bi < lb && cur >= b.bands[bi].b {
			bi++
		}
	}
	return out
}

// appendBand adds a strip [t, b) with the given spans, merging with
// the previous band when the strips touch and hold identical spans.
func (rg *Region) appendBand(t, b int, spans []span) {
	if t >= b || len(spans) == 0 {
		return
	}
	if n := len(rg.bands); n > 0 {
		last := &rg.bands[n-1]
		if last.b == t && equalSpans(last.spans, spans) {
			last.b = b
			return
		}
	}
	rg.bands = append(rg.bands, band{t: t, b: b, spans: spans})
}

func equalSpans(a, b []span) bool {
	if len(a) != len(b) {
		return false
	}
	for i, s := range a {
		if s != b[i] {
			return false
		}
	}
	return true
}

// combineSpans sweeps two sorted span lists and emits the spans where
// the operator holds. Both inputs are canonical, so toggling at each
// edge tracks interior state exactly.
func combineSpans(a, b []span, op Op) []span {
	var (
		out      []span
		ai, bi   int
		inA, inB bool
		start    int
		active   bool
	)
	for ai < len(a) || bi < len(b) {
		x := maxCoord
		if ai < len(a) {
			if e := spanEdge(a[ai], inA); e < x {
				x = e
			}
		}
		if bi < len(b) {
			if e := spanEdge(b[bi], inB); e < x {
				x = e
			}
		}
		if ai < len(a) && spanEdge(a[ai], inA) == x {
			if inA {
				ai++
			}
			inA = !inA
		}
		if bi < len(b) && spanEdge(b[bi], inB) == x {
			if inB {
				bi++
			}
			inB = !inB
		}
		now := opInside(inA, inB, op)
		if now && !active {
			start, active = x, true
		} else if !now && active {
			out = append(out, span{start, x})
			active = false
		}
	}
	return out
}

// spanEdge returns the next x where the sweep state for this span
// list changes: the span start when outside, its end when inside.
func spanEdge(s span, inside bool) int {
	if inside {
		return s.x1
	}
	return s.x0
}

func opInside(a, b bool, op Op) bool {
	switch op {
	case OpIntersect:
		return a && b
	case OpUnion:
		return a || b
	case OpDifference:
		return a && !b
	case OpReverseDifference:
		return !a && b
	default:
		return false
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
