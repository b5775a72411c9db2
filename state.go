package canvas

import "github.com/gogpu/canvas/region"

// snapshot is one save-ledger entry: the transform as it was when Save
// ran, the clip when clip capture was requested, and the layer allocated
// by SaveLayer when there is one.
type snapshot struct {
	matrix  Matrix
	clip    clipState
	hasClip bool
	layer   *layerRecord
}

// layerRecord tracks a live SaveLayer until its matching restore.
type layerRecord struct {
	bounds region.Rect
	alpha  uint8
	mode   BlendMode
	pushed bool // the device accepted PushLayer
}

// state is the canvas state machine shared by the immediate and recording
// renderers: the save/restore ledger, the transform and clip stacks, the
// hand-off depth counter, and the per-instance paint adjuncts.
//
// state performs bookkeeping only. Owners decide what each transition
// emits: the immediate renderer talks to a Device, the recorder appends
// commands.
type state struct {
	name string

	// width and height are the viewport, effective for frames opened
	// after they are set. frameW and frameH are the dimensions the
	// active frame was opened with.
	width  int
	height int
	frameW int
	frameH int

	active         bool
	interruptDepth int

	matrix Matrix
	clip   clipState
	stack  []snapshot

	// Paint adjuncts. Per instance, not save-scoped: Restore does not
	// touch them, only Prepare resets them.
	shader      Shader
	colorFilter ColorFilter
	shadow      *Shadow
	filterClear PaintFlags
	filterSet   PaintFlags

	// strict makes Restore at the baseline an error instead of a
	// logged no-op.
	strict bool
}

// reset installs a fresh frame: baseline ledger, identity transform,
// the given device-space clip, cleared adjuncts and hand-off depth.
// Unconditional so that an abandoned frame is always recoverable.
func (s *state) reset(clip region.Rect) {
	s.frameW = s.width
	s.frameH = s.height
	s.active = true
	s.interruptDepth = 0
	s.matrix = Identity()
	s.clip = clipFromRect(clip)
	s.stack = s.stack[:0]
	s.shader = nil
	s.colorFilter = nil
	s.shadow = nil
	s.filterClear = 0
	s.filterSet = 0
}

// usable reports whether state-mutating and draw calls are permitted:
// an active frame and no open hand-off bracket.
func (s *state) usable() bool {
	return s.active && s.interruptDepth == 0
}

// saveCount returns the ledger count. The baseline state counts as 1.
func (s *state) saveCount() int {
	return len(s.stack) + 1
}

// push appends a ledger entry and returns the marker identifying the
// state it captured: the pre-push count, the value RestoreToCount takes
// to undo this save.
func (s *state) push(flags SaveFlags, layer *layerRecord) int {
	marker := s.saveCount()
	snap := snapshot{matrix: s.matrix, layer: layer}
	if flags&SaveClip != 0 {
		snap.clip = s.clip
		snap.hasClip = true
	}
	s.stack = append(s.stack, snap)
	return marker
}

// pop restores the top ledger entry. The matrix always restores; the
// clip only when the save captured it. Returns false at the baseline.
func (s *state) pop() (snapshot, bool) {
	if len(s.stack) == 0 {
		return snapshot{}, false
	}
	snap := s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
	s.matrix = snap.matrix
	if snap.hasClip {
		s.clip = snap.clip
	}
	return snap, true
}

// restoreTo pops entries until saveCount == n, clamping n below the
// baseline and rejecting n above the current count. The popped entries
// are returned outermost-last so the owner can composite their layers.
func (s *state) restoreTo(n int) ([]snapshot, error) {
	if n < 1 {
		n = 1
	}
	if n > s.saveCount() {
		return nil, ErrInvalidSaveCount
	}
	var popped []snapshot
	for s.saveCount() > n {
		snap, _ := s.pop()
		popped = append(popped, snap)
	}
	return popped, nil
}

// deviceClipBounds returns the clip bounds in device space.
func (s *state) deviceClipBounds() region.Rect {
	return s.clip.bounds()
}

// clipBoundsLocal maps the device-space clip bounds back into local
// coordinates through the inverse transform.
func (s *state) clipBoundsLocal() Rect {
	dev := rectFromRegion(s.clip.bounds())
	inv, ok := s.matrix.Invert()
	if !ok {
		return dev
	}
	return inv.TransformRect(dev)
}

// quickReject reports whether the local-space rectangle provably misses
// the clip. Bounding boxes only: false negatives are fine, false
// positives are not.
func (s *state) quickReject(left, top, right, bottom float32) bool {
	r := RectLTRB(left, top, right, bottom)
	if r.IsEmpty() {
		return true
	}
	if s.clip.isEmpty() {
		return true
	}
	dev := s.matrix.TransformRect(r).RoundOut()
	return !s.clip.bounds().Overlaps(dev)
}

// clipRectOp transforms the local rectangle by the current matrix and
// merges it into the clip. Returns whether the clip is still non-empty.
func (s *state) clipRectOp(r Rect, op ClipOp) bool {
	if r.IsEmpty() {
		switch op {
		case ClipIntersect, ClipReplace, ClipReverseDifference:
			// An empty shape intersected with, replacing, or
			// subtracted-from yields an empty clip.
			s.clip = clipFromRect(region.Rect{})
		}
		return !s.clip.isEmpty()
	}
	if s.matrix.RectStaysRect() {
		dev := s.matrix.TransformRect(r).RoundOut()
		s.clip = s.clip.combineRect(dev, op)
		return !s.clip.isEmpty()
	}
	// The transform turns the rectangle into a general quad.
	quad := [][]Point{{
		s.matrix.TransformPoint(Point{r.MinX, r.MinY}),
		s.matrix.TransformPoint(Point{r.MaxX, r.MinY}),
		s.matrix.TransformPoint(Point{r.MaxX, r.MaxY}),
		s.matrix.TransformPoint(Point{r.MinX, r.MaxY}),
	}}
	g := polygonsToRegion(quad, FillNonZero)
	s.clip = s.clip.combineRegion(g, op)
	return !s.clip.isEmpty()
}

// clipPathOp rasterizes the transformed path and merges it into the clip.
func (s *state) clipPathOp(p *Path, op ClipOp) bool {
	if p.IsEmpty() {
		switch op {
		case ClipIntersect, ClipReplace, ClipReverseDifference:
			s.clip = clipFromRect(region.Rect{})
		}
		return !s.clip.isEmpty()
	}
	if r, ok := p.IsRect(); ok {
		return s.clipRectOp(r, op)
	}
	dev := p.Transform(s.matrix)
	g := polygonsToRegion(dev.Flatten(), p.Fill)
	s.clip = s.clip.combineRegion(g, op)
	return !s.clip.isEmpty()
}

// clipRegionOp merges an already device-space region into the clip.
// Like the original engine's region clip, it ignores the transform.
func (s *state) clipRegionOp(g region.Region, op ClipOp) bool {
	s.clip = s.clip.combineRegion(g, op)
	return !s.clip.isEmpty()
}

// resolvePaint produces the effective paint for a draw: the caller's
// paint (or defaults) with the instance paint filter applied and the
// instance shader and color filter installed when set.
func (s *state) resolvePaint(p *Paint) Paint {
	var eff Paint
	if p != nil {
		eff = *p
	} else {
		eff = *NewPaint()
	}
	eff.Flags = (eff.Flags &^ s.filterClear) | s.filterSet
	if s.shader != nil {
		eff.Shader = s.shader
	}
	if s.colorFilter != nil {
		eff.ColorFilter = s.colorFilter
	}
	return eff
}

// polygonsToRegion converts flattened device-space contours into a span
// region, scanning within the contours' own bounds.
func polygonsToRegion(contours [][]Point, fill FillRule) region.Region {
	if len(contours) == 0 {
		return region.Region{}
	}
	window := EmptyRect()
	rcontours := make([][]region.Point, 0, len(contours))
	for _, c := range contours {
		rc := make([]region.Point, len(c))
		for i, pt := range c {
			rc[i] = region.Point{X: pt.X, Y: pt.Y}
			window = window.UnionPoint(pt.X, pt.Y)
		}
		rcontours = append(rcontours, rc)
	}
	rfill := region.FillNonZero
	if fill == FillEvenOdd {
		rfill = region.FillEvenOdd
	}
	return region.FromPolygons(rcontours, rfill, window.RoundOut())
}
