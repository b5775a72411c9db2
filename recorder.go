package canvas

import "github.com/gogpu/canvas/region"

// Recorder is the recording Renderer: state mutations and draw calls are
// captured into a replayable List instead of executing against a device.
// It runs the same state machine as Canvas, so SaveCount, Matrix,
// ClipBounds, and QuickRejectConservative answer exactly as an immediate
// renderer would for the same call sequence. Draw calls are validated
// but not clip-rejected; the clip in effect at replay time decides what
// actually lands.
//
// The usual round trip:
//
//	rec := canvas.NewRecorder(800, 600)
//	_ = rec.Prepare(false)
//	rec.DrawRect(canvas.RectWH(10, 10, 100, 50), paint)
//	_ = rec.Finish()
//	damage, st := c.DrawDisplayList(rec.List(), 0)
//
// Paints, paths, and coordinate slices are copied when recorded. Bitmaps,
// text runs, layers, and nested lists are referenced: mutating them
// between recording and replay changes what the list draws.
// DrawBitmapData is the copying exception, matching the immediate
// renderer.
//
// Like Canvas, a Recorder is single-threaded.
type Recorder struct {
	state

	cmds []command
	list *List
}

var _ Renderer = (*Recorder)(nil)

// NewRecorder creates a recording renderer with the given viewport.
// Device, target, and handle options do not apply to recording and are
// ignored.
func NewRecorder(width, height int, opts ...Option) *Recorder {
	o := applyOptions(opts)
	rec := &Recorder{}
	rec.name = o.name
	rec.strict = o.strict
	rec.width = width
	rec.height = height
	return rec
}

// List returns the list sealed by the last Finish. It is nil while a
// recording is active and before the first recording completes.
func (rec *Recorder) List() *List {
	if rec.active {
		return nil
	}
	return rec.list
}

// record appends one command to the open recording.
func (rec *Recorder) record(c command) {
	rec.cmds = append(rec.cmds, c)
}

// SetViewport sets the dimensions for subsequent recordings.
func (rec *Recorder) SetViewport(width, height int) {
	rec.width = width
	rec.height = height
}

// Viewport returns the current recording dimensions.
func (rec *Recorder) Viewport() (int, int) {
	return rec.width, rec.height
}

// IsRecording returns true: draws are captured, not executed.
func (rec *Recorder) IsRecording() bool { return true }

// SetName attaches a debug label used in log output and carried by the
// sealed list.
func (rec *Recorder) SetName(name string) { rec.name = name }

// Name returns the debug label.
func (rec *Recorder) Name() string { return rec.name }

// Prepare opens a recording covering the full viewport.
func (rec *Recorder) Prepare(opaque bool) error {
	return rec.PrepareDirty(0, 0, float32(rec.width), float32(rec.height), opaque)
}

// PrepareDirty opens a recording whose initial clip is the dirty
// rectangle intersected with the viewport, so record-time clip queries
// track what an immediate renderer would report. Degenerate or
// out-of-range rectangles fall back to the full viewport. Any
// still-active recording is abandoned. The opaque promise is device
// business and is not recorded.
func (rec *Recorder) PrepareDirty(left, top, right, bottom float32, opaque bool) error {
	if rec.width <= 0 || rec.height <= 0 {
		return ErrNoViewport
	}
	if rec.active {
		Logger().Warn("canvas: prepare while recording active, abandoning it", "renderer", rec.name)
	}

	vp := region.Rect{R: rec.width, B: rec.height}
	dirty := vp
	req := RectLTRB(left, top, right, bottom)
	if req.IsEmpty() {
		Logger().Warn("canvas: degenerate dirty rect, using full viewport",
			"renderer", rec.name, "dirty", req)
	} else {
		dirty = req.RoundOut().Intersect(vp)
		if dirty.Empty() {
			Logger().Warn("canvas: dirty rect outside viewport, using full viewport",
				"renderer", rec.name, "dirty", req)
			dirty = vp
		}
	}

	rec.reset(dirty)
	rec.cmds = rec.cmds[:0]
	rec.list = nil
	return nil
}

// Finish seals the recording; List returns it afterwards. Open saves are
// unwound from the local ledger only: the recorded commands keep the
// balance the caller submitted, and DrawDisplayList brackets replay by
// default.
func (rec *Recorder) Finish() error {
	if !rec.active {
		return ErrIllegalState
	}
	if rec.interruptDepth > 0 {
		Logger().Warn("canvas: finish inside interrupt/resume bracket",
			"renderer", rec.name, "depth", rec.interruptDepth)
		rec.interruptDepth = 0
	}
	_, _ = rec.restoreTo(1)
	rec.active = false
	rec.list = &List{
		name:   rec.name,
		bounds: RectLTRB(0, 0, float32(rec.frameW), float32(rec.frameH)),
		cmds:   rec.cmds,
	}
	// The sealed list owns the commands; the next Prepare starts fresh.
	rec.cmds = nil
	return nil
}

// SaveCount returns the ledger count; 1 at the recording baseline.
func (rec *Recorder) SaveCount() int { return rec.saveCount() }

// Save pushes the current state, records the operation, and returns the
// marker undoing it.
func (rec *Recorder) Save(flags SaveFlags) (int, error) {
	if !rec.usable() {
		return rec.saveCount(), ErrIllegalState
	}
	marker := rec.push(flags, nil)
	rec.record(saveCommand{flags: flags})
	return marker, nil
}

// SaveLayer pushes the current state and records the layer save. No
// offscreen target is allocated while recording; the replay target
// allocates one when the list plays back. The clip is captured as with
// the immediate renderer, and ClipToLayer narrows it so record-time
// rejection queries stay truthful.
func (rec *Recorder) SaveLayer(bounds Rect, alpha uint8, mode BlendMode, flags SaveFlags) (int, error) {
	if !rec.usable() {
		return rec.saveCount(), ErrIllegalState
	}
	marker := rec.push(flags|SaveClip, nil)
	if flags&ClipToLayer != 0 {
		devBounds := rec.matrix.TransformRect(bounds).RoundOut().Intersect(rec.deviceClipBounds())
		rec.clip = rec.clip.combineRect(devBounds, ClipIntersect)
	}
	rec.record(saveLayerCommand{bounds: bounds, alpha: alpha, mode: mode, flags: flags})
	return marker, nil
}

// SaveLayerAlpha is SaveLayer with source-over compositing.
func (rec *Recorder) SaveLayerAlpha(bounds Rect, alpha uint8, flags SaveFlags) (int, error) {
	return rec.SaveLayer(bounds, alpha, BlendSrcOver, flags)
}

// SaveLayerPaint derives alpha and mode from the paint; nil means opaque
// source-over.
func (rec *Recorder) SaveLayerPaint(bounds Rect, paint *Paint, flags SaveFlags) (int, error) {
	return rec.SaveLayer(bounds, paint.Alpha(), paint.Mode(), flags)
}

// Restore pops one ledger entry. A baseline restore is a logged no-op
// (or ErrStateUnderflow under WithStrictRestore) and is not recorded,
// so a replayed list cannot unwind its host's state.
func (rec *Recorder) Restore() error {
	if !rec.usable() {
		return ErrIllegalState
	}
	if _, ok := rec.pop(); !ok {
		if rec.strict {
			return ErrStateUnderflow
		}
		Logger().Warn("canvas: restore with no matching save", "renderer", rec.name)
		return nil
	}
	rec.record(restoreCommand{})
	return nil
}

// RestoreToCount pops until SaveCount() == count and records the marker,
// clamped to the recording baseline so replay rebasing cannot unwind
// past the bracket save.
func (rec *Recorder) RestoreToCount(count int) error {
	if !rec.usable() {
		return ErrIllegalState
	}
	if count < 1 {
		count = 1
	}
	if _, err := rec.restoreTo(count); err != nil {
		return err
	}
	rec.record(restoreToCountCommand{count: count})
	return nil
}

// Translate post-multiplies a translation onto the current matrix.
func (rec *Recorder) Translate(dx, dy float32) error {
	if !rec.usable() {
		return ErrIllegalState
	}
	rec.matrix = rec.matrix.Multiply(Translation(dx, dy))
	rec.record(translateCommand{dx: dx, dy: dy})
	return nil
}

// Rotate post-multiplies a rotation (radians) onto the current matrix.
func (rec *Recorder) Rotate(radians float32) error {
	if !rec.usable() {
		return ErrIllegalState
	}
	rec.matrix = rec.matrix.Multiply(Rotation(radians))
	rec.record(rotateCommand{radians: radians})
	return nil
}

// Scale post-multiplies a scale onto the current matrix.
func (rec *Recorder) Scale(sx, sy float32) error {
	if !rec.usable() {
		return ErrIllegalState
	}
	rec.matrix = rec.matrix.Multiply(Scaling(sx, sy))
	rec.record(scaleCommand{sx: sx, sy: sy})
	return nil
}

// Skew post-multiplies a shear onto the current matrix.
func (rec *Recorder) Skew(kx, ky float32) error {
	if !rec.usable() {
		return ErrIllegalState
	}
	rec.matrix = rec.matrix.Multiply(Shearing(kx, ky))
	rec.record(skewCommand{kx: kx, ky: ky})
	return nil
}

// SetMatrix replaces the current matrix. The replacement is recorded
// as-is and replaces the replay target's matrix too.
func (rec *Recorder) SetMatrix(m Matrix) error {
	if !rec.usable() {
		return ErrIllegalState
	}
	rec.matrix = m
	rec.record(setMatrixCommand{m: m})
	return nil
}

// ConcatMatrix post-multiplies m onto the current matrix.
func (rec *Recorder) ConcatMatrix(m Matrix) error {
	if !rec.usable() {
		return ErrIllegalState
	}
	rec.matrix = rec.matrix.Multiply(m)
	rec.record(concatMatrixCommand{m: m})
	return nil
}

// Matrix returns the current transform.
func (rec *Recorder) Matrix() Matrix { return rec.matrix }

// ClipRect combines the rectangle, mapped through the current transform,
// with the clip, and records the operation. Returns whether the clip is
// still non-empty.
func (rec *Recorder) ClipRect(r Rect, op ClipOp) (bool, error) {
	if !rec.usable() {
		return false, ErrIllegalState
	}
	ok := rec.clipRectOp(r, op)
	rec.record(clipRectCommand{rect: r, op: op})
	return ok, nil
}

// ClipPath combines the path, mapped through the current transform, with
// the clip, and records the operation with a copy of the path.
func (rec *Recorder) ClipPath(path *Path, op ClipOp) (bool, error) {
	if !rec.usable() {
		return false, ErrIllegalState
	}
	ok := rec.clipPathOp(path, op)
	if path.IsEmpty() {
		// An empty path mutates the clip by operator alone; nothing
		// worth replaying was submitted.
		return ok, nil
	}
	rec.record(clipPathCommand{path: path.Clone(), op: op})
	return ok, nil
}

// ClipRegion combines a device-space region with the clip, bypassing the
// current transform, and records the operation. Regions are immutable
// once built, so the recording shares the caller's spans.
func (rec *Recorder) ClipRegion(rgn region.Region, op ClipOp) (bool, error) {
	if !rec.usable() {
		return false, ErrIllegalState
	}
	ok := rec.clipRegionOp(rgn, op)
	rec.record(clipRegionCommand{rgn: rgn, op: op})
	return ok, nil
}

// ClipBounds returns the conservative bounds of the clip in local
// coordinates.
func (rec *Recorder) ClipBounds() Rect {
	return rec.clipBoundsLocal()
}

// QuickRejectConservative reports whether the rectangle, mapped through
// the current transform, falls entirely outside the record-time clip
// bounds.
func (rec *Recorder) QuickRejectConservative(left, top, right, bottom float32) bool {
	return rec.quickReject(left, top, right, bottom)
}

// Interrupt opens a hand-off bracket. A recording has no device state to
// flush; the bracket only counts depth and blocks calls until Resume.
// Brackets are never recorded.
func (rec *Recorder) Interrupt() error {
	if !rec.active {
		return ErrIllegalState
	}
	rec.interruptDepth++
	return nil
}

// Resume closes one bracket level. Unbalanced calls return
// ErrIllegalState.
func (rec *Recorder) Resume() error {
	if !rec.active || rec.interruptDepth == 0 {
		return ErrIllegalState
	}
	rec.interruptDepth--
	return nil
}

// CallDrawFunctor refuses hand-off: a recording cannot replay an opaque
// callback's native drawing later.
func (rec *Recorder) CallDrawFunctor(fn Functor) (Rect, Status) {
	Logger().Warn("canvas: draw functor submitted to a recording renderer", "renderer", rec.name)
	return EmptyRect(), StatusIllegalState
}

// SetupShader installs the instance shader and records it. Not
// save-scoped.
func (rec *Recorder) SetupShader(s Shader) error {
	if !rec.usable() {
		return ErrIllegalState
	}
	rec.shader = s
	rec.record(setupShaderCommand{shader: s})
	return nil
}

// ResetShader removes the instance shader.
func (rec *Recorder) ResetShader() error {
	if !rec.usable() {
		return ErrIllegalState
	}
	rec.shader = nil
	rec.record(resetShaderCommand{})
	return nil
}

// SetupColorFilter installs the instance color filter and records it.
func (rec *Recorder) SetupColorFilter(f ColorFilter) error {
	if !rec.usable() {
		return ErrIllegalState
	}
	rec.colorFilter = f
	rec.record(setupColorFilterCommand{filter: f})
	return nil
}

// ResetColorFilter removes the instance color filter.
func (rec *Recorder) ResetColorFilter() error {
	if !rec.usable() {
		return ErrIllegalState
	}
	rec.colorFilter = nil
	rec.record(resetColorFilterCommand{})
	return nil
}

// SetupShadow installs the text drop shadow and records it.
func (rec *Recorder) SetupShadow(radius, dx, dy float32, col Color) error {
	if !rec.usable() {
		return ErrIllegalState
	}
	rec.shadow = &Shadow{Radius: radius, DX: dx, DY: dy, Color: col}
	rec.record(setupShadowCommand{radius: radius, dx: dx, dy: dy, color: col})
	return nil
}

// ResetShadow removes the text drop shadow.
func (rec *Recorder) ResetShadow() error {
	if !rec.usable() {
		return ErrIllegalState
	}
	rec.shadow = nil
	rec.record(resetShadowCommand{})
	return nil
}

// SetupPaintFilter makes subsequent draws clear and set paint flag bits,
// and records the filter.
func (rec *Recorder) SetupPaintFilter(clearBits, setBits PaintFlags) error {
	if !rec.usable() {
		return ErrIllegalState
	}
	rec.filterClear = clearBits
	rec.filterSet = setBits
	rec.record(setupPaintFilterCommand{clear: clearBits, set: setBits})
	return nil
}

// ResetPaintFilter removes the paint filter.
func (rec *Recorder) ResetPaintFilter() error {
	if !rec.usable() {
		return ErrIllegalState
	}
	rec.filterClear = 0
	rec.filterSet = 0
	rec.record(resetPaintFilterCommand{})
	return nil
}

// beginRecord validates that a draw can be captured.
func (rec *Recorder) beginRecord() Status {
	if !rec.usable() {
		return StatusIllegalState
	}
	return StatusDone
}

// DrawColor records a full-clip fill.
func (rec *Recorder) DrawColor(col Color, mode BlendMode) Status {
	if st := rec.beginRecord(); st != StatusDone {
		return st
	}
	rec.record(drawColorCommand{color: col, mode: mode})
	return StatusDone
}

// DrawRect records a rectangle fill.
func (rec *Recorder) DrawRect(r Rect, paint *Paint) Status {
	if st := rec.beginRecord(); st != StatusDone {
		return st
	}
	if r.IsEmpty() {
		return StatusSkipped
	}
	rec.record(drawRectCommand{rect: r, paint: clonePaint(paint)})
	return StatusDone
}

// DrawRects records a fill of each rectangle in turn.
func (rec *Recorder) DrawRects(rects []Rect, paint *Paint) Status {
	if st := rec.beginRecord(); st != StatusDone {
		return st
	}
	if len(rects) == 0 {
		return StatusSkipped
	}
	rs := make([]Rect, len(rects))
	copy(rs, rects)
	rec.record(drawRectsCommand{rects: rs, paint: clonePaint(paint)})
	return StatusDone
}

// DrawRoundRect records a rounded-rectangle fill.
func (rec *Recorder) DrawRoundRect(r Rect, rx, ry float32, paint *Paint) Status {
	if st := rec.beginRecord(); st != StatusDone {
		return st
	}
	if r.IsEmpty() {
		return StatusSkipped
	}
	rec.record(drawRoundRectCommand{rect: r, rx: rx, ry: ry, paint: clonePaint(paint)})
	return StatusDone
}

// DrawCircle records a circle fill.
func (rec *Recorder) DrawCircle(cx, cy, radius float32, paint *Paint) Status {
	if st := rec.beginRecord(); st != StatusDone {
		return st
	}
	if radius <= 0 {
		return StatusSkipped
	}
	rec.record(drawCircleCommand{cx: cx, cy: cy, radius: radius, paint: clonePaint(paint)})
	return StatusDone
}

// DrawOval records a fill of the ellipse inscribed in r.
func (rec *Recorder) DrawOval(r Rect, paint *Paint) Status {
	if st := rec.beginRecord(); st != StatusDone {
		return st
	}
	if r.IsEmpty() {
		return StatusSkipped
	}
	rec.record(drawOvalCommand{rect: r, paint: clonePaint(paint)})
	return StatusDone
}

// DrawArc records an arc fill.
func (rec *Recorder) DrawArc(r Rect, startAngle, sweepAngle float32, useCenter bool, paint *Paint) Status {
	if st := rec.beginRecord(); st != StatusDone {
		return st
	}
	if r.IsEmpty() || sweepAngle == 0 {
		return StatusSkipped
	}
	rec.record(drawArcCommand{
		rect: r, start: startAngle, sweep: sweepAngle,
		useCenter: useCenter, paint: clonePaint(paint),
	})
	return StatusDone
}

// DrawPath records a path fill with a copy of the path.
func (rec *Recorder) DrawPath(p *Path, paint *Paint) Status {
	if st := rec.beginRecord(); st != StatusDone {
		return st
	}
	if p.IsEmpty() {
		return StatusSkipped
	}
	rec.record(drawPathCommand{path: p.Clone(), paint: clonePaint(paint)})
	return StatusDone
}

// DrawLines records stroked segments; pts holds x0 y0 x1 y1 per segment.
func (rec *Recorder) DrawLines(pts []float32, paint *Paint) Status {
	if st := rec.beginRecord(); st != StatusDone {
		return st
	}
	if len(pts) < 4 {
		return StatusSkipped
	}
	ps := make([]float32, len(pts))
	copy(ps, pts)
	rec.record(drawLinesCommand{pts: ps, paint: clonePaint(paint)})
	return StatusDone
}

// DrawPoints records square caps at each point; pts holds x y pairs.
func (rec *Recorder) DrawPoints(pts []float32, paint *Paint) Status {
	if st := rec.beginRecord(); st != StatusDone {
		return st
	}
	if len(pts) < 2 {
		return StatusSkipped
	}
	ps := make([]float32, len(pts))
	copy(ps, pts)
	rec.record(drawPointsCommand{pts: ps, paint: clonePaint(paint)})
	return StatusDone
}

// DrawBitmap records a bitmap draw with its top-left corner at (x, y).
func (rec *Recorder) DrawBitmap(b *Bitmap, x, y float32, paint *Paint) Status {
	if st := rec.beginRecord(); st != StatusDone {
		return st
	}
	if b == nil || b.IsEmpty() {
		return StatusSkipped
	}
	rec.record(drawBitmapCommand{bitmap: b, x: x, y: y, paint: clonePaint(paint)})
	return StatusDone
}

// DrawBitmapMatrix records a bitmap draw transformed by m.
func (rec *Recorder) DrawBitmapMatrix(b *Bitmap, m Matrix, paint *Paint) Status {
	if st := rec.beginRecord(); st != StatusDone {
		return st
	}
	if b == nil || b.IsEmpty() {
		return StatusSkipped
	}
	rec.record(drawBitmapMatrixCommand{bitmap: b, m: m, paint: clonePaint(paint)})
	return StatusDone
}

// DrawBitmapRect records a src-to-dst bitmap draw.
func (rec *Recorder) DrawBitmapRect(b *Bitmap, src, dst Rect, paint *Paint) Status {
	if st := rec.beginRecord(); st != StatusDone {
		return st
	}
	if b == nil || b.IsEmpty() {
		return StatusSkipped
	}
	if src.Intersect(b.Bounds()).IsEmpty() || dst.IsEmpty() {
		return StatusSkipped
	}
	rec.record(drawBitmapRectCommand{bitmap: b, src: src, dst: dst, paint: clonePaint(paint)})
	return StatusDone
}

// DrawBitmapData copies the raw premultiplied RGBA pixels into a bitmap
// owned by the recording and records a bitmap draw at (x, y).
func (rec *Recorder) DrawBitmapData(data []uint8, width, height int, x, y float32, paint *Paint) Status {
	if st := rec.beginRecord(); st != StatusDone {
		return st
	}
	if width <= 0 || height <= 0 {
		return StatusSkipped
	}
	if len(data) < width*height*4 {
		Logger().Warn("canvas: bitmap data shorter than dimensions",
			"renderer", rec.name, "width", width, "height", height, "len", len(data))
		return StatusFailed
	}
	pix := make([]uint8, width*height*4)
	copy(pix, data)
	rec.record(drawBitmapCommand{bitmap: BitmapFromData(pix, width, height), x: x, y: y, paint: clonePaint(paint)})
	return StatusDone
}

// DrawBitmapMesh records a mesh-mapped bitmap draw with copies of the
// vertex and color slices.
func (rec *Recorder) DrawBitmapMesh(b *Bitmap, meshWidth, meshHeight int, verts []float32, colors []Color, paint *Paint) Status {
	if st := rec.beginRecord(); st != StatusDone {
		return st
	}
	if b == nil || b.IsEmpty() || meshWidth < 1 || meshHeight < 1 {
		return StatusSkipped
	}
	cols := meshWidth + 1
	rows := meshHeight + 1
	if len(verts) < cols*rows*2 {
		Logger().Warn("canvas: mesh vertex count mismatch",
			"renderer", rec.name, "want", cols*rows*2, "got", len(verts))
		return StatusFailed
	}
	if colors != nil && len(colors) < cols*rows {
		Logger().Warn("canvas: mesh color count mismatch",
			"renderer", rec.name, "want", cols*rows, "got", len(colors))
		return StatusFailed
	}
	vs := make([]float32, cols*rows*2)
	copy(vs, verts)
	var cs []Color
	if colors != nil {
		cs = make([]Color, cols*rows)
		copy(cs, colors)
	}
	rec.record(drawBitmapMeshCommand{
		bitmap: b, meshW: meshWidth, meshH: meshHeight,
		verts: vs, colors: cs, paint: clonePaint(paint),
	})
	return StatusDone
}

// DrawPatch records a nine-patch stretch with copies of the divisions.
func (rec *Recorder) DrawPatch(b *Bitmap, patch Patch, dst Rect, paint *Paint) Status {
	if st := rec.beginRecord(); st != StatusDone {
		return st
	}
	if b == nil || b.IsEmpty() || dst.IsEmpty() {
		return StatusSkipped
	}
	p := Patch{
		XDivs: append([]int(nil), patch.XDivs...),
		YDivs: append([]int(nil), patch.YDivs...),
	}
	rec.record(drawPatchCommand{bitmap: b, patch: p, dst: dst, paint: clonePaint(paint)})
	return StatusDone
}

// DrawText records a text draw, keeping the submission mode so deferral
// happens on the replay target.
func (rec *Recorder) DrawText(run *TextRun, x, y float32, paint *Paint, mode DrawOpMode) Status {
	if st := rec.beginRecord(); st != StatusDone {
		return st
	}
	if run.IsEmpty() {
		return StatusSkipped
	}
	rec.record(drawTextCommand{run: run, x: x, y: y, paint: clonePaint(paint), mode: mode})
	return StatusDone
}

// DrawPosText records a draw of a run with absolute glyph positions.
func (rec *Recorder) DrawPosText(run *TextRun, paint *Paint) Status {
	if st := rec.beginRecord(); st != StatusDone {
		return st
	}
	if run.IsEmpty() {
		return StatusSkipped
	}
	rec.record(drawPosTextCommand{run: run, paint: clonePaint(paint)})
	return StatusDone
}

// DrawTextOnPath records a draw of a run following the path, with a copy
// of the path.
func (rec *Recorder) DrawTextOnPath(run *TextRun, p *Path, hOffset, vOffset float32, paint *Paint) Status {
	if st := rec.beginRecord(); st != StatusDone {
		return st
	}
	if run.IsEmpty() || p.IsEmpty() {
		return StatusSkipped
	}
	rec.record(drawTextOnPathCommand{
		run: run, path: p.Clone(),
		hOffset: hOffset, vOffset: vOffset, paint: clonePaint(paint),
	})
	return StatusDone
}

// DrawLayer records a composite of pre-rendered layer content.
func (rec *Recorder) DrawLayer(l *Layer, x, y float32, paint *Paint) Status {
	if st := rec.beginRecord(); st != StatusDone {
		return st
	}
	if l == nil || l.IsEmpty() {
		return StatusSkipped
	}
	rec.record(drawLayerCommand{layer: l, x: x, y: y, paint: clonePaint(paint)})
	return StatusDone
}

// DrawDisplayList records a nested replay. The damage estimate uses the
// record-time state, mirroring what an immediate renderer would report
// for the same call sequence.
func (rec *Recorder) DrawDisplayList(list DisplayList, flags ReplayFlags) (Rect, Status) {
	if !rec.usable() {
		return EmptyRect(), StatusIllegalState
	}
	if list == nil || list.IsEmpty() {
		return EmptyRect(), StatusSkipped
	}
	damage := rec.matrix.TransformRect(list.Bounds()).Intersect(rectFromRegion(rec.clip.bounds()))
	rec.record(drawDisplayListCommand{list: list, flags: flags})
	return damage, StatusDone
}
