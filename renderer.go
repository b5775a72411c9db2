package canvas

import "github.com/gogpu/canvas/region"

// Renderer is the abstract rendering contract: the interface higher-level
// code uses to describe a frame of 2D drawing without knowing whether the
// calls execute immediately against a rasterization device or are captured
// for later replay.
//
// Two implementations ship with the package: Canvas draws through a
// Device, Recorder captures into a List. Both share the same state
// machine, so state queries (SaveCount, Matrix, ClipBounds,
// QuickRejectConservative) agree between them for identical call
// sequences.
//
// A Renderer is single-threaded: one goroutine manipulates one frame at
// a time. No call blocks.
//
// Lifecycle: SetViewport, then Prepare or PrepareDirty to open a frame,
// draw and mutate state, Finish to close it. State-mutating calls outside
// an active frame return ErrIllegalState; draw calls return
// StatusIllegalState.
type Renderer interface {
	// SetViewport sets the output dimensions for subsequent frames.
	SetViewport(width, height int)

	// Viewport returns the current output dimensions.
	Viewport() (width, height int)

	// Prepare opens a frame covering the full viewport. opaque promises
	// the frame will cover every pixel, letting the device skip the
	// initial clear. Opening a frame resets all stacks unconditionally,
	// abandoning any still-active frame.
	Prepare(opaque bool) error

	// PrepareDirty opens a frame whose initial clip is the given
	// rectangle intersected with the viewport. Degenerate or
	// out-of-range rectangles fall back to the full viewport.
	PrepareDirty(left, top, right, bottom float32, opaque bool) error

	// Finish closes the active frame and resolves it into the target.
	Finish() error

	// IsRecording reports whether draws are captured instead of
	// executed.
	IsRecording() bool

	// SetName attaches a debug label used in log output.
	SetName(name string)

	// Name returns the debug label.
	Name() string

	// SaveCount returns the save-ledger count. The baseline state of a
	// frame counts as 1.
	SaveCount() int

	// Save pushes the current state onto the ledger and returns the
	// marker that RestoreToCount takes to undo it. The matrix is always
	// captured; the clip only when flags includes SaveClip.
	Save(flags SaveFlags) (int, error)

	// SaveLayer is Save plus allocation of an offscreen compositing
	// target covering bounds. The matching restore composites the layer
	// into its parent with the given alpha and blend mode.
	SaveLayer(bounds Rect, alpha uint8, mode BlendMode, flags SaveFlags) (int, error)

	// SaveLayerAlpha is SaveLayer with source-over compositing.
	SaveLayerAlpha(bounds Rect, alpha uint8, flags SaveFlags) (int, error)

	// SaveLayerPaint derives the layer alpha and blend mode from the
	// paint; a nil paint means opaque source-over.
	SaveLayerPaint(bounds Rect, paint *Paint, flags SaveFlags) (int, error)

	// Restore pops one ledger entry. At the baseline it is a logged
	// no-op, or ErrStateUnderflow under WithStrictRestore.
	Restore() error

	// RestoreToCount pops entries until SaveCount() == count. Values
	// below the baseline clamp to it; values above the current count
	// return ErrInvalidSaveCount.
	RestoreToCount(count int) error

	// Translate post-multiplies a translation onto the current matrix.
	Translate(dx, dy float32) error

	// Rotate post-multiplies a rotation (radians) onto the current
	// matrix.
	Rotate(radians float32) error

	// Scale post-multiplies a scale onto the current matrix.
	Scale(sx, sy float32) error

	// Skew post-multiplies a shear onto the current matrix.
	Skew(kx, ky float32) error

	// SetMatrix replaces the current matrix.
	SetMatrix(m Matrix) error

	// ConcatMatrix post-multiplies m onto the current matrix.
	ConcatMatrix(m Matrix) error

	// Matrix returns the current transform.
	Matrix() Matrix

	// ClipRect combines the transformed rectangle with the current clip
	// under op and reports whether the clip remains non-empty.
	ClipRect(r Rect, op ClipOp) (bool, error)

	// ClipPath combines the transformed path with the current clip
	// under op.
	ClipPath(p *Path, op ClipOp) (bool, error)

	// ClipRegion combines a device-space region with the current clip
	// under op. The current transform is deliberately not applied.
	ClipRegion(rgn region.Region, op ClipOp) (bool, error)

	// ClipBounds returns the axis-aligned bounds of the current clip in
	// local coordinates.
	ClipBounds() Rect

	// QuickRejectConservative reports whether the local-space rectangle
	// provably lies outside the current clip. Bounding boxes only; no
	// side effects.
	QuickRejectConservative(left, top, right, bottom float32) bool

	// Interrupt flushes engine and device state so an external callback
	// observes it exactly. Brackets nest by depth counting.
	Interrupt() error

	// Resume re-establishes engine assumptions after external code may
	// have touched the shared native context. Unbalanced calls return
	// ErrIllegalState.
	Resume() error

	// CallDrawFunctor invokes an external draw callback inside an
	// Interrupt/Resume bracket and returns the damage it reported.
	// Recording renderers refuse it with StatusIllegalState.
	CallDrawFunctor(fn Functor) (Rect, Status)

	// SetupShader installs the instance shader applied to subsequent
	// draws. Not save-scoped; reset by Prepare.
	SetupShader(s Shader) error

	// ResetShader removes the instance shader.
	ResetShader() error

	// SetupColorFilter installs the instance color filter.
	SetupColorFilter(f ColorFilter) error

	// ResetColorFilter removes the instance color filter.
	ResetColorFilter() error

	// SetupShadow installs the text drop shadow.
	SetupShadow(radius, dx, dy float32, c Color) error

	// ResetShadow removes the text drop shadow.
	ResetShadow() error

	// SetupPaintFilter makes every subsequent draw clear and set the
	// given paint flag bits.
	SetupPaintFilter(clearBits, setBits PaintFlags) error

	// ResetPaintFilter removes the paint filter.
	ResetPaintFilter() error

	// DrawColor fills the entire clip with the color under the blend
	// mode, ignoring the current transform.
	DrawColor(c Color, mode BlendMode) Status

	// DrawRect fills the rectangle.
	DrawRect(r Rect, paint *Paint) Status

	// DrawRects fills each rectangle in turn.
	DrawRects(rects []Rect, paint *Paint) Status

	// DrawRoundRect fills a rectangle with elliptical corners.
	DrawRoundRect(r Rect, rx, ry float32, paint *Paint) Status

	// DrawCircle fills a circle.
	DrawCircle(cx, cy, radius float32, paint *Paint) Status

	// DrawOval fills the ellipse inscribed in r.
	DrawOval(r Rect, paint *Paint) Status

	// DrawArc fills an arc of the ellipse inscribed in r, from
	// startAngle over sweepAngle (radians). useCenter closes the arc
	// through the center, producing a wedge.
	DrawArc(r Rect, startAngle, sweepAngle float32, useCenter bool, paint *Paint) Status

	// DrawPath fills the path under its fill rule.
	DrawPath(p *Path, paint *Paint) Status

	// DrawLines strokes independent segments; pts holds point pairs
	// x0 y0 x1 y1 per segment.
	DrawLines(pts []float32, paint *Paint) Status

	// DrawPoints draws square caps at each point; pts holds x y pairs.
	DrawPoints(pts []float32, paint *Paint) Status

	// DrawBitmap draws the bitmap with its top-left corner at (x, y).
	DrawBitmap(b *Bitmap, x, y float32, paint *Paint) Status

	// DrawBitmapMatrix draws the bitmap transformed by m concatenated
	// onto the current matrix.
	DrawBitmapMatrix(b *Bitmap, m Matrix, paint *Paint) Status

	// DrawBitmapRect draws the src portion of the bitmap mapped onto
	// the dst rectangle.
	DrawBitmapRect(b *Bitmap, src, dst Rect, paint *Paint) Status

	// DrawBitmapData draws raw premultiplied RGBA pixels at (x, y).
	DrawBitmapData(data []uint8, width, height int, x, y float32, paint *Paint) Status

	// DrawBitmapMesh maps the bitmap onto a (meshWidth x meshHeight)
	// grid of quads; verts holds (meshWidth+1)*(meshHeight+1) x y pairs
	// in row-major order. colors, when non-nil, tint each vertex.
	DrawBitmapMesh(b *Bitmap, meshWidth, meshHeight int, verts []float32, colors []Color, paint *Paint) Status

	// DrawPatch stretches the bitmap onto dst per the patch divisions.
	DrawPatch(b *Bitmap, patch Patch, dst Rect, paint *Paint) Status

	// DrawText draws a shaped run with its origin at (x, y) on the
	// baseline. mode selects immediate emission, deferral into the
	// current batch, or a batch flush.
	DrawText(run *TextRun, x, y float32, paint *Paint, mode DrawOpMode) Status

	// DrawPosText draws a run whose glyph positions are absolute.
	DrawPosText(run *TextRun, paint *Paint) Status

	// DrawTextOnPath draws a run following the path, offset by hOffset
	// along and vOffset above it.
	DrawTextOnPath(run *TextRun, p *Path, hOffset, vOffset float32, paint *Paint) Status

	// DrawLayer composites pre-rendered layer content at (x, y).
	DrawLayer(l *Layer, x, y float32, paint *Paint) Status

	// DrawDisplayList replays a recorded command list against the
	// current state and returns the damage it produced. Entry state is
	// restored on return, even when a command fails mid-replay, unless
	// flags includes ReplayLeakState.
	DrawDisplayList(list DisplayList, flags ReplayFlags) (Rect, Status)
}

// DisplayList is a replayable recorded command sequence, consumed
// read-only by DrawDisplayList.
type DisplayList interface {
	// Bounds returns the logical bounds the list was recorded against.
	Bounds() Rect

	// IsEmpty reports whether the list holds no commands.
	IsEmpty() bool

	// Replay issues the recorded operations against r in order.
	// It stops at the first command whose status is not OK and
	// returns that status.
	Replay(r Renderer) Status
}
