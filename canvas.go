package canvas

import (
	"fmt"

	"github.com/gogpu/canvas/region"
	"github.com/gogpu/canvas/render"
)

// Canvas is the immediate-mode Renderer: every draw call resolves against
// the current transform and clip and executes on a Device right away.
//
// The zero value is not usable; construct with New.
type Canvas struct {
	state

	dev    Device
	target render.Target
	handle render.DeviceHandle

	batch []deferredText
}

var _ Renderer = (*Canvas)(nil)

// New creates an immediate renderer with the given viewport. Without
// options it draws into a fresh CPU pixmap target through the software
// device.
func New(width, height int, opts ...Option) *Canvas {
	o := applyOptions(opts)
	if o.target == nil {
		o.target = render.NewPixmapTarget(width, height)
	}
	if o.device == nil {
		o.device = NewSoftwareDevice(o.target)
	}
	if o.handle == nil {
		if h, ok := o.device.(interface{ Handle() render.DeviceHandle }); ok {
			o.handle = h.Handle()
		} else {
			o.handle = render.NullDeviceHandle{}
		}
	}
	c := &Canvas{
		dev:    o.device,
		target: o.target,
		handle: o.handle,
	}
	c.name = o.name
	c.strict = o.strict
	c.width = width
	c.height = height
	return c
}

// Device returns the rasterization backend this canvas draws through.
func (c *Canvas) Device() Device { return c.dev }

// Target returns the destination the device resolves frames into.
func (c *Canvas) Target() render.Target { return c.target }

// SetViewport sets the output dimensions for subsequent frames.
func (c *Canvas) SetViewport(width, height int) {
	c.width = width
	c.height = height
}

// Viewport returns the current output dimensions.
func (c *Canvas) Viewport() (int, int) {
	return c.width, c.height
}

// IsRecording returns false: draws execute immediately.
func (c *Canvas) IsRecording() bool { return false }

// SetName attaches a debug label used in log output.
func (c *Canvas) SetName(name string) { c.name = name }

// Name returns the debug label.
func (c *Canvas) Name() string { return c.name }

// Prepare opens a frame covering the full viewport.
func (c *Canvas) Prepare(opaque bool) error {
	return c.PrepareDirty(0, 0, float32(c.width), float32(c.height), opaque)
}

// PrepareDirty opens a frame whose initial clip is the dirty rectangle
// intersected with the viewport. A degenerate or out-of-range rectangle
// falls back to the full viewport. Any still-active frame is abandoned:
// all stacks reset unconditionally.
func (c *Canvas) PrepareDirty(left, top, right, bottom float32, opaque bool) error {
	if c.width <= 0 || c.height <= 0 {
		return ErrNoViewport
	}
	if c.active {
		Logger().Warn("canvas: prepare while frame active, abandoning it", "renderer", c.name)
	}

	vp := region.Rect{R: c.width, B: c.height}
	dirty := vp
	req := RectLTRB(left, top, right, bottom)
	if req.IsEmpty() {
		Logger().Warn("canvas: degenerate dirty rect, using full viewport",
			"renderer", c.name, "dirty", req)
	} else {
		dirty = req.RoundOut().Intersect(vp)
		if dirty.Empty() {
			Logger().Warn("canvas: dirty rect outside viewport, using full viewport",
				"renderer", c.name, "dirty", req)
			dirty = vp
		}
	}

	c.reset(dirty)
	c.batch = c.batch[:0]
	if err := c.dev.BeginFrame(c.frameW, c.frameH, dirty, opaque); err != nil {
		c.active = false
		return fmt.Errorf("canvas: begin frame: %w", err)
	}
	return nil
}

// Finish closes the active frame. Layers still open are composited as if
// restored, and an unbalanced hand-off bracket is cleared with a warning.
func (c *Canvas) Finish() error {
	if !c.active {
		return ErrIllegalState
	}
	if c.interruptDepth > 0 {
		Logger().Warn("canvas: finish inside interrupt/resume bracket",
			"renderer", c.name, "depth", c.interruptDepth)
		c.interruptDepth = 0
	}
	c.flushBatch()
	popped, _ := c.restoreTo(1)
	for _, snap := range popped {
		c.compositeLayer(snap.layer)
	}
	c.active = false
	if err := c.dev.EndFrame(); err != nil {
		return fmt.Errorf("canvas: end frame: %w", err)
	}
	return nil
}

// SaveCount returns the ledger count; 1 at the frame baseline.
func (c *Canvas) SaveCount() int { return c.saveCount() }

// Save pushes the current state and returns the marker undoing it.
func (c *Canvas) Save(flags SaveFlags) (int, error) {
	if !c.usable() {
		return c.saveCount(), ErrIllegalState
	}
	c.flushBatch()
	return c.push(flags, nil), nil
}

// SaveLayer pushes the current state and redirects drawing into an
// offscreen target covering bounds until the matching restore, which
// composites it with alpha and mode. The clip is always captured: a
// layer save must restore the clip it may have narrowed.
func (c *Canvas) SaveLayer(bounds Rect, alpha uint8, mode BlendMode, flags SaveFlags) (int, error) {
	if !c.usable() {
		return c.saveCount(), ErrIllegalState
	}
	c.flushBatch()

	devBounds := c.matrix.TransformRect(bounds).RoundOut().Intersect(c.deviceClipBounds())
	var rec *layerRecord
	if !devBounds.Empty() {
		rec = &layerRecord{bounds: devBounds, alpha: alpha, mode: mode}
		if err := c.dev.PushLayer(devBounds, flags&LayerOpaque != 0); err != nil {
			Logger().Warn("canvas: layer allocation failed, degrading to plain save",
				"renderer", c.name, "err", err)
			rec = nil
		} else {
			rec.pushed = true
		}
	}

	marker := c.push(flags|SaveClip, rec)
	if flags&ClipToLayer != 0 {
		// Content destined for a rejected layer must not reach the
		// parent, so the empty bounds empty the clip here.
		c.clip = c.clip.combineRect(devBounds, ClipIntersect)
	}
	return marker, nil
}

// SaveLayerAlpha is SaveLayer with source-over compositing.
func (c *Canvas) SaveLayerAlpha(bounds Rect, alpha uint8, flags SaveFlags) (int, error) {
	return c.SaveLayer(bounds, alpha, BlendSrcOver, flags)
}

// SaveLayerPaint derives alpha and mode from the paint; nil means opaque
// source-over.
func (c *Canvas) SaveLayerPaint(bounds Rect, paint *Paint, flags SaveFlags) (int, error) {
	return c.SaveLayer(bounds, paint.Alpha(), paint.Mode(), flags)
}

// Restore pops one ledger entry, compositing its layer if it has one.
// At the baseline it is a logged no-op, or ErrStateUnderflow under
// WithStrictRestore.
func (c *Canvas) Restore() error {
	if !c.usable() {
		return ErrIllegalState
	}
	c.flushBatch()
	snap, ok := c.pop()
	if !ok {
		if c.strict {
			return ErrStateUnderflow
		}
		Logger().Warn("canvas: restore with no matching save", "renderer", c.name)
		return nil
	}
	c.compositeLayer(snap.layer)
	return nil
}

// RestoreToCount pops until SaveCount() == count. Values below the
// baseline clamp to it; values above the current count fail.
func (c *Canvas) RestoreToCount(count int) error {
	if !c.usable() {
		return ErrIllegalState
	}
	c.flushBatch()
	popped, err := c.restoreTo(count)
	if err != nil {
		return err
	}
	for _, snap := range popped {
		c.compositeLayer(snap.layer)
	}
	return nil
}

// compositeLayer merges a popped layer into its parent.
func (c *Canvas) compositeLayer(rec *layerRecord) {
	if rec == nil || !rec.pushed {
		return
	}
	if err := c.dev.PopLayer(rec.alpha, rec.mode); err != nil {
		Logger().Warn("canvas: layer composite failed", "renderer", c.name, "err", err)
	}
}

// Translate post-multiplies a translation onto the current matrix.
func (c *Canvas) Translate(dx, dy float32) error {
	return c.concat(Translation(dx, dy))
}

// Rotate post-multiplies a rotation (radians) onto the current matrix.
func (c *Canvas) Rotate(radians float32) error {
	return c.concat(Rotation(radians))
}

// Scale post-multiplies a scale onto the current matrix.
func (c *Canvas) Scale(sx, sy float32) error {
	return c.concat(Scaling(sx, sy))
}

// Skew post-multiplies a shear onto the current matrix.
func (c *Canvas) Skew(kx, ky float32) error {
	return c.concat(Shearing(kx, ky))
}

// ConcatMatrix post-multiplies m onto the current matrix.
func (c *Canvas) ConcatMatrix(m Matrix) error {
	return c.concat(m)
}

// SetMatrix replaces the current matrix.
func (c *Canvas) SetMatrix(m Matrix) error {
	if !c.usable() {
		return ErrIllegalState
	}
	c.flushBatch()
	c.matrix = m
	return nil
}

// Matrix returns the current transform.
func (c *Canvas) Matrix() Matrix { return c.matrix }

func (c *Canvas) concat(m Matrix) error {
	if !c.usable() {
		return ErrIllegalState
	}
	c.flushBatch()
	c.matrix = c.matrix.Multiply(m)
	return nil
}

// SetupShader installs the instance shader. Not save-scoped.
func (c *Canvas) SetupShader(s Shader) error {
	if !c.usable() {
		return ErrIllegalState
	}
	c.flushBatch()
	c.shader = s
	return nil
}

// ResetShader removes the instance shader.
func (c *Canvas) ResetShader() error {
	return c.SetupShader(nil)
}

// SetupColorFilter installs the instance color filter.
func (c *Canvas) SetupColorFilter(f ColorFilter) error {
	if !c.usable() {
		return ErrIllegalState
	}
	c.flushBatch()
	c.colorFilter = f
	return nil
}

// ResetColorFilter removes the instance color filter.
func (c *Canvas) ResetColorFilter() error {
	return c.SetupColorFilter(nil)
}

// SetupShadow installs the text drop shadow.
func (c *Canvas) SetupShadow(radius, dx, dy float32, col Color) error {
	if !c.usable() {
		return ErrIllegalState
	}
	c.flushBatch()
	c.shadow = &Shadow{Radius: radius, DX: dx, DY: dy, Color: col}
	return nil
}

// ResetShadow removes the text drop shadow.
func (c *Canvas) ResetShadow() error {
	if !c.usable() {
		return ErrIllegalState
	}
	c.flushBatch()
	c.shadow = nil
	return nil
}

// SetupPaintFilter makes subsequent draws clear and set paint flag bits.
func (c *Canvas) SetupPaintFilter(clearBits, setBits PaintFlags) error {
	if !c.usable() {
		return ErrIllegalState
	}
	c.flushBatch()
	c.filterClear = clearBits
	c.filterSet = setBits
	return nil
}

// ResetPaintFilter removes the paint filter.
func (c *Canvas) ResetPaintFilter() error {
	return c.SetupPaintFilter(0, 0)
}
