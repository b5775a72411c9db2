package canvas

import "github.com/gogpu/canvas/render"

// HandoffInfo is the snapshot an external draw callback receives: the
// frame dimensions, the device-space clip bounds, the transform in
// effect, and the handle to the native device the callback may draw
// through.
type HandoffInfo struct {
	Width  int
	Height int

	ClipLeft   int
	ClipTop    int
	ClipRight  int
	ClipBottom int

	Transform Matrix
	Device    render.DeviceHandle
}

// Functor is an external draw callback invoked through CallDrawFunctor.
// Draw runs inside an interrupt bracket: the engine's batches are
// flushed and its device state is synchronized around the call. A
// functor that needs engine draws re-enters through Resume and
// Interrupt on the renderer that invoked it.
//
// Draw returns the device-space damage it produced and a Status.
type Functor interface {
	Draw(info HandoffInfo) (Rect, Status)
}

// FunctorFunc adapts a function to the Functor interface.
type FunctorFunc func(info HandoffInfo) (Rect, Status)

// Draw calls fn.
func (fn FunctorFunc) Draw(info HandoffInfo) (Rect, Status) {
	return fn(info)
}

// Interrupt flushes deferred work and device state so external code
// observes the frame exactly as drawn so far. Brackets nest; only the
// outermost transition flushes. While a bracket is open, draw and
// state-mutating calls are rejected.
func (c *Canvas) Interrupt() error {
	if !c.active {
		return ErrIllegalState
	}
	if c.interruptDepth == 0 {
		c.flushBatch()
		if err := c.dev.Flush(); err != nil {
			Logger().Warn("canvas: device flush on interrupt failed",
				"renderer", c.name, "err", err)
		}
	}
	c.interruptDepth++
	return nil
}

// Resume closes one bracket level, re-establishing engine assumptions
// after external code may have touched the shared device. Unbalanced
// calls return ErrIllegalState.
func (c *Canvas) Resume() error {
	if !c.active {
		return ErrIllegalState
	}
	if c.interruptDepth == 0 {
		return ErrIllegalState
	}
	c.interruptDepth--
	if c.interruptDepth == 0 {
		if err := c.dev.Sync(); err != nil {
			Logger().Warn("canvas: device sync on resume failed",
				"renderer", c.name, "err", err)
		}
	}
	return nil
}

// CallDrawFunctor invokes fn inside an Interrupt/Resume bracket and
// returns the damage it reported. The bracket is never recorded; it is
// an execution-time synchronization detail.
func (c *Canvas) CallDrawFunctor(fn Functor) (Rect, Status) {
	if !c.usable() {
		return EmptyRect(), StatusIllegalState
	}
	if fn == nil {
		return EmptyRect(), StatusSkipped
	}
	if err := c.Interrupt(); err != nil {
		return EmptyRect(), StatusFailed
	}
	clip := c.deviceClipBounds()
	damage, st := fn.Draw(HandoffInfo{
		Width:      c.frameW,
		Height:     c.frameH,
		ClipLeft:   clip.L,
		ClipTop:    clip.T,
		ClipRight:  clip.R,
		ClipBottom: clip.B,
		Transform:  c.matrix,
		Device:     c.handle,
	})
	if err := c.Resume(); err != nil {
		Logger().Warn("canvas: unbalanced functor bracket", "renderer", c.name, "err", err)
	}
	if st == StatusFailed {
		Logger().Warn("canvas: draw functor failed", "renderer", c.name)
	}
	return damage, st
}
