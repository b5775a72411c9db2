package canvas

import "github.com/gogpu/canvas/region"

// ClipRect combines the rectangle, mapped through the current transform,
// with the clip. Returns whether the clip is still non-empty.
func (c *Canvas) ClipRect(r Rect, op ClipOp) (bool, error) {
	if !c.usable() {
		return false, ErrIllegalState
	}
	c.flushBatch()
	return c.clipRectOp(r, op), nil
}

// ClipPath combines the path, mapped through the current transform, with
// the clip. Returns whether the clip is still non-empty.
func (c *Canvas) ClipPath(path *Path, op ClipOp) (bool, error) {
	if !c.usable() {
		return false, ErrIllegalState
	}
	c.flushBatch()
	return c.clipPathOp(path, op), nil
}

// ClipRegion combines a device-space region with the clip, bypassing the
// current transform. Returns whether the clip is still non-empty.
func (c *Canvas) ClipRegion(rgn region.Region, op ClipOp) (bool, error) {
	if !c.usable() {
		return false, ErrIllegalState
	}
	c.flushBatch()
	return c.clipRegionOp(rgn, op), nil
}

// ClipBounds returns the conservative bounds of the clip in local
// coordinates. An empty clip yields the empty rectangle.
func (c *Canvas) ClipBounds() Rect {
	return c.clipBoundsLocal()
}

// QuickRejectConservative reports whether the rectangle, mapped through
// the current transform, falls entirely outside the clip bounds. It
// compares bounding boxes only, so false negatives are possible but a
// true result is definite. The clip is never modified.
func (c *Canvas) QuickRejectConservative(left, top, right, bottom float32) bool {
	return c.quickReject(left, top, right, bottom)
}
