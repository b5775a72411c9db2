package canvas

import "github.com/gogpu/canvas/region"

// clipState is the tagged clip variant: a plain rectangle while the
// composition stays rectangle-representable, a normalized span region
// afterwards. Both forms live in device space.
type clipState struct {
	isRect bool
	rect   region.Rect
	rgn    region.Region
}

func clipFromRect(r region.Rect) clipState {
	return clipState{isRect: true, rect: r}
}

// clipFromRegion collapses a region back to the rectangle fast path when
// it is rectangle-shaped, keeping the representation canonical.
func clipFromRegion(g region.Region) clipState {
	if g.IsEmpty() || g.IsRect() {
		return clipState{isRect: true, rect: g.Bounds()}
	}
	return clipState{rgn: g}
}

func (c clipState) isEmpty() bool {
	if c.isRect {
		return c.rect.Empty()
	}
	return c.rgn.IsEmpty()
}

// bounds returns the axis-aligned device-space bounds of the clip.
func (c clipState) bounds() region.Rect {
	if c.isRect {
		return c.rect
	}
	return c.rgn.Bounds()
}

// asRegion normalizes the clip to its span-region form. The rectangle
// fast path converts lazily, only when exact composition is required.
func (c clipState) asRegion() region.Region {
	if c.isRect {
		return region.FromRect(c.rect)
	}
	return c.rgn
}

// contains reports whether the clip fully covers the rectangle.
func (c clipState) contains(r region.Rect) bool {
	if c.isRect {
		return c.rect.Contains(r)
	}
	return c.rgn.ContainsRect(r)
}

// overlaps reports whether the clip intersects the rectangle.
func (c clipState) overlaps(r region.Rect) bool {
	if c.isRect {
		return c.rect.Overlaps(r)
	}
	return c.rgn.Overlaps(r)
}

// combineRect merges a device-space rectangle into the clip under op.
// Intersect against a rectangular clip keeps the fast path; everything
// else normalizes.
func (c clipState) combineRect(r region.Rect, op ClipOp) clipState {
	if op == ClipReplace {
		return clipFromRect(r)
	}
	if c.isRect && op == ClipIntersect {
		return clipFromRect(c.rect.Intersect(r))
	}
	return c.combineRegion(region.FromRect(r), op)
}

// combineRegion merges a device-space region into the clip under op.
func (c clipState) combineRegion(g region.Region, op ClipOp) clipState {
	if op == ClipReplace {
		return clipFromRegion(g)
	}
	return clipFromRegion(region.Combine(c.asRegion(), g, op.regionOp()))
}
