package canvas

import (
	"math"

	"github.com/gogpu/canvas/region"
)

// deferredText is one batched text submission. The paint is resolved at
// submission time; every state mutation flushes the batch first, so the
// state a deferred run draws under is the state it was submitted under.
type deferredText struct {
	run   *TextRun
	x, y  float32
	paint Paint
}

// beginDraw validates draw preconditions and drains the deferred text
// batch: a draw that is not itself deferred must not be overtaken by
// text submitted before it.
func (c *Canvas) beginDraw() Status {
	if !c.usable() {
		return StatusIllegalState
	}
	c.flushBatch()
	return StatusDone
}

// flushBatch draws the deferred text batch in submission order.
func (c *Canvas) flushBatch() {
	if len(c.batch) == 0 {
		return
	}
	for i := range c.batch {
		d := &c.batch[i]
		if st := c.emitTextRun(d.run, d.x, d.y, &d.paint); st == StatusFailed {
			Logger().Warn("canvas: deferred text draw failed", "renderer", c.name)
		}
	}
	c.batch = c.batch[:0]
}

// fillDevice intersects a device-space shape with the clip and hands the
// surviving spans to the device.
func (c *Canvas) fillDevice(shape region.Region, eff *Paint) Status {
	clipped := region.Combine(shape, c.clip.asRegion(), region.OpIntersect)
	if clipped.IsEmpty() {
		return StatusSkipped
	}
	if err := c.dev.FillRegion(clipped, eff); err != nil {
		Logger().Error("canvas: fill failed", "renderer", c.name, "err", err)
		return StatusFailed
	}
	return StatusDone
}

// DrawColor fills the entire clip with the color under the blend mode,
// ignoring the current transform.
func (c *Canvas) DrawColor(col Color, mode BlendMode) Status {
	if st := c.beginDraw(); st != StatusDone {
		return st
	}
	if c.clip.isEmpty() {
		return StatusSkipped
	}
	paint := Paint{Color: col, Blend: mode}
	if err := c.dev.FillRegion(c.clip.asRegion(), &paint); err != nil {
		Logger().Error("canvas: color fill failed", "renderer", c.name, "err", err)
		return StatusFailed
	}
	return StatusDone
}

// DrawRect fills the rectangle with the paint.
func (c *Canvas) DrawRect(r Rect, paint *Paint) Status {
	if st := c.beginDraw(); st != StatusDone {
		return st
	}
	eff := c.resolvePaint(paint)
	return c.drawRect(r, &eff)
}

// DrawRects fills each rectangle in turn. The result is StatusDone when
// any rectangle drew, StatusSkipped when none did.
func (c *Canvas) DrawRects(rects []Rect, paint *Paint) Status {
	if st := c.beginDraw(); st != StatusDone {
		return st
	}
	if len(rects) == 0 {
		return StatusSkipped
	}
	eff := c.resolvePaint(paint)
	result := StatusSkipped
	for _, r := range rects {
		switch st := c.drawRect(r, &eff); st {
		case StatusFailed:
			return StatusFailed
		case StatusDone:
			result = StatusDone
		}
	}
	return result
}

// drawRect is DrawRect after validation and paint resolution.
func (c *Canvas) drawRect(r Rect, eff *Paint) Status {
	if r.IsEmpty() {
		return StatusSkipped
	}
	if eff.Style == StyleFill && c.matrix.RectStaysRect() {
		if c.quickReject(r.MinX, r.MinY, r.MaxX, r.MaxY) {
			return StatusSkipped
		}
		dev := c.matrix.TransformRect(r).RoundOut()
		return c.fillDevice(region.FromRect(dev), eff)
	}
	p := NewPath()
	p.Rectangle(r.MinX, r.MinY, r.Width(), r.Height())
	return c.drawPath(p, eff)
}

// DrawRoundRect fills a rectangle with elliptical corners.
func (c *Canvas) DrawRoundRect(r Rect, rx, ry float32, paint *Paint) Status {
	if st := c.beginDraw(); st != StatusDone {
		return st
	}
	if r.IsEmpty() {
		return StatusSkipped
	}
	eff := c.resolvePaint(paint)
	if rx <= 0 || ry <= 0 {
		return c.drawRect(r, &eff)
	}
	p := NewPath()
	p.RoundedRectangle(r.MinX, r.MinY, r.Width(), r.Height(), rx, ry)
	return c.drawPath(p, &eff)
}

// DrawCircle fills a circle.
func (c *Canvas) DrawCircle(cx, cy, radius float32, paint *Paint) Status {
	if st := c.beginDraw(); st != StatusDone {
		return st
	}
	if radius <= 0 {
		return StatusSkipped
	}
	eff := c.resolvePaint(paint)
	p := NewPath()
	p.Circle(cx, cy, radius)
	return c.drawPath(p, &eff)
}

// DrawOval fills the ellipse inscribed in r.
func (c *Canvas) DrawOval(r Rect, paint *Paint) Status {
	if st := c.beginDraw(); st != StatusDone {
		return st
	}
	if r.IsEmpty() {
		return StatusSkipped
	}
	eff := c.resolvePaint(paint)
	p := NewPath()
	p.Ellipse((r.MinX+r.MaxX)/2, (r.MinY+r.MaxY)/2, r.Width()/2, r.Height()/2)
	return c.drawPath(p, &eff)
}

// DrawArc fills an arc of the ellipse inscribed in r, from startAngle
// over sweepAngle (radians). useCenter closes the arc through the
// center, producing a wedge.
func (c *Canvas) DrawArc(r Rect, startAngle, sweepAngle float32, useCenter bool, paint *Paint) Status {
	if st := c.beginDraw(); st != StatusDone {
		return st
	}
	if r.IsEmpty() || sweepAngle == 0 {
		return StatusSkipped
	}
	eff := c.resolvePaint(paint)
	cx := (r.MinX + r.MaxX) / 2
	cy := (r.MinY + r.MaxY) / 2
	if math.Abs(float64(sweepAngle)) >= 2*math.Pi {
		p := NewPath()
		p.Ellipse(cx, cy, r.Width()/2, r.Height()/2)
		return c.drawPath(p, &eff)
	}
	// A negative sweep covers the same points as the positive sweep
	// from the other endpoint.
	a1, a2 := startAngle, startAngle+sweepAngle
	if a2 < a1 {
		a1, a2 = a2, a1
	}
	p := NewPath()
	if useCenter {
		p.MoveTo(cx, cy)
	}
	p.EllipticalArc(cx, cy, r.Width()/2, r.Height()/2, a1, a2)
	if useCenter {
		p.Close()
	}
	return c.drawPath(p, &eff)
}

// DrawPath fills the path under its fill rule.
func (c *Canvas) DrawPath(p *Path, paint *Paint) Status {
	if st := c.beginDraw(); st != StatusDone {
		return st
	}
	eff := c.resolvePaint(paint)
	return c.drawPath(p, &eff)
}

// drawPath rasterizes the path under the effective paint and fills the
// covered device pixels.
func (c *Canvas) drawPath(p *Path, eff *Paint) Status {
	if p == nil || p.IsEmpty() {
		return StatusSkipped
	}
	b := p.Bounds()
	if eff.Style != StyleFill {
		b = b.Outset(eff.StrokeWidth/2 + 1)
	}
	if c.quickReject(b.MinX, b.MinY, b.MaxX, b.MaxY) {
		return StatusSkipped
	}
	contours, closed := p.Transform(c.matrix).flatten()
	var shape region.Region
	switch eff.Style {
	case StyleStroke:
		quads := strokeOutline(contours, closed, c.deviceStrokeWidth(eff))
		shape = polygonsToRegion(quads, FillNonZero)
	case StyleFillAndStroke:
		quads := strokeOutline(contours, closed, c.deviceStrokeWidth(eff))
		shape = region.Combine(
			polygonsToRegion(contours, p.Fill),
			polygonsToRegion(quads, FillNonZero),
			region.OpUnion,
		)
	default:
		shape = polygonsToRegion(contours, p.Fill)
	}
	return c.fillDevice(shape, eff)
}

// deviceStrokeWidth maps the paint stroke width into device pixels,
// flooring at one pixel so hairlines stay visible.
func (c *Canvas) deviceStrokeWidth(eff *Paint) float32 {
	w := eff.StrokeWidth * c.matrix.scaleFactor()
	if w < 1 {
		w = 1
	}
	return w
}

// strokeOutline expands device-space polylines into filled quads of the
// given width. Interior joints get square patches so adjacent segments
// connect; closed contours stroke the wrap-around segment too.
func strokeOutline(contours [][]Point, closed []bool, width float32) [][]Point {
	half := width / 2
	var out [][]Point
	for ci, pts := range contours {
		n := len(pts)
		if n == 0 {
			continue
		}
		if n == 1 {
			out = append(out, squareAt(pts[0], half))
			continue
		}
		segs := n - 1
		if closed[ci] {
			segs = n
		}
		for i := 0; i < segs; i++ {
			if quad, ok := segmentQuad(pts[i], pts[(i+1)%n], half); ok {
				out = append(out, quad)
			}
		}
		for i, pt := range pts {
			if !closed[ci] && (i == 0 || i == n-1) {
				continue
			}
			out = append(out, squareAt(pt, half))
		}
	}
	return out
}

// segmentQuad returns the filled quad covering a segment stroked at the
// given half-width. Degenerate segments produce no quad.
func segmentQuad(p0, p1 Point, half float32) ([]Point, bool) {
	d := p1.Sub(p0)
	l := d.Length()
	if l == 0 {
		return nil, false
	}
	n := Point{X: -d.Y / l * half, Y: d.X / l * half}
	return []Point{p0.Add(n), p1.Add(n), p1.Sub(n), p0.Sub(n)}, true
}

// squareAt returns the axis-aligned square of the given half-side
// centered on p.
func squareAt(p Point, half float32) []Point {
	return []Point{
		{X: p.X - half, Y: p.Y - half},
		{X: p.X + half, Y: p.Y - half},
		{X: p.X + half, Y: p.Y + half},
		{X: p.X - half, Y: p.Y + half},
	}
}

// DrawLines strokes independent segments; pts holds x0 y0 x1 y1 per
// segment. Trailing floats short of a full segment are ignored.
func (c *Canvas) DrawLines(pts []float32, paint *Paint) Status {
	if st := c.beginDraw(); st != StatusDone {
		return st
	}
	if len(pts) < 4 {
		return StatusSkipped
	}
	eff := c.resolvePaint(paint)
	bounds := EmptyRect()
	for i := 0; i+3 < len(pts); i += 4 {
		bounds = bounds.UnionPoint(pts[i], pts[i+1])
		bounds = bounds.UnionPoint(pts[i+2], pts[i+3])
	}
	// A horizontal or vertical line has a zero-area bounding box but a
	// visible stroke width, so outset before rejecting.
	b := bounds.Outset(max32(eff.StrokeWidth, 1)/2 + 1)
	if c.quickReject(b.MinX, b.MinY, b.MaxX, b.MaxY) {
		return StatusSkipped
	}
	half := c.deviceStrokeWidth(&eff) / 2
	var quads [][]Point
	for i := 0; i+3 < len(pts); i += 4 {
		p0 := c.matrix.TransformPoint(Point{X: pts[i], Y: pts[i+1]})
		p1 := c.matrix.TransformPoint(Point{X: pts[i+2], Y: pts[i+3]})
		if quad, ok := segmentQuad(p0, p1, half); ok {
			quads = append(quads, quad)
		}
	}
	if len(quads) == 0 {
		return StatusSkipped
	}
	return c.fillDevice(polygonsToRegion(quads, FillNonZero), &eff)
}

// DrawPoints draws square caps at each point; pts holds x y pairs.
func (c *Canvas) DrawPoints(pts []float32, paint *Paint) Status {
	if st := c.beginDraw(); st != StatusDone {
		return st
	}
	if len(pts) < 2 {
		return StatusSkipped
	}
	eff := c.resolvePaint(paint)
	bounds := EmptyRect()
	for i := 0; i+1 < len(pts); i += 2 {
		bounds = bounds.UnionPoint(pts[i], pts[i+1])
	}
	b := bounds.Outset(max32(eff.StrokeWidth, 1)/2 + 1)
	if c.quickReject(b.MinX, b.MinY, b.MaxX, b.MaxY) {
		return StatusSkipped
	}
	half := c.deviceStrokeWidth(&eff) / 2
	quads := make([][]Point, 0, len(pts)/2)
	for i := 0; i+1 < len(pts); i += 2 {
		p := c.matrix.TransformPoint(Point{X: pts[i], Y: pts[i+1]})
		quads = append(quads, squareAt(p, half))
	}
	return c.fillDevice(polygonsToRegion(quads, FillNonZero), &eff)
}

// drawImage maps the src portion of the bitmap through srcToDev, clips
// the destination footprint and hands sampling to the device.
func (c *Canvas) drawImage(b *Bitmap, src Rect, srcToDev Matrix, eff *Paint) Status {
	if b == nil || b.IsEmpty() || src.IsEmpty() {
		return StatusSkipped
	}
	quad := [][]Point{{
		srcToDev.TransformPoint(Point{X: src.MinX, Y: src.MinY}),
		srcToDev.TransformPoint(Point{X: src.MaxX, Y: src.MinY}),
		srcToDev.TransformPoint(Point{X: src.MaxX, Y: src.MaxY}),
		srcToDev.TransformPoint(Point{X: src.MinX, Y: src.MaxY}),
	}}
	clipped := region.Combine(polygonsToRegion(quad, FillNonZero), c.clip.asRegion(), region.OpIntersect)
	if clipped.IsEmpty() {
		return StatusSkipped
	}
	if err := c.dev.DrawImage(b, srcToDev, clipped, eff); err != nil {
		Logger().Error("canvas: image draw failed", "renderer", c.name, "err", err)
		return StatusFailed
	}
	return StatusDone
}

// DrawBitmap draws the bitmap with its top-left corner at (x, y).
func (c *Canvas) DrawBitmap(b *Bitmap, x, y float32, paint *Paint) Status {
	if st := c.beginDraw(); st != StatusDone {
		return st
	}
	if b == nil || b.IsEmpty() {
		return StatusSkipped
	}
	eff := c.resolvePaint(paint)
	return c.drawImage(b, b.Bounds(), c.matrix.Multiply(Translation(x, y)), &eff)
}

// DrawBitmapMatrix draws the bitmap transformed by m concatenated onto
// the current matrix.
func (c *Canvas) DrawBitmapMatrix(b *Bitmap, m Matrix, paint *Paint) Status {
	if st := c.beginDraw(); st != StatusDone {
		return st
	}
	if b == nil || b.IsEmpty() {
		return StatusSkipped
	}
	eff := c.resolvePaint(paint)
	return c.drawImage(b, b.Bounds(), c.matrix.Multiply(m), &eff)
}

// DrawBitmapRect draws the src portion of the bitmap mapped onto the
// dst rectangle.
func (c *Canvas) DrawBitmapRect(b *Bitmap, src, dst Rect, paint *Paint) Status {
	if st := c.beginDraw(); st != StatusDone {
		return st
	}
	if b == nil || b.IsEmpty() {
		return StatusSkipped
	}
	src = src.Intersect(b.Bounds())
	if src.IsEmpty() || dst.IsEmpty() {
		return StatusSkipped
	}
	eff := c.resolvePaint(paint)
	srcToDev := c.matrix.Multiply(mapRectToRect(src, dst))
	return c.drawImage(b, src, srcToDev, &eff)
}

// DrawBitmapData draws raw premultiplied RGBA pixels at (x, y).
func (c *Canvas) DrawBitmapData(data []uint8, width, height int, x, y float32, paint *Paint) Status {
	if st := c.beginDraw(); st != StatusDone {
		return st
	}
	if width <= 0 || height <= 0 {
		return StatusSkipped
	}
	if len(data) < width*height*4 {
		Logger().Warn("canvas: bitmap data shorter than dimensions",
			"renderer", c.name, "width", width, "height", height, "len", len(data))
		return StatusFailed
	}
	eff := c.resolvePaint(paint)
	b := BitmapFromData(data, width, height)
	return c.drawImage(b, b.Bounds(), c.matrix.Multiply(Translation(x, y)), &eff)
}

// DrawBitmapMesh maps the bitmap onto a grid of quads; verts holds
// (meshWidth+1)*(meshHeight+1) x y pairs in row-major order. colors,
// when non-nil, tint each vertex. Each cell samples its share of the
// bitmap mapped onto the cell's device-space footprint.
func (c *Canvas) DrawBitmapMesh(b *Bitmap, meshWidth, meshHeight int, verts []float32, colors []Color, paint *Paint) Status {
	if st := c.beginDraw(); st != StatusDone {
		return st
	}
	if b == nil || b.IsEmpty() || meshWidth < 1 || meshHeight < 1 {
		return StatusSkipped
	}
	cols := meshWidth + 1
	rows := meshHeight + 1
	if len(verts) < cols*rows*2 {
		Logger().Warn("canvas: mesh vertex count mismatch",
			"renderer", c.name, "want", cols*rows*2, "got", len(verts))
		return StatusFailed
	}
	if colors != nil && len(colors) < cols*rows {
		Logger().Warn("canvas: mesh color count mismatch",
			"renderer", c.name, "want", cols*rows, "got", len(colors))
		return StatusFailed
	}
	eff := c.resolvePaint(paint)

	cellW := float32(b.Width()) / float32(meshWidth)
	cellH := float32(b.Height()) / float32(meshHeight)
	vert := func(ix, iy int) Point {
		i := (iy*cols + ix) * 2
		return c.matrix.TransformPoint(Point{X: verts[i], Y: verts[i+1]})
	}

	result := StatusSkipped
	for iy := 0; iy < meshHeight; iy++ {
		for ix := 0; ix < meshWidth; ix++ {
			corners := []Point{vert(ix, iy), vert(ix+1, iy), vert(ix+1, iy+1), vert(ix, iy+1)}
			shape := polygonsToRegion([][]Point{corners}, FillNonZero)
			clipped := region.Combine(shape, c.clip.asRegion(), region.OpIntersect)
			if clipped.IsEmpty() {
				continue
			}
			dst := EmptyRect()
			for _, pt := range corners {
				dst = dst.UnionPoint(pt.X, pt.Y)
			}
			src := RectWH(float32(ix)*cellW, float32(iy)*cellH, cellW, cellH)
			cellPaint := eff
			if colors != nil {
				tint := averageColor(
					colors[iy*cols+ix], colors[iy*cols+ix+1],
					colors[(iy+1)*cols+ix+1], colors[(iy+1)*cols+ix],
				)
				cellPaint.ColorFilter = tintFilter{c: tint, next: eff.ColorFilter}
			}
			if err := c.dev.DrawImage(b, mapRectToRect(src, dst), clipped, &cellPaint); err != nil {
				Logger().Error("canvas: mesh cell draw failed", "renderer", c.name, "err", err)
				return StatusFailed
			}
			result = StatusDone
		}
	}
	return result
}

// DrawPatch stretches the bitmap onto dst per the patch divisions:
// strips between division pairs stretch, strips outside them keep their
// pixel size.
func (c *Canvas) DrawPatch(b *Bitmap, patch Patch, dst Rect, paint *Paint) Status {
	if st := c.beginDraw(); st != StatusDone {
		return st
	}
	if b == nil || b.IsEmpty() || dst.IsEmpty() {
		return StatusSkipped
	}
	eff := c.resolvePaint(paint)
	xs := patchSegments(patch.XDivs, b.Width(), dst.Width())
	ys := patchSegments(patch.YDivs, b.Height(), dst.Height())
	result := StatusSkipped
	for _, sy := range ys {
		for _, sx := range xs {
			src := RectLTRB(sx.src0, sy.src0, sx.src1, sy.src1)
			cell := RectLTRB(dst.MinX+sx.dst0, dst.MinY+sy.dst0, dst.MinX+sx.dst1, dst.MinY+sy.dst1)
			if src.IsEmpty() || cell.IsEmpty() {
				continue
			}
			st := c.drawImage(b, src, c.matrix.Multiply(mapRectToRect(src, cell)), &eff)
			if st == StatusFailed {
				return StatusFailed
			}
			if st == StatusDone {
				result = StatusDone
			}
		}
	}
	return result
}

// patchSegment is one strip of a nine-patch along an axis: the source
// span in bitmap pixels and the destination span relative to the
// destination origin.
type patchSegment struct {
	src0, src1 float32
	dst0, dst1 float32
}

// patchSegments splits one axis by the stretchable intervals in divs.
// Fixed strips keep their pixel size; stretchable strips share the
// remaining destination space proportionally. When the fixed strips
// alone exceed the destination they scale down and the stretchable
// strips collapse.
func patchSegments(divs []int, srcSize int, dstSize float32) []patchSegment {
	if srcSize <= 0 || dstSize <= 0 {
		return nil
	}
	bounds := []int{0}
	for _, d := range divs {
		if d < 0 {
			d = 0
		}
		if d > srcSize {
			d = srcSize
		}
		if d < bounds[len(bounds)-1] {
			d = bounds[len(bounds)-1]
		}
		bounds = append(bounds, d)
	}
	bounds = append(bounds, srcSize)

	// Interval i spans [bounds[i], bounds[i+1]); odd intervals are the
	// stretchable ones.
	var fixed, stretch int
	for i := 0; i+1 < len(bounds); i++ {
		w := bounds[i+1] - bounds[i]
		if i%2 == 1 {
			stretch += w
		} else {
			fixed += w
		}
	}
	fixedScale := float32(1)
	stretchScale := float32(0)
	switch {
	case stretch == 0:
		fixedScale = dstSize / float32(fixed)
	case float32(fixed) >= dstSize:
		fixedScale = dstSize / float32(fixed)
	default:
		stretchScale = (dstSize - float32(fixed)) / float32(stretch)
	}

	var out []patchSegment
	pos := float32(0)
	for i := 0; i+1 < len(bounds); i++ {
		w := bounds[i+1] - bounds[i]
		if w <= 0 {
			continue
		}
		dw := float32(w) * fixedScale
		if i%2 == 1 {
			dw = float32(w) * stretchScale
		}
		out = append(out, patchSegment{
			src0: float32(bounds[i]), src1: float32(bounds[i+1]),
			dst0: pos, dst1: pos + dw,
		})
		pos += dw
	}
	return out
}

// mapRectToRect returns the affine mapping src onto dst.
func mapRectToRect(src, dst Rect) Matrix {
	sx := dst.Width() / src.Width()
	sy := dst.Height() / src.Height()
	return Translation(dst.MinX, dst.MinY).
		Multiply(Scaling(sx, sy)).
		Multiply(Translation(-src.MinX, -src.MinY))
}

// tintFilter modulates every pixel by a constant color, chained after
// an inner filter when one is present.
type tintFilter struct {
	c    Color
	next ColorFilter
}

func (t tintFilter) Filter(c Color) Color {
	if t.next != nil {
		c = t.next.Filter(c)
	}
	return ARGB(
		mulChannel(c.Alpha(), t.c.Alpha()),
		mulChannel(c.Red(), t.c.Red()),
		mulChannel(c.Green(), t.c.Green()),
		mulChannel(c.Blue(), t.c.Blue()),
	)
}

func mulChannel(a, b uint8) uint8 {
	return uint8((int(a)*int(b) + 127) / 255)
}

func averageColor(c0, c1, c2, c3 Color) Color {
	avg := func(a, b, c, d uint8) uint8 {
		return uint8((int(a) + int(b) + int(c) + int(d) + 2) / 4)
	}
	return ARGB(
		avg(c0.Alpha(), c1.Alpha(), c2.Alpha(), c3.Alpha()),
		avg(c0.Red(), c1.Red(), c2.Red(), c3.Red()),
		avg(c0.Green(), c1.Green(), c2.Green(), c3.Green()),
		avg(c0.Blue(), c1.Blue(), c2.Blue(), c3.Blue()),
	)
}

// DrawText draws a shaped run with its origin at (x, y) on the baseline.
// ModeDefer batches the run; the batch flushes before any other draw or
// state mutation, preserving submission order. ModeFlush drains the
// batch and then draws immediately.
func (c *Canvas) DrawText(run *TextRun, x, y float32, paint *Paint, mode DrawOpMode) Status {
	if !c.usable() {
		return StatusIllegalState
	}
	if mode == ModeDefer {
		if run.IsEmpty() {
			return StatusSkipped
		}
		b := run.Bounds(x, y)
		if c.shadow == nil && c.quickReject(b.MinX, b.MinY, b.MaxX, b.MaxY) {
			return StatusSkipped
		}
		c.batch = append(c.batch, deferredText{run: run, x: x, y: y, paint: c.resolvePaint(paint)})
		return StatusDone
	}
	c.flushBatch()
	eff := c.resolvePaint(paint)
	return c.emitTextRun(run, x, y, &eff)
}

// DrawPosText draws a run whose glyph positions are absolute.
func (c *Canvas) DrawPosText(run *TextRun, paint *Paint) Status {
	if st := c.beginDraw(); st != StatusDone {
		return st
	}
	eff := c.resolvePaint(paint)
	return c.emitTextRun(run, 0, 0, &eff)
}

// emitTextRun rasterizes glyph outlines and fills them, shadow first
// when one is installed.
func (c *Canvas) emitTextRun(run *TextRun, x, y float32, eff *Paint) Status {
	if run.IsEmpty() {
		return StatusSkipped
	}
	b := run.Bounds(x, y)
	if c.shadow != nil {
		b = b.Union(b.Translate(c.shadow.DX, c.shadow.DY).Outset(c.shadow.Radius))
	}
	if c.quickReject(b.MinX, b.MinY, b.MaxX, b.MaxY) {
		return StatusSkipped
	}
	if run.Source == nil {
		Logger().Debug("canvas: text run has no glyph source", "renderer", c.name)
		return StatusSkipped
	}
	var contours [][]Point
	for _, g := range run.Glyphs {
		path, ok := run.Source.GlyphPath(g.ID, run.Size)
		if !ok || path.IsEmpty() {
			continue
		}
		m := c.matrix.Multiply(Translation(x+g.X, y+g.Y))
		contours = append(contours, path.Transform(m).Flatten()...)
	}
	if len(contours) == 0 {
		return StatusSkipped
	}
	shape := polygonsToRegion(contours, FillNonZero)
	if c.shadow != nil {
		sh := *eff
		sh.Shader = nil
		sh.Color = c.shadow.Color.ModulateAlpha(eff.Color.Alpha())
		off := shape.Translate(
			int(math.Round(float64(c.shadow.DX))),
			int(math.Round(float64(c.shadow.DY))),
		)
		if st := c.fillDevice(off, &sh); st == StatusFailed {
			return StatusFailed
		}
	}
	return c.fillDevice(shape, eff)
}

// DrawTextOnPath draws a run following the path. Each glyph is placed
// with its advance center on the path, rotated to the local tangent;
// hOffset shifts glyphs along the path, vOffset above it. Glyphs whose
// center falls past either end are dropped.
func (c *Canvas) DrawTextOnPath(run *TextRun, p *Path, hOffset, vOffset float32, paint *Paint) Status {
	if st := c.beginDraw(); st != StatusDone {
		return st
	}
	if run.IsEmpty() || p == nil || p.IsEmpty() {
		return StatusSkipped
	}
	if run.Source == nil {
		Logger().Debug("canvas: text run has no glyph source", "renderer", c.name)
		return StatusSkipped
	}
	meas := newPathMeasure(p)
	if meas.length == 0 {
		return StatusSkipped
	}
	eff := c.resolvePaint(paint)
	var contours [][]Point
	for _, g := range run.Glyphs {
		d := hOffset + g.X + g.XAdvance/2
		if d < 0 || d > meas.length {
			continue
		}
		glyphPath, ok := run.Source.GlyphPath(g.ID, run.Size)
		if !ok || glyphPath.IsEmpty() {
			continue
		}
		pos, tan := meas.at(d)
		angle := float32(math.Atan2(float64(tan.Y), float64(tan.X)))
		m := c.matrix.
			Multiply(Translation(pos.X, pos.Y)).
			Multiply(Rotation(angle)).
			Multiply(Translation(-g.XAdvance/2, g.Y-vOffset))
		contours = append(contours, glyphPath.Transform(m).Flatten()...)
	}
	if len(contours) == 0 {
		return StatusSkipped
	}
	return c.fillDevice(polygonsToRegion(contours, FillNonZero), &eff)
}

// measureSeg is one line segment of a measured path with its cumulative
// start distance.
type measureSeg struct {
	p0, p1     Point
	start, len float32
}

// pathMeasure samples positions along a flattened path by arc length.
type pathMeasure struct {
	segs   []measureSeg
	length float32
}

func newPathMeasure(p *Path) *pathMeasure {
	m := &pathMeasure{}
	contours, closed := p.flatten()
	for ci, pts := range contours {
		n := len(pts)
		for i := 0; i+1 < n; i++ {
			m.addSeg(pts[i], pts[i+1])
		}
		if closed[ci] && n > 1 {
			m.addSeg(pts[n-1], pts[0])
		}
	}
	return m
}

func (m *pathMeasure) addSeg(p0, p1 Point) {
	l := p0.Distance(p1)
	if l == 0 {
		return
	}
	m.segs = append(m.segs, measureSeg{p0: p0, p1: p1, start: m.length, len: l})
	m.length += l
}

// at returns the point and unit tangent at distance d, clamped to the
// path ends. Call only when the measure has segments.
func (m *pathMeasure) at(d float32) (Point, Point) {
	if d < 0 {
		d = 0
	}
	for _, s := range m.segs {
		if d <= s.start+s.len {
			t := (d - s.start) / s.len
			return s.p0.Lerp(s.p1, t), s.p1.Sub(s.p0).Normalize()
		}
	}
	last := m.segs[len(m.segs)-1]
	return last.p1, last.p1.Sub(last.p0).Normalize()
}

// DrawLayer composites pre-rendered layer content at (x, y). The layer's
// own alpha modulates the paint alpha; the layer's blend mode applies
// when the paint is nil.
func (c *Canvas) DrawLayer(l *Layer, x, y float32, paint *Paint) Status {
	if st := c.beginDraw(); st != StatusDone {
		return st
	}
	if l == nil || l.IsEmpty() {
		return StatusSkipped
	}
	eff := c.resolvePaint(paint)
	eff.Color = eff.Color.ModulateAlpha(l.Alpha())
	if paint == nil {
		eff.Blend = l.Mode()
	}
	b := l.Bitmap()
	return c.drawImage(b, b.Bounds(), c.matrix.Multiply(Translation(x, y)), &eff)
}

// DrawDisplayList replays a recorded command list against the current
// state and returns the device-space damage it may have produced. Entry
// state is restored on return, even when a command fails mid-replay,
// unless flags includes ReplayLeakState.
func (c *Canvas) DrawDisplayList(list DisplayList, flags ReplayFlags) (Rect, Status) {
	if !c.usable() {
		return EmptyRect(), StatusIllegalState
	}
	c.flushBatch()
	if list == nil || list.IsEmpty() {
		return EmptyRect(), StatusSkipped
	}
	b := list.Bounds()
	if c.quickReject(b.MinX, b.MinY, b.MaxX, b.MaxY) {
		return EmptyRect(), StatusSkipped
	}
	damage := c.matrix.TransformRect(b).Intersect(rectFromRegion(c.clip.bounds()))

	marker := 0
	if flags&ReplayLeakState == 0 {
		marker = c.push(SaveMatrixClip, nil)
	}
	if flags&ReplayClipChildren != 0 {
		c.clipRectOp(b, ClipIntersect)
	}
	st := list.Replay(c)
	if flags&ReplayLeakState == 0 {
		if err := c.RestoreToCount(marker); err != nil {
			Logger().Warn("canvas: replay left unbalanced state",
				"renderer", c.name, "err", err)
		}
	}
	return damage, st
}
