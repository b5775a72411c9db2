package canvas

import "math"

// FillRule specifies how to determine which areas are inside a path.
type FillRule int

const (
	// FillNonZero uses the non-zero winding rule.
	FillNonZero FillRule = iota
	// FillEvenOdd uses the even-odd rule.
	FillEvenOdd
)

// PathElement represents a single element in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo moves to a point without drawing.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// QuadTo draws a quadratic Bezier curve.
type QuadTo struct {
	Control Point
	Point   Point
}

func (QuadTo) isPathElement() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// Path represents a vector path.
type Path struct {
	// Fill selects the winding rule used when the path is filled or
	// installed as a clip.
	Fill FillRule

	elements []PathElement
	start    Point // Starting point of current subpath
	current  Point // Current point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		elements: make([]PathElement, 0, 16),
	}
}

// MoveTo moves to a point without drawing.
func (p *Path) MoveTo(x, y float32) {
	pt := Pt(x, y)
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
}

// LineTo draws a line to a point.
func (p *Path) LineTo(x, y float32) {
	pt := Pt(x, y)
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
}

// QuadraticTo draws a quadratic Bezier curve.
func (p *Path) QuadraticTo(cx, cy, x, y float32) {
	ctrl := Pt(cx, cy)
	pt := Pt(x, y)
	p.elements = append(p.elements, QuadTo{Control: ctrl, Point: pt})
	p.current = pt
}

// CubicTo draws a cubic Bezier curve.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float32) {
	ctrl1 := Pt(c1x, c1y)
	ctrl2 := Pt(c2x, c2y)
	pt := Pt(x, y)
	p.elements = append(p.elements, CubicTo{
		Control1: ctrl1,
		Control2: ctrl2,
		Point:    pt,
	})
	p.current = pt
}

// Close closes the current subpath by drawing a line to the start point.
func (p *Path) Close() {
	p.elements = append(p.elements, Close{})
	p.current = p.start
}

// Clear removes all elements from the path.
func (p *Path) Clear() {
	p.elements = p.elements[:0]
	p.start = Point{}
	p.current = Point{}
}

// Elements returns the path elements.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// IsEmpty returns true if the path has no elements.
func (p *Path) IsEmpty() bool {
	return p == nil || len(p.elements) == 0
}

// CurrentPoint returns the current point.
func (p *Path) CurrentPoint() Point {
	return p.current
}

// Transform applies a transformation matrix to all points in the path.
func (p *Path) Transform(m Matrix) *Path {
	result := NewPath()
	result.Fill = p.Fill
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			pt := m.TransformPoint(e.Point)
			result.MoveTo(pt.X, pt.Y)
		case LineTo:
			pt := m.TransformPoint(e.Point)
			result.LineTo(pt.X, pt.Y)
		case QuadTo:
			ctrl := m.TransformPoint(e.Control)
			pt := m.TransformPoint(e.Point)
			result.QuadraticTo(ctrl.X, ctrl.Y, pt.X, pt.Y)
		case CubicTo:
			ctrl1 := m.TransformPoint(e.Control1)
			ctrl2 := m.TransformPoint(e.Control2)
			pt := m.TransformPoint(e.Point)
			result.CubicTo(ctrl1.X, ctrl1.Y, ctrl2.X, ctrl2.Y, pt.X, pt.Y)
		case Close:
			result.Close()
		}
	}
	return result
}

// Clone creates a deep copy of the path.
func (p *Path) Clone() *Path {
	result := NewPath()
	result.Fill = p.Fill
	result.elements = make([]PathElement, len(p.elements))
	copy(result.elements, p.elements)
	result.start = p.start
	result.current = p.current
	return result
}

// Bounds returns the control-point bounding box of the path. It is
// conservative: the true filled area never extends beyond it.
func (p *Path) Bounds() Rect {
	out := EmptyRect()
	if p == nil {
		return out
	}
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			out = out.UnionPoint(e.Point.X, e.Point.Y)
		case LineTo:
			out = out.UnionPoint(e.Point.X, e.Point.Y)
		case QuadTo:
			out = out.UnionPoint(e.Control.X, e.Control.Y)
			out = out.UnionPoint(e.Point.X, e.Point.Y)
		case CubicTo:
			out = out.UnionPoint(e.Control1.X, e.Control1.Y)
			out = out.UnionPoint(e.Control2.X, e.Control2.Y)
			out = out.UnionPoint(e.Point.X, e.Point.Y)
		}
	}
	return out
}

// IsRect reports whether the path is a single axis-aligned rectangle,
// returning it when so. Used for the clip rectangle fast path.
func (p *Path) IsRect() (Rect, bool) {
	if p == nil {
		return Rect{}, false
	}
	var pts []Point
	closed := false
	for i, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			if i != 0 {
				return Rect{}, false
			}
			pts = append(pts, e.Point)
		case LineTo:
			if closed {
				return Rect{}, false
			}
			pts = append(pts, e.Point)
		case Close:
			if i != len(p.elements)-1 {
				return Rect{}, false
			}
			closed = true
		default:
			return Rect{}, false
		}
	}
	// Accept an explicit return to the start point before the close.
	if n := len(pts); n == 5 && pts[4] == pts[0] {
		pts = pts[:4]
	}
	if len(pts) != 4 || !closed {
		return Rect{}, false
	}
	for i := 0; i < 4; i++ {
		a, b := pts[i], pts[(i+1)%4]
		if a.X != b.X && a.Y != b.Y {
			return Rect{}, false
		}
	}
	r := EmptyRect()
	for _, pt := range pts {
		r = r.UnionPoint(pt.X, pt.Y)
	}
	if r.IsEmpty() {
		return Rect{}, false
	}
	return r, true
}

// Flatten converts the path into polygonal contours, approximating
// curves with fixed-step line segments. Contours are implicitly closed
// when filled.
func (p *Path) Flatten() [][]Point {
	contours, _ := p.flatten()
	return contours
}

// flatten additionally reports which contours were explicitly closed,
// which matters when stroking.
func (p *Path) flatten() ([][]Point, []bool) {
	var contours [][]Point
	var closed []bool
	var cur []Point
	var current Point

	flush := func(c bool) {
		if len(cur) >= 2 {
			contours = append(contours, cur)
			closed = append(closed, c)
		}
		cur = nil
	}

	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			flush(false)
			current = e.Point
			cur = append(cur, current)
		case LineTo:
			current = e.Point
			cur = append(cur, current)
		case QuadTo:
			prev := current
			const steps = 10
			for i := 1; i <= steps; i++ {
				t := float32(i) / steps
				cur = append(cur, evalQuad(prev, e.Control, e.Point, t))
			}
			current = e.Point
		case CubicTo:
			prev := current
			const steps = 16
			for i := 1; i <= steps; i++ {
				t := float32(i) / steps
				cur = append(cur, evalCubic(prev, e.Control1, e.Control2, e.Point, t))
			}
			current = e.Point
		case Close:
			if len(cur) > 0 {
				current = cur[0]
			}
			flush(true)
		}
	}
	flush(false)
	return contours, closed
}

// evalQuad evaluates a quadratic Bezier curve at parameter t.
func evalQuad(p0, p1, p2 Point, t float32) Point {
	s := 1 - t
	return Point{
		X: s*s*p0.X + 2*s*t*p1.X + t*t*p2.X,
		Y: s*s*p0.Y + 2*s*t*p1.Y + t*t*p2.Y,
	}
}

// evalCubic evaluates a cubic Bezier curve at parameter t.
func evalCubic(p0, p1, p2, p3 Point, t float32) Point {
	s := 1 - t
	s2 := s * s
	s3 := s2 * s
	t2 := t * t
	t3 := t2 * t
	return Point{
		X: s3*p0.X + 3*s2*t*p1.X + 3*s*t2*p2.X + t3*p3.X,
		Y: s3*p0.Y + 3*s2*t*p1.Y + 3*s*t2*p2.Y + t3*p3.Y,
	}
}

// Rectangle adds a rectangle to the path.
func (p *Path) Rectangle(x, y, w, h float32) {
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.Close()
}

// Circle adds a circle to the path using cubic Bezier curves.
func (p *Path) Circle(cx, cy, r float32) {
	// Magic constant for circle approximation with cubic Beziers
	const k = 0.5522847498307936 // 4/3 * (sqrt(2) - 1)
	offset := r * k

	p.MoveTo(cx+r, cy)
	p.CubicTo(cx+r, cy+offset, cx+offset, cy+r, cx, cy+r)
	p.CubicTo(cx-offset, cy+r, cx-r, cy+offset, cx-r, cy)
	p.CubicTo(cx-r, cy-offset, cx-offset, cy-r, cx, cy-r)
	p.CubicTo(cx+offset, cy-r, cx+r, cy-offset, cx+r, cy)
	p.Close()
}

// Ellipse adds an ellipse to the path.
func (p *Path) Ellipse(cx, cy, rx, ry float32) {
	const k = 0.5522847498307936
	ox := rx * k
	oy := ry * k

	p.MoveTo(cx+rx, cy)
	p.CubicTo(cx+rx, cy+oy, cx+ox, cy+ry, cx, cy+ry)
	p.CubicTo(cx-ox, cy+ry, cx-rx, cy+oy, cx-rx, cy)
	p.CubicTo(cx-rx, cy-oy, cx-ox, cy-ry, cx, cy-ry)
	p.CubicTo(cx+ox, cy-ry, cx+rx, cy-oy, cx+rx, cy)
	p.Close()
}

// EllipticalArc adds an arc of the axis-aligned ellipse centered at
// (cx, cy) with radii rx, ry, from angle1 to angle2 (in radians).
func (p *Path) EllipticalArc(cx, cy, rx, ry, angle1, angle2 float32) {
	const twoPi = 2 * math.Pi
	a1 := float64(angle1)
	a2 := float64(angle2)
	for a2 < a1 {
		a2 += twoPi
	}

	// Split into multiple cubic Bezier curves, at most 90 degrees each.
	const maxAngle = math.Pi / 2
	numSegments := int(math.Ceil((a2 - a1) / maxAngle))
	if numSegments < 1 {
		numSegments = 1
	}
	angleStep := (a2 - a1) / float64(numSegments)

	for i := 0; i < numSegments; i++ {
		s1 := a1 + float64(i)*angleStep
		s2 := s1 + angleStep
		p.arcSegment(cx, cy, rx, ry, s1, s2)
	}
}

// arcSegment adds a single elliptical arc segment spanning at most 90 degrees.
func (p *Path) arcSegment(cx, cy, rx, ry float32, a1, a2 float64) {
	alpha := math.Sin(a2-a1) * (math.Sqrt(4+3*math.Tan((a2-a1)/2)*math.Tan((a2-a1)/2)) - 1) / 3

	cos1, sin1 := math.Cos(a1), math.Sin(a1)
	cos2, sin2 := math.Cos(a2), math.Sin(a2)

	x1 := cx + rx*float32(cos1)
	y1 := cy + ry*float32(sin1)
	x2 := cx + rx*float32(cos2)
	y2 := cy + ry*float32(sin2)

	c1x := x1 - float32(alpha)*rx*float32(sin1)
	c1y := y1 + float32(alpha)*ry*float32(cos1)
	c2x := x2 + float32(alpha)*rx*float32(sin2)
	c2y := y2 - float32(alpha)*ry*float32(cos2)

	if len(p.elements) == 0 {
		p.MoveTo(x1, y1)
	} else if p.current != Pt(x1, y1) {
		p.LineTo(x1, y1)
	}
	p.CubicTo(c1x, c1y, c2x, c2y, x2, y2)
}

// RoundedRectangle adds a rectangle with elliptical corners of radii rx, ry.
func (p *Path) RoundedRectangle(x, y, w, h, rx, ry float32) {
	// Clamp radii to half of each dimension.
	if rx > w/2 {
		rx = w / 2
	}
	if ry > h/2 {
		ry = h / 2
	}
	if rx <= 0 || ry <= 0 {
		p.Rectangle(x, y, w, h)
		return
	}

	const halfPi = math.Pi / 2
	p.MoveTo(x+rx, y)
	p.LineTo(x+w-rx, y)
	p.EllipticalArc(x+w-rx, y+ry, rx, ry, -halfPi, 0)
	p.LineTo(x+w, y+h-ry)
	p.EllipticalArc(x+w-rx, y+h-ry, rx, ry, 0, halfPi)
	p.LineTo(x+rx, y+h)
	p.EllipticalArc(x+rx, y+h-ry, rx, ry, halfPi, math.Pi)
	p.LineTo(x, y+ry)
	p.EllipticalArc(x+rx, y+ry, rx, ry, math.Pi, 3*halfPi)
	p.Close()
}
