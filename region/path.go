// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package region

import (
	"math"
	"sort"
)

// Point is a vertex of a flattened contour.
type Point struct {
	X, Y float32
}

// Fill selects the interior rule for polygon scan conversion.
type Fill uint8

const (
	// FillNonZero treats a point as inside when the winding number
	// is non-zero.
	FillNonZero Fill = iota

	// FillEvenOdd treats a point as inside when an odd number of
	// edges lie to its left.
	FillEvenOdd
)

// edge is a non-horizontal polygon edge prepared for the scanline
// sweep, stored with y0 < y1 and the original winding direction.
type edge struct {
	x0, y0 float32
	x1, y1 float32
	dir    int
}

// crossing is an edge intersection with a scanline.
type crossing struct {
	x   float32
	dir int
}

// FromPolygons scan-converts closed contours into a region, clipped
// to the given rectangle. Contours are implicitly closed; each must
// already be flattened to line segments. Coverage is decided at pixel
// centers, matching a non-antialiased fill.
func FromPolygons(contours [][]Point, fill Fill, clip Rect) Region {
	if clip.Empty() {
		return Region{}
	}

	var edges []edge
	minY, maxY := float32(math.MaxFloat32), float32(-math.MaxFloat32)
	for _, pts := range contours {
		if len(pts) < 3 {
			continue
		}
		for i := range pts {
			p0 := pts[i]
			p1 := pts[(i+1)%len(pts)]
			if p0.Y == p1.Y {
				continue
			}
			if p0.Y < minY {
				minY = p0.Y
			}
			if p0.Y > maxY {
				maxY = p0.Y
			}
			edges = append(edges, makeEdge(p0, p1))
		}
	}
	if len(edges) == 0 {
		return Region{}
	}

	top := maxInt(clip.T, int(math.Floor(float64(minY))))
	bottom := minInt(clip.B, int(math.Ceil(float64(maxY))))

	var (
		out       Region
		crossings []crossing
	)
	for y := top; y < bottom; y++ {
		scanY := float32(y) + 0.5
		crossings = crossings[:0]
		for _, e := range edges {
			if e.y0 <= scanY && scanY < e.y1 {
				t := (scanY - e.y0) / (e.y1 - e.y0)
				crossings = append(crossings, crossing{
					x:   e.x0 + t*(e.x1-e.x0),
					dir: e.dir,
				})
			}
		}
		if len(crossings) < 2 {
			continue
		}
		sort.Slice(crossings, func(i, j int) bool {
			return crossings[i].x < crossings[j].x
		})

		spans := scanSpans(crossings, fill, clip)
		if len(spans) > 0 {
			out.appendBand(y, y+1, spans)
		}
	}
	return out
}

// scanSpans converts sorted crossings on one scanline into clipped
// spans under the given fill rule.
func scanSpans(crossings []crossing, fill Fill, clip Rect) []span {
	var (
		out     []span
		winding int
		start   float32
		inside  bool
	)
	for _, c := range crossings {
		var nowInside bool
		if fill == FillEvenOdd {
			winding ^= 1
			nowInside = winding != 0
		} else {
			winding += c.dir
			nowInside = winding != 0
		}
		if nowInside && !inside {
			start, inside = c.x, true
		} else if !nowInside && inside {
			out = appendClippedSpan(out, start, c.x, clip)
			inside = false
		}
	}
	return out
}

// appendClippedSpan rounds a float span to pixel coordinates, clips
// it, and coalesces it with the previous span when they touch.
func appendClippedSpan(spans []span, fx0, fx1 float32, clip Rect) []span {
	x0 := maxInt(clip.L, int(math.Round(float64(fx0))))
	x1 := minInt(clip.R, int(math.Round(float64(fx1))))
	if x1 <= x0 {
		return spans
	}
	if n := len(spans); n > 0 && spans[n-1].x1 >= x0 {
		if x1 > spans[n-1].x1 {
			spans[n-1].x1 = x1
		}
		return spans
	}
	return append(spans, span{x0, x1})
}

// makeEdge orients an edge downward and records the original
// direction for winding accumulation.
func makeEdge(p0, p1 Point) edge {
	if p0.Y > p1.Y {
		return edge{x0: p1.X, y0: p1.Y, x1: p0.X, y1: p0.Y, dir: -1}
	}
	return edge{x0: p0.X, y0: p0.Y, x1: p1.X, y1: p1.Y, dir: 1}
}
