package canvas

import "testing"

func solidBitmap(w, h int, col Color) *Bitmap {
	p := col.Premul()
	data := make([]uint8, w*h*4)
	for i := 0; i < len(data); i += 4 {
		data[i], data[i+1], data[i+2], data[i+3] = p[0], p[1], p[2], p[3]
	}
	return BitmapFromData(data, w, h)
}

// squareGlyphs renders every glyph as a filled square of the font size
// sitting on the baseline.
type squareGlyphs struct{}

func (squareGlyphs) GlyphPath(id uint32, size float32) (*Path, bool) {
	p := NewPath()
	p.Rectangle(0, -size, size, size)
	return p, true
}

// testRun builds a run of n square glyphs advancing by size.
func testRun(n int, size float32) *TextRun {
	run := &TextRun{Size: size, Ascent: size, Source: squareGlyphs{}}
	for i := 0; i < n; i++ {
		run.Glyphs = append(run.Glyphs, Glyph{ID: uint32(i), X: float32(i) * size, XAdvance: size})
	}
	run.Advance = float32(n) * size
	return run
}

type constShader struct{ c Color }

func (s constShader) ColorAt(x, y float32) Color { return s.c }

type constFilter struct{ c Color }

func (f constFilter) Filter(Color) Color { return f.c }

func TestDrawValidationStatuses(t *testing.T) {
	shortData := make([]uint8, 3) // 2x2 needs 16
	tests := []struct {
		name string
		draw func(c *Canvas) Status
		want Status
	}{
		{"rect empty", func(c *Canvas) Status { return c.DrawRect(EmptyRect(), nil) }, StatusSkipped},
		{"rect outside clip", func(c *Canvas) Status { return c.DrawRect(RectLTRB(100, 100, 104, 104), nil) }, StatusSkipped},
		{"rects nil", func(c *Canvas) Status { return c.DrawRects(nil, nil) }, StatusSkipped},
		{"round rect empty", func(c *Canvas) Status { return c.DrawRoundRect(EmptyRect(), 2, 2, nil) }, StatusSkipped},
		{"circle zero radius", func(c *Canvas) Status { return c.DrawCircle(4, 4, 0, nil) }, StatusSkipped},
		{"circle negative radius", func(c *Canvas) Status { return c.DrawCircle(4, 4, -1, nil) }, StatusSkipped},
		{"oval empty", func(c *Canvas) Status { return c.DrawOval(EmptyRect(), nil) }, StatusSkipped},
		{"arc zero sweep", func(c *Canvas) Status { return c.DrawArc(RectLTRB(0, 0, 4, 4), 0, 0, false, nil) }, StatusSkipped},
		{"path nil", func(c *Canvas) Status { return c.DrawPath(nil, nil) }, StatusSkipped},
		{"path empty", func(c *Canvas) Status { return c.DrawPath(NewPath(), nil) }, StatusSkipped},
		{"lines short", func(c *Canvas) Status { return c.DrawLines([]float32{0, 0, 4}, nil) }, StatusSkipped},
		{"points short", func(c *Canvas) Status { return c.DrawPoints([]float32{3}, nil) }, StatusSkipped},
		{"bitmap nil", func(c *Canvas) Status { return c.DrawBitmap(nil, 0, 0, nil) }, StatusSkipped},
		{"bitmap empty", func(c *Canvas) Status { return c.DrawBitmap(NewBitmap(0, 0), 0, 0, nil) }, StatusSkipped},
		{"bitmap rect src outside", func(c *Canvas) Status {
			return c.DrawBitmapRect(solidBitmap(2, 2, ColorRed), RectLTRB(5, 5, 9, 9), RectLTRB(0, 0, 4, 4), nil)
		}, StatusSkipped},
		{"bitmap rect dst empty", func(c *Canvas) Status {
			return c.DrawBitmapRect(solidBitmap(2, 2, ColorRed), RectLTRB(0, 0, 2, 2), EmptyRect(), nil)
		}, StatusSkipped},
		{"bitmap data zero dims", func(c *Canvas) Status { return c.DrawBitmapData(nil, 0, 4, 0, 0, nil) }, StatusSkipped},
		{"bitmap data short", func(c *Canvas) Status { return c.DrawBitmapData(shortData, 2, 2, 0, 0, nil) }, StatusFailed},
		{"mesh zero cells", func(c *Canvas) Status {
			return c.DrawBitmapMesh(solidBitmap(2, 2, ColorRed), 0, 1, nil, nil, nil)
		}, StatusSkipped},
		{"mesh short verts", func(c *Canvas) Status {
			return c.DrawBitmapMesh(solidBitmap(2, 2, ColorRed), 1, 1, []float32{0, 0}, nil, nil)
		}, StatusFailed},
		{"mesh short colors", func(c *Canvas) Status {
			verts := []float32{0, 0, 2, 0, 0, 2, 2, 2}
			return c.DrawBitmapMesh(solidBitmap(2, 2, ColorRed), 1, 1, verts, []Color{ColorRed}, nil)
		}, StatusFailed},
		{"patch nil bitmap", func(c *Canvas) Status {
			return c.DrawPatch(nil, NinePatch(1, 2, 1, 2), RectLTRB(0, 0, 4, 4), nil)
		}, StatusSkipped},
		{"patch empty dst", func(c *Canvas) Status {
			return c.DrawPatch(solidBitmap(3, 3, ColorRed), NinePatch(1, 2, 1, 2), EmptyRect(), nil)
		}, StatusSkipped},
		{"text empty run", func(c *Canvas) Status { return c.DrawText(nil, 0, 0, nil, ModeImmediate) }, StatusSkipped},
		{"pos text empty run", func(c *Canvas) Status { return c.DrawPosText(&TextRun{}, nil) }, StatusSkipped},
		{"text on nil path", func(c *Canvas) Status { return c.DrawTextOnPath(testRun(1, 4), nil, 0, 0, nil) }, StatusSkipped},
		{"layer nil", func(c *Canvas) Status { return c.DrawLayer(nil, 0, 0, nil) }, StatusSkipped},
		{"layer empty", func(c *Canvas) Status { return c.DrawLayer(NewLayer(nil), 0, 0, nil) }, StatusSkipped},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := testCanvas(t, 16, 16)
			if got := tt.draw(c); got != tt.want {
				t.Errorf("status = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDrawRectPixels(t *testing.T) {
	c := testCanvas(t, 4, 4)
	if st := c.DrawRect(RectLTRB(1, 1, 3, 3), &Paint{Color: ColorRed}); st != StatusDone {
		t.Fatalf("DrawRect() = %v", st)
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			want := x >= 1 && x < 3 && y >= 1 && y < 3
			if got := pixelAt(t, c, x, y) == ColorRed; got != want {
				t.Errorf("pixel (%d,%d) painted = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestDrawRectTransformed(t *testing.T) {
	c := testCanvas(t, 8, 8)
	c.Translate(4, 2)
	if st := c.DrawRect(RectLTRB(0, 0, 2, 2), &Paint{Color: ColorRed}); st != StatusDone {
		t.Fatalf("DrawRect() = %v", st)
	}
	if got := pixelAt(t, c, 5, 3); got != ColorRed {
		t.Errorf("translated pixel = %08x, want red", uint32(got))
	}
	if got := pixelAt(t, c, 1, 1); got == ColorRed {
		t.Error("pixel at untranslated position was painted")
	}
}

func TestDrawRectsAggregateStatus(t *testing.T) {
	c := testCanvas(t, 8, 8)
	rects := []Rect{
		EmptyRect(),
		RectLTRB(100, 100, 104, 104), // outside the clip
		RectLTRB(1, 1, 3, 3),
	}
	if st := c.DrawRects(rects, &Paint{Color: ColorRed}); st != StatusDone {
		t.Errorf("mixed DrawRects() = %v, want Done", st)
	}
	if st := c.DrawRects([]Rect{EmptyRect(), RectLTRB(100, 100, 104, 104)}, nil); st != StatusSkipped {
		t.Errorf("all-rejected DrawRects() = %v, want Skipped", st)
	}
}

func TestDrawColorBlendClear(t *testing.T) {
	c := testCanvas(t, 4, 4)
	c.DrawColor(ColorRed, BlendSrc)
	if st := c.DrawColor(White, BlendClear); st != StatusDone {
		t.Fatalf("DrawColor(clear) = %v", st)
	}
	if got := pixelAt(t, c, 2, 2); got != Transparent {
		t.Errorf("cleared pixel = %08x, want transparent", uint32(got))
	}
}

func TestDrawCirclePixels(t *testing.T) {
	c := testCanvas(t, 8, 8)
	if st := c.DrawCircle(4, 4, 3, &Paint{Color: ColorRed}); st != StatusDone {
		t.Fatalf("DrawCircle() = %v", st)
	}
	if got := pixelAt(t, c, 4, 4); got != ColorRed {
		t.Error("circle center not painted")
	}
	if got := pixelAt(t, c, 0, 0); got == ColorRed {
		t.Error("corner outside circle was painted")
	}
}

func TestDrawOvalPixels(t *testing.T) {
	c := testCanvas(t, 8, 8)
	if st := c.DrawOval(RectLTRB(0, 2, 8, 6), &Paint{Color: ColorRed}); st != StatusDone {
		t.Fatalf("DrawOval() = %v", st)
	}
	if got := pixelAt(t, c, 4, 4); got != ColorRed {
		t.Error("oval center not painted")
	}
	if got := pixelAt(t, c, 0, 0); got == ColorRed {
		t.Error("pixel above the oval was painted")
	}
}

func TestDrawArcFullSweepIsEllipse(t *testing.T) {
	c := testCanvas(t, 8, 8)
	if st := c.DrawArc(RectLTRB(0, 0, 8, 8), 0, 6.2832, false, &Paint{Color: ColorRed}); st != StatusDone {
		t.Fatalf("DrawArc() = %v", st)
	}
	if got := pixelAt(t, c, 4, 4); got != ColorRed {
		t.Error("full-sweep arc did not fill the ellipse center")
	}
}

func TestDrawArcWedge(t *testing.T) {
	c := testCanvas(t, 16, 16)
	// Quarter wedge from 0 to pi/2: lower-right quadrant.
	if st := c.DrawArc(RectLTRB(0, 0, 16, 16), 0, 1.5708, true, &Paint{Color: ColorRed}); st != StatusDone {
		t.Fatalf("DrawArc() = %v", st)
	}
	if got := pixelAt(t, c, 10, 10); got != ColorRed {
		t.Error("inside wedge not painted")
	}
	if got := pixelAt(t, c, 4, 4); got == ColorRed {
		t.Error("opposite quadrant was painted")
	}
}

func TestDrawPathFillRules(t *testing.T) {
	ring := func(fill FillRule) *Path {
		p := NewPath()
		p.Fill = fill
		p.Rectangle(0, 0, 8, 8)
		p.Rectangle(2, 2, 4, 4)
		return p
	}

	t.Run("even-odd leaves a hole", func(t *testing.T) {
		c := testCanvas(t, 8, 8)
		if st := c.DrawPath(ring(FillEvenOdd), &Paint{Color: ColorRed}); st != StatusDone {
			t.Fatalf("DrawPath() = %v", st)
		}
		if got := pixelAt(t, c, 4, 4); got == ColorRed {
			t.Error("even-odd interior painted")
		}
		if got := pixelAt(t, c, 1, 1); got != ColorRed {
			t.Error("even-odd ring not painted")
		}
	})
	t.Run("non-zero fills solid", func(t *testing.T) {
		c := testCanvas(t, 8, 8)
		if st := c.DrawPath(ring(FillNonZero), &Paint{Color: ColorRed}); st != StatusDone {
			t.Fatalf("DrawPath() = %v", st)
		}
		if got := pixelAt(t, c, 4, 4); got != ColorRed {
			t.Error("non-zero interior not painted")
		}
	})
}

func TestDrawPathStrokeStyle(t *testing.T) {
	c := testCanvas(t, 8, 8)
	p := NewPath()
	p.Rectangle(1, 1, 6, 6)
	paint := &Paint{Color: ColorRed, Style: StyleStroke, StrokeWidth: 2}
	if st := c.DrawPath(p, paint); st != StatusDone {
		t.Fatalf("DrawPath() = %v", st)
	}
	if got := pixelAt(t, c, 4, 1); got != ColorRed {
		t.Error("stroke band not painted")
	}
	if got := pixelAt(t, c, 4, 4); got == ColorRed {
		t.Error("stroked rectangle filled its interior")
	}
}

func TestDrawLinesPixels(t *testing.T) {
	c := testCanvas(t, 8, 8)
	paint := &Paint{Color: ColorRed, StrokeWidth: 2}
	if st := c.DrawLines([]float32{0, 2, 6, 2}, paint); st != StatusDone {
		t.Fatalf("DrawLines() = %v", st)
	}
	if got := pixelAt(t, c, 3, 1); got != ColorRed {
		t.Error("line band (upper) not painted")
	}
	if got := pixelAt(t, c, 3, 2); got != ColorRed {
		t.Error("line band (lower) not painted")
	}
	if got := pixelAt(t, c, 3, 4); got == ColorRed {
		t.Error("pixel below the line was painted")
	}
}

func TestDrawPointsPixels(t *testing.T) {
	c := testCanvas(t, 8, 8)
	paint := &Paint{Color: ColorRed, StrokeWidth: 4}
	if st := c.DrawPoints([]float32{4, 4}, paint); st != StatusDone {
		t.Fatalf("DrawPoints() = %v", st)
	}
	if got := pixelAt(t, c, 3, 3); got != ColorRed {
		t.Error("point cap not painted")
	}
	if got := pixelAt(t, c, 0, 0); got == ColorRed {
		t.Error("pixel outside the cap was painted")
	}
}

func TestDrawBitmapPixels(t *testing.T) {
	c := testCanvas(t, 8, 8)
	if st := c.DrawBitmap(solidBitmap(2, 2, ColorGreen), 1, 1, nil); st != StatusDone {
		t.Fatalf("DrawBitmap() = %v", st)
	}
	if got := pixelAt(t, c, 1, 1); got != ColorGreen {
		t.Error("bitmap pixel (1,1) not painted")
	}
	if got := pixelAt(t, c, 2, 2); got != ColorGreen {
		t.Error("bitmap pixel (2,2) not painted")
	}
	if got := pixelAt(t, c, 3, 3); got == ColorGreen {
		t.Error("pixel outside bitmap was painted")
	}
}

func TestDrawBitmapRectScales(t *testing.T) {
	c := testCanvas(t, 8, 8)
	b := solidBitmap(1, 1, ColorBlue)
	if st := c.DrawBitmapRect(b, RectLTRB(0, 0, 1, 1), RectLTRB(0, 0, 4, 4), nil); st != StatusDone {
		t.Fatalf("DrawBitmapRect() = %v", st)
	}
	if got := countPixels(t, c, 4, 4, ColorBlue); got != 16 {
		t.Errorf("scaled bitmap covers %d pixels, want 16", got)
	}
	if got := pixelAt(t, c, 5, 5); got == ColorBlue {
		t.Error("pixel outside dst was painted")
	}
}

func TestDrawBitmapDataPixels(t *testing.T) {
	c := testCanvas(t, 8, 8)
	p := ColorRed.Premul()
	data := []uint8{p[0], p[1], p[2], p[3]}
	if st := c.DrawBitmapData(data, 1, 1, 2, 2, nil); st != StatusDone {
		t.Fatalf("DrawBitmapData() = %v", st)
	}
	if got := pixelAt(t, c, 2, 2); got != ColorRed {
		t.Errorf("pixel = %08x, want red", uint32(got))
	}
}

func TestDrawBitmapMeshPixels(t *testing.T) {
	c := testCanvas(t, 8, 8)
	b := solidBitmap(4, 4, ColorRed)
	// One cell mapped onto (0,0)-(4,4).
	verts := []float32{0, 0, 4, 0, 0, 4, 4, 4}
	if st := c.DrawBitmapMesh(b, 1, 1, verts, nil, nil); st != StatusDone {
		t.Fatalf("DrawBitmapMesh() = %v", st)
	}
	if got := pixelAt(t, c, 2, 2); got != ColorRed {
		t.Error("mesh cell interior not painted")
	}
	if got := pixelAt(t, c, 6, 6); got == ColorRed {
		t.Error("pixel outside the mesh was painted")
	}
}

func TestDrawPatchCoversDestination(t *testing.T) {
	c := testCanvas(t, 8, 8)
	b := solidBitmap(3, 3, ColorRed)
	if st := c.DrawPatch(b, NinePatch(1, 2, 1, 2), RectLTRB(0, 0, 6, 6), nil); st != StatusDone {
		t.Fatalf("DrawPatch() = %v", st)
	}
	if got := countPixels(t, c, 6, 6, ColorRed); got != 36 {
		t.Errorf("patch covers %d pixels of dst, want 36", got)
	}
	if got := pixelAt(t, c, 7, 7); got == ColorRed {
		t.Error("pixel outside dst was painted")
	}
}

func TestDrawTextPixels(t *testing.T) {
	c := testCanvas(t, 16, 16)
	if st := c.DrawText(testRun(2, 4), 0, 4, &Paint{Color: ColorRed}, ModeImmediate); st != StatusDone {
		t.Fatalf("DrawText() = %v", st)
	}
	// Two square glyphs above the baseline at y=4.
	if got := pixelAt(t, c, 1, 1); got != ColorRed {
		t.Error("first glyph not painted")
	}
	if got := pixelAt(t, c, 5, 1); got != ColorRed {
		t.Error("second glyph not painted")
	}
	if got := pixelAt(t, c, 1, 6); got == ColorRed {
		t.Error("pixel below baseline was painted")
	}
}

func TestDrawTextDeferBatching(t *testing.T) {
	c := testCanvas(t, 16, 16)
	if st := c.DrawText(testRun(1, 4), 0, 4, &Paint{Color: ColorRed}, ModeDefer); st != StatusDone {
		t.Fatalf("DrawText(defer) = %v", st)
	}
	if got := pixelAt(t, c, 1, 1); got == ColorRed {
		t.Fatal("deferred run drawn before flush")
	}

	// Any non-deferred draw flushes the batch first.
	if st := c.DrawRect(RectLTRB(8, 8, 10, 10), &Paint{Color: ColorBlue}); st != StatusDone {
		t.Fatalf("DrawRect() = %v", st)
	}
	if got := pixelAt(t, c, 1, 1); got != ColorRed {
		t.Error("deferred run not flushed before the next draw")
	}
}

func TestDrawTextFlushMode(t *testing.T) {
	c := testCanvas(t, 16, 16)
	c.DrawText(testRun(1, 4), 0, 4, &Paint{Color: ColorRed}, ModeDefer)
	if st := c.DrawText(testRun(1, 4), 8, 4, &Paint{Color: ColorGreen}, ModeFlush); st != StatusDone {
		t.Fatalf("DrawText(flush) = %v", st)
	}
	if got := pixelAt(t, c, 1, 1); got != ColorRed {
		t.Error("deferred run not drained by ModeFlush")
	}
	if got := pixelAt(t, c, 9, 1); got != ColorGreen {
		t.Error("flushing run not drawn")
	}
}

func TestDeferredTextUsesSubmissionState(t *testing.T) {
	c := testCanvas(t, 16, 16)
	c.DrawText(testRun(1, 4), 0, 4, &Paint{Color: ColorRed}, ModeDefer)

	// Installing a color filter flushes the batch first, so the deferred
	// run keeps the paint it was submitted under.
	if err := c.SetupColorFilter(constFilter{c: ColorBlue}); err != nil {
		t.Fatalf("SetupColorFilter() = %v", err)
	}
	if got := pixelAt(t, c, 1, 1); got != ColorRed {
		t.Errorf("deferred run = %08x, want submission-time red", uint32(got))
	}

	c.DrawRect(RectLTRB(8, 8, 10, 10), &Paint{Color: ColorRed})
	if got := pixelAt(t, c, 9, 9); got != ColorBlue {
		t.Error("filter not applied to draws after installation")
	}
}

func TestDrawTextFinishFlushes(t *testing.T) {
	c := testCanvas(t, 16, 16)
	c.DrawText(testRun(1, 4), 0, 4, &Paint{Color: ColorRed}, ModeDefer)
	if err := c.Finish(); err != nil {
		t.Fatalf("Finish() = %v", err)
	}
	if got := pixelAt(t, c, 1, 1); got != ColorRed {
		t.Error("deferred run not drawn by Finish")
	}
}

func TestDrawTextShadow(t *testing.T) {
	c := testCanvas(t, 16, 16)
	if err := c.SetupShadow(0, 3, 3, ColorBlue); err != nil {
		t.Fatalf("SetupShadow() = %v", err)
	}
	if st := c.DrawText(testRun(1, 4), 0, 4, &Paint{Color: ColorRed}, ModeImmediate); st != StatusDone {
		t.Fatalf("DrawText() = %v", st)
	}
	if got := pixelAt(t, c, 1, 1); got != ColorRed {
		t.Error("glyph not painted over its shadow")
	}
	if got := pixelAt(t, c, 5, 5); got != ColorBlue {
		t.Errorf("shadow pixel = %08x, want blue", uint32(got))
	}
}

func TestDrawPosTextAbsolutePositions(t *testing.T) {
	c := testCanvas(t, 16, 16)
	run := &TextRun{
		Size:   4,
		Ascent: 4,
		Source: squareGlyphs{},
		Glyphs: []Glyph{
			{ID: 0, X: 0, Y: 4, XAdvance: 4},
			{ID: 1, X: 8, Y: 4, XAdvance: 4},
		},
	}
	if st := c.DrawPosText(run, &Paint{Color: ColorRed}); st != StatusDone {
		t.Fatalf("DrawPosText() = %v", st)
	}
	if got := pixelAt(t, c, 1, 1); got != ColorRed {
		t.Error("first positioned glyph not painted")
	}
	if got := pixelAt(t, c, 9, 1); got != ColorRed {
		t.Error("second positioned glyph not painted")
	}
	if got := pixelAt(t, c, 5, 1); got == ColorRed {
		t.Error("gap between glyphs was painted")
	}
}

func TestDrawTextOnPathPlacesGlyphs(t *testing.T) {
	c := testCanvas(t, 16, 16)
	p := NewPath()
	p.MoveTo(0, 8)
	p.LineTo(16, 8)
	if st := c.DrawTextOnPath(testRun(2, 4), p, 0, 0, &Paint{Color: ColorRed}); st != StatusDone {
		t.Fatalf("DrawTextOnPath() = %v", st)
	}
	// Glyph squares sit above the horizontal path.
	if got := pixelAt(t, c, 2, 6); got != ColorRed {
		t.Error("glyph on path not painted")
	}
	if got := pixelAt(t, c, 2, 12); got == ColorRed {
		t.Error("pixel below the path was painted")
	}
}

func TestDrawTextOnPathDropsOverhang(t *testing.T) {
	c := testCanvas(t, 16, 16)
	p := NewPath()
	p.MoveTo(0, 8)
	p.LineTo(6, 8) // room for one glyph and a half
	run := testRun(3, 4)
	if st := c.DrawTextOnPath(run, p, 0, 0, &Paint{Color: ColorRed}); st != StatusDone {
		t.Fatalf("DrawTextOnPath() = %v", st)
	}
	// The third glyph's center (10) is past the path end and is dropped.
	if got := pixelAt(t, c, 9, 6); got == ColorRed {
		t.Error("overhanging glyph was painted")
	}
}

func TestDrawLayerPixels(t *testing.T) {
	c := testCanvas(t, 8, 8)
	l := NewLayer(solidBitmap(2, 2, ColorRed))
	if st := c.DrawLayer(l, 1, 1, nil); st != StatusDone {
		t.Fatalf("DrawLayer() = %v", st)
	}
	if got := pixelAt(t, c, 2, 2); got != ColorRed {
		t.Error("layer content not painted")
	}
}

func TestDrawLayerAlphaModulates(t *testing.T) {
	c := testCanvas(t, 8, 8)
	l := NewLayer(solidBitmap(2, 2, ColorRed))
	l.SetAlpha(128)
	if st := c.DrawLayer(l, 0, 0, nil); st != StatusDone {
		t.Fatalf("DrawLayer() = %v", st)
	}
	got := pixelAt(t, c, 1, 1)
	if a := got.Alpha(); a < 126 || a > 130 {
		t.Errorf("layer alpha = %d, want ~128", a)
	}
}

func TestShaderOverridesColor(t *testing.T) {
	c := testCanvas(t, 8, 8)
	if err := c.SetupShader(constShader{c: ColorGreen}); err != nil {
		t.Fatalf("SetupShader() = %v", err)
	}
	c.DrawRect(RectLTRB(0, 0, 4, 4), &Paint{Color: ColorRed})
	if got := pixelAt(t, c, 2, 2); got != ColorGreen {
		t.Errorf("shaded pixel = %08x, want shader green", uint32(got))
	}

	if err := c.ResetShader(); err != nil {
		t.Fatalf("ResetShader() = %v", err)
	}
	c.DrawRect(RectLTRB(4, 4, 8, 8), &Paint{Color: ColorRed})
	if got := pixelAt(t, c, 6, 6); got != ColorRed {
		t.Error("paint color not restored after ResetShader")
	}
}

func TestColorFilterRewritesColor(t *testing.T) {
	c := testCanvas(t, 8, 8)
	if err := c.SetupColorFilter(constFilter{c: ColorBlue}); err != nil {
		t.Fatalf("SetupColorFilter() = %v", err)
	}
	c.DrawRect(RectLTRB(0, 0, 4, 4), &Paint{Color: ColorRed})
	if got := pixelAt(t, c, 2, 2); got != ColorBlue {
		t.Errorf("filtered pixel = %08x, want blue", uint32(got))
	}
}
