package canvas

import (
	"errors"
	"testing"

	"github.com/gogpu/canvas/render"
)

// pixelAt reads back one target pixel as a packed color. The software
// device composites premultiplied, so opaque expectations compare
// directly.
func pixelAt(t *testing.T, c *Canvas, x, y int) Color {
	t.Helper()
	tgt, ok := c.Target().(*render.PixmapTarget)
	if !ok {
		t.Fatalf("target is %T, want *render.PixmapTarget", c.Target())
	}
	px := tgt.Image().RGBAAt(x, y)
	return ARGB(px.A, px.R, px.G, px.B)
}

// countPixels returns how many pixels in the w x h target match col.
func countPixels(t *testing.T, c *Canvas, w, h int, col Color) int {
	t.Helper()
	n := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if pixelAt(t, c, x, y) == col {
				n++
			}
		}
	}
	return n
}

func TestNewDefaults(t *testing.T) {
	c := New(32, 24)
	if c.IsRecording() {
		t.Error("IsRecording() = true for immediate renderer")
	}
	if c.Device() == nil {
		t.Error("Device() = nil")
	}
	if _, ok := c.Target().(*render.PixmapTarget); !ok {
		t.Errorf("default target is %T, want *render.PixmapTarget", c.Target())
	}
	if w, h := c.Viewport(); w != 32 || h != 24 {
		t.Errorf("Viewport() = %dx%d, want 32x24", w, h)
	}
}

func TestPrepareRequiresViewport(t *testing.T) {
	c := New(0, 0)
	if err := c.Prepare(false); !errors.Is(err, ErrNoViewport) {
		t.Errorf("Prepare() = %v, want ErrNoViewport", err)
	}
}

func TestPrepareDirtyClipsToRequest(t *testing.T) {
	tests := []struct {
		name                     string
		left, top, right, bottom float32
		wantClip                 Rect
	}{
		{"partial", 2, 2, 6, 6, RectLTRB(2, 2, 6, 6)},
		{"overflowing", -4, -4, 100, 100, RectLTRB(0, 0, 8, 8)},
		{"degenerate falls back", 5, 5, 5, 5, RectLTRB(0, 0, 8, 8)},
		{"inverted falls back", 6, 6, 2, 2, RectLTRB(0, 0, 8, 8)},
		{"outside falls back", 50, 50, 60, 60, RectLTRB(0, 0, 8, 8)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(8, 8)
			if err := c.PrepareDirty(tt.left, tt.top, tt.right, tt.bottom, false); err != nil {
				t.Fatalf("PrepareDirty() = %v", err)
			}
			if got := c.ClipBounds(); got != tt.wantClip {
				t.Errorf("ClipBounds() = %v, want %v", got, tt.wantClip)
			}
		})
	}
}

func TestPrepareDirtyBoundsDrawing(t *testing.T) {
	c := New(8, 8)
	if err := c.PrepareDirty(2, 2, 6, 6, false); err != nil {
		t.Fatalf("PrepareDirty() = %v", err)
	}
	if st := c.DrawColor(ColorRed, BlendSrc); st != StatusDone {
		t.Fatalf("DrawColor() = %v", st)
	}
	if got := pixelAt(t, c, 3, 3); got != ColorRed {
		t.Errorf("pixel inside dirty = %08x, want red", uint32(got))
	}
	if got := pixelAt(t, c, 0, 0); got == ColorRed {
		t.Error("pixel outside dirty was painted")
	}
}

func TestPrepareAbandonsActiveFrame(t *testing.T) {
	c := testCanvas(t, 8, 8)
	c.Save(SaveMatrixClip)
	c.Translate(3, 3)

	if err := c.Prepare(false); err != nil {
		t.Fatalf("second Prepare() = %v", err)
	}
	if got := c.SaveCount(); got != 1 {
		t.Errorf("SaveCount() after re-prepare = %d, want 1", got)
	}
	if !c.Matrix().IsIdentity() {
		t.Error("matrix survived re-prepare")
	}
}

func TestViewportChangeTakesEffectNextFrame(t *testing.T) {
	c := testCanvas(t, 8, 8)
	c.SetViewport(16, 16)

	// The active frame keeps its original dimensions.
	if got := c.ClipBounds(); got != RectLTRB(0, 0, 8, 8) {
		t.Errorf("active frame ClipBounds() = %v, want 8x8", got)
	}
	if err := c.Finish(); err != nil {
		t.Fatalf("Finish() = %v", err)
	}
	if err := c.Prepare(false); err != nil {
		t.Fatalf("Prepare() = %v", err)
	}
	if got := c.ClipBounds(); got != RectLTRB(0, 0, 16, 16) {
		t.Errorf("next frame ClipBounds() = %v, want 16x16", got)
	}
}

func TestFinishLifecycle(t *testing.T) {
	c := New(8, 8)
	if err := c.Finish(); !errors.Is(err, ErrIllegalState) {
		t.Errorf("Finish() before Prepare = %v, want ErrIllegalState", err)
	}
	if err := c.Prepare(false); err != nil {
		t.Fatalf("Prepare() = %v", err)
	}
	if err := c.Finish(); err != nil {
		t.Errorf("Finish() = %v", err)
	}
	if err := c.Finish(); !errors.Is(err, ErrIllegalState) {
		t.Errorf("double Finish() = %v, want ErrIllegalState", err)
	}
}

func TestFinishCompositesOpenLayers(t *testing.T) {
	c := testCanvas(t, 8, 8)
	if _, err := c.SaveLayerAlpha(RectLTRB(0, 0, 8, 8), 255, 0); err != nil {
		t.Fatalf("SaveLayerAlpha() = %v", err)
	}
	if st := c.DrawRect(RectLTRB(1, 1, 3, 3), &Paint{Color: ColorBlue}); st != StatusDone {
		t.Fatalf("DrawRect() = %v", st)
	}
	// No Restore: Finish must still composite the open layer.
	if err := c.Finish(); err != nil {
		t.Fatalf("Finish() = %v", err)
	}
	if got := pixelAt(t, c, 2, 2); got != ColorBlue {
		t.Errorf("layer content = %08x, want blue", uint32(got))
	}
}

func TestSaveLayerCompositesOnRestore(t *testing.T) {
	c := testCanvas(t, 8, 8)

	// Fully transparent layer content must drop out entirely.
	if _, err := c.SaveLayerAlpha(RectLTRB(0, 0, 8, 8), 0, 0); err != nil {
		t.Fatalf("SaveLayerAlpha() = %v", err)
	}
	c.DrawRect(RectLTRB(0, 0, 8, 8), &Paint{Color: ColorRed})
	c.Restore()
	if got := pixelAt(t, c, 4, 4); got == ColorRed {
		t.Error("alpha-0 layer leaked content")
	}

	// Opaque layer content lands unchanged.
	if _, err := c.SaveLayerAlpha(RectLTRB(0, 0, 8, 8), 255, 0); err != nil {
		t.Fatalf("SaveLayerAlpha() = %v", err)
	}
	c.DrawRect(RectLTRB(0, 0, 8, 8), &Paint{Color: ColorGreen})
	c.Restore()
	if got := pixelAt(t, c, 4, 4); got != ColorGreen {
		t.Errorf("alpha-255 layer = %08x, want green", uint32(got))
	}
}

func TestSaveLayerHalfAlpha(t *testing.T) {
	c := testCanvas(t, 8, 8)
	if _, err := c.SaveLayerAlpha(RectLTRB(0, 0, 8, 8), 128, 0); err != nil {
		t.Fatalf("SaveLayerAlpha() = %v", err)
	}
	c.DrawRect(RectLTRB(0, 0, 8, 8), &Paint{Color: ColorRed})
	c.Restore()

	got := pixelAt(t, c, 4, 4)
	if a := got.Alpha(); a < 126 || a > 130 {
		t.Errorf("composited alpha = %d, want ~128", a)
	}
	if r := got.Red(); r < 126 || r > 130 {
		t.Errorf("composited premul red = %d, want ~128", r)
	}
}

func TestSaveLayerClipToLayerRejectsOutsideDraws(t *testing.T) {
	c := testCanvas(t, 16, 16)
	if _, err := c.SaveLayerAlpha(RectLTRB(2, 2, 6, 6), 255, ClipToLayer); err != nil {
		t.Fatalf("SaveLayerAlpha() = %v", err)
	}
	if st := c.DrawRect(RectLTRB(10, 10, 14, 14), &Paint{Color: ColorRed}); st != StatusSkipped {
		t.Errorf("draw outside layer bounds = %v, want Skipped", st)
	}
	c.Restore()
	if st := c.DrawRect(RectLTRB(10, 10, 14, 14), &Paint{Color: ColorRed}); st != StatusDone {
		t.Errorf("draw after layer restore = %v, want Done", st)
	}
}

func TestSaveLayerRejectedBoundsEmptyClip(t *testing.T) {
	// Layer bounds entirely outside the clip: the layer is skipped and
	// ClipToLayer empties the clip so nothing reaches the parent.
	c := testCanvas(t, 8, 8)
	if _, err := c.SaveLayerAlpha(RectLTRB(50, 50, 60, 60), 255, ClipToLayer); err != nil {
		t.Fatalf("SaveLayerAlpha() = %v", err)
	}
	if st := c.DrawColor(ColorRed, BlendSrcOver); st != StatusSkipped {
		t.Errorf("DrawColor into rejected layer = %v, want Skipped", st)
	}
	c.Restore()
	if st := c.DrawRect(RectLTRB(0, 0, 4, 4), &Paint{Color: ColorGreen}); st != StatusDone {
		t.Errorf("draw after restore = %v, want Done", st)
	}
}

func TestQuickRejectConservative(t *testing.T) {
	c := testCanvas(t, 16, 16)
	if _, err := c.ClipRect(RectLTRB(0, 0, 8, 8), ClipIntersect); err != nil {
		t.Fatalf("ClipRect() = %v", err)
	}

	tests := []struct {
		name                     string
		left, top, right, bottom float32
		want                     bool
	}{
		{"inside", 1, 1, 4, 4, false},
		{"overlapping", 6, 6, 12, 12, false},
		{"outside right", 9, 0, 12, 4, true},
		{"outside below", 0, 9, 4, 12, true},
		{"empty rect", 3, 3, 3, 3, true},
		{"inverted rect", 5, 5, 2, 2, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.QuickRejectConservative(tt.left, tt.top, tt.right, tt.bottom)
			if got != tt.want {
				t.Errorf("QuickRejectConservative(%v,%v,%v,%v) = %v, want %v",
					tt.left, tt.top, tt.right, tt.bottom, got, tt.want)
			}
		})
	}
}

func TestQuickRejectHonorsTransform(t *testing.T) {
	c := testCanvas(t, 16, 16)
	c.Translate(-20, 0)
	// Local (21..25) lands at device (1..5): visible.
	if c.QuickRejectConservative(21, 1, 25, 5) {
		t.Error("rejected a rectangle the transform brings into view")
	}
	// Local (1..5) lands at device (-19..-15): gone.
	if !c.QuickRejectConservative(1, 1, 5, 5) {
		t.Error("kept a rectangle the transform moves out of view")
	}
}

func TestQuickRejectEmptyClip(t *testing.T) {
	c := testCanvas(t, 16, 16)
	if ok, err := c.ClipRect(RectLTRB(20, 20, 30, 30), ClipIntersect); err != nil || ok {
		t.Fatalf("ClipRect disjoint = (%v, %v), want (false, nil)", ok, err)
	}
	if !c.QuickRejectConservative(0, 0, 16, 16) {
		t.Error("empty clip must reject everything")
	}
}
