package canvas

import (
	"errors"
	"testing"
)

func testCanvas(t *testing.T, w, h int) *Canvas {
	t.Helper()
	c := New(w, h)
	if err := c.Prepare(false); err != nil {
		t.Fatalf("Prepare() = %v", err)
	}
	return c
}

func TestSaveReturnsPrePushMarker(t *testing.T) {
	c := testCanvas(t, 16, 16)
	if got := c.SaveCount(); got != 1 {
		t.Fatalf("baseline SaveCount() = %d, want 1", got)
	}

	m1, err := c.Save(SaveMatrix)
	if err != nil {
		t.Fatalf("Save() = %v", err)
	}
	if m1 != 1 {
		t.Errorf("first Save marker = %d, want 1", m1)
	}
	if got := c.SaveCount(); got != 2 {
		t.Errorf("SaveCount() after first save = %d, want 2", got)
	}

	m2, _ := c.Save(SaveMatrixClip)
	if m2 != 2 {
		t.Errorf("second Save marker = %d, want 2", m2)
	}

	// Restoring to a marker undoes that save and everything above it.
	if err := c.RestoreToCount(m1); err != nil {
		t.Fatalf("RestoreToCount(%d) = %v", m1, err)
	}
	if got := c.SaveCount(); got != 1 {
		t.Errorf("SaveCount() after RestoreToCount = %d, want 1", got)
	}
}

func TestSaveAlwaysCapturesMatrix(t *testing.T) {
	c := testCanvas(t, 16, 16)
	if _, err := c.Save(0); err != nil {
		t.Fatalf("Save(0) = %v", err)
	}
	if err := c.Translate(5, 7); err != nil {
		t.Fatalf("Translate() = %v", err)
	}
	if c.Matrix().IsIdentity() {
		t.Fatal("Translate left the matrix at identity")
	}
	if err := c.Restore(); err != nil {
		t.Fatalf("Restore() = %v", err)
	}
	if !c.Matrix().IsIdentity() {
		t.Errorf("matrix after restore = %+v, want identity", c.Matrix())
	}
}

func TestSaveClipScoping(t *testing.T) {
	tests := []struct {
		name     string
		flags    SaveFlags
		restored bool
	}{
		{"with SaveClip", SaveMatrixClip, true},
		{"without SaveClip", SaveMatrix, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := testCanvas(t, 16, 16)
			before := c.ClipBounds()

			if _, err := c.Save(tt.flags); err != nil {
				t.Fatalf("Save() = %v", err)
			}
			if _, err := c.ClipRect(RectLTRB(2, 2, 6, 6), ClipIntersect); err != nil {
				t.Fatalf("ClipRect() = %v", err)
			}
			narrowed := c.ClipBounds()
			if narrowed == before {
				t.Fatal("ClipRect did not narrow the clip")
			}
			if err := c.Restore(); err != nil {
				t.Fatalf("Restore() = %v", err)
			}

			after := c.ClipBounds()
			if tt.restored && after != before {
				t.Errorf("clip after restore = %v, want %v", after, before)
			}
			if !tt.restored && after != narrowed {
				t.Errorf("clip after restore = %v, want narrowing to survive as %v", after, narrowed)
			}
		})
	}
}

func TestSaveLayerForcesClipCapture(t *testing.T) {
	// A layer save must restore the clip even when the caller omitted
	// SaveClip, or content outside the layer bounds would stay clipped.
	c := testCanvas(t, 16, 16)
	before := c.ClipBounds()

	if _, err := c.SaveLayerAlpha(RectLTRB(2, 2, 10, 10), 128, ClipToLayer); err != nil {
		t.Fatalf("SaveLayerAlpha() = %v", err)
	}
	if got := c.ClipBounds(); got == before {
		t.Fatal("ClipToLayer did not narrow the clip")
	}
	if err := c.Restore(); err != nil {
		t.Fatalf("Restore() = %v", err)
	}
	if got := c.ClipBounds(); got != before {
		t.Errorf("clip after layer restore = %v, want %v", got, before)
	}
}

func TestRestoreAtBaseline(t *testing.T) {
	t.Run("permissive", func(t *testing.T) {
		c := testCanvas(t, 16, 16)
		if err := c.Restore(); err != nil {
			t.Errorf("baseline Restore() = %v, want nil", err)
		}
		if got := c.SaveCount(); got != 1 {
			t.Errorf("SaveCount() = %d, want 1", got)
		}
	})
	t.Run("strict", func(t *testing.T) {
		c := New(16, 16, WithStrictRestore())
		if err := c.Prepare(false); err != nil {
			t.Fatalf("Prepare() = %v", err)
		}
		if err := c.Restore(); !errors.Is(err, ErrStateUnderflow) {
			t.Errorf("baseline Restore() = %v, want ErrStateUnderflow", err)
		}
	})
}

func TestRestoreToCountBounds(t *testing.T) {
	c := testCanvas(t, 16, 16)
	c.Save(SaveMatrix)
	c.Save(SaveMatrix)

	// Values above the current count are rejected and leave the ledger
	// untouched.
	if err := c.RestoreToCount(99); !errors.Is(err, ErrInvalidSaveCount) {
		t.Errorf("RestoreToCount(99) = %v, want ErrInvalidSaveCount", err)
	}
	if got := c.SaveCount(); got != 3 {
		t.Errorf("SaveCount() after rejected restore = %d, want 3", got)
	}

	// Values below the baseline clamp to it.
	if err := c.RestoreToCount(-2); err != nil {
		t.Errorf("RestoreToCount(-2) = %v, want nil", err)
	}
	if got := c.SaveCount(); got != 1 {
		t.Errorf("SaveCount() after clamped restore = %d, want 1", got)
	}
}

func TestRestoreToCurrentCountIsNoOp(t *testing.T) {
	c := testCanvas(t, 16, 16)
	c.Save(SaveMatrixClip)
	c.Translate(3, 4)
	if _, err := c.ClipRect(RectLTRB(2, 2, 10, 10), ClipIntersect); err != nil {
		t.Fatalf("ClipRect() = %v", err)
	}

	count := c.SaveCount()
	matrix := c.Matrix()
	clip := c.ClipBounds()

	// Restoring to the current count pops nothing: the mutations made
	// since the save survive untouched.
	if err := c.RestoreToCount(count); err != nil {
		t.Fatalf("RestoreToCount(%d) = %v", count, err)
	}
	if got := c.SaveCount(); got != count {
		t.Errorf("SaveCount() = %d, want %d", got, count)
	}
	if got := c.Matrix(); got != matrix {
		t.Errorf("matrix = %+v, want %+v", got, matrix)
	}
	if got := c.ClipBounds(); got != clip {
		t.Errorf("clip bounds = %v, want %v", got, clip)
	}
}

func TestPaintAdjunctsNotSaveScoped(t *testing.T) {
	c := testCanvas(t, 16, 16)

	c.Save(SaveMatrixClip)
	if err := c.SetupShadow(2, 1, 1, Black); err != nil {
		t.Fatalf("SetupShadow() = %v", err)
	}
	if err := c.SetupPaintFilter(PaintDither, PaintAntiAlias); err != nil {
		t.Fatalf("SetupPaintFilter() = %v", err)
	}
	c.Restore()

	// Restore leaves adjuncts alone.
	if c.shadow == nil {
		t.Error("shadow cleared by Restore")
	}
	if c.filterSet != PaintAntiAlias || c.filterClear != PaintDither {
		t.Error("paint filter cleared by Restore")
	}

	// Prepare resets them.
	if err := c.Prepare(false); err != nil {
		t.Fatalf("Prepare() = %v", err)
	}
	if c.shadow != nil || c.filterSet != 0 || c.filterClear != 0 {
		t.Error("adjuncts survived Prepare")
	}
}

func TestPaintFilterAppliesToDraws(t *testing.T) {
	c := testCanvas(t, 16, 16)
	if err := c.SetupPaintFilter(PaintAntiAlias, PaintDither); err != nil {
		t.Fatalf("SetupPaintFilter() = %v", err)
	}
	p := NewPaint() // carries PaintAntiAlias
	eff := c.resolvePaint(p)
	if eff.Flags&PaintAntiAlias != 0 {
		t.Error("filter did not clear PaintAntiAlias")
	}
	if eff.Flags&PaintDither == 0 {
		t.Error("filter did not set PaintDither")
	}
	// The caller's paint is untouched.
	if p.Flags != PaintAntiAlias {
		t.Errorf("caller paint flags mutated to %v", p.Flags)
	}
}

func TestStateOpsRequireActiveFrame(t *testing.T) {
	c := New(16, 16) // no Prepare
	ops := []struct {
		name string
		call func() error
	}{
		{"Save", func() error { _, err := c.Save(SaveMatrix); return err }},
		{"SaveLayer", func() error { _, err := c.SaveLayerAlpha(RectLTRB(0, 0, 4, 4), 255, 0); return err }},
		{"Restore", c.Restore},
		{"RestoreToCount", func() error { return c.RestoreToCount(1) }},
		{"Translate", func() error { return c.Translate(1, 1) }},
		{"Rotate", func() error { return c.Rotate(1) }},
		{"Scale", func() error { return c.Scale(2, 2) }},
		{"Skew", func() error { return c.Skew(1, 0) }},
		{"SetMatrix", func() error { return c.SetMatrix(Identity()) }},
		{"ConcatMatrix", func() error { return c.ConcatMatrix(Identity()) }},
		{"ClipRect", func() error { _, err := c.ClipRect(RectLTRB(0, 0, 4, 4), ClipIntersect); return err }},
		{"ClipPath", func() error { _, err := c.ClipPath(NewPath(), ClipIntersect); return err }},
		{"SetupShader", func() error { return c.SetupShader(nil) }},
		{"SetupShadow", func() error { return c.SetupShadow(1, 0, 0, Black) }},
		{"SetupPaintFilter", func() error { return c.SetupPaintFilter(0, 0) }},
		{"Interrupt", c.Interrupt},
		{"Resume", c.Resume},
		{"Finish", c.Finish},
	}
	for _, op := range ops {
		t.Run(op.name, func(t *testing.T) {
			if err := op.call(); !errors.Is(err, ErrIllegalState) {
				t.Errorf("%s outside frame = %v, want ErrIllegalState", op.name, err)
			}
		})
	}

	if st := c.DrawRect(RectLTRB(0, 0, 4, 4), nil); st != StatusIllegalState {
		t.Errorf("DrawRect outside frame = %v, want IllegalState", st)
	}
	if st := c.DrawColor(Black, BlendSrcOver); st != StatusIllegalState {
		t.Errorf("DrawColor outside frame = %v, want IllegalState", st)
	}
	if _, st := c.DrawDisplayList(&List{}, 0); st != StatusIllegalState {
		t.Errorf("DrawDisplayList outside frame = %v, want IllegalState", st)
	}
}

func TestMatrixStackComposition(t *testing.T) {
	c := testCanvas(t, 32, 32)
	c.Translate(10, 0)
	c.Save(SaveMatrix)
	c.Scale(2, 2)

	// Local (1, 1) maps through scale then translate.
	got := c.Matrix().TransformPoint(Pt(1, 1))
	if got != Pt(12, 2) {
		t.Errorf("TransformPoint(1,1) = %v, want (12,2)", got)
	}

	c.Restore()
	got = c.Matrix().TransformPoint(Pt(1, 1))
	if got != Pt(11, 1) {
		t.Errorf("after restore TransformPoint(1,1) = %v, want (11,1)", got)
	}
}
