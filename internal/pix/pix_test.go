package pix

import "testing"

func TestFillRect(t *testing.T) {
	b := New(8, 8)
	red := [4]uint8{255, 0, 0, 255}
	b.FillRect(2, 2, 6, 6, red, Get(Src))

	if got := b.At(3, 3); got != red {
		t.Errorf("inside pixel = %v, want %v", got, red)
	}
	if got := b.At(1, 3); got != ([4]uint8{}) {
		t.Errorf("outside pixel = %v, want transparent", got)
	}
	if got := b.At(6, 6); got != ([4]uint8{}) {
		t.Errorf("half-open boundary pixel = %v, want transparent", got)
	}
}

func TestFillRectClamps(t *testing.T) {
	b := New(4, 4)
	b.FillRect(-10, -10, 100, 100, [4]uint8{0, 0, 255, 255}, Get(Src))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if got := b.At(x, y); got != ([4]uint8{0, 0, 255, 255}) {
				t.Fatalf("pixel (%d,%d) = %v after clamped fill", x, y, got)
			}
		}
	}
}

func TestClear(t *testing.T) {
	b := New(4, 4)
	b.FillRect(0, 0, 4, 4, [4]uint8{10, 20, 30, 255}, Get(Src))
	b.Clear(1, 1, 3, 3)
	if got := b.At(2, 2); got != ([4]uint8{}) {
		t.Errorf("cleared pixel = %v", got)
	}
	if got := b.At(0, 0); got == ([4]uint8{}) {
		t.Error("pixel outside clear window was zeroed")
	}
}

func TestComposite(t *testing.T) {
	dst := New(8, 8)
	dst.FillRect(0, 0, 8, 8, [4]uint8{0, 0, 0, 255}, Get(Src))

	src := New(4, 4)
	src.FillRect(0, 0, 4, 4, [4]uint8{255, 0, 0, 255}, Get(Src))

	dst.Composite(src, 2, 2, 255, Get(SrcOver), 0, 0, 8, 8)
	if got := dst.At(3, 3); got != ([4]uint8{255, 0, 0, 255}) {
		t.Errorf("composited pixel = %v", got)
	}
	if got := dst.At(1, 1); got != ([4]uint8{0, 0, 0, 255}) {
		t.Errorf("pixel left of layer = %v", got)
	}
	if got := dst.At(6, 6); got != ([4]uint8{0, 0, 0, 255}) {
		t.Errorf("pixel past layer = %v", got)
	}
}

func TestCompositeAlpha(t *testing.T) {
	dst := New(2, 2)
	dst.FillRect(0, 0, 2, 2, [4]uint8{0, 0, 0, 255}, Get(Src))

	src := New(2, 2)
	src.FillRect(0, 0, 2, 2, [4]uint8{255, 255, 255, 255}, Get(Src))

	dst.Composite(src, 0, 0, 128, Get(SrcOver), 0, 0, 2, 2)
	got := dst.At(0, 0)
	// 128/255 white over opaque black: channels near 128, alpha 255.
	if got[3] != 255 {
		t.Errorf("alpha = %d, want 255", got[3])
	}
	if got[0] < 126 || got[0] > 130 {
		t.Errorf("red = %d, want ~128", got[0])
	}
}

func TestCompositeWindow(t *testing.T) {
	dst := New(8, 8)
	src := New(8, 8)
	src.FillRect(0, 0, 8, 8, [4]uint8{0, 255, 0, 255}, Get(Src))

	// Restrict the composite to a window smaller than the source.
	dst.Composite(src, 0, 0, 255, Get(SrcOver), 2, 2, 5, 5)
	if got := dst.At(3, 3); got[1] != 255 {
		t.Errorf("inside window = %v", got)
	}
	if got := dst.At(6, 6); got != ([4]uint8{}) {
		t.Errorf("outside window = %v, want untouched", got)
	}
}

func TestRGBAView(t *testing.T) {
	b := New(3, 3)
	b.Set(1, 1, [4]uint8{9, 8, 7, 255})
	img := b.RGBA()
	if img.Stride != b.Stride {
		t.Fatalf("stride mismatch: %d vs %d", img.Stride, b.Stride)
	}
	c := img.RGBAAt(1, 1)
	if c.R != 9 || c.G != 8 || c.B != 7 || c.A != 255 {
		t.Errorf("view pixel = %v", c)
	}
	// The view shares memory with the buffer.
	img.Pix[0] = 42
	if b.Pix[0] != 42 {
		t.Error("view does not alias buffer memory")
	}
}

func BenchmarkFillRect(b *testing.B) {
	buf := New(256, 256)
	fn := Get(SrcOver)
	src := [4]uint8{80, 40, 20, 160}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf.FillRect(0, 0, 256, 256, src, fn)
	}
}
