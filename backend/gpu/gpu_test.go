package gpu

import (
	"errors"
	"strings"
	"testing"

	"github.com/gogpu/canvas"
	"github.com/gogpu/canvas/backend"
	"github.com/gogpu/canvas/region"
	"github.com/gogpu/canvas/render"
)

func TestRegisteredOnImport(t *testing.T) {
	if !backend.IsRegistered(backend.BackendGPU) {
		t.Fatal("gpu backend not registered on import")
	}
	b := backend.Get(backend.BackendGPU)
	if b == nil {
		t.Fatal("Get(gpu) = nil")
	}
	if b.Name() != backend.BackendGPU {
		t.Errorf("Name() = %q, want %q", b.Name(), backend.BackendGPU)
	}
}

func TestNewDeviceRequiresInit(t *testing.T) {
	b := New()
	if _, err := b.NewDevice(render.NewPixmapTarget(8, 8)); !errors.Is(err, backend.ErrNotInitialized) {
		t.Errorf("NewDevice before Init = %v, want ErrNotInitialized", err)
	}
}

func TestHostHandleBackend(t *testing.T) {
	b := NewWithHandle(render.NullDeviceHandle{})
	if err := b.Init(); err != nil {
		t.Fatalf("Init with host handle = %v", err)
	}
	defer b.Close()

	if _, err := b.NewDevice(nil); !errors.Is(err, backend.ErrNoTarget) {
		t.Errorf("NewDevice(nil) = %v, want ErrNoTarget", err)
	}

	tgt := render.NewPixmapTarget(16, 16)
	dev, err := b.NewDevice(tgt)
	if err != nil {
		t.Fatalf("NewDevice() = %v", err)
	}

	// The handle must surface for hand-off functors.
	h, ok := dev.(interface{ Handle() render.DeviceHandle })
	if !ok {
		t.Fatal("device does not expose Handle()")
	}
	if _, ok := h.Handle().(render.NullDeviceHandle); !ok {
		t.Errorf("Handle() = %T, want the handle the backend was built with", h.Handle())
	}

	// Without a HAL layer the device still runs a full frame on the
	// CPU path, including layer composition.
	dirty := region.Rect{R: 16, B: 16}
	if err := dev.BeginFrame(16, 16, dirty, false); err != nil {
		t.Fatalf("BeginFrame() = %v", err)
	}
	p := canvas.NewPaint()
	p.Color = canvas.RGB(255, 0, 0)
	if err := dev.FillRegion(region.FromRect(dirty), p); err != nil {
		t.Fatalf("FillRegion() = %v", err)
	}
	if err := dev.PushLayer(dirty, false); err != nil {
		t.Fatalf("PushLayer() = %v", err)
	}
	if err := dev.PopLayer(128, canvas.BlendSrcOver); err != nil {
		t.Fatalf("PopLayer() = %v", err)
	}
	if err := dev.EndFrame(); err != nil {
		t.Fatalf("EndFrame() = %v", err)
	}
	if tgt.Image().RGBAAt(8, 8).R != 255 {
		t.Error("fill did not reach the target")
	}
}

func TestSelfAcquisition(t *testing.T) {
	b := New()
	if err := b.Init(); err != nil {
		t.Skipf("no GPU available: %v", err)
	}
	defer b.Close()

	if info := b.GPUInfo(); info != nil && info.Name == "" {
		t.Error("adapter info has empty name")
	}
	dev, err := b.NewDevice(render.NewPixmapTarget(8, 8))
	if err != nil {
		t.Fatalf("NewDevice() = %v", err)
	}
	if dev == nil {
		t.Fatal("NewDevice() = nil")
	}
}

func TestCompositeKernelSource(t *testing.T) {
	if compositeWGSL == "" {
		t.Fatal("composite kernel source is empty")
	}
	if !strings.Contains(compositeWGSL, "cs_composite") {
		t.Error("kernel source missing cs_composite entry point")
	}
}
