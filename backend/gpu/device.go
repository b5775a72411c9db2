package gpu

import (
	"github.com/gogpu/canvas"
	"github.com/gogpu/canvas/region"
	"github.com/gogpu/canvas/render"
)

// device is the GPU rasterization device. Spans composite on the CPU
// into the target pixels; the naga-compiled kernel takes over layer
// composition when the host handle exposes the HAL layer. This mirrors
// the staged bring-up of the GPU pipeline: correctness first on the CPU
// path, stages moved to the GPU as they land.
type device struct {
	cpu        canvas.Device
	handle     render.DeviceHandle
	compositor *compositor
}

var _ canvas.Device = (*device)(nil)

func newDevice(target render.Target, handle render.DeviceHandle) *device {
	if handle == nil {
		handle = render.NullDeviceHandle{}
	}
	d := &device{
		cpu:    canvas.NewSoftwareDevice(target),
		handle: handle,
	}
	if comp, err := newCompositor(handle); err == nil {
		d.compositor = comp
	} else {
		canvas.Logger().Debug("gpu: composite kernel unavailable, CPU compositing", "err", err)
	}
	return d
}

// Handle returns the device handle exposed to hand-off functors.
func (d *device) Handle() render.DeviceHandle {
	return d.handle
}

func (d *device) BeginFrame(width, height int, dirty region.Rect, opaque bool) error {
	return d.cpu.BeginFrame(width, height, dirty, opaque)
}

func (d *device) FillRegion(rgn region.Region, paint *canvas.Paint) error {
	return d.cpu.FillRegion(rgn, paint)
}

func (d *device) DrawImage(src *canvas.Bitmap, srcToDev canvas.Matrix, clip region.Region, paint *canvas.Paint) error {
	return d.cpu.DrawImage(src, srcToDev, clip, paint)
}

func (d *device) PushLayer(bounds region.Rect, opaque bool) error {
	return d.cpu.PushLayer(bounds, opaque)
}

// PopLayer composites the top layer. The GPU kernel handles the plain
// blend modes it was compiled for; everything else stays on the CPU.
func (d *device) PopLayer(alpha uint8, mode canvas.BlendMode) error {
	if d.compositor != nil && d.compositor.supports(mode) {
		if err := d.compositor.compose(alpha, mode); err == nil {
			return nil
		}
		// Kernel dispatch unavailable; the CPU path below is always valid.
	}
	return d.cpu.PopLayer(alpha, mode)
}

func (d *device) Flush() error {
	return d.cpu.Flush()
}

func (d *device) Sync() error {
	return d.cpu.Sync()
}

func (d *device) EndFrame() error {
	return d.cpu.EndFrame()
}
