package canvas

import "github.com/gogpu/canvas/region"

// Device is the rasterization backend contract. A Canvas resolves every
// draw call into device-space coverage (a region) plus an effective paint
// and hands both to its Device; the Device owns the pixels.
//
// Devices are single-frame state machines: BeginFrame, any number of
// fills/blits/layer pushes, EndFrame. A Canvas never calls a Device
// outside that bracket.
type Device interface {
	// BeginFrame readies the device for a frame of the given size.
	// dirty is the device-space window that will be redrawn; unless
	// opaque is true the device clears it before the first draw.
	BeginFrame(width, height int, dirty region.Rect, opaque bool) error

	// FillRegion composites the paint across every pixel of rgn,
	// already in device space and already clipped.
	FillRegion(rgn region.Region, paint *Paint) error

	// DrawImage composites src transformed by srcToDev into the pixels
	// covered by clip. The paint contributes alpha modulation, blend
	// mode and color filtering.
	DrawImage(src *Bitmap, srcToDev Matrix, clip region.Region, paint *Paint) error

	// PushLayer begins drawing into an offscreen target covering the
	// device-space bounds. When opaque is set the caller promises the
	// layer content will cover the bounds, so the clear may be skipped.
	PushLayer(bounds region.Rect, opaque bool) error

	// PopLayer composites the most recently pushed layer into its
	// parent with the given alpha and blend mode.
	PopLayer(alpha uint8, mode BlendMode) error

	// Flush pushes any batched work to the native context so external
	// code observes the device's last-known state exactly.
	Flush() error

	// Sync re-establishes internal assumptions after external code may
	// have mutated the shared native context.
	Sync() error

	// EndFrame completes the frame and resolves it into the target.
	EndFrame() error
}
