package canvas

import "github.com/gogpu/canvas/render"

// Option configures a renderer during creation.
// Use functional options to customize behavior.
//
// Example:
//
//	// Default software rendering into a fresh pixmap
//	cv := canvas.New(800, 600)
//
//	// Custom device (dependency injection)
//	cv := canvas.New(800, 600, canvas.WithDevice(gpuDevice))
type Option func(*options)

// options holds optional configuration for renderer creation.
type options struct {
	device Device
	target render.Target
	handle render.DeviceHandle
	name   string
	strict bool
}

func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithDevice sets a custom rasterization device.
// Use this for dependency injection of GPU or custom devices.
//
// Example:
//
//	dev := backend.MustDefault().NewDevice(target)
//	cv := canvas.New(800, 600, canvas.WithDevice(dev))
func WithDevice(d Device) Option {
	return func(o *options) {
		o.device = d
	}
}

// WithTarget sets the destination the device resolves frames into.
// The target dimensions should match the renderer dimensions.
//
// Example:
//
//	t := render.NewPixmapTarget(800, 600)
//	cv := canvas.New(800, 600, canvas.WithTarget(t))
func WithTarget(t render.Target) Option {
	return func(o *options) {
		o.target = t
	}
}

// WithDeviceHandle sets the handle exposed to hand-off functors.
// Devices that implement Handle() provide one automatically; this
// override is for callers that marshal external draw code against a
// context the device does not own.
func WithDeviceHandle(h render.DeviceHandle) Option {
	return func(o *options) {
		o.handle = h
	}
}

// WithName attaches a debug label used in log output.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithStrictRestore makes Restore at the ledger baseline return
// ErrStateUnderflow instead of logging and ignoring it.
func WithStrictRestore() Option {
	return func(o *options) {
		o.strict = true
	}
}
