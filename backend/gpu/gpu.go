package gpu

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/core"
	types "github.com/gogpu/gputypes"

	"github.com/gogpu/canvas"
	"github.com/gogpu/canvas/backend"
	"github.com/gogpu/canvas/render"
)

// ErrNoGPU is returned when no usable GPU adapter can be acquired.
var ErrNoGPU = errors.New("gpu: no GPU adapter available")

// init registers the GPU backend on package import.
func init() {
	backend.Register(backend.BackendGPU, func() backend.Backend {
		return New()
	})
}

// Info describes the selected GPU.
type Info struct {
	// Name is the GPU name (e.g., "NVIDIA GeForce RTX 3080").
	Name string
	// Vendor is the GPU vendor.
	Vendor string
	// DeviceType is the type of GPU (discrete, integrated, etc.).
	DeviceType types.DeviceType
	// Backend is the graphics API in use (Vulkan, Metal, DX12).
	Backend types.Backend
	// Driver is the driver version string.
	Driver string
}

// String returns a human-readable description of the GPU.
func (g *Info) String() string {
	return fmt.Sprintf("%s (%s, %s)", g.Name, g.DeviceType, g.Backend)
}

// Backend is the wgpu-based rasterization backend. Without a host
// handle it acquires its own instance, adapter, device and queue on
// Init; with one it shares the host's device and can reach the HAL
// layer for the composite kernel.
type Backend struct {
	mu sync.RWMutex

	// Self-acquired GPU resources (nil/zero when a host handle is set).
	instance *core.Instance
	adapter  core.AdapterID
	device   core.DeviceID
	queue    core.QueueID

	// Host-provided device, if any.
	handle render.DeviceHandle

	info        *Info
	initialized bool
}

var _ backend.Backend = (*Backend)(nil)

// New creates a GPU backend that acquires its own device on Init.
func New() *Backend {
	return &Backend{}
}

// NewWithHandle creates a GPU backend bound to a host-provided device.
// Init performs no acquisition and never fails.
func NewWithHandle(handle render.DeviceHandle) *Backend {
	return &Backend{handle: handle}
}

// Name returns the backend identifier.
func (b *Backend) Name() string {
	return backend.BackendGPU
}

// Init acquires GPU resources: instance, adapter (preferring a
// high-performance GPU), device and queue. With a host handle it is a
// no-op beyond marking the backend ready.
func (b *Backend) Init() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.initialized {
		return nil
	}
	if b.handle != nil {
		b.initialized = true
		return nil
	}

	b.instance = core.NewInstance(&gputypes.InstanceDescriptor{
		Backends: gputypes.BackendsPrimary,
	})

	adapterID, err := b.instance.RequestAdapter(&gputypes.RequestAdapterOptions{
		PowerPreference: gputypes.PowerPreferenceHighPerformance,
	})
	if err != nil {
		b.instance = nil
		return fmt.Errorf("%w: %w", ErrNoGPU, err)
	}
	b.adapter = adapterID
	b.info = adapterInfo(adapterID)
	if b.info != nil {
		canvas.Logger().Info("gpu: adapter selected", "gpu", b.info.String(), "driver", b.info.Driver)
	}

	deviceID, err := core.RequestDevice(adapterID, &types.DeviceDescriptor{
		Label:            "canvas-gpu-device",
		RequiredFeatures: nil,
		RequiredLimits:   types.DefaultLimits(),
	})
	if err != nil {
		b.releaseLocked()
		return fmt.Errorf("gpu: device creation failed: %w", err)
	}
	b.device = deviceID

	queueID, err := core.GetDeviceQueue(deviceID)
	if err != nil {
		b.releaseLocked()
		return fmt.Errorf("gpu: queue retrieval failed: %w", err)
	}
	b.queue = queueID

	b.initialized = true
	return nil
}

// Close releases all backend resources. Host-provided devices are left
// untouched; the host owns them.
func (b *Backend) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.initialized {
		return
	}
	b.releaseLocked()
	b.initialized = false
}

// releaseLocked drops self-acquired resources in reverse order of
// creation. The queue is released with the device.
func (b *Backend) releaseLocked() {
	if !b.device.IsZero() {
		if err := core.DeviceDrop(b.device); err != nil {
			canvas.Logger().Warn("gpu: device release failed", "err", err)
		}
		b.device = core.DeviceID{}
	}
	if !b.adapter.IsZero() {
		if err := core.AdapterDrop(b.adapter); err != nil {
			canvas.Logger().Warn("gpu: adapter release failed", "err", err)
		}
		b.adapter = core.AdapterID{}
	}
	b.instance = nil
	b.queue = core.QueueID{}
	b.info = nil
}

// GPUInfo returns information about the selected adapter, or nil before
// Init or when a host handle is in use.
func (b *Backend) GPUInfo() *Info {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.info
}

// NewDevice creates a rasterization device resolving into target.
// CPU-accessible targets composite on the CPU with the GPU kernel
// taking over layer composition when the HAL layer is reachable;
// GPU-only targets are not supported yet.
func (b *Backend) NewDevice(target render.Target) (canvas.Device, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.initialized {
		return nil, backend.ErrNotInitialized
	}
	if target == nil {
		return nil, backend.ErrNoTarget
	}
	if target.Pixels() == nil {
		return nil, fmt.Errorf("gpu: GPU-only targets not supported yet")
	}
	return newDevice(target, b.handle), nil
}

// adapterInfo retrieves adapter details, nil when unavailable.
func adapterInfo(adapterID core.AdapterID) *Info {
	info, err := core.GetAdapterInfo(adapterID)
	if err != nil {
		canvas.Logger().Warn("gpu: adapter info unavailable", "err", err)
		return nil
	}
	return &Info{
		Name:       info.Name,
		Vendor:     info.Vendor,
		DeviceType: info.DeviceType,
		Backend:    info.Backend,
		Driver:     info.Driver,
	}
}
