package backend

import (
	"errors"

	"github.com/gogpu/canvas"
	"github.com/gogpu/canvas/render"
)

// Common backend errors.
var (
	// ErrBackendNotAvailable is returned when a requested backend is not available.
	ErrBackendNotAvailable = errors.New("backend: not available")

	// ErrNotInitialized is returned when operations are called before Init.
	ErrNotInitialized = errors.New("backend: not initialized")

	// ErrNoTarget is returned when NewDevice is called with a nil target.
	ErrNoTarget = errors.New("backend: nil target")
)

// Backend name constants.
const (
	// BackendSoftware is the name of the CPU span-compositing backend.
	BackendSoftware = "software"

	// BackendGPU is the name of the wgpu-based GPU backend.
	BackendGPU = "gpu"
)

// Backend constructs rasterization devices for render targets.
// It abstracts device construction, letting the engine support multiple
// rasterizers (CPU spans, GPU via wgpu) behind one registry.
//
// Backends must be registered via Register() and are selected via
// Get() or Default().
type Backend interface {
	// Name returns the backend identifier (e.g., "software", "gpu").
	Name() string

	// Init initializes the backend. It must be called before NewDevice.
	// Init is idempotent.
	Init() error

	// Close releases all backend resources.
	// The backend should not be used after Close is called.
	Close()

	// NewDevice creates a rasterization device that resolves frames
	// into target. The device is handed to the renderer via
	// canvas.WithDevice.
	NewDevice(target render.Target) (canvas.Device, error)
}
