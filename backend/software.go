package backend

import (
	"github.com/gogpu/canvas"
	"github.com/gogpu/canvas/render"
)

// SoftwareBackend constructs CPU span-compositing devices. It has no
// resources of its own; Init and Close are bookkeeping only.
type SoftwareBackend struct {
	initialized bool
}

// init registers the software backend on package import.
func init() {
	Register(BackendSoftware, func() Backend {
		return &SoftwareBackend{}
	})
}

// NewSoftwareBackend creates a new software rendering backend.
func NewSoftwareBackend() *SoftwareBackend {
	return &SoftwareBackend{}
}

// Name returns the backend identifier.
func (b *SoftwareBackend) Name() string {
	return BackendSoftware
}

// Init initializes the backend.
func (b *SoftwareBackend) Init() error {
	b.initialized = true
	return nil
}

// Close releases all backend resources.
func (b *SoftwareBackend) Close() {
	b.initialized = false
}

// NewDevice creates a CPU device compositing into target. The target
// must provide CPU pixel access.
func (b *SoftwareBackend) NewDevice(target render.Target) (canvas.Device, error) {
	if !b.initialized {
		return nil, ErrNotInitialized
	}
	if target == nil {
		return nil, ErrNoTarget
	}
	return canvas.NewSoftwareDevice(target), nil
}
