// Package backend provides a pluggable rasterization device registry.
//
// A Backend constructs canvas.Device instances for render targets.
// The software backend is registered on import of this package; the GPU
// backend registers itself on import of backend/gpu:
//
//	import (
//	    "github.com/gogpu/canvas/backend"
//	    _ "github.com/gogpu/canvas/backend/gpu"
//	)
//
// Select a backend explicitly by name, or take the best available:
//
//	b, err := backend.InitDefault()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer b.Close()
//
//	dev, err := b.NewDevice(target)
//	cv := canvas.New(800, 600, canvas.WithDevice(dev), canvas.WithTarget(target))
package backend
