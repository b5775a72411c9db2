// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render provides the integration layer between the canvas
// engine and GPU frameworks.
//
// This package defines the abstractions for device integration, letting
// the engine resolve frames into surfaces provided by host applications
// and hand device access to external draw callbacks.
//
// # Key Principle
//
// The engine RECEIVES a GPU device from the host application, it does
// NOT create its own. This follows the Vello/femtovg/Skia pattern where
// the rendering library is injected with GPU resources rather than
// managing them itself. The sole exception is the self-hosted backend
// under backend/gpu, which acquires a device when no host supplies one.
//
// # Core Interfaces
//
//   - DeviceHandle: GPU device access from the host application
//   - Target: where frame output goes (Pixmap, Texture, Surface)
//   - Texture, TextureView: GPU resource handles shared with backends
//
// # Target Implementations
//
//   - PixmapTarget: CPU-backed *image.RGBA target
//   - TextureTarget: GPU texture target for offscreen frames
//   - SurfaceTarget: window surface from the host
//
// # Usage
//
// Software rendering into a pixmap:
//
//	target := render.NewPixmapTarget(800, 600)
//	cv := canvas.New(800, 600, canvas.WithTarget(target))
//	...
//	img := target.Image()
//
// Handing the device to an external functor happens through the
// HandoffInfo the engine builds; its Device field carries the same
// DeviceHandle the host injected (or NullDeviceHandle for CPU-only
// rendering).
//
// # Thread Safety
//
// Targets are NOT thread-safe. Each target belongs to the renderer
// drawing into it, on that renderer's goroutine.
//
// # References
//
//   - Vello DeviceProvider pattern: https://github.com/AhornGraphics/vello
//   - femtovg Renderer trait: https://github.com/AhornGraphics/femtovg
//   - Skia GrDirectContext: https://skia.org/docs/user/api/
package render
