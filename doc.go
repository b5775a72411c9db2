// Package canvas provides a retained-state 2D rendering surface for Go.
//
// # Overview
//
// canvas sits between application drawing code and a rendering device.
// It keeps the full drawing state (transform matrix, clip stack and the
// save/restore ledger) on the Go side, dispatches draw operations to a
// pluggable Device, and supports recording draw streams for later replay.
// It is designed to integrate with the GoGPU ecosystem: targets and
// device handles come from the render subpackage, and backends register
// themselves through the backend subpackage.
//
// # Quick Start
//
//	import "github.com/gogpu/canvas"
//
//	c := canvas.New(512, 512)
//	if err := c.Prepare(true); err != nil {
//		log.Fatal(err)
//	}
//
//	paint := canvas.NewPaint()
//	paint.Color = canvas.RGB(255, 0, 0)
//	c.DrawCircle(256, 256, 100, paint)
//
//	if err := c.Finish(); err != nil {
//		log.Fatal(err)
//	}
//
// # State Model
//
// A fresh canvas holds one baseline state entry that can never be
// popped. Save pushes a snapshot and returns the count before the push,
// so the value can be handed directly to RestoreToCount. SaveLayer
// additionally redirects drawing into an offscreen layer that is
// composited on the matching Restore.
//
// Clips only ever shrink the drawable area within a save bracket;
// ClipRect, ClipPath and ClipRegion combine with the current clip under
// the requested ClipOp, and Restore reinstates the clip captured by the
// matching Save.
//
// # Recording
//
// Recorder implements the same drawing surface but captures operations
// into a DisplayList instead of touching a device. A DisplayList can be
// replayed onto any canvas any number of times.
//
// # Hand-off
//
// Interrupt and Resume bracket periods where an external renderer owns
// the target. CallDrawFunctor wraps the bracket around a single foreign
// draw call and hands it the device handle and current state.
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians
package canvas

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
