// Package gpu provides the wgpu-based rasterization backend.
//
// The backend acquires a GPU through gogpu/wgpu (instance, adapter,
// device, queue) and compiles its layer-composite kernel from WGSL to
// SPIR-V with gogpu/naga. Span compositing itself still runs on the CPU
// and is uploaded to the target; the GPU pipeline takes over per-stage
// as it matures, mirroring how the device was brought up.
//
// Importing the package registers it with the backend registry:
//
//	import _ "github.com/gogpu/canvas/backend/gpu"
//
// Hosts that already own a GPU device pass it in instead of letting the
// backend acquire one:
//
//	b := gpu.NewWithHandle(appHandle)
package gpu
