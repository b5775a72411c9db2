package gpu

import (
	_ "embed"
	"errors"
	"fmt"

	"github.com/gogpu/naga"
	"github.com/gogpu/wgpu/hal"
	types "github.com/gogpu/gputypes"

	"github.com/gogpu/canvas"
	"github.com/gogpu/canvas/render"
)

//go:embed composite.wgsl
var compositeWGSL string

// errDispatchNotWired marks the one stage of the kernel still pending:
// binding the layer and parent pixel buffers needs HAL buffer upload
// support. Until it lands, PopLayer falls through to the CPU composite.
var errDispatchNotWired = errors.New("gpu: composite dispatch not wired to HAL buffers")

// halProvider is the duck-typed escape hatch hosts implement to expose
// the HAL layer underneath their gpucontext device.
type halProvider interface {
	HalDevice() any
	HalQueue() any
}

// compositor owns the compiled layer-composite kernel: WGSL compiled to
// SPIR-V by naga, wrapped in a HAL shader module and compute pipeline.
type compositor struct {
	device hal.Device
	queue  hal.Queue

	shaderModule     hal.ShaderModule
	pipelineLayout   hal.PipelineLayout
	inputBindLayout  hal.BindGroupLayout
	outputBindLayout hal.BindGroupLayout
	pipeline         hal.ComputePipeline

	spirv []uint32
}

// newCompositor builds the kernel against the HAL device reachable
// through handle. It fails cleanly (and the caller composites on the
// CPU) when the handle exposes no HAL layer or pipeline creation fails.
func newCompositor(handle render.DeviceHandle) (*compositor, error) {
	hp, ok := handle.(halProvider)
	if !ok {
		return nil, fmt.Errorf("gpu: device handle exposes no HAL layer")
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return nil, fmt.Errorf("gpu: HalDevice is not a hal.Device")
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok || queue == nil {
		return nil, fmt.Errorf("gpu: HalQueue is not a hal.Queue")
	}

	c := &compositor{device: device, queue: queue}
	if err := c.init(); err != nil {
		c.Destroy()
		return nil, err
	}
	return c, nil
}

func (c *compositor) init() error {
	spirv, err := compileToSPIRV(compositeWGSL)
	if err != nil {
		return fmt.Errorf("gpu: composite kernel compile failed: %w", err)
	}
	c.spirv = spirv

	module, err := c.device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  "composite_shader",
		Source: hal.ShaderSource{SPIRV: c.spirv},
	})
	if err != nil {
		return fmt.Errorf("gpu: composite shader module: %w", err)
	}
	c.shaderModule = module

	inputLayout, err := c.device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: "composite_input_layout",
		Entries: []types.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: types.ShaderStageCompute,
				Buffer: &types.BufferBindingLayout{
					Type:           types.BufferBindingTypeUniform,
					MinBindingSize: 16, // sizeof(Config)
				},
			},
			{
				Binding:    1,
				Visibility: types.ShaderStageCompute,
				Buffer: &types.BufferBindingLayout{
					Type: types.BufferBindingTypeReadOnlyStorage,
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("gpu: composite input layout: %w", err)
	}
	c.inputBindLayout = inputLayout

	outputLayout, err := c.device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: "composite_output_layout",
		Entries: []types.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: types.ShaderStageCompute,
				Buffer: &types.BufferBindingLayout{
					Type: types.BufferBindingTypeStorage,
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("gpu: composite output layout: %w", err)
	}
	c.outputBindLayout = outputLayout

	layout, err := c.device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            "composite_pipeline_layout",
		BindGroupLayouts: []hal.BindGroupLayout{c.inputBindLayout, c.outputBindLayout},
	})
	if err != nil {
		return fmt.Errorf("gpu: composite pipeline layout: %w", err)
	}
	c.pipelineLayout = layout

	pipeline, err := c.device.CreateComputePipeline(&hal.ComputePipelineDescriptor{
		Label:  "composite_pipeline",
		Layout: c.pipelineLayout,
		Compute: hal.ComputeState{
			Module:     c.shaderModule,
			EntryPoint: "cs_composite",
		},
	})
	if err != nil {
		return fmt.Errorf("gpu: composite pipeline: %w", err)
	}
	c.pipeline = pipeline

	return nil
}

// supports reports whether the kernel handles the blend mode.
func (c *compositor) supports(mode canvas.BlendMode) bool {
	return mode == canvas.BlendSrcOver || mode == canvas.BlendSrc
}

// compose dispatches the kernel for the top layer.
func (c *compositor) compose(alpha uint8, mode canvas.BlendMode) error {
	_ = alpha
	_ = mode
	return errDispatchNotWired
}

// Destroy releases GPU resources in reverse order of creation.
func (c *compositor) Destroy() {
	if c.device == nil {
		return
	}
	if c.pipeline != nil {
		c.device.DestroyComputePipeline(c.pipeline)
		c.pipeline = nil
	}
	if c.pipelineLayout != nil {
		c.device.DestroyPipelineLayout(c.pipelineLayout)
		c.pipelineLayout = nil
	}
	if c.inputBindLayout != nil {
		c.device.DestroyBindGroupLayout(c.inputBindLayout)
		c.inputBindLayout = nil
	}
	if c.outputBindLayout != nil {
		c.device.DestroyBindGroupLayout(c.outputBindLayout)
		c.outputBindLayout = nil
	}
	if c.shaderModule != nil {
		c.device.DestroyShaderModule(c.shaderModule)
		c.shaderModule = nil
	}
}

// compileToSPIRV compiles WGSL source to little-endian SPIR-V words.
func compileToSPIRV(wgsl string) ([]uint32, error) {
	spirvBytes, err := naga.Compile(wgsl)
	if err != nil {
		return nil, err
	}
	words := make([]uint32, len(spirvBytes)/4)
	for i := range words {
		words[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}
	return words, nil
}
