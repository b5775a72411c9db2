// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"testing"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

func TestDefaultTextureDescriptor(t *testing.T) {
	desc := DefaultTextureDescriptor(800, 600, gputypes.TextureFormatRGBA8Unorm)

	if desc.Width != 800 || desc.Height != 600 {
		t.Errorf("dimensions = %dx%d, want 800x600", desc.Width, desc.Height)
	}
	if desc.Depth != 1 {
		t.Errorf("Depth = %d, want 1", desc.Depth)
	}
	if desc.MipLevelCount != 1 {
		t.Errorf("MipLevelCount = %d, want 1", desc.MipLevelCount)
	}
	if desc.SampleCount != 1 {
		t.Errorf("SampleCount = %d, want 1", desc.SampleCount)
	}
	if desc.Usage&TextureUsageTextureBinding == 0 {
		t.Error("Usage missing TextureBinding")
	}
	if desc.Usage&TextureUsageRenderAttachment == 0 {
		t.Error("Usage missing RenderAttachment")
	}
}

func TestNullDeviceHandle(t *testing.T) {
	var h DeviceHandle = NullDeviceHandle{}

	if h.Device() != nil {
		t.Error("Device() != nil for null handle")
	}
	if h.Queue() != nil {
		t.Error("Queue() != nil for null handle")
	}
	if (NullDeviceHandle{}).Adapter() != nil {
		t.Error("Adapter() != nil for null handle")
	}
	if got := (NullDeviceHandle{}).SurfaceFormat(); got != gputypes.TextureFormatUndefined {
		t.Errorf("SurfaceFormat() = %v, want Undefined", got)
	}
	// Satisfies the full gpucontext.DeviceProvider surface, including
	// adapter metadata; the null handle must not report Discrete.
	var provider gpucontext.DeviceProvider = NullDeviceHandle{}
	info := provider.AdapterInfo()
	if info.Type != gpucontext.AdapterTypeUnknown {
		t.Errorf("AdapterInfo().Type = %v, want Unknown", info.Type)
	}
	if info.Name != "" {
		t.Errorf("AdapterInfo().Name = %q, want empty", info.Name)
	}
}
