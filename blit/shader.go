// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package blit

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/naga"
	"github.com/gogpu/wgpu"
)

// shaderWGSL draws one full-screen triangle sampling the source texture.
const shaderWGSL = `
@group(0) @binding(0) var src: texture_2d<f32>;
@group(0) @binding(1) var samp: sampler;

struct VertexOutput {
    @builtin(position) position: vec4<f32>,
    @location(0) uv: vec2<f32>,
}

@vertex
fn vs_main(@builtin(vertex_index) index: u32) -> VertexOutput {
    let uv = vec2<f32>(f32((index << 1u) & 2u), f32(index & 2u));
    var o: VertexOutput;
    o.position = vec4<f32>(uv.x * 2.0 - 1.0, 1.0 - uv.y * 2.0, 0.0, 1.0);
    o.uv = uv;
    return o;
}

@fragment
fn fs_main(v: VertexOutput) -> @location(0) vec4<f32> {
    return textureSample(src, samp, v.uv);
}
`

// ErrShader is returned when the blit shader fails to compile.
var ErrShader = errors.New("blit: shader compilation failed")

// CompileSPIRV compiles the blit shader to SPIR-V words.
func CompileSPIRV() ([]uint32, error) {
	b, err := naga.Compile(shaderWGSL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrShader, err)
	}
	if len(b)%4 != 0 {
		return nil, fmt.Errorf("%w: SPIR-V length %d is not a multiple of 4", ErrShader, len(b))
	}
	words := make([]uint32, len(b)/4)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(b[i*4:])
	}
	return words, nil
}

// shaderModule returns the module descriptor for backend. Vulkan takes
// precompiled SPIR-V; the other backends translate WGSL themselves.
func shaderModule(backend gputypes.Backend) (*wgpu.ShaderModuleDescriptor, error) {
	desc := &wgpu.ShaderModuleDescriptor{Label: "blit"}
	if backend != gputypes.BackendVulkan {
		desc.WGSL = shaderWGSL
		return desc, nil
	}
	spirv, err := CompileSPIRV()
	if err != nil {
		return nil, err
	}
	desc.SPIRV = spirv
	return desc, nil
}
