// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package blit draws a CPU image onto a swap chain view.
//
// It is the only rendering this module does: the image is scaled to the
// target size on the CPU, uploaded into a sampled texture, and drawn with a
// single full-screen triangle.
package blit

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu"
)

// Blitter owns the pipeline and the upload texture. It is not safe for
// concurrent use.
type Blitter struct {
	device *wgpu.Device
	log    *slog.Logger

	shader     *wgpu.ShaderModule
	layout     *wgpu.BindGroupLayout
	pipeLayout *wgpu.PipelineLayout
	pipeline   *wgpu.RenderPipeline
	sampler    *wgpu.Sampler

	// Upload texture, recreated when the target size changes.
	tex       *wgpu.Texture
	texView   *wgpu.TextureView
	bindGroup *wgpu.BindGroup
	w, h      int
}

// New builds the blit pipeline for targets of the given format.
// backend selects how the shader is handed to the device.
func New(device *wgpu.Device, backend gputypes.Backend, format gputypes.TextureFormat, logger *slog.Logger) (*Blitter, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	b := &Blitter{device: device, log: logger}
	if err := b.init(backend, format); err != nil {
		b.Release()
		return nil, err
	}
	return b, nil
}

func (b *Blitter) init(backend gputypes.Backend, format gputypes.TextureFormat) error {
	desc, err := shaderModule(backend)
	if err != nil {
		return err
	}
	if b.shader, err = b.device.CreateShaderModule(desc); err != nil {
		return fmt.Errorf("blit: shader module: %w", err)
	}

	b.layout, err = b.device.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label: "blit",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: gputypes.ShaderStageFragment,
				Texture: &gputypes.TextureBindingLayout{
					SampleType:    gputypes.TextureSampleTypeFloat,
					ViewDimension: gputypes.TextureViewDimension2D,
				},
			},
			{
				Binding:    1,
				Visibility: gputypes.ShaderStageFragment,
				Sampler:    &gputypes.SamplerBindingLayout{Type: gputypes.SamplerBindingTypeFiltering},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("blit: bind group layout: %w", err)
	}

	b.pipeLayout, err = b.device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label:            "blit",
		BindGroupLayouts: []*wgpu.BindGroupLayout{b.layout},
	})
	if err != nil {
		return fmt.Errorf("blit: pipeline layout: %w", err)
	}

	b.pipeline, err = b.device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label:  "blit",
		Layout: b.pipeLayout,
		Vertex: wgpu.VertexState{Module: b.shader, EntryPoint: "vs_main"},
		Primitive: wgpu.PrimitiveState{
			Topology: gputypes.PrimitiveTopologyTriangleList,
		},
		Multisample: wgpu.MultisampleState{Count: 1, Mask: ^uint64(0)},
		Fragment: &wgpu.FragmentState{
			Module:     b.shader,
			EntryPoint: "fs_main",
			Targets: []wgpu.ColorTargetState{{
				Format:    format,
				WriteMask: gputypes.ColorWriteMaskAll,
			}},
		},
	})
	if err != nil {
		return fmt.Errorf("blit: render pipeline: %w", err)
	}

	b.sampler, err = b.device.CreateSampler(&wgpu.SamplerDescriptor{
		Label:        "blit",
		AddressModeU: gputypes.AddressModeClampToEdge,
		AddressModeV: gputypes.AddressModeClampToEdge,
		AddressModeW: gputypes.AddressModeClampToEdge,
		MagFilter:    gputypes.FilterModeLinear,
		MinFilter:    gputypes.FilterModeLinear,
		LodMaxClamp:  32,
	})
	if err != nil {
		return fmt.Errorf("blit: sampler: %w", err)
	}
	return nil
}

// Draw scales img to width x height, uploads it and draws it over target.
func (b *Blitter) Draw(target *wgpu.TextureView, img image.Image, width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("blit: invalid target size %dx%d", width, height)
	}
	if err := b.ensureTexture(width, height); err != nil {
		return err
	}

	rgba := Scale(img, width, height)
	err := b.device.Queue().WriteTexture(
		&wgpu.ImageCopyTexture{Texture: b.tex, Aspect: gputypes.TextureAspectAll},
		rgba.Pix,
		&wgpu.ImageDataLayout{BytesPerRow: uint32(rgba.Stride), RowsPerImage: uint32(height)},
		&wgpu.Extent3D{Width: uint32(width), Height: uint32(height), DepthOrArrayLayers: 1},
	)
	if err != nil {
		return fmt.Errorf("blit: upload: %w", err)
	}

	enc, err := b.device.CreateCommandEncoder(&wgpu.CommandEncoderDescriptor{Label: "blit"})
	if err != nil {
		return fmt.Errorf("blit: command encoder: %w", err)
	}
	pass, err := enc.BeginRenderPass(&wgpu.RenderPassDescriptor{
		Label: "blit",
		ColorAttachments: []wgpu.RenderPassColorAttachment{{
			View:       target,
			LoadOp:     gputypes.LoadOpClear,
			StoreOp:    gputypes.StoreOpStore,
			ClearValue: gputypes.Color{A: 1},
		}},
	})
	if err != nil {
		return fmt.Errorf("blit: render pass: %w", err)
	}
	pass.SetPipeline(b.pipeline)
	pass.SetBindGroup(0, b.bindGroup, nil)
	pass.Draw(3, 1, 0, 0)
	if err := pass.End(); err != nil {
		return fmt.Errorf("blit: end pass: %w", err)
	}

	cmd, err := enc.Finish()
	if err != nil {
		return fmt.Errorf("blit: finish: %w", err)
	}
	if _, err := b.device.Queue().Submit(cmd); err != nil {
		return fmt.Errorf("blit: submit: %w", err)
	}
	return nil
}

func (b *Blitter) ensureTexture(w, h int) error {
	if b.tex != nil && b.w == w && b.h == h {
		return nil
	}
	b.releaseTexture()

	var err error
	b.tex, err = b.device.CreateTexture(&wgpu.TextureDescriptor{
		Label:         "blit source",
		Size:          wgpu.Extent3D{Width: uint32(w), Height: uint32(h), DepthOrArrayLayers: 1},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        gputypes.TextureFormatRGBA8Unorm,
		Usage:         gputypes.TextureUsageTextureBinding | gputypes.TextureUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("blit: source texture: %w", err)
	}
	if b.texView, err = b.device.CreateTextureView(b.tex, nil); err != nil {
		b.releaseTexture()
		return fmt.Errorf("blit: source view: %w", err)
	}
	b.bindGroup, err = b.device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  "blit",
		Layout: b.layout,
		Entries: []wgpu.BindGroupEntry{
			{Binding: 0, TextureView: b.texView},
			{Binding: 1, Sampler: b.sampler},
		},
	})
	if err != nil {
		b.releaseTexture()
		return fmt.Errorf("blit: bind group: %w", err)
	}
	b.w, b.h = w, h
	b.log.Debug("blit: source texture allocated", "width", w, "height", h)
	return nil
}

func (b *Blitter) releaseTexture() {
	if b.bindGroup != nil {
		b.bindGroup.Release()
		b.bindGroup = nil
	}
	if b.texView != nil {
		b.texView.Release()
		b.texView = nil
	}
	if b.tex != nil {
		b.tex.Release()
		b.tex = nil
	}
	b.w, b.h = 0, 0
}

// Release destroys every GPU object owned by the blitter.
func (b *Blitter) Release() {
	b.releaseTexture()
	if b.sampler != nil {
		b.sampler.Release()
		b.sampler = nil
	}
	if b.pipeline != nil {
		b.pipeline.Release()
		b.pipeline = nil
	}
	if b.pipeLayout != nil {
		b.pipeLayout.Release()
		b.pipeLayout = nil
	}
	if b.layout != nil {
		b.layout.Release()
		b.layout = nil
	}
	if b.shader != nil {
		b.shader.Release()
		b.shader = nil
	}
}
