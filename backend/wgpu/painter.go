package wgpu

import (
	_ "embed"
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"

	"github.com/chameko/pigeon"
)

//go:embed ui.wgsl
var shaderSource string

// uniformSize is the byte size of the screen uniform: the screen size in
// points plus padding to a 16-byte boundary.
const uniformSize = 16

// Config holds configuration for creating a Painter.
type Config struct {
	// Format is the texture format of the render target the pipeline
	// draws into, normally the surface format (default: BGRA8 sRGB).
	Format wgpu.TextureFormat
}

// Painter implements [pigeon.Painter] on a WebGPU device and queue.
//
// It owns the render pipeline and the GPU resources shared across the
// frame: the vertex and index buffers, the screen uniform, and the
// sampler used by every texture. The device and queue are borrowed from
// the host and are not released with the painter.
//
// Painter is not safe for concurrent use.
type Painter struct {
	device *wgpu.Device
	queue  *wgpu.Queue

	pipeline      *wgpu.RenderPipeline
	sampler       *wgpu.Sampler
	textureLayout *wgpu.BindGroupLayout

	uniformBuf  *wgpu.Buffer
	uniformBind *wgpu.BindGroup

	vertices dynamicBuffer
	indices  dynamicBuffer
}

var _ pigeon.Painter = (*Painter)(nil)

// New creates a Painter rendering to targets of the configured format.
func New(device *wgpu.Device, queue *wgpu.Queue, config Config) (*Painter, error) {
	if device == nil {
		return nil, ErrNilDevice
	}
	if queue == nil {
		return nil, ErrNilQueue
	}
	if config.Format == wgpu.TextureFormatUndefined {
		config.Format = wgpu.TextureFormatBGRA8UnormSrgb
	}

	p := &Painter{
		device:   device,
		queue:    queue,
		vertices: dynamicBuffer{label: "ui vertex buffer", usage: wgpu.BufferUsageVertex},
		indices:  dynamicBuffer{label: "ui index buffer", usage: wgpu.BufferUsageIndex},
	}
	if err := p.init(config); err != nil {
		p.Release()
		return nil, err
	}
	return p, nil
}

func (p *Painter) init(config Config) error {
	shader, err := p.device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:          "ui shader",
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{Code: shaderSource},
	})
	if err != nil {
		return fmt.Errorf("wgpu: compile ui shader: %w", err)
	}
	defer shader.Release()

	uniformLayout, err := p.device.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label: "ui uniform layout",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: wgpu.ShaderStageVertex,
				Buffer: wgpu.BufferBindingLayout{
					Type:           wgpu.BufferBindingTypeUniform,
					MinBindingSize: uniformSize,
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("wgpu: create uniform layout: %w", err)
	}
	defer uniformLayout.Release()

	p.textureLayout, err = p.device.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label: "ui texture layout",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: wgpu.ShaderStageFragment,
				Texture: wgpu.TextureBindingLayout{
					SampleType:    wgpu.TextureSampleTypeFloat,
					ViewDimension: wgpu.TextureViewDimension2D,
				},
			},
			{
				Binding:    1,
				Visibility: wgpu.ShaderStageFragment,
				Sampler: wgpu.SamplerBindingLayout{
					Type: wgpu.SamplerBindingTypeFiltering,
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("wgpu: create texture layout: %w", err)
	}

	pipelineLayout, err := p.device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label:            "ui pipeline layout",
		BindGroupLayouts: []*wgpu.BindGroupLayout{uniformLayout, p.textureLayout},
	})
	if err != nil {
		return fmt.Errorf("wgpu: create pipeline layout: %w", err)
	}
	defer pipelineLayout.Release()

	// Premultiplied alpha over.
	blend := wgpu.BlendState{
		Color: wgpu.BlendComponent{
			Operation: wgpu.BlendOperationAdd,
			SrcFactor: wgpu.BlendFactorOne,
			DstFactor: wgpu.BlendFactorOneMinusSrcAlpha,
		},
		Alpha: wgpu.BlendComponent{
			Operation: wgpu.BlendOperationAdd,
			SrcFactor: wgpu.BlendFactorOne,
			DstFactor: wgpu.BlendFactorOneMinusSrcAlpha,
		},
	}

	p.pipeline, err = p.device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label:  "ui pipeline",
		Layout: pipelineLayout,
		Vertex: wgpu.VertexState{
			Module:     shader,
			EntryPoint: "vs_main",
			Buffers: []wgpu.VertexBufferLayout{
				{
					ArrayStride: pigeon.VertexStride,
					StepMode:    wgpu.VertexStepModeVertex,
					Attributes: []wgpu.VertexAttribute{
						{Format: wgpu.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0},
						{Format: wgpu.VertexFormatFloat32x2, Offset: 8, ShaderLocation: 1},
						{Format: wgpu.VertexFormatUint32, Offset: 16, ShaderLocation: 2},
					},
				},
			},
		},
		Fragment: &wgpu.FragmentState{
			Module:     shader,
			EntryPoint: "fs_main",
			Targets: []wgpu.ColorTargetState{
				{
					Format:    config.Format,
					Blend:     &blend,
					WriteMask: wgpu.ColorWriteMaskAll,
				},
			},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  wgpu.PrimitiveTopologyTriangleList,
			FrontFace: wgpu.FrontFaceCCW,
			CullMode:  wgpu.CullModeNone,
		},
		Multisample: wgpu.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		return fmt.Errorf("wgpu: create ui pipeline: %w", err)
	}

	// Nearest magnification keeps font atlas texels crisp; linear
	// minification smooths scaled-down images.
	p.sampler, err = p.device.CreateSampler(&wgpu.SamplerDescriptor{
		Label:         "ui sampler",
		AddressModeU:  wgpu.AddressModeClampToEdge,
		AddressModeV:  wgpu.AddressModeClampToEdge,
		AddressModeW:  wgpu.AddressModeClampToEdge,
		MagFilter:     wgpu.FilterModeNearest,
		MinFilter:     wgpu.FilterModeLinear,
		MipmapFilter:  wgpu.MipmapFilterModeNearest,
		LodMinClamp:   0,
		LodMaxClamp:   32,
		MaxAnisotropy: 1,
	})
	if err != nil {
		return fmt.Errorf("wgpu: create ui sampler: %w", err)
	}

	p.uniformBuf, err = p.device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "ui uniform buffer",
		Size:  uniformSize,
		Usage: wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("wgpu: create uniform buffer: %w", err)
	}

	p.uniformBind, err = p.device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  "ui uniform bind group",
		Layout: uniformLayout,
		Entries: []wgpu.BindGroupEntry{
			{Binding: 0, Buffer: p.uniformBuf, Offset: 0, Size: uniformSize},
		},
	})
	if err != nil {
		return fmt.Errorf("wgpu: create uniform bind group: %w", err)
	}

	return nil
}

// SetVertices replaces the shared vertex buffer contents.
func (p *Painter) SetVertices(vertices []pigeon.Vertex) {
	if err := p.vertices.upload(p.device, p.queue, wgpu.ToBytes(vertices)); err != nil {
		pigeon.Logger().Error("wgpu: vertex upload failed", "error", err)
	}
}

// SetIndices replaces the shared index buffer contents.
func (p *Painter) SetIndices(indices []uint32) {
	if err := p.indices.upload(p.device, p.queue, wgpu.ToBytes(indices)); err != nil {
		pigeon.Logger().Error("wgpu: index upload failed", "error", err)
	}
}

// SetUniform updates the screen uniform with the screen size in points.
func (p *Painter) SetUniform(screenSizeInPoints [2]float32) {
	data := [4]float32{screenSizeInPoints[0], screenSizeInPoints[1], 0, 0}
	if err := p.queue.WriteBuffer(p.uniformBuf, 0, wgpu.ToBytes(data[:])); err != nil {
		pigeon.Logger().Error("wgpu: uniform upload failed", "error", err)
	}
}

// Release frees the painter's GPU resources. The borrowed device and
// queue are left alone.
func (p *Painter) Release() {
	p.vertices.release()
	p.indices.release()
	if p.uniformBind != nil {
		p.uniformBind.Release()
		p.uniformBind = nil
	}
	if p.uniformBuf != nil {
		p.uniformBuf.Release()
		p.uniformBuf = nil
	}
	if p.sampler != nil {
		p.sampler.Release()
		p.sampler = nil
	}
	if p.pipeline != nil {
		p.pipeline.Release()
		p.pipeline = nil
	}
	if p.textureLayout != nil {
		p.textureLayout.Release()
		p.textureLayout = nil
	}
}
