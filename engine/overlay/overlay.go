// Package overlay draws screen-space proxy quads on a WebGPU surface. It is a
// debugging aid for inspecting what the sizer produces and is not needed to
// compute size classes.
package overlay

import (
	"errors"
	"fmt"
	"log"
	"runtime"
	"sync"

	"github.com/Carmen-Shannon/oxy-lod/engine/mesh"
	"github.com/cogentcore/webgpu/wgpu"
)

// ErrNoSurface is returned by Draw before the first Resize.
var ErrNoSurface = errors.New("overlay surface is not configured")

// Overlay renders batches of aspect-corrected NDC quads.
type Overlay interface {
	// Resize configures the surface for a new framebuffer size.
	// Zero dimensions leave the surface unconfigured until the next non-zero size.
	//
	// Parameters:
	//   - width: framebuffer width in pixels
	//   - height: framebuffer height in pixels
	Resize(width, height int)

	// Draw clears the surface and draws the quads in one indexed draw call.
	// Quads beyond the configured capacity are dropped.
	//
	// Parameters:
	//   - quads: screen-space quads, as returned by sizer.ScreenSpaceQuad
	//
	// Returns:
	//   - error: ErrNoSurface, or any error acquiring or encoding the frame
	Draw(quads []mesh.IndexedVertexPositions) error

	// Release frees all GPU resources.
	Release()
}

type overlay struct {
	mu sync.Mutex

	maxQuads             int
	clearColor           wgpu.Color
	forceFallbackAdapter bool

	instance      *wgpu.Instance
	surface       *wgpu.Surface
	adapter       *wgpu.Adapter
	device        *wgpu.Device
	queue         *wgpu.Queue
	surfaceFormat wgpu.TextureFormat
	configured    bool
	aspect        float32

	pipeline     *wgpu.RenderPipeline
	bindGroup    *wgpu.BindGroup
	uniformBuf   *wgpu.Buffer
	vertexBuf    *wgpu.Buffer
	indexBuf     *wgpu.Buffer
	bindLayout   *wgpu.BindGroupLayout
	pipeLayout   *wgpu.PipelineLayout
	shaderModule *wgpu.ShaderModule
}

var _ Overlay = &overlay{}

// NewOverlay creates the GPU device and pipeline for a window surface.
// Call Resize with the framebuffer size before the first Draw.
//
// Parameters:
//   - surfaceDescriptor: the window's surface descriptor, e.g. from window.Window.SurfaceDescriptor
//   - options: functional options to configure the overlay
//
// Returns:
//   - Overlay: the new overlay
//   - error: any error creating the adapter, device or pipeline
func NewOverlay(surfaceDescriptor *wgpu.SurfaceDescriptor, options ...OverlayBuilderOption) (Overlay, error) {
	runtime.LockOSThread()

	o := newOverlayConfig(options...)
	o.instance = wgpu.CreateInstance(nil)
	o.surface = o.instance.CreateSurface(surfaceDescriptor)

	a, err := o.instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		ForceFallbackAdapter: o.forceFallbackAdapter,
		CompatibleSurface:    o.surface,
	})
	if err != nil {
		o.Release()
		return nil, fmt.Errorf("failed to request adapter: %w", err)
	}
	o.adapter = a

	d, err := a.RequestDevice(&wgpu.DeviceDescriptor{
		Label: "Overlay Device",
	})
	if err != nil {
		o.Release()
		return nil, fmt.Errorf("failed to request device: %w", err)
	}
	o.device = d
	o.queue = d.GetQueue()

	capabilities := o.surface.GetCapabilities(o.adapter)
	o.surfaceFormat = capabilities.Formats[0]

	if err := o.initPipeline(); err != nil {
		o.Release()
		return nil, fmt.Errorf("failed to create overlay pipeline: %w", err)
	}
	if err := o.initBuffers(); err != nil {
		o.Release()
		return nil, fmt.Errorf("failed to create overlay buffers: %w", err)
	}

	log.Printf("[Overlay] created with capacity for %d quads", o.maxQuads)
	return o, nil
}

// newOverlayConfig applies defaults and options without touching the GPU.
func newOverlayConfig(options ...OverlayBuilderOption) *overlay {
	o := &overlay{
		maxQuads:   1024,
		clearColor: wgpu.Color{R: 0.1, G: 0.1, B: 0.1, A: 1.0},
		aspect:     1,
	}
	for _, option := range options {
		option(o)
	}
	return o
}

// vertexCapacity and indexCapacity return buffer sizes in bytes.
func (o *overlay) vertexCapacity() uint64 {
	var v mesh.GPUPositionVertex
	return uint64(o.maxQuads * 4 * v.Size())
}

func (o *overlay) indexCapacity() uint64 {
	return uint64(o.maxQuads * 6 * 4)
}

func (o *overlay) initPipeline() error {
	module, err := o.device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label: "Screen Quad Shader",
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{
			Code: mesh.ScreenQuadShaderSource,
		},
	})
	if err != nil {
		return err
	}
	o.shaderModule = module

	entry := wgpu.BindGroupLayoutEntry{
		Binding:    0,
		Visibility: wgpu.ShaderStageVertex,
	}
	entry.Buffer.Type = wgpu.BufferBindingTypeUniform

	o.bindLayout, err = o.device.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label:   "Screen Quad Bind Group Layout",
		Entries: []wgpu.BindGroupLayoutEntry{entry},
	})
	if err != nil {
		return err
	}

	o.pipeLayout, err = o.device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label:            "Screen Quad Pipeline Layout",
		BindGroupLayouts: []*wgpu.BindGroupLayout{o.bindLayout},
	})
	if err != nil {
		return err
	}

	o.pipeline, err = o.device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label:  "Screen Quad Render Pipeline",
		Layout: o.pipeLayout,
		Vertex: wgpu.VertexState{
			Module:     module,
			EntryPoint: "vs_main",
			Buffers:    []wgpu.VertexBufferLayout{mesh.PositionVertexLayout()},
		},
		Fragment: &wgpu.FragmentState{
			Module:     module,
			EntryPoint: "fs_main",
			Targets: []wgpu.ColorTargetState{
				{
					Format:    o.surfaceFormat,
					WriteMask: wgpu.ColorWriteMaskAll,
					Blend: &wgpu.BlendState{
						Color: wgpu.BlendComponent{
							SrcFactor: wgpu.BlendFactorSrcAlpha,
							DstFactor: wgpu.BlendFactorOneMinusSrcAlpha,
							Operation: wgpu.BlendOperationAdd,
						},
						Alpha: wgpu.BlendComponent{
							SrcFactor: wgpu.BlendFactorOne,
							DstFactor: wgpu.BlendFactorOneMinusSrcAlpha,
							Operation: wgpu.BlendOperationAdd,
						},
					},
				},
			},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  mesh.Topology,
			FrontFace: wgpu.FrontFaceCCW,
			CullMode:  wgpu.CullModeNone,
		},
		Multisample: wgpu.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
	})
	return err
}

func (o *overlay) initBuffers() error {
	var uniform mesh.GPUScreenQuadUniform
	var err error

	o.uniformBuf, err = o.device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "Screen Quad Uniform Buffer",
		Size:  uint64(uniform.Size()),
		Usage: wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return err
	}
	o.vertexBuf, err = o.device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "Screen Quad Vertex Buffer",
		Size:  o.vertexCapacity(),
		Usage: wgpu.BufferUsageVertex | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return err
	}
	o.indexBuf, err = o.device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "Screen Quad Index Buffer",
		Size:  o.indexCapacity(),
		Usage: wgpu.BufferUsageIndex | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return err
	}

	o.bindGroup, err = o.device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  "Screen Quad Bind Group",
		Layout: o.bindLayout,
		Entries: []wgpu.BindGroupEntry{
			{
				Binding: 0,
				Buffer:  o.uniformBuf,
				Offset:  0,
				Size:    wgpu.WholeSize,
			},
		},
	})
	return err
}

func (o *overlay) Resize(width, height int) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if width <= 0 || height <= 0 {
		o.configured = false
		return
	}

	capabilities := o.surface.GetCapabilities(o.adapter)
	o.surface.Configure(o.adapter, o.device, &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      o.surfaceFormat,
		Width:       uint32(width),
		Height:      uint32(height),
		PresentMode: wgpu.PresentModeFifo,
		AlphaMode:   capabilities.AlphaModes[0],
	})
	o.configured = true

	o.aspect = float32(width) / float32(height)
	uniform := mesh.GPUScreenQuadUniform{Aspect: o.aspect}
	o.queue.WriteBuffer(o.uniformBuf, 0, uniform.Marshal())
}

func (o *overlay) Draw(quads []mesh.IndexedVertexPositions) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if !o.configured {
		return ErrNoSurface
	}

	batch := mesh.Merge(quads[:min(len(quads), o.maxQuads)]...)
	if !batch.Empty() {
		o.queue.WriteBuffer(o.vertexBuf, 0, batch.MarshalPositions())
		o.queue.WriteBuffer(o.indexBuf, 0, batch.MarshalIndices())
	}

	surfaceTexture, err := o.surface.GetCurrentTexture()
	if err != nil {
		return err
	}
	defer surfaceTexture.Release()

	view, err := surfaceTexture.CreateView(nil)
	if err != nil {
		return err
	}
	defer view.Release()

	encoder, err := o.device.CreateCommandEncoder(nil)
	if err != nil {
		return err
	}
	defer encoder.Release()

	pass := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:       view,
				LoadOp:     wgpu.LoadOpClear,
				StoreOp:    wgpu.StoreOpStore,
				ClearValue: o.clearColor,
			},
		},
	})
	if len(batch.Indices) > 0 {
		pass.SetPipeline(o.pipeline)
		pass.SetBindGroup(0, o.bindGroup, nil)
		pass.SetVertexBuffer(0, o.vertexBuf, 0, wgpu.WholeSize)
		pass.SetIndexBuffer(o.indexBuf, mesh.IndexFormat, 0, wgpu.WholeSize)
		pass.DrawIndexed(uint32(len(batch.Indices)), 1, 0, 0, 0)
	}
	pass.End()

	commandBuffer, err := encoder.Finish(nil)
	if err != nil {
		return err
	}
	defer commandBuffer.Release()

	o.queue.Submit(commandBuffer)
	o.surface.Present()
	return nil
}

func (o *overlay) Release() {
	o.mu.Lock()
	defer o.mu.Unlock()

	for _, buf := range []*wgpu.Buffer{o.uniformBuf, o.vertexBuf, o.indexBuf} {
		if buf != nil {
			buf.Release()
		}
	}
	o.uniformBuf, o.vertexBuf, o.indexBuf = nil, nil, nil

	if o.bindGroup != nil {
		o.bindGroup.Release()
		o.bindGroup = nil
	}
	if o.pipeline != nil {
		o.pipeline.Release()
		o.pipeline = nil
	}
	if o.pipeLayout != nil {
		o.pipeLayout.Release()
		o.pipeLayout = nil
	}
	if o.bindLayout != nil {
		o.bindLayout.Release()
		o.bindLayout = nil
	}
	if o.shaderModule != nil {
		o.shaderModule.Release()
		o.shaderModule = nil
	}
	if o.device != nil {
		o.device.Release()
		o.device = nil
	}
	if o.adapter != nil {
		o.adapter.Release()
		o.adapter = nil
	}
	if o.surface != nil {
		o.surface.Release()
		o.surface = nil
	}
	if o.instance != nil {
		o.instance.Release()
		o.instance = nil
	}
	o.configured = false
}
