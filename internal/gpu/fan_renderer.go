//go:build !nogpu

package gpu

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/ngon"
	"github.com/gogpu/wgpu/hal"
)

// fanUniformSize is the byte size of the fan uniform buffer:
//
//	scale (vec2<f32>) = 8 bytes
//	pad   (vec2<f32>) = 8 bytes
const fanUniformSize = 16

// FanRenderer draws an ngon.Mesh as an indexed triangle list with
// per-vertex colors. The mesh stays resident on the GPU until the next
// Upload, so unchanged frames only re-record the draw.
//
// FanRenderer is NOT safe for concurrent use. It is driven from the window
// backend's draw callback.
type FanRenderer struct {
	device hal.Device
	queue  hal.Queue
	format gputypes.TextureFormat
	clear  gputypes.Color

	// GPU objects for the render pipeline.
	shader        hal.ShaderModule
	uniformLayout hal.BindGroupLayout
	pipeLayout    hal.PipelineLayout
	pipeline      hal.RenderPipeline

	// Mesh resources, replaced on Upload.
	vertBuf    hal.Buffer
	indexBuf   hal.Buffer
	indexCount uint32
	sides      int

	// Aspect uniform, rewritten when the surface size changes.
	uniformBuf    hal.Buffer
	bindGroup     hal.BindGroup
	width, height uint32

	// Submitted frames and the queue index of the latest one.
	frames         uint64
	lastSubmission uint64

	closed bool
}

// FanOption configures a FanRenderer.
type FanOption func(*FanRenderer)

// WithFormat sets the color target format. It must match the surface
// format. The default is BGRA8Unorm.
func WithFormat(f gputypes.TextureFormat) FanOption {
	return func(r *FanRenderer) {
		r.format = f
	}
}

// WithClearColor sets the background color the render pass clears to.
func WithClearColor(c ngon.RGB) FanOption {
	return func(r *FanRenderer) {
		r.clear = gputypes.Color{R: float64(c.R), G: float64(c.G), B: float64(c.B), A: 1}
	}
}

// DefaultClearColor is the dark gray background used when no clear color
// is configured.
var DefaultClearColor = ngon.RGB{R: 0.1, G: 0.1, B: 0.1}

// NewFanRenderer creates a renderer on the given device and queue. The
// pipeline is not created until the first Upload or Render.
func NewFanRenderer(device hal.Device, queue hal.Queue, opts ...FanOption) (*FanRenderer, error) {
	if device == nil || queue == nil {
		return nil, ErrNilDevice
	}
	r := &FanRenderer{
		device: device,
		queue:  queue,
		format: gputypes.TextureFormatBGRA8Unorm,
	}
	WithClearColor(DefaultClearColor)(r)
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r, nil
}

// Sides returns the side count of the uploaded mesh, or 0 before the
// first Upload.
func (r *FanRenderer) Sides() int {
	return r.sides
}

// SubmittedFrames returns how many frames Render has submitted.
func (r *FanRenderer) SubmittedFrames() uint64 {
	return r.frames
}

// IndexCount returns the number of indices drawn per frame.
func (r *FanRenderer) IndexCount() uint32 {
	return r.indexCount
}

// Upload replaces the GPU copy of the mesh. The previous vertex and index
// buffers are destroyed.
func (r *FanRenderer) Upload(mesh ngon.Mesh) error {
	if r.closed {
		return ErrRendererClosed
	}
	if len(mesh.Triangles) == 0 {
		return ErrEmptyMesh
	}
	if err := r.ensurePipeline(); err != nil {
		return err
	}

	vertexData := mesh.VertexData()
	vertBuf, err := r.createAndUploadBuffer("ngon_vertices", vertexData,
		gputypes.BufferUsageVertex|gputypes.BufferUsageCopyDst)
	if err != nil {
		return fmt.Errorf("create vertex buffer: %w", err)
	}
	indexData := mesh.IndexData()
	indexBuf, err := r.createAndUploadBuffer("ngon_indices", indexData,
		gputypes.BufferUsageIndex|gputypes.BufferUsageCopyDst)
	if err != nil {
		r.device.DestroyBuffer(vertBuf)
		return fmt.Errorf("create index buffer: %w", err)
	}

	r.destroyMesh()
	r.vertBuf = vertBuf
	r.indexBuf = indexBuf
	r.indexCount = mesh.IndexCount()
	r.sides = mesh.Sides()

	slogger().Debug("gpu: mesh uploaded",
		"sides", r.sides,
		"vertex_bytes", len(vertexData),
		"index_bytes", len(indexData))
	return nil
}

// RecordDraws records the fan draw into an existing render pass. It is a
// no-op until a mesh has been uploaded and the uniform bound.
func (r *FanRenderer) RecordDraws(rp hal.RenderPassEncoder) {
	if rp == nil || r.pipeline == nil || r.bindGroup == nil || r.indexCount == 0 {
		return
	}
	rp.SetPipeline(r.pipeline)
	rp.SetBindGroup(0, r.bindGroup, nil)
	rp.SetVertexBuffer(0, r.vertBuf, 0)
	rp.SetIndexBuffer(r.indexBuf, gputypes.IndexFormatUint32, 0)
	rp.DrawIndexed(r.indexCount, 1, 0, 0, 0)
}

// Render clears view to the background color, draws the uploaded mesh and
// submits the frame. width and height are the surface size in pixels and
// drive the aspect correction. Presentation is left to the caller.
func (r *FanRenderer) Render(view hal.TextureView, width, height uint32) error {
	if r.closed {
		return ErrRendererClosed
	}
	if view == nil || width == 0 || height == 0 {
		return fmt.Errorf("%w: view=%v size=%dx%d", ErrInvalidSurface, view != nil, width, height)
	}
	if err := r.ensurePipeline(); err != nil {
		return err
	}
	if err := r.ensureUniform(width, height); err != nil {
		return err
	}

	encoder, err := r.device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{
		Label: "ngon_encoder",
	})
	if err != nil {
		return fmt.Errorf("create command encoder: %w", err)
	}
	if err := encoder.BeginEncoding("ngon_frame"); err != nil {
		return fmt.Errorf("begin encoding: %w", err)
	}

	rp := encoder.BeginRenderPass(&hal.RenderPassDescriptor{
		Label: "ngon_pass",
		ColorAttachments: []hal.RenderPassColorAttachment{{
			View:       view,
			LoadOp:     gputypes.LoadOpClear,
			StoreOp:    gputypes.StoreOpStore,
			ClearValue: r.clear,
		}},
	})
	r.RecordDraws(rp)
	rp.End()

	cmdBuf, err := encoder.EndEncoding()
	if err != nil {
		return fmt.Errorf("end encoding: %w", err)
	}
	defer r.device.FreeCommandBuffer(cmdBuf)

	idx, err := r.queue.Submit([]hal.CommandBuffer{cmdBuf})
	if err != nil {
		return fmt.Errorf("submit: %w", err)
	}

	// The surface must not be presented before the pass completes.
	r.device.WaitIdle()
	r.frames++
	r.lastSubmission = idx
	return nil
}

// Destroy releases all GPU resources held by the renderer. Safe to call
// multiple times. The device and queue are not destroyed.
func (r *FanRenderer) Destroy() {
	if r.closed {
		return
	}
	r.closed = true
	r.destroyMesh()
	r.destroyUniform()
	r.destroyPipeline()
}

// ensurePipeline compiles the fan shader and creates the render pipeline
// if it doesn't already exist.
func (r *FanRenderer) ensurePipeline() error {
	if r.pipeline != nil {
		return nil
	}
	return r.createPipeline()
}

func (r *FanRenderer) createPipeline() error {
	if fanShaderSource == "" {
		return fmt.Errorf("fan shader source is empty")
	}

	shader, err := r.device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  "ngon_shader",
		Source: hal.ShaderSource{WGSL: fanShaderSource},
	})
	if err != nil {
		return fmt.Errorf("compile fan shader: %w", err)
	}
	r.shader = shader

	uniformLayout, err := r.device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: "ngon_uniform_layout",
		Entries: []gputypes.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: gputypes.ShaderStageVertex,
				Buffer:     &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform},
			},
		},
	})
	if err != nil {
		r.destroyPipeline()
		return fmt.Errorf("create fan uniform layout: %w", err)
	}
	r.uniformLayout = uniformLayout

	pipeLayout, err := r.device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            "ngon_pipe_layout",
		BindGroupLayouts: []hal.BindGroupLayout{r.uniformLayout},
	})
	if err != nil {
		r.destroyPipeline()
		return fmt.Errorf("create fan pipeline layout: %w", err)
	}
	r.pipeLayout = pipeLayout

	pipeline, err := r.device.CreateRenderPipeline(&hal.RenderPipelineDescriptor{
		Label:  "ngon_pipeline",
		Layout: r.pipeLayout,
		Vertex: hal.VertexState{
			Module:     r.shader,
			EntryPoint: "vs_main",
			Buffers:    fanVertexLayout(),
		},
		Fragment: &hal.FragmentState{
			Module:     r.shader,
			EntryPoint: "fs_main",
			Targets: []gputypes.ColorTargetState{
				{
					Format:    r.format,
					WriteMask: gputypes.ColorWriteMaskAll,
				},
			},
		},
		Primitive: gputypes.PrimitiveState{
			Topology: gputypes.PrimitiveTopologyTriangleList,
			CullMode: gputypes.CullModeNone,
		},
		Multisample: gputypes.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		r.destroyPipeline()
		return fmt.Errorf("create fan pipeline: %w", err)
	}
	r.pipeline = pipeline

	slogger().Debug("gpu: fan pipeline created", "format", r.format)
	return nil
}

// ensureUniform creates the aspect uniform and its bind group on first use
// and rewrites the uniform when the surface size changes.
func (r *FanRenderer) ensureUniform(width, height uint32) error {
	if r.uniformBuf == nil {
		buf, err := r.device.CreateBuffer(&hal.BufferDescriptor{
			Label: "ngon_uniform",
			Size:  fanUniformSize,
			Usage: gputypes.BufferUsageUniform | gputypes.BufferUsageCopyDst,
		})
		if err != nil {
			return fmt.Errorf("create fan uniform buffer: %w", err)
		}
		bindGroup, err := r.device.CreateBindGroup(&hal.BindGroupDescriptor{
			Label:  "ngon_bind",
			Layout: r.uniformLayout,
			Entries: []gputypes.BindGroupEntry{
				{Binding: 0, Resource: gputypes.BufferBinding{
					Buffer: buf.NativeHandle(), Offset: 0, Size: fanUniformSize,
				}},
			},
		})
		if err != nil {
			r.device.DestroyBuffer(buf)
			return fmt.Errorf("create fan bind group: %w", err)
		}
		r.uniformBuf = buf
		r.bindGroup = bindGroup
		r.width, r.height = 0, 0
	}

	if r.width == width && r.height == height {
		return nil
	}
	r.queue.WriteBuffer(r.uniformBuf, 0, makeFanUniform(width, height))
	r.width, r.height = width, height
	return nil
}

// createAndUploadBuffer creates a GPU buffer and uploads data.
func (r *FanRenderer) createAndUploadBuffer(label string, data []byte, usage gputypes.BufferUsage) (hal.Buffer, error) {
	buf, err := r.device.CreateBuffer(&hal.BufferDescriptor{
		Label: label,
		Size:  uint64(len(data)),
		Usage: usage,
	})
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", label, err)
	}
	r.queue.WriteBuffer(buf, 0, data)
	return buf, nil
}

func (r *FanRenderer) destroyMesh() {
	if r.indexBuf != nil {
		r.device.DestroyBuffer(r.indexBuf)
		r.indexBuf = nil
	}
	if r.vertBuf != nil {
		r.device.DestroyBuffer(r.vertBuf)
		r.vertBuf = nil
	}
	r.indexCount = 0
	r.sides = 0
}

func (r *FanRenderer) destroyUniform() {
	if r.bindGroup != nil {
		r.device.DestroyBindGroup(r.bindGroup)
		r.bindGroup = nil
	}
	if r.uniformBuf != nil {
		r.device.DestroyBuffer(r.uniformBuf)
		r.uniformBuf = nil
	}
	r.width, r.height = 0, 0
}

// destroyPipeline releases pipeline resources in reverse creation order.
func (r *FanRenderer) destroyPipeline() {
	if r.pipeline != nil {
		r.device.DestroyRenderPipeline(r.pipeline)
		r.pipeline = nil
	}
	if r.pipeLayout != nil {
		r.device.DestroyPipelineLayout(r.pipeLayout)
		r.pipeLayout = nil
	}
	if r.uniformLayout != nil {
		r.device.DestroyBindGroupLayout(r.uniformLayout)
		r.uniformLayout = nil
	}
	if r.shader != nil {
		r.device.DestroyShaderModule(r.shader)
		r.shader = nil
	}
}

// fanVertexLayout returns the vertex buffer layout matching
// ngon.Mesh.VertexData.
func fanVertexLayout() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{
		{
			ArrayStride: ngon.VertexStride,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},  // position
				{Format: gputypes.VertexFormatFloat32x3, Offset: 12, ShaderLocation: 1}, // color
			},
		},
	}
}

// makeFanUniform packs the aspect scale into the 16-byte uniform layout.
func makeFanUniform(width, height uint32) []byte {
	sx, sy := ngon.AspectScale(int(width), int(height))
	buf := make([]byte, fanUniformSize)
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(sx))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(sy))
	// Padding bytes 8..15 remain zero.
	return buf
}
