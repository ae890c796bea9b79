package pigeon

import "image"

// Painter is the renderer abstraction the pipeline draws through. It owns
// the GPU pipeline, the shared vertex/index buffers, the screen uniform,
// and texture allocation. backend/wgpu provides the WebGPU implementation.
//
// Buffer and uniform updates are full replacements, issued once per frame
// by [Pipeline.Prepare]. Uploads are fire-and-forget command submissions;
// a Painter never blocks on GPU completion. Only resource creation can
// fail; upload methods absorb transient conditions locally.
type Painter interface {
	// CreateTexture allocates a BGRA8 texture of the given pixel size,
	// paired with a binding for the shared sampler.
	CreateTexture(size image.Point, label string) (Texture, error)

	// SetVertices replaces the shared vertex buffer contents with verts.
	SetVertices(verts []Vertex)

	// SetIndices replaces the shared 32-bit index buffer contents.
	SetIndices(indices []uint32)

	// SetUniform schedules an update of the screen uniform with the
	// screen size in UI points.
	SetUniform(screenSize [2]float32)

	// Release frees the painter's GPU resources. Textures created by
	// CreateTexture are released separately by their owner.
	Release()
}

// Texture is a GPU texture paired with its binding descriptor.
type Texture interface {
	// Size returns the texture dimensions in pixels.
	Size() image.Point

	// Fill overwrites the entire texture with 8-bit BGRA pixel data,
	// row-major, 4*width*height bytes.
	Fill(bgra []byte)

	// Transfer writes BGRA pixel data into the given sub-rectangle.
	// The region must lie within the texture bounds.
	Transfer(bgra []byte, region image.Rectangle)

	// Release frees the texture and its binding.
	Release()
}

// RenderPass issues draw commands for one frame into a host render pass.
// Obtain one from the backend (for WebGPU, Painter.Pass in backend/wgpu)
// and hand it to [Pipeline.Render].
type RenderPass interface {
	// BindPipeline binds the UI pipeline, the shared vertex/index
	// buffers, and the screen uniform. Called once before any draw.
	BindPipeline()

	// BindTexture binds t's binding descriptor for subsequent draws.
	BindTexture(t Texture)

	// SetScissor sets the scissor rectangle in device pixels.
	SetScissor(x, y, width, height uint32)

	// DrawIndexed draws the index range [start, end) of the shared index
	// buffer with a single instance.
	DrawIndexed(start, end uint32)
}
