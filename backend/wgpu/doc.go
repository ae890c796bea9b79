// Package wgpu implements the pigeon render interfaces on WebGPU,
// through the github.com/cogentcore/webgpu binding.
//
// The entry point is [New], which builds a [Painter] for a device and
// queue. The painter owns the render pipeline, the shared vertex and
// index buffers, the screen uniform, and a sampler shared by every
// texture it creates. Per frame, the host wraps a begun render pass
// encoder with [Painter.Pass] and hands the result to the pipeline:
//
//	painter, err := wgpu.New(device, queue, wgpu.Config{Format: surfaceFormat})
//	if err != nil { ... }
//	pl, err := pigeon.New(painter)
//	if err != nil { ... }
//
//	// each frame
//	pl.Prepare(deltas, prims, screen)
//	pass := encoder.BeginRenderPass(...)
//	pl.Render(painter.Pass(pass))
//	pass.End()
//
// Textures are BGRA8 sRGB. Vertex colors arrive non-linear and are
// blended premultiplied, so the pipeline output matches the source UI
// library's reference rendering rather than strict linear-space
// compositing.
package wgpu
