// Package pigeon renders the per-frame output of an immediate-mode GUI
// library through WebGPU.
//
// # Overview
//
// An immediate-mode GUI library emits, every frame, a set of texture deltas
// (atlas creation and incremental updates) and an ordered list of clipped,
// textured triangle meshes. pigeon translates that output into GPU buffers,
// bind groups, and scissored indexed draw calls.
//
// # Quick Start
//
//	import (
//	    "github.com/chameko/pigeon"
//	    wgpupipe "github.com/chameko/pigeon/backend/wgpu"
//	)
//
//	painter, _ := wgpupipe.New(device, queue, wgpupipe.Config{})
//	pipe, _ := pigeon.New(painter)
//
//	// Each frame, after the GUI library has tessellated its output:
//	pipe.Prepare(deltas, primitives, screen)
//	// ... begin a render pass on the target surface ...
//	pipe.Render(painter.Pass(renderPass))
//
// The host owns the device, surface, and event loop. Prepare must complete
// before Render is called for the same frame; both must run on the thread
// that drives the render loop.
//
// # Architecture
//
// The library is organized into:
//   - Root package: boundary types (Vertex, Mesh, ClippedPrimitive, texture
//     deltas), the frame translation core, and the Pipeline orchestrator.
//   - backend/wgpu: the renderer implementation over cogentcore/webgpu.
//
// The Pipeline is written against the Painter, Texture, and RenderPass
// interfaces, so hosts can substitute their own renderer layer.
//
// # Coordinate System
//
// UI coordinates are in points with origin (0,0) at top-left, X increasing
// right and Y increasing down. Scissor rectangles are in physical device
// pixels; the DPI scale (pixels per point) converts between the two.
package pigeon

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
