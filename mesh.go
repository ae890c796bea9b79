package pigeon

import "image"

// TextureID is an opaque identifier for a texture managed by the GUI
// library. The library allocates ids; pigeon only keys its texture cache
// by them.
type TextureID uint64

// Vertex is one tessellated UI vertex.
type Vertex struct {
	// Pos is the position in UI points.
	Pos [2]float32

	// UV is the texture coordinate in normalized [0, 1] texture space.
	UV [2]float32

	// Color is a packed premultiplied sRGBA color, red in the low byte.
	Color uint32
}

// VertexStride is the byte size of one Vertex in the GPU vertex buffer.
const VertexStride = 5 * 4

// PackColor packs premultiplied sRGBA channels into the vertex color format.
func PackColor(r, g, b, a uint8) uint32 {
	return uint32(r) | uint32(g)<<8 | uint32(b)<<16 | uint32(a)<<24
}

// Mesh is one tessellated drawable unit: a triangle list whose triangles
// all sample from the same texture.
type Mesh struct {
	// Vertices is the vertex data, in mesh-local index space.
	Vertices []Vertex

	// Indices into Vertices, three per triangle.
	Indices []uint32

	// Texture identifies the texture the triangles sample from.
	Texture TextureID
}

// ClippedPrimitive pairs one primitive with its clip rectangle.
// A primitive is either a mesh or a host-defined paint callback;
// callbacks are not supported by this pipeline and are skipped with
// a warning.
type ClippedPrimitive struct {
	// ClipRect bounds the primitive in UI points. Rasterization outside
	// the rect is discarded via the scissor test.
	ClipRect Rect

	// Mesh is the tessellated geometry. Nil when Callback is set.
	Mesh *Mesh

	// Callback is an opaque paint callback. Unsupported.
	Callback any
}

// ScreenDescriptor describes the render target for one frame.
type ScreenDescriptor struct {
	// SizeInPixels is the target surface size in physical pixels.
	SizeInPixels image.Point

	// PixelsPerPoint is the HiDPI scale factor (pixels per UI point).
	PixelsPerPoint float32
}

// ScreenSizeInPoints returns the screen size in UI points.
func (sd ScreenDescriptor) ScreenSizeInPoints() [2]float32 {
	return [2]float32{
		float32(sd.SizeInPixels.X) / sd.PixelsPerPoint,
		float32(sd.SizeInPixels.Y) / sd.PixelsPerPoint,
	}
}
