package pigeon

import "image"

// Group records where one mesh primitive landed in the shared buffers:
// its index range, source texture, and scissor rectangle. Groups live for
// one frame and are drawn in input order, so later primitives paint on
// top of earlier ones.
type Group struct {
	// Start and End bound the half-open range [Start, End) in the shared
	// index buffer.
	Start, End uint32

	// Texture identifies the texture the group samples from.
	Texture TextureID

	// Scissor is the group's clip rectangle in device pixels.
	Scissor PixelRect
}

// batch concatenates the meshes of prims into shared vertex and index
// slices and records one Group per mesh, in input order. Indices are
// rebased by the vertex count at append time, so each group's indices
// address that mesh's own vertices within the shared buffer. Primitives
// that are not plain meshes are skipped with a warning.
func batch(prims []ClippedPrimitive, pixelsPerPoint float32, target image.Point) ([]Vertex, []uint32, []Group) {
	var (
		vertices []Vertex
		indices  []uint32
	)
	groups := make([]Group, 0, len(prims))

	for i := range prims {
		prim := &prims[i]
		if prim.Mesh == nil {
			Logger().Warn("pigeon: paint callback primitives are not supported, skipping")
			continue
		}

		start := uint32(len(indices))
		base := uint32(len(vertices))
		for _, ix := range prim.Mesh.Indices {
			indices = append(indices, base+ix)
		}
		vertices = append(vertices, prim.Mesh.Vertices...)

		groups = append(groups, Group{
			Start:   start,
			End:     uint32(len(indices)),
			Texture: prim.Mesh.Texture,
			Scissor: ToPixelRect(prim.ClipRect, pixelsPerPoint, target),
		})
	}

	return vertices, indices, groups
}
