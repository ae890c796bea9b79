package pigeon

// Pipeline translates one frame of GUI output into GPU buffers and draw
// calls, through a [Painter].
//
// A Pipeline has two states per frame: idle (no pending buffers) and
// prepared (buffers and uniform built, ready to draw). Prepare moves
// idle to prepared; Render consumes the prepared state without resetting
// it, so the next Prepare simply overwrites. The texture cache is the only
// state that persists across frames.
//
// Pipeline is not safe for concurrent use. The host must call Prepare and
// Render, in that order, from the single thread driving the render loop.
type Pipeline struct {
	painter  Painter
	textures textureCache

	// Current frame.
	groups   []Group
	prepared bool

	vertexCount int
	indexCount  int
}

// New creates a Pipeline drawing through painter.
func New(painter Painter) (*Pipeline, error) {
	if painter == nil {
		return nil, ErrNilPainter
	}
	return &Pipeline{
		painter:  painter,
		textures: make(textureCache),
	}, nil
}

// Prepare translates one frame: it rebuilds the shared vertex and index
// buffers from prims, applies deltas to the texture cache, and updates the
// screen uniform. It must complete before Render is called for the frame.
//
// Free deltas are applied last; an id freed here must not be referenced by
// this frame's primitives (such groups are skipped with a warning at
// render time).
//
// Texture creation failures propagate; there is no local recovery for an
// inoperable GPU resource. On error the pipeline returns to idle and the
// host should abandon the frame.
func (p *Pipeline) Prepare(deltas TexturesDelta, prims []ClippedPrimitive, screen ScreenDescriptor) error {
	vertices, indices, groups := batch(prims, screen.PixelsPerPoint, screen.SizeInPixels)

	p.painter.SetVertices(vertices)
	p.painter.SetIndices(indices)

	for _, set := range deltas.Set {
		if err := p.textures.ensure(p.painter, set.ID, set.Delta); err != nil {
			p.groups = nil
			p.prepared = false
			return err
		}
	}

	p.painter.SetUniform(screen.ScreenSizeInPoints())

	for _, id := range deltas.Free {
		p.textures.free(id)
	}

	p.groups = groups
	p.vertexCount = len(vertices)
	p.indexCount = len(indices)
	p.prepared = true
	return nil
}

// Render draws the prepared frame into pass. It binds the pipeline and the
// shared buffers once, then issues one scissored, texture-bound, indexed
// draw per group, in input order.
//
// Groups with an empty scissor rect are skipped silently. Groups whose
// texture is not in the cache are skipped with a warning; rendering never
// fails. Calling Render before any Prepare draws nothing.
func (p *Pipeline) Render(pass RenderPass) {
	if !p.prepared {
		return
	}

	pass.BindPipeline()

	for i := range p.groups {
		g := &p.groups[i]
		if g.Scissor.Empty() {
			continue
		}
		tex, ok := p.textures[g.Texture]
		if !ok {
			Logger().Warn("pigeon: unknown texture, skipping group", "id", uint64(g.Texture))
			continue
		}
		pass.BindTexture(tex)
		pass.SetScissor(g.Scissor.X, g.Scissor.Y, g.Scissor.W, g.Scissor.H)
		pass.DrawIndexed(g.Start, g.End)
	}
}

// PipelineStats reports the size of the prepared frame and texture cache.
type PipelineStats struct {
	// Textures is the number of cached GPU textures.
	Textures int

	// Groups is the number of draw groups in the prepared frame.
	Groups int

	// Vertices is the vertex count of the shared vertex buffer.
	Vertices int

	// Indices is the index count of the shared index buffer.
	Indices int
}

// Stats returns statistics for the most recently prepared frame.
func (p *Pipeline) Stats() PipelineStats {
	return PipelineStats{
		Textures: len(p.textures),
		Groups:   len(p.groups),
		Vertices: p.vertexCount,
		Indices:  p.indexCount,
	}
}

// Release frees all cached textures and the painter's GPU resources.
// The pipeline must not be used after Release.
func (p *Pipeline) Release() {
	p.textures.release()
	p.painter.Release()
	p.groups = nil
	p.prepared = false
}
