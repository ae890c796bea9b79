package pigeon

import (
	"fmt"
	"image"
)

// textureCache maps texture identifiers to their GPU textures. Entries are
// created lazily on first reference, updated in place by later deltas, and
// removed only by an explicit free delta or a pipeline release.
type textureCache map[TextureID]Texture

// ensure applies one set-delta: create the texture when the id is new,
// otherwise update the stored texture in place. Creation failures are the
// only errors that propagate; recoverable conditions are logged and
// absorbed.
func (c textureCache) ensure(p Painter, id TextureID, delta ImageDelta) error {
	if delta.Image == nil {
		return fmt.Errorf("%w: texture %d", ErrNilImage, id)
	}
	size := delta.Image.Size()

	tex, ok := c[id]
	if !ok {
		tex, err := p.CreateTexture(size, fmt.Sprintf("ui texture %d", id))
		if err != nil {
			return fmt.Errorf("pigeon: create texture %d: %w", id, err)
		}
		tex.Fill(delta.Image.BGRA())
		c[id] = tex
		return nil
	}

	if delta.Pos != nil {
		// Partial update of a sub-rectangle.
		region := image.Rectangle{Min: *delta.Pos, Max: delta.Pos.Add(size)}
		bounds := image.Rectangle{Max: tex.Size()}
		if !region.In(bounds) {
			Logger().Warn("pigeon: texture update outside bounds, skipping",
				"id", id, "region", region.String(), "texture", tex.Size().String())
			return nil
		}
		tex.Transfer(delta.Image.BGRA(), region)
		return nil
	}

	// Full overwrite. A stored texture of a different size cannot be
	// reused; reallocate it for the new dimensions.
	if size != tex.Size() {
		tex.Release()
		delete(c, id)
		return c.ensure(p, id, delta)
	}
	tex.Fill(delta.Image.BGRA())
	return nil
}

// free releases the texture for id. Unknown ids are logged and ignored.
func (c textureCache) free(id TextureID) {
	tex, ok := c[id]
	if !ok {
		Logger().Warn("pigeon: free of unknown texture", "id", uint64(id))
		return
	}
	tex.Release()
	delete(c, id)
}

// release frees every cached texture.
func (c textureCache) release() {
	for id, tex := range c {
		tex.Release()
		delete(c, id)
	}
}
