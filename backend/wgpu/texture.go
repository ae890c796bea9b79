package wgpu

import (
	"fmt"
	"image"

	"github.com/cogentcore/webgpu/wgpu"

	"github.com/chameko/pigeon"
)

// Texture is a GPU texture with the bind group that samples it.
// Pixel data is BGRA8 in sRGB space.
type Texture struct {
	queue *wgpu.Queue

	tex  *wgpu.Texture
	view *wgpu.TextureView
	bind *wgpu.BindGroup
	size image.Point
}

var _ pigeon.Texture = (*Texture)(nil)

// CreateTexture allocates a BGRA8 sRGB texture of the given size, with a
// view and a bind group sharing the painter's sampler.
func (p *Painter) CreateTexture(size image.Point, label string) (pigeon.Texture, error) {
	tex, err := p.device.CreateTexture(&wgpu.TextureDescriptor{
		Label:     label,
		Usage:     wgpu.TextureUsageTextureBinding | wgpu.TextureUsageCopyDst,
		Dimension: wgpu.TextureDimension2D,
		Size: wgpu.Extent3D{
			Width:              uint32(size.X),
			Height:             uint32(size.Y),
			DepthOrArrayLayers: 1,
		},
		Format:        wgpu.TextureFormatBGRA8UnormSrgb,
		MipLevelCount: 1,
		SampleCount:   1,
	})
	if err != nil {
		return nil, fmt.Errorf("wgpu: create texture %q: %w", label, err)
	}

	view, err := tex.CreateView(nil)
	if err != nil {
		tex.Release()
		return nil, fmt.Errorf("wgpu: create view for %q: %w", label, err)
	}

	bind, err := p.device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  label,
		Layout: p.textureLayout,
		Entries: []wgpu.BindGroupEntry{
			{Binding: 0, TextureView: view},
			{Binding: 1, Sampler: p.sampler},
		},
	})
	if err != nil {
		view.Release()
		tex.Release()
		return nil, fmt.Errorf("wgpu: create bind group for %q: %w", label, err)
	}

	return &Texture{
		queue: p.queue,
		tex:   tex,
		view:  view,
		bind:  bind,
		size:  size,
	}, nil
}

// Size returns the texture dimensions in pixels.
func (t *Texture) Size() image.Point {
	return t.size
}

// Fill overwrites the whole texture with bgra, which must hold
// Size().X * Size().Y * 4 bytes of row-major BGRA pixels.
func (t *Texture) Fill(bgra []byte) {
	t.write(bgra, image.Rectangle{Max: t.size})
}

// Transfer overwrites the pixels inside region with bgra, which must
// hold region.Dx() * region.Dy() * 4 bytes of row-major BGRA pixels.
func (t *Texture) Transfer(bgra []byte, region image.Rectangle) {
	t.write(bgra, region)
}

func (t *Texture) write(bgra []byte, region image.Rectangle) {
	w, h := uint32(region.Dx()), uint32(region.Dy())
	err := t.queue.WriteTexture(
		&wgpu.ImageCopyTexture{
			Texture:  t.tex,
			MipLevel: 0,
			Origin: wgpu.Origin3D{
				X: uint32(region.Min.X),
				Y: uint32(region.Min.Y),
			},
			Aspect: wgpu.TextureAspectAll,
		},
		bgra,
		&wgpu.TextureDataLayout{
			Offset:       0,
			BytesPerRow:  w * 4,
			RowsPerImage: h,
		},
		&wgpu.Extent3D{
			Width:              w,
			Height:             h,
			DepthOrArrayLayers: 1,
		},
	)
	if err != nil {
		pigeon.Logger().Error("wgpu: texture upload failed", "error", err)
	}
}

// Release frees the texture, its view, and its bind group.
func (t *Texture) Release() {
	if t.bind != nil {
		t.bind.Release()
		t.bind = nil
	}
	if t.view != nil {
		t.view.Release()
		t.view = nil
	}
	if t.tex != nil {
		t.tex.Release()
		t.tex = nil
	}
}
