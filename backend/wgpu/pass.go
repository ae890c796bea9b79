package wgpu

import (
	"github.com/cogentcore/webgpu/wgpu"

	"github.com/chameko/pigeon"
)

// Pass wraps a begun render pass encoder for drawing through
// [pigeon.Pipeline.Render]. The encoder must stay open until Render
// returns; ending the pass is the caller's responsibility.
func (p *Painter) Pass(encoder *wgpu.RenderPassEncoder) pigeon.RenderPass {
	return &renderPass{painter: p, encoder: encoder}
}

type renderPass struct {
	painter *Painter
	encoder *wgpu.RenderPassEncoder
}

var _ pigeon.RenderPass = (*renderPass)(nil)

func (rp *renderPass) BindPipeline() {
	rp.encoder.SetPipeline(rp.painter.pipeline)
	rp.encoder.SetBindGroup(0, rp.painter.uniformBind, nil)
	if buf := rp.painter.vertices.buf; buf != nil {
		rp.encoder.SetVertexBuffer(0, buf, 0, wgpu.WholeSize)
	}
	if buf := rp.painter.indices.buf; buf != nil {
		rp.encoder.SetIndexBuffer(buf, wgpu.IndexFormatUint32, 0, wgpu.WholeSize)
	}
}

func (rp *renderPass) BindTexture(tex pigeon.Texture) {
	t, ok := tex.(*Texture)
	if !ok {
		pigeon.Logger().Warn("wgpu: texture from another painter, skipping bind")
		return
	}
	rp.encoder.SetBindGroup(1, t.bind, nil)
}

func (rp *renderPass) SetScissor(x, y, width, height uint32) {
	rp.encoder.SetScissorRect(x, y, width, height)
}

func (rp *renderPass) DrawIndexed(start, end uint32) {
	rp.encoder.DrawIndexed(end-start, 1, start, 0, 0)
}
