package pigeon

import (
	"errors"
	"image"
)

// Recording fakes for the Painter, Texture, and RenderPass interfaces,
// shared by the package tests. The fake texture stores its pixels so tests
// can verify upload contents and ordering.

var errCreateFailed = errors.New("fake: create failed")

type fakeTexture struct {
	size      image.Point
	pix       []byte // BGRA, row-major
	fills     int
	transfers int
	released  bool
}

func (t *fakeTexture) Size() image.Point { return t.size }

func (t *fakeTexture) Fill(bgra []byte) {
	copy(t.pix, bgra)
	t.fills++
}

func (t *fakeTexture) Transfer(bgra []byte, region image.Rectangle) {
	w := region.Dx()
	for row := 0; row < region.Dy(); row++ {
		dst := 4 * ((region.Min.Y+row)*t.size.X + region.Min.X)
		src := 4 * (row * w)
		copy(t.pix[dst:dst+4*w], bgra[src:src+4*w])
	}
	t.transfers++
}

func (t *fakeTexture) Release() { t.released = true }

// at returns the BGRA pixel at (x, y).
func (t *fakeTexture) at(x, y int) [4]byte {
	i := 4 * (y*t.size.X + x)
	return [4]byte{t.pix[i], t.pix[i+1], t.pix[i+2], t.pix[i+3]}
}

type fakePainter struct {
	verts      []Vertex
	indices    []uint32
	uniform    [2]float32
	uniformSet int
	created    []*fakeTexture
	createErr  error
	released   bool
}

func (p *fakePainter) CreateTexture(size image.Point, label string) (Texture, error) {
	if p.createErr != nil {
		return nil, p.createErr
	}
	t := &fakeTexture{size: size, pix: make([]byte, 4*size.X*size.Y)}
	p.created = append(p.created, t)
	return t, nil
}

func (p *fakePainter) SetVertices(verts []Vertex) { p.verts = verts }

func (p *fakePainter) SetIndices(indices []uint32) { p.indices = indices }

func (p *fakePainter) SetUniform(screenSize [2]float32) {
	p.uniform = screenSize
	p.uniformSet++
}

func (p *fakePainter) Release() { p.released = true }

type passOp struct {
	kind       string // "pipeline", "texture", "scissor", "draw"
	tex        Texture
	scissor    [4]uint32
	start, end uint32
}

type fakePass struct {
	ops []passOp
}

func (f *fakePass) BindPipeline() {
	f.ops = append(f.ops, passOp{kind: "pipeline"})
}

func (f *fakePass) BindTexture(t Texture) {
	f.ops = append(f.ops, passOp{kind: "texture", tex: t})
}

func (f *fakePass) SetScissor(x, y, width, height uint32) {
	f.ops = append(f.ops, passOp{kind: "scissor", scissor: [4]uint32{x, y, width, height}})
}

func (f *fakePass) DrawIndexed(start, end uint32) {
	f.ops = append(f.ops, passOp{kind: "draw", start: start, end: end})
}

// draws returns only the draw ops, in order.
func (f *fakePass) draws() []passOp {
	var out []passOp
	for _, op := range f.ops {
		if op.kind == "draw" {
			out = append(out, op)
		}
	}
	return out
}

// Compile-time interface checks.
var (
	_ Painter    = (*fakePainter)(nil)
	_ Texture    = (*fakeTexture)(nil)
	_ RenderPass = (*fakePass)(nil)
)
