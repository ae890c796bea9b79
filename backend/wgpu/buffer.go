package wgpu

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
)

// bufferSlab is the allocation granularity for the shared vertex and
// index buffers.
const bufferSlab = 1 << 16

// growSize returns the allocation size for a buffer that must hold need
// bytes. Sizes are rounded up to whole slabs so frame-to-frame jitter in
// geometry volume does not reallocate the buffer every frame.
func growSize(need uint64) uint64 {
	if need == 0 {
		return bufferSlab
	}
	return (need + bufferSlab - 1) / bufferSlab * bufferSlab
}

// dynamicBuffer is a GPU buffer that grows to fit each upload and never
// shrinks. The zero value is ready to use.
type dynamicBuffer struct {
	label string
	usage wgpu.BufferUsage

	buf *wgpu.Buffer
	cap uint64
}

// upload replaces the buffer contents with data, reallocating when the
// current allocation is too small.
func (b *dynamicBuffer) upload(device *wgpu.Device, queue *wgpu.Queue, data []byte) error {
	need := uint64(len(data))
	if b.buf == nil || need > b.cap {
		if b.buf != nil {
			b.buf.Release()
			b.buf = nil
			b.cap = 0
		}
		size := growSize(need)
		buf, err := device.CreateBuffer(&wgpu.BufferDescriptor{
			Label: b.label,
			Size:  size,
			Usage: b.usage | wgpu.BufferUsageCopyDst,
		})
		if err != nil {
			return fmt.Errorf("wgpu: create %s: %w", b.label, err)
		}
		b.buf = buf
		b.cap = size
	}
	if need == 0 {
		return nil
	}
	return queue.WriteBuffer(b.buf, 0, data)
}

func (b *dynamicBuffer) release() {
	if b.buf != nil {
		b.buf.Release()
		b.buf = nil
		b.cap = 0
	}
}
