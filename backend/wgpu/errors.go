package wgpu

import "errors"

// Painter construction errors.
var (
	// ErrNilDevice is returned when New is called without a device.
	ErrNilDevice = errors.New("wgpu: nil device")

	// ErrNilQueue is returned when New is called without a queue.
	ErrNilQueue = errors.New("wgpu: nil queue")
)
