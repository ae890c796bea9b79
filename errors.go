package pigeon

import "errors"

// Package errors for pigeon.
var (
	// ErrNilPainter is returned by New when no painter is supplied.
	ErrNilPainter = errors.New("pigeon: nil painter")

	// ErrNilImage is returned when a texture delta carries no image data.
	ErrNilImage = errors.New("pigeon: texture delta without image data")
)
