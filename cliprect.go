package pigeon

import (
	"image"

	"github.com/chewxy/math32"
)

// Rect is an axis-aligned rectangle in UI points.
type Rect struct {
	MinX, MinY float32
	MaxX, MaxY float32
}

// NewRect returns the rectangle spanning (minX, minY) to (maxX, maxY).
func NewRect(minX, minY, maxX, maxY float32) Rect {
	return Rect{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}
}

// PixelRect is an integer rectangle in physical device pixels, used as a
// scissor rectangle.
type PixelRect struct {
	X, Y uint32
	W, H uint32
}

// Empty reports whether the rect covers no visible pixels.
func (r PixelRect) Empty() bool {
	return r.W == 0 || r.H == 0
}

// ToPixelRect converts a clip rectangle in UI points into a device-pixel
// scissor rectangle clamped to the target surface.
//
// The result is always valid for the GPU scissor test: the origin lies
// inside the target and width/height never exceed the remaining surface.
// Fully-offscreen or inverted clip rects produce a rect that Empty reports
// as covering no visible area; callers skip those draws entirely.
func ToPixelRect(clip Rect, pixelsPerPoint float32, target image.Point) PixelRect {
	tw := float32(target.X)
	th := float32(target.Y)

	// Transform to physical pixels.
	minX := pixelsPerPoint * clip.MinX
	minY := pixelsPerPoint * clip.MinY
	maxX := pixelsPerPoint * clip.MaxX
	maxY := pixelsPerPoint * clip.MaxY

	// Clamp into the target, max never below min.
	minX = min(max(minX, 0), tw)
	minY = min(max(minY, 0), th)
	maxX = min(max(maxX, minX), tw)
	maxY = min(max(maxY, minY), th)

	iMinX := uint32(math32.Round(minX))
	iMinY := uint32(math32.Round(minY))
	iMaxX := uint32(math32.Round(maxX))
	iMaxY := uint32(math32.Round(maxY))

	w := max(iMaxX-iMinX, 1)
	h := max(iMaxY-iMinY, 1)

	// Clip the scissor rectangle to the target size.
	x := min(iMinX, uint32(target.X))
	y := min(iMinY, uint32(target.Y))
	w = min(w, uint32(target.X)-x)
	h = min(h, uint32(target.Y)-y)

	return PixelRect{X: x, Y: y, W: w, H: h}
}
