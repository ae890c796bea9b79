package pigeon

import (
	"image"

	"github.com/chewxy/math32"
	xdraw "golang.org/x/image/draw"
)

// Color is one sRGBA pixel with premultiplied alpha, 8 bits per channel,
// in R, G, B, A order.
type Color [4]uint8

// ImageData is the pixel source of a texture delta. The two implementations
// are [ColorImage] for raw sRGBA images and [FontImage] for glyph coverage
// masks. BGRA is the extraction function producing the uniform channel
// layout the texture cache uploads, decoupling the cache from the source
// representation.
type ImageData interface {
	// Size returns the image dimensions in pixels.
	Size() image.Point

	// BGRA returns the pixels as 8-bit BGRA bytes, row-major,
	// 4*width*height long.
	BGRA() []byte
}

// bgraBytes packs sRGBA pixels into BGRA byte order.
func bgraBytes(pixels []Color) []byte {
	out := make([]byte, len(pixels)*4)
	for i, p := range pixels {
		out[4*i+0] = p[2]
		out[4*i+1] = p[1]
		out[4*i+2] = p[0]
		out[4*i+3] = p[3]
	}
	return out
}

// ColorImage is a raw sRGBA image.
type ColorImage struct {
	// Width and Height are the dimensions in pixels.
	Width, Height int

	// Pixels holds Width*Height pixels, row-major.
	Pixels []Color
}

// Size returns the image dimensions in pixels.
func (c *ColorImage) Size() image.Point {
	return image.Point{X: c.Width, Y: c.Height}
}

// BGRA returns the pixels as 8-bit BGRA bytes.
func (c *ColorImage) BGRA() []byte {
	return bgraBytes(c.Pixels)
}

// NewColorImageFrom converts an arbitrary image into a ColorImage.
// The source is drawn into premultiplied RGBA first, so any image.Image
// implementation works.
func NewColorImageFrom(src image.Image) *ColorImage {
	b := src.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	xdraw.Draw(rgba, rgba.Bounds(), src, b.Min, xdraw.Src)

	pixels := make([]Color, b.Dx()*b.Dy())
	for i := range pixels {
		pixels[i] = Color{rgba.Pix[4*i], rgba.Pix[4*i+1], rgba.Pix[4*i+2], rgba.Pix[4*i+3]}
	}
	return &ColorImage{Width: b.Dx(), Height: b.Dy(), Pixels: pixels}
}

// fontGamma is the coverage gamma applied when uploading font atlas data.
const fontGamma = 1.0

// FontImage is a font atlas image: one glyph coverage value in [0, 1]
// per pixel.
type FontImage struct {
	// Width and Height are the dimensions in pixels.
	Width, Height int

	// Coverage holds Width*Height coverage values, row-major.
	Coverage []float32
}

// Size returns the image dimensions in pixels.
func (f *FontImage) Size() image.Point {
	return image.Point{X: f.Width, Y: f.Height}
}

// SRGBAPixels expands the coverage mask into premultiplied white sRGBA
// pixels, raising coverage to the given gamma before quantization.
func (f *FontImage) SRGBAPixels(gamma float32) []Color {
	pixels := make([]Color, len(f.Coverage))
	for i, c := range f.Coverage {
		c = min(max(c, 0), 1)
		a := uint8(math32.Round(math32.Pow(c, gamma) * 255))
		pixels[i] = Color{a, a, a, a}
	}
	return pixels
}

// BGRA returns the expanded coverage as 8-bit BGRA bytes.
func (f *FontImage) BGRA() []byte {
	return bgraBytes(f.SRGBAPixels(fontGamma))
}

// ImageDelta is an instruction to create or update a texture.
type ImageDelta struct {
	// Image holds the new pixel data.
	Image ImageData

	// Pos, when non-nil, restricts the update to the sub-rectangle at
	// this origin with the image's size. Nil means the whole texture.
	Pos *image.Point
}

// SetDelta pairs a texture identifier with its pending create or update.
type SetDelta struct {
	ID    TextureID
	Delta ImageDelta
}

// TexturesDelta is the per-frame set of texture changes emitted by the GUI
// library. Set entries are applied before the frame is drawn; Free entries
// release textures that no frame references anymore.
type TexturesDelta struct {
	Set  []SetDelta
	Free []TextureID
}
