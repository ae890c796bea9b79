package pigeon

import (
	"image"
	"image/color"
	"testing"
)

func TestColorImageBGRA(t *testing.T) {
	img := &ColorImage{
		Width:  2,
		Height: 1,
		Pixels: []Color{{1, 2, 3, 4}, {250, 200, 150, 255}},
	}

	got := img.BGRA()
	want := []byte{3, 2, 1, 4, 150, 200, 250, 255}
	if len(got) != len(want) {
		t.Fatalf("BGRA() length = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("BGRA()[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestColorImageSize(t *testing.T) {
	img := &ColorImage{Width: 7, Height: 3}
	if got, want := img.Size(), (image.Point{7, 3}); got != want {
		t.Errorf("Size() = %v, want %v", got, want)
	}
}

func TestFontImageSRGBAPixels(t *testing.T) {
	img := &FontImage{
		Width:    4,
		Height:   1,
		Coverage: []float32{0, 0.5, 1, 2}, // out-of-range coverage is clamped
	}

	got := img.SRGBAPixels(1.0)
	want := []Color{{0, 0, 0, 0}, {128, 128, 128, 128}, {255, 255, 255, 255}, {255, 255, 255, 255}}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("SRGBAPixels(1.0)[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestFontImageSRGBAPixelsGamma(t *testing.T) {
	img := &FontImage{Width: 1, Height: 1, Coverage: []float32{0.25}}

	// gamma 0.5: sqrt(0.25) = 0.5 -> 128.
	got := img.SRGBAPixels(0.5)
	if want := (Color{128, 128, 128, 128}); got[0] != want {
		t.Errorf("SRGBAPixels(0.5)[0] = %v, want %v", got[0], want)
	}
}

func TestFontImageBGRA(t *testing.T) {
	img := &FontImage{Width: 2, Height: 1, Coverage: []float32{0, 1}}

	got := img.BGRA()
	// Premultiplied white: all four channels carry the expanded coverage,
	// so the BGRA swizzle is channel-symmetric.
	want := []byte{0, 0, 0, 0, 255, 255, 255, 255}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("BGRA()[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestNewColorImageFrom(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	src.Set(0, 0, color.NRGBA{R: 255, A: 255})
	src.Set(1, 0, color.NRGBA{G: 255, A: 255})
	src.Set(0, 1, color.NRGBA{B: 255, A: 255})
	src.Set(1, 1, color.NRGBA{A: 0})

	img := NewColorImageFrom(src)
	if got, want := img.Size(), (image.Point{2, 2}); got != want {
		t.Fatalf("Size() = %v, want %v", got, want)
	}

	tests := []struct {
		i    int
		want Color
	}{
		{0, Color{255, 0, 0, 255}},
		{1, Color{0, 255, 0, 255}},
		{2, Color{0, 0, 255, 255}},
		{3, Color{0, 0, 0, 0}},
	}
	for _, tt := range tests {
		if img.Pixels[tt.i] != tt.want {
			t.Errorf("Pixels[%d] = %v, want %v", tt.i, img.Pixels[tt.i], tt.want)
		}
	}
}

// NewColorImageFrom must normalize a source whose bounds do not start at
// the origin.
func TestNewColorImageFromOffsetBounds(t *testing.T) {
	src := image.NewRGBA(image.Rect(10, 10, 12, 11))
	src.Set(10, 10, color.RGBA{R: 9, A: 255})
	src.Set(11, 10, color.RGBA{G: 9, A: 255})

	img := NewColorImageFrom(src)
	if got, want := img.Size(), (image.Point{2, 1}); got != want {
		t.Fatalf("Size() = %v, want %v", got, want)
	}
	if img.Pixels[0] != (Color{9, 0, 0, 255}) {
		t.Errorf("Pixels[0] = %v, want %v", img.Pixels[0], Color{9, 0, 0, 255})
	}
	if img.Pixels[1] != (Color{0, 9, 0, 255}) {
		t.Errorf("Pixels[1] = %v, want %v", img.Pixels[1], Color{0, 9, 0, 255})
	}
}

func TestPackColor(t *testing.T) {
	got := PackColor(0x11, 0x22, 0x33, 0x44)
	if want := uint32(0x44332211); got != want {
		t.Errorf("PackColor(0x11, 0x22, 0x33, 0x44) = %#x, want %#x", got, want)
	}
}
