package cropper

import (
	"image"
	"image/color"
	"testing"

	"github.com/ivlev/logoline/internal/raster"
)

func gradientImage(w, h int) *raster.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x), G: uint8(y), B: uint8(x + y), A: 255})
		}
	}
	return &raster.Image{Pix: img, HasAlpha: true}
}

func TestCropExact(t *testing.T) {
	src := gradientImage(100, 80)
	box := image.Rect(20, 10, 70, 50)

	out := Crop(src, box)

	if out.Rect != image.Rect(0, 0, 50, 40) {
		t.Fatalf("Expected 50x40 crop at origin, got %v", out.Rect)
	}

	for y := 0; y < 40; y++ {
		for x := 0; x < 50; x++ {
			want := src.Pix.NRGBAAt(box.Min.X+x, box.Min.Y+y)
			got := out.NRGBAAt(x, y)
			if want != got {
				t.Fatalf("Pixel (%d,%d): expected %v, got %v", x, y, want, got)
			}
		}
	}
}

func TestCropOwnsPixels(t *testing.T) {
	src := gradientImage(40, 40)
	out := Crop(src, image.Rect(10, 10, 30, 30))

	before := out.NRGBAAt(0, 0)
	src.Pix.SetNRGBA(10, 10, color.NRGBA{R: 200, A: 255})

	if out.NRGBAAt(0, 0) != before {
		t.Error("Crop shares pixel storage with the source buffer")
	}
}

func TestCropClampsToBounds(t *testing.T) {
	src := gradientImage(30, 30)
	out := Crop(src, image.Rect(-5, -5, 60, 60))

	if out.Rect.Dx() != 30 || out.Rect.Dy() != 30 {
		t.Errorf("Expected crop clamped to 30x30, got %dx%d", out.Rect.Dx(), out.Rect.Dy())
	}
}
