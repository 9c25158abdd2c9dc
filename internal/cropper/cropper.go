package cropper

import (
	"image"

	"github.com/ivlev/logoline/internal/raster"
)

// Crop extracts the content-box sub-buffer as a fresh image anchored at
// (0,0). Pixel-exact, no resampling; the source buffer can be released
// afterwards.
func Crop(img *raster.Image, box image.Rectangle) *image.NRGBA {
	box = box.Intersect(img.Pix.Rect)
	out := image.NewNRGBA(image.Rect(0, 0, box.Dx(), box.Dy()))

	for y := 0; y < box.Dy(); y++ {
		srcOff := (box.Min.Y+y)*img.Pix.Stride + box.Min.X*4
		dstOff := y * out.Stride
		copy(out.Pix[dstOff:dstOff+box.Dx()*4], img.Pix.Pix[srcOff:srcOff+box.Dx()*4])
	}

	return out
}
