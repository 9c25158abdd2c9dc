package raster

import (
	"image"
	"image/color"
	"image/draw"
)

// ToNRGBA returns img as an *image.NRGBA anchored at (0,0). The buffer is
// reused when it already has the right layout, otherwise a copy is drawn.
func ToNRGBA(img image.Image) *image.NRGBA {
	bounds := img.Bounds()
	nrgba, ok := img.(*image.NRGBA)
	if !ok || nrgba.Stride != bounds.Dx()*4 || nrgba.Rect.Min.X != 0 || nrgba.Rect.Min.Y != 0 {
		nrgba = image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
		draw.Draw(nrgba, nrgba.Rect, img, bounds.Min, draw.Src)
	}
	return nrgba
}

// hasAlphaChannel reports whether the decoded representation carries alpha
// samples. JPEG decodes to YCbCr and grayscale formats to Gray, neither of
// which can express transparency.
func hasAlphaChannel(img image.Image) bool {
	switch im := img.(type) {
	case *image.NRGBA, *image.NRGBA64, *image.RGBA, *image.RGBA64:
		return true
	case *image.Paletted:
		for _, c := range im.Palette {
			if _, _, _, a := c.RGBA(); a < 0xffff {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// wrap constructs an Image from any decoded image.
func wrap(img image.Image, hasAlpha bool) *Image {
	return &Image{Pix: ToNRGBA(img), HasAlpha: hasAlpha}
}

// NewImage builds an Image directly from a pixel buffer; the alpha mode is
// derived from the buffer type. Mostly useful for callers that already
// hold decoded pixels.
func NewImage(img image.Image) *Image {
	return wrap(img, hasAlphaChannel(img))
}

// Uniform creates a solid-color image, handy for degenerate inputs.
func Uniform(w, h int, c color.NRGBA, hasAlpha bool) *Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i] = c.R
		img.Pix[i+1] = c.G
		img.Pix[i+2] = c.B
		img.Pix[i+3] = c.A
	}
	return &Image{Pix: img, HasAlpha: hasAlpha}
}
