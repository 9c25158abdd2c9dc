package analyzer

import (
	"image"

	"github.com/ivlev/logoline/internal/raster"
)

// weight returns the foreground weight of one pixel in [0,1]. Alpha-based
// images weight by coverage so anti-aliased edges count fractionally;
// corner-based images fall back to the binary classification.
func (d *BoxDetector) weight(img *raster.Image, x, y int, bg background) float64 {
	if bg.alpha {
		return float64(img.Pix.Pix[y*img.Pix.Stride+x*4+3]) / 255.0
	}
	if d.foreground(img, x, y, bg) {
		return 1.0
	}
	return 0.0
}

// Density returns the fraction of foreground weight within the content
// box, in [0,1]. Pure reduction over the box, independent of pixel order.
func (d *BoxDetector) Density(img *raster.Image, box image.Rectangle) float64 {
	area := box.Dx() * box.Dy()
	if area <= 0 {
		return 0
	}

	bg := d.estimateBackground(img)

	sum := 0.0
	for y := box.Min.Y; y < box.Max.Y; y++ {
		for x := box.Min.X; x < box.Max.X; x++ {
			sum += d.weight(img, x, y, bg)
		}
	}

	return sum / float64(area)
}

// VisualCenter computes the foreground-weighted centroid inside the
// content box and its normalized offset from the box's geometric center.
// Zero total weight degrades to the geometric center with zero offsets.
func (d *BoxDetector) VisualCenter(img *raster.Image, box image.Rectangle) VisualCenter {
	boxW := float64(box.Dx())
	boxH := float64(box.Dy())
	centerX := float64(box.Min.X) + boxW/2
	centerY := float64(box.Min.Y) + boxH/2

	if boxW <= 0 || boxH <= 0 {
		return VisualCenter{CentroidX: centerX, CentroidY: centerY}
	}

	bg := d.estimateBackground(img)

	var sumW, sumX, sumY float64
	for y := box.Min.Y; y < box.Max.Y; y++ {
		for x := box.Min.X; x < box.Max.X; x++ {
			w := d.weight(img, x, y, bg)
			if w == 0 {
				continue
			}
			sumW += w
			sumX += w * (float64(x) + 0.5)
			sumY += w * (float64(y) + 0.5)
		}
	}

	if sumW == 0 {
		return VisualCenter{CentroidX: centerX, CentroidY: centerY}
	}

	cx := sumX / sumW
	cy := sumY / sumW

	return VisualCenter{
		CentroidX: cx,
		CentroidY: cy,
		OffsetX:   (cx - centerX) / boxW,
		OffsetY:   (cy - centerY) / boxH,
	}
}
