package analyzer

import (
	"image"

	"github.com/ivlev/logoline/internal/raster"
)

// background is the per-image reference that pixels are classified
// against. For alpha-based images it is full transparency; otherwise it is
// the modal color of the four corner pixels.
type background struct {
	alpha bool
	lum   float64
}

// luminance computes Rec. 601 luma from 8-bit samples, in [0,255].
func luminance(r, g, b uint8) float64 {
	return 0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)
}

// estimateBackground samples the background reference for an image.
func (d *BoxDetector) estimateBackground(img *raster.Image) background {
	if d.alphaBased(img) {
		return background{alpha: true}
	}

	w, h := img.Width(), img.Height()
	pix := img.Pix

	corners := [4][3]uint8{}
	points := [4]image.Point{
		{0, 0},
		{w - 1, 0},
		{0, h - 1},
		{w - 1, h - 1},
	}
	for i, p := range points {
		off := p.Y*pix.Stride + p.X*4
		corners[i] = [3]uint8{pix.Pix[off], pix.Pix[off+1], pix.Pix[off+2]}
	}

	// Modal corner color; ties resolve to the first corner.
	best, bestCount := corners[0], 0
	for i, c := range corners {
		count := 0
		for _, other := range corners {
			if c == other {
				count++
			}
		}
		if count > bestCount {
			best, bestCount = corners[i], count
		}
	}

	return background{lum: luminance(best[0], best[1], best[2])}
}

// foreground classifies a single pixel against the background reference.
func (d *BoxDetector) foreground(img *raster.Image, x, y int, bg background) bool {
	off := y*img.Pix.Stride + x*4

	if bg.alpha {
		return img.Pix.Pix[off+3] > d.AlphaThreshold
	}

	lum := luminance(img.Pix.Pix[off], img.Pix.Pix[off+1], img.Pix.Pix[off+2])
	diff := lum - bg.lum
	if diff < 0 {
		diff = -diff
	}
	return diff > float64(d.LumaThreshold)
}

// DetectContentBox returns the tightest rectangle enclosing every
// foreground pixel. When no foreground pixel exists the box collapses to
// the full image bounds and the second return value is false.
func (d *BoxDetector) DetectContentBox(img *raster.Image) (image.Rectangle, bool) {
	w, h := img.Width(), img.Height()
	full := image.Rect(0, 0, w, h)
	if w == 0 || h == 0 {
		return full, false
	}

	bg := d.estimateBackground(img)

	rowHasInk := func(y int) bool {
		for x := 0; x < w; x++ {
			if d.foreground(img, x, y, bg) {
				return true
			}
		}
		return false
	}

	top := -1
	for y := 0; y < h; y++ {
		if rowHasInk(y) {
			top = y
			break
		}
	}
	if top == -1 {
		return full, false
	}

	bottom := top
	for y := h - 1; y > top; y-- {
		if rowHasInk(y) {
			bottom = y
			break
		}
	}

	colHasInk := func(x int) bool {
		for y := top; y <= bottom; y++ {
			if d.foreground(img, x, y, bg) {
				return true
			}
		}
		return false
	}

	left := 0
	for x := 0; x < w; x++ {
		if colHasInk(x) {
			left = x
			break
		}
	}

	right := left
	for x := w - 1; x > left; x-- {
		if colHasInk(x) {
			right = x
			break
		}
	}

	return image.Rect(left, top, right+1, bottom+1), true
}
