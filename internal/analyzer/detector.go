package analyzer

import (
	"image"

	"github.com/ivlev/logoline/internal/raster"
)

// Background estimation modes.
const (
	ModeAuto    = "auto"    // alpha channel when the source has one, corners otherwise
	ModeAlpha   = "alpha"   // force transparent background
	ModeCorners = "corners" // force corner-sampled background
)

// VisualCenter is the pixel-weighted centroid of the content box and its
// displacement from the geometric center, normalized by the box size into
// roughly [-0.5, 0.5] per axis.
type VisualCenter struct {
	CentroidX float64
	CentroidY float64
	OffsetX   float64
	OffsetY   float64
}

// Measurement is the per-logo analysis result.
type Measurement struct {
	Box     image.Rectangle
	Density float64
	Center  VisualCenter

	// LowConfidence marks images where no foreground pixel was found;
	// the box degrades to the full image bounds instead of failing.
	LowConfidence bool
}

// BoxDetector finds the tightest rectangle of non-background pixels and
// measures foreground weight inside it.
type BoxDetector struct {
	LumaThreshold  uint8  // minimum luminance delta from background
	AlphaThreshold uint8  // minimum alpha to count as foreground
	Mode           string // one of the Mode* constants
}

// NewBoxDetector creates a detector with thresholds tuned to ignore
// compression artifacts and anti-aliasing fringes.
func NewBoxDetector() *BoxDetector {
	return &BoxDetector{
		LumaThreshold:  16,
		AlphaThreshold: 8,
		Mode:           ModeAuto,
	}
}

// Measure runs content box detection, density measurement and visual
// center computation on one image.
func (d *BoxDetector) Measure(img *raster.Image) Measurement {
	box, found := d.DetectContentBox(img)

	m := Measurement{
		Box:           box,
		LowConfidence: !found,
	}
	m.Density = d.Density(img, box)
	m.Center = d.VisualCenter(img, box)

	return m
}

// alphaBased reports whether this image is measured against a transparent
// background.
func (d *BoxDetector) alphaBased(img *raster.Image) bool {
	switch d.Mode {
	case ModeAlpha:
		return true
	case ModeCorners:
		return false
	default:
		return img.HasAlpha
	}
}
