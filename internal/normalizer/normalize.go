package normalizer

import (
	"image"
	"math"

	"github.com/ivlev/logoline/internal/config"
)

// Clamp bounds for the density multiplier, keeping degenerate sizes out
// even for extreme density spreads.
const (
	minDensityMultiplier = 0.5
	maxDensityMultiplier = 1.5
)

// Input is the per-logo measurement the engine consumes.
type Input struct {
	Box     image.Rectangle
	Density float64
}

// Size is a final display dimension pair in pixels.
type Size struct {
	Width  float64
	Height float64
}

// MeanDensity returns the average density across the batch.
func MeanDensity(inputs []Input) float64 {
	if len(inputs) == 0 {
		return 0
	}
	sum := 0.0
	for _, in := range inputs {
		sum += in.Density
	}
	return sum / float64(len(inputs))
}

// Normalize computes final display dimensions for every logo.
//
// Shape pass: width = baseSize * r^scaleFactor, height = width / r, where
// r is the content aspect ratio. scaleFactor 0 gives every logo the same
// width, 1 the same height, with a continuous power-law blend between.
//
// Density pass (densityAware only): logos denser than the batch mean
// shrink, lighter ones grow, scaled by densityFactor and clamped. The
// multiplier applies to both axes, so the content aspect ratio survives.
func Normalize(inputs []Input, cfg *config.Config) []Size {
	sizes := make([]Size, len(inputs))
	if len(inputs) == 0 {
		return sizes
	}

	for i, in := range inputs {
		r := aspectRatio(in.Box)
		width := cfg.BaseSize * math.Pow(r, cfg.ScaleFactor)
		sizes[i] = Size{Width: width, Height: width / r}
	}

	if !cfg.DensityAware || cfg.DensityFactor == 0 {
		return sizes
	}

	mean := MeanDensity(inputs)
	for i, in := range inputs {
		m := 1 + cfg.DensityFactor*(mean-in.Density)
		if m < minDensityMultiplier {
			m = minDensityMultiplier
		}
		if m > maxDensityMultiplier {
			m = maxDensityMultiplier
		}
		sizes[i].Width *= m
		sizes[i].Height *= m
	}

	return sizes
}

// aspectRatio is content box width over height. Boxes are never empty
// (detection collapses to full image bounds at worst), but guard anyway.
func aspectRatio(box image.Rectangle) float64 {
	h := box.Dy()
	if h <= 0 {
		return 1
	}
	return float64(box.Dx()) / float64(h)
}
