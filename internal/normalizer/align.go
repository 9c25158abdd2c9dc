package normalizer

import (
	"github.com/ivlev/logoline/internal/analyzer"
	"github.com/ivlev/logoline/internal/config"
)

// Offset is a 2D translation in pixels applied on top of geometric
// centering.
type Offset struct {
	X float64
	Y float64
}

// AlignOffset derives the translation that puts the logo's visual
// centroid, rather than its geometric box center, on the shared alignment
// axis. The bounds mode is the identity: geometric centering is the
// rendering default.
func AlignOffset(center analyzer.VisualCenter, size Size, mode string) Offset {
	switch mode {
	case config.AlignVisualCenter:
		return Offset{
			X: -center.OffsetX * size.Width,
			Y: -center.OffsetY * size.Height,
		}
	case config.AlignVisualCenterX:
		return Offset{X: -center.OffsetX * size.Width}
	case config.AlignVisualCenterY:
		return Offset{Y: -center.OffsetY * size.Height}
	default:
		return Offset{}
	}
}
