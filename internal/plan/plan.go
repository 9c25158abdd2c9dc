package plan

import (
	"github.com/ivlev/logoline/internal/config"
	"github.com/ivlev/logoline/internal/pipeline"
)

// Plan is the layout record an output builder consumes to render the
// logo row in any technology. Dimensions are in pixels.
type Plan struct {
	Version string  `yaml:"version"`
	Gap     float64 `yaml:"gap"`
	AlignBy string  `yaml:"alignBy"`
	Logos   []Entry `yaml:"logos"`
}

// Entry describes one normalized logo.
type Entry struct {
	Source        string  `yaml:"source"`
	Alt           string  `yaml:"alt"`
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	OffsetX       float64 `yaml:"offsetX"`
	OffsetY       float64 `yaml:"offsetY"`
	Density       float64 `yaml:"density"`
	LowConfidence bool    `yaml:"lowConfidence,omitempty"`

	// Cropped is the path of the written content-box crop, empty when
	// cropping was not requested.
	Cropped string `yaml:"cropped,omitempty"`
}

// FromLogos assembles a plan from pipeline output.
func FromLogos(logos []pipeline.NormalizedLogo, cfg *config.Config) *Plan {
	p := &Plan{
		Version: "1.0",
		Gap:     cfg.Gap,
		AlignBy: cfg.AlignBy,
		Logos:   make([]Entry, len(logos)),
	}

	for i, l := range logos {
		p.Logos[i] = Entry{
			Source:        l.Ref,
			Alt:           l.Alt,
			Width:         l.NormalizedWidth,
			Height:        l.NormalizedHeight,
			OffsetX:       l.AlignOffset.X,
			OffsetY:       l.AlignOffset.Y,
			Density:       l.PixelDensity,
			LowConfidence: l.LowConfidence,
		}
	}

	return p
}
