package pipeline

import (
	"context"
	"fmt"
	"image"
	"log"

	"golang.org/x/sync/errgroup"

	"github.com/ivlev/logoline/internal/analyzer"
	"github.com/ivlev/logoline/internal/config"
	"github.com/ivlev/logoline/internal/cropper"
	"github.com/ivlev/logoline/internal/encoder"
	"github.com/ivlev/logoline/internal/normalizer"
	"github.com/ivlev/logoline/internal/raster"
	"github.com/ivlev/logoline/internal/system"
)

// LogoSource identifies one input logo.
type LogoSource struct {
	Ref string // source reference, handed to the decoder
	Alt string // alt text, carried through untouched
}

// NormalizedLogo is the per-logo output record: everything a caller needs
// to build a visually balanced row, no visual elements included.
type NormalizedLogo struct {
	Ref string
	Alt string

	OriginalWidth  int
	OriginalHeight int

	ContentBox   image.Rectangle
	AspectRatio  float64
	PixelDensity float64
	VisualCenter analyzer.VisualCenter

	NormalizedWidth  float64
	NormalizedHeight float64

	// AlignOffset is the translation for the configured alignment mode,
	// zero for bounds alignment.
	AlignOffset normalizer.Offset

	// LowConfidence marks logos where no foreground pixel was found.
	LowConfidence bool

	// CroppedData holds the encoded content-box crop when cropping was
	// requested, nil otherwise.
	CroppedData []byte
}

// Pipeline measures a batch of logos concurrently and normalizes their
// display sizes in a set-wide second pass. A Pipeline is stateless across
// Run calls.
type Pipeline struct {
	Config   *config.Config
	Decoder  raster.Decoder
	Detector *analyzer.BoxDetector
	Encoder  encoder.Encoder
}

// New wires a pipeline with the default detector and PNG encoder.
func New(cfg *config.Config, dec raster.Decoder) *Pipeline {
	return &Pipeline{
		Config:   cfg,
		Decoder:  dec,
		Detector: analyzer.NewBoxDetector(),
		Encoder:  &encoder.PNGEncoder{},
	}
}

// measured holds one logo's results until the batch pass runs. The pixel
// buffer itself is released as soon as measurement completes; only the
// encoded crop survives when requested.
type measured struct {
	width, height int
	m             analyzer.Measurement
	cropped       []byte
}

// Run processes the batch. Per-logo decode and measurement fan out across
// workers; the normalization pass joins on all of them before computing
// set statistics. Output order matches input order regardless of task
// completion order. Any decode failure aborts the whole batch: set-wide
// normalization is meaningless with a missing member.
func (p *Pipeline) Run(ctx context.Context, sources []LogoSource) ([]NormalizedLogo, error) {
	if err := p.Config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if len(sources) == 0 {
		return nil, fmt.Errorf("no logo sources given")
	}

	results := make([]measured, len(sources))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(system.SuggestWorkers(p.Config.Workers, len(sources)))

	for i, src := range sources {
		g.Go(func() error {
			img, err := p.Decoder.Decode(ctx, src.Ref)
			if err != nil {
				return &raster.DecodeError{Ref: src.Ref, Err: err}
			}

			res := measured{
				width:  img.Width(),
				height: img.Height(),
				m:      p.Detector.Measure(img),
			}

			if p.Config.CropToContent {
				data, err := p.Encoder.Encode(cropper.Crop(img, res.m.Box))
				if err != nil {
					return fmt.Errorf("failed to encode crop of %q: %w", src.Ref, err)
				}
				res.cropped = data
			}

			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Batch pass: all measurements are in, set statistics are valid now.
	inputs := make([]normalizer.Input, len(results))
	for i, res := range results {
		inputs[i] = normalizer.Input{Box: res.m.Box, Density: res.m.Density}
	}
	sizes := normalizer.Normalize(inputs, p.Config)

	logos := make([]NormalizedLogo, len(sources))
	for i, src := range sources {
		res := results[i]

		logos[i] = NormalizedLogo{
			Ref:              src.Ref,
			Alt:              src.Alt,
			OriginalWidth:    res.width,
			OriginalHeight:   res.height,
			ContentBox:       res.m.Box,
			AspectRatio:      float64(res.m.Box.Dx()) / float64(res.m.Box.Dy()),
			PixelDensity:     res.m.Density,
			VisualCenter:     res.m.Center,
			NormalizedWidth:  sizes[i].Width,
			NormalizedHeight: sizes[i].Height,
			AlignOffset:      normalizer.AlignOffset(res.m.Center, sizes[i], p.Config.AlignBy),
			LowConfidence:    res.m.LowConfidence,
			CroppedData:      res.cropped,
		}

		if res.m.LowConfidence {
			log.Printf("[!] No foreground pixels in %q, using full image bounds", src.Ref)
		}
	}

	return logos, nil
}
