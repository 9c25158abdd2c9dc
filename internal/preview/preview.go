package preview

import (
	"context"
	"fmt"
	"image"
	"math"

	xdraw "golang.org/x/image/draw"

	"github.com/ivlev/logoline/internal/config"
	"github.com/ivlev/logoline/internal/cropper"
	"github.com/ivlev/logoline/internal/pipeline"
	"github.com/ivlev/logoline/internal/raster"
)

// RenderStrip composes the normalized logos into a single horizontal row
// on a transparent background, applying the configured gap and alignment
// offsets. Sources are decoded again: the pipeline releases pixel buffers
// after measurement.
func RenderStrip(ctx context.Context, logos []pipeline.NormalizedLogo, dec raster.Decoder, cfg *config.Config) (*image.NRGBA, error) {
	if len(logos) == 0 {
		return nil, fmt.Errorf("nothing to render")
	}

	rowHeight := 0
	totalWidth := 0.0
	for _, l := range logos {
		if h := int(math.Ceil(l.NormalizedHeight)); h > rowHeight {
			rowHeight = h
		}
		totalWidth += l.NormalizedWidth
	}
	totalWidth += cfg.Gap * float64(len(logos)-1)

	strip := image.NewNRGBA(image.Rect(0, 0, int(math.Ceil(totalWidth)), rowHeight))

	cursor := 0.0
	for _, l := range logos {
		img, err := dec.Decode(ctx, l.Ref)
		if err != nil {
			return nil, &raster.DecodeError{Ref: l.Ref, Err: err}
		}
		content := cropper.Crop(img, l.ContentBox)

		w := int(math.Round(l.NormalizedWidth))
		h := int(math.Round(l.NormalizedHeight))
		if w < 1 {
			w = 1
		}
		if h < 1 {
			h = 1
		}

		x := int(math.Round(cursor + l.AlignOffset.X))
		y := int(math.Round((float64(rowHeight)-float64(h))/2 + l.AlignOffset.Y))

		dst := image.Rect(x, y, x+w, y+h)
		xdraw.CatmullRom.Scale(strip, dst, content, content.Rect, xdraw.Over, nil)

		cursor += l.NormalizedWidth + cfg.Gap
	}

	return strip, nil
}
