package raster

import (
	"context"
	"fmt"

	"github.com/gen2brain/go-fitz"
)

// FitzDecoder rasterizes the first page of a PDF logo via MuPDF.
type FitzDecoder struct {
	DPI int // render resolution, defaults to 300 when zero
}

func (d *FitzDecoder) Decode(ctx context.Context, ref string) (*Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc, err := fitz.New(ref)
	if err != nil {
		return nil, err
	}
	defer doc.Close()

	if doc.NumPage() == 0 {
		return nil, fmt.Errorf("document has no pages")
	}

	dpi := d.DPI
	if dpi <= 0 {
		dpi = 300
	}

	img, err := doc.ImageDPI(0, float64(dpi))
	if err != nil {
		return nil, err
	}

	// MuPDF composites onto an opaque white page, so the alpha samples
	// carry no information; corner-based background detection applies.
	return wrap(img, false), nil
}
