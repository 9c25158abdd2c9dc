package preview

import (
	"context"
	"errors"
	"image"
	"math"
	"testing"

	"github.com/ivlev/logoline/internal/config"
	"github.com/ivlev/logoline/internal/normalizer"
	"github.com/ivlev/logoline/internal/pipeline"
	"github.com/ivlev/logoline/internal/raster"
)

type fakeDecoder struct {
	images map[string]*raster.Image
}

func (d *fakeDecoder) Decode(ctx context.Context, ref string) (*raster.Image, error) {
	img, ok := d.images[ref]
	if !ok {
		return nil, errors.New("no such source")
	}
	return img, nil
}

func solidLogo(w, h int) *raster.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i] = 40
		img.Pix[i+3] = 255
	}
	return &raster.Image{Pix: img, HasAlpha: true}
}

func TestRenderStripDimensions(t *testing.T) {
	dec := &fakeDecoder{images: map[string]*raster.Image{
		"a.png": solidLogo(100, 50),
		"b.png": solidLogo(60, 60),
	}}

	logos := []pipeline.NormalizedLogo{
		{
			Ref:              "a.png",
			ContentBox:       image.Rect(0, 0, 100, 50),
			NormalizedWidth:  64,
			NormalizedHeight: 32,
		},
		{
			Ref:              "b.png",
			ContentBox:       image.Rect(0, 0, 60, 60),
			NormalizedWidth:  48,
			NormalizedHeight: 48,
		},
	}
	cfg := config.Default()

	strip, err := RenderStrip(context.Background(), logos, dec, cfg)
	if err != nil {
		t.Fatalf("RenderStrip failed: %v", err)
	}

	wantW := int(math.Ceil(64 + 48 + cfg.Gap))
	if strip.Rect.Dx() != wantW {
		t.Errorf("Expected strip width %d, got %d", wantW, strip.Rect.Dx())
	}
	if strip.Rect.Dy() != 48 {
		t.Errorf("Expected strip height 48, got %d", strip.Rect.Dy())
	}

	// The first logo is vertically centered: its slot center carries
	// ink, the rows above its top edge stay transparent.
	if got := strip.NRGBAAt(10, 24); got.A == 0 {
		t.Errorf("Expected ink at first logo center, got %v", got)
	}
	if got := strip.NRGBAAt(10, 2); got.A != 0 {
		t.Errorf("Expected transparent row above first logo, got %v", got)
	}
}

func TestRenderStripEmpty(t *testing.T) {
	if _, err := RenderStrip(context.Background(), nil, &fakeDecoder{}, config.Default()); err == nil {
		t.Error("Expected error for empty input")
	}
}

func TestRenderStripDecodeFailure(t *testing.T) {
	logos := []pipeline.NormalizedLogo{{
		Ref:              "gone.png",
		ContentBox:       image.Rect(0, 0, 10, 10),
		NormalizedWidth:  48,
		NormalizedHeight: 48,
	}}

	_, err := RenderStrip(context.Background(), logos, &fakeDecoder{}, config.Default())
	if err == nil {
		t.Fatal("Expected decode error")
	}

	var decodeErr *raster.DecodeError
	if !errors.As(err, &decodeErr) {
		t.Errorf("Expected DecodeError, got %T", err)
	}
}

func TestRenderStripAlignmentOffset(t *testing.T) {
	dec := &fakeDecoder{images: map[string]*raster.Image{
		"a.png": solidLogo(40, 40),
	}}

	logos := []pipeline.NormalizedLogo{{
		Ref:              "a.png",
		ContentBox:       image.Rect(0, 0, 40, 40),
		NormalizedWidth:  40,
		NormalizedHeight: 40,
		AlignOffset:      normalizer.Offset{Y: 4},
	}}

	strip, err := RenderStrip(context.Background(), logos, dec, config.Default())
	if err != nil {
		t.Fatalf("RenderStrip failed: %v", err)
	}

	// A +4 vertical offset moves the logo down: with equal logo and row
	// height the top rows are now transparent.
	if got := strip.NRGBAAt(20, 1); got.A != 0 {
		t.Errorf("Expected transparent pixel above shifted logo, got %v", got)
	}
	if got := strip.NRGBAAt(20, 20); got.A == 0 {
		t.Errorf("Expected ink at logo body, got %v", got)
	}
}
