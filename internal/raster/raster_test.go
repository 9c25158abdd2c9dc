package raster

import (
	"context"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestHasAlphaChannel(t *testing.T) {
	opaquePalette := color.Palette{color.NRGBA{A: 255}, color.NRGBA{R: 255, A: 255}}
	transPalette := color.Palette{color.NRGBA{}, color.NRGBA{R: 255, A: 255}}

	tests := []struct {
		name string
		img  image.Image
		want bool
	}{
		{"nrgba", image.NewNRGBA(image.Rect(0, 0, 4, 4)), true},
		{"rgba", image.NewRGBA(image.Rect(0, 0, 4, 4)), true},
		{"gray", image.NewGray(image.Rect(0, 0, 4, 4)), false},
		{"ycbcr", image.NewYCbCr(image.Rect(0, 0, 4, 4), image.YCbCrSubsampleRatio420), false},
		{"paletted opaque", image.NewPaletted(image.Rect(0, 0, 4, 4), opaquePalette), false},
		{"paletted transparent", image.NewPaletted(image.Rect(0, 0, 4, 4), transPalette), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := hasAlphaChannel(tt.img); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestToNRGBAAnchorsAtOrigin(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 20, 20))
	src.SetNRGBA(12, 7, color.NRGBA{R: 9, G: 8, B: 7, A: 255})
	sub := src.SubImage(image.Rect(10, 5, 20, 15)).(*image.NRGBA)

	out := ToNRGBA(sub)

	if out.Rect.Min != (image.Point{}) {
		t.Errorf("Expected origin anchor, got %v", out.Rect.Min)
	}
	if out.Rect.Dx() != 10 || out.Rect.Dy() != 10 {
		t.Errorf("Expected 10x10, got %dx%d", out.Rect.Dx(), out.Rect.Dy())
	}
	if got := out.NRGBAAt(2, 2); got != (color.NRGBA{R: 9, G: 8, B: 7, A: 255}) {
		t.Errorf("Pixel moved incorrectly, got %v", got)
	}
}

func TestFileDecoderPNG(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 8, 6))
	img.SetNRGBA(3, 3, color.NRGBA{R: 255, A: 255})

	path := filepath.Join(t.TempDir(), "logo.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("Failed to encode: %v", err)
	}
	f.Close()

	dec := &FileDecoder{}
	got, err := dec.Decode(context.Background(), path)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if got.Width() != 8 || got.Height() != 6 {
		t.Errorf("Expected 8x6, got %dx%d", got.Width(), got.Height())
	}
	if !got.HasAlpha {
		t.Error("Expected alpha channel for PNG with transparency")
	}
}

func TestFileDecoderJPEG(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 10, 10))

	path := filepath.Join(t.TempDir(), "logo.jpg")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}
	if err := jpeg.Encode(f, img, nil); err != nil {
		t.Fatalf("Failed to encode: %v", err)
	}
	f.Close()

	dec := &FileDecoder{}
	got, err := dec.Decode(context.Background(), path)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if got.HasAlpha {
		t.Error("JPEG must not report an alpha channel")
	}
}

func TestFileDecoderMissing(t *testing.T) {
	dec := &FileDecoder{}
	if _, err := dec.Decode(context.Background(), "no/such/file.png"); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestDecodeErrorUnwrap(t *testing.T) {
	inner := errors.New("boom")
	err := &DecodeError{Ref: "x.png", Err: inner}

	if !errors.Is(err, inner) {
		t.Error("Expected DecodeError to unwrap to the inner error")
	}
	if err.Error() == "" || err.Ref != "x.png" {
		t.Errorf("Unexpected error shape: %v", err)
	}
}

func TestListSources(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.png", "a.jpg", "notes.txt", "c.pdf"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatalf("Failed to write %s: %v", name, err)
		}
	}

	paths, err := ListSources(dir)
	if err != nil {
		t.Fatalf("ListSources failed: %v", err)
	}

	if len(paths) != 3 {
		t.Fatalf("Expected 3 sources, got %d: %v", len(paths), paths)
	}
	want := []string{"a.jpg", "b.png", "c.pdf"}
	for i, p := range paths {
		if filepath.Base(p) != want[i] {
			t.Errorf("Position %d: expected %s, got %s", i, want[i], filepath.Base(p))
		}
	}
}
