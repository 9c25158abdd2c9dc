package raster

import (
	"context"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// FileDecoder decodes raster image files (PNG, JPEG, GIF, BMP, TIFF, WebP)
// from the filesystem.
type FileDecoder struct{}

func (d *FileDecoder) Decode(ctx context.Context, ref string) (*Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(ref)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, err
	}

	return wrap(img, hasAlphaChannel(img)), nil
}

// AutoDecoder dispatches by file extension: PDF sources go through the
// fitz rasterizer, everything else through the raster file decoder.
type AutoDecoder struct {
	file FileDecoder
	pdf  FitzDecoder
}

// NewDecoder creates an AutoDecoder rasterizing vector sources at the
// given DPI.
func NewDecoder(dpi int) *AutoDecoder {
	return &AutoDecoder{pdf: FitzDecoder{DPI: dpi}}
}

func (d *AutoDecoder) Decode(ctx context.Context, ref string) (*Image, error) {
	if strings.EqualFold(filepath.Ext(ref), ".pdf") {
		return d.pdf.Decode(ctx, ref)
	}
	return d.file.Decode(ctx, ref)
}

// SupportedExt reports whether the extension names a decodable logo source.
func SupportedExt(ext string) bool {
	switch strings.ToLower(ext) {
	case ".png", ".jpg", ".jpeg", ".gif", ".bmp", ".tif", ".tiff", ".webp", ".pdf":
		return true
	}
	return false
}

// ListSources returns the decodable files in a directory, sorted by name.
func ListSources(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if SupportedExt(filepath.Ext(entry.Name())) {
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(paths)

	return paths, nil
}
