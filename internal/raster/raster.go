package raster

import (
	"context"
	"fmt"
	"image"
)

// Image is a decoded pixel buffer owned by one logo's measurement task.
type Image struct {
	// Pix holds RGBA samples in row-major order with no sub-rectangle
	// offset: Pix.Rect.Min is always (0,0).
	Pix *image.NRGBA

	// HasAlpha reports whether the source format carries an alpha channel.
	// Background estimation and density weighting switch on this: with an
	// alpha channel the background reference is full transparency,
	// without one it is sampled from the image corners.
	HasAlpha bool
}

// Width returns the pixel width of the buffer.
func (im *Image) Width() int { return im.Pix.Rect.Dx() }

// Height returns the pixel height of the buffer.
func (im *Image) Height() int { return im.Pix.Rect.Dy() }

// Decoder turns a source reference into a pixel buffer.
type Decoder interface {
	Decode(ctx context.Context, ref string) (*Image, error)
}

// DecodeError reports a source that could not be turned into a pixel
// buffer. It aborts the whole batch: set-wide normalization cannot
// proceed with a missing member.
type DecodeError struct {
	Ref string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode %q: %v", e.Ref, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
