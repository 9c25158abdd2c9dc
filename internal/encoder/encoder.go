package encoder

import (
	"bytes"
	"image"
	"image/png"
)

// Encoder turns a pixel buffer into embeddable image data.
type Encoder interface {
	Encode(img image.Image) ([]byte, error)
}

// PNGEncoder encodes losslessly; PNG keeps the alpha channel the density
// measurements depend on.
type PNGEncoder struct{}

func (e *PNGEncoder) Encode(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
