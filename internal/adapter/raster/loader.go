// Package raster loads image files into memory for the preview surface.
// PNG, JPEG and GIF come from the standard library, BMP from x/image, and
// PGM/PPM from the decoder in this package. JXL files are never loaded
// directly; the session decodes them to a temporary PNG first.
package raster

import (
	"fmt"
	"image"
	"os"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"

	"github.com/bnema/jxlview/internal/port"
)

type Loader struct{}

func NewLoader() port.ImageLoader {
	return &Loader{}
}

func (l *Loader) Load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return img, nil
}

var _ port.ImageLoader = (*Loader)(nil)
