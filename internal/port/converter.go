package port

import (
	"image"

	"github.com/bnema/jxlview/internal/domain"
)

// Converter runs the external JPEG XL tool pair. Implementations are
// synchronous: each call blocks until the underlying process exits.
type Converter interface {
	// Available reports whether both external tools answer a version query
	// with a zero exit status. A non-nil error names the tool that failed.
	Available() error

	// EncodeToJXL converts inputPath to a JXL file next to it. quality must
	// already be clamped to the valid range.
	EncodeToJXL(inputPath string, quality int) domain.ConversionResult

	// DecodeToTemp decodes jxlPath to a temporary PNG for previewing.
	DecodeToTemp(jxlPath string) domain.DecodeResult
}

// ImageLoader decodes a raster file into an image for display.
type ImageLoader interface {
	Load(path string) (image.Image, error)
}
