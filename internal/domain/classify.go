package domain

import (
	"path/filepath"
	"strings"
)

// JXLExt is the extension of the target format.
const JXLExt = ".jxl"

// supportedInputExts is the closed set of raster formats the encoder accepts
// as input. Anything else is rejected at open time.
var supportedInputExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".bmp":  true,
	".ppm":  true,
	".pgm":  true,
}

// Classification describes what kind of file a path points at, judged by
// extension alone.
type Classification struct {
	IsJXL            bool
	IsSupportedInput bool
}

// Classify inspects the extension of path case-insensitively. A path that is
// neither a JXL nor a supported raster input comes back with both fields
// false.
func Classify(path string) Classification {
	ext := strings.ToLower(filepath.Ext(path))
	return Classification{
		IsJXL:            ext == JXLExt,
		IsSupportedInput: supportedInputExts[ext],
	}
}

// ReplaceExt returns path with its extension swapped for newExt. newExt must
// include the leading dot.
func ReplaceExt(path, newExt string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + newExt
}
