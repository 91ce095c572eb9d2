// Package service holds the application controller. A Session owns the
// mutable state of one running instance: the opened source file, the
// temporary preview artifact for JXL sources and nothing else. All operations
// run synchronously on the caller's goroutine.
package service

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/bnema/jxlview/internal/domain"
	"github.com/bnema/jxlview/internal/infrastructure/logger"
	"github.com/bnema/jxlview/internal/port"
)

// State describes what the session currently has loaded.
type State int

const (
	// StateEmpty: nothing opened, convert disabled.
	StateEmpty State = iota
	// StateViewingSource: a supported raster is displayed directly, convert
	// enabled.
	StateViewingSource
	// StateViewingJXLPreview: a JXL file is displayed through its decoded
	// temp file, convert disabled.
	StateViewingJXLPreview
)

// OpenOutcome reports the result of an Open transition. Image is non-nil
// exactly when the display should change; Status always carries the line for
// the status label.
type OpenOutcome struct {
	Image  image.Image
	Status string
}

type Session struct {
	converter port.Converter
	loader    port.ImageLoader

	sourcePath      string
	tempPreviewPath string
}

func NewSession(converter port.Converter, loader port.ImageLoader) *Session {
	return &Session{converter: converter, loader: loader}
}

// Open handles a file chosen in the open dialog. Any previous temp preview is
// deleted up front, whatever the new file turns out to be. On a decode or
// load failure the source path is left untouched so the session never points
// at a file it could not display.
func (s *Session) Open(path string) OpenOutcome {
	s.removeTempPreview()

	name := filepath.Base(path)
	cls := domain.Classify(path)

	switch {
	case cls.IsJXL:
		res := s.converter.DecodeToTemp(path)
		if !res.Success {
			return OpenOutcome{Status: res.Message}
		}

		img, err := s.loader.Load(res.TempPath)
		if err != nil {
			logger.Errorf("failed to load decoded preview: %v", err)
			if rmErr := os.Remove(res.TempPath); rmErr != nil {
				logger.Warnf("failed to remove temp preview %s: %v", logger.SanitizeForLog(res.TempPath), rmErr)
			}
			return OpenOutcome{Status: fmt.Sprintf("Failed to load preview: %v", err)}
		}

		s.sourcePath = path
		s.tempPreviewPath = res.TempPath
		return OpenOutcome{Image: img, Status: fmt.Sprintf("Viewing JXL: %s", name)}

	case cls.IsSupportedInput:
		img, err := s.loader.Load(path)
		if err != nil {
			logger.Errorf("failed to load %s: %v", logger.SanitizeForLog(path), err)
			return OpenOutcome{Status: fmt.Sprintf("Failed to load image: %v", err)}
		}

		s.sourcePath = path
		return OpenOutcome{Image: img, Status: fmt.Sprintf("Loaded: %s - Click 'Convert to JXL' to convert", name)}

	default:
		return OpenOutcome{Status: fmt.Sprintf("Unsupported file format: %s", name)}
	}
}

// Convert encodes the current source with the quality taken from the UI's
// free-text field. It returns the status line, the quality actually used and
// whether the input had to be corrected back to the default, so the caller
// can rewrite the field.
func (s *Session) Convert(qualityText string) (status string, quality int, corrected bool) {
	quality, ok := domain.ClampQuality(qualityText)
	corrected = !ok

	if !s.CanConvert() {
		return "No convertible image loaded", quality, corrected
	}

	res := s.converter.EncodeToJXL(s.sourcePath, quality)
	if !res.Success {
		return res.Message, quality, corrected
	}

	return s.conversionStatus(res), quality, corrected
}

// conversionStatus appends size information to the encoder's success message
// when both files can be measured.
func (s *Session) conversionStatus(res domain.ConversionResult) string {
	inInfo, inErr := os.Stat(s.sourcePath)
	outInfo, outErr := os.Stat(res.OutputPath)
	if inErr != nil || outErr != nil {
		return res.Message
	}

	return fmt.Sprintf("%s (%s -> %s, %s of original size)",
		res.Message,
		domain.FormatSize(inInfo.Size()),
		domain.FormatSize(outInfo.Size()),
		domain.SizeRatio(outInfo.Size(), inInfo.Size()))
}

// CanConvert reports whether the convert action is meaningful: a source is
// opened and it is not already a JXL.
func (s *Session) CanConvert() bool {
	return s.sourcePath != "" && !domain.Classify(s.sourcePath).IsJXL
}

func (s *Session) State() State {
	switch {
	case s.sourcePath == "":
		return StateEmpty
	case domain.Classify(s.sourcePath).IsJXL:
		return StateViewingJXLPreview
	default:
		return StateViewingSource
	}
}

func (s *Session) SourcePath() string { return s.sourcePath }

// TempPreviewPath exposes the current preview artifact, empty unless a JXL
// source is being viewed.
func (s *Session) TempPreviewPath() string { return s.tempPreviewPath }

// Close releases the session's only on-disk resource. Called once when the
// application shuts down.
func (s *Session) Close() {
	s.removeTempPreview()
}

func (s *Session) removeTempPreview() {
	if s.tempPreviewPath == "" {
		return
	}
	if err := os.Remove(s.tempPreviewPath); err != nil && !os.IsNotExist(err) {
		logger.Warnf("failed to remove temp preview %s: %v", logger.SanitizeForLog(s.tempPreviewPath), err)
	}
	s.tempPreviewPath = ""
}
