// Package jxltools adapts the cjxl/djxl command-line tools to the Converter
// port. The tools are opaque collaborators: the adapter inspects nothing but
// their exit code and combined output.
package jxltools

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/bnema/jxlview/internal/domain"
	"github.com/bnema/jxlview/internal/infrastructure/logger"
	"github.com/bnema/jxlview/internal/port"
)

const (
	// DefaultEncoder and DefaultDecoder are the binaries looked up on PATH
	// when no override is configured.
	DefaultEncoder = "cjxl"
	DefaultDecoder = "djxl"

	// tempPrefix namespaces decoded preview files in the system temp
	// directory so they never collide with the original file.
	tempPrefix = "nimfinder_preview_"

	previewExt = ".png"
)

type Converter struct {
	encoderBin string
	decoderBin string
}

func NewConverter(encoderBin, decoderBin string) port.Converter {
	if encoderBin == "" {
		encoderBin = DefaultEncoder
	}
	if decoderBin == "" {
		decoderBin = DefaultDecoder
	}
	return &Converter{encoderBin: encoderBin, decoderBin: decoderBin}
}

// Available probes both tools with a version query. Any spawn failure or
// nonzero exit means the tool is unusable.
func (c *Converter) Available() error {
	for _, bin := range []string{c.encoderBin, c.decoderBin} {
		if err := exec.Command(bin, "--version").Run(); err != nil {
			return fmt.Errorf("%w: %s (%v)", domain.ErrToolUnavailable, bin, err)
		}
	}
	return nil
}

// EncodeToJXL runs `cjxl <input> <output> -q <quality>` where output is the
// input path with its extension swapped for .jxl. quality is assumed to be
// clamped by the caller.
func (c *Converter) EncodeToJXL(inputPath string, quality int) domain.ConversionResult {
	if err := validatePath(inputPath); err != nil {
		return domain.ConversionResult{Message: fmt.Sprintf("invalid input path: %v", err)}
	}

	outputPath := EncodeOutputPath(inputPath)
	args := encodeArgs(inputPath, outputPath, quality)

	output, err := exec.Command(c.encoderBin, args...).CombinedOutput()
	if err != nil {
		logger.Warnf("encode failed for %s: %v", logger.SanitizeForLog(inputPath), err)
		return domain.ConversionResult{
			Message: fmt.Sprintf("Conversion failed: %s", strings.TrimSpace(string(output))),
		}
	}

	logger.Infof("encoded %s -> %s (quality %d)", logger.SanitizeForLog(inputPath), logger.SanitizeForLog(outputPath), quality)
	return domain.ConversionResult{
		Success:    true,
		OutputPath: outputPath,
		Message:    fmt.Sprintf("Converted successfully: %s", outputPath),
	}
}

// DecodeToTemp runs `djxl <input> <temp>` where temp lives in the system temp
// directory under a fixed prefix. The caller owns the resulting file.
func (c *Converter) DecodeToTemp(jxlPath string) domain.DecodeResult {
	if err := validatePath(jxlPath); err != nil {
		return domain.DecodeResult{Message: fmt.Sprintf("invalid input path: %v", err)}
	}

	tempPath := TempPreviewPath(jxlPath)

	output, err := exec.Command(c.decoderBin, jxlPath, tempPath).CombinedOutput()
	if err != nil {
		logger.Warnf("decode failed for %s: %v", logger.SanitizeForLog(jxlPath), err)
		return domain.DecodeResult{
			Message: fmt.Sprintf("Failed to decode JXL: %s", strings.TrimSpace(string(output))),
		}
	}

	logger.Infof("decoded %s -> %s", logger.SanitizeForLog(jxlPath), logger.SanitizeForLog(tempPath))
	return domain.DecodeResult{Success: true, TempPath: tempPath}
}

// EncodeOutputPath computes where the encoder writes for a given input.
func EncodeOutputPath(inputPath string) string {
	return domain.ReplaceExt(inputPath, domain.JXLExt)
}

// TempPreviewPath computes the decoded preview location for a JXL source.
func TempPreviewPath(jxlPath string) string {
	base := domain.ReplaceExt(filepath.Base(jxlPath), previewExt)
	return filepath.Join(os.TempDir(), tempPrefix+base)
}

func encodeArgs(inputPath, outputPath string, quality int) []string {
	return []string{inputPath, outputPath, "-q", strconv.Itoa(quality)}
}

func validatePath(path string) error {
	if path == "" {
		return domain.ErrEmptyPath
	}
	if strings.ContainsRune(path, 0) {
		return domain.ErrInvalidPath
	}
	return nil
}

var _ port.Converter = (*Converter)(nil)
