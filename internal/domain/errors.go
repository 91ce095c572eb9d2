package domain

import "errors"

var (
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrToolUnavailable   = errors.New("external tool not available")
	ErrEmptyPath         = errors.New("path is empty")
	ErrInvalidPath       = errors.New("path contains invalid characters")
)
