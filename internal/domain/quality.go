package domain

import (
	"strconv"
	"strings"
)

const (
	// DefaultQuality is the encode quality used when the user's input cannot
	// be parsed or falls outside the valid range.
	DefaultQuality = 85

	MinQuality = 1
	MaxQuality = 100
)

// ClampQuality parses a free-text quality value. It returns the effective
// quality and whether the input was accepted as-is. Non-integer input
// (surrounding whitespace is tolerated) or anything outside [MinQuality,
// MaxQuality] falls back to DefaultQuality with ok=false, so the caller can
// reflect the correction back into the UI.
func ClampQuality(s string) (quality int, ok bool) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v < MinQuality || v > MaxQuality {
		return DefaultQuality, false
	}
	return v, true
}
