package logger

import (
	"fmt"
	"strings"
)

// SanitizeForLog escapes control characters before a string is logged. File
// paths come from the OS file dialog and diagnostic text comes verbatim from
// external tool output, which can carry ANSI sequences and progress-bar
// carriage returns that would mangle the log stream. Unicode text passes
// through untouched; newlines, tabs, NUL bytes, ESC and other control
// characters become visible escapes.
func SanitizeForLog(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for _, r := range s {
		switch {
		case r == '\n':
			b.WriteString("\\n")
		case r == '\r':
			b.WriteString("\\r")
		case r == '\t':
			b.WriteString("\\t")
		case r < 32 || r == 127:
			fmt.Fprintf(&b, "\\x%02x", r)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
