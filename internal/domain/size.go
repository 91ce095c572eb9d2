package domain

import "fmt"

// FormatSize renders a byte count for the status line: whole megabytes above
// 1 MiB, whole kilobytes above 1 KiB, raw bytes below that. Division
// truncates, so 1536 bytes is "1 KB".
func FormatSize(bytes int64) string {
	switch {
	case bytes >= 1024*1024:
		return fmt.Sprintf("%d MB", bytes/(1024*1024))
	case bytes >= 1024:
		return fmt.Sprintf("%d KB", bytes/1024)
	default:
		return fmt.Sprintf("%d bytes", bytes)
	}
}

// SizeRatio formats outBytes as a percentage of inBytes with one decimal,
// e.g. "40.0%". A zero input size yields "0.0%" rather than dividing by zero.
func SizeRatio(outBytes, inBytes int64) string {
	if inBytes == 0 {
		return "0.0%"
	}
	return fmt.Sprintf("%.1f%%", float64(outBytes)/float64(inBytes)*100)
}
