package extract

import "strings"

// SplitLines breaks raw extracted text into trimmed, non-empty lines,
// preserving document order.
func SplitLines(rawText string) []string {
	rawText = strings.ReplaceAll(rawText, "\r\n", "\n")
	parts := strings.Split(rawText, "\n")
	lines := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}
