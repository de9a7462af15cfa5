package extract

import (
	"strings"

	"github.com/jonathan/portfolio-builder/internal/patterns"
)

// summaryMaxLines caps how many lines after the keyword are collected
const summaryMaxLines = 3

// Summary locates a line containing a summary keyword, then collects up
// to three subsequent lines until a recognized section header is hit.
func Summary(lines []string) (string, bool) {
	start := -1
	for i, line := range lines {
		if patterns.ContainsKeyword(line, patterns.SummaryKeywords) {
			start = i
			break
		}
	}
	if start == -1 {
		return DefaultSummary, false
	}

	var collected []string
	for i := start + 1; i < len(lines) && i <= start+summaryMaxLines; i++ {
		if patterns.IsSectionHeader(lines[i]) {
			break
		}
		collected = append(collected, lines[i])
	}
	if len(collected) == 0 {
		return DefaultSummary, false
	}
	return strings.Join(collected, " "), true
}
