package extract

import (
	"strings"

	"github.com/jonathan/portfolio-builder/internal/patterns"
	"github.com/jonathan/portfolio-builder/internal/types"
)

// headerRunWindow is how many leading text runs are considered when
// hunting for the largest-font name candidate
const headerRunWindow = 10

// Name tries three strategies in order: largest-font candidate among the
// leading text runs (when layout metadata is available), regex match
// against common name shapes on the first few lines, and a naive
// 2-4-word first-line heuristic. The first strategy producing a likely
// name wins; otherwise the fixed fallback is returned with matched=false.
func Name(lines []string, runs []types.TextRun) (string, bool) {
	strategies := []func() string{
		func() string { return nameFromHeader(runs) },
		func() string { return nameFromPattern(lines) },
		func() string { return nameFromFirstLines(lines) },
	}
	for _, strategy := range strategies {
		if name := strategy(); len(name) > 2 {
			return name, true
		}
	}
	return DefaultName, false
}

// nameFromHeader picks the largest-font run among the first few that
// passes the name-likelihood filter
func nameFromHeader(runs []types.TextRun) string {
	top := runs
	if len(top) > headerRunWindow {
		top = top[:headerRunWindow]
	}

	var maxFontSize float64
	var candidate string
	for _, run := range top {
		if run.FontSize > maxFontSize {
			text := strings.TrimSpace(run.Text)
			if patterns.IsLikelyName(text) {
				maxFontSize = run.FontSize
				candidate = text
			}
		}
	}
	return candidate
}

func nameFromPattern(lines []string) string {
	limit := min(len(lines), 5)
	for _, line := range lines[:limit] {
		trimmed := strings.TrimSpace(line)
		for _, pattern := range patterns.Name {
			match := pattern.FindStringSubmatch(trimmed)
			if match != nil && patterns.IsLikelyName(match[1]) {
				return match[1]
			}
		}
	}
	return ""
}

func nameFromFirstLines(lines []string) string {
	limit := min(len(lines), 3)
	for _, line := range lines[:limit] {
		words := strings.Fields(line)
		if len(words) >= 2 && len(words) <= 4 {
			name := strings.Join(words, " ")
			if patterns.IsLikelyName(name) {
				return name
			}
		}
	}
	return ""
}
