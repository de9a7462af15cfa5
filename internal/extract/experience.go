package extract

import (
	"fmt"
	"strings"

	"github.com/jonathan/portfolio-builder/internal/patterns"
	"github.com/jonathan/portfolio-builder/internal/types"
)

var titleKeywords = []string{
	"engineer", "developer", "manager", "analyst", "specialist",
	"coordinator", "director", "lead", "senior", "junior",
}

var companyIndicators = []string{
	"inc", "llc", "corp", "company", "ltd", "technologies", "systems", "solutions",
}

// Experience scans the lines following an experience-section keyword,
// classifying each as job title, company, date range, or free-text
// description. A new title line starts a new entry and flushes the
// previous one; the scan stops at the next recognized section header.
func Experience(lines []string) ([]types.ExperienceEntry, bool) {
	start := -1
	for i, line := range lines {
		if patterns.ContainsKeyword(line, patterns.ExperienceKeywords) {
			start = i
			break
		}
	}
	if start == -1 {
		return DefaultExperience(), false
	}

	var entries []types.ExperienceEntry
	var current *types.ExperienceEntry

	for i := start + 1; i < len(lines); i++ {
		line := lines[i]
		if patterns.IsSectionHeader(line) {
			break
		}

		switch {
		case isJobTitle(line):
			if current != nil {
				entries = append(entries, *current)
			}
			current = &types.ExperienceEntry{
				ID:    fmt.Sprintf("exp-%d", len(entries)+1),
				Title: strings.TrimSpace(line),
			}
		case current != nil && isDateRange(line):
			current.StartDate, current.EndDate = parseDateRange(line)
		case current != nil && current.Company == "" && isCompanyName(line):
			current.Company = strings.TrimSpace(line)
		case current != nil && strings.TrimSpace(line) != "":
			if current.Description != "" {
				current.Description += " "
			}
			current.Description += strings.TrimSpace(line)
		}
	}
	if current != nil {
		entries = append(entries, *current)
	}

	if len(entries) == 0 {
		return DefaultExperience(), false
	}
	return entries, true
}

// isJobTitle: contains a title keyword and is short
func isJobTitle(line string) bool {
	return patterns.ContainsKeyword(line, titleKeywords) && len(line) < 100
}

// isCompanyName: carries a legal-entity suffix, or is a short line
// without bullet punctuation
func isCompanyName(line string) bool {
	if patterns.ContainsKeyword(line, companyIndicators) {
		return true
	}
	return len(line) < 60 && !strings.Contains(line, "•") && !strings.Contains(line, "-")
}

func isDateRange(line string) bool {
	for _, pattern := range patterns.DateRange {
		if pattern.MatchString(line) {
			return true
		}
	}
	return false
}

func parseDateRange(line string) (start, end string) {
	if match := patterns.DateRangeCapture.FindStringSubmatch(line); match != nil {
		return match[1], match[2]
	}
	return "2020", "Present"
}
