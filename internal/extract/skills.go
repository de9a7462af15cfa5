package extract

import (
	"strings"

	"github.com/jonathan/portfolio-builder/internal/patterns"
)

// Skills unions matches from "Skills:"-style labelled lists (split on
// comma, semicolon, or pipe) with substring detection against a fixed
// technology vocabulary, deduplicated in detection order.
func Skills(rawText string) ([]string, bool) {
	var skills []string
	seen := make(map[string]bool)

	add := func(skill string) {
		skill = strings.TrimSpace(skill)
		if skill == "" || seen[skill] {
			return
		}
		seen[skill] = true
		skills = append(skills, skill)
	}

	for _, pattern := range patterns.SkillLabels {
		for _, match := range pattern.FindAllStringSubmatch(rawText, -1) {
			for _, part := range strings.FieldsFunc(match[1], func(r rune) bool {
				return r == ',' || r == ';' || r == '|'
			}) {
				add(part)
			}
		}
	}

	lower := strings.ToLower(rawText)
	for _, skill := range skillVocabulary {
		if strings.Contains(lower, strings.ToLower(skill)) {
			add(skill)
		}
	}

	if len(skills) == 0 {
		return DefaultSkills(), false
	}
	return skills, true
}
