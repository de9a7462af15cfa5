package extract

import (
	"fmt"
	"strings"

	"github.com/jonathan/portfolio-builder/internal/patterns"
	"github.com/jonathan/portfolio-builder/internal/types"
)

// Education parsing is not implemented; the extractor always falls back
// to the fixed example entry so downstream rendering has data to show.
// TODO: classify degree/school/year lines the way Experience does.
func Education(_ []string) ([]types.EducationEntry, bool) {
	return DefaultEducation(), false
}

// Projects parsing is not implemented; see Education.
func Projects(_ []string) ([]types.ProjectEntry, bool) {
	return DefaultProjects(), false
}

// Certifications extracts certification mentions via the certification
// regex set. No fallback entries: certifications are optional data.
func Certifications(rawText string) ([]types.Certification, bool) {
	var certs []types.Certification
	for _, pattern := range patterns.Certifications {
		for _, match := range pattern.FindAllString(rawText, -1) {
			certs = append(certs, types.Certification{
				ID:     fmt.Sprintf("cert-%d", len(certs)+1),
				Name:   strings.TrimSpace(match),
				Issuer: "Professional Certification Body",
				Date:   "2023",
			})
		}
	}
	return certs, len(certs) > 0
}

// Languages extracts spoken languages with proficiency from phrases like
// "Fluent in Spanish", falling back to a single example entry.
func Languages(rawText string) ([]types.LanguageSkill, bool) {
	var langs []types.LanguageSkill
	for _, pattern := range patterns.Languages {
		for _, match := range pattern.FindAllString(rawText, -1) {
			parts := strings.Fields(match)
			if len(parts) >= 2 {
				langs = append(langs, types.LanguageSkill{
					Language:    parts[len(parts)-1],
					Proficiency: parts[0],
				})
			}
		}
	}
	if len(langs) == 0 {
		return DefaultLanguages(), false
	}
	return langs, true
}
