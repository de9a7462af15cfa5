// Package extract provides independent heuristic field extractors for résumé text.
// Every extractor is total: it never fails and always returns a usable value,
// falling back to a fixed default when no pattern matches. The boolean return
// records whether the value came from real input.
package extract

import "github.com/jonathan/portfolio-builder/internal/types"

// Fallback sentinels returned when an extractor finds no signal. The
// confidence scorer treats an exact match against these as "no signal"
// when extraction provenance is unavailable.
const (
	DefaultName    = "John Doe"
	DefaultEmail   = "john.doe@email.com"
	DefaultPhone   = "+1 (555) 123-4567"
	DefaultSummary = "Experienced professional with expertise in software development and project management."
)

// DefaultSkills returns the fixed fallback skill set
func DefaultSkills() []string {
	return []string{"JavaScript", "TypeScript", "React"}
}

// DefaultExperience returns the fixed fallback experience entry
func DefaultExperience() []types.ExperienceEntry {
	return []types.ExperienceEntry{
		{
			ID:          "1",
			Title:       "Senior Software Engineer",
			Company:     "Tech Corporation",
			StartDate:   "2021",
			EndDate:     "Present",
			Description: "Led development of multiple web applications using modern technologies.",
		},
	}
}

// DefaultEducation returns the fixed fallback education entry
func DefaultEducation() []types.EducationEntry {
	return []types.EducationEntry{
		{
			ID:     "1",
			Degree: "Bachelor of Computer Science",
			School: "University of Technology",
			Year:   "2019",
		},
	}
}

// DefaultProjects returns the fixed fallback project entry
func DefaultProjects() []types.ProjectEntry {
	return []types.ProjectEntry{
		{
			ID:           "1",
			Title:        "Portfolio Website",
			Description:  "Built a responsive portfolio website using React and TypeScript.",
			Technologies: []string{"React", "TypeScript", "Tailwind CSS"},
			GithubURL:    "https://github.com/example/portfolio",
			LiveURL:      "https://example-portfolio.com",
		},
	}
}

// DefaultLanguages returns the fixed fallback language entry
func DefaultLanguages() []types.LanguageSkill {
	return []types.LanguageSkill{
		{Language: "English", Proficiency: "Native"},
	}
}

// skillVocabulary is the fixed set of technology names detected by
// substring match against the raw text
var skillVocabulary = []string{
	"JavaScript", "TypeScript", "React", "Node.js", "Python",
	"Java", "HTML", "CSS", "SQL", "Git", "AWS", "Docker",
	"MongoDB", "PostgreSQL", "Express", "Angular", "Vue",
	"PHP", "C++", "C#", "Ruby", "Go", "Rust", "Swift",
}
