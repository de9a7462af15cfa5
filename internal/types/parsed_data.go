// Package types provides type definitions for structured data used throughout the portfolio-builder system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Field names used as keys in ParsedData.Matched and ConfidenceReport.Fields.
const (
	FieldName           = "name"
	FieldEmail          = "email"
	FieldPhone          = "phone"
	FieldSummary        = "summary"
	FieldExperience     = "experience"
	FieldEducation      = "education"
	FieldSkills         = "skills"
	FieldProjects       = "projects"
	FieldAddress        = "address"
	FieldSocialLinks    = "social_links"
	FieldCertifications = "certifications"
	FieldLanguages      = "languages"
)

// ParsedData represents the structured result of résumé extraction.
// Every required field is always populated: extractors fall back to
// fixed defaults when no pattern matches, so downstream rendering never
// needs nil checks on required fields.
type ParsedData struct {
	Name       string            `json:"name"`
	Email      string            `json:"email"`
	Phone      string            `json:"phone"`
	Summary    string            `json:"summary"`
	Experience []ExperienceEntry `json:"experience"`
	Education  []EducationEntry  `json:"education"`
	Skills     []string          `json:"skills"`
	Projects   []ProjectEntry    `json:"projects"`

	// Extended fields populated by the advanced parser only
	Address        string          `json:"address,omitempty"`
	SocialLinks    []string        `json:"social_links,omitempty"`
	Certifications []Certification `json:"certifications,omitempty"`
	Languages      []LanguageSkill `json:"languages,omitempty"`

	// Matched records, per field, whether the extractor matched real
	// input (true) or fell back to its default (false). Absent keys are
	// treated as unknown; the confidence scorer then falls back to
	// comparing values against the known default sentinels.
	Matched map[string]bool `json:"matched,omitempty"`
}

// MatchedField reports the provenance flag for a field.
// The second return is false when no provenance was recorded.
func (d *ParsedData) MatchedField(field string) (bool, bool) {
	if d.Matched == nil {
		return false, false
	}
	v, ok := d.Matched[field]
	return v, ok
}

// SetMatched records extraction provenance for a field.
func (d *ParsedData) SetMatched(field string, matched bool) {
	if d.Matched == nil {
		d.Matched = make(map[string]bool)
	}
	d.Matched[field] = matched
}

// ExperienceEntry represents a single position in the experience section.
// Dates are unstructured strings, never parsed into calendar types.
type ExperienceEntry struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Company     string `json:"company"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Description string `json:"description"`
}

// EducationEntry represents a single degree in the education section
type EducationEntry struct {
	ID     string `json:"id"`
	Degree string `json:"degree"`
	School string `json:"school"`
	Year   string `json:"year"`
}

// ProjectEntry represents a single project with its technology list
type ProjectEntry struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	GithubURL    string   `json:"github_url,omitempty"`
	LiveURL      string   `json:"live_url,omitempty"`
}

// Certification represents a professional certification
type Certification struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Issuer string `json:"issuer"`
	Date   string `json:"date"`
	URL    string `json:"url,omitempty"`
}

// LanguageSkill represents a spoken language with proficiency level
type LanguageSkill struct {
	Language    string `json:"language"`
	Proficiency string `json:"proficiency"`
}

// ConfidenceReport holds per-field and aggregate 0..1 confidence scores.
// A score of 0.1 is the reserved "no signal" value: the extractor fell
// back to its hardcoded default.
type ConfidenceReport struct {
	Overall float64            `json:"overall"`
	Fields  map[string]float64 `json:"fields"`
}

// TextRun is a positioned text fragment extracted from a PDF page,
// carrying the layout metadata the advanced name extractor keys off.
type TextRun struct {
	Page     int     `json:"page"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	FontSize float64 `json:"font_size"`
	Text     string  `json:"text"`
}

// Progress is a single parse progress notification. Percent values for
// one parse call are strictly monotonically increasing and the final
// notification always carries 100.
type Progress struct {
	Step       string  `json:"step"`
	Percent    int     `json:"progress"`
	Confidence float64 `json:"confidence,omitempty"`
}
