// Package patterns provides the named regular-expression sets driving heuristic résumé field extraction.
package patterns

import (
	"regexp"
	"strings"
)

// sectionHeaderMaxLen is the cutoff separating a real section header from a
// descriptive sentence that happens to mention a section keyword.
const sectionHeaderMaxLen = 50

// Email patterns, loosest first
var Email = []*regexp.Regexp{
	regexp.MustCompile(`[\w.-]+@[\w.-]+\.\w+`),
	regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`),
}

// Phone patterns: loose digit-punctuation run, NANP-formatted, international
var Phone = []*regexp.Regexp{
	regexp.MustCompile(`\+?[\d\s()\-.]{10,}`),
	regexp.MustCompile(`(?:\+?1[-.\s]?)?\(?[0-9]{3}\)?[-.\s]?[0-9]{3}[-.\s]?[0-9]{4}`),
	regexp.MustCompile(`\+\d{1,3}[\s-]?\d{3,14}`),
}

// Address patterns for US street addresses
var Address = []*regexp.Regexp{
	regexp.MustCompile(`\d+\s+[A-Za-z\s]+(?:Street|St|Avenue|Ave|Road|Rd|Boulevard|Blvd|Lane|Ln|Drive|Dr|Court|Ct|Circle|Cir|Way|Place|Pl)[,\s]+[A-Za-z\s]+[,\s]+[A-Z]{2}[,\s]*\d{5}`),
	regexp.MustCompile(`\d+\s+[A-Za-z\s,]+[A-Z]{2}\s+\d{5}`),
}

// SocialLinks patterns for known platforms
var SocialLinks = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?linkedin\.com/in/[\w-]+`),
	regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?github\.com/[\w-]+`),
	regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?twitter\.com/[\w-]+`),
	regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?behance\.net/[\w-]+`),
	regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?dribbble\.com/[\w-]+`),
}

// SkillLabels match "Skills: ..." style labelled lists
var SkillLabels = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:Skills|Technologies|Programming Languages|Tools):\s*([^.]+)`),
	regexp.MustCompile(`(?i)(?:Proficient in|Experience with|Knowledge of):\s*([^.]+)`),
}

// Certifications patterns
var Certifications = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:Certified|Certification|Certificate)[\s\w]*:?\s*([^,\n]+)`),
	regexp.MustCompile(`(?i)(?:AWS|Microsoft|Google|Oracle|Cisco|CompTIA)[\s\w]*(?:Certified|Certificate|Certification)`),
}

// Languages patterns for spoken-language lists and proficiency phrases
var Languages = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:Languages|Spoken Languages):\s*([^.]+)`),
	regexp.MustCompile(`(?i)(?:Native|Fluent|Proficient|Basic|Conversational|Intermediate|Advanced)\s+(?:in\s+)?([A-Za-z]+)`),
}

// Name patterns tried against the first few lines: FirstName LastName,
// all-caps names, and names with middle initials.
var Name = []*regexp.Regexp{
	regexp.MustCompile(`^([A-Z][a-z]+\s+[A-Z][a-z]+(?:\s+[A-Z][a-z]+)?)$`),
	regexp.MustCompile(`^([A-Z][A-Z\s]+)$`),
	regexp.MustCompile(`^([A-Z][a-z]+(?:\s+[A-Z]\.?\s*)*[A-Z][a-z]+)$`),
}

// DateRange patterns: year-year, year-present, and month-year variants
var DateRange = []*regexp.Regexp{
	regexp.MustCompile(`\d{4}\s*-\s*\d{4}`),
	regexp.MustCompile(`(?i)\d{4}\s*-\s*present`),
	regexp.MustCompile(`\w+\s+\d{4}\s*-\s*\w+\s+\d{4}`),
	regexp.MustCompile(`(?i)\w+\s+\d{4}\s*-\s*present`),
}

// DateRangeCapture pulls start/end out of a date-range line
var DateRangeCapture = regexp.MustCompile(`(?i)(\d{4}|\w+\s+\d{4})\s*-\s*(\d{4}|present|\w+\s+\d{4})`)

// StrictEmail is the confidence scorer's whole-string email check
var StrictEmail = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// StrictPhone is the confidence scorer's whole-string phone check
var StrictPhone = regexp.MustCompile(`^\+?[\d\s()\-.]{10,}$`)

// SummaryKeywords mark the start of the summary section
var SummaryKeywords = []string{"summary", "objective", "profile", "about", "overview", "professional summary"}

// ExperienceKeywords mark the start of the experience section
var ExperienceKeywords = []string{"experience", "employment", "work history", "professional experience"}

// sectionKeywords are the recognized résumé section names used by the
// shared header predicate
var sectionKeywords = []string{"experience", "education", "skills", "projects", "certifications", "languages"}

// nonNameWords are tokens that disqualify a candidate line as a person's name
var nonNameWords = map[string]bool{
	"RESUME":     true,
	"CV":         true,
	"CURRICULUM": true,
	"VITAE":      true,
	"PROFILE":    true,
	"CONTACT":    true,
	"EDUCATION":  true,
}

// IsSectionHeader reports whether a line marks the start of a recognized
// résumé section. The length cutoff avoids misclassifying a long sentence
// that merely mentions a section keyword.
func IsSectionHeader(line string) bool {
	if len(line) >= sectionHeaderMaxLen {
		return false
	}
	lower := strings.ToLower(line)
	for _, kw := range sectionKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// ContainsKeyword reports whether the line contains any of the given
// keywords, case-insensitively.
func ContainsKeyword(line string, keywords []string) bool {
	lower := strings.ToLower(line)
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// IsLikelyName applies the name-likelihood heuristic: 2-4 words, each
// starting with a capital letter, none a known non-name token.
func IsLikelyName(text string) bool {
	words := strings.Fields(text)
	if len(words) < 2 || len(words) > 4 {
		return false
	}
	for _, word := range words {
		if word[0] < 'A' || word[0] > 'Z' {
			return false
		}
		if nonNameWords[strings.ToUpper(word)] {
			return false
		}
	}
	return true
}
