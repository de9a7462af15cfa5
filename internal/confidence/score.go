// Package confidence derives per-field and aggregate 0..1 confidence scores
// for extracted résumé data. Scoring is a pure function of the parsed data
// and the original raw text; it can be re-derived at any time and holds no
// state of its own.
package confidence

import (
	"strings"

	"github.com/jonathan/portfolio-builder/internal/extract"
	"github.com/jonathan/portfolio-builder/internal/patterns"
	"github.com/jonathan/portfolio-builder/internal/types"
)

// NoSignal is the reserved score meaning the extractor fell back to its
// hardcoded default and found no real signal in the input.
const NoSignal = 0.1

// Score builds a ConfidenceReport for the given parsed data against the
// raw text it was extracted from. Fields whose extractors fell back to
// their defaults score NoSignal; otherwise a field-specific heuristic
// applies. The overall score is the arithmetic mean of the field scores.
func Score(data *types.ParsedData, rawText string) types.ConfidenceReport {
	fields := map[string]float64{
		types.FieldName:       scoreName(data, rawText),
		types.FieldEmail:      scoreEmail(data),
		types.FieldPhone:      scorePhone(data),
		types.FieldSummary:    scoreSummary(data),
		types.FieldExperience: scoreEntryCount(data, types.FieldExperience, len(data.Experience), 0.3, 0.2, defaultExperience(data)),
		types.FieldEducation:  scoreEntryCount(data, types.FieldEducation, len(data.Education), 0.4, 0.3, defaultEducation(data)),
		types.FieldSkills:     scoreSkills(data, rawText),
	}

	var sum float64
	for _, score := range fields {
		sum += score
	}

	return types.ConfidenceReport{
		Overall: sum / float64(len(fields)),
		Fields:  fields,
	}
}

// fellBack reports whether a field's value came from the extractor's
// fallback default. Recorded provenance wins; without it the value is
// compared against the known sentinel, which can misfire on input that
// coincidentally equals a default.
func fellBack(data *types.ParsedData, field string, sentinelHit bool) bool {
	if matched, ok := data.MatchedField(field); ok {
		return !matched
	}
	return sentinelHit
}

func scoreName(data *types.ParsedData, rawText string) float64 {
	if fellBack(data, types.FieldName, data.Name == extract.DefaultName) {
		return NoSignal
	}
	if strings.Contains(rawText, data.Name) {
		return 0.9
	}
	return 0.6
}

func scoreEmail(data *types.ParsedData) float64 {
	if fellBack(data, types.FieldEmail, data.Email == extract.DefaultEmail) {
		return NoSignal
	}
	if patterns.StrictEmail.MatchString(data.Email) {
		return 0.95
	}
	return 0.5
}

func scorePhone(data *types.ParsedData) float64 {
	if fellBack(data, types.FieldPhone, data.Phone == extract.DefaultPhone) {
		return NoSignal
	}
	if patterns.StrictPhone.MatchString(data.Phone) {
		return 0.9
	}
	return 0.6
}

func scoreSummary(data *types.ParsedData) float64 {
	if fellBack(data, types.FieldSummary, data.Summary == extract.DefaultSummary) {
		return NoSignal
	}
	if len(data.Summary) > 50 {
		return 0.8
	}
	return 0.4
}

// scoreEntryCount scales with entry count: min(0.9, base + count*increment)
func scoreEntryCount(data *types.ParsedData, field string, count int, base, increment float64, sentinelHit bool) float64 {
	if fellBack(data, field, sentinelHit) {
		return NoSignal
	}
	score := base + float64(count)*increment
	if score > 0.9 {
		score = 0.9
	}
	return score
}

func defaultExperience(data *types.ParsedData) bool {
	return len(data.Experience) == 1 && data.Experience[0].Company == "Tech Corporation"
}

func defaultEducation(data *types.ParsedData) bool {
	return len(data.Education) == 1 && data.Education[0].School == "University of Technology"
}

func scoreSkills(data *types.ParsedData, rawText string) float64 {
	if fellBack(data, types.FieldSkills, defaultSkills(data.Skills)) {
		return NoSignal
	}
	if len(data.Skills) == 0 {
		return NoSignal
	}

	lower := strings.ToLower(rawText)
	found := 0
	for _, skill := range data.Skills {
		if strings.Contains(lower, strings.ToLower(skill)) {
			found++
		}
	}

	score := 0.2 + float64(found)/float64(len(data.Skills))*0.7
	if score > 0.95 {
		score = 0.95
	}
	return score
}

func defaultSkills(skills []string) bool {
	defaults := map[string]bool{"JavaScript": true, "TypeScript": true, "React": true}
	if len(skills) != len(defaults) {
		return false
	}
	for _, skill := range skills {
		if !defaults[skill] {
			return false
		}
	}
	return true
}
