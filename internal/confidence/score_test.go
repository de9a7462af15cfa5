package confidence

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/portfolio-builder/internal/extract"
	"github.com/jonathan/portfolio-builder/internal/types"
)

const richRawText = "Jane Smith\njane.smith@example.com\n+1 555-222-3333\n" +
	"Summary\nBackend engineer with a decade of experience building distributed systems in Go and Python.\n"

func richData() *types.ParsedData {
	return &types.ParsedData{
		Name:    "Jane Smith",
		Email:   "jane.smith@example.com",
		Phone:   "+1 555-222-3333",
		Summary: "Backend engineer with a decade of experience building distributed systems in Go and Python.",
		Experience: []types.ExperienceEntry{
			{ID: "exp-1", Title: "Senior Engineer", Company: "Acme Inc", StartDate: "2019", EndDate: "2022"},
			{ID: "exp-2", Title: "Staff Engineer", Company: "Globex Corp", StartDate: "2022", EndDate: "Present"},
		},
		Education: []types.EducationEntry{
			{ID: "edu-1", Degree: "BSc Computer Science", School: "State University", Year: "2014"},
		},
		Skills: []string{"Go", "Python"},
	}
}

func fallbackData() *types.ParsedData {
	return &types.ParsedData{
		Name:       extract.DefaultName,
		Email:      extract.DefaultEmail,
		Phone:      extract.DefaultPhone,
		Summary:    extract.DefaultSummary,
		Experience: extract.DefaultExperience(),
		Education:  extract.DefaultEducation(),
		Skills:     extract.DefaultSkills(),
	}
}

func TestScoreFullSignal(t *testing.T) {
	report := Score(richData(), richRawText)

	assert.InDelta(t, 0.9, report.Fields[types.FieldName], 1e-9)
	assert.InDelta(t, 0.95, report.Fields[types.FieldEmail], 1e-9)
	assert.InDelta(t, 0.9, report.Fields[types.FieldPhone], 1e-9)
	assert.InDelta(t, 0.8, report.Fields[types.FieldSummary], 1e-9)
	assert.InDelta(t, 0.7, report.Fields[types.FieldExperience], 1e-9)
	assert.InDelta(t, 0.7, report.Fields[types.FieldEducation], 1e-9)
	assert.InDelta(t, 0.9, report.Fields[types.FieldSkills], 1e-9)
}

func TestScoreAllFallbacks(t *testing.T) {
	report := Score(fallbackData(), "")

	require.Len(t, report.Fields, 7)
	for field, score := range report.Fields {
		assert.InDelta(t, NoSignal, score, 1e-9, "field %s", field)
	}
	assert.InDelta(t, NoSignal, report.Overall, 1e-9)
}

func TestScoreRecordedProvenanceWins(t *testing.T) {
	t.Run("explicit fallback flag forces no-signal", func(t *testing.T) {
		data := richData()
		data.Email = extract.DefaultEmail
		data.SetMatched(types.FieldEmail, false)

		report := Score(data, richRawText)
		assert.InDelta(t, NoSignal, report.Fields[types.FieldEmail], 1e-9)
	})

	t.Run("matched flag overrides sentinel collision", func(t *testing.T) {
		// A candidate whose real address happens to equal the default
		data := richData()
		data.Email = extract.DefaultEmail
		data.SetMatched(types.FieldEmail, true)

		report := Score(data, richRawText)
		assert.InDelta(t, 0.95, report.Fields[types.FieldEmail], 1e-9)
	})
}

func TestScoreFieldHeuristics(t *testing.T) {
	t.Run("name absent from raw text scores lower", func(t *testing.T) {
		data := richData()
		data.Name = "Someone Else"
		report := Score(data, richRawText)
		assert.InDelta(t, 0.6, report.Fields[types.FieldName], 1e-9)
	})

	t.Run("malformed email scores lower", func(t *testing.T) {
		data := richData()
		data.Email = "jane at example dot com"
		report := Score(data, richRawText)
		assert.InDelta(t, 0.5, report.Fields[types.FieldEmail], 1e-9)
	})

	t.Run("short summary scores lower", func(t *testing.T) {
		data := richData()
		data.Summary = "Engineer."
		report := Score(data, richRawText)
		assert.InDelta(t, 0.4, report.Fields[types.FieldSummary], 1e-9)
	})

	t.Run("entry count score is capped", func(t *testing.T) {
		data := richData()
		for i := 0; i < 5; i++ {
			data.Experience = append(data.Experience, types.ExperienceEntry{ID: "x", Company: "Other Co"})
		}
		report := Score(data, richRawText)
		assert.InDelta(t, 0.9, report.Fields[types.FieldExperience], 1e-9)
	})

	t.Run("skills score scales with corroborated fraction", func(t *testing.T) {
		data := richData()
		data.Skills = []string{"Go", "Erlang"}
		report := Score(data, richRawText)
		// one of two skills appears in the raw text
		assert.InDelta(t, 0.2+0.5*0.7, report.Fields[types.FieldSkills], 1e-9)
	})
}

func TestScoreBoundsAndDeterminism(t *testing.T) {
	inputs := []*types.ParsedData{richData(), fallbackData()}
	for _, data := range inputs {
		first := Score(data, richRawText)
		second := Score(data, richRawText)
		assert.Equal(t, first, second)

		assert.GreaterOrEqual(t, first.Overall, 0.0)
		assert.LessOrEqual(t, first.Overall, 1.0)
		for field, score := range first.Fields {
			assert.GreaterOrEqual(t, score, 0.0, "field %s", field)
			assert.LessOrEqual(t, score, 1.0, "field %s", field)
		}
	}
}
