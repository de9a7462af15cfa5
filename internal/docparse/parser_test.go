package docparse

import (
	"bytes"
	"context"
	"testing"

	"github.com/go-pdf/fpdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/portfolio-builder/internal/confidence"
	"github.com/jonathan/portfolio-builder/internal/extract"
	"github.com/jonathan/portfolio-builder/internal/types"
)

// buildPDF renders each line as a cell on a single page; the first line
// is set in a large bold face the way résumé headers usually are.
func buildPDF(t *testing.T, lines []string) []byte {
	t.Helper()

	doc := fpdf.New("P", "mm", "A4", "")
	doc.AddPage()
	for i, line := range lines {
		if i == 0 {
			doc.SetFont("Helvetica", "B", 22)
		} else {
			doc.SetFont("Helvetica", "", 11)
		}
		doc.Cell(0, 10, line)
		doc.Ln(12)
	}

	var buf bytes.Buffer
	require.NoError(t, doc.Output(&buf))
	return buf.Bytes()
}

func resumeLines() []string {
	return []string{
		"Jane Smith",
		"jane.smith@example.com",
		"+1 555-222-3333",
		"Professional Summary",
		"Backend engineer focused on reliable distributed systems in Go and Python.",
		"EXPERIENCE",
		"Senior Software Engineer",
		"Acme Inc",
		"2019 - 2022",
		"Built distributed systems for payments.",
		"Skills: Go, Python, Docker.",
	}
}

func TestParseResume(t *testing.T) {
	content := buildPDF(t, resumeLines())

	parser := NewParser(nil)
	parsed, report, err := parser.Parse(context.Background(), content)
	require.NoError(t, err)
	require.NotNil(t, parsed)
	require.NotNil(t, report)

	assert.Equal(t, "Jane Smith", parsed.Name)
	assert.Equal(t, "jane.smith@example.com", parsed.Email)
	assert.Equal(t, "+1 555-222-3333", parsed.Phone)
	assert.Contains(t, parsed.Summary, "Backend engineer")

	require.NotEmpty(t, parsed.Experience)
	assert.Equal(t, "Senior Software Engineer", parsed.Experience[0].Title)
	assert.Equal(t, "Acme Inc", parsed.Experience[0].Company)
	assert.Equal(t, "2019", parsed.Experience[0].StartDate)
	assert.Equal(t, "2022", parsed.Experience[0].EndDate)

	assert.Contains(t, parsed.Skills, "Go")
	assert.Contains(t, parsed.Skills, "Python")
	assert.Contains(t, parsed.Skills, "Docker")

	for _, field := range []string{types.FieldName, types.FieldEmail, types.FieldPhone, types.FieldSummary, types.FieldExperience, types.FieldSkills} {
		matched, ok := parsed.MatchedField(field)
		assert.True(t, ok, "provenance missing for %s", field)
		assert.True(t, matched, "expected %s to match real input", field)
	}

	assert.Greater(t, report.Overall, 0.5)
	assert.InDelta(t, 0.9, report.Fields[types.FieldName], 1e-9)
	assert.InDelta(t, 0.95, report.Fields[types.FieldEmail], 1e-9)
}

func TestParseNoSignalDocument(t *testing.T) {
	content := buildPDF(t, []string{"lorem ipsum dolor sit amet"})

	parser := NewParser(nil)
	parsed, report, err := parser.Parse(context.Background(), content)
	require.NoError(t, err)

	assert.Equal(t, extract.DefaultName, parsed.Name)
	assert.Equal(t, extract.DefaultEmail, parsed.Email)
	assert.Equal(t, extract.DefaultPhone, parsed.Phone)
	assert.Equal(t, extract.DefaultSkills(), parsed.Skills)

	matched, ok := parsed.MatchedField(types.FieldEmail)
	assert.True(t, ok)
	assert.False(t, matched)

	assert.InDelta(t, confidence.NoSignal, report.Fields[types.FieldEmail], 1e-9)
	assert.InDelta(t, confidence.NoSignal, report.Overall, 1e-9)
}

func TestParseMalformedBytes(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"plain text", []byte("this is not a pdf")},
		{"empty", nil},
		{"truncated header", []byte("%PDF-1.7\n")},
	}

	parser := NewParser(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := parser.Parse(context.Background(), tt.data)
			var malformed *MalformedError
			require.ErrorAs(t, err, &malformed)
			assert.Contains(t, err.Error(), "malformed PDF")
		})
	}
}

func TestParseProgressNotifications(t *testing.T) {
	content := buildPDF(t, resumeLines())

	var events []types.Progress
	parser := NewParser(func(p types.Progress) { events = append(events, p) })
	_, _, err := parser.Parse(context.Background(), content)
	require.NoError(t, err)

	require.NotEmpty(t, events)
	assert.Equal(t, "Loading PDF document", events[0].Step)
	assert.Equal(t, 100, events[len(events)-1].Percent)
	assert.Equal(t, "Complete", events[len(events)-1].Step)

	for i := 1; i < len(events); i++ {
		assert.Greater(t, events[i].Percent, events[i-1].Percent,
			"progress must be strictly increasing: %v", events)
	}
}

func TestParseCancelledContext(t *testing.T) {
	content := buildPDF(t, resumeLines())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	parser := NewParser(nil)
	_, _, err := parser.Parse(ctx, content)
	require.ErrorIs(t, err, context.Canceled)
}

func TestExtractFieldsBasicContact(t *testing.T) {
	rawText := "Jane Smith\njane.smith@example.com\n+1 555-222-3333\nSummary\nPassionate engineer.\n"

	parsed := extractFields(rawText, nil)
	report := confidence.Score(parsed, rawText)

	assert.Equal(t, "Jane Smith", parsed.Name)
	assert.Equal(t, "jane.smith@example.com", parsed.Email)
	assert.Equal(t, "+1 555-222-3333", parsed.Phone)
	assert.Equal(t, "Passionate engineer.", parsed.Summary)
	assert.GreaterOrEqual(t, report.Fields[types.FieldName], 0.6)
	assert.GreaterOrEqual(t, report.Fields[types.FieldEmail], 0.6)
}

func TestExtractFieldsOptionalData(t *testing.T) {
	rawText := "Jane Smith\njane@example.com\n" +
		"linkedin.com/in/jane-smith\n" +
		"Fluent in Spanish\n" +
		"AWS Certified Solutions Architect\n"

	parsed := extractFields(rawText, nil)

	assert.Equal(t, []string{"linkedin.com/in/jane-smith"}, parsed.SocialLinks)
	require.NotEmpty(t, parsed.Languages)
	assert.Equal(t, "Spanish", parsed.Languages[0].Language)
	require.NotEmpty(t, parsed.Certifications)

	matched, ok := parsed.MatchedField(types.FieldSocialLinks)
	assert.True(t, ok)
	assert.True(t, matched)
}
