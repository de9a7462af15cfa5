package docparse

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/jonathan/portfolio-builder/internal/confidence"
	"github.com/jonathan/portfolio-builder/internal/extract"
	"github.com/jonathan/portfolio-builder/internal/types"
)

// lineTolerance is the maximum baseline Y delta (in points) for two text
// runs to be considered part of the same line
const lineTolerance = 2.0

// Parser converts raw PDF bytes into structured résumé data. A Parser is
// stateless between calls; each Parse is independent and reentrant.
type Parser struct {
	onProgress ProgressFunc
}

// NewParser creates a Parser. onProgress may be nil.
func NewParser(onProgress ProgressFunc) *Parser {
	return &Parser{onProgress: onProgress}
}

// Parse decodes the document, extracts text runs page by page, and runs
// the field extractors and confidence scorer. Undecodable bytes yield a
// MalformedError; a zero-page document is treated as empty text and the
// extractors fall back to their defaults. The context is checked between
// page extractions so an abandoned parse can be cancelled.
func (p *Parser) Parse(ctx context.Context, data []byte) (*types.ParsedData, *types.ConfidenceReport, error) {
	progress := &emitter{fn: p.onProgress}
	progress.emit("Loading PDF document", 5, 1.0)

	if err := api.Validate(bytes.NewReader(data), model.NewDefaultConfiguration()); err != nil {
		return nil, nil, &MalformedError{Message: "byte stream failed validation", Cause: err}
	}

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, nil, &MalformedError{Message: "failed to decode document", Cause: err}
	}

	progress.emit("Extracting text content", 20, 0.9)

	rawText, runs, err := p.extractText(ctx, reader, progress)
	if err != nil {
		return nil, nil, err
	}

	progress.emit("Analyzing document structure", 60, 0.9)

	parsed := extractFields(rawText, runs)

	progress.emit("Calculating confidence scores", 85, 0.95)

	report := confidence.Score(parsed, rawText)

	progress.emit("Finalizing extraction", 95, 1.0)
	progress.emit("Complete", 100, 1.0)

	return parsed, &report, nil
}

// extractText walks the pages in order, building a line-structured raw
// text buffer and the positioned run list used by the advanced name
// extractor.
func (p *Parser) extractText(ctx context.Context, reader *pdf.Reader, progress *emitter) (string, []types.TextRun, error) {
	numPages := reader.NumPage()

	var buf strings.Builder
	var runs []types.TextRun

	for i := 1; i <= numPages; i++ {
		if err := ctx.Err(); err != nil {
			return "", nil, err
		}

		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		pageText, pageRuns := extractPage(page, i)
		buf.WriteString(pageText)
		buf.WriteString("\n")
		runs = append(runs, pageRuns...)

		percent := 20 + int(float64(i)/float64(numPages)*30)
		progress.emit(fmt.Sprintf("Processing page %d/%d", i, numPages), percent, 0.8)
	}

	return buf.String(), runs, nil
}

// extractPage groups a page's text runs into lines by baseline Y
// coordinate. The underlying content parser panics on some damaged
// content streams; those pages contribute no text rather than aborting
// the whole parse.
func extractPage(page pdf.Page, pageNum int) (text string, runs []types.TextRun) {
	defer func() {
		if r := recover(); r != nil {
			text, runs = "", nil
		}
	}()

	content := page.Content()
	if len(content.Text) == 0 {
		return "", nil
	}

	items := make([]pdf.Text, len(content.Text))
	copy(items, content.Text)
	// reading order: top of page first (PDF origin is bottom-left), then left to right
	sort.SliceStable(items, func(a, b int) bool {
		if math.Abs(items[a].Y-items[b].Y) > lineTolerance {
			return items[a].Y > items[b].Y
		}
		return items[a].X < items[b].X
	})

	var buf strings.Builder
	var line strings.Builder
	lastY := math.Inf(1)

	flush := func() {
		if line.Len() > 0 {
			buf.WriteString(strings.TrimSpace(line.String()))
			buf.WriteString("\n")
			line.Reset()
		}
	}

	for _, item := range items {
		if item.S == "" {
			continue
		}
		if math.Abs(item.Y-lastY) > lineTolerance {
			flush()
		} else if line.Len() > 0 && !strings.HasSuffix(line.String(), " ") {
			line.WriteString(" ")
		}
		lastY = item.Y
		line.WriteString(item.S)

		runs = append(runs, types.TextRun{
			Page:     pageNum,
			X:        item.X,
			Y:        item.Y,
			FontSize: item.FontSize,
			Text:     item.S,
		})
	}
	flush()

	return buf.String(), runs
}

// extractFields composes the independent field extractors into a fully
// populated ParsedData with per-field provenance flags.
func extractFields(rawText string, runs []types.TextRun) *types.ParsedData {
	lines := extract.SplitLines(rawText)
	data := &types.ParsedData{}

	var matched bool

	data.Name, matched = extract.Name(lines, runs)
	data.SetMatched(types.FieldName, matched)

	data.Email, matched = extract.Email(rawText)
	data.SetMatched(types.FieldEmail, matched)

	data.Phone, matched = extract.Phone(rawText)
	data.SetMatched(types.FieldPhone, matched)

	data.Summary, matched = extract.Summary(lines)
	data.SetMatched(types.FieldSummary, matched)

	data.Experience, matched = extract.Experience(lines)
	data.SetMatched(types.FieldExperience, matched)

	data.Education, matched = extract.Education(lines)
	data.SetMatched(types.FieldEducation, matched)

	data.Skills, matched = extract.Skills(rawText)
	data.SetMatched(types.FieldSkills, matched)

	data.Projects, matched = extract.Projects(lines)
	data.SetMatched(types.FieldProjects, matched)

	data.Address, matched = extract.Address(rawText)
	data.SetMatched(types.FieldAddress, matched)

	data.SocialLinks, matched = extract.SocialLinks(rawText)
	data.SetMatched(types.FieldSocialLinks, matched)

	data.Certifications, matched = extract.Certifications(rawText)
	data.SetMatched(types.FieldCertifications, matched)

	data.Languages, matched = extract.Languages(rawText)
	data.SetMatched(types.FieldLanguages, matched)

	return data
}
