package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/portfolio-builder/internal/docparse"
	"github.com/jonathan/portfolio-builder/internal/schemas"
	"github.com/jonathan/portfolio-builder/internal/types"
)

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse a resume PDF into structured portfolio data",
	Long:  "Parse a resume PDF into structured ParsedData JSON with per-field confidence scores. Extraction is best-effort: fields without a pattern match fall back to defaults and report low confidence.",
	RunE:  runParse,
}

var (
	parseInputFile  string
	parseOutputFile string
	parseVerbose    bool
)

func init() {
	parseCmd.Flags().StringVarP(&parseInputFile, "in", "i", "", "Path to resume PDF file (required)")
	parseCmd.Flags().StringVarP(&parseOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	parseCmd.Flags().BoolVarP(&parseVerbose, "verbose", "v", false, "Print progress notifications to stderr")
	_ = parseCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(parseCmd)
}

func runParse(_ *cobra.Command, _ []string) error {
	content, err := os.ReadFile(parseInputFile)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	var onProgress docparse.ProgressFunc
	if parseVerbose {
		onProgress = func(p types.Progress) {
			_, _ = fmt.Fprintf(os.Stderr, "[%3d%%] %s\n", p.Percent, p.Step)
		}
	}

	parser := docparse.NewParser(onProgress)
	parsed, report, err := parser.Parse(context.Background(), content)
	if err != nil {
		var malformed *docparse.MalformedError
		if errors.As(err, &malformed) {
			return fmt.Errorf("cannot parse %s: not a valid PDF document: %w", parseInputFile, err)
		}
		return fmt.Errorf("parse failed: %w", err)
	}

	out := struct {
		Data       *types.ParsedData       `json:"data"`
		Confidence *types.ConfidenceReport `json:"confidence"`
	}{parsed, report}

	jsonBytes, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if parseOutputFile == "" {
		_, _ = fmt.Fprintln(os.Stdout, string(jsonBytes))
		return nil
	}

	if err := os.WriteFile(parseOutputFile, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	// Validate the data portion against the schema when it can be located
	if schemaPath := schemas.ResolveSchemaPath(schemas.ParsedDataSchema); schemaPath != "" {
		dataBytes, err := json.Marshal(parsed)
		if err == nil {
			schemaContent, readErr := os.ReadFile(schemaPath)
			if readErr == nil {
				if err := schemas.ValidateJSONString(string(schemaContent), string(dataBytes)); err != nil {
					var validationErr *schemas.ValidationError
					if errors.As(err, &validationErr) {
						return fmt.Errorf("parsed data does not validate against schema: %w", err)
					}
					_, _ = fmt.Fprintf(os.Stderr, "Warning: could not validate output against schema: %v\n", err)
				}
			}
		}
	}

	_, _ = fmt.Fprintf(os.Stdout, "Parsed %s (overall confidence %.2f)\n", parseInputFile, report.Overall)
	_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", parseOutputFile)
	return nil
}
