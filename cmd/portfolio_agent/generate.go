package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/portfolio-builder/internal/config"
	"github.com/jonathan/portfolio-builder/internal/export"
	"github.com/jonathan/portfolio-builder/internal/render"
	"github.com/jonathan/portfolio-builder/internal/types"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a portfolio website from parsed resume data",
	Long:  "Generate a standalone portfolio HTML document from a ParsedData JSON artifact, a catalog template, and theme settings. Optionally also render the portfolio to PDF via headless Chrome.",
	RunE:  runGenerate,
}

var (
	generateDataFile string
	generateTemplate string
	generateColor    string
	generateFont     string
	generateImage    string
	generateOrigin   string
	generateOutFile  string
	generatePDFFile  string
)

func init() {
	generateCmd.Flags().StringVarP(&generateDataFile, "data", "d", "", "Path to ParsedData JSON file (required)")
	generateCmd.Flags().StringVarP(&generateTemplate, "template", "t", config.DefaultTemplate, "Template id from the catalog")
	generateCmd.Flags().StringVar(&generateColor, "color", config.DefaultColor, "Theme color (purple|blue|green|pink)")
	generateCmd.Flags().StringVar(&generateFont, "font", config.DefaultFont, "Font family name")
	generateCmd.Flags().StringVar(&generateImage, "image", "", "Profile image URL")
	generateCmd.Flags().StringVar(&generateOrigin, "origin", config.DefaultOrigin, "Origin for the generated share URL")
	generateCmd.Flags().StringVarP(&generateOutFile, "out", "o", "portfolio.html", "Path to output HTML file")
	generateCmd.Flags().StringVar(&generatePDFFile, "pdf", "", "Also render the portfolio to this PDF path (requires Chrome)")
	_ = generateCmd.MarkFlagRequired("data")

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(_ *cobra.Command, _ []string) error {
	content, err := os.ReadFile(generateDataFile)
	if err != nil {
		return fmt.Errorf("failed to read data file: %w", err)
	}

	data, err := decodeParsedData(content)
	if err != nil {
		return err
	}

	theme := types.ThemeSettings{
		Color:    types.ThemeColor(generateColor),
		Font:     generateFont,
		Image:    generateImage,
		Template: generateTemplate,
	}

	generator := render.NewGenerator(generateOrigin)
	portfolio, err := generator.Generate(data, theme, generateTemplate)
	if err != nil {
		return fmt.Errorf("failed to generate portfolio: %w", err)
	}

	if err := export.WriteHTML(portfolio, generateOutFile); err != nil {
		return err
	}

	if generatePDFFile != "" {
		pdfBytes, err := export.RenderPDF(context.Background(), portfolio.HTML)
		if err != nil {
			return fmt.Errorf("failed to render PDF: %w", err)
		}
		if err := os.WriteFile(generatePDFFile, pdfBytes, 0644); err != nil {
			return fmt.Errorf("failed to write PDF file: %w", err)
		}
	}

	_, _ = fmt.Fprintf(os.Stdout, "Generated portfolio with template %q\n", portfolio.Template.ID)
	_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", generateOutFile)
	_, _ = fmt.Fprintf(os.Stdout, "Share URL: %s\n", portfolio.URL)
	return nil
}

// decodeParsedData accepts either a bare ParsedData document or the
// {"data": ..., "confidence": ...} envelope the parse command writes
func decodeParsedData(content []byte) (*types.ParsedData, error) {
	var envelope struct {
		Data *types.ParsedData `json:"data"`
	}
	if err := json.Unmarshal(content, &envelope); err == nil && envelope.Data != nil && envelope.Data.Name != "" {
		return envelope.Data, nil
	}

	var data types.ParsedData
	if err := json.Unmarshal(content, &data); err != nil {
		return nil, fmt.Errorf("failed to parse data JSON: %w", err)
	}
	return &data, nil
}
