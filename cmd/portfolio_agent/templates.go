package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/portfolio-builder/internal/catalog"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List the available portfolio templates",
	RunE:  runTemplates,
}

func init() {
	rootCmd.AddCommand(templatesCmd)
}

func runTemplates(_ *cobra.Command, _ []string) error {
	for _, tmpl := range catalog.List() {
		_, _ = fmt.Fprintf(os.Stdout, "%-20s %-18s layout=%-10s %s\n",
			tmpl.ID, tmpl.Category, tmpl.Layout, strings.Join(tmpl.Features, ", "))
	}
	return nil
}
