// Package main provides the entry point for the Portfolio Builder CLI and HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "portfolio_agent",
	Short: "Portfolio Builder CLI and API server",
	Long:  "Portfolio Builder converts an uploaded resume PDF into a themeable personal portfolio website via heuristic field extraction and templated HTML/CSS generation.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
