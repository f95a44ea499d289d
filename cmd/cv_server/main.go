// Package main provides the entry point for the CV Creator HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cv_server",
	Short: "CV Creator HTTP API Server",
	Long:  "CV Creator generates professional CV prose and cover letters from a short form submission and exports themed, paginated A4 PDFs via REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
