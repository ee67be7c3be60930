// Package main provides the jobhunter CLI: an HTTP API and a one-shot
// generator for tailored resumes.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "jobhunter",
	Short: "Tailored resume generation service",
	Long:  "jobhunter tailors a candidate profile to a job posting with a generative model and renders the result as a one-page LaTeX PDF.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to JSON config file")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
