// Package main provides the cvbind CLI, which binds localized content records into an HTML CV skeleton.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cvbind",
	Short: "Localized CV content binder",
	Long: `cvbind fills a static HTML CV skeleton with the content record of a language.
It renders single pages, builds every language at once, or serves a live page whose
language can be switched over HTTP.

Configuration can be loaded from a JSON file using --config. Environment variables
(CV_*) override the file, and command-line flags override both.`,
	SilenceUsage: true,
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
