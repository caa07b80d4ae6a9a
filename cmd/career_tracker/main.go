// Package main provides the entry point for the Career Tracker HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "career_tracker",
	Short: "Career Tracker HTTP API Server",
	Long:  "Career Tracker records SES engagement history, work diary entries, and interview logs, and serves portfolio statistics and career sheet exports via REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
