// Package main provides the match_engine CLI: candidate-job match scoring,
// batch ranking, recommendations, and the HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "match_engine",
	Short: "Candidate-job matching and recommendation engine",
	Long:  "match_engine scores candidates against job postings across six weighted dimensions, ranks batches of candidates or jobs, and fuses content, collaborative, and recency signals into personalized job recommendations.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
