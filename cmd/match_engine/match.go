package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/talent-match/internal/matching"
	"github.com/jonathan/talent-match/internal/observability"
	"github.com/jonathan/talent-match/internal/types"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Score one candidate against one job",
	Long:  "Scores a candidate profile against a job posting across six weighted dimensions and writes a MatchResult JSON with the total score, tier, per-dimension breakdown, and explanation reasons.",
	RunE:  runMatch,
}

var (
	matchCandidate string
	matchJob       string
	matchOutput    string
	matchVerbose   bool
)

func init() {
	matchCmd.Flags().StringVarP(&matchCandidate, "candidate", "c", "", "Path to input CandidateProfile JSON file (required)")
	matchCmd.Flags().StringVarP(&matchJob, "job", "j", "", "Path to input JobPosting JSON file (required)")
	matchCmd.Flags().StringVarP(&matchOutput, "out", "o", "", "Path to output MatchResult JSON file (required)")
	matchCmd.Flags().BoolVarP(&matchVerbose, "verbose", "v", false, "Print a human-readable breakdown")

	for _, flag := range []string{"candidate", "job", "out"} {
		if err := matchCmd.MarkFlagRequired(flag); err != nil {
			panic(fmt.Sprintf("failed to mark %s flag as required: %v", flag, err))
		}
	}

	rootCmd.AddCommand(matchCmd)
}

func runMatch(_ *cobra.Command, _ []string) error {
	var candidate types.CandidateProfile
	if err := readJSONFile(matchCandidate, &candidate); err != nil {
		return err
	}

	var job types.JobPosting
	if err := readJSONFile(matchJob, &job); err != nil {
		return err
	}

	scorer := matching.NewScorer(nil)
	result := scorer.Score(candidate, job)

	if err := writeJSONFile(matchOutput, result); err != nil {
		return err
	}
	validateOutput("schemas/match_result.schema.json", matchOutput)

	if matchVerbose {
		observability.NewPrinter(os.Stdout).PrintMatchResult(&result)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Match scored %d/100 (%s), written to %s\n",
		result.TotalScore, result.MatchTier, matchOutput)
	return nil
}
