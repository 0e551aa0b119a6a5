package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/talent-match/internal/matching"
	"github.com/jonathan/talent-match/internal/observability"
	"github.com/jonathan/talent-match/internal/ranking"
	"github.com/jonathan/talent-match/internal/types"
)

var rankJobsCmd = &cobra.Command{
	Use:   "rank-jobs",
	Short: "Rank job postings for a candidate",
	Long:  "Scores the candidate against every job posting in the input file, filters to the minimum score, and writes a descending ranked list.",
	RunE:  runRankJobs,
}

var (
	rankJobsCandidate string
	rankJobsInput     string
	rankJobsOutput    string
	rankJobsMinScore  int
	rankJobsVerbose   bool
)

func init() {
	rankJobsCmd.Flags().StringVarP(&rankJobsCandidate, "candidate", "c", "", "Path to input CandidateProfile JSON file (required)")
	rankJobsCmd.Flags().StringVarP(&rankJobsInput, "jobs", "j", "", "Path to input JSON array of JobPosting (required)")
	rankJobsCmd.Flags().StringVarP(&rankJobsOutput, "out", "o", "", "Path to output ranked JSON file (required)")
	rankJobsCmd.Flags().IntVar(&rankJobsMinScore, "min-score", 0, "Minimum total score to include (0-100)")
	rankJobsCmd.Flags().BoolVarP(&rankJobsVerbose, "verbose", "v", false, "Print a human-readable summary")

	for _, flag := range []string{"candidate", "jobs", "out"} {
		if err := rankJobsCmd.MarkFlagRequired(flag); err != nil {
			panic(fmt.Sprintf("failed to mark %s flag as required: %v", flag, err))
		}
	}

	rootCmd.AddCommand(rankJobsCmd)
}

func runRankJobs(_ *cobra.Command, _ []string) error {
	var candidate types.CandidateProfile
	if err := readJSONFile(rankJobsCandidate, &candidate); err != nil {
		return err
	}

	var jobs []types.JobPosting
	if err := readJSONFile(rankJobsInput, &jobs); err != nil {
		return err
	}

	scorer := matching.NewScorer(nil)
	results := ranking.RankJobs(scorer, candidate, jobs, rankJobsMinScore)

	output := struct {
		CandidateID any                `json:"candidate_id"`
		Results     []ranking.JobMatch `json:"results"`
		Count       int                `json:"count"`
		MinScore    int                `json:"min_score"`
	}{
		CandidateID: candidate.ID,
		Results:     results,
		Count:       len(results),
		MinScore:    rankJobsMinScore,
	}

	if err := writeJSONFile(rankJobsOutput, output); err != nil {
		return err
	}
	validateOutput("schemas/ranked_jobs.schema.json", rankJobsOutput)

	if rankJobsVerbose {
		observability.NewPrinter(os.Stdout).PrintRankedJobs(results)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Ranked %d of %d jobs to %s\n",
		len(results), len(jobs), rankJobsOutput)
	return nil
}
