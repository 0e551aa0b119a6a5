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

var rankCandidatesCmd = &cobra.Command{
	Use:   "rank-candidates",
	Short: "Rank candidates against a job posting",
	Long:  "Scores every candidate in the input file against the job posting, filters to the minimum score, and writes a descending ranked list. Equal scores keep their input order.",
	RunE:  runRankCandidates,
}

var (
	rankCandidatesJob      string
	rankCandidatesInput    string
	rankCandidatesOutput   string
	rankCandidatesMinScore int
	rankCandidatesVerbose  bool
)

func init() {
	rankCandidatesCmd.Flags().StringVarP(&rankCandidatesJob, "job", "j", "", "Path to input JobPosting JSON file (required)")
	rankCandidatesCmd.Flags().StringVarP(&rankCandidatesInput, "candidates", "c", "", "Path to input JSON array of CandidateProfile (required)")
	rankCandidatesCmd.Flags().StringVarP(&rankCandidatesOutput, "out", "o", "", "Path to output ranked JSON file (required)")
	rankCandidatesCmd.Flags().IntVar(&rankCandidatesMinScore, "min-score", 0, "Minimum total score to include (0-100)")
	rankCandidatesCmd.Flags().BoolVarP(&rankCandidatesVerbose, "verbose", "v", false, "Print a human-readable summary")

	for _, flag := range []string{"job", "candidates", "out"} {
		if err := rankCandidatesCmd.MarkFlagRequired(flag); err != nil {
			panic(fmt.Sprintf("failed to mark %s flag as required: %v", flag, err))
		}
	}

	rootCmd.AddCommand(rankCandidatesCmd)
}

func runRankCandidates(_ *cobra.Command, _ []string) error {
	var job types.JobPosting
	if err := readJSONFile(rankCandidatesJob, &job); err != nil {
		return err
	}

	var candidates []types.CandidateProfile
	if err := readJSONFile(rankCandidatesInput, &candidates); err != nil {
		return err
	}

	scorer := matching.NewScorer(nil)
	results := ranking.RankCandidates(scorer, candidates, job, rankCandidatesMinScore)

	output := struct {
		JobID    any                      `json:"job_id"`
		Results  []ranking.CandidateMatch `json:"results"`
		Count    int                      `json:"count"`
		MinScore int                      `json:"min_score"`
	}{
		JobID:    job.ID,
		Results:  results,
		Count:    len(results),
		MinScore: rankCandidatesMinScore,
	}

	if err := writeJSONFile(rankCandidatesOutput, output); err != nil {
		return err
	}
	validateOutput("schemas/ranked_candidates.schema.json", rankCandidatesOutput)

	if rankCandidatesVerbose {
		observability.NewPrinter(os.Stdout).PrintRankedCandidates(results)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Ranked %d of %d candidates to %s\n",
		len(results), len(candidates), rankCandidatesOutput)
	return nil
}
