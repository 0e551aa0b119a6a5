package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/talent-match/internal/behavior"
	"github.com/jonathan/talent-match/internal/collab"
	"github.com/jonathan/talent-match/internal/matching"
	"github.com/jonathan/talent-match/internal/observability"
	"github.com/jonathan/talent-match/internal/recommend"
	"github.com/jonathan/talent-match/internal/skills"
	"github.com/jonathan/talent-match/internal/types"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Build a personalized job recommendation feed",
	Long:  "Mines the candidate's application history into a preference profile, finds candidates with overlapping applications, and fuses content, collaborative, and recency signals into a ranked recommendation feed. Candidates with no history fall back to trending jobs.",
	RunE:  runRecommend,
}

var (
	recommendCandidate      string
	recommendHistory        string
	recommendApplications   string
	recommendJobs           string
	recommendOutput         string
	recommendLimit          int
	recommendMinScore       int
	recommendIncludeApplied bool
	recommendVerbose        bool
)

func init() {
	recommendCmd.Flags().StringVarP(&recommendCandidate, "candidate", "c", "", "Path to input CandidateProfile JSON file (required)")
	recommendCmd.Flags().StringVar(&recommendHistory, "history", "", "Path to input JSON array of AppliedJob for the candidate")
	recommendCmd.Flags().StringVarP(&recommendApplications, "applications", "a", "", "Path to input JSON array of Application edges across all candidates")
	recommendCmd.Flags().StringVarP(&recommendJobs, "jobs", "j", "", "Path to input JSON array of JobPosting to recommend from (required)")
	recommendCmd.Flags().StringVarP(&recommendOutput, "out", "o", "", "Path to output recommendations JSON file (required)")
	recommendCmd.Flags().IntVar(&recommendLimit, "limit", 0, "Maximum recommendations to return (default 20)")
	recommendCmd.Flags().IntVar(&recommendMinScore, "min-score", 0, "Minimum fused score to include")
	recommendCmd.Flags().BoolVar(&recommendIncludeApplied, "include-applied", false, "Keep jobs the candidate already applied to")
	recommendCmd.Flags().BoolVarP(&recommendVerbose, "verbose", "v", false, "Print a human-readable summary")

	for _, flag := range []string{"candidate", "jobs", "out"} {
		if err := recommendCmd.MarkFlagRequired(flag); err != nil {
			panic(fmt.Sprintf("failed to mark %s flag as required: %v", flag, err))
		}
	}

	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(_ *cobra.Command, _ []string) error {
	var candidate types.CandidateProfile
	if err := readJSONFile(recommendCandidate, &candidate); err != nil {
		return err
	}

	var jobs []types.JobPosting
	if err := readJSONFile(recommendJobs, &jobs); err != nil {
		return err
	}

	var history []types.AppliedJob
	if recommendHistory != "" {
		if err := readJSONFile(recommendHistory, &history); err != nil {
			return err
		}
	}

	var applications []types.Application
	if recommendApplications != "" {
		if err := readJSONFile(recommendApplications, &applications); err != nil {
			return err
		}
	}

	prefs := behavior.AnalyzeHistory(history, skills.DefaultResolver())

	// Ad-hoc profiles may carry no id; collaborative signals need one.
	var similar []types.SimilarityEdge
	if candidate.ID != uuid.Nil {
		var err error
		similar, err = collab.FindSimilarCandidates(candidate.ID, applications)
		if err != nil {
			return fmt.Errorf("failed to find similar candidates: %w", err)
		}
	}

	recommender := recommend.New(matching.NewScorer(nil))
	items := recommender.Recommend(candidate, prefs, similar, applications, jobs, recommend.Options{
		Limit:          recommendLimit,
		MinScore:       recommendMinScore,
		IncludeApplied: recommendIncludeApplied,
	})

	output := struct {
		CandidateID any                        `json:"candidate_id"`
		Items       []types.RecommendationItem `json:"items"`
		Count       int                        `json:"count"`
		Preferences types.PreferenceProfile    `json:"preferences"`
	}{
		CandidateID: candidate.ID,
		Items:       items,
		Count:       len(items),
		Preferences: prefs,
	}

	if err := writeJSONFile(recommendOutput, output); err != nil {
		return err
	}
	validateOutput("schemas/recommendations.schema.json", recommendOutput)

	if recommendVerbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintPreferenceProfile(&prefs)
		printer.PrintRecommendations(items)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Wrote %d recommendations to %s\n", len(items), recommendOutput)
	return nil
}
