package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/talent-match/internal/assessment"
)

var gradeCmd = &cobra.Command{
	Use:   "grade",
	Short: "Grade a skill assessment submission",
	Long:  "Grades a candidate's answers against an assessment's question set, producing an AssessmentResult JSON with the percentage score and pass/fail outcome.",
	RunE:  runGrade,
}

var (
	gradeTitle       string
	gradeQuestions   string
	gradeSubmissions string
	gradeOutput      string
	gradePassMark    float64
)

func init() {
	gradeCmd.Flags().StringVarP(&gradeTitle, "title", "t", "", "Assessment title (required)")
	gradeCmd.Flags().StringVarP(&gradeQuestions, "questions", "q", "", "Path to input JSON array of Question (required)")
	gradeCmd.Flags().StringVarP(&gradeSubmissions, "submissions", "s", "", "Path to input JSON array of Submission (required)")
	gradeCmd.Flags().StringVarP(&gradeOutput, "out", "o", "", "Path to output AssessmentResult JSON file (required)")
	gradeCmd.Flags().Float64Var(&gradePassMark, "pass-mark", assessment.DefaultPassMark, "Score required to pass (0-100)")

	for _, flag := range []string{"title", "questions", "submissions", "out"} {
		if err := gradeCmd.MarkFlagRequired(flag); err != nil {
			panic(fmt.Sprintf("failed to mark %s flag as required: %v", flag, err))
		}
	}

	rootCmd.AddCommand(gradeCmd)
}

func runGrade(_ *cobra.Command, _ []string) error {
	var questions []assessment.Question
	if err := readJSONFile(gradeQuestions, &questions); err != nil {
		return err
	}

	var submissions []assessment.Submission
	if err := readJSONFile(gradeSubmissions, &submissions); err != nil {
		return err
	}

	result := assessment.Grade(gradeTitle, questions, submissions, gradePassMark)

	if err := writeJSONFile(gradeOutput, result); err != nil {
		return err
	}

	outcome := "failed"
	if result.Passed {
		outcome = "passed"
	}
	_, _ = fmt.Fprintf(os.Stdout, "Assessment %q scored %.1f%% (%s), written to %s\n",
		gradeTitle, result.Score, outcome, gradeOutput)
	return nil
}
