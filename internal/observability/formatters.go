// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/talent-match/internal/ranking"
	"github.com/jonathan/talent-match/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintMatchResult outputs a human-readable breakdown of a match result.
func (p *Printer) PrintMatchResult(result *types.MatchResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total:  %d/100 (%s)\n\n", result.TotalScore, result.MatchTier))

	for _, name := range []string{
		types.DimensionSkills, types.DimensionExperience, types.DimensionEducation,
		types.DimensionLocation, types.DimensionCompensation, types.DimensionAssessments,
	} {
		d, ok := result.Dimensions[name]
		if !ok {
			continue
		}
		sb.WriteString(fmt.Sprintf("%-14s %3d/%-3d  %s\n", name, d.Score, d.MaxScore, d.Status))
	}

	if len(result.Strengths) > 0 {
		sb.WriteString("\nStrengths:\n")
		for _, s := range result.Strengths {
			sb.WriteString(fmt.Sprintf("  + %s\n", s))
		}
	}
	if len(result.Weaknesses) > 0 {
		sb.WriteString("\nWeaknesses:\n")
		for _, w := range result.Weaknesses {
			sb.WriteString(fmt.Sprintf("  - %s\n", w))
		}
	}

	p.printBox("MATCH RESULT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRankedCandidates outputs the top ranked candidates with scores.
func (p *Printer) PrintRankedCandidates(results []ranking.CandidateMatch) {
	if len(results) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total candidates ranked: %d\n\n", len(results)))

	count := min(len(results), maxItemsToShow)
	for i := 0; i < count; i++ {
		r := results[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, r.Candidate.Name))
		sb.WriteString(fmt.Sprintf("    Score: %d (%s)\n", r.Match.TotalScore, r.Match.MatchTier))
	}
	if len(results) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more candidates", len(results)-maxItemsToShow))
	}

	p.printBox("TOP RANKED CANDIDATES", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRankedJobs outputs the top ranked jobs for a candidate.
func (p *Printer) PrintRankedJobs(results []ranking.JobMatch) {
	if len(results) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total jobs ranked: %d\n\n", len(results)))

	count := min(len(results), maxItemsToShow)
	for i := 0; i < count; i++ {
		r := results[i]
		sb.WriteString(fmt.Sprintf("#%d  %s @ %s\n", i+1, r.Job.Title, r.Job.Company))
		sb.WriteString(fmt.Sprintf("    Score: %d (%s)\n", r.Match.TotalScore, r.Match.MatchTier))
	}
	if len(results) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more jobs", len(results)-maxItemsToShow))
	}

	p.printBox("TOP RANKED JOBS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRecommendations outputs the recommendation feed with score breakdowns.
func (p *Printer) PrintRecommendations(items []types.RecommendationItem) {
	if len(items) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Recommendations: %d\n\n", len(items)))

	count := min(len(items), maxItemsToShow)
	for i := 0; i < count; i++ {
		item := items[i]
		sb.WriteString(fmt.Sprintf("#%d  %s @ %s [%s]\n", i+1, item.Job.Title, item.Job.Company, item.Source))
		sb.WriteString(fmt.Sprintf("    Total %d = content %d + collab %d + recency %d\n",
			item.Score.Total, item.Score.Content, item.Score.Collaborative, item.Score.Recency))
		if len(item.Reasons) > 0 {
			reasons := strings.Join(item.Reasons, "; ")
			if len(reasons) > 44 {
				reasons = reasons[:41] + "..."
			}
			sb.WriteString(fmt.Sprintf("    %s\n", reasons))
		}
	}
	if len(items) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more", len(items)-maxItemsToShow))
	}

	p.printBox("RECOMMENDATIONS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintPreferenceProfile outputs the mined behavior profile.
func (p *Printer) PrintPreferenceProfile(profile *types.PreferenceProfile) {
	if profile == nil || profile.TotalApplications == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Applications analyzed: %d\n", profile.TotalApplications))

	writeTop := func(label string, entries []types.FrequencyEntry) {
		if len(entries) == 0 {
			return
		}
		sb.WriteString(fmt.Sprintf("\n%s:\n", label))
		count := min(len(entries), 3)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s (%d)\n", entries[i].Value, entries[i].Count))
		}
	}
	writeTop("Top skills", profile.TopSkills)
	writeTop("Top locations", profile.TopLocations)
	writeTop("Top job types", profile.TopJobTypes)
	writeTop("Top industries", profile.TopIndustries)

	if profile.Salary != nil {
		sb.WriteString(fmt.Sprintf("\nSalary: %.0f-%.0f (avg %.0f)\n",
			profile.Salary.Min, profile.Salary.Max, profile.Salary.Avg))
	}

	p.printBox("PREFERENCE PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}
