package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/talent-match/internal/matching"
	"github.com/jonathan/talent-match/internal/ranking"
	"github.com/jonathan/talent-match/internal/types"
)

func TestPrintMatchResult(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	result := &types.MatchResult{
		TotalScore: 88,
		MatchTier:  types.TierExcellent,
		Dimensions: map[string]types.DimensionResult{
			types.DimensionSkills: {Score: 35, MaxScore: 35, Status: matching.StatusPerfectMatch},
		},
		Strengths:  []string{"Strong skill match (4 required skills)"},
		Weaknesses: []string{"Missing skills: terraform"},
	}

	p.PrintMatchResult(result)
	output := buf.String()

	assert.Contains(t, output, "MATCH RESULT")
	assert.Contains(t, output, "88/100")
	assert.Contains(t, output, "excellent")
	assert.Contains(t, output, "Strong skill match")
	assert.Contains(t, output, "Missing skills: terraform")
}

func TestPrintMatchResult_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintMatchResult(nil)

	assert.Empty(t, buf.String())
}

func TestPrintRankedCandidates(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	results := []ranking.CandidateMatch{
		{
			Candidate: types.CandidateProfile{Name: "Dana"},
			Match:     types.MatchResult{TotalScore: 91, MatchTier: types.TierExcellent},
		},
		{
			Candidate: types.CandidateProfile{Name: "Sam"},
			Match:     types.MatchResult{TotalScore: 64, MatchTier: types.TierGood},
		},
	}

	p.PrintRankedCandidates(results)
	output := buf.String()

	assert.Contains(t, output, "TOP RANKED CANDIDATES")
	assert.Contains(t, output, "Dana")
	assert.Contains(t, output, "Sam")
	assert.Contains(t, output, "91")

	buf.Reset()
	p.PrintRankedCandidates(nil)
	assert.Empty(t, buf.String())
}

func TestPrintRecommendations(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	items := []types.RecommendationItem{
		{
			Job:     types.JobPosting{Title: "Platform Engineer", Company: "Acme"},
			Score:   types.ScoreBreakdown{Content: 80, Collaborative: 3, Recency: 7, Total: 90},
			Source:  types.SourceHybrid,
			Reasons: []string{"Recently posted"},
		},
	}

	p.PrintRecommendations(items)
	output := buf.String()

	assert.Contains(t, output, "RECOMMENDATIONS")
	assert.Contains(t, output, "Platform Engineer")
	assert.Contains(t, output, "content 80")
}

func TestPrintPreferenceProfile(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	profile := &types.PreferenceProfile{
		TotalApplications: 12,
		TopSkills:         []types.FrequencyEntry{{Value: "go", Count: 8}},
		Salary:            &types.SalaryStats{Min: 90000, Max: 150000, Avg: 120000},
	}

	p.PrintPreferenceProfile(profile)
	output := buf.String()

	assert.Contains(t, output, "PREFERENCE PROFILE")
	assert.Contains(t, output, "go (8)")
	assert.Contains(t, output, "avg 120000")

	buf.Reset()
	p.PrintPreferenceProfile(&types.PreferenceProfile{})
	assert.Empty(t, buf.String())
}
