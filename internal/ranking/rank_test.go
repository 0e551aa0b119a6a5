package ranking

import (
	"testing"

	"github.com/google/uuid"
	"github.com/jonathan/talent-match/internal/matching"
	"github.com/jonathan/talent-match/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func candidateWithSkills(name string, skills ...string) types.CandidateProfile {
	return types.CandidateProfile{ID: uuid.New(), Name: name, Skills: skills}
}

func TestRankCandidates_SortedDescending(t *testing.T) {
	job := types.JobPosting{
		ID:             uuid.New(),
		SkillsRequired: []string{"go", "sql", "docker"},
	}
	candidates := []types.CandidateProfile{
		candidateWithSkills("partial", "go"),
		candidateWithSkills("full", "go", "sql", "docker"),
		candidateWithSkills("none"),
	}

	ranked := RankCandidates(matching.NewScorer(nil), candidates, job, 0)

	require.Len(t, ranked, 3)
	assert.Equal(t, "full", ranked[0].Candidate.Name)
	for i := 1; i < len(ranked); i++ {
		assert.GreaterOrEqual(t, ranked[i-1].Match.TotalScore, ranked[i].Match.TotalScore)
	}
}

func TestRankCandidates_MinScoreFilter(t *testing.T) {
	job := types.JobPosting{SkillsRequired: []string{"go", "sql", "docker"}}
	candidates := []types.CandidateProfile{
		candidateWithSkills("full", "go", "sql", "docker"),
		candidateWithSkills("none"),
	}

	ranked := RankCandidates(matching.NewScorer(nil), candidates, job, 60)

	for _, r := range ranked {
		assert.GreaterOrEqual(t, r.Match.TotalScore, 60)
	}
	require.Len(t, ranked, 1)
	assert.Equal(t, "full", ranked[0].Candidate.Name)
}

func TestRankCandidates_StableForEqualScores(t *testing.T) {
	job := types.JobPosting{SkillsRequired: []string{"go"}}
	// Identical skill sets produce identical scores; input order must hold.
	candidates := []types.CandidateProfile{
		candidateWithSkills("first", "go"),
		candidateWithSkills("second", "go"),
		candidateWithSkills("third", "go"),
	}

	ranked := RankCandidates(matching.NewScorer(nil), candidates, job, 0)

	require.Len(t, ranked, 3)
	assert.Equal(t, "first", ranked[0].Candidate.Name)
	assert.Equal(t, "second", ranked[1].Candidate.Name)
	assert.Equal(t, "third", ranked[2].Candidate.Name)
}

func TestRankCandidates_EmptyInput(t *testing.T) {
	ranked := RankCandidates(matching.NewScorer(nil), nil, types.JobPosting{}, 0)
	assert.Empty(t, ranked)
}

func TestRankJobs_SortedAndFiltered(t *testing.T) {
	candidate := candidateWithSkills("dev", "go", "sql")
	jobs := []types.JobPosting{
		{ID: uuid.New(), Title: "no match", SkillsRequired: []string{"cobol", "fortran", "ada"}},
		{ID: uuid.New(), Title: "good match", SkillsRequired: []string{"go", "sql"}},
	}

	ranked := RankJobs(matching.NewScorer(nil), candidate, jobs, 0)

	require.Len(t, ranked, 2)
	assert.Equal(t, "good match", ranked[0].Job.Title)
	assert.Greater(t, ranked[0].Match.TotalScore, ranked[1].Match.TotalScore)
}
