package behavior

import (
	"testing"
	"time"

	"github.com/jonathan/talent-match/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func appliedJob(daysAgo int, mutate func(*types.JobPosting)) types.AppliedJob {
	job := types.JobPosting{JobType: types.JobTypeRemote}
	if mutate != nil {
		mutate(&job)
	}
	return types.AppliedJob{
		Job:       job,
		AppliedAt: time.Now().AddDate(0, 0, -daysAgo),
	}
}

func TestAnalyzeHistory_EmptyHistory(t *testing.T) {
	profile := AnalyzeHistory(nil, nil)

	assert.Zero(t, profile.TotalApplications)
	assert.Empty(t, profile.TopSkills)
	assert.Empty(t, profile.TopLocations)
	assert.Nil(t, profile.Salary)
}

func TestAnalyzeHistory_FrequencyRanking(t *testing.T) {
	loc := "Pune"
	history := []types.AppliedJob{
		appliedJob(1, func(j *types.JobPosting) {
			j.SkillsRequired = []string{"Go", "SQL"}
			j.Location = &loc
			j.Industry = "Fintech"
		}),
		appliedJob(2, func(j *types.JobPosting) {
			j.SkillsRequired = []string{"Go"}
			j.Location = &loc
		}),
		appliedJob(3, func(j *types.JobPosting) {
			j.SkillsRequired = []string{"Python"}
		}),
	}

	profile := AnalyzeHistory(history, nil)

	assert.Equal(t, 3, profile.TotalApplications)
	require.NotEmpty(t, profile.TopSkills)
	assert.Equal(t, types.FrequencyEntry{Value: "go", Count: 2}, profile.TopSkills[0])
	require.NotEmpty(t, profile.TopLocations)
	assert.Equal(t, types.FrequencyEntry{Value: "pune", Count: 2}, profile.TopLocations[0])
	assert.Equal(t, types.FrequencyEntry{Value: types.JobTypeRemote, Count: 3}, profile.TopJobTypes[0])
	assert.Equal(t, types.FrequencyEntry{Value: "fintech", Count: 1}, profile.TopIndustries[0])
}

func TestAnalyzeHistory_TieBreakIsDeterministic(t *testing.T) {
	history := []types.AppliedJob{
		appliedJob(1, func(j *types.JobPosting) { j.SkillsRequired = []string{"zig", "ada"} }),
	}

	profile := AnalyzeHistory(history, nil)

	require.Len(t, profile.TopSkills, 2)
	// Equal counts sort by value ascending.
	assert.Equal(t, "ada", profile.TopSkills[0].Value)
	assert.Equal(t, "zig", profile.TopSkills[1].Value)
}

func TestAnalyzeHistory_SalaryStats(t *testing.T) {
	history := []types.AppliedJob{
		appliedJob(1, func(j *types.JobPosting) { j.SalaryRange = &types.SalaryRange{Min: 10, Max: 20} }),
		appliedJob(2, func(j *types.JobPosting) { j.SalaryRange = &types.SalaryRange{Min: 20, Max: 40} }),
		appliedJob(3, nil), // no salary info, excluded from stats
	}

	profile := AnalyzeHistory(history, nil)

	require.NotNil(t, profile.Salary)
	assert.Equal(t, 10.0, profile.Salary.Min)
	assert.Equal(t, 40.0, profile.Salary.Max)
	assert.InDelta(t, 22.5, profile.Salary.Avg, 0.001) // mean of midpoints 15 and 30
}

func TestAnalyzeHistory_CapsToRecentApplications(t *testing.T) {
	var history []types.AppliedJob
	for i := 0; i < HistoryCap; i++ {
		history = append(history, appliedJob(i, func(j *types.JobPosting) {
			j.SkillsRequired = []string{"recent"}
		}))
	}
	for i := HistoryCap; i < HistoryCap+20; i++ {
		history = append(history, appliedJob(i, func(j *types.JobPosting) {
			j.SkillsRequired = []string{"stale"}
		}))
	}

	profile := AnalyzeHistory(history, nil)

	assert.Equal(t, HistoryCap+20, profile.TotalApplications)
	require.NotEmpty(t, profile.TopSkills)
	// Only the newest HistoryCap applications feed the tables; the older
	// "stale" skill must not appear at all.
	assert.Equal(t, types.FrequencyEntry{Value: "recent", Count: HistoryCap}, profile.TopSkills[0])
	for _, e := range profile.TopSkills {
		assert.NotEqual(t, "stale", e.Value)
	}
}
