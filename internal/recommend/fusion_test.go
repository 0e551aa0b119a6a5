package recommend

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/talent-match/internal/collab"
	"github.com/jonathan/talent-match/internal/matching"
	"github.com/jonathan/talent-match/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRecommender(now time.Time) *Recommender {
	r := New(matching.NewScorer(nil))
	r.now = func() time.Time { return now }
	return r
}

func TestRecencyBoost_StepFunction(t *testing.T) {
	day := 24 * time.Hour
	tests := []struct {
		age  time.Duration
		want int
	}{
		{12 * time.Hour, 10},
		{1 * day, 10},
		{2 * day, 7},
		{5 * day, 5},
		{10 * day, 3},
		{20 * day, 1},
		{45 * day, 0},
		{-1 * day, 0}, // future-dated posting gets no boost
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, RecencyBoost(tt.age), "age %v", tt.age)
	}
}

func TestRecommend_TotalEqualsComponentSum(t *testing.T) {
	now := time.Now()
	candidate := types.CandidateProfile{ID: uuid.New(), Skills: []string{"go", "sql"}}
	peer := uuid.New()
	shared := uuid.New()
	job := types.JobPosting{
		ID:             uuid.New(),
		SkillsRequired: []string{"go", "sql"},
		PostedAt:       now.Add(-2 * 24 * time.Hour),
		IsActive:       true,
	}

	applications := []types.Application{
		{CandidateID: candidate.ID, JobID: shared, AppliedAt: now},
		{CandidateID: peer, JobID: shared, AppliedAt: now},
		{CandidateID: peer, JobID: job.ID, AppliedAt: now},
	}
	similar, err := collab.FindSimilarCandidates(candidate.ID, applications)
	require.NoError(t, err)

	items := newTestRecommender(now).Recommend(
		candidate, types.PreferenceProfile{TotalApplications: 1},
		similar, applications, []types.JobPosting{job}, Options{},
	)

	require.Len(t, items, 1)
	item := items[0]
	assert.Equal(t, item.Score.Content+item.Score.Collaborative+item.Score.Recency, item.Score.Total)
	assert.Equal(t, 1, item.Score.Collaborative)
	assert.Equal(t, 7, item.Score.Recency)
	assert.Equal(t, types.SourceHybrid, item.Source)
	assert.Contains(t, item.Reasons, "Popular among similar job seekers")
}

func TestRecommend_SourceTags(t *testing.T) {
	assert.Equal(t, types.SourceHybrid, sourceTag(50, 2))
	assert.Equal(t, types.SourceCollaborative, sourceTag(0, 2))
	assert.Equal(t, types.SourceContentBased, sourceTag(50, 0))
	assert.Equal(t, types.SourceContentBased, sourceTag(0, 0))
}

func TestRecommend_ExcludesAppliedJobs(t *testing.T) {
	now := time.Now()
	candidate := types.CandidateProfile{ID: uuid.New(), Skills: []string{"go"}}
	job := types.JobPosting{
		ID:             uuid.New(),
		SkillsRequired: []string{"go"},
		PostedAt:       now,
		IsActive:       true,
	}
	applications := []types.Application{
		{CandidateID: candidate.ID, JobID: job.ID, AppliedAt: now},
	}

	items := newTestRecommender(now).Recommend(
		candidate, types.PreferenceProfile{TotalApplications: 1},
		nil, applications, []types.JobPosting{job}, Options{},
	)
	assert.Empty(t, items)

	included := newTestRecommender(now).Recommend(
		candidate, types.PreferenceProfile{TotalApplications: 1},
		nil, applications, []types.JobPosting{job}, Options{IncludeApplied: true},
	)
	assert.Len(t, included, 1)
}

func TestRecommend_MinScoreAndLimit(t *testing.T) {
	now := time.Now()
	candidate := types.CandidateProfile{ID: uuid.New(), Skills: []string{"go"}}

	var jobs []types.JobPosting
	for i := 0; i < 5; i++ {
		jobs = append(jobs, types.JobPosting{
			ID:             uuid.New(),
			SkillsRequired: []string{"go"},
			PostedAt:       now.Add(-60 * 24 * time.Hour),
			IsActive:       true,
		})
	}

	items := newTestRecommender(now).Recommend(
		candidate, types.PreferenceProfile{TotalApplications: 1},
		nil, nil, jobs, Options{Limit: 3, MinScore: 50},
	)

	assert.Len(t, items, 3)
	for _, item := range items {
		assert.GreaterOrEqual(t, item.Score.Total, 50)
	}
}

func TestRecommend_SortedDescending(t *testing.T) {
	now := time.Now()
	candidate := types.CandidateProfile{ID: uuid.New(), Skills: []string{"go", "sql"}}
	jobs := []types.JobPosting{
		{ID: uuid.New(), Title: "weak", SkillsRequired: []string{"rust", "zig", "cobol"}, PostedAt: now.Add(-40 * 24 * time.Hour), IsActive: true},
		{ID: uuid.New(), Title: "strong", SkillsRequired: []string{"go", "sql"}, PostedAt: now, IsActive: true},
	}

	items := newTestRecommender(now).Recommend(
		candidate, types.PreferenceProfile{TotalApplications: 1},
		nil, nil, jobs, Options{},
	)

	require.Len(t, items, 2)
	assert.Equal(t, "strong", items[0].Job.Title)
	assert.GreaterOrEqual(t, items[0].Score.Total, items[1].Score.Total)
}

func TestRecommend_ColdStartTrendingFallback(t *testing.T) {
	now := time.Now()
	candidate := types.CandidateProfile{ID: uuid.New()}
	jobs := []types.JobPosting{
		{ID: uuid.New(), Title: "older", PostedAt: now.Add(-8 * 24 * time.Hour), IsActive: true},
		{ID: uuid.New(), Title: "newest", PostedAt: now.Add(-1 * time.Hour), IsActive: true},
		{ID: uuid.New(), Title: "inactive", PostedAt: now, IsActive: false},
	}

	// No history and a min score nothing satisfies: trending kicks in.
	items := newTestRecommender(now).Recommend(
		candidate, types.PreferenceProfile{},
		nil, nil, jobs, Options{MinScore: 200},
	)

	require.NotEmpty(t, items)
	assert.Equal(t, "newest", items[0].Job.Title)
	for _, item := range items {
		assert.Equal(t, types.SourceTrending, item.Source)
		assert.Zero(t, item.Score.Total)
		assert.Equal(t, []string{"Recently posted", "Popular among job seekers"}, item.Reasons)
		assert.NotEqual(t, "inactive", item.Job.Title)
	}
}

func TestRecommend_NoTrendingWhenHistoryExists(t *testing.T) {
	now := time.Now()
	candidate := types.CandidateProfile{ID: uuid.New()}
	jobs := []types.JobPosting{
		{ID: uuid.New(), PostedAt: now, IsActive: true},
	}

	// History exists, so an empty filtered result stays empty.
	items := newTestRecommender(now).Recommend(
		candidate, types.PreferenceProfile{TotalApplications: 3},
		nil, nil, jobs, Options{MinScore: 200},
	)
	assert.Empty(t, items)
}
