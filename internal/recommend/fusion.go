// Package recommend fuses content-based match scores, collaborative peer
// signals, and posting recency into one ranked, explained recommendation
// list.
package recommend

import (
	"sort"
	"time"

	"github.com/jonathan/talent-match/internal/collab"
	"github.com/jonathan/talent-match/internal/matching"
	"github.com/jonathan/talent-match/internal/types"
)

// Trending fallback reasons, fixed wording for the cold-start case.
var trendingReasons = []string{"Recently posted", "Popular among job seekers"}

// DefaultLimit bounds the recommendation list when the caller passes none.
const DefaultLimit = 20

// Options controls a Recommend call.
type Options struct {
	Limit          int
	MinScore       int
	IncludeApplied bool
}

// Recommender fuses the three recommendation signals. The now function is
// swappable for tests; zero value is not usable, construct via New.
type Recommender struct {
	scorer *matching.Scorer
	now    func() time.Time
}

// New creates a Recommender around a match scorer.
func New(scorer *matching.Scorer) *Recommender {
	return &Recommender{scorer: scorer, now: time.Now}
}

// Recommend scores every candidate job and merges content, collaborative,
// and recency components into a single ranked list. The three components
// are exposed separately in the score breakdown; the collaborative count
// is added raw, not normalized against the 0-100 content score. When the
// candidate has no history and nothing qualifies, the most recently posted
// active jobs come back as a "trending" fallback instead of an empty list.
func (r *Recommender) Recommend(
	candidate types.CandidateProfile,
	prefs types.PreferenceProfile,
	similar []types.SimilarityEdge,
	applications []types.Application,
	candidateJobs []types.JobPosting,
	opts Options,
) []types.RecommendationItem {
	limit := opts.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}

	applied := make(map[string]bool)
	for _, a := range applications {
		if a.CandidateID == candidate.ID {
			applied[a.JobID.String()] = true
		}
	}

	items := make([]types.RecommendationItem, 0, len(candidateJobs))
	for _, job := range candidateJobs {
		if !opts.IncludeApplied && applied[job.ID.String()] {
			continue
		}

		match := r.scorer.Score(candidate, job)
		if match.MatchTier == types.TierError {
			// One bad record degrades to nothing, never aborts the batch.
			continue
		}

		content := match.TotalScore
		collaborative := collab.Score(job.ID, candidate.ID, similar, applications)
		recency := RecencyBoost(r.now().Sub(job.PostedAt))
		total := content + collaborative + recency
		if total < opts.MinScore {
			continue
		}

		items = append(items, types.RecommendationItem{
			Job: job,
			Score: types.ScoreBreakdown{
				Content:       content,
				Collaborative: collaborative,
				Recency:       recency,
				Total:         total,
			},
			MatchTier: match.MatchTier,
			Reasons:   buildReasons(job, match, prefs, collaborative, recency),
			Source:    sourceTag(content, collaborative),
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Score.Total > items[j].Score.Total
	})
	if len(items) > limit {
		items = items[:limit]
	}

	if len(items) == 0 && prefs.TotalApplications == 0 {
		return Trending(candidateJobs, limit, r.now())
	}
	return items
}

// RecencyBoost maps the age of a posting to a fixed step-function boost.
func RecencyBoost(age time.Duration) int {
	days := age.Hours() / 24
	switch {
	case days < 0:
		return 0
	case days <= 1:
		return 10
	case days <= 3:
		return 7
	case days <= 7:
		return 5
	case days <= 14:
		return 3
	case days <= 30:
		return 1
	default:
		return 0
	}
}

// Trending returns the most recently posted active jobs as a cold-start
// fallback, each tagged source "trending" with a zero score.
func Trending(jobs []types.JobPosting, limit int, now time.Time) []types.RecommendationItem {
	active := make([]types.JobPosting, 0, len(jobs))
	for _, j := range jobs {
		if j.IsActive && !j.PostedAt.After(now) {
			active = append(active, j)
		}
	}
	sort.SliceStable(active, func(i, j int) bool {
		return active[i].PostedAt.After(active[j].PostedAt)
	})
	if len(active) > limit {
		active = active[:limit]
	}

	items := make([]types.RecommendationItem, 0, len(active))
	for _, j := range active {
		items = append(items, types.RecommendationItem{
			Job:     j,
			Score:   types.ScoreBreakdown{},
			Reasons: trendingReasons,
			Source:  types.SourceTrending,
		})
	}
	return items
}

// sourceTag labels where a recommendation's signal came from.
func sourceTag(content, collaborative int) string {
	switch {
	case content > 0 && collaborative > 0:
		return types.SourceHybrid
	case collaborative > 0:
		return types.SourceCollaborative
	default:
		return types.SourceContentBased
	}
}

// buildReasons assembles the explanation list for one recommendation:
// match strengths first, then behavioral and freshness signals.
func buildReasons(job types.JobPosting, match types.MatchResult, prefs types.PreferenceProfile, collaborative, recency int) []string {
	reasons := append([]string(nil), match.Strengths...)
	if collaborative > 0 {
		reasons = append(reasons, "Popular among similar job seekers")
	}
	if recency >= 5 {
		reasons = append(reasons, "Recently posted")
	}
	if matchesPreferredJobType(job, prefs) {
		reasons = append(reasons, "Similar to jobs you applied to")
	}
	return reasons
}

// matchesPreferredJobType reports whether the job's type is among the
// candidate's implicit job-type preferences.
func matchesPreferredJobType(job types.JobPosting, prefs types.PreferenceProfile) bool {
	if job.JobType == "" {
		return false
	}
	for _, e := range prefs.TopJobTypes {
		if e.Value == job.JobType {
			return true
		}
	}
	return false
}
