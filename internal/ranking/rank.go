// Package ranking applies the match scorer across candidate or job sets and
// produces filtered, stably sorted result lists.
package ranking

import (
	"sort"

	"github.com/jonathan/talent-match/internal/matching"
	"github.com/jonathan/talent-match/internal/types"
)

// CandidateMatch pairs a candidate with their match result for one job.
type CandidateMatch struct {
	Candidate types.CandidateProfile `json:"candidate"`
	Match     types.MatchResult      `json:"match"`
}

// JobMatch pairs a job with the candidate's match result for it.
type JobMatch struct {
	Job   types.JobPosting  `json:"job"`
	Match types.MatchResult `json:"match"`
}

// RankCandidates scores every candidate against the job, filters to
// TotalScore >= minScore, and sorts descending by score. The sort is
// stable: equal scores preserve input order, which keeps pagination
// reproducible. A scoring failure for one candidate degrades that entry
// to a zero-score result and never aborts the batch.
func RankCandidates(scorer *matching.Scorer, candidates []types.CandidateProfile, job types.JobPosting, minScore int) []CandidateMatch {
	out := make([]CandidateMatch, 0, len(candidates))
	for _, c := range candidates {
		result := scorer.Score(c, job)
		if result.TotalScore < minScore {
			continue
		}
		out = append(out, CandidateMatch{Candidate: c, Match: result})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Match.TotalScore > out[j].Match.TotalScore
	})
	return out
}

// RankJobs is the seeker-facing counterpart of RankCandidates: it scores
// one candidate against every job with the same filter, order, and
// stability guarantees.
func RankJobs(scorer *matching.Scorer, candidate types.CandidateProfile, jobs []types.JobPosting, minScore int) []JobMatch {
	out := make([]JobMatch, 0, len(jobs))
	for _, j := range jobs {
		result := scorer.Score(candidate, j)
		if result.TotalScore < minScore {
			continue
		}
		out = append(out, JobMatch{Job: j, Match: result})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Match.TotalScore > out[j].Match.TotalScore
	})
	return out
}
