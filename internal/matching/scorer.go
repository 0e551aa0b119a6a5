package matching

import (
	"fmt"

	"github.com/jonathan/talent-match/internal/skills"
	"github.com/jonathan/talent-match/internal/types"
)

// dimensionOrder fixes the iteration order for reason generation so output
// is deterministic across runs.
var dimensionOrder = []string{
	types.DimensionSkills,
	types.DimensionExperience,
	types.DimensionEducation,
	types.DimensionLocation,
	types.DimensionCompensation,
	types.DimensionAssessments,
}

// Scorer scores (candidate, job) pairs. It is stateless apart from the
// synonym resolver and safe for concurrent use.
type Scorer struct {
	resolver skills.SynonymResolver
}

// NewScorer creates a Scorer. A nil resolver falls back to the built-in
// synonym table.
func NewScorer(resolver skills.SynonymResolver) *Scorer {
	if resolver == nil {
		resolver = skills.DefaultResolver()
	}
	return &Scorer{resolver: resolver}
}

// Score runs all six dimension scorers and composes the weighted total,
// tier, and strength/weakness explanations. It never panics for missing
// optional fields; an unexpected internal failure degrades to a zero-score
// result with MatchTier "error" so batch ranking stays resilient to one
// bad record.
func (s *Scorer) Score(candidate types.CandidateProfile, job types.JobPosting) (result types.MatchResult) {
	defer func() {
		if r := recover(); r != nil {
			result = types.MatchResult{
				TotalScore: 0,
				MatchTier:  types.TierError,
				Dimensions: map[string]types.DimensionResult{},
				Failure:    fmt.Sprintf("scoring %s against %s: %v", candidate.ID, job.ID, r),
			}
		}
	}()

	dims := map[string]types.DimensionResult{
		types.DimensionSkills:       scoreSkills(candidate, job, s.resolver),
		types.DimensionExperience:   scoreExperience(candidate, job),
		types.DimensionEducation:    scoreEducation(candidate, job),
		types.DimensionLocation:     scoreLocation(candidate, job),
		types.DimensionCompensation: scoreCompensation(candidate, job),
		types.DimensionAssessments:  scoreAssessments(candidate, job, s.resolver),
	}

	total := 0
	for _, d := range dims {
		total += d.Score
	}

	return types.MatchResult{
		TotalScore: total,
		MatchTier:  TierFor(total),
		Dimensions: dims,
		Strengths:  buildStrengths(dims),
		Weaknesses: buildWeaknesses(dims),
	}
}

// TierFor maps a 0-100 total score to its qualitative match tier.
func TierFor(total int) string {
	switch {
	case total >= 85:
		return types.TierExcellent
	case total >= 70:
		return types.TierVeryGood
	case total >= 55:
		return types.TierGood
	case total >= 40:
		return types.TierFair
	default:
		return types.TierPoor
	}
}
