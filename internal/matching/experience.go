package matching

import (
	"github.com/jonathan/talent-match/internal/types"
)

// scoreExperience scores the candidate's years of experience against the
// job's required range. Under the minimum the penalty scales with the gap;
// above the maximum it scales with the excess. A missing candidate value is
// scored as zero years.
func scoreExperience(candidate types.CandidateProfile, job types.JobPosting) types.DimensionResult {
	rng := job.ExperienceRange
	if rng == nil {
		return types.DimensionResult{
			Score:    MaxExperienceScore,
			MaxScore: MaxExperienceScore,
			Status:   StatusNotSpecified,
		}
	}

	years := 0.0
	if candidate.ExperienceYears != nil && *candidate.ExperienceYears > 0 {
		years = *candidate.ExperienceYears
	}

	detail := map[string]any{
		"candidate_years": years,
		"required_min":    rng.Min,
		"required_max":    rng.Max,
	}

	var score int
	var status string
	switch {
	case years < rng.Min:
		gap := rng.Min - years
		switch {
		case gap >= 3:
			score, status = 0, StatusSignificantlyUnder
		case gap >= 2:
			score, status = 5, StatusUnderQualified
		default:
			// Gaps under a year are scored the same as a one-year gap.
			score, status = 12, StatusSlightlyUnder
		}
	// Max <= 0 leaves the upper bound open.
	case rng.Max > 0 && years > rng.Max:
		if years-rng.Max >= 5 {
			score, status = 10, StatusSignificantlyOver
		} else {
			score, status = 15, StatusOverQualified
		}
	default:
		score, status = MaxExperienceScore, StatusWithinRange
	}

	return types.DimensionResult{
		Score:    score,
		MaxScore: MaxExperienceScore,
		Status:   status,
		Detail:   detail,
	}
}
