package matching

import (
	"github.com/jonathan/talent-match/internal/types"
)

// scoreCompensation scores the candidate's salary expectation against the
// job's offered range. Expectations below the range are employer-favorable
// and lose little; above the range the penalty scales with the overshoot.
// Missing data on either side gives full credit.
func scoreCompensation(candidate types.CandidateProfile, job types.JobPosting) types.DimensionResult {
	result := func(score int, status string, detail map[string]any) types.DimensionResult {
		return types.DimensionResult{
			Score:    score,
			MaxScore: MaxCompensationScore,
			Status:   status,
			Detail:   detail,
		}
	}

	rng := job.SalaryRange
	if rng == nil || candidate.ExpectedSalary == nil || rng.Max <= 0 {
		return result(MaxCompensationScore, StatusNotSpecified, nil)
	}

	expected := *candidate.ExpectedSalary
	if expected < 0 {
		// Malformed input: clamp rather than reject.
		expected = 0
	}

	detail := map[string]any{
		"expected":    expected,
		"offered_min": rng.Min,
		"offered_max": rng.Max,
	}

	switch {
	case expected < rng.Min:
		return result(8, StatusBelowRange, detail)
	case expected <= rng.Max:
		return result(MaxCompensationScore, StatusWithinRange, detail)
	}

	over := (expected - rng.Max) / rng.Max
	switch {
	case over <= 0.10:
		return result(7, StatusSlightlyAbove, detail)
	case over <= 0.20:
		return result(4, StatusAboveRange, detail)
	default:
		return result(0, StatusSignificantlyAbove, detail)
	}
}
