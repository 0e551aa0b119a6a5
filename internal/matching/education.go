package matching

import (
	"strings"

	"github.com/jonathan/talent-match/internal/types"
)

// degreeRank maps degree levels to numeric ranks for ordinal comparison.
var degreeRank = map[string]int{
	types.DegreeHighSchool: 1,
	types.DegreeDiploma:    2,
	types.DegreeAssociate:  3,
	types.DegreeBachelor:   4,
	types.DegreeMaster:     5,
	types.DegreePhD:        6,
}

// scoreEducation compares the candidate's highest degree against the job's
// required degree on the ordinal hierarchy. Meeting or exceeding the
// requirement gives full credit; below it the penalty scales with the
// level gap. No requirement (or "any") gives full credit.
func scoreEducation(candidate types.CandidateProfile, job types.JobPosting) types.DimensionResult {
	full := types.DimensionResult{
		Score:    MaxEducationScore,
		MaxScore: MaxEducationScore,
		Status:   StatusNotSpecified,
	}

	if job.RequiredDegree == nil {
		return full
	}
	required := strings.ToLower(strings.TrimSpace(*job.RequiredDegree))
	reqRank := degreeRank[required]
	if required == "" || required == types.DegreeAny || reqRank == 0 {
		return full
	}

	candRank := 0
	if candidate.HighestDegree != nil {
		candRank = degreeRank[strings.ToLower(strings.TrimSpace(*candidate.HighestDegree))]
	}

	detail := map[string]any{
		"required_degree": required,
		"candidate_rank":  candRank,
		"required_rank":   reqRank,
	}

	if candRank >= reqRank {
		return types.DimensionResult{
			Score:    MaxEducationScore,
			MaxScore: MaxEducationScore,
			Status:   StatusMeetsRequirement,
			Detail:   detail,
		}
	}

	var score int
	var status string
	switch reqRank - candRank {
	case 1:
		score, status = 10, StatusSlightlyUnder
	case 2:
		score, status = 5, StatusUnderQualified
	default:
		score, status = 0, StatusSignificantlyUnder
	}

	return types.DimensionResult{
		Score:    score,
		MaxScore: MaxEducationScore,
		Status:   status,
		Detail:   detail,
	}
}
