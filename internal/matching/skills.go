package matching

import (
	"math"

	"github.com/jonathan/talent-match/internal/skills"
	"github.com/jonathan/talent-match/internal/types"
)

// scoreSkills scores the overlap between the candidate's skills and the
// job's required skills, proportional to the fraction of required skills
// matched. A job with no required skills gives full credit.
func scoreSkills(candidate types.CandidateProfile, job types.JobPosting, resolver skills.SynonymResolver) types.DimensionResult {
	required := skills.NormalizeAll(job.SkillsRequired, resolver)
	if len(required) == 0 {
		return types.DimensionResult{
			Score:    MaxSkillsScore,
			MaxScore: MaxSkillsScore,
			Status:   StatusNotSpecified,
		}
	}

	matched, missing := skills.MatchRequired(candidate.Skills, job.SkillsRequired, resolver)
	score := int(math.Round(float64(MaxSkillsScore) * float64(len(matched)) / float64(len(required))))

	status := StatusPartialMatch
	switch len(matched) {
	case len(required):
		status = StatusPerfectMatch
	case 0:
		status = StatusNoMatch
	}

	return types.DimensionResult{
		Score:    score,
		MaxScore: MaxSkillsScore,
		Status:   status,
		Detail: map[string]any{
			"matched":        matched,
			"missing":        missing,
			"required_count": len(required),
		},
	}
}
