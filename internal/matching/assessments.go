package matching

import (
	"github.com/jonathan/talent-match/internal/skills"
	"github.com/jonathan/talent-match/internal/types"
)

// scoreAssessments rewards completed assessments whose covered skills
// overlap the job's required skills. A job with no required skills gives
// full credit; a candidate with no assessments at all gets zero.
func scoreAssessments(candidate types.CandidateProfile, job types.JobPosting, resolver skills.SynonymResolver) types.DimensionResult {
	result := func(score int, status string, detail map[string]any) types.DimensionResult {
		return types.DimensionResult{
			Score:    score,
			MaxScore: MaxAssessmentsScore,
			Status:   status,
			Detail:   detail,
		}
	}

	required := skills.NormalizeAll(job.SkillsRequired, resolver)
	if len(required) == 0 {
		return result(MaxAssessmentsScore, StatusNotRequired, nil)
	}
	if len(candidate.CompletedAssessments) == 0 {
		return result(0, StatusNoAssessments, nil)
	}

	var relevant, passed []types.AssessmentResult
	for _, a := range candidate.CompletedAssessments {
		if !coversAny(a.SkillsCovered, required, resolver) {
			continue
		}
		relevant = append(relevant, a)
		if a.Passed {
			passed = append(passed, a)
		}
	}

	detail := map[string]any{
		"relevant_count": len(relevant),
		"passed_count":   len(passed),
	}

	if len(relevant) == 0 {
		return result(2, StatusNoneRelevant, detail)
	}
	if len(passed) == 0 {
		return result(3, StatusNonePassed, detail)
	}

	sum := 0.0
	for _, a := range passed {
		sum += a.Score
	}
	mean := sum / float64(len(passed))
	detail["mean_score"] = mean

	switch {
	case mean >= 80:
		return result(MaxAssessmentsScore, StatusExcellent, detail)
	case mean >= 60:
		return result(7, StatusGood, detail)
	default:
		return result(5, StatusAverage, detail)
	}
}

// coversAny reports whether any covered skill matches any required skill.
func coversAny(covered, required []string, resolver skills.SynonymResolver) bool {
	for _, c := range skills.NormalizeAll(covered, resolver) {
		for _, r := range required {
			if skills.Match(c, r) {
				return true
			}
		}
	}
	return false
}
