package matching

import (
	"strings"

	"github.com/jonathan/talent-match/internal/types"
)

// scoreLocation scores geographic fit. Remote jobs always get full credit.
// Missing location data on either side is scored as the neutral midpoint
// rather than a penalty.
func scoreLocation(candidate types.CandidateProfile, job types.JobPosting) types.DimensionResult {
	result := func(score int, status string) types.DimensionResult {
		return types.DimensionResult{
			Score:    score,
			MaxScore: MaxLocationScore,
			Status:   status,
		}
	}

	if job.JobType == types.JobTypeRemote {
		return result(MaxLocationScore, StatusRemote)
	}

	candLoc := ""
	if candidate.Location != nil {
		candLoc = strings.TrimSpace(*candidate.Location)
	}
	jobLoc := ""
	if job.Location != nil {
		jobLoc = strings.TrimSpace(*job.Location)
	}
	if candLoc == "" || jobLoc == "" {
		return result(5, StatusLocationUnknown)
	}

	if strings.EqualFold(candLoc, jobLoc) {
		return result(MaxLocationScore, StatusExactMatch)
	}
	if job.JobType == types.JobTypeHybrid {
		return result(7, StatusHybridMismatch)
	}
	if candidate.WillingToRelocate {
		return result(6, StatusRelocationPossible)
	}
	return result(2, StatusOnsiteMismatch)
}
