package types

import "github.com/google/uuid"

// FrequencyEntry is a value with its occurrence count in a candidate's
// application history, used for ranked preference lists.
type FrequencyEntry struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// SalaryStats summarizes the salary bands of a candidate's applied jobs.
type SalaryStats struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
	Avg float64 `json:"avg"`
}

// PreferenceProfile holds implicit preference signals mined from a
// candidate's application history. It is derived, ephemeral state:
// rebuilt per request and discarded after the call completes.
type PreferenceProfile struct {
	TopSkills         []FrequencyEntry `json:"top_skills,omitempty"`
	TopLocations      []FrequencyEntry `json:"top_locations,omitempty"`
	TopJobTypes       []FrequencyEntry `json:"top_job_types,omitempty"`
	TopIndustries     []FrequencyEntry `json:"top_industries,omitempty"`
	Salary            *SalaryStats     `json:"salary,omitempty"`
	TotalApplications int              `json:"total_applications"`
}

// SimilarityEdge links the target candidate to another candidate by the
// number of jobs both applied to. Recomputed per request, never persisted.
type SimilarityEdge struct {
	OtherCandidateID uuid.UUID `json:"other_candidate_id"`
	OverlapCount     int       `json:"overlap_count"`
}
