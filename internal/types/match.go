package types

// Dimension name constants. These are the keys of MatchResult.Dimensions.
const (
	DimensionSkills       = "skills"
	DimensionExperience   = "experience"
	DimensionEducation    = "education"
	DimensionLocation     = "location"
	DimensionCompensation = "compensation"
	DimensionAssessments  = "assessments"
)

// Match tier constants on the 0-100 total score.
const (
	TierExcellent = "excellent"
	TierVeryGood  = "very-good"
	TierGood      = "good"
	TierFair      = "fair"
	TierPoor      = "poor"

	// TierError marks a degraded result produced after an internal
	// scoring failure. Batch ranking keeps going past these.
	TierError = "error"
)

// DimensionResult is the uniform result shape returned by every dimension
// scorer. Invariant: 0 <= Score <= MaxScore.
type DimensionResult struct {
	Score    int            `json:"score"`
	MaxScore int            `json:"max_score"`
	Status   string         `json:"status"`
	Detail   map[string]any `json:"detail,omitempty"`
}

// MatchResult is the full, explainable outcome of scoring one
// (candidate, job) pair. TotalScore is the sum of all dimension scores.
type MatchResult struct {
	TotalScore int                        `json:"total_score"`
	MatchTier  string                     `json:"match_tier"`
	Dimensions map[string]DimensionResult `json:"dimensions"`
	Strengths  []string                   `json:"strengths,omitempty"`
	Weaknesses []string                   `json:"weaknesses,omitempty"`
	// Failure carries the captured internal error message on a degraded
	// result (MatchTier == TierError). Empty on success.
	Failure string `json:"failure,omitempty"`
}
