// Package matching scores how well a candidate profile fits a job posting.
//
// Six independent dimension scorers each produce a bounded sub-score and a
// status; the Scorer composes them into a 0-100 total with a qualitative
// tier and human-readable strengths/weaknesses. All scorers are pure and
// total: missing optional data is scored through a "not specified" branch,
// never treated as an error.
package matching

// Maximum score per dimension. The six maxima sum to exactly 100.
const (
	MaxSkillsScore       = 35
	MaxExperienceScore   = 20
	MaxEducationScore    = 15
	MaxLocationScore     = 10
	MaxCompensationScore = 10
	MaxAssessmentsScore  = 10
)

// Dimension status constants. Downstream strength/weakness generation
// switches on these values, so scorers must emit them exactly.
const (
	StatusNotSpecified = "not-specified"

	// skills
	StatusPerfectMatch = "perfect-match"
	StatusPartialMatch = "partial-match"
	StatusNoMatch      = "no-match"

	// experience and education
	StatusWithinRange        = "within-range"
	StatusMeetsRequirement   = "meets-requirement"
	StatusSlightlyUnder      = "slightly-under-qualified"
	StatusUnderQualified     = "under-qualified"
	StatusSignificantlyUnder = "significantly-under-qualified"
	StatusOverQualified      = "over-qualified"
	StatusSignificantlyOver  = "significantly-over-qualified"

	// location
	StatusRemote             = "remote"
	StatusExactMatch         = "exact-match"
	StatusHybridMismatch     = "hybrid-mismatch"
	StatusRelocationPossible = "relocation-possible"
	StatusOnsiteMismatch     = "onsite-mismatch"
	StatusLocationUnknown    = "unknown"

	// compensation
	StatusBelowRange         = "below-range"
	StatusSlightlyAbove      = "slightly-above-range"
	StatusAboveRange         = "above-range"
	StatusSignificantlyAbove = "significantly-above-range"

	// assessments
	StatusNotRequired   = "not-required"
	StatusNoAssessments = "no-assessments"
	StatusNoneRelevant  = "none-relevant"
	StatusNonePassed    = "none-passed"
	StatusExcellent     = "excellent"
	StatusGood          = "good"
	StatusAverage       = "average"
)
