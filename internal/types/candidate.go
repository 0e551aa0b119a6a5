// Package types provides type definitions for structured data used throughout the talent-match system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"github.com/google/uuid"
)

// Degree level constants, ordered from lowest to highest.
const (
	DegreeHighSchool = "high-school"
	DegreeDiploma    = "diploma"
	DegreeAssociate  = "associate"
	DegreeBachelor   = "bachelor"
	DegreeMaster     = "master"
	DegreePhD        = "phd"

	// DegreeAny means the posting accepts any education level.
	DegreeAny = "any"
)

// CandidateProfile represents a job seeker's profile as supplied by the
// profile store. The engine treats it as read-only input and never mutates it.
type CandidateProfile struct {
	ID                   uuid.UUID          `json:"id"`
	Name                 string             `json:"name,omitempty"`
	Skills               []string           `json:"skills,omitempty"`
	ExperienceYears      *float64           `json:"experience_years,omitempty"`
	HighestDegree        *string            `json:"highest_degree,omitempty"`
	Location             *string            `json:"location,omitempty"`
	ExpectedSalary       *float64           `json:"expected_salary,omitempty"`
	WillingToRelocate    bool               `json:"willing_to_relocate"`
	CompletedAssessments []AssessmentResult `json:"completed_assessments,omitempty"`
}

// AssessmentResult represents a completed skill assessment for a candidate.
type AssessmentResult struct {
	Title         string   `json:"title"`
	SkillsCovered []string `json:"skills_covered,omitempty"`
	Score         float64  `json:"score"` // 0-100
	Passed        bool     `json:"passed"`
}
