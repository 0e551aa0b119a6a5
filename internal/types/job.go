package types

import (
	"time"

	"github.com/google/uuid"
)

// Job type constants
const (
	JobTypeRemote   = "remote"
	JobTypeHybrid   = "hybrid"
	JobTypeOnsite   = "onsite"
	JobTypeContract = "contract"
)

// ExperienceRange is the required years of experience for a posting.
type ExperienceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// SalaryRange is the offered compensation band for a posting.
type SalaryRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// JobPosting represents a job posting as supplied by the job store.
// The engine treats it as read-only input.
type JobPosting struct {
	ID              uuid.UUID        `json:"id"`
	Title           string           `json:"title,omitempty"`
	Company         string           `json:"company,omitempty"`
	Industry        string           `json:"industry,omitempty"`
	SkillsRequired  []string         `json:"skills_required,omitempty"`
	ExperienceRange *ExperienceRange `json:"experience_range,omitempty"`
	RequiredDegree  *string          `json:"required_degree,omitempty"`
	Location        *string          `json:"location,omitempty"`
	JobType         string           `json:"job_type,omitempty"`
	SalaryRange     *SalaryRange     `json:"salary_range,omitempty"`
	PostedAt        time.Time        `json:"posted_at"`
	IsActive        bool             `json:"is_active"`
	CompanyVerified bool             `json:"company_verified"`
}

// Application is a single application edge between a candidate and a job,
// as supplied by the application store.
type Application struct {
	CandidateID uuid.UUID `json:"candidate_id"`
	JobID       uuid.UUID `json:"job_id"`
	AppliedAt   time.Time `json:"applied_at"`
}

// AppliedJob pairs a full job posting with the time the candidate applied.
// Used as Behavior Analyzer input.
type AppliedJob struct {
	Job       JobPosting `json:"job"`
	AppliedAt time.Time  `json:"applied_at"`
}
