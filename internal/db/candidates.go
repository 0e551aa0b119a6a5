package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jonathan/talent-match/internal/types"
)

// -----------------------------------------------------------------------------
// Candidate Profile Store
// -----------------------------------------------------------------------------

// GetCandidate retrieves a candidate profile by id, including completed
// assessments. Returns (nil, nil) when the candidate does not exist.
func (db *DB) GetCandidate(ctx context.Context, id uuid.UUID) (*types.CandidateProfile, error) {
	var c types.CandidateProfile

	err := db.pool.QueryRow(ctx,
		`SELECT id, name, skills, experience_years, highest_degree, location,
		        expected_salary, willing_to_relocate
		 FROM candidates WHERE id = $1`,
		id,
	).Scan(&c.ID, &c.Name, &c.Skills, &c.ExperienceYears, &c.HighestDegree,
		&c.Location, &c.ExpectedSalary, &c.WillingToRelocate)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get candidate: %w", err)
	}

	assessments, err := db.ListAssessments(ctx, id)
	if err != nil {
		return nil, err
	}
	c.CompletedAssessments = assessments

	return &c, nil
}

// ListCandidatesForJob retrieves the profiles of all candidates who applied
// to a job, in application order. This is the recruiter-view ranking input.
func (db *DB) ListCandidatesForJob(ctx context.Context, jobID uuid.UUID, limit int) ([]types.CandidateProfile, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT c.id, c.name, c.skills, c.experience_years, c.highest_degree,
		        c.location, c.expected_salary, c.willing_to_relocate
		 FROM candidates c
		 JOIN applications a ON a.candidate_id = c.id
		 WHERE a.job_id = $1
		 ORDER BY a.applied_at
		 LIMIT $2`,
		jobID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates for job: %w", err)
	}
	defer rows.Close()

	var out []types.CandidateProfile
	for rows.Next() {
		var c types.CandidateProfile
		if err := rows.Scan(&c.ID, &c.Name, &c.Skills, &c.ExperienceYears,
			&c.HighestDegree, &c.Location, &c.ExpectedSalary, &c.WillingToRelocate); err != nil {
			return nil, fmt.Errorf("failed to scan candidate: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read candidates: %w", err)
	}

	for i := range out {
		assessments, err := db.ListAssessments(ctx, out[i].ID)
		if err != nil {
			return nil, err
		}
		out[i].CompletedAssessments = assessments
	}

	return out, nil
}
