package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jonathan/talent-match/internal/types"
)

// -----------------------------------------------------------------------------
// Application Store
// -----------------------------------------------------------------------------

// ListCandidateHistory retrieves a candidate's applications joined with the
// jobs they applied to, most recent first. This is the behavior-analysis
// input, so callers pass the history cap as the limit.
func (db *DB) ListCandidateHistory(ctx context.Context, candidateID uuid.UUID, limit int) ([]types.AppliedJob, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+prefixedJobColumns("j")+`, a.applied_at
		 FROM applications a
		 JOIN jobs j ON j.id = a.job_id
		 WHERE a.candidate_id = $1
		 ORDER BY a.applied_at DESC
		 LIMIT $2`,
		candidateID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidate history: %w", err)
	}
	defer rows.Close()

	var out []types.AppliedJob
	for rows.Next() {
		var aj types.AppliedJob
		var expMin, expMax, salMin, salMax *float64
		j := &aj.Job
		err := rows.Scan(&j.ID, &j.Title, &j.Company, &j.Industry, &j.SkillsRequired,
			&expMin, &expMax, &j.RequiredDegree, &j.Location, &j.JobType,
			&salMin, &salMax, &j.PostedAt, &j.IsActive, &j.CompanyVerified,
			&aj.AppliedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan application: %w", err)
		}
		if expMin != nil && expMax != nil {
			j.ExperienceRange = &types.ExperienceRange{Min: *expMin, Max: *expMax}
		}
		if salMin != nil && salMax != nil {
			j.SalaryRange = &types.SalaryRange{Min: *salMin, Max: *salMax}
		}
		out = append(out, aj)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read applications: %w", err)
	}
	return out, nil
}

// ListApplications retrieves the application graph used for collaborative
// filtering: every (candidate, job, applied_at) edge, most recent first.
func (db *DB) ListApplications(ctx context.Context, limit int) ([]types.Application, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT candidate_id, job_id, applied_at
		 FROM applications
		 ORDER BY applied_at DESC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	defer rows.Close()

	var out []types.Application
	for rows.Next() {
		var a types.Application
		if err := rows.Scan(&a.CandidateID, &a.JobID, &a.AppliedAt); err != nil {
			return nil, fmt.Errorf("failed to scan application: %w", err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read applications: %w", err)
	}
	return out, nil
}
