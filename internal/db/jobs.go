package db

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jonathan/talent-match/internal/types"
)

// -----------------------------------------------------------------------------
// Job Posting Store
// -----------------------------------------------------------------------------

const jobColumns = `id, title, company, industry, skills_required,
	experience_min, experience_max, required_degree, location, job_type,
	salary_min, salary_max, posted_at, is_active, company_verified`

// prefixedJobColumns qualifies every job column with a table alias for use
// in joined queries.
func prefixedJobColumns(alias string) string {
	cols := strings.Split(jobColumns, ",")
	for i, c := range cols {
		cols[i] = alias + "." + strings.TrimSpace(c)
	}
	return strings.Join(cols, ", ")
}

// scanJob scans one job row, folding the nullable range columns into their
// optional struct fields.
func scanJob(row pgx.Row) (types.JobPosting, error) {
	var j types.JobPosting
	var expMin, expMax, salMin, salMax *float64

	err := row.Scan(&j.ID, &j.Title, &j.Company, &j.Industry, &j.SkillsRequired,
		&expMin, &expMax, &j.RequiredDegree, &j.Location, &j.JobType,
		&salMin, &salMax, &j.PostedAt, &j.IsActive, &j.CompanyVerified)
	if err != nil {
		return j, err
	}

	if expMin != nil && expMax != nil {
		j.ExperienceRange = &types.ExperienceRange{Min: *expMin, Max: *expMax}
	}
	if salMin != nil && salMax != nil {
		j.SalaryRange = &types.SalaryRange{Min: *salMin, Max: *salMax}
	}
	return j, nil
}

// GetJob retrieves a job posting by id. Returns (nil, nil) when the job
// does not exist.
func (db *DB) GetJob(ctx context.Context, id uuid.UUID) (*types.JobPosting, error) {
	j, err := scanJob(db.pool.QueryRow(ctx,
		`SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	return &j, nil
}

// ListActiveJobs retrieves active job postings, most recent first. This is
// the candidate job corpus for recommendation; callers should pre-filter
// via the limit rather than pulling the whole table.
func (db *DB) ListActiveJobs(ctx context.Context, limit int) ([]types.JobPosting, error) {
	return db.listJobs(ctx,
		`SELECT `+jobColumns+` FROM jobs WHERE is_active ORDER BY posted_at DESC LIMIT $1`,
		limit)
}

func (db *DB) listJobs(ctx context.Context, query string, args ...any) ([]types.JobPosting, error) {
	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	defer rows.Close()

	var out []types.JobPosting
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read jobs: %w", err)
	}
	return out, nil
}
