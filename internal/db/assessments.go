package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jonathan/talent-match/internal/types"
)

// -----------------------------------------------------------------------------
// Assessment Store
// -----------------------------------------------------------------------------

// ListAssessments retrieves a candidate's completed assessment results.
func (db *DB) ListAssessments(ctx context.Context, candidateID uuid.UUID) ([]types.AssessmentResult, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT title, skills_covered, score, passed
		 FROM assessment_results
		 WHERE candidate_id = $1
		 ORDER BY completed_at DESC`,
		candidateID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list assessments: %w", err)
	}
	defer rows.Close()

	var out []types.AssessmentResult
	for rows.Next() {
		var a types.AssessmentResult
		if err := rows.Scan(&a.Title, &a.SkillsCovered, &a.Score, &a.Passed); err != nil {
			return nil, fmt.Errorf("failed to scan assessment: %w", err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read assessments: %w", err)
	}
	return out, nil
}
