// Package collab derives collaborative signals from raw application
// records: candidates with overlapping application history and
// popularity-among-peers scores for jobs.
//
// Everything here is session-scoped: the similarity relation is rebuilt
// from the flat application list on every call and discarded afterwards.
// No persistent graph is maintained, which bounds staleness to zero and
// scale to whatever the caller can supply as input.
package collab

import (
	"errors"
	"sort"

	"github.com/google/uuid"
	"github.com/jonathan/talent-match/internal/types"
)

// maxSimilarCandidates caps the ranked similar-candidate list.
const maxSimilarCandidates = 10

// ErrMissingCandidateID is returned when the target candidate id is absent.
// Missing identifiers are the one hard input error; everything else has a
// safe default.
var ErrMissingCandidateID = errors.New("candidate id is required")

// FindSimilarCandidates ranks other candidates by how many jobs they share
// with the target candidate's application history. Ties break by candidate
// id so results are deterministic. Returns at most maxSimilarCandidates
// edges; a candidate with no history yields an empty list, not an error.
func FindSimilarCandidates(candidateID uuid.UUID, applications []types.Application) ([]types.SimilarityEdge, error) {
	if candidateID == uuid.Nil {
		return nil, ErrMissingCandidateID
	}

	applied := appliedSet(candidateID, applications)
	if len(applied) == 0 {
		return nil, nil
	}

	overlaps := make(map[uuid.UUID]int)
	for _, a := range applications {
		if a.CandidateID == candidateID {
			continue
		}
		if applied[a.JobID] {
			overlaps[a.CandidateID]++
		}
	}

	edges := make([]types.SimilarityEdge, 0, len(overlaps))
	for id, count := range overlaps {
		edges = append(edges, types.SimilarityEdge{OtherCandidateID: id, OverlapCount: count})
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].OverlapCount != edges[j].OverlapCount {
			return edges[i].OverlapCount > edges[j].OverlapCount
		}
		return edges[i].OtherCandidateID.String() < edges[j].OtherCandidateID.String()
	})
	if len(edges) > maxSimilarCandidates {
		edges = edges[:maxSimilarCandidates]
	}
	return edges, nil
}

// Score counts how many similar candidates applied to the given job. Jobs
// the target candidate already applied to score zero: peer signals must
// never resurface something the candidate has already acted on. The count
// is raw overlap, deliberately not normalized by the number of similar
// candidates.
func Score(jobID, candidateID uuid.UUID, similar []types.SimilarityEdge, applications []types.Application) int {
	if len(similar) == 0 {
		return 0
	}
	if appliedSet(candidateID, applications)[jobID] {
		return 0
	}

	similarIDs := make(map[uuid.UUID]bool, len(similar))
	for _, e := range similar {
		similarIDs[e.OtherCandidateID] = true
	}

	// A peer may apply to the same job more than once in dirty data;
	// count distinct peers, not application rows.
	seen := make(map[uuid.UUID]bool)
	for _, a := range applications {
		if a.JobID == jobID && similarIDs[a.CandidateID] {
			seen[a.CandidateID] = true
		}
	}
	return len(seen)
}

// appliedSet builds the set of job ids the candidate applied to.
func appliedSet(candidateID uuid.UUID, applications []types.Application) map[uuid.UUID]bool {
	set := make(map[uuid.UUID]bool)
	for _, a := range applications {
		if a.CandidateID == candidateID {
			set[a.JobID] = true
		}
	}
	return set
}
