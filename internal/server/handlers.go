package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/talent-match/internal/behavior"
	"github.com/jonathan/talent-match/internal/collab"
	"github.com/jonathan/talent-match/internal/ranking"
	"github.com/jonathan/talent-match/internal/recommend"
	"github.com/jonathan/talent-match/internal/skills"
	"github.com/jonathan/talent-match/internal/types"
)

const (
	// maxResults caps how many ranked entries a single request returns.
	maxResults = 100

	// candidateFetchLimit and jobFetchLimit bound the profile sets pulled
	// from the store per request.
	candidateFetchLimit = 500
	jobFetchLimit       = 500

	// applicationFetchLimit bounds the application graph read for
	// collaborative filtering.
	applicationFetchLimit = 5000
)

var validate = validator.New()

// MatchRequest is the POST /match payload: one candidate and one job,
// both inline.
type MatchRequest struct {
	Candidate *types.CandidateProfile `json:"candidate" validate:"required"`
	Job       *types.JobPosting       `json:"job" validate:"required"`
}

// handleMatch scores an ad-hoc candidate/job pair without touching the store.
func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	var req MatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}
	if err := validate.Struct(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	result := s.scorer.Score(*req.Candidate, *req.Job)
	s.jsonResponse(w, http.StatusOK, result)
}

// RankedCandidatesResponse is the recruiter-view ranking payload.
type RankedCandidatesResponse struct {
	JobID    uuid.UUID                `json:"job_id"`
	Results  []ranking.CandidateMatch `json:"results"`
	Count    int                      `json:"count"`
	MinScore int                      `json:"min_score"`
}

// handleRankCandidates ranks every applicant of a job against it.
func (s *Server) handleRankCandidates(w http.ResponseWriter, r *http.Request) {
	jobID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid job id")
		return
	}
	minScore := parseQueryInt(r, "min_score", s.minScore, 100)
	limit := parseQueryInt(r, "limit", s.limit, maxResults)

	g, ctx := errgroup.WithContext(r.Context())
	var job *types.JobPosting
	var candidates []types.CandidateProfile
	g.Go(func() error {
		var err error
		job, err = s.store.GetJob(ctx, jobID)
		return err
	})
	g.Go(func() error {
		var err error
		candidates, err = s.store.ListCandidatesForJob(ctx, jobID, candidateFetchLimit)
		return err
	})
	if err := g.Wait(); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if job == nil {
		s.errorResponse(w, http.StatusNotFound, "Job not found")
		return
	}

	results := ranking.RankCandidates(s.scorer, candidates, *job, minScore)
	if len(results) > limit {
		results = results[:limit]
	}

	s.jsonResponse(w, http.StatusOK, RankedCandidatesResponse{
		JobID:    jobID,
		Results:  results,
		Count:    len(results),
		MinScore: minScore,
	})
}

// RankedJobsResponse is the candidate-view ranking payload.
type RankedJobsResponse struct {
	CandidateID uuid.UUID          `json:"candidate_id"`
	Results     []ranking.JobMatch `json:"results"`
	Count       int                `json:"count"`
	MinScore    int                `json:"min_score"`
}

// handleRankJobs ranks active jobs for a candidate.
func (s *Server) handleRankJobs(w http.ResponseWriter, r *http.Request) {
	candidateID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid candidate id")
		return
	}
	minScore := parseQueryInt(r, "min_score", s.minScore, 100)
	limit := parseQueryInt(r, "limit", s.limit, maxResults)

	g, ctx := errgroup.WithContext(r.Context())
	var candidate *types.CandidateProfile
	var jobs []types.JobPosting
	g.Go(func() error {
		var err error
		candidate, err = s.store.GetCandidate(ctx, candidateID)
		return err
	})
	g.Go(func() error {
		var err error
		jobs, err = s.store.ListActiveJobs(ctx, jobFetchLimit)
		return err
	})
	if err := g.Wait(); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if candidate == nil {
		s.errorResponse(w, http.StatusNotFound, "Candidate not found")
		return
	}

	results := ranking.RankJobs(s.scorer, *candidate, jobs, minScore)
	if len(results) > limit {
		results = results[:limit]
	}

	s.jsonResponse(w, http.StatusOK, RankedJobsResponse{
		CandidateID: candidateID,
		Results:     results,
		Count:       len(results),
		MinScore:    minScore,
	})
}

// RecommendationsResponse is the personalized feed payload. The preference
// profile rides along so clients can explain the feed.
type RecommendationsResponse struct {
	CandidateID uuid.UUID                  `json:"candidate_id"`
	Items       []types.RecommendationItem `json:"items"`
	Count       int                        `json:"count"`
	Preferences types.PreferenceProfile    `json:"preferences"`
}

// handleRecommendations assembles the hybrid recommendation feed for a
// candidate. The four store reads are independent and run concurrently.
func (s *Server) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	candidateID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid candidate id")
		return
	}
	minScore := parseQueryInt(r, "min_score", 0, 0)
	limit := parseQueryInt(r, "limit", s.limit, maxResults)
	includeApplied, _ := strconv.ParseBool(r.URL.Query().Get("include_applied"))

	g, ctx := errgroup.WithContext(r.Context())
	var candidate *types.CandidateProfile
	var history []types.AppliedJob
	var applications []types.Application
	var jobs []types.JobPosting
	g.Go(func() error {
		var err error
		candidate, err = s.store.GetCandidate(ctx, candidateID)
		return err
	})
	g.Go(func() error {
		var err error
		history, err = s.store.ListCandidateHistory(ctx, candidateID, behavior.HistoryCap)
		return err
	})
	g.Go(func() error {
		var err error
		applications, err = s.store.ListApplications(ctx, applicationFetchLimit)
		return err
	})
	g.Go(func() error {
		var err error
		jobs, err = s.store.ListActiveJobs(ctx, jobFetchLimit)
		return err
	})
	if err := g.Wait(); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if candidate == nil {
		s.errorResponse(w, http.StatusNotFound, "Candidate not found")
		return
	}

	prefs := behavior.AnalyzeHistory(history, skills.DefaultResolver())
	similar, err := collab.FindSimilarCandidates(candidateID, applications)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Similarity error: "+err.Error())
		return
	}

	items := s.recommender.Recommend(*candidate, prefs, similar, applications, jobs, recommend.Options{
		Limit:          limit,
		MinScore:       minScore,
		IncludeApplied: includeApplied,
	})

	s.jsonResponse(w, http.StatusOK, RecommendationsResponse{
		CandidateID: candidateID,
		Items:       items,
		Count:       len(items),
		Preferences: prefs,
	})
}

// parseQueryInt parses an integer query parameter with a default and an
// optional maximum (0 means uncapped).
func parseQueryInt(r *http.Request, key string, def, max int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return def
	}
	if max > 0 && v > max {
		return max
	}
	return v
}
