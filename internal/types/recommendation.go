package types

// Recommendation source constants.
const (
	SourceContentBased  = "content-based"
	SourceCollaborative = "collaborative"
	SourceHybrid        = "hybrid"
	SourceTrending      = "trending"
)

// ScoreBreakdown exposes the three fused score components separately so
// callers can inspect (or re-normalize) them. Invariant:
// Total == Content + Collaborative + Recency.
type ScoreBreakdown struct {
	Content       int `json:"content"`
	Collaborative int `json:"collaborative"`
	Recency       int `json:"recency"`
	Total         int `json:"total"`
}

// RecommendationItem is a single ranked, explained job recommendation.
type RecommendationItem struct {
	Job       JobPosting     `json:"job"`
	Score     ScoreBreakdown `json:"score_breakdown"`
	MatchTier string         `json:"match_tier,omitempty"`
	Reasons   []string       `json:"reasons,omitempty"`
	Source    string         `json:"source"`
}
