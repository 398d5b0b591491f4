package dto

import (
	"time"

	"idx-scalping-sniper/internal/entity"
)

// ErrorResponse represents a generic error response body.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ScreeningResult is one full screening run.
type ScreeningResult struct {
	Candidates []entity.ScoredCandidate
	Scanned    int
	RunAt      time.Time
}

// Top returns at most n leading candidates.
func (r *ScreeningResult) Top(n int) []entity.ScoredCandidate {
	if r == nil || len(r.Candidates) == 0 {
		return []entity.ScoredCandidate{}
	}
	if n > len(r.Candidates) {
		n = len(r.Candidates)
	}
	return r.Candidates[:n]
}

// ScreeningResponse is the body of GET /api/screening.
type ScreeningResponse struct {
	Top10 []entity.ScoredCandidate `json:"top10"`
	Top5  []entity.ScoredCandidate `json:"top5"`
}

// StockAnalysis is the single-stock view: quote, fundamentals and trade plan.
type StockAnalysis struct {
	Stock         entity.Stock          `json:"stock"`
	Strategy      entity.StrategyResult `json:"strategy"`
	RiskReward    float64               `json:"riskReward"`
	HasRiskReward bool                  `json:"hasRiskReward"`
}

// WarrantResponse is the body of GET /api/warrants.
type WarrantResponse struct {
	Warrants []entity.WarrantPairing `json:"warrants"`
	Total    int                     `json:"total"`
}

// SearchResponse is the body of GET /api/search.
type SearchResponse struct {
	Query   string                `json:"query"`
	Results []entity.StockListing `json:"results"`
}

// HealthResponse is the body of GET /api/health.
type HealthResponse struct {
	Status  string `json:"status"`
	Name    string `json:"name"`
	Version string `json:"version"`
}
