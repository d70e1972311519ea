package models

import "time"

// GeneratedName is one raw candidate from the name generator.
type GeneratedName struct {
	Name      string `json:"name"`
	Tagline   string `json:"tagline"`
	Reasoning string `json:"reasoning"`
}

// BrandScoreBreakdown covers the five fixed scoring dimensions, each 0-100.
type BrandScoreBreakdown struct {
	Memorability     int `json:"memorability"`
	Pronounceability int `json:"pronounceability"`
	Uniqueness       int `json:"uniqueness"`
	Relevance        int `json:"relevance"`
	Length           int `json:"length"`
}

type BrandScore struct {
	Overall   int                 `json:"overall"`
	Breakdown BrandScoreBreakdown `json:"breakdown"`
	Summary   string              `json:"summary"`
}

// ScoredName is a candidate name with its brand score, as persisted in the
// generation row's names array.
type ScoredName struct {
	GeneratedName
	BrandScore BrandScore `json:"brandScore"`
}

// Generation is one idea submission and its resulting candidates.
// Immutable after creation.
type Generation struct {
	ID        string       `json:"id"`
	UserID    string       `json:"userId"`
	IdeaText  string       `json:"ideaText"`
	Names     []ScoredName `json:"names"`
	CreatedAt time.Time    `json:"createdAt"`
}
