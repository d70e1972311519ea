package models

import "time"

type DomainResult struct {
	Domain    string `json:"domain"`
	TLD       string `json:"tld"`
	Available bool   `json:"available"`
}

type SocialResult struct {
	Platform  string `json:"platform"`
	Handle    string `json:"handle"`
	Available bool   `json:"available"`
}

// Trademark risk levels, in increasing order of concern.
const (
	RiskClear    = "clear"
	RiskCaution  = "caution"
	RiskHighRisk = "high-risk"
)

type TrademarkResult struct {
	RiskLevel    string   `json:"riskLevel"`
	Details      string   `json:"details"`
	SimilarMarks []string `json:"similarMarks"`
}

type Competitor struct {
	Name        string `json:"name"`
	URL         string `json:"url"`
	Description string `json:"description"`
	Similarity  int    `json:"similarity"` // 0-100
}

// TierLocked marks checks that were skipped because the caller's tier does
// not include them, so the UI can render an upgrade prompt instead of an error.
type TierLocked struct {
	SocialHandles      bool `json:"socialHandles"`
	TrademarkScreening bool `json:"trademarkScreening"`
	CompetitorAnalysis bool `json:"competitorAnalysis"`
}

// Validation is one validation run for one candidate name. Checks the tier
// did not unlock are nil. Immutable after creation.
type Validation struct {
	ID           string           `json:"id"`
	GenerationID string           `json:"generationId"`
	Name         string           `json:"name"`
	Domains      []DomainResult   `json:"domains"`
	Socials      []SocialResult   `json:"socials,omitempty"`
	Trademark    *TrademarkResult `json:"trademark,omitempty"`
	Competitors  []Competitor     `json:"competitors,omitempty"`
	CreatedAt    time.Time        `json:"createdAt"`
}

// DomainCheck is one cached availability row, shared across users.
type DomainCheck struct {
	Domain    string    `json:"domain"`
	Available bool      `json:"available"`
	CheckedAt time.Time `json:"checkedAt"`
}
