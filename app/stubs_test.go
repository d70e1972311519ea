package app

import (
	"context"
	"fmt"
	"sync"

	"github.com/babumoltbot/saasname/app/config"
	"github.com/babumoltbot/saasname/app/models"
)

// Deterministic adapter stubs. Counters let tests assert which adapters a
// flow actually touched.

type stubNameGenerator struct {
	mu    sync.Mutex
	calls int
	names []models.GeneratedName
}

func (s *stubNameGenerator) Generate(ctx context.Context, idea string, count int) ([]models.GeneratedName, error) {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()
	if s.names != nil {
		return s.names, nil
	}
	out := make([]models.GeneratedName, count)
	for i := range out {
		out[i] = models.GeneratedName{
			Name:      fmt.Sprintf("Candidate%d", i+1),
			Tagline:   "A name that works",
			Reasoning: "Short and spellable",
		}
	}
	return out, nil
}

type stubBrandScorer struct {
	score models.BrandScore
}

func (s *stubBrandScorer) Score(ctx context.Context, name, idea string) models.BrandScore {
	return s.score
}

type stubDomainChecker struct {
	mu        sync.Mutex
	calls     int
	available bool
}

func (s *stubDomainChecker) Check(ctx context.Context, name string, tlds []string) []models.DomainResult {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()
	label := DomainLabel(name)
	out := make([]models.DomainResult, len(tlds))
	for i, tld := range tlds {
		out[i] = models.DomainResult{Domain: label + tld, TLD: tld, Available: s.available}
	}
	return out
}

type stubSocialChecker struct {
	mu    sync.Mutex
	calls int
}

func (s *stubSocialChecker) Check(ctx context.Context, name string) []models.SocialResult {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()
	handle := "@" + DomainLabel(name)
	return []models.SocialResult{
		{Platform: "twitter", Handle: handle, Available: true},
		{Platform: "linkedin", Handle: handle, Available: false},
		{Platform: "instagram", Handle: handle, Available: true},
	}
}

type stubTrademarkScreener struct {
	mu    sync.Mutex
	calls int
}

func (s *stubTrademarkScreener) Screen(ctx context.Context, name, industry string) models.TrademarkResult {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()
	return models.TrademarkResult{RiskLevel: models.RiskClear, Details: "No conflicts found", SimilarMarks: []string{}}
}

type stubCompetitorAnalyzer struct {
	mu    sync.Mutex
	calls int
}

func (s *stubCompetitorAnalyzer) Analyze(ctx context.Context, name, industry string) []models.Competitor {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()
	return []models.Competitor{{Name: "SimilarCo", URL: "https://similar.example", Description: "Adjacent product", Similarity: 40}}
}

func goodScore() models.BrandScore {
	return models.BrandScore{
		Overall: 82,
		Breakdown: models.BrandScoreBreakdown{
			Memorability:     85,
			Pronounceability: 90,
			Uniqueness:       70,
			Relevance:        80,
			Length:           85,
		},
		Summary: "Strong, short, memorable",
	}
}

func newTestServices() *Services {
	return &Services{
		Names:       &stubNameGenerator{},
		Scores:      &stubBrandScorer{score: goodScore()},
		Domains:     &stubDomainChecker{available: true},
		Socials:     &stubSocialChecker{},
		Trademarks:  &stubTrademarkScreener{},
		Competitors: &stubCompetitorAnalyzer{},
		Limiter:     NewLimiter(),
		Limits: config.RateLimitConfig{
			GeneratePerMinute:    5,
			ValidatePerMinute:    10,
			CheckDomainPerMinute: 10,
		},
	}
}

func freeUser() models.User {
	free := models.Tiers[models.TierFree]
	return models.User{
		ID:                 "user-1",
		Subject:            "auth|user-1",
		Email:              "founder@example.test",
		Tier:               models.TierFree,
		GenerationsLimit:   free.GenerationsLimit,
		NamesPerGeneration: free.NamesPerGeneration,
	}
}

func proUser() models.User {
	pro := models.Tiers[models.TierPro]
	return models.User{
		ID:                 "user-2",
		Subject:            "auth|user-2",
		Email:              "pro@example.test",
		Tier:               models.TierPro,
		GenerationsLimit:   pro.GenerationsLimit,
		NamesPerGeneration: pro.NamesPerGeneration,
	}
}
