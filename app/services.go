package app

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/babumoltbot/saasname/app/config"
	"github.com/babumoltbot/saasname/app/models"
)

// Each external capability sits behind a narrow interface so the
// orchestrators can fan them out uniformly and tests can swap in stubs.

type NameGenerator interface {
	Generate(ctx context.Context, idea string, count int) ([]models.GeneratedName, error)
}

type BrandScorer interface {
	Score(ctx context.Context, name, idea string) models.BrandScore
}

type DomainChecker interface {
	Check(ctx context.Context, name string, tlds []string) []models.DomainResult
}

type SocialChecker interface {
	Check(ctx context.Context, name string) []models.SocialResult
}

type TrademarkScreener interface {
	Screen(ctx context.Context, name, industry string) models.TrademarkResult
}

type CompetitorAnalyzer interface {
	Analyze(ctx context.Context, name, industry string) []models.Competitor
}

// Services bundles the capability adapters, the rate limiter and the
// configured limits consumed by the orchestrators.
type Services struct {
	Names       NameGenerator
	Scores      BrandScorer
	Domains     DomainChecker
	Socials     SocialChecker
	Trademarks  TrademarkScreener
	Competitors CompetitorAnalyzer
	Limiter     *Limiter
	Limits      config.RateLimitConfig
}

var svc *Services

// MustInitServices wires the real adapters. Tests assign svc directly.
func MustInitServices() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	svc = NewServices(cfg)
}

// NewServices builds the production adapter set from config.
func NewServices(cfg *config.Config) *Services {
	llm := newLLMClient(cfg.OpenAI)
	return &Services{
		Names:       &openAINameGenerator{llm: llm},
		Scores:      &openAIBrandScorer{llm: llm},
		Domains:     &rdapDomainChecker{},
		Socials:     &profileSocialChecker{},
		Trademarks:  &openAITrademarkScreener{llm: llm},
		Competitors: &openAICompetitorAnalyzer{llm: llm},
		Limiter:     NewLimiter(),
		Limits:      cfg.Limits,
	}
}
