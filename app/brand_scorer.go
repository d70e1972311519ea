package app

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/babumoltbot/saasname/app/models"
)

const brandScorerSystemPrompt = `You are a brand naming expert. Score the given name on a 0-100 scale across these dimensions:
- memorability: How easy is it to remember?
- pronounceability: How easy is it to say out loud?
- uniqueness: How distinctive is it?
- relevance: How well does it relate to the product idea?
- length: Score based on ideal length (shorter is generally better, 4-8 chars ideal)

Compute an overall score (weighted average). Provide a brief summary.

Return JSON: { "overall": 0-100, "breakdown": { "memorability": 0-100, "pronounceability": 0-100, "uniqueness": 0-100, "relevance": 0-100, "length": 0-100 }, "summary": "..." }`

type openAIBrandScorer struct {
	llm *llmClient
}

// Score never fails the request: malformed output degrades to a neutral
// midpoint score on every dimension.
func (s *openAIBrandScorer) Score(ctx context.Context, name, idea string) models.BrandScore {
	var score models.BrandScore
	err := s.llm.chatJSON(
		ctx,
		brandScorerSystemPrompt,
		fmt.Sprintf("Score the brand name %q for a product described as: %s", name, idea),
		0.4,
		&score,
	)
	if err != nil {
		log.Warn().Err(err).Str("name", name).Msg("brand scoring failed, using neutral score")
		return neutralBrandScore()
	}
	return score
}

func neutralBrandScore() models.BrandScore {
	return models.BrandScore{
		Overall: 50,
		Breakdown: models.BrandScoreBreakdown{
			Memorability:     50,
			Pronounceability: 50,
			Uniqueness:       50,
			Relevance:        50,
			Length:           50,
		},
		Summary: "Unable to score",
	}
}
