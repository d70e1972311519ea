package app

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/babumoltbot/saasname/app/models"
)

const competitorSystemPrompt = `You are a competitive landscape analyst. Find companies or products with similar names in the specified industry. Focus on:
- Direct name matches or very similar names
- Companies in the same or adjacent spaces
- Rate similarity 0-100

Return JSON: { "competitors": [{ "name": "...", "url": "...", "description": "...", "similarity": 0-100 }] }
Return an empty array if no similar competitors found.`

type openAICompetitorAnalyzer struct {
	llm *llmClient
}

// Analyze may legitimately return an empty list.
func (a *openAICompetitorAnalyzer) Analyze(ctx context.Context, name, industry string) []models.Competitor {
	var parsed struct {
		Competitors []models.Competitor `json:"competitors"`
	}
	err := a.llm.chatJSON(
		ctx,
		competitorSystemPrompt,
		fmt.Sprintf("Find competitors with names similar to %q in the %s industry.", name, industry),
		0.3,
		&parsed,
	)
	if err != nil {
		log.Warn().Err(err).Str("name", name).Msg("competitor analysis failed")
		return []models.Competitor{}
	}
	if parsed.Competitors == nil {
		return []models.Competitor{}
	}
	return parsed.Competitors
}
