package app

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/babumoltbot/saasname/app/models"
)

const nameGeneratorSystemPrompt = `You are a creative startup naming expert. Generate exactly %d unique, brandable SaaS name suggestions. Each name should be:
- Short (1-2 words, max 12 characters)
- Easy to spell and pronounce
- Available as a .com domain (use creative variations)
- Memorable and relevant to the idea

Return JSON: { "names": [{ "name": "...", "tagline": "...", "reasoning": "..." }] }`

type openAINameGenerator struct {
	llm *llmClient
}

// Generate returns at most count candidates. Malformed or empty model output
// yields an empty list; the caller treats that as a failed generation.
func (g *openAINameGenerator) Generate(ctx context.Context, idea string, count int) ([]models.GeneratedName, error) {
	var parsed struct {
		Names []models.GeneratedName `json:"names"`
	}
	err := g.llm.chatJSON(
		ctx,
		fmt.Sprintf(nameGeneratorSystemPrompt, count),
		fmt.Sprintf("Generate %d SaaS name ideas for: %s", count, idea),
		0.9,
		&parsed,
	)
	if err != nil {
		log.Warn().Err(err).Msg("name generation completion failed")
		return nil, nil
	}

	if len(parsed.Names) > count {
		parsed.Names = parsed.Names[:count]
	}
	return parsed.Names, nil
}
