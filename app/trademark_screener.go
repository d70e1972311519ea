package app

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/babumoltbot/saasname/app/models"
)

const trademarkSystemPrompt = `You are a trademark screening assistant. Analyze the given name for potential trademark conflicts in the specified industry. Consider:
- Well-known existing trademarks
- Similar-sounding names in the same space
- Common word combinations that may be registered

Return JSON: { "riskLevel": "clear"|"caution"|"high-risk", "details": "...", "similarMarks": ["..."] }`

// openAITrademarkScreener is a heuristic screen, not a legal guarantee.
type openAITrademarkScreener struct {
	llm *llmClient
}

func (t *openAITrademarkScreener) Screen(ctx context.Context, name, industry string) models.TrademarkResult {
	var result models.TrademarkResult
	err := t.llm.chatJSON(
		ctx,
		trademarkSystemPrompt,
		fmt.Sprintf("Screen the name %q for trademark conflicts in the %s industry.", name, industry),
		0.3,
		&result,
	)
	if err != nil {
		log.Warn().Err(err).Str("name", name).Msg("trademark screen failed")
		return models.TrademarkResult{
			RiskLevel:    models.RiskCaution,
			Details:      "Unable to analyze",
			SimilarMarks: []string{},
		}
	}
	if result.SimilarMarks == nil {
		result.SimilarMarks = []string{}
	}
	return result
}
