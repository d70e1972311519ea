package app

import (
	"context"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog/log"

	"github.com/babumoltbot/saasname/app/models"
)

const minIdeaLength = 10

// GenerateResult is the successful outcome of one generation request.
type GenerateResult struct {
	GenerationID         string              `json:"generationId"`
	Names                []models.ScoredName `json:"names"`
	GenerationsRemaining int                 `json:"generationsRemaining"`
}

// Generate runs the full generation flow for one idea: validate input,
// rate-limit, check quota, generate candidates, score them concurrently,
// persist the generation and count the quota unit. Success is only reported
// after exactly one counted consumption.
func (s *Services) Generate(ctx context.Context, user models.User, idea string) (GenerateResult, error) {
	idea = strings.TrimSpace(idea)
	if utf8.RuneCountInString(idea) < minIdeaLength {
		return GenerateResult{}, ValidationError{Message: "Please describe your idea in at least 10 characters"}
	}

	if !s.Limiter.Allow("generate:"+user.ID, s.Limits.GeneratePerMinute, time.Minute) {
		return GenerateResult{}, ErrRateLimited
	}

	if user.GenerationsUsed >= user.GenerationsLimit {
		return GenerateResult{}, quotaErrorFor(user)
	}

	policy, err := models.PolicyFor(user.Tier)
	if err != nil {
		return GenerateResult{}, err
	}

	names, err := s.Names.Generate(ctx, idea, policy.NamesPerGeneration)
	if err != nil {
		return GenerateResult{}, err
	}
	if len(names) == 0 {
		return GenerateResult{}, ErrEmptyGeneration
	}

	// Score every candidate concurrently; slots are pre-indexed so no
	// ordering is lost.
	scored := make([]models.ScoredName, len(names))
	var wg sync.WaitGroup
	for i, n := range names {
		wg.Add(1)
		go func(i int, n models.GeneratedName) {
			defer wg.Done()
			scored[i] = models.ScoredName{
				GeneratedName: n,
				BrandScore:    s.Scores.Score(ctx, n.Name, idea),
			}
		}(i, n)
	}
	wg.Wait()

	generationID, err := insertGeneration(ctx, user.ID, idea, scored)
	if err != nil {
		return GenerateResult{}, err
	}

	user, err = consumeGeneration(ctx, user)
	if err != nil {
		return GenerateResult{}, err
	}

	log.Info().
		Str("user_id", user.ID).
		Str("generation_id", generationID).
		Int("names", len(scored)).
		Int("remaining", user.GenerationsRemaining()).
		Msg("generation complete")

	return GenerateResult{
		GenerationID:         generationID,
		Names:                scored,
		GenerationsRemaining: user.GenerationsRemaining(),
	}, nil
}
