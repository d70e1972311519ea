package app

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/babumoltbot/saasname/app/models"
)

const defaultIndustry = "technology"

// ValidateResult carries whichever checks the tier unlocked; locked checks
// stay nil and are flagged in TierLocked.
type ValidateResult struct {
	ID          string                  `json:"id"`
	Name        string                  `json:"name"`
	Domains     []models.DomainResult   `json:"domains"`
	Socials     []models.SocialResult   `json:"socials"`
	Trademark   *models.TrademarkResult `json:"trademark"`
	Competitors []models.Competitor     `json:"competitors"`
	TierLocked  models.TierLocked       `json:"tierLocked"`
}

// Validate fans out the tier-unlocked checks for one candidate name,
// persists the computed subset and reports which checks were tier-locked.
func (s *Services) Validate(ctx context.Context, user models.User, name, generationID, industry string) (ValidateResult, error) {
	if name == "" || generationID == "" {
		return ValidateResult{}, ValidationError{Message: "Name and generationId required"}
	}
	if industry == "" {
		industry = defaultIndustry
	}

	if !s.Limiter.Allow("validate:"+user.ID, s.Limits.ValidatePerMinute, time.Minute) {
		return ValidateResult{}, ErrRateLimited
	}

	policy, err := models.PolicyFor(user.Tier)
	if err != nil {
		return ValidateResult{}, err
	}

	result := ValidateResult{
		Name: name,
		TierLocked: models.TierLocked{
			SocialHandles:      !policy.Features.SocialHandles,
			TrademarkScreening: !policy.Features.TrademarkScreening,
			CompetitorAnalysis: !policy.Features.CompetitorAnalysis,
		},
	}

	// Domains are always checked; the gated checks join the same batch
	// only when the tier unlocks them.
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		result.Domains = s.Domains.Check(ctx, name, policy.TLDs)
	}()

	if policy.Features.SocialHandles {
		wg.Add(1)
		go func() {
			defer wg.Done()
			result.Socials = s.Socials.Check(ctx, name)
		}()
	}
	if policy.Features.TrademarkScreening {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tm := s.Trademarks.Screen(ctx, name, industry)
			result.Trademark = &tm
		}()
	}
	if policy.Features.CompetitorAnalysis {
		wg.Add(1)
		go func() {
			defer wg.Done()
			result.Competitors = s.Competitors.Analyze(ctx, name, industry)
		}()
	}
	wg.Wait()

	id, err := insertValidation(ctx, models.Validation{
		GenerationID: generationID,
		Name:         name,
		Domains:      result.Domains,
		Socials:      result.Socials,
		Trademark:    result.Trademark,
		Competitors:  result.Competitors,
	})
	if err != nil {
		return ValidateResult{}, err
	}
	result.ID = id

	log.Info().
		Str("user_id", user.ID).
		Str("generation_id", generationID).
		Str("name", name).
		Msg("validation complete")

	return result, nil
}

// CheckDomain is the single-TLD, cache-backed variant. Tier eligibility is
// checked before any lookup; only live-checked results reach the cache.
func (s *Services) CheckDomain(ctx context.Context, user models.User, name, tld string) (models.DomainCheck, error) {
	if name == "" || tld == "" {
		return models.DomainCheck{}, ValidationError{Message: "name and tld required"}
	}
	if DomainLabel(name) == "" {
		return models.DomainCheck{}, ValidationError{Message: "name must contain letters or digits"}
	}

	if !s.Limiter.Allow("check-domain:"+user.ID, s.Limits.CheckDomainPerMinute, time.Minute) {
		return models.DomainCheck{}, ErrRateLimited
	}

	policy, err := models.PolicyFor(user.Tier)
	if err != nil {
		return models.DomainCheck{}, err
	}
	if !policy.AllowsTLD(tld) {
		return models.DomainCheck{}, ErrTLDNotInTier
	}

	results := s.Domains.Check(ctx, name, []string{tld})
	return upsertDomainCheck(ctx, results[0].Domain, results[0].Available)
}

// CachedDomainChecks reads previously recorded rows for every TLD in the
// caller's tier. No live lookups.
func (s *Services) CachedDomainChecks(ctx context.Context, user models.User, name string) ([]models.DomainCheck, error) {
	if name == "" {
		return nil, ValidationError{Message: "name is required"}
	}

	policy, err := models.PolicyFor(user.Tier)
	if err != nil {
		return nil, err
	}

	label := DomainLabel(name)
	domains := make([]string, len(policy.TLDs))
	for i, tld := range policy.TLDs {
		domains[i] = label + tld
	}

	return readDomainChecks(ctx, domains)
}
