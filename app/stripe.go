package app

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"
	"github.com/stripe/stripe-go/v79"

	"github.com/babumoltbot/saasname/app/config"
	"github.com/babumoltbot/saasname/app/models"
)

// InitStripe wires the Stripe API key from the environment.
func InitStripe() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config for stripe")
	}
	stripe.Key = cfg.Stripe.SecretKey
}

// upgradeUserToPro applies the pro tier limits after a completed checkout.
func upgradeUserToPro(ctx context.Context, userID, stripeCustomerID string) error {
	if db == nil {
		return errors.New("db not initialized")
	}
	if userID == "" {
		return errors.New("missing user id")
	}

	pro := models.Tiers[models.TierPro]
	_, err := db.ExecContext(ctx, `
		UPDATE users
		SET tier = $1,
		    generations_limit = $2,
		    names_per_generation = $3,
		    stripe_customer_id = COALESCE(NULLIF($4, ''), stripe_customer_id),
		    updated_at = now()
		WHERE id = $5;
	`, models.TierPro, pro.GenerationsLimit, pro.NamesPerGeneration, stripeCustomerID, userID)
	return err
}

// downgradeUserByStripeCustomer reverts a user to the free tier limits.
func downgradeUserByStripeCustomer(ctx context.Context, stripeCustomerID string) error {
	if db == nil {
		return errors.New("db not initialized")
	}
	if stripeCustomerID == "" {
		return errors.New("missing stripe customer id")
	}

	free := models.Tiers[models.TierFree]
	_, err := db.ExecContext(ctx, `
		UPDATE users
		SET tier = $1,
		    generations_limit = $2,
		    names_per_generation = $3,
		    updated_at = now()
		WHERE stripe_customer_id = $4;
	`, models.TierFree, free.GenerationsLimit, free.NamesPerGeneration, stripeCustomerID)
	return err
}
