// Package app provides user persistence helpers for authenticated requests.
package app

import (
	"context"
	"database/sql"
	"strings"

	"github.com/babumoltbot/saasname/app/models"
	"github.com/babumoltbot/saasname/auth"
)

// UpsertUserFromClaims creates a user row on first sign-in. Users are never
// hard-deleted.
func UpsertUserFromClaims(ctx context.Context, claims *auth.Claims) error {
	if db == nil {
		return nil
	}
	if claims == nil || claims.Subject == "" {
		return nil
	}

	email := readStringClaim(claims.Raw, "email")
	name := readStringClaim(claims.Raw, "name")

	free := models.Tiers[models.TierFree]

	const q = `
		INSERT INTO users (auth_sub, email, name, tier, generations_used, generations_limit, names_per_generation)
		VALUES ($1, $2, $3, $4, 0, $5, $6)
		ON CONFLICT (auth_sub) DO NOTHING;
	`
	_, err := db.ExecContext(
		ctx,
		q,
		claims.Subject,
		nullIfEmpty(email),
		nullIfEmpty(name),
		models.TierFree,
		free.GenerationsLimit,
		free.NamesPerGeneration,
	)
	return err
}

func readStringClaim(raw map[string]any, key string) string {
	if raw == nil {
		return ""
	}
	val, ok := raw[key]
	if !ok {
		return ""
	}
	if s, ok := val.(string); ok {
		return strings.TrimSpace(s)
	}
	return ""
}

func nullIfEmpty(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func getUserBySubject(ctx context.Context, subject string) (models.User, error) {
	var user models.User
	var email, name, stripeID sql.NullString
	err := db.QueryRowContext(ctx, `
		SELECT id, email, name, tier, generations_used, generations_limit, names_per_generation, stripe_customer_id, created_at
		FROM users
		WHERE auth_sub = $1;
	`, subject).Scan(
		&user.ID,
		&email,
		&name,
		&user.Tier,
		&user.GenerationsUsed,
		&user.GenerationsLimit,
		&user.NamesPerGeneration,
		&stripeID,
		&user.CreatedAt,
	)
	if err != nil {
		return models.User{}, err
	}
	user.Subject = subject
	user.Email = email.String
	user.Name = name.String
	user.StripeCustomerID = stripeID.String
	return user, nil
}

// currentUser loads the caller's row, creating it on first request.
func currentUser(ctx context.Context, claims *auth.Claims) (models.User, error) {
	if db == nil {
		// Allow test runs without a backing DB.
		free := models.Tiers[models.TierFree]
		return models.User{
			ID:                 claims.Subject,
			Subject:            claims.Subject,
			Email:              claims.Email,
			Tier:               models.TierFree,
			GenerationsLimit:   free.GenerationsLimit,
			NamesPerGeneration: free.NamesPerGeneration,
		}, nil
	}

	user, err := getUserBySubject(ctx, claims.Subject)
	if err == sql.ErrNoRows {
		if err := UpsertUserFromClaims(ctx, claims); err != nil {
			return models.User{}, err
		}
		user, err = getUserBySubject(ctx, claims.Subject)
	}
	return user, err
}
