// Package app enforces generation quotas for authenticated users.
package app

import (
	"context"
	"database/sql"

	"github.com/babumoltbot/saasname/app/models"
)

// consumeGeneration counts one quota unit for the user and returns the
// updated counters. The guarded UPDATE means a successful call consumed
// exactly one unit; a user at their limit gets a QuotaError instead.
func consumeGeneration(ctx context.Context, user models.User) (models.User, error) {
	if db == nil {
		// Allow test runs without a backing DB.
		if user.GenerationsUsed >= user.GenerationsLimit {
			return user, quotaErrorFor(user)
		}
		user.GenerationsUsed++
		return user, nil
	}

	const q = `
		UPDATE users
		SET generations_used = generations_used + 1, updated_at = now()
		WHERE id = $1 AND generations_used < generations_limit
		RETURNING generations_used, generations_limit;
	`
	row := db.QueryRowContext(ctx, q, user.ID)
	if err := row.Scan(&user.GenerationsUsed, &user.GenerationsLimit); err != nil {
		if err == sql.ErrNoRows {
			// No row matched: the quota was exhausted, possibly by a
			// concurrent request that won the race.
			return user, quotaErrorFor(user)
		}
		return user, err
	}
	return user, nil
}

func quotaErrorFor(user models.User) QuotaError {
	return QuotaError{
		Limit:   user.GenerationsLimit,
		Used:    user.GenerationsUsed,
		Upgrade: user.Tier == models.TierFree,
	}
}
