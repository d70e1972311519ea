package app

import "errors"

// ErrRateLimited is returned when a user's per-minute window is exhausted.
var ErrRateLimited = errors.New("rate limit exceeded")

// ErrTLDNotInTier is returned when a requested TLD sits outside the
// caller's tier.
var ErrTLDNotInTier = errors.New("tld not included in tier")

// ErrEmptyGeneration is returned when the name generator produced nothing
// usable. There is nothing to score or persist, so the request fails.
var ErrEmptyGeneration = errors.New("name generation returned no candidates")

// ValidationError marks bad caller input. Never retried.
type ValidationError struct {
	Message string
}

func (e ValidationError) Error() string { return e.Message }

// QuotaError is returned when a user has consumed their generation quota.
// Upgrade is set when moving to a paid tier would raise the limit.
type QuotaError struct {
	Limit   int
	Used    int
	Upgrade bool
}

func (e QuotaError) Error() string { return "generation limit reached" }
