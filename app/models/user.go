package models

import "time"

type User struct {
	ID                 string    `db:"id"`
	Subject            string    `db:"auth_sub"`
	Email              string    `db:"email"`
	Name               string    `db:"name"`
	Tier               Tier      `db:"tier"`
	GenerationsUsed    int       `db:"generations_used"`
	GenerationsLimit   int       `db:"generations_limit"`
	NamesPerGeneration int       `db:"names_per_generation"`
	StripeCustomerID   string    `db:"stripe_customer_id"`
	CreatedAt          time.Time `db:"created_at"`
}

// GenerationsRemaining never reports below zero.
func (u User) GenerationsRemaining() int {
	remaining := u.GenerationsLimit - u.GenerationsUsed
	if remaining < 0 {
		return 0
	}
	return remaining
}
