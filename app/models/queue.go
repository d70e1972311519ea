package models

// InterestMessage is published to SQS when a user asks to hear about a
// locked feature.
type InterestMessage struct {
	UserID  string `json:"user_id"`
	Email   string `json:"email,omitempty"`
	Feature string `json:"feature"`
}
