package subscription

import "time"

// Status is owned and mutated exclusively by the external billing
// collaborator; this service only reads it.
type Status struct {
	UserID       int       `db:"user_id" json:"user_id"`
	IsSubscribed bool      `db:"is_subscribed" json:"is_subscribed"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}
