package models

import "time"

// User is the identity anchor that decks and progress rows hang off.
// Credentials are not stored here; callers arrive with a signed opaque id.
type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
