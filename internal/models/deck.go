package models

import (
	"errors"
	"time"
)

// Deck is a user-owned collection of flashcards
type Deck struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Subject     string    `json:"subject"`
	Category    string    `json:"category"`
	Difficulty  int       `json:"difficulty"` // 1-5
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Validate checks deck fields before persistence
func (d *Deck) Validate() error {
	if d.Title == "" {
		return errors.New("deck title is required")
	}
	if d.Difficulty < 1 || d.Difficulty > 5 {
		return errors.New("deck difficulty must be between 1 and 5")
	}
	return nil
}
