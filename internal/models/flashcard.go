package models

import (
	"errors"
	"time"
)

// Flashcard is a single front/back card belonging to a deck
type Flashcard struct {
	ID        int64     `json:"id"`
	DeckID    int64     `json:"deck_id"`
	FrontText string    `json:"front_text"`
	BackText  string    `json:"back_text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Validate checks flashcard fields before persistence
func (f *Flashcard) Validate() error {
	if f.FrontText == "" || f.BackText == "" {
		return errors.New("front and back text are required")
	}
	return nil
}
