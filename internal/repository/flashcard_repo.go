package repository

import (
	"database/sql"
	"time"

	"flashlearn/internal/database"
	"flashlearn/internal/models"
)

// FlashcardRepository handles flashcard database operations
type FlashcardRepository struct {
	db database.DBTX
}

// NewFlashcardRepository creates a new flashcard repository
func NewFlashcardRepository(db database.DBTX) *FlashcardRepository {
	return &FlashcardRepository{db: db}
}

// Create inserts a new flashcard into a deck
func (r *FlashcardRepository) Create(card *models.Flashcard) (*models.Flashcard, error) {
	query := `
		INSERT INTO flashcards (deck_id, front_text, back_text)
		VALUES (?, ?, ?);
	`

	id, err := r.db.ExecReturningID(query, card.DeckID, card.FrontText, card.BackText)
	if err != nil {
		return nil, err
	}

	return r.GetByID(id)
}

// GetByID retrieves a flashcard by ID, or nil if not found
func (r *FlashcardRepository) GetByID(id int64) (*models.Flashcard, error) {
	query := `
		SELECT id, deck_id, front_text, back_text, created_at, updated_at
		FROM flashcards
		WHERE id = ?
	`
	return r.scanOne(r.db.QueryRow(query, id))
}

// GetInDeck retrieves a flashcard only if it belongs to the given deck
func (r *FlashcardRepository) GetInDeck(cardID, deckID int64) (*models.Flashcard, error) {
	query := `
		SELECT id, deck_id, front_text, back_text, created_at, updated_at
		FROM flashcards
		WHERE id = ? AND deck_id = ?
	`
	return r.scanOne(r.db.QueryRow(query, cardID, deckID))
}

// GetOwned retrieves a flashcard only if its deck belongs to the given user
func (r *FlashcardRepository) GetOwned(cardID, userID int64) (*models.Flashcard, error) {
	query := `
		SELECT f.id, f.deck_id, f.front_text, f.back_text, f.created_at, f.updated_at
		FROM flashcards f
		JOIN decks d ON d.id = f.deck_id
		WHERE f.id = ? AND d.user_id = ?
	`
	return r.scanOne(r.db.QueryRow(query, cardID, userID))
}

// ListForUser retrieves all flashcards across a user's decks, oldest first
func (r *FlashcardRepository) ListForUser(userID int64) ([]models.Flashcard, error) {
	query := `
		SELECT f.id, f.deck_id, f.front_text, f.back_text, f.created_at, f.updated_at
		FROM flashcards f
		JOIN decks d ON d.id = f.deck_id
		WHERE d.user_id = ?
		ORDER BY f.id ASC
	`

	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cards []models.Flashcard
	for rows.Next() {
		var card models.Flashcard
		err := rows.Scan(
			&card.ID,
			&card.DeckID,
			&card.FrontText,
			&card.BackText,
			&card.CreatedAt,
			&card.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}

	return cards, rows.Err()
}

// Update overwrites the front and back text of a flashcard
func (r *FlashcardRepository) Update(card *models.Flashcard) error {
	query := `
		UPDATE flashcards
		SET front_text = ?, back_text = ?, updated_at = ?
		WHERE id = ?
	`

	_, err := r.db.Exec(query, card.FrontText, card.BackText, time.Now().UTC(), card.ID)
	return err
}

// Delete removes a flashcard and cascades to its progress rows
func (r *FlashcardRepository) Delete(id int64) error {
	_, err := r.db.Exec("DELETE FROM flashcards WHERE id = ?", id)
	return err
}

func (r *FlashcardRepository) scanOne(row *sql.Row) (*models.Flashcard, error) {
	card := &models.Flashcard{}
	err := row.Scan(
		&card.ID,
		&card.DeckID,
		&card.FrontText,
		&card.BackText,
		&card.CreatedAt,
		&card.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return card, nil
}
