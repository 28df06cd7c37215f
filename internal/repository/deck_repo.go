package repository

import (
	"database/sql"
	"time"

	"flashlearn/internal/database"
	"flashlearn/internal/models"
)

// DeckRepository handles deck database operations
type DeckRepository struct {
	db database.DBTX
}

// NewDeckRepository creates a new deck repository
func NewDeckRepository(db database.DBTX) *DeckRepository {
	return &DeckRepository{db: db}
}

// Create inserts a new deck for a user
func (r *DeckRepository) Create(deck *models.Deck) (*models.Deck, error) {
	query := `
		INSERT INTO decks (user_id, title, description, subject, category, difficulty)
		VALUES (?, ?, ?, ?, ?, ?);
	`

	id, err := r.db.ExecReturningID(query,
		deck.UserID, deck.Title, deck.Description, deck.Subject, deck.Category, deck.Difficulty)
	if err != nil {
		return nil, err
	}

	return r.GetByID(id)
}

// GetByID retrieves a deck by ID, or nil if not found
func (r *DeckRepository) GetByID(id int64) (*models.Deck, error) {
	query := `
		SELECT id, user_id, title, description, subject, category, difficulty, created_at, updated_at
		FROM decks
		WHERE id = ?
	`
	return r.scanOne(r.db.QueryRow(query, id))
}

// GetForUser retrieves a deck only if it belongs to the given user
func (r *DeckRepository) GetForUser(deckID, userID int64) (*models.Deck, error) {
	query := `
		SELECT id, user_id, title, description, subject, category, difficulty, created_at, updated_at
		FROM decks
		WHERE id = ? AND user_id = ?
	`
	return r.scanOne(r.db.QueryRow(query, deckID, userID))
}

// ListForUser retrieves all decks owned by a user, oldest first
func (r *DeckRepository) ListForUser(userID int64) ([]models.Deck, error) {
	query := `
		SELECT id, user_id, title, description, subject, category, difficulty, created_at, updated_at
		FROM decks
		WHERE user_id = ?
		ORDER BY id ASC
	`

	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var decks []models.Deck
	for rows.Next() {
		var deck models.Deck
		var description, subject, category sql.NullString
		var difficulty sql.NullInt64

		err := rows.Scan(
			&deck.ID,
			&deck.UserID,
			&deck.Title,
			&description,
			&subject,
			&category,
			&difficulty,
			&deck.CreatedAt,
			&deck.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		deck.Description = description.String
		deck.Subject = subject.String
		deck.Category = category.String
		deck.Difficulty = int(difficulty.Int64)

		decks = append(decks, deck)
	}

	return decks, rows.Err()
}

// Update overwrites the mutable fields of a deck
func (r *DeckRepository) Update(deck *models.Deck) error {
	query := `
		UPDATE decks
		SET title = ?, description = ?, subject = ?, category = ?, difficulty = ?, updated_at = ?
		WHERE id = ?
	`

	_, err := r.db.Exec(query,
		deck.Title, deck.Description, deck.Subject, deck.Category, deck.Difficulty,
		time.Now().UTC(), deck.ID)
	return err
}

// Delete removes a deck and cascades to its flashcards and progress rows
func (r *DeckRepository) Delete(id int64) error {
	_, err := r.db.Exec("DELETE FROM decks WHERE id = ?", id)
	return err
}

func (r *DeckRepository) scanOne(row *sql.Row) (*models.Deck, error) {
	deck := &models.Deck{}
	var description, subject, category sql.NullString
	var difficulty sql.NullInt64

	err := row.Scan(
		&deck.ID,
		&deck.UserID,
		&deck.Title,
		&description,
		&subject,
		&category,
		&difficulty,
		&deck.CreatedAt,
		&deck.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	deck.Description = description.String
	deck.Subject = subject.String
	deck.Category = category.String
	deck.Difficulty = int(difficulty.Int64)

	return deck, nil
}
