package repository

import (
	"database/sql"

	"flashlearn/internal/database"
	"flashlearn/internal/models"
)

// UserRepository handles user database operations
type UserRepository struct {
	db database.DBTX
}

// NewUserRepository creates a new user repository
func NewUserRepository(db database.DBTX) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a user row and returns it with its assigned ID
func (r *UserRepository) Create(username, email string) (*models.User, error) {
	query := `
		INSERT INTO users (username, email)
		VALUES (?, ?);
	`

	id, err := r.db.ExecReturningID(query, username, email)
	if err != nil {
		return nil, err
	}

	return r.GetByID(id)
}

// GetByID retrieves a user by ID, or nil if not found
func (r *UserRepository) GetByID(id int64) (*models.User, error) {
	query := `
		SELECT id, username, email, created_at
		FROM users
		WHERE id = ?
	`

	user := &models.User{}
	err := r.db.QueryRow(query, id).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return user, nil
}

// GetByUsername retrieves a user by username, or nil if not found
func (r *UserRepository) GetByUsername(username string) (*models.User, error) {
	query := `
		SELECT id, username, email, created_at
		FROM users
		WHERE username = ?
	`

	user := &models.User{}
	err := r.db.QueryRow(query, username).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return user, nil
}

// Delete removes a user and, via foreign keys, their decks, flashcards,
// progress rows and stats
func (r *UserRepository) Delete(id int64) error {
	_, err := r.db.Exec("DELETE FROM users WHERE id = ?", id)
	return err
}
