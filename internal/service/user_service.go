package service

import (
	"fmt"
	"strings"

	"flashlearn/internal/database"
	"flashlearn/internal/models"
	"flashlearn/internal/repository"
)

// UserService resolves and provisions user identities. Credentials and
// login flows live outside this system; a user row is just the anchor that
// decks and progress reference.
type UserService struct {
	db    *database.DB
	users *repository.UserRepository
}

// NewUserService creates a new user service
func NewUserService(db *database.DB) *UserService {
	return &UserService{db: db, users: repository.NewUserRepository(db)}
}

// GetUser retrieves a user by id
func (s *UserService) GetUser(userID int64) (*models.User, error) {
	user, err := s.users.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// GetByUsername retrieves a user by username
func (s *UserService) GetByUsername(username string) (*models.User, error) {
	user, err := s.users.GetByUsername(username)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// Provision creates a user row for a new identity. Usernames are 3-50
// characters and emails are stored lowercase, matching the upstream
// account system's normalization.
func (s *UserService) Provision(username, email string) (*models.User, error) {
	if len(username) < 3 || len(username) > 50 {
		return nil, fmt.Errorf("%w: username must be between 3 and 50 characters", ErrInvalidInput)
	}
	if !strings.Contains(email, "@") {
		return nil, fmt.Errorf("%w: invalid email format", ErrInvalidInput)
	}

	user, err := s.users.Create(username, strings.ToLower(email))
	if err != nil {
		if s.db.Dialect.IsUniqueViolation(err) {
			return nil, fmt.Errorf("%w: username or email already taken", ErrConflict)
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}
