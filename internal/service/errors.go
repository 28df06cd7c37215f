package service

import "errors"

// Engine error taxonomy. Handlers map these to HTTP statuses with errors.Is;
// everything here is recoverable at the service boundary.
var (
	ErrUserNotFound      = errors.New("user not found")
	ErrDeckNotFound      = errors.New("deck not found")
	ErrFlashcardNotFound = errors.New("flashcard not found")
	ErrProgressNotFound  = errors.New("progress not found")

	// ErrInvalidInput wraps validation failures (missing ids, negative time)
	ErrInvalidInput = errors.New("invalid input")

	// ErrConflict marks unique-constraint violations that could not be
	// converted into an update (e.g. duplicate usernames)
	ErrConflict = errors.New("already exists")
)
