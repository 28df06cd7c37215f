package service

import (
	"fmt"
	"time"

	"flashlearn/internal/database"
	"flashlearn/internal/models"
	"flashlearn/internal/repository"
)

// attemptRetryLimit bounds how often a contended attempt transaction is
// retried before the error is surfaced
const attemptRetryLimit = 10

// StudyService is the review scheduler: it records study attempts and
// derives each card's review state and next-due time
type StudyService struct {
	db     *database.DB
	decks  *repository.DeckRepository
	cards  *repository.FlashcardRepository
	stats  *StatsService
	policy ReviewPolicy

	// now is swappable for tests
	now func() time.Time
}

// NewStudyService creates a new study service with the given review policy
func NewStudyService(db *database.DB, stats *StatsService, policy ReviewPolicy) *StudyService {
	return &StudyService{
		db:     db,
		decks:  repository.NewDeckRepository(db),
		cards:  repository.NewFlashcardRepository(db),
		stats:  stats,
		policy: policy,
		now:    time.Now,
	}
}

// RecordAttempt records one study attempt for a flashcard and returns the
// updated progress row. The progress write and the stats recompute commit in
// a single transaction; two concurrent attempts for the same (user, card)
// pair are serialized by a row lock, or by the unique constraint when both
// race to create the first row.
func (s *StudyService) RecordAttempt(userID, deckID, flashcardID int64, wasCorrect bool, timeSpent int) (*models.Progress, error) {
	if userID <= 0 || deckID <= 0 || flashcardID <= 0 {
		return nil, fmt.Errorf("%w: user, deck and flashcard ids are required", ErrInvalidInput)
	}
	if timeSpent < 0 {
		return nil, fmt.Errorf("%w: time spent cannot be negative", ErrInvalidInput)
	}

	// Ownership checks before any write: the deck must belong to the user
	// and the flashcard to the deck
	deck, err := s.decks.GetForUser(deckID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to check deck ownership: %w", err)
	}
	if deck == nil {
		return nil, ErrDeckNotFound
	}

	card, err := s.cards.GetInDeck(flashcardID, deckID)
	if err != nil {
		return nil, fmt.Errorf("failed to check flashcard: %w", err)
	}
	if card == nil {
		return nil, ErrFlashcardNotFound
	}

	var progress *models.Progress
	for attempt := 0; ; attempt++ {
		progress, err = s.recordAttemptTx(userID, deckID, flashcardID, wasCorrect, timeSpent)
		if err == nil {
			return progress, nil
		}

		// A racing first attempt for the same pair inserted before us, or
		// the engine reported writer contention instead of blocking.
		// Retrying reruns the load, which now sees the committed row.
		retryable := s.db.Dialect.IsUniqueViolation(err) || s.db.Dialect.IsLockContention(err)
		if retryable && attempt < attemptRetryLimit {
			time.Sleep(time.Duration(attempt+1) * time.Millisecond)
			continue
		}
		return nil, err
	}
}

// recordAttemptTx performs one load-increment-store cycle in a transaction
func (s *StudyService) recordAttemptTx(userID, deckID, flashcardID int64, wasCorrect bool, timeSpent int) (*models.Progress, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	progressRepo := repository.NewProgressRepository(tx)

	progress, err := progressRepo.GetForUpdate(userID, flashcardID)
	if err != nil {
		return nil, fmt.Errorf("failed to load progress: %w", err)
	}

	created := false
	if progress == nil {
		created = true
		progress = &models.Progress{
			UserID:       userID,
			DeckID:       deckID,
			FlashcardID:  flashcardID,
			ReviewStatus: models.StatusNew,
		}
	}

	now := s.now().UTC()
	progress.StudyCount++
	if wasCorrect {
		progress.CorrectAttempts++
	} else {
		progress.IncorrectAttempts++
	}
	progress.TotalStudyTime += timeSpent
	progress.LastStudiedAt = now

	status, nextReview := s.policy.Evaluate(progress.CorrectAttempts, progress.IncorrectAttempts, now)
	progress.ReviewStatus = status
	progress.NextReviewAt = nextReview
	progress.IsLearned = status == models.StatusMastered

	if created {
		id, err := progressRepo.Insert(progress)
		if err != nil {
			return nil, err
		}
		progress.ID = id
	} else {
		if err := progressRepo.Update(progress); err != nil {
			return nil, fmt.Errorf("failed to update progress: %w", err)
		}
	}

	// Stats ride the same transaction: no window where the attempt is
	// visible but the rollup is stale
	if _, err := s.stats.RecomputeIn(tx, userID); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit attempt: %w", err)
	}

	return progress, nil
}

// ListProgress retrieves a user's progress rows, optionally filtered by deck
// and/or flashcard (zero means no filter)
func (s *StudyService) ListProgress(userID, deckID, flashcardID int64) ([]models.Progress, error) {
	return repository.NewProgressRepository(s.db).ListForUser(userID, deckID, flashcardID)
}

// DeleteProgress removes one progress row by id, owner-checked. The next
// stats read recomputes from the remaining rows.
func (s *StudyService) DeleteProgress(userID, progressID int64) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	progressRepo := repository.NewProgressRepository(tx)

	progress, err := progressRepo.GetByIDForUser(progressID, userID)
	if err != nil {
		return fmt.Errorf("failed to load progress: %w", err)
	}
	if progress == nil {
		return ErrProgressNotFound
	}

	if err := progressRepo.Delete(progressID); err != nil {
		return fmt.Errorf("failed to delete progress: %w", err)
	}

	if _, err := s.stats.RecomputeIn(tx, userID); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit delete: %w", err)
	}

	return nil
}
