package repository

import (
	"database/sql"

	"flashlearn/internal/database"
	"flashlearn/internal/models"
)

// ProgressRepository handles progress database operations
type ProgressRepository struct {
	db database.DBTX
}

// NewProgressRepository creates a new progress repository
func NewProgressRepository(db database.DBTX) *ProgressRepository {
	return &ProgressRepository{db: db}
}

const progressColumns = `
	id, user_id, deck_id, flashcard_id, study_count, correct_attempts,
	incorrect_attempts, total_study_time, last_studied_at, next_review_at,
	review_status, is_learned
`

// Get retrieves the progress row for a (user, flashcard) pair, or nil
func (r *ProgressRepository) Get(userID, flashcardID int64) (*models.Progress, error) {
	query := `
		SELECT ` + progressColumns + `
		FROM progress
		WHERE user_id = ? AND flashcard_id = ?
	`
	return r.scanOne(r.db.QueryRow(query, userID, flashcardID))
}

// GetForUpdate retrieves the progress row for a (user, flashcard) pair with a
// row-level write lock where the dialect supports one. Must run inside a
// transaction; concurrent writers to the same pair block until commit.
func (r *ProgressRepository) GetForUpdate(userID, flashcardID int64) (*models.Progress, error) {
	query := `
		SELECT ` + progressColumns + `
		FROM progress
		WHERE user_id = ? AND flashcard_id = ?` + r.db.GetDialect().LockingClause()
	return r.scanOne(r.db.QueryRow(query, userID, flashcardID))
}

// GetByIDForUser retrieves a progress row by primary key, owner-checked
func (r *ProgressRepository) GetByIDForUser(id, userID int64) (*models.Progress, error) {
	query := `
		SELECT ` + progressColumns + `
		FROM progress
		WHERE id = ? AND user_id = ?
	`
	return r.scanOne(r.db.QueryRow(query, id, userID))
}

// Insert persists a fully-populated progress row and returns its ID.
// A racing insert for the same (user, flashcard) pair surfaces as a
// unique-constraint violation; callers detect it via Dialect.IsUniqueViolation.
func (r *ProgressRepository) Insert(p *models.Progress) (int64, error) {
	query := `
		INSERT INTO progress (user_id, deck_id, flashcard_id, study_count,
			correct_attempts, incorrect_attempts, total_study_time,
			last_studied_at, next_review_at, review_status, is_learned)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
	`

	return r.db.ExecReturningID(query,
		p.UserID, p.DeckID, p.FlashcardID, p.StudyCount,
		p.CorrectAttempts, p.IncorrectAttempts, p.TotalStudyTime,
		p.LastStudiedAt, p.NextReviewAt, string(p.ReviewStatus), p.IsLearned)
}

// Update overwrites the study state of an existing progress row
func (r *ProgressRepository) Update(p *models.Progress) error {
	query := `
		UPDATE progress
		SET study_count = ?, correct_attempts = ?, incorrect_attempts = ?,
			total_study_time = ?, last_studied_at = ?, next_review_at = ?,
			review_status = ?, is_learned = ?
		WHERE id = ?
	`

	_, err := r.db.Exec(query,
		p.StudyCount, p.CorrectAttempts, p.IncorrectAttempts,
		p.TotalStudyTime, p.LastStudiedAt, p.NextReviewAt,
		string(p.ReviewStatus), p.IsLearned, p.ID)
	return err
}

// ListForUser retrieves a user's progress rows. Zero deckID/flashcardID
// arguments mean "no filter". Rows come back in insertion order.
func (r *ProgressRepository) ListForUser(userID, deckID, flashcardID int64) ([]models.Progress, error) {
	query := `
		SELECT ` + progressColumns + `
		FROM progress
		WHERE user_id = ?
	`
	args := []interface{}{userID}

	if deckID != 0 {
		query += " AND deck_id = ?"
		args = append(args, deckID)
	}
	if flashcardID != 0 {
		query += " AND flashcard_id = ?"
		args = append(args, flashcardID)
	}
	query += " ORDER BY id ASC"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.Progress
	for rows.Next() {
		p, err := scanProgress(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *p)
	}

	return entries, rows.Err()
}

// Delete removes a progress row by primary key
func (r *ProgressRepository) Delete(id int64) error {
	_, err := r.db.Exec("DELETE FROM progress WHERE id = ?", id)
	return err
}

// UserTotals holds the aggregates the stats recompute is derived from
type UserTotals struct {
	TotalCorrect   int
	TotalAttempts  int
	TotalStudyTime int
	CardsMastered  int
}

// GetUserTotals sums attempt counters across all of a user's progress rows
func (r *ProgressRepository) GetUserTotals(userID int64) (*UserTotals, error) {
	query := `
		SELECT
			COALESCE(SUM(correct_attempts), 0),
			COALESCE(SUM(study_count), 0),
			COALESCE(SUM(total_study_time), 0),
			COALESCE(SUM(CASE WHEN review_status = 'mastered' THEN 1 ELSE 0 END), 0)
		FROM progress
		WHERE user_id = ?
	`

	totals := &UserTotals{}
	err := r.db.QueryRow(query, userID).Scan(
		&totals.TotalCorrect,
		&totals.TotalAttempts,
		&totals.TotalStudyTime,
		&totals.CardsMastered,
	)
	if err != nil {
		return nil, err
	}

	return totals, nil
}

// DeckStudyCount is the per-deck rollup used by the dashboard
type DeckStudyCount struct {
	DeckID     int64
	DeckTitle  string
	StudyCount int
}

// GetDeckStudyCounts returns, for every deck the user owns in insertion
// order, the total study_count across that deck's progress rows. Decks with
// no progress appear with a zero count.
func (r *ProgressRepository) GetDeckStudyCounts(userID int64) ([]DeckStudyCount, error) {
	query := `
		SELECT d.id, d.title, COALESCE(SUM(p.study_count), 0)
		FROM decks d
		LEFT JOIN progress p ON p.deck_id = d.id AND p.user_id = d.user_id
		WHERE d.user_id = ?
		GROUP BY d.id, d.title
		ORDER BY d.id ASC
	`

	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []DeckStudyCount
	for rows.Next() {
		var c DeckStudyCount
		if err := rows.Scan(&c.DeckID, &c.DeckTitle, &c.StudyCount); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}

	return counts, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *ProgressRepository) scanOne(row *sql.Row) (*models.Progress, error) {
	p, err := scanProgress(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func scanProgress(row rowScanner) (*models.Progress, error) {
	p := &models.Progress{}
	var lastStudiedAt, nextReviewAt sql.NullTime
	var status string

	err := row.Scan(
		&p.ID,
		&p.UserID,
		&p.DeckID,
		&p.FlashcardID,
		&p.StudyCount,
		&p.CorrectAttempts,
		&p.IncorrectAttempts,
		&p.TotalStudyTime,
		&lastStudiedAt,
		&nextReviewAt,
		&status,
		&p.IsLearned,
	)
	if err != nil {
		return nil, err
	}

	if lastStudiedAt.Valid {
		p.LastStudiedAt = lastStudiedAt.Time
	}
	if nextReviewAt.Valid {
		p.NextReviewAt = nextReviewAt.Time
	}
	p.ReviewStatus = models.ReviewStatus(status)

	return p, nil
}
