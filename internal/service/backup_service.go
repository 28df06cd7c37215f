package service

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"flashlearn/internal/database"
	"flashlearn/internal/models"
)

// BackupData represents the complete database backup structure
type BackupData struct {
	Version    string             `json:"version"`
	ExportedAt time.Time          `json:"exported_at"`
	Users      []models.User      `json:"users"`
	Decks      []models.Deck      `json:"decks"`
	Flashcards []models.Flashcard `json:"flashcards"`
	Progress   []models.Progress  `json:"progress"`
	UserStats  []models.UserStats `json:"user_stats"`
}

// BackupService handles database backup and restore operations
type BackupService struct {
	db *database.DB
}

// NewBackupService creates a new backup service
func NewBackupService(db *database.DB) *BackupService {
	return &BackupService{db: db}
}

// Export creates a complete backup of the database to a file
func (s *BackupService) Export(outputPath string) error {
	log.Println("Starting database export...")

	backup := &BackupData{
		Version:    "1.0",
		ExportedAt: time.Now().UTC(),
	}

	if err := s.exportUsers(backup); err != nil {
		return fmt.Errorf("failed to export users: %w", err)
	}
	if err := s.exportDecks(backup); err != nil {
		return fmt.Errorf("failed to export decks: %w", err)
	}
	if err := s.exportFlashcards(backup); err != nil {
		return fmt.Errorf("failed to export flashcards: %w", err)
	}
	if err := s.exportProgress(backup); err != nil {
		return fmt.Errorf("failed to export progress: %w", err)
	}
	if err := s.exportUserStats(backup); err != nil {
		return fmt.Errorf("failed to export user stats: %w", err)
	}

	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(backup); err != nil {
		return fmt.Errorf("failed to encode backup: %w", err)
	}

	log.Printf("Database exported successfully to %s", outputPath)
	log.Printf("Exported: %d users, %d decks, %d flashcards, %d progress rows, %d stats rows",
		len(backup.Users), len(backup.Decks), len(backup.Flashcards),
		len(backup.Progress), len(backup.UserStats))

	return nil
}

// Import restores a database from a backup file
func (s *BackupService) Import(inputPath string) error {
	log.Printf("Starting database import from %s...", inputPath)

	file, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("failed to open input file: %w", err)
	}
	defer file.Close()

	var backup BackupData
	if err := json.NewDecoder(file).Decode(&backup); err != nil {
		return fmt.Errorf("failed to decode backup: %w", err)
	}

	log.Printf("Backup version: %s, exported at: %s", backup.Version, backup.ExportedAt)

	// Import in order of dependencies
	if err := s.importUsers(backup.Users); err != nil {
		return fmt.Errorf("failed to import users: %w", err)
	}
	if err := s.importDecks(backup.Decks); err != nil {
		return fmt.Errorf("failed to import decks: %w", err)
	}
	if err := s.importFlashcards(backup.Flashcards); err != nil {
		return fmt.Errorf("failed to import flashcards: %w", err)
	}
	if err := s.importProgress(backup.Progress); err != nil {
		return fmt.Errorf("failed to import progress: %w", err)
	}
	if err := s.importUserStats(backup.UserStats); err != nil {
		return fmt.Errorf("failed to import user stats: %w", err)
	}

	log.Println("Database import completed successfully")
	return nil
}

func (s *BackupService) exportUsers(backup *BackupData) error {
	rows, err := s.db.Query("SELECT id, username, email, created_at FROM users ORDER BY id")
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.CreatedAt); err != nil {
			return err
		}
		backup.Users = append(backup.Users, u)
	}
	return rows.Err()
}

func (s *BackupService) exportDecks(backup *BackupData) error {
	query := `
		SELECT id, user_id, title, COALESCE(description, ''), COALESCE(subject, ''),
			COALESCE(category, ''), COALESCE(difficulty, 0), created_at, updated_at
		FROM decks ORDER BY id
	`
	rows, err := s.db.Query(query)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var d models.Deck
		if err := rows.Scan(&d.ID, &d.UserID, &d.Title, &d.Description, &d.Subject,
			&d.Category, &d.Difficulty, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return err
		}
		backup.Decks = append(backup.Decks, d)
	}
	return rows.Err()
}

func (s *BackupService) exportFlashcards(backup *BackupData) error {
	query := "SELECT id, deck_id, front_text, back_text, created_at, updated_at FROM flashcards ORDER BY id"
	rows, err := s.db.Query(query)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var f models.Flashcard
		if err := rows.Scan(&f.ID, &f.DeckID, &f.FrontText, &f.BackText, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return err
		}
		backup.Flashcards = append(backup.Flashcards, f)
	}
	return rows.Err()
}

func (s *BackupService) exportProgress(backup *BackupData) error {
	query := `
		SELECT id, user_id, deck_id, flashcard_id, study_count, correct_attempts,
			incorrect_attempts, total_study_time, last_studied_at, next_review_at,
			review_status, is_learned
		FROM progress ORDER BY id
	`
	rows, err := s.db.Query(query)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var p models.Progress
		var lastStudiedAt, nextReviewAt sql.NullTime
		var status string
		if err := rows.Scan(&p.ID, &p.UserID, &p.DeckID, &p.FlashcardID, &p.StudyCount,
			&p.CorrectAttempts, &p.IncorrectAttempts, &p.TotalStudyTime,
			&lastStudiedAt, &nextReviewAt, &status, &p.IsLearned); err != nil {
			return err
		}
		if lastStudiedAt.Valid {
			p.LastStudiedAt = lastStudiedAt.Time
		}
		if nextReviewAt.Valid {
			p.NextReviewAt = nextReviewAt.Time
		}
		p.ReviewStatus = models.ReviewStatus(status)
		backup.Progress = append(backup.Progress, p)
	}
	return rows.Err()
}

func (s *BackupService) exportUserStats(backup *BackupData) error {
	query := `
		SELECT id, user_id, weekly_goal, mastery_level, study_streak, focus_score,
			retention_rate, cards_mastered, minutes_per_day, accuracy
		FROM user_stats ORDER BY id
	`
	rows, err := s.db.Query(query)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var st models.UserStats
		if err := rows.Scan(&st.ID, &st.UserID, &st.WeeklyGoal, &st.MasteryLevel,
			&st.StudyStreak, &st.FocusScore, &st.RetentionRate, &st.CardsMastered,
			&st.MinutesPerDay, &st.Accuracy); err != nil {
			return err
		}
		backup.UserStats = append(backup.UserStats, st)
	}
	return rows.Err()
}

func (s *BackupService) importUsers(users []models.User) error {
	log.Printf("Importing %d users...", len(users))
	for _, u := range users {
		query := "INSERT INTO users (id, username, email, created_at) VALUES (?, ?, ?, ?)"
		if _, err := s.db.Exec(query, u.ID, u.Username, u.Email, u.CreatedAt); err != nil {
			return fmt.Errorf("failed to import user %d: %w", u.ID, err)
		}
	}
	return nil
}

func (s *BackupService) importDecks(decks []models.Deck) error {
	log.Printf("Importing %d decks...", len(decks))
	for _, d := range decks {
		query := `
			INSERT INTO decks (id, user_id, title, description, subject, category, difficulty, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		`
		if _, err := s.db.Exec(query, d.ID, d.UserID, d.Title, d.Description, d.Subject,
			d.Category, d.Difficulty, d.CreatedAt, d.UpdatedAt); err != nil {
			return fmt.Errorf("failed to import deck %d: %w", d.ID, err)
		}
	}
	return nil
}

func (s *BackupService) importFlashcards(cards []models.Flashcard) error {
	log.Printf("Importing %d flashcards...", len(cards))
	for _, f := range cards {
		query := `
			INSERT INTO flashcards (id, deck_id, front_text, back_text, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?)
		`
		if _, err := s.db.Exec(query, f.ID, f.DeckID, f.FrontText, f.BackText, f.CreatedAt, f.UpdatedAt); err != nil {
			return fmt.Errorf("failed to import flashcard %d: %w", f.ID, err)
		}
	}
	return nil
}

func (s *BackupService) importProgress(entries []models.Progress) error {
	log.Printf("Importing %d progress rows...", len(entries))
	for _, p := range entries {
		query := `
			INSERT INTO progress (id, user_id, deck_id, flashcard_id, study_count,
				correct_attempts, incorrect_attempts, total_study_time,
				last_studied_at, next_review_at, review_status, is_learned)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`
		if _, err := s.db.Exec(query, p.ID, p.UserID, p.DeckID, p.FlashcardID,
			p.StudyCount, p.CorrectAttempts, p.IncorrectAttempts, p.TotalStudyTime,
			p.LastStudiedAt, p.NextReviewAt, string(p.ReviewStatus), p.IsLearned); err != nil {
			return fmt.Errorf("failed to import progress %d: %w", p.ID, err)
		}
	}
	return nil
}

func (s *BackupService) importUserStats(stats []models.UserStats) error {
	log.Printf("Importing %d stats rows...", len(stats))
	for _, st := range stats {
		query := `
			INSERT INTO user_stats (id, user_id, weekly_goal, mastery_level, study_streak,
				focus_score, retention_rate, cards_mastered, minutes_per_day, accuracy)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`
		if _, err := s.db.Exec(query, st.ID, st.UserID, st.WeeklyGoal, st.MasteryLevel,
			st.StudyStreak, st.FocusScore, st.RetentionRate, st.CardsMastered,
			st.MinutesPerDay, st.Accuracy); err != nil {
			return fmt.Errorf("failed to import user stats %d: %w", st.ID, err)
		}
	}
	return nil
}
