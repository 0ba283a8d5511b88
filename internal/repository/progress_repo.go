package repository

import (
	"fmt"
	"time"

	"github.com/beyondie2/word-quiz/internal/database"
	"github.com/beyondie2/word-quiz/internal/models"
)

// ProgressRepository handles the append-only learning logs. Rows are inserted
// once per submission and never updated.
type ProgressRepository struct {
	db *database.DB
}

// NewProgressRepository creates a new progress repository
func NewProgressRepository(db *database.DB) *ProgressRepository {
	return &ProgressRepository{db: db}
}

// InsertWordProgress appends one word-quiz result row
func (r *ProgressRepository) InsertWordProgress(p *models.WordProgress) (int64, error) {
	query := `
		INSERT INTO word_progress (user_id, book_name, unit, english, korean, wrong_answer,
			practice_mode, multi_answer_policy, round, review_count, is_correct)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	id, err := r.db.ExecReturningID(query,
		p.UserID, p.BookName, p.Unit, p.English, p.Korean, p.WrongAnswer,
		p.Mode, p.Policy, p.Round, p.ReviewCount, p.IsCorrect)
	if err != nil {
		return 0, fmt.Errorf("failed to insert word progress: %w", err)
	}
	return id, nil
}

// InsertGrammarProgress appends one grammar result row
func (r *ProgressRepository) InsertGrammarProgress(p *models.GrammarProgress) (int64, error) {
	query := `
		INSERT INTO grammar_progress (user_id, grammar_id, category1, category2, level,
			wrong_answer, round, is_correct)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
	id, err := r.db.ExecReturningID(query,
		p.UserID, p.GrammarID, p.Category1, p.Category2, p.Level,
		p.WrongAnswer, p.Round, p.IsCorrect)
	if err != nil {
		return 0, fmt.Errorf("failed to insert grammar progress: %w", err)
	}
	return id, nil
}

// InsertBlocksProgress appends one block-writing result row. The book, lesson
// and sentence_number scope is copied onto the row so it survives content
// deletion nulling blocks_id.
func (r *ProgressRepository) InsertBlocksProgress(p *models.BlocksProgress) (int64, error) {
	query := `
		INSERT INTO blocks_progress (user_id, blocks_id, book, lesson, sentence_number,
			english, correct_answer, wrong_answer, phase, round, is_correct)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	id, err := r.db.ExecReturningID(query,
		p.UserID, p.BlocksID, p.Book, p.Lesson, p.SentenceNumber,
		p.English, p.CorrectAnswer, p.WrongAnswer, p.Phase, p.Round, p.IsCorrect)
	if err != nil {
		return 0, fmt.Errorf("failed to insert blocks progress: %w", err)
	}
	return id, nil
}

// GetBlocksProgress retrieves a user's block-writing log, newest first
func (r *ProgressRepository) GetBlocksProgress(userID int64) ([]models.BlocksProgress, error) {
	query := `
		SELECT id, user_id, blocks_id, book, lesson, sentence_number,
			english, correct_answer, wrong_answer, phase, round, is_correct, created_at
		FROM blocks_progress
		WHERE user_id = ?
		ORDER BY created_at DESC, id DESC
	`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query blocks progress: %w", err)
	}
	defer rows.Close()

	var records []models.BlocksProgress
	for rows.Next() {
		var p models.BlocksProgress
		if err := rows.Scan(&p.ID, &p.UserID, &p.BlocksID, &p.Book, &p.Lesson,
			&p.SentenceNumber, &p.English, &p.CorrectAnswer, &p.WrongAnswer,
			&p.Phase, &p.Round, &p.IsCorrect, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan blocks progress: %w", err)
		}
		records = append(records, p)
	}
	return records, rows.Err()
}

// GetWordProgress retrieves a user's word-quiz log, newest first, optionally
// bounded by an inclusive date range.
func (r *ProgressRepository) GetWordProgress(userID int64, from, to *time.Time) ([]models.WordProgress, error) {
	query := `
		SELECT p.id, p.user_id, u.username, p.book_name, p.unit, p.english, p.korean,
			p.wrong_answer, p.practice_mode, p.multi_answer_policy, p.round,
			p.review_count, p.is_correct, p.created_at
		FROM word_progress p
		JOIN users u ON u.id = p.user_id
		WHERE p.user_id = ?
	`
	args := []interface{}{userID}
	if from != nil {
		query += " AND p.created_at >= ?"
		args = append(args, *from)
	}
	if to != nil {
		query += " AND p.created_at <= ?"
		args = append(args, *to)
	}
	query += " ORDER BY p.created_at DESC, p.id DESC"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query word progress: %w", err)
	}
	defer rows.Close()

	var records []models.WordProgress
	for rows.Next() {
		var p models.WordProgress
		if err := rows.Scan(&p.ID, &p.UserID, &p.Username, &p.BookName, &p.Unit,
			&p.English, &p.Korean, &p.WrongAnswer, &p.Mode, &p.Policy,
			&p.Round, &p.ReviewCount, &p.IsCorrect, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan word progress: %w", err)
		}
		records = append(records, p)
	}
	return records, rows.Err()
}

// GetGrammarProgress retrieves a user's grammar log, newest first
func (r *ProgressRepository) GetGrammarProgress(userID int64) ([]models.GrammarProgress, error) {
	query := `
		SELECT id, user_id, grammar_id, category1, category2, level,
			wrong_answer, round, is_correct, created_at
		FROM grammar_progress
		WHERE user_id = ?
		ORDER BY created_at DESC, id DESC
	`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query grammar progress: %w", err)
	}
	defer rows.Close()

	var records []models.GrammarProgress
	for rows.Next() {
		var p models.GrammarProgress
		if err := rows.Scan(&p.ID, &p.UserID, &p.GrammarID, &p.Category1, &p.Category2,
			&p.Level, &p.WrongAnswer, &p.Round, &p.IsCorrect, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan grammar progress: %w", err)
		}
		records = append(records, p)
	}
	return records, rows.Err()
}

// GetWrongWords lists the distinct words a user missed within a
// (book, unit, round) scope. A word missed several times appears once.
func (r *ProgressRepository) GetWrongWords(userID int64, bookName, unit string, round int) ([]models.WrongWord, error) {
	query := `
		SELECT MIN(id), english, korean, MIN(wrong_answer)
		FROM word_progress
		WHERE user_id = ? AND book_name = ? AND unit = ? AND round = ? AND is_correct = ?
		GROUP BY english, korean
		ORDER BY MIN(id)
	`
	rows, err := r.db.Query(query, userID, bookName, unit, round, false)
	if err != nil {
		return nil, fmt.Errorf("failed to query wrong words: %w", err)
	}
	defer rows.Close()

	var words []models.WrongWord
	for rows.Next() {
		var w models.WrongWord
		if err := rows.Scan(&w.ID, &w.English, &w.Korean, &w.WrongAnswer); err != nil {
			return nil, fmt.Errorf("failed to scan wrong word: %w", err)
		}
		words = append(words, w)
	}
	return words, rows.Err()
}

// GetNextRound returns the round number a new retry pass over a book/unit
// should use: one past the highest round recorded so far, 1 when none.
func (r *ProgressRepository) GetNextRound(userID int64, bookName, unit string) (int, error) {
	query := `
		SELECT COALESCE(MAX(round), 0)
		FROM word_progress
		WHERE user_id = ? AND book_name = ? AND unit = ?
	`
	var maxRound int
	if err := r.db.QueryRow(query, userID, bookName, unit).Scan(&maxRound); err != nil {
		return 0, fmt.Errorf("failed to query max round: %w", err)
	}
	return maxRound + 1, nil
}

// CountAttempts returns total and correct word-quiz attempts across all users
func (r *ProgressRepository) CountAttempts() (total, correct int, err error) {
	query := "SELECT COUNT(*), COALESCE(SUM(CASE WHEN is_correct THEN 1 ELSE 0 END), 0) FROM word_progress"
	if err := r.db.QueryRow(query).Scan(&total, &correct); err != nil {
		return 0, 0, fmt.Errorf("failed to count attempts: %w", err)
	}
	return total, correct, nil
}

// GetDailyActivity returns per-day attempt counts for the last n days,
// oldest day first. Days with no activity are filled with zero rows.
func (r *ProgressRepository) GetDailyActivity(days int) ([]models.DailyActivity, error) {
	since := time.Now().AddDate(0, 0, -(days - 1)).Truncate(24 * time.Hour)
	query := `
		SELECT created_at, is_correct
		FROM word_progress
		WHERE created_at >= ?
	`
	rows, err := r.db.Query(query, since)
	if err != nil {
		return nil, fmt.Errorf("failed to query daily activity: %w", err)
	}
	defer rows.Close()

	// Bucket in Go rather than SQL; date truncation syntax differs per engine.
	counts := make(map[string]*models.DailyActivity, days)
	order := make([]string, 0, days)
	for i := 0; i < days; i++ {
		day := since.AddDate(0, 0, i).Format("2006-01-02")
		counts[day] = &models.DailyActivity{Date: day}
		order = append(order, day)
	}

	for rows.Next() {
		var createdAt time.Time
		var isCorrect bool
		if err := rows.Scan(&createdAt, &isCorrect); err != nil {
			return nil, fmt.Errorf("failed to scan activity row: %w", err)
		}
		day := createdAt.Format("2006-01-02")
		bucket, ok := counts[day]
		if !ok {
			continue
		}
		bucket.Count++
		if isCorrect {
			bucket.Correct++
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	activity := make([]models.DailyActivity, 0, days)
	for _, day := range order {
		activity = append(activity, *counts[day])
	}
	return activity, nil
}

// GetTopUsers returns the most active users by attempt count
func (r *ProgressRepository) GetTopUsers(limit int) ([]models.UserActivity, error) {
	query := `
		SELECT u.username, COUNT(*), COALESCE(SUM(CASE WHEN p.is_correct THEN 1 ELSE 0 END), 0)
		FROM word_progress p
		JOIN users u ON u.id = p.user_id
		GROUP BY u.username
		ORDER BY COUNT(*) DESC
		LIMIT ?
	`
	rows, err := r.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query top users: %w", err)
	}
	defer rows.Close()

	var users []models.UserActivity
	for rows.Next() {
		var u models.UserActivity
		if err := rows.Scan(&u.Username, &u.TotalAttempts, &u.CorrectCount); err != nil {
			return nil, fmt.Errorf("failed to scan user activity: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}
