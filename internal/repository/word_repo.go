package repository

import (
	"database/sql"
	"fmt"

	"github.com/beyondie2/word-quiz/internal/database"
	"github.com/beyondie2/word-quiz/internal/models"
)

// WordRepository handles database operations for vocabulary content
type WordRepository struct {
	db *database.DB
}

// NewWordRepository creates a new word repository
func NewWordRepository(db *database.DB) *WordRepository {
	return &WordRepository{db: db}
}

// GetBookNames lists the distinct book names
func (r *WordRepository) GetBookNames() ([]string, error) {
	rows, err := r.db.Query("SELECT DISTINCT book_name FROM words ORDER BY book_name")
	if err != nil {
		return nil, fmt.Errorf("failed to query book names: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan book name: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// GetUnits lists the distinct units within a book
func (r *WordRepository) GetUnits(bookName string) ([]string, error) {
	query := "SELECT DISTINCT unit FROM words WHERE book_name = ? ORDER BY unit"
	rows, err := r.db.Query(query, bookName)
	if err != nil {
		return nil, fmt.Errorf("failed to query units: %w", err)
	}
	defer rows.Close()

	var units []string
	for rows.Next() {
		var unit string
		if err := rows.Scan(&unit); err != nil {
			return nil, fmt.Errorf("failed to scan unit: %w", err)
		}
		units = append(units, unit)
	}
	return units, rows.Err()
}

// GetWords retrieves the words of a book/unit in insertion order
func (r *WordRepository) GetWords(bookName, unit string) ([]models.Word, error) {
	query := `
		SELECT id, book_name, unit, english, korean, example, created_at
		FROM words
		WHERE book_name = ? AND unit = ?
		ORDER BY id
	`
	rows, err := r.db.Query(query, bookName, unit)
	if err != nil {
		return nil, fmt.Errorf("failed to query words: %w", err)
	}
	defer rows.Close()

	var words []models.Word
	for rows.Next() {
		var w models.Word
		if err := rows.Scan(&w.ID, &w.BookName, &w.Unit, &w.English, &w.Korean, &w.Example, &w.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan word: %w", err)
		}
		words = append(words, w)
	}
	return words, rows.Err()
}

// GetWordByID retrieves a single word, nil when absent
func (r *WordRepository) GetWordByID(id int64) (*models.Word, error) {
	query := `
		SELECT id, book_name, unit, english, korean, example, created_at
		FROM words
		WHERE id = ?
	`
	w := &models.Word{}
	err := r.db.QueryRow(query, id).Scan(&w.ID, &w.BookName, &w.Unit, &w.English, &w.Korean, &w.Example, &w.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get word: %w", err)
	}
	return w, nil
}

// InsertWords bulk-inserts vocabulary rows in one transaction
func (r *WordRepository) InsertWords(words []models.Word) (int, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO words (book_name, unit, english, korean, example)
		VALUES (?, ?, ?, ?, ?)
	`
	inserted := 0
	for _, w := range words {
		if _, err := tx.Exec(query, w.BookName, w.Unit, w.English, w.Korean, w.Example); err != nil {
			return 0, fmt.Errorf("failed to insert word %q: %w", w.English, err)
		}
		inserted++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit words: %w", err)
	}
	return inserted, nil
}

// CountWords returns the total number of vocabulary rows
func (r *WordRepository) CountWords() (int, error) {
	var count int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM words").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count words: %w", err)
	}
	return count, nil
}

// GetBookSummaries aggregates unit and word counts per book
func (r *WordRepository) GetBookSummaries() ([]models.BookSummary, error) {
	query := `
		SELECT book_name, COUNT(DISTINCT unit), COUNT(*)
		FROM words
		GROUP BY book_name
		ORDER BY book_name
	`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query book summaries: %w", err)
	}
	defer rows.Close()

	var summaries []models.BookSummary
	for rows.Next() {
		var s models.BookSummary
		if err := rows.Scan(&s.BookName, &s.UnitCount, &s.WordCount); err != nil {
			return nil, fmt.Errorf("failed to scan book summary: %w", err)
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}

// DeleteBook removes every word of a book, returning the row count
func (r *WordRepository) DeleteBook(bookName string) (int64, error) {
	result, err := r.db.Exec("DELETE FROM words WHERE book_name = ?", bookName)
	if err != nil {
		return 0, fmt.Errorf("failed to delete book: %w", err)
	}
	return result.RowsAffected()
}
