package repository

import (
	"database/sql"
	"fmt"

	"github.com/beyondie2/word-quiz/internal/database"
	"github.com/beyondie2/word-quiz/internal/models"
)

// GrammarRepository handles database operations for grammar content.
// The scope chain is category1 > category2 > level > instruction.
type GrammarRepository struct {
	db *database.DB
}

// NewGrammarRepository creates a new grammar repository
func NewGrammarRepository(db *database.DB) *GrammarRepository {
	return &GrammarRepository{db: db}
}

const grammarColumns = `id, category1, category2, level, instruction, question, answer,
		sentence1, sentence2, sentence3, translation1, translation2, translation3,
		image_file, created_at`

func scanGrammar(rows *sql.Rows) (models.GrammarQuestion, error) {
	var q models.GrammarQuestion
	err := rows.Scan(
		&q.ID, &q.Category1, &q.Category2, &q.Level, &q.Instruction,
		&q.Question, &q.Answer,
		&q.Sentence1, &q.Sentence2, &q.Sentence3,
		&q.Translation1, &q.Translation2, &q.Translation3,
		&q.ImageFile, &q.CreatedAt,
	)
	return q, err
}

// distinctStrings runs a single-column query and collects the results
func (r *GrammarRepository) distinctStrings(query string, args ...interface{}) ([]string, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query grammar scope: %w", err)
	}
	defer rows.Close()

	var values []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("failed to scan scope value: %w", err)
		}
		values = append(values, v)
	}
	return values, rows.Err()
}

// GetCategories lists the distinct top-level categories
func (r *GrammarRepository) GetCategories() ([]string, error) {
	return r.distinctStrings("SELECT DISTINCT category1 FROM grammar_questions ORDER BY category1")
}

// GetSubcategories lists the distinct second-level categories within a category
func (r *GrammarRepository) GetSubcategories(category1 string) ([]string, error) {
	return r.distinctStrings(
		"SELECT DISTINCT category2 FROM grammar_questions WHERE category1 = ? ORDER BY category2",
		category1)
}

// GetLevels lists the distinct levels within a category pair
func (r *GrammarRepository) GetLevels(category1, category2 string) ([]string, error) {
	return r.distinctStrings(
		"SELECT DISTINCT level FROM grammar_questions WHERE category1 = ? AND category2 = ? ORDER BY level",
		category1, category2)
}

// GetInstructions lists the distinct instructions within a level
func (r *GrammarRepository) GetInstructions(category1, category2, level string) ([]string, error) {
	return r.distinctStrings(
		"SELECT DISTINCT instruction FROM grammar_questions WHERE category1 = ? AND category2 = ? AND level = ? ORDER BY instruction",
		category1, category2, level)
}

// GetQuestions retrieves the questions of a fully-qualified scope
func (r *GrammarRepository) GetQuestions(category1, category2, level, instruction string) ([]models.GrammarQuestion, error) {
	query := "SELECT " + grammarColumns + `
		FROM grammar_questions
		WHERE category1 = ? AND category2 = ? AND level = ? AND instruction = ?
		ORDER BY id
	`
	rows, err := r.db.Query(query, category1, category2, level, instruction)
	if err != nil {
		return nil, fmt.Errorf("failed to query grammar questions: %w", err)
	}
	defer rows.Close()

	var questions []models.GrammarQuestion
	for rows.Next() {
		q, err := scanGrammar(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan grammar question: %w", err)
		}
		questions = append(questions, q)
	}
	return questions, rows.Err()
}

// GetQuestionByID retrieves a single question, nil when absent
func (r *GrammarRepository) GetQuestionByID(id int64) (*models.GrammarQuestion, error) {
	query := "SELECT " + grammarColumns + " FROM grammar_questions WHERE id = ?"
	q := &models.GrammarQuestion{}
	err := r.db.QueryRow(query, id).Scan(
		&q.ID, &q.Category1, &q.Category2, &q.Level, &q.Instruction,
		&q.Question, &q.Answer,
		&q.Sentence1, &q.Sentence2, &q.Sentence3,
		&q.Translation1, &q.Translation2, &q.Translation3,
		&q.ImageFile, &q.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get grammar question: %w", err)
	}
	return q, nil
}

// InsertQuestions bulk-inserts grammar rows in one transaction
func (r *GrammarRepository) InsertQuestions(questions []models.GrammarQuestion) (int, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO grammar_questions (category1, category2, level, instruction, question, answer,
			sentence1, sentence2, sentence3, translation1, translation2, translation3, image_file)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	inserted := 0
	for _, q := range questions {
		if _, err := tx.Exec(query,
			q.Category1, q.Category2, q.Level, q.Instruction, q.Question, q.Answer,
			q.Sentence1, q.Sentence2, q.Sentence3,
			q.Translation1, q.Translation2, q.Translation3, q.ImageFile,
		); err != nil {
			return 0, fmt.Errorf("failed to insert grammar question: %w", err)
		}
		inserted++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit grammar questions: %w", err)
	}
	return inserted, nil
}

// GetSummaries aggregates per-category counts for the admin view
func (r *GrammarRepository) GetSummaries() ([]models.GrammarSummary, error) {
	query := `
		SELECT category1, COUNT(DISTINCT category2), COUNT(*)
		FROM grammar_questions
		GROUP BY category1
		ORDER BY category1
	`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query grammar summaries: %w", err)
	}
	defer rows.Close()

	var summaries []models.GrammarSummary
	for rows.Next() {
		var s models.GrammarSummary
		if err := rows.Scan(&s.Category1, &s.Category2Count, &s.QuestionCount); err != nil {
			return nil, fmt.Errorf("failed to scan grammar summary: %w", err)
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}

// DeleteCategory removes every question under a top-level category
func (r *GrammarRepository) DeleteCategory(category1 string) (int64, error) {
	result, err := r.db.Exec("DELETE FROM grammar_questions WHERE category1 = ?", category1)
	if err != nil {
		return 0, fmt.Errorf("failed to delete grammar category: %w", err)
	}
	return result.RowsAffected()
}
