package repository

import (
	"database/sql"
	"fmt"

	"github.com/beyondie2/word-quiz/internal/database"
	"github.com/beyondie2/word-quiz/internal/models"
)

// BlocksRepository handles database operations for block-writing sentences
type BlocksRepository struct {
	db *database.DB
}

// NewBlocksRepository creates a new blocks repository
func NewBlocksRepository(db *database.DB) *BlocksRepository {
	return &BlocksRepository{db: db}
}

// GetSentences retrieves all block sentences in book/lesson/number order
func (r *BlocksRepository) GetSentences() ([]models.BlockSentence, error) {
	query := `
		SELECT id, book, lesson, sentence_number, english, korean_blocks, korean_full, created_at
		FROM block_sentences
		ORDER BY book, lesson, sentence_number, id
	`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query block sentences: %w", err)
	}
	defer rows.Close()

	var sentences []models.BlockSentence
	for rows.Next() {
		var s models.BlockSentence
		if err := rows.Scan(&s.ID, &s.Book, &s.Lesson, &s.SentenceNumber,
			&s.English, &s.KoreanBlocks, &s.KoreanFull, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan block sentence: %w", err)
		}
		sentences = append(sentences, s)
	}
	return sentences, rows.Err()
}

// GetSentenceByID retrieves a single block sentence, nil when absent
func (r *BlocksRepository) GetSentenceByID(id int64) (*models.BlockSentence, error) {
	query := `
		SELECT id, book, lesson, sentence_number, english, korean_blocks, korean_full, created_at
		FROM block_sentences
		WHERE id = ?
	`
	s := &models.BlockSentence{}
	err := r.db.QueryRow(query, id).Scan(&s.ID, &s.Book, &s.Lesson, &s.SentenceNumber,
		&s.English, &s.KoreanBlocks, &s.KoreanFull, &s.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get block sentence: %w", err)
	}
	return s, nil
}

// InsertSentences bulk-inserts block sentences in one transaction
func (r *BlocksRepository) InsertSentences(sentences []models.BlockSentence) (int, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO block_sentences (book, lesson, sentence_number, english, korean_blocks, korean_full)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	inserted := 0
	for _, s := range sentences {
		if _, err := tx.Exec(query, s.Book, s.Lesson, s.SentenceNumber,
			s.English, s.KoreanBlocks, s.KoreanFull); err != nil {
			return 0, fmt.Errorf("failed to insert block sentence: %w", err)
		}
		inserted++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit block sentences: %w", err)
	}
	return inserted, nil
}

// DeleteSentence removes one block sentence
func (r *BlocksRepository) DeleteSentence(id int64) error {
	if _, err := r.db.Exec("DELETE FROM block_sentences WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete block sentence: %w", err)
	}
	return nil
}

// DeleteAllSentences clears the block sentence table, returning the row count
func (r *BlocksRepository) DeleteAllSentences() (int64, error) {
	result, err := r.db.Exec("DELETE FROM block_sentences")
	if err != nil {
		return 0, fmt.Errorf("failed to delete block sentences: %w", err)
	}
	return result.RowsAffected()
}
