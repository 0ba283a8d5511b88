package service

import (
	"errors"

	"github.com/beyondie2/word-quiz/internal/models"
	"github.com/beyondie2/word-quiz/internal/repository"
)

var ErrSentenceNotFound = errors.New("block sentence not found")

// BlocksResultInput is one block-writing submission outcome reported by the
// client. The client judges block assembly locally; the server records it.
type BlocksResultInput struct {
	UserID         int64
	BlocksID       *int64
	Book           string
	Lesson         string
	SentenceNumber int
	English        string
	Correct        string
	WrongAnswer    *string
	Phase          string
	Round          int
	IsCorrect      bool
}

// BlocksService serves block-writing sentences and records results
type BlocksService struct {
	blocksRepo   *repository.BlocksRepository
	progressRepo *repository.ProgressRepository
}

// NewBlocksService creates a new blocks service
func NewBlocksService(blocksRepo *repository.BlocksRepository, progressRepo *repository.ProgressRepository) *BlocksService {
	return &BlocksService{blocksRepo: blocksRepo, progressRepo: progressRepo}
}

// GetSentences lists all block sentences
func (s *BlocksService) GetSentences() ([]models.BlockSentence, error) {
	return s.blocksRepo.GetSentences()
}

// Upload bulk-inserts block sentences
func (s *BlocksService) Upload(sentences []models.BlockSentence) (int, error) {
	return s.blocksRepo.InsertSentences(sentences)
}

// DeleteSentence removes one block sentence
func (s *BlocksService) DeleteSentence(id int64) error {
	existing, err := s.blocksRepo.GetSentenceByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrSentenceNotFound
	}
	return s.blocksRepo.DeleteSentence(id)
}

// DeleteAll clears the block sentence table
func (s *BlocksService) DeleteAll() (int64, error) {
	return s.blocksRepo.DeleteAllSentences()
}

// RecordResult appends one block-writing progress row. The book/lesson/number
// scope is copied onto the row so the log keeps it after the sentence itself
// is deleted; a missing scope is backfilled from the referenced sentence.
func (s *BlocksService) RecordResult(in BlocksResultInput) (int64, error) {
	if in.Round <= 0 {
		in.Round = 1
	}
	if in.Phase == "" {
		in.Phase = "blocks"
	}
	if in.BlocksID != nil && in.Book == "" && in.Lesson == "" {
		sentence, err := s.blocksRepo.GetSentenceByID(*in.BlocksID)
		if err != nil {
			return 0, err
		}
		if sentence != nil {
			in.Book = sentence.Book
			in.Lesson = sentence.Lesson
			in.SentenceNumber = sentence.SentenceNumber
		}
	}
	progress := &models.BlocksProgress{
		UserID:         in.UserID,
		BlocksID:       in.BlocksID,
		Book:           in.Book,
		Lesson:         in.Lesson,
		SentenceNumber: in.SentenceNumber,
		English:        in.English,
		CorrectAnswer:  in.Correct,
		WrongAnswer:    in.WrongAnswer,
		Phase:          in.Phase,
		Round:          in.Round,
		IsCorrect:      in.IsCorrect,
	}
	return s.progressRepo.InsertBlocksProgress(progress)
}
