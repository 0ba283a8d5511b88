package service

import (
	"time"

	"github.com/beyondie2/word-quiz/internal/models"
	"github.com/beyondie2/word-quiz/internal/quiz"
	"github.com/beyondie2/word-quiz/internal/repository"
)

// ProgressReport combines a user's word-quiz log with its summary statistics
type ProgressReport struct {
	Records []models.WordProgress `json:"records"`
	Stats   quiz.Stats            `json:"stats"`
}

// ProgressService reads and appends the learning logs
type ProgressService struct {
	progressRepo *repository.ProgressRepository
}

// NewProgressService creates a new progress service
func NewProgressService(progressRepo *repository.ProgressRepository) *ProgressService {
	return &ProgressService{progressRepo: progressRepo}
}

// GetReport retrieves a user's word-quiz log, newest first, with aggregate
// stats computed over the same filtered slice.
func (s *ProgressService) GetReport(userID int64, from, to *time.Time) (*ProgressReport, error) {
	records, err := s.progressRepo.GetWordProgress(userID, from, to)
	if err != nil {
		return nil, err
	}
	report := &ProgressReport{
		Records: records,
		Stats:   quiz.Aggregate(records),
	}
	if report.Records == nil {
		report.Records = []models.WordProgress{}
	}
	return report, nil
}

// Append writes one word-quiz progress row supplied directly by the client.
// Used by drill flows that judge answers locally.
func (s *ProgressService) Append(p *models.WordProgress) (int64, error) {
	if p.Round <= 0 {
		p.Round = 1
	}
	return s.progressRepo.InsertWordProgress(p)
}

// GetWrongWords lists the distinct missed words of a (book, unit, round) scope
func (s *ProgressService) GetWrongWords(userID int64, bookName, unit string, round int) ([]models.WrongWord, error) {
	words, err := s.progressRepo.GetWrongWords(userID, bookName, unit, round)
	if err != nil {
		return nil, err
	}
	if words == nil {
		words = []models.WrongWord{}
	}
	return words, nil
}

// NextRound returns the round number a fresh retry pass should record under
func (s *ProgressService) NextRound(userID int64, bookName, unit string) (int, error) {
	return s.progressRepo.GetNextRound(userID, bookName, unit)
}

// GetGrammarLog retrieves a user's grammar progress, newest first
func (s *ProgressService) GetGrammarLog(userID int64) ([]models.GrammarProgress, error) {
	records, err := s.progressRepo.GetGrammarProgress(userID)
	if err != nil {
		return nil, err
	}
	if records == nil {
		records = []models.GrammarProgress{}
	}
	return records, nil
}

// GetBlocksLog retrieves a user's block-writing progress, newest first
func (s *ProgressService) GetBlocksLog(userID int64) ([]models.BlocksProgress, error) {
	records, err := s.progressRepo.GetBlocksProgress(userID)
	if err != nil {
		return nil, err
	}
	if records == nil {
		records = []models.BlocksProgress{}
	}
	return records, nil
}
