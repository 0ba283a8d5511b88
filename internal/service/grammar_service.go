package service

import (
	"errors"
	"log"

	"github.com/beyondie2/word-quiz/internal/models"
	"github.com/beyondie2/word-quiz/internal/quiz"
	"github.com/beyondie2/word-quiz/internal/repository"
)

var ErrQuestionNotFound = errors.New("grammar question not found")

// GrammarCheckInput is one grammar submission
type GrammarCheckInput struct {
	UserID     int64
	QuestionID int64
	Answer     string
	Round      int
}

// GrammarCheckResult always reveals the stored answer; the grammar review
// flow displays it on both outcomes.
type GrammarCheckResult struct {
	IsCorrect     bool   `json:"isCorrect"`
	CorrectAnswer string `json:"correctAnswer"`
}

// GrammarService serves grammar content and judges submissions
type GrammarService struct {
	grammarRepo  *repository.GrammarRepository
	progressRepo *repository.ProgressRepository
}

// NewGrammarService creates a new grammar service
func NewGrammarService(grammarRepo *repository.GrammarRepository, progressRepo *repository.ProgressRepository) *GrammarService {
	return &GrammarService{grammarRepo: grammarRepo, progressRepo: progressRepo}
}

// GetCategories lists top-level categories
func (s *GrammarService) GetCategories() ([]string, error) {
	return s.grammarRepo.GetCategories()
}

// GetSubcategories lists second-level categories
func (s *GrammarService) GetSubcategories(category1 string) ([]string, error) {
	return s.grammarRepo.GetSubcategories(category1)
}

// GetLevels lists the levels of a category pair
func (s *GrammarService) GetLevels(category1, category2 string) ([]string, error) {
	return s.grammarRepo.GetLevels(category1, category2)
}

// GetInstructions lists the instructions within a level
func (s *GrammarService) GetInstructions(category1, category2, level string) ([]string, error) {
	return s.grammarRepo.GetInstructions(category1, category2, level)
}

// GetQuestions retrieves the questions of a fully-qualified scope
func (s *GrammarService) GetQuestions(category1, category2, level, instruction string) ([]models.GrammarQuestion, error) {
	return s.grammarRepo.GetQuestions(category1, category2, level, instruction)
}

// Check judges a grammar submission. The progress insert is best-effort: a
// storage failure is logged but never blocks the judged result.
func (s *GrammarService) Check(in GrammarCheckInput) (*GrammarCheckResult, error) {
	question, err := s.grammarRepo.GetQuestionByID(in.QuestionID)
	if err != nil {
		return nil, err
	}
	if question == nil {
		return nil, ErrQuestionNotFound
	}

	if in.Round <= 0 {
		in.Round = 1
	}

	result := quiz.CheckGrammar(question.Answer, in.Answer)

	progress := &models.GrammarProgress{
		UserID:    in.UserID,
		GrammarID: question.ID,
		Category1: question.Category1,
		Category2: question.Category2,
		Level:     question.Level,
		Round:     in.Round,
		IsCorrect: result.IsCorrect,
	}
	if !result.IsCorrect {
		answer := in.Answer
		progress.WrongAnswer = &answer
	}
	if _, err := s.progressRepo.InsertGrammarProgress(progress); err != nil {
		log.Printf("grammar progress insert failed for user %d: %v", in.UserID, err)
	}

	return &GrammarCheckResult{
		IsCorrect:     result.IsCorrect,
		CorrectAnswer: result.CorrectAnswer,
	}, nil
}
