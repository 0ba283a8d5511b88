package service

import (
	"errors"
	"fmt"

	"github.com/beyondie2/word-quiz/internal/models"
	"github.com/beyondie2/word-quiz/internal/quiz"
	"github.com/beyondie2/word-quiz/internal/repository"
)

var ErrWordNotFound = errors.New("word not found")

// WordCheckInput is one word-quiz submission
type WordCheckInput struct {
	UserID      int64
	WordID      int64
	Answer      string
	Direction   quiz.Direction
	Policy      quiz.Policy
	Round       int
	ReviewCount int
}

// WordCheckResult is the judged outcome. CorrectAnswer is nil when the
// submission was correct; the client only reveals the answer on a miss.
type WordCheckResult struct {
	IsCorrect     bool    `json:"isCorrect"`
	CorrectAnswer *string `json:"correctAnswer"`
}

// QuizService judges word-quiz submissions and appends their progress rows
type QuizService struct {
	wordRepo     *repository.WordRepository
	progressRepo *repository.ProgressRepository
}

// NewQuizService creates a new quiz service
func NewQuizService(wordRepo *repository.WordRepository, progressRepo *repository.ProgressRepository) *QuizService {
	return &QuizService{wordRepo: wordRepo, progressRepo: progressRepo}
}

// CheckWord judges a submission and appends one progress row, correct or not.
// Defaults: round 1, any-of policy.
func (s *QuizService) CheckWord(in WordCheckInput) (*WordCheckResult, error) {
	word, err := s.wordRepo.GetWordByID(in.WordID)
	if err != nil {
		return nil, err
	}
	if word == nil {
		return nil, ErrWordNotFound
	}

	if in.Round <= 0 {
		in.Round = 1
	}
	if in.Policy == "" {
		in.Policy = quiz.PolicyAny
	}

	result := quiz.CheckWord(word, in.Answer, in.Direction, in.Policy)

	progress := &models.WordProgress{
		UserID:      in.UserID,
		BookName:    word.BookName,
		Unit:        word.Unit,
		English:     word.English,
		Korean:      word.Korean,
		Mode:        string(in.Direction),
		Policy:      string(in.Policy),
		Round:       in.Round,
		ReviewCount: in.ReviewCount,
		IsCorrect:   result.IsCorrect,
	}
	if !result.IsCorrect {
		answer := in.Answer
		progress.WrongAnswer = &answer
	}
	if _, err := s.progressRepo.InsertWordProgress(progress); err != nil {
		return nil, fmt.Errorf("failed to record progress: %w", err)
	}

	out := &WordCheckResult{IsCorrect: result.IsCorrect}
	if !result.IsCorrect {
		out.CorrectAnswer = &result.CorrectAnswer
	}
	return out, nil
}

// GetBookNames lists the available books
func (s *QuizService) GetBookNames() ([]string, error) {
	return s.wordRepo.GetBookNames()
}

// GetUnits lists the units of a book
func (s *QuizService) GetUnits(bookName string) ([]string, error) {
	return s.wordRepo.GetUnits(bookName)
}

// GetWords retrieves the words of a book/unit
func (s *QuizService) GetWords(bookName, unit string) ([]models.Word, error) {
	return s.wordRepo.GetWords(bookName, unit)
}
