package service

import (
	"errors"
	"fmt"
	"io"

	"github.com/beyondie2/word-quiz/internal/excel"
	"github.com/beyondie2/word-quiz/internal/models"
	"github.com/beyondie2/word-quiz/internal/quiz"
	"github.com/beyondie2/word-quiz/internal/repository"
	"github.com/beyondie2/word-quiz/internal/security"
	"github.com/beyondie2/word-quiz/internal/validation"
)

var ErrSelfDemotion = errors.New("cannot change your own admin access")

// UploadSummary reports the outcome of a content upload
type UploadSummary struct {
	Inserted  int      `json:"insertedCount"`
	Skipped   int      `json:"skippedCount"`
	TotalRows int      `json:"totalRows"`
	Errors    []string `json:"errors,omitempty"`
}

// SiteStats is the admin dashboard summary
type SiteStats struct {
	TotalUsers     int                    `json:"totalUsers"`
	TotalWords     int                    `json:"totalWords"`
	TotalAttempts  int                    `json:"totalAttempts"`
	CorrectCount   int                    `json:"correctCount"`
	TodayCount     int                    `json:"todayCount"`
	Accuracy       int                    `json:"accuracy"`
	WeeklyActivity []models.DailyActivity `json:"weeklyActivity"`
	TopUsers       []models.UserActivity  `json:"topUsers"`
}

// AdminService handles user management, site statistics, and content uploads
type AdminService struct {
	userRepo     *repository.UserRepository
	wordRepo     *repository.WordRepository
	grammarRepo  *repository.GrammarRepository
	blocksRepo   *repository.BlocksRepository
	progressRepo *repository.ProgressRepository
}

// NewAdminService creates a new admin service
func NewAdminService(
	userRepo *repository.UserRepository,
	wordRepo *repository.WordRepository,
	grammarRepo *repository.GrammarRepository,
	blocksRepo *repository.BlocksRepository,
	progressRepo *repository.ProgressRepository,
) *AdminService {
	return &AdminService{
		userRepo:     userRepo,
		wordRepo:     wordRepo,
		grammarRepo:  grammarRepo,
		blocksRepo:   blocksRepo,
		progressRepo: progressRepo,
	}
}

// CreateUser registers an account on a user's behalf. Unlike self-service
// registration the first-user admin rule still applies via the repository.
func (s *AdminService) CreateUser(username, email, password string) (*models.User, error) {
	if err := validation.ValidateUsername(username); err != nil {
		return nil, err
	}
	if err := validation.ValidateEmail(email); err != nil {
		return nil, err
	}
	if err := validation.ValidatePassword(password); err != nil {
		return nil, err
	}

	existing, err := s.userRepo.GetUserByUsername(username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUsernameTaken
	}
	existing, err = s.userRepo.GetUserByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := security.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	return s.userRepo.CreateUser(username, email, hash)
}

// ListUsers returns every account in public shape
func (s *AdminService) ListUsers() ([]models.PublicUser, error) {
	users, err := s.userRepo.GetAllUsers()
	if err != nil {
		return nil, err
	}
	public := make([]models.PublicUser, 0, len(users))
	for i := range users {
		public = append(public, users[i].Public())
	}
	return public, nil
}

// ToggleAdmin flips another user's admin flag. Admins cannot change their
// own; another admin must do it.
func (s *AdminService) ToggleAdmin(actorID, userID int64) (bool, error) {
	if actorID == userID {
		return false, ErrSelfDemotion
	}
	user, err := s.userRepo.GetUserByID(userID)
	if err != nil {
		return false, err
	}
	if user == nil {
		return false, ErrUserNotFound
	}
	if err := s.userRepo.SetAdmin(userID, !user.IsAdmin); err != nil {
		return false, err
	}
	return !user.IsAdmin, nil
}

// DeleteUser removes an account and its progress
func (s *AdminService) DeleteUser(actorID, userID int64) error {
	if actorID == userID {
		return fmt.Errorf("cannot delete your own account")
	}
	user, err := s.userRepo.GetUserByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	return s.userRepo.DeleteUser(userID)
}

// GetStats builds the admin dashboard summary
func (s *AdminService) GetStats() (*SiteStats, error) {
	totalUsers, err := s.userRepo.CountUsers()
	if err != nil {
		return nil, err
	}
	totalWords, err := s.wordRepo.CountWords()
	if err != nil {
		return nil, err
	}
	total, correct, err := s.progressRepo.CountAttempts()
	if err != nil {
		return nil, err
	}
	weekly, err := s.progressRepo.GetDailyActivity(7)
	if err != nil {
		return nil, err
	}
	topUsers, err := s.progressRepo.GetTopUsers(10)
	if err != nil {
		return nil, err
	}
	if topUsers == nil {
		topUsers = []models.UserActivity{}
	}

	stats := &SiteStats{
		TotalUsers:     totalUsers,
		TotalWords:     totalWords,
		TotalAttempts:  total,
		CorrectCount:   correct,
		WeeklyActivity: weekly,
		TopUsers:       topUsers,
	}
	// The weekly series ends on today
	if len(weekly) > 0 {
		stats.TodayCount = weekly[len(weekly)-1].Count
	}
	stats.Accuracy = quiz.Ratio(correct, total)
	return stats, nil
}

// UploadWords parses a vocabulary workbook and inserts its rows
func (s *AdminService) UploadWords(file io.Reader) (*UploadSummary, error) {
	words, result, err := excel.ParseWords(file)
	if err != nil {
		return nil, err
	}

	inserted := 0
	if len(words) > 0 {
		inserted, err = s.wordRepo.InsertWords(words)
		if err != nil {
			return nil, err
		}
	}

	return &UploadSummary{
		Inserted:  inserted,
		Skipped:   result.Skipped,
		TotalRows: result.TotalRows,
		Errors:    result.Errors,
	}, nil
}

// UploadGrammar parses a grammar workbook and inserts its rows
func (s *AdminService) UploadGrammar(file io.Reader) (*UploadSummary, error) {
	questions, result, err := excel.ParseGrammar(file)
	if err != nil {
		return nil, err
	}

	inserted := 0
	if len(questions) > 0 {
		inserted, err = s.grammarRepo.InsertQuestions(questions)
		if err != nil {
			return nil, err
		}
	}

	return &UploadSummary{
		Inserted:  inserted,
		Skipped:   result.Skipped,
		TotalRows: result.TotalRows,
		Errors:    result.Errors,
	}, nil
}

// UploadBlocks parses a block-sentence workbook and inserts its rows
func (s *AdminService) UploadBlocks(file io.Reader) (*UploadSummary, error) {
	sentences, result, err := excel.ParseBlocks(file)
	if err != nil {
		return nil, err
	}

	inserted := 0
	if len(sentences) > 0 {
		inserted, err = s.blocksRepo.InsertSentences(sentences)
		if err != nil {
			return nil, err
		}
	}

	return &UploadSummary{
		Inserted:  inserted,
		Skipped:   result.Skipped,
		TotalRows: result.TotalRows,
		Errors:    result.Errors,
	}, nil
}

// GetBookSummaries lists per-book content counts
func (s *AdminService) GetBookSummaries() ([]models.BookSummary, error) {
	summaries, err := s.wordRepo.GetBookSummaries()
	if err != nil {
		return nil, err
	}
	if summaries == nil {
		summaries = []models.BookSummary{}
	}
	return summaries, nil
}

// DeleteBook removes a book's vocabulary, returning the row count
func (s *AdminService) DeleteBook(bookName string) (int64, error) {
	return s.wordRepo.DeleteBook(bookName)
}

// GetGrammarSummaries lists per-category question counts
func (s *AdminService) GetGrammarSummaries() ([]models.GrammarSummary, error) {
	summaries, err := s.grammarRepo.GetSummaries()
	if err != nil {
		return nil, err
	}
	if summaries == nil {
		summaries = []models.GrammarSummary{}
	}
	return summaries, nil
}

// DeleteGrammarCategory removes a top-level category, returning the row count
func (s *AdminService) DeleteGrammarCategory(category1 string) (int64, error) {
	return s.grammarRepo.DeleteCategory(category1)
}
