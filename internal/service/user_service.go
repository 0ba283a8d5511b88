package service

import (
	"strings"

	"github.com/beyondie2/word-quiz/internal/models"
	"github.com/beyondie2/word-quiz/internal/repository"
)

// VerifiedUser is the response of the name-based login used by the
// classroom user picker.
type VerifiedUser struct {
	UserID   int64    `json:"userId"`
	Username string   `json:"username"`
	IsAdmin  bool     `json:"isAdmin"`
	Books    []string `json:"books"`
}

// UserService serves the classroom user picker: a name list and a
// name-only verification that also returns the available books.
type UserService struct {
	userRepo *repository.UserRepository
	wordRepo *repository.WordRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo *repository.UserRepository, wordRepo *repository.WordRepository) *UserService {
	return &UserService{userRepo: userRepo, wordRepo: wordRepo}
}

// ListUsers returns every account as id/username pairs ordered by username
func (s *UserService) ListUsers() ([]models.BasicUser, error) {
	users, err := s.userRepo.ListBasic()
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []models.BasicUser{}
	}
	return users, nil
}

// VerifyByName looks up an account by username alone. Returns nil when no
// such account exists; the caller reports that without an error status.
func (s *UserService) VerifyByName(username string) (*VerifiedUser, error) {
	user, err := s.userRepo.GetUserByUsername(strings.TrimSpace(username))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}

	books, err := s.wordRepo.GetBookNames()
	if err != nil {
		return nil, err
	}
	if books == nil {
		books = []string{}
	}

	return &VerifiedUser{
		UserID:   user.ID,
		Username: user.Username,
		IsAdmin:  user.IsAdmin,
		Books:    books,
	}, nil
}
