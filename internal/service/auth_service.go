package service

import (
	"errors"
	"fmt"

	"github.com/beyondie2/word-quiz/internal/models"
	"github.com/beyondie2/word-quiz/internal/repository"
	"github.com/beyondie2/word-quiz/internal/security"
	"github.com/beyondie2/word-quiz/internal/validation"
)

var (
	ErrUsernameTaken      = errors.New("username already taken")
	ErrEmailTaken         = errors.New("email already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidRefresh     = errors.New("invalid refresh token")
	ErrUserNotFound       = errors.New("user not found")
)

// TokenPair is the access/refresh pair issued on login and refresh
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// AuthService handles registration, login, and the refresh token lifecycle
type AuthService struct {
	userRepo *repository.UserRepository
	tokens   *security.TokenManager
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo *repository.UserRepository, tokens *security.TokenManager) *AuthService {
	return &AuthService{userRepo: userRepo, tokens: tokens}
}

// Register creates a new account. The first registered account becomes admin.
func (s *AuthService) Register(username, email, password string) (*models.User, error) {
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
		return nil, fmt.Errorf("failed to check existing username: %w", err)
	}
	if existing != nil {
		return nil, ErrUsernameTaken
	}

	existing, err = s.userRepo.GetUserByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing email: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	passwordHash, err := security.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	return s.userRepo.CreateUser(username, email, passwordHash)
}

// issueTokens signs a new pair and stores the refresh token, rotating out any
// previous one.
func (s *AuthService) issueTokens(user *models.User) (*TokenPair, error) {
	access, err := s.tokens.GenerateAccessToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}
	refresh, err := s.tokens.GenerateRefreshToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to sign refresh token: %w", err)
	}
	if err := s.userRepo.UpdateRefreshToken(user.ID, refresh); err != nil {
		return nil, err
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// Login verifies credentials and issues a token pair
func (s *AuthService) Login(username, password string) (*models.User, *TokenPair, error) {
	user, err := s.userRepo.GetUserByUsername(username)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil || !security.CheckPassword(user.PasswordHash, password) {
		return nil, nil, ErrInvalidCredentials
	}

	pair, err := s.issueTokens(user)
	if err != nil {
		return nil, nil, err
	}
	return user, pair, nil
}

// Refresh rotates a refresh token: the submitted token must both verify and
// match the one on record, and is replaced by the new pair.
func (s *AuthService) Refresh(refreshToken string) (*models.User, *TokenPair, error) {
	claims, err := s.tokens.VerifyRefreshToken(refreshToken)
	if err != nil {
		return nil, nil, ErrInvalidRefresh
	}

	user, err := s.userRepo.GetUserByID(claims.UserID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil || user.RefreshToken != refreshToken {
		return nil, nil, ErrInvalidRefresh
	}

	pair, err := s.issueTokens(user)
	if err != nil {
		return nil, nil, err
	}
	return user, pair, nil
}

// Logout discards the stored refresh token
func (s *AuthService) Logout(userID int64) error {
	return s.userRepo.UpdateRefreshToken(userID, "")
}

// GetUser retrieves a user by ID
func (s *AuthService) GetUser(userID int64) (*models.User, error) {
	user, err := s.userRepo.GetUserByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// ChangePassword verifies the current password and replaces it. The stored
// refresh token is discarded so other sessions must log in again.
func (s *AuthService) ChangePassword(userID int64, currentPassword, newPassword string) error {
	if err := validation.ValidatePassword(newPassword); err != nil {
		return err
	}

	user, err := s.userRepo.GetUserByID(userID)
	if err != nil {
		return fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return ErrUserNotFound
	}
	if !security.CheckPassword(user.PasswordHash, currentPassword) {
		return ErrInvalidCredentials
	}

	hash, err := security.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if err := s.userRepo.UpdatePassword(userID, hash); err != nil {
		return err
	}
	return s.userRepo.UpdateRefreshToken(userID, "")
}

// GetUserByUsername retrieves a user by username, nil when absent
func (s *AuthService) GetUserByUsername(username string) (*models.User, error) {
	return s.userRepo.GetUserByUsername(username)
}
