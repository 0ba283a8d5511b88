package handlers

import (
	"errors"
	"net/http"

	"github.com/beyondie2/word-quiz/internal/service"
)

// AuthHandler serves the authentication endpoints
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register handles POST /api/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body", "", err)
		return
	}

	user, err := h.authService.Register(req.Username, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUsernameTaken), errors.Is(err, service.ErrEmailTaken):
			respondWithError(w, http.StatusConflict, err.Error(), "", nil)
		default:
			respondWithError(w, http.StatusBadRequest, err.Error(), "registration failed", err)
		}
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{"user": user.Public()})
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body", "", err)
		return
	}

	user, pair, err := h.authService.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			respondWithError(w, http.StatusUnauthorized, "invalid username or password", "", nil)
			return
		}
		respondWithError(w, http.StatusInternalServerError, "login failed", "login error", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"user":         user.Public(),
		"accessToken":  pair.AccessToken,
		"refreshToken": pair.RefreshToken,
	})
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// Refresh handles POST /api/auth/refresh. The submitted token is rotated out.
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body", "", err)
		return
	}
	if req.RefreshToken == "" {
		respondWithError(w, http.StatusBadRequest, "refreshToken is required", "", nil)
		return
	}

	user, pair, err := h.authService.Refresh(req.RefreshToken)
	if err != nil {
		if errors.Is(err, service.ErrInvalidRefresh) {
			respondWithError(w, http.StatusUnauthorized, "invalid refresh token", "", nil)
			return
		}
		respondWithError(w, http.StatusInternalServerError, "token refresh failed", "refresh error", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"user":         user.Public(),
		"accessToken":  pair.AccessToken,
		"refreshToken": pair.RefreshToken,
	})
}

// Me handles GET /api/auth/me
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	claims := GetClaimsFromContext(r.Context())

	user, err := h.authService.GetUser(claims.UserID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			respondWithError(w, http.StatusNotFound, "user not found", "", nil)
			return
		}
		respondWithError(w, http.StatusInternalServerError, "failed to load user", "me error", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"user": user.Public()})
}

// Logout handles POST /api/auth/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	claims := GetClaimsFromContext(r.Context())

	if err := h.authService.Logout(claims.UserID); err != nil {
		respondWithError(w, http.StatusInternalServerError, "logout failed", "logout error", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// ChangePassword handles PUT /api/auth/change-password
func (h *AuthHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	claims := GetClaimsFromContext(r.Context())

	var req changePasswordRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body", "", err)
		return
	}

	err := h.authService.ChangePassword(claims.UserID, req.CurrentPassword, req.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			respondWithError(w, http.StatusUnauthorized, "current password is incorrect", "", nil)
		case errors.Is(err, service.ErrUserNotFound):
			respondWithError(w, http.StatusNotFound, "user not found", "", nil)
		default:
			respondWithError(w, http.StatusBadRequest, err.Error(), "change password failed", err)
		}
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
