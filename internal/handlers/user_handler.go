package handlers

import (
	"net/http"
	"strings"

	"github.com/beyondie2/word-quiz/internal/service"
)

// UserHandler serves the classroom user picker endpoints
type UserHandler struct {
	userService *service.UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// List handles GET /api/users
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.ListUsers()
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to load users", "user list", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"users": users})
}

type verifyUserRequest struct {
	Username string `json:"username"`
}

// Verify handles POST /api/users/verify. An unknown name is reported in the
// body with success false, not as an error status.
func (h *UserHandler) Verify(w http.ResponseWriter, r *http.Request) {
	var req verifyUserRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body", "", err)
		return
	}
	if strings.TrimSpace(req.Username) == "" {
		respondWithError(w, http.StatusBadRequest, "username is required", "", nil)
		return
	}

	verified, err := h.userService.VerifyByName(req.Username)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "verification failed", "user verify", err)
		return
	}
	if verified == nil {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"success": false,
			"message": "user not found",
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"userId":   verified.UserID,
		"username": verified.Username,
		"isAdmin":  verified.IsAdmin,
		"books":    verified.Books,
	})
}
