package handlers

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/beyondie2/word-quiz/internal/service"
)

// AdminHandler serves the admin endpoints. Every route is wrapped in
// RequireAdmin by the router.
type AdminHandler struct {
	adminService  *service.AdminService
	uploadMaxSize int64
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(adminService *service.AdminService, uploadMaxSize int64) *AdminHandler {
	return &AdminHandler{adminService: adminService, uploadMaxSize: uploadMaxSize}
}

// ListUsers handles GET /api/admin/users
func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.adminService.ListUsers()
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to load users", "admin list users", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"users": users})
}

type createUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreateUser handles POST /api/admin/users
func (h *AdminHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body", "", err)
		return
	}

	user, err := h.adminService.CreateUser(req.Username, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUsernameTaken), errors.Is(err, service.ErrEmailTaken):
			respondWithError(w, http.StatusConflict, err.Error(), "", nil)
		default:
			respondWithError(w, http.StatusBadRequest, err.Error(), "admin create user", err)
		}
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{"user": user.Public()})
}

// ToggleAdmin handles PATCH /api/admin/users/{id}/toggle-admin
func (h *AdminHandler) ToggleAdmin(w http.ResponseWriter, r *http.Request) {
	claims := GetClaimsFromContext(r.Context())

	userID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid user id", "", nil)
		return
	}

	isAdmin, err := h.adminService.ToggleAdmin(claims.UserID, userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSelfDemotion):
			respondWithError(w, http.StatusBadRequest, err.Error(), "", nil)
		case errors.Is(err, service.ErrUserNotFound):
			respondWithError(w, http.StatusNotFound, "user not found", "", nil)
		default:
			respondWithError(w, http.StatusInternalServerError, "failed to update user", "admin toggle admin", err)
		}
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"isAdmin": isAdmin,
	})
}

// DeleteUser handles DELETE /api/admin/users/{id}
func (h *AdminHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	claims := GetClaimsFromContext(r.Context())

	userID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid user id", "", nil)
		return
	}

	if err := h.adminService.DeleteUser(claims.UserID, userID); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			respondWithError(w, http.StatusNotFound, "user not found", "", nil)
			return
		}
		respondWithError(w, http.StatusBadRequest, err.Error(), "admin delete user", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// Stats handles GET /api/admin/stats
func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.adminService.GetStats()
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to load stats", "admin stats", err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// uploadFile extracts the "file" part of a multipart upload
func (h *AdminHandler) uploadFile(w http.ResponseWriter, r *http.Request) (multipart.File, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, h.uploadMaxSize)
	if err := r.ParseMultipartForm(h.uploadMaxSize); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid upload", "", err)
		return nil, false
	}
	file, _, err := r.FormFile("file")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "file is required", "", nil)
		return nil, false
	}
	return file, true
}

// UploadWords handles POST /api/admin/books/upload with an xlsx file
func (h *AdminHandler) UploadWords(w http.ResponseWriter, r *http.Request) {
	file, ok := h.uploadFile(w, r)
	if !ok {
		return
	}
	defer file.Close()

	summary, err := h.adminService.UploadWords(file)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error(), "words upload", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":       true,
		"insertedCount": summary.Inserted,
		"skippedCount":  summary.Skipped,
		"totalRows":     summary.TotalRows,
		"errors":        summary.Errors,
	})
}

// UploadGrammar handles POST /api/admin/grammar/upload with an xlsx file
func (h *AdminHandler) UploadGrammar(w http.ResponseWriter, r *http.Request) {
	file, ok := h.uploadFile(w, r)
	if !ok {
		return
	}
	defer file.Close()

	summary, err := h.adminService.UploadGrammar(file)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error(), "grammar upload", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":       true,
		"insertedCount": summary.Inserted,
		"skippedCount":  summary.Skipped,
		"totalRows":     summary.TotalRows,
		"errors":        summary.Errors,
	})
}

// UploadBlocks handles POST /api/admin/blocks/upload with an xlsx file
func (h *AdminHandler) UploadBlocks(w http.ResponseWriter, r *http.Request) {
	file, ok := h.uploadFile(w, r)
	if !ok {
		return
	}
	defer file.Close()

	summary, err := h.adminService.UploadBlocks(file)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error(), "blocks upload", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":       true,
		"insertedCount": summary.Inserted,
		"skippedCount":  summary.Skipped,
		"totalRows":     summary.TotalRows,
		"errors":        summary.Errors,
	})
}

// ListBooks handles GET /api/admin/books
func (h *AdminHandler) ListBooks(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.adminService.GetBookSummaries()
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to load book summaries", "admin books", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"books": summaries})
}

// DeleteBook handles DELETE /api/admin/books/{book}
func (h *AdminHandler) DeleteBook(w http.ResponseWriter, r *http.Request) {
	book := r.PathValue("book")

	deleted, err := h.adminService.DeleteBook(book)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to delete book", "admin delete book", err)
		return
	}
	if deleted == 0 {
		respondWithError(w, http.StatusNotFound, "book not found", "", nil)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":      true,
		"deletedCount": deleted,
	})
}

// ListGrammar handles GET /api/admin/grammar
func (h *AdminHandler) ListGrammar(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.adminService.GetGrammarSummaries()
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to load grammar summaries", "admin grammar", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"categories": summaries})
}

// DeleteGrammarCategory handles DELETE /api/admin/grammar/{category}
func (h *AdminHandler) DeleteGrammarCategory(w http.ResponseWriter, r *http.Request) {
	category := r.PathValue("category")

	deleted, err := h.adminService.DeleteGrammarCategory(category)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to delete category", "admin delete grammar", err)
		return
	}
	if deleted == 0 {
		respondWithError(w, http.StatusNotFound, "category not found", "", nil)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":      true,
		"deletedCount": deleted,
	})
}
