package handlers

import (
	"net/http"

	"github.com/beyondie2/word-quiz/internal/models"
	"github.com/beyondie2/word-quiz/internal/service"
)

// BookHandler serves the vocabulary content endpoints
type BookHandler struct {
	quizService *service.QuizService
}

// NewBookHandler creates a new book handler
func NewBookHandler(quizService *service.QuizService) *BookHandler {
	return &BookHandler{quizService: quizService}
}

// ListBooks handles GET /api/books
func (h *BookHandler) ListBooks(w http.ResponseWriter, r *http.Request) {
	books, err := h.quizService.GetBookNames()
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to load books", "list books", err)
		return
	}
	if books == nil {
		books = []string{}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"books": books})
}

// ListUnits handles GET /api/books/{book}/units
func (h *BookHandler) ListUnits(w http.ResponseWriter, r *http.Request) {
	book := r.PathValue("book")

	units, err := h.quizService.GetUnits(book)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to load units", "list units", err)
		return
	}
	if units == nil {
		units = []string{}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"units": units})
}

// ListWords handles GET /api/books/{book}/units/{unit}/words
func (h *BookHandler) ListWords(w http.ResponseWriter, r *http.Request) {
	book := r.PathValue("book")
	unit := r.PathValue("unit")

	words, err := h.quizService.GetWords(book, unit)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to load words", "list words", err)
		return
	}
	if words == nil {
		words = []models.Word{}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"words": words})
}
