package handlers

import (
	"errors"
	"net/http"

	"github.com/beyondie2/word-quiz/internal/models"
	"github.com/beyondie2/word-quiz/internal/service"
)

// GrammarHandler serves the grammar content and check endpoints. Scope values
// arrive as query parameters; they are free-form Korean text.
type GrammarHandler struct {
	grammarService *service.GrammarService
}

// NewGrammarHandler creates a new grammar handler
func NewGrammarHandler(grammarService *service.GrammarService) *GrammarHandler {
	return &GrammarHandler{grammarService: grammarService}
}

// ListCategories handles GET /api/grammar/categories
func (h *GrammarHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.grammarService.GetCategories()
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to load categories", "grammar categories", err)
		return
	}
	if categories == nil {
		categories = []string{}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"categories": categories})
}

// ListSubcategories handles GET /api/grammar/subcategories?category1=
func (h *GrammarHandler) ListSubcategories(w http.ResponseWriter, r *http.Request) {
	category1 := r.URL.Query().Get("category1")
	if category1 == "" {
		respondWithError(w, http.StatusBadRequest, "category1 is required", "", nil)
		return
	}

	subcategories, err := h.grammarService.GetSubcategories(category1)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to load subcategories", "grammar subcategories", err)
		return
	}
	if subcategories == nil {
		subcategories = []string{}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"subcategories": subcategories})
}

// ListLevels handles GET /api/grammar/levels?category1=&category2=
func (h *GrammarHandler) ListLevels(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	category1, category2 := q.Get("category1"), q.Get("category2")
	if category1 == "" || category2 == "" {
		respondWithError(w, http.StatusBadRequest, "category1 and category2 are required", "", nil)
		return
	}

	levels, err := h.grammarService.GetLevels(category1, category2)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to load levels", "grammar levels", err)
		return
	}
	if levels == nil {
		levels = []string{}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"levels": levels})
}

// ListInstructions handles GET /api/grammar/instructions?category1=&category2=&level=
func (h *GrammarHandler) ListInstructions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	category1, category2, level := q.Get("category1"), q.Get("category2"), q.Get("level")
	if category1 == "" || category2 == "" || level == "" {
		respondWithError(w, http.StatusBadRequest, "category1, category2 and level are required", "", nil)
		return
	}

	instructions, err := h.grammarService.GetInstructions(category1, category2, level)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to load instructions", "grammar instructions", err)
		return
	}
	if instructions == nil {
		instructions = []string{}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"instructions": instructions})
}

// ListQuestions handles GET /api/grammar/questions with the full scope chain
func (h *GrammarHandler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	category1, category2 := q.Get("category1"), q.Get("category2")
	level, instruction := q.Get("level"), q.Get("instruction")
	if category1 == "" || category2 == "" || level == "" || instruction == "" {
		respondWithError(w, http.StatusBadRequest, "category1, category2, level and instruction are required", "", nil)
		return
	}

	questions, err := h.grammarService.GetQuestions(category1, category2, level, instruction)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to load questions", "grammar questions", err)
		return
	}
	if questions == nil {
		questions = []models.GrammarQuestion{}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"questions": questions})
}

type grammarCheckRequest struct {
	QuestionID int64  `json:"questionId"`
	Answer     string `json:"answer"`
	Round      int    `json:"round"`
}

// Check handles POST /api/grammar/check. The stored answer is revealed on
// both outcomes.
func (h *GrammarHandler) Check(w http.ResponseWriter, r *http.Request) {
	claims := GetClaimsFromContext(r.Context())

	var req grammarCheckRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body", "", err)
		return
	}
	if req.QuestionID == 0 || req.Answer == "" {
		respondWithError(w, http.StatusBadRequest, "questionId and answer are required", "", nil)
		return
	}

	result, err := h.grammarService.Check(service.GrammarCheckInput{
		UserID:     claims.UserID,
		QuestionID: req.QuestionID,
		Answer:     req.Answer,
		Round:      req.Round,
	})
	if err != nil {
		if errors.Is(err, service.ErrQuestionNotFound) {
			respondWithError(w, http.StatusNotFound, "grammar question not found", "", nil)
			return
		}
		respondWithError(w, http.StatusInternalServerError, "failed to check answer", "grammar check", err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}
