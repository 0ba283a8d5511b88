package handlers

import (
	"errors"
	"net/http"

	"github.com/beyondie2/word-quiz/internal/quiz"
	"github.com/beyondie2/word-quiz/internal/service"
)

// QuizHandler serves the word-quiz check endpoint
type QuizHandler struct {
	quizService *service.QuizService
}

// NewQuizHandler creates a new quiz handler
func NewQuizHandler(quizService *service.QuizService) *QuizHandler {
	return &QuizHandler{quizService: quizService}
}

type wordCheckRequest struct {
	WordID           int64  `json:"wordId"`
	Answer           string `json:"answer"`
	PracticeMode     string `json:"practiceMode"`
	KoreanAnswerType string `json:"koreanAnswerType"`
	Round            int    `json:"round"`
	ReviewCount      int    `json:"reviewCount"`
}

// Check handles POST /api/quiz/check. One progress row is appended per call,
// correct or not.
func (h *QuizHandler) Check(w http.ResponseWriter, r *http.Request) {
	claims := GetClaimsFromContext(r.Context())

	var req wordCheckRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body", "", err)
		return
	}
	if req.WordID == 0 {
		respondWithError(w, http.StatusBadRequest, "wordId is required", "", nil)
		return
	}

	result, err := h.quizService.CheckWord(service.WordCheckInput{
		UserID:      claims.UserID,
		WordID:      req.WordID,
		Answer:      req.Answer,
		Direction:   quiz.Direction(req.PracticeMode),
		Policy:      quiz.Policy(req.KoreanAnswerType),
		Round:       req.Round,
		ReviewCount: req.ReviewCount,
	})
	if err != nil {
		if errors.Is(err, service.ErrWordNotFound) {
			respondWithError(w, http.StatusNotFound, "word not found", "", nil)
			return
		}
		respondWithError(w, http.StatusInternalServerError, "failed to check answer", "quiz check", err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}
