package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/beyondie2/word-quiz/internal/models"
	"github.com/beyondie2/word-quiz/internal/service"
)

// BlocksHandler serves the block-writing endpoints
type BlocksHandler struct {
	blocksService *service.BlocksService
}

// NewBlocksHandler creates a new blocks handler
func NewBlocksHandler(blocksService *service.BlocksService) *BlocksHandler {
	return &BlocksHandler{blocksService: blocksService}
}

// List handles GET /api/blocks
func (h *BlocksHandler) List(w http.ResponseWriter, r *http.Request) {
	sentences, err := h.blocksService.GetSentences()
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to load sentences", "list blocks", err)
		return
	}
	if sentences == nil {
		sentences = []models.BlockSentence{}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"sentences": sentences})
}

type blocksUploadRequest struct {
	Data []models.BlockSentence `json:"data"`
}

// Upload handles POST /api/blocks/upload with a JSON sentence array
func (h *BlocksHandler) Upload(w http.ResponseWriter, r *http.Request) {
	var req blocksUploadRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body", "", err)
		return
	}
	if len(req.Data) == 0 {
		respondWithError(w, http.StatusBadRequest, "data is required", "", nil)
		return
	}
	for _, s := range req.Data {
		if s.English == "" || s.KoreanBlocks == "" || s.KoreanFull == "" {
			respondWithError(w, http.StatusBadRequest, "every sentence needs english, koreanBlocks and koreanFull", "", nil)
			return
		}
	}

	inserted, err := h.blocksService.Upload(req.Data)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to save sentences", "blocks upload", err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"success":       true,
		"insertedCount": inserted,
	})
}

// Delete handles DELETE /api/blocks/{id}
func (h *BlocksHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid sentence id", "", nil)
		return
	}

	if err := h.blocksService.DeleteSentence(id); err != nil {
		if errors.Is(err, service.ErrSentenceNotFound) {
			respondWithError(w, http.StatusNotFound, "sentence not found", "", nil)
			return
		}
		respondWithError(w, http.StatusInternalServerError, "failed to delete sentence", "blocks delete", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// DeleteAll handles DELETE /api/blocks
func (h *BlocksHandler) DeleteAll(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.blocksService.DeleteAll()
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to delete sentences", "blocks delete all", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":      true,
		"deletedCount": deleted,
	})
}

type blocksResultRequest struct {
	BlocksID       *int64  `json:"blocksId"`
	Book           string  `json:"book"`
	Lesson         string  `json:"lesson"`
	SentenceNumber int     `json:"sentenceNumber"`
	English        string  `json:"english"`
	Correct        string  `json:"correctAnswer"`
	WrongAnswer    *string `json:"wrongAnswer"`
	Phase          string  `json:"phase"`
	Round          int     `json:"round"`
	IsCorrect      bool    `json:"isCorrect"`
}

// Result handles POST /api/blocks/result: the client judges block assembly
// locally and reports the outcome here.
func (h *BlocksHandler) Result(w http.ResponseWriter, r *http.Request) {
	claims := GetClaimsFromContext(r.Context())

	var req blocksResultRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body", "", err)
		return
	}
	if req.English == "" || req.Correct == "" {
		respondWithError(w, http.StatusBadRequest, "english and correctAnswer are required", "", nil)
		return
	}

	id, err := h.blocksService.RecordResult(service.BlocksResultInput{
		UserID:         claims.UserID,
		BlocksID:       req.BlocksID,
		Book:           req.Book,
		Lesson:         req.Lesson,
		SentenceNumber: req.SentenceNumber,
		English:        req.English,
		Correct:        req.Correct,
		WrongAnswer:    req.WrongAnswer,
		Phase:          req.Phase,
		Round:          req.Round,
		IsCorrect:      req.IsCorrect,
	})
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to record result", "blocks result", err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{"success": true, "id": id})
}
