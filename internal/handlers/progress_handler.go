package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/beyondie2/word-quiz/internal/models"
	"github.com/beyondie2/word-quiz/internal/service"
)

// ProgressHandler serves the learning-log endpoints. Routes operate on the
// authenticated user's own log; admins may read any user's.
type ProgressHandler struct {
	progressService *service.ProgressService
}

// NewProgressHandler creates a new progress handler
func NewProgressHandler(progressService *service.ProgressService) *ProgressHandler {
	return &ProgressHandler{progressService: progressService}
}

// parseDate accepts YYYY-MM-DD query values
func parseDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// scopedUserID resolves the {userId} path value, rejecting access to other
// users' logs unless the caller is admin.
func scopedUserID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	claims := GetClaimsFromContext(r.Context())

	userID, err := strconv.ParseInt(r.PathValue("userId"), 10, 64)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid user id", "", nil)
		return 0, false
	}
	if userID != claims.UserID && !claims.IsAdmin {
		respondWithError(w, http.StatusForbidden, "cannot access another user's progress", "", nil)
		return 0, false
	}
	return userID, true
}

// Get handles GET /api/progress?startDate=&endDate= and returns the log with
// its aggregate stats. endDate is inclusive through end of day. Admins may
// pass userId to read another user's log.
func (h *ProgressHandler) Get(w http.ResponseWriter, r *http.Request) {
	claims := GetClaimsFromContext(r.Context())

	q := r.URL.Query()
	userID := claims.UserID
	if v := q.Get("userId"); v != "" && claims.IsAdmin {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "userId must be a number", "", nil)
			return
		}
		userID = parsed
	}
	from, err := parseDate(q.Get("startDate"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "startDate must be YYYY-MM-DD", "", nil)
		return
	}
	to, err := parseDate(q.Get("endDate"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "endDate must be YYYY-MM-DD", "", nil)
		return
	}
	if to != nil {
		end := to.Add(24*time.Hour - time.Nanosecond)
		to = &end
	}

	report, err := h.progressService.GetReport(userID, from, to)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to load progress", "progress report", err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

type appendProgressRequest struct {
	BookName         string  `json:"bookName"`
	Unit             string  `json:"unit"`
	English          string  `json:"english"`
	Korean           string  `json:"korean"`
	WrongAnswer      *string `json:"wrongAnswer"`
	PracticeMode     string  `json:"practiceMode"`
	KoreanAnswerType string  `json:"koreanAnswerType"`
	Round            int     `json:"round"`
	ReviewCount      int     `json:"reviewCount"`
	IsCorrect        bool    `json:"isCorrect"`
}

// Append handles POST /api/progress: a direct log append from drill flows
// that judge answers on the client.
func (h *ProgressHandler) Append(w http.ResponseWriter, r *http.Request) {
	claims := GetClaimsFromContext(r.Context())

	var req appendProgressRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body", "", err)
		return
	}
	if req.BookName == "" || req.Unit == "" || req.English == "" || req.Korean == "" {
		respondWithError(w, http.StatusBadRequest, "bookName, unit, english and korean are required", "", nil)
		return
	}

	id, err := h.progressService.Append(&models.WordProgress{
		UserID:      claims.UserID,
		BookName:    req.BookName,
		Unit:        req.Unit,
		English:     req.English,
		Korean:      req.Korean,
		WrongAnswer: req.WrongAnswer,
		Mode:        req.PracticeMode,
		Policy:      req.KoreanAnswerType,
		Round:       req.Round,
		ReviewCount: req.ReviewCount,
		IsCorrect:   req.IsCorrect,
	})
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to record progress", "progress append", err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{"success": true, "id": id})
}

// WrongWords handles GET /api/progress/{userId}/wrong-words?bookName=&unit=&round=
func (h *ProgressHandler) WrongWords(w http.ResponseWriter, r *http.Request) {
	userID, ok := scopedUserID(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	bookName, unit := q.Get("bookName"), q.Get("unit")
	if bookName == "" || unit == "" {
		respondWithError(w, http.StatusBadRequest, "bookName and unit are required", "", nil)
		return
	}
	round := 1
	if v := q.Get("round"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 1 {
			respondWithError(w, http.StatusBadRequest, "round must be a positive number", "", nil)
			return
		}
		round = parsed
	}

	words, err := h.progressService.GetWrongWords(userID, bookName, unit, round)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to load wrong words", "wrong words", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"wrongWords": words})
}

// NextRound handles POST /api/progress/{userId}/next-round?bookName=&unit=
func (h *ProgressHandler) NextRound(w http.ResponseWriter, r *http.Request) {
	userID, ok := scopedUserID(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	bookName, unit := q.Get("bookName"), q.Get("unit")
	if bookName == "" || unit == "" {
		respondWithError(w, http.StatusBadRequest, "bookName and unit are required", "", nil)
		return
	}

	round, err := h.progressService.NextRound(userID, bookName, unit)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to compute next round", "next round", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true, "nextRound": round})
}

// BlocksLog handles GET /api/progress/blocks
func (h *ProgressHandler) BlocksLog(w http.ResponseWriter, r *http.Request) {
	claims := GetClaimsFromContext(r.Context())

	records, err := h.progressService.GetBlocksLog(claims.UserID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to load blocks progress", "blocks log", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"records": records})
}

// GrammarLog handles GET /api/progress/grammar
func (h *ProgressHandler) GrammarLog(w http.ResponseWriter, r *http.Request) {
	claims := GetClaimsFromContext(r.Context())

	records, err := h.progressService.GetGrammarLog(claims.UserID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to load grammar progress", "grammar log", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"records": records})
}
