package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestRespondWithError(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		userMsg    string
		err        error
		wantStatus int
	}{
		{
			name:       "bad request",
			status:     http.StatusBadRequest,
			userMsg:    "invalid request body",
			err:        errors.New("unexpected EOF"),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "not found without underlying error",
			status:     http.StatusNotFound,
			userMsg:    "word not found",
			err:        nil,
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			respondWithError(rec, tt.status, tt.userMsg, "", tt.err)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("Content-Type = %q, want application/json", ct)
			}

			var body map[string]string
			if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
				t.Fatalf("body is not JSON: %v", err)
			}
			if body["error"] != tt.userMsg {
				t.Errorf("error = %q, want %q", body["error"], tt.userMsg)
			}
		})
	}
}

func TestWriteJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	writeJSON(rec, http.StatusCreated, map[string]int{"id": 7})

	if rec.Code != http.StatusCreated {
		t.Errorf("status = %d, want 201", rec.Code)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != `{"id":7}` {
		t.Errorf("body = %q", got)
	}
}

func TestDecodeJSON(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"wordId": 3, "answer": "사과"}`))

	var body struct {
		WordID int64  `json:"wordId"`
		Answer string `json:"answer"`
	}
	if err := decodeJSON(req, &body); err != nil {
		t.Fatalf("decodeJSON: %v", err)
	}
	if body.WordID != 3 || body.Answer != "사과" {
		t.Errorf("decoded = %+v", body)
	}

	bad := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{not json`))
	if err := decodeJSON(bad, &body); err == nil {
		t.Error("expected error for malformed body")
	}
}
