package quiz

import (
	"testing"

	"github.com/beyondie2/word-quiz/internal/models"
)

func TestCheckWordAnswerInKorean(t *testing.T) {
	word := &models.Word{English: "apple", Korean: "사과, 애플"}

	tests := []struct {
		name       string
		word       *models.Word
		submission string
		policy     Policy
		want       bool
	}{
		{
			name:       "any-of matches second synonym with padding",
			word:       word,
			submission: " 애플 ",
			policy:     PolicyAny,
			want:       true,
		},
		{
			name:       "any-of matches first synonym",
			word:       word,
			submission: "사과",
			policy:     PolicyAny,
			want:       true,
		},
		{
			name:       "any-of rejects wrong answer",
			word:       word,
			submission: "바나나",
			policy:     PolicyAny,
			want:       false,
		},
		{
			name:       "any-of rejects whitespace-only submission",
			word:       word,
			submission: "   ",
			policy:     PolicyAny,
			want:       false,
		},
		{
			name:       "all-of order independent",
			word:       &models.Word{English: "fruit", Korean: "사과,바나나"},
			submission: "바나나, 사과",
			policy:     PolicyAll,
			want:       true,
		},
		{
			name:       "all-of incomplete set rejected",
			word:       &models.Word{English: "fruit", Korean: "사과,바나나"},
			submission: "사과",
			policy:     PolicyAll,
			want:       false,
		},
		{
			name:       "all-of extra element rejected",
			word:       &models.Word{English: "fruit", Korean: "사과,바나나"},
			submission: "사과, 바나나, 포도",
			policy:     PolicyAll,
			want:       false,
		},
		{
			name:       "all-of ignores trailing comma in stored answer",
			word:       &models.Word{English: "fruit", Korean: "사과,바나나,"},
			submission: "바나나,사과",
			policy:     PolicyAll,
			want:       true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CheckWord(tt.word, tt.submission, DirectionEnglish, tt.policy)
			if result.IsCorrect != tt.want {
				t.Errorf("CheckWord(%q) correct = %v, want %v", tt.submission, result.IsCorrect, tt.want)
			}
			if result.CorrectAnswer != tt.word.Korean {
				t.Errorf("CorrectAnswer = %q, want stored korean %q", result.CorrectAnswer, tt.word.Korean)
			}
		})
	}
}

func TestCheckWordAnswerInEnglish(t *testing.T) {
	word := &models.Word{English: "apple", Korean: "사과, 애플"}

	tests := []struct {
		name       string
		submission string
		want       bool
	}{
		{name: "exact match", submission: "apple", want: true},
		{name: "case and padding ignored", submission: "  Apple ", want: true},
		{name: "wrong word", submission: "banana", want: false},
		{name: "empty submission", submission: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CheckWord(word, tt.submission, DirectionKorean, PolicyAny)
			if result.IsCorrect != tt.want {
				t.Errorf("CheckWord(%q) correct = %v, want %v", tt.submission, result.IsCorrect, tt.want)
			}
			if result.CorrectAnswer != word.English {
				t.Errorf("CorrectAnswer = %q, want %q", result.CorrectAnswer, word.English)
			}
		})
	}
}

func TestCheckGrammar(t *testing.T) {
	tests := []struct {
		name        string
		answerField string
		submission  string
		want        bool
	}{
		{
			name:        "matches first alternative case-insensitively",
			answerField: "run, runs",
			submission:  "Run",
			want:        true,
		},
		{
			name:        "matches second alternative",
			answerField: "run, runs",
			submission:  "runs ",
			want:        true,
		},
		{
			name:        "no alternative matches",
			answerField: "run, runs",
			submission:  "ran",
			want:        false,
		},
		{
			name:        "single answer field",
			answerField: "went",
			submission:  "went",
			want:        true,
		},
		{
			name:        "whitespace-only never correct",
			answerField: "run, runs",
			submission:  "  ",
			want:        false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CheckGrammar(tt.answerField, tt.submission)
			if result.IsCorrect != tt.want {
				t.Errorf("CheckGrammar(%q, %q) = %v, want %v", tt.answerField, tt.submission, result.IsCorrect, tt.want)
			}
			// The grammar flow shows the stored answer on both outcomes
			if result.CorrectAnswer != tt.answerField {
				t.Errorf("CorrectAnswer = %q, want %q", result.CorrectAnswer, tt.answerField)
			}
		})
	}
}
