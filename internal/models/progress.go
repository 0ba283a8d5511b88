package models

import "time"

// WordProgress is one immutable row in the word-quiz learning log. One row is
// appended per submission, correct or not; rows are never updated.
type WordProgress struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"userId"`
	Username    string    `json:"username,omitempty"`
	BookName    string    `json:"bookName"`
	Unit        string    `json:"unit"`
	English     string    `json:"english"`
	Korean      string    `json:"korean"`
	WrongAnswer *string   `json:"wrongAnswer"`
	Mode        string    `json:"practiceMode"`
	Policy      string    `json:"multiAnswerPolicy"`
	Round       int       `json:"round"`
	ReviewCount int       `json:"reviewCount"`
	IsCorrect   bool      `json:"isCorrect"`
	CreatedAt   time.Time `json:"createdAt"`
}

// GrammarProgress is one row in the grammar learning log
type GrammarProgress struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"userId"`
	GrammarID   int64     `json:"grammarId"`
	Category1   string    `json:"category1"`
	Category2   string    `json:"category2"`
	Level       string    `json:"level"`
	WrongAnswer *string   `json:"wrongAnswer"`
	Round       int       `json:"round"`
	IsCorrect   bool      `json:"isCorrect"`
	CreatedAt   time.Time `json:"createdAt"`
}

// BlocksProgress is one row in the block-writing learning log.
// Phase distinguishes the block-assembly step from the full-sentence step.
type BlocksProgress struct {
	ID             int64     `json:"id"`
	UserID         int64     `json:"userId"`
	BlocksID       *int64    `json:"blocksId"`
	Book           string    `json:"book,omitempty"`
	Lesson         string    `json:"lesson,omitempty"`
	SentenceNumber int       `json:"sentenceNumber,omitempty"`
	English        string    `json:"english"`
	CorrectAnswer  string    `json:"correctAnswer"`
	WrongAnswer    *string   `json:"wrongAnswer"`
	Phase          string    `json:"phase"`
	Round          int       `json:"round"`
	IsCorrect      bool      `json:"isCorrect"`
	CreatedAt      time.Time `json:"createdAt"`
}

// WrongWord is a distinct missed word within a (user, book, unit, round) scope
type WrongWord struct {
	ID          int64   `json:"id"`
	English     string  `json:"english"`
	Korean      string  `json:"korean"`
	WrongAnswer *string `json:"wrongAnswer"`
}

// DailyActivity is one day of the admin weekly series
type DailyActivity struct {
	Date    string `json:"date"`
	Count   int    `json:"count"`
	Correct int    `json:"correct"`
}

// UserActivity is one row of the admin top-users table
type UserActivity struct {
	Username      string `json:"username"`
	TotalAttempts int    `json:"totalAttempts"`
	CorrectCount  int    `json:"correctCount"`
}
