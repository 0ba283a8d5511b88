package models

import "time"

// Word represents a vocabulary item belonging to a book/unit scope.
// Korean may hold several accepted synonyms separated by commas.
type Word struct {
	ID        int64     `json:"id"`
	BookName  string    `json:"bookName"`
	Unit      string    `json:"unit"`
	English   string    `json:"english"`
	Korean    string    `json:"korean"`
	Example   string    `json:"example,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}

// BookSummary aggregates per-book content counts for the admin view
type BookSummary struct {
	BookName  string `json:"bookName"`
	UnitCount int    `json:"unitCount"`
	WordCount int    `json:"wordCount"`
}
