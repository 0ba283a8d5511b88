package models

import "time"

// GrammarQuestion represents a fill-in grammar item. The scope chain is
// category1 > category2 > level > instruction. Answer may hold several
// accepted alternatives separated by commas.
type GrammarQuestion struct {
	ID           int64     `json:"id"`
	Category1    string    `json:"category1"`
	Category2    string    `json:"category2"`
	Level        string    `json:"level"`
	Instruction  string    `json:"instruction"`
	Question     string    `json:"question"`
	Answer       string    `json:"answer"`
	Sentence1    string    `json:"sentence1,omitempty"`
	Sentence2    string    `json:"sentence2,omitempty"`
	Sentence3    string    `json:"sentence3,omitempty"`
	Translation1 string    `json:"translation1,omitempty"`
	Translation2 string    `json:"translation2,omitempty"`
	Translation3 string    `json:"translation3,omitempty"`
	ImageFile    string    `json:"imageFile,omitempty"`
	CreatedAt    time.Time `json:"createdAt,omitempty"`
}

// GrammarSummary aggregates per-category question counts for the admin view
type GrammarSummary struct {
	Category1      string `json:"category1"`
	Category2Count int    `json:"category2Count"`
	QuestionCount  int    `json:"questionCount"`
}
