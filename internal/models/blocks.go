package models

import "time"

// BlockSentence represents a block-writing item: a sentence assembled from
// shuffled word blocks, scoped by book/lesson/sentence number.
type BlockSentence struct {
	ID             int64     `json:"id"`
	Book           string    `json:"book,omitempty"`
	Lesson         string    `json:"lesson,omitempty"`
	SentenceNumber int       `json:"sentenceNumber,omitempty"`
	English        string    `json:"english"`
	KoreanBlocks   string    `json:"koreanBlocks"`
	KoreanFull     string    `json:"koreanFull"`
	CreatedAt      time.Time `json:"createdAt,omitempty"`
}
