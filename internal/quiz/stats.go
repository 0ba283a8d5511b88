package quiz

import (
	"math"

	"github.com/beyondie2/word-quiz/internal/models"
)

// Stats summarizes a slice of progress records. The JSON field names match
// what the review and admin views consume.
type Stats struct {
	TotalWords   int `json:"totalWords"`
	CorrectCount int `json:"correctCount"`
	WrongCount   int `json:"wrongCount"`
	Accuracy     int `json:"accuracy"`
}

// Aggregate computes summary statistics over an already-filtered record
// slice. Recomputed in full on every call; the upstream query bounds the
// slice size.
func Aggregate(records []models.WordProgress) Stats {
	stats := Stats{TotalWords: len(records)}
	if len(records) == 0 {
		return stats
	}

	for _, r := range records {
		if r.IsCorrect {
			stats.CorrectCount++
		}
	}
	stats.WrongCount = stats.TotalWords - stats.CorrectCount
	stats.Accuracy = Ratio(stats.CorrectCount, stats.TotalWords)
	return stats
}

// Ratio returns part/total as a rounded percentage, 0 when total is 0.
func Ratio(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}
