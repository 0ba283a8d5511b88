package quiz

import (
	"testing"

	"github.com/beyondie2/word-quiz/internal/models"
)

func makeRecords(correct, wrong int) []models.WordProgress {
	records := make([]models.WordProgress, 0, correct+wrong)
	for i := 0; i < correct; i++ {
		records = append(records, models.WordProgress{IsCorrect: true})
	}
	for i := 0; i < wrong; i++ {
		records = append(records, models.WordProgress{IsCorrect: false})
	}
	return records
}

func TestAggregate(t *testing.T) {
	tests := []struct {
		name    string
		correct int
		wrong   int
		want    Stats
	}{
		{
			name:    "seven of ten",
			correct: 7,
			wrong:   3,
			want:    Stats{TotalWords: 10, CorrectCount: 7, WrongCount: 3, Accuracy: 70},
		},
		{
			name:    "all correct",
			correct: 4,
			wrong:   0,
			want:    Stats{TotalWords: 4, CorrectCount: 4, WrongCount: 0, Accuracy: 100},
		},
		{
			name:    "all wrong",
			correct: 0,
			wrong:   5,
			want:    Stats{TotalWords: 5, CorrectCount: 0, WrongCount: 5, Accuracy: 0},
		},
		{
			name:    "rounds to nearest",
			correct: 1,
			wrong:   2,
			want:    Stats{TotalWords: 3, CorrectCount: 1, WrongCount: 2, Accuracy: 33},
		},
		{
			name:    "rounds half up",
			correct: 1,
			wrong:   7,
			want:    Stats{TotalWords: 8, CorrectCount: 1, WrongCount: 7, Accuracy: 13},
		},
		{
			name: "empty slice",
			want: Stats{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Aggregate(makeRecords(tt.correct, tt.wrong))
			if got != tt.want {
				t.Errorf("Aggregate() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
