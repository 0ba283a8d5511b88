package quiz

import (
	"sort"
	"strings"

	"github.com/beyondie2/word-quiz/internal/models"
)

// Direction selects which side of a word pair the learner must produce.
// The wire values match the practiceMode field used by the client.
type Direction string

const (
	// DirectionEnglish shows the English word; the learner answers in Korean
	// (the side that may hold several comma-separated synonyms).
	DirectionEnglish Direction = "english"

	// DirectionKorean shows the Korean meaning; the learner answers in English.
	DirectionKorean Direction = "korean"
)

// Policy decides how a multi-synonym Korean answer is judged.
type Policy string

const (
	// PolicyAny accepts a submission matching any one synonym.
	PolicyAny Policy = "one"

	// PolicyAll requires the complete synonym set, order-independent.
	PolicyAll Policy = "all"
)

// Result is the outcome of checking one submission. CorrectAnswer is always
// the stored answer text as-is; callers decide whether to expose it.
type Result struct {
	IsCorrect     bool
	CorrectAnswer string
}

// CheckWord judges a word-quiz submission against a word record. When the
// learner answers in Korean the policy applies; answering in English is a
// plain single-value comparison.
func CheckWord(word *models.Word, submission string, direction Direction, policy Policy) Result {
	if direction != DirectionEnglish {
		// Answering in English: single expected value
		return Result{
			IsCorrect:     Normalize(submission) == Normalize(word.English),
			CorrectAnswer: word.English,
		}
	}

	alternatives := splitAlternatives(word.Korean)
	result := Result{CorrectAnswer: word.Korean}

	if policy == PolicyAll {
		// The complete set must be supplied; order does not matter but
		// duplicates do, so compare the sorted sequences element-for-element.
		submitted := make([]string, 0)
		for _, p := range strings.Split(submission, ",") {
			submitted = append(submitted, Normalize(p))
		}
		sort.Strings(submitted)
		expected := append([]string(nil), alternatives...)
		sort.Strings(expected)

		if len(submitted) != len(expected) {
			return result
		}
		for i := range expected {
			if submitted[i] != expected[i] {
				return result
			}
		}
		result.IsCorrect = true
		return result
	}

	normalized := Normalize(submission)
	for _, alt := range alternatives {
		if normalized == alt {
			result.IsCorrect = true
			break
		}
	}
	return result
}

// CheckGrammar judges a grammar submission. The stored answer field may
// encode several accepted alternatives separated by commas; matching any one
// of them is correct. CorrectAnswer carries the answer field as stored,
// regardless of outcome (the grammar review flow always displays it).
func CheckGrammar(answerField, submission string) Result {
	normalized := Normalize(submission)
	result := Result{CorrectAnswer: answerField}
	for _, alt := range splitAlternatives(answerField) {
		if normalized == alt {
			result.IsCorrect = true
			break
		}
	}
	return result
}
