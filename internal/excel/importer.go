// Package excel parses spreadsheet uploads into content rows. The first
// sheet is read; the first row is the header.
package excel

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/beyondie2/word-quiz/internal/models"
)

// maxReportedErrors caps the per-row error list in an ImportResult
const maxReportedErrors = 10

// ImportResult reports what a parse pass accepted and skipped
type ImportResult struct {
	TotalRows int      `json:"totalRows"`
	Skipped   int      `json:"skippedCount"`
	Errors    []string `json:"errors,omitempty"`
}

func (r *ImportResult) addError(rowNum int, msg string) {
	r.Skipped++
	if len(r.Errors) < maxReportedErrors {
		r.Errors = append(r.Errors, fmt.Sprintf("row %d: %s", rowNum, msg))
	}
}

// readSheet opens the workbook and returns the rows of its first sheet
func readSheet(reader io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to open spreadsheet: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("spreadsheet has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	return rows, nil
}

// headerIndex maps trimmed header names to column positions
func headerIndex(header []string) map[string]int {
	index := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(name)
		if name != "" {
			index[name] = i
		}
	}
	return index
}

func cell(row []string, index map[string]int, column string) string {
	i, ok := index[column]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// wordColumns are the required headers of a vocabulary upload
var wordColumns = []string{"book_name", "unit", "english", "korean"}

// ParseWords extracts vocabulary rows from an uploaded workbook. Rows with
// empty required fields are skipped and reported, not fatal.
func ParseWords(reader io.Reader) ([]models.Word, *ImportResult, error) {
	rows, err := readSheet(reader)
	if err != nil {
		return nil, nil, err
	}
	if len(rows) < 2 {
		return nil, nil, fmt.Errorf("spreadsheet has no data rows")
	}

	index := headerIndex(rows[0])
	var missing []string
	for _, col := range wordColumns {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, nil, fmt.Errorf("missing required columns: %s", strings.Join(missing, ", "))
	}

	result := &ImportResult{TotalRows: len(rows) - 1}
	var words []models.Word
	for i, row := range rows[1:] {
		rowNum := i + 2 // 1-based, past the header

		w := models.Word{
			BookName: cell(row, index, "book_name"),
			Unit:     cell(row, index, "unit"),
			English:  cell(row, index, "english"),
			Korean:   cell(row, index, "korean"),
			Example:  cell(row, index, "example"),
		}
		if w.BookName == "" || w.Unit == "" || w.English == "" || w.Korean == "" {
			result.addError(rowNum, "required field is empty")
			continue
		}
		words = append(words, w)
	}

	return words, result, nil
}

// Grammar upload headers are Korean; these match the authoring template.
var grammarHeaders = struct {
	category1, category2, level, imageFile   string
	instruction, question, answer            string
	sentence1, sentence2, sentence3          string
	translation1, translation2, translation3 string
}{
	category1:    "분류1",
	category2:    "분류2",
	level:        "수준",
	imageFile:    "이미지파일",
	instruction:  "분류 내 전체 문항 지시 사항",
	question:     "단일 문항",
	answer:       "정답",
	sentence1:    "문장1",
	sentence2:    "문장2",
	sentence3:    "문장3",
	translation1: "해석1",
	translation2: "해석2",
	translation3: "해석3",
}

// ParseGrammar extracts grammar question rows from an uploaded workbook.
// Rows missing the question or answer are skipped and reported.
func ParseGrammar(reader io.Reader) ([]models.GrammarQuestion, *ImportResult, error) {
	rows, err := readSheet(reader)
	if err != nil {
		return nil, nil, err
	}
	if len(rows) < 2 {
		return nil, nil, fmt.Errorf("spreadsheet has no data rows")
	}

	index := headerIndex(rows[0])
	result := &ImportResult{TotalRows: len(rows) - 1}
	var questions []models.GrammarQuestion
	for i, row := range rows[1:] {
		rowNum := i + 2

		q := models.GrammarQuestion{
			Category1:    cell(row, index, grammarHeaders.category1),
			Category2:    cell(row, index, grammarHeaders.category2),
			Level:        cell(row, index, grammarHeaders.level),
			ImageFile:    cell(row, index, grammarHeaders.imageFile),
			Instruction:  cell(row, index, grammarHeaders.instruction),
			Question:     cell(row, index, grammarHeaders.question),
			Answer:       cell(row, index, grammarHeaders.answer),
			Sentence1:    cell(row, index, grammarHeaders.sentence1),
			Sentence2:    cell(row, index, grammarHeaders.sentence2),
			Sentence3:    cell(row, index, grammarHeaders.sentence3),
			Translation1: cell(row, index, grammarHeaders.translation1),
			Translation2: cell(row, index, grammarHeaders.translation2),
			Translation3: cell(row, index, grammarHeaders.translation3),
		}
		if q.Question == "" || q.Answer == "" {
			result.addError(rowNum, "question or answer is empty")
			continue
		}
		questions = append(questions, q)
	}

	return questions, result, nil
}

// blockColumns are the required headers of a block-sentence upload
var blockColumns = []string{"english", "korean_blocks", "korean_full"}

// ParseBlocks extracts block-writing sentences from an uploaded workbook
func ParseBlocks(reader io.Reader) ([]models.BlockSentence, *ImportResult, error) {
	rows, err := readSheet(reader)
	if err != nil {
		return nil, nil, err
	}
	if len(rows) < 2 {
		return nil, nil, fmt.Errorf("spreadsheet has no data rows")
	}

	index := headerIndex(rows[0])
	var missing []string
	for _, col := range blockColumns {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, nil, fmt.Errorf("missing required columns: %s", strings.Join(missing, ", "))
	}

	result := &ImportResult{TotalRows: len(rows) - 1}
	var sentences []models.BlockSentence
	for i, row := range rows[1:] {
		rowNum := i + 2

		s := models.BlockSentence{
			Book:         cell(row, index, "book"),
			Lesson:       cell(row, index, "lesson"),
			English:      cell(row, index, "english"),
			KoreanBlocks: cell(row, index, "korean_blocks"),
			KoreanFull:   cell(row, index, "korean_full"),
		}
		if num := cell(row, index, "sentence_number"); num != "" {
			n, err := strconv.Atoi(num)
			if err != nil {
				result.addError(rowNum, "sentence_number is not a number")
				continue
			}
			s.SentenceNumber = n
		}
		if s.English == "" || s.KoreanBlocks == "" || s.KoreanFull == "" {
			result.addError(rowNum, "required field is empty")
			continue
		}
		sentences = append(sentences, s)
	}

	return sentences, result, nil
}
