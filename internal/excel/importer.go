// Package excel はxlsx/csvファイルからカードカタログを読み取ります。
// パースのみを担当し、永続化はサービス層が行います。
package excel

import (
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"go_math_adventure/internal/model"

	"github.com/xuri/excelize/v2"
)

// 取り込みファイルの列構成。オプション系の列は空でもよい。
//
//	A: question  B: answer  C: options (|区切り)  D: acceptable_answers (|区切り)
//	E: difficulty (easy/medium/hard)  F: category  G: input_type
const (
	colQuestion = iota
	colAnswer
	colOptions
	colAcceptableAnswers
	colDifficulty
	colCategory
	colInputType
)

const defaultSheetName = "Sheet1"

// ParseResult は取り込み処理の結果です。行単位のエラーは処理を止めず集めます
type ParseResult struct {
	Cards          []model.Card
	TotalProcessed int
	Errors         []string
}

// ParseCards はファイル名の拡張子でフォーマットを判別してカードを読み取ります
func ParseCards(r io.Reader, filename string) (*ParseResult, error) {
	if strings.ToLower(filepath.Ext(filename)) == ".csv" {
		return parseCSV(r)
	}
	return parseXLSX(r)
}

func parseXLSX(r io.Reader) (*ParseResult, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("excel.parseXLSX: %w", err)
	}
	defer f.Close()

	sheet := defaultSheetName
	if sheets := f.GetSheetList(); len(sheets) > 0 {
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("excel.parseXLSX: %w", err)
	}

	result := &ParseResult{}
	for i, row := range rows {
		if i == 0 && isHeaderRow(row) {
			continue
		}
		appendRow(result, row, i+1)
	}
	return result, nil
}

func parseCSV(r io.Reader) (*ParseResult, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	result := &ParseResult{}
	rowNum := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("excel.parseCSV: %w", err)
		}
		rowNum++
		if rowNum == 1 && isHeaderRow(row) {
			continue
		}
		appendRow(result, row, rowNum)
	}
	return result, nil
}

func appendRow(result *ParseResult, row []string, rowNum int) {
	if isBlankRow(row) {
		return
	}
	result.TotalProcessed++

	card, err := rowToCard(row)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", rowNum, err))
		return
	}
	result.Cards = append(result.Cards, card)
}

func rowToCard(row []string) (model.Card, error) {
	question := strings.TrimSpace(cell(row, colQuestion))
	answer := strings.TrimSpace(cell(row, colAnswer))
	if question == "" {
		return model.Card{}, fmt.Errorf("question cannot be empty")
	}
	if answer == "" {
		return model.Card{}, fmt.Errorf("answer cannot be empty")
	}

	difficulty := strings.ToLower(strings.TrimSpace(cell(row, colDifficulty)))
	switch difficulty {
	case model.DifficultyEasy, model.DifficultyMedium, model.DifficultyHard:
	case "":
		difficulty = model.DifficultyMedium
	default:
		return model.Card{}, fmt.Errorf("unknown difficulty %q", difficulty)
	}

	category := strings.TrimSpace(cell(row, colCategory))
	if category == "" {
		return model.Card{}, fmt.Errorf("category cannot be empty")
	}

	options := splitList(cell(row, colOptions))

	inputType := strings.TrimSpace(cell(row, colInputType))
	switch inputType {
	case model.InputTypeMultipleChoice, model.InputTypeTextInput:
	case "":
		// 未指定なら選択肢の有無で決める
		if len(options) > 0 {
			inputType = model.InputTypeMultipleChoice
		} else {
			inputType = model.InputTypeTextInput
		}
	default:
		return model.Card{}, fmt.Errorf("unknown input type %q", inputType)
	}

	return model.Card{
		Question:          question,
		Answer:            answer,
		Options:           options,
		AcceptableAnswers: splitList(cell(row, colAcceptableAnswers)),
		Difficulty:        difficulty,
		Category:          category,
		InputType:         inputType,
	}, nil
}

func cell(row []string, idx int) string {
	if idx < len(row) {
		return row[idx]
	}
	return ""
}

// splitList は "4|四|よん" のような区切り文字列をスライスに変換します
func splitList(s string) []string {
	var values []string
	for _, part := range strings.Split(s, "|") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	return values
}

func isHeaderRow(row []string) bool {
	return len(row) > 0 && strings.EqualFold(strings.TrimSpace(row[0]), "question")
}

func isBlankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
