// internal/excel/importer_test.go
package excel

import (
	"bytes"
	"strings"
	"testing"

	"go_math_adventure/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func Test_ParseCards_CSV(t *testing.T) {
	t.Run("正常系: ヘッダ付きCSV", func(t *testing.T) {
		csv := strings.Join([]string{
			"question,answer,options,acceptable_answers,difficulty,category,input_type",
			"2 + 3 = ?,5,4|5|6,,easy,addition,multiple-choice",
			"How do you spell 4?,Four,,four|FOUR,easy,spelling,text-input",
		}, "\n")

		result, err := ParseCards(strings.NewReader(csv), "cards.csv")
		require.NoError(t, err)
		require.Len(t, result.Cards, 2)
		assert.Empty(t, result.Errors)
		assert.Equal(t, 2, result.TotalProcessed)

		assert.Equal(t, "2 + 3 = ?", result.Cards[0].Question)
		assert.Equal(t, []string{"4", "5", "6"}, result.Cards[0].Options)
		assert.Equal(t, model.InputTypeMultipleChoice, result.Cards[0].InputType)

		assert.Equal(t, []string{"four", "FOUR"}, result.Cards[1].AcceptableAnswers)
		assert.Equal(t, model.InputTypeTextInput, result.Cards[1].InputType)
	})

	t.Run("正常系: 省略された列は補完される", func(t *testing.T) {
		// 難易度なし→medium、選択肢あり+形式なし→multiple-choice
		csv := "7 - 4 = ?,3,2|3|4,,,subtraction"

		result, err := ParseCards(strings.NewReader(csv), "cards.csv")
		require.NoError(t, err)
		require.Len(t, result.Cards, 1)
		assert.Equal(t, model.DifficultyMedium, result.Cards[0].Difficulty)
		assert.Equal(t, model.InputTypeMultipleChoice, result.Cards[0].InputType)
	})

	t.Run("異常系: 壊れた行は飛ばして残りを取り込む", func(t *testing.T) {
		csv := strings.Join([]string{
			"2 + 3 = ?,5,,,easy,addition,text-input",
			",5,,,easy,addition,",           // 問題文なし
			"3 + 3 = ?,6,,,unknown,addition", // 不正な難易度
			"4 + 4 = ?,8,,,easy,addition,text-input",
		}, "\n")

		result, err := ParseCards(strings.NewReader(csv), "cards.csv")
		require.NoError(t, err)
		assert.Len(t, result.Cards, 2)
		assert.Len(t, result.Errors, 2)
		assert.Equal(t, 4, result.TotalProcessed)
	})
}

func Test_ParseCards_XLSX(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	rows := [][]interface{}{
		{"question", "answer", "options", "acceptable_answers", "difficulty", "category", "input_type"},
		{"2 + 3 = ?", "5", "4|5|6", "", "easy", "addition", "multiple-choice"},
		{"9 - 2 = ?", "7", "", "", "medium", "subtraction", "text-input"},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))

	result, err := ParseCards(&buf, "cards.xlsx")
	require.NoError(t, err)
	require.Len(t, result.Cards, 2)
	assert.Empty(t, result.Errors)
	assert.Equal(t, "subtraction", result.Cards[1].Category)
	assert.Equal(t, model.DifficultyMedium, result.Cards[1].Difficulty)
}
