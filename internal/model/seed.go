// internal/model/seed.go
package model

import "fmt"

var numberWords = []string{
	"One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine", "Ten",
	"Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen", "Seventeen", "Eighteen", "Nineteen", "Twenty",
}

// DefaultCards は初期カタログを返します。初回起動時とリセット時に投入されます。
func DefaultCards() []Card {
	cards := []Card{
		// たし算・ひき算 (読み上げシナリオ付き)
		{
			CardID: 71, Question: "13 + 20 = ?", Answer: "33",
			Difficulty: DifficultyMedium, Category: "addition", InputType: InputTypeTextInput,
			AudioScenario:      "Maahira found 13 magical unicorn stickers in her backpack! Then her brother Yoosuf gave her 20 more because he felt generous. How many sparkly unicorn stickers does Maahira have now?",
			HideVisualQuestion: true,
			AcceptableAnswers:  []string{"33", "thirty-three", "thirty three"},
		},
		{
			CardID: 72, Question: "63 - 20 = ?", Answer: "43",
			Difficulty: DifficultyMedium, Category: "subtraction", InputType: InputTypeTextInput,
			AudioScenario:      "Yoosuf had 63 gummy bears but he got too excited and ate 20 of them before dinner! Maryam counted how many were left. How many gummy bears survived Yoosuf's snack attack?",
			HideVisualQuestion: true,
			AcceptableAnswers:  []string{"43", "forty-three", "forty three"},
		},
		{
			CardID: 73, Question: "41 + 40 = ?", Answer: "81",
			Difficulty: DifficultyMedium, Category: "addition", InputType: InputTypeTextInput,
			AudioScenario:      "Ms. Deenihan brought 41 colorful pencils to class. Then Ahmed's mom donated 40 more pencils because she wanted to help! How many pencils does the class have now for their art project?",
			HideVisualQuestion: true,
			AcceptableAnswers:  []string{"81", "eighty-one", "eighty one"},
		},
		{
			CardID: 74, Question: "81 - 40 = ?", Answer: "41",
			Difficulty: DifficultyMedium, Category: "subtraction", InputType: InputTypeTextInput,
			AudioScenario:      "Haaniya collected 81 beautiful seashells at the beach. But then a sneaky seagull flew away with 40 of them! How many seashells does Haaniya still have?",
			HideVisualQuestion: true,
			AcceptableAnswers:  []string{"41", "forty-one", "forty one"},
		},
		{CardID: 79, Question: "31 + 40 = ?", Answer: "71", Difficulty: DifficultyMedium, Category: "addition", InputType: InputTypeTextInput},
		{CardID: 80, Question: "81 - 40 = ?", Answer: "41", Difficulty: DifficultyMedium, Category: "subtraction", InputType: InputTypeTextInput},
		{CardID: 81, Question: "26 + 60 = ?", Answer: "86", Difficulty: DifficultyMedium, Category: "addition", InputType: InputTypeTextInput},
		{CardID: 82, Question: "96 - 60 = ?", Answer: "36", Difficulty: DifficultyMedium, Category: "subtraction", InputType: InputTypeTextInput},
		{CardID: 83, Question: "42 + 50 = ?", Answer: "92", Difficulty: DifficultyMedium, Category: "addition", InputType: InputTypeTextInput},
		{CardID: 84, Question: "92 - 50 = ?", Answer: "42", Difficulty: DifficultyMedium, Category: "subtraction", InputType: InputTypeTextInput},
	}

	// かけ算 (2の段〜5の段)
	id := int64(151)
	for _, table := range []int{2, 3, 4, 5} {
		for n := 1; n <= 10; n++ {
			cards = append(cards, Card{
				CardID:     id,
				Question:   fmt.Sprintf("%d × %d = ?", table, n),
				Answer:     fmt.Sprintf("%d", table*n),
				Difficulty: DifficultyEasy,
				Category:   "multiplication",
				InputType:  InputTypeTextInput,
			})
			id++
		}
	}

	// 数字のスペル (1〜20)
	for i, word := range numberWords {
		cards = append(cards, Card{
			CardID:     int64(51 + i),
			Question:   fmt.Sprintf("Spell the number %d", i+1),
			Answer:     word,
			Difficulty: DifficultyEasy,
			Category:   "spelling",
			InputType:  InputTypeTextInput,
		})
	}

	return cards
}
