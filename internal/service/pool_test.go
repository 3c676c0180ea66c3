// internal/service/pool_test.go
package service

import (
	"testing"

	"go_math_adventure/internal/model"

	"github.com/stretchr/testify/assert"
)

func poolCard(id int64, difficulty, category string) *model.Card {
	return &model.Card{CardID: id, Difficulty: difficulty, Category: category}
}

func poolIDs(pool []*model.Card) []int64 {
	ids := make([]int64, 0, len(pool))
	for _, c := range pool {
		ids = append(ids, c.CardID)
	}
	return ids
}

func Test_BuildPool_絞り込み(t *testing.T) {
	catalog := []*model.Card{
		poolCard(1, model.DifficultyEasy, "addition"),
		poolCard(2, model.DifficultyMedium, "addition"),
		poolCard(3, model.DifficultyEasy, "subtraction"),
		poolCard(4, model.DifficultyHard, "multiplication"),
		poolCard(5, model.DifficultyEasy, "spelling"),
	}

	tests := []struct {
		name     string
		filter   PoolFilter
		expected []int64
	}{
		{
			name:     "正常系: 難易度とカテゴリの両方に合致するカードのみ",
			filter:   PoolFilter{Difficulties: []string{"easy"}, Categories: []string{"addition", "subtraction"}},
			expected: []int64{1, 3},
		},
		{
			name:     "正常系: 複数難易度",
			filter:   PoolFilter{Difficulties: []string{"easy", "medium"}, Categories: []string{"addition"}},
			expected: []int64{1, 2},
		},
		{
			name:     "正常系: カタログの並び順が保持される",
			filter:   PoolFilter{Difficulties: []string{"easy", "medium", "hard"}, Categories: []string{"addition", "subtraction", "multiplication", "spelling"}},
			expected: []int64{1, 2, 3, 4, 5},
		},
		{
			name:     "正常系: カテゴリが空なら空プール",
			filter:   PoolFilter{Difficulties: []string{"easy"}, Categories: nil},
			expected: []int64{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pool, rolledOver := BuildPool(catalog, tc.filter, nil)
			assert.False(t, rolledOver)
			assert.Equal(t, tc.expected, poolIDs(pool))
		})
	}
}

func Test_BuildPool_正解済みカードの除外(t *testing.T) {
	catalog := []*model.Card{
		poolCard(1, model.DifficultyEasy, "addition"),
		poolCard(2, model.DifficultyEasy, "addition"),
		poolCard(3, model.DifficultyEasy, "addition"),
	}
	filter := PoolFilter{Difficulties: []string{"easy"}, Categories: []string{"addition"}}

	pool, rolledOver := BuildPool(catalog, filter, map[int64]bool{2: true})

	assert.False(t, rolledOver)
	assert.Equal(t, []int64{1, 3}, poolIDs(pool))
}

func Test_BuildPool_周回完了でロールオーバー(t *testing.T) {
	catalog := []*model.Card{
		poolCard(1, model.DifficultyEasy, "addition"),
		poolCard(2, model.DifficultyEasy, "addition"),
	}
	filter := PoolFilter{Difficulties: []string{"easy"}, Categories: []string{"addition"}}

	// 全カード正解済みでも、次の周回として全カードを返す
	pool, rolledOver := BuildPool(catalog, filter, map[int64]bool{1: true, 2: true})

	assert.True(t, rolledOver)
	assert.Equal(t, []int64{1, 2}, poolIDs(pool))
}

func Test_BuildPool_対象カードなし(t *testing.T) {
	catalog := []*model.Card{
		poolCard(1, model.DifficultyHard, "multiplication"),
	}
	filter := PoolFilter{Difficulties: []string{"easy"}, Categories: []string{"addition"}}

	// フィルタ自体に合致しない場合はロールオーバーではなく空プール
	pool, rolledOver := BuildPool(catalog, filter, map[int64]bool{1: true})

	assert.False(t, rolledOver)
	assert.Empty(t, pool)
}
