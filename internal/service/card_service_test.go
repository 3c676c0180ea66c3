// internal/service/card_service_test.go
package service

import (
	"context"
	"testing"

	"go_math_adventure/internal/model"
	"go_math_adventure/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDBCard(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent), // テスト中はログを抑制
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Card{}, &model.SchedulingState{}))
	require.NoError(t, db.Exec("DELETE FROM cards").Error)
	require.NoError(t, db.Exec("DELETE FROM scheduling_states").Error)
	return db
}

func newTestCardService(db *gorm.DB) CardService {
	return NewCardService(db, repository.NewGormCardRepository(), repository.NewGormSchedulingRepository())
}

func Test_cardService_PostCard(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBCard(t)
	svc := newTestCardService(db)

	t.Run("正常系: 選択式カード作成", func(t *testing.T) {
		card, err := svc.PostCard(ctx, &model.PostCardRequest{
			Question:   "2 + 3 = ?",
			Answer:     "5",
			Options:    []string{"4", "5", "6"},
			Difficulty: model.DifficultyEasy,
			Category:   "addition",
			InputType:  model.InputTypeMultipleChoice,
		})
		require.NoError(t, err)
		assert.NotZero(t, card.CardID)
		assert.Equal(t, "5", card.Answer)
	})

	t.Run("異常系: 選択肢に正答が含まれない", func(t *testing.T) {
		_, err := svc.PostCard(ctx, &model.PostCardRequest{
			Question:   "2 + 3 = ?",
			Answer:     "5",
			Options:    []string{"4", "6"},
			Difficulty: model.DifficultyEasy,
			Category:   "addition",
			InputType:  model.InputTypeMultipleChoice,
		})
		assert.ErrorIs(t, err, model.ErrInvalidInput)
	})
}

func Test_cardService_ImportCards(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBCard(t)
	svc := newTestCardService(db)

	seedCards := []model.Card{
		{CardID: 71, Question: "2 + 3 = ?", Answer: "5", Difficulty: model.DifficultyEasy, Category: "addition", InputType: model.InputTypeTextInput},
		{CardID: 72, Question: "7 - 4 = ?", Answer: "3", Difficulty: model.DifficultyEasy, Category: "subtraction", InputType: model.InputTypeTextInput},
	}

	t.Run("正常系: replace=trueでIDごと置き換え", func(t *testing.T) {
		imported, err := svc.ImportCards(ctx, seedCards, true)
		require.NoError(t, err)
		assert.Equal(t, 2, imported)

		cards, err := svc.ListCards(ctx)
		require.NoError(t, err)
		require.Len(t, cards, 2)
		assert.Equal(t, int64(71), cards[0].CardID)
		assert.Equal(t, int64(72), cards[1].CardID)
	})

	t.Run("正常系: replace=falseは追記してIDを採番し直す", func(t *testing.T) {
		imported, err := svc.ImportCards(ctx, []model.Card{
			{CardID: 71, Question: "9 + 9 = ?", Answer: "18", Difficulty: model.DifficultyMedium, Category: "addition", InputType: model.InputTypeTextInput},
		}, false)
		require.NoError(t, err)
		assert.Equal(t, 1, imported)

		cards, err := svc.ListCards(ctx)
		require.NoError(t, err)
		require.Len(t, cards, 3)
		// 既存の71とは衝突しない
		assert.NotEqual(t, int64(71), cards[2].CardID)
	})

	t.Run("異常系: 不正な難易度の行があれば全体を取り込まない", func(t *testing.T) {
		before, err := svc.ListCards(ctx)
		require.NoError(t, err)

		_, err = svc.ImportCards(ctx, []model.Card{
			{Question: "5 + 5 = ?", Answer: "10", Difficulty: model.DifficultyEasy, Category: "addition", InputType: model.InputTypeTextInput},
			{Question: "1 + 1 = ?", Answer: "2", Difficulty: "expert", Category: "addition", InputType: model.InputTypeTextInput},
		}, false)
		assert.ErrorIs(t, err, model.ErrInvalidInput)

		// エラーには何行目が弾かれたかが入る
		var appErr *model.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "cards[1].difficulty", appErr.Detail.Field)

		after, err := svc.ListCards(ctx)
		require.NoError(t, err)
		assert.Len(t, after, len(before))
	})

	t.Run("異常系: 同一ペイロード内のID重複は行番号つきで報告", func(t *testing.T) {
		_, err := svc.ImportCards(ctx, []model.Card{
			{CardID: 81, Question: "2 + 3 = ?", Answer: "5", Difficulty: model.DifficultyEasy, Category: "addition", InputType: model.InputTypeTextInput},
			{CardID: 81, Question: "7 - 4 = ?", Answer: "3", Difficulty: model.DifficultyEasy, Category: "subtraction", InputType: model.InputTypeTextInput},
		}, true)
		assert.ErrorIs(t, err, model.ErrConflict)

		var appErr *model.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "DUPLICATE_CARD_ID", appErr.Detail.Code)
		assert.Equal(t, "cards[1].id", appErr.Detail.Field)
	})
}

func Test_cardService_DeleteCard(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBCard(t)
	svc := newTestCardService(db)

	card, err := svc.PostCard(ctx, &model.PostCardRequest{
		Question: "2 + 3 = ?", Answer: "5",
		Difficulty: model.DifficultyEasy, Category: "addition", InputType: model.InputTypeTextInput,
	})
	require.NoError(t, err)

	// 採点してスケジュール状態を作っておく
	require.NoError(t, db.Create(&model.SchedulingState{
		CardID: card.CardID, EaseFactor: 2.5, Interval: 1, Repetitions: 1,
	}).Error)

	require.NoError(t, svc.DeleteCard(ctx, card.CardID))

	_, err = svc.GetCard(ctx, card.CardID)
	assert.ErrorIs(t, err, model.ErrNotFound)

	// スケジュール状態も同時に消える
	var count int64
	require.NoError(t, db.Model(&model.SchedulingState{}).Where("card_id = ?", card.CardID).Count(&count).Error)
	assert.Zero(t, count)
}

func Test_cardService_ResetCards(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBCard(t)
	svc := newTestCardService(db)

	_, err := svc.PostCard(ctx, &model.PostCardRequest{
		Question: "カスタム", Answer: "x",
		Difficulty: model.DifficultyHard, Category: "addition", InputType: model.InputTypeTextInput,
	})
	require.NoError(t, err)

	require.NoError(t, svc.ResetCards(ctx))

	cards, err := svc.ListCards(ctx)
	require.NoError(t, err)
	assert.Len(t, cards, len(model.DefaultCards()))
}

func Test_cardService_EnsureSeedData(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBCard(t)
	svc := newTestCardService(db)

	// 空のカタログには初期カードが入る
	require.NoError(t, svc.EnsureSeedData(ctx))
	cards, err := svc.ListCards(ctx)
	require.NoError(t, err)
	assert.Len(t, cards, len(model.DefaultCards()))

	// 2回呼んでも重複投入しない
	require.NoError(t, svc.EnsureSeedData(ctx))
	cards, err = svc.ListCards(ctx)
	require.NoError(t, err)
	assert.Len(t, cards, len(model.DefaultCards()))
}
