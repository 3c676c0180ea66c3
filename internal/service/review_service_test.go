// internal/service/review_service_test.go
package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go_math_adventure/internal/config"
	"go_math_adventure/internal/model"
	"go_math_adventure/internal/repository"
	"go_math_adventure/internal/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var reviewTestToday = time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)

func setupTestDBReview(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent), // テスト中はログを抑制
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Card{}, &model.SchedulingState{}, &model.SettingsRecord{}))
	require.NoError(t, db.Exec("DELETE FROM settings_records").Error)
	return db
}

func newTestReviewService(t *testing.T, db *gorm.DB, cardRepo repository.CardRepository, schedRepo repository.SchedulingRepository) *reviewService {
	t.Helper()
	settingsSvc := NewSettingsService(db, repository.NewGormSettingsRepository())
	cfg := &config.Config{App: config.AppConfig{ReviewLimit: 10, NewCardLimit: 3}}
	svc := NewReviewService(db, cardRepo, schedRepo, settingsSvc, cfg).(*reviewService)
	svc.now = func() time.Time { return reviewTestToday } // 時刻を固定
	return svc
}

func reviewTestCards() []*model.Card {
	return []*model.Card{
		{CardID: 1, Question: "2 + 3 = ?", Answer: "5", Difficulty: model.DifficultyEasy, Category: "addition"},
		{CardID: 2, Question: "7 - 4 = ?", Answer: "3", Difficulty: model.DifficultyEasy, Category: "subtraction"},
		{CardID: 3, Question: "3 × 3 = ?", Answer: "9", Difficulty: model.DifficultyMedium, Category: "multiplication"},
	}
}

func Test_reviewService_GetDueCards(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBReview(t)
	mockCardRepo := new(mocks.CardRepository)
	mockSchedRepo := new(mocks.SchedulingRepository)
	svc := newTestReviewService(t, db, mockCardRepo, mockSchedRepo)

	t.Run("正常系: 期限到来カードと未学習カードが返る", func(t *testing.T) {
		mockCardRepo.On("FindAll", ctx, mock.Anything).Return(reviewTestCards(), nil).Once()
		// カード1は明日が復習日、カード2は昨日が復習日。カード3は状態なし(未学習扱い)
		mockSchedRepo.On("FindAll", ctx, mock.Anything).Return([]*model.SchedulingState{
			{CardID: 1, EaseFactor: 2.5, Interval: 2, Repetitions: 2, NextReviewDate: model.DateOnly(reviewTestToday).AddDate(0, 0, 1)},
			{CardID: 2, EaseFactor: 2.5, Interval: 1, Repetitions: 1, NextReviewDate: model.DateOnly(reviewTestToday).AddDate(0, 0, -1)},
		}, nil).Once()

		due, err := svc.GetDueCards(ctx)
		require.NoError(t, err)
		require.Len(t, due, 2)
		assert.Equal(t, int64(2), due[0].Card.CardID)
		assert.Equal(t, int64(3), due[1].Card.CardID)
	})

	t.Run("正常系: 壊れた状態行は未学習として扱う", func(t *testing.T) {
		mockCardRepo.On("FindAll", ctx, mock.Anything).Return(reviewTestCards()[:1], nil).Once()
		mockSchedRepo.On("FindAll", ctx, mock.Anything).Return([]*model.SchedulingState{
			{CardID: 1, EaseFactor: 0, Interval: 5, Repetitions: 3}, // EaseFactorが不正
		}, nil).Once()

		due, err := svc.GetDueCards(ctx)
		require.NoError(t, err)
		require.Len(t, due, 1)
		assert.Equal(t, 0, due[0].State.Repetitions)
		assert.Equal(t, model.DefaultEaseFactor, due[0].State.EaseFactor)
	})

	t.Run("異常系: リポジトリエラー", func(t *testing.T) {
		mockCardRepo.On("FindAll", ctx, mock.Anything).Return(nil, errors.New("db error")).Once()

		_, err := svc.GetDueCards(ctx)
		assert.ErrorIs(t, err, model.ErrInternalServer)
	})

	mockCardRepo.AssertExpectations(t)
	mockSchedRepo.AssertExpectations(t)
}

func Test_reviewService_GetNewCards(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBReview(t)
	mockCardRepo := new(mocks.CardRepository)
	mockSchedRepo := new(mocks.SchedulingRepository)
	svc := newTestReviewService(t, db, mockCardRepo, mockSchedRepo)

	mockCardRepo.On("FindAll", ctx, mock.Anything).Return(reviewTestCards(), nil).Once()
	// カード2だけ学習済み
	mockSchedRepo.On("FindAll", ctx, mock.Anything).Return([]*model.SchedulingState{
		{CardID: 2, EaseFactor: 2.5, Interval: 1, Repetitions: 1, NextReviewDate: model.DateOnly(reviewTestToday)},
	}, nil).Once()

	fresh, err := svc.GetNewCards(ctx)
	require.NoError(t, err)
	require.Len(t, fresh, 2)
	assert.Equal(t, int64(1), fresh[0].Card.CardID)
	assert.Equal(t, int64(3), fresh[1].Card.CardID)

	mockCardRepo.AssertExpectations(t)
	mockSchedRepo.AssertExpectations(t)
}

func Test_reviewService_GetReviewCounts(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBReview(t)
	mockCardRepo := new(mocks.CardRepository)
	mockSchedRepo := new(mocks.SchedulingRepository)
	svc := newTestReviewService(t, db, mockCardRepo, mockSchedRepo)

	mockCardRepo.On("FindAll", ctx, mock.Anything).Return(reviewTestCards(), nil).Once()
	mockSchedRepo.On("FindAll", ctx, mock.Anything).Return([]*model.SchedulingState{
		// 期限到来済みの復習カード
		{CardID: 1, EaseFactor: 2.5, Interval: 2, Repetitions: 2, NextReviewDate: model.DateOnly(reviewTestToday).AddDate(0, 0, -2)},
		// まだ期限が来ていない復習カード
		{CardID: 2, EaseFactor: 2.5, Interval: 5, Repetitions: 3, NextReviewDate: model.DateOnly(reviewTestToday).AddDate(0, 0, 3)},
	}, nil).Once()

	counts, err := svc.GetReviewCounts(ctx)
	require.NoError(t, err)
	// 未学習のカード3も当日期限なのでDueに含まれる
	assert.Equal(t, 2, counts.Due)
	assert.Equal(t, 1, counts.New)
	assert.Equal(t, 1, counts.Review)

	mockCardRepo.AssertExpectations(t)
	mockSchedRepo.AssertExpectations(t)
}

func Test_reviewService_SubmitGrade(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBReview(t)

	t.Run("正常系: 状態が無いカードは新規作成して採点", func(t *testing.T) {
		mockCardRepo := new(mocks.CardRepository)
		mockSchedRepo := new(mocks.SchedulingRepository)
		svc := newTestReviewService(t, db, mockCardRepo, mockSchedRepo)

		card := reviewTestCards()[0]
		mockCardRepo.On("FindByID", ctx, mock.Anything, int64(1)).Return(card, nil).Once()
		mockSchedRepo.On("FindByCardID", ctx, mock.Anything, int64(1)).Return(nil, model.ErrNotFound).Once()
		mockSchedRepo.On("Upsert", ctx, mock.Anything, mock.AnythingOfType("*model.SchedulingState")).Return(nil).Once()

		state, err := svc.SubmitGrade(ctx, 1, model.GradeGood)
		require.NoError(t, err)
		// 初回正解は卒業間隔(既定1日)
		assert.Equal(t, 1, state.Interval)
		assert.Equal(t, 1, state.Repetitions)
		assert.Equal(t, model.DateOnly(reviewTestToday).AddDate(0, 0, 1), state.NextReviewDate)

		mockCardRepo.AssertExpectations(t)
		mockSchedRepo.AssertExpectations(t)
	})

	t.Run("正常系: 既存状態を進める", func(t *testing.T) {
		mockCardRepo := new(mocks.CardRepository)
		mockSchedRepo := new(mocks.SchedulingRepository)
		svc := newTestReviewService(t, db, mockCardRepo, mockSchedRepo)

		card := reviewTestCards()[0]
		existing := &model.SchedulingState{
			CardID: 1, EaseFactor: 2.5, Interval: 2, Repetitions: 2,
			NextReviewDate: model.DateOnly(reviewTestToday),
		}
		mockCardRepo.On("FindByID", ctx, mock.Anything, int64(1)).Return(card, nil).Once()
		mockSchedRepo.On("FindByCardID", ctx, mock.Anything, int64(1)).Return(existing, nil).Once()
		mockSchedRepo.On("Upsert", ctx, mock.Anything, mock.AnythingOfType("*model.SchedulingState")).Return(nil).Once()

		state, err := svc.SubmitGrade(ctx, 1, model.GradeGood)
		require.NoError(t, err)
		// round(2 * 2.5 * 0.8) = 4
		assert.Equal(t, 4, state.Interval)
		assert.Equal(t, 3, state.Repetitions)

		mockCardRepo.AssertExpectations(t)
		mockSchedRepo.AssertExpectations(t)
	})

	t.Run("異常系: 採点値が範囲外", func(t *testing.T) {
		mockCardRepo := new(mocks.CardRepository)
		mockSchedRepo := new(mocks.SchedulingRepository)
		svc := newTestReviewService(t, db, mockCardRepo, mockSchedRepo)

		_, err := svc.SubmitGrade(ctx, 1, 6)
		assert.ErrorIs(t, err, model.ErrInvalidInput)
	})

	t.Run("異常系: カードが存在しない", func(t *testing.T) {
		mockCardRepo := new(mocks.CardRepository)
		mockSchedRepo := new(mocks.SchedulingRepository)
		svc := newTestReviewService(t, db, mockCardRepo, mockSchedRepo)

		mockCardRepo.On("FindByID", ctx, mock.Anything, int64(99)).Return(nil, model.ErrNotFound).Once()

		_, err := svc.SubmitGrade(ctx, 99, model.GradeGood)
		assert.ErrorIs(t, err, model.ErrNotFound)

		mockCardRepo.AssertExpectations(t)
	})
}
