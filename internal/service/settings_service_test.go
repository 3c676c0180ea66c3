// internal/service/settings_service_test.go
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

func setupTestDBSettings(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent), // テスト中はログを抑制
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.SettingsRecord{}))
	require.NoError(t, db.Exec("DELETE FROM settings_records").Error)
	return db
}

func Test_settingsService_GetSettings(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBSettings(t)
	repo := repository.NewGormSettingsRepository()
	svc := NewSettingsService(db, repo)

	t.Run("正常系: 保存データが無ければ既定値", func(t *testing.T) {
		got, err := svc.GetSettings(ctx)
		require.NoError(t, err)
		assert.Equal(t, model.DefaultSettings(), got)
	})

	t.Run("正常系: 部分的な保存データは既定値にマージされる", func(t *testing.T) {
		require.NoError(t, repo.Save(ctx, db, `{"graduatingInterval":3}`))

		got, err := svc.GetSettings(ctx)
		require.NoError(t, err)
		assert.Equal(t, 3, got.GraduatingInterval)
		// JSONに無いキーは既定値のまま
		assert.Equal(t, model.DefaultSettings().EasyBonus, got.EasyBonus)
		assert.Equal(t, model.DefaultSettings().LearningSteps, got.LearningSteps)
	})

	t.Run("異常系: 壊れたJSONは既定値にフォールバック", func(t *testing.T) {
		require.NoError(t, repo.Save(ctx, db, `{not json`))

		got, err := svc.GetSettings(ctx)
		require.NoError(t, err)
		assert.Equal(t, model.DefaultSettings(), got)
	})
}

func Test_settingsService_UpdateSettings(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBSettings(t)
	svc := NewSettingsService(db, repository.NewGormSettingsRepository())

	profile := model.DefaultSettings()
	profile.GraduatingInterval = 2
	profile.MaximumInterval = 14

	saved, err := svc.UpdateSettings(ctx, profile)
	require.NoError(t, err)
	assert.Equal(t, profile, saved)

	// 読み直しても同じ値が返る
	got, err := svc.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, profile, got)
}

func Test_settingsService_ApplyPreset(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBSettings(t)
	svc := NewSettingsService(db, repository.NewGormSettingsRepository())

	t.Run("正常系: beginnerプリセット", func(t *testing.T) {
		got, err := svc.ApplyPreset(ctx, model.PresetBeginner)
		require.NoError(t, err)
		assert.Equal(t, []int{5}, got.LearningSteps)
		assert.Equal(t, 1, got.GraduatingInterval)
		assert.Equal(t, 7, got.MaximumInterval)
		assert.Equal(t, 0.5, got.IntervalModifier)
		// プリセットで触らないキーは既定値のまま
		assert.Equal(t, model.DefaultSettings().EasyBonus, got.EasyBonus)
	})

	t.Run("異常系: 未知のプリセット名", func(t *testing.T) {
		_, err := svc.ApplyPreset(ctx, "expert")
		assert.ErrorIs(t, err, model.ErrInvalidInput)
	})
}

func Test_settingsService_ResetSettings(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBSettings(t)
	svc := NewSettingsService(db, repository.NewGormSettingsRepository())

	profile := model.DefaultSettings()
	profile.MaximumInterval = 60
	_, err := svc.UpdateSettings(ctx, profile)
	require.NoError(t, err)

	got, err := svc.ResetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.DefaultSettings(), got)

	reloaded, err := svc.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.DefaultSettings(), reloaded)
}

func Test_settingsService_Subscribe(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBSettings(t)
	svc := NewSettingsService(db, repository.NewGormSettingsRepository())

	var notified []model.SettingsProfile
	svc.Subscribe(func(p model.SettingsProfile) {
		notified = append(notified, p)
	})

	profile := model.DefaultSettings()
	profile.GraduatingInterval = 5
	_, err := svc.UpdateSettings(ctx, profile)
	require.NoError(t, err)

	_, err = svc.ResetSettings(ctx)
	require.NoError(t, err)

	require.Len(t, notified, 2)
	assert.Equal(t, 5, notified[0].GraduatingInterval)
	assert.Equal(t, model.DefaultSettings(), notified[1])
}
