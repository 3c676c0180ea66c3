//go:generate mockery --name SettingsRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"go_math_adventure/internal/middleware"
	"go_math_adventure/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// 設定プロファイルは1行だけ保持する
const settingsRecordID = 1

// SettingsRepository は設定プロファイルのJSONブロブを読み書きします
type SettingsRepository interface {
	Load(ctx context.Context, db *gorm.DB) (string, error)
	Save(ctx context.Context, tx *gorm.DB, data string) error
	Delete(ctx context.Context, tx *gorm.DB) error
}

type gormSettingsRepository struct{}

func NewGormSettingsRepository() SettingsRepository {
	return &gormSettingsRepository{}
}

func (r *gormSettingsRepository) Load(ctx context.Context, db *gorm.DB) (string, error) {
	logger := middleware.GetLogger(ctx)
	var record model.SettingsRecord
	result := db.WithContext(ctx).Where("id = ?", settingsRecordID).First(&record)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return "", model.ErrNotFound
		}
		logger.Error("Error loading settings record from DB", "error", result.Error)
		return "", fmt.Errorf("gormSettingsRepository.Load: %w", result.Error)
	}
	return record.Data, nil
}

func (r *gormSettingsRepository) Save(ctx context.Context, tx *gorm.DB, data string) error {
	logger := middleware.GetLogger(ctx)
	record := model.SettingsRecord{ID: settingsRecordID, Data: data}
	result := tx.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&record)
	if result.Error != nil {
		logger.Error("Error saving settings record to DB", "error", result.Error)
		return fmt.Errorf("gormSettingsRepository.Save: %w", result.Error)
	}
	return nil
}

// Delete は保存済みプロファイルを消して既定値に戻します
func (r *gormSettingsRepository) Delete(ctx context.Context, tx *gorm.DB) error {
	result := tx.WithContext(ctx).Where("id = ?", settingsRecordID).Delete(&model.SettingsRecord{})
	if result.Error != nil {
		return fmt.Errorf("gormSettingsRepository.Delete: %w", result.Error)
	}
	return nil
}
