//go:generate mockery --name ProgressRepository --output ./mocks --outpkg mocks --case=underscore
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

// ProgressRepository は累積成績 (1行) を読み書きします
type ProgressRepository interface {
	Load(ctx context.Context, db *gorm.DB) (*model.SavedProgress, error)
	Save(ctx context.Context, tx *gorm.DB, progress *model.SavedProgress) error
	Delete(ctx context.Context, tx *gorm.DB) error
}

type gormProgressRepository struct{}

func NewGormProgressRepository() ProgressRepository {
	return &gormProgressRepository{}
}

func (r *gormProgressRepository) Load(ctx context.Context, db *gorm.DB) (*model.SavedProgress, error) {
	logger := middleware.GetLogger(ctx)
	var progress model.SavedProgress
	result := db.WithContext(ctx).First(&progress)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error loading saved progress from DB", "error", result.Error)
		return nil, fmt.Errorf("gormProgressRepository.Load: %w", result.Error)
	}
	return &progress, nil
}

// Save は成績の全カラムを上書きします (last-write-wins)
func (r *gormProgressRepository) Save(ctx context.Context, tx *gorm.DB, progress *model.SavedProgress) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(progress)
	if result.Error != nil {
		logger.Error("Error saving progress to DB", "error", result.Error)
		return fmt.Errorf("gormProgressRepository.Save: %w", result.Error)
	}
	return nil
}

func (r *gormProgressRepository) Delete(ctx context.Context, tx *gorm.DB) error {
	result := tx.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&model.SavedProgress{})
	if result.Error != nil {
		return fmt.Errorf("gormProgressRepository.Delete: %w", result.Error)
	}
	return nil
}
