//go:generate mockery --name SchedulingRepository --output ./mocks --outpkg mocks --case=underscore
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

// SchedulingRepository はカードごとの復習スケジュール状態を管理します
type SchedulingRepository interface {
	FindByCardID(ctx context.Context, db *gorm.DB, cardID int64) (*model.SchedulingState, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]*model.SchedulingState, error)
	Upsert(ctx context.Context, tx *gorm.DB, state *model.SchedulingState) error
	DeleteByCardID(ctx context.Context, tx *gorm.DB, cardID int64) error
	DeleteAll(ctx context.Context, tx *gorm.DB) error
}

type gormSchedulingRepository struct{}

func NewGormSchedulingRepository() SchedulingRepository {
	return &gormSchedulingRepository{}
}

func (r *gormSchedulingRepository) FindByCardID(ctx context.Context, db *gorm.DB, cardID int64) (*model.SchedulingState, error) {
	logger := middleware.GetLogger(ctx)
	var state model.SchedulingState
	result := db.WithContext(ctx).Where("card_id = ?", cardID).First(&state)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding scheduling state in DB",
			"error", result.Error,
			"card_id", cardID,
		)
		return nil, fmt.Errorf("gormSchedulingRepository.FindByCardID: %w", result.Error)
	}
	return &state, nil
}

func (r *gormSchedulingRepository) FindAll(ctx context.Context, db *gorm.DB) ([]*model.SchedulingState, error) {
	logger := middleware.GetLogger(ctx)
	var states []*model.SchedulingState
	result := db.WithContext(ctx).Find(&states)
	if result.Error != nil {
		logger.Error("Error finding scheduling states in DB", "error", result.Error)
		return nil, fmt.Errorf("gormSchedulingRepository.FindAll: %w", result.Error)
	}
	return states, nil
}

// Upsert は主キー(card_id)衝突時に全カラムを更新します
func (r *gormSchedulingRepository) Upsert(ctx context.Context, tx *gorm.DB, state *model.SchedulingState) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "card_id"}},
		UpdateAll: true,
	}).Create(state)
	if result.Error != nil {
		logger.Error("Error upserting scheduling state in DB",
			"error", result.Error,
			"card_id", state.CardID,
		)
		return fmt.Errorf("gormSchedulingRepository.Upsert: %w", result.Error)
	}
	return nil
}

func (r *gormSchedulingRepository) DeleteByCardID(ctx context.Context, tx *gorm.DB, cardID int64) error {
	result := tx.WithContext(ctx).Where("card_id = ?", cardID).Delete(&model.SchedulingState{})
	if result.Error != nil {
		return fmt.Errorf("gormSchedulingRepository.DeleteByCardID: %w", result.Error)
	}
	return nil
}

// DeleteAll は学習リセット用に全スケジュール状態を削除します
func (r *gormSchedulingRepository) DeleteAll(ctx context.Context, tx *gorm.DB) error {
	result := tx.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&model.SchedulingState{})
	if result.Error != nil {
		return fmt.Errorf("gormSchedulingRepository.DeleteAll: %w", result.Error)
	}
	return nil
}
