//go:generate mockery --name DeckRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"go_math_adventure/internal/middleware"
	"go_math_adventure/internal/model"

	"gorm.io/gorm"
)

// DeckRepository インターフェース
type DeckRepository interface {
	Create(ctx context.Context, tx *gorm.DB, deck *model.Deck) error
	FindByID(ctx context.Context, db *gorm.DB, deckID string) (*model.Deck, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]*model.Deck, error)
	FindActiveCategories(ctx context.Context, db *gorm.DB) ([]string, error)
	Update(ctx context.Context, tx *gorm.DB, deckID string, updates map[string]interface{}) error
	Delete(ctx context.Context, tx *gorm.DB, deckID string) error
	DeleteAll(ctx context.Context, tx *gorm.DB) error
	Count(ctx context.Context, db *gorm.DB) (int64, error)
}

type gormDeckRepository struct{}

func NewGormDeckRepository() DeckRepository {
	return &gormDeckRepository{}
}

func (r *gormDeckRepository) Create(ctx context.Context, tx *gorm.DB, deck *model.Deck) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(deck)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return model.ErrConflict
		}
		logger.Error("Error creating deck in DB",
			"error", result.Error,
			"deck_id", deck.DeckID,
		)
		return fmt.Errorf("gormDeckRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormDeckRepository) FindByID(ctx context.Context, db *gorm.DB, deckID string) (*model.Deck, error) {
	logger := middleware.GetLogger(ctx)
	var deck model.Deck
	result := db.WithContext(ctx).Where("deck_id = ?", deckID).First(&deck)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding deck by ID in DB",
			"error", result.Error,
			"deck_id", deckID,
		)
		return nil, fmt.Errorf("gormDeckRepository.FindByID: %w", result.Error)
	}
	return &deck, nil
}

func (r *gormDeckRepository) FindAll(ctx context.Context, db *gorm.DB) ([]*model.Deck, error) {
	logger := middleware.GetLogger(ctx)
	var decks []*model.Deck
	result := db.WithContext(ctx).Order("created_at ASC, deck_id ASC").Find(&decks)
	if result.Error != nil {
		logger.Error("Error finding all decks in DB", "error", result.Error)
		return nil, fmt.Errorf("gormDeckRepository.FindAll: %w", result.Error)
	}
	return decks, nil
}

// FindActiveCategories は有効なデッキのカテゴリ一覧を返します (重複なし)
func (r *gormDeckRepository) FindActiveCategories(ctx context.Context, db *gorm.DB) ([]string, error) {
	logger := middleware.GetLogger(ctx)
	var categories []string
	result := db.WithContext(ctx).Model(&model.Deck{}).
		Where("is_active = ?", true).
		Distinct("category").
		Order("category ASC").
		Pluck("category", &categories)
	if result.Error != nil {
		logger.Error("Error finding active deck categories in DB", "error", result.Error)
		return nil, fmt.Errorf("gormDeckRepository.FindActiveCategories: %w", result.Error)
	}
	return categories, nil
}

func (r *gormDeckRepository) Update(ctx context.Context, tx *gorm.DB, deckID string, updates map[string]interface{}) error {
	logger := middleware.GetLogger(ctx)
	if len(updates) == 0 {
		return nil
	}
	result := tx.WithContext(ctx).Model(&model.Deck{}).Where("deck_id = ?", deckID).Updates(updates)
	if result.Error != nil {
		logger.Error("Error updating deck in DB",
			"error", result.Error,
			"deck_id", deckID,
		)
		return fmt.Errorf("gormDeckRepository.Update: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormDeckRepository) Delete(ctx context.Context, tx *gorm.DB, deckID string) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Where("deck_id = ?", deckID).Delete(&model.Deck{})
	if result.Error != nil {
		logger.Error("Error deleting deck in DB",
			"error", result.Error,
			"deck_id", deckID,
		)
		return fmt.Errorf("gormDeckRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormDeckRepository) DeleteAll(ctx context.Context, tx *gorm.DB) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&model.Deck{})
	if result.Error != nil {
		logger.Error("Error deleting all decks in DB", "error", result.Error)
		return fmt.Errorf("gormDeckRepository.DeleteAll: %w", result.Error)
	}
	return nil
}

func (r *gormDeckRepository) Count(ctx context.Context, db *gorm.DB) (int64, error) {
	var count int64
	result := db.WithContext(ctx).Model(&model.Deck{}).Count(&count)
	if result.Error != nil {
		return 0, fmt.Errorf("gormDeckRepository.Count: %w", result.Error)
	}
	return count, nil
}
