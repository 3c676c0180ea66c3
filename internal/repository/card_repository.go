//go:generate mockery --name CardRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"go_math_adventure/internal/middleware"
	"go_math_adventure/internal/model"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// CardRepository インターフェース
type CardRepository interface {
	Create(ctx context.Context, tx *gorm.DB, card *model.Card) error
	FindByID(ctx context.Context, db *gorm.DB, cardID int64) (*model.Card, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]*model.Card, error)
	FindByCategory(ctx context.Context, db *gorm.DB, category string) ([]*model.Card, error)
	Update(ctx context.Context, tx *gorm.DB, cardID int64, updates map[string]interface{}) error
	Delete(ctx context.Context, tx *gorm.DB, cardID int64) error
	DeleteAll(ctx context.Context, tx *gorm.DB) error
}

type gormCardRepository struct{}

func NewGormCardRepository() CardRepository {
	return &gormCardRepository{}
}

// isUniqueViolation はドライバ依存の一意制約違反を判定します
// (postgres: SQLSTATE 23505, sqlite: GORMの ErrDuplicatedKey)
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func (r *gormCardRepository) Create(ctx context.Context, tx *gorm.DB, card *model.Card) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(card)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return model.ErrConflict
		}
		logger.Error("Error creating card in DB",
			"error", result.Error,
			"question", card.Question,
		)
		return fmt.Errorf("gormCardRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormCardRepository) FindByID(ctx context.Context, db *gorm.DB, cardID int64) (*model.Card, error) {
	logger := middleware.GetLogger(ctx)
	var card model.Card
	result := db.WithContext(ctx).Where("card_id = ?", cardID).First(&card)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding card by ID in DB",
			"error", result.Error,
			"card_id", cardID,
		)
		return nil, fmt.Errorf("gormCardRepository.FindByID: %w", result.Error)
	}
	return &card, nil
}

func (r *gormCardRepository) FindAll(ctx context.Context, db *gorm.DB) ([]*model.Card, error) {
	logger := middleware.GetLogger(ctx)
	var cards []*model.Card
	result := db.WithContext(ctx).Order("card_id ASC").Find(&cards)
	if result.Error != nil {
		logger.Error("Error finding all cards in DB", "error", result.Error)
		return nil, fmt.Errorf("gormCardRepository.FindAll: %w", result.Error)
	}
	return cards, nil
}

func (r *gormCardRepository) FindByCategory(ctx context.Context, db *gorm.DB, category string) ([]*model.Card, error) {
	logger := middleware.GetLogger(ctx)
	var cards []*model.Card
	result := db.WithContext(ctx).Where("category = ?", category).Order("card_id ASC").Find(&cards)
	if result.Error != nil {
		logger.Error("Error finding cards by category in DB",
			"error", result.Error,
			"category", category,
		)
		return nil, fmt.Errorf("gormCardRepository.FindByCategory: %w", result.Error)
	}
	return cards, nil
}

func (r *gormCardRepository) Update(ctx context.Context, tx *gorm.DB, cardID int64, updates map[string]interface{}) error {
	logger := middleware.GetLogger(ctx)
	if len(updates) == 0 {
		return nil
	}
	result := tx.WithContext(ctx).Model(&model.Card{}).Where("card_id = ?", cardID).Updates(updates)
	if result.Error != nil {
		logger.Error("Error updating card in DB",
			"error", result.Error,
			"card_id", cardID,
		)
		return fmt.Errorf("gormCardRepository.Update: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormCardRepository) Delete(ctx context.Context, tx *gorm.DB, cardID int64) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Delete(&model.Card{}, cardID)
	if result.Error != nil {
		logger.Error("Error deleting card in DB",
			"error", result.Error,
			"card_id", cardID,
		)
		return fmt.Errorf("gormCardRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

// DeleteAll はカタログ差し替え用に全カードを物理削除します
func (r *gormCardRepository) DeleteAll(ctx context.Context, tx *gorm.DB) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(&model.Card{})
	if result.Error != nil {
		logger.Error("Error deleting all cards in DB", "error", result.Error)
		return fmt.Errorf("gormCardRepository.DeleteAll: %w", result.Error)
	}
	return nil
}
