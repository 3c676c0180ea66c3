// internal/service/deck_service.go
package service

import (
	"context"
	"errors"

	"go_math_adventure/internal/middleware"
	"go_math_adventure/internal/model"
	"go_math_adventure/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DeckService はデッキの管理と、出題対象カテゴリの解決を提供します
type DeckService interface {
	ListDecks(ctx context.Context) ([]*model.Deck, error)
	PostDeck(ctx context.Context, req *model.PostDeckRequest) (*model.Deck, error)
	PatchDeck(ctx context.Context, deckID string, req *model.PatchDeckRequest) (*model.Deck, error)
	DeleteDeck(ctx context.Context, deckID string) error
	SetDeckActive(ctx context.Context, deckID string, isActive bool) (*model.Deck, error)
	GetDeckStats(ctx context.Context, deckID string) (*model.DeckStats, error)
	ResetDecks(ctx context.Context) error
	ActiveCategories(ctx context.Context) ([]string, error)
	EnsureSeedData(ctx context.Context) error
}

type deckService struct {
	db       *gorm.DB
	deckRepo repository.DeckRepository
	cardRepo repository.CardRepository
}

func NewDeckService(db *gorm.DB, deckRepo repository.DeckRepository, cardRepo repository.CardRepository) DeckService {
	return &deckService{
		db:       db,
		deckRepo: deckRepo,
		cardRepo: cardRepo,
	}
}

func (s *deckService) ListDecks(ctx context.Context) ([]*model.Deck, error) {
	logger := middleware.GetLogger(ctx)
	decks, err := s.deckRepo.FindAll(ctx, s.db)
	if err != nil {
		logger.Error("Error listing decks", "error", err)
		return nil, model.ErrInternalServer
	}
	return decks, nil
}

// PostDeck はカスタムデッキを作成します。IDは custom_<uuid> で採番します
func (s *deckService) PostDeck(ctx context.Context, req *model.PostDeckRequest) (*model.Deck, error) {
	logger := middleware.GetLogger(ctx)

	deck := &model.Deck{
		DeckID:      "custom_" + uuid.New().String(),
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		IsActive:    true,
		Color:       req.Color,
		Emoji:       req.Emoji,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.deckRepo.Create(ctx, tx, deck)
	})
	if err != nil {
		if errors.Is(err, model.ErrConflict) {
			return nil, err
		}
		logger.Error("Transaction failed for PostDeck", "error", err)
		return nil, model.ErrInternalServer
	}
	return deck, nil
}

func (s *deckService) PatchDeck(ctx context.Context, deckID string, req *model.PatchDeckRequest) (*model.Deck, error) {
	logger := middleware.GetLogger(ctx)

	var updated *model.Deck
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.deckRepo.FindByID(ctx, tx, deckID); err != nil {
			return err
		}

		updates := make(map[string]interface{})
		if req.Name != nil {
			updates["name"] = *req.Name
		}
		if req.Description != nil {
			updates["description"] = *req.Description
		}
		if req.Category != nil {
			updates["category"] = *req.Category
		}
		if req.Color != nil {
			updates["color"] = *req.Color
		}
		if req.Emoji != nil {
			updates["emoji"] = *req.Emoji
		}
		if err := s.deckRepo.Update(ctx, tx, deckID, updates); err != nil {
			return err
		}

		var err error
		updated, err = s.deckRepo.FindByID(ctx, tx, deckID)
		return err
	})
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, err
		}
		logger.Error("Transaction failed for PatchDeck", "error", err, "deck_id", deckID)
		return nil, model.ErrInternalServer
	}
	return updated, nil
}

func (s *deckService) DeleteDeck(ctx context.Context, deckID string) error {
	logger := middleware.GetLogger(ctx)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.deckRepo.Delete(ctx, tx, deckID)
	})
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return err
		}
		logger.Error("Transaction failed for DeleteDeck", "error", err, "deck_id", deckID)
		return model.ErrInternalServer
	}
	return nil
}

func (s *deckService) SetDeckActive(ctx context.Context, deckID string, isActive bool) (*model.Deck, error) {
	logger := middleware.GetLogger(ctx)

	var updated *model.Deck
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.deckRepo.Update(ctx, tx, deckID, map[string]interface{}{"is_active": isActive}); err != nil {
			return err
		}
		var err error
		updated, err = s.deckRepo.FindByID(ctx, tx, deckID)
		return err
	})
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, err
		}
		logger.Error("Transaction failed for SetDeckActive", "error", err, "deck_id", deckID)
		return nil, model.ErrInternalServer
	}

	logger.Info("Deck active flag changed", "deck_id", deckID, "is_active", isActive)
	return updated, nil
}

// GetDeckStats はデッキのカテゴリに属するカードの難易度別枚数を返します
func (s *deckService) GetDeckStats(ctx context.Context, deckID string) (*model.DeckStats, error) {
	logger := middleware.GetLogger(ctx)

	deck, err := s.deckRepo.FindByID(ctx, s.db, deckID)
	if err != nil {
		return nil, err
	}

	cards, err := s.cardRepo.FindByCategory(ctx, s.db, deck.Category)
	if err != nil {
		logger.Error("Error counting cards for deck stats", "error", err, "deck_id", deckID)
		return nil, model.ErrInternalServer
	}

	stats := &model.DeckStats{TotalCards: int64(len(cards))}
	for _, card := range cards {
		switch card.Difficulty {
		case model.DifficultyEasy:
			stats.EasyCards++
		case model.DifficultyMedium:
			stats.MediumCards++
		case model.DifficultyHard:
			stats.HardCards++
		}
	}
	return stats, nil
}

// ResetDecks はデッキ構成を初期状態 (既定5デッキ全て有効) に戻します
func (s *deckService) ResetDecks(ctx context.Context) error {
	logger := middleware.GetLogger(ctx)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.deckRepo.DeleteAll(ctx, tx); err != nil {
			return err
		}
		defaults := model.DefaultDecks()
		for i := range defaults {
			if err := s.deckRepo.Create(ctx, tx, &defaults[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		logger.Error("Transaction failed for ResetDecks", "error", err)
		return model.ErrInternalServer
	}

	logger.Info("Decks reset to defaults")
	return nil
}

// ActiveCategories は有効デッキのカテゴリ一覧を返します (出題プールのフィルタ)
func (s *deckService) ActiveCategories(ctx context.Context) ([]string, error) {
	categories, err := s.deckRepo.FindActiveCategories(ctx, s.db)
	if err != nil {
		return nil, model.ErrInternalServer
	}
	return categories, nil
}

// EnsureSeedData は起動時にデッキが無ければ既定デッキを投入します
func (s *deckService) EnsureSeedData(ctx context.Context) error {
	logger := middleware.GetLogger(ctx)

	count, err := s.deckRepo.Count(ctx, s.db)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		defaults := model.DefaultDecks()
		for i := range defaults {
			if err := s.deckRepo.Create(ctx, tx, &defaults[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.Info("Seeded default decks")
	return nil
}
