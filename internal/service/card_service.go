// internal/service/card_service.go
package service

import (
	"context"
	"errors"
	"fmt"

	"go_math_adventure/internal/middleware"
	"go_math_adventure/internal/model"
	"go_math_adventure/internal/repository"

	"gorm.io/gorm"
)

// CardService はカードカタログのCRUDとインポート/エクスポートを提供します
type CardService interface {
	PostCard(ctx context.Context, req *model.PostCardRequest) (*model.Card, error)
	GetCard(ctx context.Context, cardID int64) (*model.Card, error)
	ListCards(ctx context.Context) ([]*model.Card, error)
	PutCard(ctx context.Context, cardID int64, req *model.PutCardRequest) (*model.Card, error)
	PatchCard(ctx context.Context, cardID int64, req *model.PatchCardRequest) (*model.Card, error)
	DeleteCard(ctx context.Context, cardID int64) error
	ImportCards(ctx context.Context, cards []model.Card, replace bool) (int, error)
	ResetCards(ctx context.Context) error
	EnsureSeedData(ctx context.Context) error
}

type cardService struct {
	db        *gorm.DB
	cardRepo  repository.CardRepository
	schedRepo repository.SchedulingRepository
}

func NewCardService(db *gorm.DB, cardRepo repository.CardRepository, schedRepo repository.SchedulingRepository) CardService {
	return &cardService{
		db:        db,
		cardRepo:  cardRepo,
		schedRepo: schedRepo,
	}
}

// importRowField はインポートエラーの位置を "cards[行].項目" の形式で示します
func importRowField(row int, name string) string {
	if name == "" {
		return fmt.Sprintf("cards[%d]", row)
	}
	return fmt.Sprintf("cards[%d].%s", row, name)
}

// インポート行はDTOバリデーションを通らないので、ここで列挙値まで検査する。
// エラーには行番号を含め、どの行が弾かれたか分かるようにする
func validateImportedCard(card *model.Card, row int) error {
	if card.Question == "" || card.Answer == "" || card.Category == "" {
		return model.NewAppError("VALIDATION_ERROR", "問題文・正答・カテゴリは必須です。", importRowField(row, ""), model.ErrInvalidInput)
	}
	switch card.Difficulty {
	case model.DifficultyEasy, model.DifficultyMedium, model.DifficultyHard:
	default:
		return model.NewAppError("VALIDATION_ERROR", "難易度はeasy/medium/hardのいずれかで指定してください。", importRowField(row, "difficulty"), model.ErrInvalidInput)
	}
	switch card.InputType {
	case model.InputTypeMultipleChoice, model.InputTypeTextInput:
	default:
		return model.NewAppError("VALIDATION_ERROR", "解答形式はmultiple-choiceかtext-inputで指定してください。", importRowField(row, "inputType"), model.ErrInvalidInput)
	}
	if err := validateCardShape(card.InputType, card.Answer, card.Options); err != nil {
		var appErr *model.AppError
		if errors.As(err, &appErr) {
			return model.NewAppError(appErr.Detail.Code, appErr.Detail.Message, importRowField(row, appErr.Detail.Field), appErr.Err)
		}
		return err
	}
	return nil
}

// 選択式カードは選択肢に正答が含まれている必要がある
func validateCardShape(inputType, answer string, options []string) error {
	if inputType != model.InputTypeMultipleChoice {
		return nil
	}
	if len(options) < 2 {
		return model.NewAppError("VALIDATION_ERROR", "選択式カードには2つ以上の選択肢が必要です。", "options", model.ErrInvalidInput)
	}
	for _, opt := range options {
		if opt == answer {
			return nil
		}
	}
	return model.NewAppError("VALIDATION_ERROR", "選択肢に正答が含まれていません。", "options", model.ErrInvalidInput)
}

func (s *cardService) PostCard(ctx context.Context, req *model.PostCardRequest) (*model.Card, error) {
	logger := middleware.GetLogger(ctx)

	if err := validateCardShape(req.InputType, req.Answer, req.Options); err != nil {
		return nil, err
	}

	card := &model.Card{
		Question:           req.Question,
		Answer:             req.Answer,
		Options:            req.Options,
		AcceptableAnswers:  req.AcceptableAnswers,
		Difficulty:         req.Difficulty,
		Category:           req.Category,
		InputType:          req.InputType,
		AudioScenario:      req.AudioScenario,
		HideVisualQuestion: req.HideVisualQuestion,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.cardRepo.Create(ctx, tx, card)
	})
	if err != nil {
		if errors.Is(err, model.ErrConflict) {
			return nil, err
		}
		logger.Error("Transaction failed for PostCard", "error", err)
		return nil, model.ErrInternalServer
	}

	return card, nil
}

func (s *cardService) GetCard(ctx context.Context, cardID int64) (*model.Card, error) {
	return s.cardRepo.FindByID(ctx, s.db, cardID)
}

func (s *cardService) ListCards(ctx context.Context) ([]*model.Card, error) {
	logger := middleware.GetLogger(ctx)
	cards, err := s.cardRepo.FindAll(ctx, s.db)
	if err != nil {
		logger.Error("Error listing cards", "error", err)
		return nil, model.ErrInternalServer
	}
	return cards, nil
}

func (s *cardService) PutCard(ctx context.Context, cardID int64, req *model.PutCardRequest) (*model.Card, error) {
	logger := middleware.GetLogger(ctx)

	if err := validateCardShape(req.InputType, req.Answer, req.Options); err != nil {
		return nil, err
	}

	var updated *model.Card
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.cardRepo.FindByID(ctx, tx, cardID); err != nil {
			return err
		}

		updates := map[string]interface{}{
			"question":             req.Question,
			"answer":               req.Answer,
			"options":              req.Options,
			"acceptable_answers":   req.AcceptableAnswers,
			"difficulty":           req.Difficulty,
			"category":             req.Category,
			"input_type":           req.InputType,
			"audio_scenario":       req.AudioScenario,
			"hide_visual_question": req.HideVisualQuestion,
		}
		if err := s.cardRepo.Update(ctx, tx, cardID, updates); err != nil {
			return err
		}

		var err error
		updated, err = s.cardRepo.FindByID(ctx, tx, cardID)
		return err
	})
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, err
		}
		logger.Error("Transaction failed for PutCard", "error", err, "card_id", cardID)
		return nil, model.ErrInternalServer
	}

	return updated, nil
}

func (s *cardService) PatchCard(ctx context.Context, cardID int64, req *model.PatchCardRequest) (*model.Card, error) {
	logger := middleware.GetLogger(ctx)

	var updated *model.Card
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		card, err := s.cardRepo.FindByID(ctx, tx, cardID)
		if err != nil {
			return err
		}

		updates := make(map[string]interface{})
		if req.Question != nil {
			updates["question"] = *req.Question
		}
		if req.Answer != nil {
			updates["answer"] = *req.Answer
		}
		if req.Options != nil {
			updates["options"] = req.Options
		}
		if req.AcceptableAnswers != nil {
			updates["acceptable_answers"] = req.AcceptableAnswers
		}
		if req.Difficulty != nil {
			updates["difficulty"] = *req.Difficulty
		}
		if req.Category != nil {
			updates["category"] = *req.Category
		}
		if req.InputType != nil {
			updates["input_type"] = *req.InputType
		}

		// パッチ適用後の形を検証してから書き込む
		inputType := card.InputType
		if req.InputType != nil {
			inputType = *req.InputType
		}
		answer := card.Answer
		if req.Answer != nil {
			answer = *req.Answer
		}
		options := card.Options
		if req.Options != nil {
			options = req.Options
		}
		if err := validateCardShape(inputType, answer, options); err != nil {
			return err
		}

		if err := s.cardRepo.Update(ctx, tx, cardID, updates); err != nil {
			return err
		}

		updated, err = s.cardRepo.FindByID(ctx, tx, cardID)
		return err
	})
	if err != nil {
		if errors.Is(err, model.ErrNotFound) || errors.Is(err, model.ErrInvalidInput) {
			return nil, err
		}
		logger.Error("Transaction failed for PatchCard", "error", err, "card_id", cardID)
		return nil, model.ErrInternalServer
	}

	return updated, nil
}

// DeleteCard はカードを論理削除し、対応するスケジュール状態も破棄します
func (s *cardService) DeleteCard(ctx context.Context, cardID int64) error {
	logger := middleware.GetLogger(ctx)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.cardRepo.FindByID(ctx, tx, cardID); err != nil {
			return err
		}
		if err := s.cardRepo.Delete(ctx, tx, cardID); err != nil {
			return err
		}
		return s.schedRepo.DeleteByCardID(ctx, tx, cardID)
	})
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return err
		}
		logger.Error("Transaction failed for DeleteCard", "error", err, "card_id", cardID)
		return model.ErrInternalServer
	}
	return nil
}

// ImportCards はカードを一括登録します。
// replace=true の場合は既存カタログとスケジュール状態を破棄してから登録します
// (JSONエクスポートの書き戻し)。replace=false は末尾追記です (xlsx/csv取り込み)。
func (s *cardService) ImportCards(ctx context.Context, cards []model.Card, replace bool) (int, error) {
	logger := middleware.GetLogger(ctx)

	if len(cards) == 0 {
		return 0, model.NewAppError("VALIDATION_ERROR", "インポートするカードがありません。", "cards", model.ErrInvalidInput)
	}

	imported := 0
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if replace {
			if err := s.cardRepo.DeleteAll(ctx, tx); err != nil {
				return err
			}
			if err := s.schedRepo.DeleteAll(ctx, tx); err != nil {
				return err
			}
		}
		seen := make(map[int64]bool, len(cards))
		for i := range cards {
			card := cards[i]
			if !replace {
				// 追記時はIDを採番し直す
				card.CardID = 0
			} else if card.CardID != 0 {
				if seen[card.CardID] {
					return model.NewAppError("DUPLICATE_CARD_ID",
						fmt.Sprintf("カードID %d が重複しています。", card.CardID),
						importRowField(i, "id"), model.ErrConflict)
				}
				seen[card.CardID] = true
			}
			if err := validateImportedCard(&card, i); err != nil {
				return err
			}
			if err := s.cardRepo.Create(ctx, tx, &card); err != nil {
				return err
			}
			imported++
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, model.ErrInvalidInput) || errors.Is(err, model.ErrConflict) {
			return 0, err
		}
		logger.Error("Transaction failed for ImportCards", "error", err)
		return 0, model.ErrInternalServer
	}

	logger.Info("Cards imported", "count", imported, "replace", replace)
	return imported, nil
}

// ResetCards はカタログを初期状態に戻します
func (s *cardService) ResetCards(ctx context.Context) error {
	logger := middleware.GetLogger(ctx)

	seeds := model.DefaultCards()
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.cardRepo.DeleteAll(ctx, tx); err != nil {
			return err
		}
		if err := s.schedRepo.DeleteAll(ctx, tx); err != nil {
			return err
		}
		for i := range seeds {
			if err := s.cardRepo.Create(ctx, tx, &seeds[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		logger.Error("Transaction failed for ResetCards", "error", err)
		return model.ErrInternalServer
	}

	logger.Info("Card catalog reset to defaults", "count", len(seeds))
	return nil
}

// EnsureSeedData は起動時にカタログが空であれば初期カードを投入します
func (s *cardService) EnsureSeedData(ctx context.Context) error {
	logger := middleware.GetLogger(ctx)

	cards, err := s.cardRepo.FindAll(ctx, s.db)
	if err != nil {
		return err
	}
	if len(cards) > 0 {
		return nil
	}

	seeds := model.DefaultCards()
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range seeds {
			if err := s.cardRepo.Create(ctx, tx, &seeds[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.Info("Seeded default card catalog", "count", len(seeds))
	return nil
}
