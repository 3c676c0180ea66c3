// internal/service/review_service.go
package service

import (
	"context"
	"errors"
	"time"

	"go_math_adventure/internal/config"
	"go_math_adventure/internal/middleware"
	"go_math_adventure/internal/model"
	"go_math_adventure/internal/repository"
	"go_math_adventure/internal/srs"

	"gorm.io/gorm"
)

// ReviewService はAnkiダッシュボード向けの復習キューと採点を提供します
type ReviewService interface {
	GetDueCards(ctx context.Context) ([]*model.ReviewCard, error)
	GetNewCards(ctx context.Context) ([]*model.ReviewCard, error)
	GetReviewCounts(ctx context.Context) (*model.ReviewCounts, error)
	SubmitGrade(ctx context.Context, cardID int64, grade int) (*model.SchedulingState, error)
}

type reviewService struct {
	db          *gorm.DB
	cardRepo    repository.CardRepository
	schedRepo   repository.SchedulingRepository
	settingsSvc SettingsService
	cfg         *config.Config
	now         func() time.Time // テストで固定できるように注入
}

func NewReviewService(db *gorm.DB, cardRepo repository.CardRepository, schedRepo repository.SchedulingRepository, settingsSvc SettingsService, cfg *config.Config) ReviewService {
	return &reviewService{
		db:          db,
		cardRepo:    cardRepo,
		schedRepo:   schedRepo,
		settingsSvc: settingsSvc,
		cfg:         cfg,
		now:         time.Now,
	}
}

// loadReviewCards は全カードにスケジュール状態を合成して返します。
// 状態が無い(または読めない)カードは未学習として当日が復習日になります。
func (s *reviewService) loadReviewCards(ctx context.Context) ([]*model.ReviewCard, error) {
	cards, err := s.cardRepo.FindAll(ctx, s.db)
	if err != nil {
		return nil, err
	}
	states, err := s.schedRepo.FindAll(ctx, s.db)
	if err != nil {
		return nil, err
	}

	today := s.now()
	stateByID := make(map[int64]*model.SchedulingState, len(states))
	for _, st := range states {
		if st.EaseFactor <= 0 || st.NextReviewDate.IsZero() {
			// 壊れた行は未学習扱いで読み替える
			continue
		}
		stateByID[st.CardID] = st
	}

	result := make([]*model.ReviewCard, 0, len(cards))
	for _, card := range cards {
		state, ok := stateByID[card.CardID]
		if !ok {
			state = model.NewSchedulingState(card.CardID, today)
		}
		result = append(result, &model.ReviewCard{Card: *card, State: *state})
	}
	return result, nil
}

func (s *reviewService) GetDueCards(ctx context.Context) ([]*model.ReviewCard, error) {
	logger := middleware.GetLogger(ctx)

	all, err := s.loadReviewCards(ctx)
	if err != nil {
		logger.Error("Failed to load cards for due list", "error", err)
		return nil, model.ErrInternalServer
	}

	today := s.now()
	due := make([]*model.ReviewCard, 0, len(all))
	for _, rc := range all {
		if rc.State.IsDue(today) {
			due = append(due, rc)
		}
		if len(due) >= s.cfg.App.ReviewLimit {
			break
		}
	}
	return due, nil
}

// GetNewCards は未学習 (repetitions == 0) のカードを上限付きで返します
func (s *reviewService) GetNewCards(ctx context.Context) ([]*model.ReviewCard, error) {
	logger := middleware.GetLogger(ctx)

	all, err := s.loadReviewCards(ctx)
	if err != nil {
		logger.Error("Failed to load cards for new list", "error", err)
		return nil, model.ErrInternalServer
	}

	fresh := make([]*model.ReviewCard, 0, s.cfg.App.NewCardLimit)
	for _, rc := range all {
		if rc.State.Repetitions == 0 {
			fresh = append(fresh, rc)
		}
		if len(fresh) >= s.cfg.App.NewCardLimit {
			break
		}
	}
	return fresh, nil
}

func (s *reviewService) GetReviewCounts(ctx context.Context) (*model.ReviewCounts, error) {
	logger := middleware.GetLogger(ctx)

	all, err := s.loadReviewCards(ctx)
	if err != nil {
		logger.Error("Failed to load cards for counts", "error", err)
		return nil, model.ErrInternalServer
	}

	today := s.now()
	counts := &model.ReviewCounts{}
	for _, rc := range all {
		due := rc.State.IsDue(today)
		if due {
			counts.Due++
		}
		if rc.State.Repetitions == 0 {
			counts.New++
		} else if due {
			counts.Review++
		}
	}
	return counts, nil
}

// SubmitGrade は採点値をスケジューリングアルゴリズムに通して状態を更新します
func (s *reviewService) SubmitGrade(ctx context.Context, cardID int64, grade int) (*model.SchedulingState, error) {
	logger := middleware.GetLogger(ctx).With("card_id", cardID, "grade", grade)

	if !model.IsValidGrade(grade) {
		return nil, model.NewAppError("INVALID_GRADE", "採点値は0から5で指定してください。", "grade", model.ErrInvalidInput)
	}

	settings, err := s.settingsSvc.GetSettings(ctx)
	if err != nil {
		return nil, model.ErrInternalServer
	}

	var next model.SchedulingState
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.cardRepo.FindByID(ctx, tx, cardID); err != nil {
			return err
		}

		state, err := s.schedRepo.FindByCardID(ctx, tx, cardID)
		if err != nil {
			if !errors.Is(err, model.ErrNotFound) {
				return err
			}
			state = model.NewSchedulingState(cardID, s.now())
		}

		next = srs.Advance(*state, settings, grade, s.now())
		return s.schedRepo.Upsert(ctx, tx, &next)
	})
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, err
		}
		logger.Error("Transaction failed for SubmitGrade", "error", err)
		return nil, model.ErrInternalServer
	}

	logger.Info("Grade applied", "interval", next.Interval, "repetitions", next.Repetitions)
	return &next, nil
}
