// internal/service/session_service.go
package service

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"sync"
	"time"

	"go_math_adventure/internal/config"
	"go_math_adventure/internal/middleware"
	"go_math_adventure/internal/model"
	"go_math_adventure/internal/repository"
	"go_math_adventure/internal/srs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SessionService はゲームセッション (出題→回答→ごほうび のループ) を管理します。
// セッション状態はメモリ上が正で、進捗の永続化はベストエフォートです。
type SessionService interface {
	StartSession(ctx context.Context, req *model.StartSessionRequest) (*model.SessionCardResponse, error)
	GetCurrentCard(ctx context.Context) (*model.SessionCardResponse, error)
	SubmitAnswer(ctx context.Context, req *model.SubmitAnswerRequest) (*model.AnswerResult, error)
	CollectReward(ctx context.Context) (*model.SessionCardResponse, error)
	GetProgress(ctx context.Context) (*model.SavedProgress, error)
	ResetProgress(ctx context.Context) error
}

type sessionService struct {
	db           *gorm.DB
	cardRepo     repository.CardRepository
	schedRepo    repository.SchedulingRepository
	progressRepo repository.ProgressRepository
	deckSvc      DeckService
	settingsSvc  SettingsService
	cfg          *config.Config
	now          func() time.Time // テストで固定できるように注入

	mu            sync.Mutex
	active        bool
	ankiMode      bool
	filter        PoolFilter
	catalog       []*model.Card // セッション開始時点のスナップショット
	pool          []*model.Card
	drawIdx       int
	epoch         string
	deadline      time.Time
	score         int
	correct       int
	pendingReward bool
	progress      *model.SavedProgress

	settings model.SettingsProfile
}

func NewSessionService(db *gorm.DB, cardRepo repository.CardRepository, schedRepo repository.SchedulingRepository, progressRepo repository.ProgressRepository, deckSvc DeckService, settingsSvc SettingsService, cfg *config.Config) SessionService {
	s := &sessionService{
		db:           db,
		cardRepo:     cardRepo,
		schedRepo:    schedRepo,
		progressRepo: progressRepo,
		deckSvc:      deckSvc,
		settingsSvc:  settingsSvc,
		cfg:          cfg,
		now:          time.Now,
		settings:     model.DefaultSettings(),
	}
	// 設定変更はセッション途中でも次回の採点から反映する
	settingsSvc.Subscribe(func(profile model.SettingsProfile) {
		s.mu.Lock()
		s.settings = profile
		s.mu.Unlock()
	})
	return s
}

// StartSession は出題プールを構成してセッションを開始します。
// 難易度とアクティブデッキの両方に合致するカードが1枚もない場合はエラーです。
func (s *sessionService) StartSession(ctx context.Context, req *model.StartSessionRequest) (*model.SessionCardResponse, error) {
	logger := middleware.GetLogger(ctx)

	categories, err := s.deckSvc.ActiveCategories(ctx)
	if err != nil {
		logger.Error("Failed to resolve active deck categories", "error", err)
		return nil, model.ErrInternalServer
	}

	catalog, err := s.cardRepo.FindAll(ctx, s.db)
	if err != nil {
		logger.Error("Failed to load card catalog", "error", err)
		return nil, model.ErrInternalServer
	}

	settings, err := s.settingsSvc.GetSettings(ctx)
	if err != nil {
		return nil, model.ErrInternalServer
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.settings = settings
	s.loadProgressLocked(ctx)
	s.touchStreakLocked()

	s.filter = PoolFilter{Difficulties: req.Difficulties, Categories: categories}
	s.catalog = catalog

	pool, rolledOver := BuildPool(catalog, s.filter, s.progress.SessionAnsweredSet())
	if rolledOver {
		s.progress.SessionAnswered = []int64{}
	}
	if len(pool) == 0 {
		s.active = false
		return nil, model.NewAppError("NO_ELIGIBLE_CARDS", "条件に合うカードがありません。難易度かデッキの設定を見直してください。", "", model.ErrNoEligibleCards)
	}

	if !req.AnkiMode {
		// ふつうモードはランダム順。Ankiモードはカタログ順 (学習状態に基づく並び) のまま
		rand.Shuffle(len(pool), func(i, j int) {
			pool[i], pool[j] = pool[j], pool[i]
		})
	}

	s.active = true
	s.ankiMode = req.AnkiMode
	s.pool = pool
	s.drawIdx = 0
	s.epoch = uuid.New().String()
	s.score = 0
	s.correct = 0
	s.pendingReward = false
	s.deadline = s.now().Add(time.Duration(s.cfg.App.QuestionTimeSecs) * time.Second)

	s.saveProgressLocked(ctx)

	logger.Info("Session started", "anki_mode", req.AnkiMode, "pool_size", len(pool), "epoch", s.epoch)
	return s.currentCardLocked(), nil
}

// GetCurrentCard は現在の出題カードを返します。
// ごほうび待ちの間はカードを出さず、PendingReward だけを知らせます。
func (s *sessionService) GetCurrentCard(ctx context.Context) (*model.SessionCardResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active {
		return nil, model.NewAppError("NO_ACTIVE_SESSION", "セッションが開始されていません。", "", model.ErrNotFound)
	}
	return s.currentCardLocked(), nil
}

// SubmitAnswer は回答を判定し、セッションと進捗を更新します。
// 制限時間を過ぎた回答は正解でもスコアとごほうびの対象になりません。
func (s *sessionService) SubmitAnswer(ctx context.Context, req *model.SubmitAnswerRequest) (*model.AnswerResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active {
		return nil, model.NewAppError("NO_ACTIVE_SESSION", "セッションが開始されていません。", "", model.ErrNotFound)
	}
	if s.pendingReward {
		return nil, model.NewAppError("REWARD_PENDING", "ごほうびを受け取ってから次に進んでください。", "", model.ErrRewardPending)
	}
	if req.Epoch != s.epoch {
		// 周回が進んだ後に届いた古い回答。クライアントは現在のカードを取り直す
		return nil, model.NewAppError("STALE_EPOCH", "セッションの周回が進んでいます。現在のカードを取得し直してください。", "epoch", model.ErrConflict)
	}

	card := s.pool[s.drawIdx]
	if req.CardID != card.CardID {
		return nil, model.NewAppError("CARD_MISMATCH", "回答対象のカードが現在の出題と一致しません。", "card_id", model.ErrConflict)
	}

	now := s.now()
	timedOut := now.After(s.deadline)
	correct := answerMatches(card, req.Answer)

	if s.ankiMode {
		if err := s.applyGradeLocked(ctx, card.CardID, req.Grade, correct, timedOut); err != nil {
			return nil, err
		}
	}

	s.progress.TotalQuestionsAnswered++

	rewardEarned := false
	if correct && !timedOut {
		s.score += 10
		s.correct++
		s.progress.TotalScore += 10
		s.progress.TotalCorrectAnswers++
		if s.progress.FavoriteCategories == nil {
			s.progress.FavoriteCategories = make(map[string]int)
		}
		s.progress.FavoriteCategories[card.Category]++
		s.progress.SessionAnswered = append(s.progress.SessionAnswered, card.CardID)
		s.addCompletedLocked(card.CardID)

		if s.correct%s.cfg.App.RewardThreshold == 0 {
			rewardEarned = true
			s.pendingReward = true
		}
	}

	// 回答済みカードはこの周回のプールから外す (時間切れ・不正解も再出題は次の周回)
	s.pool = append(s.pool[:s.drawIdx], s.pool[s.drawIdx+1:]...)
	if s.drawIdx >= len(s.pool) {
		s.drawIdx = 0
	}

	if len(s.pool) == 0 {
		s.refillPoolLocked(ctx)
	}

	s.deadline = now.Add(time.Duration(s.cfg.App.QuestionTimeSecs) * time.Second)
	s.saveProgressLocked(ctx)

	result := &model.AnswerResult{
		Correct:        correct,
		TimedOut:       timedOut,
		CorrectAnswer:  card.Answer,
		Score:          s.score,
		CorrectAnswers: s.correct,
		RewardEarned:   rewardEarned,
	}
	if s.ankiMode {
		if state, err := s.schedRepo.FindByCardID(ctx, s.db, card.CardID); err == nil {
			result.Scheduling = state
		}
	}
	return result, nil
}

// CollectReward はごほうびを受け取り、出題を再開します
func (s *sessionService) CollectReward(ctx context.Context) (*model.SessionCardResponse, error) {
	logger := middleware.GetLogger(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active {
		return nil, model.NewAppError("NO_ACTIVE_SESSION", "セッションが開始されていません。", "", model.ErrNotFound)
	}
	if !s.pendingReward {
		return nil, model.NewAppError("NO_PENDING_REWARD", "受け取れるごほうびがありません。", "", model.ErrInvalidInput)
	}

	s.pendingReward = false
	s.progress.TotalRewards++
	s.deadline = s.now().Add(time.Duration(s.cfg.App.QuestionTimeSecs) * time.Second)
	s.saveProgressLocked(ctx)

	logger.Info("Reward collected", "total_rewards", s.progress.TotalRewards)
	return s.currentCardLocked(), nil
}

func (s *sessionService) GetProgress(ctx context.Context) (*model.SavedProgress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.progress != nil {
		copied := *s.progress
		return &copied, nil
	}

	progress, err := s.progressRepo.Load(ctx, s.db)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.NewSavedProgress(), nil
		}
		return nil, model.ErrInternalServer
	}
	return progress, nil
}

// ResetProgress は保存済み進捗と全スケジュール状態を破棄します
func (s *sessionService) ResetProgress(ctx context.Context) error {
	logger := middleware.GetLogger(ctx)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.progressRepo.Delete(ctx, tx); err != nil {
			return err
		}
		return s.schedRepo.DeleteAll(ctx, tx)
	})
	if err != nil {
		logger.Error("Transaction failed for ResetProgress", "error", err)
		return model.ErrInternalServer
	}

	s.mu.Lock()
	s.active = false
	s.pendingReward = false
	s.progress = nil
	s.pool = nil
	s.mu.Unlock()

	logger.Info("Progress reset")
	return nil
}

// currentCardLocked は呼び出し側がロックを保持していることを前提とします
func (s *sessionService) currentCardLocked() *model.SessionCardResponse {
	resp := &model.SessionCardResponse{
		Epoch:          s.epoch,
		Remaining:      len(s.pool),
		Score:          s.score,
		CorrectAnswers: s.correct,
		PendingReward:  s.pendingReward,
	}
	if !s.pendingReward && len(s.pool) > 0 {
		resp.Card = s.pool[s.drawIdx]
		resp.Deadline = s.deadline
	}
	return resp
}

// applyGradeLocked はAnkiモードの採点をスケジューリング状態へ反映します。
// 採点が明示されていない場合は判定結果から導出します (時間切れ・不正解は0)。
func (s *sessionService) applyGradeLocked(ctx context.Context, cardID int64, reqGrade *int, correct, timedOut bool) error {
	logger := middleware.GetLogger(ctx)

	grade := model.GradeAgain
	if correct && !timedOut {
		grade = model.GradeGood
	}
	if reqGrade != nil {
		if !model.IsValidGrade(*reqGrade) {
			return model.NewAppError("INVALID_GRADE", "採点値は0から5で指定してください。", "grade", model.ErrInvalidInput)
		}
		grade = *reqGrade
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		state, err := s.schedRepo.FindByCardID(ctx, tx, cardID)
		if err != nil {
			if !errors.Is(err, model.ErrNotFound) {
				return err
			}
			state = model.NewSchedulingState(cardID, s.now())
		}
		next := srs.Advance(*state, s.settings, grade, s.now())
		return s.schedRepo.Upsert(ctx, tx, &next)
	})
	if err != nil {
		logger.Error("Transaction failed for session grading", "error", err, "card_id", cardID)
		return model.ErrInternalServer
	}
	return nil
}

// refillPoolLocked は周回完了後にプールを組み直し、世代を進めます
func (s *sessionService) refillPoolLocked(ctx context.Context) {
	logger := middleware.GetLogger(ctx)

	pool, rolledOver := BuildPool(s.catalog, s.filter, s.progress.SessionAnsweredSet())
	if rolledOver {
		s.progress.SessionAnswered = []int64{}
	}
	if len(pool) == 0 {
		// デッキやカードが途中で変わり、出題対象が無くなった
		s.active = false
		s.pool = nil
		return
	}
	if !s.ankiMode {
		rand.Shuffle(len(pool), func(i, j int) {
			pool[i], pool[j] = pool[j], pool[i]
		})
	}
	s.pool = pool
	s.drawIdx = 0
	s.epoch = uuid.New().String()
	logger.Info("Pool rolled over", "pool_size", len(pool), "epoch", s.epoch)
}

// loadProgressLocked は保存済み進捗を読み込みます。無ければ新規作成します
func (s *sessionService) loadProgressLocked(ctx context.Context) {
	logger := middleware.GetLogger(ctx)

	if s.progress != nil {
		return
	}
	progress, err := s.progressRepo.Load(ctx, s.db)
	if err != nil {
		if !errors.Is(err, model.ErrNotFound) {
			logger.Warn("Failed to load saved progress, starting fresh", "error", err)
		}
		s.progress = model.NewSavedProgress()
		return
	}
	s.progress = progress
}

// touchStreakLocked はプレイ日を更新し、連続日数を計算します
func (s *sessionService) touchStreakLocked() {
	today := model.DateOnly(s.now())
	last := model.DateOnly(s.progress.LastPlayDate)

	switch {
	case s.progress.LastPlayDate.IsZero():
		// 初回プレイ
		s.progress.StreakDays = 1
	case last.Equal(today):
		// 同日2回目以降は変更なし
	case last.Equal(today.AddDate(0, 0, -1)):
		s.progress.StreakDays++
	default:
		s.progress.StreakDays = 1
	}
	s.progress.LastPlayDate = today
}

// saveProgressLocked はベストエフォートで進捗を永続化します。
// 失敗してもセッションは継続します (メモリ上の状態が正)。
func (s *sessionService) saveProgressLocked(ctx context.Context) {
	logger := middleware.GetLogger(ctx)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.progressRepo.Save(ctx, tx, s.progress)
	})
	if err != nil {
		logger.Warn("Failed to persist progress, keeping in-memory state", "error", err)
	}
}

func (s *sessionService) addCompletedLocked(cardID int64) {
	for _, id := range s.progress.CompletedCardIDs {
		if id == cardID {
			return
		}
	}
	s.progress.CompletedCardIDs = append(s.progress.CompletedCardIDs, cardID)
}

// answerMatches は回答文字列を正答と照合します。
// 前後の空白だけ取り除き、正答との完全一致で判定します
func answerMatches(card *model.Card, answer string) bool {
	return strings.TrimSpace(answer) == card.Answer
}
