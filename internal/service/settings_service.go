// internal/service/settings_service.go
package service

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"go_math_adventure/internal/middleware"
	"go_math_adventure/internal/model"
	"go_math_adventure/internal/repository"

	"gorm.io/gorm"
)

// SettingsService はスケジューリング設定プロファイルを管理します。
// Subscribe で登録したリスナーには保存成功のたびに新しいプロファイルが通知されます
// (ブラウザ版の設定変更イベントに相当)。
type SettingsService interface {
	GetSettings(ctx context.Context) (model.SettingsProfile, error)
	UpdateSettings(ctx context.Context, profile model.SettingsProfile) (model.SettingsProfile, error)
	ApplyPreset(ctx context.Context, name string) (model.SettingsProfile, error)
	ResetSettings(ctx context.Context) (model.SettingsProfile, error)
	Subscribe(fn func(model.SettingsProfile))
}

type settingsService struct {
	db   *gorm.DB
	repo repository.SettingsRepository

	mu        sync.RWMutex
	listeners []func(model.SettingsProfile)
}

func NewSettingsService(db *gorm.DB, repo repository.SettingsRepository) SettingsService {
	return &settingsService{
		db:   db,
		repo: repo,
	}
}

// GetSettings は保存済みプロファイルを既定値の上にマージして返します。
// 保存データが欠損・破損していても、該当フィールドは既定値で補われます。
func (s *settingsService) GetSettings(ctx context.Context) (model.SettingsProfile, error) {
	logger := middleware.GetLogger(ctx)

	profile := model.DefaultSettings()

	data, err := s.repo.Load(ctx, s.db)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return profile, nil
		}
		logger.Error("Failed to load settings, falling back to defaults", "error", err)
		return profile, nil
	}

	// 既定値の上に上書きマージ。JSONに無いキーは既定値のままになる
	if err := json.Unmarshal([]byte(data), &profile); err != nil {
		logger.Warn("Saved settings blob is malformed, using defaults", "error", err)
		return model.DefaultSettings(), nil
	}
	return profile, nil
}

func (s *settingsService) UpdateSettings(ctx context.Context, profile model.SettingsProfile) (model.SettingsProfile, error) {
	logger := middleware.GetLogger(ctx)

	data, err := json.Marshal(profile)
	if err != nil {
		logger.Error("Failed to marshal settings profile", "error", err)
		return model.SettingsProfile{}, model.ErrInternalServer
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.repo.Save(ctx, tx, string(data))
	})
	if err != nil {
		logger.Error("Failed to save settings profile", "error", err)
		return model.SettingsProfile{}, model.ErrInternalServer
	}

	s.notify(profile)
	logger.Info("Settings updated")
	return profile, nil
}

func (s *settingsService) ApplyPreset(ctx context.Context, name string) (model.SettingsProfile, error) {
	preset, err := model.PresetSettings(name)
	if err != nil {
		return model.SettingsProfile{}, model.NewAppError("UNKNOWN_PRESET", "指定されたプリセットは存在しません。", "name", model.ErrInvalidInput)
	}
	return s.UpdateSettings(ctx, preset)
}

// ResetSettings は保存済みプロファイルを削除し、既定値に戻します
func (s *settingsService) ResetSettings(ctx context.Context) (model.SettingsProfile, error) {
	logger := middleware.GetLogger(ctx)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.repo.Delete(ctx, tx)
	})
	if err != nil {
		logger.Error("Failed to reset settings", "error", err)
		return model.SettingsProfile{}, model.ErrInternalServer
	}

	defaults := model.DefaultSettings()
	s.notify(defaults)
	logger.Info("Settings reset to defaults")
	return defaults, nil
}

func (s *settingsService) Subscribe(fn func(model.SettingsProfile)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

func (s *settingsService) notify(profile model.SettingsProfile) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, fn := range s.listeners {
		fn(profile)
	}
}
