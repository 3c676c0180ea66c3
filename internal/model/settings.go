// internal/model/settings.go
package model

import "time"

// SettingsProfile はスケジューリングアルゴリズムのパラメータ一式です。
// JSONキーは保存フォーマット（エクスポート/インポート互換）を兼ねます。
type SettingsProfile struct {
	// 学習フェーズ（新規カード）
	LearningSteps      []int `json:"learningSteps"` // 分単位のステップ。エンジンの日単位計算では未使用だがプロファイルの一部として保持
	GraduatingInterval int   `json:"graduatingInterval"`
	EasyInterval       int   `json:"easyInterval"`

	// 復習フェーズ
	EasyBonus        float64 `json:"easyBonus"`
	IntervalModifier float64 `json:"intervalModifier"`
	MaximumInterval  int     `json:"maximumInterval"`

	// 子供向け調整
	KidFriendlyMode      bool    `json:"kidFriendlyMode"`
	MinimumInterval      int     `json:"minimumInterval"`
	FailureResetStrength float64 `json:"failureResetStrength"`
}

// DefaultSettings は子供向けの既定プロファイルを返します
func DefaultSettings() SettingsProfile {
	return SettingsProfile{
		LearningSteps:      []int{1, 10},
		GraduatingInterval: 1,
		EasyInterval:       4,

		EasyBonus:        1.2,
		IntervalModifier: 0.8,
		MaximumInterval:  30,

		KidFriendlyMode:      true,
		MinimumInterval:      1,
		FailureResetStrength: 0.1,
	}
}

// AdultSettings は比較用の標準Anki相当プロファイルを返します
func AdultSettings() SettingsProfile {
	return SettingsProfile{
		LearningSteps:      []int{1, 10},
		GraduatingInterval: 4,
		EasyInterval:       4,

		EasyBonus:        1.3,
		IntervalModifier: 1.0,
		MaximumInterval:  36500,

		KidFriendlyMode:      false,
		MinimumInterval:      1,
		FailureResetStrength: 0.2,
	}
}

// プリセット名
const (
	PresetBeginner     = "beginner"
	PresetIntermediate = "intermediate"
	PresetAdvanced     = "advanced"
)

// PresetSettings は名前付きプリセットを返します。既定値に差分を重ねる形です。
func PresetSettings(name string) (SettingsProfile, error) {
	p := DefaultSettings()
	switch name {
	case PresetBeginner:
		p.LearningSteps = []int{5}
		p.GraduatingInterval = 1
		p.MaximumInterval = 7
		p.IntervalModifier = 0.5
	case PresetIntermediate:
		p.LearningSteps = []int{1, 10}
		p.GraduatingInterval = 2
		p.MaximumInterval = 14
		p.IntervalModifier = 0.7
	case PresetAdvanced:
		p.LearningSteps = []int{1, 10, 1440}
		p.GraduatingInterval = 3
		p.MaximumInterval = 60
		p.IntervalModifier = 0.9
	default:
		return SettingsProfile{}, ErrNotFound
	}
	return p, nil
}

// SettingsRecord は有効なプロファイルをJSONブロブとして1行で保持します。
// 読み込み時は既定値の上に上書きマージするため、欠損フィールドは既定値のままになります。
type SettingsRecord struct {
	ID        uint      `gorm:"primaryKey"`
	Data      string    `gorm:"not null"` // SettingsProfile のJSON
	UpdatedAt time.Time
}

func (SettingsRecord) TableName() string {
	return "settings_records"
}

// 設定更新リクエストDTO
type PutSettingsRequest struct {
	LearningSteps        []int    `json:"learningSteps" validate:"required,min=1,dive,min=1"`
	GraduatingInterval   *int     `json:"graduatingInterval" validate:"required,min=1"`
	EasyInterval         *int     `json:"easyInterval" validate:"required,min=1"`
	EasyBonus            *float64 `json:"easyBonus" validate:"required,gt=1"`
	IntervalModifier     *float64 `json:"intervalModifier" validate:"required,gt=0"`
	MaximumInterval      *int     `json:"maximumInterval" validate:"required,min=1"`
	KidFriendlyMode      *bool    `json:"kidFriendlyMode" validate:"required"`
	MinimumInterval      *int     `json:"minimumInterval" validate:"required,min=1"`
	FailureResetStrength *float64 `json:"failureResetStrength" validate:"required,gte=0"`
}

// Profile はリクエストをプロファイルに変換します (バリデーション済み前提)
func (r *PutSettingsRequest) Profile() SettingsProfile {
	return SettingsProfile{
		LearningSteps:        r.LearningSteps,
		GraduatingInterval:   *r.GraduatingInterval,
		EasyInterval:         *r.EasyInterval,
		EasyBonus:            *r.EasyBonus,
		IntervalModifier:     *r.IntervalModifier,
		MaximumInterval:      *r.MaximumInterval,
		KidFriendlyMode:      *r.KidFriendlyMode,
		MinimumInterval:      *r.MinimumInterval,
		FailureResetStrength: *r.FailureResetStrength,
	}
}
