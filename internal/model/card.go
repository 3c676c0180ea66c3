// internal/model/card.go
package model

import (
	"time"

	"gorm.io/gorm"
)

// 難易度
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// 解答形式
const (
	InputTypeMultipleChoice = "multiple-choice" // 選択式
	InputTypeTextInput      = "text-input"      // 記述式
)

// Card は1枚のフラッシュカードを表します
type Card struct {
	CardID             int64          `gorm:"primaryKey;autoIncrement" json:"id"`
	Question           string         `gorm:"not null" json:"question"`
	Answer             string         `gorm:"not null" json:"answer"`                             // 正答（完全一致で判定）
	Options            []string       `gorm:"serializer:json" json:"options,omitempty"`           // 選択式の選択肢
	AcceptableAnswers  []string       `gorm:"serializer:json" json:"acceptableAnswers,omitempty"` // フロントエンド表示用の別解。正誤判定には使わない
	Difficulty         string         `gorm:"not null;index" json:"difficulty"`
	Category           string         `gorm:"not null;index" json:"category"` // デッキのカテゴリと対応
	InputType          string         `gorm:"not null" json:"inputType"`
	AudioScenario      string         `json:"audioScenario,omitempty"` // フロントエンド用の演出データ（エンジンは解釈しない）
	HideVisualQuestion bool           `json:"hideVisualQuestion,omitempty"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"-"` // 論理削除用
}

func (Card) TableName() string {
	return "cards"
}

// カード作成リクエストDTO
type PostCardRequest struct {
	Question           string   `json:"question" validate:"required"`
	Answer             string   `json:"answer" validate:"required"`
	Options            []string `json:"options,omitempty" validate:"omitempty,min=2"`
	AcceptableAnswers  []string `json:"acceptableAnswers,omitempty"`
	Difficulty         string   `json:"difficulty" validate:"required,oneof=easy medium hard"`
	Category           string   `json:"category" validate:"required"`
	InputType          string   `json:"inputType" validate:"required,oneof=multiple-choice text-input"`
	AudioScenario      string   `json:"audioScenario,omitempty"`
	HideVisualQuestion bool     `json:"hideVisualQuestion,omitempty"`
}

// カード更新（全体）リクエストDTO
type PutCardRequest struct {
	Question           string   `json:"question" validate:"required"`
	Answer             string   `json:"answer" validate:"required"`
	Options            []string `json:"options,omitempty" validate:"omitempty,min=2"`
	AcceptableAnswers  []string `json:"acceptableAnswers,omitempty"`
	Difficulty         string   `json:"difficulty" validate:"required,oneof=easy medium hard"`
	Category           string   `json:"category" validate:"required"`
	InputType          string   `json:"inputType" validate:"required,oneof=multiple-choice text-input"`
	AudioScenario      string   `json:"audioScenario,omitempty"`
	HideVisualQuestion bool     `json:"hideVisualQuestion,omitempty"`
}

// カード更新（部分）リクエストDTO
type PatchCardRequest struct {
	Question          *string  `json:"question,omitempty" validate:"omitempty,min=1"`
	Answer            *string  `json:"answer,omitempty" validate:"omitempty,min=1"`
	Options           []string `json:"options,omitempty" validate:"omitempty,min=2"`
	AcceptableAnswers []string `json:"acceptableAnswers,omitempty"`
	Difficulty        *string  `json:"difficulty,omitempty" validate:"omitempty,oneof=easy medium hard"`
	Category          *string  `json:"category,omitempty" validate:"omitempty,min=1"`
	InputType         *string  `json:"inputType,omitempty" validate:"omitempty,oneof=multiple-choice text-input"`
}

// カタログ一括インポートDTO。エクスポートのJSONをそのまま書き戻せる形。
// Replace=true は既存カタログを置き換え (IDも保持)、false は末尾に追記する。
type ImportCardsRequest struct {
	Cards   []Card `json:"cards" validate:"required,min=1"`
	Replace bool   `json:"replace,omitempty"`
}
