// internal/model/progress.go
package model

import "time"

// SavedProgress はプレイヤー1人分の累積成績です。1行だけ保持します。
// セッション中はメモリ上の値が正で、保存失敗は次回の書き込みで上書き回復します。
type SavedProgress struct {
	ID                     uint           `gorm:"primaryKey" json:"-"`
	TotalScore             int            `gorm:"not null;default:0" json:"totalScore"`
	TotalRewards           int            `gorm:"not null;default:0" json:"totalRewards"`
	TotalCorrectAnswers    int            `gorm:"not null;default:0" json:"totalCorrectAnswers"`
	TotalQuestionsAnswered int            `gorm:"not null;default:0" json:"totalQuestionsAnswered"`
	LastPlayDate           time.Time      `json:"lastPlayDate"`
	StreakDays             int            `gorm:"not null;default:0" json:"streakDays"`
	FavoriteCategories     map[string]int `gorm:"serializer:json" json:"favoriteCategories"` // カテゴリ別正解数
	CompletedCardIDs       []int64        `gorm:"serializer:json" json:"completedCardIds"`
	SessionAnswered        []int64        `gorm:"serializer:json" json:"currentSessionAnswered"` // 今セッションで時間内に正解したカード
	UpdatedAt              time.Time      `json:"-"`
}

func (SavedProgress) TableName() string {
	return "saved_progress"
}

// NewSavedProgress はセーブデータが無い場合の初期値を返します。
// LastPlayDate はゼロ値のまま「未プレイ」を表し、初回プレイで連続日数が1から始まります
func NewSavedProgress() *SavedProgress {
	return &SavedProgress{
		ID:                 1,
		FavoriteCategories: map[string]int{},
		CompletedCardIDs:   []int64{},
		SessionAnswered:    []int64{},
	}
}

// SessionAnsweredSet はセッション正解済みカードIDを集合として返します
func (p *SavedProgress) SessionAnsweredSet() map[int64]bool {
	set := make(map[int64]bool, len(p.SessionAnswered))
	for _, id := range p.SessionAnswered {
		set[id] = true
	}
	return set
}
