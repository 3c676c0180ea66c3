// internal/model/scheduling.go
package model

import "time"

// 初期イーズ係数 (Ankiの既定値)
const DefaultEaseFactor = 2.5

// 採点値 (0-5)。3未満は失敗扱い。
const (
	GradeAgain = 0 // 全く思い出せない
	GradeHard  = 3 // 正解したが難しい
	GradeGood  = 4 // 通常の正解
	GradeEasy  = 5 // 余裕の正解
)

// IsValidGrade は採点値が 0..5 の範囲内かを返します
func IsValidGrade(grade int) bool {
	return grade >= GradeAgain && grade <= GradeEasy
}

// SchedulingState はカードごとの復習スケジュール状態を表します。
// 初回採点時に遅延作成され、日付は日単位で扱います。
type SchedulingState struct {
	CardID         int64      `gorm:"primaryKey" json:"card_id"`
	EaseFactor     float64    `gorm:"not null;default:2.5" json:"easeFactor"`
	Interval       int        `gorm:"not null;default:0" json:"interval"` // 次回復習までの日数
	Repetitions    int        `gorm:"not null;default:0" json:"repetitions"`
	NextReviewDate time.Time  `gorm:"not null;index" json:"nextReviewDate"`
	LastReviewDate *time.Time `json:"lastReviewDate,omitempty"`
	Grade          int        `gorm:"not null;default:0" json:"grade"` // 直近の採点値
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func (SchedulingState) TableName() string {
	return "scheduling_states"
}

// NewSchedulingState は未学習カードの初期状態を返します。
// 未学習カードは当日が復習予定日（=即出題対象）になります。
func NewSchedulingState(cardID int64, today time.Time) *SchedulingState {
	return &SchedulingState{
		CardID:         cardID,
		EaseFactor:     DefaultEaseFactor,
		Interval:       0,
		Repetitions:    0,
		NextReviewDate: DateOnly(today),
	}
}

// DateOnly は時刻を落として日付のみにします (UTC)
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// IsDue は復習予定日を迎えているかを返します
func (s *SchedulingState) IsDue(today time.Time) bool {
	return !s.NextReviewDate.After(DateOnly(today))
}

// 採点リクエストDTO (Ankiダッシュボード用)
type GradeRequest struct {
	Grade *int `json:"grade" validate:"required,min=0,max=5"`
}

// ReviewCard はカードとそのスケジュール状態の組です
type ReviewCard struct {
	Card  Card            `json:"card"`
	State SchedulingState `json:"state"`
}

// ReviewCounts はAnkiダッシュボードの件数表示用です
type ReviewCounts struct {
	Due    int `json:"due"`
	New    int `json:"new"`
	Review int `json:"review"` // 学習済みかつ復習予定日到来
}
