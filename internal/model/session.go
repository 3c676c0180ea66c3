// internal/model/session.go
package model

import "time"

// セッション開始リクエストDTO
type StartSessionRequest struct {
	Difficulties []string `json:"difficulties" validate:"required,min=1,dive,oneof=easy medium hard"`
	AnkiMode     bool     `json:"ankiMode"` // trueなら採点値がアルゴリズムに反映される
}

// SessionCardResponse は現在の出題カードとセッション状況を返します
type SessionCardResponse struct {
	Card           *Card     `json:"card,omitempty"` // ごほうび待ちの間は nil
	Epoch          string    `json:"epoch"`          // プール世代ID。解答時に同じ値を返すこと
	Deadline       time.Time `json:"deadline"`       // この時刻を過ぎた解答は時間切れ扱い
	Remaining      int       `json:"remaining"`      // 今周回の残りカード数
	Score          int       `json:"score"`
	CorrectAnswers int       `json:"correctAnswers"`
	PendingReward  bool      `json:"pendingReward"` // trueの間は出題停止中
}

// 解答リクエストDTO
type SubmitAnswerRequest struct {
	CardID int64  `json:"card_id" validate:"required"`
	Epoch  string `json:"epoch" validate:"required"`
	Answer string `json:"answer"`
	Grade  *int   `json:"grade,omitempty" validate:"omitempty,min=0,max=5"` // Ankiモード時の自己申告採点
}

// AnswerResult は解答1件の判定結果です
type AnswerResult struct {
	Correct        bool             `json:"correct"`
	TimedOut       bool             `json:"timedOut"`
	CorrectAnswer  string           `json:"correctAnswer"`
	Score          int              `json:"score"`
	CorrectAnswers int              `json:"correctAnswers"`
	RewardEarned   bool             `json:"rewardEarned"` // このセッションでN問目の正解に到達
	Scheduling     *SchedulingState `json:"scheduling,omitempty"` // Ankiモード時のみ
}
