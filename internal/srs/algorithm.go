// Package srs は子供向けに調整したSM-2系の間隔反復アルゴリズムを実装します。
// 計算は純粋関数で、現在日時は呼び出し側が渡します。
package srs

import (
	"math"
	"time"

	"go_math_adventure/internal/model"
)

// 失敗と判定する採点値の上限 (3未満は失敗)
const passThreshold = 3

// Advance は採点値に基づいて次のスケジュール状態を計算します。
// state は変更せず、新しい状態を値で返します。grade は 0..5 が前提
// (範囲外は呼び出し側で弾く)。
func Advance(state model.SchedulingState, settings model.SettingsProfile, grade int, today time.Time) model.SchedulingState {
	next := state
	reviewedAt := model.DateOnly(today)
	next.LastReviewDate = &reviewedAt
	next.Grade = grade

	if grade < passThreshold {
		// 失敗: Ankiの「もう一度」相当。繰り返し回数をリセットし、イーズを緩やかに下げる
		next.Repetitions = 0
		next.Interval = settings.MinimumInterval
		next.EaseFactor = math.Max(1.3, next.EaseFactor-settings.FailureResetStrength)
	} else {
		// 成功: 段階に応じて間隔を決める
		switch {
		case next.Repetitions == 0:
			if grade == model.GradeEasy {
				next.Interval = settings.EasyInterval
			} else {
				next.Interval = settings.GraduatingInterval
			}
		case next.Repetitions == 1:
			next.Interval = settings.GraduatingInterval * 2
		default:
			next.Interval = int(math.Round(float64(next.Interval) * next.EaseFactor * settings.IntervalModifier))
		}

		next.Repetitions++

		// イーズ係数の調整 (子供向けに控えめ)
		if grade == model.GradeHard {
			next.EaseFactor = math.Max(1.3, next.EaseFactor-0.1)
		} else if grade == model.GradeEasy {
			next.EaseFactor = math.Min(2.5, next.EaseFactor+(settings.EasyBonus-1))
		}

		// grade 5 は間隔にもボーナスを掛ける
		if grade == model.GradeEasy {
			next.Interval = int(math.Round(float64(next.Interval) * settings.EasyBonus))
		}

		// 最小・最大間隔に収める
		if next.Interval < settings.MinimumInterval {
			next.Interval = settings.MinimumInterval
		}
		if next.Interval > settings.MaximumInterval {
			next.Interval = settings.MaximumInterval
		}
	}

	next.NextReviewDate = reviewedAt.AddDate(0, 0, next.Interval)
	return next
}
