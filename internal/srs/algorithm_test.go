package srs

import (
	"testing"
	"time"

	"go_math_adventure/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testToday = time.Date(2025, 6, 1, 15, 4, 5, 0, time.UTC)

func newState() model.SchedulingState {
	return *model.NewSchedulingState(1, testToday)
}

func Test_Advance_成功時の間隔遷移(t *testing.T) {
	settings := model.DefaultSettings()

	tests := []struct {
		name         string
		state        model.SchedulingState
		grade        int
		wantInterval int
		wantReps     int
		wantEase     float64
	}{
		{
			name:         "正常系: 初回正解(good)は卒業間隔",
			state:        newState(),
			grade:        model.GradeGood,
			wantInterval: 1,
			wantReps:     1,
			wantEase:     2.5,
		},
		{
			name: "正常系: 2回目の正解は卒業間隔の2倍",
			state: model.SchedulingState{
				CardID: 1, EaseFactor: 2.5, Interval: 1, Repetitions: 1,
			},
			grade:        model.GradeGood,
			wantInterval: 2,
			wantReps:     2,
			wantEase:     2.5,
		},
		{
			name: "正常系: 成熟カードはイーズ係数と補正係数で伸びる",
			state: model.SchedulingState{
				CardID: 1, EaseFactor: 2.5, Interval: 2, Repetitions: 2,
			},
			grade:        model.GradeGood,
			wantInterval: 4, // round(2 * 2.5 * 0.8)
			wantReps:     3,
			wantEase:     2.5,
		},
		{
			name:         "正常系: 初回easyは易間隔にボーナスを重ねて適用",
			state:        newState(),
			grade:        model.GradeEasy,
			wantInterval: 5, // round(4 * 1.2): イーズと間隔の両方にボーナスが掛かる仕様
			wantReps:     1,
			wantEase:     2.5, // min(2.5, 2.5+0.2)
		},
		{
			name: "正常系: hardはイーズ係数を0.1下げる",
			state: model.SchedulingState{
				CardID: 1, EaseFactor: 2.5, Interval: 10, Repetitions: 3,
			},
			grade:        model.GradeHard,
			wantInterval: 20, // round(10 * 2.5 * 0.8)
			wantReps:     4,
			wantEase:     2.4,
		},
		{
			name: "正常系: 最大間隔を超えない",
			state: model.SchedulingState{
				CardID: 1, EaseFactor: 2.5, Interval: 30, Repetitions: 5,
			},
			grade:        model.GradeGood,
			wantInterval: 30, // round(30*2.5*0.8)=60 だが最大30日
			wantReps:     6,
			wantEase:     2.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Advance(tt.state, settings, tt.grade, testToday)

			assert.Equal(t, tt.wantInterval, got.Interval)
			assert.Equal(t, tt.wantReps, got.Repetitions)
			assert.InDelta(t, tt.wantEase, got.EaseFactor, 1e-9)
			assert.Equal(t, tt.grade, got.Grade)
			assert.Equal(t, model.DateOnly(testToday).AddDate(0, 0, tt.wantInterval), got.NextReviewDate)
			require.NotNil(t, got.LastReviewDate)
			assert.Equal(t, model.DateOnly(testToday), *got.LastReviewDate)
		})
	}
}

func Test_Advance_失敗時のリセット(t *testing.T) {
	settings := model.DefaultSettings()

	tests := []struct {
		name     string
		state    model.SchedulingState
		grade    int
		wantEase float64
	}{
		{
			name: "正常系: 失敗で繰り返し回数と間隔がリセットされる",
			state: model.SchedulingState{
				CardID: 1, EaseFactor: 2.5, Interval: 10, Repetitions: 2,
			},
			grade:    model.GradeAgain,
			wantEase: 2.4,
		},
		{
			name: "正常系: grade 2 も失敗扱い",
			state: model.SchedulingState{
				CardID: 1, EaseFactor: 2.0, Interval: 4, Repetitions: 1,
			},
			grade:    2,
			wantEase: 1.9,
		},
		{
			name: "正常系: イーズ係数は1.3を下回らない",
			state: model.SchedulingState{
				CardID: 1, EaseFactor: 1.35, Interval: 4, Repetitions: 1,
			},
			grade:    model.GradeAgain,
			wantEase: 1.3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Advance(tt.state, settings, tt.grade, testToday)

			assert.Equal(t, 0, got.Repetitions)
			assert.Equal(t, settings.MinimumInterval, got.Interval)
			assert.InDelta(t, tt.wantEase, got.EaseFactor, 1e-9)
			assert.Equal(t, model.DateOnly(testToday).AddDate(0, 0, settings.MinimumInterval), got.NextReviewDate)
		})
	}
}

// 既定設定で good を3回続けると間隔は 1 -> 2 -> 4 と伸びる
func Test_Advance_連続正解シナリオ(t *testing.T) {
	settings := model.DefaultSettings()
	state := newState()

	wantIntervals := []int{1, 2, 4}
	for i, want := range wantIntervals {
		state = Advance(state, settings, model.GradeGood, testToday)
		assert.Equal(t, want, state.Interval, "review %d", i+1)
		assert.Equal(t, i+1, state.Repetitions)
	}
	assert.InDelta(t, 2.5, state.EaseFactor, 1e-9)
}

func Test_Advance_間隔は常に設定範囲内(t *testing.T) {
	settings := model.DefaultSettings()

	// 代表的な状態×全採点値の総当たりで範囲不変条件を確認
	states := []model.SchedulingState{
		newState(),
		{CardID: 1, EaseFactor: 1.3, Interval: 1, Repetitions: 1},
		{CardID: 1, EaseFactor: 2.5, Interval: 15, Repetitions: 4},
		{CardID: 1, EaseFactor: 2.5, Interval: 30, Repetitions: 9},
	}
	for _, state := range states {
		for grade := 0; grade <= 5; grade++ {
			got := Advance(state, settings, grade, testToday)
			assert.GreaterOrEqual(t, got.Interval, settings.MinimumInterval)
			assert.LessOrEqual(t, got.Interval, settings.MaximumInterval)
			assert.GreaterOrEqual(t, got.EaseFactor, 1.3)
			assert.LessOrEqual(t, got.EaseFactor, 2.5)
		}
	}
}

func Test_Advance_計算後の切り上げが最小間隔を下回る場合(t *testing.T) {
	settings := model.DefaultSettings()
	settings.IntervalModifier = 0.1
	settings.MinimumInterval = 2

	state := model.SchedulingState{CardID: 1, EaseFactor: 1.3, Interval: 3, Repetitions: 2}
	got := Advance(state, settings, model.GradeGood, testToday)

	// round(3*1.3*0.1)=0 だが最小間隔まで引き上げられる
	assert.Equal(t, 2, got.Interval)
}

func Test_Advance_入力の状態を変更しない(t *testing.T) {
	settings := model.DefaultSettings()
	state := model.SchedulingState{CardID: 1, EaseFactor: 2.5, Interval: 10, Repetitions: 2}
	before := state

	_ = Advance(state, settings, model.GradeGood, testToday)

	assert.Equal(t, before, state)
}
