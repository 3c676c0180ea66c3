// internal/config/constants.go
package config

// アプリケーション情報
const (
	AppName    = "math-adventure"
	AppVersion = "1.0.0"
)

// デフォルト設定値
const (
	DefaultServerPort       = ":8080"
	DefaultLogLevel         = "info"
	DefaultDatabaseURL      = "math_adventure.db"
	DefaultRewardThreshold  = 5  // 5問正解ごとにごほうび
	DefaultQuestionTimeSecs = 30 // 1問30秒
	DefaultNewCardLimit     = 5
	DefaultReviewLimit      = 20
)
