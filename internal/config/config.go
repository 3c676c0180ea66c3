// internal/config/config.go
package config

import (
	"log"

	"github.com/spf13/viper"
)

type DatabaseConfig struct {
	URL string `mapstructure:"url"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type CORSConfig struct {
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers"`
	ExposedHeaders   []string `mapstructure:"exposed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	MaxAge           int      `mapstructure:"max_age"`
}

type AppConfig struct {
	RewardThreshold  int `mapstructure:"reward_threshold"`   // 何問正解ごとにごほうびを出すか
	QuestionTimeSecs int `mapstructure:"question_time_secs"` // 1問あたりの制限時間 (秒)
	NewCardLimit     int `mapstructure:"new_card_limit"`     // 新規カード一覧の上限
	ReviewLimit      int `mapstructure:"review_limit"`       // 復習カード一覧の上限
}

type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Server   ServerConfig   `mapstructure:"server"`
	Log      LogConfig      `mapstructure:"log"`
	CORS     CORSConfig     `mapstructure:"cors"`
	App      AppConfig      `mapstructure:"app"`
}

var Cfg Config

func LoadConfig(path string) error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(path)
	viper.AddConfigPath(".")

	// 環境変数は APP_ 接頭辞で上書き可能 (例: APP_DATABASE_URL)
	viper.SetEnvPrefix("APP")
	viper.AutomaticEnv()
	viper.BindEnv("database.url", "APP_DATABASE_URL")
	viper.BindEnv("server.port", "APP_SERVER_PORT")
	viper.BindEnv("log.level", "APP_LOG_LEVEL")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Warning: Config file not found. Using default settings or environment variables if available.")
		} else {
			log.Printf("Error reading config file: %s\n", err)
			return err
		}
	}

	err := viper.Unmarshal(&Cfg)
	if err != nil {
		log.Printf("Error unmarshalling config: %s\n", err)
		return err
	}

	// --- デフォルト値の設定 ---
	if Cfg.Server.Port == "" {
		log.Printf("Server port not set, using default '%s'", DefaultServerPort)
		Cfg.Server.Port = DefaultServerPort
	}
	if Cfg.Log.Level == "" {
		Cfg.Log.Level = DefaultLogLevel
	}
	if Cfg.Database.URL == "" {
		// ブラウザ版のlocalStorage相当。単一プレイヤーのローカル構成ではsqliteファイルを既定にする
		log.Printf("Database URL not set, using default '%s'", DefaultDatabaseURL)
		Cfg.Database.URL = DefaultDatabaseURL
	}
	if Cfg.App.RewardThreshold <= 0 {
		Cfg.App.RewardThreshold = DefaultRewardThreshold
	}
	if Cfg.App.QuestionTimeSecs <= 0 {
		Cfg.App.QuestionTimeSecs = DefaultQuestionTimeSecs
	}
	if Cfg.App.NewCardLimit <= 0 {
		Cfg.App.NewCardLimit = DefaultNewCardLimit
	}
	if Cfg.App.ReviewLimit <= 0 {
		Cfg.App.ReviewLimit = DefaultReviewLimit
	}

	log.Println("Config loaded successfully")
	log.Printf("Server Port: %s", Cfg.Server.Port)
	log.Printf("Reward Threshold: %d", Cfg.App.RewardThreshold)
	log.Printf("Question Time: %ds", Cfg.App.QuestionTimeSecs)

	return nil
}
