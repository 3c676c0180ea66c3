// cmd/main.go
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/lmittmann/tint"
	"github.com/rs/cors"

	"go_math_adventure/internal/config"
	"go_math_adventure/internal/handlers"
	"go_math_adventure/internal/middleware"
	"go_math_adventure/internal/repository"
	"go_math_adventure/internal/service"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

func main() {
	// 設定ファイル読み込み用の一時的なロガー
	tempLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(tempLogger)

	if err := config.LoadConfig("./configs"); err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	// === 設定に基づいて slog ロガーを初期化 ===
	logLevel := new(slog.LevelVar)
	switch strings.ToLower(config.Cfg.Log.Level) {
	case "debug":
		logLevel.Set(slog.LevelDebug)
	case "info":
		logLevel.Set(slog.LevelInfo)
	case "warn", "warning":
		logLevel.Set(slog.LevelWarn)
	case "error":
		logLevel.Set(slog.LevelError)
	default:
		logLevel.Set(slog.LevelInfo)
		slog.Warn("Unknown log level specified in config, defaulting to INFO", slog.String("level", config.Cfg.Log.Level))
	}

	var handler slog.Handler
	appEnv := os.Getenv("APP_ENV")
	if strings.ToLower(appEnv) == "dev" {
		handler = tint.NewHandler(os.Stderr, &tint.Options{
			Level:      logLevel,
			TimeFormat: time.RFC3339,
		})
	} else {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		})
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)

	slog.Info("Application starting...")

	db, err := repository.NewDB(config.Cfg.Database.URL, logger)
	if err != nil {
		slog.Error("Error initializing database", slog.Any("error", err))
		os.Exit(1)
	}
	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Error("Error closing database connection", slog.Any("error", err))
		} else {
			slog.Info("Database connection closed.")
		}
	}()

	// Dependency Injection
	cardRepo := repository.NewGormCardRepository()
	deckRepo := repository.NewGormDeckRepository()
	schedRepo := repository.NewGormSchedulingRepository()
	settingsRepo := repository.NewGormSettingsRepository()
	progressRepo := repository.NewGormProgressRepository()

	settingsService := service.NewSettingsService(db, settingsRepo)
	cardService := service.NewCardService(db, cardRepo, schedRepo)
	deckService := service.NewDeckService(db, deckRepo, cardRepo)
	reviewService := service.NewReviewService(db, cardRepo, schedRepo, settingsService, &config.Cfg)
	sessionService := service.NewSessionService(db, cardRepo, schedRepo, progressRepo, deckService, settingsService, &config.Cfg)

	// 初回起動時のシードデータ投入
	startupCtx := context.Background()
	if err := cardService.EnsureSeedData(startupCtx); err != nil {
		slog.Error("Error seeding card catalog", slog.Any("error", err))
		os.Exit(1)
	}
	if err := deckService.EnsureSeedData(startupCtx); err != nil {
		slog.Error("Error seeding decks", slog.Any("error", err))
		os.Exit(1)
	}

	cardHandler := handlers.NewCardHandler(cardService, logger)
	deckHandler := handlers.NewDeckHandler(deckService, logger)
	settingsHandler := handlers.NewSettingsHandler(settingsService, logger)
	reviewHandler := handlers.NewReviewHandler(reviewService, logger)
	sessionHandler := handlers.NewSessionHandler(sessionService, logger)

	// Setup Router
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger))

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   config.Cfg.CORS.AllowedOrigins,
		AllowedMethods:   config.Cfg.CORS.AllowedMethods,
		AllowedHeaders:   config.Cfg.CORS.AllowedHeaders,
		ExposedHeaders:   config.Cfg.CORS.ExposedHeaders,
		AllowCredentials: config.Cfg.CORS.AllowCredentials,
		MaxAge:           config.Cfg.CORS.MaxAge,
	})
	r.Use(corsHandler.Handler)

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// API Routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/cards", func(r chi.Router) {
			r.Post("/", cardHandler.PostCard)
			r.Get("/", cardHandler.GetCards)
			r.Post("/import", cardHandler.ImportCards)
			r.Post("/import/file", cardHandler.UploadCards)
			r.Get("/export", cardHandler.ExportCards)
			r.Post("/reset", cardHandler.ResetCards)
			r.Get("/{card_id}", cardHandler.GetCard)
			r.Put("/{card_id}", cardHandler.PutCard)
			r.Patch("/{card_id}", cardHandler.PatchCard)
			r.Delete("/{card_id}", cardHandler.DeleteCard)
		})

		r.Route("/decks", func(r chi.Router) {
			r.Get("/", deckHandler.GetDecks)
			r.Post("/", deckHandler.PostDeck)
			r.Post("/reset", deckHandler.ResetDecks)
			r.Patch("/{deck_id}", deckHandler.PatchDeck)
			r.Delete("/{deck_id}", deckHandler.DeleteDeck)
			r.Put("/{deck_id}/active", deckHandler.SetDeckActive)
			r.Get("/{deck_id}/stats", deckHandler.GetDeckStats)
		})

		r.Route("/settings", func(r chi.Router) {
			r.Get("/", settingsHandler.GetSettings)
			r.Put("/", settingsHandler.PutSettings)
			r.Post("/preset/{name}", settingsHandler.ApplyPreset)
			r.Post("/reset", settingsHandler.ResetSettings)
		})

		r.Route("/reviews", func(r chi.Router) {
			r.Get("/due", reviewHandler.GetDueCards)
			r.Get("/new", reviewHandler.GetNewCards)
			r.Get("/counts", reviewHandler.GetReviewCounts)
			r.Post("/{card_id}/grade", reviewHandler.SubmitGrade)
		})

		r.Route("/session", func(r chi.Router) {
			r.Post("/start", sessionHandler.StartSession)
			r.Get("/card", sessionHandler.GetCurrentCard)
			r.Post("/answer", sessionHandler.SubmitAnswer)
			r.Post("/reward/collect", sessionHandler.CollectReward)
			r.Get("/progress", sessionHandler.GetProgress)
			r.Post("/progress/reset", sessionHandler.ResetProgress)
		})
	})

	// Health Check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := sqlDB.PingContext(r.Context()); err != nil {
			slog.ErrorContext(r.Context(), "Health check failed: could not ping DB", slog.Any("error", err))
			http.Error(w, "Health check failed", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Start Server
	server := &http.Server{
		Addr:         config.Cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("Server listening", slog.String("port", config.Cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Could not listen on port", slog.String("port", config.Cfg.Server.Port), slog.Any("error", err))
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", slog.Any("error", err))
	}

	slog.Info("Server exiting")
}
