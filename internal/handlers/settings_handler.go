// internal/handlers/settings_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"go_math_adventure/internal/model"
	"go_math_adventure/internal/service"
	"go_math_adventure/internal/webutil"

	"github.com/go-chi/chi/v5"
)

type SettingsHandler struct {
	service service.SettingsService
	logger  *slog.Logger
}

func NewSettingsHandler(s service.SettingsService, logger *slog.Logger) *SettingsHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &SettingsHandler{
		service: s,
		logger:  logger,
	}
}

// GetSettings は現在のスケジューリング設定を取得するためのハンドラ
func (h *SettingsHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetSettings"))

	settings, err := h.service.GetSettings(r.Context())
	if err != nil {
		logger.Error("Error getting settings in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, settings, logger)
}

// PutSettings は設定プロファイル全体を更新するためのハンドラ
func (h *SettingsHandler) PutSettings(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PutSettings"))

	var req model.PutSettingsRequest
	if !decodeBody(w, r, logger, &req) {
		return
	}
	if err := webutil.Validator.Struct(req); err != nil {
		handleValidationError(w, logger, err, req)
		return
	}

	settings, err := h.service.UpdateSettings(r.Context(), req.Profile())
	if err != nil {
		logger.Error("Error updating settings in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Settings updated successfully")
	webutil.RespondWithJSON(w, http.StatusOK, settings, logger)
}

// ApplyPreset は名前付きプリセットを適用するためのハンドラ
func (h *SettingsHandler) ApplyPreset(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "ApplyPreset"))
	name := chi.URLParam(r, "name")

	settings, err := h.service.ApplyPreset(r.Context(), name)
	if err != nil {
		logger.Warn("Error applying settings preset", slog.Any("error", err), slog.String("preset", name))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Settings preset applied", slog.String("preset", name))
	webutil.RespondWithJSON(w, http.StatusOK, settings, logger)
}

// ResetSettings は設定を既定値に戻すためのハンドラ
func (h *SettingsHandler) ResetSettings(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "ResetSettings"))

	settings, err := h.service.ResetSettings(r.Context())
	if err != nil {
		logger.Error("Error resetting settings in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Settings reset to defaults")
	webutil.RespondWithJSON(w, http.StatusOK, settings, logger)
}
