// internal/handlers/session_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"go_math_adventure/internal/model"
	"go_math_adventure/internal/service"
	"go_math_adventure/internal/webutil"
)

type SessionHandler struct {
	service service.SessionService
	logger  *slog.Logger
}

func NewSessionHandler(s service.SessionService, logger *slog.Logger) *SessionHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &SessionHandler{
		service: s,
		logger:  logger,
	}
}

// StartSession はゲームセッションを開始するためのハンドラ
func (h *SessionHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "StartSession"))

	var req model.StartSessionRequest
	if !decodeBody(w, r, logger, &req) {
		return
	}
	if err := webutil.Validator.Struct(req); err != nil {
		handleValidationError(w, logger, err, req)
		return
	}

	resp, err := h.service.StartSession(r.Context(), &req)
	if err != nil {
		logger.Warn("Error starting session in service", slog.Any("error", err), slog.Any("request", req))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Session started", slog.String("epoch", resp.Epoch), slog.Bool("anki_mode", req.AnkiMode))
	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}

// GetCurrentCard は現在の出題カードを取得するためのハンドラ
func (h *SessionHandler) GetCurrentCard(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetCurrentCard"))

	resp, err := h.service.GetCurrentCard(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}

// SubmitAnswer は回答を送信するためのハンドラ
func (h *SessionHandler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "SubmitAnswer"))

	var req model.SubmitAnswerRequest
	if !decodeBody(w, r, logger, &req) {
		return
	}
	if err := webutil.Validator.Struct(req); err != nil {
		handleValidationError(w, logger, err, req)
		return
	}

	result, err := h.service.SubmitAnswer(r.Context(), &req)
	if err != nil {
		logger.Warn("Error submitting answer in service", slog.Any("error", err), slog.Int64("card_id", req.CardID))
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, result, logger)
}

// CollectReward はごほうびを受け取って出題を再開するためのハンドラ
func (h *SessionHandler) CollectReward(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "CollectReward"))

	resp, err := h.service.CollectReward(r.Context())
	if err != nil {
		logger.Warn("Error collecting reward in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Reward collected")
	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}

// GetProgress は累計進捗を取得するためのハンドラ
func (h *SessionHandler) GetProgress(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetProgress"))

	progress, err := h.service.GetProgress(r.Context())
	if err != nil {
		logger.Error("Error getting progress in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, progress, logger)
}

// ResetProgress は進捗を初期化するためのハンドラ
func (h *SessionHandler) ResetProgress(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "ResetProgress"))

	if err := h.service.ResetProgress(r.Context()); err != nil {
		logger.Error("Error resetting progress in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Progress reset")
	w.WriteHeader(http.StatusNoContent)
}
