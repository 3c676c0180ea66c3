// internal/handlers/review_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"go_math_adventure/internal/model"
	"go_math_adventure/internal/service"
	"go_math_adventure/internal/webutil"
)

type ReviewHandler struct {
	service service.ReviewService
	logger  *slog.Logger
}

func NewReviewHandler(s service.ReviewService, logger *slog.Logger) *ReviewHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReviewHandler{
		service: s,
		logger:  logger,
	}
}

// GetDueCards は復習期限が到来したカードを取得するためのハンドラ
func (h *ReviewHandler) GetDueCards(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetDueCards"))

	due, err := h.service.GetDueCards(r.Context())
	if err != nil {
		logger.Error("Error getting due cards in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	if due == nil {
		due = []*model.ReviewCard{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, due, logger)
}

// GetNewCards は未学習カードを取得するためのハンドラ
func (h *ReviewHandler) GetNewCards(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetNewCards"))

	fresh, err := h.service.GetNewCards(r.Context())
	if err != nil {
		logger.Error("Error getting new cards in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	if fresh == nil {
		fresh = []*model.ReviewCard{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, fresh, logger)
}

// GetReviewCounts は復習キューの件数サマリを取得するためのハンドラ
func (h *ReviewHandler) GetReviewCounts(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetReviewCounts"))

	counts, err := h.service.GetReviewCounts(r.Context())
	if err != nil {
		logger.Error("Error getting review counts in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, counts, logger)
}

// SubmitGrade はカードの採点を登録するためのハンドラ
func (h *ReviewHandler) SubmitGrade(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "SubmitGrade"))

	cardID, ok := cardIDFromURL(w, r, logger)
	if !ok {
		return
	}

	var req model.GradeRequest
	if !decodeBody(w, r, logger, &req) {
		return
	}
	if err := webutil.Validator.Struct(req); err != nil {
		handleValidationError(w, logger, err, req)
		return
	}

	state, err := h.service.SubmitGrade(r.Context(), cardID, *req.Grade)
	if err != nil {
		logger.Error("Error submitting grade in service", slog.Any("error", err), slog.Int64("card_id", cardID))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Grade submitted successfully", slog.Int64("card_id", cardID), slog.Int("grade", *req.Grade))
	webutil.RespondWithJSON(w, http.StatusOK, state, logger)
}
