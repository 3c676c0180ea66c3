// internal/handlers/deck_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"go_math_adventure/internal/model"
	"go_math_adventure/internal/service"
	"go_math_adventure/internal/webutil"

	"github.com/go-chi/chi/v5"
)

type DeckHandler struct {
	service service.DeckService
	logger  *slog.Logger
}

func NewDeckHandler(s service.DeckService, logger *slog.Logger) *DeckHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &DeckHandler{
		service: s,
		logger:  logger,
	}
}

// GetDecks はデッキ一覧を取得するためのハンドラ
func (h *DeckHandler) GetDecks(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetDecks"))

	decks, err := h.service.ListDecks(r.Context())
	if err != nil {
		logger.Error("Error listing decks in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, decks, logger)
}

// PostDeck はカスタムデッキを作成するためのハンドラ
func (h *DeckHandler) PostDeck(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostDeck"))

	var req model.PostDeckRequest
	if !decodeBody(w, r, logger, &req) {
		return
	}
	if err := webutil.Validator.Struct(req); err != nil {
		handleValidationError(w, logger, err, req)
		return
	}

	deck, err := h.service.PostDeck(r.Context(), &req)
	if err != nil {
		logger.Error("Error posting deck in service", slog.Any("error", err), slog.Any("request", req))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Deck posted successfully", slog.String("deck_id", deck.DeckID))
	webutil.RespondWithJSON(w, http.StatusCreated, deck, logger)
}

// PatchDeck はデッキを部分更新するためのハンドラ
func (h *DeckHandler) PatchDeck(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PatchDeck"))
	deckID := chi.URLParam(r, "deck_id")

	var req model.PatchDeckRequest
	if !decodeBody(w, r, logger, &req) {
		return
	}
	if err := webutil.Validator.Struct(req); err != nil {
		handleValidationError(w, logger, err, req)
		return
	}

	deck, err := h.service.PatchDeck(r.Context(), deckID, &req)
	if err != nil {
		logger.Error("Error patching deck in service", slog.Any("error", err), slog.String("deck_id", deckID))
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, deck, logger)
}

// DeleteDeck はデッキを削除するためのハンドラ
func (h *DeckHandler) DeleteDeck(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteDeck"))
	deckID := chi.URLParam(r, "deck_id")

	if err := h.service.DeleteDeck(r.Context(), deckID); err != nil {
		logger.Error("Error deleting deck in service", slog.Any("error", err), slog.String("deck_id", deckID))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Deck deleted successfully", slog.String("deck_id", deckID))
	w.WriteHeader(http.StatusNoContent)
}

// SetDeckActive はデッキの有効/無効を切り替えるためのハンドラ
func (h *DeckHandler) SetDeckActive(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "SetDeckActive"))
	deckID := chi.URLParam(r, "deck_id")

	var req model.SetDeckActiveRequest
	if !decodeBody(w, r, logger, &req) {
		return
	}
	if err := webutil.Validator.Struct(req); err != nil {
		handleValidationError(w, logger, err, req)
		return
	}

	deck, err := h.service.SetDeckActive(r.Context(), deckID, *req.IsActive)
	if err != nil {
		logger.Error("Error setting deck active flag in service", slog.Any("error", err), slog.String("deck_id", deckID))
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, deck, logger)
}

// GetDeckStats はデッキの難易度別カード枚数を取得するためのハンドラ
func (h *DeckHandler) GetDeckStats(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetDeckStats"))
	deckID := chi.URLParam(r, "deck_id")

	stats, err := h.service.GetDeckStats(r.Context(), deckID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, stats, logger)
}

// ResetDecks はデッキ構成を初期状態に戻すためのハンドラ
func (h *DeckHandler) ResetDecks(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "ResetDecks"))

	if err := h.service.ResetDecks(r.Context()); err != nil {
		logger.Error("Error resetting decks in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Decks reset")
	w.WriteHeader(http.StatusNoContent)
}
